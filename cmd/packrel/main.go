package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/conn-castle/pack-release/internal/messages"
	"github.com/conn-castle/pack-release/internal/release"
)

// Version, Commit, and BuildDate are overridden at build time.
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

var (
	getwd       = os.Getwd
	executeFunc = execute
)

func main() {
	runMain(os.Args, os.Stdout, os.Stderr, os.Exit)
}

// runMain executes the CLI and maps the result to an exit code. A declined
// confirmation is a clean abort: the notice goes to stdout and the process
// exits zero. Everything else fatal exits one.
func runMain(args []string, stdout io.Writer, stderr io.Writer, exit func(int)) {
	err := executeFunc(args, stdout, stderr)
	if err == nil {
		return
	}
	if errors.Is(err, release.ErrAborted) {
		_, _ = fmt.Fprintln(stdout, messages.AbortedNotice)
		return
	}
	_, _ = fmt.Fprintf(stderr, messages.FatalErrorFmt, err)
	exit(1)
}

// execute runs the CLI command with the provided args and output writers.
func execute(args []string, stdout io.Writer, stderr io.Writer) error {
	cmd := newRootCmd()
	cmd.Version = versionString()
	cmd.SetVersionTemplate(messages.VersionTemplate)
	if len(args) > 1 {
		cmd.SetArgs(args[1:])
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	return cmd.Execute()
}

// versionString combines the build version with the commit and build date.
func versionString() string {
	details := fmt.Sprintf(messages.VersionCommitFmt, Commit)
	if BuildDate != "unknown" {
		details += ", " + fmt.Sprintf(messages.VersionBuildFmt, BuildDate)
	}
	return fmt.Sprintf(messages.VersionFullFmt, Version, details)
}
