// Package gitcli shells out to the git binary for the staging and commit
// operations the release workflow needs. Git is treated as an external
// service: any command failure is fatal to the run and carries the exact
// command text and output for manual recovery.
package gitcli

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/conn-castle/pack-release/internal/messages"
)

// System abstracts git command execution to enable dependency injection.
type System interface {
	// Output runs git with args in dir and returns combined stdout/stderr.
	Output(dir string, args ...string) (string, error)
}

// RealSystem implements System by invoking the git binary.
type RealSystem struct{}

// Output runs git with args in dir and returns combined stdout/stderr.
func (RealSystem) Output(dir string, args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	return string(out), err
}

// Client issues git commands against a single working tree.
type Client struct {
	sys System
	dir string
}

// New creates a Client for the working tree at dir.
func New(sys System, dir string) *Client {
	return &Client{sys: sys, dir: dir}
}

// Add stages the given paths.
func (c *Client) Add(paths ...string) error {
	if len(paths) == 0 {
		return nil
	}
	args := append([]string{"add", "--"}, paths...)
	_, err := c.run(args...)
	return err
}

// AddAll stages every change in the working tree.
func (c *Client) AddAll() error {
	_, err := c.run("add", ".")
	return err
}

// RestoreStaged unstages everything, leaving working tree content intact.
func (c *Client) RestoreStaged() error {
	_, err := c.run("restore", "--staged", ".")
	return err
}

// DiffCachedNames returns the paths with staged changes.
func (c *Client) DiffCachedNames() ([]string, error) {
	out, err := c.run("diff", "--name-only", "--cached")
	if err != nil {
		return nil, err
	}
	var names []string
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			names = append(names, line)
		}
	}
	return names, nil
}

// Commit commits the staged changes with the given message.
func (c *Client) Commit(message string) error {
	if strings.TrimSpace(message) == "" {
		return errors.New(messages.GitEmptyCommitMessage)
	}
	_, err := c.run("commit", "-m", message)
	return err
}

// run executes git and wraps failures with the command text and output.
func (c *Client) run(args ...string) (string, error) {
	out, err := c.sys.Output(c.dir, args...)
	if err != nil {
		command := "git " + strings.Join(args, " ")
		return "", fmt.Errorf(messages.GitCommandFailedFmt, command, err, strings.TrimSpace(out))
	}
	return out, nil
}
