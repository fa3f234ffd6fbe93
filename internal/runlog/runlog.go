// Package runlog provides the run-scoped logging context threaded through
// the release workflow. Each run writes to the console and to its own
// persistent log file, so a failed release can be reconstructed afterwards.
package runlog

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/fatih/color"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/conn-castle/pack-release/internal/messages"
)

const logFilePerm = 0o644

// Log is the per-run logging context. It is constructed once at process
// start and passed explicitly into each workflow stage.
type Log struct {
	console io.Writer
	file    *zap.Logger
	closer  io.Closer
	verbose bool
	path    string
}

// New creates the run log under dir. The console writer receives the
// user-facing copy of every message; the log file receives everything
// including verbose detail.
func New(dir string, verbose bool, console io.Writer) (*Log, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf(messages.RunlogCreateDirFmt, dir, err)
	}
	path := filepath.Join(dir, fmt.Sprintf("run-%s.log", time.Now().Format("20060102-150405")))
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, logFilePerm)
	if err != nil {
		return nil, fmt.Errorf(messages.RunlogOpenFileFmt, path, err)
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderCfg), zapcore.AddSync(f), zapcore.DebugLevel)

	return &Log{
		console: console,
		file:    zap.New(core),
		closer:  f,
		verbose: verbose,
		path:    path,
	}, nil
}

// Path returns the run log file location.
func (l *Log) Path() string {
	return l.path
}

// Infof logs a formatted message to the console and the run log.
func (l *Log) Infof(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	_, _ = fmt.Fprintln(l.console, msg)
	l.file.Info(msg)
}

// Detailf logs verbose detail. It always reaches the run log and reaches the
// console only when verbose logging is enabled.
func (l *Log) Detailf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if l.verbose {
		_, _ = fmt.Fprintln(l.console, msg)
	}
	l.file.Debug(msg)
}

// Errorf logs an error to the console (in red) and the run log.
// detail, when non-empty, goes to the run log and to a verbose console.
func (l *Log) Errorf(detail string, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	_, _ = fmt.Fprintln(l.console, color.New(color.FgRed).Sprint(msg))
	if detail != "" {
		if l.verbose {
			_, _ = fmt.Fprintln(l.console, detail)
		}
		l.file.Error(msg, zap.String("detail", detail))
		return
	}
	l.file.Error(msg)
}

// Close flushes and closes the run log file.
func (l *Log) Close() error {
	// Sync errors on regular files are reported by Close as well.
	_ = l.file.Sync()
	return l.closer.Close()
}
