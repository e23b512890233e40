// Package runner executes external media tools and reports their outcome.
//
// Both concatenation backends (ffmpeg and mkvmerge) funnel their
// invocations through Run so exit status and captured diagnostics are
// handled uniformly.
package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
)

// Command describes a single external tool invocation.
type Command struct {
	Name string   // binary name, resolved through PATH
	Args []string // arguments, excluding the binary name
	Dir  string   // working directory; empty inherits the caller's
}

// Result holds the captured output of a completed invocation.
type Result struct {
	Stdout   []byte
	Stderr   []byte
	ExitCode int
}

// StartError reports that the tool process could not be started at all
// (binary not found, permission denied).
type StartError struct {
	Tool string
	Err  error
}

func (e *StartError) Error() string {
	return fmt.Sprintf("failed to start %s: %v", e.Tool, e.Err)
}

func (e *StartError) Unwrap() error { return e.Err }

// ExitError reports that the tool ran to completion but exited with a
// non-zero status. Stderr carries the captured diagnostic text.
type ExitError struct {
	Tool     string
	ExitCode int
	Stderr   []byte
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("%s exited with status %d: %s",
		e.Tool, e.ExitCode, bytes.TrimSpace(e.Stderr))
}

// Run executes cmd and blocks until it finishes. Stdout and stderr are
// captured in full.
//
// A process that could not be launched returns a *StartError and a nil
// Result. A non-zero exit status returns the Result together with an
// *ExitError carrying the captured stderr. Cancelling ctx kills the
// child process.
func Run(ctx context.Context, cmd Command) (*Result, error) {
	c := exec.CommandContext(ctx, cmd.Name, cmd.Args...)
	c.Dir = cmd.Dir

	var stdout, stderr bytes.Buffer
	c.Stdout = &stdout
	c.Stderr = &stderr

	err := c.Run()
	res := &Result{Stdout: stdout.Bytes(), Stderr: stderr.Bytes()}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			res.ExitCode = exitErr.ExitCode()
			return res, &ExitError{Tool: cmd.Name, ExitCode: res.ExitCode, Stderr: res.Stderr}
		}
		return nil, &StartError{Tool: cmd.Name, Err: err}
	}
	return res, nil
}
