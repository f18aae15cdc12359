package adapter

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"strings"
)

// Command describes an external process invocation
type Command struct {
	Name  string
	Args  []string
	Dir   string
	Env   []string // appended to the current process environment
	Stdin string
}

// CommandResult holds the captured output of a finished process
type CommandResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// CommandRunner defines an interface for running external processes to enable mocking
//
//go:generate mockgen -source=exec.go -destination=../mocks/exec.go -package=mocks -mock_names=CommandRunner=MockCommandRunner
type CommandRunner interface {
	// Run executes the command and waits for it. The result is non-nil whenever the
	// process started, even if it exited with a non-zero code.
	Run(ctx context.Context, cmd Command) (*CommandResult, error)
}

// RealCommandRunner implements CommandRunner using os/exec
type RealCommandRunner struct{}

// NewCommandRunner creates a new real command runner
func NewCommandRunner() CommandRunner {
	return &RealCommandRunner{}
}

func (r *RealCommandRunner) Run(ctx context.Context, cmd Command) (*CommandResult, error) {
	c := exec.CommandContext(ctx, cmd.Name, cmd.Args...) //nolint:gosec,G204 // command and args come from configuration
	c.Dir = cmd.Dir
	c.Env = append(os.Environ(), cmd.Env...)
	c.Stdin = strings.NewReader(cmd.Stdin)

	var stdout, stderr bytes.Buffer
	c.Stdout = &stdout
	c.Stderr = &stderr

	err := c.Run()
	result := &CommandResult{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		result.ExitCode = exitErr.ExitCode()
		return result, err
	}
	if err != nil {
		return nil, err
	}

	return result, nil
}
