// Package common provides shared plumbing for probe implementations.
package common

import (
	"bytes"
	"context"
	"os/exec"
	"time"

	"intelprobe/internal/platform/errors"
	"intelprobe/internal/platform/logx"
)

// Command executes one external command per call with a hard timeout.
// The subprocess is always reaped before Run returns: the context kills it
// on timeout and Wait collects it in every path.
type Command struct {
	logger   logx.Logger
	execPath string
	timeout  time.Duration
}

// NewCommand creates a one-shot command executor for the given binary.
func NewCommand(logger logx.Logger, execPath string, timeout time.Duration) *Command {
	return &Command{
		logger:   logger.With("exec_path", execPath),
		execPath: execPath,
		timeout:  timeout,
	}
}

// Output holds the captured result of a completed subprocess.
type Output struct {
	// Stdout captured standard output
	Stdout string

	// Stderr captured standard error
	Stderr string

	// ExitCode exit status of the process (0 on success)
	ExitCode int
}

// Run executes the command with the given arguments and captures its
// output. A non-zero exit status is NOT an error here: the caller decides
// what a failed exit means. Run returns an error only when the process
// could not be executed at all (binary missing, start failure) or the
// timeout expired.
func (c *Command) Run(ctx context.Context, args ...string) (*Output, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	c.logger.Info("executing command", "args", args, "timeout", c.timeout.String())

	cmd := exec.CommandContext(ctx, c.execPath, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	err := cmd.Run()
	duration := time.Since(start)

	out := &Output{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	if ctx.Err() == context.DeadlineExceeded {
		c.logger.Warn("command timed out", "duration", duration.String())
		return out, errors.Wrapf(errors.ErrProbeTimeout, "%s timed out after %s", c.execPath, c.timeout)
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			out.ExitCode = exitErr.ExitCode()
			c.logger.Warn("command exited with error",
				"exit_code", out.ExitCode,
				"duration", duration.String(),
			)
			return out, nil
		}
		// El binario no existe o no pudo arrancar
		c.logger.Warn("command could not run", "error", err.Error())
		return out, err
	}

	c.logger.Info("command completed", "duration", duration.String())
	return out, nil
}
