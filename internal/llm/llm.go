// Package llm runs an external LLM CLI to rewrite raw report text into
// readable prose. The tool is an external collaborator that may fail or
// hang, so every attempt is time-boxed and a fallback tool is tried before
// giving up; callers always get text back, raw if both tools fail.
package llm

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// DefaultTimeout bounds each formatter attempt when no timeout is configured.
const DefaultTimeout = 10 * time.Second

// Formatter invokes external CLI tools to reformat text.
type Formatter struct {
	// Primary and Fallback are argv vectors. The text to reformat is fed
	// on stdin and the reformatted text is read from stdout.
	Primary  []string
	Fallback []string
	// Timeout bounds each attempt; DefaultTimeout when zero.
	Timeout time.Duration
}

// Format runs the primary tool and, if it fails or exceeds the timeout,
// the fallback tool. When both fail, the raw input text is returned along
// with the error so callers can surface it for manual handling.
func (f Formatter) Format(ctx context.Context, text string) (string, error) {
	out, primaryErr := f.run(ctx, f.Primary, text)
	if primaryErr == nil {
		return out, nil
	}

	out, fallbackErr := f.run(ctx, f.Fallback, text)
	if fallbackErr == nil {
		return out, nil
	}

	return text, fmt.Errorf("formatter failed (primary: %v; fallback: %v)", primaryErr, fallbackErr)
}

// run executes one tool with the configured timeout. An empty stdout is
// treated as a failure so the fallback gets a chance.
func (f Formatter) run(ctx context.Context, argv []string, text string) (string, error) {
	if len(argv) == 0 {
		return "", fmt.Errorf("no command configured")
	}

	timeout := f.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Stdin = strings.NewReader(text)

	var stdout bytes.Buffer
	cmd.Stdout = &stdout

	if err := cmd.Run(); err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return "", fmt.Errorf("%s timed out after %s", argv[0], timeout)
		}
		return "", fmt.Errorf("%s: %w", argv[0], err)
	}

	out := strings.TrimSpace(stdout.String())
	if out == "" {
		return "", fmt.Errorf("%s produced no output", argv[0])
	}
	return out + "\n", nil
}
