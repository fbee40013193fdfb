package cmd

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/askeland/standup/internal/config"
	"github.com/askeland/standup/internal/llm"
)

// Deps holds external dependencies for CLI commands, enabling testability.
type Deps struct {
	Stdout io.Writer
	Stderr io.Writer
	Stdin  io.Reader
	Exit   func(code int)
	// LoadConfig resolves the effective configuration.
	LoadConfig func() (config.Config, error)
	// Now supplies the current time; report date ranges hang off it.
	Now func() time.Time
	// Format pipes raw report text through the external formatter.
	Format func(ctx context.Context, cfg config.Formatter, text string) (string, error)
}

// DefaultDeps returns the default production dependencies.
func DefaultDeps() *Deps {
	return &Deps{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Stdin:  os.Stdin,
		Exit:   os.Exit,
		LoadConfig: func() (config.Config, error) {
			path, err := config.GetConfigPath()
			if err != nil {
				return config.DefaultConfig(), err
			}
			return config.Load(path)
		},
		Now: time.Now,
		Format: func(ctx context.Context, cfg config.Formatter, text string) (string, error) {
			f := llm.Formatter{
				Primary:  cfg.Primary,
				Fallback: cfg.Fallback,
				Timeout:  time.Duration(cfg.TimeoutSeconds) * time.Second,
			}
			return f.Format(ctx, text)
		},
	}
}

// deps is the global dependencies instance used by commands.
// In production, this is DefaultDeps(). Tests can replace it.
var deps = DefaultDeps()

// SetDeps sets the global dependencies (for testing).
func SetDeps(d *Deps) {
	deps = d
}

// ResetDeps resets dependencies to defaults (for testing cleanup).
func ResetDeps() {
	deps = DefaultDeps()
}
