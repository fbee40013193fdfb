package llm

import (
	"context"
	"runtime"
	"strings"
	"testing"
	"time"
)

func requirePOSIX(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("test relies on POSIX shell tools")
	}
}

func TestFormatPrimarySucceeds(t *testing.T) {
	requirePOSIX(t)

	f := Formatter{Primary: []string{"cat"}}
	out, err := f.Format(context.Background(), "status report\n")
	if err != nil {
		t.Fatalf("Format: %v", err)
	}
	if strings.TrimSpace(out) != "status report" {
		t.Errorf("out = %q", out)
	}
}

func TestFormatFallsBackWhenPrimaryFails(t *testing.T) {
	requirePOSIX(t)

	f := Formatter{
		Primary:  []string{"false"},
		Fallback: []string{"cat"},
	}
	out, err := f.Format(context.Background(), "status report\n")
	if err != nil {
		t.Fatalf("expected fallback to succeed, got %v", err)
	}
	if strings.TrimSpace(out) != "status report" {
		t.Errorf("out = %q", out)
	}
}

func TestFormatFallsBackOnTimeout(t *testing.T) {
	requirePOSIX(t)

	f := Formatter{
		Primary:  []string{"sleep", "5"},
		Fallback: []string{"cat"},
		Timeout:  100 * time.Millisecond,
	}

	start := time.Now()
	out, err := f.Format(context.Background(), "status report\n")
	if err != nil {
		t.Fatalf("expected fallback to succeed, got %v", err)
	}
	if strings.TrimSpace(out) != "status report" {
		t.Errorf("out = %q", out)
	}
	if elapsed := time.Since(start); elapsed > 3*time.Second {
		t.Errorf("primary was not killed at the timeout, took %v", elapsed)
	}
}

func TestFormatReturnsRawTextWhenBothFail(t *testing.T) {
	requirePOSIX(t)

	f := Formatter{
		Primary:  []string{"false"},
		Fallback: []string{"false"},
	}
	out, err := f.Format(context.Background(), "raw text survives\n")
	if err == nil {
		t.Fatal("expected an error when both tools fail")
	}
	if out != "raw text survives\n" {
		t.Errorf("raw text not surfaced, got %q", out)
	}
}

func TestFormatNoCommandConfigured(t *testing.T) {
	f := Formatter{}
	out, err := f.Format(context.Background(), "text")
	if err == nil {
		t.Fatal("expected an error with no commands configured")
	}
	if out != "text" {
		t.Errorf("raw text not surfaced, got %q", out)
	}
}

func TestFormatEmptyOutputTriggersFallback(t *testing.T) {
	requirePOSIX(t)

	f := Formatter{
		Primary:  []string{"true"}, // exits 0 with no output
		Fallback: []string{"cat"},
	}
	out, err := f.Format(context.Background(), "status report\n")
	if err != nil {
		t.Fatalf("expected fallback to succeed, got %v", err)
	}
	if strings.TrimSpace(out) != "status report" {
		t.Errorf("out = %q", out)
	}
}
