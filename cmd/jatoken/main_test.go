// Package main provides tests for the jatoken CLI.
package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/leapstack-labs/jatoken/internal/cli"
	"github.com/leapstack-labs/jatoken/internal/testutil"
)

func TestVersionCommand(t *testing.T) {
	testutil.Isolate(t)

	cmd := cli.NewRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"version"})

	if err := cmd.Execute(); err != nil {
		t.Errorf("version command error = %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "jatoken") {
		t.Errorf("version output should contain 'jatoken', got: %s", output)
	}
}

func TestHelpCommand(t *testing.T) {
	cmd := cli.NewRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"--help"})

	if err := cmd.Execute(); err != nil {
		t.Errorf("help command error = %v", err)
	}

	output := buf.String()
	for _, expected := range []string{"dicts", "version", "--stream"} {
		if !strings.Contains(output, expected) {
			t.Errorf("help output should contain '%s', got: %s", expected, output)
		}
	}
}

func TestTokenizeStdin(t *testing.T) {
	testutil.Isolate(t)

	cmd := cli.NewRootCmd()
	out := new(bytes.Buffer)
	cmd.SetIn(strings.NewReader("東京都に住んでいます。"))
	cmd.SetOut(out)
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("tokenize error = %v", err)
	}

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	if len(lines) < 2 {
		t.Fatalf("expected several tokens, got: %q", out.String())
	}
	if got := strings.Join(lines, ""); got != "東京都に住んでいます。" {
		t.Errorf("tokens should concatenate back to the input, got %q", got)
	}
}
