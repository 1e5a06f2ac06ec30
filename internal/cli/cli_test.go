package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/fractals/pkg/errors"
	"github.com/matzehuels/fractals/pkg/observability"
	"github.com/matzehuels/fractals/pkg/preset"
	"github.com/matzehuels/fractals/pkg/terminal"
)

type failingSizer struct{}

func (failingSizer) Size() (int, int, error) {
	return 0, 0, errors.New(errors.ErrCodeTerminalSize, "unable to get terminal size")
}

func newTestCLI(sizer terminal.Sizer, logs *bytes.Buffer) *CLI {
	return &CLI{Logger: newLogger(logs, log.DebugLevel), Sizer: sizer}
}

func TestRootCommandRenders(t *testing.T) {
	defer observability.Reset()

	for _, name := range []string{preset.Mandelbrot, preset.Julia} {
		t.Run(name, func(t *testing.T) {
			var out, logs bytes.Buffer
			cmd := newTestCLI(terminal.Fixed{Width: 120, Height: 30}, &logs).RootCommand(name)
			cmd.SetOut(&out)
			cmd.SetArgs([]string{})

			if err := cmd.ExecuteContext(context.Background()); err != nil {
				t.Fatalf("Execute() error = %v", err)
			}

			rows := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
			if len(rows) != 29 {
				t.Fatalf("got %d rows, want 29", len(rows))
			}
			for i, row := range rows {
				if n := utf8.RuneCountInString(row); n != 90 {
					t.Fatalf("row %d has %d runes, want 90", i, n)
				}
			}

			if !strings.Contains(logs.String(), "render finished") {
				t.Errorf("debug log should report the render, got %q", logs.String())
			}
		})
	}
}

func TestRootCommandTerminalUnavailable(t *testing.T) {
	defer observability.Reset()

	var out, logs bytes.Buffer
	cmd := newTestCLI(failingSizer{}, &logs).RootCommand(preset.Mandelbrot)
	cmd.SetOut(&out)
	cmd.SetArgs([]string{})

	err := cmd.ExecuteContext(context.Background())
	if !errors.Is(err, errors.ErrCodeTerminalSize) {
		t.Fatalf("Execute() error = %v, want %s", err, errors.ErrCodeTerminalSize)
	}
	if out.Len() != 0 {
		t.Errorf("no picture expected, got %q", out.String())
	}
}

func TestRootCommandRejectsArgs(t *testing.T) {
	var out, logs bytes.Buffer
	cmd := newTestCLI(terminal.Fixed{Width: 120, Height: 30}, &logs).RootCommand(preset.Julia)
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--width", "10"})

	if err := cmd.Execute(); err == nil {
		t.Error("render flags should be rejected")
	}

	cmd = newTestCLI(terminal.Fixed{Width: 120, Height: 30}, &logs).RootCommand(preset.Julia)
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"extra"})
	if err := cmd.Execute(); err == nil {
		t.Error("positional arguments should be rejected")
	}
}

func TestRootCommandVersion(t *testing.T) {
	var out, logs bytes.Buffer
	cmd := newTestCLI(terminal.Fixed{Width: 120, Height: 30}, &logs).RootCommand(preset.Mandelbrot)
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--version"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.HasPrefix(out.String(), "mandelbrot version ") {
		t.Errorf("version output = %q", out.String())
	}
}

func TestPrintError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want []string
	}{
		{
			name: "structured",
			err:  errors.New(errors.ErrCodeTerminalSize, "unable to get terminal size"),
			want: []string{iconError, "unable to get terminal size", "TERMINAL_SIZE"},
		},
		{
			name: "plain",
			err:  context.DeadlineExceeded,
			want: []string{iconError, "context deadline exceeded"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			PrintError(&buf, tt.err)
			for _, w := range tt.want {
				if !strings.Contains(buf.String(), w) {
					t.Errorf("PrintError() = %q, missing %q", buf.String(), w)
				}
			}
			if !strings.HasSuffix(buf.String(), "\n") {
				t.Error("PrintError() should end with a newline")
			}
		})
	}
}
