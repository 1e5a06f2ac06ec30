package cli

import (
	"bytes"
	"context"
	stderrors "errors"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/fractals/pkg/errors"
	"github.com/matzehuels/fractals/pkg/observability"
	"github.com/matzehuels/fractals/pkg/preset"
	"github.com/matzehuels/fractals/pkg/terminal"
)

func TestLogHooks(t *testing.T) {
	sizeErr := errors.New(errors.ErrCodeTerminalSize, "unable to get terminal size")
	writeErr := stderrors.New("broken pipe")

	tests := []struct {
		name  string
		event func(logHooks)
		want  []string // empty means nothing is logged
	}{
		{
			name:  "size known",
			event: func(h logHooks) { h.OnSize(context.Background(), 120, 30, nil) },
		},
		{
			name:  "size unavailable",
			event: func(h logHooks) { h.OnSize(context.Background(), 0, 0, sizeErr) },
			want:  []string{"DEBU", "terminal size unavailable", "unable to get terminal size"},
		},
		{
			name:  "render started",
			event: func(h logHooks) { h.OnRenderStart(context.Background(), "julia", 90, 29) },
			want:  []string{"DEBU", "render started", "kind=julia", "width=90", "height=29"},
		},
		{
			name: "render finished",
			event: func(h logHooks) {
				h.OnRenderComplete(context.Background(), "mandelbrot", 2610, 5*time.Millisecond, nil)
			},
			want: []string{"DEBU", "render finished", "kind=mandelbrot", "pixels=2610"},
		},
		{
			name: "write failed",
			event: func(h logHooks) {
				h.OnRenderComplete(context.Background(), "mandelbrot", 2610, time.Millisecond, writeErr)
			},
			want: []string{"DEBU", "render failed", "kind=mandelbrot", "broken pipe"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var debug, info bytes.Buffer
			tt.event(logHooks{logger: newLogger(&debug, log.DebugLevel)})
			tt.event(logHooks{logger: newLogger(&info, log.InfoLevel)})

			if info.Len() != 0 {
				t.Errorf("info level should stay quiet, got %q", info.String())
			}
			if len(tt.want) == 0 && debug.Len() != 0 {
				t.Errorf("expected no output, got %q", debug.String())
			}
			for _, w := range tt.want {
				if !strings.Contains(debug.String(), w) {
					t.Errorf("log = %q, missing %q", debug.String(), w)
				}
			}
			if strings.Contains(debug.String(), "ERRO") {
				t.Errorf("render events must not log at error level: %q", debug.String())
			}
		})
	}
}

func TestRunRenderReportsRaster(t *testing.T) {
	defer observability.Reset()

	tests := []struct {
		name string
		want string
	}{
		{preset.Mandelbrot, "Rendered mandelbrot on 90x29 raster"},
		{preset.Julia, "Rendered julia on 90x29 raster"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out, logs bytes.Buffer
			c := &CLI{Logger: newLogger(&logs, log.DebugLevel), Sizer: terminal.Fixed{Width: 120, Height: 30}}
			ctx := withLogger(context.Background(), c.Logger)

			if err := c.runRender(ctx, tt.name, &out); err != nil {
				t.Fatalf("runRender() error = %v", err)
			}
			if !strings.Contains(logs.String(), tt.want) {
				t.Errorf("log = %q, missing %q", logs.String(), tt.want)
			}
			if !strings.Contains(logs.String(), "drawing took") {
				t.Errorf("log = %q, missing render time", logs.String())
			}
		})
	}
}

func TestRunRenderQuietAtInfo(t *testing.T) {
	var out, logs bytes.Buffer
	c := &CLI{Logger: newLogger(&logs, log.InfoLevel), Sizer: terminal.Fixed{Width: 80, Height: 24}}

	if err := c.runRender(withLogger(context.Background(), c.Logger), preset.Julia, &out); err != nil {
		t.Fatalf("runRender() error = %v", err)
	}
	if logs.Len() != 0 {
		t.Errorf("a normal render should log nothing, got %q", logs.String())
	}
	if out.Len() == 0 {
		t.Error("the picture should still be written")
	}
}

func TestVerboseFlag(t *testing.T) {
	defer observability.Reset()

	tests := []struct {
		name      string
		args      []string
		wantDebug bool
	}{
		{"default", []string{}, false},
		{"short", []string{"-v"}, true},
		{"long", []string{"--verbose"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out, logs bytes.Buffer
			c := &CLI{Logger: newLogger(&logs, LogInfo), Sizer: terminal.Fixed{Width: 120, Height: 30}}
			cmd := c.Command(preset.Mandelbrot)
			cmd.SetOut(&out)
			cmd.SetArgs(tt.args)

			if err := cmd.ExecuteContext(context.Background()); err != nil {
				t.Fatalf("Execute() error = %v", err)
			}

			gotDebug := strings.Contains(logs.String(), "fitted raster")
			if gotDebug != tt.wantDebug {
				t.Errorf("debug output = %v, want %v (log %q)", gotDebug, tt.wantDebug, logs.String())
			}
			if gotDebug && !strings.Contains(logs.String(), "width=90") {
				t.Errorf("fitted raster should be 90 wide, log %q", logs.String())
			}
			if out.Len() == 0 {
				t.Error("the picture should be written")
			}
		})
	}
}

func TestVerboseFailureSingleDiagnostic(t *testing.T) {
	defer observability.Reset()

	var out, logs, diag bytes.Buffer
	c := &CLI{Logger: newLogger(&logs, LogInfo), Sizer: failingSizer{}}
	cmd := c.Command(preset.Julia)
	cmd.SetOut(&out)
	cmd.SetArgs([]string{})

	err := cmd.ExecuteContext(context.Background())
	if err == nil {
		t.Fatal("Execute() should fail without a terminal")
	}
	PrintError(&diag, err)

	if logs.Len() != 0 {
		t.Errorf("the logger should stay quiet at info level, got %q", logs.String())
	}
	if n := strings.Count(diag.String(), "\n"); n != 1 {
		t.Errorf("want exactly one diagnostic line, got %q", diag.String())
	}
}

func TestLoggerFromContext(t *testing.T) {
	var buf bytes.Buffer
	custom := newLogger(&buf, log.DebugLevel)

	if got := loggerFromContext(withLogger(context.Background(), custom)); got != custom {
		t.Error("loggerFromContext should return the attached logger")
	}
	if got := loggerFromContext(context.Background()); got != log.Default() {
		t.Error("loggerFromContext should fall back to log.Default()")
	}
}

func TestProgress(t *testing.T) {
	var debug, info bytes.Buffer

	newProgress(newLogger(&debug, log.DebugLevel)).donef("Rendered %s on %dx%d raster", "julia", 30, 9)
	newProgress(newLogger(&info, log.InfoLevel)).donef("Rendered %s", "julia")

	if !strings.Contains(debug.String(), "Rendered julia on 30x9 raster (") {
		t.Errorf("donef() = %q, want message followed by elapsed time", debug.String())
	}
	if info.Len() != 0 {
		t.Errorf("donef() should not log at info level, got %q", info.String())
	}
}
