package main

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/donut/internal/bench"
	"github.com/san-kum/donut/internal/config"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	err := cmd.Execute()
	return out.String(), err
}

func effectiveConfig(t *testing.T, args ...string) *config.Config {
	t.Helper()
	out, err := execute(t, append([]string{"config"}, args...)...)
	if err != nil {
		t.Fatalf("config %v: %v", args, err)
	}
	cfg := &config.Config{}
	if err := yaml.Unmarshal([]byte(out), cfg); err != nil {
		t.Fatalf("config output is not yaml: %v\n%s", err, out)
	}
	return cfg
}

func TestConfigDefaults(t *testing.T) {
	got := effectiveConfig(t)
	if diff := cmp.Diff(config.DefaultConfig(), got); diff != "" {
		t.Errorf("default config mismatch (-want +got):\n%s", diff)
	}
}

func TestConfigPrecedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "donut.yaml")
	if err := os.WriteFile(path, []byte("height: 30\nk1: 12\n"), 0644); err != nil {
		t.Fatal(err)
	}

	got := effectiveConfig(t, "--preset", "small", "--config", path, "--k1", "9", "--mode", "optimized")

	want := config.GetPreset("small")
	want.Height = 30 // file over preset
	want.K1 = 9      // flag over file
	want.Mode = "optimized"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("effective config mismatch (-want +got):\n%s", diff)
	}
}

func TestInvalidInput(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown mode", []string{"--mode", "turbo", "--benchmark"}},
		{"bad integer", []string{"--width", "wide"}},
		{"zero step", []string{"--theta-step", "0", "--benchmark"}},
		{"unknown preset", []string{"--preset", "huge", "--benchmark"}},
		{"frame rate above one per nanosecond", []string{"--fps", "2000000000"}},
		{"missing config", []string{"--config", "/nonexistent/donut.yaml", "--benchmark"}},
		{"stray argument", []string{"spin"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := execute(t, tt.args...); err == nil {
				t.Errorf("expected error for %v", tt.args)
			}
		})
	}
}

func TestBenchmark(t *testing.T) {
	out, err := execute(t, "--benchmark", "--frames", "3", "--width", "20", "--height", "8", "--theta-step", "0.3")
	if err != nil {
		t.Fatalf("benchmark failed: %v", err)
	}
	for _, want := range []string{"Language: Go\n", "Frames: 3\n", "Total Time: ", "Avg Frame Time: ", "FPS: "} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q:\n%s", want, out)
		}
	}
}

func TestBenchmarkZeroFrames(t *testing.T) {
	out, err := execute(t, "--benchmark", "--frames", "0", "--plot")
	if err != nil {
		t.Fatalf("benchmark failed: %v", err)
	}
	if !strings.Contains(out, "Frames: 0\n") || !strings.Contains(out, "FPS: 0.00\n") {
		t.Errorf("unexpected report:\n%s", out)
	}
	if strings.Contains(out, "MEAN") {
		t.Error("no statistics expected without frames")
	}
}

func TestBenchmarkPlot(t *testing.T) {
	out, err := execute(t, "--benchmark", "--plot", "--frames", "5", "--width", "20", "--height", "8", "--phi-step", "0.1")
	if err != nil {
		t.Fatalf("benchmark failed: %v", err)
	}
	if !strings.Contains(out, "frame time (ms)") || !strings.Contains(out, "P95") {
		t.Errorf("expected plot and statistics:\n%s", out)
	}
}

func TestBenchmarkExport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bench.json")
	if _, err := execute(t, "--benchmark", "--frames", "2", "--width", "20", "--height", "8", "--export", path); err != nil {
		t.Fatalf("benchmark failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var got []bench.ExportData
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("export is not json: %v", err)
	}
	if len(got) != 1 || got[0].Frames != 2 || got[0].Mode != "baseline" {
		t.Errorf("unexpected export: %+v", got)
	}
}

func TestCompare(t *testing.T) {
	chart := filepath.Join(t.TempDir(), "compare.svg")
	out, err := execute(t, "compare", "--frames", "2", "--width", "20", "--height", "8", "--theta-step", "0.3", "--chart", chart)
	if err != nil {
		t.Fatalf("compare failed: %v", err)
	}
	if _, err := os.Stat(chart); err != nil {
		t.Errorf("chart not written: %v", err)
	}
	for _, want := range []string{"comparing modes (20x8, 2 frames)", "baseline", "optimized vs baseline"} {
		if !strings.Contains(out, want) {
			t.Errorf("compare output missing %q:\n%s", want, out)
		}
	}
}

func TestPresets(t *testing.T) {
	out, err := execute(t, "presets")
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range config.ListPresets() {
		if !strings.Contains(out, "  "+name+"\n") {
			t.Errorf("preset %s not listed:\n%s", name, out)
		}
	}
}
