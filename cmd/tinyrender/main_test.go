package main

import (
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/user/tinyrender/pkg/config"
	"github.com/user/tinyrender/pkg/orchestrator"
	"github.com/user/tinyrender/pkg/pipeline"
)

func TestRenderCmd_ApplyOverrides(t *testing.T) {
	output := "custom.y4m"
	width := 320
	fps := 24
	duration := 1.5
	level := "debug"

	cmd := &RenderCmd{
		Output:   &output,
		Width:    &width,
		FPS:      &fps,
		Duration: &duration,
		LogLevel: &level,
		Debug:    true,
	}

	cfg := config.Defaults()
	cmd.applyOverrides(&cfg)

	if cfg.OutputPath != "custom.y4m" {
		t.Errorf("expected output custom.y4m, got %s", cfg.OutputPath)
	}
	if cfg.Width != 320 {
		t.Errorf("expected width 320, got %d", cfg.Width)
	}
	// Not overridden
	if cfg.Height != 900 {
		t.Errorf("expected default height 900, got %d", cfg.Height)
	}
	if cfg.FPS != 24 || cfg.DurationSec != 1.5 {
		t.Errorf("expected 24fps for 1.5s, got %dfps for %gs", cfg.FPS, cfg.DurationSec)
	}
	if !cfg.Debug {
		t.Error("expected debug to be enabled")
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("expected log level debug, got %s", cfg.LogLevel)
	}
}

func TestRenderCmd_QuietWins(t *testing.T) {
	level := "debug"
	cmd := &RenderCmd{LogLevel: &level, Quiet: true}

	cfg := config.Defaults()
	cmd.applyOverrides(&cfg)

	if cfg.LogLevel != "none" {
		t.Errorf("expected log level none, got %s", cfg.LogLevel)
	}
}

func TestBuildSummary(t *testing.T) {
	result := orchestrator.RunResult{
		OutputPath:   "out.y4m",
		Width:        4,
		Height:       2,
		FPS:          10,
		FrameCount:   30,
		DurationMs:   3000,
		FileSize:     935,
		HeaderSize:   35,
		FrameSize:    30,
		ExpectedSize: 935,
		Segments: []pipeline.Segment{
			{UntilSec: 1, Background: color.RGBA{R: 255, A: 255}},
			{UntilSec: 2, Background: color.RGBA{G: 0x80, A: 255}, Label: "hi", ImagePath: "a.png"},
		},
	}

	s := buildSummary(result)

	if s.Stream.Path != "out.y4m" || s.Stream.FPS != 10 {
		t.Errorf("unexpected stream: %+v", s.Stream)
	}
	if !s.Output.Complete() {
		t.Error("expected output to be complete")
	}
	if len(s.Segments) != 2 {
		t.Fatalf("expected 2 segments, got %d", len(s.Segments))
	}
	if s.Segments[0].Background != "#ff0000" {
		t.Errorf("expected #ff0000, got %s", s.Segments[0].Background)
	}
	if s.Segments[1].Background != "#008000" || s.Segments[1].Image != "a.png" {
		t.Errorf("unexpected segment: %+v", s.Segments[1])
	}
}

func TestRenderCmd_Run(t *testing.T) {
	dir := t.TempDir()
	output := filepath.Join(dir, "out", "demo.y4m")
	summary := filepath.Join(dir, "summary.md")
	width, height, fps := 8, 4, 10

	cmd := &RenderCmd{
		Output:  &output,
		Width:   &width,
		Height:  &height,
		FPS:     &fps,
		Summary: summary,
		Quiet:   true,
	}
	if err := cmd.Run(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("expected output file: %v", err)
	}
	header := "YUV4MPEG2 W8 H4 F10:1 Ip A1:1 C444\n"
	if !strings.HasPrefix(string(data), header) {
		t.Errorf("unexpected header: %q", data[:len(header)])
	}
	// 3 s at 10 fps
	expected := len(header) + 30*(6+3*32)
	if len(data) != expected {
		t.Errorf("expected %d bytes, got %d", expected, len(data))
	}

	md, err := os.ReadFile(summary)
	if err != nil {
		t.Fatalf("expected summary file: %v", err)
	}
	if !strings.Contains(string(md), output) {
		t.Error("expected summary to mention the output path")
	}
}

func TestRenderCmd_Run_InvalidConfig(t *testing.T) {
	output := filepath.Join(t.TempDir(), "bad.y4m")
	width := 0

	cmd := &RenderCmd{Output: &output, Width: &width, Quiet: true}
	if err := cmd.Run(); err == nil {
		t.Fatal("expected error for zero width")
	}
	if _, err := os.Stat(output); !os.IsNotExist(err) {
		t.Error("expected no output file for invalid configuration")
	}
}
