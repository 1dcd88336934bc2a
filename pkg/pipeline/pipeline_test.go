package pipeline

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/lpauloin/BrickTablePlanner/pkg/errors"
	"github.com/lpauloin/BrickTablePlanner/pkg/scene"
)

const testTemplate = `0 minifig fixture
1 14 0 -24 0 1 0 0 0 1 0 0 0 1 3815.dat
1 7 0 -56 0 1 0 0 0 1 0 0 0 1 973.dat
`

// testConfig returns a small valid config rooted in a temp dir.
func testConfig(t *testing.T) Config {
	t.Helper()
	dir := t.TempDir()

	templatePath := filepath.Join(dir, "minifig.ldr")
	if err := os.WriteFile(templatePath, []byte(testTemplate), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := DefaultConfig()
	cfg.TemplatePath = templatePath
	cfg.OutputPath = filepath.Join(dir, "build", "table.ldr")
	cfg.Groups.Count = 2
	return cfg
}

func testRunner() *Runner {
	return NewRunner(log.New(io.Discard))
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Scene.Columns != 3 || cfg.Scene.Rows != 5 {
		t.Errorf("scene grid = %dx%d, want 3x5", cfg.Scene.Columns, cfg.Scene.Rows)
	}
	if cfg.Groups.Count != 10 {
		t.Errorf("group count = %d, want 10", cfg.Groups.Count)
	}
	if len(cfg.Texts) != 2 || cfg.Texts[0].Value != "SOPHIE" || cfg.Texts[1].Value != "LAURENT" {
		t.Errorf("unexpected default texts: %+v", cfg.Texts)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scene.toml")
	body := `
title = "Test table"

[scene]
columns = 4
rows = 4

[groups]
count = 6

[[text]]
value = "HI"
plate_row = 0
plate_col = 2
center = true
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Title != "Test table" {
		t.Errorf("title = %q, want %q", cfg.Title, "Test table")
	}
	if cfg.Scene.Columns != 4 || cfg.Scene.Rows != 4 {
		t.Errorf("scene grid = %dx%d, want 4x4", cfg.Scene.Columns, cfg.Scene.Rows)
	}
	if cfg.Groups.Count != 6 {
		t.Errorf("group count = %d, want 6", cfg.Groups.Count)
	}
	// Unset fields keep their defaults.
	if cfg.Groups.SubGridCols != DefaultSubGridCols {
		t.Errorf("subgrid cols = %d, want default %d", cfg.Groups.SubGridCols, DefaultSubGridCols)
	}
	if cfg.TemplatePath != DefaultTemplatePath {
		t.Errorf("template path = %q, want default %q", cfg.TemplatePath, DefaultTemplatePath)
	}
	// An explicit text list replaces the default one.
	if len(cfg.Texts) != 1 || cfg.Texts[0].Value != "HI" {
		t.Errorf("unexpected texts: %+v", cfg.Texts)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	if err == nil {
		t.Fatal("expected error for missing config")
	}
	if code := errors.GetCode(err); code != errors.ErrCodeInvalidPath {
		t.Errorf("error code = %v, want %v", code, errors.ErrCodeInvalidPath)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero columns", func(c *Config) { c.Scene.Columns = 0 }},
		{"negative group count", func(c *Config) { c.Groups.Count = -1 }},
		{"zero groups columns", func(c *Config) { c.Groups.Columns = 0 }},
		{"zero subgrid", func(c *Config) { c.Groups.SubGridRows = 0 }},
		{"missing template", func(c *Config) { c.TemplatePath = "" }},
		{"text outside grid", func(c *Config) { c.Texts[0].PlateCol = 9 }},
		{"empty output", func(c *Config) { c.OutputPath = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if code := errors.GetCode(err); code != errors.ErrCodeInvalidConfig {
				t.Errorf("error code = %v, want %v", code, errors.ErrCodeInvalidConfig)
			}
		})
	}
}

func TestBuild(t *testing.T) {
	cfg := testConfig(t)
	result, err := testRunner().Build(context.Background(), cfg)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if _, err := uuid.Parse(result.ModelID); err != nil {
		t.Errorf("model ID %q is not a uuid: %v", result.ModelID, err)
	}
	if result.Lines[0] != "0 "+cfg.Title {
		t.Errorf("first line = %q, want title comment", result.Lines[0])
	}

	body := result.Body()
	for _, marker := range []string{
		scene.SectionMarker(SectionBaseplates),
		scene.SectionMarker(SectionGroups),
		scene.SectionMarker(SectionText),
		"0 !MODEL_ID " + result.ModelID,
	} {
		if !strings.Contains(body, marker) {
			t.Errorf("model body missing %q", marker)
		}
	}

	placements := 0
	for _, line := range result.Lines {
		if scene.IsType1(line) {
			placements++
		}
	}
	if placements != result.Stats.Placements {
		t.Errorf("type-1 lines = %d, stats say %d", placements, result.Stats.Placements)
	}
	// 15 baseplates, plus groups and texts.
	if placements <= cfg.Scene.Columns*cfg.Scene.Rows {
		t.Errorf("placements = %d, expected more than the %d baseplates",
			placements, cfg.Scene.Columns*cfg.Scene.Rows)
	}
	if result.Stats.TemplateParts != 2 {
		t.Errorf("template parts = %d, want 2", result.Stats.TemplateParts)
	}
}

func TestBuildWithoutGroups(t *testing.T) {
	cfg := testConfig(t)
	cfg.Groups.Count = 0
	cfg.TemplatePath = "" // no groups, no template needed

	result, err := testRunner().Build(context.Background(), cfg)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if strings.Contains(result.Body(), scene.SectionMarker(SectionGroups)) {
		t.Error("model should not contain a groups section")
	}
	if result.Stats.TemplateParts != 0 {
		t.Errorf("template parts = %d, want 0", result.Stats.TemplateParts)
	}
}

func TestBuildUnsupportedText(t *testing.T) {
	cfg := testConfig(t)
	cfg.Texts = []TextConfig{{Value: "Ünsupported", Center: true}}

	_, err := testRunner().Build(context.Background(), cfg)
	if err == nil {
		t.Fatal("expected error for unsupported character")
	}
	if !errors.Is(err, errors.ErrCodeUnsupportedCharacter) {
		t.Errorf("error = %v, want code %v", err, errors.ErrCodeUnsupportedCharacter)
	}
}

func TestBuildUnsupportedFrameSpan(t *testing.T) {
	cfg := testConfig(t)
	cfg.Groups.FrameWidth = 7

	_, err := testRunner().Build(context.Background(), cfg)
	if err == nil {
		t.Fatal("expected error for unsupported frame span")
	}
	if !errors.Is(err, errors.ErrCodeUnsupportedSpan) {
		t.Errorf("error = %v, want code %v", err, errors.ErrCodeUnsupportedSpan)
	}
}

func TestExport(t *testing.T) {
	cfg := testConfig(t)
	runner := testRunner()

	result, err := runner.Build(context.Background(), cfg)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if err := runner.Export(context.Background(), cfg.OutputPath, result); err != nil {
		t.Fatalf("Export: %v", err)
	}

	data, err := os.ReadFile(cfg.OutputPath)
	if err != nil {
		t.Fatalf("read exported model: %v", err)
	}
	if string(data) != result.Body() {
		t.Error("exported file does not match the built model body")
	}

	// The atomic write must not leave temporary files behind.
	entries, err := os.ReadDir(filepath.Dir(cfg.OutputPath))
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range entries {
		if strings.Contains(e.Name(), ".tmp-") {
			t.Errorf("leftover temporary file %s", e.Name())
		}
	}
}
