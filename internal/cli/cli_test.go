package cli

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

const testTemplate = `0 minifig fixture
1 14 0 -24 0 1 0 0 0 1 0 0 0 1 3815.dat
1 7 0 -56 0 1 0 0 0 1 0 0 0 1 973.dat
`

func TestNew(t *testing.T) {
	c := New(io.Discard, log.InfoLevel)
	if c.Logger == nil {
		t.Fatal("New() should set a logger")
	}
}

func TestRootCommand(t *testing.T) {
	c := New(io.Discard, log.InfoLevel)
	root := c.RootCommand()

	if root.Use != appName {
		t.Errorf("root use = %q, want %q", root.Use, appName)
	}
	if !root.SilenceUsage {
		t.Error("root command should silence usage on errors")
	}

	want := map[string]bool{"build": false, "bom": false, "completion": false}
	for _, cmd := range root.Commands() {
		name := strings.Fields(cmd.Use)[0]
		if _, ok := want[name]; ok {
			want[name] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("root command missing subcommand %q", name)
		}
	}
}

func TestBuildCommand(t *testing.T) {
	dir := t.TempDir()
	templatePath := filepath.Join(dir, "minifig.ldr")
	if err := os.WriteFile(templatePath, []byte(testTemplate), 0o644); err != nil {
		t.Fatal(err)
	}
	outputPath := filepath.Join(dir, "out", "table.ldr")

	c := New(io.Discard, log.WarnLevel)
	root := c.RootCommand()
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"build", "--template", templatePath, "-o", outputPath})

	if err := root.Execute(); err != nil {
		t.Fatalf("build command failed: %v", err)
	}

	data, err := os.ReadFile(outputPath)
	if err != nil {
		t.Fatalf("read built model: %v", err)
	}
	if !strings.Contains(string(data), "0 !MODEL_ID ") {
		t.Error("built model missing header model ID")
	}
}

func TestBuildCommandDryRun(t *testing.T) {
	dir := t.TempDir()
	templatePath := filepath.Join(dir, "minifig.ldr")
	if err := os.WriteFile(templatePath, []byte(testTemplate), 0o644); err != nil {
		t.Fatal(err)
	}
	outputPath := filepath.Join(dir, "table.ldr")

	c := New(io.Discard, log.WarnLevel)
	root := c.RootCommand()
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"build", "--template", templatePath, "-o", outputPath, "--dry-run"})

	if err := root.Execute(); err != nil {
		t.Fatalf("build --dry-run failed: %v", err)
	}
	if _, err := os.Stat(outputPath); !os.IsNotExist(err) {
		t.Error("dry run should not write the artifact")
	}
}

func TestBuildCommandBadConfig(t *testing.T) {
	c := New(io.Discard, log.WarnLevel)
	root := c.RootCommand()
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"build", "-c", filepath.Join(t.TempDir(), "missing.toml")})

	if err := root.Execute(); err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestBOMCommand(t *testing.T) {
	dir := t.TempDir()
	templatePath := filepath.Join(dir, "minifig.ldr")
	if err := os.WriteFile(templatePath, []byte(testTemplate), 0o644); err != nil {
		t.Fatal(err)
	}
	modelPath := filepath.Join(dir, "table.ldr")

	c := New(io.Discard, log.WarnLevel)

	build := c.RootCommand()
	build.SetOut(io.Discard)
	build.SetErr(io.Discard)
	build.SetArgs([]string{"build", "--template", templatePath, "-o", modelPath})
	if err := build.Execute(); err != nil {
		t.Fatalf("build command failed: %v", err)
	}

	bom := c.RootCommand()
	bom.SetOut(io.Discard)
	bom.SetErr(io.Discard)
	bom.SetArgs([]string{"bom", "--summary", modelPath})
	if err := bom.Execute(); err != nil {
		t.Fatalf("bom command failed: %v", err)
	}
}

func TestBOMCommandMissingFile(t *testing.T) {
	c := New(io.Discard, log.WarnLevel)
	root := c.RootCommand()
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"bom", filepath.Join(t.TempDir(), "missing.ldr")})

	if err := root.Execute(); err == nil {
		t.Fatal("expected error for missing model file")
	}
}
