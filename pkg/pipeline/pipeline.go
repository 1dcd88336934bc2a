// Package pipeline orchestrates the complete model build: load the
// minifig template, compose every scene layer into placement records, and
// export the finished LDraw model.
//
// By centralizing this logic, the CLI and any embedding program share one
// build path with consistent behavior.
//
// # Usage
//
// Create a Runner and build a model from a config:
//
//	runner := pipeline.NewRunner(logger)
//	result, err := runner.Build(ctx, pipeline.DefaultConfig())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	err = runner.Export(ctx, cfg.OutputPath, result)
//
// Build composes everything in memory; Export writes the artifact
// atomically, so a failed build never leaves a partial model file on
// disk.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/lpauloin/BrickTablePlanner/pkg/errors"
	"github.com/lpauloin/BrickTablePlanner/pkg/observability"
	"github.com/lpauloin/BrickTablePlanner/pkg/scene"
	"github.com/lpauloin/BrickTablePlanner/pkg/scene/layout"
	"github.com/lpauloin/BrickTablePlanner/pkg/scene/template"
)

// Section names emitted as markers into the model, in build order.
const (
	SectionBaseplates = "BASEPLATES"
	SectionGroups     = "GROUPS"
	SectionText       = "TEXT"
)

// Stats carries timing and volume figures of one build.
type Stats struct {
	TemplateParts int
	Placements    int

	TemplateTime time.Duration
	ComposeTime  time.Duration
	ExportTime   time.Duration
}

// Result is the outcome of a build: the full model line by line, ready
// to be exported or inspected.
type Result struct {
	// ModelID uniquely identifies this build; it is embedded in the
	// model header.
	ModelID string

	Lines []string
	Stats Stats
}

// Body returns the serialized model as a single string.
func (r *Result) Body() string {
	return strings.Join(r.Lines, "\n") + "\n"
}

// Runner executes builds. It is stateless apart from its logger, so one
// Runner can serve any number of sequential builds.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. If logger is nil the default logger is
// used.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Build composes the complete model described by cfg into memory.
func (r *Runner) Build(ctx context.Context, cfg Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	result := &Result{ModelID: uuid.NewString()}
	sceneCtx := scene.Context{GroundY: cfg.Scene.GroundY}

	result.Lines = append(result.Lines,
		"0 "+cfg.Title,
		"0 Name: "+filepath.Base(cfg.OutputPath),
		"0 !MODEL_ID "+result.ModelID,
		"0",
	)

	var tpl *template.Template
	if cfg.Groups.Count > 0 {
		templateStart := time.Now()
		loaded, err := template.LoadFile(cfg.TemplatePath)
		observability.Build().OnTemplateLoad(ctx, cfg.TemplatePath, lenOrZero(loaded), time.Since(templateStart), err)
		if err != nil {
			return nil, err
		}
		loaded.Normalize()
		tpl = loaded
		result.Stats.TemplateParts = tpl.Len()
		result.Stats.TemplateTime = time.Since(templateStart)

		r.Logger.Info("loaded template",
			"path", cfg.TemplatePath,
			"parts", tpl.Len(),
			"duration", result.Stats.TemplateTime)
	}

	composeStart := time.Now()

	if err := r.composeSection(ctx, result, SectionBaseplates, func() ([]scene.Placement, error) {
		return layout.BaseplateGrid(sceneCtx, cfg.Scene.Columns, cfg.Scene.Rows, cfg.Scene.BaseplateColor, 0, 0), nil
	}); err != nil {
		return nil, err
	}

	if cfg.Groups.Count > 0 {
		grid := layout.GridSpec{
			Columns:   cfg.Groups.Columns,
			Rows:      cfg.Scene.Rows,
			RowOffset: 1,
		}
		spec := layout.GroupSpec{
			Cols:        cfg.Groups.SubGridCols,
			Rows:        cfg.Groups.SubGridRows,
			Spacing:     cfg.Groups.Spacing,
			FrameWidth:  cfg.Groups.FrameWidth,
			FrameHeight: cfg.Groups.FrameHeight,
			Color:       cfg.Scene.AccentColor,
		}
		if err := r.composeSection(ctx, result, SectionGroups, func() ([]scene.Placement, error) {
			return layout.GroupsGrid(sceneCtx, tpl, grid, spec, cfg.Groups.Count)
		}); err != nil {
			return nil, err
		}
	}

	if len(cfg.Texts) > 0 {
		if err := r.composeSection(ctx, result, SectionText, func() ([]scene.Placement, error) {
			var out []scene.Placement
			for _, txt := range cfg.Texts {
				placed, err := layout.TextOnBaseplate(sceneCtx, layout.TextSpec{
					Text:     txt.Value,
					PlateRow: txt.PlateRow,
					PlateCol: txt.PlateCol,
					GridRows: cfg.Scene.Rows,
					Color:    cfg.Scene.AccentColor,
					Center:   txt.Center,
					Margin:   txt.Margin,
					DeltaX:   txt.DeltaX,
					DeltaZ:   txt.DeltaZ,
				})
				if err != nil {
					return nil, err
				}
				out = append(out, placed...)
			}
			return out, nil
		}); err != nil {
			return nil, err
		}
	}

	result.Stats.ComposeTime = time.Since(composeStart)

	r.Logger.Info("composed model",
		"placements", result.Stats.Placements,
		"duration", result.Stats.ComposeTime)

	return result, nil
}

// composeSection runs one compose step, appends its marker and encoded
// placements to the result, and fires the build hooks around it.
func (r *Runner) composeSection(ctx context.Context, result *Result, name string, compose func() ([]scene.Placement, error)) error {
	observability.Build().OnComposeStart(ctx, name)
	start := time.Now()

	placements, err := compose()
	observability.Build().OnComposeComplete(ctx, name, len(placements), time.Since(start), err)
	if err != nil {
		return fmt.Errorf("compose %s: %w", strings.ToLower(name), err)
	}

	result.Lines = append(result.Lines, scene.SectionMarker(name))
	for _, p := range placements {
		result.Lines = append(result.Lines, scene.EncodeLine(p))
	}
	result.Stats.Placements += len(placements)

	r.Logger.Debug("composed section",
		"section", name,
		"placements", len(placements),
		"duration", time.Since(start))
	return nil
}

// Export writes the model to path atomically: the body goes to a
// temporary file in the target directory first and is renamed into place
// only when fully written.
func (r *Runner) Export(ctx context.Context, path string, result *Result) error {
	observability.Build().OnExportStart(ctx, path)
	start := time.Now()

	err := writeAtomic(path, []byte(result.Body()))
	observability.Build().OnExportComplete(ctx, path, len(result.Body()), time.Since(start), err)
	if err != nil {
		return err
	}

	result.Stats.ExportTime = time.Since(start)
	r.Logger.Info("exported model",
		"path", path,
		"placements", result.Stats.Placements,
		"duration", result.Stats.ExportTime)
	return nil
}

func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "create output directory %s", dir)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "create temporary file in %s", dir)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "write %s", tmp.Name())
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "close %s", tmp.Name())
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "rename into %s", path)
	}
	return nil
}

func lenOrZero(t *template.Template) int {
	if t == nil {
		return 0
	}
	return t.Len()
}
