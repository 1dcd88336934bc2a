package pipeline

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/lpauloin/BrickTablePlanner/pkg/errors"
)

// Default scene parameters, matching the reference table model: a 3x5
// baseplate grid carrying ten framed groups and two centered name texts.
const (
	DefaultGridColumns = 3
	DefaultGridRows    = 5

	DefaultGroupCount     = 10
	DefaultGroupSpacing   = 8
	DefaultSubGridCols    = 4
	DefaultSubGridRows    = 3
	DefaultFrameWidth     = 32
	DefaultFrameHeight    = 30
	DefaultBaseplateColor = 1
	DefaultAccentColor    = 15

	DefaultTemplatePath = "template/minifig.ldr"
	DefaultOutputPath   = "build/table.ldr"
	DefaultTitle        = "Brick table"
)

// SceneConfig sets the baseplate grid and the scene reference plane.
type SceneConfig struct {
	GroundY        float64 `toml:"ground_y"`
	Columns        int     `toml:"columns"`
	Rows           int     `toml:"rows"`
	BaseplateColor int     `toml:"baseplate_color"`
	AccentColor    int     `toml:"accent_color"`
}

// GroupsConfig sets the framed group assemblies placed on the grid.
type GroupsConfig struct {
	Count       int     `toml:"count"`
	Columns     int     `toml:"columns"`
	Spacing     float64 `toml:"spacing"`
	SubGridCols int     `toml:"subgrid_cols"`
	SubGridRows int     `toml:"subgrid_rows"`
	FrameWidth  int     `toml:"frame_width"`
	FrameHeight int     `toml:"frame_height"`
}

// TextConfig sets one text rendered inside a baseplate cell.
type TextConfig struct {
	Value    string  `toml:"value"`
	PlateRow int     `toml:"plate_row"`
	PlateCol int     `toml:"plate_col"`
	Center   bool    `toml:"center"`
	Margin   float64 `toml:"margin"`
	DeltaX   float64 `toml:"delta_x"`
	DeltaZ   float64 `toml:"delta_z"`
}

// Config is the full build configuration, loadable from a TOML file.
type Config struct {
	Title        string       `toml:"title"`
	TemplatePath string       `toml:"template"`
	OutputPath   string       `toml:"output"`
	Scene        SceneConfig  `toml:"scene"`
	Groups       GroupsConfig `toml:"groups"`
	Texts        []TextConfig `toml:"text"`
}

// DefaultConfig returns the configuration reproducing the reference
// table model.
func DefaultConfig() Config {
	return Config{
		Title:        DefaultTitle,
		TemplatePath: DefaultTemplatePath,
		OutputPath:   DefaultOutputPath,
		Scene: SceneConfig{
			GroundY:        0,
			Columns:        DefaultGridColumns,
			Rows:           DefaultGridRows,
			BaseplateColor: DefaultBaseplateColor,
			AccentColor:    DefaultAccentColor,
		},
		Groups: GroupsConfig{
			Count:       DefaultGroupCount,
			Columns:     DefaultGridColumns,
			Spacing:     DefaultGroupSpacing,
			SubGridCols: DefaultSubGridCols,
			SubGridRows: DefaultSubGridRows,
			FrameWidth:  DefaultFrameWidth,
			FrameHeight: DefaultFrameHeight,
		},
		Texts: []TextConfig{
			{Value: "SOPHIE", PlateRow: 0, PlateCol: 0, Center: true, DeltaZ: -4},
			{Value: "LAURENT", PlateRow: 0, PlateCol: 1, Center: true, DeltaZ: -18},
		},
	}
}

// LoadConfig reads a TOML config file. Fields absent from the file keep
// their defaults, so a partial config overrides only what it names.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidPath, err, "read config %s", path)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks structural config invariants. Layout-level constraints
// (supported frame spans, supported characters) are reported by the
// composition itself.
func (c Config) Validate() error {
	if c.Scene.Columns < 1 || c.Scene.Rows < 1 {
		return errors.New(errors.ErrCodeInvalidConfig,
			"scene grid must be at least 1x1, got %dx%d", c.Scene.Columns, c.Scene.Rows)
	}
	if c.Groups.Count < 0 {
		return errors.New(errors.ErrCodeInvalidConfig,
			"group count must not be negative, got %d", c.Groups.Count)
	}
	if c.Groups.Count > 0 {
		if c.Groups.Columns < 1 {
			return errors.New(errors.ErrCodeInvalidConfig,
				"groups grid needs at least one column, got %d", c.Groups.Columns)
		}
		if c.Groups.SubGridCols < 1 || c.Groups.SubGridRows < 1 {
			return errors.New(errors.ErrCodeInvalidConfig,
				"group sub-grid must be at least 1x1, got %dx%d",
				c.Groups.SubGridCols, c.Groups.SubGridRows)
		}
		if c.TemplatePath == "" {
			return errors.New(errors.ErrCodeInvalidConfig, "groups require a template path")
		}
	}
	for _, txt := range c.Texts {
		if txt.PlateRow < 0 || txt.PlateRow >= c.Scene.Rows ||
			txt.PlateCol < 0 || txt.PlateCol >= c.Scene.Columns {
			return errors.New(errors.ErrCodeInvalidConfig,
				"text %q targets baseplate (%d,%d) outside the %dx%d grid",
				txt.Value, txt.PlateRow, txt.PlateCol, c.Scene.Rows, c.Scene.Columns)
		}
	}
	if c.OutputPath == "" {
		return errors.New(errors.ErrCodeInvalidConfig, "output path must not be empty")
	}
	return nil
}
