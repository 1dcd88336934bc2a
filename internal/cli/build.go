package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lpauloin/BrickTablePlanner/pkg/errors"
	"github.com/lpauloin/BrickTablePlanner/pkg/pipeline"
)

// buildOpts holds the command-line flags for the build command.
type buildOpts struct {
	config   string // scene config file (TOML); defaults used when empty
	output   string // output .ldr path, overrides the config
	template string // minifig template path, overrides the config
	dryRun   bool   // compose without writing the artifact
}

// buildCommand creates the build command for composing table models.
func (c *CLI) buildCommand() *cobra.Command {
	var opts buildOpts

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Compose a table model and write the .ldr artifact",
		Long: `Build composes the complete table model: the baseplate grid, the
numbered minifig groups with their tiled frames, and the name texts.
The model is composed fully in memory and written atomically, so a
failed build never leaves a partial .ldr file behind.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runBuild(cmd.Context(), &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.config, "config", "c", "", "scene config file (TOML)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output .ldr path (overrides config)")
	cmd.Flags().StringVar(&opts.template, "template", "", "minifig template path (overrides config)")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "compose without writing the artifact")

	return cmd
}

func (c *CLI) runBuild(ctx context.Context, opts *buildOpts) error {
	logger := loggerFromContext(ctx)

	cfg := pipeline.DefaultConfig()
	if opts.config != "" {
		loaded, err := pipeline.LoadConfig(opts.config)
		if err != nil {
			printError("%s", errors.UserMessage(err))
			return err
		}
		cfg = loaded
		logger.Debug("loaded config", "path", opts.config)
	}
	if opts.output != "" {
		cfg.OutputPath = opts.output
	}
	if opts.template != "" {
		cfg.TemplatePath = opts.template
	}

	runner := pipeline.NewRunner(logger)
	prog := newProgress(logger)

	result, err := runner.Build(ctx, cfg)
	if err != nil {
		printError("%s", errors.UserMessage(err))
		return err
	}
	prog.done(fmt.Sprintf("Composed %d placements", result.Stats.Placements))

	if opts.dryRun {
		printInfo("Dry run, artifact not written")
		printDetail("model %s · %d placements", result.ModelID, result.Stats.Placements)
		return nil
	}

	if err := runner.Export(ctx, cfg.OutputPath, result); err != nil {
		printError("%s", errors.UserMessage(err))
		return err
	}

	printSuccess("Model built")
	printFile(cfg.OutputPath)
	printDetail("model %s · %d placements · template parts %d",
		result.ModelID, result.Stats.Placements, result.Stats.TemplateParts)
	return nil
}
