package cli

import (
	"bufio"
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/lpauloin/BrickTablePlanner/pkg/bom"
	"github.com/lpauloin/BrickTablePlanner/pkg/errors"
)

// bomOpts holds the command-line flags for the bom command.
type bomOpts struct {
	summary bool // print only the consolidated global summary
}

// bomCommand creates the bom command for summarizing model parts.
func (c *CLI) bomCommand() *cobra.Command {
	var opts bomOpts

	cmd := &cobra.Command{
		Use:   "bom [file]",
		Short: "Print the bill of materials of a model",
		Long: `Bom reads an .ldr model, groups its placement records by section
marker, classifies every part, and prints per-section part tables plus
a consolidated summary. Classification is strict: a part outside the
known catalog aborts the report.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runBOM(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().BoolVar(&opts.summary, "summary", false, "print only the global summary")

	return cmd
}

func (c *CLI) runBOM(ctx context.Context, path string, opts *bomOpts) error {
	logger := loggerFromContext(ctx)

	lines, err := readLines(path)
	if err != nil {
		printError("%s", errors.UserMessage(err))
		return err
	}

	b := bom.Aggregate(lines)
	logger.Debug("aggregated model", "path", path, "sections", len(b.Sections))

	if !opts.summary {
		if err := bom.Report(os.Stdout, b); err != nil {
			printError("%s", errors.UserMessage(err))
			return err
		}
	}
	if err := bom.GlobalSummary(os.Stdout, b); err != nil {
		printError("%s", errors.UserMessage(err))
		return err
	}
	return nil
}

func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "open model %s", path)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "read model %s", path)
	}
	return lines, nil
}
