package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/jmylchreest/shade/internal/colour"
	"github.com/jmylchreest/shade/internal/config"
	"github.com/jmylchreest/shade/internal/report"
	"github.com/jmylchreest/shade/internal/swatch"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// noColoursMessage is printed when no colour tokens were supplied.
const noColoursMessage = "No colors were entered."

// runShade executes the root command.
func runShade(cmd *cobra.Command, args []string, opts *rootOptions) error {
	logger := newLogger(cmd.ErrOrStderr(), opts.verbose, opts.quiet)

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	applyFlags(&cfg, cmd.Flags(), opts)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	logger.Debug("resolved configuration",
		"format", cfg.Format,
		"web_safe", cfg.WebSafe,
		"spread", cfg.AnalogousSpread,
		"colour", cfg.Colour)

	tokens := report.SplitTokens(append(append([]string{}, opts.colours...), args...)...)
	if len(tokens) == 0 {
		line, err := readColours(cmd, opts.tui, logger)
		if err != nil {
			return err
		}
		tokens = report.SplitTokens(line)
	}

	out := cmd.OutOrStdout()
	rep, err := report.NewBuilder(logger).Build(tokens, report.Options{
		WebSafe:         cfg.WebSafe,
		AnalogousSpread: cfg.AnalogousSpread,
	})
	if errors.Is(err, colour.ErrEmptyInput) {
		fmt.Fprintln(out, noColoursMessage)
		return nil
	}
	if err != nil {
		return err
	}

	if opts.output != "" {
		logger.Debug("writing output", "path", opts.output)
		if err := writeReportFile(opts.output, rep, cfg); err != nil {
			return err
		}
	} else if err := writeReport(out, rep, cfg); err != nil {
		return err
	}

	if opts.swatchPath != "" {
		if err := writeSwatch(opts.swatchPath, rep); err != nil {
			return err
		}
		logger.Info("wrote swatch sheet", "path", opts.swatchPath)
	}

	return nil
}

// applyFlags overrides configuration values with explicitly set flags.
func applyFlags(cfg *config.Config, flags *pflag.FlagSet, opts *rootOptions) {
	flags.Visit(func(f *pflag.Flag) {
		switch f.Name {
		case "web-safe":
			cfg.WebSafe = opts.webSafe
		case "spread":
			cfg.AnalogousSpread = opts.spread
		case "format":
			cfg.Format = opts.format
		case "colour":
			cfg.Colour = opts.colourMode
		case "chart-width":
			cfg.ChartWidth = opts.chartWidth
		}
	})
}

// writeReport renders rep to w in the configured format.
func writeReport(w io.Writer, rep *report.Report, cfg config.Config) error {
	switch cfg.Format {
	case config.FormatJSON:
		data, err := rep.ToJSON()
		if err != nil {
			return fmt.Errorf("failed to convert to JSON: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case config.FormatTable:
		p := newPrinter(w, cfg.Colour, cfg.ChartWidth)
		_, err := io.WriteString(w, p.table(rep))
		return err
	default:
		p := newPrinter(w, cfg.Colour, cfg.ChartWidth)
		_, err := io.WriteString(w, p.text(rep))
		return err
	}
}

// writeReportFile writes the report to path, reporting close errors since
// they can mean the data never reached disk.
func writeReportFile(path string, rep *report.Report, cfg config.Config) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	if err := writeReport(f, rep, cfg); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close output file: %w", err)
	}
	return nil
}

// writeSwatch writes the PNG swatch sheet for rep to path.
func writeSwatch(path string, rep *report.Report) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create swatch file: %w", err)
	}
	defer f.Close()

	rows := []swatch.Row{
		{Label: "Complementary", Colours: rep.Complementary},
		{Label: "Analogous", Colours: rep.Analogous},
		{Label: "Monochromatic", Colours: rep.Monochromatic},
	}
	if err := swatch.Write(f, rows, swatch.DefaultOptions()); err != nil {
		return fmt.Errorf("failed to write swatch: %w", err)
	}
	return f.Close()
}

// readColours asks the user for colours, using the interactive prompt when
// requested and stdin is a terminal.
func readColours(cmd *cobra.Command, tui bool, logger hclog.Logger) (string, error) {
	in := cmd.InOrStdin()

	if tui {
		if isTerminal(in) {
			return runPrompt(in, cmd.OutOrStdout())
		}
		logger.Warn("stdin is not a terminal, falling back to line input")
	}

	fmt.Fprint(cmd.ErrOrStderr(), "Enter one or more colors in hexadecimal code format separated by spaces: ")
	return readLine(in)
}
