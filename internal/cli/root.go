// Package cli provides the command-line interface for shade.
package cli

import (
	"fmt"

	"github.com/jmylchreest/shade/internal/version"
	"github.com/spf13/cobra"
)

// rootOptions holds the raw flag values for a single command tree.
type rootOptions struct {
	colours    []string
	tui        bool
	webSafe    bool
	spread     float64
	format     string
	output     string
	swatchPath string
	colourMode string
	chartWidth int
	configPath string
	verbose    bool
	quiet      bool
}

// NewRootCmd builds the shade command tree.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "shade [colours...]",
		Short: "Generate colour schemes from hex colours",
		Long: `Shade averages one or more hex colours and derives colour schemes from
the result: complementary, analogous and a twelve-step monochromatic ramp,
plus a suggested dark-mode and light-mode accent pair.

Colours may be given as #RRGGBB, RRGGBB, #RGB or RGB.

Examples:
  # Schemes for a single colour
  shade '#336699'

  # Average several colours
  shade -c ff0000 -c 0000ff

  # Snap to the nearest web-safe colour first
  shade --web-safe 347099

  # Machine-readable output
  shade --format json '#ff8800'

  # Also write a PNG swatch sheet
  shade --swatch schemes.png '#336699'

  # Enter colours interactively
  shade --tui`,
		Version:      version.Short(),
		SilenceUsage: true,
		Args:         cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShade(cmd, args, opts)
		},
	}

	flags := rootCmd.Flags()
	flags.StringSliceVarP(&opts.colours, "colors", "c", nil, "one or more colours in hexadecimal code format")
	flags.BoolVarP(&opts.tui, "tui", "t", false, "show a text-based user interface to enter colours")
	flags.BoolVarP(&opts.webSafe, "web-safe", "w", false, "use web-safe colours")
	flags.Float64Var(&opts.spread, "spread", 30, "analogous spread in degrees")
	flags.StringVarP(&opts.format, "format", "f", "text", "output format (text, table, json)")
	flags.StringVarP(&opts.output, "output", "o", "", "output file (default: stdout)")
	flags.StringVar(&opts.swatchPath, "swatch", "", "also write a PNG swatch sheet to this path")
	flags.StringVar(&opts.colourMode, "colour", "auto", "colour output (auto, always, never)")
	flags.IntVar(&opts.chartWidth, "chart-width", 50, "width of the RGB chart bars")

	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default: layered user and project files)")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&opts.quiet, "quiet", "q", false, "suppress non-error output")

	rootCmd.SetVersionTemplate(version.String() + "\n")
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// newVersionCmd returns the version command.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}
