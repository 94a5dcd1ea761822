// Package cli_test provides tests for the CLI package.
package cli_test

import (
	"bytes"
	"encoding/json"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jmylchreest/shade/internal/cli"
	"github.com/jmylchreest/shade/internal/colour"
	"github.com/jmylchreest/shade/internal/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with an isolated, empty config file.
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, nil, 0o600))

	var outBuf, errBuf bytes.Buffer
	rootCmd := cli.NewRootCmd()
	rootCmd.SetOut(&outBuf)
	rootCmd.SetErr(&errBuf)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(append([]string{"--config", cfgPath}, args...))

	err := rootCmd.Execute()
	return outBuf.String(), errBuf.String(), err
}

func TestRootTextOutput(t *testing.T) {
	out, _, err := execute(t, "", "--colour", "never", "-c", "#ff0000")
	require.NoError(t, err)

	assert.Contains(t, out, "The input is: #ff0000 (red)")
	assert.Contains(t, out, "RGB color chart:")
	assert.Contains(t, out, "Complementary Color Scheme: #ff0000 #00ffff")
	assert.Contains(t, out, "Analogous Color Scheme: #ff0000 ")
	assert.Contains(t, out, "Monochromatic Color Scheme: ")
	assert.Contains(t, out, "Dark Mode: ")
	assert.Contains(t, out, "Light Mode: ")
	assert.NotContains(t, out, "websafe")
}

func TestRootAveragesPositionalArgs(t *testing.T) {
	out, _, err := execute(t, "", "--colour", "never", "#ffffff", "000000")
	require.NoError(t, err)
	assert.Contains(t, out, "The input is: #808080 (grey)")
}

func TestRootWebSafe(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "exact", input: "336699", want: "#369 is a websafe color."},
		{name: "snapped", input: "347099", want: "Closest websafe color is: #369"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := execute(t, "", "--colour", "never", "-w", tt.input)
			require.NoError(t, err)
			assert.Contains(t, out, tt.want)
			assert.Contains(t, out, "Complementary Color Scheme: #336699 ")
		})
	}
}

func TestRootJSONOutput(t *testing.T) {
	out, _, err := execute(t, "", "--format", "json", "-c", "ff0000,0000ff")
	require.NoError(t, err)

	var decoded report.ReportJSON
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, []string{"#ff0000", "#0000ff"}, decoded.Inputs)
	assert.Equal(t, "#800080", decoded.Average.Hex)
	assert.Len(t, decoded.Complementary, 2)
	assert.Len(t, decoded.Analogous, 3)
	assert.Len(t, decoded.Monochromatic, colour.MonochromaticSteps)
	assert.Nil(t, decoded.WebSafe)
}

func TestRootTableOutput(t *testing.T) {
	out, _, err := execute(t, "", "--colour", "never", "--format", "table", "#00ff00")
	require.NoError(t, err)

	assert.Contains(t, out, "Scheme")
	assert.Contains(t, out, "complementary")
	assert.Contains(t, out, "monochromatic")
	assert.Contains(t, out, "#ff00ff")
}

func TestRootPromptsWhenNoColours(t *testing.T) {
	out, errOut, err := execute(t, "#f00\n", "--colour", "never")
	require.NoError(t, err)

	assert.Contains(t, errOut, "Enter one or more colors")
	assert.Contains(t, out, "The input is: #ff0000 (red)")
}

func TestRootTUIFallsBackWithoutTerminal(t *testing.T) {
	out, errOut, err := execute(t, "#00f", "--colour", "never", "--tui")
	require.NoError(t, err)

	assert.Contains(t, errOut, "not a terminal")
	assert.Contains(t, out, "The input is: #0000ff (blue)")
}

func TestRootEmptyInput(t *testing.T) {
	out, _, err := execute(t, "\n")
	require.NoError(t, err)
	assert.Equal(t, "No colors were entered.\n", out)
}

func TestRootMalformedColour(t *testing.T) {
	out, _, err := execute(t, "", "#ff0000", "#12")
	require.Error(t, err)
	assert.ErrorIs(t, err, colour.ErrMalformedHex)
	assert.Contains(t, err.Error(), `"#12"`)
	assert.Empty(t, out, "no partial output on malformed input")
}

func TestRootInvalidFormat(t *testing.T) {
	_, _, err := execute(t, "", "--format", "xml", "#ff0000")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported format")
}

func TestRootOutputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scheme.json")

	out, _, err := execute(t, "", "--format", "json", "--output", path, "#336699")
	require.NoError(t, err)
	assert.Empty(t, out)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"hex": "#336699"`)
}

func TestRootSwatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schemes.png")

	_, _, err := execute(t, "", "--colour", "never", "--swatch", path, "#336699")
	require.NoError(t, err)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Positive(t, img.Bounds().Dx())
}

func TestRootConfigFile(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("web_safe: true\nformat: json\n"), 0o600))

	var outBuf bytes.Buffer
	rootCmd := cli.NewRootCmd()
	rootCmd.SetOut(&outBuf)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"--config", cfgPath, "347099"})
	require.NoError(t, rootCmd.Execute())

	var decoded report.ReportJSON
	require.NoError(t, json.Unmarshal(outBuf.Bytes(), &decoded))
	require.NotNil(t, decoded.WebSafe)
	assert.Equal(t, "#369", decoded.WebSafe.Shorthand)
}

func TestRootFlagsOverrideConfig(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("format: json\n"), 0o600))

	var outBuf bytes.Buffer
	rootCmd := cli.NewRootCmd()
	rootCmd.SetOut(&outBuf)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"--config", cfgPath, "--format", "text", "--colour", "never", "#ff0000"})
	require.NoError(t, rootCmd.Execute())

	assert.Contains(t, outBuf.String(), "The input is: #ff0000 (red)")
}

func TestRootFlagOverridesInvalidConfigFormat(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("format: xml\n"), 0o600))

	var outBuf bytes.Buffer
	rootCmd := cli.NewRootCmd()
	rootCmd.SetOut(&outBuf)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"--config", cfgPath, "--format", "json", "#ff0000"})
	require.NoError(t, rootCmd.Execute())

	var decoded report.ReportJSON
	require.NoError(t, json.Unmarshal(outBuf.Bytes(), &decoded))
}

func TestRootInvalidConfigFormatWithoutFlag(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("format: xml\n"), 0o600))

	rootCmd := cli.NewRootCmd()
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"--config", cfgPath, "#ff0000"})
	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported format")
}

func TestRootOutputFileUnwritable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "scheme.json")

	_, _, err := execute(t, "", "--format", "json", "--output", path, "#336699")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create output file")
}

func TestVersionCommand(t *testing.T) {
	out, _, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "shade version dev ("), out)
}
