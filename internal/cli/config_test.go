package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/strengl/combination"
)

const sampleConfig = `
output: csv
frame:
  dcm:
    - [0, -1, 0]
    - [1, 0, 0]
    - [0, 0, 1]
cases:
  dead:
    subcase: 1
    source: dead.op2
    nodes:
      - id: 3
        translations: [1, 0, 0]
        rotations: [0, 0, 0]
    element0d:
      - id: 7
        forces: [10, 0, 0]
        moments: [0, 0, 2]
    element1d:
      - id: 21
        forces: [1, 2, 3]
        moments_a: [0, 4, 0]
        moments_b: [0, 0, 5]
  live:
    subcase: 2
    element0d:
      - id: 7
        forces: [5, 0, 0]
        moments: [0, 0, -1]
combinations:
  - id: ULS1
    description: 1.2D + 1.6L
    factors:
      dead: 1.2
      live: 1.6
  - id: SLS
    factors:
      dead: 1.0
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "strengl.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func testFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("config", "", "")
	flags.StringP("output", "o", "", "")
	flags.BoolP("verbose", "v", false, "")
	require.NoError(t, flags.Parse(args))
	return flags
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultOutput, cfg.Output)
	assert.False(t, cfg.Verbose)
	assert.Empty(t, cfg.Cases)
}

func TestLoadConfigFile(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, sampleConfig), nil)
	require.NoError(t, err)

	assert.Equal(t, "csv", cfg.Output)
	require.Contains(t, cfg.Cases, "dead")
	dead := cfg.Cases["dead"]
	assert.Equal(t, 1, dead.Subcase)
	assert.Equal(t, "dead.op2", dead.Source)
	require.Len(t, dead.Element0D, 1)
	assert.Equal(t, []float64{10, 0, 0}, dead.Element0D[0].Forces)
	require.Len(t, dead.Element1D, 1)
	assert.Equal(t, Entry1D{
		ID:       21,
		Forces:   []float64{1, 2, 3},
		MomentsA: []float64{0, 4, 0},
		MomentsB: []float64{0, 0, 5},
	}, dead.Element1D[0])
	require.Len(t, cfg.Combinations, 2)
	assert.Equal(t, combination.Combination{
		ID:          "ULS1",
		Description: "1.2D + 1.6L",
		Factors:     map[string]float64{"dead": 1.2, "live": 1.6},
	}, cfg.Combinations[0].Combination())

	R, err := cfg.Frame.Rotation()
	require.NoError(t, err)
	require.NotNil(t, R)
	assert.Equal(t, 1.0, R.At(1, 0))
}

func TestLoadConfigPrecedence(t *testing.T) {
	path := writeConfig(t, sampleConfig)

	t.Setenv("STRENGL_OUTPUT", "markdown")
	cfg, err := LoadConfig(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "markdown", cfg.Output, "env overrides file")

	cfg, err = LoadConfig(path, testFlags(t, "--output", "table", "-v"))
	require.NoError(t, err)
	assert.Equal(t, "table", cfg.Output, "flag overrides env")
	assert.True(t, cfg.Verbose)

	// unset flags keep lower layers
	cfg, err = LoadConfig(path, testFlags(t))
	require.NoError(t, err)
	assert.Equal(t, "markdown", cfg.Output)
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		errSubstr string
	}{
		{"bad output", "output: json\n", "unknown output format"},
		{"short dcm", "frame:\n  dcm:\n    - [1, 0, 0]\n", "3 rows"},
		{"short dcm row", "frame:\n  dcm:\n    - [1, 0]\n    - [0, 1, 0]\n    - [0, 0, 1]\n", "row 0"},
		{"skew dcm", "frame:\n  dcm:\n    - [1, 1, 0]\n    - [0, 1, 0]\n    - [0, 0, 1]\n", "not orthonormal"},
		{"combination without factors", "combinations:\n  - id: X\n", "no load factors"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tt.content), nil)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errSubstr)
		})
	}

	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"), nil)
	assert.ErrorContains(t, err, "error reading config file")
}

func TestFrameRotationUnset(t *testing.T) {
	R, err := Frame{}.Rotation()
	require.NoError(t, err)
	assert.Nil(t, R)
}
