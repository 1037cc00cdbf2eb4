package cli

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"

	"github.com/notargets/strengl/combination"
	"github.com/notargets/strengl/utils"
)

const (
	envPrefix     = "STRENGL_"
	DefaultOutput = "table"
)

// Config is the combine run description: result cases, combinations and
// the reporting frame
type Config struct {
	Verbose      bool               `koanf:"verbose"`
	Output       string             `koanf:"output"`
	Frame        Frame              `koanf:"frame"`
	Cases        map[string]Case    `koanf:"cases"`
	Combinations []CombinationEntry `koanf:"combinations"`
}

// Frame is the reporting coordinate system. DCM rotates nodal, 0D and 1D
// results; AngleDeg rotates 2D element results in their plane.
type Frame struct {
	DCM      [][]float64 `koanf:"dcm"`
	AngleDeg float64     `koanf:"angle_deg"`
}

// Case holds the results of one load case in the solver's native frame
type Case struct {
	Subcase   int         `koanf:"subcase"`
	Source    string      `koanf:"source"`
	Nodes     []NodeEntry `koanf:"nodes"`
	Element0D []Entry0D   `koanf:"element0d"`
	Element1D []Entry1D   `koanf:"element1d"`
	Element2D []Entry2D   `koanf:"element2d"`
}

type NodeEntry struct {
	ID           int       `koanf:"id"`
	Translations []float64 `koanf:"translations"`
	Rotations    []float64 `koanf:"rotations"`
}

type Entry0D struct {
	ID      int       `koanf:"id"`
	Forces  []float64 `koanf:"forces"`
	Moments []float64 `koanf:"moments"`
}

type Entry1D struct {
	ID       int       `koanf:"id"`
	Forces   []float64 `koanf:"forces"`
	MomentsA []float64 `koanf:"moments_a"`
	MomentsB []float64 `koanf:"moments_b"`
}

type Entry2D struct {
	ID      int       `koanf:"id"`
	Forces  []float64 `koanf:"forces"`
	Moments []float64 `koanf:"moments"`
	Shears  []float64 `koanf:"shears"`
}

type CombinationEntry struct {
	ID          string             `koanf:"id"`
	Description string             `koanf:"description"`
	Factors     map[string]float64 `koanf:"factors"`
}

func (c CombinationEntry) Combination() combination.Combination {
	return combination.Combination{ID: c.ID, Description: c.Description, Factors: c.Factors}
}

// LoadConfig loads configuration from defaults, the YAML file, STRENGL_
// environment variables and explicitly set flags, in increasing precedence.
func LoadConfig(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(map[string]interface{}{
		"output":  DefaultOutput,
		"verbose": false,
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if cfgFile != "" {
		if err := k.Load(file.Provider(cfgFile), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", cfgFile, err)
		}
	}

	// STRENGL_OUTPUT -> output
	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed || f.Name == "config" {
				return "", nil
			}
			return f.Name, posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the settings that do not depend on result values
func (c *Config) Validate() error {
	switch c.Output {
	case "table", "csv", "markdown", "md":
	default:
		return fmt.Errorf("unknown output format %q (want table, csv or markdown)", c.Output)
	}
	if _, err := c.Frame.Rotation(); err != nil {
		return err
	}
	for _, ce := range c.Combinations {
		if err := ce.Combination().Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Rotation returns the frame DCM, or nil when none is configured
func (f Frame) Rotation() (*utils.DCM, error) {
	if len(f.DCM) == 0 {
		return nil, nil
	}
	if len(f.DCM) != 3 {
		return nil, fmt.Errorf("frame.dcm must have 3 rows, got %d", len(f.DCM))
	}
	var rows [3][3]float64
	for i, row := range f.DCM {
		if len(row) != 3 {
			return nil, fmt.Errorf("frame.dcm row %d must have 3 entries, got %d", i, len(row))
		}
		copy(rows[i][:], row)
	}
	R := utils.NewDCM(rows)
	if !R.IsOrthonormal(1e-6) {
		return nil, fmt.Errorf("frame.dcm is not orthonormal:\n%s", R)
	}
	return &R, nil
}
