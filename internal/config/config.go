package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/fdtdgrid/internal/grid"
	"github.com/san-kum/fdtdgrid/internal/gridspec"
)

// AxisConfig selects and parameterizes the grid strategy for one axis.
type AxisConfig struct {
	Type           string    `yaml:"type"` // uniform, custom or auto
	Dl             float64   `yaml:"dl"`
	Steps          []float64 `yaml:"steps"`
	MinStepsPerWvl float64   `yaml:"min_steps_per_wvl"`
	MaxScale       float64   `yaml:"max_scale"`
}

// StructureConfig describes one axis-aligned box. The first structure is
// the simulation domain.
type StructureConfig struct {
	Center   [3]float64 `yaml:"center"`
	Size     [3]float64 `yaml:"size"`
	RefIndex float64    `yaml:"ref_index"`
}

// SourceConfig describes one excitation.
type SourceConfig struct {
	Freq0 float64 `yaml:"freq0"`
}

// Config is the yaml surface for a full grid build.
type Config struct {
	Wavelength float64           `yaml:"wavelength"`
	GridX      AxisConfig        `yaml:"grid_x"`
	GridY      AxisConfig        `yaml:"grid_y"`
	GridZ      AxisConfig        `yaml:"grid_z"`
	Structures []StructureConfig `yaml:"structures"`
	Sources    []SourceConfig    `yaml:"sources"`
	Symmetry   [3]int            `yaml:"symmetry"`
	PMLLayers  [3][2]int         `yaml:"pml_layers"`
}

func DefaultConfig() *Config {
	auto := AxisConfig{
		Type:           "auto",
		MinStepsPerWvl: gridspec.DefaultMinStepsPerWvl,
		MaxScale:       gridspec.DefaultMaxScale,
	}
	return &Config{
		GridX: auto,
		GridY: auto,
		GridZ: auto,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Spec converts the configured axes into a grid specification. Strategy
// parameters are validated here, before any build runs.
func (c *Config) Spec() (*gridspec.Spec, error) {
	gx, err := c.GridX.strategy()
	if err != nil {
		return nil, fmt.Errorf("grid_x: %w", err)
	}
	gy, err := c.GridY.strategy()
	if err != nil {
		return nil, fmt.Errorf("grid_y: %w", err)
	}
	gz, err := c.GridZ.strategy()
	if err != nil {
		return nil, fmt.Errorf("grid_z: %w", err)
	}
	return &gridspec.Spec{GridX: gx, GridY: gy, GridZ: gz, Wavelength: c.Wavelength}, nil
}

func (a AxisConfig) strategy() (gridspec.AxisStrategy, error) {
	switch a.Type {
	case "uniform":
		return gridspec.NewUniform(a.Dl)
	case "custom":
		return gridspec.NewCustom(a.Steps)
	case "auto", "":
		minSteps := a.MinStepsPerWvl
		if minSteps == 0 {
			minSteps = gridspec.DefaultMinStepsPerWvl
		}
		maxScale := a.MaxScale
		if maxScale == 0 {
			maxScale = gridspec.DefaultMaxScale
		}
		return gridspec.NewAuto(minSteps, maxScale, nil)
	default:
		return nil, fmt.Errorf("config: unknown grid type %q", a.Type)
	}
}

// GridStructures converts the configured structures.
func (c *Config) GridStructures() []grid.Structure {
	out := make([]grid.Structure, len(c.Structures))
	for i, s := range c.Structures {
		out[i] = grid.Structure{Center: s.Center, Size: s.Size, RefIndex: s.RefIndex}
	}
	return out
}

// GridSources converts the configured sources.
func (c *Config) GridSources() []grid.Source {
	out := make([]grid.Source, len(c.Sources))
	for i, s := range c.Sources {
		out[i] = grid.Source{Freq0: s.Freq0}
	}
	return out
}

// PML converts the configured layer counts.
func (c *Config) PML() [3]gridspec.PMLLayers {
	var out [3]gridspec.PMLLayers
	for i, p := range c.PMLLayers {
		out[i] = gridspec.PMLLayers{Minus: p[0], Plus: p[1]}
	}
	return out
}
