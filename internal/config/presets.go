package config

import "sort"

// Presets are ready-made grid configurations for a 4x4x4 µm vacuum domain
// with a 1.55 µm telecom source; callers usually override structures and
// sources from their own setup.
var Presets = map[string]*Config{
	"coarse": {
		GridX: AxisConfig{Type: "uniform", Dl: 0.2},
		GridY: AxisConfig{Type: "uniform", Dl: 0.2},
		GridZ: AxisConfig{Type: "uniform", Dl: 0.2},
		Structures: []StructureConfig{
			{Size: [3]float64{4, 4, 4}},
		},
	},
	"fine": {
		GridX: AxisConfig{Type: "uniform", Dl: 0.05},
		GridY: AxisConfig{Type: "uniform", Dl: 0.05},
		GridZ: AxisConfig{Type: "uniform", Dl: 0.05},
		Structures: []StructureConfig{
			{Size: [3]float64{4, 4, 4}},
		},
	},
	"auto": {
		Wavelength: 1.55,
		GridX:      AxisConfig{Type: "auto", MinStepsPerWvl: 10, MaxScale: 1.4},
		GridY:      AxisConfig{Type: "auto", MinStepsPerWvl: 10, MaxScale: 1.4},
		GridZ:      AxisConfig{Type: "auto", MinStepsPerWvl: 10, MaxScale: 1.4},
		Structures: []StructureConfig{
			{Size: [3]float64{4, 4, 4}},
			{Size: [3]float64{1, 1, 1}, RefIndex: 3.48},
		},
		PMLLayers: [3][2]int{{12, 12}, {12, 12}, {12, 12}},
	},
	"auto-dense": {
		Wavelength: 1.55,
		GridX:      AxisConfig{Type: "auto", MinStepsPerWvl: 20, MaxScale: 1.2},
		GridY:      AxisConfig{Type: "auto", MinStepsPerWvl: 20, MaxScale: 1.2},
		GridZ:      AxisConfig{Type: "auto", MinStepsPerWvl: 20, MaxScale: 1.2},
		Structures: []StructureConfig{
			{Size: [3]float64{4, 4, 4}},
			{Size: [3]float64{1, 1, 1}, RefIndex: 3.48},
		},
		PMLLayers: [3][2]int{{12, 12}, {12, 12}, {12, 12}},
	},
	"waveguide": {
		Wavelength: 1.55,
		GridX:      AxisConfig{Type: "auto", MinStepsPerWvl: 15, MaxScale: 1.4},
		GridY:      AxisConfig{Type: "auto", MinStepsPerWvl: 15, MaxScale: 1.4},
		GridZ:      AxisConfig{Type: "uniform", Dl: 0.1},
		Structures: []StructureConfig{
			{Size: [3]float64{6, 4, 4}},
			{Size: [3]float64{6, 0.5, 0.22}, RefIndex: 3.48},
		},
		Symmetry:  [3]int{0, 1, 0},
		PMLLayers: [3][2]int{{12, 12}, {12, 12}, {12, 12}},
	},
}

// GetPreset returns the named preset, or nil when unknown.
func GetPreset(name string) *Config {
	return Presets[name]
}

// ListPresets returns the preset names in sorted order.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
