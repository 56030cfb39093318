package config

import (
	"os"
	"path/filepath"
	"testing"

	. "github.com/onsi/gomega"

	"github.com/san-kum/fdtdgrid/internal/gridspec"
)

func TestDefaultConfig(t *testing.T) {
	g := NewWithT(t)

	cfg := DefaultConfig()
	g.Expect(cfg.GridX.Type).To(Equal("auto"))
	g.Expect(cfg.GridX.MinStepsPerWvl).To(Equal(gridspec.DefaultMinStepsPerWvl))
	g.Expect(cfg.GridX.MaxScale).To(Equal(gridspec.DefaultMaxScale))

	spec, err := cfg.Spec()
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(spec.AutoUsed()).To(BeTrue())
}

func TestLoadRoundTrip(t *testing.T) {
	g := NewWithT(t)

	doc := `
wavelength: 1.55
grid_x:
  type: uniform
  dl: 0.1
grid_y:
  type: custom
  steps: [0.2, 0.1, 0.2]
grid_z:
  type: auto
  min_steps_per_wvl: 12
  max_scale: 1.3
structures:
  - center: [0, 0, 0]
    size: [4, 4, 4]
  - size: [1, 1, 1]
    ref_index: 3.48
sources:
  - freq0: 2.0e14
symmetry: [0, 1, 0]
pml_layers: [[12, 12], [12, 12], [0, 0]]
`
	path := filepath.Join(t.TempDir(), "grid.yaml")
	g.Expect(os.WriteFile(path, []byte(doc), 0644)).To(Succeed())

	cfg, err := Load(path)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(cfg.Wavelength).To(Equal(1.55))
	g.Expect(cfg.GridX.Dl).To(Equal(0.1))
	g.Expect(cfg.GridY.Steps).To(Equal([]float64{0.2, 0.1, 0.2}))
	g.Expect(cfg.GridZ.MinStepsPerWvl).To(Equal(12.0))
	g.Expect(cfg.Symmetry).To(Equal([3]int{0, 1, 0}))

	structures := cfg.GridStructures()
	g.Expect(structures).To(HaveLen(2))
	g.Expect(structures[1].RefIndex).To(Equal(3.48))

	sources := cfg.GridSources()
	g.Expect(sources).To(HaveLen(1))
	g.Expect(sources[0].Freq0).To(Equal(2.0e14))

	pml := cfg.PML()
	g.Expect(pml[0]).To(Equal(gridspec.PMLLayers{Minus: 12, Plus: 12}))
	g.Expect(pml[2]).To(Equal(gridspec.PMLLayers{}))

	spec, err := cfg.Spec()
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(spec.Wavelength).To(Equal(1.55))
	g.Expect(spec.AutoUsed()).To(BeTrue())
}

func TestSpecRejectsBadAxis(t *testing.T) {
	g := NewWithT(t)

	cfg := DefaultConfig()
	cfg.GridX = AxisConfig{Type: "uniform", Dl: -1}
	_, err := cfg.Spec()
	g.Expect(err).To(MatchError(gridspec.ErrNonPositiveDl))
	g.Expect(err.Error()).To(ContainSubstring("grid_x"))

	cfg = DefaultConfig()
	cfg.GridY = AxisConfig{Type: "hexagonal"}
	_, err = cfg.Spec()
	g.Expect(err).To(HaveOccurred())
	g.Expect(err.Error()).To(ContainSubstring("hexagonal"))
}

func TestAutoAxisDefaults(t *testing.T) {
	g := NewWithT(t)

	// An empty axis config falls back to the automatic defaults.
	cfg := &Config{}
	spec, err := cfg.Spec()
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(spec.AutoUsed()).To(BeTrue())
}

func TestPresets(t *testing.T) {
	g := NewWithT(t)

	names := ListPresets()
	g.Expect(names).NotTo(BeEmpty())
	g.Expect(names).To(ContainElement("auto"))

	for _, name := range names {
		cfg := GetPreset(name)
		g.Expect(cfg).NotTo(BeNil(), "preset %s", name)
		g.Expect(cfg.Structures).NotTo(BeEmpty(), "preset %s needs a domain structure", name)

		_, err := cfg.Spec()
		g.Expect(err).NotTo(HaveOccurred(), "preset %s must validate", name)
	}

	g.Expect(GetPreset("nonexistent")).To(BeNil())
}

func TestSaveLoad(t *testing.T) {
	g := NewWithT(t)

	cfg := GetPreset("waveguide")
	path := filepath.Join(t.TempDir(), "saved.yaml")
	g.Expect(Save(path, cfg)).To(Succeed())

	loaded, err := Load(path)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(loaded.Wavelength).To(Equal(cfg.Wavelength))
	g.Expect(loaded.GridZ.Dl).To(Equal(cfg.GridZ.Dl))
	g.Expect(loaded.Symmetry).To(Equal(cfg.Symmetry))
}
