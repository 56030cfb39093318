package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/san-kum/fdtdgrid/internal/config"
	"github.com/san-kum/fdtdgrid/internal/grid"
	"github.com/san-kum/fdtdgrid/internal/storage"
	"github.com/san-kum/fdtdgrid/internal/tui"
	"github.com/san-kum/fdtdgrid/internal/viz"
)

var (
	dataDir    string
	configFile string
	preset     string
	runName    string
	dl         float64
	wavelength float64
	exportFmt  string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "fdtdgrid",
		Short: "simulation grid generation for finite-difference electromagnetics",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".fdtdgrid", "data directory")

	buildCmd := &cobra.Command{
		Use:   "build",
		Short: "build a grid from a config file or preset",
		RunE:  buildGrid,
	}
	buildCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	buildCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	buildCmd.Flags().StringVar(&runName, "name", "grid", "run name")
	buildCmd.Flags().Float64Var(&dl, "dl", 0, "override: uniform step on all axes")
	buildCmd.Flags().Float64Var(&wavelength, "wavelength", 0, "override: free-space wavelength")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored grids",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot step-size profiles of a stored grid",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export grid boundaries",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}
	exportCmd.Flags().StringVar(&exportFmt, "format", "csv", "export format (csv or json)")

	inspectCmd := &cobra.Command{
		Use:   "inspect [run_id]",
		Short: "interactively inspect a stored grid",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store := storage.New(dataDir)
			g, err := store.LoadGrid(args[0])
			if err != nil {
				return err
			}
			return tui.Inspect(g, args[0])
		},
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, p := range config.ListPresets() {
				fmt.Println(p)
			}
			return nil
		},
	}

	rootCmd.AddCommand(buildCmd, listCmd, plotCmd, exportCmd, inspectCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func buildGrid(cmd *cobra.Command, args []string) error {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}

	if dl > 0 {
		uniform := config.AxisConfig{Type: "uniform", Dl: dl}
		cfg.GridX, cfg.GridY, cfg.GridZ = uniform, uniform, uniform
	}
	if wavelength > 0 {
		cfg.Wavelength = wavelength
	}

	spec, err := cfg.Spec()
	if err != nil {
		return err
	}

	structures := cfg.GridStructures()
	if len(structures) == 0 {
		return fmt.Errorf("config defines no structures; the first structure is the simulation domain")
	}

	g, err := spec.Build(structures, cfg.Symmetry, cfg.GridSources(), cfg.PML())
	if err != nil {
		return err
	}

	store := storage.New(dataDir)
	if err := store.Init(); err != nil {
		return err
	}
	runID, err := store.Save(runName, cfg.Wavelength, g)
	if err != nil {
		return err
	}

	fmt.Println(viz.Summary(g))
	fmt.Printf("saved: %s\n", runID)
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	store := storage.New(dataDir)
	runs, err := store.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no stored grids")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIMESTAMP\tCELLS\tMIN DL\tMAX DL")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%dx%dx%d\t%.4g\t%.4g\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.NumCells[0], run.NumCells[1], run.NumCells[2],
			minOf(run.MinStep), maxOf(run.MaxStep),
		)
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	store := storage.New(dataDir)
	g, err := store.LoadGrid(args[0])
	if err != nil {
		return err
	}

	fmt.Println(viz.Summary(g))
	for _, axis := range []grid.Axis{grid.X, grid.Y, grid.Z} {
		fmt.Println(viz.StepProfile(g.Boundaries.Along(axis), axis, 80, 10))
		fmt.Println()
	}
	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	store := storage.New(dataDir)
	g, err := store.LoadGrid(args[0])
	if err != nil {
		return err
	}

	switch exportFmt {
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]grid.Coords1D{
			"x": g.Boundaries.X,
			"y": g.Boundaries.Y,
			"z": g.Boundaries.Z,
		})
	case "csv":
		w := csv.NewWriter(os.Stdout)
		defer w.Flush()
		if err := w.Write([]string{"axis", "index", "coord"}); err != nil {
			return err
		}
		for _, axis := range []grid.Axis{grid.X, grid.Y, grid.Z} {
			for i, b := range g.Boundaries.Along(axis) {
				if err := w.Write([]string{axis.String(), strconv.Itoa(i), strconv.FormatFloat(b, 'g', -1, 64)}); err != nil {
					return err
				}
			}
		}
		return nil
	default:
		return fmt.Errorf("unknown format: %s (use csv or json)", exportFmt)
	}
}

func minOf(v [3]float64) float64 {
	m := v[0]
	for _, x := range v[1:] {
		if x < m {
			m = x
		}
	}
	return m
}

func maxOf(v [3]float64) float64 {
	m := v[0]
	for _, x := range v[1:] {
		if x > m {
			m = x
		}
	}
	return m
}
