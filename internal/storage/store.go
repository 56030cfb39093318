package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/san-kum/fdtdgrid/internal/grid"
)

// Store persists built grids under a base directory, one subdirectory per
// run with a metadata.json and a boundaries.csv.
type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Timestamp  time.Time  `json:"timestamp"`
	Wavelength float64    `json:"wavelength,omitempty"`
	NumCells   [3]int     `json:"num_cells"`
	MinStep    [3]float64 `json:"min_step"`
	MaxStep    [3]float64 `json:"max_step"`
}

// Save writes the grid and its metadata, returning the run ID.
func (s *Store) Save(name string, wavelength float64, g *grid.Grid) (string, error) {
	runID := fmt.Sprintf("%s_%d", name, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:         runID,
		Name:       name,
		Timestamp:  time.Now(),
		Wavelength: wavelength,
		NumCells:   g.NumCells(),
	}
	for a, axis := range []grid.Axis{grid.X, grid.Y, grid.Z} {
		bounds := g.Boundaries.Along(axis)
		meta.MinStep[a] = bounds.MinStep()
		meta.MaxStep[a] = bounds.MaxStep()
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "boundaries.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write([]string{"axis", "index", "coord"}); err != nil {
		return "", err
	}
	for _, axis := range []grid.Axis{grid.X, grid.Y, grid.Z} {
		for i, b := range g.Boundaries.Along(axis) {
			row := []string{axis.String(), strconv.Itoa(i), strconv.FormatFloat(b, 'g', -1, 64)}
			if err := w.Write(row); err != nil {
				return "", err
			}
		}
	}

	return runID, nil
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name(), "metadata.json"))
		if err != nil {
			continue
		}

		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}

		runs = append(runs, meta)
	}

	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

// LoadGrid reads the boundary coordinates back into a Grid.
func (s *Store) LoadGrid(runID string) (*grid.Grid, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "boundaries.csv"))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	var coords grid.Coords
	for i, record := range records {
		if i == 0 || len(record) != 3 {
			continue
		}
		val, err := strconv.ParseFloat(record[2], 64)
		if err != nil {
			return nil, fmt.Errorf("storage: bad coord at row %d: %w", i, err)
		}
		switch record[0] {
		case "x":
			coords.X = append(coords.X, val)
		case "y":
			coords.Y = append(coords.Y, val)
		case "z":
			coords.Z = append(coords.Z, val)
		}
	}

	g := &grid.Grid{Boundaries: coords}
	if err := g.Validate(); err != nil {
		return nil, err
	}
	return g, nil
}
