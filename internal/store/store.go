// Package store persists animation run records: parameters as JSON and
// the per-frame energy series as CSV, one directory per run.
package store

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

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
	ID          string    `json:"id"`
	Timestamp   time.Time `json:"timestamp"`
	Bodies      int       `json:"bodies"`
	Grid        int       `json:"grid"`
	Dims        int       `json:"dims"`
	Frames      int       `json:"frames"`
	Steps       int       `json:"steps"`
	Dt          float64   `json:"dt"`
	Seed        int64     `json:"seed"`
	Style       string    `json:"style"`
	Init        string    `json:"init"`
	EnergyDrift float64   `json:"energy_drift"`
}

// Save writes one run record and returns its generated ID.
func (s *Store) Save(meta RunMetadata, energies []float64) (string, error) {
	runID := fmt.Sprintf("run_%d", time.Now().UnixNano())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta.ID = runID
	meta.Timestamp = time.Now()

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

	csvFile, err := os.Create(filepath.Join(runDir, "energy.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write([]string{"frame", "energy"}); err != nil {
		return "", err
	}
	for i, e := range energies {
		row := []string{
			strconv.Itoa(i),
			strconv.FormatFloat(e, 'f', 6, 64),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return runID, nil
}

// List returns metadata for every stored run, skipping unreadable
// entries.
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

// LoadEnergies reads back the per-frame energy series of a run.
func (s *Store) LoadEnergies(runID string) ([]float64, error) {
	f, err := os.Open(filepath.Join(s.baseDir, runID, "energy.csv"))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return []float64{}, nil
	}

	energies := make([]float64, 0, len(records)-1)
	for _, record := range records[1:] {
		if len(record) < 2 {
			continue
		}
		e, err := strconv.ParseFloat(record[1], 64)
		if err != nil {
			continue
		}
		energies = append(energies, e)
	}
	return energies, nil
}
