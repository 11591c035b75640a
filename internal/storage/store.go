package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	metadataFile = "metadata.json"
	samplesFile  = "samples.csv"
)

// ErrRunNotFound is returned when a run id has no metadata on disk.
var ErrRunNotFound = errors.New("storage: run not found")

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
	ID        string             `json:"id"`
	Kind      string             `json:"kind"`
	Timestamp time.Time          `json:"timestamp"`
	Params    map[string]float64 `json:"params"`
	Summary   map[string]string  `json:"summary,omitempty"`
	Columns   []string           `json:"columns"`
	Rows      int                `json:"rows"`
}

// Run describes one computation to persist: its kind (orbit, bifurcation,
// henon, ...), the parameters it ran with and the sample table it produced.
type Run struct {
	Kind    string
	Params  map[string]float64
	Summary map[string]string
	Table   Table
}

func newRunID(kind string) string {
	return fmt.Sprintf("%s_%s", kind, strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
}

func (s *Store) Save(run Run) (string, error) {
	if run.Kind == "" {
		return "", fmt.Errorf("storage: run kind is required")
	}
	if err := run.Table.check(); err != nil {
		return "", err
	}

	runID := newRunID(run.Kind)
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Kind:      run.Kind,
		Timestamp: time.Now(),
		Params:    run.Params,
		Summary:   run.Summary,
		Columns:   run.Table.Columns,
		Rows:      len(run.Table.Rows),
	}

	if err := writeJSON(filepath.Join(runDir, metadataFile), meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, samplesFile))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	if err := run.Table.WriteCSV(csvFile); err != nil {
		return "", err
	}

	return runID, csvFile.Close()
}

func writeJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return err
	}
	return f.Close()
}

// List returns every readable run, oldest first.
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

		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}

		runs = append(runs, *meta)
	}

	sort.SliceStable(runs, func(i, j int) bool {
		return runs[i].Timestamp.Before(runs[j].Timestamp)
	})
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	metaPath := filepath.Join(s.baseDir, runID, metadataFile)
	data, err := os.ReadFile(metaPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%s: %w", runID, ErrRunNotFound)
		}
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("%s: decode metadata: %w", runID, err)
	}

	return &meta, nil
}

func (s *Store) LoadTable(runID string) (*Table, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, samplesFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%s: %w", runID, ErrRunNotFound)
		}
		return nil, err
	}
	defer file.Close()

	return ReadCSV(file)
}

// ExportJSON writes a run's metadata and samples as one JSON document.
// Non-finite samples are written as null.
func (s *Store) ExportJSON(w io.Writer, runID string) error {
	meta, err := s.Load(runID)
	if err != nil {
		return err
	}
	table, err := s.LoadTable(runID)
	if err != nil {
		return err
	}

	rows := make([][]*float64, len(table.Rows))
	for i, row := range table.Rows {
		rows[i] = make([]*float64, len(row))
		for j := range row {
			if finite(row[j]) {
				rows[i][j] = &row[j]
			}
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(struct {
		RunMetadata
		Data [][]*float64 `json:"data"`
	}{*meta, rows})
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
