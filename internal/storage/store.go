// Package storage keeps imported position logs in a run directory.
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ognjenzekovic/bee-foraging-hpc/internal/trace"
)

const (
	metadataFile = "metadata.json"
	databaseFile = "trace.db"
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

// Dir returns the directory of a run.
func (s *Store) Dir(runID string) string {
	return filepath.Join(s.baseDir, runID)
}

type RunMetadata struct {
	ID            string    `json:"id"`
	Source        string    `json:"source"`
	Timestamp     time.Time `json:"timestamp"`
	Records       int       `json:"records"`
	Timesteps     int       `json:"timesteps"`
	Bees          int       `json:"bees"`
	Flowers       int       `json:"flowers"`
	FirstTimestep int       `json:"first_timestep"`
	LastTimestep  int       `json:"last_timestep"`
}

// NewRunID derives a run id from the source file name.
func NewRunID(source string) string {
	stem := strings.TrimSuffix(filepath.Base(source), filepath.Ext(source))
	if stem == "" || stem == "." || stem == string(filepath.Separator) {
		stem = "run"
	}
	return fmt.Sprintf("%s_%s", stem, uuid.New().String()[:8])
}

// Import stores t as a new run.
func (s *Store) Import(source string, t trace.Table) (RunMetadata, error) {
	runID := NewRunID(source)
	runDir := s.Dir(runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return RunMetadata{}, err
	}

	steps := trace.Timesteps(t)
	flowers, bees := t.Count()
	meta := RunMetadata{
		ID:        runID,
		Source:    source,
		Timestamp: time.Now(),
		Records:   len(t),
		Timesteps: len(steps),
		Bees:      bees,
		Flowers:   flowers,
	}
	if len(steps) > 0 {
		meta.FirstTimestep = steps[0]
		meta.LastTimestep = steps[len(steps)-1]
	}

	db, err := OpenDB(filepath.Join(runDir, databaseFile))
	if err != nil {
		return RunMetadata{}, err
	}
	defer db.Close()
	if err := db.SaveRecords(t); err != nil {
		return RunMetadata{}, fmt.Errorf("save records: %w", err)
	}

	metaFile, err := os.Create(filepath.Join(runDir, metadataFile))
	if err != nil {
		return RunMetadata{}, err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return RunMetadata{}, err
	}

	return meta, nil
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

		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}

		runs = append(runs, *meta)
	}

	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.Dir(runID), metadataFile))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

// Exists reports whether runID names a stored run.
func (s *Store) Exists(runID string) bool {
	if runID == "" || strings.ContainsAny(runID, `/\`) {
		return false
	}
	_, err := os.Stat(filepath.Join(s.Dir(runID), metadataFile))
	return err == nil
}

// Open opens the record database of a run.
func (s *Store) Open(runID string) (*DB, error) {
	path := filepath.Join(s.Dir(runID), databaseFile)
	if _, err := os.Stat(path); err != nil {
		return nil, err
	}
	return OpenDB(path)
}

// LoadTable returns the records of a run in their original order.
func (s *Store) LoadTable(runID string) (trace.Table, error) {
	db, err := s.Open(runID)
	if err != nil {
		return nil, err
	}
	defer db.Close()
	return db.Records()
}
