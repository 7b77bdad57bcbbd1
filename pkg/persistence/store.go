package persistence

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/openiio/iio-go/pkg/iioxml"
	"github.com/openiio/iio-go/pkg/model"
)

// IndexVersion is the current version of the index file format.
const IndexVersion = 1

// ErrSnapshotNotFound reports a snapshot name absent from the index.
var ErrSnapshotNotFound = errors.New("snapshot not found")

// Snapshot describes one saved context description.
type Snapshot struct {
	// ID uniquely identifies the snapshot (UUID).
	ID string `json:"id"`

	// Name is the caller-chosen snapshot name, unique within a store.
	Name string `json:"name"`

	// File is the description file name, relative to the store directory.
	File string `json:"file"`

	// Description is the context description at save time.
	Description string `json:"description,omitempty"`

	// Devices is the context's device count at save time.
	Devices int `json:"devices"`

	// SavedAt is when the snapshot was taken.
	SavedAt time.Time `json:"saved_at"`
}

// index is the on-disk snapshot catalogue.
type index struct {
	Version   int        `json:"version"`
	Snapshots []Snapshot `json:"snapshots,omitempty"`
}

// Store manages context snapshots in one directory.
type Store struct {
	mu  sync.Mutex
	dir string
}

// NewStore creates a store rooted at the given directory.
// The directory is created on first save.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Save snapshots a context under the given name, replacing any
// previous snapshot with that name. Returns the snapshot record.
func (s *Store) Save(name string, ctx *model.Context) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return Snapshot{}, err
	}

	text, err := iioxml.EncodeContext(ctx)
	if err != nil {
		return Snapshot{}, fmt.Errorf("encoding context: %w", err)
	}

	snap := Snapshot{
		ID:          uuid.New().String(),
		Name:        name,
		File:        name + ".xml",
		Description: ctx.Description(),
		Devices:     len(ctx.Devices()),
		SavedAt:     time.Now(),
	}

	if err := os.WriteFile(filepath.Join(s.dir, snap.File), []byte(text), 0644); err != nil {
		return Snapshot{}, err
	}

	idx, err := s.loadIndex()
	if err != nil {
		return Snapshot{}, err
	}

	replaced := false
	for i, existing := range idx.Snapshots {
		if existing.Name == name {
			idx.Snapshots[i] = snap
			replaced = true
			break
		}
	}
	if !replaced {
		idx.Snapshots = append(idx.Snapshots, snap)
	}

	if err := s.saveIndex(idx); err != nil {
		return Snapshot{}, err
	}
	return snap, nil
}

// Load rebuilds the named snapshot through the XML codec.
func (s *Store) Load(name string, params iioxml.Params) (*model.Context, error) {
	s.mu.Lock()
	snap, err := s.find(name)
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}

	return iioxml.CreateContext(iioxml.FromFile(filepath.Join(s.dir, snap.File)), params)
}

// List returns the snapshot records in save order.
func (s *Store) List() ([]Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx, err := s.loadIndex()
	if err != nil {
		return nil, err
	}
	return idx.Snapshots, nil
}

// Remove deletes the named snapshot and its description file.
func (s *Store) Remove(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx, err := s.loadIndex()
	if err != nil {
		return err
	}

	for i, snap := range idx.Snapshots {
		if snap.Name != name {
			continue
		}
		idx.Snapshots = append(idx.Snapshots[:i], idx.Snapshots[i+1:]...)
		if err := os.Remove(filepath.Join(s.dir, snap.File)); err != nil && !os.IsNotExist(err) {
			return err
		}
		return s.saveIndex(idx)
	}
	return fmt.Errorf("%w: %s", ErrSnapshotNotFound, name)
}

func (s *Store) find(name string) (Snapshot, error) {
	idx, err := s.loadIndex()
	if err != nil {
		return Snapshot{}, err
	}
	for _, snap := range idx.Snapshots {
		if snap.Name == name {
			return snap, nil
		}
	}
	return Snapshot{}, fmt.Errorf("%w: %s", ErrSnapshotNotFound, name)
}

func (s *Store) indexPath() string {
	return filepath.Join(s.dir, "index.json")
}

func (s *Store) loadIndex() (*index, error) {
	data, err := os.ReadFile(s.indexPath())
	if os.IsNotExist(err) {
		return &index{Version: IndexVersion}, nil
	}
	if err != nil {
		return nil, err
	}

	idx := &index{}
	if err := json.Unmarshal(data, idx); err != nil {
		return nil, err
	}
	return idx, nil
}

func (s *Store) saveIndex(idx *index) error {
	idx.Version = IndexVersion

	data, err := json.MarshalIndent(idx, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.indexPath(), data, 0644)
}
