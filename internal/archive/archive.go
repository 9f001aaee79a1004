package archive

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"pkg.jsn.cam/casegen/internal/generator"
)

var runsBucket = []byte("runs")

// Run describes one generation run: everything needed to regenerate its output
type Run struct {
	ID        string           `json:"id"`
	Generator string           `json:"generator"`
	Config    generator.Config `json:"config"`
	Count     int              `json:"count"`
	Seed      uint64           `json:"seed"`
	Version   string           `json:"version"`
	Bytes     int64            `json:"bytes"`
	CreatedAt time.Time        `json:"created_at"`
}

// Archive records generation runs in a Backend
type Archive struct {
	backend Backend
	now     func() time.Time
}

// New wraps backend, creating the runs bucket if needed
func New(backend Backend) (*Archive, error) {
	if err := backend.CreateBucket(runsBucket); err != nil {
		return nil, fmt.Errorf("failed to create runs bucket: %w", err)
	}
	return &Archive{backend: backend, now: time.Now}, nil
}

// Open opens a bbolt-backed archive at path
func Open(path string) (*Archive, error) {
	backend, err := NewBboltBackend(path)
	if err != nil {
		return nil, err
	}
	a, err := New(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}
	return a, nil
}

// Record assigns the run an ID, version and timestamp when missing, then stores it
func (a *Archive) Record(run Run) (Run, error) {
	if run.ID == "" {
		run.ID = uuid.NewString()
	}
	if run.Version == "" {
		run.Version = ToolVersion
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = a.now().UTC()
	}

	data, err := json.Marshal(run)
	if err != nil {
		return Run{}, fmt.Errorf("failed to encode run: %w", err)
	}
	if err := a.backend.Put(runsBucket, []byte(run.ID), data); err != nil {
		return Run{}, fmt.Errorf("failed to store run %s: %w", run.ID, err)
	}
	return run, nil
}

// Get loads the run with the given ID
func (a *Archive) Get(id string) (Run, error) {
	data, err := a.backend.Get(runsBucket, []byte(id))
	if err != nil {
		return Run{}, err
	}
	if data == nil {
		return Run{}, fmt.Errorf("%w: %s", ErrRunNotFound, id)
	}

	var run Run
	if err := json.Unmarshal(data, &run); err != nil {
		return Run{}, fmt.Errorf("failed to decode run %s: %w", id, err)
	}
	return run, nil
}

// List returns all runs, oldest first
func (a *Archive) List() ([]Run, error) {
	var runs []Run
	err := a.backend.ForEach(runsBucket, func(k, v []byte) error {
		var run Run
		if err := json.Unmarshal(v, &run); err != nil {
			return fmt.Errorf("failed to decode run %s: %w", k, err)
		}
		runs = append(runs, run)
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(runs, func(i, j int) bool {
		return runs[i].CreatedAt.Before(runs[j].CreatedAt)
	})
	return runs, nil
}

// Delete removes a run; deleting an unknown run is an error
func (a *Archive) Delete(id string) error {
	if _, err := a.Get(id); err != nil {
		return err
	}
	return a.backend.Delete(runsBucket, []byte(id))
}

// Replayable loads a run and checks it was recorded by a compatible version
func (a *Archive) Replayable(id string) (Run, error) {
	run, err := a.Get(id)
	if err != nil {
		return Run{}, err
	}

	ok, err := IsCompatibleVersion(run.Version, ToolVersion)
	if err != nil {
		return Run{}, err
	}
	if !ok {
		return Run{}, fmt.Errorf("%w: run %s was recorded by %s, this is %s", ErrIncompatibleVersion, run.ID, run.Version, ToolVersion)
	}
	return run, nil
}

func (a *Archive) Close() error {
	return a.backend.Close()
}
