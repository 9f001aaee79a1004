package archive

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pkg.jsn.cam/casegen/internal/generator"
)

func newTestArchive(t *testing.T) *Archive {
	t.Helper()
	a, err := New(NewMemoryBackend())
	require.NoError(t, err)

	clock := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	a.now = func() time.Time {
		clock = clock.Add(time.Minute)
		return clock
	}
	return a
}

func TestRecordAndGet(t *testing.T) {
	a := newTestArchive(t)

	run, err := a.Record(Run{
		Generator: "matrix",
		Config:    generator.Config{Size: 5},
		Count:     100,
		Seed:      42,
		Bytes:     1234,
	})
	require.NoError(t, err)

	_, err = uuid.Parse(run.ID)
	assert.NoError(t, err)
	assert.Equal(t, ToolVersion, run.Version)
	assert.False(t, run.CreatedAt.IsZero())

	got, err := a.Get(run.ID)
	require.NoError(t, err)
	assert.Equal(t, run, got)
}

func TestGetMissingRun(t *testing.T) {
	a := newTestArchive(t)
	_, err := a.Get("does-not-exist")
	assert.ErrorIs(t, err, ErrRunNotFound)
}

func TestListOrdersByCreation(t *testing.T) {
	a := newTestArchive(t)

	var ids []string
	for _, name := range []string{"triangle", "matrix", "triangle"} {
		run, err := a.Record(Run{Generator: name, Count: 1})
		require.NoError(t, err)
		ids = append(ids, run.ID)
	}

	runs, err := a.List()
	require.NoError(t, err)
	require.Len(t, runs, 3)
	for i, run := range runs {
		assert.Equal(t, ids[i], run.ID)
	}
}

func TestDelete(t *testing.T) {
	a := newTestArchive(t)
	run, err := a.Record(Run{Generator: "matrix"})
	require.NoError(t, err)

	require.NoError(t, a.Delete(run.ID))
	_, err = a.Get(run.ID)
	assert.ErrorIs(t, err, ErrRunNotFound)
	assert.ErrorIs(t, a.Delete(run.ID), ErrRunNotFound)
}

func TestReplayable(t *testing.T) {
	a := newTestArchive(t)

	current, err := a.Record(Run{Generator: "matrix"})
	require.NoError(t, err)
	_, err = a.Replayable(current.ID)
	assert.NoError(t, err)

	minor, err := a.Record(Run{Generator: "matrix", Version: "v1.7.3"})
	require.NoError(t, err)
	_, err = a.Replayable(minor.ID)
	assert.NoError(t, err)

	old, err := a.Record(Run{Generator: "matrix", Version: "v0.9.0"})
	require.NoError(t, err)
	_, err = a.Replayable(old.ID)
	assert.ErrorIs(t, err, ErrIncompatibleVersion)

	bogus, err := a.Record(Run{Generator: "matrix", Version: "latest"})
	require.NoError(t, err)
	_, err = a.Replayable(bogus.ID)
	assert.Error(t, err)
}

func TestIsCompatibleVersion(t *testing.T) {
	tests := []struct {
		run, tool string
		want      bool
		wantErr   bool
	}{
		{"v1.0.0", "v1.0.0", true, false},
		{"v1.2.0", "v1.0.5", true, false},
		{"v2.0.0", "v1.0.0", false, false},
		{"1.0.0", "v1.0.0", false, true},
		{"v1.0.0", "", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.run+"_"+tt.tool, func(t *testing.T) {
			got, err := IsCompatibleVersion(tt.run, tt.tool)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOpenPersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runs.db")

	a, err := Open(path)
	require.NoError(t, err)
	run, err := a.Record(Run{Generator: "triangle", Config: generator.Config{Radius: 10}, Count: 3, Seed: 9})
	require.NoError(t, err)
	require.NoError(t, a.Close())

	b, err := Open(path)
	require.NoError(t, err)
	defer b.Close()

	got, err := b.Get(run.ID)
	require.NoError(t, err)
	assert.Equal(t, run.Generator, got.Generator)
	assert.Equal(t, run.Config, got.Config)
	assert.Equal(t, run.Seed, got.Seed)
	assert.True(t, run.CreatedAt.Equal(got.CreatedAt))
}
