package archive

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// backendTestSuite runs the same checks against any Backend implementation
func backendTestSuite(t *testing.T, newBackend func(t *testing.T) Backend) {
	t.Run("CreateBucketIsIdempotent", func(t *testing.T) {
		backend := newBackend(t)
		require.NoError(t, backend.CreateBucket([]byte("b")))
		require.NoError(t, backend.Put([]byte("b"), []byte("k"), []byte("v")))
		require.NoError(t, backend.CreateBucket([]byte("b")))

		v, err := backend.Get([]byte("b"), []byte("k"))
		require.NoError(t, err)
		assert.Equal(t, []byte("v"), v)
	})

	t.Run("PutAndGet", func(t *testing.T) {
		backend := newBackend(t)
		require.NoError(t, backend.CreateBucket([]byte("b")))
		require.NoError(t, backend.Put([]byte("b"), []byte("k"), []byte("first")))
		require.NoError(t, backend.Put([]byte("b"), []byte("k"), []byte("second")))

		v, err := backend.Get([]byte("b"), []byte("k"))
		require.NoError(t, err)
		assert.Equal(t, []byte("second"), v)

		missing, err := backend.Get([]byte("b"), []byte("nope"))
		require.NoError(t, err)
		assert.Nil(t, missing)
	})

	t.Run("MissingBucket", func(t *testing.T) {
		backend := newBackend(t)
		assert.ErrorIs(t, backend.Put([]byte("x"), []byte("k"), []byte("v")), ErrBucketNotFound)
		_, err := backend.Get([]byte("x"), []byte("k"))
		assert.ErrorIs(t, err, ErrBucketNotFound)
		assert.ErrorIs(t, backend.Delete([]byte("x"), []byte("k")), ErrBucketNotFound)
		assert.ErrorIs(t, backend.ForEach([]byte("x"), func(k, v []byte) error { return nil }), ErrBucketNotFound)
	})

	t.Run("Delete", func(t *testing.T) {
		backend := newBackend(t)
		require.NoError(t, backend.CreateBucket([]byte("b")))
		require.NoError(t, backend.Put([]byte("b"), []byte("k"), []byte("v")))
		require.NoError(t, backend.Delete([]byte("b"), []byte("k")))

		v, err := backend.Get([]byte("b"), []byte("k"))
		require.NoError(t, err)
		assert.Nil(t, v)
	})

	t.Run("ForEachIsOrdered", func(t *testing.T) {
		backend := newBackend(t)
		require.NoError(t, backend.CreateBucket([]byte("b")))
		for _, k := range []string{"c", "a", "b"} {
			require.NoError(t, backend.Put([]byte("b"), []byte(k), []byte("v"+k)))
		}

		var keys, values []string
		err := backend.ForEach([]byte("b"), func(k, v []byte) error {
			keys = append(keys, string(k))
			values = append(values, string(v))
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b", "c"}, keys)
		assert.Equal(t, []string{"va", "vb", "vc"}, values)
	})
}

func TestMemoryBackend(t *testing.T) {
	backendTestSuite(t, func(t *testing.T) Backend {
		return NewMemoryBackend()
	})
}

func TestBboltBackend(t *testing.T) {
	backendTestSuite(t, func(t *testing.T) Backend {
		backend, err := NewBboltBackend(filepath.Join(t.TempDir(), "test.db"))
		require.NoError(t, err)
		t.Cleanup(func() { backend.Close() })
		return backend
	})
}
