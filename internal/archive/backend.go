package archive

// Backend is the key-value store runs are kept in.
// Values are opaque bytes; the Archive decides the encoding.
type Backend interface {
	CreateBucket(name []byte) error
	Put(bucket, key, value []byte) error
	// Get returns nil without error when the key is absent
	Get(bucket, key []byte) ([]byte, error)
	Delete(bucket, key []byte) error
	// ForEach visits keys in ascending byte order
	ForEach(bucket []byte, fn func(k, v []byte) error) error
	Close() error
}
