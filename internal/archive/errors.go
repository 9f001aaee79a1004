package archive

import "errors"

var (
	ErrBucketNotFound      = errors.New("bucket not found")
	ErrRunNotFound         = errors.New("run not found")
	ErrIncompatibleVersion = errors.New("incompatible version")
)
