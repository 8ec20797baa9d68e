package keys

import "errors"

var (
	// ErrKeyNotFound is returned when no key metadata matches an id.
	ErrKeyNotFound = errors.New("key not found")
	// ErrPrivateKeyExport is returned when the file of a private key is requested.
	ErrPrivateKeyExport = errors.New("private keys cannot be exported")
	// ErrInvalidMetadata is returned when key metadata or a query fails validation.
	ErrInvalidMetadata = errors.New("validation failed")
)
