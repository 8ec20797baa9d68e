package asymmetric

import "errors"

var (
	// ErrUnsupportedAlgorithm is returned when no module is registered for an algorithm.
	ErrUnsupportedAlgorithm = errors.New("no encryption module is registered for this algorithm")
	// ErrAlreadyRegistered is returned when a second module claims an algorithm name.
	ErrAlreadyRegistered = errors.New("an encryption module is already registered for this algorithm")
	// ErrInvalidKeyLength is returned for key lengths the module does not generate.
	ErrInvalidKeyLength = errors.New("unsupported key length")
	// ErrNilKey is returned when a nil key is passed to a module.
	ErrNilKey = errors.New("key cannot be nil")
	// ErrKeyTypeMismatch is returned when a key belongs to another algorithm.
	ErrKeyTypeMismatch = errors.New("key does not match the module algorithm")
	// ErrDataTooLong is returned when a message exceeds the single block limit of the key.
	ErrDataTooLong = errors.New("data exceeds the block size of the key")
	// ErrMalformedKey is returned when a key file cannot be decoded.
	ErrMalformedKey = errors.New("malformed key encoding")
)
