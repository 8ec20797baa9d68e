// Package keys defines the catalogue of generated key pairs: key metadata, queries,
// the repository contract and the service that works with key pairs by id.
package keys
