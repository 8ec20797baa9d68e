// Package app implements the key pair service: it ties the algorithm registry,
// the key directory and the metadata repository together.
package app
