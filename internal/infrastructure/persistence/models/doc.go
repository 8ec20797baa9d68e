// Package models contains the GORM database models of the persistence layer,
// kept apart from the domain entities they convert to and from.
package models
