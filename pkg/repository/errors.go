package repository

import "errors"

// Sentinel errors the repository returns; callers use errors.Is against
// these rather than matching on string content.
var (
	// ErrDataNotFound is returned when a lookup for a known identifier type
	// (move, species, item, ability) finds no matching record in the base
	// catalogue.
	ErrDataNotFound = errors.New("repository: no matching record")

	// ErrInvalidData is returned when a catalogue or overlay file fails to
	// decode, or when an overlay patch fails to merge into a record.
	ErrInvalidData = errors.New("repository: invalid catalogue data")

	// ErrUnsupportedGeneration is returned when a lookup names a generation
	// outside 1..9.
	ErrUnsupportedGeneration = errors.New("repository: unsupported generation")

	// ErrDuplicateEntry is returned when a catalogue file defines the same
	// normalized identifier twice.
	ErrDuplicateEntry = errors.New("repository: duplicate catalogue entry")
)
