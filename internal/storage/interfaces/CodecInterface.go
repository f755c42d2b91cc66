package interfaces

import (
	"io"

	"localjournal/internal/models"
)

// CodecInterface converts the whole store to and from one on-disk format.
// Encode always writes the header row first.
type CodecInterface interface {
	Name() string
	Encode(w io.Writer, entries []models.JournalEntry) error
	Decode(r io.Reader) ([]models.JournalEntry, error)
}
