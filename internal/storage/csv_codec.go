package storage

import (
	"bytes"
	"encoding/csv"
	"io"

	"localjournal/internal/models"
	"localjournal/internal/storage/interfaces"
)

type CsvCodec struct{}

func NewCsvCodec() interfaces.CodecInterface {
	return &CsvCodec{}
}

func (c *CsvCodec) Name() string {
	return "csv"
}

func (c *CsvCodec) Encode(w io.Writer, entries []models.JournalEntry) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(models.Columns); err != nil {
		return err
	}
	for _, entry := range entries {
		if err := cw.Write(entry.Values()); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func (c *CsvCodec) Decode(r io.Reader) ([]models.JournalEntry, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	cr := csv.NewReader(bytes.NewReader(keepQuotedCRLF(data)))
	cr.FieldsPerRecord = -1
	records, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	return rowsToEntries(records)
}

// keepQuotedCRLF doubles the CR of every CRLF inside a quoted field.
// csv.Reader folds each line ending CRLF into LF, including those inside
// quoted fields, so the extra CR survives as the one that was written.
// Record separators outside quotes are left alone.
func keepQuotedCRLF(data []byte) []byte {
	out := make([]byte, 0, len(data))
	quoted := false
	for i, b := range data {
		switch {
		case b == '"':
			quoted = !quoted
		case b == '\r' && quoted && i+1 < len(data) && data[i+1] == '\n':
			out = append(out, '\r')
		}
		out = append(out, b)
	}
	return out
}
