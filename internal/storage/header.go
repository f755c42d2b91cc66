package storage

import (
	"slices"
	"strings"

	"localjournal/internal/models"
)

// rowsToEntries treats rows[0] as the header and maps every following row
// onto the journal schema. Blank rows after the last non-blank one are
// spreadsheet padding and dropped; blank rows before it are empty entries.
func rowsToEntries(rows [][]string) ([]models.JournalEntry, error) {
	if len(rows) == 0 || isBlank(rows[0]) {
		return nil, ErrMissingHeader
	}
	header := make([]string, len(rows[0]))
	for i, col := range rows[0] {
		header[i] = strings.TrimSpace(col)
	}
	if !slices.ContainsFunc(header, func(col string) bool { return slices.Contains(models.Columns, col) }) {
		return nil, ErrUnknownHeader
	}

	body := rows[1:]
	for len(body) > 0 && isBlank(body[len(body)-1]) {
		body = body[:len(body)-1]
	}
	entries := make([]models.JournalEntry, 0, len(body))
	for _, row := range body {
		entries = append(entries, models.EntryFromRow(header, row))
	}
	return entries, nil
}

func isBlank(row []string) bool {
	for _, cell := range row {
		if cell != "" {
			return false
		}
	}
	return true
}
