package storage

import (
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"

	"localjournal/internal/models"
	"localjournal/internal/storage/interfaces"
)

const defaultSheet = "Sheet1"

type XlsxCodec struct {
	sheet string
}

func NewXlsxCodec(sheet string) interfaces.CodecInterface {
	if sheet == "" {
		sheet = defaultSheet
	}
	return &XlsxCodec{sheet: sheet}
}

func (x *XlsxCodec) Name() string {
	return "xlsx"
}

// Encode refuses values excelize would truncate or rewrite, so the caller
// can store them in another format unchanged.
func (x *XlsxCodec) Encode(w io.Writer, entries []models.JournalEntry) error {
	for i, entry := range entries {
		for j, v := range entry.Values() {
			if err := checkCell(v); err != nil {
				return fmt.Errorf("entry %d column %q: %w", i, models.Columns[j], err)
			}
		}
	}

	f := excelize.NewFile()
	defer f.Close()

	if x.sheet != defaultSheet {
		if err := f.SetSheetName(defaultSheet, x.sheet); err != nil {
			return fmt.Errorf("rename sheet: %w", err)
		}
	}

	sw, err := f.NewStreamWriter(x.sheet)
	if err != nil {
		return fmt.Errorf("stream writer: %w", err)
	}
	if err = sw.SetRow("A1", toCells(models.Columns)); err != nil {
		return err
	}
	for i, entry := range entries {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err = sw.SetRow(cell, toCells(entry.Values())); err != nil {
			return err
		}
	}
	if err = sw.Flush(); err != nil {
		return err
	}

	_, err = f.WriteTo(w)
	return err
}

func (x *XlsxCodec) Decode(r io.Reader) ([]models.JournalEntry, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheet := x.sheet
	if idx, _ := f.GetSheetIndex(sheet); idx < 0 {
		// Hand-edited workbooks may have renamed the sheet; read the first one.
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, ErrMissingHeader
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, err
	}
	return rowsToEntries(rows)
}

func toCells(values []string) []interface{} {
	cells := make([]interface{}, len(values))
	for i, v := range values {
		cells[i] = v
	}
	return cells
}

// checkCell accepts only what an xlsx cell holds verbatim: at most
// TotalCellChars characters, all of them legal in XML 1.0.
func checkCell(v string) error {
	if utf8.RuneCountInString(v) > excelize.TotalCellChars {
		return ErrCellTooLong
	}
	for i, r := range v {
		if r == utf8.RuneError {
			if _, size := utf8.DecodeRuneInString(v[i:]); size == 1 {
				return ErrIllegalChar
			}
		}
		if !isXMLChar(r) {
			return ErrIllegalChar
		}
	}
	return nil
}

func isXMLChar(r rune) bool {
	switch {
	case r == '\t', r == '\n', r == '\r':
		return true
	case r >= 0x20 && r <= 0xD7FF:
		return true
	case r >= 0xE000 && r <= 0xFFFD:
		return true
	case r >= 0x10000 && r <= 0x10FFFF:
		return true
	}
	return false
}
