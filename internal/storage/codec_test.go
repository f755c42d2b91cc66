package storage

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"localjournal/internal/models"
)

func TestCsvCodec_HeaderOnlyForEmptyStore(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewCsvCodec().Encode(&buf, nil))
	assert.Equal(t, strings.Join(models.Columns, ",")+"\n", buf.String())
}

func TestCsvCodec_Roundtrip(t *testing.T) {
	codec := NewCsvCodec()
	want := entries(3)

	var buf bytes.Buffer
	require.NoError(t, codec.Encode(&buf, want))

	got, err := codec.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestCsvCodec_DecodeRaggedRows(t *testing.T) {
	data := "Date,Time,Location\n01/01/2025,08:00\n02/01/2025,09:00,Park,extra\n"
	got, err := NewCsvCodec().Decode(strings.NewReader(data))
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, models.JournalEntry{Date: "01/01/2025", Time: "08:00"}, got[0])
	assert.Equal(t, models.JournalEntry{Date: "02/01/2025", Time: "09:00", Location: "Park"}, got[1])
}

func TestCsvCodec_KeepsCarriageReturns(t *testing.T) {
	codec := NewCsvCodec()
	want := []models.JournalEntry{{
		Date:       "01/01/2025",
		Thoughts:   "a\r\nb",
		Reflection: "lone\rreturn",
		Gratitude:  "\r\n",
		NextSteps:  "x\x0by",
	}}

	var buf bytes.Buffer
	require.NoError(t, codec.Encode(&buf, want))

	got, err := codec.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestCsvCodec_DecodeCRLFRecordSeparators(t *testing.T) {
	data := "Date,Time,Summary\r\n01/01/2025,08:00,\"two\r\nlines\"\r\n02/01/2025,09:00,plain\r\n"
	got, err := NewCsvCodec().Decode(strings.NewReader(data))
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, models.JournalEntry{Date: "01/01/2025", Time: "08:00", Summary: "two\r\nlines"}, got[0])
	assert.Equal(t, models.JournalEntry{Date: "02/01/2025", Time: "09:00", Summary: "plain"}, got[1])
}

func TestCsvCodec_BlankRows(t *testing.T) {
	data := "Date,Time\n01/01/2025,08:00\n,\n02/01/2025,09:00\n,\n,\n"
	got, err := NewCsvCodec().Decode(strings.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, []models.JournalEntry{
		{Date: "01/01/2025", Time: "08:00"},
		{},
		{Date: "02/01/2025", Time: "09:00"},
	}, got)
}

func TestCsvCodec_DecodeEmpty(t *testing.T) {
	_, err := NewCsvCodec().Decode(strings.NewReader(""))
	assert.ErrorIs(t, err, ErrMissingHeader)
}

func TestCsvCodec_DecodeForeignHeader(t *testing.T) {
	_, err := NewCsvCodec().Decode(strings.NewReader("a,b\n1,2\n"))
	assert.ErrorIs(t, err, ErrUnknownHeader)
}

func TestXlsxCodec_HeaderRowFirst(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewXlsxCodec("Sheet1").Encode(&buf, entries(1)))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Sheet1")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, models.Columns, rows[0])
	assert.Equal(t, "01/01/2025", rows[1][0])
}

func TestXlsxCodec_CustomSheetName(t *testing.T) {
	codec := NewXlsxCodec("Journal")
	want := entries(2)

	var buf bytes.Buffer
	require.NoError(t, codec.Encode(&buf, want))

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, []string{"Journal"}, f.GetSheetList())
	f.Close()

	got, err := codec.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestXlsxCodec_ReadsFirstSheetWhenRenamed(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewXlsxCodec("Renamed").Encode(&buf, entries(1)))

	got, err := NewXlsxCodec("Sheet1").Decode(&buf)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestXlsxCodec_DecodeGarbage(t *testing.T) {
	_, err := NewXlsxCodec("Sheet1").Decode(strings.NewReader("definitely not a zip"))
	assert.Error(t, err)
}

func TestXlsxCodec_RejectsOverlongCell(t *testing.T) {
	long := []models.JournalEntry{{Thoughts: strings.Repeat("é", excelize.TotalCellChars+1)}}
	err := NewXlsxCodec("Sheet1").Encode(&bytes.Buffer{}, long)
	assert.ErrorIs(t, err, ErrCellTooLong)

	limit := []models.JournalEntry{{Thoughts: strings.Repeat("a", excelize.TotalCellChars)}}
	var buf bytes.Buffer
	require.NoError(t, NewXlsxCodec("Sheet1").Encode(&buf, limit))
	got, err := NewXlsxCodec("Sheet1").Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, limit, got)
}

func TestXlsxCodec_RejectsIllegalCharacters(t *testing.T) {
	for _, v := range []string{"x\x0by", "\x00", "bell\x07", "bad utf8 \xff", "\uFFFE"} {
		err := NewXlsxCodec("Sheet1").Encode(&bytes.Buffer{}, []models.JournalEntry{{Summary: v}})
		assert.ErrorIs(t, err, ErrIllegalChar, "%q", v)
	}
}

func TestXlsxCodec_KeepsWhitespaceControls(t *testing.T) {
	codec := NewXlsxCodec("Sheet1")
	want := []models.JournalEntry{{Date: "01/01/2025", Thoughts: "a\tb\nc", Summary: "emoji 📓"}}

	var buf bytes.Buffer
	require.NoError(t, codec.Encode(&buf, want))

	got, err := codec.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
