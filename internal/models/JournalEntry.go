package models

const (
	ColumnDate       = "Date"
	ColumnTime       = "Time"
	ColumnLocation   = "Location"
	ColumnSummary    = "Daily Summary"
	ColumnThoughts   = "Thoughts & Feelings"
	ColumnReflection = "Reflection"
	ColumnGratitude  = "Gratitude"
	ColumnNextSteps  = "Next Steps / Intentions"
)

// Columns is the fixed header of the journal store, in on-disk order.
var Columns = []string{
	ColumnDate,
	ColumnTime,
	ColumnLocation,
	ColumnSummary,
	ColumnThoughts,
	ColumnReflection,
	ColumnGratitude,
	ColumnNextSteps,
}

// Form field names accepted by the submit handler.
const (
	FieldDate       = "date"
	FieldTime       = "time"
	FieldLocation   = "location"
	FieldSummary    = "summary"
	FieldThoughts   = "thoughts"
	FieldReflection = "reflection"
	FieldGratitude  = "gratitude"
	FieldNextSteps  = "nextsteps"
)

type JournalEntry struct {
	Date       string `json:"date"`
	Time       string `json:"time"`
	Location   string `json:"location"`
	Summary    string `json:"summary"`
	Thoughts   string `json:"thoughts"`
	Reflection string `json:"reflection"`
	Gratitude  string `json:"gratitude"`
	NextSteps  string `json:"nextsteps"`
}

// Values returns the entry as a row ordered like Columns.
func (e JournalEntry) Values() []string {
	return []string{
		e.Date,
		e.Time,
		e.Location,
		e.Summary,
		e.Thoughts,
		e.Reflection,
		e.Gratitude,
		e.NextSteps,
	}
}

// Record returns the entry keyed by column name.
func (e JournalEntry) Record() map[string]string {
	values := e.Values()
	record := make(map[string]string, len(Columns))
	for i, col := range Columns {
		record[col] = values[i]
	}
	return record
}

// EntryFromRecord builds an entry from a column-name keyed record. Unknown keys
// are ignored and missing columns stay empty.
func EntryFromRecord(record map[string]string) JournalEntry {
	return JournalEntry{
		Date:       record[ColumnDate],
		Time:       record[ColumnTime],
		Location:   record[ColumnLocation],
		Summary:    record[ColumnSummary],
		Thoughts:   record[ColumnThoughts],
		Reflection: record[ColumnReflection],
		Gratitude:  record[ColumnGratitude],
		NextSteps:  record[ColumnNextSteps],
	}
}

// EntryFromRow maps a data row onto the schema using the header read from the
// same file, so a reordered or partial header still lands values in the right fields.
func EntryFromRow(header, row []string) JournalEntry {
	record := make(map[string]string, len(header))
	for i, col := range header {
		if i < len(row) {
			record[col] = row[i]
		}
	}
	return EntryFromRecord(record)
}
