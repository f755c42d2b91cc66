package models

import "time"

// InputEntry is the raw submission as received from the form. Every field is
// optional and a missing field arrives as an empty string.
type InputEntry struct {
	Date       string
	Time       string
	Location   string
	Summary    string
	Thoughts   string
	Reflection string
	Gratitude  string
	NextSteps  string
}

// NewInputEntry reads the submission fields through get, typically url.Values.Get.
func NewInputEntry(get func(string) string) *InputEntry {
	return &InputEntry{
		Date:       get(FieldDate),
		Time:       get(FieldTime),
		Location:   get(FieldLocation),
		Summary:    get(FieldSummary),
		Thoughts:   get(FieldThoughts),
		Reflection: get(FieldReflection),
		Gratitude:  get(FieldGratitude),
		NextSteps:  get(FieldNextSteps),
	}
}

// ToEntry normalizes the date and copies the remaining fields verbatim.
func (in *InputEntry) ToEntry(now func() time.Time) JournalEntry {
	return JournalEntry{
		Date:       NormalizeDate(in.Date, now),
		Time:       in.Time,
		Location:   in.Location,
		Summary:    in.Summary,
		Thoughts:   in.Thoughts,
		Reflection: in.Reflection,
		Gratitude:  in.Gratitude,
		NextSteps:  in.NextSteps,
	}
}
