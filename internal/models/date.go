package models

import (
	"strings"
	"time"
)

// DateLayout is the canonical stored date format (dd/mm/yyyy).
const DateLayout = "02/01/2006"

// inputDateLayouts are tried in order and the first successful parse wins.
// dd/mm/yyyy comes before mm/dd/yyyy, so "03/04/2024" is the 3rd of April.
var inputDateLayouts = []string{
	"2006-1-2", // yyyy-mm-dd, as sent by <input type="date">
	"2/1/2006", // dd/mm/yyyy
	"2-1-2006", // dd-mm-yyyy
	"1/2/2006", // mm/dd/yyyy
}

// NormalizeDate converts raw into dd/mm/yyyy. Empty or unrecognised input
// yields the current local date from now.
func NormalizeDate(raw string, now func() time.Time) string {
	raw = strings.TrimSpace(raw)
	if raw != "" {
		for _, layout := range inputDateLayouts {
			if t, err := time.ParseInLocation(layout, raw, time.Local); err == nil {
				return t.Format(DateLayout)
			}
		}
	}
	if now == nil {
		now = time.Now
	}
	return now().In(time.Local).Format(DateLayout)
}
