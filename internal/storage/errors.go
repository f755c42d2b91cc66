package storage

import "errors"

var (
	ErrMissingHeader = errors.New("storage: header row missing")
	ErrUnknownHeader = errors.New("storage: header has none of the journal columns")
	ErrCellTooLong   = errors.New("storage: value exceeds the xlsx cell limit")
	ErrIllegalChar   = errors.New("storage: value contains a character xlsx cannot store")
)
