package models

type ReadKind int

const (
	ReadEmpty ReadKind = iota
	ReadPrimary
	ReadFallback
)

func (k ReadKind) String() string {
	switch k {
	case ReadPrimary:
		return "primary"
	case ReadFallback:
		return "fallback"
	default:
		return "empty"
	}
}

// ReadResult reports which file served a read. Entries is never nil; Err holds
// the last failure seen on the way and is informational only.
type ReadResult struct {
	Kind    ReadKind
	Entries []JournalEntry
	Err     error
}

type WriteKind int

const (
	WriteFailed WriteKind = iota
	WritePrimary
	WriteFallback
	WriteSkipped
)

func (k WriteKind) String() string {
	switch k {
	case WritePrimary:
		return "primary"
	case WriteFallback:
		return "fallback"
	case WriteSkipped:
		return "skipped"
	default:
		return "failed"
	}
}

// WriteResult reports which file a write produced. WriteSkipped is only
// returned by EnsureExists when a store file is already present.
type WriteResult struct {
	Kind WriteKind
	Err  error
}
