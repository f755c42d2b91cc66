package services

import (
	"sync"
	"time"

	"localjournal/internal/models"
	"localjournal/internal/providers"
	"localjournal/internal/storage/interfaces"
)

type SubmitResult struct {
	Entry models.JournalEntry
	Read  models.ReadKind
	Write models.WriteKind
}

type StoreStats struct {
	Entries  int
	LastRead models.ReadKind
}

type JournalServiceInterface interface {
	Submit(input *models.InputEntry) SubmitResult
	List() models.ReadResult
	Stats() StoreStats
}

// JournalService runs the read-modify-write cycle against the store. The cycle
// is not serialized: two overlapping submissions can drop one of the entries.
type JournalService struct {
	store   interfaces.StoreInterface
	logger  providers.Logger
	metrics providers.MetricsProviderInterface
	now     func() time.Time

	statsMu sync.Mutex
	stats   StoreStats
}

func NewJournalService(store interfaces.StoreInterface, logger providers.Logger, metrics providers.MetricsProviderInterface) JournalServiceInterface {
	return NewJournalServiceWithClock(store, logger, metrics, time.Now)
}

func NewJournalServiceWithClock(store interfaces.StoreInterface, logger providers.Logger, metrics providers.MetricsProviderInterface, now func() time.Time) *JournalService {
	return &JournalService{
		store:   store,
		logger:  logger,
		metrics: metrics,
		now:     now,
	}
}

func (js *JournalService) Submit(input *models.InputEntry) SubmitResult {
	entry := input.ToEntry(js.now)

	js.ensure()
	read := js.read()

	entries := append(read.Entries, entry)

	start := time.Now()
	write := js.store.WriteAll(entries)
	js.metrics.ObservePersistenceDuration("write", time.Since(start))
	js.metrics.IncStorageResult("write", write.Kind.String())

	switch write.Kind {
	case models.WriteFailed:
		js.logger.Errorf(providers.TypePost, "Entry for %s was not persisted: %s", entry.Date, write.Err)
	case models.WriteFallback:
		js.logger.Warnf(providers.TypePost, "Entry for %s persisted in fallback format", entry.Date)
		js.recordCount(len(entries))
	default:
		js.logger.Infof(providers.TypePost, "Entry for %s persisted, %d entries in store", entry.Date, len(entries))
		js.recordCount(len(entries))
	}
	js.metrics.IncEntriesSubmitted()

	return SubmitResult{Entry: entry, Read: read.Kind, Write: write.Kind}
}

func (js *JournalService) List() models.ReadResult {
	js.ensure()
	return js.read()
}

func (js *JournalService) Stats() StoreStats {
	js.statsMu.Lock()
	defer js.statsMu.Unlock()
	return js.stats
}

func (js *JournalService) ensure() {
	res := js.store.EnsureExists()
	if res.Kind == models.WriteSkipped {
		return
	}
	js.metrics.IncStorageResult("ensure", res.Kind.String())
	if res.Kind == models.WriteFailed {
		js.logger.Errorf(providers.TypeApp, "Unable to create journal store: %s", res.Err)
	}
}

func (js *JournalService) read() models.ReadResult {
	start := time.Now()
	res := js.store.ReadAll()
	js.metrics.ObservePersistenceDuration("read", time.Since(start))
	js.metrics.IncStorageResult("read", res.Kind.String())
	if res.Entries == nil {
		res.Entries = []models.JournalEntry{}
	}

	js.statsMu.Lock()
	js.stats = StoreStats{Entries: len(res.Entries), LastRead: res.Kind}
	js.statsMu.Unlock()
	js.metrics.SetEntriesTotal(len(res.Entries))

	return res
}

func (js *JournalService) recordCount(n int) {
	js.statsMu.Lock()
	js.stats.Entries = n
	js.statsMu.Unlock()
	js.metrics.SetEntriesTotal(n)
}
