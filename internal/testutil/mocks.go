package testutil

import (
	"io"
	"localjournal/internal/models"
	"localjournal/internal/providers"
	"sync"
	"time"
)

// MockLogger implements providers.Logger and records calls.
type MockLogger struct {
	mu   sync.Mutex
	Logs []LogEntry
}

type LogEntry struct {
	Level  string
	Type   providers.TypeEnum
	Format string
	Args   []interface{}
}

func (m *MockLogger) record(level string, t providers.TypeEnum, format string, args ...interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Logs = append(m.Logs, LogEntry{Level: level, Type: t, Format: format, Args: args})
}

func (m *MockLogger) Errorf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("error", t, format, args...)
}
func (m *MockLogger) Warnf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("warn", t, format, args...)
}
func (m *MockLogger) Debugf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("debug", t, format, args...)
}
func (m *MockLogger) Infof(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("info", t, format, args...)
}
func (m *MockLogger) Fatalf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("fatal", t, format, args...)
}
func (m *MockLogger) Close() {}

// CountLevel returns how many entries were logged at level.
func (m *MockLogger) CountLevel(level string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, l := range m.Logs {
		if l.Level == level {
			n++
		}
	}
	return n
}

// MockStore implements interfaces.StoreInterface on an in-memory slice.
type MockStore struct {
	mu          sync.Mutex
	Entries     []models.JournalEntry
	Exists      bool
	ReadKind    models.ReadKind
	WriteKind   models.WriteKind
	EnsureCalls int
	ReadCalls   int
	WriteCalls  int
}

func (m *MockStore) EnsureExists() models.WriteResult {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.EnsureCalls++
	if m.Exists {
		return models.WriteResult{Kind: models.WriteSkipped}
	}
	m.Exists = true
	return models.WriteResult{Kind: models.WritePrimary}
}

func (m *MockStore) ReadAll() models.ReadResult {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ReadCalls++
	out := make([]models.JournalEntry, len(m.Entries))
	copy(out, m.Entries)
	kind := m.ReadKind
	if kind == models.ReadEmpty && len(out) > 0 {
		kind = models.ReadPrimary
	}
	return models.ReadResult{Kind: kind, Entries: out}
}

func (m *MockStore) WriteAll(entries []models.JournalEntry) models.WriteResult {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.WriteCalls++
	if m.WriteKind == models.WriteFailed {
		return models.WriteResult{Kind: models.WriteFailed}
	}
	m.Entries = make([]models.JournalEntry, len(entries))
	copy(m.Entries, entries)
	return models.WriteResult{Kind: m.WriteKind}
}

// NewMockStore returns a store whose writes succeed in the primary format.
func NewMockStore(entries ...models.JournalEntry) *MockStore {
	return &MockStore{Entries: entries, Exists: len(entries) > 0, WriteKind: models.WritePrimary}
}

// MockCache implements providers.CacheProviderInterface.
type MockCache struct {
	mu   sync.Mutex
	Data map[string][]byte
}

func NewMockCache() *MockCache {
	return &MockCache{Data: make(map[string][]byte)}
}

func (m *MockCache) Get(key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	val, ok := m.Data[key]
	return val, ok
}

func (m *MockCache) Set(key string, value []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Data[key] = value
}

func (m *MockCache) Del(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.Data, key)
}

// MockMetrics implements providers.MetricsProviderInterface and counts calls.
type MockMetrics struct {
	mu               sync.Mutex
	StorageResults   map[string]int // key: "op:kind"
	EntriesSubmitted int
	EntriesTotal     int
}

func NewMockMetrics() *MockMetrics {
	return &MockMetrics{StorageResults: make(map[string]int)}
}

func (m *MockMetrics) IncRequestsTotal(_ string, _ int)                     {}
func (m *MockMetrics) ObserveRequestDuration(_ string, _ time.Duration)     {}
func (m *MockMetrics) IncCacheHits()                                        {}
func (m *MockMetrics) IncCacheMisses()                                      {}
func (m *MockMetrics) ObservePersistenceDuration(_ string, _ time.Duration) {}

func (m *MockMetrics) IncStorageResult(op string, kind string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.StorageResults[op+":"+kind]++
}

func (m *MockMetrics) IncEntriesSubmitted() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.EntriesSubmitted++
}

func (m *MockMetrics) SetEntriesTotal(count int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.EntriesTotal = count
}

// MockCodec implements interfaces.CodecInterface with injectable behavior.
type MockCodec struct {
	CodecName string
	EncodeFn  func(io.Writer, []models.JournalEntry) error
	DecodeFn  func(io.Reader) ([]models.JournalEntry, error)
}

func (m *MockCodec) Name() string {
	if m.CodecName == "" {
		return "mock"
	}
	return m.CodecName
}

func (m *MockCodec) Encode(w io.Writer, entries []models.JournalEntry) error {
	return m.EncodeFn(w, entries)
}

func (m *MockCodec) Decode(r io.Reader) ([]models.JournalEntry, error) {
	return m.DecodeFn(r)
}
