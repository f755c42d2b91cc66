package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"localjournal/internal/models"
	"localjournal/internal/providers"
	"localjournal/internal/storage/interfaces"
	"localjournal/internal/structures"
)

// FileManager is the handle to the journal store: a primary file and a
// fallback file for when the primary format cannot be read or written.
// It does no locking; concurrent read-modify-write cycles lose entries.
type FileManager struct {
	primaryPath  string
	fallbackPath string
	primary      interfaces.CodecInterface
	fallback     interfaces.CodecInterface
	logger       providers.Logger
}

func NewFileManager(conf *structures.Config, logger providers.Logger) interfaces.StoreInterface {
	return NewFileManagerWithCodecs(
		conf.Storage.PrimaryPath,
		conf.Storage.FallbackPath,
		NewXlsxCodec(conf.Storage.SheetName),
		NewCsvCodec(),
		logger,
	)
}

func NewFileManagerWithCodecs(primaryPath, fallbackPath string, primary, fallback interfaces.CodecInterface, logger providers.Logger) *FileManager {
	return &FileManager{
		primaryPath:  primaryPath,
		fallbackPath: fallbackPath,
		primary:      primary,
		fallback:     fallback,
		logger:       logger,
	}
}

// EnsureExists creates a header-only store when neither file is present.
// Existing files are never touched.
func (f *FileManager) EnsureExists() models.WriteResult {
	if fileExists(f.primaryPath) || fileExists(f.fallbackPath) {
		return models.WriteResult{Kind: models.WriteSkipped}
	}
	f.logger.Infof(providers.TypeApp, "Creating empty journal store at %s", f.primaryPath)
	return f.WriteAll([]models.JournalEntry{})
}

func (f *FileManager) ReadAll() models.ReadResult {
	entries, err := f.load(f.primaryPath, f.primary)
	if err == nil {
		return models.ReadResult{Kind: models.ReadPrimary, Entries: entries}
	}
	if errors.Is(err, fs.ErrNotExist) {
		err = nil
	} else {
		f.logger.Warnf(providers.TypeApp, "Unable to read %s, trying %s: %s", f.primaryPath, f.fallbackPath, err)
	}

	entries, fallbackErr := f.load(f.fallbackPath, f.fallback)
	if fallbackErr == nil {
		return models.ReadResult{Kind: models.ReadFallback, Entries: entries, Err: err}
	}
	if !errors.Is(fallbackErr, fs.ErrNotExist) {
		f.logger.Warnf(providers.TypeApp, "Unable to read %s: %s", f.fallbackPath, fallbackErr)
		err = fallbackErr
	}
	return models.ReadResult{Kind: models.ReadEmpty, Entries: []models.JournalEntry{}, Err: err}
}

// WriteAll rewrites the whole store. The file that was not written is removed
// afterwards so the next read sees what this write produced.
func (f *FileManager) WriteAll(entries []models.JournalEntry) models.WriteResult {
	err := f.save(f.primaryPath, f.primary, entries)
	if err == nil {
		f.removeStale(f.fallbackPath)
		return models.WriteResult{Kind: models.WritePrimary}
	}
	f.logger.Warnf(providers.TypeApp, "Unable to write %s, falling back to %s: %s", f.primaryPath, f.fallbackPath, err)

	fallbackErr := f.save(f.fallbackPath, f.fallback, entries)
	if fallbackErr == nil {
		f.removeStale(f.primaryPath)
		return models.WriteResult{Kind: models.WriteFallback, Err: err}
	}
	f.logger.Errorf(providers.TypeApp, "Unable to write %s: %s", f.fallbackPath, fallbackErr)
	return models.WriteResult{Kind: models.WriteFailed, Err: errors.Join(err, fallbackErr)}
}

func (f *FileManager) load(path string, codec interfaces.CodecInterface) ([]models.JournalEntry, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	entries, err := codec.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("decode %s as %s: %w", path, codec.Name(), err)
	}
	return entries, nil
}

func (f *FileManager) save(path string, codec interfaces.CodecInterface, entries []models.JournalEntry) error {
	tmpFile := path + ".tmp"
	file, err := os.Create(tmpFile)
	if err != nil {
		return err
	}

	err = codec.Encode(file, entries)
	if err != nil {
		file.Close()
		os.Remove(tmpFile)
		return fmt.Errorf("encode %s: %w", codec.Name(), err)
	}

	if err = file.Sync(); err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Close(); err != nil {
		os.Remove(tmpFile)
		return err
	}

	if err = os.Rename(tmpFile, path); err != nil {
		os.Remove(tmpFile)
		return err
	}
	return nil
}

func (f *FileManager) removeStale(path string) {
	info, err := os.Lstat(path)
	if err != nil || !info.Mode().IsRegular() {
		return
	}
	if err = os.Remove(path); err != nil {
		f.logger.Warnf(providers.TypeApp, "Unable to remove stale store file %s: %s", path, err)
		return
	}
	f.logger.Infof(providers.TypeApp, "Removed stale store file %s", path)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
