package interfaces

import "localjournal/internal/models"

type StoreInterface interface {
	EnsureExists() models.WriteResult
	ReadAll() models.ReadResult
	WriteAll(entries []models.JournalEntry) models.WriteResult
}
