package services

import (
	json "github.com/goccy/go-json"
	"github.com/google/uuid"

	"localjournal/internal/providers"
)

const flashKeyPrefix = "flash:"

// FlashServiceInterface holds one-shot messages shown on the next page view.
type FlashServiceInterface interface {
	Push(token, message string) string
	Pop(token string) []string
}

type FlashService struct {
	cache  providers.CacheProviderInterface
	logger providers.Logger
}

func NewFlashService(cache providers.CacheProviderInterface, logger providers.Logger) FlashServiceInterface {
	return &FlashService{cache: cache, logger: logger}
}

// Push queues message under token and returns the token to hand back to the
// client. An empty or malformed token is replaced by a new one.
func (fs *FlashService) Push(token, message string) string {
	if _, err := uuid.Parse(token); err != nil {
		token = uuid.NewString()
	}
	messages := append(fs.peek(token), message)
	data, err := json.Marshal(messages)
	if err != nil {
		fs.logger.Errorf(providers.TypeApp, "Unable to encode flash messages: %s", err)
		return token
	}
	fs.cache.Set(flashKeyPrefix+token, data)
	return token
}

// Pop returns and forgets the messages queued under token.
func (fs *FlashService) Pop(token string) []string {
	if token == "" {
		return nil
	}
	messages := fs.peek(token)
	if len(messages) > 0 {
		fs.cache.Del(flashKeyPrefix + token)
	}
	return messages
}

func (fs *FlashService) peek(token string) []string {
	data, ok := fs.cache.Get(flashKeyPrefix + token)
	if !ok {
		return nil
	}
	var messages []string
	if err := json.Unmarshal(data, &messages); err != nil {
		fs.logger.Warnf(providers.TypeApp, "Dropping unreadable flash messages: %s", err)
		return nil
	}
	return messages
}
