package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"localjournal/internal/testutil"
)

func TestFlashService_PushThenPopOnce(t *testing.T) {
	fs := NewFlashService(testutil.NewMockCache(), &testutil.MockLogger{})

	token := fs.Push("", "saved")
	_, err := uuid.Parse(token)
	require.NoError(t, err)

	assert.Equal(t, []string{"saved"}, fs.Pop(token))
	assert.Empty(t, fs.Pop(token))
}

func TestFlashService_PushAccumulates(t *testing.T) {
	fs := NewFlashService(testutil.NewMockCache(), &testutil.MockLogger{})

	token := fs.Push("", "one")
	assert.Equal(t, token, fs.Push(token, "two"))
	assert.Equal(t, []string{"one", "two"}, fs.Pop(token))
}

func TestFlashService_InvalidTokenReplaced(t *testing.T) {
	fs := NewFlashService(testutil.NewMockCache(), &testutil.MockLogger{})

	token := fs.Push("../../etc", "saved")
	assert.NotEqual(t, "../../etc", token)
	assert.Equal(t, []string{"saved"}, fs.Pop(token))
}

func TestFlashService_PopUnknown(t *testing.T) {
	fs := NewFlashService(testutil.NewMockCache(), &testutil.MockLogger{})
	assert.Empty(t, fs.Pop(""))
	assert.Empty(t, fs.Pop(uuid.NewString()))
}

func TestFlashService_CorruptCacheEntry(t *testing.T) {
	cache := testutil.NewMockCache()
	logger := &testutil.MockLogger{}
	fs := NewFlashService(cache, logger)

	token := uuid.NewString()
	cache.Set(flashKeyPrefix+token, []byte("{not json"))

	assert.Empty(t, fs.Pop(token))
	assert.Equal(t, 1, logger.CountLevel("warn"))
}
