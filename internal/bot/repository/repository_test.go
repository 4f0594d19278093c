package repository

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prajwalhegde/NewsScriptBot/internal/bot/models"
)

func TestStateDefaultsToMainMenu(t *testing.T) {
	repo := NewConversationsState(filepath.Join(t.TempDir(), "state.json"))
	assert.Equal(t, models.StateMainMenu, repo.State(1))
}

func TestSetStateAndContext(t *testing.T) {
	repo := NewConversationsState(filepath.Join(t.TempDir(), "state.json"))

	repo.SetState(1, models.StateAwaitingSegmentTopic)
	repo.Context(1).Topic = "ದಸರಾ"
	repo.Context(1).Duration = 5

	assert.Equal(t, models.StateAwaitingSegmentTopic, repo.State(1))
	assert.Equal(t, "ದಸರಾ", repo.Context(1).Topic)
	assert.Equal(t, 5, repo.Context(1).Duration)

	// Other chats are unaffected.
	assert.Equal(t, models.StateMainMenu, repo.State(2))
	assert.Empty(t, repo.Context(2).Topic)
}

func TestResetClearsStateAndContext(t *testing.T) {
	repo := NewConversationsState(filepath.Join(t.TempDir(), "state.json"))
	repo.SetState(1, models.StateAwaitingSpeedHeadlines)
	repo.Context(1).Headlines = []string{"ಒಂದು", "ಎರಡು"}

	repo.Reset(1)

	assert.Equal(t, models.StateMainMenu, repo.State(1))
	assert.Empty(t, repo.Context(1).Headlines)
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")

	repo := NewConversationsState(path)
	repo.SetState(1, models.StateAwaitingSegmentDuration)
	repo.Context(1).Topic = "ಚುನಾವಣೆ"
	repo.Context(1).Duration = 7
	repo.SetState(2, models.StateAwaitingSpeedHeadlines)
	repo.Context(2).Headlines = []string{"ಶೀರ್ಷಿಕೆ"}
	require.NoError(t, repo.SaveBatchToFile())

	loaded := NewConversationsState(path)
	require.NoError(t, loaded.ReadFileToMemory())

	assert.Equal(t, models.StateAwaitingSegmentDuration, loaded.State(1))
	assert.Equal(t, "ಚುನಾವಣೆ", loaded.Context(1).Topic)
	assert.Equal(t, 7, loaded.Context(1).Duration)
	assert.Equal(t, models.StateAwaitingSpeedHeadlines, loaded.State(2))
	assert.Equal(t, []string{"ಶೀರ್ಷಿಕೆ"}, loaded.Context(2).Headlines)
}

func TestReadFileToMemoryMissingFile(t *testing.T) {
	repo := NewConversationsState(filepath.Join(t.TempDir(), "absent.json"))
	assert.NoError(t, repo.ReadFileToMemory())
	assert.Equal(t, models.StateMainMenu, repo.State(1))
}

func TestReadFileToMemoryCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	repo := NewConversationsState(path)
	assert.Error(t, repo.ReadFileToMemory())
}

func TestSaveBatchToFileIsAtomic(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	repo := NewConversationsState(path)
	repo.SetState(1, models.StateAwaitingNewsContent)
	require.NoError(t, repo.SaveBatchToFile())

	_, err := os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err), "temp file must be renamed away")
}
