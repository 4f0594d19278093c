package service

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prajwalhegde/NewsScriptBot/internal/bot/models"
)

func newTestFileManager(t *testing.T) *FileManager {
	t.Helper()
	dir := t.TempDir()
	fm, err := NewFileManager(filepath.Join(dir, "exports"), filepath.Join(dir, "uploads"))
	require.NoError(t, err)
	return fm
}

func TestAssembleNewsScript(t *testing.T) {
	fm := newTestFileManager(t)

	artifact, err := fm.AssembleNewsScript(42, "News Script", "politics", "AV TEXT", "PKG TEXT")
	require.NoError(t, err)
	assert.Equal(t, "news_output_42.txt", artifact.Filename)

	data, err := os.ReadFile(artifact.Path)
	require.NoError(t, err)
	content := string(data)
	assert.Contains(t, content, "Input Type: News Script")
	assert.Contains(t, content, "Category: politics")
	assert.Contains(t, content, "--- SPEED 50 ---\nAV TEXT")
	assert.Contains(t, content, "--- PKG SCRIPT ---\nPKG TEXT")
}

func TestAssembleSpeedBatch(t *testing.T) {
	fm := newTestFileManager(t)

	artifact, err := fm.AssembleSpeedBatch(7, []string{"ಸ್ಕ್ರಿಪ್ಟ್ ಒಂದು", "ಸ್ಕ್ರಿಪ್ಟ್ ಎರಡು"})
	require.NoError(t, err)
	assert.Equal(t, "speed50_output_7.txt", artifact.Filename)
	assert.Contains(t, artifact.Caption, "2 ಶೀರ್ಷಿಕೆಗಳು")

	data, err := os.ReadFile(artifact.Path)
	require.NoError(t, err)
	content := string(data)
	assert.Contains(t, content, "ಸ್ಕ್ರಿಪ್ಟ್ ಒಂದು")
	assert.Contains(t, content, "ಸ್ಕ್ರಿಪ್ಟ್ ಎರಡು")
	assert.Equal(t, 2, strings.Count(content, strings.Repeat("-", 50)),
		"every script is followed by a separator rule")
}

func TestAssembleSegment(t *testing.T) {
	fm := newTestFileManager(t)
	prefs := models.SegmentPreferences{
		Topic:             "ಮೈಸೂರು ದಸರಾ ಇತಿಹಾಸ",
		ContentType:       "🎭 ಮನರಂಜನೆ/ಸಂಸ್ಕೃತಿ",
		InfoSource:        "🧠 ಕೇವಲ AI ಜ್ಞಾನ",
		DetailLevel:       "📖 ವಿಸ್ತೃತ ವಿವರಣೆ",
		PresentationStyle: "📺 ಟಿವಿ ನ್ಯೂಸ್ ಶೈಲಿ",
		ContentRichness:   "🌟 ಕಥೆಗಳು + ಉದಾಹರಣೆಗಳು",
		Duration:          5,
	}

	artifact, err := fm.AssembleSegment(prefs, "ಸೆಗ್ಮೆಂಟ್ ಸ್ಕ್ರಿಪ್ಟ್ ಪಠ್ಯ")
	require.NoError(t, err)
	assert.Equal(t, "segment_ಮೈಸೂರು_ದಸರಾ_ಇತಿಹಾಸ.txt", artifact.Filename)

	data, err := os.ReadFile(artifact.Path)
	require.NoError(t, err)
	content := string(data)
	assert.Contains(t, content, "ವಿಷಯ: ಮೈಸೂರು ದಸರಾ ಇತಿಹಾಸ")
	assert.Contains(t, content, "ಅವಧಿ: 5 ನಿಮಿಷಗಳು")
	assert.Contains(t, content, "ಸೆಗ್ಮೆಂಟ್ ಸ್ಕ್ರಿಪ್ಟ್ ಪಠ್ಯ")
}

func TestRemoveMissingFileDoesNotPanic(t *testing.T) {
	fm := newTestFileManager(t)
	fm.Remove(filepath.Join(t.TempDir(), "never_existed.txt"))
}

func TestUploadPathStripsDirectories(t *testing.T) {
	fm := newTestFileManager(t)
	got := fm.UploadPath("../../etc/passwd")
	assert.Equal(t, "passwd", filepath.Base(got))
	assert.NotContains(t, got, "..")
}
