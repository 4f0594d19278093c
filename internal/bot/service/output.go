package service

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/prajwalhegde/NewsScriptBot/internal/bot/models"
)

// FileManager assembles generated scripts into export files and owns the
// directories for exports and incoming document uploads.
type FileManager struct {
	exportsDir string
	uploadsDir string
}

// NewFileManager creates both directories if they do not exist yet.
func NewFileManager(exportsDir, uploadsDir string) (*FileManager, error) {
	for _, dir := range []string{exportsDir, uploadsDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return &FileManager{exportsDir: exportsDir, uploadsDir: uploadsDir}, nil
}

// AssembleNewsScript writes the anchor and package scripts into a single
// export file with a short header naming the input type and category.
func (m *FileManager) AssembleNewsScript(chatID int64, inputType, category, avContent, pkgContent string) (models.GeneratedArtifact, error) {
	content := fmt.Sprintf(`Input Type: %s
Category: %s

--- SPEED 50 ---
%s

--- PKG SCRIPT ---
%s
`, inputType, category, avContent, pkgContent)

	filename := fmt.Sprintf("news_output_%d.txt", chatID)
	path, err := m.write(filename, content)
	if err != nil {
		return models.GeneratedArtifact{}, err
	}
	return models.GeneratedArtifact{
		Path:     path,
		Filename: filename,
		Caption:  "📝 ನಿಮ್ಮ ನ್ಯೂಸ್ ಸ್ಕ್ರಿಪ್ಟ್",
	}, nil
}

// AssembleSpeedBatch writes one anchor script per headline, separated by a
// dashed rule, into a per-chat export file.
func (m *FileManager) AssembleSpeedBatch(chatID int64, scripts []string) (models.GeneratedArtifact, error) {
	var sb strings.Builder
	for _, script := range scripts {
		sb.WriteString(script)
		sb.WriteString("\n\n")
		sb.WriteString(strings.Repeat("-", 50))
		sb.WriteString("\n\n")
	}

	filename := fmt.Sprintf("speed50_output_%d.txt", chatID)
	path, err := m.write(filename, sb.String())
	if err != nil {
		return models.GeneratedArtifact{}, err
	}
	return models.GeneratedArtifact{
		Path:     path,
		Filename: filename,
		Caption:  fmt.Sprintf("⚡ Speed 50 ಫಲಿತಾಂಶಗಳು - %d ಶೀರ್ಷಿಕೆಗಳು", len(scripts)),
	}, nil
}

// AssembleSegment writes the chosen preferences as a header sheet followed by
// the generated segment script. The filename is derived from the topic with
// spaces replaced so it survives as a plain filesystem name.
func (m *FileManager) AssembleSegment(prefs models.SegmentPreferences, script string) (models.GeneratedArtifact, error) {
	content := fmt.Sprintf(
		"ವಿಷಯ: %s\n"+
			"ಪ್ರಕಾರ: %s\n"+
			"ಮೂಲ: %s\n"+
			"ವಿವರ: %s\n"+
			"ಶೈಲಿ: %s\n"+
			"ಸಮೃದ್ಧಿ: %s\n"+
			"ಅವಧಿ: %d ನಿಮಿಷಗಳು\n\n%s",
		prefs.Topic,
		prefs.ContentType,
		prefs.InfoSource,
		prefs.DetailLevel,
		prefs.PresentationStyle,
		prefs.ContentRichness,
		prefs.Duration,
		script,
	)

	filename := fmt.Sprintf("segment_%s.txt", strings.ReplaceAll(prefs.Topic, " ", "_"))
	path, err := m.write(filename, content)
	if err != nil {
		return models.GeneratedArtifact{}, err
	}
	return models.GeneratedArtifact{
		Path:     path,
		Filename: filename,
		Caption:  "🎬 ನಿಮ್ಮ ಕಸ್ಟಮ್ ಸೆಗ್ಮೆಂಟ್ ಫೈಲ್ ಸಿದ್ಧವಾಗಿದೆ!",
	}, nil
}

// UploadPath returns the destination path for an incoming document.
func (m *FileManager) UploadPath(filename string) string {
	return filepath.Join(m.uploadsDir, filepath.Base(filename))
}

// Remove deletes a file created earlier, logging instead of failing when the
// file is already gone.
func (m *FileManager) Remove(path string) {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		logrus.WithError(err).WithField("path", path).Error("Failed to remove file")
	}
}

func (m *FileManager) write(filename, content string) (string, error) {
	path := filepath.Join(m.exportsDir, filename)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("failed to write export file %s: %w", path, err)
	}
	return path, nil
}
