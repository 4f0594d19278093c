// Package repository provides conversation state management for the bot.
// It stores per-chat dialogue state and scratch context in memory and
// persists them to a file.
package repository

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/prajwalhegde/NewsScriptBot/internal/bot/models"
)

// ConversationsState manages the dialogue state of bot users in memory and on disk.
// Each chat owns exactly one Conversation; the surrounding gateway never
// delivers two messages of the same chat concurrently, the mutex only guards
// interleaving between distinct chats and the periodic batch save.
type ConversationsState struct {
	BatchBuffer     map[int64]*models.Conversation `json:"batchBuffer"` // In-memory store of conversations by chat ID.
	storageFilePath string                         // File path for persisting conversations.
	mu              *sync.RWMutex                  // Protects BatchBuffer from concurrent access
}

// NewConversationsState creates a new ConversationsState instance with an empty memory buffer.
// Arguments:
//   - envStoragePath: file path where conversations are persisted.
//
// Returns a pointer to a ConversationsState.
func NewConversationsState(envStoragePath string) *ConversationsState {
	return &ConversationsState{
		BatchBuffer:     make(map[int64]*models.Conversation),
		storageFilePath: envStoragePath,
		mu:              &sync.RWMutex{},
	}
}

// conversation returns the chat's entry, creating a fresh main-menu one if
// needed. Caller must hold the write lock.
func (m *ConversationsState) conversation(chatID int64) *models.Conversation {
	conv, ok := m.BatchBuffer[chatID]
	if !ok || conv == nil {
		conv = &models.Conversation{
			ChatID:  chatID,
			State:   models.StateMainMenu,
			Context: &models.ConversationContext{},
		}
		m.BatchBuffer[chatID] = conv
	}
	if conv.Context == nil {
		conv.Context = &models.ConversationContext{}
	}
	return conv
}

// State returns the chat's current conversation state, defaulting to the
// main menu for chats seen for the first time.
func (m *ConversationsState) State(chatID int64) models.ConversationState {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.conversation(chatID).State
}

// SetState moves the chat's conversation to the given state.
func (m *ConversationsState) SetState(chatID int64, state models.ConversationState) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.conversation(chatID).State = state
}

// Context returns the chat's scratch context for in-place mutation by the
// state machine. The context object is owned exclusively by that chat's
// conversation.
func (m *ConversationsState) Context(chatID int64) *models.ConversationContext {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.conversation(chatID).Context
}

// Reset returns the chat to the main menu and discards all accumulated
// context. This is the universal escape hatch for cancellation, completion
// and error recovery.
func (m *ConversationsState) Reset(chatID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	conv := m.conversation(chatID)
	conv.State = models.StateMainMenu
	conv.Context = &models.ConversationContext{}
}

// ReadFileToMemory reads conversations from the storage file into the in-memory buffer.
// Returns an error if the file cannot be read or parsed.
func (m *ConversationsState) ReadFileToMemory() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	data, err := os.ReadFile(m.storageFilePath)
	if err != nil {
		if os.IsNotExist(err) {
			logrus.Infof("Storage file %s does not exist, starting with empty buffer", m.storageFilePath)
			return nil
		}
		err = fmt.Errorf("failed to read storage file %s: %w", m.storageFilePath, err)
		logrus.WithError(err).Error("Error reading storage file")
		return err
	}

	if len(data) == 0 {
		logrus.Infof("Storage file %s is empty, starting with empty buffer", m.storageFilePath)
		return nil
	}

	var buffer map[int64]*models.Conversation
	if err = json.Unmarshal(data, &buffer); err != nil {
		err = fmt.Errorf("failed to unmarshal storage file %s: %w", m.storageFilePath, err)
		logrus.WithError(err).Error("Error parsing storage file")
		return err
	}

	m.BatchBuffer = buffer
	logrus.Infof("Loaded %d conversations from %s", len(m.BatchBuffer), m.storageFilePath)
	return nil
}

// SaveBatchToFile persists the in-memory conversation buffer to the storage file.
// Returns an error if the file cannot be written.
func (m *ConversationsState) SaveBatchToFile() error {
	m.mu.RLock()
	defer m.mu.RUnlock()

	startTime := time.Now()

	// Write to a temporary file first
	tempPath := m.storageFilePath + ".tmp"
	file, err := os.OpenFile(tempPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0666)
	if err != nil {
		err = fmt.Errorf("failed to open temp file %s: %w", tempPath, err)
		logrus.WithError(err).Error("Error saving batch to file")
		return err
	}
	defer func() {
		if err = file.Close(); err != nil {
			logrus.WithError(err).Errorf("Failed to close file: %v", err)
		}
	}()

	writer := bufio.NewWriter(file)
	encoder := json.NewEncoder(writer)
	if err = encoder.Encode(m.BatchBuffer); err != nil {
		err = fmt.Errorf("failed to encode batch to temp file %s: %w", tempPath, err)
		logrus.WithError(err).Error("Error encoding batch")
		return err
	}
	if err = writer.Flush(); err != nil {
		err = fmt.Errorf("failed to flush temp file %s: %w", tempPath, err)
		logrus.WithError(err).Error("Error flushing batch")
		return err
	}

	// Atomically rename a temp file to final destination
	if err = os.Rename(tempPath, m.storageFilePath); err != nil {
		err = fmt.Errorf("failed to rename temp file %s to %s: %w", tempPath, m.storageFilePath, err)
		logrus.WithError(err).Error("Error finalizing batch save")
		return err
	}

	elapsedTime := time.Since(startTime)
	logrus.Infof("Saved %d conversations to %s in %v", len(m.BatchBuffer), m.storageFilePath, elapsedTime)
	return nil
}
