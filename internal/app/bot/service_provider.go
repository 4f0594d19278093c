// Package bot provides dependency injection and service management for the
// news script bot components. It initializes and provides access to the
// repository, the generative backend, search and file services.
package bot

import (
	"fmt"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"

	"github.com/prajwalhegde/NewsScriptBot/internal/bot/api"
	"github.com/prajwalhegde/NewsScriptBot/internal/bot/constant"
	"github.com/prajwalhegde/NewsScriptBot/internal/bot/infra/generative"
	"github.com/prajwalhegde/NewsScriptBot/internal/bot/repository"
	botServ "github.com/prajwalhegde/NewsScriptBot/internal/bot/service"
)

// ServiceProvider manages the dependency injection for the bot components.
type ServiceProvider struct {
	// Services
	generativeService botServ.GenerativeModel
	searchService     botServ.Searcher
	fileManager       *botServ.FileManager

	// Conversation state repository
	conversationsRepo *repository.ConversationsState

	// Bot API
	botAPI *tgbotapi.BotAPI

	// Bot service
	botService *botServ.BotService

	// Config values
	searchEndpoint   string
	generativeName   string
	generativeApiKey string
	generativeModel  string
	storagePath      string
	exportsPath      string
	uploadsPath      string
	searchEnabled    bool

	generativeOnce  sync.Once
	searchOnce      sync.Once
	fileManagerOnce sync.Once
	repoOnce        sync.Once
	botAPIOnce      sync.Once
	botServiceOnce  sync.Once
}

// NewServiceProvider creates a new instance of the service provider.
func NewServiceProvider(
	searchEndpoint,
	generativeName, generativeApiKey, generativeModel,
	storagePath, exportsPath, uploadsPath string,
	searchEnabled bool,
) *ServiceProvider {
	if searchEndpoint == "" || generativeName == "" || generativeApiKey == "" || generativeModel == "" || storagePath == "" || exportsPath == "" || uploadsPath == "" {
		logrus.Fatal("All ServiceProvider configuration fields must be non-empty")
	}
	return &ServiceProvider{
		searchEndpoint:   searchEndpoint,
		generativeName:   generativeName,
		generativeApiKey: generativeApiKey,
		generativeModel:  generativeModel,
		storagePath:      storagePath,
		exportsPath:      exportsPath,
		uploadsPath:      uploadsPath,
		searchEnabled:    searchEnabled,
	}
}

// Repository returns the conversation state repository with persisted state
// loaded into memory.
func (s *ServiceProvider) Repository() *repository.ConversationsState {
	s.repoOnce.Do(func() {
		s.conversationsRepo = repository.NewConversationsState(s.storagePath)
		if err := s.conversationsRepo.ReadFileToMemory(); err != nil {
			logrus.Errorf("Failed to read conversation state from file: %v", err)
		} else {
			logrus.Info("ConversationsState repository initialized and state loaded")
		}
	})
	return s.conversationsRepo
}

// GenerativeService returns the configured generative backend.
func (s *ServiceProvider) GenerativeService() (botServ.GenerativeModel, error) {
	var err error
	s.generativeOnce.Do(func() {
		s.generativeService, err = generative.ModelFactory(s.generativeName, s.generativeApiKey, s.generativeModel)
		if err != nil {
			logrus.Errorf("Failed to initialize generative service: %v", err)
			s.generativeService = nil
		}
	})
	if s.generativeService == nil {
		return nil, fmt.Errorf("generative service not initialized")
	}
	logrus.Info("Generative model initialized")
	return s.generativeService, nil
}

// SearchService returns the web search service, or nil when search is
// disabled by configuration.
func (s *ServiceProvider) SearchService() botServ.Searcher {
	s.searchOnce.Do(func() {
		if !s.searchEnabled {
			logrus.Info("Web search disabled by configuration")
			return
		}
		s.searchService = botServ.NewNewsSearch(s.searchEndpoint, constant.TrustedSources)
		logrus.Info("SearchService initialized")
	})
	return s.searchService
}

// FileManager returns the export and upload file manager.
func (s *ServiceProvider) FileManager() (*botServ.FileManager, error) {
	var err error
	s.fileManagerOnce.Do(func() {
		s.fileManager, err = botServ.NewFileManager(s.exportsPath, s.uploadsPath)
		if err != nil {
			logrus.Errorf("Failed to initialize file manager: %v", err)
			s.fileManager = nil
		}
	})
	if s.fileManager == nil {
		return nil, fmt.Errorf("file manager not initialized")
	}
	return s.fileManager, nil
}

// BotAPI returns the Telegram Bot API instance.
func (s *ServiceProvider) BotAPI(token string) (*tgbotapi.BotAPI, error) {
	var err error
	s.botAPIOnce.Do(func() {
		s.botAPI, err = tgbotapi.NewBotAPI(token)
		if err != nil {
			logrus.Errorf("Failed to initialize BotAPI: %v", err)
			s.botAPI = nil
		}
	})
	if s.botAPI == nil {
		return nil, fmt.Errorf("bot API not initialized")
	}

	logrus.Info("BotApi initialized")
	return s.botAPI, nil
}

// BotService returns the main dialogue service wired to all dependencies.
func (s *ServiceProvider) BotService(botAPI *tgbotapi.BotAPI) (*botServ.BotService, error) {
	generativeService, err := s.GenerativeService()
	if err != nil {
		logrus.Errorf("Failed to get generative service: %v", err)
		return nil, fmt.Errorf("bot service not initialized")
	}
	fileManager, err := s.FileManager()
	if err != nil {
		logrus.Errorf("Failed to get file manager: %v", err)
		return nil, fmt.Errorf("bot service not initialized")
	}

	s.botServiceOnce.Do(func() {
		s.botService = botServ.NewBotService(
			api.NewTelegramMessenger(botAPI),
			s.Repository(),
			botServ.NewScriptWriter(generativeService),
			s.SearchService(),
			fileManager,
		)
		logrus.Info("BotService initialized")
	})
	return s.botService, nil
}
