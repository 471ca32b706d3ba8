package app

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"

	"docsight/internal/api"
	"docsight/internal/config"
	"docsight/internal/llm"
	"docsight/internal/prompt"
	"docsight/internal/search"
	"docsight/internal/service"
	"docsight/internal/vision"
)

// Run wires the application together and blocks serving HTTP. It returns a
// process exit code.
func Run() int {
	cfg, err := config.LoadConfig()
	if err != nil {
		// slog is not yet configured, so use the default logger for this critical error.
		slog.Error("Failed to load configuration", "error", err)
		return 1
	}

	setupLogger(cfg.LogLevel)
	logConfigSource()

	readClient := vision.NewReadClient(cfg.VisionEndpoint, cfg.VisionKey)
	searchClient := search.NewClient(cfg.SearchEndpoint, cfg.SearchKey, cfg.SearchIndex)
	completionProvider := llm.NewOpenAIProvider(cfg.OpenAIEndpoint, cfg.OpenAIKey, cfg.OpenAIDeployment, cfg.OpenAIAPIVersion)

	extractor := vision.NewExtractor(readClient)
	retriever := search.NewRetriever(searchClient, cfg.GenericKeywordList())
	composer := prompt.NewComposer(retriever.Configured())

	chatService := service.NewChatService(extractor, retriever, composer, completionProvider)

	status := api.ServiceStatus{
		VisionConfigured:     readClient.Configured(),
		SearchConfigured:     searchClient.Configured(),
		CompletionConfigured: completionProvider.Configured(),
		SearchIndex:          cfg.SearchIndex,
	}
	logServiceStatus(status)

	chatHandler := api.NewChatHandler(chatService, status)
	router := api.NewRouter(chatHandler)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.AppPort),
		Handler:           router,
		ReadHeaderTimeout: 20 * time.Second,
		// A chat turn can outlast any sane write timeout because the backing
		// calls carry their own; the route-level timeout bounds it instead.
		WriteTimeout: 0,
		IdleTimeout:  120 * time.Second,
	}

	slog.Info("Starting server", "port", cfg.AppPort)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Server failed", "error", err)
		return 1
	}

	return 0
}

func logConfigSource() {
	configFileUsed := viper.ConfigFileUsed()
	if configFileUsed != "" {
		slog.Info("Successfully loaded configuration from file.", "file", configFileUsed)
	} else {
		slog.Info("Configuration file not found. Using environment variables and defaults.")
	}
}

func logServiceStatus(status api.ServiceStatus) {
	slog.Info("Backing service configuration",
		"vision", status.VisionConfigured,
		"search", status.SearchConfigured,
		"completion", status.CompletionConfigured,
		"search_index", status.SearchIndex,
	)
	if !status.CompletionConfigured {
		slog.Warn("Completion service not configured; chat requests will fail until it is")
	}
	if !status.SearchConfigured {
		slog.Warn("Search service not configured; retrieval is disabled")
	}
}

func setupLogger(logLevel string) {
	var level slog.Level
	switch strings.ToUpper(logLevel) {
	case "DEBUG":
		level = slog.LevelDebug
	case "WARN":
		level = slog.LevelWarn
	case "ERROR":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
}
