package app

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/prometheus/client_golang/prometheus"

	"lecturescribe/internal/api/server"
	"lecturescribe/internal/app/audio"
	"lecturescribe/internal/app/batch"
	"lecturescribe/internal/app/media"
	"lecturescribe/internal/app/metrics"
	"lecturescribe/internal/app/pipeline"
	"lecturescribe/internal/app/store"
	"lecturescribe/internal/app/store/pg"
	"lecturescribe/internal/app/store/sqlite"
	"lecturescribe/internal/app/stt"
	"lecturescribe/internal/app/stt/factory"
	"lecturescribe/internal/app/stt/httpstt"
	"lecturescribe/internal/config"
)

func provideLogger(cfg *config.Config) *slog.Logger {
	level := slog.LevelInfo
	if cfg.Environment == "development" {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func provideStore(cfg *config.Config) (store.VideoStore, func(), error) {
	var (
		videoStore store.VideoStore
		err        error
	)
	switch cfg.DBDriver {
	case "postgres":
		videoStore, err = pg.Open(cfg.DBDSN)
	default:
		videoStore, err = sqlite.Open(cfg.DBPath)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("open video store: %w", err)
	}
	return videoStore, func() { videoStore.Close() }, nil
}

func provideRetriever(cfg *config.Config) (media.Retriever, error) {
	var objects *media.ObjectStorage
	if cfg.MinioEndpoint != "" {
		var err error
		objects, err = media.NewObjectStorage(cfg.MinioEndpoint, cfg.MinioAccessKey, cfg.MinioSecretKey, cfg.MinioUseSSL)
		if err != nil {
			return nil, err
		}
	}
	return media.NewHTTPRetriever(objects), nil
}

func provideExtractor() audio.Extractor {
	return audio.NewFFmpegExtractor()
}

// provideSpeechProvider prefers a providers YAML file; without one it builds
// the generic HTTP provider straight from SPEECH_SERVICE_URL.
func provideSpeechProvider(cfg *config.Config) (stt.Provider, error) {
	if err := cfg.RequireSpeechService(); err != nil {
		return nil, err
	}
	if cfg.ProvidersConfig != "" {
		providers, err := stt.LoadProvidersConfig(cfg.ProvidersConfig)
		if err != nil {
			return nil, err
		}
		return factory.NewDefault(providers)
	}
	return httpstt.NewClient(httpstt.Config{
		BaseURL:     cfg.SpeechServiceURL,
		BearerToken: cfg.SpeechAPIKey,
		Timeout:     cfg.SubmitTimeout,
	}), nil
}

func provideMetrics() *metrics.Pipeline {
	return metrics.NewPipeline(prometheus.DefaultRegisterer)
}

func provideCoordinator(cfg *config.Config, videoStore store.VideoStore, retriever media.Retriever, extractor audio.Extractor, provider stt.Provider, logger *slog.Logger, pipelineMetrics *metrics.Pipeline) *pipeline.Coordinator {
	return pipeline.NewCoordinator(videoStore, retriever, extractor, provider, cfg.StagingDir, pipeline.Options{
		PollConfig: stt.PollConfig{Interval: cfg.PollInterval, MaxAttempts: cfg.PollMaxAttempts},
		Timeouts: pipeline.StageTimeouts{
			Retrieve: cfg.RetrieveTimeout,
			Extract:  cfg.ExtractTimeout,
			Submit:   cfg.SubmitTimeout,
		},
		Logger:  logger,
		Metrics: pipelineMetrics,
	})
}

func provideServer(cfg *config.Config, videoStore store.VideoStore, coordinator *pipeline.Coordinator, logger *slog.Logger) *server.Server {
	return server.NewServer(server.Config{
		Host:         cfg.Host,
		Port:         cfg.Port,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
		Environment:  cfg.Environment,
	}, videoStore, coordinator, logger)
}

func provideRunner(videoStore store.VideoStore, coordinator *pipeline.Coordinator, logger *slog.Logger, progress batch.ProgressConfig) *batch.Runner {
	return batch.NewRunner(videoStore, coordinator, logger, progress)
}
