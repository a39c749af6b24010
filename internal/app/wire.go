//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"

	"lecturescribe/internal/api/server"
	"lecturescribe/internal/app/batch"
	"lecturescribe/internal/config"
)

// InitializeServer assembles the API server and everything behind it.
func InitializeServer(cfg *config.Config) (*server.Server, func(), error) {
	wire.Build(
		provideLogger,
		provideStore,
		provideRetriever,
		provideExtractor,
		provideSpeechProvider,
		provideMetrics,
		provideCoordinator,
		provideServer,
	)
	return nil, nil, nil
}

// InitializeRunner assembles the CLI batch runner.
func InitializeRunner(cfg *config.Config, progress batch.ProgressConfig) (*batch.Runner, func(), error) {
	wire.Build(
		provideLogger,
		provideStore,
		provideRetriever,
		provideExtractor,
		provideSpeechProvider,
		provideMetrics,
		provideCoordinator,
		provideRunner,
	)
	return nil, nil, nil
}
