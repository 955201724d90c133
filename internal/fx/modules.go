package fx

import (
	"go.uber.org/fx"

	"riot-stats-hub/internal/config"
	"riot-stats-hub/internal/database"
	"riot-stats-hub/internal/gateway"
	"riot-stats-hub/internal/logger"
	"riot-stats-hub/internal/repository"
	"riot-stats-hub/internal/riot"
)

func provideForwarder(c *riot.Client) gateway.Forwarder {
	return c
}

func provideMatchStore(r *repository.MatchCacheRepository) gateway.MatchStore {
	return r
}

var Module = fx.Options(
	fx.Provide(logger.New),
	fx.Provide(config.Load),
	fx.Provide(database.New),
	// repos
	fx.Provide(repository.NewMatchCacheRepository),
	fx.Provide(provideMatchStore),
	// upstream client
	fx.Provide(riot.NewClient),
	fx.Provide(provideForwarder),
	// server
	fx.Provide(gateway.NewServer),
)
