package bootstrap

import (
	"log/slog"
	"path/filepath"

	"github.com/edusight/dropout-api/internal/encoding"
	"github.com/edusight/dropout-api/internal/scoring"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

func ProvideRedisClient(cfg *Config) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
}

func ProvideEncoders(cfg *Config, logger *slog.Logger) (*encoding.Set, error) {
	set, err := encoding.Load(filepath.Join(cfg.ModelDir, "encoders.json"))
	if err != nil {
		return nil, err
	}
	logger.Info("encoders loaded",
		"action_types", set.ActionTypes.Size(),
		"item_kinds", set.ItemKinds.Size())
	return set, nil
}

func ProvideMetadata(cfg *Config, logger *slog.Logger) (*scoring.Metadata, error) {
	meta, err := scoring.LoadMetadata(filepath.Join(cfg.ModelDir, "metadata.json"))
	if err != nil {
		return nil, err
	}
	logger.Info("model metadata loaded",
		"threshold", meta.Threshold,
		"model_version", meta.ModelVersion)
	return meta, nil
}

func ProvideScorer(cfg *Config) scoring.Scorer {
	return scoring.NewServingClient(scoring.Config{
		BaseURL:   cfg.ScoringURL,
		ModelName: cfg.ScoringModel,
		Timeout:   cfg.ScoringTimeout,
	})
}

var InfrastructureModule = fx.Options(
	fx.Provide(
		ProvideRedisClient,
		ProvideEncoders,
		ProvideMetadata,
		ProvideScorer,
	),
)
