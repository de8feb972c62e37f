package main

import (
	"context"
	"fmt"
	"time"

	"callaudit-srv/config"
	configKafka "callaudit-srv/config/kafka"
	configMinio "callaudit-srv/config/minio"
	configPostgre "callaudit-srv/config/postgre"
	configRedis "callaudit-srv/config/redis"
	"callaudit-srv/internal/httpserver"
	"callaudit-srv/internal/llm"
	"callaudit-srv/internal/store"
	"callaudit-srv/internal/store/memory"
	storePostgre "callaudit-srv/internal/store/postgre"
	"callaudit-srv/pkg/discord"
	"callaudit-srv/pkg/gemini"
	pkgJWT "callaudit-srv/pkg/jwt"
	pkgKafka "callaudit-srv/pkg/kafka"
	"callaudit-srv/pkg/log"
	"callaudit-srv/pkg/minio"
	pkgRedis "callaudit-srv/pkg/redis"

	_ "callaudit-srv/docs" // Import swagger docs
)

// @title       Call Audit API
// @description Checklist-based scoring of sales calls and written correspondence.
// @version     1
// @BasePath    /
//
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})
	ctx := context.Background()

	// 3. Initialize Discord (optional)
	var discordClient discord.IDiscord
	if d, err := discord.New(logger, &discord.DiscordWebhook{
		ID:    cfg.Discord.WebhookID,
		Token: cfg.Discord.WebhookToken,
	}); err != nil {
		logger.Warnf(ctx, "Discord webhook not configured (optional): %v", err)
	} else {
		discordClient = d
		logger.Infof(ctx, "Discord webhook initialized successfully")
	}

	// 4. Report store: PostgreSQL when configured, in-memory otherwise
	st := initStore(ctx, logger, cfg)
	defer configPostgre.Disconnect()

	// 5. Redis transcript cache (optional)
	var redisClient pkgRedis.IRedis
	if cfg.Redis.Enabled() {
		if redisClient, err = configRedis.Connect(ctx, cfg.Redis); err != nil {
			logger.Warnf(ctx, "Redis unavailable, transcript cache disabled: %v", err)
			redisClient = nil
		} else {
			defer configRedis.Disconnect()
			logger.Infof(ctx, "Redis connected to %s:%d (DB %d)", cfg.Redis.Host, cfg.Redis.Port, cfg.Redis.DB)
		}
	}

	// 6. MinIO audio archive (optional)
	var minioClient minio.MinIO
	if cfg.MinIO.Enabled() {
		if minioClient, err = configMinio.Connect(ctx, cfg.MinIO); err != nil {
			logger.Warnf(ctx, "MinIO unavailable, audio archive disabled: %v", err)
			minioClient = nil
		} else {
			defer configMinio.Disconnect()
			logger.Infof(ctx, "MinIO connected to %s (bucket %s)", cfg.MinIO.Endpoint, cfg.MinIO.Bucket)
		}
	}

	// 7. Kafka analysis events (optional)
	var producer pkgKafka.IProducer
	if cfg.Kafka.Enabled() {
		if producer, err = configKafka.ConnectProducer(cfg.Kafka, cfg.Service.Name); err != nil {
			logger.Warnf(ctx, "Kafka unavailable, analysis events disabled: %v", err)
			producer = nil
		} else {
			defer configKafka.Disconnect()
			logger.Infof(ctx, "Kafka producer ready on topic %s", cfg.Kafka.Topic)
		}
	}

	// 8. Language model gateway. A missing key fails analyze calls with 503.
	gateway := initGateway(ctx, logger, cfg)

	// 9. JWT verification (optional)
	var jwtManager pkgJWT.IManager
	if cfg.JWT.SecretKey != "" {
		if jwtManager, err = pkgJWT.New(pkgJWT.Config{
			SecretKey: cfg.JWT.SecretKey,
			Issuer:    cfg.JWT.Issuer,
		}); err != nil {
			logger.Error(ctx, "Failed to initialize JWT manager: ", err)
			return
		}
	}

	// 10. Initialize HTTP server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Host:        cfg.HTTPServer.Host,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		Config:      cfg,

		Store:       st,
		RedisClient: redisClient,
		MinIOClient: minioClient,

		Gateway:       gateway,
		KafkaProducer: producer,

		JWTManager: jwtManager,
		Discord:    discordClient,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}
}

// initStore connects and migrates PostgreSQL, falling back to the in-memory
// store when no URL is set or the database is unreachable.
func initStore(ctx context.Context, logger log.Logger, cfg *config.Config) store.Store {
	if !cfg.Database.Enabled() {
		logger.Warnf(ctx, "DATABASE_URL not set, using in-memory store (data is lost on restart)")
		return memory.New()
	}

	db, err := configPostgre.Connect(ctx, cfg.Database)
	if err != nil {
		logger.Warnf(ctx, "PostgreSQL unavailable, using in-memory store: %v", err)
		return memory.New()
	}
	if err := configPostgre.Migrate(db); err != nil {
		logger.Warnf(ctx, "PostgreSQL migrations failed, using in-memory store: %v", err)
		return memory.New()
	}

	logger.Infof(ctx, "PostgreSQL connected and migrated")
	return storePostgre.New(db, logger)
}

func initGateway(ctx context.Context, logger log.Logger, cfg *config.Config) llm.Gateway {
	var provider gemini.IGemini
	p, err := gemini.NewGemini(gemini.GeminiConfig{
		APIKey:  cfg.Gemini.APIKey,
		Model:   cfg.Gemini.Model,
		BaseURL: cfg.Gemini.BaseURL,
		Timeout: time.Duration(cfg.Gemini.TimeoutS) * time.Second,
	})
	if err != nil {
		logger.Warnf(ctx, "Gemini not configured: %v", err)
	} else {
		provider = p
		logger.Infof(ctx, "Gemini client ready (model %s)", p.Model())
	}

	return llm.New(logger, provider, llm.Config{
		MaxAttempts: cfg.Gemini.MaxAttempts,
		BaseDelay:   time.Duration(cfg.Gemini.BaseDelayMS) * time.Millisecond,
		MaxDelay:    time.Duration(cfg.Gemini.MaxDelayMS) * time.Millisecond,
		CallTimeout: time.Duration(cfg.Gemini.TimeoutS) * time.Second,
	})
}
