package httpserver

import (
	"errors"

	"callaudit-srv/config"
	"callaudit-srv/internal/llm"
	"callaudit-srv/internal/store"
	"callaudit-srv/pkg/discord"
	pkgJWT "callaudit-srv/pkg/jwt"
	pkgKafka "callaudit-srv/pkg/kafka"
	"callaudit-srv/pkg/log"
	"callaudit-srv/pkg/minio"
	pkgRedis "callaudit-srv/pkg/redis"

	"github.com/gin-gonic/gin"
)

type HTTPServer struct {
	// Server Configuration
	gin         *gin.Engine
	l           log.Logger
	host        string
	port        int
	mode        string
	environment string
	config      *config.Config

	// Storage Configuration
	store store.Store
	redis pkgRedis.IRedis
	minio minio.MinIO

	// Model access
	gateway llm.Gateway

	// Events
	producer pkgKafka.IProducer

	// Authentication & Security Configuration
	jwtManager pkgJWT.IManager

	// Monitoring & Notification Configuration
	discord discord.IDiscord
}

type Config struct {
	// Server Configuration
	Logger      log.Logger
	Host        string
	Port        int
	Mode        string
	Environment string
	Config      *config.Config

	// Storage Configuration. Redis and MinIO are optional.
	Store       store.Store
	RedisClient pkgRedis.IRedis
	MinIOClient minio.MinIO

	Gateway llm.Gateway

	// Optional; analysis events are skipped without it.
	KafkaProducer pkgKafka.IProducer

	// Optional; without it the auth gate checks credential presence only.
	JWTManager pkgJWT.IManager

	// Monitoring & Notification Configuration
	Discord discord.IDiscord
}

// New creates a new HTTPServer instance with the provided configuration.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		host:        cfg.Host,
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		config:      cfg.Config,

		store: cfg.Store,
		redis: cfg.RedisClient,
		minio: cfg.MinIOClient,

		gateway:  cfg.Gateway,
		producer: cfg.KafkaProducer,

		jwtManager: cfg.JWTManager,

		discord: cfg.Discord,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

// validate validates that all required dependencies are provided.
func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	// host can be empty (listen on all interfaces)
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.config == nil {
		return errors.New("config is required")
	}
	if srv.store == nil {
		return errors.New("store is required")
	}
	if srv.gateway == nil {
		return errors.New("gateway is required")
	}
	return nil
}
