package main

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/streadway/amqp"

	"github.com/muhammadolammi/resumeworker/internal/cache"
	"github.com/muhammadolammi/resumeworker/internal/database"
	"github.com/muhammadolammi/resumeworker/internal/extractor"
	"github.com/muhammadolammi/resumeworker/internal/logger"
	"github.com/muhammadolammi/resumeworker/internal/render"
	"github.com/muhammadolammi/resumeworker/internal/resume"
)

func main() {
	_ = godotenv.Load()

	cfg, err := loadConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	logger.Init(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat, Output: os.Stderr})

	engine, err := newEngine(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load keyword tables")
	}
	dispatcher := extractor.NewDispatcher(engine, extractor.WithLogger(logger.Logger))

	switch cfg.Mode {
	case modeFile:
		if err := runFile(cfg, dispatcher, os.Stdout); err != nil {
			fmt.Fprintln(os.Stderr, "Could not parse the resume:", err)
			os.Exit(1)
		}
	case modeHTTP:
		runHTTP(cfg, dispatcher)
	default:
		runWorker(cfg, dispatcher)
	}
}

func newEngine(cfg *Config) (*resume.Engine, error) {
	if cfg.KeywordsFile == "" {
		return resume.NewEngine(), nil
	}
	kw, err := resume.LoadKeywords(cfg.KeywordsFile)
	if err != nil {
		return nil, err
	}
	return resume.NewEngine(resume.WithKeywords(kw)), nil
}

// runFile parses one resume from disk and prints it.
func runFile(cfg *Config, dispatcher *extractor.Dispatcher, out io.Writer) error {
	parsed, err := dispatcher.ParseFile(cfg.File)
	if err != nil {
		return err
	}
	if cfg.Format == "html" {
		return render.HTML(out, parsed)
	}
	return render.JSON(out, parsed)
}

func runHTTP(cfg *Config, dispatcher *extractor.Dispatcher) {
	mux := http.NewServeMux()
	setupRoutes(mux, &uploadServer{dispatcher: dispatcher})

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}
	logger.Info().Str("addr", cfg.HTTPAddr).Msg("upload server listening")
	if err := srv.ListenAndServe(); err != nil {
		logger.Fatal().Err(err).Msg("upload server stopped")
	}
}

func runWorker(cfg *Config, dispatcher *extractor.Dispatcher) {
	db, err := sql.Open("postgres", cfg.DBURL)
	if err != nil {
		logger.Fatal().Err(err).Msg("error opening db")
	}
	dbqueries := database.New(db)

	r2Config := cfg.R2
	awsConfig, err := config.LoadDefaultConfig(context.TODO(),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(r2Config.AccessKey, r2Config.SecretKey, "")),
		config.WithRegion("auto"),
	)
	if err != nil {
		logger.Fatal().Err(err).Msg("error creating aws config")
	}

	conn, err := amqp.Dial(cfg.RabbitMQURL)
	if err != nil {
		logger.Fatal().Err(err).Msg("error connecting to RabbitMQ")
	}
	defer conn.Close()

	workerConfig := WorkerConfig{
		DB:          dbqueries,
		R2:          &r2Config,
		AwsConfig:   &awsConfig,
		RABBITMQUrl: cfg.RabbitMQURL,
		RabbitConn:  conn,
		Publisher:   &amqpPublisher{conn: conn},
		Dispatcher:  dispatcher,
	}
	workerConfig.Fetch = r2Fetcher(newR2Client(*workerConfig.AwsConfig, workerConfig.R2), workerConfig.R2.Bucket)

	if cfg.Redis.Addr != "" {
		redisCache, err := cache.NewRedis(context.Background(), cfg.Redis)
		if err != nil {
			logger.Fatal().Err(err).Msg("error connecting to redis")
		}
		defer redisCache.Close()
		workerConfig.Cache = redisCache
	}

	logger.Info().Int("workers", cfg.Workers).Msg("starting consumer worker pool")
	workerConfig.StartConsumerWorkerPool(cfg.Workers)
}
