package main

import (
	"fmt"
	"generate-ad-video/application/ports/inbound"
	"generate-ad-video/application/ports/outbound"
	"generate-ad-video/application/services"
	"generate-ad-video/config"
	"generate-ad-video/infrastructure/adapters"
	"generate-ad-video/infrastructure/gin_interface/controllers"
	"generate-ad-video/middleware"
	mockmedia "generate-ad-video/mock"
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/bedrockruntime"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/polly"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/panjf2000/ants/v2"
	"github.com/rs/zerolog/log"
	"os"
	"time"
)

func main() {
	_ = godotenv.Load()

	zeroLogger := adapters.NewZerologWrapper()

	panicHandler := func(p interface{}) {
		zeroLogger.Error(fmt.Errorf("%v", p), "Panic in worker pool")
	}

	workerPool, err := ants.NewPool(120, ants.WithPanicHandler(panicHandler))
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create worker pool")
	}
	defer workerPool.Release()

	pipelineConfig, err := config.GetPipelineConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get pipeline config")
	}

	retry := services.RetryPolicy{
		Attempts: pipelineConfig.TransientRetryAttempts,
		Backoff:  pipelineConfig.TransientRetryBackoff,
	}
	parser := services.NewStrategyParser(zeroLogger)

	var pipeline inbound.AdPipelinePort
	if os.Getenv("AD_MOCK_MODE") == "true" {
		zeroLogger.Warn("Running in mock mode, no AWS calls will be made")
		pipeline = buildMockPipeline(zeroLogger, parser, retry)
	} else {
		pipeline = buildPipeline(zeroLogger, parser, retry)
	}

	publisher := adapters.NewSSEProgressPublisher(zeroLogger, workerPool)
	defer publisher.Close()

	adController := controllers.NewAdController(zeroLogger, pipeline, publisher)

	router := gin.Default()

	err = router.SetTrustedProxies(nil)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to set trusted proxies!")
	}

	if jwksURL := os.Getenv("JWKS_URL"); jwksURL != "" {
		authHandler, err := middleware.NewAuthHandler(jwksURL)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to create auth handler!")
		}
		router.Use(authHandler.AuthMiddleware())
	}

	adController.RegisterRoutes(router)

	err = router.Run(":8080")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to start server!")
	}
}

func buildPipeline(zeroLogger outbound.LoggerPort, parser services.StrategyParser, retry services.RetryPolicy) inbound.AdPipelinePort {
	bedrockConfig, err := config.GetBedrockConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get bedrock config")
	}

	canvasConfig, err := config.GetCanvasConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get canvas config")
	}

	reelConfig, err := config.GetReelConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get reel config")
	}

	pollyConfig, err := config.GetPollyConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get polly config")
	}

	s3Config, err := config.GetS3Config()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get s3 config")
	}

	dynamoConfig, err := config.GetDynamoConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get dynamo config")
	}

	sess := session.Must(session.NewSessionWithOptions(session.Options{
		Config:            aws.Config{Region: aws.String(s3Config.Region)},
		SharedConfigState: session.SharedConfigEnable,
	}))

	bedrockClient := bedrockruntime.New(sess)
	s3Client := s3.New(sess)
	pollyClient := polly.New(sess)
	dynamoClient := dynamodb.New(sess)

	planner := adapters.NewBedrockPlanner(zeroLogger, bedrockClient, bedrockConfig)
	strategyGenerator := adapters.NewBedrockStrategyGenerator(zeroLogger, bedrockClient, bedrockConfig)
	imageGenerator := adapters.NewNovaCanvasImageGenerator(zeroLogger, bedrockClient, canvasConfig)
	videoGenerator := adapters.NewNovaReelVideoGenerator(zeroLogger, bedrockClient, s3Client, reelConfig, s3Config)
	speechGenerator := adapters.NewPollySpeechGenerator(zeroLogger, pollyClient, pollyConfig)
	mediaStore := adapters.NewS3MediaStore(zeroLogger, s3Client, s3Config)
	merger := adapters.NewFFMPEGMediaMerger(zeroLogger, mediaStore)
	runLog := adapters.NewDynamoRunLog(zeroLogger, dynamoClient, dynamoConfig)

	poller := services.NewJobPoller(zeroLogger, reelConfig.PollInterval, reelConfig.PollDeadline, reelConfig.MaxCheckFaults)

	return services.NewAdPipelineOrchestrator(zeroLogger, runLog,
		services.NewStrategyStage(zeroLogger, planner, strategyGenerator, parser, retry),
		services.NewImageStage(zeroLogger, imageGenerator, mediaStore, retry),
		services.NewVideoStage(zeroLogger, videoGenerator, mediaStore, poller, retry),
		services.NewAudioStage(zeroLogger, speechGenerator, mediaStore, retry),
		services.NewMergeStage(zeroLogger, merger, retry),
	)
}

func buildMockPipeline(zeroLogger outbound.LoggerPort, parser services.StrategyParser, retry services.RetryPolicy) inbound.AdPipelinePort {
	mediaStore := mockmedia.NewMediaStore()
	poller := services.NewJobPoller(zeroLogger, time.Second, 30*time.Second, 3)

	return services.NewAdPipelineOrchestrator(zeroLogger, nil,
		services.NewStrategyStage(zeroLogger, mockmedia.NewPlanner(zeroLogger), mockmedia.NewStrategyGenerator(), parser, retry),
		services.NewImageStage(zeroLogger, mockmedia.NewImageGenerator(), mediaStore, retry),
		services.NewVideoStage(zeroLogger, mockmedia.NewVideoGenerator(zeroLogger, mediaStore, 3), mediaStore, poller, retry),
		services.NewAudioStage(zeroLogger, mockmedia.NewSpeechGenerator(), mediaStore, retry),
		services.NewMergeStage(zeroLogger, mockmedia.NewMerger(mediaStore), retry),
	)
}
