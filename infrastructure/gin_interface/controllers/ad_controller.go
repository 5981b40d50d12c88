package controllers

import (
	"context"
	"errors"
	"generate-ad-video/application/ports/inbound"
	"generate-ad-video/application/ports/outbound"
	"generate-ad-video/domain"
	"generate-ad-video/infrastructure/gin_interface/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"net/http"
)

type AdController interface {
	CreateAd(c *gin.Context)
	StreamProgress(c *gin.Context)
	RegisterRoutes(g *gin.Engine)
}

type adController struct {
	logger    outbound.LoggerPort
	pipeline  inbound.AdPipelinePort
	publisher outbound.ProgressPublisherPort
}

func NewAdController(logger outbound.LoggerPort, pipeline inbound.AdPipelinePort,
	publisher outbound.ProgressPublisherPort) AdController {
	return &adController{
		logger:    logger,
		pipeline:  pipeline,
		publisher: publisher,
	}
}

// CreateAd runs the whole pipeline on the request. Video generation makes
// this a long call; clients follow along on the run's event stream.
func (a *adController) CreateAd(c *gin.Context) {
	var request dto.CreateAdRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	runID := uuid.NewString()
	newCtx, cancel := context.WithCancel(c.Request.Context())
	defer cancel()

	onProgress := func(stage domain.StageName, status domain.StageStatus) {
		a.publisher.Publish(runID, stage, status)
	}

	result, err := a.pipeline.Run(newCtx, inbound.RunAdParams{
		RunID:       runID,
		Description: request.Description,
	}, onProgress)
	if err != nil {
		a.respondPipelineError(c, runID, err)
		return
	}

	c.JSON(http.StatusOK, dto.CreateAdResponse{
		RunID:    result.RunID,
		FinalKey: result.Final.Key,
		StageLog: result.StageLog,
	})
}

// StreamProgress attaches the client to a run's SSE channel.
func (a *adController) StreamProgress(c *gin.Context) {
	runID := c.Param("id")
	a.publisher.HandlerFor(runID)(c.Writer, c.Request)
}

func (a *adController) respondPipelineError(c *gin.Context, runID string, err error) {
	var pipelineErr *domain.PipelineError
	if !errors.As(err, &pipelineErr) {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	status := http.StatusInternalServerError
	if pipelineErr.Kind == domain.TimeoutErrorKind {
		status = http.StatusGatewayTimeout
	}

	c.AbortWithStatusJSON(status, dto.PipelineErrorResponse{
		RunID:   runID,
		Stage:   string(pipelineErr.Stage),
		Kind:    string(pipelineErr.Kind),
		Message: pipelineErr.Error(),
	})
}

func (a *adController) RegisterRoutes(g *gin.Engine) {
	g.POST("/ads", a.CreateAd)
	g.GET("/ads/:id/events", a.StreamProgress)
	g.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
