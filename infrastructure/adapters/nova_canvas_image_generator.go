package adapters

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"generate-ad-video/application/ports/outbound"
	"generate-ad-video/config"
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/bedrockruntime"
	"math/rand"
)

type canvasTextToImageParams struct {
	Text string `json:"text"`
}

type canvasGenerationConfig struct {
	NumberOfImages int     `json:"numberOfImages"`
	Height         int     `json:"height"`
	Width          int     `json:"width"`
	CfgScale       float64 `json:"cfgScale"`
	Seed           int64   `json:"seed"`
}

type canvasRequest struct {
	TaskType              string                  `json:"taskType"`
	TextToImageParams     canvasTextToImageParams `json:"textToImageParams"`
	ImageGenerationConfig canvasGenerationConfig  `json:"imageGenerationConfig"`
}

type canvasResponse struct {
	Images []string `json:"images"`
}

type novaCanvasImageGenerator struct {
	logger outbound.LoggerPort
	client *bedrockruntime.BedrockRuntime
	canvas *config.CanvasConfig
}

func NewNovaCanvasImageGenerator(logger outbound.LoggerPort, client *bedrockruntime.BedrockRuntime, canvas *config.CanvasConfig) outbound.ImageGeneratorPort {
	return &novaCanvasImageGenerator{
		logger: logger,
		client: client,
		canvas: canvas,
	}
}

func (g *novaCanvasImageGenerator) Generate(ctx context.Context, prompt string) ([]byte, error) {
	body, err := json.Marshal(canvasRequest{
		TaskType:          "TEXT_IMAGE",
		TextToImageParams: canvasTextToImageParams{Text: prompt},
		ImageGenerationConfig: canvasGenerationConfig{
			NumberOfImages: 1,
			Height:         g.canvas.Height,
			Width:          g.canvas.Width,
			CfgScale:       g.canvas.CfgScale,
			Seed:           rand.Int63n(2147483648),
		},
	})
	if err != nil {
		g.logger.Error(err, "Failed to marshal the image request body")
		return nil, err
	}

	out, err := g.client.InvokeModelWithContext(ctx, &bedrockruntime.InvokeModelInput{
		ModelId:     aws.String(g.canvas.ModelID),
		ContentType: aws.String("application/json"),
		Accept:      aws.String("application/json"),
		Body:        body,
	})
	if err != nil {
		g.logger.Error(err, "Image model invocation failed")
		return nil, classifyAWSError("canvas.InvokeModel", err)
	}

	var response canvasResponse
	if err := json.Unmarshal(out.Body, &response); err != nil {
		g.logger.Error(err, "Failed to unmarshal the image response")
		return nil, err
	}
	if len(response.Images) == 0 {
		return nil, fmt.Errorf("image model returned no images")
	}

	decoded, err := base64.StdEncoding.DecodeString(response.Images[0])
	if err != nil {
		g.logger.Error(err, "Failed to decode the image payload")
		return nil, err
	}
	return decoded, nil
}
