package adapters

import (
	"context"
	"generate-ad-video/application/ports/outbound"
	"generate-ad-video/config"
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/polly"
	"io"
)

type pollySpeechGenerator struct {
	logger      outbound.LoggerPort
	pollySvc    *polly.Polly
	pollyConfig *config.PollyConfig
}

func NewPollySpeechGenerator(logger outbound.LoggerPort, pollySvc *polly.Polly, pollyConfig *config.PollyConfig) outbound.SpeechGeneratorPort {
	return &pollySpeechGenerator{
		logger:      logger,
		pollySvc:    pollySvc,
		pollyConfig: pollyConfig,
	}
}

func (g *pollySpeechGenerator) Synthesize(ctx context.Context, script string) ([]byte, error) {
	out, err := g.pollySvc.SynthesizeSpeechWithContext(ctx, &polly.SynthesizeSpeechInput{
		Text:         aws.String(script),
		OutputFormat: aws.String("mp3"),
		VoiceId:      aws.String(g.pollyConfig.VoiceID),
		Engine:       aws.String(g.pollyConfig.Engine),
		SampleRate:   aws.String(g.pollyConfig.SampleRate),
	})
	if err != nil {
		g.logger.Error(err, "Speech synthesis failed")
		return nil, classifyAWSError("polly.SynthesizeSpeech", err)
	}

	defer func(body io.ReadCloser) {
		if err := body.Close(); err != nil {
			g.logger.Error(err, "Failed to close the audio stream")
		}
	}(out.AudioStream)

	content, err := io.ReadAll(out.AudioStream)
	if err != nil {
		g.logger.Error(err, "Failed to read the audio stream")
		return nil, err
	}
	return content, nil
}
