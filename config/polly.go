package config

import "os"

type PollyConfig struct {
	VoiceID    string
	Engine     string
	SampleRate string
}

func GetPollyConfig() (*PollyConfig, error) {
	voiceID := os.Getenv("POLLY_VOICE_ID")
	if voiceID == "" {
		voiceID = "Joanna"
	}

	engine := os.Getenv("POLLY_ENGINE")
	if engine == "" {
		engine = "neural"
	}

	sampleRate := os.Getenv("POLLY_SAMPLE_RATE")
	if sampleRate == "" {
		sampleRate = "24000"
	}

	return &PollyConfig{
		VoiceID:    voiceID,
		Engine:     engine,
		SampleRate: sampleRate,
	}, nil
}
