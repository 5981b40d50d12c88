package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/bedrockruntime"
)

type novaMessage struct {
	Role    string        `json:"role"`
	Content []novaContent `json:"content"`
}

type novaContent struct {
	Text string `json:"text"`
}

type novaInferenceConfig struct {
	MaxTokens   int     `json:"maxTokens"`
	Temperature float64 `json:"temperature"`
}

type novaTextRequest struct {
	Messages        []novaMessage       `json:"messages"`
	InferenceConfig novaInferenceConfig `json:"inferenceConfig"`
}

type novaTextResponse struct {
	Output struct {
		Message struct {
			Content []novaContent `json:"content"`
		} `json:"message"`
	} `json:"output"`
}

// invokeNovaText sends one user message to a Nova text model and returns
// the first content block of the reply.
func invokeNovaText(ctx context.Context, client *bedrockruntime.BedrockRuntime, modelID string, prompt string, temperature float64) (string, error) {
	body, err := json.Marshal(novaTextRequest{
		Messages: []novaMessage{
			{Role: "user", Content: []novaContent{{Text: prompt}}},
		},
		InferenceConfig: novaInferenceConfig{
			MaxTokens:   1000,
			Temperature: temperature,
		},
	})
	if err != nil {
		return "", err
	}

	out, err := client.InvokeModelWithContext(ctx, &bedrockruntime.InvokeModelInput{
		ModelId:     aws.String(modelID),
		ContentType: aws.String("application/json"),
		Accept:      aws.String("application/json"),
		Body:        body,
	})
	if err != nil {
		return "", classifyAWSError("bedrock.InvokeModel", err)
	}

	var response novaTextResponse
	if err := json.Unmarshal(out.Body, &response); err != nil {
		return "", err
	}
	if len(response.Output.Message.Content) == 0 {
		return "", fmt.Errorf("model %s returned no content blocks", modelID)
	}
	return response.Output.Message.Content[0].Text, nil
}
