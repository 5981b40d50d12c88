package adapters

import (
	"context"
	"encoding/base64"
	"fmt"
	"generate-ad-video/application/ports/outbound"
	"generate-ad-video/config"
	"generate-ad-video/domain"
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/bedrockruntime"
	"github.com/aws/aws-sdk-go/service/s3"
	"math/rand"
	"strings"
	"time"
)

const videoOutputPrefix = "output/"

// novaReelVideoGenerator drives Bedrock's asynchronous video generation.
// Submit starts the job; CheckStatus reads it back and, once the job
// completes, locates the mp4 the service wrote under the invocation's
// output prefix.
type novaReelVideoGenerator struct {
	logger   outbound.LoggerPort
	client   *bedrockruntime.BedrockRuntime
	s3Svc    *s3.S3
	reel     *config.ReelConfig
	s3Config *config.S3Config
}

func NewNovaReelVideoGenerator(logger outbound.LoggerPort, client *bedrockruntime.BedrockRuntime,
	s3Svc *s3.S3, reel *config.ReelConfig, s3Config *config.S3Config) outbound.VideoGeneratorPort {
	return &novaReelVideoGenerator{
		logger:   logger,
		client:   client,
		s3Svc:    s3Svc,
		reel:     reel,
		s3Config: s3Config,
	}
}

func (g *novaReelVideoGenerator) Submit(ctx context.Context, params outbound.SubmitVideoJobParams) (domain.JobHandle, error) {
	modelInput := map[string]interface{}{
		"taskType": "TEXT_VIDEO",
		"textToVideoParams": map[string]interface{}{
			"text": params.Prompt,
			"images": []interface{}{
				map[string]interface{}{
					"format": "png",
					"source": map[string]interface{}{
						"bytes": base64.StdEncoding.EncodeToString(params.ReferenceImage),
					},
				},
			},
		},
		"videoGenerationConfig": map[string]interface{}{
			"durationSeconds": g.reel.DurationSeconds,
			"fps":             g.reel.FPS,
			"dimension":       g.reel.Dimension,
			"seed":            rand.Int63n(2147483648),
		},
	}

	out, err := g.client.StartAsyncInvokeWithContext(ctx, &bedrockruntime.StartAsyncInvokeInput{
		ModelId:    aws.String(g.reel.ModelID),
		ModelInput: modelInput,
		OutputDataConfig: &bedrockruntime.AsyncInvokeOutputDataConfig{
			S3OutputDataConfig: &bedrockruntime.AsyncInvokeS3OutputDataConfig{
				S3Uri: aws.String(fmt.Sprintf("s3://%s/%s", g.s3Config.BucketName, videoOutputPrefix)),
			},
		},
	})
	if err != nil {
		g.logger.Error(err, "Failed to start video generation job")
		return domain.JobHandle{}, classifyAWSError("reel.StartAsyncInvoke", err)
	}

	handle := domain.JobHandle{
		ID:          aws.StringValue(out.InvocationArn),
		SubmittedAt: time.Now(),
	}
	g.logger.InfoWithFields("Started video generation job", map[string]interface{}{
		"invocation_arn": handle.ID,
	})
	return handle, nil
}

func (g *novaReelVideoGenerator) CheckStatus(ctx context.Context, jobID string) (domain.JobStatus, error) {
	out, err := g.client.GetAsyncInvokeWithContext(ctx, &bedrockruntime.GetAsyncInvokeInput{
		InvocationArn: aws.String(jobID),
	})
	if err != nil {
		return domain.JobStatus{}, classifyAWSError("reel.GetAsyncInvoke", err)
	}

	switch aws.StringValue(out.Status) {
	case "Completed":
		artifact, err := g.findOutputVideo(ctx, jobID)
		if err != nil {
			return domain.JobStatus{}, err
		}
		return domain.JobStatus{State: domain.JobSucceeded, Artifact: artifact}, nil
	case "Failed":
		return domain.JobStatus{
			State:  domain.JobFailed,
			Reason: aws.StringValue(out.FailureMessage),
		}, nil
	default:
		return domain.JobStatus{State: domain.JobPending}, nil
	}
}

// findOutputVideo lists the invocation's output prefix for the generated
// mp4. The service names the prefix after the trailing segment of the
// invocation ARN.
func (g *novaReelVideoGenerator) findOutputVideo(ctx context.Context, invocationArn string) (*domain.ArtifactRef, error) {
	prefix := videoOutputPrefix + arnSuffix(invocationArn) + "/"

	listed, err := g.s3Svc.ListObjectsV2WithContext(ctx, &s3.ListObjectsV2Input{
		Bucket: aws.String(g.s3Config.BucketName),
		Prefix: aws.String(prefix),
	})
	if err != nil {
		return nil, classifyAWSError("s3.ListObjectsV2", err)
	}

	for _, object := range listed.Contents {
		key := aws.StringValue(object.Key)
		if strings.HasSuffix(key, ".mp4") {
			return &domain.ArtifactRef{Key: key, Kind: domain.VideoMediaKind}, nil
		}
	}
	return nil, fmt.Errorf("no mp4 found under %s after job completion", prefix)
}

func arnSuffix(arn string) string {
	parts := strings.Split(arn, "/")
	return parts[len(parts)-1]
}
