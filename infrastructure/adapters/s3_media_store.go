package adapters

import (
	"bytes"
	"context"
	"fmt"
	"generate-ad-video/application/ports/outbound"
	"generate-ad-video/config"
	"generate-ad-video/domain"
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/google/uuid"
	"io"
)

type s3MediaStore struct {
	logger   outbound.LoggerPort
	s3Svc    *s3.S3
	s3Config *config.S3Config
}

func NewS3MediaStore(logger outbound.LoggerPort, s3Svc *s3.S3, s3Config *config.S3Config) outbound.MediaStorePort {
	return &s3MediaStore{
		logger:   logger,
		s3Svc:    s3Svc,
		s3Config: s3Config,
	}
}

func (s *s3MediaStore) Put(ctx context.Context, params outbound.PutMediaParams) (domain.ArtifactRef, error) {
	key := objectKey(params.Kind)

	_, err := s.s3Svc.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.s3Config.BucketName),
		Key:           aws.String(key),
		Body:          bytes.NewReader(params.Content),
		ContentLength: aws.Int64(int64(len(params.Content))),
		ContentType:   aws.String(params.ContentType),
	})
	if err != nil {
		s.logger.ErrorWithFields(err, "Failed to upload object to S3", map[string]interface{}{
			"bucket": s.s3Config.BucketName,
			"key":    key,
		})
		return domain.ArtifactRef{}, classifyAWSError("s3.PutObject", err)
	}

	s.logger.DebugWithFields("Uploaded media object", map[string]interface{}{
		"key":  key,
		"kind": params.Kind,
	})
	return domain.ArtifactRef{Key: key, Kind: params.Kind}, nil
}

func (s *s3MediaStore) Get(ctx context.Context, ref domain.ArtifactRef) ([]byte, error) {
	out, err := s.s3Svc.GetObjectWithContext(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.s3Config.BucketName),
		Key:    aws.String(ref.Key),
	})
	if err != nil {
		s.logger.ErrorWithFields(err, "Failed to fetch object from S3", map[string]interface{}{
			"bucket": s.s3Config.BucketName,
			"key":    ref.Key,
		})
		return nil, classifyAWSError("s3.GetObject", err)
	}

	defer func(body io.ReadCloser) {
		if err := body.Close(); err != nil {
			s.logger.Error(err, "Failed to close the object body")
		}
	}(out.Body)

	return io.ReadAll(out.Body)
}

func objectKey(kind domain.MediaKind) string {
	id := uuid.New().String()
	switch kind {
	case domain.ImageMediaKind:
		return fmt.Sprintf("images/ad_image_%s.png", id)
	case domain.AudioMediaKind:
		return fmt.Sprintf("generated_audio/voiceover_%s.mp3", id)
	case domain.MergedVideoMediaKind:
		return fmt.Sprintf("final_videos/ad_%s.mp4", id)
	default:
		return fmt.Sprintf("generated_videos/video_%s.mp4", id)
	}
}
