package adapters

import (
	"context"
	"generate-ad-video/application/ports/outbound"
	"generate-ad-video/config"
	"generate-ad-video/domain"
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbattribute"
	"time"
)

type dynamoStageItem struct {
	RunID     string `dynamodbav:"run_id"`
	Ordinal   int    `dynamodbav:"ordinal"`
	Stage     string `dynamodbav:"stage"`
	Status    string `dynamodbav:"status"`
	Message   string `dynamodbav:"message"`
	Timestamp int64  `dynamodbav:"timestamp"`
	TTL       int64  `dynamodbav:"ttl"`
}

type dynamoRunLog struct {
	logger       outbound.LoggerPort
	dynamoSvc    *dynamodb.DynamoDB
	dynamoConfig *config.DynamoConfig
}

func NewDynamoRunLog(logger outbound.LoggerPort, dynamoSvc *dynamodb.DynamoDB, dynamoConfig *config.DynamoConfig) outbound.RunLogStorePort {
	return &dynamoRunLog{
		logger:       logger,
		dynamoSvc:    dynamoSvc,
		dynamoConfig: dynamoConfig,
	}
}

func (d *dynamoRunLog) Save(ctx context.Context, runID string, records []domain.StageRecord) error {
	ttl := time.Now().Add(time.Duration(d.dynamoConfig.TtlMinutes) * time.Minute).Unix()

	for ordinal, record := range records {
		item := dynamoStageItem{
			RunID:     runID,
			Ordinal:   ordinal,
			Stage:     string(record.Stage),
			Status:    string(record.Status),
			Message:   record.Message,
			Timestamp: record.Timestamp.Unix(),
			TTL:       ttl,
		}
		av, err := dynamodbattribute.MarshalMap(item)
		if err != nil {
			d.logger.ErrorWithFields(err, "Failed to marshal stage record", map[string]interface{}{
				"run_id": runID,
				"stage":  record.Stage,
			})
			return err
		}

		_, err = d.dynamoSvc.PutItemWithContext(ctx, &dynamodb.PutItemInput{
			Item:      av,
			TableName: aws.String(d.dynamoConfig.TableName),
		})
		if err != nil {
			d.logger.ErrorWithFields(err, "Failed to save stage record", map[string]interface{}{
				"run_id": runID,
				"stage":  record.Stage,
			})
			return err
		}
	}
	return nil
}
