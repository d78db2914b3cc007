package repository

import (
	"context"

	"rotaclick/internal/domain/entities"
	"rotaclick/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// BatchWriteItem accepts at most 25 requests per call.
const maxBatchWrite = 25

type platformSettingItem struct {
	Key       string `dynamodbav:"key"`
	Value     string `dynamodbav:"value"`
	UpdatedAt string `dynamodbav:"updated_at"`
	UpdatedBy string `dynamodbav:"updated_by,omitempty"`
}

// PlatformSettingsDynamoRepository stores one row per setting key.
//
// Table requirements:
//   - PK: key (string)
type PlatformSettingsDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IPlatformSettingsRepository = (*PlatformSettingsDynamoRepository)(nil)

func NewPlatformSettingsDynamoRepository(ddb DynamoAPI, tableName string) *PlatformSettingsDynamoRepository {
	return &PlatformSettingsDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *PlatformSettingsDynamoRepository) GetAll(ctx context.Context) ([]entities.PlatformSetting, error) {
	items, err := scanAll[platformSettingItem](ctx, r.ddb, &dynamodb.ScanInput{
		TableName:      aws.String(r.tableName),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}
	out := make([]entities.PlatformSetting, 0, len(items))
	for _, it := range items {
		out = append(out, entities.PlatformSetting{
			Key:       it.Key,
			Value:     it.Value,
			UpdatedAt: parseTime(it.UpdatedAt),
			UpdatedBy: it.UpdatedBy,
		})
	}
	return out, nil
}

// PutMany overwrites the given keys, retrying unprocessed items until the
// batch is fully written.
func (r *PlatformSettingsDynamoRepository) PutMany(ctx context.Context, settings []entities.PlatformSetting) error {
	for start := 0; start < len(settings); start += maxBatchWrite {
		end := start + maxBatchWrite
		if end > len(settings) {
			end = len(settings)
		}

		reqs := make([]types.WriteRequest, 0, end-start)
		for _, s := range settings[start:end] {
			av, err := attributevalue.MarshalMap(platformSettingItem{
				Key:       s.Key,
				Value:     s.Value,
				UpdatedAt: formatTime(s.UpdatedAt),
				UpdatedBy: s.UpdatedBy,
			})
			if err != nil {
				return err
			}
			reqs = append(reqs, types.WriteRequest{PutRequest: &types.PutRequest{Item: av}})
		}

		pending := map[string][]types.WriteRequest{r.tableName: reqs}
		for len(pending) > 0 {
			out, err := r.ddb.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{RequestItems: pending})
			if err != nil {
				return err
			}
			pending = out.UnprocessedItems
		}
	}
	return nil
}
