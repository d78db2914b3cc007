package database

import (
	"context"
	"errors"
	"fmt"
	"sort"

	appconfig "rotaclick/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"
)

// Global secondary index names shared with the repositories.
const (
	IndexCarrierID        = "carrier_id-index"
	IndexCustomerID       = "customer_id-index"
	IndexRepasseStatusDue = "repasse_status-repasse_due_date-index"
	IndexCNPJ             = "cnpj-index"
	IndexOwnerUserID      = "owner_user_id-index"
	IndexApprovalStatus   = "approval_status-index"
	IndexLogMonthCreated  = "log_month-created_at-index"
)

type tableSpec struct {
	name    string
	hashKey string
	indexes []indexSpec
}

type indexSpec struct {
	name     string
	hashKey  string
	rangeKey string
}

// TableAPI is the subset of the DynamoDB client used to provision tables.
type TableAPI interface {
	DescribeTable(ctx context.Context, params *dynamodb.DescribeTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error)
	CreateTable(ctx context.Context, params *dynamodb.CreateTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error)
}

func tableSpecs(cfg *appconfig.Config) []tableSpec {
	return []tableSpec{
		{name: cfg.FreightRoutesTable, hashKey: "id", indexes: []indexSpec{
			{name: IndexCarrierID, hashKey: "carrier_id"},
		}},
		{name: cfg.FreightsTable, hashKey: "id", indexes: []indexSpec{
			{name: IndexCarrierID, hashKey: "carrier_id"},
			{name: IndexCustomerID, hashKey: "customer_id"},
			{name: IndexRepasseStatusDue, hashKey: "repasse_status", rangeKey: "repasse_due_date"},
		}},
		{name: cfg.CarriersTable, hashKey: "id", indexes: []indexSpec{
			{name: IndexCNPJ, hashKey: "cnpj"},
			{name: IndexOwnerUserID, hashKey: "owner_user_id"},
			{name: IndexApprovalStatus, hashKey: "approval_status"},
		}},
		{name: cfg.AuditLogsTable, hashKey: "id", indexes: []indexSpec{
			{name: IndexLogMonthCreated, hashKey: "log_month", rangeKey: "created_at"},
		}},
		{name: cfg.SettingsTable, hashKey: "key"},
	}
}

// EnsureTables creates any missing table with its indexes (pay per request).
// Meant for DynamoDB Local and first deploys; existing tables are untouched.
func EnsureTables(ctx context.Context, api TableAPI, cfg *appconfig.Config, logger *zap.Logger) error {
	for _, spec := range tableSpecs(cfg) {
		_, err := api.DescribeTable(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(spec.name)})
		if err == nil {
			continue
		}
		var notFound *types.ResourceNotFoundException
		if !errors.As(err, &notFound) {
			return fmt.Errorf("describe table %s: %w", spec.name, err)
		}
		if _, err := api.CreateTable(ctx, createTableInput(spec)); err != nil {
			return fmt.Errorf("create table %s: %w", spec.name, err)
		}
		logger.Info("[dynamodb][infra] table created", zap.String("table", spec.name), zap.Int("indexes", len(spec.indexes)))
	}
	return nil
}

func createTableInput(spec tableSpec) *dynamodb.CreateTableInput {
	attrs := map[string]bool{spec.hashKey: true}
	in := &dynamodb.CreateTableInput{
		TableName:   aws.String(spec.name),
		BillingMode: types.BillingModePayPerRequest,
		KeySchema: []types.KeySchemaElement{
			{AttributeName: aws.String(spec.hashKey), KeyType: types.KeyTypeHash},
		},
	}
	for _, idx := range spec.indexes {
		keys := []types.KeySchemaElement{{AttributeName: aws.String(idx.hashKey), KeyType: types.KeyTypeHash}}
		attrs[idx.hashKey] = true
		if idx.rangeKey != "" {
			keys = append(keys, types.KeySchemaElement{AttributeName: aws.String(idx.rangeKey), KeyType: types.KeyTypeRange})
			attrs[idx.rangeKey] = true
		}
		in.GlobalSecondaryIndexes = append(in.GlobalSecondaryIndexes, types.GlobalSecondaryIndex{
			IndexName:  aws.String(idx.name),
			KeySchema:  keys,
			Projection: &types.Projection{ProjectionType: types.ProjectionTypeAll},
		})
	}
	for _, name := range sortedKeys(attrs) {
		in.AttributeDefinitions = append(in.AttributeDefinitions, types.AttributeDefinition{
			AttributeName: aws.String(name),
			AttributeType: types.ScalarAttributeTypeS,
		})
	}
	return in
}

func sortedKeys(m map[string]bool) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
