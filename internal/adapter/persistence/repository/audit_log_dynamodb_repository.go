package repository

import (
	"context"
	"sort"
	"time"

	"rotaclick/internal/domain/entities"
	"rotaclick/internal/infrastructure/database"
	"rotaclick/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

type auditLogItem struct {
	ID         string            `dynamodbav:"id"`
	LogMonth   string            `dynamodbav:"log_month"`
	ActorID    string            `dynamodbav:"actor_id"`
	ActorRole  string            `dynamodbav:"actor_role"`
	Action     string            `dynamodbav:"action"`
	EntityType string            `dynamodbav:"entity_type"`
	EntityID   string            `dynamodbav:"entity_id"`
	Details    map[string]string `dynamodbav:"details,omitempty"`
	CreatedAt  string            `dynamodbav:"created_at"`
}

// AuditLogDynamoRepository is append-only.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: log_month-created_at-index (PK: log_month "YYYY-MM", SK: created_at)
type AuditLogDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
	now       func() time.Time
}

var _ interfaces.IAuditLogRepository = (*AuditLogDynamoRepository)(nil)

func NewAuditLogDynamoRepository(ddb DynamoAPI, tableName string) *AuditLogDynamoRepository {
	return &AuditLogDynamoRepository{ddb: ddb, tableName: tableName, now: time.Now}
}

func (r *AuditLogDynamoRepository) Create(ctx context.Context, l entities.AuditLog) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	if l.CreatedAt.IsZero() {
		l.CreatedAt = r.now()
	}
	return putNew(ctx, r.ddb, r.tableName, toAuditLogItem(l))
}

// ListByPeriod returns entries with created_at in [from, to], oldest first.
// One query per calendar month touched by the period.
func (r *AuditLogDynamoRepository) ListByPeriod(ctx context.Context, from, to time.Time) ([]entities.AuditLog, error) {
	var out []entities.AuditLog
	for _, month := range monthsBetween(from, to) {
		items, err := queryAll[auditLogItem](ctx, r.ddb, &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			IndexName:              aws.String(database.IndexLogMonthCreated),
			KeyConditionExpression: aws.String("log_month = :m AND created_at BETWEEN :from AND :to"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":m":    &types.AttributeValueMemberS{Value: month},
				":from": &types.AttributeValueMemberS{Value: formatTime(from)},
				":to":   &types.AttributeValueMemberS{Value: formatTime(to)},
			},
		})
		if err != nil {
			return nil, err
		}
		for _, it := range items {
			out = append(out, fromAuditLogItem(it))
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func monthsBetween(from, to time.Time) []string {
	from, to = from.UTC(), to.UTC()
	if to.Before(from) {
		return nil
	}
	var out []string
	cur := time.Date(from.Year(), from.Month(), 1, 0, 0, 0, 0, time.UTC)
	for !cur.After(to) {
		out = append(out, cur.Format("2006-01"))
		cur = cur.AddDate(0, 1, 0)
	}
	return out
}

func toAuditLogItem(l entities.AuditLog) auditLogItem {
	return auditLogItem{
		ID:         l.ID,
		LogMonth:   l.CreatedAt.UTC().Format("2006-01"),
		ActorID:    l.ActorID,
		ActorRole:  l.ActorRole,
		Action:     l.Action,
		EntityType: l.EntityType,
		EntityID:   l.EntityID,
		Details:    l.Details,
		CreatedAt:  formatTime(l.CreatedAt),
	}
}

func fromAuditLogItem(it auditLogItem) entities.AuditLog {
	return entities.AuditLog{
		ID:         it.ID,
		ActorID:    it.ActorID,
		ActorRole:  it.ActorRole,
		Action:     it.Action,
		EntityType: it.EntityType,
		EntityID:   it.EntityID,
		Details:    it.Details,
		CreatedAt:  parseTime(it.CreatedAt),
	}
}
