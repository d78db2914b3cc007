package repository

import (
	"context"
	"time"

	"rotaclick/internal/domain/entities"
	"rotaclick/internal/infrastructure/database"
	"rotaclick/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

type carrierItem struct {
	ID              string `dynamodbav:"id"`
	OwnerUserID     string `dynamodbav:"owner_user_id"`
	CNPJ            string `dynamodbav:"cnpj"`
	CompanyName     string `dynamodbav:"company_name"`
	TradeName       string `dynamodbav:"trade_name,omitempty"`
	Email           string `dynamodbav:"email"`
	Phone           string `dynamodbav:"phone,omitempty"`
	Address         string `dynamodbav:"address,omitempty"`
	CNAE            string `dynamodbav:"cnae,omitempty"`
	ApprovalStatus  string `dynamodbav:"approval_status"`
	RejectionReason string `dynamodbav:"rejection_reason,omitempty"`
	PaymentTermDays int    `dynamodbav:"payment_term_days,omitempty"`
	ApprovedAt      string `dynamodbav:"approved_at,omitempty"`
	ApprovedBy      string `dynamodbav:"approved_by,omitempty"`
	CreatedAt       string `dynamodbav:"created_at"`
	UpdatedAt       string `dynamodbav:"updated_at"`
}

// CarrierDynamoRepository persists Carrier entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: cnpj-index, owner_user_id-index, approval_status-index
type CarrierDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
	now       func() time.Time
}

var _ interfaces.ICarrierRepository = (*CarrierDynamoRepository)(nil)

func NewCarrierDynamoRepository(ddb DynamoAPI, tableName string) *CarrierDynamoRepository {
	return &CarrierDynamoRepository{ddb: ddb, tableName: tableName, now: time.Now}
}

// Create stores a new carrier. Returns an empty carrier when the id is
// already taken.
func (r *CarrierDynamoRepository) Create(ctx context.Context, c entities.Carrier) (entities.Carrier, error) {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	stampCreated(&c.CreatedAt, &c.UpdatedAt, r.now())
	if err := putNew(ctx, r.ddb, r.tableName, toCarrierItem(c)); err != nil {
		if isConditionalCheckFailed(err) {
			return entities.Carrier{}, nil
		}
		return entities.Carrier{}, err
	}
	return c, nil
}

func (r *CarrierDynamoRepository) GetByID(ctx context.Context, id string) (entities.Carrier, error) {
	var it carrierItem
	found, err := getItem(ctx, r.ddb, r.tableName, id, &it)
	if err != nil || !found {
		return entities.Carrier{}, err
	}
	return fromCarrierItem(it), nil
}

func (r *CarrierDynamoRepository) GetByCNPJ(ctx context.Context, cnpj string) (entities.Carrier, error) {
	return r.first(ctx, database.IndexCNPJ, "cnpj", cnpj)
}

func (r *CarrierDynamoRepository) GetByOwnerUserID(ctx context.Context, userID string) (entities.Carrier, error) {
	return r.first(ctx, database.IndexOwnerUserID, "owner_user_id", userID)
}

func (r *CarrierDynamoRepository) ListByStatus(ctx context.Context, status entities.ApprovalStatus) ([]entities.Carrier, error) {
	items, err := r.query(ctx, database.IndexApprovalStatus, "approval_status", string(status), 0)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Carrier, 0, len(items))
	for _, it := range items {
		out = append(out, fromCarrierItem(it))
	}
	return out, nil
}

// UpdateApproval stores the approval decision fields of c. Returns an empty
// carrier when the id is unknown.
func (r *CarrierDynamoRepository) UpdateApproval(ctx context.Context, c entities.Carrier) (entities.Carrier, error) {
	it := toCarrierItem(c)
	if it.UpdatedAt == "" {
		it.UpdatedAt = formatTime(r.now())
	}
	values := map[string]types.AttributeValue{
		":status":     &types.AttributeValueMemberS{Value: it.ApprovalStatus},
		":updated_at": &types.AttributeValueMemberS{Value: it.UpdatedAt},
	}
	set := "SET approval_status = :status, updated_at = :updated_at"
	var remove []string
	set, remove = optionalAttr(set, remove, values, "rejection_reason", it.RejectionReason)
	set, remove = optionalAttr(set, remove, values, "approved_at", it.ApprovedAt)
	set, remove = optionalAttr(set, remove, values, "approved_by", it.ApprovedBy)
	if it.PaymentTermDays > 0 {
		set += ", payment_term_days = :term"
		values[":term"] = intAttr(it.PaymentTermDays)
	}
	expr := set
	if len(remove) > 0 {
		expr += " REMOVE " + joinComma(remove)
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       idKey(c.ID),
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  map[string]string{"#id": "id"},
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.Carrier{}, nil
		}
		return entities.Carrier{}, err
	}
	var saved carrierItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &saved); err != nil {
		return entities.Carrier{}, err
	}
	return fromCarrierItem(saved), nil
}

func (r *CarrierDynamoRepository) first(ctx context.Context, index, attr, value string) (entities.Carrier, error) {
	items, err := r.query(ctx, index, attr, value, 1)
	if err != nil || len(items) == 0 {
		return entities.Carrier{}, err
	}
	return fromCarrierItem(items[0]), nil
}

func (r *CarrierDynamoRepository) query(ctx context.Context, index, attr, value string, limit int32) ([]carrierItem, error) {
	in := &dynamodb.QueryInput{
		TableName:                aws.String(r.tableName),
		IndexName:                aws.String(index),
		KeyConditionExpression:   aws.String("#k = :v"),
		ExpressionAttributeNames: map[string]string{"#k": attr},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":v": &types.AttributeValueMemberS{Value: value},
		},
	}
	if limit > 0 {
		in.Limit = aws.Int32(limit)
		out, err := r.ddb.Query(ctx, in)
		if err != nil {
			return nil, err
		}
		var items []carrierItem
		err = attributevalue.UnmarshalListOfMaps(out.Items, &items)
		return items, err
	}
	return queryAll[carrierItem](ctx, r.ddb, in)
}

func toCarrierItem(c entities.Carrier) carrierItem {
	return carrierItem{
		ID:              c.ID,
		OwnerUserID:     c.OwnerUserID,
		CNPJ:            c.CNPJ,
		CompanyName:     c.CompanyName,
		TradeName:       c.TradeName,
		Email:           c.Email,
		Phone:           c.Phone,
		Address:         c.Address,
		CNAE:            c.CNAE,
		ApprovalStatus:  string(c.ApprovalStatus),
		RejectionReason: c.RejectionReason,
		PaymentTermDays: c.PaymentTermDays,
		ApprovedAt:      formatTimePtr(c.ApprovedAt),
		ApprovedBy:      c.ApprovedBy,
		CreatedAt:       formatTime(c.CreatedAt),
		UpdatedAt:       formatTime(c.UpdatedAt),
	}
}

func fromCarrierItem(it carrierItem) entities.Carrier {
	return entities.Carrier{
		ID:              it.ID,
		OwnerUserID:     it.OwnerUserID,
		CNPJ:            it.CNPJ,
		CompanyName:     it.CompanyName,
		TradeName:       it.TradeName,
		Email:           it.Email,
		Phone:           it.Phone,
		Address:         it.Address,
		CNAE:            it.CNAE,
		ApprovalStatus:  entities.ApprovalStatus(it.ApprovalStatus),
		RejectionReason: it.RejectionReason,
		PaymentTermDays: it.PaymentTermDays,
		ApprovedAt:      parseTimePtr(it.ApprovedAt),
		ApprovedBy:      it.ApprovedBy,
		CreatedAt:       parseTime(it.CreatedAt),
		UpdatedAt:       parseTime(it.UpdatedAt),
	}
}
