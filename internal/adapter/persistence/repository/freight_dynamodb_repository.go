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

type freightItem struct {
	ID            string `dynamodbav:"id"`
	CustomerID    string `dynamodbav:"customer_id"`
	CarrierID     string `dynamodbav:"carrier_id"`
	RouteID       string `dynamodbav:"route_id"`
	OriginZip     string `dynamodbav:"origin_zip"`
	DestZip       string `dynamodbav:"dest_zip"`
	RealWeight    string `dynamodbav:"real_weight"`
	CubedWeight   string `dynamodbav:"cubed_weight"`
	TaxableWeight string `dynamodbav:"taxable_weight"`
	CostPrice     string `dynamodbav:"cost_price"`
	Price         string `dynamodbav:"price"`
	MarginPercent string `dynamodbav:"margin_percent"`
	DeadlineDays  int    `dynamodbav:"deadline_days"`

	PaymentStatus string `dynamodbav:"payment_status"`
	CheckoutID    string `dynamodbav:"checkout_id,omitempty"`
	CheckoutURL   string `dynamodbav:"checkout_url,omitempty"`
	PaymentID     string `dynamodbav:"payment_id,omitempty"`
	PaidAt        string `dynamodbav:"paid_at,omitempty"`

	CarrierAmount   string `dynamodbav:"carrier_amount,omitempty"`
	RotaclickAmount string `dynamodbav:"rotaclick_amount,omitempty"`
	PaymentTermDays int    `dynamodbav:"payment_term_days,omitempty"`
	// Index keys cannot hold empty strings; absent until the payment clears.
	RepasseDueDate string `dynamodbav:"repasse_due_date,omitempty"`
	RepasseStatus  string `dynamodbav:"repasse_status,omitempty"`
	RepassePaidAt  string `dynamodbav:"repasse_paid_at,omitempty"`
	RepassePaidBy  string `dynamodbav:"repasse_paid_by,omitempty"`

	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// FreightDynamoRepository persists Freight entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: carrier_id-index (PK: carrier_id)
//   - GSI: customer_id-index (PK: customer_id)
//   - GSI: repasse_status-repasse_due_date-index (PK: repasse_status, SK: repasse_due_date)
type FreightDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
	now       func() time.Time
}

var _ interfaces.IFreightRepository = (*FreightDynamoRepository)(nil)

func NewFreightDynamoRepository(ddb DynamoAPI, tableName string) *FreightDynamoRepository {
	return &FreightDynamoRepository{ddb: ddb, tableName: tableName, now: time.Now}
}

func (r *FreightDynamoRepository) Create(ctx context.Context, f entities.Freight) (entities.Freight, error) {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	stampCreated(&f.CreatedAt, &f.UpdatedAt, r.now())
	if err := putNew(ctx, r.ddb, r.tableName, toFreightItem(f)); err != nil {
		return entities.Freight{}, err
	}
	return f, nil
}

func (r *FreightDynamoRepository) GetByID(ctx context.Context, id string) (entities.Freight, error) {
	var it freightItem
	found, err := getItem(ctx, r.ddb, r.tableName, id, &it)
	if err != nil || !found {
		return entities.Freight{}, err
	}
	return fromFreightItem(it), nil
}

func (r *FreightDynamoRepository) ListByCarrier(ctx context.Context, carrierID string) ([]entities.Freight, error) {
	return r.queryIndex(ctx, database.IndexCarrierID, "carrier_id", carrierID)
}

func (r *FreightDynamoRepository) ListByCustomer(ctx context.Context, customerID string) ([]entities.Freight, error) {
	return r.queryIndex(ctx, database.IndexCustomerID, "customer_id", customerID)
}

// ListByRepasseStatus returns payouts in the given state ordered by due date.
func (r *FreightDynamoRepository) ListByRepasseStatus(ctx context.Context, status entities.RepasseStatus) ([]entities.Freight, error) {
	return r.queryIndex(ctx, database.IndexRepasseStatusDue, "repasse_status", string(status))
}

func (r *FreightDynamoRepository) queryIndex(ctx context.Context, index, attr, value string) ([]entities.Freight, error) {
	items, err := queryAll[freightItem](ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(index),
		KeyConditionExpression: aws.String("#k = :v"),
		ExpressionAttributeNames: map[string]string{
			"#k": attr,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":v": &types.AttributeValueMemberS{Value: value},
		},
	})
	if err != nil {
		return nil, err
	}
	out := make([]entities.Freight, 0, len(items))
	for _, it := range items {
		out = append(out, fromFreightItem(it))
	}
	return out, nil
}

func (r *FreightDynamoRepository) AttachCheckout(ctx context.Context, id, checkoutID, checkoutURL string) (entities.Freight, error) {
	return r.update(ctx, id,
		"SET checkout_id = :checkout_id, checkout_url = :checkout_url, updated_at = :updated_at",
		"payment_status = :pending",
		map[string]types.AttributeValue{
			":checkout_id":  &types.AttributeValueMemberS{Value: checkoutID},
			":checkout_url": &types.AttributeValueMemberS{Value: checkoutURL},
			":pending":      &types.AttributeValueMemberS{Value: string(entities.PaymentStatusPendente)},
		},
	)
}

func (r *FreightDynamoRepository) ConfirmPayment(ctx context.Context, f entities.Freight) (entities.Freight, error) {
	it := toFreightItem(f)
	return r.update(ctx, f.ID,
		"SET payment_status = :paid, payment_id = :payment_id, paid_at = :paid_at, "+
			"carrier_amount = :carrier_amount, rotaclick_amount = :rotaclick_amount, "+
			"payment_term_days = :term, repasse_due_date = :due, repasse_status = :repasse_status, updated_at = :updated_at",
		"payment_status = :pending",
		map[string]types.AttributeValue{
			":paid":             &types.AttributeValueMemberS{Value: string(entities.PaymentStatusPago)},
			":pending":          &types.AttributeValueMemberS{Value: string(entities.PaymentStatusPendente)},
			":payment_id":       &types.AttributeValueMemberS{Value: it.PaymentID},
			":paid_at":          &types.AttributeValueMemberS{Value: it.PaidAt},
			":carrier_amount":   &types.AttributeValueMemberS{Value: it.CarrierAmount},
			":rotaclick_amount": &types.AttributeValueMemberS{Value: it.RotaclickAmount},
			":term":             intAttr(it.PaymentTermDays),
			":due":              &types.AttributeValueMemberS{Value: it.RepasseDueDate},
			":repasse_status":   &types.AttributeValueMemberS{Value: string(entities.RepasseStatusPendente)},
		},
	)
}

func (r *FreightDynamoRepository) MarkPaymentRefused(ctx context.Context, id string, providerPaymentID string) (entities.Freight, error) {
	return r.update(ctx, id,
		"SET payment_status = :refused, payment_id = :payment_id, updated_at = :updated_at",
		"payment_status = :pending",
		map[string]types.AttributeValue{
			":refused":    &types.AttributeValueMemberS{Value: string(entities.PaymentStatusRecusado)},
			":pending":    &types.AttributeValueMemberS{Value: string(entities.PaymentStatusPendente)},
			":payment_id": &types.AttributeValueMemberS{Value: providerPaymentID},
		},
	)
}

func (r *FreightDynamoRepository) MarkRepassePaid(ctx context.Context, id string, paidAt time.Time, paidBy string) (entities.Freight, error) {
	return r.update(ctx, id,
		"SET repasse_status = :paid, repasse_paid_at = :paid_at, repasse_paid_by = :paid_by, updated_at = :updated_at",
		"repasse_status = :pending",
		map[string]types.AttributeValue{
			":paid":    &types.AttributeValueMemberS{Value: string(entities.RepasseStatusPago)},
			":pending": &types.AttributeValueMemberS{Value: string(entities.RepasseStatusPendente)},
			":paid_at": &types.AttributeValueMemberS{Value: formatTime(paidAt)},
			":paid_by": &types.AttributeValueMemberS{Value: paidBy},
		},
	)
}

// update applies a conditional UpdateItem. A failed condition (missing item
// or wrong state) yields an empty freight.
func (r *FreightDynamoRepository) update(ctx context.Context, id, setExpr, condition string, values map[string]types.AttributeValue) (entities.Freight, error) {
	values[":updated_at"] = &types.AttributeValueMemberS{Value: formatTime(r.now())}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       idKey(id),
		ConditionExpression:       aws.String("attribute_exists(#id) AND " + condition),
		UpdateExpression:          aws.String(setExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  map[string]string{"#id": "id"},
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.Freight{}, nil
		}
		return entities.Freight{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Freight{}, nil
	}
	var it freightItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Freight{}, err
	}
	return fromFreightItem(it), nil
}

func toFreightItem(f entities.Freight) freightItem {
	it := freightItem{
		ID:              f.ID,
		CustomerID:      f.CustomerID,
		CarrierID:       f.CarrierID,
		RouteID:         f.RouteID,
		OriginZip:       f.OriginZip,
		DestZip:         f.DestZip,
		RealWeight:      decimalString(f.RealWeight),
		CubedWeight:     decimalString(f.CubedWeight),
		TaxableWeight:   decimalString(f.TaxableWeight),
		CostPrice:       decimalString(f.CostPrice),
		Price:           decimalString(f.Price),
		MarginPercent:   decimalString(f.MarginPercent),
		DeadlineDays:    f.DeadlineDays,
		PaymentStatus:   string(f.PaymentStatus),
		CheckoutID:      f.CheckoutID,
		CheckoutURL:     f.CheckoutURL,
		PaymentID:       f.PaymentID,
		PaidAt:          formatTimePtr(f.PaidAt),
		PaymentTermDays: f.PaymentTermDays,
		RepasseDueDate:  formatTimePtr(f.RepasseDueDate),
		RepasseStatus:   string(f.RepasseStatus),
		RepassePaidAt:   formatTimePtr(f.RepassePaidAt),
		RepassePaidBy:   f.RepassePaidBy,
		CreatedAt:       formatTime(f.CreatedAt),
		UpdatedAt:       formatTime(f.UpdatedAt),
	}
	if f.PaidAt != nil {
		it.CarrierAmount = decimalString(f.CarrierAmount)
		it.RotaclickAmount = decimalString(f.RotaclickAmount)
	}
	return it
}

func fromFreightItem(it freightItem) entities.Freight {
	return entities.Freight{
		ID:              it.ID,
		CustomerID:      it.CustomerID,
		CarrierID:       it.CarrierID,
		RouteID:         it.RouteID,
		OriginZip:       it.OriginZip,
		DestZip:         it.DestZip,
		RealWeight:      parseDecimal(it.RealWeight),
		CubedWeight:     parseDecimal(it.CubedWeight),
		TaxableWeight:   parseDecimal(it.TaxableWeight),
		CostPrice:       parseDecimal(it.CostPrice),
		Price:           parseDecimal(it.Price),
		MarginPercent:   parseDecimal(it.MarginPercent),
		DeadlineDays:    it.DeadlineDays,
		PaymentStatus:   entities.PaymentStatus(it.PaymentStatus),
		CheckoutID:      it.CheckoutID,
		CheckoutURL:     it.CheckoutURL,
		PaymentID:       it.PaymentID,
		PaidAt:          parseTimePtr(it.PaidAt),
		CarrierAmount:   parseDecimal(it.CarrierAmount),
		RotaclickAmount: parseDecimal(it.RotaclickAmount),
		PaymentTermDays: it.PaymentTermDays,
		RepasseDueDate:  parseTimePtr(it.RepasseDueDate),
		RepasseStatus:   entities.RepasseStatus(it.RepasseStatus),
		RepassePaidAt:   parseTimePtr(it.RepassePaidAt),
		RepassePaidBy:   it.RepassePaidBy,
		CreatedAt:       parseTime(it.CreatedAt),
		UpdatedAt:       parseTime(it.UpdatedAt),
	}
}
