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

type freightRouteItem struct {
	ID                  string `dynamodbav:"id"`
	CarrierID           string `dynamodbav:"carrier_id"`
	OriginStart         string `dynamodbav:"origin_start"`
	OriginEnd           string `dynamodbav:"origin_end,omitempty"`
	DestStart           string `dynamodbav:"dest_start"`
	DestEnd             string `dynamodbav:"dest_end,omitempty"`
	CostPricePerKg      string `dynamodbav:"cost_price_per_kg"`
	CostMinPrice        string `dynamodbav:"cost_min_price"`
	MarginPercent       string `dynamodbav:"margin_percent"`
	PublishedPricePerKg string `dynamodbav:"published_price_per_kg"`
	PublishedMinPrice   string `dynamodbav:"published_min_price"`
	DeadlineDays        int    `dynamodbav:"deadline_days"`
	Status              string `dynamodbav:"status"`
	CreatedAt           string `dynamodbav:"created_at"`
	UpdatedAt           string `dynamodbav:"updated_at"`
}

// FreightRouteDynamoRepository persists FreightRoute entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: carrier_id-index (PK: carrier_id)
type FreightRouteDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
	now       func() time.Time
}

var _ interfaces.IFreightRouteRepository = (*FreightRouteDynamoRepository)(nil)

func NewFreightRouteDynamoRepository(ddb DynamoAPI, tableName string) *FreightRouteDynamoRepository {
	return &FreightRouteDynamoRepository{ddb: ddb, tableName: tableName, now: time.Now}
}

// Create stores a new route. Returns an empty route when the id is already
// taken.
func (r *FreightRouteDynamoRepository) Create(ctx context.Context, route entities.FreightRoute) (entities.FreightRoute, error) {
	if route.ID == "" {
		route.ID = uuid.NewString()
	}
	stampCreated(&route.CreatedAt, &route.UpdatedAt, r.now())
	if err := putNew(ctx, r.ddb, r.tableName, toFreightRouteItem(route)); err != nil {
		if isConditionalCheckFailed(err) {
			return entities.FreightRoute{}, nil
		}
		return entities.FreightRoute{}, err
	}
	return route, nil
}

// Upsert overwrites every rate attribute. created_at is only set the first
// time the id is written.
func (r *FreightRouteDynamoRepository) Upsert(ctx context.Context, route entities.FreightRoute) (entities.FreightRoute, error) {
	it := toFreightRouteItem(route)
	if it.CreatedAt == "" {
		it.CreatedAt = formatTime(r.now())
	}
	if it.UpdatedAt == "" {
		it.UpdatedAt = formatTime(r.now())
	}

	values := map[string]types.AttributeValue{
		":carrier_id":             &types.AttributeValueMemberS{Value: it.CarrierID},
		":origin_start":           &types.AttributeValueMemberS{Value: it.OriginStart},
		":dest_start":             &types.AttributeValueMemberS{Value: it.DestStart},
		":cost_price_per_kg":      &types.AttributeValueMemberS{Value: it.CostPricePerKg},
		":cost_min_price":         &types.AttributeValueMemberS{Value: it.CostMinPrice},
		":margin_percent":         &types.AttributeValueMemberS{Value: it.MarginPercent},
		":published_price_per_kg": &types.AttributeValueMemberS{Value: it.PublishedPricePerKg},
		":published_min_price":    &types.AttributeValueMemberS{Value: it.PublishedMinPrice},
		":deadline_days":          intAttr(it.DeadlineDays),
		":status":                 &types.AttributeValueMemberS{Value: it.Status},
		":created_at":             &types.AttributeValueMemberS{Value: it.CreatedAt},
		":updated_at":             &types.AttributeValueMemberS{Value: it.UpdatedAt},
	}
	set := "SET carrier_id = :carrier_id, origin_start = :origin_start, dest_start = :dest_start, " +
		"cost_price_per_kg = :cost_price_per_kg, cost_min_price = :cost_min_price, margin_percent = :margin_percent, " +
		"published_price_per_kg = :published_price_per_kg, published_min_price = :published_min_price, " +
		"deadline_days = :deadline_days, #status = :status, updated_at = :updated_at, " +
		"created_at = if_not_exists(created_at, :created_at)"
	var remove []string
	set, remove = optionalAttr(set, remove, values, "origin_end", it.OriginEnd)
	set, remove = optionalAttr(set, remove, values, "dest_end", it.DestEnd)
	expr := set
	if len(remove) > 0 {
		expr += " REMOVE " + joinComma(remove)
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       idKey(route.ID),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  map[string]string{"#status": "status"},
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		return entities.FreightRoute{}, err
	}
	var saved freightRouteItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &saved); err != nil {
		return entities.FreightRoute{}, err
	}
	return fromFreightRouteItem(saved), nil
}

// Update replaces an existing route. Returns an empty route when the id is
// unknown.
func (r *FreightRouteDynamoRepository) Update(ctx context.Context, route entities.FreightRoute) (entities.FreightRoute, error) {
	route.UpdatedAt = r.now().UTC()
	if route.CreatedAt.IsZero() {
		route.CreatedAt = route.UpdatedAt
	}
	av, err := attributevalue.MarshalMap(toFreightRouteItem(route))
	if err != nil {
		return entities.FreightRoute{}, err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.FreightRoute{}, nil
		}
		return entities.FreightRoute{}, err
	}
	return route, nil
}

func (r *FreightRouteDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.RouteStatus) (entities.FreightRoute, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 idKey(id),
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #status = :status, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: formatTime(r.now())},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#status":     "status",
			"#updated_at": "updated_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.FreightRoute{}, nil
		}
		return entities.FreightRoute{}, err
	}
	var it freightRouteItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.FreightRoute{}, err
	}
	return fromFreightRouteItem(it), nil
}

func (r *FreightRouteDynamoRepository) GetByID(ctx context.Context, id string) (entities.FreightRoute, error) {
	var it freightRouteItem
	found, err := getItem(ctx, r.ddb, r.tableName, id, &it)
	if err != nil || !found {
		return entities.FreightRoute{}, err
	}
	return fromFreightRouteItem(it), nil
}

func (r *FreightRouteDynamoRepository) ListByCarrier(ctx context.Context, carrierID string) ([]entities.FreightRoute, error) {
	items, err := queryAll[freightRouteItem](ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(database.IndexCarrierID),
		KeyConditionExpression: aws.String("carrier_id = :cid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": &types.AttributeValueMemberS{Value: carrierID},
		},
	})
	if err != nil {
		return nil, err
	}
	return fromFreightRouteItems(items), nil
}

// ListActive scans the table for routes open to quoting.
func (r *FreightRouteDynamoRepository) ListActive(ctx context.Context) ([]entities.FreightRoute, error) {
	items, err := scanAll[freightRouteItem](ctx, r.ddb, &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		FilterExpression: aws.String("#status = :status"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(entities.RouteStatusAtiva)},
		},
	})
	if err != nil {
		return nil, err
	}
	return fromFreightRouteItems(items), nil
}

func toFreightRouteItem(r entities.FreightRoute) freightRouteItem {
	return freightRouteItem{
		ID:                  r.ID,
		CarrierID:           r.CarrierID,
		OriginStart:         r.Origin.Start,
		OriginEnd:           r.Origin.End,
		DestStart:           r.Destination.Start,
		DestEnd:             r.Destination.End,
		CostPricePerKg:      decimalString(r.CostPricePerKg),
		CostMinPrice:        decimalString(r.CostMinPrice),
		MarginPercent:       decimalString(r.MarginPercent),
		PublishedPricePerKg: decimalString(r.PublishedPricePerKg),
		PublishedMinPrice:   decimalString(r.PublishedMinPrice),
		DeadlineDays:        r.DeadlineDays,
		Status:              string(r.Status),
		CreatedAt:           formatTime(r.CreatedAt),
		UpdatedAt:           formatTime(r.UpdatedAt),
	}
}

func fromFreightRouteItem(it freightRouteItem) entities.FreightRoute {
	return entities.FreightRoute{
		ID:                  it.ID,
		CarrierID:           it.CarrierID,
		Origin:              entities.ZipRange{Start: it.OriginStart, End: it.OriginEnd},
		Destination:         entities.ZipRange{Start: it.DestStart, End: it.DestEnd},
		CostPricePerKg:      parseDecimal(it.CostPricePerKg),
		CostMinPrice:        parseDecimal(it.CostMinPrice),
		MarginPercent:       parseDecimal(it.MarginPercent),
		PublishedPricePerKg: parseDecimal(it.PublishedPricePerKg),
		PublishedMinPrice:   parseDecimal(it.PublishedMinPrice),
		DeadlineDays:        it.DeadlineDays,
		Status:              entities.RouteStatus(it.Status),
		CreatedAt:           parseTime(it.CreatedAt),
		UpdatedAt:           parseTime(it.UpdatedAt),
	}
}

func fromFreightRouteItems(items []freightRouteItem) []entities.FreightRoute {
	out := make([]entities.FreightRoute, 0, len(items))
	for _, it := range items {
		out = append(out, fromFreightRouteItem(it))
	}
	return out
}
