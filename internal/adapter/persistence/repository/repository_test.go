package repository

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"rotaclick/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

// fakeDynamo records calls and replays canned responses.
type fakeDynamo struct {
	DynamoAPI

	updates   []*dynamodb.UpdateItemInput
	updateOut *dynamodb.UpdateItemOutput
	updateErr error

	queries  []*dynamodb.QueryInput
	queryOut []*dynamodb.QueryOutput

	batches  []*dynamodb.BatchWriteItemInput
	batchOut []*dynamodb.BatchWriteItemOutput

	puts   []*dynamodb.PutItemInput
	putErr error
}

func (f *fakeDynamo) UpdateItem(_ context.Context, in *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	f.updates = append(f.updates, in)
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return f.updateOut, nil
}

func (f *fakeDynamo) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	cp := *in
	f.queries = append(f.queries, &cp)
	out := f.queryOut[0]
	f.queryOut = f.queryOut[1:]
	return out, nil
}

func (f *fakeDynamo) BatchWriteItem(_ context.Context, in *dynamodb.BatchWriteItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.BatchWriteItemOutput, error) {
	f.batches = append(f.batches, in)
	if len(f.batchOut) == 0 {
		return &dynamodb.BatchWriteItemOutput{}, nil
	}
	out := f.batchOut[0]
	f.batchOut = f.batchOut[1:]
	return out, nil
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.puts = append(f.puts, in)
	if f.putErr != nil {
		return nil, f.putErr
	}
	return &dynamodb.PutItemOutput{}, nil
}

func fixedNow() time.Time {
	return time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
}

func storedString(t *testing.T, item map[string]types.AttributeValue, key string) string {
	t.Helper()
	v, ok := item[key].(*types.AttributeValueMemberS)
	if !ok {
		t.Fatalf("attribute %s missing or not a string", key)
	}
	return v.Value
}

func TestRepositories_CreateAssignsIDAndTimestamps(t *testing.T) {
	stamp := "2024-03-10T12:00:00.000000000Z"

	t.Run("carrier", func(t *testing.T) {
		fake := &fakeDynamo{}
		repo := &CarrierDynamoRepository{ddb: fake, tableName: "carriers", now: fixedNow}

		got, err := repo.Create(context.Background(), entities.Carrier{CNPJ: "11222333000181", ApprovalStatus: entities.ApprovalStatusPendente})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		item := fake.puts[0].Item
		if id := storedString(t, item, "id"); id == "" || id != got.ID {
			t.Fatalf("expected generated id, stored %q returned %q", id, got.ID)
		}
		if storedString(t, item, "created_at") != stamp || storedString(t, item, "updated_at") != stamp {
			t.Fatalf("unexpected timestamps: %v", item)
		}
		if !got.CreatedAt.Equal(fixedNow()) {
			t.Fatalf("unexpected created_at %v", got.CreatedAt)
		}
	})

	t.Run("carrier keeps given id", func(t *testing.T) {
		fake := &fakeDynamo{}
		repo := &CarrierDynamoRepository{ddb: fake, tableName: "carriers", now: fixedNow}

		got, err := repo.Create(context.Background(), entities.Carrier{ID: "c-1"})
		if err != nil || got.ID != "c-1" || storedString(t, fake.puts[0].Item, "id") != "c-1" {
			t.Fatalf("unexpected result %+v err %v", got, err)
		}
	})

	t.Run("route", func(t *testing.T) {
		fake := &fakeDynamo{}
		repo := &FreightRouteDynamoRepository{ddb: fake, tableName: "routes", now: fixedNow}

		got, err := repo.Create(context.Background(), entities.FreightRoute{CarrierID: "c-1", Status: entities.RouteStatusAtiva})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		item := fake.puts[0].Item
		if id := storedString(t, item, "id"); id == "" || id != got.ID {
			t.Fatalf("expected generated id, stored %q returned %q", id, got.ID)
		}
		if storedString(t, item, "created_at") != stamp || storedString(t, item, "updated_at") != stamp {
			t.Fatalf("unexpected timestamps: %v", item)
		}
	})

	t.Run("freight", func(t *testing.T) {
		fake := &fakeDynamo{}
		repo := &FreightDynamoRepository{ddb: fake, tableName: "freights", now: fixedNow}

		got, err := repo.Create(context.Background(), entities.Freight{ID: "f-1", PaymentStatus: entities.PaymentStatusPendente})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if storedString(t, fake.puts[0].Item, "created_at") != stamp || !got.CreatedAt.Equal(fixedNow()) || !got.UpdatedAt.Equal(fixedNow()) {
			t.Fatalf("unexpected timestamps: stored %v returned %+v", fake.puts[0].Item, got)
		}
	})

	t.Run("taken id yields empty entity", func(t *testing.T) {
		fake := &fakeDynamo{putErr: &types.ConditionalCheckFailedException{Message: aws.String("exists")}}
		carriers := &CarrierDynamoRepository{ddb: fake, tableName: "carriers", now: fixedNow}
		routes := &FreightRouteDynamoRepository{ddb: fake, tableName: "routes", now: fixedNow}

		c, err := carriers.Create(context.Background(), entities.Carrier{ID: "c-1"})
		if err != nil || c.ID != "" {
			t.Fatalf("expected empty carrier, got %+v err %v", c, err)
		}
		r, err := routes.Create(context.Background(), entities.FreightRoute{ID: "r-1"})
		if err != nil || r.ID != "" {
			t.Fatalf("expected empty route, got %+v err %v", r, err)
		}
		if cond := aws.ToString(fake.puts[0].ConditionExpression); cond != "attribute_not_exists(#id)" {
			t.Fatalf("unexpected condition %q", cond)
		}
	})
}

func TestFreightRouteRepository_UpdateStampsUpdatedAt(t *testing.T) {
	fake := &fakeDynamo{}
	repo := &FreightRouteDynamoRepository{ddb: fake, tableName: "routes", now: fixedNow}
	created := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	got, err := repo.Update(context.Background(), entities.FreightRoute{ID: "r-1", CreatedAt: created})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	item := fake.puts[0].Item
	if storedString(t, item, "updated_at") != "2024-03-10T12:00:00.000000000Z" || storedString(t, item, "created_at") != formatTime(created) {
		t.Fatalf("unexpected timestamps: %v", item)
	}
	if !got.UpdatedAt.Equal(fixedNow()) || !got.CreatedAt.Equal(created) {
		t.Fatalf("unexpected route %+v", got)
	}
}

func TestFreightRepository_AttachCheckoutWhilePending(t *testing.T) {
	stored, _ := attributevalue.MarshalMap(freightItem{ID: "f-1", PaymentStatus: "pendente", CheckoutID: "pref-1", CheckoutURL: "https://mp.example/pref-1"})
	fake := &fakeDynamo{updateOut: &dynamodb.UpdateItemOutput{Attributes: stored}}
	repo := &FreightDynamoRepository{ddb: fake, tableName: "freights", now: fixedNow}

	f, err := repo.AttachCheckout(context.Background(), "f-1", "pref-1", "https://mp.example/pref-1")
	if err != nil || f.CheckoutURL != "https://mp.example/pref-1" {
		t.Fatalf("unexpected result %+v err %v", f, err)
	}
	in := fake.updates[0]
	if !strings.Contains(aws.ToString(in.ConditionExpression), "payment_status = :pending") {
		t.Fatalf("unexpected condition %q", aws.ToString(in.ConditionExpression))
	}
	if v := in.ExpressionAttributeValues[":checkout_id"].(*types.AttributeValueMemberS).Value; v != "pref-1" {
		t.Fatalf("unexpected checkout id %q", v)
	}
}

func TestFreightRouteItem_RoundTrip(t *testing.T) {
	route := entities.FreightRoute{
		ID:                  "r-1",
		CarrierID:           "c-1",
		Origin:              entities.ZipRange{Start: "01310100"},
		Destination:         entities.ZipRange{Start: "20000000", End: "23799999"},
		CostPricePerKg:      decimal.RequireFromString("1.2345"),
		CostMinPrice:        decimal.RequireFromString("50"),
		MarginPercent:       decimal.RequireFromString("12.5"),
		PublishedPricePerKg: decimal.RequireFromString("1.3888"),
		PublishedMinPrice:   decimal.RequireFromString("56.25"),
		DeadlineDays:        4,
		Status:              entities.RouteStatusAtiva,
		CreatedAt:           fixedNow(),
		UpdatedAt:           fixedNow(),
	}
	got := fromFreightRouteItem(toFreightRouteItem(route))
	if !got.PublishedPricePerKg.Equal(route.PublishedPricePerKg) || got.Destination != route.Destination ||
		!got.CreatedAt.Equal(route.CreatedAt) || got.Status != route.Status {
		t.Fatalf("round trip mismatch: %+v", got)
	}
}

func TestFreightItem_OmitsRepasseIndexKeysUntilPaid(t *testing.T) {
	av, err := attributevalue.MarshalMap(toFreightItem(entities.Freight{
		ID:            "f-1",
		CustomerID:    "u-1",
		CarrierID:     "c-1",
		Price:         decimal.RequireFromString("240"),
		PaymentStatus: entities.PaymentStatusPendente,
		CreatedAt:     fixedNow(),
	}))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	for _, k := range []string{"repasse_status", "repasse_due_date", "carrier_amount"} {
		if _, ok := av[k]; ok {
			t.Fatalf("attribute %s must be absent on unpaid freight", k)
		}
	}
}

func TestFreightRepository_ConditionalWrites(t *testing.T) {
	t.Run("lost race yields empty freight", func(t *testing.T) {
		fake := &fakeDynamo{updateErr: &types.ConditionalCheckFailedException{Message: aws.String("failed")}}
		repo := &FreightDynamoRepository{ddb: fake, tableName: "freights", now: fixedNow}

		f, err := repo.MarkRepassePaid(context.Background(), "f-1", fixedNow(), "admin-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if f.ID != "" {
			t.Fatalf("expected empty freight, got %+v", f)
		}
		cond := aws.ToString(fake.updates[0].ConditionExpression)
		if !strings.Contains(cond, "repasse_status = :pending") {
			t.Fatalf("unexpected condition %q", cond)
		}
	})

	t.Run("confirm payment guarded by pending status", func(t *testing.T) {
		paidAt := fixedNow()
		due := paidAt.AddDate(0, 0, 7)
		stored, _ := attributevalue.MarshalMap(freightItem{ID: "f-1", PaymentStatus: "pago", RepasseStatus: "pendente", RepasseDueDate: formatTime(due)})
		fake := &fakeDynamo{updateOut: &dynamodb.UpdateItemOutput{Attributes: stored}}
		repo := &FreightDynamoRepository{ddb: fake, tableName: "freights", now: fixedNow}

		f, err := repo.ConfirmPayment(context.Background(), entities.Freight{
			ID:              "f-1",
			PaymentID:       "123",
			PaidAt:          &paidAt,
			CarrierAmount:   decimal.RequireFromString("200"),
			RotaclickAmount: decimal.RequireFromString("40"),
			PaymentTermDays: 7,
			RepasseDueDate:  &due,
		})
		if err != nil || f.ID != "f-1" || !f.IsPaid() || f.RepasseDueDate == nil || !f.RepasseDueDate.Equal(due) {
			t.Fatalf("unexpected result %+v err %v", f, err)
		}
		in := fake.updates[0]
		if !strings.Contains(aws.ToString(in.ConditionExpression), "payment_status = :pending") {
			t.Fatalf("unexpected condition %q", aws.ToString(in.ConditionExpression))
		}
		if v := in.ExpressionAttributeValues[":carrier_amount"].(*types.AttributeValueMemberS).Value; v != "200" {
			t.Fatalf("unexpected carrier amount %q", v)
		}
	})
}

func TestAuditLogRepository_ListByPeriodQueriesEachMonth(t *testing.T) {
	later, _ := attributevalue.MarshalMap(auditLogItem{ID: "b", Action: "route.created", CreatedAt: formatTime(time.Date(2024, 2, 2, 0, 0, 0, 0, time.UTC))})
	earlier, _ := attributevalue.MarshalMap(auditLogItem{ID: "a", Action: "carrier.approved", CreatedAt: formatTime(time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC))})
	fake := &fakeDynamo{queryOut: []*dynamodb.QueryOutput{
		{Items: []map[string]types.AttributeValue{earlier}},
		{Items: []map[string]types.AttributeValue{later}},
	}}
	repo := &AuditLogDynamoRepository{ddb: fake, tableName: "audit", now: fixedNow}

	logs, err := repo.ListByPeriod(context.Background(),
		time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 2, 20, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(fake.queries) != 2 {
		t.Fatalf("expected one query per month, got %d", len(fake.queries))
	}
	if m := fake.queries[1].ExpressionAttributeValues[":m"].(*types.AttributeValueMemberS).Value; m != "2024-02" {
		t.Fatalf("unexpected month partition %q", m)
	}
	if len(logs) != 2 || logs[0].ID != "a" || logs[1].ID != "b" {
		t.Fatalf("unexpected logs: %+v", logs)
	}
}

func TestAuditLogRepository_CreateAssignsIDAndMonth(t *testing.T) {
	fake := &fakeDynamo{}
	repo := &AuditLogDynamoRepository{ddb: fake, tableName: "audit", now: fixedNow}
	if err := repo.Create(context.Background(), entities.AuditLog{Action: "rates.imported"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var it auditLogItem
	if err := attributevalue.UnmarshalMap(fake.puts[0].Item, &it); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if it.ID == "" || it.LogMonth != "2024-03" || it.CreatedAt != "2024-03-10T12:00:00.000000000Z" {
		t.Fatalf("unexpected item: %+v", it)
	}
}

func TestPlatformSettingsRepository_PutManyChunksAndRetries(t *testing.T) {
	settings := make([]entities.PlatformSetting, 30)
	for i := range settings {
		settings[i] = entities.PlatformSetting{Key: fmt.Sprintf("k%d", i), Value: "v", UpdatedAt: fixedNow()}
	}
	unprocessed := map[string][]types.WriteRequest{"settings": {{PutRequest: &types.PutRequest{}}}}
	fake := &fakeDynamo{batchOut: []*dynamodb.BatchWriteItemOutput{{UnprocessedItems: unprocessed}}}
	repo := NewPlatformSettingsDynamoRepository(fake, "settings")

	if err := repo.PutMany(context.Background(), settings); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(fake.batches) != 3 {
		t.Fatalf("expected 2 chunks plus 1 retry, got %d calls", len(fake.batches))
	}
	if n := len(fake.batches[0].RequestItems["settings"]); n != maxBatchWrite {
		t.Fatalf("expected first chunk of %d, got %d", maxBatchWrite, n)
	}
}

func TestMonthsBetween(t *testing.T) {
	got := monthsBetween(time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC), time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC))
	if strings.Join(got, ",") != "2023-12,2024-01,2024-02" {
		t.Fatalf("unexpected months %v", got)
	}
	if monthsBetween(fixedNow(), fixedNow().Add(-time.Hour)) != nil {
		t.Fatalf("expected no months for inverted period")
	}
}
