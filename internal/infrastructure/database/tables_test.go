package database

import (
	"context"
	"errors"
	"testing"

	appconfig "rotaclick/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"
)

type fakeTableAPI struct {
	existing map[string]bool
	describe error
	created  []*dynamodb.CreateTableInput
}

func (f *fakeTableAPI) DescribeTable(_ context.Context, in *dynamodb.DescribeTableInput, _ ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error) {
	if f.describe != nil {
		return nil, f.describe
	}
	if f.existing[aws.ToString(in.TableName)] {
		return &dynamodb.DescribeTableOutput{}, nil
	}
	return nil, &types.ResourceNotFoundException{Message: aws.String("not found")}
}

func (f *fakeTableAPI) CreateTable(_ context.Context, in *dynamodb.CreateTableInput, _ ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error) {
	f.created = append(f.created, in)
	return &dynamodb.CreateTableOutput{}, nil
}

func testConfig() *appconfig.Config {
	return &appconfig.Config{
		FreightRoutesTable: "routes",
		FreightsTable:      "freights",
		CarriersTable:      "carriers",
		AuditLogsTable:     "audit",
		SettingsTable:      "settings",
	}
}

func TestEnsureTables_CreatesOnlyMissing(t *testing.T) {
	api := &fakeTableAPI{existing: map[string]bool{"routes": true, "carriers": true, "settings": true}}

	if err := EnsureTables(context.Background(), api, testConfig(), zap.NewNop()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(api.created) != 2 {
		t.Fatalf("expected 2 tables created, got %d", len(api.created))
	}

	freights := api.created[0]
	if aws.ToString(freights.TableName) != "freights" {
		t.Fatalf("unexpected first table %s", aws.ToString(freights.TableName))
	}
	if freights.BillingMode != types.BillingModePayPerRequest {
		t.Fatalf("expected on-demand billing, got %s", freights.BillingMode)
	}
	if len(freights.GlobalSecondaryIndexes) != 3 {
		t.Fatalf("expected 3 indexes, got %d", len(freights.GlobalSecondaryIndexes))
	}
	var names []string
	for _, a := range freights.AttributeDefinitions {
		names = append(names, aws.ToString(a.AttributeName))
	}
	want := []string{"carrier_id", "customer_id", "id", "repasse_due_date", "repasse_status"}
	if len(names) != len(want) {
		t.Fatalf("unexpected attribute definitions %v", names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("unexpected attribute definitions %v", names)
		}
	}

	audit := api.created[1]
	keys := audit.GlobalSecondaryIndexes[0].KeySchema
	if len(keys) != 2 || keys[1].KeyType != types.KeyTypeRange || aws.ToString(keys[1].AttributeName) != "created_at" {
		t.Fatalf("unexpected audit index key schema %+v", keys)
	}
}

func TestEnsureTables_DescribeFailure(t *testing.T) {
	api := &fakeTableAPI{describe: errors.New("access denied")}

	err := EnsureTables(context.Background(), api, testConfig(), zap.NewNop())
	if err == nil {
		t.Fatalf("expected error")
	}
	if len(api.created) != 0 {
		t.Fatalf("nothing should be created on describe failure")
	}
}
