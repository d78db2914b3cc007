package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"rotaclick/internal/domain/entities"
	mock_interfaces "rotaclick/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func auditFixtures(base time.Time) []entities.AuditLog {
	return []entities.AuditLog{
		{ID: "a1", ActorID: "admin-1", ActorRole: "admin", Action: entities.AuditActionCarrierApproved, EntityType: "carrier", EntityID: "c1", CreatedAt: base},
		{ID: "a2", ActorID: "user-c1", ActorRole: "carrier", Action: entities.AuditActionRouteCreated, EntityType: "freight_route", EntityID: "r1", CreatedAt: base.Add(2 * time.Hour)},
		{ID: "a3", ActorID: "admin-1", ActorRole: "admin", Action: entities.AuditActionRepassePaid, EntityType: "freight", EntityID: "f1", CreatedAt: base.Add(26 * time.Hour)},
		{ID: "a4", ActorID: "admin-1", ActorRole: "admin", Action: entities.AuditActionCarrierApproved, EntityType: "carrier", EntityID: "c2", CreatedAt: base.Add(27 * time.Hour)},
	}
}

func TestAuditUseCase_List(t *testing.T) {
	from := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)

	t.Run("filters and orders newest first", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAuditLogRepository(ctrl)
		uc := NewAuditUseCase(repo)

		repo.EXPECT().ListByPeriod(gomock.Any(), from, to).Return(auditFixtures(from.Add(time.Hour)), nil)

		got, err := uc.List(context.Background(), adminActor, AuditFilter{From: from, To: to, Action: entities.AuditActionCarrierApproved})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 2 || got[0].ID != "a4" || got[1].ID != "a1" {
			t.Fatalf("unexpected logs: %+v", got)
		}
	})

	t.Run("invalid period", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := NewAuditUseCase(mock_interfaces.NewMockIAuditLogRepository(ctrl))

		for _, p := range [][2]time.Time{{to, from}, {{}, to}, {from, from.AddDate(2, 0, 0)}} {
			if _, err := uc.List(context.Background(), adminActor, AuditFilter{From: p[0], To: p[1]}); !errors.Is(err, ErrInvalidPeriod) {
				t.Fatalf("%v: expected ErrInvalidPeriod, got %v", p, err)
			}
		}
	})

	t.Run("admins only", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := NewAuditUseCase(mock_interfaces.NewMockIAuditLogRepository(ctrl))

		if _, err := uc.List(context.Background(), carrierActor, AuditFilter{From: from, To: to}); !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})
}

func TestAuditUseCase_ComplianceReport(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIAuditLogRepository(ctrl)
	uc := NewAuditUseCase(repo)

	from := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 3, 31, 23, 59, 59, 0, time.UTC)
	base := time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC)
	repo.EXPECT().ListByPeriod(gomock.Any(), from, to).Return(auditFixtures(base), nil)

	r, err := uc.ComplianceReport(context.Background(), adminActor, from, to)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Total != 4 || r.ByAction[entities.AuditActionCarrierApproved] != 2 || r.ByAction[entities.AuditActionRouteCreated] != 1 {
		t.Fatalf("unexpected totals: %+v", r)
	}
	if len(r.ByActor) != 2 || r.ByActor[0].ActorID != "admin-1" || r.ByActor[0].Count != 3 {
		t.Fatalf("unexpected actor breakdown: %+v", r.ByActor)
	}
	if len(r.ByDay) != 2 || r.ByDay[0] != (DayActivity{Day: "2024-03-05", Count: 2}) || r.ByDay[1] != (DayActivity{Day: "2024-03-06", Count: 2}) {
		t.Fatalf("unexpected daily breakdown: %+v", r.ByDay)
	}
	if !r.FirstEventAt.Equal(base) || !r.LastEventAt.Equal(base.Add(27*time.Hour)) {
		t.Fatalf("unexpected bounds: %v %v", r.FirstEventAt, r.LastEventAt)
	}
}
