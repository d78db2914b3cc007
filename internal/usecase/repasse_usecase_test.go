package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"rotaclick/internal/domain/entities"
	mock_interfaces "rotaclick/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func paidFreight(id, carrierID string, carrierAmount, rotaclick string, due time.Time, status entities.RepasseStatus) entities.Freight {
	paidAt := due.AddDate(0, 0, -7)
	return entities.Freight{
		ID:              id,
		CarrierID:       carrierID,
		Price:           dec(carrierAmount).Add(dec(rotaclick)),
		PaymentStatus:   entities.PaymentStatusPago,
		PaidAt:          &paidAt,
		CarrierAmount:   dec(carrierAmount),
		RotaclickAmount: dec(rotaclick),
		PaymentTermDays: 7,
		RepasseDueDate:  &due,
		RepasseStatus:   status,
	}
}

func newRepasseUseCase(ctrl *gomock.Controller, now time.Time) (*RepasseUseCase, *mock_interfaces.MockIFreightRepository, *mock_interfaces.MockIAuditLogRepository) {
	repo := mock_interfaces.NewMockIFreightRepository(ctrl)
	audit := mock_interfaces.NewMockIAuditLogRepository(ctrl)
	uc := NewRepasseUseCase(repo, audit, zap.NewNop())
	uc.now = fixedClock(now)
	return uc, repo, audit
}

func TestRepasseUseCase_MarkPaid_IsIdempotent(t *testing.T) {
	now := time.Date(2024, 2, 1, 10, 0, 0, 0, time.UTC)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, repo, audit := newRepasseUseCase(ctrl, now)

	pending := paidFreight("f1", "c1", "90", "10", now.AddDate(0, 0, -1), entities.RepasseStatusPendente)
	done := pending
	done.RepasseStatus = entities.RepasseStatusPago
	done.RepassePaidAt = &now
	done.RepassePaidBy = "admin-1"

	gomock.InOrder(
		repo.EXPECT().GetByID(gomock.Any(), "f1").Return(pending, nil),
		repo.EXPECT().MarkRepassePaid(gomock.Any(), "f1", now, "admin-1").Return(done, nil).Times(1),
		repo.EXPECT().GetByID(gomock.Any(), "f1").Return(done, nil),
	)
	audit.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, l entities.AuditLog) error {
		if l.Action != entities.AuditActionRepassePaid || l.Details["overdue"] != "true" {
			t.Fatalf("unexpected audit entry: %+v", l)
		}
		return nil
	}).Times(1)

	got, err := uc.MarkPaid(context.Background(), adminActor, "f1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.RepasseStatus != entities.RepasseStatusPago || got.RepassePaidBy != "admin-1" {
		t.Fatalf("unexpected freight: %+v", got)
	}

	again, err := uc.MarkPaid(context.Background(), adminActor, "f1")
	if !errors.Is(err, ErrRepasseAlreadyPaid) {
		t.Fatalf("expected ErrRepasseAlreadyPaid, got %v", err)
	}
	if !again.RepassePaidAt.Equal(now) {
		t.Fatalf("second call must not change the paid timestamp")
	}
}

func TestRepasseUseCase_MarkPaid_Errors(t *testing.T) {
	now := time.Date(2024, 2, 1, 10, 0, 0, 0, time.UTC)

	t.Run("concurrent mark-paid wins", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, _ := newRepasseUseCase(ctrl, now)

		repo.EXPECT().GetByID(gomock.Any(), "f1").Return(paidFreight("f1", "c1", "90", "10", now, entities.RepasseStatusPendente), nil)
		repo.EXPECT().MarkRepassePaid(gomock.Any(), "f1", now, "admin-1").Return(entities.Freight{}, nil)

		if _, err := uc.MarkPaid(context.Background(), adminActor, "f1"); !errors.Is(err, ErrRepasseAlreadyPaid) {
			t.Fatalf("expected ErrRepasseAlreadyPaid, got %v", err)
		}
	})

	t.Run("unpaid freight", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, _ := newRepasseUseCase(ctrl, now)

		repo.EXPECT().GetByID(gomock.Any(), "f1").Return(entities.Freight{ID: "f1", PaymentStatus: entities.PaymentStatusPendente}, nil)

		if _, err := uc.MarkPaid(context.Background(), adminActor, "f1"); !errors.Is(err, ErrFreightNotPaid) {
			t.Fatalf("expected ErrFreightNotPaid, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, _ := newRepasseUseCase(ctrl, now)

		repo.EXPECT().GetByID(gomock.Any(), "f1").Return(entities.Freight{}, nil)

		if _, err := uc.MarkPaid(context.Background(), adminActor, "f1"); !errors.Is(err, ErrFreightNotFound) {
			t.Fatalf("expected ErrFreightNotFound, got %v", err)
		}
	})

	t.Run("carrier cannot mark paid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, _ := newRepasseUseCase(ctrl, now)

		if _, err := uc.MarkPaid(context.Background(), carrierActor, "f1"); !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})
}

func TestRepasseUseCase_List(t *testing.T) {
	now := time.Date(2024, 2, 1, 10, 0, 0, 0, time.UTC)
	overdue := paidFreight("f1", "c1", "90", "10", now.AddDate(0, 0, -2), entities.RepasseStatusPendente)
	upcoming := paidFreight("f2", "c2", "180", "20", now.AddDate(0, 0, 5), entities.RepasseStatusPendente)
	earlier := paidFreight("f3", "c1", "45", "5", now.AddDate(0, 0, -10), entities.RepasseStatusPendente)

	t.Run("overdue only", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, _ := newRepasseUseCase(ctrl, now)

		repo.EXPECT().ListByRepasseStatus(gomock.Any(), entities.RepasseStatusPendente).Return([]entities.Freight{upcoming, overdue, earlier}, nil)

		got, err := uc.List(context.Background(), adminActor, RepasseFilter{OverdueOnly: true})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 2 || got[0].ID != "f3" || got[1].ID != "f1" {
			t.Fatalf("expected overdue f3, f1 by due date, got %+v", got)
		}
	})

	t.Run("carrier sees only its own", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, _ := newRepasseUseCase(ctrl, now)

		unpaid := entities.Freight{ID: "f9", CarrierID: "c1", PaymentStatus: entities.PaymentStatusPendente}
		repo.EXPECT().ListByCarrier(gomock.Any(), "c1").Return([]entities.Freight{overdue, earlier, unpaid}, nil)

		got, err := uc.List(context.Background(), carrierActor, RepasseFilter{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 2 {
			t.Fatalf("expected 2 payouts, got %d", len(got))
		}
	})

	t.Run("carrier asking for another carrier", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, _ := newRepasseUseCase(ctrl, now)

		if _, err := uc.List(context.Background(), carrierActor, RepasseFilter{CarrierID: "c2"}); !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("invalid status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, _ := newRepasseUseCase(ctrl, now)

		if _, err := uc.List(context.Background(), adminActor, RepasseFilter{Status: "atrasado"}); !errors.Is(err, ErrInvalidRepasseFilter) {
			t.Fatalf("expected ErrInvalidRepasseFilter, got %v", err)
		}
	})
}

func TestRepasseUseCase_Summary(t *testing.T) {
	now := time.Date(2024, 2, 1, 10, 0, 0, 0, time.UTC)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, repo, _ := newRepasseUseCase(ctrl, now)

	repo.EXPECT().ListByRepasseStatus(gomock.Any(), entities.RepasseStatusPendente).Return([]entities.Freight{
		paidFreight("f1", "c1", "90", "10", now.AddDate(0, 0, -2), entities.RepasseStatusPendente),
		paidFreight("f2", "c2", "180", "20", now.AddDate(0, 0, 5), entities.RepasseStatusPendente),
	}, nil)
	repo.EXPECT().ListByRepasseStatus(gomock.Any(), entities.RepasseStatusPago).Return([]entities.Freight{
		paidFreight("f3", "c1", "45.50", "4.50", now.AddDate(0, 0, -10), entities.RepasseStatusPago),
	}, nil)

	s, err := uc.Summary(context.Background(), adminActor, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.PendingCount != 2 || !s.PendingAmount.Equal(dec("270")) {
		t.Fatalf("unexpected pending totals: %+v", s)
	}
	if s.OverdueCount != 1 || !s.OverdueAmount.Equal(dec("90")) {
		t.Fatalf("unexpected overdue totals: %+v", s)
	}
	if s.PaidCount != 1 || !s.PaidAmount.Equal(dec("45.5")) || !s.RotaclickAmount.Equal(dec("34.5")) {
		t.Fatalf("unexpected paid totals: %+v", s)
	}
}
