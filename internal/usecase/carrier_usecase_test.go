package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"rotaclick/internal/domain/entities"
	"rotaclick/internal/usecase/interfaces"
	mock_interfaces "rotaclick/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

const validCNPJ = "11222333000181"

type carrierMocks struct {
	repo  *mock_interfaces.MockICarrierRepository
	taxID *mock_interfaces.MockITaxIDValidator
	audit *mock_interfaces.MockIAuditLogRepository
}

func newCarrierUseCase(ctrl *gomock.Controller) (*CarrierUseCase, carrierMocks) {
	m := carrierMocks{
		repo:  mock_interfaces.NewMockICarrierRepository(ctrl),
		taxID: mock_interfaces.NewMockITaxIDValidator(ctrl),
		audit: mock_interfaces.NewMockIAuditLogRepository(ctrl),
	}
	uc := NewCarrierUseCase(m.repo, m.taxID, []string{"4930-2/02", "4930201"}, m.audit, zap.NewNop())
	uc.now = fixedClock(time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC))
	return uc, m
}

func activeRecord() entities.TaxIDRecord {
	return entities.TaxIDRecord{
		CNPJ:           validCNPJ,
		CompanyName:    "TRANSPORTES EXEMPLO LTDA",
		TradeName:      "EXEMPLO LOG",
		Active:         true,
		MainCNAE:       "5211701",
		SecondaryCNAEs: []string{"4930202"},
		Address:        "RUA A, 100",
		City:           "SAO PAULO",
		State:          "SP",
		Zip:            "01310100",
	}
}

func TestCarrierUseCase_Register(t *testing.T) {
	in := RegisterCarrierInput{CNPJ: "11.222.333/0001-81", Email: "ops@exemplo.com.br", Phone: "11 99999-0000"}
	owner := entities.Actor{UserID: "user-9", Role: entities.RoleCarrier}

	t.Run("registers pending carrier", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newCarrierUseCase(ctrl)

		m.repo.EXPECT().GetByOwnerUserID(gomock.Any(), "user-9").Return(entities.Carrier{}, nil)
		m.repo.EXPECT().GetByCNPJ(gomock.Any(), validCNPJ).Return(entities.Carrier{}, nil)
		m.taxID.EXPECT().Lookup(gomock.Any(), validCNPJ).Return(activeRecord(), nil)
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, c entities.Carrier) (entities.Carrier, error) {
			return c, nil
		})
		m.audit.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		got, err := uc.Register(context.Background(), owner, in)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID == "" || got.CreatedAt.IsZero() || !got.UpdatedAt.Equal(got.CreatedAt) {
			t.Fatalf("expected id and timestamps to be assigned: %+v", got)
		}
		if got.ApprovalStatus != entities.ApprovalStatusPendente || got.OwnerUserID != "user-9" {
			t.Fatalf("unexpected carrier: %+v", got)
		}
		if got.CNAE != "4930202" || got.TradeName != "EXEMPLO LOG" || got.Address != "RUA A, 100, SAO PAULO, SP, 01310100" {
			t.Fatalf("unexpected registry data: %+v", got)
		}
	})

	t.Run("bad check digits", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _ := newCarrierUseCase(ctrl)

		bad := in
		bad.CNPJ = "11.222.333/0001-80"
		if _, err := uc.Register(context.Background(), owner, bad); !errors.Is(err, ErrInvalidCNPJ) {
			t.Fatalf("expected ErrInvalidCNPJ, got %v", err)
		}
	})

	t.Run("invalid email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _ := newCarrierUseCase(ctrl)

		bad := in
		bad.Email = "not-an-email"
		if _, err := uc.Register(context.Background(), owner, bad); !errors.Is(err, ErrInvalidCarrierEmail) {
			t.Fatalf("expected ErrInvalidCarrierEmail, got %v", err)
		}
	})

	t.Run("already registered", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newCarrierUseCase(ctrl)

		m.repo.EXPECT().GetByOwnerUserID(gomock.Any(), "user-9").Return(entities.Carrier{}, nil)
		m.repo.EXPECT().GetByCNPJ(gomock.Any(), validCNPJ).Return(entities.Carrier{ID: "c1"}, nil)

		if _, err := uc.Register(context.Background(), owner, in); !errors.Is(err, ErrCarrierAlreadyExists) {
			t.Fatalf("expected ErrCarrierAlreadyExists, got %v", err)
		}
	})

	registryCases := map[string]struct {
		record entities.TaxIDRecord
		err    error
		want   error
	}{
		"inactive company": {record: func() entities.TaxIDRecord { r := activeRecord(); r.Active = false; return r }(), want: ErrCompanyInactive},
		"wrong activity":   {record: func() entities.TaxIDRecord { r := activeRecord(); r.SecondaryCNAEs = nil; return r }(), want: ErrCNAENotAllowed},
		"unknown cnpj":     {err: interfaces.ErrTaxIDNotFound, want: ErrInvalidCNPJ},
		"registry down":    {err: errors.New("timeout"), want: ErrTaxIDUnavailable},
	}
	for name, tc := range registryCases {
		t.Run(name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc, m := newCarrierUseCase(ctrl)

			m.repo.EXPECT().GetByOwnerUserID(gomock.Any(), "user-9").Return(entities.Carrier{}, nil)
			m.repo.EXPECT().GetByCNPJ(gomock.Any(), validCNPJ).Return(entities.Carrier{}, nil)
			m.taxID.EXPECT().Lookup(gomock.Any(), validCNPJ).Return(tc.record, tc.err)

			if _, err := uc.Register(context.Background(), owner, in); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestCarrierUseCase_Approve(t *testing.T) {
	t.Run("sets payment term", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newCarrierUseCase(ctrl)

		m.repo.EXPECT().GetByID(gomock.Any(), "c1").Return(entities.Carrier{ID: "c1", ApprovalStatus: entities.ApprovalStatusPendente}, nil)
		m.repo.EXPECT().UpdateApproval(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, c entities.Carrier) (entities.Carrier, error) {
			return c, nil
		})
		m.audit.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		got, err := uc.Approve(context.Background(), adminActor, "c1", 21)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !got.IsApproved() || got.PaymentTermDays != 21 || got.ApprovedBy != "admin-1" || got.ApprovedAt == nil {
			t.Fatalf("unexpected carrier: %+v", got)
		}
	})

	t.Run("term outside 7/21/28", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _ := newCarrierUseCase(ctrl)

		for _, term := range []int{0, 14, 30} {
			if _, err := uc.Approve(context.Background(), adminActor, "c1", term); !errors.Is(err, ErrInvalidPaymentTerm) {
				t.Fatalf("term %d: expected ErrInvalidPaymentTerm, got %v", term, err)
			}
		}
	})

	t.Run("only admins", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _ := newCarrierUseCase(ctrl)

		if _, err := uc.Approve(context.Background(), carrierActor, "c1", 7); !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})
}

func TestCarrierUseCase_Reject(t *testing.T) {
	t.Run("reason required", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _ := newCarrierUseCase(ctrl)

		if _, err := uc.Reject(context.Background(), adminActor, "c1", "  "); !errors.Is(err, ErrRejectionReasonRequired) {
			t.Fatalf("expected ErrRejectionReasonRequired, got %v", err)
		}
	})

	t.Run("stores reason", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newCarrierUseCase(ctrl)

		m.repo.EXPECT().GetByID(gomock.Any(), "c1").Return(entities.Carrier{ID: "c1", ApprovalStatus: entities.ApprovalStatusPendente}, nil)
		m.repo.EXPECT().UpdateApproval(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, c entities.Carrier) (entities.Carrier, error) {
			return c, nil
		})
		m.audit.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		got, err := uc.Reject(context.Background(), adminActor, "c1", "documentos ilegiveis")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ApprovalStatus != entities.ApprovalStatusRejeitado || got.RejectionReason != "documentos ilegiveis" {
			t.Fatalf("unexpected carrier: %+v", got)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newCarrierUseCase(ctrl)

		m.repo.EXPECT().GetByID(gomock.Any(), "c1").Return(entities.Carrier{}, nil)

		if _, err := uc.Reject(context.Background(), adminActor, "c1", "x"); !errors.Is(err, ErrCarrierNotFound) {
			t.Fatalf("expected ErrCarrierNotFound, got %v", err)
		}
	})
}

func TestCarrierUseCase_ListByStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, m := newCarrierUseCase(ctrl)

	m.repo.EXPECT().ListByStatus(gomock.Any(), entities.ApprovalStatusPendente).Return([]entities.Carrier{{ID: "c1"}}, nil)

	got, err := uc.ListByStatus(context.Background(), adminActor, entities.ApprovalStatusPendente)
	if err != nil || len(got) != 1 {
		t.Fatalf("unexpected result %+v err %v", got, err)
	}
	if _, err := uc.ListByStatus(context.Background(), adminActor, "foo"); !errors.Is(err, ErrInvalidApprovalStatus) {
		t.Fatalf("expected ErrInvalidApprovalStatus, got %v", err)
	}
}
