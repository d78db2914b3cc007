package handlers

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"rotaclick/internal/adapter/http/handlers/mocks"
	"rotaclick/internal/domain/entities"
	"rotaclick/internal/usecase"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestRepasseHandler_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIRepasseUseCase(ctrl)
	uc.EXPECT().List(gomock.Any(), adminActor, usecase.RepasseFilter{
		Status:      entities.RepasseStatusPendente,
		CarrierID:   "car-1",
		OverdueOnly: true,
	}).Return([]entities.Freight{paidFreight()}, nil)
	h := NewRepasseHandler(uc)
	h.now = func() time.Time { return time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC) }

	r := newTestRouter(&adminActor)
	r.GET("/v1/repasses", h.List)

	w := serveJSON(r, http.MethodGet, "/v1/repasses?status=pendente&carrier_id=car-1&overdue=true", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), `"repasse_overdue":true`) {
		t.Fatalf("expected overdue flag in %s", w.Body.String())
	}
}

func TestRepasseHandler_Summary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIRepasseUseCase(ctrl)
	uc.EXPECT().Summary(gomock.Any(), carrierActor, "").Return(usecase.RepasseSummary{
		PendingCount:  1,
		PendingAmount: decimal.RequireFromString("100.00"),
	}, nil)
	h := NewRepasseHandler(uc)

	r := newTestRouter(&carrierActor)
	r.GET("/v1/repasses/summary", h.Summary)

	w := serveJSON(r, http.MethodGet, "/v1/repasses/summary", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if n := decodeBody(t, w)["pending_count"]; n != float64(1) {
		t.Fatalf("unexpected pending_count %v", n)
	}
}

func TestRepasseHandler_MarkPaid(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "paid", wantStatus: http.StatusOK},
		{name: "second call conflicts", err: usecase.ErrRepasseAlreadyPaid, wantStatus: http.StatusConflict},
		{name: "freight not paid", err: usecase.ErrFreightNotPaid, wantStatus: http.StatusUnprocessableEntity},
		{name: "unknown freight", err: usecase.ErrFreightNotFound, wantStatus: http.StatusNotFound},
		{name: "not an admin", err: usecase.ErrForbidden, wantStatus: http.StatusForbidden},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc := mocks.NewMockIRepasseUseCase(ctrl)
			f := paidFreight()
			if tc.err == nil {
				now := time.Now()
				f.RepasseStatus = entities.RepasseStatusPago
				f.RepassePaidAt = &now
			}
			uc.EXPECT().MarkPaid(gomock.Any(), adminActor, "fr-1").Return(f, tc.err)
			h := NewRepasseHandler(uc)

			r := newTestRouter(&adminActor)
			r.POST("/v1/repasses/:freight_id/pay", h.MarkPaid)

			w := serveJSON(r, http.MethodPost, "/v1/repasses/fr-1/pay", "")
			if w.Code != tc.wantStatus {
				t.Fatalf("expected %d, got %d", tc.wantStatus, w.Code)
			}
		})
	}
}
