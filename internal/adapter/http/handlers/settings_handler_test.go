package handlers

import (
	"context"
	"net/http"
	"testing"

	"rotaclick/internal/adapter/http/handlers/mocks"
	"rotaclick/internal/domain/entities"
	"rotaclick/internal/usecase"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestSettingsHandler_Update(t *testing.T) {
	t.Run("partial update", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISettingsUseCase(ctrl)
		uc.EXPECT().Update(gomock.Any(), adminActor, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ entities.Actor, in usecase.UpdateSettingsInput) (entities.PlatformSettings, error) {
				if in.DefaultMarginPercent == nil || !in.DefaultMarginPercent.Equal(decimal.NewFromInt(18)) {
					t.Fatalf("unexpected margin %v", in.DefaultMarginPercent)
				}
				if in.BrandName == nil || *in.BrandName != "FreteJá" {
					t.Fatalf("unexpected brand name %v", in.BrandName)
				}
				if in.FallbackPricePerKg != nil || in.BrandLogoURL != nil {
					t.Fatalf("absent fields must stay nil: %+v", in)
				}
				return entities.PlatformSettings{DefaultMarginPercent: decimal.NewFromInt(18)}, nil
			})
		h := NewSettingsHandler(uc)

		r := newTestRouter(&adminActor)
		r.PATCH("/v1/settings", h.Update)

		w := serveJSON(r, http.MethodPatch, "/v1/settings", `{"default_margin_percent":18,"brand_name":"FreteJá"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("invalid color", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISettingsUseCase(ctrl)
		uc.EXPECT().Update(gomock.Any(), adminActor, gomock.Any()).Return(entities.PlatformSettings{}, usecase.ErrInvalidBrandColor)
		h := NewSettingsHandler(uc)

		r := newTestRouter(&adminActor)
		r.PATCH("/v1/settings", h.Update)

		w := serveJSON(r, http.MethodPatch, "/v1/settings", `{"brand_primary_color":"blue"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestSettingsHandler_Branding(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockISettingsUseCase(ctrl)
	uc.EXPECT().Branding(gomock.Any()).Return(entities.Branding{Name: "RotaClick", PrimaryColor: "#0B5FFF"}, nil)
	h := NewSettingsHandler(uc)

	r := newTestRouter(nil)
	r.GET("/v1/branding", h.Branding)

	w := serveJSON(r, http.MethodGet, "/v1/branding", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := decodeBody(t, w)
	if body["name"] != "RotaClick" || body["primary_color"] != "#0B5FFF" {
		t.Fatalf("unexpected branding %v", body)
	}
}
