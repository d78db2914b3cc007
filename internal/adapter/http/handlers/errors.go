package handlers

import (
	"errors"
	"net/http"

	"rotaclick/internal/adapter/http/middleware"
	"rotaclick/internal/domain/entities"
	"rotaclick/internal/domain/pricing"
	"rotaclick/internal/infrastructure/identity"
	"rotaclick/internal/usecase"
	"rotaclick/internal/usecase/interfaces"
	"rotaclick/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request payload", http.StatusBadRequest)
	errUnauthorized   = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Authentication required", http.StatusUnauthorized)
)

func abortWith(c *gin.Context, appErr *pkg.AppError) {
	c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// requireActor reads the caller set by middleware.RequireAuth.
func requireActor(c *gin.Context) (entities.Actor, bool) {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		abortWith(c, errUnauthorized)
	}
	return actor, ok
}

// mapCommonError covers the validation, authorization and infrastructure
// errors shared by every use case.
func mapCommonError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrForbidden), errors.Is(err, identity.ErrUnknownRole):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Not allowed", http.StatusForbidden)

	case errors.Is(err, pricing.ErrInvalidQuantity),
		errors.Is(err, pricing.ErrNegativeMeasure),
		errors.Is(err, pricing.ErrInvalidZipCode),
		errors.Is(err, pricing.ErrInvalidZipRange),
		errors.Is(err, usecase.ErrInvalidZipCode):
		return pkg.NewDomainError("INVALID_CARGO_OR_CEP", err.Error(), err, http.StatusBadRequest)

	case errors.Is(err, pricing.ErrMarginOutOfRange),
		errors.Is(err, pricing.ErrInvalidCostPrice),
		errors.Is(err, pricing.ErrInvalidMinPrice),
		errors.Is(err, usecase.ErrInvalidDeadline):
		return pkg.NewDomainError("INVALID_RATE", err.Error(), err, http.StatusBadRequest)

	case errors.Is(err, usecase.ErrCarrierNotFound):
		return pkg.NewDomainErrorSimple("CARRIER_NOT_FOUND", "Carrier not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCarrierRejected), errors.Is(err, usecase.ErrCarrierNotApproved):
		return pkg.NewDomainError("CARRIER_NOT_APPROVED", err.Error(), err, http.StatusUnprocessableEntity)

	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func mapQuoteError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrZeroTaxableWeight):
		return pkg.NewDomainError("ZERO_TAXABLE_WEIGHT", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrRouteNotFound):
		return pkg.NewDomainErrorSimple("ROUTE_NOT_FOUND", "Freight route not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrRouteInactive), errors.Is(err, usecase.ErrRouteMismatch), errors.Is(err, usecase.ErrNoRouteAvailable):
		return pkg.NewDomainError("ROUTE_UNAVAILABLE", err.Error(), err, http.StatusUnprocessableEntity)
	default:
		return mapCommonError(err)
	}
}

func mapRouteError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidRouteCarrier):
		return pkg.NewDomainError("INVALID_REQUEST", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEmptyRateSheet),
		errors.Is(err, interfaces.ErrUnsupportedSheetFormat),
		errors.Is(err, interfaces.ErrMissingSheetColumns):
		return pkg.NewDomainError("INVALID_RATE_SHEET", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrRouteAlreadyExists):
		return pkg.NewDomainError("ROUTE_ALREADY_EXISTS", err.Error(), err, http.StatusConflict)
	default:
		return mapQuoteError(err)
	}
}

func mapFreightError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrFreightNotFound):
		return pkg.NewDomainErrorSimple("FREIGHT_NOT_FOUND", "Freight not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrFreightAlreadyPaid):
		return pkg.NewDomainErrorSimple("FREIGHT_ALREADY_PAID", "Freight already paid", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidPaymentID):
		return pkg.NewDomainErrorSimple("INVALID_PAYMENT_ID", "Invalid payment id", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPaymentAmountMismatch):
		return pkg.NewDomainError("PAYMENT_AMOUNT_MISMATCH", err.Error(), err, http.StatusConflict)
	case errors.Is(err, usecase.ErrCheckoutUnavailable):
		return pkg.NewDomainError("CHECKOUT_UNAVAILABLE", "Payment provider unavailable", err, http.StatusBadGateway)
	case errors.Is(err, pricing.ErrInvalidPaymentTerm), errors.Is(err, pricing.ErrInvalidCarrierCost), errors.Is(err, pricing.ErrInvalidPrice):
		return pkg.NewDomainError("INVALID_PAYOUT", err.Error(), err, http.StatusUnprocessableEntity)
	default:
		return mapQuoteError(err)
	}
}

func mapRepasseError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrRepasseAlreadyPaid):
		return pkg.NewDomainErrorSimple("REPASSE_ALREADY_PAID", "Repasse already paid", http.StatusConflict)
	case errors.Is(err, usecase.ErrFreightNotPaid):
		return pkg.NewDomainErrorSimple("FREIGHT_NOT_PAID", "Freight not paid yet", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrInvalidRepasseFilter):
		return pkg.NewDomainError("INVALID_REQUEST", err.Error(), err, http.StatusBadRequest)
	default:
		return mapFreightError(err)
	}
}

func mapCarrierError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCNPJ),
		errors.Is(err, usecase.ErrInvalidCarrierEmail),
		errors.Is(err, usecase.ErrInvalidPaymentTerm),
		errors.Is(err, usecase.ErrRejectionReasonRequired),
		errors.Is(err, usecase.ErrInvalidApprovalStatus):
		return pkg.NewDomainError("INVALID_REQUEST", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCarrierAlreadyExists):
		return pkg.NewDomainErrorSimple("CARRIER_ALREADY_EXISTS", "Carrier already registered", http.StatusConflict)
	case errors.Is(err, usecase.ErrCompanyInactive), errors.Is(err, usecase.ErrCNAENotAllowed):
		return pkg.NewDomainError("CARRIER_NOT_ELIGIBLE", err.Error(), err, http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrTaxIDUnavailable):
		return pkg.NewDomainError("TAX_ID_UNAVAILABLE", "CNPJ registry unavailable, try again later", err, http.StatusServiceUnavailable)
	default:
		return mapCommonError(err)
	}
}

func mapAdminError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPeriod),
		errors.Is(err, usecase.ErrInvalidSettings),
		errors.Is(err, usecase.ErrInvalidBrandColor),
		errors.Is(err, usecase.ErrInvalidBrandLogoURL),
		errors.Is(err, usecase.ErrInvalidSupportEmail):
		return pkg.NewDomainError("INVALID_REQUEST", err.Error(), err, http.StatusBadRequest)
	default:
		return mapCommonError(err)
	}
}
