package handlers

import (
	"net/http"
	"strings"
	"time"

	"rotaclick/internal/usecase"

	"github.com/gin-gonic/gin"
)

const dateLayout = "2006-01-02"

type AuditHandler struct {
	usecase usecase.IAuditUseCase
	now     func() time.Time
}

func NewAuditHandler(uc usecase.IAuditUseCase) *AuditHandler {
	return &AuditHandler{usecase: uc, now: time.Now}
}

// List godoc
// @Summary  Search the audit trail
// @Tags     audit
// @Produce  json
// @Param    from query string false "RFC3339 or YYYY-MM-DD, defaults to 30 days ago"
// @Param    to query string false "RFC3339 or YYYY-MM-DD, defaults to now"
// @Param    action query string false "Action, e.g. repasse.paid"
// @Param    actor_id query string false "Actor user id"
// @Param    entity_type query string false "Entity type"
// @Param    entity_id query string false "Entity id"
// @Success  200 {array} entities.AuditLog
// @Router   /v1/audit-logs [get]
// @Security BearerAuth
func (h *AuditHandler) List(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	from, to, ok := h.period(c)
	if !ok {
		return
	}

	logs, err := h.usecase.List(c.Request.Context(), actor, usecase.AuditFilter{
		From:       from,
		To:         to,
		Action:     c.Query("action"),
		ActorID:    c.Query("actor_id"),
		EntityType: c.Query("entity_type"),
		EntityID:   c.Query("entity_id"),
	})
	if err != nil {
		abortWith(c, mapAdminError(err))
		return
	}
	c.JSON(http.StatusOK, logs)
}

func (h *AuditHandler) Report(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	from, to, ok := h.period(c)
	if !ok {
		return
	}

	report, err := h.usecase.ComplianceReport(c.Request.Context(), actor, from, to)
	if err != nil {
		abortWith(c, mapAdminError(err))
		return
	}
	c.JSON(http.StatusOK, report)
}

// period reads from/to; a bare date for "to" covers the whole day.
func (h *AuditHandler) period(c *gin.Context) (time.Time, time.Time, bool) {
	now := h.now().UTC()
	from, to := now.AddDate(0, 0, -30), now

	if raw := strings.TrimSpace(c.Query("from")); raw != "" {
		t, _, err := parseInstant(raw)
		if err != nil {
			abortWith(c, mapAdminError(usecase.ErrInvalidPeriod))
			return time.Time{}, time.Time{}, false
		}
		from = t
	}
	if raw := strings.TrimSpace(c.Query("to")); raw != "" {
		t, dateOnly, err := parseInstant(raw)
		if err != nil {
			abortWith(c, mapAdminError(usecase.ErrInvalidPeriod))
			return time.Time{}, time.Time{}, false
		}
		if dateOnly {
			t = t.Add(24*time.Hour - time.Nanosecond)
		}
		to = t
	}
	return from, to, true
}

func parseInstant(raw string) (time.Time, bool, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t.UTC(), false, nil
	}
	t, err := time.Parse(dateLayout, raw)
	return t, true, err
}
