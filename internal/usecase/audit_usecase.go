package usecase

import (
	"context"
	"errors"
	"rotaclick/internal/domain/entities"
	"rotaclick/internal/usecase/interfaces"
	"sort"
	"strings"
	"time"
)

var ErrInvalidPeriod = errors.New("invalid period")

// MaxAuditPeriod bounds a single listing or report.
const MaxAuditPeriod = 366 * 24 * time.Hour

type AuditFilter struct {
	From       time.Time
	To         time.Time
	Action     string
	ActorID    string
	EntityType string
	EntityID   string
}

type ActorActivity struct {
	ActorID   string `json:"actor_id"`
	ActorRole string `json:"actor_role"`
	Count     int    `json:"count"`
}

type DayActivity struct {
	Day   string `json:"day"`
	Count int    `json:"count"`
}

// ComplianceReport summarises audit activity over a period.
type ComplianceReport struct {
	From         time.Time       `json:"from"`
	To           time.Time       `json:"to"`
	Total        int             `json:"total"`
	ByAction     map[string]int  `json:"by_action"`
	ByActor      []ActorActivity `json:"by_actor"`
	ByDay        []DayActivity   `json:"by_day"`
	FirstEventAt *time.Time      `json:"first_event_at,omitempty"`
	LastEventAt  *time.Time      `json:"last_event_at,omitempty"`
}

type IAuditUseCase interface {
	List(ctx context.Context, actor entities.Actor, filter AuditFilter) ([]entities.AuditLog, error)
	ComplianceReport(ctx context.Context, actor entities.Actor, from, to time.Time) (ComplianceReport, error)
}

type AuditUseCase struct {
	repo interfaces.IAuditLogRepository
}

var _ IAuditUseCase = (*AuditUseCase)(nil)

func NewAuditUseCase(repo interfaces.IAuditLogRepository) *AuditUseCase {
	return &AuditUseCase{repo: repo}
}

// List returns matching entries, newest first.
func (u *AuditUseCase) List(ctx context.Context, actor entities.Actor, filter AuditFilter) ([]entities.AuditLog, error) {
	if !actor.IsAdmin() {
		return nil, ErrForbidden
	}
	if err := validatePeriod(filter.From, filter.To); err != nil {
		return nil, err
	}
	logs, err := u.repo.ListByPeriod(ctx, filter.From, filter.To)
	if err != nil {
		return nil, err
	}

	out := make([]entities.AuditLog, 0, len(logs))
	for _, l := range logs {
		if !matches(filter.Action, l.Action) || !matches(filter.ActorID, l.ActorID) ||
			!matches(filter.EntityType, l.EntityType) || !matches(filter.EntityID, l.EntityID) {
			continue
		}
		out = append(out, l)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (u *AuditUseCase) ComplianceReport(ctx context.Context, actor entities.Actor, from, to time.Time) (ComplianceReport, error) {
	logs, err := u.List(ctx, actor, AuditFilter{From: from, To: to})
	if err != nil {
		return ComplianceReport{}, err
	}

	report := ComplianceReport{
		From:     from.UTC(),
		To:       to.UTC(),
		Total:    len(logs),
		ByAction: map[string]int{},
		ByActor:  []ActorActivity{},
		ByDay:    []DayActivity{},
	}
	actors := map[string]*ActorActivity{}
	days := map[string]int{}
	for _, l := range logs {
		report.ByAction[l.Action]++
		a, ok := actors[l.ActorID]
		if !ok {
			a = &ActorActivity{ActorID: l.ActorID, ActorRole: l.ActorRole}
			actors[l.ActorID] = a
		}
		a.Count++
		days[l.CreatedAt.UTC().Format("2006-01-02")]++

		at := l.CreatedAt
		if report.FirstEventAt == nil || at.Before(*report.FirstEventAt) {
			report.FirstEventAt = &at
		}
		if report.LastEventAt == nil || at.After(*report.LastEventAt) {
			report.LastEventAt = &at
		}
	}

	for _, a := range actors {
		report.ByActor = append(report.ByActor, *a)
	}
	sort.Slice(report.ByActor, func(i, j int) bool {
		if report.ByActor[i].Count != report.ByActor[j].Count {
			return report.ByActor[i].Count > report.ByActor[j].Count
		}
		return report.ByActor[i].ActorID < report.ByActor[j].ActorID
	})
	for day, n := range days {
		report.ByDay = append(report.ByDay, DayActivity{Day: day, Count: n})
	}
	sort.Slice(report.ByDay, func(i, j int) bool { return report.ByDay[i].Day < report.ByDay[j].Day })
	return report, nil
}

func validatePeriod(from, to time.Time) error {
	if from.IsZero() || to.IsZero() || to.Before(from) || to.Sub(from) > MaxAuditPeriod {
		return ErrInvalidPeriod
	}
	return nil
}

func matches(want, got string) bool {
	want = strings.TrimSpace(want)
	return want == "" || want == got
}
