package service

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/samandr77/microservices/settlement/internal/entity"
)

type Stage string

const (
	StageFetching    Stage = "fetching"
	StageSettling    Stage = "settling"
	StageAggregating Stage = "aggregating"
	StageDone        Stage = "done"
	StageFailed      Stage = "failed"
)

// Report describes one settlement run.
type Report struct {
	RunID      uuid.UUID                  `json:"runId"`
	Stage      Stage                      `json:"stage"`
	StartedAt  time.Time                  `json:"startedAt"`
	FinishedAt time.Time                  `json:"finishedAt"`
	Statuses   []entity.PaidPaymentStatus `json:"statuses"`
}

func (r Report) fail(ctx context.Context, err error) (Report, error) {
	slog.ErrorContext(ctx, "settlement run failed",
		"stage", r.Stage,
		"kind", entity.Kind(err),
		"error", err,
	)

	r.Stage = StageFailed
	r.FinishedAt = time.Now()
	r.Statuses = nil

	return r, err
}

// Total sums the charged amounts of one currency and status.
type Total struct {
	Currency entity.Currency         `json:"currency"`
	Status   entity.SettlementStatus `json:"status"`
	Count    int                     `json:"count"`
	Amount   decimal.Decimal         `json:"amount"`
}

// Totals groups the statuses of the run by currency and status, ordered by
// currency then status.
func (r Report) Totals() []Total {
	type key struct {
		currency entity.Currency
		status   entity.SettlementStatus
	}

	totals := make(map[key]Total)

	for _, st := range r.Statuses {
		k := key{currency: st.Currency, status: st.Status}

		t := totals[k]
		t.Currency = st.Currency
		t.Status = st.Status
		t.Count++
		t.Amount = t.Amount.Add(st.Payment.Amount)
		totals[k] = t
	}

	result := make([]Total, 0, len(totals))
	for _, t := range totals {
		result = append(result, t)
	}

	slices.SortFunc(result, func(a, b Total) int {
		if c := strings.Compare(a.Currency.String(), b.Currency.String()); c != 0 {
			return c
		}

		return strings.Compare(a.Status.String(), b.Status.String())
	})

	return result
}
