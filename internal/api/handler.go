package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/samandr77/microservices/settlement/internal/entity"
	"github.com/samandr77/microservices/settlement/internal/service"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=handler.go -destination=../mocks/handler.go -package=mocks -typed

type Service interface {
	Run(ctx context.Context) (service.Report, error)
}

type Handler struct {
	s Service
}

func NewHandler(s Service) *Handler {
	return &Handler{
		s: s,
	}
}

type HealthResponse struct {
	Status string `json:"status"`
}

func (h *Handler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	SendJSON(r.Context(), w, http.StatusOK, HealthResponse{Status: "ok"})
}

type SettlementResponse struct {
	service.Report
	Totals []service.Total `json:"totals"`
}

// TriggerSettlement runs one settlement pass and answers with its report.
func (h *Handler) TriggerSettlement(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	report, err := h.s.Run(ctx)
	if err != nil {
		code := statusCode(err)
		kind := entity.Kind(err)

		slog.ErrorContext(ctx, "settlement failed", "kind", kind, "error", err)
		SendJSON(ctx, w, code, ErrorResponse{
			Message:     "settlement failed",
			Kind:        kind,
			Description: err.Error(),
		})

		return
	}

	SendJSON(ctx, w, http.StatusOK, SettlementResponse{
		Report: report,
		Totals: report.Totals(),
	})
}

func statusCode(err error) int {
	switch {
	case entity.Is(err, entity.ErrNotFound):
		return http.StatusNotFound
	case entity.Is(err, entity.ErrNetwork):
		return http.StatusServiceUnavailable
	case entity.Is(err, entity.ErrHTTP), entity.Is(err, entity.ErrParse):
		return http.StatusBadGateway
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}
