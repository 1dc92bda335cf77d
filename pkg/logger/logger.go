package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
)

type ctxKey int8

const (
	ctxKeyRequestID ctxKey = iota
	ctxKeyRunID
	ctxKeyOrganizationID
	ctxKeyInvoiceID
)

type Handler struct {
	slog.Handler
}

func (h *Handler) Handle(ctx context.Context, record slog.Record) error {
	if v, ok := ctx.Value(ctxKeyRequestID).(string); ok {
		record.Add("request_id", v)
	}

	if v, ok := ctx.Value(ctxKeyRunID).(string); ok {
		record.Add("run_id", v)
	}

	if v, ok := ctx.Value(ctxKeyOrganizationID).(string); ok {
		record.Add("organization_id", v)
	}

	if v, ok := ctx.Value(ctxKeyInvoiceID).(string); ok {
		record.Add("invoice_id", v)
	}

	return h.Handler.Handle(ctx, record)
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &Handler{h.Handler.WithAttrs(attrs)}
}

func (h *Handler) WithGroup(name string) slog.Handler {
	return &Handler{h.Handler.WithGroup(name)}
}

func New(level, format string) (*slog.Logger, error) {
	return NewWithWriter(os.Stdout, level, format)
}

func NewWithWriter(w io.Writer, level, format string) (*slog.Logger, error) {
	var sLevel slog.Level

	err := sLevel.UnmarshalText([]byte(level))
	if err != nil {
		return nil, err
	}

	opts := &slog.HandlerOptions{
		Level: sLevel,
	}

	var h slog.Handler = slog.NewJSONHandler(w, opts)
	if format == "text" {
		h = slog.NewTextHandler(w, opts)
	}

	l := slog.New(&Handler{h})

	slog.SetDefault(l)

	return l, nil
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, ctxKeyRequestID, requestID)
}

func WithRunID(ctx context.Context, runID string) context.Context {
	return context.WithValue(ctx, ctxKeyRunID, runID)
}

func WithOrganizationID(ctx context.Context, organizationID string) context.Context {
	return context.WithValue(ctx, ctxKeyOrganizationID, organizationID)
}

func WithInvoiceID(ctx context.Context, invoiceID string) context.Context {
	return context.WithValue(ctx, ctxKeyInvoiceID, invoiceID)
}

func RequestIDFromCtx(ctx context.Context) string {
	requestID, ok := ctx.Value(ctxKeyRequestID).(string)
	if !ok {
		return ""
	}

	return requestID
}

func RunIDFromCtx(ctx context.Context) string {
	runID, ok := ctx.Value(ctxKeyRunID).(string)
	if !ok {
		return ""
	}

	return runID
}
