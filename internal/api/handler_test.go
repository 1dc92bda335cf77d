package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/golang-jwt/jwt/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/samandr77/microservices/settlement/internal/api"
	"github.com/samandr77/microservices/settlement/internal/entity"
	"github.com/samandr77/microservices/settlement/internal/mocks"
	"github.com/samandr77/microservices/settlement/internal/service"
)

const secret = "test-secret"

type apiTester struct {
	serviceMock *mocks.MockService
	server      *httptest.Server
}

func newAPITester(t *testing.T, authEnabled bool) *apiTester {
	t.Helper()

	ctrl := gomock.NewController(t)
	serviceMock := mocks.NewMockService(ctrl)

	router := api.NewRouter(api.NewHandler(serviceMock), api.NewMiddleware(authEnabled, secret))

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return &apiTester{
		serviceMock: serviceMock,
		server:      server,
	}
}

func (a *apiTester) post(t *testing.T, token string) *http.Response {
	t.Helper()

	req, err := http.NewRequest(http.MethodPost, a.server.URL+"/api/settlements", strings.NewReader(""))
	require.NoError(t, err)

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)

	t.Cleanup(func() { resp.Body.Close() })

	return resp
}

func signToken(t *testing.T, method jwt.SigningMethod, key any) string {
	t.Helper()

	token := jwt.NewWithClaims(method, jwt.RegisteredClaims{
		Subject:   "scheduler",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})

	s, err := token.SignedString(key)
	require.NoError(t, err)

	return s
}

func TestHandler_Health(t *testing.T) {
	t.Parallel()

	a := newAPITester(t, true)

	resp, err := http.Get(a.server.URL + "/api/health")
	require.NoError(t, err)

	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NotEmpty(t, resp.Header.Get("X-Request-Id"))

	var body api.HealthResponse

	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, "ok", body.Status)
}

func TestHandler_TriggerSettlement(t *testing.T) {
	t.Parallel()

	a := newAPITester(t, true)

	runID := uuid.Must(uuid.NewV4())

	a.serviceMock.EXPECT().Run(gomock.Any()).Return(service.Report{
		RunID: runID,
		Stage: service.StageDone,
		Statuses: []entity.PaidPaymentStatus{
			{
				OrganizationID: "org1",
				InvoiceID:      "inv1",
				Currency:       entity.CurrencyUSD,
				Payment:        entity.PendingPayment{ID: "p1", Amount: decimal.NewFromInt(70)},
				Status:         entity.SettlementStatusPaid,
			},
		},
	}, nil)

	resp := a.post(t, signToken(t, jwt.SigningMethodHS256, []byte(secret)))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		RunID    uuid.UUID                  `json:"runId"`
		Stage    service.Stage              `json:"stage"`
		Statuses []entity.PaidPaymentStatus `json:"statuses"`
		Totals   []service.Total            `json:"totals"`
	}

	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, runID, body.RunID)
	require.Equal(t, service.StageDone, body.Stage)
	require.Len(t, body.Statuses, 1)
	require.Equal(t, "p1", body.Statuses[0].Payment.ID)
	require.Len(t, body.Totals, 1)
	require.Equal(t, 1, body.Totals[0].Count)
	require.Equal(t, "70", body.Totals[0].Amount.String())
}

func TestHandler_TriggerSettlement_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		wantCode int
		wantKind string
	}{
		{
			name:     "settings not found",
			err:      fmt.Errorf("get organization %q settings: %w", "org1", entity.NotFoundError(errors.New("404"))),
			wantCode: http.StatusNotFound,
			wantKind: "NotFoundError",
		},
		{
			name:     "network",
			err:      entity.NetworkError(errors.New("connection refused")),
			wantCode: http.StatusServiceUnavailable,
			wantKind: "NetworkError",
		},
		{
			name:     "http",
			err:      fmt.Errorf("pay payment: %w", &entity.HTTPError{Status: http.StatusInternalServerError, StatusText: "Internal Server Error"}),
			wantCode: http.StatusBadGateway,
			wantKind: "HttpError",
		},
		{
			name:     "parse",
			err:      entity.ParseError(errors.New("not a valid invoice")),
			wantCode: http.StatusBadGateway,
			wantKind: "ParseError",
		},
		{
			name:     "foreign",
			err:      errors.New("boom"),
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			a := newAPITester(t, false)

			a.serviceMock.EXPECT().Run(gomock.Any()).Return(service.Report{Stage: service.StageFailed}, tt.err)

			resp := a.post(t, "")
			require.Equal(t, tt.wantCode, resp.StatusCode)

			var body api.ErrorResponse

			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			require.Equal(t, "settlement failed", body.Message)
			require.Equal(t, tt.wantKind, body.Kind)
			require.Equal(t, tt.err.Error(), body.Description)
		})
	}
}

func TestMiddleware_BearerAuth(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		token func(t *testing.T) string
	}{
		{
			name:  "missing token",
			token: func(*testing.T) string { return "" },
		},
		{
			name:  "wrong secret",
			token: func(t *testing.T) string { return signToken(t, jwt.SigningMethodHS256, []byte("other")) },
		},
		{
			name:  "wrong algorithm",
			token: func(t *testing.T) string { return signToken(t, jwt.SigningMethodHS512, []byte(secret)) },
		},
		{
			name: "expired",
			token: func(t *testing.T) string {
				token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
					ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
				})

				s, err := token.SignedString([]byte(secret))
				require.NoError(t, err)

				return s
			},
		},
		{
			name:  "garbage",
			token: func(*testing.T) string { return "not-a-jwt" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			a := newAPITester(t, true)

			resp := a.post(t, tt.token(t))
			require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		})
	}
}

func TestMiddleware_Recover(t *testing.T) {
	t.Parallel()

	a := newAPITester(t, false)

	a.serviceMock.EXPECT().Run(gomock.Any()).DoAndReturn(func(context.Context) (service.Report, error) {
		panic("unexpected")
	}).AnyTimes()

	resp := a.post(t, "")
	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}
