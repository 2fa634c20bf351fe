package app

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/premek1996/cinema-booking-backend/api"
	"github.com/premek1996/cinema-booking-backend/internal/validator"
	"github.com/shopspring/decimal"
)

func newTestApplication(opts ...func(*Application)) *Application {
	app := &Application{
		validator: validator.NewValidator(),
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(app)
	}

	return app
}

func executeRequest(t *testing.T, app *Application, method, url string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader

	if body != nil {
		if raw, ok := body.(string); ok {
			reader = bytes.NewReader([]byte(raw))
		} else {
			jsonData, err := json.Marshal(body)
			if err != nil {
				t.Fatal(err)
			}
			reader = bytes.NewReader(jsonData)
		}
	}

	r := httptest.NewRequest(method, url, reader)
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	app.Routes().ServeHTTP(w, r)

	return w
}

func decodeResponse[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()

	var resp T
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	return resp
}

func checkErrorMessage(t *testing.T, w *httptest.ResponseRecorder, want string) {
	t.Helper()

	resp := decodeResponse[api.ErrorResponse](t, w)
	if resp.Message != want {
		t.Errorf("error message = %q, want %q", resp.Message, want)
	}
}

func checkValidationIssue(t *testing.T, w *httptest.ResponseRecorder, field, issue string) {
	t.Helper()

	resp := decodeResponse[api.ValidationErrorResponse](t, w)

	for _, vErr := range resp.ValidationErrors {
		if vErr.Field == field && vErr.Issue == issue {
			return
		}
	}

	t.Errorf("validation error (%q: %q) not found in %+v", field, issue, resp.ValidationErrors)
}

var cmpOpts = cmp.Options{
	cmp.Comparer(func(a, b decimal.Decimal) bool { return a.Equal(b) }),
	cmp.Comparer(func(a, b api.Date) bool { return a.Time.Equal(b.Time) }),
}

func ptr[T any](v T) *T {
	return &v
}
