package apperr_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"scribe/internal/apperr"
)

func TestHTTPStatus(t *testing.T) {
	cases := []struct {
		err  *apperr.Error
		want int
	}{
		{apperr.Validation("missing input"), http.StatusBadRequest},
		{apperr.NotFound("no such record"), http.StatusNotFound},
		{apperr.Configuration("missing key"), http.StatusInternalServerError},
		{apperr.Transcription("remote failed", nil), http.StatusInternalServerError},
		{apperr.Persistence("write failed", nil), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		if got := tc.err.HTTPStatus(); got != tc.want {
			t.Errorf("%v: expected status %d, got %d", tc.err, tc.want, got)
		}
	}
}

func TestIsKind_ThroughWrapping(t *testing.T) {
	base := apperr.Persistence("write failed", errors.New("driver: broken pipe"))
	wrapped := fmt.Errorf("insert: %w", base)

	if !apperr.IsKind(wrapped, apperr.KindPersistence) {
		t.Fatal("expected persistence kind through wrapping")
	}
	if apperr.IsKind(wrapped, apperr.KindValidation) {
		t.Fatal("kind must not match a different kind")
	}
	if apperr.IsKind(errors.New("plain"), apperr.KindPersistence) {
		t.Fatal("plain errors carry no kind")
	}
}

func TestError_IncludesCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := apperr.Transcription("failed to reach transcription service", cause)

	if !errors.Is(err, cause) {
		t.Fatal("cause should be reachable via errors.Is")
	}
	if err.Message != "failed to reach transcription service" {
		t.Fatalf("client-safe message changed: %q", err.Message)
	}
}
