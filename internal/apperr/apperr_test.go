package apperr

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"
)

func TestKindStatus(t *testing.T) {
	cases := map[Kind]int{
		KindValidation:       http.StatusBadRequest,
		KindAuthentication:   http.StatusUnauthorized,
		KindAuthorization:    http.StatusForbidden,
		KindNotFound:         http.StatusNotFound,
		KindConflict:         http.StatusConflict,
		KindExternalProvider: http.StatusBadGateway,
		KindPersistence:      http.StatusInternalServerError,
	}
	for k, want := range cases {
		if got := k.Status(); got != want {
			t.Errorf("%s: expected %d, got %d", k, want, got)
		}
	}
}

func TestKindOfWrapped(t *testing.T) {
	err := fmt.Errorf("load: %w", NotFound("menu not found"))
	if KindOf(err) != KindNotFound {
		t.Fatalf("expected not_found, got %s", KindOf(err))
	}
	if KindOf(errors.New("boom")) != KindPersistence {
		t.Fatal("expected unclassified errors to be persistence")
	}
}

func TestFromDB(t *testing.T) {
	if !Is(FromDB(pgx.ErrNoRows, "missing", "dup"), KindNotFound) {
		t.Error("expected ErrNoRows to map to not_found")
	}
	if !Is(FromDB(&pgconn.PgError{Code: "23505"}, "missing", "dup"), KindConflict) {
		t.Error("expected unique violation to map to conflict")
	}
	if !Is(FromDB(errors.New("conn reset"), "missing", "dup"), KindPersistence) {
		t.Error("expected other errors to map to persistence")
	}
	if FromDB(nil, "", "") != nil {
		t.Error("expected nil to stay nil")
	}
}

func TestRespondHidesPersistenceCause(t *testing.T) {
	gin.SetMode(gin.TestMode)
	log := logrus.New()
	log.SetOutput(io.Discard)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	Respond(c, log, errors.New("pq: password authentication failed"))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	var body map[string]string
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if body["error"] != "internal server error" {
		t.Fatalf("expected generic message, got %q", body["error"])
	}
}

func TestRespondValidation(t *testing.T) {
	gin.SetMode(gin.TestMode)
	log := logrus.New()
	log.SetOutput(io.Discard)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	Respond(c, log, Validation("date is required"))

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	var body map[string]string
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if body["error"] != "date is required" {
		t.Fatalf("unexpected message %q", body["error"])
	}
}
