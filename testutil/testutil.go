package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/kendall-kelly/freelance-api/config"
	"github.com/kendall-kelly/freelance-api/store"
)

// RequireTestEnvironment ensures that tests are running in the test environment.
// It fails the test immediately if GO_ENV is set to anything other than "test";
// an unset GO_ENV is switched to "test".
func RequireTestEnvironment(t *testing.T) {
	t.Helper()

	env := os.Getenv("GO_ENV")
	if env == "" {
		MustSetTestEnvironment(t)
		return
	}
	if env != "test" {
		t.Fatalf("SAFETY CHECK FAILED: Tests must run with GO_ENV=test to prevent data loss. Current GO_ENV=%q. Set GO_ENV=test before running tests.", env)
	}
}

// MustSetTestEnvironment sets GO_ENV to test and fails if it cannot be set.
func MustSetTestEnvironment(t *testing.T) {
	t.Helper()

	if err := os.Setenv("GO_ENV", "test"); err != nil {
		t.Fatalf("Failed to set GO_ENV=test: %v", err)
	}

	if os.Getenv("GO_ENV") != "test" {
		t.Fatal("Failed to verify GO_ENV=test")
	}
}

// NewTestStore returns a migrated store backed by a private in-memory sqlite database.
// The database is closed when the test finishes.
func NewTestStore(t *testing.T) *store.Store {
	t.Helper()
	RequireTestEnvironment(t)

	db, err := config.ConnectDatabase("sqlite://:memory:", false)
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}

	st := store.New(db)
	t.Cleanup(func() {
		if err := st.Close(); err != nil {
			t.Errorf("Failed to close test database: %v", err)
		}
	})

	if err := st.Migrate(); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}
	return st
}

// DoJSON sends a request with an optional JSON body through handler and records the response.
// A string body is sent verbatim so tests can submit malformed JSON.
func DoJSON(t *testing.T, handler http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var payload []byte
	switch b := body.(type) {
	case nil:
	case string:
		payload = []byte(b)
	default:
		var err error
		payload, err = json.Marshal(b)
		if err != nil {
			t.Fatalf("Failed to marshal request body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	return w
}

// DecodeJSON unmarshals a recorded response body into v
func DecodeJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()

	if err := json.Unmarshal(w.Body.Bytes(), v); err != nil {
		t.Fatalf("Response is not valid JSON: %v\nbody: %s", err, w.Body.String())
	}
}
