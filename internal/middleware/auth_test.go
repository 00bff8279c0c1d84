package middleware

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// stubVerifier resolves "valid-token" to user id 7 and rejects anything else.
type stubVerifier struct{}

func (stubVerifier) Verify(token string) (int64, error) {
	if token == "valid-token" {
		return 7, nil
	}
	return 0, errors.New("bad token")
}

func TestBearerAuth(t *testing.T) {
	tests := []struct {
		name         string
		header       string
		expectedCode int
		expectedMsg  string
	}{
		{
			name:         "missing header",
			header:       "",
			expectedCode: http.StatusUnauthorized,
			expectedMsg:  "Missing Authorization Header",
		},
		{
			name:         "wrong scheme",
			header:       "Basic dXNlcjpwYXNz",
			expectedCode: http.StatusUnauthorized,
			expectedMsg:  "Invalid Authorization Header",
		},
		{
			name:         "empty token",
			header:       "Bearer ",
			expectedCode: http.StatusUnauthorized,
			expectedMsg:  "Invalid Authorization Header",
		},
		{
			name:         "bad token",
			header:       "Bearer tampered",
			expectedCode: http.StatusUnauthorized,
			expectedMsg:  "Invalid or expired token",
		},
		{
			name:         "valid token",
			header:       "Bearer valid-token",
			expectedCode: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotUserID int64
			var handlerCalled bool
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				handlerCalled = true
				gotUserID, _ = UserIDFromContext(r.Context())
			})

			rec := httptest.NewRecorder()
			req := httptest.NewRequest("GET", "/expenses", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			BearerAuth(stubVerifier{})(next).ServeHTTP(rec, req)
			res := rec.Result()
			defer res.Body.Close()

			if res.StatusCode != tt.expectedCode {
				t.Fatalf("expected status %d, got %d", tt.expectedCode, res.StatusCode)
			}

			if tt.expectedCode == http.StatusOK {
				if !handlerCalled {
					t.Fatal("expected the next handler to run")
				}
				if gotUserID != 7 {
					t.Errorf("expected user id 7 in context, got %d", gotUserID)
				}
				return
			}

			if handlerCalled {
				t.Error("next handler must not run on auth failure")
			}
			body, err := io.ReadAll(res.Body)
			if err != nil {
				t.Fatalf("failed to read body: %v", err)
			}
			if !strings.Contains(string(body), tt.expectedMsg) {
				t.Errorf("expected body to contain %q, got %q", tt.expectedMsg, body)
			}
		})
	}
}

func TestUserIDFromContext_Absent(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	if _, ok := UserIDFromContext(req.Context()); ok {
		t.Error("expected no user id on an unauthenticated context")
	}
}
