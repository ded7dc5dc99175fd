package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

// injectLogger puts a zerolog.Logger into the request context the same way
// withTraceID does, so withLogging finds it via logger.FromRequest.
func injectLogger(r *http.Request, l zerolog.Logger) *http.Request {
	return r.WithContext(l.WithContext(r.Context()))
}

func TestWithLogging_TableTest(t *testing.T) {
	tests := []struct {
		name             string
		method           string
		path             string
		handlerStatus    int
		handlerResponse  string
		checkLogContains []string
	}{
		{
			name:             "GET 200",
			method:           http.MethodGet,
			path:             "/api/version",
			handlerStatus:    http.StatusOK,
			handlerResponse:  "1.0.0",
			checkLogContains: []string{`"uri":"/api/version"`, `"method":"GET"`, `"status":200`, `"size":5`},
		},
		{
			name:             "POST 401",
			method:           http.MethodPost,
			path:             "/api/auth/verify",
			handlerStatus:    http.StatusUnauthorized,
			checkLogContains: []string{`"method":"POST"`, `"status":401`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			h := newTestHandler()

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.handlerStatus)
				if tt.handlerResponse != "" {
					_, _ = w.Write([]byte(tt.handlerResponse))
				}
			})

			req := httptest.NewRequest(tt.method, tt.path, nil)
			req = injectLogger(req, zerolog.New(&buf))
			rr := httptest.NewRecorder()

			h.withLogging(next).ServeHTTP(rr, req)

			assert.Equal(t, tt.handlerStatus, rr.Code)
			for _, want := range tt.checkLogContains {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}
