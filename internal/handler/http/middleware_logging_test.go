package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mkaraca/go-task-keeper/internal/service"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

// newBufferLogger creates a zerolog logger writing to buf and injects it into
// the request context the same way withTraceID does.
func requestWithBufferLogger(method, path string, buf *bytes.Buffer) *http.Request {
	req := httptest.NewRequest(method, path, nil)
	l := zerolog.New(buf)
	return req.WithContext(l.WithContext(req.Context()))
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
			name:            "GET 200",
			method:          http.MethodGet,
			path:            "/api/tasks",
			handlerStatus:   http.StatusOK,
			handlerResponse: "[]",
			checkLogContains: []string{
				`"method":"GET"`,
				`"uri":"/api/tasks"`,
				`"status":200`,
				`"duration":`,
				`"size":2`,
			},
		},
		{
			name:            "POST 201",
			method:          http.MethodPost,
			path:            "/api/tasks",
			handlerStatus:   http.StatusCreated,
			handlerResponse: "created",
			checkLogContains: []string{
				`"method":"POST"`,
				`"uri":"/api/tasks"`,
				`"status":201`,
			},
		},
		{
			name:          "404 without body",
			method:        http.MethodGet,
			path:          "/api/unknown",
			handlerStatus: http.StatusNotFound,
			checkLogContains: []string{
				`"status":404`,
				`"size":0`,
			},
		},
	}

	h := newTestHandler(&service.Services{})

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.handlerStatus)
				if tt.handlerResponse != "" {
					w.Write([]byte(tt.handlerResponse))
				}
			})

			middleware := h.withLogging(next)
			req := requestWithBufferLogger(tt.method, tt.path, &buf)
			rr := httptest.NewRecorder()

			middleware.ServeHTTP(rr, req)

			assert.Equal(t, tt.handlerStatus, rr.Code)
			logged := buf.String()
			for _, fragment := range tt.checkLogContains {
				assert.Contains(t, logged, fragment)
			}
		})
	}
}

// A handler that writes without calling WriteHeader is logged as 200.
func TestWithLogging_ImplicitStatusOK(t *testing.T) {
	var buf bytes.Buffer
	h := newTestHandler(&service.Services{})

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("hello"))
	})

	middleware := h.withLogging(next)
	req := requestWithBufferLogger(http.MethodGet, "/implicit", &buf)
	rr := httptest.NewRecorder()

	middleware.ServeHTTP(rr, req)

	assert.Contains(t, buf.String(), `"status":200`)
	assert.Contains(t, buf.String(), `"size":5`)
}

func TestResponseWriter_SecondWriteHeaderIgnored(t *testing.T) {
	rr := httptest.NewRecorder()
	lw := &responseWriter{ResponseWriter: rr}

	lw.WriteHeader(http.StatusNotFound)
	lw.WriteHeader(http.StatusOK) // ignored

	assert.Equal(t, http.StatusNotFound, lw.status)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestResponseWriter_SizeAccumulates(t *testing.T) {
	rr := httptest.NewRecorder()
	lw := &responseWriter{ResponseWriter: rr}

	lw.Write([]byte("abc"))
	lw.Write([]byte("defg"))

	assert.Equal(t, 7, lw.size)
	assert.Equal(t, http.StatusOK, lw.status)
}
