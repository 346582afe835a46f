package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/quote-service/internal/platform/logging"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// withLogger installs a JSON logger writing to buf as the request logger.
func withLogger(buf *bytes.Buffer) gin.HandlerFunc {
	logger := slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return func(c *gin.Context) {
		c.Request = c.Request.WithContext(logging.WithContext(c.Request.Context(), logger))
		c.Next()
	}
}

func logLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()

	var lines []map[string]any
	for _, raw := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if raw == "" {
			continue
		}

		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(raw), &entry))
		lines = append(lines, entry)
	}

	return lines
}

func TestIDMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		middleware gin.HandlerFunc
		header     string
		logKey     string
		get        func(*gin.Context) string
	}{
		{"request id", RequestID(), HeaderRequestID, "request_id", GetRequestID},
		{"correlation id", CorrelationID(), HeaderCorrelationID, "correlation_id", GetCorrelationID},
	}

	for _, tt := range tests {
		t.Run(tt.name+" generated", func(t *testing.T) {
			var buf bytes.Buffer
			var captured string

			router := gin.New()
			router.Use(withLogger(&buf), tt.middleware)
			router.GET("/random/quotes", func(c *gin.Context) {
				captured = tt.get(c)
				logging.FromContext(c.Request.Context()).Info("handled")
				c.Status(http.StatusOK)
			})

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/random/quotes", nil))

			id := w.Header().Get(tt.header)
			_, err := uuid.Parse(id)
			require.NoError(t, err)
			assert.Equal(t, id, captured)

			lines := logLines(t, &buf)
			require.Len(t, lines, 1)
			assert.Equal(t, id, lines[0][tt.logKey])
		})

		t.Run(tt.name+" propagated", func(t *testing.T) {
			router := gin.New()
			router.Use(tt.middleware)
			router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set(tt.header, "upstream-123")

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, "upstream-123", w.Header().Get(tt.header))
		})

		t.Run(tt.name+" oversized replaced", func(t *testing.T) {
			router := gin.New()
			router.Use(tt.middleware)
			router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set(tt.header, strings.Repeat("x", maxIDLength+1))

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			_, err := uuid.Parse(w.Header().Get(tt.header))
			assert.NoError(t, err)
		})
	}
}

func TestGetIDs_WithoutMiddleware(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	assert.Empty(t, GetRequestID(c))
	assert.Empty(t, GetCorrelationID(c))
}

func TestLogging(t *testing.T) {
	tests := []struct {
		name      string
		path      string
		status    int
		wantLevel string
		wantLogs  int
	}{
		{"success logs at info", "/random/quotes", http.StatusOK, "INFO", 2},
		{"client error logs at warn", "/random/quotes", http.StatusConflict, "WARN", 2},
		{"server error logs at error", "/random/quotes", http.StatusInternalServerError, "ERROR", 2},
		{"probe paths are skipped", "/-/live", http.StatusOK, "", 0},
		{"explicit skip paths", "/favicon.ico", http.StatusOK, "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer

			router := gin.New()
			router.Use(withLogger(&buf), Logging("/favicon.ico"))
			router.Any("/*path", func(c *gin.Context) { c.Status(tt.status) })

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path+"?x=1", nil))

			lines := logLines(t, &buf)
			require.Len(t, lines, tt.wantLogs)

			if tt.wantLogs == 0 {
				return
			}

			assert.Equal(t, "request started", lines[0]["msg"])
			assert.Equal(t, "request completed", lines[1]["msg"])
			assert.Equal(t, tt.wantLevel, lines[1]["level"])
			assert.Equal(t, tt.path+"?x=1", lines[1]["path"])
			assert.InDelta(t, tt.status, lines[1]["status"], 0)
		})
	}
}

func TestRecovery(t *testing.T) {
	var buf bytes.Buffer

	router := gin.New()
	router.Use(withLogger(&buf), Recovery())
	router.GET("/boom", func(*gin.Context) { panic("kaboom") })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"success":false,"error":"an internal error occurred"}`, w.Body.String())

	lines := logLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "panic recovered", lines[0]["msg"])
	assert.Equal(t, "kaboom", lines[0]["error"])
	assert.Contains(t, lines[0]["stack"], "runtime/debug.Stack")
}

func TestRecovery_AfterWrite(t *testing.T) {
	router := gin.New()
	router.Use(Recovery())
	router.GET("/partial", func(c *gin.Context) {
		c.String(http.StatusOK, "partial")
		panic("late")
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/partial", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "partial", w.Body.String())
}

func TestDeadline(t *testing.T) {
	var deadline time.Time
	var ok bool

	router := gin.New()
	router.Use(Deadline(time.Second))
	router.GET("/", func(c *gin.Context) {
		deadline, ok = c.Request.Context().Deadline()
		c.Status(http.StatusOK)
	})

	start := time.Now()
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	require.True(t, ok)
	assert.WithinDuration(t, start.Add(time.Second), deadline, 500*time.Millisecond)
}

func TestDeadline_Disabled(t *testing.T) {
	var ok bool

	router := gin.New()
	router.Use(Deadline(0))
	router.GET("/", func(c *gin.Context) {
		_, ok = c.Request.Context().Deadline()
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.False(t, ok)
}

func TestAcceptableID(t *testing.T) {
	tests := []struct {
		id   string
		want bool
	}{
		{"upstream-123", true},
		{"", false},
		{strings.Repeat("x", maxIDLength), true},
		{strings.Repeat("x", maxIDLength+1), false},
		{"has space", false},
		{"line\nbreak", false},
		{"caf\u00e9", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, acceptableID(tt.id), "%q", tt.id)
	}
}

func TestStatusLevel(t *testing.T) {
	assert.Equal(t, slog.LevelInfo, statusLevel(http.StatusCreated))
	assert.Equal(t, slog.LevelWarn, statusLevel(http.StatusBadRequest))
	assert.Equal(t, slog.LevelError, statusLevel(http.StatusServiceUnavailable))
}
