package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

type pingOutput struct {
	Body struct {
		RequestID string `json:"requestId"`
	}
}

func newTestAPI(t *testing.T, buf *bytes.Buffer) humatest.TestAPI {
	t.Helper()

	_, api := humatest.New(t)
	log := slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	api.UseMiddleware(New(log).Middleware())

	huma.Register(api, huma.Operation{
		OperationID: "ping",
		Method:      http.MethodGet,
		Path:        "/ping",
	}, func(ctx context.Context, _ *struct{}) (*pingOutput, error) {
		out := &pingOutput{}
		id, ok := RequestID(ctx)
		if !ok {
			return nil, huma.Error500InternalServerError("request id missing from context")
		}
		out.Body.RequestID = id
		return out, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "fail",
		Method:      http.MethodGet,
		Path:        "/fail",
	}, func(ctx context.Context, _ *struct{}) (*struct{}, error) {
		return nil, huma.Error500InternalServerError("boom")
	})

	return api
}

func decodeLogLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	return entry
}

func TestLogger_Middleware_RequestID(t *testing.T) {
	tests := []struct {
		name     string
		incoming string
	}{
		{name: "incoming id is kept", incoming: "abc-123"},
		{name: "missing id is generated"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			api := newTestAPI(t, &buf)

			var args []any
			if tt.incoming != "" {
				args = append(args, RequestIDHeader+": "+tt.incoming)
			}
			resp := api.Get("/ping", args...)
			require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

			var out pingOutput
			require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &out.Body))
			id := resp.Header().Get(RequestIDHeader)
			assert.Equal(t, id, out.Body.RequestID)

			if tt.incoming != "" {
				assert.Equal(t, tt.incoming, id)
			} else {
				_, err := uuid.Parse(id)
				assert.NoError(t, err)
			}

			entry := decodeLogLine(t, &buf)
			assert.Equal(t, "INFO", entry["level"])
			assert.Equal(t, id, entry["request_id"])
			assert.Equal(t, http.MethodGet, entry["method"])
			assert.Equal(t, "/ping", entry["path"])
			assert.EqualValues(t, http.StatusOK, entry["status"])
			assert.Equal(t, "http_logger", entry["component"])
		})
	}
}

func TestLogger_Middleware_ServerErrorLoggedAsError(t *testing.T) {
	var buf bytes.Buffer
	api := newTestAPI(t, &buf)

	resp := api.Get("/fail")
	require.Equal(t, http.StatusInternalServerError, resp.Code)

	entry := decodeLogLine(t, &buf)
	assert.Equal(t, "ERROR", entry["level"])
	assert.EqualValues(t, http.StatusInternalServerError, entry["status"])
	assert.NotEmpty(t, entry["request_id"])
}

func TestRequestID_Absent(t *testing.T) {
	_, ok := RequestID(context.Background())
	assert.False(t, ok)
}
