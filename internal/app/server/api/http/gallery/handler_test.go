package gallery

import (
	"context"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

func TestHandler_list(t *testing.T) {
	handler := NewHandler(slog.Default(), huma.Middlewares{})

	out, err := handler.list(context.Background(), &struct{}{})
	require.NoError(t, err)
	require.Len(t, out.Body, 6)
	assert.Equal(t, "1", out.Body[0].ID)
	assert.Equal(t, "Receiving the Word", out.Body[0].Title)

	out.Body[0].Title = "changed"
	again, err := handler.list(context.Background(), &struct{}{})
	require.NoError(t, err)
	assert.Equal(t, "Receiving the Word", again.Body[0].Title)
}
