package tracing_test

import (
	"strings"
	"testing"

	"github.com/rise-and-shine/userbook/tracing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitGlobalTracer_Disabled(t *testing.T) {
	shutdown, err := tracing.InitGlobalTracer(tracing.Config{}, "userbook", "test")
	require.NoError(t, err)
	require.NoError(t, shutdown())
}

func TestGetStartingTraceID_WithoutSpan(t *testing.T) {
	first := tracing.GetStartingTraceID(t.Context())
	second := tracing.GetStartingTraceID(t.Context())

	assert.True(t, strings.HasPrefix(first, "man-"))
	assert.NotEqual(t, first, second)
}
