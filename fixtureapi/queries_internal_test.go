package fixtureapi

import (
	"context"
	"testing"
	"time"

	"github.com/code19m/errx"
	"github.com/rise-and-shine/userbook/dto"
	"github.com/rise-and-shine/userbook/meta"
	"github.com/rise-and-shine/userbook/ucdef"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithDelay(t *testing.T) {
	t.Parallel()

	store, err := NewStore(nil)
	require.NoError(t, err)
	list := &ListUsers{store: store}

	t.Run("non-positive delay leaves the query alone", func(t *testing.T) {
		t.Parallel()

		q := ucdef.Chain[ucdef.NoInput, []dto.UserDTO](list, withDelay[ucdef.NoInput, []dto.UserDTO](0))
		assert.Same(t, list, q)
	})

	t.Run("runs after the delay", func(t *testing.T) {
		t.Parallel()

		q := withDelay[ucdef.NoInput, []dto.UserDTO](5 * time.Millisecond)(list)

		start := time.Now()
		users, ok := q.Execute(t.Context(), ucdef.NoInput{}).Value()

		require.True(t, ok)
		assert.Empty(t, users)
		assert.GreaterOrEqual(t, time.Since(start), 5*time.Millisecond)
		assert.Equal(t, "fixture-list-users", q.OperationID())
	})

	t.Run("canceled request fails", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(t.Context())
		cancel()

		q := withDelay[ucdef.NoInput, []dto.UserDTO](time.Hour)(list)
		info, failed := q.Execute(ctx, ucdef.NoInput{}).Failure()

		require.True(t, failed)
		assert.True(t, errx.IsCodeIn(info.Cause, CodeResponseDelayed))
	})
}

func TestGetUserRequest_Meta(t *testing.T) {
	t.Parallel()

	assert.Equal(t,
		map[meta.ContextKey]string{meta.RequestUserID: "12"},
		GetUserRequest{ID: 12}.Meta(),
	)
}
