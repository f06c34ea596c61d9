package viewstate_test

import (
	"testing"

	"github.com/rise-and-shine/userbook/viewstate"
	"github.com/stretchr/testify/assert"
)

func TestStore_SetAndVersion(t *testing.T) {
	t.Parallel()

	s := viewstate.NewStore(viewstate.Loading[int]())
	assert.True(t, s.Get().IsLoading())
	assert.Equal(t, uint64(0), s.Version())

	// same state is not a transition
	s.Set(viewstate.Loading[int]())
	assert.Equal(t, uint64(0), s.Version())

	s.Set(viewstate.Success(7))
	assert.Equal(t, viewstate.Success(7), s.Get())
	assert.Equal(t, uint64(1), s.Version())

	s.Set(viewstate.Error[int]("boom"))
	assert.Equal(t, viewstate.Error[int]("boom"), s.Get())
	assert.Equal(t, uint64(2), s.Version())
}

func TestStore_Subscribe(t *testing.T) {
	t.Parallel()

	s := viewstate.NewStore(viewstate.Loading[string]())

	ch, unsubscribe := s.Subscribe()
	assert.Equal(t, viewstate.Loading[string](), <-ch)

	s.Set(viewstate.Success("first"))
	assert.Equal(t, viewstate.Success("first"), <-ch)

	// a slow reader only sees the newest state
	s.Set(viewstate.Loading[string]())
	s.Set(viewstate.Error[string]("second"))
	assert.Equal(t, viewstate.Error[string]("second"), <-ch)

	unsubscribe()
	unsubscribe()

	_, open := <-ch
	assert.False(t, open)

	// writes after unsubscribe do not block or panic
	s.Set(viewstate.Success("third"))
	assert.Equal(t, viewstate.Success("third"), s.Get())
}
