package nav_test

import (
	"testing"

	"github.com/code19m/errx"
	"github.com/rise-and-shine/userbook/logger"
	"github.com/rise-and-shine/userbook/nav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateDetailRoute(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "user_detail/7", nav.CreateDetailRoute(7))
	assert.Equal(t, "user_detail/-3", nav.CreateDetailRoute(-3))
}

func TestMatch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		route       string
		wantPattern string
		wantArgs    nav.Args
		wantErr     bool
	}{
		{
			name:        "start destination",
			route:       "user_list",
			wantPattern: nav.RouteUserList,
			wantArgs:    nav.Args{},
		},
		{
			name:        "detail with numeric id",
			route:       "user_detail/42",
			wantPattern: nav.RouteUserDetail,
			wantArgs:    nav.Args{"userId": "42"},
		},
		{
			name:        "detail keeps non-numeric id verbatim",
			route:       "user_detail/abc",
			wantPattern: nav.RouteUserDetail,
			wantArgs:    nav.Args{"userId": "abc"},
		},
		{
			name:    "detail without id",
			route:   "user_detail/",
			wantErr: true,
		},
		{
			name:    "unknown route",
			route:   "settings",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			dest, err := nav.Match(tt.route)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errx.IsCodeIn(err, nav.CodeRouteNotFound))
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantPattern, dest.Pattern)
			assert.Equal(t, tt.route, dest.Route)
			assert.Equal(t, tt.wantArgs, dest.Args)
		})
	}
}

func TestParseUserID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		args   nav.Args
		wantID int
		wantOK bool
	}{
		{name: "absent", args: nav.Args{}, wantOK: false},
		{name: "nil args", args: nil, wantOK: false},
		{name: "numeric", args: nav.Args{"userId": "5"}, wantID: 5, wantOK: true},
		{name: "negative", args: nav.Args{"userId": "-1"}, wantID: -1, wantOK: true},
		{name: "letters", args: nav.Args{"userId": "abc"}, wantOK: false},
		{name: "empty", args: nav.Args{"userId": ""}, wantOK: false},
		{name: "decimal", args: nav.Args{"userId": "1.0"}, wantOK: false},
		{name: "hex", args: nav.Args{"userId": "0x10"}, wantOK: false},
		{name: "overflow", args: nav.Args{"userId": "99999999999"}, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			id, ok := nav.ParseUserID(tt.args)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantID, id)
		})
	}
}

func TestNavigator(t *testing.T) {
	t.Parallel()

	n, err := nav.NewNavigator(nav.RouteUserList, logger.NewNop())
	require.NoError(t, err)
	assert.Equal(t, 1, n.Depth())
	assert.Equal(t, nav.RouteUserList, n.Current().Pattern)

	// Back at the start destination is a no-op.
	assert.False(t, n.PopBackStack())
	assert.Equal(t, 1, n.Depth())

	require.NoError(t, n.Handle(nav.SelectUser{UserID: 3}))
	assert.Equal(t, 2, n.Depth())
	assert.Equal(t, "user_detail/3", n.Current().Route)
	assert.Equal(t, nav.Args{"userId": "3"}, n.Current().Args)

	require.NoError(t, n.Handle(nav.Back{}))
	assert.Equal(t, 1, n.Depth())
	assert.Equal(t, nav.RouteUserList, n.Current().Route)

	err = n.Navigate("nowhere")
	require.Error(t, err)
	assert.Equal(t, 1, n.Depth())
}

func TestNewNavigator_UnknownStart(t *testing.T) {
	t.Parallel()

	_, err := nav.NewNavigator("nowhere", logger.NewNop())
	require.Error(t, err)
}
