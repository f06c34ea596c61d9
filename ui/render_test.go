package ui_test

import (
	"bytes"
	"testing"

	"github.com/rise-and-shine/userbook/domain"
	"github.com/rise-and-shine/userbook/ui"
	"github.com/rise-and-shine/userbook/viewstate"
	"github.com/stretchr/testify/assert"
)

func leanne() domain.User {
	return domain.User{
		ID:      1,
		Name:    "Leanne Graham",
		Email:   "Sincere@april.biz",
		Phone:   "1-770-736-8031 x56442",
		Website: "hildegard.org",
		Company: domain.Company{Name: "Romaguera-Crona", CatchPhrase: "Multi-layered client-server neural-net"},
		Address: domain.Address{Street: "Kulas Light", City: "Gwenborough", Zipcode: "92998-3874"},
	}
}

func TestRenderer_UserList(t *testing.T) {
	t.Parallel()

	ervin := domain.User{ID: 2, Name: "Ervin Howell", Email: "Shanna@melissa.tv", Company: domain.Company{Name: "Deckow-Crist"}}

	tests := []struct {
		name  string
		state viewstate.State[[]domain.User]
		want  string
	}{
		{
			name:  "loading",
			state: viewstate.Loading[[]domain.User](),
			want:  "Users\n\n  Loading...\n",
		},
		{
			name:  "error offers retry",
			state: viewstate.Error[[]domain.User]("Network error"),
			want:  "Users\n\n  Network error\n  [r] Retry\n",
		},
		{
			name:  "empty",
			state: viewstate.Success([]domain.User{}),
			want:  "Users\n\n  No users\n",
		},
		{
			name:  "users",
			state: viewstate.Success([]domain.User{leanne(), ervin}),
			want: "Users\n\n" +
				"  1. Leanne Graham\n" +
				"     Sincere@april.biz\n" +
				"     Romaguera-Crona\n" +
				"  2. Ervin Howell\n" +
				"     Shanna@melissa.tv\n" +
				"     Deckow-Crist\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			ui.NewRenderer(&buf, true).UserList(tt.state)

			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestRenderer_UserDetail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		state viewstate.State[domain.User]
		want  string
	}{
		{
			name:  "loading",
			state: viewstate.Loading[domain.User](),
			want:  "User Details\n\n  Loading...\n",
		},
		{
			name:  "error",
			state: viewstate.Error[domain.User]("Unknown error occurred"),
			want:  "User Details\n\n  Unknown error occurred\n",
		},
		{
			name:  "user",
			state: viewstate.Success(leanne()),
			want: "User Details\n\n" +
				"  Leanne Graham\n\n" +
				"  Contact Information\n" +
				"    Email:   Sincere@april.biz\n" +
				"    Phone:   1-770-736-8031 x56442\n" +
				"    Website: hildegard.org\n\n" +
				"  Company\n" +
				"    Name:   Romaguera-Crona\n" +
				"    Slogan: Multi-layered client-server neural-net\n\n" +
				"  Address\n" +
				"    Street:  Kulas Light\n" +
				"    City:    Gwenborough\n" +
				"    Zipcode: 92998-3874\n\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			ui.NewRenderer(&buf, true).UserDetail(tt.state)

			assert.Equal(t, tt.want, buf.String())
		})
	}
}
