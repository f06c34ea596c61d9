package screen

import (
	"context"

	"github.com/rise-and-shine/userbook/domain"
	"github.com/rise-and-shine/userbook/nav"
	"github.com/rise-and-shine/userbook/ucdef"
)

const nameUserList = "user_list"

// UserList is the controller of the user list screen.
type UserList struct {
	*controller[ucdef.NoInput, []domain.User]
}

// NewUserList returns a list controller that has already started its first fetch.
// ctx bounds the lifetime of the screen.
func NewUserList(
	ctx context.Context,
	getUsers ucdef.Query[ucdef.NoInput, []domain.User],
	opts ...Option,
) *UserList {
	o := buildOptions(opts)
	if o.route == "" {
		o.route = nav.RouteUserList
	}

	s := &UserList{controller: newController(ctx, nameUserList, getUsers, o)}
	s.load()
	return s
}

// Retry re-enters Loading and fetches again. Earlier fetches still in flight are not
// cancelled; the last one to complete decides the state.
func (s *UserList) Retry() {
	s.log.Info("retry requested")
	s.load()
}

// Select returns the navigation event for opening the user with the given id.
func (s *UserList) Select(userID int) nav.Event {
	return nav.SelectUser{UserID: userID}
}

func (s *UserList) load() {
	s.fetch(ucdef.NoInput{}, nil)
}
