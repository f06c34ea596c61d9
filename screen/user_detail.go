package screen

import (
	"context"
	"strconv"

	"github.com/rise-and-shine/userbook/domain"
	"github.com/rise-and-shine/userbook/meta"
	"github.com/rise-and-shine/userbook/nav"
	"github.com/rise-and-shine/userbook/ucdef"
)

const nameUserDetail = "user_detail"

// UserDetail is the controller of the user detail screen.
type UserDetail struct {
	*controller[int, domain.User]

	userID int
	valid  bool
}

// NewUserDetail returns a detail controller for the user named by the userId route
// parameter. When the parameter is absent or not an integer the controller stays in
// Loading and the use case is never called.
func NewUserDetail(
	ctx context.Context,
	getUserDetail ucdef.Query[int, domain.User],
	args nav.Args,
	opts ...Option,
) *UserDetail {
	o := buildOptions(opts)
	if o.route == "" {
		o.route = nav.RouteUserDetail
	}

	s := &UserDetail{controller: newController(ctx, nameUserDetail, getUserDetail, o)}

	id, ok := nav.ParseUserID(args)
	if !ok {
		raw, present := args.Get(nav.ArgUserID)
		s.log.With("user_id", raw, "present", present).Warn("invalid user id, nothing to fetch")
		return s
	}

	s.userID, s.valid = id, true
	s.fetch(id, map[meta.ContextKey]string{meta.RequestUserID: strconv.Itoa(id)})
	return s
}

// UserID returns the parsed user id and whether the route parameter was valid.
func (s *UserDetail) UserID() (int, bool) {
	return s.userID, s.valid
}

// Back returns the navigation event for leaving the screen.
func (s *UserDetail) Back() nav.Event {
	return nav.Back{}
}
