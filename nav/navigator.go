package nav

import (
	"sync"

	"github.com/code19m/errx"
	"github.com/rise-and-shine/userbook/logger"
)

// Event is a navigation request emitted by a screen.
type Event interface {
	isEvent()
}

// SelectUser is emitted by the list screen when a user is picked.
type SelectUser struct {
	UserID int
}

// Back is emitted by the detail screen to return to the previous screen.
type Back struct{}

func (SelectUser) isEvent() {}
func (Back) isEvent()       {}

// Navigator keeps the back stack of visited destinations. It is safe for concurrent use.
type Navigator struct {
	mu    sync.Mutex
	stack []Destination
	log   logger.Logger
}

// NewNavigator returns a navigator positioned at the start route.
func NewNavigator(start string, log logger.Logger) (*Navigator, error) {
	dest, err := Match(start)
	if err != nil {
		return nil, errx.Wrap(err)
	}

	return &Navigator{
		stack: []Destination{dest},
		log:   log.Named("nav"),
	}, nil
}

// Navigate pushes route onto the back stack.
func (n *Navigator) Navigate(route string) error {
	dest, err := Match(route)
	if err != nil {
		return errx.Wrap(err)
	}

	n.mu.Lock()
	n.stack = append(n.stack, dest)
	depth := len(n.stack)
	n.mu.Unlock()

	n.log.With("route", route, "depth", depth).Debug("navigated")
	return nil
}

// PopBackStack removes the current destination. It reports false, leaving the stack
// untouched, when the current destination is the start one.
func (n *Navigator) PopBackStack() bool {
	n.mu.Lock()
	defer n.mu.Unlock()

	if len(n.stack) <= 1 {
		return false
	}
	n.stack = n.stack[:len(n.stack)-1]
	return true
}

// Current returns the destination on top of the back stack.
func (n *Navigator) Current() Destination {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.stack[len(n.stack)-1]
}

// Depth returns the number of destinations on the back stack.
func (n *Navigator) Depth() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.stack)
}

// Handle applies a screen event to the back stack.
func (n *Navigator) Handle(ev Event) error {
	switch e := ev.(type) {
	case SelectUser:
		return n.Navigate(CreateDetailRoute(e.UserID))
	case Back:
		n.PopBackStack()
		return nil
	default:
		return errx.New("unknown navigation event", errx.WithDetails(errx.D{"event": e}))
	}
}
