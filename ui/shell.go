package ui

import (
	"bufio"
	"context"
	"io"
	"strconv"
	"strings"

	"github.com/code19m/errx"
	"github.com/rise-and-shine/userbook/logger"
	"github.com/rise-and-shine/userbook/nav"
	"github.com/rise-and-shine/userbook/screen"
)

// Screens opens screen controllers.
type Screens interface {
	OpenUserList(ctx context.Context, route string) *screen.UserList
	OpenUserDetail(ctx context.Context, route string, args nav.Args) *screen.UserDetail
}

const (
	cmdRetry = "r"
	cmdBack  = "b"
	cmdQuit  = "q"

	hintUserList   = "[<n>] open user n  [r] retry  [q] quit"
	hintUserDetail = "[b] back  [q] quit"
)

// entry is one destination on the back stack with the controller serving it.
// Controllers are kept while they are on the stack, so going back shows the
// list as it was without fetching again.
type entry struct {
	list   *screen.UserList
	detail *screen.UserDetail
}

// Shell is the interactive browser: it renders the current screen, reads one
// command per line and applies it until the input ends or the user quits.
type Shell struct {
	screens Screens
	render  *Renderer
	in      io.Reader
	log     logger.Logger
	nav     *nav.Navigator
	stack   []entry
}

// NewShell creates a shell reading commands from in and drawing with render.
func NewShell(screens Screens, render *Renderer, in io.Reader, log logger.Logger) (*Shell, error) {
	n, err := nav.NewNavigator(nav.RouteUserList, log)
	if err != nil {
		return nil, errx.Wrap(err)
	}

	return &Shell{
		screens: screens,
		render:  render,
		in:      in,
		log:     log.Named("ui.shell"),
		nav:     n,
	}, nil
}

// Run blocks until the user quits, the input ends or ctx is done.
func (s *Shell) Run(ctx context.Context) error {
	s.stack = append(s.stack, entry{list: s.screens.OpenUserList(ctx, nav.RouteUserList)})

	err := s.show(ctx)
	if err != nil {
		return err
	}

	scanner := bufio.NewScanner(s.in)
	for scanner.Scan() {
		quit, err := s.apply(ctx, strings.TrimSpace(scanner.Text()))
		if err != nil {
			return err
		}
		if quit {
			return nil
		}

		err = s.show(ctx)
		if err != nil {
			return err
		}
	}

	return errx.Wrap(scanner.Err())
}

func (s *Shell) apply(ctx context.Context, cmd string) (bool, error) {
	top := s.stack[len(s.stack)-1]

	switch {
	case cmd == cmdQuit:
		return true, nil

	case cmd == cmdBack && top.detail != nil:
		return false, s.handle(ctx, top.detail.Back())

	case cmd == cmdRetry && top.list != nil:
		top.list.Retry()
		return false, nil

	case top.list != nil:
		n, err := strconv.Atoi(cmd)
		if err != nil {
			s.render.Notice("unknown command " + strconv.Quote(cmd))
			return false, nil
		}

		users, ok := top.list.State().Value()
		if !ok || n < 1 || n > len(users) {
			s.render.Notice("no user at position " + cmd)
			return false, nil
		}
		return false, s.handle(ctx, top.list.Select(users[n-1].ID))

	default:
		s.render.Notice("unknown command " + strconv.Quote(cmd))
		return false, nil
	}
}

// handle applies a navigation event to the navigator and keeps the controller stack in step.
func (s *Shell) handle(ctx context.Context, ev nav.Event) error {
	depth := s.nav.Depth()

	err := s.nav.Handle(ev)
	if err != nil {
		return errx.Wrap(err)
	}

	switch {
	case s.nav.Depth() > depth:
		dest := s.nav.Current()
		s.stack = append(s.stack, entry{detail: s.screens.OpenUserDetail(ctx, dest.Route, dest.Args)})
	case s.nav.Depth() < depth:
		s.stack = s.stack[:len(s.stack)-1]
	}

	s.log.With("route", s.nav.Current().Route).Debug("screen changed")
	return nil
}

// show draws the current screen, and draws it again once a pending fetch completes.
func (s *Shell) show(ctx context.Context) error {
	top := s.stack[len(s.stack)-1]

	s.draw(top)
	if !loading(top) {
		return nil
	}

	err := settle(ctx, top)
	if err != nil {
		return err
	}

	// an invalid detail id never leaves Loading, nothing new to draw
	if !loading(top) {
		s.draw(top)
	}
	return nil
}

func (s *Shell) draw(e entry) {
	if e.list != nil {
		s.render.UserList(e.list.State())
		s.render.Notice(hintUserList)
		return
	}
	s.render.UserDetail(e.detail.State())
	s.render.Notice(hintUserDetail)
}

func loading(e entry) bool {
	if e.list != nil {
		return e.list.State().IsLoading()
	}
	return e.detail.State().IsLoading()
}

func settle(ctx context.Context, e entry) error {
	if e.list != nil {
		return e.list.Settle(ctx)
	}
	return e.detail.Settle(ctx)
}
