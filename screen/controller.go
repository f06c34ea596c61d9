// Package screen holds the controllers of the user list and user detail screens.
//
// A controller owns the view state of its screen. It starts a fetch through a use
// case when it is activated, writes Success or Error when the fetch completes, and
// is the only writer of that state. Fetches run through a Launcher; a newer fetch
// never cancels an older one, whichever completes last wins.
package screen

import (
	"context"
	"sync"

	"github.com/code19m/errx"
	"github.com/rise-and-shine/userbook/logger"
	"github.com/rise-and-shine/userbook/meta"
	"github.com/rise-and-shine/userbook/result"
	"github.com/rise-and-shine/userbook/tracing"
	"github.com/rise-and-shine/userbook/ucdef"
	"github.com/rise-and-shine/userbook/viewstate"
)

// FallbackErrorMessage is shown when a failure carries no message.
const FallbackErrorMessage = "Unknown error occurred"

// Option configures a screen controller.
type Option func(*options)

type options struct {
	launcher Launcher
	log      logger.Logger
	route    string
}

// WithLauncher sets how fetches are started. Default is GoLauncher.
func WithLauncher(l Launcher) Option {
	return func(o *options) {
		o.launcher = l
	}
}

// WithLogger sets the logger of the controller.
func WithLogger(l logger.Logger) Option {
	return func(o *options) {
		o.log = l
	}
}

// WithRoute records the route that activated the screen, for log correlation.
func WithRoute(route string) Option {
	return func(o *options) {
		o.route = route
	}
}

func buildOptions(opts []Option) options {
	o := options{launcher: GoLauncher{}, log: logger.Global()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// controller is the fetch-and-publish machinery shared by both screens.
type controller[I, O any] struct {
	name     string
	route    string
	query    ucdef.Query[I, O]
	launcher Launcher
	store    *viewstate.Store[O]
	log      logger.Logger
	ctx      context.Context //nolint:containedctx // lifetime of the screen, like a view model scope
	inflight *inflight
}

func newController[I, O any](ctx context.Context, name string, query ucdef.Query[I, O], o options) *controller[I, O] {
	return &controller[I, O]{
		name:     name,
		route:    o.route,
		query:    query,
		launcher: o.launcher,
		store:    viewstate.NewStore(viewstate.Loading[O]()),
		log:      o.log.Named("screen." + name),
		ctx:      ctx,
		inflight: newInflight(),
	}
}

// fetch enters Loading and starts one execution of the use case.
func (c *controller[I, O]) fetch(in I, extra map[meta.ContextKey]string) {
	c.store.Set(viewstate.Loading[O]())

	ctx := meta.InjectMetaToContext(c.ctx, map[meta.ContextKey]string{
		meta.TraceID: tracing.GetStartingTraceID(c.ctx),
		meta.Screen:  c.name,
		meta.Route:   c.route,
	})
	ctx = meta.InjectMetaToContext(ctx, extra)

	c.log.WithContext(ctx).Debug("fetch started")

	c.inflight.add()
	c.launcher.Launch(func() {
		defer c.inflight.done()

		c.query.Execute(ctx, in).
			OnSuccess(func(v O) {
				c.store.Set(viewstate.Success(v))
			}).
			OnFailure(func(info result.ErrorInfo) {
				c.store.Set(viewstate.Error[O](errorMessage(info)))
			})

		c.log.WithContext(ctx).With("state", c.store.Get().Kind().String()).Debug("fetch completed")
	})
}

func (c *controller[I, O]) State() viewstate.State[O] {
	return c.store.Get()
}

func (c *controller[I, O]) Store() *viewstate.Store[O] {
	return c.store
}

// Settle blocks until no fetch is in flight, or ctx is done. A Retry issued while
// Settle waits extends the wait to that fetch too.
// With a QueueLauncher, tasks must be run by the caller; Settle does not run them.
func (c *controller[I, O]) Settle(ctx context.Context) error {
	select {
	case <-c.inflight.idle():
		return nil
	case <-ctx.Done():
		return errx.Wrap(ctx.Err())
	}
}

// inflight counts running fetches. Its idle channel is closed whenever the count is zero.
type inflight struct {
	mu     sync.Mutex
	n      int
	idleCh chan struct{}
}

func newInflight() *inflight {
	ch := make(chan struct{})
	close(ch)
	return &inflight{idleCh: ch}
}

func (f *inflight) add() {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.n == 0 {
		f.idleCh = make(chan struct{})
	}
	f.n++
}

func (f *inflight) done() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.n--
	if f.n == 0 {
		close(f.idleCh)
	}
}

func (f *inflight) idle() <-chan struct{} {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.idleCh
}

func errorMessage(info result.ErrorInfo) string {
	if info.Message == "" {
		return FallbackErrorMessage
	}
	return info.Message
}
