package meta

import "sync/atomic"

// Service identifies the running binary in logs, traces and HTTP responses.
type Service struct {
	Name    string
	Version string
}

// Meta returns the service identity as context metadata.
func (s Service) Meta() map[ContextKey]string {
	return map[ContextKey]string{
		ServiceName:    s.Name,
		ServiceVersion: s.Version,
	}
}

//nolint:gochecknoglobals // set once by main before anything reads it
var current atomic.Pointer[Service]

// SetService records the identity of the running binary. Only the first call has an effect.
func SetService(name, version string) {
	current.CompareAndSwap(nil, &Service{Name: name, Version: version})
}

// GetService returns the identity recorded by SetService, or "userbook"/"dev" when unset.
func GetService() Service {
	if s := current.Load(); s != nil {
		return *s
	}
	return Service{Name: "userbook", Version: "dev"}
}
