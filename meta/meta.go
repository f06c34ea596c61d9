// Package meta carries per-activation metadata through context.Context so that every
// log line written while serving one screen activation can be correlated.
package meta

import "context"

// HeaderTraceID carries the trace id across HTTP calls, so client and server log lines
// of one fetch share it.
const HeaderTraceID = "X-Trace-ID"

// ContextKey is a type for keys used in context values for metadata.
type ContextKey string

const (
	// TraceID identifies one fetch from activation to rendered state.
	TraceID ContextKey = "trace_id"

	// Screen names the screen whose controller started the fetch.
	Screen ContextKey = "screen"

	// Route is the navigation route that activated the screen.
	Route ContextKey = "route"

	// OperationID identifies the use case being executed.
	OperationID ContextKey = "operation_id"

	// RequestUserID is the id of the user being fetched by a detail screen.
	RequestUserID ContextKey = "request_user_id"

	// ServiceName identifies the name of current running service.
	ServiceName ContextKey = "service_name"

	// ServiceVersion indicates the version of the service.
	ServiceVersion ContextKey = "service_version"
)

//nolint:gochecknoglobals // fixed extraction order keeps log output stable
var allKeys = []ContextKey{
	TraceID,
	Screen,
	Route,
	OperationID,
	RequestUserID,
	ServiceName,
	ServiceVersion,
}

// InjectMetaToContext adds metadata from the provided map to the context.
// It only adds values that are not empty strings and returns a new context
// with the added values.
func InjectMetaToContext(ctx context.Context, data map[ContextKey]string) context.Context {
	for k, v := range data {
		if v != "" {
			ctx = context.WithValue(ctx, k, v) //nolint:fatcontext // allow due to finite number of keys
		}
	}
	return ctx
}

// ExtractMetaFromContext extracts all metadata from the provided context.
// Only non-empty string values are included in the returned map.
func ExtractMetaFromContext(ctx context.Context) map[ContextKey]string {
	data := make(map[ContextKey]string)
	for _, k := range allKeys {
		if v, ok := ctx.Value(k).(string); ok && v != "" {
			data[k] = v
		}
	}
	return data
}

// Get returns the value stored under key, or an empty string.
func Get(ctx context.Context, key ContextKey) string {
	v, _ := ctx.Value(key).(string)
	return v
}
