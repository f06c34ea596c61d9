// Package wrapper provides middleware wrappers for use cases.
//
// Wrappers add logging, tracing and panic recovery around ucdef.Query
// without changing the result a use case returns.
package wrapper
