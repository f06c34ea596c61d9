// Package usecase holds the application operations the screens invoke.
//
// Each use case is a stateless adapter over repo.UserRepo: it forwards its input
// unchanged and returns the repository's result unchanged. Use cases exist to give
// screens a narrow seam that is easy to replace in tests and to decorate with
// ucdef/wrapper middlewares.
package usecase
