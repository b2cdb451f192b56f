package middleware

import "net/http"

// Chain folds a list of middleware into one. The first argument ends up
// outermost, so the list reads in request order:
//
//	Chain(Recovery, RequestID, AppContext)(handler)
//
// behaves like:
//
//	Recovery(RequestID(AppContext(handler)))
func Chain(middlewares ...func(http.Handler) http.Handler) func(http.Handler) http.Handler {
	return func(handler http.Handler) http.Handler {
		wrapped := handler
		for i := len(middlewares) - 1; i >= 0; i-- {
			wrapped = middlewares[i](wrapped)
		}
		return wrapped
	}
}
