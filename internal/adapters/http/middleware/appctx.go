package middleware

import (
	"net/http"

	appctx "github.com/glowtours/backoffice/internal/app/context"
)

// AppContext installs a fresh RequestContext per request; services retrieve
// it with appctx.FromContext to stage actions (the expense approval's budget
// debit rides on it). Runs innermost so the embedded context already carries
// ids and the deadline.
func AppContext() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rc := appctx.New(r.Context())
			ctx := appctx.WithRequestContext(r.Context(), rc)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
