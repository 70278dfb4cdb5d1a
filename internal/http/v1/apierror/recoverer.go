package apierror

import (
	"fmt"
	"log/slog"
	"net/http"
)

// Recoverer turns a panic in next into a GenericFailure response.
func Recoverer(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				err, ok := rec.(error)
				if !ok {
					err = fmt.Errorf("%v", rec)
				}
				Write(w, log.With(slog.String("path", r.URL.Path)), fmt.Errorf("panic: %w", err))
			}()

			next.ServeHTTP(w, r)
		})
	}
}
