package router

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime"
	"strings"
)

// panicFrames returns file:line for the frames inside this module's internal
// tree, outermost last.
func panicFrames() []string {
	pcs := make([]uintptr, 32)
	n := runtime.Callers(3, pcs)
	frames := runtime.CallersFrames(pcs[:n])

	var out []string
	for {
		f, more := frames.Next()
		if _, rel, ok := strings.Cut(f.File, "/internal/"); ok {
			out = append(out, fmt.Sprintf("internal/%s:%d", rel, f.Line))
		}
		if !more {
			break
		}
	}
	return out
}

func middlewareRecoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rvr := recover()
			if rvr == nil {
				return
			}
			//nolint:err113,errorlint // sentinel must be compared directly
			if rvr == http.ErrAbortHandler {
				panic(rvr)
			}

			slog.ErrorContext(r.Context(), "panic on the server", "because", rvr, "stack", panicFrames())
			writeJSON(w, errorResponse{Message: "Internal server error"}, http.StatusInternalServerError)
		}()

		next.ServeHTTP(w, r)
	})
}
