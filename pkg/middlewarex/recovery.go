package middlewarex

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"kp_generator/pkg/logx"
)

// Recovery перехватывает панику в хэндлере и отдаёт ответ через onPanic
// (например, страницу 500). Если onPanic == nil, пишется только статус.
func Recovery(onPanic http.HandlerFunc) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			defer func() {
				if rec := recover(); rec != nil {
					logger(ctx).Error(
						"panic in handler",
						slog.Any(logx.FieldError, rec),
						slog.String(logx.FieldStack, string(debug.Stack())),
					)

					if onPanic != nil {
						onPanic(w, r)
						return
					}

					w.WriteHeader(http.StatusInternalServerError)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
