package server

import (
	"fmt"
	"net/http"
	"time"

	"log/slog"

	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/octowatch/pkg/utils/errutil"
	"github.com/m-mizutani/octowatch/pkg/utils/logging"
)

const requestIDHeader = "X-Request-ID"

func preProcess(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.NewString()
		logger := logging.Default().With(slog.String("request_id", requestID))
		ctx := logging.With(r.Context(), logger)

		w.Header().Set(requestIDHeader, requestID)
		lw := &statusCodeLogger{
			ResponseWriter: w,
			statusCode:     http.StatusOK, // Default to 200 if WriteHeader is not called
		}

		requestedAt := time.Now()
		defer func() {
			if v := recover(); v != nil {
				errutil.HandleError(ctx, "panic in http handler", goerr.New(fmt.Sprintf("%v", v)))
				lw.statusCode = http.StatusInternalServerError
				http.Error(w, "internal error", http.StatusInternalServerError)
			}

			logger.Info("http access",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("remote_addr", r.RemoteAddr),
				slog.Int("status_code", lw.statusCode),
				slog.String("user_agent", r.UserAgent()),
				slog.Duration("elapsed", time.Since(requestedAt)),
			)
		}()

		next.ServeHTTP(lw, r.WithContext(ctx))
	})
}

type statusCodeLogger struct {
	http.ResponseWriter
	statusCode int
}

func (x *statusCodeLogger) WriteHeader(code int) {
	x.statusCode = code
	x.ResponseWriter.WriteHeader(code)
}
