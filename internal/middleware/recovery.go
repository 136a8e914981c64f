package middleware

import (
	"encoding/json"
	"net/http"
	"runtime/debug"

	"go.uber.org/zap"
)

// Recovery gibt eine Middleware zurück, die Panics abfängt und als
// 500-Antwort ausliefert, statt die Verbindung abzureißen.
func Recovery(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					logger.Error("panic abgefangen",
						zap.Any("fehler", rec),
						zap.String("pfad", r.URL.Path),
						zap.ByteString("stack", debug.Stack()),
					)
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					_ = json.NewEncoder(w).Encode(map[string]string{
						"error": "interner serverfehler",
					})
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
