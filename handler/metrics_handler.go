package handler

import (
	"fmt"
	"net/http"
	"sync/atomic"

	"github.com/jeffschoe/chirpy/common"
	"github.com/jeffschoe/chirpy/logger"
	"github.com/jeffschoe/chirpy/repository"
)

// MetricsHandler counts fileserver hits and exposes the admin metrics
// and reset endpoints. Reset is destructive and only allowed on the dev
// platform.
type MetricsHandler struct {
	fileserverHits atomic.Int64
	userRepo       repository.IUserRepository
	platform       string
}

func NewMetricsHandler(userRepo repository.IUserRepository, platform string) *MetricsHandler {
	return &MetricsHandler{
		userRepo: userRepo,
		platform: platform,
	}
}

// MiddlewareMetricsInc counts every request that passes through it.
func (h *MetricsHandler) MiddlewareMetricsInc(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h.fileserverHits.Add(1)
		next.ServeHTTP(w, r)
	})
}

// Hits returns the current fileserver hit count.
func (h *MetricsHandler) Hits() int64 {
	return h.fileserverHits.Load()
}

// AdminMetrics godoc
// @Summary      Fileserver hit counter
// @Tags         admin
// @Produce      html
// @Success      200
// @Router       /admin/metrics [get]
func (h *MetricsHandler) AdminMetrics(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	fmt.Fprintf(w, `<html>
<body>
  <h1>Welcome, Chirpy Admin</h1>
  <p>Chirpy has been visited %d times!</p>
</body>
</html>`, h.fileserverHits.Load())
}

// Reset godoc
// @Summary      Reset the hit counter and delete all users (dev only)
// @Tags         admin
// @Success      200
// @Router       /admin/reset [post]
func (h *MetricsHandler) Reset(w http.ResponseWriter, r *http.Request) *common.AppError {
	if h.platform != "dev" {
		return common.Forbidden("Reset is only allowed in dev", nil)
	}

	h.fileserverHits.Store(0)

	if err := h.userRepo.DeleteAllUsers(); err != nil {
		return common.Internal("Could not reset users", err)
	}

	logger.Log.Warn("Hit counter and users reset")

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, "Hits reset to 0")

	return nil
}
