package handler

import (
	"fmt"
	"net/http"
)

// Readiness godoc
// @Summary      Show the status of server
// @Tags         health
// @Produce      plain
// @Success      200  {string}  string  "OK"
// @Router       /api/healthz [get]
func Readiness(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, "OK")
}
