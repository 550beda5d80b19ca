package handler

import (
	"net/http"

	"github.com/jeffschoe/chirpy/common"
)

// ErrorHandlingMiddleware adapts handlers that return *common.AppError
// into plain http.HandlerFuncs, writing the error response in one
// place.
func ErrorHandlingMiddleware(next func(http.ResponseWriter, *http.Request) *common.AppError) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := next(w, r); err != nil {
			err.Send(w)
		}
	}
}
