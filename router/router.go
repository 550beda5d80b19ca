package router

import (
	"net/http"

	"github.com/jeffschoe/chirpy/handler"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/jeffschoe/chirpy/docs"
)

func NewRouter(
	userHandler *handler.UserHandler,
	chirpHandler *handler.ChirpHandler,
	tokenHandler *handler.TokenHandler,
	webhookHandler *handler.WebhookHandler,
	metricsHandler *handler.MetricsHandler,
	authMW *handler.AuthMiddleware,
) http.Handler {
	mux := http.NewServeMux()

	// Static site, with every hit counted.
	fileServer := http.StripPrefix("/app", http.FileServer(http.Dir(".")))
	mux.Handle("/app/", metricsHandler.MiddlewareMetricsInc(fileServer))

	mux.HandleFunc("GET /api/healthz", handler.Readiness)

	mux.Handle("POST /api/users", handler.ErrorHandlingMiddleware(userHandler.CreateUser))
	mux.Handle("PUT /api/users", authMW.RequireUser(handler.ErrorHandlingMiddleware(userHandler.UpdateUser)))
	mux.Handle("POST /api/login", handler.ErrorHandlingMiddleware(userHandler.Login))
	mux.Handle("POST /api/refresh", handler.ErrorHandlingMiddleware(tokenHandler.Refresh))
	mux.Handle("POST /api/revoke", handler.ErrorHandlingMiddleware(tokenHandler.Revoke))

	mux.Handle("POST /api/chirps", authMW.RequireUser(handler.ErrorHandlingMiddleware(chirpHandler.CreateChirp)))
	mux.Handle("GET /api/chirps", handler.ErrorHandlingMiddleware(chirpHandler.ListChirps))
	mux.Handle("GET /api/chirps/{chirpID}", handler.ErrorHandlingMiddleware(chirpHandler.GetChirp))
	mux.Handle("DELETE /api/chirps/{chirpID}", authMW.RequireUser(handler.ErrorHandlingMiddleware(chirpHandler.DeleteChirp)))

	mux.Handle("POST /api/polka/webhooks", handler.ErrorHandlingMiddleware(webhookHandler.PolkaWebhook))

	mux.HandleFunc("GET /admin/metrics", metricsHandler.AdminMetrics)
	mux.Handle("POST /admin/reset", handler.ErrorHandlingMiddleware(metricsHandler.Reset))

	mux.Handle("/swagger/", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	return mux
}
