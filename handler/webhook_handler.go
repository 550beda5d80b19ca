package handler

import (
	"net/http"

	"github.com/jeffschoe/chirpy/common"
	"github.com/jeffschoe/chirpy/logger"
	"github.com/jeffschoe/chirpy/model"
	"github.com/jeffschoe/chirpy/service"
)

// WebhookHandler receives events from the Polka payment provider,
// authenticated with the ApiKey header scheme.
type WebhookHandler struct {
	users    *service.UserService
	polkaKey string
}

func NewWebhookHandler(users *service.UserService, polkaKey string) *WebhookHandler {
	return &WebhookHandler{
		users:    users,
		polkaKey: polkaKey,
	}
}

// PolkaWebhook godoc
// @Summary      Polka payment events
// @Tags         webhooks
// @Accept       json
// @Success      204
// @Router       /api/polka/webhooks [post]
func (h *WebhookHandler) PolkaWebhook(w http.ResponseWriter, r *http.Request) *common.AppError {
	apiKey, appErr := service.GetAPIKey(r.Header.Get("Authorization"))
	if appErr != nil {
		return appErr
	}
	if apiKey != h.polkaKey {
		return common.Unauthenticated("Invalid API key", nil)
	}

	var req model.PolkaWebhookRequest
	if !common.ValidateAndDecode(w, r, &req) {
		return nil
	}

	// Events we don't handle are acknowledged so Polka stops retrying.
	if req.Event != "user.upgraded" {
		w.WriteHeader(http.StatusNoContent)
		return nil
	}

	if appErr := h.users.UpgradeToChirpyRed(req.Data.UserID); appErr != nil {
		return appErr
	}

	logger.Log.WithField("user_id", req.Data.UserID).Info("User upgraded to Chirpy Red")

	w.WriteHeader(http.StatusNoContent)
	return nil
}
