package webhook

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/saransh-debugs/PixelAlchemy/internal/services"
	"github.com/saransh-debugs/PixelAlchemy/internal/utils"
)

// Handler receives provider callbacks. It always acknowledges with 200,
// whatever happens inside, so the provider does not retry-storm us.
type Handler struct {
	svc *services.WebhookService
}

func NewHandler(svc *services.WebhookService) *Handler {
	return &Handler{svc: svc}
}

// Train godoc
// @Summary Training-completion callback
// @Tags webhook
// @Accept json
// @Produce json
// @Success 200 {object} utils.Response
// @Router /fal-ai/webhook/train [post]
func (h *Handler) Train(c *gin.Context) {
	raw, err := c.GetRawData()
	if err != nil {
		zap.L().Warn("unreadable training webhook body", zap.Error(err))
		c.JSON(http.StatusOK, utils.NewSuccessResponse("Webhook received", nil))
		return
	}

	var req TrainingWebhookRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		zap.L().Warn("malformed training webhook body", zap.Error(err))
		c.JSON(http.StatusOK, utils.NewSuccessResponse("Webhook received", nil))
		return
	}

	h.svc.HandleTrainingWebhook(c.Request.Context(), services.TrainingWebhookEvent{
		RequestID:  req.RequestID,
		TensorPath: req.TensorPath,
		Raw:        raw,
	})

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Webhook received", nil))
}

// Image godoc
// @Summary Generation-completion callback
// @Tags webhook
// @Accept json
// @Produce json
// @Success 200 {object} utils.Response
// @Router /fal-ai/webhook/image [post]
func (h *Handler) Image(c *gin.Context) {
	raw, err := c.GetRawData()
	if err != nil {
		zap.L().Warn("unreadable image webhook body", zap.Error(err))
		c.JSON(http.StatusOK, utils.NewSuccessResponse("Webhook received", nil))
		return
	}

	var req ImageWebhookRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		zap.L().Warn("malformed image webhook body", zap.Error(err))
		c.JSON(http.StatusOK, utils.NewSuccessResponse("Webhook received", nil))
		return
	}

	h.svc.HandleImageWebhook(c.Request.Context(), services.ImageWebhookEvent{
		RequestID: req.RequestID,
		ImageURL:  req.ImageURL,
		Raw:       raw,
	})

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Webhook received", nil))
}
