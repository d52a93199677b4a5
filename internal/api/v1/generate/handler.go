package generate

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/saransh-debugs/PixelAlchemy/internal/middleware"
	"github.com/saransh-debugs/PixelAlchemy/internal/services"
	"github.com/saransh-debugs/PixelAlchemy/internal/store"
	"github.com/saransh-debugs/PixelAlchemy/internal/utils"
)

type Handler struct {
	svc *services.GenerationService
}

func NewHandler(svc *services.GenerationService) *Handler {
	return &Handler{svc: svc}
}

// Generate godoc
// @Summary Submit an image generation job
// @Description Submit a prompt against a trained model and record the pending image
// @Tags ai
// @Accept json
// @Produce json
// @Param request body GenerateImageRequest true "Generation request"
// @Success 200 {object} GenerateImageResponse
// @Failure 411 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /ai/generate [post]
func (h *Handler) Generate(c *gin.Context) {
	var req GenerateImageRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	owner := middleware.Owner(c)
	img, err := h.svc.Generate(c.Request.Context(), owner, req.Prompt, req.ModelID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrModelNotReady):
			c.JSON(http.StatusLengthRequired, utils.NewErrorResponse(http.StatusLengthRequired, "Model not found"))
		case errors.Is(err, store.ErrInsufficientCredits):
			c.JSON(http.StatusLengthRequired, utils.NewErrorResponse(http.StatusLengthRequired, "Not enough credits"))
		default:
			c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Generation failed"))
		}
		return
	}

	c.JSON(http.StatusOK, GenerateImageResponse{ImageID: img.ID})
}
