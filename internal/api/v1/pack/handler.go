package pack

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/saransh-debugs/PixelAlchemy/internal/middleware"
	"github.com/saransh-debugs/PixelAlchemy/internal/services"
	"github.com/saransh-debugs/PixelAlchemy/internal/utils"
)

type Handler struct {
	svc *services.GenerationService
}

func NewHandler(svc *services.GenerationService) *Handler {
	return &Handler{svc: svc}
}

// Generate godoc
// @Summary Generate images for every prompt of a pack
// @Description Submit one generation job per pack prompt and record the pending images
// @Tags pack
// @Accept json
// @Produce json
// @Param request body GenerateFromPackRequest true "Pack generation request"
// @Success 200 {object} GenerateFromPackResponse
// @Failure 411 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /pack/generate [post]
func (h *Handler) Generate(c *gin.Context) {
	var req GenerateFromPackRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	owner := middleware.Owner(c)
	images, err := h.svc.GenerateFromPack(c.Request.Context(), owner, req.ModelID, req.PackID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrPackNotFound):
			c.JSON(http.StatusLengthRequired, utils.NewErrorResponse(http.StatusLengthRequired, "Pack not found"))
		case errors.Is(err, services.ErrModelNotReady):
			c.JSON(http.StatusLengthRequired, utils.NewErrorResponse(http.StatusLengthRequired, "Model not found"))
		default:
			c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Generation failed"))
		}
		return
	}

	ids := make([]string, len(images))
	for i, img := range images {
		ids[i] = img.ID
	}

	c.JSON(http.StatusOK, GenerateFromPackResponse{Images: ids})
}

// List godoc
// @Summary List prompt packs
// @Tags pack
// @Produce json
// @Success 200 {object} ListPacksResponse
// @Failure 500 {object} utils.Response
// @Router /pack/bulk [get]
func (h *Handler) List(c *gin.Context) {
	packs, err := h.svc.ListPacks(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to list packs"))
		return
	}

	summaries := make([]PackSummary, len(packs))
	for i, p := range packs {
		summaries[i] = toSummary(p)
	}

	c.JSON(http.StatusOK, ListPacksResponse{Packs: summaries})
}
