package upload

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/saransh-debugs/PixelAlchemy/internal/services"
	"github.com/saransh-debugs/PixelAlchemy/internal/utils"
)

type Handler struct {
	svc *services.StorageService
}

func NewHandler(svc *services.StorageService) *Handler {
	return &Handler{svc: svc}
}

// PresignedURL godoc
// @Summary Issue a pre-signed upload URL for a training archive
// @Description Returns a 5-minute PUT URL for direct upload of a zip archive
// @Tags upload
// @Produce json
// @Success 200 {object} services.UploadURL
// @Failure 500 {object} utils.Response
// @Router /pre-signed-url [get]
func (h *Handler) PresignedURL(c *gin.Context) {
	signed, err := h.svc.SignUploadURL()
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to sign upload url"))
		return
	}

	c.JSON(http.StatusOK, signed)
}
