package image

import (
	"net/http"
	"strconv"
	"strings"

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

// Bulk godoc
// @Summary Bulk read output images by id
// @Description Read the owner's images among the given ids with skip/take pagination
// @Tags image
// @Produce json
// @Param images query string true "Comma-separated image ids"
// @Param limit query int false "Page size (default 10)"
// @Param offset query int false "Rows to skip (default 0)"
// @Success 200 {object} BulkImagesResponse
// @Failure 500 {object} utils.Response
// @Router /image/bulk [get]
func (h *Handler) Bulk(c *gin.Context) {
	ids := parseIDs(c.QueryArray("images"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	images, err := h.svc.ListOutputImages(c.Request.Context(), ids, middleware.Owner(c), limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to list images"))
		return
	}

	c.JSON(http.StatusOK, BulkImagesResponse{Images: images})
}

// parseIDs accepts both repeated images params and comma-separated lists.
func parseIDs(values []string) []string {
	var ids []string
	for _, v := range values {
		for _, id := range strings.Split(v, ",") {
			if id = strings.TrimSpace(id); id != "" {
				ids = append(ids, id)
			}
		}
	}
	return ids
}
