package training

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/saransh-debugs/PixelAlchemy/internal/middleware"
	"github.com/saransh-debugs/PixelAlchemy/internal/services"
	"github.com/saransh-debugs/PixelAlchemy/internal/utils"
)

type Handler struct {
	svc *services.TrainingService
}

func NewHandler(svc *services.TrainingService) *Handler {
	return &Handler{svc: svc}
}

// Train godoc
// @Summary Submit a model training job
// @Description Validate the training request, submit it to the provider queue and record the pending model
// @Tags ai
// @Accept json
// @Produce json
// @Param request body TrainModelRequest true "Training request"
// @Success 200 {object} TrainModelResponse
// @Failure 411 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /ai/training [post]
func (h *Handler) Train(c *gin.Context) {
	var req TrainModelRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	model, err := h.svc.Train(c.Request.Context(), middleware.Owner(c), services.TrainModelInput{
		Name:      req.Name,
		Type:      req.Type,
		Age:       req.Age,
		Ethnicity: req.Ethnicity,
		EyeColor:  req.EyeColor,
		Bald:      *req.Bald,
		ZipURL:    req.ZipURL,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Training failed"))
		return
	}

	c.JSON(http.StatusOK, TrainModelResponse{ModelID: model.ID})
}
