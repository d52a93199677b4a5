package training

import "github.com/gin-gonic/gin"

func RegisterRoutes(router *gin.RouterGroup, h *Handler) {
	ai := router.Group("/ai")
	{
		ai.POST("/training", h.Train)
	}
}
