package generate

import "github.com/gin-gonic/gin"

func RegisterRoutes(router *gin.RouterGroup, h *Handler) {
	ai := router.Group("/ai")
	{
		ai.POST("/generate", h.Generate)
	}
}
