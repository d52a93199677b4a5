package webhook

import "github.com/gin-gonic/gin"

func RegisterRoutes(router *gin.RouterGroup, h *Handler) {
	hooks := router.Group("/fal-ai/webhook")
	{
		hooks.POST("/train", h.Train)
		hooks.POST("/image", h.Image)
	}
}
