package pack

import "github.com/gin-gonic/gin"

func RegisterRoutes(router *gin.RouterGroup, h *Handler) {
	packs := router.Group("/pack")
	{
		packs.POST("/generate", h.Generate)
		packs.GET("/bulk", h.List)
	}
}
