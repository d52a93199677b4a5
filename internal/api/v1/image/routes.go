package image

import "github.com/gin-gonic/gin"

func RegisterRoutes(router *gin.RouterGroup, h *Handler) {
	images := router.Group("/image")
	{
		images.GET("/bulk", h.Bulk)
	}
}
