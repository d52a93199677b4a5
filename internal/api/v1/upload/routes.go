package upload

import "github.com/gin-gonic/gin"

func RegisterRoutes(router *gin.RouterGroup, h *Handler) {
	router.GET("/pre-signed-url", h.PresignedURL)
}
