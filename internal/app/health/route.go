package health

import "github.com/gin-gonic/gin"

func RegisterRoutes(root gin.IRoutes, api gin.IRoutes, handler Handler) {
	root.GET("/health", handler.Ping)
	api.GET("/health", handler.Check)
}
