package post

import "github.com/gin-gonic/gin"

func RegisterRoutes(rg *gin.RouterGroup, handler Handler) {
	rg.POST("/threads/:id/posts", handler.CreatePost)
}
