package thread

import "github.com/gin-gonic/gin"

func RegisterRoutes(rg *gin.RouterGroup, handler Handler) {
	threads := rg.Group("/threads")
	{
		threads.GET("", handler.GetThreads)
		threads.POST("", handler.CreateThread)
		threads.GET("/:id", handler.GetThreadByID)
	}
}
