package page

import (
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RegisterRoutes mounts the page shell: "/" from templatesDir/index.html and
// "/static" from staticDir. Missing directories are logged, not fatal.
func RegisterRoutes(engine *gin.Engine, templatesDir, staticDir string, logger *zap.Logger) {
	indexPath := filepath.Join(templatesDir, indexTemplate)
	available := fileExists(indexPath)
	if available {
		engine.LoadHTMLFiles(indexPath)
	} else {
		logger.Warn("Page template not found, serving API only", zap.String("path", indexPath))
	}

	if fileExists(staticDir) {
		engine.Static("/static", staticDir)
	}

	engine.GET("/", NewHandler(available).Index)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
