package routes

import (
	"github.com/gin-gonic/gin"

	"ralph-ai/backend/controllers"
)

func Register(r *gin.Engine, d controllers.Deps) {
	r.GET("/health", controllers.Health(d))
	r.POST("/analyze", controllers.Analyze(d))
	r.POST("/generate-pdf", controllers.GeneratePDF(d))
	r.POST("/submit-email", controllers.SubmitEmail(d))
}
