// Package server assembles the gin engine and its routes.
package server

import (
	"fmt"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/lshigami/ExamPortal/config"
	"github.com/lshigami/ExamPortal/internal/auth"
	"github.com/lshigami/ExamPortal/internal/controller/faculty"
	"github.com/lshigami/ExamPortal/internal/controller/student"
	"github.com/lshigami/ExamPortal/internal/dto"
	"github.com/lshigami/ExamPortal/internal/middleware"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// NewGinEngine builds the engine with logging, recovery, CORS, swagger and the
// custom binding rules installed.
func NewGinEngine(cfg *config.Config) (*gin.Engine, error) {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := dto.RegisterValidations(v); err != nil {
			return nil, fmt.Errorf("register validations: %w", err)
		}
	}

	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger())
	r.Use(gin.Recovery())

	origins := cfg.Server.CORSOrigins
	corsCfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders: []string{"Content-Length", middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = origins
		corsCfg.AllowCredentials = true
	}
	r.Use(cors.New(corsCfg))

	// URL: http://localhost:PORT/swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	return r, nil
}

// RegisterRoutes mounts the faculty/admin routes under /api/v1 and the student
// routes under /api/v1/student, both behind bearer authentication.
func RegisterRoutes(
	router *gin.Engine,
	verifier *auth.TokenVerifier,
	examCtrl *faculty.ExamController,
	attemptCtrl *student.AttemptController,
) {
	api := router.Group("/api/v1", middleware.JWTAuth(verifier))

	staff := api.Group("", middleware.RequireRole(auth.RoleAdmin, auth.RoleFaculty))
	examCtrl.RegisterRoutes(staff)

	students := api.Group("/student", middleware.RequireRole(auth.RoleStudent))
	attemptCtrl.RegisterRoutes(students)
}
