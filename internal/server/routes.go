package server

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (s *Server) registerRoutes() {
	// Observability endpoints (no auth required)
	s.echo.GET("/health/live", s.handleLiveness)
	s.echo.GET("/health/ready", s.handleReadiness)
	s.echo.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := s.echo.Group("/api/v1")

	// Identity routes
	user := api.Group("/user")
	user.POST("/register", s.handleRegister)
	user.POST("/login", s.handleLogin)
	user.GET("/logout", s.handleLogout)
	user.GET("/me", s.handleMe, s.requireAuth)
	user.POST("/profile/update", s.handleUpdateProfile, s.requireAuth)

	// Company routes (authenticated)
	company := api.Group("/company", s.requireAuth)
	company.POST("/register", s.handleRegisterCompany)
	company.GET("/get", s.handleListCompanies)
	company.GET("/get/:id", s.handleGetCompany)
	company.PUT("/update/:id", s.handleUpdateCompany)

	// Job routes (listing is public, posting is authenticated)
	job := api.Group("/job")
	job.POST("/post", s.handlePostJob, s.requireAuth)
	job.GET("/get", s.handleListJobs)
	job.GET("/get/:id", s.handleGetJob)
	job.GET("/getadminjobs", s.handleListOwnJobs, s.requireAuth)

	// Application lifecycle routes (authenticated)
	application := api.Group("/application", s.requireAuth)
	application.POST("/apply/:id", s.handleApply)
	application.GET("/get", s.handleAppliedJobs)
	application.GET("/:id/applicants", s.handleJobApplicants)
	application.POST("/status/:id/update", s.handleUpdateStatus)
}
