package server

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

func (s *Server) RegisterRoutes() http.Handler {
	e := echo.New()
	e.Use(NewEchoLogger(slog.Default()))
	e.Use(middleware.Recover())

	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"https://*", "http://*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	e.GET("/api", s.HelloWorldHandler)

	e.GET("/api/health", s.healthHandler)

	var assetGroup = e.Group("/api/v1/assets")
	assetGroup.GET("", s.ListAssets)
	assetGroup.POST("", s.CreateAsset, s.AuthMiddleware)
	assetGroup.GET("/vacant", s.ListVacantAssets)
	assetGroup.GET("/owner/:owner_id", s.GetAssetsByOwnerID)
	assetGroup.GET("/:id", s.GetAssetByID)
	assetGroup.PUT("/:id", s.UpdateAsset, s.AuthMiddleware)
	assetGroup.DELETE("/:id", s.DeleteAsset, s.AuthMiddleware)
	assetGroup.PUT("/:id/owner", s.AssignAssetOwner, s.AuthMiddleware)
	assetGroup.PUT("/:id/pullout", s.PullOutAsset, s.AuthMiddleware)

	var fileGroup = e.Group("/api/v1/files")
	fileGroup.GET("/temp-upload-url", s.GetTempUploadURL, s.AuthMiddleware)

	return e
}
