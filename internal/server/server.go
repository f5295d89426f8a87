package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	_ "github.com/joho/godotenv/autoload"

	"github.com/assetrack/assetrack/internal/database"
	"github.com/assetrack/assetrack/internal/filestorage"
	"github.com/assetrack/assetrack/internal/usecase"
)

// Service represents a service that interacts with a database.
type Service interface {
	// Health returns a map of health status information.
	// The keys and values in the map are service-specific.
	Health() map[string]string

	// Close terminates the database connection.
	// It returns an error if the connection cannot be closed.
	Close() error

	ListAssets(context.Context, usecase.ListAssetsOption) ([]usecase.Asset, int, error)
	GetAssetByID(context.Context, uuid.UUID) (usecase.Asset, error)
	GetAssetsByOwnerID(context.Context, uuid.UUID) ([]usecase.Asset, error)
	ListVacantAssets(context.Context) ([]usecase.Asset, error)
	CreateAsset(context.Context, usecase.Asset, usecase.OwnerFields) (usecase.Asset, error)
	UpdateAsset(context.Context, uuid.UUID, usecase.Asset, usecase.OwnerFields) (usecase.Asset, error)
	AssignOwner(context.Context, uuid.UUID, uuid.UUID) (usecase.Asset, error)
	PullOutAsset(context.Context, uuid.UUID) error
	DeleteAsset(context.Context, uuid.UUID) (usecase.DeleteAssetResult, error)

	GetOwnerByID(context.Context, uuid.UUID) (usecase.Owner, error)

	GetTempUploadURL(context.Context, string) (string, error)
}

type Server struct {
	port int

	server    Service
	validator *validator.Validate
}

func NewServer() *http.Server {
	repo := database.New()
	fileStorage := filestorage.NewMinIOStorage(
		os.Getenv("MINIO_BUCKET"),
		os.Getenv("MINIO_TEMP_PATH"),
		os.Getenv("MINIO_PUBLIC_PATH"),
		os.Getenv("MINIO_ENDPOINT"),
		os.Getenv("MINIO_ACCESS_KEY_ID"),
		os.Getenv("MINIO_SECRET_ACCESS_KEY"),
	)
	sv := usecase.New(repo, fileStorage)
	v := validator.New()

	port, _ := strconv.Atoi(os.Getenv("PORT"))
	NewServer := &Server{
		port:      port,
		server:    sv,
		validator: v,
	}

	// Declare Server config
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", NewServer.port),
		Handler:      NewServer.RegisterRoutes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	return server
}
