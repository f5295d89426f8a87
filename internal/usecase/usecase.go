package usecase

import (
	"context"

	"github.com/google/uuid"
)

func New(repo Repository, fileStorageProvider FileStorageProvider) Usecase {
	return Usecase{repo: repo, fileStorageProvider: fileStorageProvider}
}

type Repository interface {
	Health() map[string]string
	Close() error

	ListAssets(context.Context, ListAssetsOption) ([]Asset, int, error)
	GetAssetByID(context.Context, uuid.UUID) (Asset, error)
	GetAssetsByOwnerID(context.Context, uuid.UUID) ([]Asset, error)
	ListVacantAssets(context.Context) ([]Asset, error)
	CreateAsset(context.Context, Asset) (Asset, error)
	UpdateAsset(context.Context, uuid.UUID, Asset, string) (Asset, error)
	AssignAssetOwner(context.Context, uuid.UUID, uuid.UUID, string) (Asset, error)
	PullOutAsset(context.Context, uuid.UUID, string) error
	DeleteAsset(context.Context, uuid.UUID, string) error

	GetOrCreateOwner(context.Context, Owner) (Owner, error)
	GetOwnerByID(context.Context, uuid.UUID) (Owner, error)

	ListComponents(context.Context, ListComponentsOption) ([]Component, error)
}

type FileStorageProvider interface {
	GetPublicURL(ctx context.Context) (string, error)
	GetTempUploadURL(ctx context.Context, name string) (string, error)
	MoveTempFilePublic(ctx context.Context, source string, dest string) error
}

type Usecase struct {
	repo                Repository
	fileStorageProvider FileStorageProvider
}

func (u Usecase) Health() map[string]string {
	return u.repo.Health()
}

func (u Usecase) Close() error {
	return u.repo.Close()
}
