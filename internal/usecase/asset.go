package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/assetrack/assetrack/internal/config"
)

// Asset lifecycle status labels. The delete flag is a separate axis:
// a deleted asset keeps its last owner reference for audit.
const (
	StatusInService = "IN_SERVICE"
	StatusVacant    = "VACANT"
	StatusPulledOut = "PULLED_OUT"
	StatusDeleted   = "DELETED"
)

type Asset struct {
	ID            uuid.UUID
	Barcode       string
	Type          string
	DateAcquired  *time.Time
	Brand         string
	Model         string
	Size          string
	Color         string
	SerialNo      string
	PO            string
	Warranty      string
	Cost          float64
	Remarks       string
	LIDescription string
	History       string
	Image         string
	Status        string
	IsDeleted     bool
	OwnerID       *uuid.UUID
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Owner      *Owner
	Components *AssetComponents

	// UpdateImage is used to replace the asset image
	UpdateImage *string
}

type ErrNotFound struct {
	ID      uuid.UUID
	Code    string
	Message string
}

func (e ErrNotFound) Error() string {
	return e.Message
}

type ErrValidation struct {
	Field   string
	Message string
}

func (e ErrValidation) Error() string {
	return e.Message
}

type ListAssetsOption struct {
	Skip   int
	Limit  int
	SortIn string
	Search string
}

func (u Usecase) ListAssets(ctx context.Context, opt ListAssetsOption) ([]Asset, int, error) {
	assets, total, err := u.repo.ListAssets(ctx, opt)
	if err != nil {
		return nil, 0, err
	}

	publicURL, _ := u.fileStorageProvider.GetPublicURL(ctx)

	var list []Asset
	for _, a := range assets {
		if a.Image != "" {
			a.Image = fmt.Sprintf("%s/assets/%s/image/%s", publicURL, a.ID, a.Image)
		}
		list = append(list, a)
	}

	return list, total, nil
}

func (u Usecase) GetAssetByID(ctx context.Context, id uuid.UUID) (Asset, error) {
	if id == uuid.Nil {
		return Asset{}, ErrValidation{Field: "id", Message: "asset id is required"}
	}

	asset, err := u.repo.GetAssetByID(ctx, id)
	if err != nil {
		return Asset{}, err
	}

	components, err := u.GetAssetComponents(ctx, id)
	if err != nil {
		return Asset{}, err
	}
	asset.Components = &components

	publicURL, _ := u.fileStorageProvider.GetPublicURL(ctx)
	if asset.Image != "" {
		asset.Image = fmt.Sprintf("%s/assets/%s/image/%s", publicURL, asset.ID, asset.Image)
	}

	return asset, nil
}

func (u Usecase) GetAssetsByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]Asset, error) {
	if ownerID == uuid.Nil {
		return nil, ErrValidation{Field: "owner_id", Message: "owner id is required"}
	}

	assets, err := u.repo.GetAssetsByOwnerID(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	publicURL, _ := u.fileStorageProvider.GetPublicURL(ctx)
	for i, a := range assets {
		if a.Image != "" {
			assets[i].Image = fmt.Sprintf("%s/assets/%s/image/%s", publicURL, a.ID, a.Image)
		}
	}

	return assets, nil
}

// ListVacantAssets returns every non-deleted asset without a custodian,
// each enriched with its aggregated component view. An empty result is
// valid, not an error.
func (u Usecase) ListVacantAssets(ctx context.Context) ([]Asset, error) {
	assets, err := u.repo.ListVacantAssets(ctx)
	if err != nil {
		return nil, err
	}
	if len(assets) == 0 {
		return []Asset{}, nil
	}

	ids := make(uuid.UUIDs, 0, len(assets))
	for _, a := range assets {
		ids = append(ids, a.ID)
	}
	components, err := u.repo.ListComponents(ctx, ListComponentsOption{AssetIDs: ids})
	if err != nil {
		return nil, err
	}
	aggregated := AggregateComponents(components)

	publicURL, _ := u.fileStorageProvider.GetPublicURL(ctx)

	list := make([]Asset, 0, len(assets))
	for _, a := range assets {
		ac := aggregated[a.ID]
		a.Components = &ac
		if a.Image != "" {
			a.Image = fmt.Sprintf("%s/assets/%s/image/%s", publicURL, a.ID, a.Image)
		}
		list = append(list, a)
	}

	return list, nil
}

func (u Usecase) CreateAsset(ctx context.Context, asset Asset, fields OwnerFields) (Asset, error) {
	if asset.Barcode == "" {
		return Asset{}, ErrValidation{Field: "barcode", Message: "asset barcode is required"}
	}

	ownerID, err := u.ResolveOwner(ctx, fields)
	if err != nil {
		return Asset{}, err
	}

	asset.OwnerID = ownerID
	asset.Status = StatusVacant
	action := "registered"
	if ownerID != nil {
		asset.Status = StatusInService
		action = "registered and assigned"
	}
	asset.History = historyLine(actorFrom(ctx), action)

	// id is generated up front so the image can land before the insert;
	// a failed move clears the image instead of storing a dead name
	asset.ID = uuid.New()
	if asset.Image != "" {
		imagePath := fmt.Sprintf("assets/%s/image", asset.ID)
		if err := u.fileStorageProvider.MoveTempFilePublic(ctx, asset.Image, imagePath); err != nil {
			fmt.Printf("failed to move file for asset %s: %v\n", asset.ID, err)
			asset.Image = ""
		}
	}

	created, err := u.repo.CreateAsset(ctx, asset)
	if err != nil {
		return Asset{}, err
	}

	publicURL, _ := u.fileStorageProvider.GetPublicURL(ctx)
	if created.Image != "" {
		created.Image = fmt.Sprintf("%s/assets/%s/image/%s", publicURL, created.ID, created.Image)
	}

	return created, nil
}

// AssignOwner puts an asset in the custody of an existing owner. The
// existence check and the write happen atomically in the repository.
func (u Usecase) AssignOwner(ctx context.Context, assetID, ownerID uuid.UUID) (Asset, error) {
	if assetID == uuid.Nil {
		return Asset{}, ErrValidation{Field: "asset_id", Message: "asset id is required"}
	}
	if ownerID == uuid.Nil {
		return Asset{}, ErrValidation{Field: "owner_id", Message: "owner id is required"}
	}

	owner, err := u.repo.GetOwnerByID(ctx, ownerID)
	if err != nil {
		return Asset{}, err
	}

	line := historyLine(actorFrom(ctx), fmt.Sprintf("assigned to %s", owner.Name))
	asset, err := u.repo.AssignAssetOwner(ctx, assetID, ownerID, line)
	if err != nil {
		return Asset{}, err
	}

	asset.Owner = &owner
	return asset, nil
}

// UpdateAsset replaces an asset's attributes wholesale. The custodian is
// the one exception: when the supplied owner fields resolve to nobody, the
// repository keeps the custodian of the locked row rather than vacating it,
// so a concurrent assignment is never overwritten with a stale read.
func (u Usecase) UpdateAsset(ctx context.Context, id uuid.UUID, asset Asset, fields OwnerFields) (Asset, error) {
	if id == uuid.Nil {
		return Asset{}, ErrValidation{Field: "id", Message: "asset id is required"}
	}

	resolved, err := u.ResolveOwner(ctx, fields)
	if err != nil {
		return Asset{}, err
	}

	asset.OwnerID = resolved
	if resolved != nil {
		asset.Status = StatusInService
	}

	if asset.UpdateImage != nil {
		imagePath := fmt.Sprintf("assets/%s/image", id)
		if err := u.fileStorageProvider.MoveTempFilePublic(ctx, *asset.UpdateImage, imagePath); err != nil {
			fmt.Printf("failed to move file for asset %s: %v\n", id, err)
			return Asset{}, err
		}
		asset.Image = *asset.UpdateImage
	}

	line := historyLine(actorFrom(ctx), "updated")
	updated, err := u.repo.UpdateAsset(ctx, id, asset, line)
	if err != nil {
		return Asset{}, err
	}

	publicURL, _ := u.fileStorageProvider.GetPublicURL(ctx)
	if updated.Image != "" {
		updated.Image = fmt.Sprintf("%s/assets/%s/image/%s", publicURL, updated.ID, updated.Image)
	}

	return updated, nil
}

// PullOutAsset vacates an asset while keeping it active. Unlike a never
// assigned asset the record is labeled PULLED_OUT and the removal is noted
// in its history. Pulling out an already vacant asset succeeds.
func (u Usecase) PullOutAsset(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return ErrValidation{Field: "id", Message: "asset id is required"}
	}

	line := historyLine(actorFrom(ctx), "pulled out")
	return u.repo.PullOutAsset(ctx, id, line)
}

type DeleteAssetResult struct {
	Success    bool
	StatusCode int
	Message    string
}

// DeleteAsset soft-deletes an asset. Expected failures are reported in the
// result so callers can branch on them; only storage failures surface as
// errors. The last owner reference is retained for audit.
func (u Usecase) DeleteAsset(ctx context.Context, id uuid.UUID) (DeleteAssetResult, error) {
	if id == uuid.Nil {
		return DeleteAssetResult{StatusCode: 400, Message: "asset id is required"}, nil
	}

	line := historyLine(actorFrom(ctx), "deleted")
	err := u.repo.DeleteAsset(ctx, id, line)

	var nf ErrNotFound
	if errors.As(err, &nf) {
		return DeleteAssetResult{StatusCode: 404, Message: nf.Message}, nil
	}
	if err != nil {
		return DeleteAssetResult{StatusCode: 500, Message: "failed to delete asset"}, err
	}

	return DeleteAssetResult{Success: true, StatusCode: 200, Message: "asset deleted successfully"}, nil
}

func actorFrom(ctx context.Context) string {
	if name, ok := ctx.Value(config.CTX_KEY_ACTOR_NAME).(string); ok && name != "" {
		return name
	}
	if id, ok := ctx.Value(config.CTX_KEY_ACTOR_ID).(string); ok && id != "" {
		return id
	}
	return "system"
}

func historyLine(actor, action string) string {
	return fmt.Sprintf("[%s] %s by %s", time.Now().UTC().Format(time.RFC3339), action, actor)
}
