package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/assetrack/assetrack/internal/usecase"
)

// Asset uses an explicit delete flag instead of gorm's soft delete so a
// deleted row stays readable for audit, custodian reference included.
type Asset struct {
	ID            uuid.UUID  `gorm:"column:id;primaryKey;type:uuid;default:uuid_generate_v4()"`
	Barcode       string     `gorm:"column:barcode;type:varchar(255);uniqueIndex"`
	Type          string     `gorm:"column:type;type:varchar(255)"`
	DateAcquired  *time.Time `gorm:"column:date_acquired"`
	Brand         string     `gorm:"column:brand;type:varchar(255)"`
	Model         string     `gorm:"column:model;type:varchar(255)"`
	Size          string     `gorm:"column:size;type:varchar(255)"`
	Color         string     `gorm:"column:color;type:varchar(255)"`
	SerialNo      string     `gorm:"column:serial_no;type:varchar(255)"`
	PO            string     `gorm:"column:po;type:varchar(255)"`
	Warranty      string     `gorm:"column:warranty;type:varchar(255)"`
	Cost          float64    `gorm:"column:cost"`
	Remarks       string     `gorm:"column:remarks;type:text"`
	LIDescription string     `gorm:"column:li_description;type:text"`
	History       string     `gorm:"column:history;type:text"`
	Image         string     `gorm:"column:image;type:varchar(255)"`
	Status        string     `gorm:"column:status;type:varchar(32)"`
	IsDeleted     bool       `gorm:"column:is_deleted;default:false"`
	OwnerID       *uuid.UUID `gorm:"column:owner_id;type:uuid;index"`
	Owner         *Owner     `gorm:"foreignKey:OwnerID;"`
	CreatedAt     time.Time  `gorm:"column:created_at"`
	UpdatedAt     time.Time  `gorm:"column:updated_at"`

	Components []Component `gorm:"foreignKey:AssetID"`
}

func (Asset) TableName() string {
	return "assets"
}

func (s *service) ListAssets(ctx context.Context, opt usecase.ListAssetsOption) ([]usecase.Asset, int, error) {
	var (
		assets  []Asset
		uassets []usecase.Asset
		count   int64
	)

	db := s.db.Model([]Asset{}).WithContext(ctx).Where("assets.is_deleted = ?", false)

	if opt.Search != "" {
		q := "%" + opt.Search + "%"
		db = db.Where(
			"assets.barcode ILIKE ? OR assets.brand ILIKE ? OR assets.model ILIKE ? OR assets.serial_no ILIKE ?",
			q, q, q, q,
		)
	}

	// id breaks created_at ties so identical calls page identically
	order := "assets.created_at ASC, assets.id ASC"
	if opt.SortIn == "desc" {
		order = "assets.created_at DESC, assets.id DESC"
	}

	err := db.
		Joins("Owner").
		Count(&count).
		Order(order).
		Limit(opt.Limit).
		Offset(opt.Skip).
		Find(&assets).
		Error

	if err != nil {
		return nil, 0, err
	}

	for _, a := range assets {
		ua := a.ConvertToUsecase()
		if a.Owner != nil {
			owner := a.Owner.ConvertToUsecase()
			ua.Owner = &owner
		}
		uassets = append(uassets, ua)
	}

	return uassets, int(count), nil
}

func (s *service) GetAssetByID(ctx context.Context, id uuid.UUID) (usecase.Asset, error) {
	var a Asset

	err := s.db.WithContext(ctx).
		Preload("Owner").
		Where("id = ? AND is_deleted = ?", id, false).
		First(&a).
		Error
	if err != nil {
		return usecase.Asset{}, assetErr(err, id)
	}

	ua := a.ConvertToUsecase()
	if a.Owner != nil {
		owner := a.Owner.ConvertToUsecase()
		ua.Owner = &owner
	}

	return ua, nil
}

func (s *service) GetAssetsByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]usecase.Asset, error) {
	var (
		assets  []Asset
		uassets []usecase.Asset
	)

	err := s.db.WithContext(ctx).
		Where("owner_id = ? AND is_deleted = ?", ownerID, false).
		Order("created_at ASC, id ASC").
		Find(&assets).
		Error
	if err != nil {
		return nil, err
	}

	for _, a := range assets {
		uassets = append(uassets, a.ConvertToUsecase())
	}

	return uassets, nil
}

func (s *service) ListVacantAssets(ctx context.Context) ([]usecase.Asset, error) {
	var (
		assets  []Asset
		uassets []usecase.Asset
	)

	err := s.db.WithContext(ctx).
		Where("owner_id IS NULL AND is_deleted = ?", false).
		Order("created_at ASC, id ASC").
		Find(&assets).
		Error
	if err != nil {
		return nil, err
	}

	for _, a := range assets {
		uassets = append(uassets, a.ConvertToUsecase())
	}

	return uassets, nil
}

func (s *service) CreateAsset(ctx context.Context, ua usecase.Asset) (usecase.Asset, error) {
	a := Asset{
		ID:            ua.ID,
		Barcode:       ua.Barcode,
		Type:          ua.Type,
		DateAcquired:  ua.DateAcquired,
		Brand:         ua.Brand,
		Model:         ua.Model,
		Size:          ua.Size,
		Color:         ua.Color,
		SerialNo:      ua.SerialNo,
		PO:            ua.PO,
		Warranty:      ua.Warranty,
		Cost:          ua.Cost,
		Remarks:       ua.Remarks,
		LIDescription: ua.LIDescription,
		History:       ua.History,
		Image:         ua.Image,
		Status:        ua.Status,
		OwnerID:       ua.OwnerID,
	}

	err := s.db.WithContext(ctx).Create(&a).Error
	if err != nil {
		return usecase.Asset{}, err
	}

	return a.ConvertToUsecase(), nil
}

// UpdateAsset replaces the asset's attributes wholesale inside a row-locked
// transaction. History is append-only. A nil owner means preserve: the
// custodian and status of the locked row stand, so the decision is taken
// against the committed state, not a read from before the lock.
func (s *service) UpdateAsset(ctx context.Context, id uuid.UUID, ua usecase.Asset, history string) (usecase.Asset, error) {
	var a Asset

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ? AND is_deleted = ?", id, false).
			First(&a).Error; err != nil {
			return err
		}

		a.Barcode = ua.Barcode
		a.Type = ua.Type
		a.DateAcquired = ua.DateAcquired
		a.Brand = ua.Brand
		a.Model = ua.Model
		a.Size = ua.Size
		a.Color = ua.Color
		a.SerialNo = ua.SerialNo
		a.PO = ua.PO
		a.Warranty = ua.Warranty
		a.Cost = ua.Cost
		a.Remarks = ua.Remarks
		a.LIDescription = ua.LIDescription
		if ua.Image != "" {
			a.Image = ua.Image
		}
		if ua.OwnerID != nil {
			a.OwnerID = ua.OwnerID
			a.Status = ua.Status
		}
		a.History = appendHistory(a.History, history)

		return tx.Save(&a).Error
	})
	if err != nil {
		return usecase.Asset{}, assetErr(err, id)
	}

	return a.ConvertToUsecase(), nil
}

func (s *service) AssignAssetOwner(ctx context.Context, id, ownerID uuid.UUID, history string) (usecase.Asset, error) {
	var a Asset

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ? AND is_deleted = ?", id, false).
			First(&a).Error; err != nil {
			return err
		}

		a.OwnerID = &ownerID
		a.Status = usecase.StatusInService
		a.History = appendHistory(a.History, history)

		return tx.Save(&a).Error
	})
	if err != nil {
		return usecase.Asset{}, assetErr(err, id)
	}

	return a.ConvertToUsecase(), nil
}

func (s *service) PullOutAsset(ctx context.Context, id uuid.UUID, history string) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var a Asset
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ? AND is_deleted = ?", id, false).
			First(&a).Error; err != nil {
			return err
		}

		a.OwnerID = nil
		a.Status = usecase.StatusPulledOut
		a.History = appendHistory(a.History, history)

		return tx.Save(&a).Error
	})

	return assetErr(err, id)
}

// DeleteAsset flips the delete flag; the row and its last owner reference
// survive for audit. Deleting an already deleted asset reports not found.
func (s *service) DeleteAsset(ctx context.Context, id uuid.UUID, history string) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var a Asset
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ? AND is_deleted = ?", id, false).
			First(&a).Error; err != nil {
			return err
		}

		a.IsDeleted = true
		a.Status = usecase.StatusDeleted
		a.History = appendHistory(a.History, history)

		return tx.Save(&a).Error
	})

	return assetErr(err, id)
}

func appendHistory(history, line string) string {
	if history == "" {
		return line
	}
	return history + "\n" + line
}

// assetErr maps gorm's not-found to the typed usecase error.
func assetErr(err error, id uuid.UUID) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return usecase.ErrNotFound{
			ID:      id,
			Code:    "ASSET_NOT_FOUND",
			Message: fmt.Sprintf("asset %s not found", id),
		}
	}
	return err
}

// Convert core model to Usecase
func (a Asset) ConvertToUsecase() usecase.Asset {
	return usecase.Asset{
		ID:            a.ID,
		Barcode:       a.Barcode,
		Type:          a.Type,
		DateAcquired:  a.DateAcquired,
		Brand:         a.Brand,
		Model:         a.Model,
		Size:          a.Size,
		Color:         a.Color,
		SerialNo:      a.SerialNo,
		PO:            a.PO,
		Warranty:      a.Warranty,
		Cost:          a.Cost,
		Remarks:       a.Remarks,
		LIDescription: a.LIDescription,
		History:       a.History,
		Image:         a.Image,
		Status:        a.Status,
		IsDeleted:     a.IsDeleted,
		OwnerID:       a.OwnerID,
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}
}
