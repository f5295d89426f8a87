package database

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/assetrack/assetrack/internal/usecase"
)

// Component rows live independently of the asset record; a null asset_id
// marks an orphan, which no aggregation path may read.
type Component struct {
	ID          uuid.UUID  `gorm:"column:id;primaryKey;type:uuid;default:uuid_generate_v4()"`
	AssetID     *uuid.UUID `gorm:"column:asset_id;type:uuid"`
	Type        string     `gorm:"column:type;type:varchar(64)"`
	Description string     `gorm:"column:description;type:text"`
	CreatedAt   time.Time  `gorm:"column:created_at"`
	UpdatedAt   time.Time  `gorm:"column:updated_at"`
}

func (Component) TableName() string {
	return "components"
}

func (s *service) ListComponents(ctx context.Context, opt usecase.ListComponentsOption) ([]usecase.Component, error) {
	var (
		components  []Component
		ucomponents []usecase.Component
	)

	db := s.db.Model([]Component{}).WithContext(ctx).Where("asset_id IS NOT NULL")

	if len(opt.AssetIDs) > 0 {
		db = db.Where("asset_id IN ?", opt.AssetIDs)
	}
	if opt.Type != "" {
		db = db.Where("type = ?", opt.Type)
	}

	err := db.Order("created_at ASC, id ASC").Find(&components).Error
	if err != nil {
		return nil, err
	}

	for _, c := range components {
		ucomponents = append(ucomponents, c.ConvertToUsecase())
	}

	return ucomponents, nil
}

// Convert core model to Usecase
func (c Component) ConvertToUsecase() usecase.Component {
	return usecase.Component{
		ID:          c.ID,
		AssetID:     c.AssetID,
		Type:        c.Type,
		Description: c.Description,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
