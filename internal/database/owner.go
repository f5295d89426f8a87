package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/assetrack/assetrack/internal/usecase"
)

type Owner struct {
	ID          uuid.UUID `gorm:"column:id;primaryKey;type:uuid;default:uuid_generate_v4()"`
	Name        string    `gorm:"column:name;type:varchar(255)"`
	Email       string    `gorm:"column:email;type:varchar(255);index"`
	Company     string    `gorm:"column:company;type:varchar(255)"`
	Department  string    `gorm:"column:department;type:varchar(255)"`
	Designation string    `gorm:"column:designation;type:varchar(255)"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`

	Assets []Asset `gorm:"foreignKey:OwnerID"`
}

func (Owner) TableName() string {
	return "owners"
}

// GetOrCreateOwner matches on the full candidate field set, so identical
// fields for the same person always resolve to the same row.
func (s *service) GetOrCreateOwner(ctx context.Context, uo usecase.Owner) (usecase.Owner, error) {
	o := Owner{
		Name:        uo.Name,
		Email:       uo.Email,
		Company:     uo.Company,
		Department:  uo.Department,
		Designation: uo.Designation,
	}

	err := s.db.WithContext(ctx).
		Where(map[string]any{
			"name":        uo.Name,
			"email":       uo.Email,
			"company":     uo.Company,
			"department":  uo.Department,
			"designation": uo.Designation,
		}).
		FirstOrCreate(&o).
		Error
	if err != nil {
		return usecase.Owner{}, err
	}

	return o.ConvertToUsecase(), nil
}

func (s *service) GetOwnerByID(ctx context.Context, id uuid.UUID) (usecase.Owner, error) {
	var o Owner

	err := s.db.WithContext(ctx).Where("id = ?", id).First(&o).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return usecase.Owner{}, usecase.ErrNotFound{
			ID:      id,
			Code:    "OWNER_NOT_FOUND",
			Message: fmt.Sprintf("owner %s not found", id),
		}
	}
	if err != nil {
		return usecase.Owner{}, err
	}

	return o.ConvertToUsecase(), nil
}

// Convert core model to Usecase
func (o Owner) ConvertToUsecase() usecase.Owner {
	return usecase.Owner{
		ID:          o.ID,
		Name:        o.Name,
		Email:       o.Email,
		Company:     o.Company,
		Department:  o.Department,
		Designation: o.Designation,
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
	}
}
