package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Owner is the custodian currently responsible for zero or more assets.
// Its record lifecycle is owned by the resolver; assets only reference it.
type Owner struct {
	ID          uuid.UUID
	Name        string
	Email       string
	Company     string
	Department  string
	Designation string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// OwnerFields are the custodian-identifying fields a caller may supply
// alongside an asset payload.
type OwnerFields struct {
	Name        string
	Email       string
	Company     string
	Department  string
	Designation string
}

func (f OwnerFields) IsEmpty() bool {
	return f.Name == "" &&
		f.Email == "" &&
		f.Company == "" &&
		f.Department == "" &&
		f.Designation == ""
}

// ResolveOwner returns nil when no custodian fields are supplied, otherwise
// the id of an existing or newly created owner matching them.
func (u Usecase) ResolveOwner(ctx context.Context, fields OwnerFields) (*uuid.UUID, error) {
	if fields.IsEmpty() {
		return nil, nil
	}

	owner, err := u.repo.GetOrCreateOwner(ctx, Owner{
		Name:        fields.Name,
		Email:       fields.Email,
		Company:     fields.Company,
		Department:  fields.Department,
		Designation: fields.Designation,
	})
	if err != nil {
		return nil, err
	}

	return &owner.ID, nil
}

func (u Usecase) GetOwnerByID(ctx context.Context, id uuid.UUID) (Owner, error) {
	if id == uuid.Nil {
		return Owner{}, ErrValidation{Field: "owner_id", Message: "owner id is required"}
	}
	return u.repo.GetOwnerByID(ctx, id)
}
