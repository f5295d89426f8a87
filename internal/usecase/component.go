package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Component is a hardware part description attached to at most one asset.
// A nil AssetID means the row is orphaned; orphans are never aggregated.
type Component struct {
	ID          uuid.UUID
	AssetID     *uuid.UUID
	Type        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

const (
	ComponentTypeRAM = "RAM"
	ComponentTypeSSD = "SSD"
	ComponentTypeHDD = "HDD"
	ComponentTypeGPU = "GPU"
)

type ListComponentsOption struct {
	AssetIDs uuid.UUIDs
	Type     string
}

// AssetComponents is the fixed-shape specification view of one asset's
// hardware. Only one RAM/HDD/GPU slot is modeled; SSD keeps the full list.
type AssetComponents struct {
	RAM  string
	SSDs []string
	HDD  string
	GPU  string
}

// SSDDisplay joins the SSD descriptions for display, e.g. "256GB, 512GB".
func (c AssetComponents) SSDDisplay() string {
	return strings.Join(c.SSDs, ", ")
}

// AggregateComponents groups component rows by owning asset and reduces
// each group to its AssetComponents view. RAM, HDD and GPU take the first
// matching description in input order; SSD collects every description.
func AggregateComponents(components []Component) map[uuid.UUID]AssetComponents {
	aggregated := make(map[uuid.UUID]AssetComponents)

	for _, c := range components {
		if c.AssetID == nil {
			continue
		}
		ac := aggregated[*c.AssetID]
		switch c.Type {
		case ComponentTypeRAM:
			if ac.RAM == "" {
				ac.RAM = c.Description
			}
		case ComponentTypeSSD:
			ac.SSDs = append(ac.SSDs, c.Description)
		case ComponentTypeHDD:
			if ac.HDD == "" {
				ac.HDD = c.Description
			}
		case ComponentTypeGPU:
			if ac.GPU == "" {
				ac.GPU = c.Description
			}
		}
		aggregated[*c.AssetID] = ac
	}

	return aggregated
}

func (u Usecase) GetAssetComponents(ctx context.Context, assetID uuid.UUID) (AssetComponents, error) {
	list, err := u.repo.ListComponents(ctx, ListComponentsOption{
		AssetIDs: uuid.UUIDs{assetID},
	})
	if err != nil {
		return AssetComponents{}, err
	}
	return AggregateComponents(list)[assetID], nil
}
