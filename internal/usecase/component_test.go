package usecase

import (
	"testing"

	"github.com/google/uuid"
)

func TestAggregateComponents(t *testing.T) {
	assetA := uuid.New()
	assetB := uuid.New()

	components := []Component{
		{AssetID: &assetA, Type: ComponentTypeRAM, Description: "16GB"},
		{AssetID: &assetA, Type: ComponentTypeRAM, Description: "8GB"},
		{AssetID: &assetA, Type: ComponentTypeSSD, Description: "256GB"},
		{AssetID: &assetA, Type: ComponentTypeSSD, Description: "512GB"},
		{AssetID: &assetA, Type: ComponentTypeGPU, Description: "RTX 3060"},
		{AssetID: &assetB, Type: ComponentTypeHDD, Description: "1TB"},
		{AssetID: nil, Type: ComponentTypeRAM, Description: "32GB"},
	}

	aggregated := AggregateComponents(components)

	if len(aggregated) != 2 {
		t.Fatalf("expected 2 assets, got %d", len(aggregated))
	}

	a := aggregated[assetA]
	if a.RAM != "16GB" {
		t.Fatalf("expected first RAM match 16GB, got %q", a.RAM)
	}
	if got := a.SSDDisplay(); got != "256GB, 512GB" {
		t.Fatalf("expected joined SSDs, got %q", got)
	}
	if a.HDD != "" {
		t.Fatalf("expected no HDD, got %q", a.HDD)
	}
	if a.GPU != "RTX 3060" {
		t.Fatalf("expected GPU RTX 3060, got %q", a.GPU)
	}

	b := aggregated[assetB]
	if b.HDD != "1TB" {
		t.Fatalf("expected HDD 1TB, got %q", b.HDD)
	}
	if b.RAM != "" || len(b.SSDs) != 0 || b.GPU != "" {
		t.Fatalf("expected only HDD populated, got %+v", b)
	}
}

func TestAggregateComponentsSkipsOrphans(t *testing.T) {
	aggregated := AggregateComponents([]Component{
		{AssetID: nil, Type: ComponentTypeSSD, Description: "512GB"},
		{AssetID: nil, Type: ComponentTypeGPU, Description: "GTX 1650"},
	})
	if len(aggregated) != 0 {
		t.Fatalf("expected empty map for orphan rows, got %+v", aggregated)
	}
}

func TestAggregateComponentsEmptyInput(t *testing.T) {
	if got := AggregateComponents(nil); len(got) != 0 {
		t.Fatalf("expected empty map, got %+v", got)
	}
}

func TestSSDDisplaySingle(t *testing.T) {
	c := AssetComponents{SSDs: []string{"1TB"}}
	if got := c.SSDDisplay(); got != "1TB" {
		t.Fatalf("expected 1TB, got %q", got)
	}
}
