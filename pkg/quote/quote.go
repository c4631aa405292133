// Package quote prices a print job from an STL geometry summary.
//
// The price is material cost plus a flat setup fee, where material cost is
// the estimated volume times a per-cm³ material price. Because the volume
// is a fill-factor estimate, so is every quote.
package quote

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/philipparndt/stlquote/pkg/stl"
)

var ErrUnknownMaterial = errors.New("unknown material")

// Material is one printable filament and its price
type Material struct {
	Key         string  `json:"key" yaml:"-"`
	Name        string  `json:"name" yaml:"name"`
	PricePerCm3 float64 `json:"pricePerCm3" yaml:"price_per_cm3"`
	Color       string  `json:"color,omitempty" yaml:"color"`
}

// PriceList holds the pricing policy.
// UnitsPerCm3 converts model volume to cm³; 1000 for models in mm.
type PriceList struct {
	Currency    string              `json:"currency" yaml:"currency"`
	SetupFee    float64             `json:"setupFee" yaml:"setup_fee"`
	UnitsPerCm3 float64             `json:"unitsPerCm3" yaml:"units_per_cm3"`
	Materials   map[string]Material `json:"materials" yaml:"materials"`
}

// Quote is the priced estimate for one model and material
type Quote struct {
	Material     Material `json:"material"`
	Currency     string   `json:"currency"`
	VolumeCm3    float64  `json:"volumeCm3"`
	MaterialCost float64  `json:"materialCost"`
	SetupFee     float64  `json:"setupFee"`
	Total        float64  `json:"total"`
}

// DefaultPriceList returns the shop's standard FDM materials
func DefaultPriceList() PriceList {
	return PriceList{
		Currency:    "EUR",
		SetupFee:    5,
		UnitsPerCm3: 1000,
		Materials: map[string]Material{
			"pla":         {Name: "PLA Standard", PricePerCm3: 0.05, Color: "#22c55e"},
			"petg":        {Name: "PETG Resistente", PricePerCm3: 0.08, Color: "#3b82f6"},
			"abs":         {Name: "ABS Tecnico", PricePerCm3: 0.10, Color: "#ef4444"},
			"carbonFiber": {Name: "Fibra di Carbonio", PricePerCm3: 0.35, Color: "#1f2937"},
		},
	}
}

// Material looks up a material by key
func (p PriceList) Material(key string) (Material, error) {
	m, ok := p.Materials[key]
	if !ok {
		return Material{}, fmt.Errorf("%w: %q", ErrUnknownMaterial, key)
	}
	m.Key = key
	return m, nil
}

// Sorted returns all materials ordered by price, then key
func (p PriceList) Sorted() []Material {
	materials := make([]Material, 0, len(p.Materials))
	for key, m := range p.Materials {
		m.Key = key
		materials = append(materials, m)
	}

	sort.Slice(materials, func(i, j int) bool {
		if materials[i].PricePerCm3 != materials[j].PricePerCm3 {
			return materials[i].PricePerCm3 < materials[j].PricePerCm3
		}
		return materials[i].Key < materials[j].Key
	})
	return materials
}

// Quote prices summary in the given material
func (p PriceList) Quote(summary stl.GeometrySummary, materialKey string) (Quote, error) {
	material, err := p.Material(materialKey)
	if err != nil {
		return Quote{}, err
	}

	volume := summary.EstimatedVolume / p.UnitsPerCm3
	cost := volume * material.PricePerCm3

	return Quote{
		Material:     material,
		Currency:     p.Currency,
		VolumeCm3:    volume,
		MaterialCost: cost,
		SetupFee:     p.SetupFee,
		Total:        cost + p.SetupFee,
	}, nil
}

// Validate checks that every price is usable
func (p PriceList) Validate() error {
	if len(p.Materials) == 0 {
		return errors.New("price list has no materials")
	}
	if !(p.UnitsPerCm3 > 0) || math.IsInf(p.UnitsPerCm3, 0) {
		return fmt.Errorf("units_per_cm3 must be positive, got %v", p.UnitsPerCm3)
	}
	if !(p.SetupFee >= 0) || math.IsInf(p.SetupFee, 0) {
		return fmt.Errorf("setup_fee must not be negative, got %v", p.SetupFee)
	}
	for key, m := range p.Materials {
		if !(m.PricePerCm3 >= 0) || math.IsInf(m.PricePerCm3, 0) {
			return fmt.Errorf("material %q: price_per_cm3 must not be negative, got %v", key, m.PricePerCm3)
		}
	}
	return nil
}
