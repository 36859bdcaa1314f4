package domain

import (
	"fmt"
	"strings"
)

// CargoDetails is an immutable snapshot of a cargo form submission.
// A new submission replaces the prior snapshot wholesale.
type CargoDetails struct {
	CargoType  string
	WeightTons float64
	Budget     float64
}

// Validate rejects incomplete or non-positive cargo input before any
// recommendation work happens. The returned error names the offending
// field so it can be surfaced inline.
func (c CargoDetails) Validate() error {
	if strings.TrimSpace(c.CargoType) == "" {
		return fmt.Errorf("%w: cargo_type must be non-empty", ErrInvalidInput)
	}
	if c.WeightTons <= 0 {
		return fmt.Errorf("%w: weight_tons must be greater than 0", ErrInvalidInput)
	}
	if c.Budget <= 0 {
		return fmt.Errorf("%w: budget must be greater than 0", ErrInvalidInput)
	}
	return nil
}

// CargoTypeCatalog is the fixed suggestion list served to the cargo
// form.
var CargoTypeCatalog = []string{
	"Mercadorias Gerais",
	"Eletrônicos",
	"Têxteis",
	"Maquinário",
	"Químicos",
	"Alimentos",
	"Autopeças",
	"Farmacêuticos",
	"Móveis",
	"Materiais de Construção",
}
