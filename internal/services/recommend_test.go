package services

import (
	"testing"

	"freight-route-service/internal/domain"
)

func TestRecommendRulePrecedence(t *testing.T) {
	cases := []struct {
		name      string
		origin    string
		cargo     domain.CargoDetails
		wantMode  domain.Mode
		wantScore int
	}{
		{
			name:      "coastal heavy cheap goes waterway",
			origin:    "Rio de Janeiro, RJ",
			cargo:     domain.CargoDetails{CargoType: "Mercadorias Gerais", WeightTons: 1500, Budget: 4000},
			wantMode:  domain.ModeWaterway,
			wantScore: 89,
		},
		{
			name:      "coastal matching is case-insensitive",
			origin:    "RIO DE JANEIRO",
			cargo:     domain.CargoDetails{CargoType: "Têxteis", WeightTons: 1200, Budget: 3000},
			wantMode:  domain.ModeWaterway,
			wantScore: 89,
		},
		{
			name:      "salvador is a coastal keyword",
			origin:    "Salvador, BA",
			cargo:     domain.CargoDetails{CargoType: "Móveis", WeightTons: 1001, Budget: 4999},
			wantMode:  domain.ModeWaterway,
			wantScore: 89,
		},
		{
			name:      "coastal but light cargo falls through",
			origin:    "Rio de Janeiro",
			cargo:     domain.CargoDetails{CargoType: "Móveis", WeightTons: 500, Budget: 3000},
			wantMode:  domain.ModeRoad,
			wantScore: 72,
		},
		{
			name:      "coastal but generous budget falls through to rail",
			origin:    "Salvador",
			cargo:     domain.CargoDetails{CargoType: "Móveis", WeightTons: 2500, Budget: 9000},
			wantMode:  domain.ModeRail,
			wantScore: 85,
		},
		{
			name:      "electronics go by air",
			origin:    "Curitiba, PR",
			cargo:     domain.CargoDetails{CargoType: "Eletrônicos", WeightTons: 10, Budget: 9000},
			wantMode:  domain.ModeAir,
			wantScore: 78,
		},
		{
			name:      "pharmaceuticals go by air even when heavy",
			origin:    "Curitiba, PR",
			cargo:     domain.CargoDetails{CargoType: "farmacêuticos", WeightTons: 3000, Budget: 20000},
			wantMode:  domain.ModeAir,
			wantScore: 78,
		},
		{
			name:      "heavy cargo goes by rail",
			origin:    "Brasília, DF",
			cargo:     domain.CargoDetails{CargoType: "Maquinário", WeightTons: 2001, Budget: 10000},
			wantMode:  domain.ModeRail,
			wantScore: 85,
		},
		{
			name:      "default is road",
			origin:    "Curitiba, PR",
			cargo:     domain.CargoDetails{CargoType: "Móveis", WeightTons: 200, Budget: 8000},
			wantMode:  domain.ModeRoad,
			wantScore: 72,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Recommend(tc.origin, tc.cargo)
			if got.Mode != tc.wantMode {
				t.Fatalf("mode = %q, want %q", got.Mode, tc.wantMode)
			}
			if got.Confidence != tc.wantScore {
				t.Fatalf("confidence = %d, want %d", got.Confidence, tc.wantScore)
			}
			if got.Rationale == "" {
				t.Fatal("rationale must be non-empty")
			}
		})
	}
}

func TestRecommendIsDeterministic(t *testing.T) {
	cargo := domain.CargoDetails{CargoType: "Eletrônicos", WeightTons: 50, Budget: 6000}

	first := Recommend("Rio de Janeiro", cargo)
	second := Recommend("Rio de Janeiro", cargo)

	if first != second {
		t.Fatalf("recommendation not deterministic: %+v vs %+v", first, second)
	}
}
