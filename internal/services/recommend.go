package services

import (
	"strings"

	"freight-route-service/internal/domain"
)

// Keyword lists are fixed, Portuguese and matched as case-insensitive
// substrings. Deliberately small: the heuristic mirrors the original
// decision table rather than a generalized rule engine.
var (
	coastalCityKeywords   = []string{"rio", "salvador"}
	highValueTypeKeywords = []string{"eletrônicos", "farmacêuticos"}
)

// Recommend picks a transport mode for the given origin and cargo.
// Pure and deterministic: rules are evaluated in fixed precedence
// order and the first match wins; there is no partial scoring or
// blending between rules.
func Recommend(originAddress string, cargo domain.CargoDetails) domain.ModeRecommendation {
	origin := strings.ToLower(originAddress)
	cargoType := strings.ToLower(cargo.CargoType)

	// Rule 1: coastal origin with heavy cargo on a tight budget.
	if containsAny(origin, coastalCityKeywords) && cargo.WeightTons > 1000 && cargo.Budget < 5000 {
		return domain.ModeRecommendation{
			Mode:       domain.ModeWaterway,
			Confidence: 89,
			Rationale: "Transporte aquaviário é recomendado devido à proximidade portuária, peso elevado da carga e " +
				"restrições orçamentárias. Esta opção oferece o melhor custo-benefício para cargas pesadas.",
		}
	}

	// Rule 2: high-value, time-sensitive cargo types.
	if containsAny(cargoType, highValueTypeKeywords) {
		return domain.ModeRecommendation{
			Mode:       domain.ModeAir,
			Confidence: 78,
			Rationale: "Transporte aéreo é recomendado para produtos de alto valor e sensíveis ao tempo. " +
				"Garante entrega rápida e segura.",
		}
	}

	// Rule 3: heavy cargo goes by rail.
	if cargo.WeightTons > 2000 {
		return domain.ModeRecommendation{
			Mode:       domain.ModeRail,
			Confidence: 85,
			Rationale: "Transporte ferroviário é recomendado para cargas pesadas. " +
				"Oferece excelente relação custo-benefício e menor impacto ambiental.",
		}
	}

	// Rule 4: default.
	return domain.ModeRecommendation{
		Mode:       domain.ModeRoad,
		Confidence: 72,
		Rationale: "Transporte rodoviário oferece flexibilidade de entrega porta a porta e é adequado para esta " +
			"combinação de peso, tipo de carga e orçamento.",
	}
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
