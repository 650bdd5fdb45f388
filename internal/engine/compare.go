package engine

import (
	"github.com/piwi3910/SpritePack/internal/model"
)

// ComparisonResult holds the packing result and computed statistics for a
// single strategy.
type ComparisonResult struct {
	Strategy     model.Strategy
	Result       model.SheetResult
	Area         int
	WastePercent float64
	Err          error // set when the strategy cannot take these sprites
}

// CompareStrategies packs the same sprites with every strategy and returns the
// results in model.Strategies() order. Strategies that reject the input, such
// as box with more than four sprites, carry the error instead of a result.
func CompareStrategies(base model.PackSettings, sprites []model.Sprite) []ComparisonResult {
	est := model.EstimateSheet(sprites)
	results := make([]ComparisonResult, 0, len(model.Strategies()))

	for _, strategy := range model.Strategies() {
		settings := base
		settings.Strategy = strategy

		result, err := New(settings).Pack(sprites)
		if err != nil {
			results = append(results, ComparisonResult{Strategy: strategy, Err: err})
			continue
		}

		results = append(results, ComparisonResult{
			Strategy:     strategy,
			Result:       result,
			Area:         result.TotalArea(),
			WastePercent: est.Waste(result),
		})
	}

	return results
}

// Best returns the successful comparison with the smallest sheet area. The
// earlier strategy wins a tie. ok is false when every strategy failed.
func Best(results []ComparisonResult) (best ComparisonResult, ok bool) {
	for _, r := range results {
		if r.Err != nil {
			continue
		}
		if !ok || r.Area < best.Area {
			best, ok = r, true
		}
	}
	return best, ok
}
