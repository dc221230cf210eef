package internal

import (
	"fmt"

	"smartmoney/internal/domain"

	"github.com/maja42/goval"
)

// FilterScoredTickers evaluates a caller-supplied boolean expression
// against each scored ticker and keeps the ones that pass. Expressions
// use the same evaluator syntax as regular math, e.g.
//
//	totalScore >= 7 && consensus >= 1.5
//	confidence == "HIGH" || signalCount > 3
//
// Order of the input ranking is preserved.
func FilterScoredTickers(expression string, scored []domain.ScoredTicker) ([]domain.ScoredTicker, error) {
	eval := goval.NewEvaluator()

	out := []domain.ScoredTicker{}
	for _, st := range scored {
		vars := map[string]interface{}{
			"ticker":      st.Ticker,
			"totalScore":  st.TotalScore,
			"confidence":  string(st.Confidence),
			"signalCount": len(st.Signals),
			"authority":   st.Dimensions.Authority,
			"strength":    st.Dimensions.Strength,
			"consensus":   st.Dimensions.Consensus,
			"freshness":   st.Dimensions.Freshness,
		}
		result, err := eval.Evaluate(expression, vars, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to evaluate screen expression: %w", err)
		}
		keep, ok := result.(bool)
		if !ok {
			return nil, fmt.Errorf("screen expression must evaluate to a boolean, got %T", result)
		}
		if keep {
			out = append(out, st)
		}
	}

	return out, nil
}
