package batch

import (
	"fmt"

	"Velofit/internal/calc/fit"

	"go.uber.org/zap"
)

const MaxItems = 200

type Input struct {
	Items []fit.FitInputs `json:"items"`
}

// ItemResult holds either Outputs or Error for the item at Index.
type ItemResult struct {
	Index   int             `json:"index"`
	Outputs *fit.FitOutputs `json:"outputs,omitempty"`
	Error   string          `json:"error,omitempty"`
}

type Result struct {
	Succeeded int          `json:"succeeded"`
	Failed    int          `json:"failed"`
	Results   []ItemResult `json:"results"`
}

// Calculate runs every item independently; one invalid rider does not fail
// the batch. Only an empty or oversized batch is an error.
func Calculate(log *zap.Logger, in Input) (Result, error) {
	if len(in.Items) == 0 {
		return Result{}, fmt.Errorf("no items")
	}
	if len(in.Items) > MaxItems {
		return Result{}, fmt.Errorf("too many items: %d, limit %d", len(in.Items), MaxItems)
	}

	out := Result{Results: make([]ItemResult, 0, len(in.Items))}
	for i, item := range in.Items {
		res, err := fit.Run(log, item)
		if err != nil {
			out.Failed++
			out.Results = append(out.Results, ItemResult{Index: i, Error: err.Error()})
			continue
		}
		out.Succeeded++
		out.Results = append(out.Results, ItemResult{Index: i, Outputs: &res})
	}
	return out, nil
}
