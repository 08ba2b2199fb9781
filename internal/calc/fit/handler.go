package fit

import (
	"encoding/json"
	"errors"
	"net/http"

	"Velofit/internal/logger"
	"Velofit/internal/metrics"

	"go.uber.org/zap"
)

type Handler struct {
	Logger *zap.Logger
}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	var input FitInputs
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res, err := Run(h.Logger, input)
	if err != nil {
		WriteError(w, err)
		return
	}
	WriteJSON(w, h.Logger, http.StatusOK, res)
}

func (h *Handler) Quick(w http.ResponseWriter, r *http.Request) {
	var input QuickInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res, err := CalculateQuickEstimate(input)
	if err != nil {
		WriteError(w, err)
		return
	}
	WriteJSON(w, h.Logger, http.StatusOK, res)
}

// Run is Calculate plus the logging and metrics every HTTP surface shares.
func Run(log *zap.Logger, in FitInputs) (FitOutputs, error) {
	log = logger.OrNop(log)
	out, err := Calculate(in)
	if err != nil {
		metrics.FitValidationFailures.Inc()
		log.Warn("fit inputs rejected", zap.Error(err))
		return FitOutputs{}, err
	}
	metrics.ObserveFit(string(in.Category), string(in.Ambition), out.ConfidenceScore)
	for _, warn := range out.Warnings {
		metrics.ObserveWarning(string(warn.Type), string(warn.Severity))
	}
	log.Info("fit calculated",
		zap.String("category", string(in.Category)),
		zap.String("ambition", string(in.Ambition)),
		zap.Int("confidence", out.ConfidenceScore),
		zap.Int("warnings", len(out.Warnings)),
	)
	return out, nil
}

// WriteJSON encodes v before touching the response, so an unencodable value
// becomes a 500 instead of a truncated 200.
func WriteJSON(w http.ResponseWriter, log *zap.Logger, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		logger.OrNop(log).Error("encode response", zap.Error(err))
		http.Error(w, "Response encoding error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(append(body, '\n'))
}

// WriteError maps input problems to 400 and anything else to 500.
func WriteError(w http.ResponseWriter, err error) {
	if errors.Is(err, ErrInvalidInputs) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	http.Error(w, "Calculation error", http.StatusInternalServerError)
}
