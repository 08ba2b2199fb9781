package report

import (
	"bytes"
	"encoding/json"
	"net/http"
	"time"

	"Velofit/internal/calc/fit"
	"Velofit/internal/logger"

	"go.uber.org/zap"
)

type Input struct {
	RiderName string `json:"riderName"`
	fit.FitInputs
}

type Handler struct {
	Logger *zap.Logger
}

func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	out, err := fit.Run(h.Logger, input.FitInputs)
	if err != nil {
		fit.WriteError(w, err)
		return
	}

	var buf bytes.Buffer
	if err := Render(&buf, input.RiderName, input.FitInputs, out, time.Now()); err != nil {
		logger.OrNop(h.Logger).Error("render fit report", zap.Error(err))
		http.Error(w, "Report generation error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\"fit-report.pdf\"")
	w.Write(buf.Bytes())
}
