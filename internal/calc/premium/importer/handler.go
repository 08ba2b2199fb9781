package importer

import (
	"net/http"

	"Velofit/internal/calc/fit"
	"Velofit/internal/logger"

	"go.uber.org/zap"
)

const MaxUploadSize = 10 << 20 // 10MB

type Handler struct {
	Logger *zap.Logger
}

type RowResult struct {
	Row     int             `json:"row"`
	Outputs *fit.FitOutputs `json:"outputs,omitempty"`
	Error   string          `json:"error,omitempty"`
}

type ImportResult struct {
	Count   int         `json:"count"`
	Failed  int         `json:"failed"`
	Results []RowResult `json:"results"`
}

func (h *Handler) Fit(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxUploadSize)
	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "File required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	rows, err := ParseWorkbook(file)
	if err != nil {
		logger.OrNop(h.Logger).Warn("rejected workbook", zap.Error(err))
		http.Error(w, "Invalid file: "+err.Error(), http.StatusBadRequest)
		return
	}

	res := ImportResult{Results: make([]RowResult, 0, len(rows))}
	for _, row := range rows {
		if row.Err != nil {
			res.Failed++
			res.Results = append(res.Results, RowResult{Row: row.Line, Error: row.Err.Error()})
			continue
		}
		out, err := fit.Run(h.Logger, row.Inputs)
		if err != nil {
			res.Failed++
			res.Results = append(res.Results, RowResult{Row: row.Line, Error: err.Error()})
			continue
		}
		res.Count++
		res.Results = append(res.Results, RowResult{Row: row.Line, Outputs: &out})
	}

	fit.WriteJSON(w, h.Logger, http.StatusOK, res)
}
