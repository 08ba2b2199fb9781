package recommend

import (
	"encoding/json"
	"net/http"

	"Velofit/internal/calc/fit"
)

type Handler struct{}

func (h *Handler) Stem(w http.ResponseWriter, r *http.Request) {
	var input StemInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res, err := Stem(input)
	if err != nil {
		fit.WriteError(w, err)
		return
	}
	fit.WriteJSON(w, nil, http.StatusOK, res)
}
