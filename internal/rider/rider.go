package rider

import (
	"encoding/json"
	"errors"
	"net/http"

	"Velofit/internal/auth"
	"Velofit/internal/calc/fit"
	"Velofit/internal/logger"
	"Velofit/internal/repo"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type Handler struct {
	Riders repo.RiderRepository
	Fits   repo.FitRepository
	Logger *zap.Logger
}

type FitRequest struct {
	Category fit.BikeCategory `json:"category"`
	Ambition fit.Ambition     `json:"ambition"`
}

type FitResponse struct {
	ID      string         `json:"id"`
	Outputs fit.FitOutputs `json:"outputs"`
}

// BuildInputs turns a stored profile into engine inputs. The 1-5 self
// assessments are mapped onto the 0-10 engine scale here and nowhere else.
func BuildInputs(p repo.RiderProfile, category fit.BikeCategory, ambition fit.Ambition) fit.FitInputs {
	return fit.FitInputs{
		Category:         category,
		Ambition:         ambition,
		HeightMm:         p.HeightMm,
		InseamMm:         p.InseamMm,
		FlexibilityScore: fit.MapFlexibilityScore(p.Flexibility),
		CoreScore:        fit.MapCoreScore(p.Core),

		TorsoMm:         p.TorsoMm,
		ArmMm:           p.ArmMm,
		ShoulderWidthMm: p.ShoulderWidthMm,
		FootLengthMm:    p.FootLengthMm,
		FemurMm:         p.FemurMm,
		Experience:      fit.ExperienceLevel(p.Experience),

		CurrentSaddleHeightMm: p.CurrentSaddleHeightMm,
		CurrentSetbackMm:      p.CurrentSetbackMm,
		CurrentDropMm:         p.CurrentDropMm,
		CurrentReachMm:        p.CurrentReachMm,

		FrameStackMm:     p.FrameStackMm,
		FrameReachMm:     p.FrameReachMm,
		StemLengthMm:     p.StemLengthMm,
		StemAngleDeg:     p.StemAngleDeg,
		SpacerStackMm:    p.SpacerStackMm,
		SeatTubeAngleDeg: p.SeatTubeAngleDeg,
	}
}

// checkProfile rejects what can never become valid engine input. Range
// checks on measurements are left to the engine so the rider sees the same
// messages everywhere.
func checkProfile(p repo.RiderProfile) string {
	switch {
	case p.HeightMm <= 0 || p.InseamMm <= 0:
		return "Height and inseam are required"
	case p.Flexibility < 0 || p.Flexibility > 5:
		return "Flexibility must be between 1 and 5"
	case p.Core < 0 || p.Core > 5:
		return "Core must be between 1 and 5"
	}
	return ""
}

func (h *Handler) GetRider(w http.ResponseWriter, r *http.Request) {
	riderID, ok := auth.RiderID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	p, err := h.Riders.GetRiderProfile(r.Context(), riderID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			http.Error(w, "Rider profile not found", http.StatusNotFound)
			return
		}
		logger.OrNop(h.Logger).Error("get rider profile", zap.Int("rider_id", riderID), zap.Error(err))
		http.Error(w, "DB error", http.StatusInternalServerError)
		return
	}
	fit.WriteJSON(w, h.Logger, http.StatusOK, p)
}

func (h *Handler) PutRider(w http.ResponseWriter, r *http.Request) {
	riderID, ok := auth.RiderID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	var p repo.RiderProfile
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if msg := checkProfile(p); msg != "" {
		http.Error(w, msg, http.StatusBadRequest)
		return
	}
	if err := h.Riders.SaveRiderProfile(r.Context(), riderID, p); err != nil {
		logger.OrNop(h.Logger).Error("save rider profile", zap.Int("rider_id", riderID), zap.Error(err))
		http.Error(w, "DB error", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// CreateFit calculates from the stored profile and persists the result.
func (h *Handler) CreateFit(w http.ResponseWriter, r *http.Request) {
	log := logger.OrNop(h.Logger)
	riderID, ok := auth.RiderID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	var req FitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	p, err := h.Riders.GetRiderProfile(r.Context(), riderID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			http.Error(w, "Save your measurements first", http.StatusConflict)
			return
		}
		log.Error("get rider profile", zap.Int("rider_id", riderID), zap.Error(err))
		http.Error(w, "DB error", http.StatusInternalServerError)
		return
	}

	in := BuildInputs(p, req.Category, req.Ambition)
	out, err := fit.Run(log.With(zap.Int("rider_id", riderID)), in)
	if err != nil {
		fit.WriteError(w, err)
		return
	}
	id, err := h.Fits.SaveFit(r.Context(), riderID, in, out)
	if err != nil {
		log.Error("save fit", zap.Int("rider_id", riderID), zap.Error(err))
		http.Error(w, "DB error", http.StatusInternalServerError)
		return
	}

	fit.WriteJSON(w, log, http.StatusCreated, FitResponse{ID: id, Outputs: out})
}

func (h *Handler) ListFits(w http.ResponseWriter, r *http.Request) {
	riderID, ok := auth.RiderID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	fits, err := h.Fits.ListFits(r.Context(), riderID)
	if err != nil {
		logger.OrNop(h.Logger).Error("list fits", zap.Int("rider_id", riderID), zap.Error(err))
		http.Error(w, "DB error", http.StatusInternalServerError)
		return
	}
	fit.WriteJSON(w, h.Logger, http.StatusOK, fits)
}

func (h *Handler) GetFit(w http.ResponseWriter, r *http.Request) {
	riderID, ok := auth.RiderID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	id := mux.Vars(r)["id"]
	rec, err := h.Fits.GetFit(r.Context(), riderID, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			http.Error(w, "Fit not found", http.StatusNotFound)
			return
		}
		logger.OrNop(h.Logger).Error("get fit", zap.String("fit_id", id), zap.Error(err))
		http.Error(w, "DB error", http.StatusInternalServerError)
		return
	}
	fit.WriteJSON(w, h.Logger, http.StatusOK, rec)
}
