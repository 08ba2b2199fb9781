package rider

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"Velofit/internal/auth"
	"Velofit/internal/calc/fit"
	"Velofit/internal/repo"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memStore struct {
	profiles map[int]repo.RiderProfile
	fits     map[string]repo.FitRecord
	owner    map[string]int
	saveErr  error
}

func newMemStore() *memStore {
	return &memStore{
		profiles: map[int]repo.RiderProfile{},
		fits:     map[string]repo.FitRecord{},
		owner:    map[string]int{},
	}
}

func (m *memStore) GetRiderProfile(_ context.Context, riderID int) (repo.RiderProfile, error) {
	p, ok := m.profiles[riderID]
	if !ok {
		return repo.RiderProfile{}, repo.ErrNotFound
	}
	return p, nil
}

func (m *memStore) SaveRiderProfile(_ context.Context, riderID int, p repo.RiderProfile) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.profiles[riderID] = p
	return nil
}

func (m *memStore) SaveFit(_ context.Context, riderID int, in fit.FitInputs, out fit.FitOutputs) (string, error) {
	if m.saveErr != nil {
		return "", m.saveErr
	}
	id := "fit-1"
	m.fits[id] = repo.FitRecord{FitSummary: repo.FitSummary{ID: id}, Inputs: in, Outputs: out}
	m.owner[id] = riderID
	return id, nil
}

func (m *memStore) ListFits(_ context.Context, riderID int) ([]repo.FitSummary, error) {
	out := []repo.FitSummary{}
	for id, rec := range m.fits {
		if m.owner[id] == riderID {
			out = append(out, rec.FitSummary)
		}
	}
	return out, nil
}

func (m *memStore) GetFit(_ context.Context, riderID int, id string) (repo.FitRecord, error) {
	rec, ok := m.fits[id]
	if !ok || m.owner[id] != riderID {
		return repo.FitRecord{}, repo.ErrNotFound
	}
	return rec, nil
}

func newRouter(store *memStore) *mux.Router {
	h := &Handler{Riders: store, Fits: store}
	r := mux.NewRouter()
	r.HandleFunc("/rider", h.GetRider).Methods("GET")
	r.HandleFunc("/rider", h.PutRider).Methods("PUT")
	r.HandleFunc("/fit", h.CreateFit).Methods("POST")
	r.HandleFunc("/fits", h.ListFits).Methods("GET")
	r.HandleFunc("/fits/{id}", h.GetFit).Methods("GET")
	return r
}

func do(t *testing.T, r http.Handler, riderID int, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if riderID > 0 {
		req = req.WithContext(auth.WithRiderID(req.Context(), riderID))
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func ptr(v float64) *float64 { return &v }

func TestBuildInputs_MapsAssessments(t *testing.T) {
	p := repo.RiderProfile{
		HeightMm: 1750, InseamMm: 810, Flexibility: 1, Core: 5,
		TorsoMm: ptr(600), Experience: "advanced", FrameStackMm: ptr(560),
	}
	in := BuildInputs(p, fit.CategoryGravel, fit.AmbitionPerformance)

	assert.Equal(t, fit.CategoryGravel, in.Category)
	assert.Equal(t, fit.AmbitionPerformance, in.Ambition)
	assert.Equal(t, 2.0, in.FlexibilityScore)
	assert.Equal(t, 9.0, in.CoreScore)
	assert.Equal(t, fit.ExperienceAdvanced, in.Experience)
	assert.Equal(t, p.TorsoMm, in.TorsoMm)
	assert.Equal(t, p.FrameStackMm, in.FrameStackMm)

	// unanswered assessments are neutral
	in = BuildInputs(repo.RiderProfile{HeightMm: 1750, InseamMm: 810}, fit.CategoryRoad, fit.AmbitionBalanced)
	assert.Equal(t, 5.0, in.FlexibilityScore)
	assert.Equal(t, 5.0, in.CoreScore)
}

func TestRiderProfileRoundTrip(t *testing.T) {
	store := newMemStore()
	r := newRouter(store)

	rec := do(t, r, 3, "GET", "/rider", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	profile := repo.RiderProfile{HeightMm: 1750, InseamMm: 810, Flexibility: 3, Core: 4, CurrentSaddleHeightMm: ptr(705)}
	rec = do(t, r, 3, "PUT", "/rider", profile)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(t, r, 3, "GET", "/rider", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var got repo.RiderProfile
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, profile.HeightMm, got.HeightMm)
	assert.Equal(t, 4, got.Core)
}

func TestPutRider_Rejects(t *testing.T) {
	store := newMemStore()
	r := newRouter(store)

	assert.Equal(t, http.StatusUnauthorized, do(t, r, 0, "PUT", "/rider", repo.RiderProfile{}).Code)
	assert.Equal(t, http.StatusBadRequest, do(t, r, 3, "PUT", "/rider", repo.RiderProfile{InseamMm: 810}).Code)
	assert.Equal(t, http.StatusBadRequest, do(t, r, 3, "PUT", "/rider", repo.RiderProfile{HeightMm: 1750, InseamMm: 810, Flexibility: 6}).Code)

	store.saveErr = errors.New("db down")
	assert.Equal(t, http.StatusInternalServerError, do(t, r, 3, "PUT", "/rider", repo.RiderProfile{HeightMm: 1750, InseamMm: 810}).Code)
}

func TestCreateFit(t *testing.T) {
	store := newMemStore()
	store.profiles[3] = repo.RiderProfile{HeightMm: 1750, InseamMm: 810, Flexibility: 3, Core: 3, CurrentSaddleHeightMm: ptr(705)}
	r := newRouter(store)

	rec := do(t, r, 3, "POST", "/fit", FitRequest{Category: fit.CategoryRoad, Ambition: fit.AmbitionBalanced})
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp FitResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "fit-1", resp.ID)
	assert.Equal(t, 715.0, resp.Outputs.SaddleHeightMm)
	require.NotNil(t, resp.Outputs.Deltas)
	assert.Equal(t, 10.0, *resp.Outputs.Deltas.SaddleHeightMm)

	stored := store.fits["fit-1"]
	assert.Equal(t, 5.0, stored.Inputs.FlexibilityScore)
	assert.Equal(t, resp.Outputs.SaddleHeightMm, stored.Outputs.SaddleHeightMm)

	rec = do(t, r, 3, "GET", "/fits/fit-1", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	rec = do(t, r, 4, "GET", "/fits/fit-1", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, r, 3, "GET", "/fits", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var list []repo.FitSummary
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&list))
	assert.Len(t, list, 1)
}

func TestCreateFit_Errors(t *testing.T) {
	store := newMemStore()
	r := newRouter(store)

	rec := do(t, r, 3, "POST", "/fit", FitRequest{Category: fit.CategoryRoad, Ambition: fit.AmbitionBalanced})
	assert.Equal(t, http.StatusConflict, rec.Code)

	store.profiles[3] = repo.RiderProfile{HeightMm: 1750, InseamMm: 1760}
	rec = do(t, r, 3, "POST", "/fit", FitRequest{Category: fit.CategoryRoad, Ambition: fit.AmbitionBalanced})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Inseam cannot be greater than or equal to height")
	assert.Empty(t, store.fits)
}
