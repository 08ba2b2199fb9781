package batch

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"Velofit/internal/calc/fit"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func rider(height, inseam float64) fit.FitInputs {
	return fit.FitInputs{
		Category: fit.CategoryRoad, Ambition: fit.AmbitionBalanced,
		HeightMm: height, InseamMm: inseam, FlexibilityScore: 5, CoreScore: 5,
	}
}

func TestCalculate_IsolatesItemErrors(t *testing.T) {
	res, err := Calculate(zap.NewNop(), Input{Items: []fit.FitInputs{
		rider(1750, 810),
		rider(1750, 1750),
		rider(1800, 830),
	}})
	require.NoError(t, err)

	assert.Equal(t, 2, res.Succeeded)
	assert.Equal(t, 1, res.Failed)
	require.Len(t, res.Results, 3)

	require.NotNil(t, res.Results[0].Outputs)
	assert.Equal(t, 715.0, res.Results[0].Outputs.SaddleHeightMm)
	assert.Empty(t, res.Results[0].Error)

	assert.Equal(t, 1, res.Results[1].Index)
	assert.Nil(t, res.Results[1].Outputs)
	assert.Contains(t, res.Results[1].Error, "Inseam cannot be greater than or equal to height")

	assert.NotNil(t, res.Results[2].Outputs)
}

func TestCalculate_Limits(t *testing.T) {
	_, err := Calculate(nil, Input{})
	assert.Error(t, err)

	items := make([]fit.FitInputs, MaxItems+1)
	_, err = Calculate(nil, Input{Items: items})
	assert.ErrorContains(t, err, "too many items")
}

func TestHandler_Fit(t *testing.T) {
	h := &Handler{}
	body, err := json.Marshal(Input{Items: []fit.FitInputs{rider(1750, 810)}})
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	h.Fit(rec, httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(body)))
	require.Equal(t, http.StatusOK, rec.Code)

	var res Result
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&res))
	assert.Equal(t, 1, res.Succeeded)

	rec = httptest.NewRecorder()
	h.Fit(rec, httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(`{"items":[]}`)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
