package repo

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"Velofit/internal/calc/fit"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type FitSummary struct {
	ID               string    `json:"id"`
	CreatedAt        time.Time `json:"createdAt"`
	Category         string    `json:"category"`
	Ambition         string    `json:"ambition"`
	AlgorithmVersion string    `json:"algorithmVersion"`
	ConfidenceScore  int       `json:"confidenceScore"`
	SaddleHeightMm   float64   `json:"saddleHeightMm"`
	WarningTypes     []string  `json:"warningTypes"`
}

// FitRecord is a stored calculation. Outputs are kept exactly as the engine
// returned them and are never recomputed on read.
type FitRecord struct {
	FitSummary
	Inputs  fit.FitInputs  `json:"inputs"`
	Outputs fit.FitOutputs `json:"outputs"`
}

type FitRepository interface {
	SaveFit(ctx context.Context, riderID int, in fit.FitInputs, out fit.FitOutputs) (string, error)
	ListFits(ctx context.Context, riderID int) ([]FitSummary, error)
	GetFit(ctx context.Context, riderID int, id string) (FitRecord, error)
}

func (r *PostgresRepository) SaveFit(ctx context.Context, riderID int, in fit.FitInputs, out fit.FitOutputs) (string, error) {
	inputs, err := json.Marshal(in)
	if err != nil {
		return "", fmt.Errorf("encode fit inputs: %w", err)
	}
	outputs, err := json.Marshal(out)
	if err != nil {
		return "", fmt.Errorf("encode fit outputs: %w", err)
	}
	types := make([]string, 0, len(out.Warnings))
	for _, w := range out.Warnings {
		types = append(types, string(w.Type))
	}

	id := uuid.NewString()
	query := `INSERT INTO fits (id, rider_id, category, ambition, algorithm_version, confidence,
		saddle_height_mm, warning_types, inputs, outputs, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW())`
	_, err = r.db.ExecContext(ctx, query, id, riderID,
		string(in.Category), string(in.Ambition), out.AlgorithmVersion, out.ConfidenceScore,
		out.SaddleHeightMm, pq.Array(types), inputs, outputs,
	)
	if err != nil {
		return "", fmt.Errorf("save fit: %w", err)
	}
	return id, nil
}

// ListFits returns the rider's fits, newest first.
func (r *PostgresRepository) ListFits(ctx context.Context, riderID int) ([]FitSummary, error) {
	query := `SELECT id, created_at, category, ambition, algorithm_version, confidence, saddle_height_mm, warning_types
	FROM fits WHERE rider_id=$1 ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query, riderID)
	if err != nil {
		return nil, fmt.Errorf("list fits: %w", err)
	}
	defer rows.Close()

	fits := []FitSummary{}
	for rows.Next() {
		var s FitSummary
		if err := rows.Scan(&s.ID, &s.CreatedAt, &s.Category, &s.Ambition, &s.AlgorithmVersion,
			&s.ConfidenceScore, &s.SaddleHeightMm, pq.Array(&s.WarningTypes)); err != nil {
			return nil, fmt.Errorf("scan fit: %w", err)
		}
		fits = append(fits, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list fits: %w", err)
	}
	return fits, nil
}

// GetFit only finds fits owned by riderID; anything else is ErrNotFound.
func (r *PostgresRepository) GetFit(ctx context.Context, riderID int, id string) (FitRecord, error) {
	if _, err := uuid.Parse(id); err != nil {
		return FitRecord{}, ErrNotFound
	}

	var rec FitRecord
	var inputs, outputs []byte
	query := `SELECT id, created_at, category, ambition, algorithm_version, confidence, saddle_height_mm, warning_types,
		inputs, outputs
	FROM fits WHERE id=$1 AND rider_id=$2`
	err := r.db.QueryRowContext(ctx, query, id, riderID).Scan(
		&rec.ID, &rec.CreatedAt, &rec.Category, &rec.Ambition, &rec.AlgorithmVersion,
		&rec.ConfidenceScore, &rec.SaddleHeightMm, pq.Array(&rec.WarningTypes),
		&inputs, &outputs,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return FitRecord{}, ErrNotFound
		}
		return FitRecord{}, fmt.Errorf("get fit: %w", err)
	}
	if err := json.Unmarshal(inputs, &rec.Inputs); err != nil {
		return FitRecord{}, fmt.Errorf("decode fit inputs: %w", err)
	}
	if err := json.Unmarshal(outputs, &rec.Outputs); err != nil {
		return FitRecord{}, fmt.Errorf("decode fit outputs: %w", err)
	}
	return rec, nil
}
