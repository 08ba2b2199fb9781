package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// RiderProfile is what a rider has told us about their body and bike.
// Flexibility and Core are the 1-5 self assessments, not the engine scale.
type RiderProfile struct {
	HeightMm        float64  `json:"heightMm"`
	InseamMm        float64  `json:"inseamMm"`
	TorsoMm         *float64 `json:"torsoMm,omitempty"`
	ArmMm           *float64 `json:"armMm,omitempty"`
	ShoulderWidthMm *float64 `json:"shoulderWidthMm,omitempty"`
	FootLengthMm    *float64 `json:"footLengthMm,omitempty"`
	FemurMm         *float64 `json:"femurMm,omitempty"`
	Experience      string   `json:"experience,omitempty"`
	Flexibility     int      `json:"flexibility"`
	Core            int      `json:"core"`

	CurrentSaddleHeightMm *float64 `json:"currentSaddleHeightMm,omitempty"`
	CurrentSetbackMm      *float64 `json:"currentSetbackMm,omitempty"`
	CurrentDropMm         *float64 `json:"currentDropMm,omitempty"`
	CurrentReachMm        *float64 `json:"currentReachMm,omitempty"`

	FrameStackMm     *float64 `json:"frameStackMm,omitempty"`
	FrameReachMm     *float64 `json:"frameReachMm,omitempty"`
	SeatTubeAngleDeg *float64 `json:"seatTubeAngleDeg,omitempty"`
	StemLengthMm     *float64 `json:"stemLengthMm,omitempty"`
	StemAngleDeg     *float64 `json:"stemAngleDeg,omitempty"`
	SpacerStackMm    *float64 `json:"spacerStackMm,omitempty"`

	UpdatedAt time.Time `json:"updatedAt"`
}

type RiderRepository interface {
	GetRiderProfile(ctx context.Context, riderID int) (RiderProfile, error)
	SaveRiderProfile(ctx context.Context, riderID int, p RiderProfile) error
}

const riderProfileColumns = `height_mm, inseam_mm, torso_mm, arm_mm, shoulder_mm, foot_mm, femur_mm,
	experience, flexibility, core,
	current_saddle_height_mm, current_setback_mm, current_drop_mm, current_reach_mm,
	frame_stack_mm, frame_reach_mm, seat_tube_angle_deg, stem_length_mm, stem_angle_deg, spacer_stack_mm,
	updated_at`

func (r *PostgresRepository) GetRiderProfile(ctx context.Context, riderID int) (RiderProfile, error) {
	var p RiderProfile
	query := "SELECT " + riderProfileColumns + " FROM rider_profiles WHERE rider_id=$1"
	err := r.db.QueryRowContext(ctx, query, riderID).Scan(
		&p.HeightMm, &p.InseamMm, &p.TorsoMm, &p.ArmMm, &p.ShoulderWidthMm, &p.FootLengthMm, &p.FemurMm,
		&p.Experience, &p.Flexibility, &p.Core,
		&p.CurrentSaddleHeightMm, &p.CurrentSetbackMm, &p.CurrentDropMm, &p.CurrentReachMm,
		&p.FrameStackMm, &p.FrameReachMm, &p.SeatTubeAngleDeg, &p.StemLengthMm, &p.StemAngleDeg, &p.SpacerStackMm,
		&p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return RiderProfile{}, ErrNotFound
		}
		return RiderProfile{}, fmt.Errorf("get rider profile: %w", err)
	}
	return p, nil
}

// SaveRiderProfile inserts or replaces the rider's profile.
func (r *PostgresRepository) SaveRiderProfile(ctx context.Context, riderID int, p RiderProfile) error {
	query := `INSERT INTO rider_profiles (rider_id, ` + riderProfileColumns + `)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, NOW())
	ON CONFLICT (rider_id) DO UPDATE SET
		height_mm = EXCLUDED.height_mm, inseam_mm = EXCLUDED.inseam_mm,
		torso_mm = EXCLUDED.torso_mm, arm_mm = EXCLUDED.arm_mm, shoulder_mm = EXCLUDED.shoulder_mm,
		foot_mm = EXCLUDED.foot_mm, femur_mm = EXCLUDED.femur_mm,
		experience = EXCLUDED.experience, flexibility = EXCLUDED.flexibility, core = EXCLUDED.core,
		current_saddle_height_mm = EXCLUDED.current_saddle_height_mm,
		current_setback_mm = EXCLUDED.current_setback_mm,
		current_drop_mm = EXCLUDED.current_drop_mm,
		current_reach_mm = EXCLUDED.current_reach_mm,
		frame_stack_mm = EXCLUDED.frame_stack_mm, frame_reach_mm = EXCLUDED.frame_reach_mm,
		seat_tube_angle_deg = EXCLUDED.seat_tube_angle_deg,
		stem_length_mm = EXCLUDED.stem_length_mm, stem_angle_deg = EXCLUDED.stem_angle_deg,
		spacer_stack_mm = EXCLUDED.spacer_stack_mm,
		updated_at = NOW()`
	_, err := r.db.ExecContext(ctx, query, riderID,
		p.HeightMm, p.InseamMm, p.TorsoMm, p.ArmMm, p.ShoulderWidthMm, p.FootLengthMm, p.FemurMm,
		p.Experience, p.Flexibility, p.Core,
		p.CurrentSaddleHeightMm, p.CurrentSetbackMm, p.CurrentDropMm, p.CurrentReachMm,
		p.FrameStackMm, p.FrameReachMm, p.SeatTubeAngleDeg, p.StemLengthMm, p.StemAngleDeg, p.SpacerStackMm,
	)
	if err != nil {
		return fmt.Errorf("save rider profile: %w", err)
	}
	return nil
}
