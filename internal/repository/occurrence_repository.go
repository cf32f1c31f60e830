package repository

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/remindengine/core/internal/models"
)

// OccurrenceRepository is the Occurrence Store (C2). The unique index on
// (todo_id, occurrence_date) is what makes BulkInsertPending idempotent
// (invariant I2, P2).
type OccurrenceRepository struct {
	db *gorm.DB
}

func NewOccurrenceRepository(db *gorm.DB) *OccurrenceRepository {
	return &OccurrenceRepository{db: db}
}

func (r *OccurrenceRepository) FindByIDAndUser(id, userID uuid.UUID) (*models.Occurrence, error) {
	var occ models.Occurrence
	err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&occ).Error
	if err != nil {
		return nil, err
	}
	return &occ, nil
}

// ExistingDates returns the set of occurrence dates already materialized
// for a series, pulling only the date column per §4.4 step 1.
func (r *OccurrenceRepository) ExistingDates(todoID uuid.UUID) (map[time.Time]bool, error) {
	var dates []time.Time
	err := r.db.Model(&models.Occurrence{}).Where("todo_id = ?", todoID).Pluck("occurrence_date", &dates).Error
	if err != nil {
		return nil, err
	}
	set := make(map[time.Time]bool, len(dates))
	for _, d := range dates {
		set[d.UTC().Truncate(24*time.Hour)] = true
	}
	return set, nil
}

// LatestDate returns the most recent materialized occurrence date for the
// series, or nil if none exist.
func (r *OccurrenceRepository) LatestDate(todoID uuid.UUID) (*time.Time, error) {
	var occ models.Occurrence
	err := r.db.Where("todo_id = ?", todoID).Order("occurrence_date DESC").First(&occ).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &occ.OccurrenceDate, nil
}

// BulkInsertPending inserts one pending occurrence per date, skipping
// duplicates via ON CONFLICT DO NOTHING so concurrent top-ups of the same
// series are safe (§5). Returns the number of rows actually inserted.
func (r *OccurrenceRepository) BulkInsertPending(todoID, userID uuid.UUID, dates []time.Time) (int, error) {
	if len(dates) == 0 {
		return 0, nil
	}
	rows := make([]models.Occurrence, 0, len(dates))
	for _, d := range dates {
		rows = append(rows, models.Occurrence{
			TodoID:         todoID,
			UserID:         userID,
			OccurrenceDate: d,
			Status:         models.OccurrenceStatusPending,
		})
	}
	result := r.db.Clauses(onConflictDoNothing()).Create(&rows)
	if result.Error != nil {
		return 0, result.Error
	}
	return int(result.RowsAffected), nil
}

func (r *OccurrenceRepository) PendingFutureCount(todoID uuid.UUID, from time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&models.Occurrence{}).
		Where("todo_id = ? AND status = ? AND occurrence_date >= ?", todoID, models.OccurrenceStatusPending, from).
		Count(&count).Error
	return count, err
}

func (r *OccurrenceRepository) ListByTodo(todoID, userID uuid.UUID, status *models.OccurrenceStatus) ([]models.Occurrence, error) {
	q := r.db.Where("todo_id = ? AND user_id = ?", todoID, userID)
	if status != nil {
		q = q.Where("status = ?", *status)
	}
	var occs []models.Occurrence
	err := q.Order("occurrence_date ASC").Find(&occs).Error
	return occs, err
}

// CurrentOccurrence returns today's occurrence if one exists, else the
// earliest strictly-future pending occurrence. Never returns a past-pending
// occurrence (spec.md §9 Open Question 2, decided to keep as-is).
func (r *OccurrenceRepository) CurrentOccurrence(todoID, userID uuid.UUID, today time.Time) (*models.Occurrence, error) {
	var occ models.Occurrence
	err := r.db.Where("todo_id = ? AND user_id = ? AND occurrence_date = ?", todoID, userID, today).First(&occ).Error
	if err == nil {
		return &occ, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	err = r.db.Where(
		"todo_id = ? AND user_id = ? AND status = ? AND occurrence_date > ?",
		todoID, userID, models.OccurrenceStatusPending, today,
	).Order("occurrence_date ASC").First(&occ).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &occ, nil
}

func (r *OccurrenceRepository) Update(occ *models.Occurrence) error {
	return r.db.Save(occ).Error
}

// DeletePendingFuture removes pending occurrences dated today or later for
// a series, used by stop_recurring when keep_pending is false (§4.3 scopes
// the deletion to pending future occurrences; past pending occurrences are
// left alone).
func (r *OccurrenceRepository) DeletePendingFuture(todoID uuid.UUID, today time.Time) error {
	return r.db.Where("todo_id = ? AND status = ? AND occurrence_date >= ?", todoID, models.OccurrenceStatusPending, today).
		Delete(&models.Occurrence{}).Error
}

// TodoIDsWithOccurrenceOn returns the distinct parent todo ids that have a
// pending occurrence on the given date, for the digest's recurring-due
// collection step.
func (r *OccurrenceRepository) TodoIDsWithOccurrenceOn(userID uuid.UUID, day time.Time) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.Model(&models.Occurrence{}).
		Where("user_id = ? AND occurrence_date = ? AND status = ?", userID, day, models.OccurrenceStatusPending).
		Pluck("todo_id", &ids).Error
	return ids, err
}
