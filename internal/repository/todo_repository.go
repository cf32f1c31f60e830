package repository

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/remindengine/core/internal/models"
)

type TodoRepository struct {
	db *gorm.DB
}

func NewTodoRepository(db *gorm.DB) *TodoRepository {
	return &TodoRepository{db: db}
}

func (r *TodoRepository) Create(todo *models.Todo) error {
	return r.db.Create(todo).Error
}

func (r *TodoRepository) FindByIDAndUser(id, userID uuid.UUID) (*models.Todo, error) {
	var todo models.Todo
	err := r.db.Preload("Tags").Where("id = ? AND user_id = ?", id, userID).First(&todo).Error
	if err != nil {
		return nil, err
	}
	return &todo, nil
}

// FindByID looks a todo up without owner scoping, for background jobs that
// resolve a reminder's parent todo across all users (§4.5 step a).
func (r *TodoRepository) FindByID(id uuid.UUID) (*models.Todo, error) {
	var todo models.Todo
	err := r.db.Where("id = ?", id).First(&todo).Error
	if err != nil {
		return nil, err
	}
	return &todo, nil
}

// DueTodayNonRecurring returns a user's non-recurring, incomplete todos due
// on day, for the digest's "today's work" collection (§4.7 step 3).
func (r *TodoRepository) DueTodayNonRecurring(userID uuid.UUID, day time.Time) ([]models.Todo, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	end := start.Add(24 * time.Hour)
	var todos []models.Todo
	err := r.db.Where(
		"user_id = ? AND is_recurring = ? AND completed = ? AND due_at >= ? AND due_at < ?",
		userID, false, false, start, end,
	).Find(&todos).Error
	return todos, err
}

// ListActiveRecurring returns every recurring, incomplete todo across all
// users, for the maintainer's daily top-up sweep (§4.4).
func (r *TodoRepository) ListActiveRecurring() ([]models.Todo, error) {
	var todos []models.Todo
	err := r.db.Where("is_recurring = ? AND completed = ?", true, false).Find(&todos).Error
	return todos, err
}

// TodoListParams mirrors get_todos' filter/sort surface (§10 supplemented
// feature): search, status, due-date range, priority set, any-match tag
// filter, and sort by due_date/priority/created_at with nulls-last.
type TodoListParams struct {
	UserID    uuid.UUID
	Search    string
	Status    string // "", "active", "completed"
	DueBefore *time.Time
	DueAfter  *time.Time
	Priority  []models.Priority
	TagIDs    []uuid.UUID
	SortBy    string // "due_date" | "priority" | "" (created_at)
	SortDesc  bool
}

func (r *TodoRepository) List(p TodoListParams) ([]models.Todo, error) {
	q := r.db.Model(&models.Todo{}).Preload("Tags").Where("user_id = ?", p.UserID)

	if s := strings.TrimSpace(p.Search); s != "" {
		pattern := "%" + s + "%"
		q = q.Where("title ILIKE ? OR description ILIKE ?", pattern, pattern)
	}
	switch p.Status {
	case "active":
		q = q.Where("completed = ?", false)
	case "completed":
		q = q.Where("completed = ?", true)
	}
	if p.DueBefore != nil {
		q = q.Where("due_at <= ?", *p.DueBefore)
	}
	if p.DueAfter != nil {
		q = q.Where("due_at >= ?", *p.DueAfter)
	}
	if len(p.Priority) > 0 {
		q = q.Where("priority IN ?", p.Priority)
	}
	if len(p.TagIDs) > 0 {
		q = q.Where("id IN (?)", r.db.Table("todo_tags").Select("todo_id").Where("tag_id IN ?", p.TagIDs))
	}

	switch p.SortBy {
	case "due_date":
		if p.SortDesc {
			q = q.Order("due_at DESC NULLS LAST")
		} else {
			q = q.Order("due_at ASC NULLS LAST")
		}
	case "priority":
		if p.SortDesc {
			q = q.Order("priority DESC")
		} else {
			q = q.Order("priority ASC")
		}
	default:
		if p.SortDesc {
			q = q.Order("created_at DESC")
		} else {
			q = q.Order("created_at ASC")
		}
	}

	var todos []models.Todo
	err := q.Find(&todos).Error
	return todos, err
}

func (r *TodoRepository) Update(todo *models.Todo) error {
	return r.db.Save(todo).Error
}

// ReplaceTags removes all existing todo_tags rows for todoID and recreates
// them from tags, mirroring _replace_tags.
func (r *TodoRepository) ReplaceTags(todo *models.Todo, tags []models.Tag) error {
	return r.db.Model(todo).Association("Tags").Replace(tags)
}

// Delete cascades to occurrences/reminders via the migration's foreign key
// ON DELETE CASCADE, and nulls notification references via ON DELETE SET
// NULL (invariant I6).
func (r *TodoRepository) Delete(id, userID uuid.UUID) error {
	return r.db.Unscoped().Where("id = ? AND user_id = ?", id, userID).Delete(&models.Todo{}).Error
}

func (r *TodoRepository) IncrementOccurrencesGenerated(id uuid.UUID, by int) error {
	return r.db.Model(&models.Todo{}).Where("id = ?", id).
		Update("occurrences_generated", gorm.Expr("occurrences_generated + ?", by)).Error
}
