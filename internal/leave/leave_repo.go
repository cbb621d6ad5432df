package leave

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"
)

const dayFormat = "2006-01-02"

// listColumns excludes the document blob from listing queries so a
// large attachment never rides along with every row.
var listColumns = []string{
	"id", "employee_id", "leave_type", "start_date", "end_date",
	"reason", "designation", "document_content_type", "document_filename",
	"status", "applied_date", "total_days", "created_at", "updated_at",
}

//go:generate mockgen -source=leave_repo.go -destination=mock/leave_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, l *Leave) error
	FindAll(ctx context.Context, status string) ([]Leave, error)
	FindByID(ctx context.Context, id string) (*Leave, error)
	FindDocument(ctx context.Context, id string) (*Leave, error)
	FindApprovedOverlapping(ctx context.Context, start, end time.Time) ([]Leave, error)
	FindApprovedContaining(ctx context.Context, day time.Time) ([]Leave, error)
	UpdateStatus(ctx context.Context, id, status string) (int64, error)
	Delete(ctx context.Context, id string) (int64, error)
	CountByStatus(ctx context.Context) (map[string]int64, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) Create(ctx context.Context, l *Leave) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *repository) FindAll(ctx context.Context, status string) ([]Leave, error) {
	var rows []Leave
	q := r.db.WithContext(ctx).Select(listColumns)
	if status != "" {
		q = q.Where("status = ?", status)
	}
	err := q.Preload("Employee").
		Order("applied_date DESC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Leave, error) {
	var l Leave
	err := r.db.WithContext(ctx).
		Select(listColumns).
		Preload("Employee").
		First(&l, "id = ?", id).Error
	return &l, err
}

func (r *repository) FindDocument(ctx context.Context, id string) (*Leave, error) {
	var l Leave
	err := r.db.WithContext(ctx).
		Select("id", "document_data", "document_content_type", "document_filename").
		First(&l, "id = ?", id).Error
	return &l, err
}

// FindApprovedOverlapping returns Approved leaves whose span touches
// the inclusive [start, end] window: starting inside it, ending inside
// it, or spanning across it.
func (r *repository) FindApprovedOverlapping(ctx context.Context, start, end time.Time) ([]Leave, error) {
	var rows []Leave
	err := r.db.WithContext(ctx).
		Select(listColumns).
		Where("status = ?", StatusApproved).
		Where("start_date <= ?", end.Format(dayFormat)).
		Where("end_date >= ?", start.Format(dayFormat)).
		Preload("Employee").
		Order("start_date ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindApprovedContaining(ctx context.Context, day time.Time) ([]Leave, error) {
	var rows []Leave
	err := r.db.WithContext(ctx).
		Select(listColumns).
		Where("status = ?", StatusApproved).
		Where("start_date <= ?", day.Format(dayFormat)).
		Where("end_date >= ?", day.Format(dayFormat)).
		Preload("Employee").
		Order("start_date ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) UpdateStatus(ctx context.Context, id, status string) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&Leave{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now(),
		})
	return res.RowsAffected, res.Error
}

func (r *repository) Delete(ctx context.Context, id string) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&Leave{}, "id = ?", id)
	return res.RowsAffected, res.Error
}

func (r *repository) CountByStatus(ctx context.Context) (map[string]int64, error) {
	type row struct {
		Status string
		Count  int64
	}
	var rows []row
	err := r.db.WithContext(ctx).
		Model(&Leave{}).
		Select("status", "COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, r := range rows {
		counts[r.Status] = r.Count
	}
	return counts, nil
}
