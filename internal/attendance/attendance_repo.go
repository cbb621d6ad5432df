package attendance

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"
)

const dayFormat = "2006-01-02"

// Filters is the repository-level shape of a list query after the
// service has resolved filter precedence.
type Filters struct {
	// DayStart/DayEnd bound a half-open [DayStart, DayEnd) window for
	// a single-day filter; RangeStart/RangeEnd are inclusive.
	DayStart   *time.Time
	DayEnd     *time.Time
	RangeStart *time.Time
	RangeEnd   *time.Time
	Status     string
	EmployeeID string
}

//go:generate mockgen -source=attendance_repo.go -destination=mock/attendance_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, a *Attendance) error
	FindWithFilters(ctx context.Context, f Filters) ([]Attendance, error)
	FindByEmployeeAndDate(ctx context.Context, employeeID string, day time.Time) (*Attendance, error)
	FindForDay(ctx context.Context, day time.Time) ([]Attendance, error)
	FindByID(ctx context.Context, id string) (*Attendance, error)
	Update(ctx context.Context, a *Attendance) error
	Delete(ctx context.Context, id string) (int64, error)
	CountByStatus(ctx context.Context, f Filters) ([]StatusCount, error)
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

func (r *repository) Create(ctx context.Context, a *Attendance) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func applyFilters(q *gorm.DB, f Filters) *gorm.DB {
	if f.RangeStart != nil && f.RangeEnd != nil {
		q = q.Where("attendance_date >= ?", f.RangeStart.Format(dayFormat)).
			Where("attendance_date <= ?", f.RangeEnd.Format(dayFormat))
	} else if f.DayStart != nil && f.DayEnd != nil {
		q = q.Where("attendance_date >= ?", f.DayStart.Format(dayFormat)).
			Where("attendance_date < ?", f.DayEnd.Format(dayFormat))
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.EmployeeID != "" {
		q = q.Where("employee_id = ?", f.EmployeeID)
	}
	return q
}

func (r *repository) FindWithFilters(ctx context.Context, f Filters) ([]Attendance, error) {
	var rows []Attendance
	q := applyFilters(r.db.WithContext(ctx), f)
	err := q.Preload("Employee").
		Order("attendance_date DESC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindByEmployeeAndDate(ctx context.Context, employeeID string, day time.Time) (*Attendance, error) {
	var a Attendance
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Where("attendance_date = ?", day.Format(dayFormat)).
		First(&a).Error
	return &a, err
}

func (r *repository) FindForDay(ctx context.Context, day time.Time) ([]Attendance, error) {
	next := day.AddDate(0, 0, 1)
	var rows []Attendance
	err := r.db.WithContext(ctx).
		Where("attendance_date >= ?", day.Format(dayFormat)).
		Where("attendance_date < ?", next.Format(dayFormat)).
		Preload("Employee").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Attendance, error) {
	var a Attendance
	err := r.db.WithContext(ctx).
		Preload("Employee").
		First(&a, "id = ?", id).Error
	return &a, err
}

func (r *repository) Update(ctx context.Context, a *Attendance) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *repository) Delete(ctx context.Context, id string) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&Attendance{}, "id = ?", id)
	return res.RowsAffected, res.Error
}

func (r *repository) CountByStatus(ctx context.Context, f Filters) ([]StatusCount, error) {
	var counts []StatusCount
	q := applyFilters(r.db.WithContext(ctx).Model(&Attendance{}), f)
	err := q.Select("status", "COUNT(*) AS count").
		Group("status").
		Scan(&counts).Error
	return counts, err
}
