package attendance_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/omsaini-1441/HRMS-backend/internal/attendance"
	attendanceerrors "github.com/omsaini-1441/HRMS-backend/internal/attendance/errors"
	"github.com/omsaini-1441/HRMS-backend/internal/employee"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeAttendanceRepository struct {
	withTxFn                func(tx *sql.Tx) attendance.Repository
	createFn                func(ctx context.Context, a *attendance.Attendance) error
	findWithFiltersFn       func(ctx context.Context, f attendance.Filters) ([]attendance.Attendance, error)
	findByEmployeeAndDateFn func(ctx context.Context, employeeID string, day time.Time) (*attendance.Attendance, error)
	findForDayFn            func(ctx context.Context, day time.Time) ([]attendance.Attendance, error)
	findByIDFn              func(ctx context.Context, id string) (*attendance.Attendance, error)
	updateFn                func(ctx context.Context, a *attendance.Attendance) error
	deleteFn                func(ctx context.Context, id string) (int64, error)
	countByStatusFn         func(ctx context.Context, f attendance.Filters) ([]attendance.StatusCount, error)
}

func (f *fakeAttendanceRepository) WithTx(tx *sql.Tx) attendance.Repository {
	if f.withTxFn != nil {
		return f.withTxFn(tx)
	}
	return f
}

func (f *fakeAttendanceRepository) Create(ctx context.Context, a *attendance.Attendance) error {
	if f.createFn != nil {
		return f.createFn(ctx, a)
	}
	return nil
}

func (f *fakeAttendanceRepository) FindWithFilters(ctx context.Context, filters attendance.Filters) ([]attendance.Attendance, error) {
	if f.findWithFiltersFn != nil {
		return f.findWithFiltersFn(ctx, filters)
	}
	return nil, nil
}

func (f *fakeAttendanceRepository) FindByEmployeeAndDate(ctx context.Context, employeeID string, day time.Time) (*attendance.Attendance, error) {
	if f.findByEmployeeAndDateFn != nil {
		return f.findByEmployeeAndDateFn(ctx, employeeID, day)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeAttendanceRepository) FindForDay(ctx context.Context, day time.Time) ([]attendance.Attendance, error) {
	if f.findForDayFn != nil {
		return f.findForDayFn(ctx, day)
	}
	return nil, nil
}

func (f *fakeAttendanceRepository) FindByID(ctx context.Context, id string) (*attendance.Attendance, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeAttendanceRepository) Update(ctx context.Context, a *attendance.Attendance) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, a)
	}
	return nil
}

func (f *fakeAttendanceRepository) Delete(ctx context.Context, id string) (int64, error) {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return 0, nil
}

func (f *fakeAttendanceRepository) CountByStatus(ctx context.Context, filters attendance.Filters) ([]attendance.StatusCount, error) {
	if f.countByStatusFn != nil {
		return f.countByStatusFn(ctx, filters)
	}
	return nil, nil
}

type fakeEmployeeRepo struct {
	findAllFn  func(ctx context.Context) ([]employee.Employee, error)
	findByIDFn func(ctx context.Context, id string) (*employee.Employee, error)
	countFn    func(ctx context.Context) (int64, error)
}

func (f *fakeEmployeeRepo) WithTx(tx *sql.Tx) employee.Repository { return f }
func (f *fakeEmployeeRepo) Create(ctx context.Context, empl *employee.Employee) error {
	return nil
}
func (f *fakeEmployeeRepo) FindAll(ctx context.Context) ([]employee.Employee, error) {
	if f.findAllFn != nil {
		return f.findAllFn(ctx)
	}
	return nil, nil
}
func (f *fakeEmployeeRepo) FindByID(ctx context.Context, id string) (*employee.Employee, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return &employee.Employee{ID: uuid.MustParse(id)}, nil
}
func (f *fakeEmployeeRepo) Update(ctx context.Context, empl *employee.Employee) error {
	return nil
}
func (f *fakeEmployeeRepo) Delete(ctx context.Context, id string) (int64, error) {
	return 1, nil
}
func (f *fakeEmployeeRepo) Count(ctx context.Context) (int64, error) {
	if f.countFn != nil {
		return f.countFn(ctx)
	}
	return 0, nil
}

type attendanceServiceDeps struct {
	db           *sql.DB
	sqlMock      sqlmock.Sqlmock
	repo         *fakeAttendanceRepository
	employeeRepo *fakeEmployeeRepo
	service      attendance.Service
}

func setupAttendanceServiceTest(t *testing.T) *attendanceServiceDeps {
	t.Helper()

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)

	repo := &fakeAttendanceRepository{}
	employeeRepo := &fakeEmployeeRepo{}
	svc := attendance.NewService(db, repo, employeeRepo)

	return &attendanceServiceDeps{
		db:           db,
		sqlMock:      sqlMock,
		repo:         repo,
		employeeRepo: employeeRepo,
		service:      svc,
	}
}

func TestAttendanceService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("range filter wins over single date", func(t *testing.T) {
		deps := setupAttendanceServiceTest(t)
		defer deps.db.Close()

		deps.repo.findWithFiltersFn = func(ctx context.Context, f attendance.Filters) ([]attendance.Attendance, error) {
			assert.NotNil(t, f.RangeStart)
			assert.NotNil(t, f.RangeEnd)
			assert.Nil(t, f.DayStart)
			assert.Nil(t, f.DayEnd)
			assert.Equal(t, "2024-03-01", f.RangeStart.Format("2006-01-02"))
			assert.Equal(t, "2024-03-31", f.RangeEnd.Format("2006-01-02"))
			return nil, nil
		}

		_, err := deps.service.List(ctx, attendance.ListQuery{
			Date:      "2024-03-15",
			StartDate: "2024-03-01",
			EndDate:   "2024-03-31",
		})

		assert.NoError(t, err)
	})

	t.Run("single date becomes half-open day window", func(t *testing.T) {
		deps := setupAttendanceServiceTest(t)
		defer deps.db.Close()

		deps.repo.findWithFiltersFn = func(ctx context.Context, f attendance.Filters) ([]attendance.Attendance, error) {
			assert.Nil(t, f.RangeStart)
			assert.NotNil(t, f.DayStart)
			assert.NotNil(t, f.DayEnd)
			assert.Equal(t, "2024-03-15", f.DayStart.Format("2006-01-02"))
			assert.Equal(t, "2024-03-16", f.DayEnd.Format("2006-01-02"))
			return nil, nil
		}

		_, err := deps.service.List(ctx, attendance.ListQuery{Date: "2024-03-15"})

		assert.NoError(t, err)
	})

	t.Run("negative invalid status filter", func(t *testing.T) {
		deps := setupAttendanceServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.List(ctx, attendance.ListQuery{Status: "On Vacation"})

		assert.ErrorIs(t, err, attendanceerrors.ErrInvalidStatus)
	})

	t.Run("negative invalid date", func(t *testing.T) {
		deps := setupAttendanceServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.List(ctx, attendance.ListQuery{Date: "15-03-2024"})

		assert.ErrorIs(t, err, attendanceerrors.ErrInvalidDateFormat)
	})
}

func TestAttendanceService_GetByDate(t *testing.T) {
	ctx := context.Background()

	withRecord := uuid.New()
	withoutRecord := uuid.New()

	t.Run("synthesizes default for employees without a record", func(t *testing.T) {
		deps := setupAttendanceServiceTest(t)
		defer deps.db.Close()

		deps.employeeRepo.findAllFn = func(ctx context.Context) ([]employee.Employee, error) {
			return []employee.Employee{
				{ID: withRecord, FullName: "Jane Doe"},
				{ID: withoutRecord, FullName: "John Smith"},
			}, nil
		}
		deps.repo.findForDayFn = func(ctx context.Context, day time.Time) ([]attendance.Attendance, error) {
			return []attendance.Attendance{
				{
					ID:             uuid.New(),
					EmployeeID:     withRecord,
					AttendanceDate: day,
					Status:         attendance.StatusAbsent,
				},
			}, nil
		}

		entries, err := deps.service.GetByDate(ctx, "2024-03-15")

		assert.NoError(t, err)
		assert.Len(t, entries, 2)

		assert.Equal(t, attendance.StatusAbsent, entries[0].Attendance.Status)
		assert.NotEmpty(t, entries[0].Attendance.ID)

		// Synthesized default: Present with an empty id, never persisted.
		assert.Equal(t, attendance.StatusPresent, entries[1].Attendance.Status)
		assert.Empty(t, entries[1].Attendance.ID)
		assert.Equal(t, "2024-03-15", entries[1].Attendance.Date)
	})
}

func TestAttendanceService_Upsert(t *testing.T) {
	ctx := context.Background()
	employeeID := uuid.New()

	t.Run("creates when no record exists", func(t *testing.T) {
		deps := setupAttendanceServiceTest(t)
		defer deps.db.Close()

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectCommit()

		deps.repo.createFn = func(ctx context.Context, a *attendance.Attendance) error {
			assert.Equal(t, employeeID, a.EmployeeID)
			assert.Equal(t, attendance.StatusPresent, a.Status)
			assert.Equal(t, "2024-03-15", a.AttendanceDate.Format("2006-01-02"))
			return nil
		}

		resp, err := deps.service.Upsert(ctx, attendance.UpsertAttendanceRequest{
			EmployeeID: employeeID.String(),
			Date:       "2024-03-15",
		})

		assert.NoError(t, err)
		assert.Equal(t, attendance.StatusPresent, resp.Status)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("merges into existing record without clobbering", func(t *testing.T) {
		deps := setupAttendanceServiceTest(t)
		defer deps.db.Close()

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectCommit()

		existingClockIn := time.Date(2024, 3, 15, 9, 0, 0, 0, time.Local)
		deps.repo.findByEmployeeAndDateFn = func(ctx context.Context, eid string, day time.Time) (*attendance.Attendance, error) {
			return &attendance.Attendance{
				ID:             uuid.New(),
				EmployeeID:     employeeID,
				AttendanceDate: day,
				Status:         attendance.StatusPresent,
				Task:           "Sprint work",
				ClockInTime:    &existingClockIn,
			}, nil
		}
		deps.repo.updateFn = func(ctx context.Context, a *attendance.Attendance) error {
			assert.Equal(t, attendance.StatusWorkFromHome, a.Status)
			// Unset request fields keep their stored values.
			assert.Equal(t, "Sprint work", a.Task)
			assert.Equal(t, &existingClockIn, a.ClockInTime)
			return nil
		}

		resp, err := deps.service.Upsert(ctx, attendance.UpsertAttendanceRequest{
			EmployeeID: employeeID.String(),
			Date:       "2024-03-15",
			Status:     attendance.StatusWorkFromHome,
		})

		assert.NoError(t, err)
		assert.Equal(t, attendance.StatusWorkFromHome, resp.Status)
		assert.Equal(t, "Sprint work", resp.Task)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("negative unique index race maps to conflict", func(t *testing.T) {
		deps := setupAttendanceServiceTest(t)
		defer deps.db.Close()

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectRollback()

		deps.repo.createFn = func(ctx context.Context, a *attendance.Attendance) error {
			return errors.New(`duplicate key value violates unique constraint "uq_attendance_employee_date"`)
		}

		_, err := deps.service.Upsert(ctx, attendance.UpsertAttendanceRequest{
			EmployeeID: employeeID.String(),
			Date:       "2024-03-15",
		})

		assert.ErrorIs(t, err, attendanceerrors.ErrDuplicateAttendance)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("negative unknown employee", func(t *testing.T) {
		deps := setupAttendanceServiceTest(t)
		defer deps.db.Close()

		deps.employeeRepo.findByIDFn = func(ctx context.Context, id string) (*employee.Employee, error) {
			return nil, gorm.ErrRecordNotFound
		}

		_, err := deps.service.Upsert(ctx, attendance.UpsertAttendanceRequest{
			EmployeeID: employeeID.String(),
			Date:       "2024-03-15",
		})

		assert.ErrorIs(t, err, attendanceerrors.ErrEmployeeNotFound)
	})

	t.Run("negative missing fields", func(t *testing.T) {
		deps := setupAttendanceServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.Upsert(ctx, attendance.UpsertAttendanceRequest{
			EmployeeID: employeeID.String(),
		})

		assert.ErrorIs(t, err, attendanceerrors.ErrEmployeeAndDateRequired)
	})

	t.Run("negative invalid status", func(t *testing.T) {
		deps := setupAttendanceServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.Upsert(ctx, attendance.UpsertAttendanceRequest{
			EmployeeID: employeeID.String(),
			Date:       "2024-03-15",
			Status:     "Vacation",
		})

		assert.ErrorIs(t, err, attendanceerrors.ErrInvalidStatus)
	})
}

func TestAttendanceService_Stats(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		deps := setupAttendanceServiceTest(t)
		defer deps.db.Close()

		deps.repo.countByStatusFn = func(ctx context.Context, f attendance.Filters) ([]attendance.StatusCount, error) {
			return []attendance.StatusCount{
				{Status: attendance.StatusPresent, Count: 8},
				{Status: attendance.StatusAbsent, Count: 2},
			}, nil
		}
		deps.employeeRepo.countFn = func(ctx context.Context) (int64, error) {
			return 10, nil
		}

		resp, err := deps.service.Stats(ctx, attendance.StatsQuery{})

		assert.NoError(t, err)
		assert.Len(t, resp.Stats, 2)
		assert.Equal(t, int64(10), resp.TotalEmployees)
	})
}

func TestAttendanceService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("negative not found", func(t *testing.T) {
		deps := setupAttendanceServiceTest(t)
		defer deps.db.Close()

		deps.repo.deleteFn = func(ctx context.Context, id string) (int64, error) {
			return 0, nil
		}

		err := deps.service.Delete(ctx, uuid.New().String())

		assert.ErrorIs(t, err, attendanceerrors.ErrAttendanceNotFound)
	})
}
