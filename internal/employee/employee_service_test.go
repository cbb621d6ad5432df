package employee_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/omsaini-1441/HRMS-backend/internal/employee"
	employeeerrors "github.com/omsaini-1441/HRMS-backend/internal/employee/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeEmployeeRepository struct {
	withTxFn   func(tx *sql.Tx) employee.Repository
	createFn   func(ctx context.Context, empl *employee.Employee) error
	findAllFn  func(ctx context.Context) ([]employee.Employee, error)
	findByIDFn func(ctx context.Context, id string) (*employee.Employee, error)
	updateFn   func(ctx context.Context, empl *employee.Employee) error
	deleteFn   func(ctx context.Context, id string) (int64, error)
	countFn    func(ctx context.Context) (int64, error)
}

func (f *fakeEmployeeRepository) WithTx(tx *sql.Tx) employee.Repository {
	if f.withTxFn != nil {
		return f.withTxFn(tx)
	}
	return f
}

func (f *fakeEmployeeRepository) Create(ctx context.Context, empl *employee.Employee) error {
	if f.createFn != nil {
		return f.createFn(ctx, empl)
	}
	return nil
}

func (f *fakeEmployeeRepository) FindAll(ctx context.Context) ([]employee.Employee, error) {
	if f.findAllFn != nil {
		return f.findAllFn(ctx)
	}
	return nil, nil
}

func (f *fakeEmployeeRepository) FindByID(ctx context.Context, id string) (*employee.Employee, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeEmployeeRepository) Update(ctx context.Context, empl *employee.Employee) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, empl)
	}
	return nil
}

func (f *fakeEmployeeRepository) Delete(ctx context.Context, id string) (int64, error) {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return 0, nil
}

func (f *fakeEmployeeRepository) Count(ctx context.Context) (int64, error) {
	if f.countFn != nil {
		return f.countFn(ctx)
	}
	return 0, nil
}

type employeeServiceDeps struct {
	db      *sql.DB
	sqlMock sqlmock.Sqlmock
	repo    *fakeEmployeeRepository
	service employee.Service
}

func setupEmployeeServiceTest(t *testing.T) *employeeServiceDeps {
	t.Helper()

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)

	repo := &fakeEmployeeRepository{}
	svc := employee.NewService(db, repo, nil)

	return &employeeServiceDeps{db: db, sqlMock: sqlMock, repo: repo, service: svc}
}

func TestEmployeeService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success with defaults", func(t *testing.T) {
		deps := setupEmployeeServiceTest(t)
		defer deps.db.Close()

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectCommit()

		deps.repo.createFn = func(ctx context.Context, empl *employee.Employee) error {
			assert.Equal(t, employee.DefaultPosition, empl.Position)
			assert.Equal(t, employee.DefaultDepartment, empl.Department)
			return nil
		}

		resp, err := deps.service.Create(ctx, employee.CreateEmployeeRequest{
			FullName: "Jane Doe",
			Email:    "jane@example.com",
			Phone:    "+91 98765 43210",
		})

		assert.NoError(t, err)
		assert.Equal(t, employee.DefaultPosition, resp.Position)
		assert.Equal(t, employee.DefaultDepartment, resp.Department)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("negative invalid position", func(t *testing.T) {
		deps := setupEmployeeServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.Create(ctx, employee.CreateEmployeeRequest{
			FullName: "Jane Doe",
			Email:    "jane@example.com",
			Phone:    "+91 98765 43210",
			Position: "Chief Vibes Officer",
		})

		assert.ErrorIs(t, err, employeeerrors.ErrInvalidPosition)
	})

	t.Run("negative invalid phone", func(t *testing.T) {
		deps := setupEmployeeServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.Create(ctx, employee.CreateEmployeeRequest{
			FullName: "Jane Doe",
			Email:    "jane@example.com",
			Phone:    "12ab",
		})

		assert.ErrorIs(t, err, employeeerrors.ErrInvalidPhone)
	})

	t.Run("negative invalid date", func(t *testing.T) {
		deps := setupEmployeeServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.Create(ctx, employee.CreateEmployeeRequest{
			FullName:      "Jane Doe",
			Email:         "jane@example.com",
			Phone:         "+91 98765 43210",
			DateOfJoining: "01/02/2024",
		})

		assert.ErrorIs(t, err, employeeerrors.ErrInvalidDateFormat)
	})

	t.Run("negative duplicate email", func(t *testing.T) {
		deps := setupEmployeeServiceTest(t)
		defer deps.db.Close()

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectRollback()

		deps.repo.createFn = func(ctx context.Context, empl *employee.Employee) error {
			return errors.New(`duplicate key value violates unique constraint "uq_employees_email"`)
		}

		_, err := deps.service.Create(ctx, employee.CreateEmployeeRequest{
			FullName: "Jane Doe",
			Email:    "jane@example.com",
			Phone:    "+91 98765 43210",
		})

		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeAlreadyExists)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestEmployeeService_GetAll(t *testing.T) {
	ctx := context.Background()

	t.Run("cache hit skips repository", func(t *testing.T) {
		db, sqlMock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		cached := []employee.EmployeeResponse{
			{ID: uuid.New().String(), FullName: "Jane Doe", Position: "Designer"},
		}
		payload, err := json.Marshal(cached)
		assert.NoError(t, err)

		rdb, redisMock := redismock.NewClientMock()
		redisMock.ExpectGet(employee.DirectoryCacheKey).SetVal(string(payload))

		repo := &fakeEmployeeRepository{}
		repo.findAllFn = func(ctx context.Context) ([]employee.Employee, error) {
			t.Fatal("repository should not be hit on cache hit")
			return nil, nil
		}

		svc := employee.NewService(db, repo, rdb)

		resp, err := svc.GetAll(ctx)

		assert.NoError(t, err)
		assert.Len(t, resp, 1)
		assert.Equal(t, "Jane Doe", resp[0].FullName)
		assert.NoError(t, redisMock.ExpectationsWereMet())
		_ = sqlMock
	})

	t.Run("cache miss falls back to repository", func(t *testing.T) {
		deps := setupEmployeeServiceTest(t)
		defer deps.db.Close()

		deps.repo.findAllFn = func(ctx context.Context) ([]employee.Employee, error) {
			return []employee.Employee{
				{
					ID:            uuid.New(),
					FullName:      "Jane Doe",
					Email:         "jane@example.com",
					Phone:         "+91 98765 43210",
					Position:      "Designer",
					Department:    "Designer",
					DateOfJoining: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
				},
			}, nil
		}

		resp, err := deps.service.GetAll(ctx)

		assert.NoError(t, err)
		assert.Len(t, resp, 1)
		assert.Equal(t, "2024-01-15", resp[0].DateOfJoining)
	})
}

func TestEmployeeService_Update(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	existing := func() *employee.Employee {
		return &employee.Employee{
			ID:            id,
			FullName:      "Jane Doe",
			Email:         "jane@example.com",
			Phone:         "+91 98765 43210",
			Position:      "Designer",
			Department:    "Designer",
			DateOfJoining: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		}
	}

	t.Run("partial update keeps unset fields", func(t *testing.T) {
		deps := setupEmployeeServiceTest(t)
		defer deps.db.Close()

		deps.repo.findByIDFn = func(ctx context.Context, targetID string) (*employee.Employee, error) {
			assert.Equal(t, id.String(), targetID)
			return existing(), nil
		}
		deps.repo.updateFn = func(ctx context.Context, empl *employee.Employee) error {
			assert.Equal(t, "Intern", empl.Position)
			assert.Equal(t, "Jane Doe", empl.FullName)
			assert.Equal(t, "jane@example.com", empl.Email)
			return nil
		}

		position := "Intern"
		resp, err := deps.service.Update(ctx, id.String(), employee.UpdateEmployeeRequest{
			Position: &position,
		})

		assert.NoError(t, err)
		assert.Equal(t, "Intern", resp.Position)
		assert.Equal(t, "Jane Doe", resp.FullName)
	})

	t.Run("negative invalid department", func(t *testing.T) {
		deps := setupEmployeeServiceTest(t)
		defer deps.db.Close()

		deps.repo.findByIDFn = func(ctx context.Context, targetID string) (*employee.Employee, error) {
			return existing(), nil
		}

		department := "Legal"
		_, err := deps.service.Update(ctx, id.String(), employee.UpdateEmployeeRequest{
			Department: &department,
		})

		assert.ErrorIs(t, err, employeeerrors.ErrInvalidDepartment)
	})

	t.Run("negative not found", func(t *testing.T) {
		deps := setupEmployeeServiceTest(t)
		defer deps.db.Close()

		deps.repo.findByIDFn = func(ctx context.Context, targetID string) (*employee.Employee, error) {
			return nil, gorm.ErrRecordNotFound
		}

		_, err := deps.service.Update(ctx, uuid.New().String(), employee.UpdateEmployeeRequest{})

		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	})
}

func TestEmployeeService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("success invalidates cache", func(t *testing.T) {
		db, _, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		rdb, redisMock := redismock.NewClientMock()
		redisMock.ExpectDel(employee.DirectoryCacheKey).SetVal(1)

		repo := &fakeEmployeeRepository{}
		repo.deleteFn = func(ctx context.Context, id string) (int64, error) {
			return 1, nil
		}

		svc := employee.NewService(db, repo, rdb)

		err = svc.Delete(ctx, uuid.New().String())

		assert.NoError(t, err)
		assert.NoError(t, redisMock.ExpectationsWereMet())
	})

	t.Run("negative not found", func(t *testing.T) {
		deps := setupEmployeeServiceTest(t)
		defer deps.db.Close()

		deps.repo.deleteFn = func(ctx context.Context, id string) (int64, error) {
			return 0, nil
		}

		err := deps.service.Delete(ctx, uuid.New().String())

		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	})

	t.Run("negative invalid id", func(t *testing.T) {
		deps := setupEmployeeServiceTest(t)
		defer deps.db.Close()

		err := deps.service.Delete(ctx, "not-a-uuid")

		assert.ErrorIs(t, err, employeeerrors.ErrInvalidEmployeeID)
	})
}
