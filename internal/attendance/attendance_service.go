package attendance

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	attendanceerrors "github.com/omsaini-1441/HRMS-backend/internal/attendance/errors"
	"github.com/omsaini-1441/HRMS-backend/internal/employee"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	StatusPresent      = "Present"
	StatusAbsent       = "Absent"
	StatusMedicalLeave = "Medical Leave"
	StatusWorkFromHome = "Work from Home"
)

// Statuses is the closed set of attendance status values.
var Statuses = []string{StatusPresent, StatusAbsent, StatusMedicalLeave, StatusWorkFromHome}

func ValidateStatus(v string) error {
	for _, s := range Statuses {
		if v == s {
			return nil
		}
	}
	return attendanceerrors.ErrInvalidStatus
}

//go:generate mockgen -source=attendance_service.go -destination=mock/attendance_service_mock.go -package=mock
type Service interface {
	List(ctx context.Context, q ListQuery) ([]AttendanceResponse, error)
	GetByDate(ctx context.Context, date string) ([]DayEntry, error)
	Upsert(ctx context.Context, req UpsertAttendanceRequest) (AttendanceResponse, error)
	UpdateByID(ctx context.Context, id string, req UpdateAttendanceRequest) (AttendanceResponse, error)
	Delete(ctx context.Context, id string) error
	Stats(ctx context.Context, q StatsQuery) (StatsResponse, error)
}

type service struct {
	db           *sql.DB
	repo         Repository
	employeeRepo employee.Repository
	logger       *zap.Logger
}

func NewService(db *sql.DB, repo Repository, employeeRepo employee.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("attendance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.service")
	}
	return &service{db: db, repo: repo, employeeRepo: employeeRepo, logger: l}
}

// parseDay normalizes a YYYY-MM-DD string to local midnight so day
// boundaries never bleed into adjacent days.
func parseDay(v string) (time.Time, error) {
	t, err := time.ParseInLocation(dayFormat, v, time.Local)
	if err != nil {
		return time.Time{}, attendanceerrors.ErrInvalidDateFormat
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local), nil
}

func (s *service) List(ctx context.Context, q ListQuery) ([]AttendanceResponse, error) {
	var f Filters

	// A range filter takes precedence over a single-date filter when
	// both are supplied.
	if q.StartDate != "" && q.EndDate != "" {
		start, err := parseDay(q.StartDate)
		if err != nil {
			return nil, err
		}
		end, err := parseDay(q.EndDate)
		if err != nil {
			return nil, err
		}
		f.RangeStart, f.RangeEnd = &start, &end
	} else if q.Date != "" {
		day, err := parseDay(q.Date)
		if err != nil {
			return nil, err
		}
		next := day.AddDate(0, 0, 1)
		f.DayStart, f.DayEnd = &day, &next
	}

	if q.Status != "" {
		if err := ValidateStatus(q.Status); err != nil {
			return nil, err
		}
		f.Status = q.Status
	}
	if q.EmployeeID != "" {
		if _, err := uuid.Parse(q.EmployeeID); err != nil {
			return nil, attendanceerrors.ErrInvalidEmployeeID
		}
		f.EmployeeID = q.EmployeeID
	}

	rows, err := s.repo.FindWithFilters(ctx, f)
	if err != nil {
		s.logger.Error("list attendance failed", zap.Error(err))
		return nil, err
	}

	res := make([]AttendanceResponse, len(rows))
	for i, r := range rows {
		res[i] = mapToResponse(r)
	}
	return res, nil
}

// GetByDate reports one entry per employee: the stored record when one
// exists, otherwise a synthesized Present default with an empty id.
// The default is a presentation value and is never written to storage.
func (s *service) GetByDate(ctx context.Context, date string) ([]DayEntry, error) {
	day, err := parseDay(date)
	if err != nil {
		return nil, err
	}

	employees, err := s.employeeRepo.FindAll(ctx)
	if err != nil {
		s.logger.Error("get attendance by date list employees failed", zap.Error(err))
		return nil, err
	}

	records, err := s.repo.FindForDay(ctx, day)
	if err != nil {
		s.logger.Error("get attendance by date failed", zap.Error(err))
		return nil, err
	}

	byEmployee := make(map[string]Attendance, len(records))
	for _, r := range records {
		byEmployee[r.EmployeeID.String()] = r
	}

	entries := make([]DayEntry, len(employees))
	for i, e := range employees {
		info := EmployeeInfo{
			ID:         e.ID.String(),
			FullName:   e.FullName,
			Email:      e.Email,
			Phone:      e.Phone,
			Position:   e.Position,
			Department: e.Department,
		}

		if r, ok := byEmployee[e.ID.String()]; ok {
			entries[i] = DayEntry{Employee: info, Attendance: mapToResponse(r)}
			continue
		}

		entries[i] = DayEntry{
			Employee: info,
			Attendance: AttendanceResponse{
				ID:         "",
				EmployeeID: e.ID.String(),
				Date:       day.Format(dayFormat),
				Status:     StatusPresent,
				Task:       "",
				Notes:      "",
			},
		}
	}

	return entries, nil
}

func (s *service) Upsert(ctx context.Context, req UpsertAttendanceRequest) (AttendanceResponse, error) {
	s.logger.Debug("upsert attendance requested",
		zap.String("employee_id", req.EmployeeID),
		zap.String("date", req.Date),
	)

	if req.EmployeeID == "" || req.Date == "" {
		return AttendanceResponse{}, attendanceerrors.ErrEmployeeAndDateRequired
	}
	if _, err := uuid.Parse(req.EmployeeID); err != nil {
		return AttendanceResponse{}, attendanceerrors.ErrInvalidEmployeeID
	}
	if req.Status != "" {
		if err := ValidateStatus(req.Status); err != nil {
			return AttendanceResponse{}, err
		}
	}

	day, err := parseDay(req.Date)
	if err != nil {
		return AttendanceResponse{}, err
	}

	if _, err := s.employeeRepo.FindByID(ctx, req.EmployeeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AttendanceResponse{}, attendanceerrors.ErrEmployeeNotFound
		}
		return AttendanceResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("upsert attendance begin tx failed", zap.Error(err))
		return AttendanceResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	existing, err := qtx.FindByEmployeeAndDate(ctx, req.EmployeeID, day)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return AttendanceResponse{}, err
	}

	var row *Attendance
	if err == nil {
		// Merge: empty/unset fields keep the stored values.
		row = existing
		if req.Status != "" {
			row.Status = req.Status
		}
		if req.Task != nil {
			row.Task = *req.Task
		}
		if req.ClockInTime != nil {
			row.ClockInTime = req.ClockInTime
		}
		if req.ClockOutTime != nil {
			row.ClockOutTime = req.ClockOutTime
		}
		if req.Notes != nil {
			row.Notes = *req.Notes
		}
		if err := qtx.Update(ctx, row); err != nil {
			s.logger.Error("upsert attendance update failed", zap.Error(err))
			return AttendanceResponse{}, err
		}
	} else {
		status := req.Status
		if status == "" {
			status = StatusPresent
		}
		row = &Attendance{
			ID:             uuid.New(),
			EmployeeID:     uuid.MustParse(req.EmployeeID),
			AttendanceDate: day,
			Status:         status,
			ClockInTime:    req.ClockInTime,
			ClockOutTime:   req.ClockOutTime,
		}
		if req.Task != nil {
			row.Task = *req.Task
		}
		if req.Notes != nil {
			row.Notes = *req.Notes
		}
		if err := qtx.Create(ctx, row); err != nil {
			// A concurrent upsert for the same (employee, day) loses
			// the race at the unique index; surface it as a conflict.
			s.logger.Warn("upsert attendance create failed", zap.Error(err))
			return AttendanceResponse{}, mapRepositoryError(err)
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("upsert attendance commit failed", zap.Error(err))
		return AttendanceResponse{}, err
	}

	s.logger.Info("upsert attendance success",
		zap.String("attendance_id", row.ID.String()),
		zap.String("employee_id", req.EmployeeID),
		zap.String("date", day.Format(dayFormat)),
	)
	return mapToResponse(*row), nil
}

func (s *service) UpdateByID(ctx context.Context, id string, req UpdateAttendanceRequest) (AttendanceResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return AttendanceResponse{}, attendanceerrors.ErrInvalidAttendanceID
	}
	if req.Status != "" {
		if err := ValidateStatus(req.Status); err != nil {
			return AttendanceResponse{}, err
		}
	}

	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AttendanceResponse{}, attendanceerrors.ErrAttendanceNotFound
		}
		return AttendanceResponse{}, err
	}

	if req.Status != "" {
		row.Status = req.Status
	}
	if req.Task != nil {
		row.Task = *req.Task
	}
	if req.ClockInTime != nil {
		row.ClockInTime = req.ClockInTime
	}
	if req.ClockOutTime != nil {
		row.ClockOutTime = req.ClockOutTime
	}
	if req.Notes != nil {
		row.Notes = *req.Notes
	}

	if err := s.repo.Update(ctx, row); err != nil {
		s.logger.Error("update attendance persist failed", zap.Error(err))
		return AttendanceResponse{}, err
	}

	s.logger.Info("update attendance success", zap.String("attendance_id", id))
	return mapToResponse(*row), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return attendanceerrors.ErrInvalidAttendanceID
	}

	affected, err := s.repo.Delete(ctx, id)
	if err != nil {
		s.logger.Error("delete attendance failed", zap.Error(err))
		return err
	}
	if affected == 0 {
		return attendanceerrors.ErrAttendanceNotFound
	}

	s.logger.Info("delete attendance success", zap.String("attendance_id", id))
	return nil
}

func (s *service) Stats(ctx context.Context, q StatsQuery) (StatsResponse, error) {
	var f Filters

	if q.StartDate != "" && q.EndDate != "" {
		start, err := parseDay(q.StartDate)
		if err != nil {
			return StatsResponse{}, err
		}
		end, err := parseDay(q.EndDate)
		if err != nil {
			return StatsResponse{}, err
		}
		f.RangeStart, f.RangeEnd = &start, &end
	}
	if q.EmployeeID != "" {
		if _, err := uuid.Parse(q.EmployeeID); err != nil {
			return StatsResponse{}, attendanceerrors.ErrInvalidEmployeeID
		}
		f.EmployeeID = q.EmployeeID
	}

	counts, err := s.repo.CountByStatus(ctx, f)
	if err != nil {
		s.logger.Error("attendance stats failed", zap.Error(err))
		return StatsResponse{}, err
	}

	totalEmployees, err := s.employeeRepo.Count(ctx)
	if err != nil {
		s.logger.Error("attendance stats count employees failed", zap.Error(err))
		return StatsResponse{}, err
	}

	if counts == nil {
		counts = []StatusCount{}
	}
	return StatsResponse{
		Stats:          counts,
		TotalEmployees: totalEmployees,
	}, nil
}

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return attendanceerrors.ErrDuplicateAttendance
	}
	if strings.Contains(strings.ToLower(err.Error()), "duplicate key value") {
		return attendanceerrors.ErrDuplicateAttendance
	}

	return err
}

func mapToResponse(a Attendance) AttendanceResponse {
	resp := AttendanceResponse{
		ID:         a.ID.String(),
		EmployeeID: a.EmployeeID.String(),
		Date:       a.AttendanceDate.Format(dayFormat),
		Status:     a.Status,
		Task:       a.Task,
		Notes:      a.Notes,
	}
	if a.ClockInTime != nil {
		v := a.ClockInTime.Format(time.RFC3339)
		resp.ClockInTime = &v
	}
	if a.ClockOutTime != nil {
		v := a.ClockOutTime.Format(time.RFC3339)
		resp.ClockOutTime = &v
	}
	if a.Employee != nil {
		resp.Employee = &EmployeeInfo{
			ID:         a.Employee.ID.String(),
			FullName:   a.Employee.FullName,
			Email:      a.Employee.Email,
			Phone:      a.Employee.Phone,
			Position:   a.Employee.Position,
			Department: a.Employee.Department,
		}
	}
	return resp
}
