package leave

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/omsaini-1441/HRMS-backend/internal/employee"
	"github.com/omsaini-1441/HRMS-backend/internal/events"
	leaveerrors "github.com/omsaini-1441/HRMS-backend/internal/leave/errors"
	"github.com/omsaini-1441/HRMS-backend/internal/messaging/kafka"
	"github.com/omsaini-1441/HRMS-backend/internal/shared/contextutil"
	"github.com/omsaini-1441/HRMS-backend/internal/shared/upload"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	StatusPending  = "Pending"
	StatusApproved = "Approved"
	StatusRejected = "Rejected"
)

var Statuses = []string{StatusPending, StatusApproved, StatusRejected}

// LeaveTypes is the closed set of accepted leave categories.
var LeaveTypes = []string{
	"Sick Leave",
	"Casual Leave",
	"Annual Leave",
	"Maternity Leave",
	"Paternity Leave",
	"Emergency Leave",
}

func ValidateStatus(v string) error {
	for _, s := range Statuses {
		if v == s {
			return nil
		}
	}
	return leaveerrors.ErrInvalidStatus
}

func ValidateLeaveType(v string) error {
	for _, t := range LeaveTypes {
		if v == t {
			return nil
		}
	}
	return leaveerrors.ErrInvalidLeaveType
}

//go:generate mockgen -source=leave_service.go -destination=mock/leave_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateLeaveRequest, document *upload.Blob) (LeaveResponse, error)
	List(ctx context.Context, status string) ([]LeaveResponse, error)
	Calendar(ctx context.Context, month, year int) (map[string][]CalendarEntry, error)
	GetByDate(ctx context.Context, date string) ([]LeaveResponse, error)
	GetDocument(ctx context.Context, id string) (upload.Blob, error)
	UpdateStatus(ctx context.Context, id, status string) (LeaveResponse, error)
	Delete(ctx context.Context, id string) error
	Stats(ctx context.Context) (StatsResponse, error)
}

type service struct {
	db           *sql.DB
	repo         Repository
	employeeRepo employee.Repository
	outbox       kafka.OutboxRepository
	logger       *zap.Logger
}

func NewService(db *sql.DB, repo Repository, employeeRepo employee.Repository, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(db, repo, employeeRepo, nil, logger...)
}

func NewServiceWithOutbox(
	db *sql.DB,
	repo Repository,
	employeeRepo employee.Repository,
	outboxRepo kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("leave.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.service")
	}
	return &service{
		db:           db,
		repo:         repo,
		employeeRepo: employeeRepo,
		outbox:       outboxRepo,
		logger:       l,
	}
}

func parseDay(v string) (time.Time, error) {
	t, err := time.ParseInLocation(dayFormat, v, time.Local)
	if err != nil {
		return time.Time{}, leaveerrors.ErrInvalidDateFormat
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local), nil
}

// totalDays counts calendar days inclusively: a leave starting and
// ending on the same day is one day. Both dates are re-anchored at UTC
// midnight before subtracting, so a daylight saving transition inside
// the span cannot shorten it to a 23-hour day and undercount.
func totalDays(start, end time.Time) int {
	s := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	e := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)
	return int(e.Sub(s).Hours()/24) + 1
}

func (s *service) Create(ctx context.Context, req CreateLeaveRequest, document *upload.Blob) (LeaveResponse, error) {
	s.logger.Debug("create leave requested",
		zap.String("employee_id", req.EmployeeID),
		zap.String("leave_type", req.LeaveType),
	)

	if _, err := uuid.Parse(req.EmployeeID); err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidEmployeeID
	}
	if err := ValidateLeaveType(req.LeaveType); err != nil {
		return LeaveResponse{}, err
	}

	start, err := parseDay(req.StartDate)
	if err != nil {
		return LeaveResponse{}, err
	}
	end, err := parseDay(req.EndDate)
	if err != nil {
		return LeaveResponse{}, err
	}
	if end.Before(start) {
		return LeaveResponse{}, leaveerrors.ErrInvalidDateRange
	}

	if _, err := s.employeeRepo.FindByID(ctx, req.EmployeeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveResponse{}, leaveerrors.ErrEmployeeNotFound
		}
		return LeaveResponse{}, err
	}

	l := &Leave{
		ID:          uuid.New(),
		EmployeeID:  uuid.MustParse(req.EmployeeID),
		LeaveType:   req.LeaveType,
		StartDate:   start,
		EndDate:     end,
		Reason:      req.Reason,
		Designation: req.Designation,
		Status:      StatusPending,
		AppliedDate: time.Now(),
		TotalDays:   totalDays(start, end),
	}
	if document != nil && len(document.Data) > 0 {
		l.DocumentData = document.Data
		l.DocumentContentType = document.ContentType
		l.DocumentFilename = document.Filename
	}

	if err := s.repo.Create(ctx, l); err != nil {
		s.logger.Warn("create leave persist failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	s.logger.Info("create leave success",
		zap.String("leave_id", l.ID.String()),
		zap.String("employee_id", req.EmployeeID),
		zap.Int("total_days", l.TotalDays),
	)
	return mapToResponse(*l), nil
}

func (s *service) List(ctx context.Context, status string) ([]LeaveResponse, error) {
	if status != "" {
		if err := ValidateStatus(status); err != nil {
			return nil, err
		}
	}

	rows, err := s.repo.FindAll(ctx, status)
	if err != nil {
		s.logger.Error("list leaves failed", zap.Error(err))
		return nil, err
	}

	res := make([]LeaveResponse, len(rows))
	for i, l := range rows {
		res[i] = mapToResponse(l)
	}
	return res, nil
}

// Calendar expands Approved leaves overlapping the month into per-day
// entry lists keyed by local YYYY-MM-DD. Days outside the month are
// clamped off even when the leave spans past the month boundary.
func (s *service) Calendar(ctx context.Context, month, year int) (map[string][]CalendarEntry, error) {
	if month < 1 || month > 12 || year < 1970 || year > 9999 {
		return nil, leaveerrors.ErrInvalidCalendarMonth
	}

	monthStart := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.Local)
	monthEnd := monthStart.AddDate(0, 1, -1)

	rows, err := s.repo.FindApprovedOverlapping(ctx, monthStart, monthEnd)
	if err != nil {
		s.logger.Error("leave calendar failed", zap.Error(err))
		return nil, err
	}

	calendar := make(map[string][]CalendarEntry)
	for _, l := range rows {
		from := l.StartDate
		if from.Before(monthStart) {
			from = monthStart
		}
		to := l.EndDate
		if to.After(monthEnd) {
			to = monthEnd
		}

		entry := CalendarEntry{
			ID:        l.ID.String(),
			Employee:  mapEmployeeInfo(l.Employee),
			LeaveType: l.LeaveType,
		}
		for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
			key := d.Format(dayFormat)
			calendar[key] = append(calendar[key], entry)
		}
	}

	return calendar, nil
}

func (s *service) GetByDate(ctx context.Context, date string) ([]LeaveResponse, error) {
	day, err := parseDay(date)
	if err != nil {
		return nil, err
	}

	rows, err := s.repo.FindApprovedContaining(ctx, day)
	if err != nil {
		s.logger.Error("get leaves by date failed", zap.Error(err))
		return nil, err
	}

	res := make([]LeaveResponse, len(rows))
	for i, l := range rows {
		res[i] = mapToResponse(l)
	}
	return res, nil
}

func (s *service) GetDocument(ctx context.Context, id string) (upload.Blob, error) {
	if _, err := uuid.Parse(id); err != nil {
		return upload.Blob{}, leaveerrors.ErrInvalidLeaveID
	}

	l, err := s.repo.FindDocument(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return upload.Blob{}, leaveerrors.ErrDocumentNotFound
		}
		return upload.Blob{}, err
	}
	if len(l.DocumentData) == 0 {
		return upload.Blob{}, leaveerrors.ErrDocumentNotFound
	}

	return upload.Blob{
		Data:        l.DocumentData,
		ContentType: l.DocumentContentType,
		Filename:    l.DocumentFilename,
	}, nil
}

func (s *service) UpdateStatus(ctx context.Context, id, status string) (LeaveResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("update leave status requested",
		zap.String("request_id", rid),
		zap.String("leave_id", id),
		zap.String("status", status),
	)

	if _, err := uuid.Parse(id); err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidLeaveID
	}
	if err := ValidateStatus(status); err != nil {
		return LeaveResponse{}, err
	}

	l, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveResponse{}, leaveerrors.ErrLeaveNotFound
		}
		return LeaveResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update leave status begin tx failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	affected, err := qtx.UpdateStatus(ctx, id, status)
	if err != nil {
		s.logger.Error("update leave status persist failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	if affected == 0 {
		return LeaveResponse{}, leaveerrors.ErrLeaveNotFound
	}

	// Decisions fan out through the outbox; setting the record back to
	// Pending is an internal correction and emits nothing.
	if s.outbox != nil && status != StatusPending {
		event := events.LeaveStatusChangedEvent{
			EventType:  "leave_status_changed",
			RequestID:  rid,
			LeaveID:    l.ID.String(),
			EmployeeID: l.EmployeeID.String(),
			Status:     status,
			StartDate:  l.StartDate.Format(dayFormat),
			EndDate:    l.EndDate.Format(dayFormat),
			TotalDays:  l.TotalDays,
			OccurredAt: time.Now().UTC(),
		}
		payload, err := json.Marshal(event)
		if err != nil {
			s.logger.Error("marshal event failed", zap.String("request_id", rid), zap.Error(err))
			return LeaveResponse{}, err
		}

		outboxRepo := s.outbox.WithTx(tx)
		if err := outboxRepo.Create(ctx, kafka.OutboxEvent{
			ID:            uuid.NewString(),
			RequestID:     rid,
			AggregateType: "leave",
			AggregateID:   l.ID.String(),
			EventType:     event.EventType,
			Topic:         events.LeaveDecisionTopic,
			Payload:       payload,
			Status:        kafka.OutboxStatusPending,
		}); err != nil {
			s.logger.Error("update leave status outbox persist failed",
				zap.String("leave_id", id),
				zap.Error(err),
			)
			return LeaveResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("update leave status commit failed", zap.String("request_id", rid), zap.Error(err))
		return LeaveResponse{}, err
	}

	l.Status = status

	s.logger.Info("update leave status success",
		zap.String("request_id", rid),
		zap.String("leave_id", id),
		zap.String("status", status),
	)
	return mapToResponse(*l), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return leaveerrors.ErrInvalidLeaveID
	}

	affected, err := s.repo.Delete(ctx, id)
	if err != nil {
		s.logger.Error("delete leave failed", zap.Error(err))
		return err
	}
	if affected == 0 {
		return leaveerrors.ErrLeaveNotFound
	}

	s.logger.Info("delete leave success", zap.String("leave_id", id))
	return nil
}

func (s *service) Stats(ctx context.Context) (StatsResponse, error) {
	counts, err := s.repo.CountByStatus(ctx)
	if err != nil {
		s.logger.Error("leave stats failed", zap.Error(err))
		return StatsResponse{}, err
	}

	stats := StatsResponse{
		Pending:  counts[StatusPending],
		Approved: counts[StatusApproved],
		Rejected: counts[StatusRejected],
	}
	stats.Total = stats.Pending + stats.Approved + stats.Rejected
	return stats, nil
}

func mapEmployeeInfo(e *EmployeeRef) *EmployeeInfo {
	if e == nil {
		return nil
	}
	return &EmployeeInfo{
		ID:         e.ID.String(),
		FullName:   e.FullName,
		Email:      e.Email,
		Position:   e.Position,
		Department: e.Department,
	}
}

func mapToResponse(l Leave) LeaveResponse {
	resp := LeaveResponse{
		ID:          l.ID.String(),
		EmployeeID:  l.EmployeeID.String(),
		Employee:    mapEmployeeInfo(l.Employee),
		LeaveType:   l.LeaveType,
		StartDate:   l.StartDate.Format(dayFormat),
		EndDate:     l.EndDate.Format(dayFormat),
		Reason:      l.Reason,
		Designation: l.Designation,
		Status:      l.Status,
		AppliedDate: l.AppliedDate.Format(time.RFC3339),
		TotalDays:   l.TotalDays,
	}
	if l.DocumentFilename != "" {
		resp.Document = &DocumentMeta{
			Filename:    l.DocumentFilename,
			ContentType: l.DocumentContentType,
			HasDocument: true,
		}
	}
	return resp
}
