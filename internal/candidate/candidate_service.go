package candidate

import (
	"context"
	"errors"
	"regexp"
	"strings"

	candidateerrors "github.com/omsaini-1441/HRMS-backend/internal/candidate/errors"
	"github.com/omsaini-1441/HRMS-backend/internal/shared/upload"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	StatusNew       = "New"
	StatusScheduled = "Scheduled"
	StatusOngoing   = "Ongoing"
	StatusSelected  = "Selected"
	StatusRejected  = "Rejected"
)

// Statuses is the candidate pipeline state machine's value set.
var Statuses = []string{StatusNew, StatusScheduled, StatusOngoing, StatusSelected, StatusRejected}

var phonePattern = regexp.MustCompile(`^\+?[\d\s-]{10,15}$`)

func ValidateStatus(v string) error {
	for _, s := range Statuses {
		if v == s {
			return nil
		}
	}
	return candidateerrors.ErrInvalidStatus
}

//go:generate mockgen -source=candidate_service.go -destination=mock/candidate_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateCandidateRequest, resume *upload.Blob) (CandidateResponse, error)
	GetAll(ctx context.Context) ([]CandidateResponse, error)
	UpdateStatus(ctx context.Context, id, status string) (CandidateResponse, error)
	Delete(ctx context.Context, id string) error
	GetResume(ctx context.Context, id string) (upload.Blob, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("candidate.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("candidate.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateCandidateRequest, resume *upload.Blob) (CandidateResponse, error) {
	s.logger.Debug("create candidate requested", zap.String("email", req.Email))

	if resume == nil || len(resume.Data) == 0 {
		return CandidateResponse{}, candidateerrors.ErrResumeRequired
	}
	if len(strings.TrimSpace(req.FullName)) < 2 {
		return CandidateResponse{}, candidateerrors.ErrFullNameTooShort
	}
	if !phonePattern.MatchString(req.Phone) {
		return CandidateResponse{}, candidateerrors.ErrInvalidPhone
	}

	cand := &Candidate{
		ID:                uuid.New(),
		FullName:          req.FullName,
		Email:             strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:             req.Phone,
		Position:          req.Position,
		Experience:        req.Experience,
		ResumeData:        resume.Data,
		ResumeContentType: resume.ContentType,
		ResumeFilename:    resume.Filename,
		Status:            StatusNew,
	}

	if err := s.repo.Create(ctx, cand); err != nil {
		s.logger.Warn("create candidate persist failed", zap.Error(err))
		return CandidateResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("create candidate success", zap.String("candidate_id", cand.ID.String()))
	return mapToResponse(*cand), nil
}

func (s *service) GetAll(ctx context.Context) ([]CandidateResponse, error) {
	cands, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("get all candidates failed", zap.Error(err))
		return nil, err
	}

	res := make([]CandidateResponse, len(cands))
	for i, c := range cands {
		res[i] = mapToResponse(c)
	}
	return res, nil
}

func (s *service) UpdateStatus(ctx context.Context, id, status string) (CandidateResponse, error) {
	s.logger.Debug("update candidate status requested",
		zap.String("candidate_id", id),
		zap.String("status", status),
	)

	if _, err := uuid.Parse(id); err != nil {
		return CandidateResponse{}, candidateerrors.ErrInvalidCandidateID
	}
	if err := ValidateStatus(status); err != nil {
		return CandidateResponse{}, err
	}

	affected, err := s.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		s.logger.Error("update candidate status failed", zap.Error(err))
		return CandidateResponse{}, err
	}
	if affected == 0 {
		return CandidateResponse{}, candidateerrors.ErrCandidateNotFound
	}

	cand, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return CandidateResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("update candidate status success",
		zap.String("candidate_id", id),
		zap.String("status", status),
	)
	return mapToResponse(*cand), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return candidateerrors.ErrInvalidCandidateID
	}

	affected, err := s.repo.Delete(ctx, id)
	if err != nil {
		s.logger.Error("delete candidate failed", zap.Error(err))
		return err
	}
	if affected == 0 {
		return candidateerrors.ErrCandidateNotFound
	}

	s.logger.Info("delete candidate success", zap.String("candidate_id", id))
	return nil
}

func (s *service) GetResume(ctx context.Context, id string) (upload.Blob, error) {
	if _, err := uuid.Parse(id); err != nil {
		return upload.Blob{}, candidateerrors.ErrInvalidCandidateID
	}

	cand, err := s.repo.FindResume(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return upload.Blob{}, candidateerrors.ErrResumeNotFound
		}
		return upload.Blob{}, err
	}
	if len(cand.ResumeData) == 0 {
		return upload.Blob{}, candidateerrors.ErrResumeNotFound
	}

	return upload.Blob{
		Data:        cand.ResumeData,
		ContentType: cand.ResumeContentType,
		Filename:    cand.ResumeFilename,
	}, nil
}

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return candidateerrors.ErrCandidateNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && pgErr.ConstraintName == "uq_candidates_email" {
			return candidateerrors.ErrCandidateAlreadyExists
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_candidates_email") {
		return candidateerrors.ErrCandidateAlreadyExists
	}

	return err
}

func mapToResponse(c Candidate) CandidateResponse {
	resp := CandidateResponse{
		ID:         c.ID.String(),
		FullName:   c.FullName,
		Email:      c.Email,
		Phone:      c.Phone,
		Position:   c.Position,
		Experience: c.Experience,
		Status:     c.Status,
	}
	if c.ResumeFilename != "" {
		resp.Resume = &BlobMeta{
			Filename:    c.ResumeFilename,
			ContentType: c.ResumeContentType,
			HasFile:     true,
		}
	}
	return resp
}
