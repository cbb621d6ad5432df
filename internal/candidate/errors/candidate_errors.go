package candidateerrors

import (
	"net/http"

	"github.com/omsaini-1441/HRMS-backend/internal/shared/apperror"
)

var (
	ErrCandidateNotFound = apperror.New(
		apperror.CodeNotFound,
		"Candidate not found",
		http.StatusNotFound,
	)
	ErrCandidateAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Candidate with the same email already exists",
		http.StatusConflict,
	)
	ErrResumeRequired = apperror.New(
		apperror.CodeInvalidInput,
		"Resume is required",
		http.StatusBadRequest,
	)
	ErrResumeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Resume not found",
		http.StatusNotFound,
	)
	ErrInvalidStatus = apperror.New(
		apperror.CodeInvalidInput,
		"Status is not one of the allowed values",
		http.StatusBadRequest,
	)
	ErrInvalidCandidateID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid candidate ID",
		http.StatusBadRequest,
	)
	ErrInvalidPhone = apperror.New(
		apperror.CodeInvalidInput,
		"Phone number must be 10-15 digits with optional +, spaces or dashes",
		http.StatusBadRequest,
	)
	ErrFullNameTooShort = apperror.New(
		apperror.CodeInvalidInput,
		"Full name must be at least 2 characters",
		http.StatusBadRequest,
	)
)
