package upload

import (
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/omsaini-1441/HRMS-backend/internal/shared/apperror"
)

// MaxFileSize is the hard ceiling for stored blobs (5 MiB).
const MaxFileSize = 5 << 20

var allowedExtensions = map[string]bool{
	".jpeg": true,
	".jpg":  true,
	".png":  true,
	".pdf":  true,
	".doc":  true,
	".docx": true,
}

var allowedContentTypes = map[string]bool{
	"image/jpeg":      true,
	"image/png":       true,
	"application/pdf": true,
	"application/msword": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
}

var (
	ErrFileTooLarge = apperror.New(
		apperror.CodeInvalidInput,
		"File exceeds the 5MB size limit",
		http.StatusBadRequest,
	)
	ErrFileTypeNotAllowed = apperror.New(
		apperror.CodeInvalidInput,
		"Only images, PDFs, and Word documents are allowed",
		http.StatusBadRequest,
	)
)

// Blob is binary file content plus the metadata needed to serve it back.
type Blob struct {
	Data        []byte
	ContentType string
	Filename    string
}

// ReadBlob validates and buffers a multipart file. The size and type
// checks run before any bytes reach storage.
func ReadBlob(fh *multipart.FileHeader) (Blob, error) {
	if fh.Size > MaxFileSize {
		return Blob{}, ErrFileTooLarge
	}

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	contentType := fh.Header.Get("Content-Type")
	if !allowedExtensions[ext] || !allowedContentTypes[contentType] {
		return Blob{}, ErrFileTypeNotAllowed
	}

	f, err := fh.Open()
	if err != nil {
		return Blob{}, apperror.Wrap(err, apperror.CodeInternalError, "Failed to read uploaded file", http.StatusInternalServerError)
	}
	defer f.Close()

	// LimitReader guards against a lying Size header
	data, err := io.ReadAll(io.LimitReader(f, MaxFileSize+1))
	if err != nil {
		return Blob{}, apperror.Wrap(err, apperror.CodeInternalError, "Failed to read uploaded file", http.StatusInternalServerError)
	}
	if len(data) > MaxFileSize {
		return Blob{}, ErrFileTooLarge
	}

	return Blob{
		Data:        data,
		ContentType: contentType,
		Filename:    fh.Filename,
	}, nil
}
