package upload_test

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/omsaini-1441/HRMS-backend/internal/shared/upload"

	"github.com/stretchr/testify/assert"
)

func buildFileHeader(t *testing.T, filename, contentType string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="file"; filename="`+filename+`"`)
	header.Set("Content-Type", contentType)
	part, err := mw.CreatePart(header)
	assert.NoError(t, err)
	_, err = part.Write(content)
	assert.NoError(t, err)
	assert.NoError(t, mw.Close())

	req := httptest.NewRequest("POST", "/", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	assert.NoError(t, req.ParseMultipartForm(32<<20))

	return req.MultipartForm.File["file"][0]
}

func TestReadBlob(t *testing.T) {
	t.Run("accepts a pdf", func(t *testing.T) {
		fh := buildFileHeader(t, "resume.pdf", "application/pdf", []byte("%PDF-1.4 fake"))

		blob, err := upload.ReadBlob(fh)

		assert.NoError(t, err)
		assert.Equal(t, "resume.pdf", blob.Filename)
		assert.Equal(t, "application/pdf", blob.ContentType)
		assert.Equal(t, []byte("%PDF-1.4 fake"), blob.Data)
	})

	t.Run("negative disallowed extension", func(t *testing.T) {
		fh := buildFileHeader(t, "script.sh", "application/pdf", []byte("#!/bin/sh"))

		_, err := upload.ReadBlob(fh)

		assert.ErrorIs(t, err, upload.ErrFileTypeNotAllowed)
	})

	t.Run("negative disallowed content type", func(t *testing.T) {
		fh := buildFileHeader(t, "resume.pdf", "application/zip", []byte("PK"))

		_, err := upload.ReadBlob(fh)

		assert.ErrorIs(t, err, upload.ErrFileTypeNotAllowed)
	})

	t.Run("negative oversized file", func(t *testing.T) {
		fh := buildFileHeader(t, "big.pdf", "application/pdf", bytes.Repeat([]byte("a"), upload.MaxFileSize+1))

		_, err := upload.ReadBlob(fh)

		assert.ErrorIs(t, err, upload.ErrFileTooLarge)
	})
}
