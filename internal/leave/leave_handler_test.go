package leave_test

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/omsaini-1441/HRMS-backend/internal/leave"
	leaveerrors "github.com/omsaini-1441/HRMS-backend/internal/leave/errors"
	"github.com/omsaini-1441/HRMS-backend/internal/shared/upload"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeLeaveService struct {
	createFn       func(ctx context.Context, req leave.CreateLeaveRequest, document *upload.Blob) (leave.LeaveResponse, error)
	listFn         func(ctx context.Context, status string) ([]leave.LeaveResponse, error)
	calendarFn     func(ctx context.Context, month, year int) (map[string][]leave.CalendarEntry, error)
	getByDateFn    func(ctx context.Context, date string) ([]leave.LeaveResponse, error)
	getDocumentFn  func(ctx context.Context, id string) (upload.Blob, error)
	updateStatusFn func(ctx context.Context, id, status string) (leave.LeaveResponse, error)
	deleteFn       func(ctx context.Context, id string) error
	statsFn        func(ctx context.Context) (leave.StatsResponse, error)
}

func (f *fakeLeaveService) Create(ctx context.Context, req leave.CreateLeaveRequest, document *upload.Blob) (leave.LeaveResponse, error) {
	return f.createFn(ctx, req, document)
}
func (f *fakeLeaveService) List(ctx context.Context, status string) ([]leave.LeaveResponse, error) {
	return f.listFn(ctx, status)
}
func (f *fakeLeaveService) Calendar(ctx context.Context, month, year int) (map[string][]leave.CalendarEntry, error) {
	return f.calendarFn(ctx, month, year)
}
func (f *fakeLeaveService) GetByDate(ctx context.Context, date string) ([]leave.LeaveResponse, error) {
	return f.getByDateFn(ctx, date)
}
func (f *fakeLeaveService) GetDocument(ctx context.Context, id string) (upload.Blob, error) {
	return f.getDocumentFn(ctx, id)
}
func (f *fakeLeaveService) UpdateStatus(ctx context.Context, id, status string) (leave.LeaveResponse, error) {
	return f.updateStatusFn(ctx, id, status)
}
func (f *fakeLeaveService) Delete(ctx context.Context, id string) error {
	return f.deleteFn(ctx, id)
}
func (f *fakeLeaveService) Stats(ctx context.Context) (leave.StatsResponse, error) {
	return f.statsFn(ctx)
}

func multipartLeaveBody(t *testing.T, withFile bool) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	fields := map[string]string{
		"employeeId":  uuid.New().String(),
		"leaveType":   "Sick Leave",
		"startDate":   "2024-01-01",
		"endDate":     "2024-01-03",
		"reason":      "Fever",
		"designation": "Engineer",
	}
	for k, v := range fields {
		assert.NoError(t, mw.WriteField(k, v))
	}

	if withFile {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", `form-data; name="documents"; filename="note.pdf"`)
		header.Set("Content-Type", "application/pdf")
		fw, err := mw.CreatePart(header)
		assert.NoError(t, err)
		_, err = fw.Write([]byte("%PDF-1.4 fake"))
		assert.NoError(t, err)
	}

	assert.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func TestHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("without document", func(t *testing.T) {
		svc := &fakeLeaveService{
			createFn: func(ctx context.Context, req leave.CreateLeaveRequest, document *upload.Blob) (leave.LeaveResponse, error) {
				assert.Equal(t, "Sick Leave", req.LeaveType)
				assert.Equal(t, "Engineer", req.Designation)
				assert.Nil(t, document)
				return leave.LeaveResponse{ID: uuid.New().String(), Status: leave.StatusPending, TotalDays: 3}, nil
			},
		}

		h := leave.NewHandler(svc)

		body, contentType := multipartLeaveBody(t, false)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/leaves", body)
		c.Request.Header.Set("Content-Type", contentType)
		h.Create(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), leave.StatusPending)
	})

	t.Run("with document", func(t *testing.T) {
		svc := &fakeLeaveService{
			createFn: func(ctx context.Context, req leave.CreateLeaveRequest, document *upload.Blob) (leave.LeaveResponse, error) {
				assert.NotNil(t, document)
				assert.Equal(t, "note.pdf", document.Filename)
				return leave.LeaveResponse{ID: uuid.New().String(), Status: leave.StatusPending}, nil
			},
		}

		h := leave.NewHandler(svc)

		body, contentType := multipartLeaveBody(t, true)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/leaves", body)
		c.Request.Header.Set("Content-Type", contentType)
		h.Create(c)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("negative missing designation", func(t *testing.T) {
		h := leave.NewHandler(&fakeLeaveService{})

		var buf bytes.Buffer
		mw := multipart.NewWriter(&buf)
		fields := map[string]string{
			"employeeId": uuid.New().String(),
			"leaveType":  "Sick Leave",
			"startDate":  "2024-01-01",
			"endDate":    "2024-01-03",
			"reason":     "Fever",
		}
		for k, v := range fields {
			assert.NoError(t, mw.WriteField(k, v))
		}
		assert.NoError(t, mw.Close())

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/leaves", &buf)
		c.Request.Header.Set("Content-Type", mw.FormDataContentType())
		h.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), `"ok":false`)
	})
}

func TestHandler_Calendar(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		svc := &fakeLeaveService{
			calendarFn: func(ctx context.Context, month, year int) (map[string][]leave.CalendarEntry, error) {
				assert.Equal(t, 2, month)
				assert.Equal(t, 2024, year)
				return map[string][]leave.CalendarEntry{
					"2024-02-01": {{ID: uuid.New().String(), LeaveType: "Annual Leave"}},
				}, nil
			},
		}

		h := leave.NewHandler(svc)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/leaves/calendar?month=2&year=2024", nil)
		h.Calendar(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "2024-02-01")
	})

	t.Run("negative non-numeric month", func(t *testing.T) {
		h := leave.NewHandler(&fakeLeaveService{})

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/leaves/calendar?month=feb&year=2024", nil)
		h.Calendar(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandler_UpdateStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)
	id := uuid.New().String()

	t.Run("success", func(t *testing.T) {
		svc := &fakeLeaveService{
			updateStatusFn: func(ctx context.Context, targetID, status string) (leave.LeaveResponse, error) {
				assert.Equal(t, id, targetID)
				assert.Equal(t, leave.StatusApproved, status)
				return leave.LeaveResponse{ID: targetID, Status: status}, nil
			},
		}

		h := leave.NewHandler(svc)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Params = gin.Params{{Key: "id", Value: id}}
		c.Request = httptest.NewRequest(http.MethodPut, "/leaves/"+id+"/status",
			strings.NewReader(`{"status":"Approved"}`))
		c.Request.Header.Set("Content-Type", "application/json")
		h.UpdateStatus(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("negative unknown status", func(t *testing.T) {
		svc := &fakeLeaveService{
			updateStatusFn: func(ctx context.Context, targetID, status string) (leave.LeaveResponse, error) {
				return leave.LeaveResponse{}, leaveerrors.ErrInvalidStatus
			},
		}

		h := leave.NewHandler(svc)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Params = gin.Params{{Key: "id", Value: id}}
		c.Request = httptest.NewRequest(http.MethodPut, "/leaves/"+id+"/status",
			strings.NewReader(`{"status":"Cancelled"}`))
		c.Request.Header.Set("Content-Type", "application/json")
		h.UpdateStatus(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandler_Stats(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeLeaveService{
		statsFn: func(ctx context.Context) (leave.StatsResponse, error) {
			return leave.StatsResponse{Total: 10, Pending: 4, Approved: 5, Rejected: 1}, nil
		},
	}

	h := leave.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/leaves/stats", nil)
	h.Stats(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total":10`)
}
