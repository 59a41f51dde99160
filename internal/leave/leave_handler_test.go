package leave_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"hris-console/internal/leave"
	leaveerrors "hris-console/internal/leave/errors"
	"hris-console/internal/leave/mock"
	"hris-console/internal/visibility"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type apiMeta struct {
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
	Page       int   `json:"page"`
	PageSize   int   `json:"pageSize"`
}

type apiEnvelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Meta  *apiMeta        `json:"meta"`
	Error *apiError       `json:"error"`
}

func decodeEnvelope(t *testing.T, body []byte) apiEnvelope {
	t.Helper()
	var env apiEnvelope
	err := json.Unmarshal(body, &env)
	assert.NoError(t, err)
	return env
}

func newHandlerContext(method, target, body string, params gin.Params) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, target, strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = params
	return c, w
}

func setupHandler(t *testing.T) (*leave.Handler, *mock.MockService) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	svc := mock.NewMockService(gomock.NewController(t))
	return leave.NewHandler(svc), svc
}

func TestLeaveHandler_GetAll(t *testing.T) {
	t.Run("paginates and filters by status", func(t *testing.T) {
		h, svc := setupHandler(t)
		rows := []leave.DisplayRow{
			{ID: "1", Status: "Pending"},
			{ID: "2", Status: "Approved"},
			{ID: "3", Status: "Pending"},
			{ID: "4", Status: "Pending"},
		}
		svc.EXPECT().List(gomock.Any(), leave.Actor{EmployeeID: "42", Role: visibility.RoleWorker}, leave.TypeSick).Return(rows, nil)

		c, w := newHandlerContext(http.MethodGet, "/leaves/sick?status=pending&page=2&page_size=2", "", gin.Params{{Key: "type", Value: "sick"}})
		c.Set("employee_id", "42")
		c.Set("role", "worker")

		h.GetAll(c)

		assert.Equal(t, http.StatusOK, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.True(t, env.Ok)
		var got []leave.DisplayRow
		assert.NoError(t, json.Unmarshal(env.Data, &got))
		assert.Len(t, got, 1)
		assert.Equal(t, "4", got[0].ID)
		if assert.NotNil(t, env.Meta) {
			assert.Equal(t, int64(3), env.Meta.Total)
			assert.Equal(t, 2, env.Meta.TotalPages)
		}
	})

	t.Run("unknown type", func(t *testing.T) {
		h, _ := setupHandler(t)
		c, w := newHandlerContext(http.MethodGet, "/leaves/maternity", "", gin.Params{{Key: "type", Value: "maternity"}})

		h.GetAll(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.Equal(t, "INVALID_INPUT", env.Error.Code)
	})

	t.Run("upstream failure", func(t *testing.T) {
		h, svc := setupHandler(t)
		svc.EXPECT().List(gomock.Any(), gomock.Any(), leave.TypeAnnual).
			Return(nil, leaveerrors.ErrFetchFailed.WithErr(errors.New("dial tcp")))

		c, w := newHandlerContext(http.MethodGet, "/leaves/annual", "", gin.Params{{Key: "type", Value: "annual"}})
		h.GetAll(c)

		assert.Equal(t, http.StatusBadGateway, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.Equal(t, "UPSTREAM_ERROR", env.Error.Code)
		assert.Equal(t, "Failed to load leave requests. Please try again", env.Error.Message)
		assert.NotContains(t, w.Body.String(), "dial tcp")
	})
}

func TestLeaveHandler_GetByID(t *testing.T) {
	h, svc := setupHandler(t)
	svc.EXPECT().Detail(gomock.Any(), gomock.Any(), leave.TypeAnnual, "missing").Return(leave.DetailViewModel{}, leaveerrors.ErrLeaveNotFound)

	c, w := newHandlerContext(http.MethodGet, "/leaves/annual/missing", "", gin.Params{{Key: "type", Value: "annual"}, {Key: "id", Value: "missing"}})
	h.GetByID(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestLeaveHandler_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		h, svc := setupHandler(t)
		svc.EXPECT().SubmitCreate(gomock.Any(), leave.Actor{EmployeeID: "1", Role: visibility.RoleAdmin}, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ leave.Actor, p leave.CreatePayload) (leave.MutationOutcome, error) {
				assert.Equal(t, leave.TypeAbsence, p.LeaveType)
				assert.Equal(t, 2, p.Duration)
				assert.Equal(t, leave.DurationUnit("WEEKS"), p.DurationUnit)
				return leave.MutationOutcome{Applied: true, Record: &leave.DisplayRow{ID: "n"}}, nil
			})

		body := `{"start_date":"2025-04-01","duration":2,"duration_unit":"WEEKS","reason":"Retreat","location":"Jos"}`
		c, w := newHandlerContext(http.MethodPost, "/leaves/absence", body, gin.Params{{Key: "type", Value: "absence"}})
		c.Set("employee_id", "1")
		c.Set("role", "admin")

		h.Create(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		var got leave.MutationOutcome
		assert.NoError(t, json.Unmarshal(env.Data, &got))
		assert.True(t, got.Applied)
		assert.Equal(t, "n", got.Record.ID)
	})

	t.Run("binding failure", func(t *testing.T) {
		h, _ := setupHandler(t)
		c, w := newHandlerContext(http.MethodPost, "/leaves/annual", `{}`, gin.Params{{Key: "type", Value: "annual"}})

		h.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.False(t, env.Ok)
		assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
	})

	t.Run("service validation", func(t *testing.T) {
		h, svc := setupHandler(t)
		svc.EXPECT().SubmitCreate(gomock.Any(), gomock.Any(), gomock.Any()).Return(leave.MutationOutcome{}, leaveerrors.ErrEndDateRequired)

		c, w := newHandlerContext(http.MethodPost, "/leaves/annual", `{"start_date":"2025-04-01","reason":"x"}`, gin.Params{{Key: "type", Value: "annual"}})
		h.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.Equal(t, "End Date is required", env.Error.Message)
	})
}

func TestLeaveHandler_Approve(t *testing.T) {
	t.Run("passes substitute and confirmation", func(t *testing.T) {
		h, svc := setupHandler(t)
		svc.EXPECT().SubmitApproval(gomock.Any(), gomock.Any(), leave.TypeAnnual, "7", &leave.Substitute{EmployeeID: "9", Name: "Sam"}, gomock.Any()).
			DoAndReturn(func(ctx context.Context, _ leave.Actor, _ leave.LeaveType, _ string, _ *leave.Substitute, confirm leave.Confirmer) (leave.MutationOutcome, error) {
				ok, err := confirm.Confirm(ctx, "?")
				assert.NoError(t, err)
				assert.True(t, ok)
				return leave.MutationOutcome{Applied: true}, nil
			})

		body := `{"substitute":{"employee_id":"9","name":"Sam"},"confirm":true}`
		c, w := newHandlerContext(http.MethodPost, "/leaves/annual/7/approve", body, gin.Params{{Key: "type", Value: "annual"}, {Key: "id", Value: "7"}})
		h.Approve(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("substitute without id rejected by binding", func(t *testing.T) {
		h, _ := setupHandler(t)
		body := `{"substitute":{"name":"Sam"},"confirm":true}`
		c, w := newHandlerContext(http.MethodPost, "/leaves/annual/7/approve", body, gin.Params{{Key: "type", Value: "annual"}, {Key: "id", Value: "7"}})
		h.Approve(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("missing substitute", func(t *testing.T) {
		h, svc := setupHandler(t)
		svc.EXPECT().SubmitApproval(gomock.Any(), gomock.Any(), leave.TypeAnnual, "7", gomock.Nil(), gomock.Any()).
			Return(leave.MutationOutcome{}, leaveerrors.ErrSubstituteRequired)

		c, w := newHandlerContext(http.MethodPost, "/leaves/annual/7/approve", `{"confirm":true}`, gin.Params{{Key: "type", Value: "annual"}, {Key: "id", Value: "7"}})
		h.Approve(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
	})

	t.Run("applied with failed reload is still ok", func(t *testing.T) {
		h, svc := setupHandler(t)
		svc.EXPECT().SubmitApproval(gomock.Any(), gomock.Any(), leave.TypeSick, "7", gomock.Nil(), gomock.Any()).
			Return(leave.MutationOutcome{Applied: true}, leaveerrors.ErrFetchFailed)

		c, w := newHandlerContext(http.MethodPost, "/leaves/sick/7/approve", `{"confirm":true}`, gin.Params{{Key: "type", Value: "sick"}, {Key: "id", Value: "7"}})
		h.Approve(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestLeaveHandler_Reject(t *testing.T) {
	h, svc := setupHandler(t)
	svc.EXPECT().SubmitRejection(gomock.Any(), gomock.Any(), leave.TypeSick, "3", gomock.Any()).
		Return(leave.MutationOutcome{}, leaveerrors.ErrRejectFailed.WithErr(errors.New("503")))

	c, w := newHandlerContext(http.MethodPost, "/leaves/sick/3/reject", `{"confirm":true}`, gin.Params{{Key: "type", Value: "sick"}, {Key: "id", Value: "3"}})
	h.Reject(c)

	assert.Equal(t, http.StatusBadGateway, w.Code)
	env := decodeEnvelope(t, w.Body.Bytes())
	assert.Equal(t, "Failed to reject leave request. Please try again", env.Error.Message)
}

func TestLeaveHandler_Export(t *testing.T) {
	h, svc := setupHandler(t)
	svc.EXPECT().List(gomock.Any(), gomock.Any(), leave.TypeAnnual).Return([]leave.DisplayRow{{ID: "1", EmployeeName: "Ada"}}, nil)

	c, w := newHandlerContext(http.MethodGet, "/leaves/annual/export", "", gin.Params{{Key: "type", Value: "annual"}})
	h.Export(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "annual-leave-")
	assert.NotZero(t, w.Body.Len())
}

func TestLeaveHandler_SearchEmployees(t *testing.T) {
	h, svc := setupHandler(t)
	svc.EXPECT().SearchSubstitutes(gomock.Any(), "ada").Return([]leave.Employee{{ID: "9", FirstName: "Ada"}}, nil)

	c, w := newHandlerContext(http.MethodGet, "/employees/search?name=ada", "", nil)
	h.SearchEmployees(c)

	assert.Equal(t, http.StatusOK, w.Code)
	env := decodeEnvelope(t, w.Body.Bytes())
	var got []leave.Employee
	assert.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, "9", got[0].ID)
}

func TestLeaveHandler_Attachments(t *testing.T) {
	t.Run("upload", func(t *testing.T) {
		h, svc := setupHandler(t)
		svc.EXPECT().UploadAttachment(gomock.Any(), "note.pdf", gomock.Any()).Return(leave.Attachment{URL: "https://f/note.pdf"}, nil)

		var body bytes.Buffer
		mw := multipart.NewWriter(&body)
		part, _ := mw.CreateFormFile("file", "note.pdf")
		_, _ = part.Write([]byte("%PDF"))
		_ = mw.Close()

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/attachments", &body)
		c.Request.Header.Set("Content-Type", mw.FormDataContentType())

		h.UploadAttachment(c)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("upload without file", func(t *testing.T) {
		h, _ := setupHandler(t)
		c, w := newHandlerContext(http.MethodPost, "/attachments", "", nil)
		h.UploadAttachment(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("delete", func(t *testing.T) {
		h, svc := setupHandler(t)
		svc.EXPECT().DeleteAttachment(gomock.Any(), "https://f/note.pdf").Return(nil)

		c, w := newHandlerContext(http.MethodDelete, "/attachments?url=https://f/note.pdf", "", nil)
		h.DeleteAttachment(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}
