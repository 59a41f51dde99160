package hrapi_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"hris-console/internal/hrapi"
	"hris-console/internal/leave"
	"hris-console/internal/shared/contextutil"

	"github.com/stretchr/testify/assert"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *hrapi.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return hrapi.NewClient(srv.URL+"/", "service-token", 5*time.Second)
}

func TestClient_FetchLeaves(t *testing.T) {
	t.Run("decodes enveloped records with numeric ids", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/absence-leave", r.URL.Path)
			assert.Equal(t, "Bearer service-token", r.Header.Get("Authorization"))
			_, _ = io.WriteString(w, `{"data":[{
				"id": 12,
				"employee": {"id": 42, "first_name": "Ada", "last_name": "Obi", "photo": "/uploads/a.png"},
				"status": "APPROVED",
				"start_date": "2025-04-01",
				"duration": "2",
				"duration_unit": "weeks",
				"reason": "Retreat",
				"location": "Jos",
				"attachments": ["https://files/a.pdf"],
				"created_at": "2025-03-30T10:00:00Z"
			}]}`)
		})

		got, err := client.FetchLeaves(context.Background(), leave.TypeAbsence)
		assert.NoError(t, err)
		if !assert.Len(t, got, 1) {
			return
		}
		r := got[0]
		assert.Equal(t, "12", r.ID)
		assert.Equal(t, "42", r.OwnerID())
		assert.Equal(t, "/uploads/a.png", r.Employee.PhotoURL)
		assert.Equal(t, leave.TypeAbsence, r.LeaveType)
		assert.Equal(t, leave.StatusApproved, r.Status)
		assert.Equal(t, 2, *r.Duration)
		assert.Equal(t, leave.UnitWeeks, r.DurationUnit)
		assert.Equal(t, []string{"https://files/a.pdf"}, r.AttachmentURLs)
		assert.Equal(t, 2025, r.CreatedAt.Year())
	})

	t.Run("bare array and caller token", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/annual-leave", r.URL.Path)
			assert.Equal(t, "Bearer caller", r.Header.Get("Authorization"))
			assert.Equal(t, "rid-9", r.Header.Get("X-Request-ID"))
			_, _ = io.WriteString(w, `[{"id":"a","employee_id":"7","status":"PENDING","start_date":"2025-01-01","end_date":"2025-01-02","duration":null}]`)
		})

		ctx := contextutil.WithAccessToken(context.Background(), "caller")
		ctx = contextutil.WithRequestID(ctx, "rid-9")
		got, err := client.FetchLeaves(ctx, leave.TypeAnnual)
		assert.NoError(t, err)
		assert.Equal(t, "7", got[0].OwnerID())
		assert.Nil(t, got[0].Duration)
	})

	t.Run("status casing is normalized", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = io.WriteString(w, `[{"id":"a","employee_id":"7","status":"approved","start_date":"2025-01-01","end_date":"2025-01-02"},{"id":"b","employee_id":"7","status":" Rejected ","start_date":"2025-01-01","end_date":"2025-01-02"}]`)
		})

		got, err := client.FetchLeaves(context.Background(), leave.TypeSick)
		assert.NoError(t, err)
		if !assert.Len(t, got, 2) {
			return
		}
		assert.Equal(t, leave.StatusApproved, got[0].Status)
		assert.Equal(t, leave.StatusRejected, got[1].Status)
	})

	t.Run("non 2xx becomes StatusError", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = io.WriteString(w, `{"message":"maintenance"}`)
		})

		_, err := client.FetchLeaves(context.Background(), leave.TypeSick)
		var statusErr *hrapi.StatusError
		assert.True(t, errors.As(err, &statusErr))
		assert.Equal(t, http.StatusServiceUnavailable, statusErr.StatusCode)
		assert.Equal(t, "maintenance", statusErr.Message)
	})

	t.Run("unknown type", func(t *testing.T) {
		client := hrapi.NewClient("http://127.0.0.1:0", "", time.Second)
		_, err := client.FetchLeaves(context.Background(), leave.LeaveType("MATERNITY"))
		assert.Error(t, err)
	})
}

func TestClient_CreateLeave(t *testing.T) {
	t.Run("annual body", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/annual-leave", r.URL.Path)
			var body map[string]any
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "2025-04-03", body["end_date"])
			assert.NotContains(t, body, "duration")
			w.WriteHeader(http.StatusCreated)
			_, _ = io.WriteString(w, `{"data":{"id":99,"employee_id":1,"status":"PENDING","start_date":"2025-04-01","end_date":"2025-04-03"}}`)
		})

		got, err := client.CreateLeave(context.Background(), leave.TypeAnnual, leave.CreatePayload{
			EmployeeID: "1", StartDate: "2025-04-01", EndDate: "2025-04-03", Reason: "Rest",
		})
		assert.NoError(t, err)
		assert.Equal(t, "99", got.ID)
	})

	t.Run("sick body", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			var body map[string]any
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, float64(3), body["duration"])
			assert.Equal(t, "DAYS", body["duration_unit"])
			assert.Equal(t, "Home", body["location"])
			assert.NotContains(t, body, "end_date")
			_, _ = io.WriteString(w, `{"id":5}`)
		})

		got, err := client.CreateLeave(context.Background(), leave.TypeSick, leave.CreatePayload{
			EmployeeID: "1", StartDate: "2025-04-01", Duration: 3, DurationUnit: leave.UnitDays, Reason: "Flu", Location: "Home",
		})
		assert.NoError(t, err)
		assert.Equal(t, "5", got.ID)
	})
}

func TestClient_Decisions(t *testing.T) {
	t.Run("approve sends substitute", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPatch, r.Method)
			assert.Equal(t, "/annual-leave/12/approve", r.URL.Path)
			raw, _ := io.ReadAll(r.Body)
			assert.JSONEq(t, `{"substitute_id":"9"}`, string(raw))
			_, _ = io.WriteString(w, `{"data":{"id":12,"status":"APPROVED"}}`)
		})

		got, err := client.ApproveLeave(context.Background(), leave.TypeAnnual, "12", &leave.Substitute{EmployeeID: "9"})
		assert.NoError(t, err)
		assert.Equal(t, leave.StatusApproved, got.Status)
	})

	t.Run("reject", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/sick-leave/3/reject", r.URL.Path)
			_, _ = io.WriteString(w, `{"id":3,"status":"REJECTED"}`)
		})

		got, err := client.RejectLeave(context.Background(), leave.TypeSick, "3")
		assert.NoError(t, err)
		assert.Equal(t, leave.StatusRejected, got.Status)
	})

	t.Run("conflict surfaces as StatusError", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusConflict)
			_, _ = io.WriteString(w, `{"error":{"message":"already decided"}}`)
		})

		_, err := client.RejectLeave(context.Background(), leave.TypeSick, "3")
		var statusErr *hrapi.StatusError
		assert.True(t, errors.As(err, &statusErr))
		assert.Equal(t, "already decided", statusErr.Message)
	})
}

func TestClient_SearchEmployeesByName(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/employees/search", r.URL.Path)
		assert.Equal(t, "ada obi", r.URL.Query().Get("name"))
		_, _ = io.WriteString(w, `[{"id":9,"first_name":"Ada","last_name":"Obi","photo_url":"https://x/9.png"}]`)
	})

	got, err := client.SearchEmployeesByName(context.Background(), "ada obi")
	assert.NoError(t, err)
	assert.Equal(t, []leave.Employee{{ID: "9", FirstName: "Ada", LastName: "Obi", PhotoURL: "https://x/9.png"}}, got)
}

func TestClient_Attachments(t *testing.T) {
	t.Run("upload multipart", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/uploads", r.URL.Path)
			file, header, err := r.FormFile("file")
			if assert.NoError(t, err) {
				defer file.Close()
				raw, _ := io.ReadAll(file)
				assert.Equal(t, "note.pdf", header.Filename)
				assert.Equal(t, "%PDF", string(raw))
			}
			_, _ = io.WriteString(w, `{"data":{"url":"https://files/note.pdf"}}`)
		})

		att, err := client.UploadAttachment(context.Background(), "note.pdf", strings.NewReader("%PDF"))
		assert.NoError(t, err)
		assert.Equal(t, "https://files/note.pdf", att.URL)
	})

	t.Run("delete", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodDelete, r.Method)
			assert.Equal(t, "https://files/note.pdf", r.URL.Query().Get("url"))
			w.WriteHeader(http.StatusNoContent)
		})

		assert.NoError(t, client.DeleteAttachment(context.Background(), "https://files/note.pdf"))
	})
}
