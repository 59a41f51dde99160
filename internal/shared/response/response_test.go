package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestPage(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	tests := []struct {
		name      string
		page      int
		pageSize  int
		want      []int
		wantPages int
	}{
		{name: "first page", page: 1, pageSize: 2, want: []int{1, 2}, wantPages: 3},
		{name: "last partial page", page: 3, pageSize: 2, want: []int{5}, wantPages: 3},
		{name: "past the end", page: 9, pageSize: 2, want: []int{}, wantPages: 3},
		{name: "defaults", page: 0, pageSize: 0, want: items, wantPages: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, meta := Page(items, tt.page, tt.pageSize)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, int64(5), meta.Total)
			assert.Equal(t, tt.wantPages, meta.TotalPages)
		})
	}
}

func TestError_Envelope(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	Error(c, http.StatusNotFound, "NOT_FOUND", "leave not found", nil)

	var body map[string]any
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, false, body["ok"])
	assert.Equal(t, "NOT_FOUND", body["error"].(map[string]any)["code"])
	assert.NotContains(t, body, "data")
}
