package httpresp

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestPageMeta(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name           string
		total          int64
		page, perPage  int
		wantTotalPages int
	}{
		{"exact division", 20, 1, 10, 2},
		{"remainder rounds up", 21, 1, 10, 3},
		{"single partial page", 3, 1, 10, 1},
		{"empty", 0, 1, 10, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			Page(c, []string{"a"}, tc.total, tc.page, tc.perPage)

			if w.Code != http.StatusOK {
				t.Fatalf("status = %d", w.Code)
			}

			var resp PageResponse[string]
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}

			if resp.Meta.Total != tc.total {
				t.Errorf("total = %d, want %d", resp.Meta.Total, tc.total)
			}
			if resp.Meta.Page != tc.page || resp.Meta.PerPage != tc.perPage {
				t.Errorf("page/per_page = %d/%d", resp.Meta.Page, resp.Meta.PerPage)
			}
			if resp.Meta.TotalPages != tc.wantTotalPages {
				t.Errorf("total_pages = %d, want %d", resp.Meta.TotalPages, tc.wantTotalPages)
			}
		})
	}
}

func TestPageFloorsPerPage(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	Page(c, []string{"a"}, 5, 1, 0)

	var resp PageResponse[string]
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if resp.Meta.PerPage != 1 {
		t.Errorf("per_page = %d, want 1", resp.Meta.PerPage)
	}
	if resp.Meta.TotalPages != 5 {
		t.Errorf("total_pages = %d, want 5", resp.Meta.TotalPages)
	}
}

func TestPageKeepsDataArray(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	Page(c, []int{}, 0, 1, 10)

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(w.Body.Bytes(), &raw); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if string(raw["data"]) != "[]" {
		t.Errorf("data = %s, want []", raw["data"])
	}
}
