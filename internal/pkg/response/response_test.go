package response

import (
	"CampaignLens/internal/pkg/util"
	"CampaignLens/internal/service"
	stdjson "encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
)

func TestClassify(t *testing.T) {
	var stdErr error
	if err := stdjson.Unmarshal([]byte(`{"page":"x"}`), &struct{ Page int }{}); err != nil {
		stdErr = err
	}
	var goErr error
	if err := json.Unmarshal([]byte(`{`), &struct{}{}); err != nil {
		goErr = err
	}

	tests := []struct {
		name  string
		err   error
		code  int
		msg   string
		known bool
	}{
		{"wrapped sentinel", fmt.Errorf("load: %w", service.ErrCampaignNotFound), NotFound, service.ErrCampaignNotFound.Error(), true},
		{"dto validation", &util.ValidationError{Field: "Name", Rule: "required"}, BadRequest, "字段 [Name] 校验失败，规则 [required]", true},
		{"std json", stdErr, BadRequest, msgJSONError, true},
		{"go-json", goErr, BadRequest, msgJSONError, true},
		{"export unavailable", service.ErrExportUnavailable, InternalServerError, service.ErrExportUnavailable.Error(), true},
		{"unknown", errors.New("disk full"), InternalServerError, service.UnExpectedError.Error(), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, msg, known := Classify(tt.err)
			if code != tt.code || msg != tt.msg || known != tt.known {
				t.Fatalf("Classify = (%d, %q, %v), want (%d, %q, %v)", code, msg, known, tt.code, tt.msg, tt.known)
			}
		})
	}
}

func TestAbortStopsChain(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	reached := false
	r.GET("/", func(c *gin.Context) { Abort(c, Unauthorized, "no") }, func(c *gin.Context) { reached = true })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	if reached {
		t.Fatal("handler after Abort should not run")
	}
	var body struct {
		Code    int
		Message string
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if w.Code != http.StatusOK || body.Code != Unauthorized || body.Message != "no" {
		t.Fatalf("unexpected response %d %+v", w.Code, body)
	}
}
