package middleware

import (
	"CampaignLens/internal/pkg/consts"
	"CampaignLens/internal/pkg/security"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
)

type mapBlacklist struct {
	keys map[string]string
	err  error
}

func (b *mapBlacklist) GetValue(_ context.Context, key string) (string, error) {
	return b.keys[key], b.err
}

func authRouter(tokens *security.TokenManager, blacklist TokenBlacklist) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/me", AuthMiddleware(tokens, blacklist), func(c *gin.Context) {
		uid, _ := c.Request.Context().Value(consts.ContextUserID).(uint64)
		c.JSON(http.StatusOK, gin.H{"Code": 200, "Data": gin.H{"gin": c.GetUint64(consts.ContextUserID), "ctx": uid}})
	})
	return r
}

func callMe(t *testing.T, r *gin.Engine, header string) (int, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	var body struct {
		Code int            `json:"Code"`
		Data map[string]any `json:"Data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode %q: %v", w.Body.String(), err)
	}
	return body.Code, body.Data
}

func TestAuthMiddleware(t *testing.T) {
	tokens := security.NewTokenManager("secret", "campaignlens", time.Hour)
	token, _, err := tokens.GenerateToken(42)
	if err != nil {
		t.Fatalf("token: %v", err)
	}
	blacklist := &mapBlacklist{keys: map[string]string{}}
	r := authRouter(tokens, blacklist)

	code, data := callMe(t, r, "Bearer "+token)
	if code != 200 || data["gin"] != float64(42) || data["ctx"] != float64(42) {
		t.Fatalf("valid token rejected: code=%d data=%v", code, data)
	}

	other := security.NewTokenManager("other", "campaignlens", time.Hour)
	forged, _, _ := other.GenerateToken(42)
	for name, header := range map[string]string{
		"missing":    "",
		"not bearer": "Token " + token,
		"garbage":    "Bearer abc",
		"forged":     "Bearer " + forged,
	} {
		if code, _ = callMe(t, r, header); code != 401 {
			t.Errorf("%s: code = %d, want 401", name, code)
		}
	}

	sig, _ := security.ExtractSignature(token)
	blacklist.keys[consts.TokenBlacklistKey+sig] = "true"
	if code, _ = callMe(t, r, "Bearer "+token); code != 401 {
		t.Errorf("blacklisted token: code = %d, want 401", code)
	}

	blacklist.err = errors.New("redis down")
	if code, _ = callMe(t, r, "Bearer "+token); code != 500 {
		t.Errorf("blacklist failure: code = %d, want 500", code)
	}
}

func TestBearerToken(t *testing.T) {
	tests := []struct {
		header string
		want   string
		ok     bool
	}{
		{"Bearer abc.def.ghi", "abc.def.ghi", true},
		{"bearer abc.def.ghi", "abc.def.ghi", true},
		{"Bearer ", "", false},
		{"Bearer", "", false},
		{"Basic dXNlcg==", "", false},
	}
	for _, tt := range tests {
		got, ok := bearerToken(tt.header)
		if got != tt.want || ok != tt.ok {
			t.Errorf("bearerToken(%q) = (%q, %v), want (%q, %v)", tt.header, got, ok, tt.want, tt.ok)
		}
	}
}
