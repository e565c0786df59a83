package utils

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func newTestContext(headers map[string]string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("POST", "/api/v1/contact/submit", nil)
	for k, v := range headers {
		c.Request.Header.Set(k, v)
	}
	return c
}

func TestClientIdentifier(t *testing.T) {
	longUA := strings.Repeat("x", 80)

	tests := []struct {
		name    string
		headers map[string]string
		want    string
	}{
		{
			"forwarded-for single",
			map[string]string{"X-Forwarded-For": "1.2.3.4"},
			"1.2.3.4",
		},
		{
			"forwarded-for list takes first",
			map[string]string{"X-Forwarded-For": "1.2.3.4, 10.0.0.1, 10.0.0.2"},
			"1.2.3.4",
		},
		{
			"forwarded-for beats real-ip",
			map[string]string{"X-Forwarded-For": "1.2.3.4", "X-Real-IP": "5.6.7.8"},
			"1.2.3.4",
		},
		{
			"real-ip fallback",
			map[string]string{"X-Real-IP": "5.6.7.8"},
			"5.6.7.8",
		},
		{
			"user-agent fallback",
			map[string]string{"User-Agent": "curl/8.0"},
			"curl/8.0",
		},
		{
			"user-agent truncated to 50",
			map[string]string{"User-Agent": longUA},
			longUA[:50],
		},
		{
			"nothing at all",
			map[string]string{},
			"",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestContext(tt.headers)
			if got := ClientIdentifier(c); got != tt.want {
				t.Errorf("ClientIdentifier() = %q, want %q", got, tt.want)
			}
		})
	}
}
