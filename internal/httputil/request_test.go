package httputil

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestParseJSON(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantErr  bool
		trailing bool
		wantName string
	}{
		{name: "object", body: `{"name": "Sprint 1"}`, wantName: "Sprint 1"},
		{name: "trailing whitespace", body: "{\"name\": \"Sprint 1\"}\n\t ", wantName: "Sprint 1"},
		{name: "unknown fields ignored", body: `{"name": "x", "owner": {"id": "u1"}}`, wantName: "x"},
		{name: "trailing garbage", body: `{"name": "x"} garbage`, wantErr: true, trailing: true},
		{name: "second object", body: `{"name": "x"}{"name": "y"}`, wantErr: true, trailing: true},
		{name: "malformed", body: `{"name": `, wantErr: true},
		{name: "empty", body: ``, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var dest struct {
				Name string `json:"name"`
			}
			req := httptest.NewRequest(http.MethodPost, "/api/boards", strings.NewReader(tt.body))

			err := ParseJSON(httptest.NewRecorder(), req, &dest)

			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				if tt.trailing && !errors.Is(err, ErrTrailingData) {
					t.Errorf("err = %v, want ErrTrailingData", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseJSON: %v", err)
			}
			if dest.Name != tt.wantName {
				t.Errorf("name = %q, want %q", dest.Name, tt.wantName)
			}
		})
	}
}

func TestParseJSON_TooLarge(t *testing.T) {
	body := `{"name": "` + strings.Repeat("x", maxBodyBytes) + `"}`
	req := httptest.NewRequest(http.MethodPost, "/api/boards", strings.NewReader(body))

	var dest struct {
		Name string `json:"name"`
	}
	if err := ParseJSON(httptest.NewRecorder(), req, &dest); err == nil {
		t.Fatal("expected error for oversized body")
	}
}
