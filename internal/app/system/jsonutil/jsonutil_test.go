package jsonutil

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestJSON(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		data       any
		wantStatus int
		wantBody   string
	}{
		{
			name:       "200 OK with data",
			status:     http.StatusOK,
			data:       map[string]string{"message": "hello"},
			wantStatus: http.StatusOK,
			wantBody:   `{"message":"hello"}`,
		},
		{
			name:       "201 Created with data",
			status:     http.StatusCreated,
			data:       map[string]int{"id": 123},
			wantStatus: http.StatusCreated,
			wantBody:   `{"id":123}`,
		},
		{
			name:       "nil data",
			status:     http.StatusOK,
			data:       nil,
			wantStatus: http.StatusOK,
			wantBody:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			JSON(rec, tt.status, tt.data)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
				t.Errorf("Content-Type = %q, want application/json", ct)
			}
			body := strings.TrimSpace(rec.Body.String())
			if body != tt.wantBody {
				t.Errorf("body = %q, want %q", body, tt.wantBody)
			}
		})
	}
}

func TestWrapped(t *testing.T) {
	rec := httptest.NewRecorder()
	Wrapped(rec, http.StatusOK, map[string]string{"pageType": "home"})

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}

	var got struct {
		Success bool              `json:"success"`
		Data    map[string]string `json:"data"`
		Message string            `json:"message"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("json unmarshal error: %v", err)
	}
	if !got.Success {
		t.Error("success should be true")
	}
	if got.Data["pageType"] != "home" {
		t.Errorf("data.pageType = %q, want 'home'", got.Data["pageType"])
	}
	if got.Message != "" {
		t.Errorf("message = %q, want empty", got.Message)
	}
}

func TestWrapped_OmitsEmptyFields(t *testing.T) {
	rec := httptest.NewRecorder()
	Wrapped(rec, http.StatusOK, nil)

	body := strings.TrimSpace(rec.Body.String())
	if body != `{"success":true}` {
		t.Errorf("body = %q, want '{\"success\":true}'", body)
	}
}

func TestWrappedMessage(t *testing.T) {
	rec := httptest.NewRecorder()
	WrappedMessage(rec, http.StatusCreated, map[string]string{"reference": "abc"}, "Thank you!")

	if rec.Code != http.StatusCreated {
		t.Errorf("status = %d, want 201", rec.Code)
	}

	var got Envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("json unmarshal error: %v", err)
	}
	if !got.Success {
		t.Error("success should be true")
	}
	if got.Message != "Thank you!" {
		t.Errorf("message = %q, want 'Thank you!'", got.Message)
	}
}

func TestError(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		message    string
		wantStatus int
	}{
		{"bad request", http.StatusBadRequest, "invalid input", 400},
		{"not found", http.StatusNotFound, "resource not found", 404},
		{"conflict", http.StatusConflict, "already exists", 409},
		{"internal error", http.StatusInternalServerError, "something went wrong", 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			Error(rec, tt.status, tt.message)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}

			var got map[string]string
			if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
				t.Fatalf("json unmarshal error: %v", err)
			}
			if got["error"] != tt.message {
				t.Errorf("error = %q, want %q", got["error"], tt.message)
			}
		})
	}
}

func TestErrorHelpers(t *testing.T) {
	tests := []struct {
		name       string
		fn         func(http.ResponseWriter, string)
		wantStatus int
	}{
		{"BadRequest", BadRequest, http.StatusBadRequest},
		{"Unauthorized", Unauthorized, http.StatusUnauthorized},
		{"Forbidden", Forbidden, http.StatusForbidden},
		{"NotFound", NotFound, http.StatusNotFound},
		{"Conflict", Conflict, http.StatusConflict},
		{"InternalError", InternalError, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			tt.fn(rec, "boom")

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}

			var got map[string]string
			json.Unmarshal(rec.Body.Bytes(), &got)
			if got["error"] != "boom" {
				t.Errorf("error = %q, want 'boom'", got["error"])
			}
		})
	}
}

func TestNoContent(t *testing.T) {
	rec := httptest.NewRecorder()
	NoContent(rec)

	if rec.Code != http.StatusNoContent {
		t.Errorf("status = %d, want 204", rec.Code)
	}
	if rec.Body.Len() != 0 {
		t.Errorf("body should be empty, got %q", rec.Body.String())
	}
}

func TestValidationError(t *testing.T) {
	rec := httptest.NewRecorder()
	ValidationError(rec, map[string]string{
		"formType": "must be a known form",
		"formData": "required",
	})

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}

	var got struct {
		Error  string            `json:"error"`
		Fields map[string]string `json:"fields"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("json unmarshal error: %v", err)
	}

	if got.Error != "validation failed" {
		t.Errorf("error = %q, want 'validation failed'", got.Error)
	}
	if got.Fields["formData"] != "required" {
		t.Errorf("fields.formData = %q, want 'required'", got.Fields["formData"])
	}
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{
			name:    "valid JSON",
			body:    `{"name":"test","value":123}`,
			wantErr: false,
		},
		{
			name:    "invalid JSON",
			body:    `{invalid}`,
			wantErr: true,
		},
		{
			name:    "empty body",
			body:    "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))

			var got map[string]any
			err := Decode(req, &got)

			if (err != nil) != tt.wantErr {
				t.Errorf("Decode() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestDecode_StructBinding(t *testing.T) {
	type Input struct {
		Name  string `json:"name"`
		Email string `json:"email"`
		Order int    `json:"order"`
	}

	body := `{"name":"Preventive Care","email":"front@pearlpointdental.com","order":1}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))

	var input Input
	if err := Decode(req, &input); err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	if input.Name != "Preventive Care" {
		t.Errorf("Name = %q, want 'Preventive Care'", input.Name)
	}
	if input.Order != 1 {
		t.Errorf("Order = %d, want 1", input.Order)
	}
}

func TestDecode_BodyConsumed(t *testing.T) {
	body := `{"key":"value"}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))

	var first map[string]string
	if err := Decode(req, &first); err != nil {
		t.Fatalf("First Decode() error = %v", err)
	}

	// Body should be consumed, second decode should fail
	var second map[string]string
	err := Decode(req, &second)
	if err != io.EOF {
		t.Errorf("Second Decode() should fail with EOF, got %v", err)
	}
}
