package validator_test

import (
	"net/http"
	"strings"
	"testing"

	"bistro/shared/failure"
	"bistro/shared/validator"
)

type ValidTestStruct struct {
	Name     string `validate:"required" json:"name"`
	Email    string `validate:"required,email" json:"email"`
	Age      int    `validate:"gte=0,lte=120" json:"age"`
	Category string `validate:"oneof=user admin guest" json:"category"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name        string
		data        *ValidTestStruct
		expectError bool
	}{
		{
			name: "valid struct",
			data: &ValidTestStruct{
				Name:     "John Doe",
				Email:    "john@example.com",
				Age:      25,
				Category: "user",
			},
			expectError: false,
		},
		{
			name: "missing required field",
			data: &ValidTestStruct{
				Email:    "john@example.com",
				Age:      25,
				Category: "user",
			},
			expectError: true,
		},
		{
			name: "invalid email",
			data: &ValidTestStruct{
				Name:     "John Doe",
				Email:    "invalid-email",
				Age:      25,
				Category: "user",
			},
			expectError: true,
		},
		{
			name: "age out of range",
			data: &ValidTestStruct{
				Name:     "John Doe",
				Email:    "john@example.com",
				Age:      150,
				Category: "user",
			},
			expectError: true,
		},
		{
			name: "invalid category",
			data: &ValidTestStruct{
				Name:     "John Doe",
				Email:    "john@example.com",
				Age:      25,
				Category: "invalid",
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(tt.data)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}

			if tt.expectError && err != nil {
				if code := failure.GetCode(err); code != http.StatusUnprocessableEntity {
					t.Errorf("expected status %d for rule violation, got %d", http.StatusUnprocessableEntity, code)
				}
			}
		})
	}
}

func TestValidateVar(t *testing.T) {
	tests := []struct {
		name        string
		field       interface{}
		tag         string
		expectError bool
	}{
		{
			name:        "valid required string",
			field:       "test",
			tag:         "required",
			expectError: false,
		},
		{
			name:        "empty required string",
			field:       "",
			tag:         "required",
			expectError: true,
		},
		{
			name:        "valid email",
			field:       "test@example.com",
			tag:         "email",
			expectError: false,
		},
		{
			name:        "invalid email",
			field:       "invalid-email",
			tag:         "email",
			expectError: true,
		},
		{
			name:        "valid number in range",
			field:       25,
			tag:         "gte=0,lte=100",
			expectError: false,
		},
		{
			name:        "number out of range",
			field:       150,
			tag:         "gte=0,lte=100",
			expectError: true,
		},
		{
			name:        "valid oneof",
			field:       "admin",
			tag:         "oneof=user admin guest",
			expectError: false,
		},
		{
			name:        "invalid oneof",
			field:       "invalid",
			tag:         "oneof=user admin guest",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateVar(tt.field, tt.tag)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name         string
		jsonBody     string
		expectError  bool
		expectedCode int
	}{
		{
			name:        "valid JSON",
			jsonBody:    `{"name":"John Doe","email":"john@example.com","age":25,"category":"user"}`,
			expectError: false,
		},
		{
			name:         "rule violation",
			jsonBody:     `{"name":"John Doe","email":"invalid-email","age":25,"category":"user"}`,
			expectError:  true,
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name:         "malformed JSON",
			jsonBody:     `{"name":"John Doe","email":}`,
			expectError:  true,
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "empty JSON",
			jsonBody:     `{}`,
			expectError:  true,
			expectedCode: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reader := strings.NewReader(tt.jsonBody)
			var data ValidTestStruct
			err := validator.Validate(reader, &data)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}

			if tt.expectError && err != nil {
				if code := failure.GetCode(err); code != tt.expectedCode {
					t.Errorf("expected status %d, got %d", tt.expectedCode, code)
				}
			}
		})
	}
}

func TestValidationMessages(t *testing.T) {
	data := &ValidTestStruct{}
	err := validator.ValidateStruct(data)

	if err == nil {
		t.Fatal("expected validation error for empty struct")
	}

	if !strings.Contains(err.Error(), "required") {
		t.Errorf("expected descriptive error message containing 'required', got: %s", err.Error())
	}
}

func TestFileValidators(t *testing.T) {
	pngData := "data:image/png;base64,iVBORw0KGgoAAAANSUhEUgAAAAE="
	plainData := "data:text/plain;base64,aGVsbG8gd29ybGQ="

	tests := []struct {
		name        string
		field       string
		tag         string
		expectError bool
	}{
		{
			name:        "png allowed by mimetypes",
			field:       pngData,
			tag:         "mimetypes=image/png image/jpeg",
			expectError: false,
		},
		{
			name:        "plain text rejected by mimetypes",
			field:       plainData,
			tag:         "mimetypes=image/png image/jpeg",
			expectError: true,
		},
		{
			name:        "gif allowed by upload policy",
			field:       "data:image/gif;base64,R0lGODlhAQABAAAAACw=",
			tag:         "mimetypes=image/jpeg image/png image/jpg image/gif",
			expectError: false,
		},
		{
			name:        "webp rejected by upload policy",
			field:       "data:image/webp;base64,UklGRhoAAABXRUJQVlA4TA0=",
			tag:         "mimetypes=image/jpeg image/png image/jpg image/gif",
			expectError: true,
		},
		{
			name:        "small payload passes maxfilesize",
			field:       pngData,
			tag:         "maxfilesize=1",
			expectError: false,
		},
		{
			name:        "payload over maxfilesize",
			field:       strings.Repeat("a", 2*1024*1024),
			tag:         "maxfilesize=1",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateVar(tt.field, tt.tag)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}
		})
	}
}
