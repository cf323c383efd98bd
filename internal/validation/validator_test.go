// Menuboard - Restaurant Menu Administration
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/menuboard

package validation

import (
	"testing"
)

// ===================================================================================================
// Singleton Validator Tests
// ===================================================================================================

func TestGetValidator_Singleton(t *testing.T) {
	v1 := GetValidator()
	v2 := GetValidator()

	if v1 != v2 {
		t.Error("GetValidator() should return the same singleton instance")
	}

	if v1 == nil {
		t.Error("GetValidator() should not return nil")
	}
}

// ===================================================================================================
// ValidateStruct Tests
// ===================================================================================================

type loginStruct struct {
	Password string `json:"password" validate:"required,max=72"`
}

type priceStruct struct {
	Price string `json:"price" validate:"required,finitefloat,pricerange"`
}

func TestValidateStruct_Valid(t *testing.T) {
	if err := ValidateStruct(&loginStruct{Password: "hunter2"}); err != nil {
		t.Errorf("ValidateStruct() returned unexpected error: %v", err)
	}
	if err := ValidateStruct(&priceStruct{Price: "200"}); err != nil {
		t.Errorf("ValidateStruct() returned unexpected error: %v", err)
	}
}

func TestValidateStruct_Invalid(t *testing.T) {
	tests := []struct {
		name      string
		input     interface{}
		wantField string
		wantTag   string
		wantMsg   string
	}{
		{
			name:      "missing password",
			input:     &loginStruct{},
			wantField: "password",
			wantTag:   "required",
			wantMsg:   "Password is required",
		},
		{
			name:      "password too long",
			input:     &loginStruct{Password: string(make([]byte, 73))},
			wantField: "password",
			wantTag:   "max",
			wantMsg:   "Password must be at most 72 characters",
		},
		{
			name:      "price not a number",
			input:     &priceStruct{Price: "cheap"},
			wantField: "price",
			wantTag:   "finitefloat",
			wantMsg:   "Price must be a valid number",
		},
		{
			name:      "price infinite",
			input:     &priceStruct{Price: "Inf"},
			wantField: "price",
			wantTag:   "finitefloat",
		},
		{
			name:      "price out of range",
			input:     &priceStruct{Price: "200.01"},
			wantField: "price",
			wantTag:   "pricerange",
			wantMsg:   "Price must be between 0 and 200",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(tt.input)
			if err == nil {
				t.Fatal("ValidateStruct() should have returned an error")
			}

			errs := err.Errors()
			if len(errs) != 1 {
				t.Fatalf("expected exactly one error, got: %v", err)
			}
			if errs[0].Field() != tt.wantField || errs[0].Tag() != tt.wantTag {
				t.Errorf("expected %s/%s, got %s/%s", tt.wantField, tt.wantTag, errs[0].Field(), errs[0].Tag())
			}
			if tt.wantMsg != "" && errs[0].Error() != tt.wantMsg {
				t.Errorf("expected message %q, got %q", tt.wantMsg, errs[0].Error())
			}
		})
	}
}

func TestRequestValidationError_FieldErrors(t *testing.T) {
	err := ValidateStruct(&loginStruct{})
	if err == nil {
		t.Fatal("Expected validation error")
	}

	fe := err.FieldErrors()
	if len(fe) != 1 || fe[0].Field != "password" || fe[0].Message != "Password is required" {
		t.Errorf("unexpected field errors: %+v", fe)
	}
	if err.Error() != "Password is required" {
		t.Errorf("unexpected Error(): %q", err.Error())
	}
}

func TestRequestValidationError_EmptyMessage(t *testing.T) {
	err := &RequestValidationError{}
	if err.Error() != "validation failed" {
		t.Errorf("unexpected Error(): %q", err.Error())
	}
}
