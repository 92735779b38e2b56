package validator_test

import (
	"strings"
	"testing"

	"agendalab/shared/validator"
)

type bookingPayload struct {
	LabID string `validate:"required"        json:"lab_id"`
	Date  string `validate:"required,dateiso" json:"date"`
	Slot  string `validate:"required"        json:"slot"`
}

type movementPayload struct {
	Type     string `validate:"required,oneof=entrada saida" json:"type"`
	Quantity int    `validate:"required,min=1"               json:"quantity"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name        string
		data        *bookingPayload
		expectError bool
	}{
		{
			name: "valid payload",
			data: &bookingPayload{
				LabID: "lab-1",
				Date:  "2025-06-10",
				Slot:  "08:00 - 09:40",
			},
			expectError: false,
		},
		{
			name: "missing lab",
			data: &bookingPayload{
				Date: "2025-06-10",
				Slot: "08:00 - 09:40",
			},
			expectError: true,
		},
		{
			name: "missing date",
			data: &bookingPayload{
				LabID: "lab-1",
				Slot:  "08:00 - 09:40",
			},
			expectError: true,
		},
		{
			name: "malformed date",
			data: &bookingPayload{
				LabID: "lab-1",
				Date:  "10/06/2025",
				Slot:  "08:00 - 09:40",
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
		})
	}
}

func TestValidateStructOneOf(t *testing.T) {
	tests := []struct {
		name        string
		data        *movementPayload
		expectError bool
	}{
		{
			name:        "inbound movement",
			data:        &movementPayload{Type: "entrada", Quantity: 5},
			expectError: false,
		},
		{
			name:        "outbound movement",
			data:        &movementPayload{Type: "saida", Quantity: 1},
			expectError: false,
		},
		{
			name:        "unknown movement type",
			data:        &movementPayload{Type: "transfer", Quantity: 5},
			expectError: true,
		},
		{
			name:        "zero quantity",
			data:        &movementPayload{Type: "entrada"},
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
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		expectError bool
	}{
		{
			name:        "valid body",
			body:        `{"lab_id":"lab-1","date":"2025-06-10","slot":"08:00 - 09:40"}`,
			expectError: false,
		},
		{
			name:        "invalid json",
			body:        `{"lab_id":`,
			expectError: true,
		},
		{
			name:        "valid json failing validation",
			body:        `{"lab_id":"lab-1"}`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := bookingPayload{}

			err := validator.Validate(strings.NewReader(tt.body), &req)

			if tt.expectError && err == nil {
				t.Error("expected error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no error, got: %v", err)
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
			field:       "lab-1",
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
			field:       "maria@escola.edu.br",
			tag:         "email",
			expectError: false,
		},
		{
			name:        "invalid email",
			field:       "not-an-email",
			tag:         "email",
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
