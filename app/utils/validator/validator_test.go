package validator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testProjectForm struct {
	Name        string `form:"name" validate:"required,project_name"`
	Description string `form:"description" validate:"max=255"`
	DomainID    string `form:"domain_id" validate:"required,resource_id"`
}

type testQuotaForm struct {
	Instances int64 `form:"instances" validate:"quota_limit"`
	Cores     int64 `form:"cores" validate:"quota_limit"`
}

func TestNew(t *testing.T) {
	v := New()
	assert.NotNil(t, v)
	assert.NotNil(t, v.validator)
}

func TestValidator_Validate(t *testing.T) {
	v := New()

	tests := []struct {
		name      string
		input     interface{}
		wantError bool
		checkErr  func(*testing.T, error)
	}{
		{
			name: "valid project form",
			input: testProjectForm{
				Name:        "engineering",
				Description: "eng project",
				DomainID:    "default",
			},
			wantError: false,
		},
		{
			name: "missing name",
			input: testProjectForm{
				DomainID: "default",
			},
			wantError: true,
			checkErr: func(t *testing.T, err error) {
				var vErr *ValidationError
				require.ErrorAs(t, err, &vErr)
				assert.Equal(t, "This field is required.", vErr.Errors["name"])
			},
		},
		{
			name: "name over 64 characters",
			input: testProjectForm{
				Name:     strings.Repeat("a", 65),
				DomainID: "default",
			},
			wantError: true,
			checkErr: func(t *testing.T, err error) {
				var vErr *ValidationError
				require.ErrorAs(t, err, &vErr)
				assert.Contains(t, vErr.Errors["name"], "64 characters")
			},
		},
		{
			name: "malformed domain id",
			input: testProjectForm{
				Name:     "engineering",
				DomainID: "not a/valid id",
			},
			wantError: true,
			checkErr: func(t *testing.T, err error) {
				var vErr *ValidationError
				require.ErrorAs(t, err, &vErr)
				assert.Contains(t, vErr.Errors["domain_id"], "resource id")
			},
		},
		{
			name:      "unlimited quota passes",
			input:     testQuotaForm{Instances: -1, Cores: 20},
			wantError: false,
		},
		{
			name:      "quota below -1 rejected",
			input:     testQuotaForm{Instances: -2, Cores: 20},
			wantError: true,
			checkErr: func(t *testing.T, err error) {
				var vErr *ValidationError
				require.ErrorAs(t, err, &vErr)
				assert.Contains(t, vErr.Errors["instances"], "-1 (unlimited)")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.input)
			if tt.wantError {
				require.Error(t, err)
				if tt.checkErr != nil {
					tt.checkErr(t, err)
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidator_ValidateVar(t *testing.T) {
	v := New()

	assert.NoError(t, v.ValidateVar("engineering", "required,project_name"))
	assert.Error(t, v.ValidateVar("", "required,project_name"))
	assert.Error(t, v.ValidateVar("   ", "required,project_name"))
}

func TestIsValidProjectName(t *testing.T) {
	assert.True(t, IsValidProjectName("engineering"))
	assert.False(t, IsValidProjectName(""))
}

func TestIsValidResourceID(t *testing.T) {
	assert.True(t, IsValidResourceID("c9c8c9cb-47cd-4158-b5b9-d18f7a8a6a1d"))
	assert.True(t, IsValidResourceID("default"))
	assert.False(t, IsValidResourceID("has spaces"))
}
