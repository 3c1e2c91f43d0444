package form

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"esgcompass/internal/model"
)

func TestValidate_MandatoryFieldsOnly(t *testing.T) {
	// Any values with a valid industry and bucket pass, regardless of
	// the pillar fields.
	res := Validate(model.FormValues{
		Industry:      "Manufacturing",
		EmployeeCount: "11-50",
	})
	require.True(t, res.Valid())
	assert.Empty(t, res.Errors)
}

func TestValidate_OptionalFieldsNeverFail(t *testing.T) {
	for _, bucket := range EmployeeCountBuckets {
		res := Validate(model.FormValues{
			Industry:               "IT",
			EmployeeCount:          bucket,
			ExistingInitiatives:    "",
			MainGoals:              "",
			EnvironmentalPractices: "",
			SocialResponsibility:   "",
			Governance:             "",
		})
		assert.True(t, res.Valid(), "bucket %s", bucket)
	}
}

func TestValidate_Failures(t *testing.T) {
	tests := []struct {
		name       string
		values     model.FormValues
		wantFields []string
	}{
		{
			name:       "all empty",
			values:     model.FormValues{},
			wantFields: []string{"employeeCount", "industry"},
		},
		{
			name:       "industry too short",
			values:     model.FormValues{Industry: "A", EmployeeCount: "11-50"},
			wantFields: []string{"industry"},
		},
		{
			name:       "employee count not a bucket",
			values:     model.FormValues{Industry: "Retail", EmployeeCount: "42"},
			wantFields: []string{"employeeCount"},
		},
		{
			name:       "missing employee count",
			values:     model.FormValues{Industry: "Retail"},
			wantFields: []string{"employeeCount"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Validate(tt.values)
			require.False(t, res.Valid())

			var fields []string
			for _, fe := range res.Errors {
				fields = append(fields, fe.Field)
				assert.NotEmpty(t, fe.Message)
			}
			assert.Equal(t, tt.wantFields, fields)
		})
	}
}

func TestValidate_Pure(t *testing.T) {
	values := model.FormValues{Industry: "Energy", EmployeeCount: "500+", MainGoals: "reduce emissions"}
	before := values
	_ = Validate(values)
	assert.Equal(t, before, values)
}
