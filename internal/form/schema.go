// Package form declares the assessment form schema and its runtime
// validator. Validation is pure: it never mutates the values and an
// empty optional field is never an error.
package form

import (
	"sort"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"esgcompass/internal/model"
)

// EmployeeCountBuckets is the fixed enumeration of company size buckets.
var EmployeeCountBuckets = []string{"1-10", "11-50", "51-200", "201-500", "500+"}

// FieldError is a single field-scoped validation failure, suitable for
// inline display next to the offending input.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Result is the outcome of validating form values: either Valid with the
// accepted values, or a list of field errors.
type Result struct {
	Values model.FormValues `json:"values"`
	Errors []FieldError     `json:"errors,omitempty"`
}

// Valid reports whether validation succeeded.
func (r Result) Valid() bool {
	return len(r.Errors) == 0
}

// Validate checks values against the schema. Industry must be at least
// two characters and employeeCount must be one of the fixed buckets; all
// pillar fields are optional free text.
func Validate(values model.FormValues) Result {
	err := validation.ValidateStruct(&values,
		validation.Field(&values.Industry,
			validation.Required.Error("industry is required"),
			validation.Length(2, 0).Error("industry must be at least 2 characters")),
		validation.Field(&values.EmployeeCount,
			validation.Required.Error("employee count is required"),
			validation.In(bucketValues()...).Error("employee count must be one of the fixed buckets")),
	)
	if err == nil {
		return Result{Values: values}
	}

	errs, ok := err.(validation.Errors)
	if !ok {
		return Result{Values: values, Errors: []FieldError{{Field: "", Message: err.Error()}}}
	}

	fields := make([]string, 0, len(errs))
	for f := range errs {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	out := make([]FieldError, 0, len(errs))
	for _, f := range fields {
		out = append(out, FieldError{Field: f, Message: errs[f].Error()})
	}
	return Result{Values: values, Errors: out}
}

func bucketValues() []interface{} {
	vals := make([]interface{}, len(EmployeeCountBuckets))
	for i, b := range EmployeeCountBuckets {
		vals[i] = b
	}
	return vals
}
