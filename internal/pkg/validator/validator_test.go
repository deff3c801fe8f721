package validator

import (
	"errors"
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidUUID(t *testing.T) {
	valid := []string{
		"0188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b",
		"123e4567-e89b-12d3-a456-426614174000",
		"0188D0F2-7B8C-7B4A-8A2B-6B8B8B8B8B8B",
	}
	invalid := []string{
		"0188d0f27b8c7b4a8a2b6b8b8b8b8b8b", // missing dashes
		"g188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b",
		"{0188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b}",
		"",
	}
	for _, id := range valid {
		if !IsValidUUID(id) {
			t.Errorf("IsValidUUID(%q) = false, want true", id)
		}
	}
	for _, id := range invalid {
		if IsValidUUID(id) {
			t.Errorf("IsValidUUID(%q) = true, want false", id)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	valid := []string{"2025-01-31", "2024-02-29"}
	invalid := []string{"2025-02-30", "31-01-2025", "2025/01/31", "", "2025-1-1"}
	for _, d := range valid {
		if _, ok := IsValidDate(d); !ok {
			t.Errorf("IsValidDate(%q) = false, want true", d)
		}
	}
	for _, d := range invalid {
		if _, ok := IsValidDate(d); ok {
			t.Errorf("IsValidDate(%q) = true, want false", d)
		}
	}
}

func TestIsInSlice(t *testing.T) {
	if !IsInSlice("Day", []string{"Day", "Night"}) {
		t.Error("IsInSlice should find Day")
	}
	if IsInSlice("day", []string{"Day", "Night"}) {
		t.Error("IsInSlice should be case sensitive")
	}
}

func TestValidationErrors_Error(t *testing.T) {
	errs := ValidationErrors{
		{Field: "line", Message: "line is required"},
		{Field: "shift", Message: "shift is invalid"},
	}
	want := "line: line is required; shift: shift is invalid"
	if errs.Error() != want {
		t.Errorf("Error() = %q, want %q", errs.Error(), want)
	}
}

func TestValidationErrors_ToMap(t *testing.T) {
	errs := ValidationErrors{{Field: "line", Message: "required"}}
	m := errs.ToMap()
	if m["line"] != "required" {
		t.Errorf("ToMap()[line] = %q, want %q", m["line"], "required")
	}
}

type structUnderTest struct {
	Line    string       `json:"line" validate:"required"`
	Date    string       `json:"target_date" validate:"required,isodate"`
	Shift   string       `json:"shift" validate:"oneof=Day Night"`
	Details []itemStruct `json:"details" validate:"dive"`
}

type itemStruct struct {
	Qty int64 `json:"target_qty" validate:"gte=0"`
}

func TestStruct(t *testing.T) {
	ok := structUnderTest{Line: "line-21", Date: "2025-03-10", Shift: "Day"}
	if err := Struct(ok); err != nil {
		t.Fatalf("Struct(valid) = %v, want nil", err)
	}

	bad := structUnderTest{Date: "10-03-2025", Shift: "Evening", Details: []itemStruct{{Qty: -1}}}
	err := Struct(bad)

	var errs ValidationErrors
	if !errors.As(err, &errs) {
		t.Fatalf("Struct(invalid) returned %T, want ValidationErrors", err)
	}
	m := errs.ToMap()
	for _, field := range []string{"line", "target_date", "shift", "details[0].target_qty"} {
		if _, found := m[field]; !found {
			t.Errorf("missing validation error for %q in %v", field, m)
		}
	}
	if m["target_date"] != "target_date must be a date in YYYY-MM-DD format" {
		t.Errorf("unexpected date message %q", m["target_date"])
	}
}
