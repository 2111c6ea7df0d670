package shared_test

import (
	"strings"
	"testing"

	"casatente/shared"
	"casatente/shared/constant"
	"casatente/shared/dto"
)

func TestConvertStringToBool(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  *bool
	}{
		{name: "true value", input: "true", want: boolPtr(true)},
		{name: "false value", input: "false", want: boolPtr(false)},
		{name: "empty string", input: "", want: nil},
		{name: "garbage", input: "not-a-bool", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := shared.ConvertStringToBool(tt.input)

			if (got == nil) != (tt.want == nil) {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}

			if got != nil && *got != *tt.want {
				t.Errorf("expected %v, got %v", *tt.want, *got)
			}
		})
	}
}

func boolPtr(v bool) *bool {
	return &v
}

func TestConvertStringToInt(t *testing.T) {
	got, err := shared.ConvertStringToInt("42")
	if err != nil || got != 42 {
		t.Errorf("expected 42, got %d (err %v)", got, err)
	}

	if _, err := shared.ConvertStringToInt("not-a-number"); err == nil {
		t.Error("expected error for invalid input")
	}
}

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		name  string
		total int
		limit int
		want  int
	}{
		{name: "exact division", total: 20, limit: 10, want: 2},
		{name: "remainder rounds up", total: 21, limit: 10, want: 3},
		{name: "zero total", total: 0, limit: 10, want: 1},
		{name: "zero limit", total: 20, limit: 0, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := shared.CalculateTotalPage(tt.total, tt.limit); got != tt.want {
				t.Errorf("expected %d, got %d", tt.want, got)
			}
		})
	}
}

func TestTransformFields(t *testing.T) {
	type update struct {
		Name   string `db:"name"`
		Guests int    `db:"guests"`
		Hidden string
	}

	fields := shared.TransformFields(update{Name: "Tent A", Guests: 2, Hidden: "x"}, "operator")

	if fields["name"] != "Tent A" {
		t.Errorf("expected name field, got %v", fields["name"])
	}

	if fields["guests"] != 2 {
		t.Errorf("expected guests field, got %v", fields["guests"])
	}

	if _, ok := fields["Hidden"]; ok {
		t.Error("fields without db tags must be skipped")
	}

	if fields[constant.FieldModifiedBy] != "operator" {
		t.Errorf("expected modified_by to be set, got %v", fields[constant.FieldModifiedBy])
	}

	if _, ok := fields[constant.FieldModifiedAt]; !ok {
		t.Error("expected modified_at to be set")
	}
}

func TestTransformFields_SkipsZeroValues(t *testing.T) {
	type update struct {
		Name   string `db:"name"`
		Guests int    `db:"guests"`
	}

	fields := shared.TransformFields(update{Name: "Tent A"}, "operator")

	if _, ok := fields["guests"]; ok {
		t.Error("zero fields must be skipped")
	}
}

func TestFilterByID(t *testing.T) {
	group := shared.FilterByID("some-id", "id", "reservations")

	clause, args := group.GetWhereClause()

	if clause != "(reservations.id = :id)" {
		t.Errorf("unexpected clause %q", clause)
	}

	if args["id"] != "some-id" {
		t.Errorf("unexpected args %v", args)
	}
}

func TestBuildCacheKey(t *testing.T) {
	if got := shared.BuildCacheKey("reservation", "get", "some-id"); got != "reservation:get:some-id" {
		t.Errorf("unexpected key %q", got)
	}
}

func TestBuildCacheKeyWithQuery(t *testing.T) {
	params := dto.QueryParams{Page: 1, Limit: 10}
	filter := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{Field: "status", Operator: dto.FilterOperatorEq, Value: "pending"},
		},
	}

	first := shared.BuildCacheKeyWithQuery("reservation:gets", params, filter)
	second := shared.BuildCacheKeyWithQuery("reservation:gets", params, filter)

	if first != second {
		t.Error("expected a stable key for identical queries")
	}

	if !strings.HasPrefix(first, "reservation:gets:") {
		t.Errorf("expected the prefix to be kept, got %q", first)
	}

	other := shared.BuildCacheKeyWithQuery("reservation:gets", dto.QueryParams{Page: 2, Limit: 10}, filter)
	if first == other {
		t.Error("expected different queries to produce different keys")
	}
}
