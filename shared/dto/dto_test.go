package dto_test

import (
	"net/http"
	"net/url"
	"reflect"
	"testing"
	"time"

	"casatente/shared/constant"
	"casatente/shared/dto"
	"casatente/shared/model"
	"casatente/shared/timezone"
)

func TestMetadata_FromModel(t *testing.T) {
	createdAt := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	modifiedAt := time.Date(2026, 1, 2, 12, 0, 0, 0, time.UTC)

	modelMetadata := model.Metadata{
		CreatedAt:  createdAt,
		ModifiedAt: modifiedAt,
		CreatedBy:  "creator",
		ModifiedBy: "modifier",
	}

	metadata := &dto.Metadata{}
	metadata.FromModel(modelMetadata)

	expectedCreatedAt := timezone.Format(createdAt, constant.DateFormat)
	expectedModifiedAt := timezone.Format(modifiedAt, constant.DateFormat)

	if metadata.CreatedAt != expectedCreatedAt {
		t.Errorf("expected CreatedAt to be %s, got %s", expectedCreatedAt, metadata.CreatedAt)
	}

	if metadata.ModifiedAt != expectedModifiedAt {
		t.Errorf("expected ModifiedAt to be %s, got %s", expectedModifiedAt, metadata.ModifiedAt)
	}

	if metadata.CreatedBy != "creator" {
		t.Errorf("expected CreatedBy to be 'creator', got %s", metadata.CreatedBy)
	}

	if metadata.ModifiedBy != "modifier" {
		t.Errorf("expected ModifiedBy to be 'modifier', got %s", metadata.ModifiedBy)
	}
}

func TestQueryParams_FromRequest(t *testing.T) {
	tests := []struct {
		name           string
		queryParams    map[string]string
		defaultRequest bool
		expected       dto.QueryParams
	}{
		{
			name: "with all valid parameters",
			queryParams: map[string]string{
				"page":     "2",
				"limit":    "20",
				"sort_by":  "name",
				"sort_dir": "ASC",
			},
			defaultRequest: false,
			expected: dto.QueryParams{
				Page:    2,
				Limit:   20,
				SortBy:  "name",
				SortDir: "ASC",
			},
		},
		{
			name:           "with default request enabled and no parameters",
			queryParams:    map[string]string{},
			defaultRequest: true,
			expected: dto.QueryParams{
				Page:  constant.DefaultValuePage,
				Limit: constant.DefaultValueLimit,
			},
		},
		{
			name:           "with default request disabled and no parameters",
			queryParams:    map[string]string{},
			defaultRequest: false,
			expected:       dto.QueryParams{},
		},
		{
			name: "with invalid page and limit parameters",
			queryParams: map[string]string{
				"page":  "invalid",
				"limit": "-10",
			},
			defaultRequest: true,
			expected: dto.QueryParams{
				Page:  constant.DefaultValuePage,
				Limit: constant.DefaultValueLimit,
			},
		},
		{
			name: "with lowercase sort direction",
			queryParams: map[string]string{
				"sort_dir": "desc",
			},
			defaultRequest: false,
			expected: dto.QueryParams{
				SortDir: "DESC",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := url.Parse("http://example.com/test")
			if err != nil {
				t.Fatalf("failed to parse URL: %v", err)
			}

			query := u.Query()
			for key, value := range tt.queryParams {
				query.Set(key, value)
			}
			u.RawQuery = query.Encode()

			req, err := http.NewRequest(http.MethodGet, u.String(), nil)
			if err != nil {
				t.Fatalf("failed to create request: %v", err)
			}

			queryParams := &dto.QueryParams{}
			queryParams.FromRequest(req, tt.defaultRequest)

			if *queryParams != tt.expected {
				t.Errorf("expected %+v, got %+v", tt.expected, *queryParams)
			}
		})
	}
}

func TestFilter_GetWhereClause(t *testing.T) {
	tests := []struct {
		name       string
		filter     dto.Filter
		wantClause string
		wantArgs   map[string]any
	}{
		{
			name:       "eq with table prefix",
			filter:     dto.Filter{Field: "status", Operator: dto.FilterOperatorEq, Value: "pending", Table: "reservations"},
			wantClause: "reservations.status = :status",
			wantArgs:   map[string]any{"status": "pending"},
		},
		{
			name:       "eq with custom arg name",
			filter:     dto.Filter{Field: "status", Operator: dto.FilterOperatorEq, Value: "pending", ArgName: "status_filter"},
			wantClause: "status = :status_filter",
			wantArgs:   map[string]any{"status_filter": "pending"},
		},
		{
			name:       "like lowers both sides",
			filter:     dto.Filter{Field: "fullname", Operator: dto.FilterOperatorLike, Value: "john"},
			wantClause: "LOWER(fullname) LIKE LOWER(:fullname) ",
			wantArgs:   map[string]any{"fullname": "%john%"},
		},
		{
			name:       "in expands a slice into named args",
			filter:     dto.Filter{Field: "status", Operator: dto.FilterOperatorIn, Value: []string{"pending", "confirmed"}},
			wantClause: "status IN (:status_0, :status_1) ",
			wantArgs:   map[string]any{"status_0": "pending", "status_1": "confirmed"},
		},
		{
			name:       "not_eq",
			filter:     dto.Filter{Field: "status", Operator: dto.FilterOperatorNotEq, Value: "cancelled"},
			wantClause: "status != :status",
			wantArgs:   map[string]any{"status": "cancelled"},
		},
		{
			name:       "less",
			filter:     dto.Filter{Field: "check_in", Operator: dto.FilterOperatorLess, Value: "2026-09-01"},
			wantClause: "check_in < :check_in",
			wantArgs:   map[string]any{"check_in": "2026-09-01"},
		},
		{
			name:       "less_eq",
			filter:     dto.Filter{Field: "check_in", Operator: dto.FilterOperatorLessEq, Value: "2026-09-01"},
			wantClause: "check_in <= :check_in",
			wantArgs:   map[string]any{"check_in": "2026-09-01"},
		},
		{
			name:       "greater",
			filter:     dto.Filter{Field: "check_out", Operator: dto.FilterOperatorGreater, Value: "2026-09-01"},
			wantClause: "check_out > :check_out",
			wantArgs:   map[string]any{"check_out": "2026-09-01"},
		},
		{
			name:       "greater_eq",
			filter:     dto.Filter{Field: "check_out", Operator: dto.FilterOperatorGreaterEq, Value: "2026-09-01"},
			wantClause: "check_out >= :check_out",
			wantArgs:   map[string]any{"check_out": "2026-09-01"},
		},
		{
			name:       "is_null",
			filter:     dto.Filter{Field: "user_id", Operator: dto.FilterIsNull},
			wantClause: "user_id IS NULL",
			wantArgs:   map[string]any{},
		},
		{
			name:       "is_not_null",
			filter:     dto.Filter{Field: "user_id", Operator: dto.FilterIsNotNull},
			wantClause: "user_id IS NOT NULL",
			wantArgs:   map[string]any{},
		},
		{
			name:       "unknown operator yields nothing",
			filter:     dto.Filter{Field: "status", Operator: "between"},
			wantClause: "",
			wantArgs:   map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clause, args := tt.filter.GetWhereClause()

			if clause != tt.wantClause {
				t.Errorf("expected clause %q, got %q", tt.wantClause, clause)
			}

			if !reflect.DeepEqual(args, tt.wantArgs) {
				t.Errorf("expected args %v, got %v", tt.wantArgs, args)
			}
		})
	}
}

func TestFilterGroup_GetWhereClause(t *testing.T) {
	t.Run("empty group yields nothing", func(t *testing.T) {
		group := dto.FilterGroup{Operator: dto.FilterGroupOperatorAnd}

		clause, args := group.GetWhereClause()

		if clause != "" {
			t.Errorf("expected empty clause, got %q", clause)
		}

		if len(args) != 0 {
			t.Errorf("expected no args, got %v", args)
		}
	})

	t.Run("joins filters with the group operator", func(t *testing.T) {
		group := dto.FilterGroup{
			Operator: dto.FilterGroupOperatorAnd,
			Filters: []any{
				dto.Filter{Field: "room_id", Operator: dto.FilterOperatorEq, Value: "room-1"},
				dto.Filter{Field: "status", Operator: dto.FilterOperatorEq, Value: "pending"},
			},
		}

		clause, args := group.GetWhereClause()

		expected := "(room_id = :room_id AND status = :status)"
		if clause != expected {
			t.Errorf("expected clause %q, got %q", expected, clause)
		}

		if args["room_id"] != "room-1" || args["status"] != "pending" {
			t.Errorf("unexpected args: %v", args)
		}
	})

	t.Run("nested groups are parenthesized", func(t *testing.T) {
		group := dto.FilterGroup{
			Operator: dto.FilterGroupOperatorAnd,
			Filters: []any{
				dto.Filter{Field: "room_id", Operator: dto.FilterOperatorEq, Value: "room-1"},
				dto.FilterGroup{
					Operator: dto.FilterGroupOperatorOr,
					Filters: []any{
						dto.Filter{Field: "status", Operator: dto.FilterOperatorEq, Value: "pending", ArgName: "status_a"},
						dto.Filter{Field: "status", Operator: dto.FilterOperatorEq, Value: "confirmed", ArgName: "status_b"},
					},
				},
			},
		}

		clause, _ := group.GetWhereClause()

		expected := "(room_id = :room_id AND (status = :status_a OR status = :status_b))"
		if clause != expected {
			t.Errorf("expected clause %q, got %q", expected, clause)
		}
	})
}

func TestSortDirectionConstants(t *testing.T) {
	if dto.SortDirAsc != "ASC" {
		t.Errorf("expected SortDirAsc to be 'ASC', got %s", dto.SortDirAsc)
	}

	if dto.SortDirDesc != "DESC" {
		t.Errorf("expected SortDirDesc to be 'DESC', got %s", dto.SortDirDesc)
	}
}
