package dto_test

import (
	"net/http"
	"net/url"
	"strings"
	"testing"
	"time"

	"lodge/shared/constant"
	"lodge/shared/dto"
	"lodge/shared/model"
	"lodge/shared/timezone"
)

func TestMetadata_FromModel(t *testing.T) {
	createdAt := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
	modifiedAt := time.Date(2023, 1, 2, 12, 0, 0, 0, time.UTC)

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
				"sort_by":  "guest_name",
				"sort_dir": "ASC",
			},
			defaultRequest: false,
			expected: dto.QueryParams{
				Page:    2,
				Limit:   20,
				SortBy:  "guest_name",
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
			name: "invalid page and limit are ignored",
			queryParams: map[string]string{
				"page":  "zero",
				"limit": "-5",
			},
			defaultRequest: true,
			expected: dto.QueryParams{
				Page:  constant.DefaultValuePage,
				Limit: constant.DefaultValueLimit,
			},
		},
		{
			name: "sort direction is upper-cased",
			queryParams: map[string]string{
				"sort_dir": "desc",
			},
			defaultRequest: false,
			expected: dto.QueryParams{
				SortDir: "DESC",
			},
		},
		{
			name: "unknown sort direction is dropped",
			queryParams: map[string]string{
				"sort_dir": "sideways",
			},
			defaultRequest: false,
			expected:       dto.QueryParams{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values := url.Values{}
			for key, value := range tt.queryParams {
				values.Set(key, value)
			}

			req := &http.Request{URL: &url.URL{RawQuery: values.Encode()}}

			params := dto.QueryParams{}
			params.FromRequest(req, tt.defaultRequest)

			if params != tt.expected {
				t.Errorf("expected %+v, got %+v", tt.expected, params)
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
			name: "eq",
			filter: dto.Filter{
				Field:    "status_cd",
				Value:    "S",
				Operator: dto.FilterOperatorEq,
			},
			wantClause: "status_cd = :status_cd",
			wantArgs:   map[string]any{"status_cd": "S"},
		},
		{
			name: "eq with table prefix",
			filter: dto.Filter{
				Field:    "code",
				Value:    "AB12CD",
				Operator: dto.FilterOperatorEq,
				Table:    "reservations",
			},
			wantClause: "reservations.code = :code",
			wantArgs:   map[string]any{"code": "AB12CD"},
		},
		{
			name: "eq with explicit arg name",
			filter: dto.Filter{
				ArgName:  "in_ymd",
				Field:    "check_in_ymd",
				Value:    "20240401",
				Operator: dto.FilterOperatorEq,
			},
			wantClause: "check_in_ymd = :in_ymd",
			wantArgs:   map[string]any{"in_ymd": "20240401"},
		},
		{
			name: "like",
			filter: dto.Filter{
				Field:    "guest_name",
				Value:    "kim",
				Operator: dto.FilterOperatorLike,
			},
			wantClause: "LOWER(guest_name) LIKE LOWER(:guest_name) ",
			wantArgs:   map[string]any{"guest_name": "%kim%"},
		},
		{
			name: "prefix",
			filter: dto.Filter{
				Field:    "check_in_ymd",
				Value:    "202404",
				Operator: dto.FilterOperatorPrefix,
			},
			wantClause: "check_in_ymd LIKE :check_in_ymd ",
			wantArgs:   map[string]any{"check_in_ymd": "202404%"},
		},
		{
			name: "in with slice",
			filter: dto.Filter{
				Field:    "status_cd",
				Value:    []string{"S", "I"},
				Operator: dto.FilterOperatorIn,
			},
			wantClause: "status_cd IN (:status_cd_0, :status_cd_1) ",
			wantArgs:   map[string]any{"status_cd_0": "S", "status_cd_1": "I"},
		},
		{
			name: "not eq",
			filter: dto.Filter{
				Field:    "decision_cd",
				Value:    "W",
				Operator: dto.FilterOperatorNotEq,
			},
			wantClause: "decision_cd != :decision_cd",
			wantArgs:   map[string]any{"decision_cd": "W"},
		},
		{
			name: "less eq",
			filter: dto.Filter{
				Field:    "check_in_ymd",
				Value:    "20240401",
				Operator: dto.FilterOperatorLessEq,
			},
			wantClause: "check_in_ymd <= :check_in_ymd",
			wantArgs:   map[string]any{"check_in_ymd": "20240401"},
		},
		{
			name: "greater eq",
			filter: dto.Filter{
				Field:    "check_out_ymd",
				Value:    "20240401",
				Operator: dto.FilterOperatorGreaterEq,
			},
			wantClause: "check_out_ymd >= :check_out_ymd",
			wantArgs:   map[string]any{"check_out_ymd": "20240401"},
		},
		{
			name: "is null",
			filter: dto.Filter{
				Field:    "decision_ymd",
				Operator: dto.FilterIsNull,
			},
			wantClause: "decision_ymd IS NULL",
			wantArgs:   map[string]any{},
		},
		{
			name: "unknown operator yields empty clause",
			filter: dto.Filter{
				Field:    "x",
				Operator: "between",
			},
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

			if len(args) != len(tt.wantArgs) {
				t.Fatalf("expected %d args, got %d", len(tt.wantArgs), len(args))
			}

			for key, want := range tt.wantArgs {
				if got, ok := args[key]; !ok || got != want {
					t.Errorf("expected arg %s=%v, got %v", key, want, got)
				}
			}
		})
	}
}

func TestFilterGroup_GetWhereClause(t *testing.T) {
	group := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{
				Field:    "code",
				Value:    "AB12CD",
				Operator: dto.FilterOperatorEq,
			},
			dto.Filter{
				Field:    "seq_no",
				Value:    202406,
				Operator: dto.FilterOperatorEq,
			},
		},
	}

	clause, args := group.GetWhereClause()

	if !strings.Contains(clause, " AND ") {
		t.Errorf("expected AND-joined clause, got %q", clause)
	}

	if !strings.HasPrefix(clause, "(") || !strings.HasSuffix(clause, ")") {
		t.Errorf("expected parenthesized clause, got %q", clause)
	}

	if len(args) != 2 {
		t.Errorf("expected 2 args, got %d", len(args))
	}
}

func TestFilterGroup_Nested(t *testing.T) {
	group := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{
				Field:    "status_cd",
				Value:    []string{"S", "I"},
				Operator: dto.FilterOperatorIn,
			},
			dto.FilterGroup{
				Operator: dto.FilterGroupOperatorOr,
				Filters: []any{
					dto.Filter{
						ArgName:  "in_ymd",
						Field:    "check_in_ymd",
						Value:    "20240401",
						Operator: dto.FilterOperatorEq,
					},
					dto.Filter{
						ArgName:  "out_ymd",
						Field:    "check_out_ymd",
						Value:    "20240401",
						Operator: dto.FilterOperatorEq,
					},
				},
			},
		},
	}

	clause, args := group.GetWhereClause()

	if !strings.Contains(clause, " OR ") {
		t.Errorf("expected nested OR clause, got %q", clause)
	}

	if len(args) != 4 {
		t.Errorf("expected 4 args, got %d", len(args))
	}

	if _, ok := args["in_ymd"]; !ok {
		t.Error("expected in_ymd arg from nested group")
	}
}

func TestFilterGroup_Empty(t *testing.T) {
	group := dto.FilterGroup{Operator: dto.FilterGroupOperatorAnd}

	clause, args := group.GetWhereClause()

	if clause != "" {
		t.Errorf("expected empty clause, got %q", clause)
	}

	if len(args) != 0 {
		t.Errorf("expected no args, got %d", len(args))
	}
}
