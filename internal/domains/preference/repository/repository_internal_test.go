package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tzform/internal/domains/preference/model"
)

func TestFilterGroup(t *testing.T) {
	tests := []struct {
		name      string
		filter    model.Filter
		wantWhere string
		wantArgs  map[string]any
	}{
		{
			name:      "no filter",
			wantWhere: "",
			wantArgs:  map[string]any{},
		},
		{
			name:      "email only",
			filter:    model.Filter{Email: "example"},
			wantWhere: "(LOWER(preferences.email) LIKE LOWER(:email))",
			wantArgs:  map[string]any{"email": "%example%"},
		},
		{
			name:      "name and email",
			filter:    model.Filter{Name: "john", Email: "example"},
			wantWhere: "(LOWER(preferences.name) LIKE LOWER(:name) AND LOWER(preferences.email) LIKE LOWER(:email))",
			wantArgs:  map[string]any{"name": "%john%", "email": "%example%"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			group := filterGroup(tt.filter)
			where, args := group.GetWhereClause()

			assert.Equal(t, tt.wantWhere, where)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}
