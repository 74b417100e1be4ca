package shared_test

import (
	"context"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"tzform/shared"
	"tzform/shared/cache/mocks"
	"tzform/shared/dto"
)

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		name  string
		total int
		limit int
		want  int
	}{
		{name: "empty still has one page", total: 0, limit: 10, want: 1},
		{name: "no limit", total: 100, limit: 0, want: 1},
		{name: "negative limit", total: 100, limit: -5, want: 1},
		{name: "exact division", total: 100, limit: 10, want: 10},
		{name: "remainder rounds up", total: 101, limit: 10, want: 11},
		{name: "limit above total", total: 5, limit: 10, want: 1},
		{name: "large", total: 1_000_000, limit: 7, want: 142_858},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, shared.CalculateTotalPage(tt.total, tt.limit))
		})
	}
}

func TestFilterByID(t *testing.T) {
	group := shared.FilterByID("550e8400-e29b-41d4-a716-446655440000", "id", "preferences")

	assert.Equal(t, dto.FilterGroup{
		Filters: []any{
			dto.Filter{Field: "id", Value: "550e8400-e29b-41d4-a716-446655440000", Operator: dto.FilterOperatorEq, Table: "preferences"},
		},
	}, group)

	where, args := group.GetWhereClause()
	assert.Equal(t, "(preferences.id = :id)", where)
	assert.Equal(t, map[string]any{"id": "550e8400-e29b-41d4-a716-446655440000"}, args)
}

func TestBuildCacheKey(t *testing.T) {
	assert.Equal(t, "preference:42", shared.BuildCacheKey("preference", "42"))
	assert.Equal(t, "zonedetect:10.0.0.1", shared.BuildCacheKey("zonedetect", "", "10.0.0.1"))
	assert.Empty(t, shared.BuildCacheKey())
	assert.Equal(t, "preference:abc", shared.PrefixID("preference", "abc"))
}

func TestInvalidateCaches(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockCache := mocks.NewMockCache(ctrl)

	gomock.InOrder(
		mockCache.EXPECT().Clear(gomock.Any(), "preferences*").Return(errors.New("redis down")),
		mockCache.EXPECT().Clear(gomock.Any(), "preference:1*").Return(nil),
	)

	shared.InvalidateCaches(context.Background(), mockCache, "preferences", "preference:1")
}

func TestClientIP(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		remote  string
		want    string
	}{
		{name: "forwarded for chain", headers: map[string]string{"X-Forwarded-For": "203.0.113.7, 10.0.0.1"}, remote: "10.0.0.1:5555", want: "203.0.113.7"},
		{name: "real ip", headers: map[string]string{"X-Real-IP": " 198.51.100.2 "}, remote: "10.0.0.1:5555", want: "198.51.100.2"},
		{name: "garbage forwarded falls through", headers: map[string]string{"X-Forwarded-For": "unknown", "X-Real-IP": "198.51.100.2"}, remote: "10.0.0.1:5555", want: "198.51.100.2"},
		{name: "ipv6 forwarded", headers: map[string]string{"X-Forwarded-For": "2001:db8::1"}, remote: "10.0.0.1:5555", want: "2001:db8::1"},
		{name: "remote addr", remote: "192.0.2.10:41234", want: "192.0.2.10"},
		{name: "remote addr without port", remote: "192.0.2.10", want: "192.0.2.10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/v1/form", nil)
			req.RemoteAddr = tt.remote

			for key, value := range tt.headers {
				req.Header.Set(key, value)
			}

			assert.Equal(t, tt.want, shared.ClientIP(req))
		})
	}
}
