package shared_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"bistro/shared"
	"bistro/shared/constant"
	"bistro/shared/dto"
)

func TestConvertStringToBool(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected *bool
	}{
		{name: "empty string returns nil", input: "", expected: nil},
		{name: "valid true string", input: "true", expected: boolPtr(true)},
		{name: "valid false string", input: "false", expected: boolPtr(false)},
		{name: "valid 1 string", input: "1", expected: boolPtr(true)},
		{name: "valid 0 string", input: "0", expected: boolPtr(false)},
		{name: "invalid string returns nil", input: "invalid", expected: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shared.ConvertStringToBool(tt.input)

			if tt.expected == nil {
				assert.Nil(t, result)
			} else {
				assert.NotNil(t, result)
				assert.Equal(t, *tt.expected, *result)
			}
		})
	}
}

func TestConvertStringToInt(t *testing.T) {
	result, err := shared.ConvertStringToInt("42")
	assert.NoError(t, err)
	assert.Equal(t, 42, result)

	_, err = shared.ConvertStringToInt("not-a-number")
	assert.Error(t, err)
}

func TestConvertStringToFloat(t *testing.T) {
	result, err := shared.ConvertStringToFloat("12.99")
	assert.NoError(t, err)
	assert.InDelta(t, 12.99, result, 0.001)

	_, err = shared.ConvertStringToFloat("not-a-number")
	assert.Error(t, err)
}

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		limit    int
		expected int
	}{
		{name: "zero total gives one page", total: 0, limit: 10, expected: 1},
		{name: "zero limit gives one page", total: 100, limit: 0, expected: 1},
		{name: "exact division", total: 100, limit: 10, expected: 10},
		{name: "partial last page", total: 101, limit: 10, expected: 11},
		{name: "less than one page", total: 3, limit: 10, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, shared.CalculateTotalPage(tt.total, tt.limit))
		})
	}
}

func TestTransformFields(t *testing.T) {
	type updateRequest struct {
		Name     *string `db:"name"`
		Capacity *int    `db:"capacity"`
		Ignored  *string `db:"-"`
		NoTag    *string
	}

	name := "Table 1"
	ignored := "skip me"

	fields := shared.TransformFields(updateRequest{Name: &name, Ignored: &ignored}, "user-id-1")

	assert.Equal(t, &name, fields["name"])
	assert.NotContains(t, fields, "capacity")
	assert.NotContains(t, fields, "-")
	assert.Equal(t, "user-id-1", fields[constant.FieldModifiedBy])
	assert.Contains(t, fields, constant.FieldModifiedAt)
}

func TestOwnerScope(t *testing.T) {
	t.Run("admin sees every record", func(t *testing.T) {
		ctx := context.WithValue(context.Background(), constant.ContextKeyUserRole, constant.RoleAdmin)
		ctx = context.WithValue(ctx, constant.ContextKeyUserID, "admin-id")

		assert.Equal(t, constant.Empty, shared.OwnerScope(ctx))
	})

	t.Run("regular user is scoped to their own records", func(t *testing.T) {
		ctx := context.WithValue(context.Background(), constant.ContextKeyUserRole, constant.RoleUser)
		ctx = context.WithValue(ctx, constant.ContextKeyUserID, "user-id-1")

		assert.Equal(t, "user-id-1", shared.OwnerScope(ctx))
	})

	t.Run("missing context values give empty scope", func(t *testing.T) {
		assert.Equal(t, constant.Empty, shared.OwnerScope(context.Background()))
	})
}

func TestFilterByID(t *testing.T) {
	filter := shared.FilterByID("id-1", "id", "tables")

	assert.Len(t, filter.Filters, 1)

	f, ok := filter.Filters[0].(dto.Filter)
	assert.True(t, ok)
	assert.Equal(t, "id", f.Field)
	assert.Equal(t, "id-1", f.Value)
	assert.Equal(t, dto.FilterOperatorEq, f.Operator)
	assert.Equal(t, "tables", f.Table)
}

func TestBuildCacheKey(t *testing.T) {
	assert.Equal(t, "table:get", shared.BuildCacheKey("table:get"))
	assert.Equal(t, "table:get:id-1", shared.BuildCacheKey("table:get", "id-1"))
	assert.Equal(t, "table:gets:1:10", shared.BuildCacheKey("table:gets", "1", "10"))
}

func boolPtr(b bool) *bool {
	return &b
}
