package dispatchers

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCommandCategory_String(t *testing.T) {
	tests := []struct {
		category CommandCategory
		expected string
	}{
		{CategoryUncategorized, "other commands"},
		{CategoryMessaging, "messaging"},
		{CategoryRoster, "players"},
		{CategoryPermissions, "permissions"},
		{CategoryUtility, "utility"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			require.Equal(t, tt.expected, tt.category.String())
		})
	}
}

func TestCommandCategory_Unknown(t *testing.T) {
	unknownCategory := CommandCategory(99)
	require.Equal(t, "other commands", unknownCategory.String())
	require.Equal(t, len(categoryOrder), categoryRank(unknownCategory))
}

func TestCategoryOrder(t *testing.T) {
	order := CategoryOrder()
	require.Equal(t, categoryOrder, order)
	require.Len(t, order, 5)
	require.Equal(t, CategoryUtility, order[0])
	require.Equal(t, CategoryUncategorized, order[len(order)-1])
}
