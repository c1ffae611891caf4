package adapters

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestCoinStatic_List は固定3コインがSortKey順に返ることをテストします。
func TestCoinStatic_List(t *testing.T) {
	repo := NewCoinRepository()

	coins, err := repo.List(context.Background())

	assert.NoError(t, err)
	assert.Len(t, coins, 3)
	assert.Equal(t, "bitcoin", coins[0].ID)
	assert.Equal(t, "ethereum", coins[1].ID)
	assert.Equal(t, "dogecoin", coins[2].ID)
	for i := 1; i < len(coins); i++ {
		assert.Less(t, coins[i-1].SortKey, coins[i].SortKey)
	}
}

// TestCoinStatic_List_CopyIsolation は返却スライスの変更が内部状態に
// 影響しないことをテストします。
func TestCoinStatic_List_CopyIsolation(t *testing.T) {
	repo := NewCoinRepository()

	first, err := repo.List(context.Background())
	assert.NoError(t, err)
	first[0].ID = "mutated"

	second, err := repo.List(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, "bitcoin", second[0].ID)
}

func TestCoinStatic_Exists(t *testing.T) {
	repo := NewCoinRepository()
	ctx := context.Background()

	tests := []struct {
		id   string
		want bool
	}{
		{"bitcoin", true},
		{"ethereum", true},
		{"dogecoin", true},
		{"", false},
		{"BITCOIN", false}, // IDは小文字で固定、大文字は別物として扱う
		{"litecoin", false},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			ok, err := repo.Exists(ctx, tt.id)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, ok)
		})
	}
}
