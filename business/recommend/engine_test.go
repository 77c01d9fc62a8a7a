//go:build !integration

package recommend

import (
	"testing"

	"wiseBuy/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecommend_MergeOrderAndDedup(t *testing.T) {
	e := newTestEngine()

	input := domain.RecommendationInput{
		CartProductIDs: []string{"x"},
		UserHistory: []domain.PurchaseRecord{
			purchaseAt("a", 40, ""),
		},
		AllShoppingLists: []domain.ShoppingList{
			listOf("x", "y"),
		},
		AllPurchases: []domain.PurchaseRecord{
			purchaseAt("x", 0, ""),
			purchaseAt("y", 1, ""),
			purchaseAt("z", 2, ""),
		},
		AllProducts: []string{"a", "y", "z"},
		PerCategory: 2,
	}

	recs := e.Recommend(input, nil)
	require.Len(t, recs, 3)

	// a is overdue for restock too, but buy_again runs first and claims it;
	// y is most popular after x, but bought_together claims it first
	assert.Equal(t, "a", recs[0].ProductID)
	assert.Equal(t, StrategyBuyAgain, recs[0].Strategy)
	assert.Equal(t, "y", recs[1].ProductID)
	assert.Equal(t, StrategyBoughtTogether, recs[1].Strategy)
	assert.Equal(t, "z", recs[2].ProductID)
	assert.Equal(t, StrategyPopular, recs[2].Strategy)

	seen := make(map[string]bool)
	for _, rec := range recs {
		assert.NotEqual(t, "x", rec.ProductID)
		assert.False(t, seen[rec.ProductID])
		seen[rec.ProductID] = true
	}
}

func TestRecommend_PerStrategyCap(t *testing.T) {
	e := newTestEngine()

	input := domain.RecommendationInput{
		AllPurchases: []domain.PurchaseRecord{
			purchaseAt("a", 0, ""),
			purchaseAt("b", 1, ""),
			purchaseAt("c", 2, ""),
			purchaseAt("d", 3, ""),
		},
		PerCategory: 1,
	}

	recs := e.Recommend(input, nil)
	require.Len(t, recs, 1)
	assert.Equal(t, "a", recs[0].ProductID)
	assert.Equal(t, StrategyPopular, recs[0].Strategy)
}

func TestRecommend_DefaultsPerStrategyFromConfig(t *testing.T) {
	e := newTestEngine()

	input := domain.RecommendationInput{
		AllPurchases: []domain.PurchaseRecord{
			purchaseAt("a", 0, ""),
			purchaseAt("b", 1, ""),
			purchaseAt("c", 2, ""),
			purchaseAt("d", 3, ""),
			purchaseAt("e", 4, ""),
		},
	}

	recs := e.Recommend(input, nil)
	assert.Len(t, recs, DefaultConfig().PerStrategy)
}

func TestRecommend_EmptyInputReturnsEmptySlice(t *testing.T) {
	e := newTestEngine()

	recs := e.Recommend(domain.RecommendationInput{}, nil)
	assert.NotNil(t, recs)
	assert.Empty(t, recs)
}
