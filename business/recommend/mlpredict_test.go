//go:build !integration

package recommend

import (
	"math/rand"
	"testing"

	"wiseBuy/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mlTestSnapshot() ([]domain.PurchaseRecord, []domain.PurchaseRecord, []string) {
	userHistory := []domain.PurchaseRecord{
		purchaseAt("a", 1, "חלב"),
		purchaseAt("b", 2, "חלב"),
		purchaseAt("c", 3, "חלב"),
	}
	allPurchases := []domain.PurchaseRecord{
		purchaseAt("a", 1, "חלב"),
		purchaseAt("a", 4, "חלב"),
		purchaseAt("b", 2, "חלב"),
		purchaseAt("b", 5, "חלב"),
		purchaseAt("c", 3, "חלב"),
		purchaseAt("d", 1, "חלב"),
		purchaseAt("d", 2, "חלב"),
		purchaseAt("d", 3, "חלב"),
		purchaseAt("e", 100, ""),
		purchaseAt("f", 90, ""),
		purchaseAt("g", 80, ""),
	}
	allProducts := []string{"a", "b", "c", "d", "e", "f", "g"}
	return userHistory, allPurchases, allProducts
}

func TestMLPredict_Guards(t *testing.T) {
	e := newTestEngine()
	rng := rand.New(rand.NewSource(1))
	userHistory, allPurchases, allProducts := mlTestSnapshot()

	t.Run("catalog too small", func(t *testing.T) {
		assert.Nil(t, e.mlPredict(userHistory, allPurchases, []string{"a", "b", "c"}, 3, rng))
	})

	t.Run("too few distinct bought products", func(t *testing.T) {
		short := []domain.PurchaseRecord{
			purchaseAt("a", 1, ""),
			purchaseAt("a", 5, ""),
			purchaseAt("b", 2, ""),
		}
		assert.Nil(t, e.mlPredict(short, allPurchases, allProducts, 3, rng))
	})

	t.Run("no negatives to sample", func(t *testing.T) {
		bought := []domain.PurchaseRecord{
			purchaseAt("a", 1, ""),
			purchaseAt("b", 2, ""),
			purchaseAt("c", 3, ""),
		}
		assert.Nil(t, e.mlPredict(bought, bought, allProducts, 3, rng))
	})

	t.Run("empty inputs", func(t *testing.T) {
		assert.Nil(t, e.mlPredict(nil, allPurchases, allProducts, 3, rng))
		assert.Nil(t, e.mlPredict(userHistory, nil, allProducts, 3, rng))
	})
}

func TestMLPredict_ScoresUnboughtCandidates(t *testing.T) {
	e := newTestEngine()
	userHistory, allPurchases, allProducts := mlTestSnapshot()

	recs := e.mlPredict(userHistory, allPurchases, allProducts, 3, rand.New(rand.NewSource(42)))
	require.Len(t, recs, 3)

	bought := map[string]bool{"a": true, "b": true, "c": true}
	for i, rec := range recs {
		assert.False(t, bought[rec.ProductID])
		assert.Equal(t, StrategyMLPredict, rec.Strategy)
		assert.Equal(t, reasonMLPredict, rec.Reason)
		assert.GreaterOrEqual(t, rec.Score, 0.0)
		assert.LessOrEqual(t, rec.Score, 1.0)
		if i > 0 {
			assert.LessOrEqual(t, rec.Score, recs[i-1].Score)
		}
	}

	// window normalization pins the best candidate to 1.0
	assert.Equal(t, 1.0, recs[0].Score)
}

func TestMLPredict_DeterministicForSeed(t *testing.T) {
	e := newTestEngine()
	userHistory, allPurchases, allProducts := mlTestSnapshot()

	first := e.mlPredict(userHistory, allPurchases, allProducts, 3, rand.New(rand.NewSource(7)))
	second := e.mlPredict(userHistory, allPurchases, allProducts, 3, rand.New(rand.NewSource(7)))
	assert.Equal(t, first, second)
}
