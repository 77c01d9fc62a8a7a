//go:build !integration

package recommend

import (
	"math"
	"testing"

	"wiseBuy/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPopular_TimeDecayedCounts(t *testing.T) {
	e := newTestEngine()

	all := []domain.PurchaseRecord{
		purchaseAt("a", 0, ""),
		purchaseAt("a", 30, ""),
		purchaseAt("b", 0, ""),
	}

	recs := e.popularItems(all, 10)
	require.Len(t, recs, 2)

	// a: exp(0) + exp(-1), b: exp(0); scores are max-normalized
	assert.Equal(t, "a", recs[0].ProductID)
	assert.Equal(t, 1.0, recs[0].Score)

	assert.Equal(t, "b", recs[1].ProductID)
	assert.Equal(t, round3(1.0/(1.0+math.Exp(-1))), recs[1].Score)

	for _, rec := range recs {
		assert.Equal(t, StrategyPopular, rec.Strategy)
		assert.Equal(t, reasonPopular, rec.Reason)
	}
}

func TestPopular_LimitAndEmpty(t *testing.T) {
	e := newTestEngine()

	all := []domain.PurchaseRecord{
		purchaseAt("a", 0, ""),
		purchaseAt("b", 1, ""),
		purchaseAt("c", 2, ""),
	}
	assert.Len(t, e.popularItems(all, 2), 2)

	assert.Empty(t, e.popularItems(nil, 10))
	assert.Empty(t, e.popularItems([]domain.PurchaseRecord{{PurchasedAt: "2025-06-01"}}, 10))
}
