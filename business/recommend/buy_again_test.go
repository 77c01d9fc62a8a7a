//go:build !integration

package recommend

import (
	"math"
	"testing"
	"time"

	"wiseBuy/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testClock = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func newTestEngine() Engine {
	e := NewEngine(DefaultConfig())
	e.Now = func() time.Time { return testClock }
	return e
}

func purchaseAt(pid string, daysAgo int, category string) domain.PurchaseRecord {
	return domain.PurchaseRecord{
		ProductID:   pid,
		PurchasedAt: testClock.AddDate(0, 0, -daysAgo).Format(time.RFC3339),
		Category:    category,
	}
}

func TestBuyAgain_RecentFrequentScoresHighest(t *testing.T) {
	e := newTestEngine()

	history := []domain.PurchaseRecord{
		purchaseAt("a", 0, ""),
		purchaseAt("b", 30, ""),
		purchaseAt("b", 35, ""),
	}

	recs := e.buyAgain(history, 10)
	require.Len(t, recs, 2)

	// a: bought today once, b: bought twice but a month ago
	assert.Equal(t, "a", recs[0].ProductID)
	assert.Equal(t, 0.8, recs[0].Score)

	assert.Equal(t, "b", recs[1].ProductID)
	assert.Equal(t, round3(0.6*math.Exp(-1)+0.4), recs[1].Score)

	for _, rec := range recs {
		assert.Equal(t, StrategyBuyAgain, rec.Strategy)
		assert.Equal(t, reasonBuyAgain, rec.Reason)
	}
}

func TestBuyAgain_SinglePurchaseToday(t *testing.T) {
	e := newTestEngine()

	recs := e.buyAgain([]domain.PurchaseRecord{purchaseAt("a", 0, "")}, 10)
	require.Len(t, recs, 1)
	assert.Equal(t, 1.0, recs[0].Score)
}

func TestBuyAgain_LimitAndEmpty(t *testing.T) {
	e := newTestEngine()

	history := []domain.PurchaseRecord{
		purchaseAt("a", 0, ""),
		purchaseAt("b", 1, ""),
		purchaseAt("c", 2, ""),
	}
	assert.Len(t, e.buyAgain(history, 2), 2)

	assert.Empty(t, e.buyAgain(nil, 10))
	assert.Empty(t, e.buyAgain([]domain.PurchaseRecord{{PurchasedAt: "2025-06-01"}}, 10))
}
