package recommend

import (
	"math"

	"wiseBuy/domain"
)

const StrategyPopular = "popular"

const reasonPopular = "פופולרי עכשיו" // "Trending now"

// popularItems aggregates a time-weighted purchase count across all users:
// each purchase contributes exp(-daysAgo/decayDays). No personalization.
func (e Engine) popularItems(allPurchases []domain.PurchaseRecord, limit int) []domain.Recommendation {
	if len(allPurchases) == 0 {
		return nil
	}
	now := e.now()
	decayDays := e.cfg.PopularityDecayDays

	popularity := newOrderedScores()
	for _, purchase := range allPurchases {
		pid := purchase.ProductID
		if pid == "" {
			continue
		}
		purchasedAt := parsePurchaseTime(purchase.PurchasedAt, now)
		popularity.add(pid, math.Exp(-daysBetween(now, purchasedAt)/decayDays))
	}
	if popularity.len() == 0 {
		return nil
	}

	maxPop := popularity.max()
	if maxPop == 0 {
		maxPop = 1
	}

	top := popularity.topN(limit)
	recs := make([]domain.Recommendation, 0, len(top))
	for _, entry := range top {
		recs = append(recs, domain.Recommendation{
			ProductID: entry.productID,
			Score:     round3(entry.score / maxPop),
			Reason:    reasonPopular,
			Strategy:  StrategyPopular,
		})
	}
	return recs
}
