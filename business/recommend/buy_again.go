package recommend

import (
	"math"
	"time"

	"wiseBuy/domain"
)

const StrategyBuyAgain = "buy_again"

const reasonBuyAgain = "קנית בעבר" // "You bought this before"

const (
	buyAgainRecencyWeight   = 0.6
	buyAgainFrequencyWeight = 0.4
	buyAgainDecayDays       = 30.0
)

// buyAgain recommends products the user has bought before, weighting recent
// and frequent repeat purchases more highly: 0.6 * exp(-days/30) +
// 0.4 * count/maxCount.
func (e Engine) buyAgain(userHistory []domain.PurchaseRecord, limit int) []domain.Recommendation {
	if len(userHistory) == 0 {
		return nil
	}
	now := e.now()

	type productStats struct {
		count        int
		lastPurchase time.Time
	}
	stats := make(map[string]*productStats)
	order := make([]string, 0, len(userHistory))

	for _, purchase := range userHistory {
		pid := purchase.ProductID
		if pid == "" {
			continue
		}
		purchasedAt := parsePurchaseTime(purchase.PurchasedAt, now)

		st, ok := stats[pid]
		if !ok {
			st = &productStats{}
			stats[pid] = st
			order = append(order, pid)
		}
		st.count++
		if st.lastPurchase.IsZero() || purchasedAt.After(st.lastPurchase) {
			st.lastPurchase = purchasedAt
		}
	}
	if len(order) == 0 {
		return nil
	}

	maxCount := 1
	for _, st := range stats {
		if st.count > maxCount {
			maxCount = st.count
		}
	}

	scores := newOrderedScores()
	for _, pid := range order {
		st := stats[pid]
		recency := math.Exp(-daysBetween(now, st.lastPurchase) / buyAgainDecayDays)
		frequency := float64(st.count) / float64(maxCount)
		scores.add(pid, buyAgainRecencyWeight*recency+buyAgainFrequencyWeight*frequency)
	}

	top := scores.topN(limit)
	recs := make([]domain.Recommendation, 0, len(top))
	for _, entry := range top {
		recs = append(recs, domain.Recommendation{
			ProductID: entry.productID,
			Score:     round3(entry.score),
			Reason:    reasonBuyAgain,
			Strategy:  StrategyBuyAgain,
		})
	}
	return recs
}
