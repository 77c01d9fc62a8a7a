package recommend

import (
	"math"
	"math/rand"
	"sort"
	"time"

	"wiseBuy/domain"
)

const StrategyMLPredict = "ml_predict"

const reasonMLPredict = "מותאם אישית עבורך" // "Personalized for you"

const (
	mlMinProducts            = 5
	mlMinBoughtProducts      = 3
	mlMinSamples             = 4
	mlMinSamplesPerClass     = 2
	mlMaxIntervalSamples     = 5
	mlRegularityDefault      = 0.1
	mlRegularityScaleDays    = 30.0
	mlGlobalRecencyDecayDays = 14.0
	mlUnknownCategory        = "unknown"
)

type mlUserStats struct {
	count        int
	lastPurchase time.Time
	category     string
}

type mlGlobalStats struct {
	count     int
	purchases []time.Time // sorted descending once collected
}

// mlPredict trains a logistic regression classifier on the user's purchase
// history (positives) against randomly sampled never-bought products
// (negatives), then predicts a buy probability for every candidate the
// user has not bought. The model lives for this call only.
func (e Engine) mlPredict(
	userHistory []domain.PurchaseRecord,
	allPurchases []domain.PurchaseRecord,
	allProducts []string,
	limit int,
	rng *rand.Rand,
) []domain.Recommendation {
	if len(userHistory) == 0 || len(allPurchases) == 0 || len(allProducts) < mlMinProducts {
		return nil
	}
	now := e.now()

	// per-user stats
	userStats := make(map[string]*mlUserStats)
	userOrder := make([]string, 0, len(userHistory))
	userCategoryCounts := make(map[string]int)
	totalUserPurchases := 0

	for _, purchase := range userHistory {
		pid := purchase.ProductID
		if pid == "" {
			continue
		}
		category := purchase.Category
		if category == "" {
			category = mlUnknownCategory
		}
		purchasedAt := parsePurchaseTime(purchase.PurchasedAt, now)

		st, ok := userStats[pid]
		if !ok {
			st = &mlUserStats{}
			userStats[pid] = st
			userOrder = append(userOrder, pid)
		}
		st.count++
		st.category = category
		if st.lastPurchase.IsZero() || purchasedAt.After(st.lastPurchase) {
			st.lastPurchase = purchasedAt
		}

		userCategoryCounts[category]++
		totalUserPurchases++
	}

	// global stats
	globalStats := make(map[string]*mlGlobalStats)
	globalOrder := make([]string, 0, len(allPurchases))
	for _, purchase := range allPurchases {
		pid := purchase.ProductID
		if pid == "" {
			continue
		}
		purchasedAt := parsePurchaseTime(purchase.PurchasedAt, now)

		st, ok := globalStats[pid]
		if !ok {
			st = &mlGlobalStats{}
			globalStats[pid] = st
			globalOrder = append(globalOrder, pid)
		}
		st.count++
		st.purchases = append(st.purchases, purchasedAt)
	}

	maxGlobalCount := 1
	for _, st := range globalStats {
		if st.count > maxGlobalCount {
			maxGlobalCount = st.count
		}
		sort.Slice(st.purchases, func(i, j int) bool { return st.purchases[i].After(st.purchases[j]) })
	}

	if len(userOrder) < mlMinBoughtProducts {
		return nil
	}

	features := func(pid string) featureVector {
		var x featureVector

		var userCategory string
		if st, ok := userStats[pid]; ok {
			userCategory = st.category
		}
		global := globalStats[pid]

		// 1: global popularity, main signal for never-bought products
		if global != nil {
			x[0] = float64(global.count) / float64(maxGlobalCount)
		}

		// 2: category affinity, share of user purchases in this category
		category := userCategory
		if category == "" {
			category = mlUnknownCategory
		}
		denominator := totalUserPurchases
		if denominator < 1 {
			denominator = 1
		}
		x[1] = float64(userCategoryCounts[category]) / float64(denominator)

		// 3: regularity, inverse of the average gap over the most recent
		// global purchases
		x[2] = mlRegularityDefault
		if global != nil && len(global.purchases) >= 2 {
			gaps := len(global.purchases) - 1
			if gaps > mlMaxIntervalSamples {
				gaps = mlMaxIntervalSamples
			}
			total := 0.0
			for i := 0; i < gaps; i++ {
				total += daysBetween(global.purchases[i], global.purchases[i+1])
			}
			avgInterval := total / float64(gaps)
			x[2] = 1 / (1 + avgInterval/mlRegularityScaleDays)
		}

		// 4: global recency, is this product trending?
		if global != nil && len(global.purchases) > 0 {
			x[3] = math.Exp(-daysBetween(now, global.purchases[0]) / mlGlobalRecencyDecayDays)
		}

		// 5: co-purchase score. Deliberately a constant 0: the slot is
		// reserved and not wired to the co-occurrence signal.
		x[4] = 0

		return x
	}

	// positives: everything the user bought
	X := make([]featureVector, 0, len(userOrder)*3)
	y := make([]int, 0, len(userOrder)*3)
	for _, pid := range userOrder {
		X = append(X, features(pid))
		y = append(y, 1)
	}

	// negatives: sampled without replacement from globally purchased
	// products the user never bought
	notBought := make([]string, 0, len(globalOrder))
	for _, pid := range globalOrder {
		if _, bought := userStats[pid]; !bought {
			notBought = append(notBought, pid)
		}
	}
	if len(notBought) == 0 {
		return nil
	}

	sampleSize := len(userOrder) * 2
	if sampleSize < mlMinProducts {
		sampleSize = mlMinProducts
	}
	if sampleSize > len(notBought) {
		sampleSize = len(notBought)
	}
	for _, idx := range rng.Perm(len(notBought))[:sampleSize] {
		X = append(X, features(notBought[idx]))
		y = append(y, 0)
	}

	positives := len(userOrder)
	negatives := len(y) - positives
	if len(X) < mlMinSamples || positives < mlMinSamplesPerClass || negatives < mlMinSamplesPerClass {
		return nil
	}

	// fit: any numerical failure silently disables this strategy
	scaler := &standardScaler{}
	if err := scaler.fit(X); err != nil {
		return nil
	}
	scaled := make([]featureVector, 0, len(X))
	for _, x := range X {
		xs, err := scaler.transform(x)
		if err != nil {
			return nil
		}
		scaled = append(scaled, xs)
	}
	clf := newLogisticRegression()
	if err := clf.fit(scaled, y); err != nil {
		return nil
	}

	// predict on every candidate the user has not bought; skip individual
	// scaling/prediction failures rather than aborting the batch
	type prediction struct {
		productID string
		proba     float64
	}
	predictions := make([]prediction, 0, len(allProducts))
	for _, pid := range allProducts {
		if _, bought := userStats[pid]; bought {
			continue
		}
		xs, err := scaler.transform(features(pid))
		if err != nil {
			continue
		}
		proba := clf.predictProba(xs)
		if math.IsNaN(proba) {
			continue
		}
		predictions = append(predictions, prediction{productID: pid, proba: proba})
	}
	if len(predictions) == 0 {
		return nil
	}

	sort.SliceStable(predictions, func(i, j int) bool {
		return predictions[i].proba > predictions[j].proba
	})

	// min-max window over the top limit predictions; degenerate window
	// falls back to the raw probability
	maxProba := predictions[0].proba
	minProba := 0.0
	if len(predictions) > limit {
		minProba = predictions[limit].proba
	}

	top := predictions
	if len(top) > limit {
		top = top[:limit]
	}
	recs := make([]domain.Recommendation, 0, len(top))
	for _, p := range top {
		score := p.proba
		if maxProba > minProba {
			score = (p.proba - minProba) / (maxProba - minProba)
		}
		recs = append(recs, domain.Recommendation{
			ProductID: p.productID,
			Score:     round3(score),
			Reason:    reasonMLPredict,
			Strategy:  StrategyMLPredict,
		})
	}
	return recs
}
