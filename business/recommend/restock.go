package recommend

import (
	"math"
	"sort"
	"strings"
	"time"

	"wiseBuy/domain"
)

const StrategyRestock = "restock"

// Reason tiers by overdue ratio.
const (
	reasonRestockUrgent   = "כדאי להשלים מלאי!" // "Time to restock!"
	reasonRestockDepleted = "אולי נגמר?"        // "Might be running low?"
	reasonRestockSoon     = "בקרוב יגמר"        // "Running low soon"
)

const (
	restockMinCycleDays     = 3.0
	restockMaxCycleDays     = 90.0
	restockDefaultCycleDays = 21.0
	restockOverdueThreshold = 0.7
	restockOverdueCap       = 2.0
)

// defaultRestockCycles maps category substrings to default restock cycles
// in days. Matching is first-match-wins against the lower-cased category,
// so this is an ordered slice, not a map: reordering it changes behavior.
var defaultRestockCycles = []struct {
	key  string
	days float64
}{
	{"dairy", 7}, // milk, cheese, yogurt
	{"חלב", 7},
	{"גבינות", 10},
	{"bread", 5}, // bread, bakery
	{"לחם", 5},
	{"מאפים", 5},
	{"vegetables", 7}, // fresh produce
	{"fruits", 7},
	{"ירקות", 7},
	{"פירות", 7},
	{"meat", 10}, // meat, poultry
	{"בשר", 10},
	{"eggs", 14},
	{"ביצים", 14},
	{"cleaning", 30}, // cleaning supplies
	{"ניקיון", 30},
	{"paper", 30}, // toilet paper, paper towels
	{"נייר", 30},
	{"hygiene", 30}, // personal hygiene
	{"היגיינה", 30},
	{"snacks", 14}, // snacks, chips
	{"חטיפים", 14},
	{"beverages", 14}, // drinks
	{"משקאות", 14},
	{"frozen", 21}, // frozen foods
	{"קפואים", 21},
	{"canned", 60}, // canned goods
	{"שימורים", 60},
}

func defaultCycleForCategory(category string) float64 {
	category = strings.ToLower(category)
	for _, entry := range defaultRestockCycles {
		if strings.Contains(category, entry.key) {
			return entry.days
		}
	}
	return restockDefaultCycleDays
}

// restockItems recommends products that are due for restocking. With two or
// more purchases the personal cycle is the mean gap between consecutive
// purchases clamped to [3, 90] days; with a single purchase a category
// default applies. A product is emitted only when it is at least 70%
// through its estimated cycle.
func (e Engine) restockItems(userHistory []domain.PurchaseRecord, limit int) []domain.Recommendation {
	if len(userHistory) == 0 {
		return nil
	}
	now := e.now()

	purchases := make(map[string][]time.Time)
	categories := make(map[string]string)
	order := make([]string, 0, len(userHistory))

	for _, purchase := range userHistory {
		pid := purchase.ProductID
		if pid == "" {
			continue
		}
		if _, ok := purchases[pid]; !ok {
			order = append(order, pid)
		}
		purchases[pid] = append(purchases[pid], parsePurchaseTime(purchase.PurchasedAt, now))
		if purchase.Category != "" {
			categories[pid] = strings.ToLower(purchase.Category)
		}
	}

	scores := newOrderedScores()
	reasons := make(map[string]string)

	for _, pid := range order {
		dates := purchases[pid]
		sort.Slice(dates, func(i, j int) bool { return dates[i].After(dates[j]) })

		lastPurchase := dates[0]
		daysSincePurchase := daysBetween(now, lastPurchase)

		var avgCycle float64
		if len(dates) >= 2 {
			total := 0.0
			for i := 0; i < len(dates)-1; i++ {
				total += daysBetween(dates[i], dates[i+1])
			}
			avgCycle = total / float64(len(dates)-1)
			avgCycle = math.Max(restockMinCycleDays, math.Min(restockMaxCycleDays, avgCycle))
		} else {
			avgCycle = defaultCycleForCategory(categories[pid])
		}

		overdueRatio := daysSincePurchase / avgCycle
		if overdueRatio < restockOverdueThreshold {
			continue
		}

		scores.add(pid, math.Min(overdueRatio, restockOverdueCap)/restockOverdueCap)
		switch {
		case overdueRatio >= 1.5:
			reasons[pid] = reasonRestockUrgent
		case overdueRatio >= 1.0:
			reasons[pid] = reasonRestockDepleted
		default:
			reasons[pid] = reasonRestockSoon
		}
	}

	top := scores.topN(limit)
	recs := make([]domain.Recommendation, 0, len(top))
	for _, entry := range top {
		recs = append(recs, domain.Recommendation{
			ProductID: entry.productID,
			Score:     round3(entry.score),
			Reason:    reasons[entry.productID],
			Strategy:  StrategyRestock,
		})
	}
	return recs
}
