package recommend

import (
	"wiseBuy/domain"
)

const StrategyBoughtTogether = "bought_together"

const reasonBoughtTogether = "משלים את הסל שלך" // "Complements your cart"

// categoryFallback is the sentinel category for catalog entries without one.
const categoryFallback = "אחר" // "other"

// complementaryCategories maps a category to categories that pair well with
// it (dairy -> bread/snacks/produce, meat -> produce/canned/bread, ...).
// Static configuration carried over from the catalog's Hebrew taxonomy.
var complementaryCategories = map[string][]string{
	"מוצרי קירור וביצים": {"לחמים ומאפים", "חטיפים וממתקים", "ירקות ופירות"},
	"לחמים ומאפים":       {"מוצרי קירור וביצים", "מעדנייה וסלטים", "עוף בשר ודגים"},
	"עוף בשר ודגים":      {"ירקות ופירות", "שימורים", "לחמים ומאפים"},
	"ירקות ופירות":       {"עוף בשר ודגים", "מוצרי קירור וביצים", "שימורים"},
	"משקאות ויין":        {"חטיפים וממתקים", "מעדנייה וסלטים"},
	"חטיפים וממתקים":     {"משקאות ויין", "מוצרי קירור וביצים"},
	"שימורים":            {"לחמים ומאפים", "עוף בשר ודגים", "ירקות ופירות"},
	"מעדנייה וסלטים":     {"לחמים ומאפים", "משקאות ויין"},
	"הכל לבית":           {"פארם ותינוקות"},
	"פארם ותינוקות":      {"הכל לבית"},
}

const (
	complementaryBoost = 3.0
	sameCategoryBoost  = 0.8
)

// coCounter is a symmetric pairwise co-occurrence count that remembers the
// order in which neighbors were first seen, keeping tie ranks stable.
type coCounter struct {
	counts map[string]map[string]int
	order  map[string][]string
}

func newCoCounter() *coCounter {
	return &coCounter{
		counts: make(map[string]map[string]int),
		order:  make(map[string][]string),
	}
}

func (c *coCounter) bump(a, b string) {
	m, ok := c.counts[a]
	if !ok {
		m = make(map[string]int)
		c.counts[a] = m
	}
	if _, ok := m[b]; !ok {
		c.order[a] = append(c.order[a], b)
	}
	m[b]++
}

// boughtTogether scores non-cart products by how often they co-occur with
// cart items across all shopping lists, boosting complementary categories
// and damping categories the cart already covers.
func (e Engine) boughtTogether(
	cartProductIDs []string,
	allShoppingLists []domain.ShoppingList,
	limit int,
	productsData []domain.ProductData,
) []domain.Recommendation {
	if len(cartProductIDs) == 0 || len(allShoppingLists) == 0 {
		return nil
	}

	productCategories := make(map[string]string, len(productsData))
	for _, p := range productsData {
		pid := p.ResolvedID()
		if pid == "" {
			continue
		}
		cat := p.Category
		if cat == "" {
			cat = categoryFallback
		}
		productCategories[pid] = cat
	}

	cartCategories := make(map[string]struct{})
	for _, pid := range cartProductIDs {
		if cat, ok := productCategories[pid]; ok {
			cartCategories[cat] = struct{}{}
		}
	}

	// complementary categories not already represented in the cart
	targetCategories := make(map[string]struct{})
	for cat := range cartCategories {
		for _, comp := range complementaryCategories[cat] {
			targetCategories[comp] = struct{}{}
		}
	}
	for cat := range cartCategories {
		delete(targetCategories, cat)
	}

	// O(n^2) per list in list size; lists are small
	co := newCoCounter()
	for _, list := range allShoppingLists {
		ids := make([]string, 0, len(list.Items))
		for _, item := range list.Items {
			if item.ProductID != "" {
				ids = append(ids, item.ProductID)
			}
		}
		for i, a := range ids {
			for _, b := range ids[i+1:] {
				co.bump(a, b)
				co.bump(b, a)
			}
		}
	}

	cartSet := make(map[string]struct{}, len(cartProductIDs))
	for _, pid := range cartProductIDs {
		cartSet[pid] = struct{}{}
	}

	scores := newOrderedScores()
	for _, cartPID := range cartProductIDs {
		for _, other := range co.order[cartPID] {
			if _, inCart := cartSet[other]; inCart {
				continue
			}
			boost := 1.0
			otherCategory := productCategories[other]
			if _, ok := targetCategories[otherCategory]; ok && otherCategory != "" {
				boost = complementaryBoost
			} else if _, ok := cartCategories[otherCategory]; ok && otherCategory != "" {
				boost = sameCategoryBoost
			}
			scores.add(other, float64(co.counts[cartPID][other])*boost)
		}
	}

	if scores.len() == 0 {
		return nil
	}
	maxScore := scores.max()
	if maxScore == 0 {
		maxScore = 1
	}

	top := scores.topN(limit)
	recs := make([]domain.Recommendation, 0, len(top))
	for _, entry := range top {
		recs = append(recs, domain.Recommendation{
			ProductID: entry.productID,
			Score:     round3(entry.score / maxScore),
			Reason:    reasonBoughtTogether,
			Strategy:  StrategyBoughtTogether,
		})
	}
	return recs
}
