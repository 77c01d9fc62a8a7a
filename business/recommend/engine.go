package recommend

import (
	"math/rand"
	"time"

	"wiseBuy/domain"
)

// Engine runs the five scoring strategies over one input snapshot and
// merges their output. It holds no mutable state: every call is a pure
// function of its input except for the injected random source used by the
// classifier's negative sampling.
type Engine struct {
	cfg Config

	// Now overrides the clock; nil means time.Now. Tests set it, production
	// never does.
	Now func() time.Time
}

func NewEngine(cfg Config) Engine {
	if cfg.PerStrategy <= 0 {
		cfg.PerStrategy = defaultPerStrategy
	}
	if cfg.PopularityDecayDays <= 0 {
		cfg.PopularityDecayDays = defaultPopularityDecayDays
	}
	return Engine{cfg: cfg}
}

func (e Engine) now() time.Time {
	if e.Now != nil {
		return e.Now()
	}
	return time.Now()
}

// Recommend merges the five strategies in a fixed evaluation order:
// buy_again, ml_predict, restock, bought_together, popular. Each strategy
// is fetched with a 3x inflated limit to absorb cart/duplicate filtering,
// then admitted in rank order until its per-strategy cap is reached. The
// first strategy to claim a product wins; the output is the concatenation
// of per-strategy slices, not a global re-sort. Changing the order changes
// which strategy wins contested products.
func (e Engine) Recommend(input domain.RecommendationInput, rng *rand.Rand) []domain.Recommendation {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	perStrategy := input.PerCategory
	if perStrategy <= 0 {
		perStrategy = e.cfg.PerStrategy
	}
	fetchLimit := perStrategy * 3

	cartSet := make(map[string]struct{}, len(input.CartProductIDs))
	for _, pid := range input.CartProductIDs {
		cartSet[pid] = struct{}{}
	}

	seen := make(map[string]struct{})
	final := make([]domain.Recommendation, 0, perStrategy*5)

	admit := func(recs []domain.Recommendation, max int) {
		added := 0
		for _, rec := range recs {
			if added >= max {
				break
			}
			if _, inCart := cartSet[rec.ProductID]; inCart {
				continue
			}
			if _, dup := seen[rec.ProductID]; dup {
				continue
			}
			seen[rec.ProductID] = struct{}{}
			final = append(final, rec)
			added++
		}
	}

	admit(e.buyAgain(input.UserHistory, fetchLimit), perStrategy)
	admit(e.mlPredict(input.UserHistory, input.AllPurchases, input.AllProducts, fetchLimit, rng), perStrategy)
	admit(e.restockItems(input.UserHistory, fetchLimit), perStrategy)
	admit(e.boughtTogether(input.CartProductIDs, input.AllShoppingLists, fetchLimit, input.ProductsData), perStrategy)
	admit(e.popularItems(input.AllPurchases, fetchLimit), perStrategy)

	return final
}
