package domain

// Recommendation is one scored candidate product produced by the engine.
type Recommendation struct {
	ProductID string  `json:"productId"`
	Score     float64 `json:"score"`
	Reason    string  `json:"reason"`
	Strategy  string  `json:"strategy"`
}

// PurchaseRecord is a single historical purchase as the engine sees it.
// PurchasedAt is kept as the raw ISO-8601 string; the engine normalizes it
// and falls back to "now" when it cannot be parsed.
type PurchaseRecord struct {
	ProductID   string `json:"productId"`
	PurchasedAt string `json:"purchasedAt"`
	Category    string `json:"category,omitempty"`
}

type ShoppingListItemRef struct {
	ProductID string `json:"productId"`
}

type ShoppingList struct {
	Items []ShoppingListItemRef `json:"items"`
}

// ProductOID is the nested id form found in legacy catalog exports.
type ProductOID struct {
	OID string `json:"$oid"`
}

// ProductData is a catalog entry with category information. The product id
// may arrive either flat (productId) or nested (_id.$oid).
type ProductData struct {
	NestedID  *ProductOID `json:"_id,omitempty"`
	ProductID string      `json:"productId,omitempty"`
	Category  string      `json:"category,omitempty"`
}

// ResolvedID returns the effective product id, preferring the nested form.
func (p ProductData) ResolvedID() string {
	if p.NestedID != nil && p.NestedID.OID != "" {
		return p.NestedID.OID
	}
	return p.ProductID
}

// RecommendationInput is the full input document for one engine invocation.
type RecommendationInput struct {
	CartProductIDs   []string         `json:"cartProductIds"`
	AllShoppingLists []ShoppingList   `json:"allShoppingLists"`
	UserHistory      []PurchaseRecord `json:"userHistory"`
	AllPurchases     []PurchaseRecord `json:"allPurchases"`
	AllProducts      []string         `json:"allProducts"`
	ProductsData     []ProductData    `json:"productsData"`
	PerCategory      int              `json:"perCategory"`
}

type RecommendationResult struct {
	Recommendations []Recommendation `json:"recommendations"`
}
