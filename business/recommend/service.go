package recommend

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"wiseBuy/domain"
	"wiseBuy/pkg/logger"
)

// ---- Repository interfaces ----

type PurchaseRepository interface {
	FindByUser(ctx context.Context, userID uint) ([]domain.PurchaseEvent, error)
	FindAll(ctx context.Context) ([]domain.PurchaseEvent, error)
	SaveEvent(ctx context.Context, event domain.PurchaseEvent) error
}

type ShoppingListRepository interface {
	FindAllLists(ctx context.Context) ([]domain.ShoppingList, error)
	AddEntry(ctx context.Context, entry *domain.ShoppingListEntry) error
}

type ProductRepository interface {
	FindAll(ctx context.Context) ([]domain.Product, error)
}

// ---- Usecase / Service ----

// Service assembles the engine input snapshot from repositories and runs
// the engine. The engine itself stays a pure function; all I/O lives here.
type Service struct {
	purchaseRepo PurchaseRepository
	listRepo     ShoppingListRepository
	productRepo  ProductRepository
	engine       Engine
}

func NewService(
	purchaseRepo PurchaseRepository,
	listRepo ShoppingListRepository,
	productRepo ProductRepository,
	engine Engine,
) *Service {
	return &Service{
		purchaseRepo: purchaseRepo,
		listRepo:     listRepo,
		productRepo:  productRepo,
		engine:       engine,
	}
}

// Recommend loads one user's snapshot (history, group lists, catalog,
// global purchases) and returns the merged recommendation set.
func (s *Service) Recommend(
	ctx context.Context,
	userID uint,
	cartProductIDs []string,
	perCategory int,
) ([]domain.Recommendation, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	userEvents, err := s.purchaseRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load user history: %w", err)
	}
	allEvents, err := s.purchaseRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load global purchases: %w", err)
	}
	lists, err := s.listRepo.FindAllLists(ctx)
	if err != nil {
		return nil, fmt.Errorf("load shopping lists: %w", err)
	}
	products, err := s.productRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load products: %w", err)
	}

	allProducts := make([]string, 0, len(products))
	productsData := make([]domain.ProductData, 0, len(products))
	for _, p := range products {
		if p.ProductID == "" {
			continue
		}
		allProducts = append(allProducts, p.ProductID)
		productsData = append(productsData, domain.ProductData{
			ProductID: p.ProductID,
			Category:  p.Category,
		})
	}

	input := domain.RecommendationInput{
		CartProductIDs:   cartProductIDs,
		AllShoppingLists: lists,
		UserHistory:      purchaseRecords(userEvents),
		AllPurchases:     purchaseRecords(allEvents),
		AllProducts:      allProducts,
		ProductsData:     productsData,
		PerCategory:      perCategory,
	}

	// fresh source per call: *rand.Rand is not safe for concurrent requests
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	recs := s.engine.Recommend(input, rng)

	tid := TraceIDFromContext(ctx)
	logger.Debug("recommend",
		"trace_id", tid,
		"user_id", userID,
		"cart_size", len(cartProductIDs),
		"history_size", len(userEvents),
		"result_count", len(recs),
	)

	for _, rec := range recs {
		StrategyContributionsTotal.WithLabelValues(rec.Strategy).Inc()
	}

	return recs, nil
}

// LogPurchase records one purchase event; events are the raw material every
// strategy scores from.
func (s *Service) LogPurchase(ctx context.Context, event domain.PurchaseEvent) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}
	if event.ProductID == "" {
		return fmt.Errorf("product_id is required")
	}
	if event.PurchasedAt.IsZero() {
		event.PurchasedAt = time.Now()
	}

	if err := s.purchaseRepo.SaveEvent(ctx, event); err != nil {
		return fmt.Errorf("failed to save purchase event: %w", err)
	}

	tid := TraceIDFromContext(ctx)
	logger.Debug("purchase_logged",
		"trace_id", tid,
		"user_id", event.UserID,
		"product_id", event.ProductID,
		"category", event.Category,
	)

	PurchaseEventsTotal.Inc()
	return nil
}

// LogShoppingList stores one group list snapshot; lists are the raw material
// for co-occurrence scoring.
func (s *Service) LogShoppingList(ctx context.Context, listID, groupID string, productIDs []string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}
	if listID == "" {
		return fmt.Errorf("list_id is required")
	}
	if len(productIDs) == 0 {
		return fmt.Errorf("at least one product is required")
	}

	for _, pid := range productIDs {
		if pid == "" {
			continue
		}
		entry := domain.ShoppingListEntry{
			ListID:    listID,
			GroupID:   groupID,
			ProductID: pid,
		}
		if err := s.listRepo.AddEntry(ctx, &entry); err != nil {
			return fmt.Errorf("failed to save shopping list entry: %w", err)
		}
	}

	tid := TraceIDFromContext(ctx)
	logger.Debug("shopping_list_logged",
		"trace_id", tid,
		"list_id", listID,
		"item_count", len(productIDs),
	)

	return nil
}

func purchaseRecords(events []domain.PurchaseEvent) []domain.PurchaseRecord {
	records := make([]domain.PurchaseRecord, 0, len(events))
	for _, ev := range events {
		records = append(records, domain.PurchaseRecord{
			ProductID:   ev.ProductID,
			PurchasedAt: ev.PurchasedAt.Format(time.RFC3339),
			Category:    ev.Category,
		})
	}
	return records
}
