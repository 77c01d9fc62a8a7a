//go:build !integration

package recommend

import (
	"context"
	"errors"
	"testing"
	"time"

	"wiseBuy/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePurchaseRepo struct {
	userEvents []domain.PurchaseEvent
	allEvents  []domain.PurchaseEvent
	saved      []domain.PurchaseEvent

	findByUserErr error
	saveErr       error
}

func (f *fakePurchaseRepo) FindByUser(_ context.Context, _ uint) ([]domain.PurchaseEvent, error) {
	return f.userEvents, f.findByUserErr
}

func (f *fakePurchaseRepo) FindAll(_ context.Context) ([]domain.PurchaseEvent, error) {
	return f.allEvents, nil
}

func (f *fakePurchaseRepo) SaveEvent(_ context.Context, event domain.PurchaseEvent) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saved = append(f.saved, event)
	return nil
}

type fakeListRepo struct {
	lists   []domain.ShoppingList
	entries []domain.ShoppingListEntry

	addErr error
}

func (f *fakeListRepo) FindAllLists(_ context.Context) ([]domain.ShoppingList, error) {
	return f.lists, nil
}

func (f *fakeListRepo) AddEntry(_ context.Context, entry *domain.ShoppingListEntry) error {
	if f.addErr != nil {
		return f.addErr
	}
	f.entries = append(f.entries, *entry)
	return nil
}

type fakeProductRepo struct {
	products []domain.Product
}

func (f *fakeProductRepo) FindAll(_ context.Context) ([]domain.Product, error) {
	return f.products, nil
}

func eventAt(userID uint, pid string, daysAgo int, category string) domain.PurchaseEvent {
	return domain.PurchaseEvent{
		UserID:      userID,
		ProductID:   pid,
		Category:    category,
		PurchasedAt: time.Now().AddDate(0, 0, -daysAgo),
	}
}

func TestServiceRecommend(t *testing.T) {
	purchaseRepo := &fakePurchaseRepo{
		userEvents: []domain.PurchaseEvent{
			eventAt(1, "a", 40, "ניקיון"),
		},
		allEvents: []domain.PurchaseEvent{
			eventAt(1, "a", 40, "ניקיון"),
			eventAt(2, "y", 1, ""),
			eventAt(3, "z", 2, ""),
		},
	}
	listRepo := &fakeListRepo{
		lists: []domain.ShoppingList{listOf("x", "y")},
	}
	productRepo := &fakeProductRepo{
		products: []domain.Product{
			{ProductID: "a", Category: "ניקיון"},
			{ProductID: "y"},
			{ProductID: "z"},
		},
	}

	svc := NewService(purchaseRepo, listRepo, productRepo, NewEngine(DefaultConfig()))

	recs, err := svc.Recommend(context.Background(), 1, []string{"x"}, 2)
	require.NoError(t, err)
	require.NotEmpty(t, recs)

	for _, rec := range recs {
		assert.NotEqual(t, "x", rec.ProductID)
		assert.NotEmpty(t, rec.Strategy)
		assert.NotEmpty(t, rec.Reason)
	}
}

func TestServiceRecommend_RepoError(t *testing.T) {
	purchaseRepo := &fakePurchaseRepo{findByUserErr: errors.New("connection refused")}
	svc := NewService(purchaseRepo, &fakeListRepo{}, &fakeProductRepo{}, NewEngine(DefaultConfig()))

	_, err := svc.Recommend(context.Background(), 1, nil, 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load user history")
}

func TestServiceRecommend_CancelledContext(t *testing.T) {
	svc := NewService(&fakePurchaseRepo{}, &fakeListRepo{}, &fakeProductRepo{}, NewEngine(DefaultConfig()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Recommend(ctx, 1, nil, 0)
	assert.Error(t, err)
}

func TestServiceLogPurchase(t *testing.T) {
	t.Run("saves event", func(t *testing.T) {
		purchaseRepo := &fakePurchaseRepo{}
		svc := NewService(purchaseRepo, &fakeListRepo{}, &fakeProductRepo{}, NewEngine(DefaultConfig()))

		err := svc.LogPurchase(context.Background(), domain.PurchaseEvent{
			UserID:    1,
			ProductID: "a",
		})
		require.NoError(t, err)
		require.Len(t, purchaseRepo.saved, 1)
		assert.False(t, purchaseRepo.saved[0].PurchasedAt.IsZero())
	})

	t.Run("requires product id", func(t *testing.T) {
		svc := NewService(&fakePurchaseRepo{}, &fakeListRepo{}, &fakeProductRepo{}, NewEngine(DefaultConfig()))

		err := svc.LogPurchase(context.Background(), domain.PurchaseEvent{UserID: 1})
		assert.Error(t, err)
	})

	t.Run("wraps save error", func(t *testing.T) {
		purchaseRepo := &fakePurchaseRepo{saveErr: errors.New("insert failed")}
		svc := NewService(purchaseRepo, &fakeListRepo{}, &fakeProductRepo{}, NewEngine(DefaultConfig()))

		err := svc.LogPurchase(context.Background(), domain.PurchaseEvent{UserID: 1, ProductID: "a"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "insert failed")
	})
}

func TestServiceLogShoppingList(t *testing.T) {
	t.Run("saves one entry per item", func(t *testing.T) {
		listRepo := &fakeListRepo{}
		svc := NewService(&fakePurchaseRepo{}, listRepo, &fakeProductRepo{}, NewEngine(DefaultConfig()))

		err := svc.LogShoppingList(context.Background(), "list-1", "group-1", []string{"a", "", "b"})
		require.NoError(t, err)
		require.Len(t, listRepo.entries, 2)
		assert.Equal(t, "list-1", listRepo.entries[0].ListID)
		assert.Equal(t, "group-1", listRepo.entries[0].GroupID)
		assert.Equal(t, "a", listRepo.entries[0].ProductID)
		assert.Equal(t, "b", listRepo.entries[1].ProductID)
	})

	t.Run("requires list id and items", func(t *testing.T) {
		svc := NewService(&fakePurchaseRepo{}, &fakeListRepo{}, &fakeProductRepo{}, NewEngine(DefaultConfig()))

		assert.Error(t, svc.LogShoppingList(context.Background(), "", "", []string{"a"}))
		assert.Error(t, svc.LogShoppingList(context.Background(), "list-1", "", nil))
	})

	t.Run("wraps repo error", func(t *testing.T) {
		listRepo := &fakeListRepo{addErr: errors.New("insert failed")}
		svc := NewService(&fakePurchaseRepo{}, listRepo, &fakeProductRepo{}, NewEngine(DefaultConfig()))

		err := svc.LogShoppingList(context.Background(), "list-1", "", []string{"a"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "insert failed")
	})
}
