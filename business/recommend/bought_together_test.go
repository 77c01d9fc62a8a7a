//go:build !integration

package recommend

import (
	"testing"

	"wiseBuy/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func listOf(ids ...string) domain.ShoppingList {
	items := make([]domain.ShoppingListItemRef, 0, len(ids))
	for _, id := range ids {
		items = append(items, domain.ShoppingListItemRef{ProductID: id})
	}
	return domain.ShoppingList{Items: items}
}

func TestBoughtTogether_CoOccurrenceNormalization(t *testing.T) {
	e := NewEngine(DefaultConfig())

	lists := []domain.ShoppingList{
		listOf("x", "y"),
		listOf("x", "y"),
	}

	recs := e.boughtTogether([]string{"x"}, lists, 10, nil)
	require.Len(t, recs, 1)
	assert.Equal(t, "y", recs[0].ProductID)
	assert.Equal(t, 1.0, recs[0].Score)
	assert.Equal(t, StrategyBoughtTogether, recs[0].Strategy)
	assert.NotEmpty(t, recs[0].Reason)
}

func TestBoughtTogether_ComplementaryCategoryBoost(t *testing.T) {
	e := NewEngine(DefaultConfig())

	products := []domain.ProductData{
		{ProductID: "milk", Category: "מוצרי קירור וביצים"},
		{ProductID: "bread", Category: "לחמים ומאפים"},
		{ProductID: "misc"},
		{ProductID: "cheese", Category: "מוצרי קירור וביצים"},
	}
	lists := []domain.ShoppingList{
		listOf("milk", "bread"),
		listOf("milk", "misc"),
		listOf("milk", "cheese"),
	}

	recs := e.boughtTogether([]string{"milk"}, lists, 10, products)
	require.Len(t, recs, 3)

	// complementary category gets a 3x boost, same category is damped,
	// unknown stays neutral
	assert.Equal(t, "bread", recs[0].ProductID)
	assert.Equal(t, 1.0, recs[0].Score)

	assert.Equal(t, "misc", recs[1].ProductID)
	assert.Equal(t, round3(1.0/3.0), recs[1].Score)

	assert.Equal(t, "cheese", recs[2].ProductID)
	assert.Equal(t, round3(0.8/3.0), recs[2].Score)
}

func TestBoughtTogether_ScoresSumAcrossCartItems(t *testing.T) {
	e := NewEngine(DefaultConfig())

	lists := []domain.ShoppingList{
		listOf("a", "c"),
		listOf("b", "c"),
		listOf("a", "d"),
	}

	recs := e.boughtTogether([]string{"a", "b"}, lists, 10, nil)
	require.Len(t, recs, 2)
	// c co-occurs with both cart items, d with one
	assert.Equal(t, "c", recs[0].ProductID)
	assert.Equal(t, 1.0, recs[0].Score)
	assert.Equal(t, "d", recs[1].ProductID)
	assert.Equal(t, 0.5, recs[1].Score)
}

func TestBoughtTogether_ExcludesCartAndTruncates(t *testing.T) {
	e := NewEngine(DefaultConfig())

	lists := []domain.ShoppingList{
		listOf("a", "b", "c", "d"),
	}

	recs := e.boughtTogether([]string{"a"}, lists, 2, nil)
	require.Len(t, recs, 2)
	for _, rec := range recs {
		assert.NotEqual(t, "a", rec.ProductID)
	}
}

func TestBoughtTogether_EmptyInputs(t *testing.T) {
	e := NewEngine(DefaultConfig())

	assert.Empty(t, e.boughtTogether(nil, []domain.ShoppingList{listOf("a", "b")}, 10, nil))
	assert.Empty(t, e.boughtTogether([]string{"a"}, nil, 10, nil))
	assert.Empty(t, e.boughtTogether([]string{"a"}, []domain.ShoppingList{listOf("a")}, 10, nil))
}
