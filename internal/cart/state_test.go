package cart

import (
	"testing"

	"github.com/pawmart/storefront-backend/internal/catalog"
	"github.com/shopspring/decimal"
)

func product(id string, price int64) catalog.Product {
	return catalog.Product{
		ID:    id,
		Name:  "Product " + id,
		Price: decimal.NewFromInt(price),
	}
}

func TestAddItemMergesSameLine(t *testing.T) {
	s := NewState()

	if !s.AddItem(product("1", 89), 2, "Medium", "White") {
		t.Fatal("expected add to apply")
	}
	if !s.AddItem(product("1", 89), 3, "Medium", "White") {
		t.Fatal("expected merge to apply")
	}

	if len(s.Items) != 1 {
		t.Fatalf("expected 1 line got %d", len(s.Items))
	}
	if s.Items[0].Quantity != 5 {
		t.Fatalf("expected merged quantity 5 got %d", s.Items[0].Quantity)
	}
	if s.Items[0].ID != "1-Medium-White" {
		t.Fatalf("unexpected line id %q", s.Items[0].ID)
	}
}

func TestAddItemDistinctVariantsAreSeparateLines(t *testing.T) {
	s := NewState()
	s.AddItem(product("1", 89), 1, "Medium", "White")
	s.AddItem(product("1", 89), 1, "Large", "White")
	s.AddItem(product("1", 89), 1, "Medium", "Black")

	if len(s.Items) != 3 {
		t.Fatalf("expected 3 lines got %d", len(s.Items))
	}
}

func TestDerivedTotalsAfterEveryMutation(t *testing.T) {
	s := NewState()
	s.AddItem(product("1", 89), 2, "Medium", "White")
	s.AddItem(product("5", 45), 1, "Small", "Natural")

	if want := decimal.NewFromInt(223); !s.Total.Equal(want) {
		t.Fatalf("expected total %s got %s", want, s.Total)
	}
	if s.ItemCount != 3 {
		t.Fatalf("expected item count 3 got %d", s.ItemCount)
	}

	if !s.UpdateQuantity("1-Medium-White", 1) {
		t.Fatal("expected update to apply")
	}
	if want := decimal.NewFromInt(134); !s.Total.Equal(want) {
		t.Fatalf("expected total %s got %s", want, s.Total)
	}
	if s.ItemCount != 2 {
		t.Fatalf("expected item count 2 got %d", s.ItemCount)
	}

	if !s.RemoveItem("5-Small-Natural") {
		t.Fatal("expected remove to apply")
	}
	if want := decimal.NewFromInt(89); !s.Total.Equal(want) {
		t.Fatalf("expected total %s got %s", want, s.Total)
	}
	if s.ItemCount != 1 {
		t.Fatalf("expected item count 1 got %d", s.ItemCount)
	}
}

func TestRemoveItemMissingIDIsNoOp(t *testing.T) {
	s := NewState()
	s.AddItem(product("1", 89), 1, "Medium", "White")

	if s.RemoveItem("nope-Medium-White") {
		t.Fatal("expected missing id to report not applied")
	}
	if len(s.Items) != 1 || s.ItemCount != 1 {
		t.Fatal("expected state untouched after no-op remove")
	}
}

func TestUpdateQuantityStoresZeroVerbatim(t *testing.T) {
	s := NewState()
	s.AddItem(product("1", 89), 2, "Medium", "White")

	if !s.UpdateQuantity("1-Medium-White", 0) {
		t.Fatal("expected update to apply")
	}
	if len(s.Items) != 1 {
		t.Fatal("expected zero-quantity line to remain")
	}
	if s.Items[0].Quantity != 0 {
		t.Fatalf("expected quantity 0 got %d", s.Items[0].Quantity)
	}
	if !s.Total.Equal(decimal.Zero) || s.ItemCount != 0 {
		t.Fatalf("expected zeroed totals got %s / %d", s.Total, s.ItemCount)
	}
}

func TestUpdateQuantityMissingIDIsNoOp(t *testing.T) {
	s := NewState()
	if s.UpdateQuantity("1-Medium-White", 4) {
		t.Fatal("expected missing id to report not applied")
	}
}

func TestClearZeroesEverythingButVisibility(t *testing.T) {
	s := NewState()
	s.AddItem(product("1", 89), 2, "Medium", "White")
	s.SetOpen(true)

	if !s.Clear() {
		t.Fatal("expected clear to apply")
	}
	if len(s.Items) != 0 || !s.Total.Equal(decimal.Zero) || s.ItemCount != 0 {
		t.Fatal("expected empty cart after clear")
	}
	if !s.IsOpen {
		t.Fatal("expected clear to leave the visibility flag alone")
	}
}

func TestToggleAndSetOpen(t *testing.T) {
	s := NewState()
	s.Toggle()
	if !s.IsOpen {
		t.Fatal("expected toggle to open the cart")
	}
	s.Toggle()
	if s.IsOpen {
		t.Fatal("expected second toggle to close the cart")
	}
	s.SetOpen(true)
	s.SetOpen(true)
	if !s.IsOpen {
		t.Fatal("expected set open to be idempotent")
	}
}

func TestSnapshotIsIndependent(t *testing.T) {
	s := NewState()
	s.AddItem(product("1", 89), 2, "Medium", "White")

	snap := s.Snapshot()
	snap.Items[0].Quantity = 99
	snap.Items[0].Product.Name = "mutated"

	if s.Items[0].Quantity != 2 {
		t.Fatal("expected snapshot mutation not to leak into state")
	}
	if s.Items[0].Product.Name == "mutated" {
		t.Fatal("expected snapshot product copy to be independent")
	}
}
