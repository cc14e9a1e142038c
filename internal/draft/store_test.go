package draft

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ikaro-souza/warlike-spiders/internal/domain"
	"github.com/ikaro-souza/warlike-spiders/internal/storage"
)

func newTestStore() *Store {
	return NewStore("orderCreationData:test", storage.NewMemory(), zap.NewNop())
}

func draftItem(itemID string, quantity int) domain.OrderItemCreationData {
	return domain.OrderItemCreationData{
		ItemID: itemID,
		Item: domain.OrderItemSnapshot{
			Name:         "Item " + itemID,
			UnitaryPrice: 10,
			Image:        "https://images.example.com/" + itemID + ".jpg",
		},
		ItemQuantity: quantity,
	}
}

func TestStore_GetDraft_Initial(t *testing.T) {
	store := newTestStore()

	_, ok := store.GetDraft()
	assert.False(t, ok)
}

func TestStore_AddItem_NoDraft(t *testing.T) {
	store := newTestStore()

	store.AddItem(draftItem("a", 1))

	_, ok := store.GetDraft()
	assert.False(t, ok, "adding before a customer context exists must not start a draft")
}

func TestStore_SetCustomer_CreatesEmptyDraft(t *testing.T) {
	store := newTestStore()

	store.SetCustomer("cus_1")

	draft, ok := store.GetDraft()
	require.True(t, ok)
	assert.Equal(t, "cus_1", draft.CustomerID)
	assert.Empty(t, draft.Items)
	assert.NotNil(t, draft.Items)
}

func TestStore_SetCustomer_RebindsExistingDraft(t *testing.T) {
	store := newTestStore()
	store.SetCustomer("cus_1")
	store.AddItem(draftItem("a", 1))

	store.SetCustomer("cus_2")

	draft, ok := store.GetDraft()
	require.True(t, ok)
	assert.Equal(t, "cus_2", draft.CustomerID)
	assert.Len(t, draft.Items, 1)
}

func TestStore_SetCustomer_Idempotent(t *testing.T) {
	store := newTestStore()
	store.SetCustomer("cus_1")
	store.SetCustomer("cus_1")

	draft, ok := store.GetDraft()
	require.True(t, ok)
	assert.Equal(t, "cus_1", draft.CustomerID)
	assert.Empty(t, draft.Items)
}

func TestStore_AddItem_AppendsAtEnd(t *testing.T) {
	store := newTestStore()
	store.SetCustomer("cus_1")

	store.AddItem(draftItem("a", 1))
	store.AddItem(draftItem("b", 2))

	draft, ok := store.GetDraft()
	require.True(t, ok)
	require.Len(t, draft.Items, 2)
	assert.Equal(t, "a", draft.Items[0].ItemID)
	assert.Equal(t, "b", draft.Items[1].ItemID)
}

func TestStore_AddItem_DuplicateIsFirstWriteWins(t *testing.T) {
	store := newTestStore()
	store.SetCustomer("cus_1")
	note := "no onions"
	first := draftItem("a", 2)
	first.Note = &note
	store.AddItem(first)

	store.AddItem(draftItem("a", 9))

	draft, ok := store.GetDraft()
	require.True(t, ok)
	require.Len(t, draft.Items, 1)
	assert.Equal(t, 2, draft.Items[0].ItemQuantity)
	require.NotNil(t, draft.Items[0].Note)
	assert.Equal(t, "no onions", *draft.Items[0].Note)
}

func TestStore_UpdateItem_ReplacesInPlace(t *testing.T) {
	store := newTestStore()
	store.SetCustomer("cus_1")
	store.AddItem(draftItem("a", 1))
	store.AddItem(draftItem("b", 1))
	store.AddItem(draftItem("c", 1))

	store.UpdateItem(draftItem("b", 7))

	draft, ok := store.GetDraft()
	require.True(t, ok)
	require.Len(t, draft.Items, 3)
	assert.Equal(t, "a", draft.Items[0].ItemID)
	assert.Equal(t, "b", draft.Items[1].ItemID)
	assert.Equal(t, 7, draft.Items[1].ItemQuantity)
	assert.Equal(t, "c", draft.Items[2].ItemID)
	assert.Equal(t, 1, draft.Items[0].ItemQuantity)
	assert.Equal(t, 1, draft.Items[2].ItemQuantity)
}

func TestStore_UpdateItem_Quantity(t *testing.T) {
	store := newTestStore()
	store.SetCustomer("cus_1")
	store.AddItem(draftItem("a", 2))

	store.UpdateItem(draftItem("a", 5))

	draft, ok := store.GetDraft()
	require.True(t, ok)
	assert.Equal(t, "cus_1", draft.CustomerID)
	require.Len(t, draft.Items, 1)
	assert.Equal(t, 5, draft.Items[0].ItemQuantity)
}

func TestStore_UpdateItem_UnknownIDIsSilentlyDropped(t *testing.T) {
	store := newTestStore()
	store.SetCustomer("cus_1")
	store.AddItem(draftItem("a", 1))

	store.UpdateItem(draftItem("zzz", 4))

	draft, ok := store.GetDraft()
	require.True(t, ok)
	require.Len(t, draft.Items, 1)
	assert.Equal(t, "a", draft.Items[0].ItemID)
	assert.Equal(t, 1, draft.Items[0].ItemQuantity)
}

func TestStore_UpdateItem_NoDraft(t *testing.T) {
	store := newTestStore()

	store.UpdateItem(draftItem("a", 1))

	_, ok := store.GetDraft()
	assert.False(t, ok)
}

func TestStore_RemoveItem_KeepsDraftAndCustomer(t *testing.T) {
	store := newTestStore()
	store.SetCustomer("cus_1")
	store.AddItem(draftItem("a", 1))
	store.AddItem(draftItem("b", 1))

	store.RemoveItem("a")

	draft, ok := store.GetDraft()
	require.True(t, ok)
	assert.Equal(t, "cus_1", draft.CustomerID)
	require.Len(t, draft.Items, 1)
	assert.Equal(t, "b", draft.Items[0].ItemID)
}

func TestStore_RemoveItem_EmptyCartIsNotNoDraft(t *testing.T) {
	store := newTestStore()
	store.SetCustomer("cus_1")
	store.AddItem(draftItem("a", 1))

	store.RemoveItem("a")

	draft, ok := store.GetDraft()
	require.True(t, ok)
	assert.Equal(t, "cus_1", draft.CustomerID)
	assert.Empty(t, draft.Items)
}

func TestStore_RemoveItem_Idempotent(t *testing.T) {
	store := newTestStore()
	store.SetCustomer("cus_1")
	store.AddItem(draftItem("a", 1))
	store.AddItem(draftItem("b", 1))

	store.RemoveItem("a")
	store.RemoveItem("a")

	draft, ok := store.GetDraft()
	require.True(t, ok)
	require.Len(t, draft.Items, 1)
	assert.Equal(t, "b", draft.Items[0].ItemID)
}

func TestStore_Clear(t *testing.T) {
	store := newTestStore()
	store.SetCustomer("cus_1")
	store.AddItem(draftItem("a", 3))

	store.Clear()

	_, ok := store.GetDraft()
	assert.False(t, ok)
}

func TestStore_Clear_WithoutDraft(t *testing.T) {
	store := newTestStore()

	store.Clear()

	_, ok := store.GetDraft()
	assert.False(t, ok)
}

func TestStore_SetDraft_OverwritesUnconditionally(t *testing.T) {
	store := newTestStore()
	store.SetCustomer("cus_1")
	store.AddItem(draftItem("a", 1))

	// A late-arriving server seed wins over local edits.
	store.SetDraft(domain.OrderCreation{
		CustomerID: "cus_2",
		Items:      []domain.OrderItemCreationData{draftItem("x", 4)},
	})

	draft, ok := store.GetDraft()
	require.True(t, ok)
	assert.Equal(t, "cus_2", draft.CustomerID)
	require.Len(t, draft.Items, 1)
	assert.Equal(t, "x", draft.Items[0].ItemID)
}

func TestStore_GetDraft_ReturnsCopy(t *testing.T) {
	store := newTestStore()
	store.SetCustomer("cus_1")
	store.AddItem(draftItem("a", 1))

	draft, ok := store.GetDraft()
	require.True(t, ok)
	draft.Items[0].ItemQuantity = 99
	draft.Items[0].Item.Name = "mutated"

	fresh, ok := store.GetDraft()
	require.True(t, ok)
	assert.Equal(t, 1, fresh.Items[0].ItemQuantity)
	assert.Equal(t, "Item a", fresh.Items[0].Item.Name)
}

func TestStore_PersistenceRoundTrip(t *testing.T) {
	stor := storage.NewMemory()
	note := "extra sauce"

	store := NewStore("orderCreationData:s1", stor, zap.NewNop())
	store.SetCustomer("cus_1")
	item := draftItem("a", 2)
	item.Note = &note
	store.AddItem(item)
	store.AddItem(draftItem("b", 1))

	// Simulated restart: a new store over the same storage and key.
	reloaded := NewStore("orderCreationData:s1", stor, zap.NewNop())

	want, ok := store.GetDraft()
	require.True(t, ok)
	got, ok := reloaded.GetDraft()
	require.True(t, ok)
	assert.Equal(t, want, got)
}

func TestStore_ClearSurvivesRestart(t *testing.T) {
	stor := storage.NewMemory()

	store := NewStore("orderCreationData:s1", stor, zap.NewNop())
	store.SetCustomer("cus_1")
	store.Clear()

	reloaded := NewStore("orderCreationData:s1", stor, zap.NewNop())
	_, ok := reloaded.GetDraft()
	assert.False(t, ok)
}

func TestStore_UndecodablePersistedDraftIsDiscarded(t *testing.T) {
	stor := storage.NewMemory()
	require.NoError(t, stor.Set("orderCreationData:s1", []byte("{not json")))

	store := NewStore("orderCreationData:s1", stor, zap.NewNop())

	_, ok := store.GetDraft()
	assert.False(t, ok)
}

func TestManager_SameSessionSameStore(t *testing.T) {
	manager := NewManager(storage.NewMemory(), zap.NewNop())

	a := manager.ForSession("s1")
	b := manager.ForSession("s1")

	assert.Same(t, a, b)
}

func TestManager_SessionsAreIsolated(t *testing.T) {
	manager := NewManager(storage.NewMemory(), zap.NewNop())

	manager.ForSession("s1").SetCustomer("cus_1")

	_, ok := manager.ForSession("s2").GetDraft()
	assert.False(t, ok)

	draft, ok := manager.ForSession("s1").GetDraft()
	require.True(t, ok)
	assert.Equal(t, "cus_1", draft.CustomerID)
}
