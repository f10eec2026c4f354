package crm

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"EstateDesk/entity"
)

func newTestStore() *Store {
	store := NewStore(slog.New(slog.NewTextHandler(io.Discard, nil)))
	store.SetClock(func() time.Time {
		return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	})
	return store
}

// assertCountsInvariant recomputes the projection from scratch and
// compares it to the derived counts carried by the state.
func assertCountsInvariant(t *testing.T, s State) {
	t.Helper()

	expected := entity.CrmCounts{Leads: len(s.Leads)}
	for _, msg := range s.Inbox {
		if msg.Status != "Closed" {
			expected.Inbox++
		}
	}
	for _, task := range s.Tasks {
		if task.Status != "done" {
			expected.Tasks++
		}
	}
	assert.Equal(t, expected, s.Counts, "derived counts must never be stale")
}

func TestCountsInvariantAfterEveryAction(t *testing.T) {
	store := newTestStore()
	store.LoadSeed()
	assertCountsInvariant(t, store.Snapshot())

	actions := []Action{
		{Type: ActionAdd, Collection: CollectionLeads, Item: entity.CrmLead{ID: "L-9", Name: "New Lead", Status: "New"}},
		{Type: ActionAdd, Collection: CollectionInbox, Item: entity.InboxMessage{ID: "M-9", From: "x@example.com", Status: "Open"}},
		{Type: ActionUpdate, Collection: CollectionInbox, Item: entity.InboxMessage{ID: "M-9", From: "x@example.com", Status: "Closed"}},
		{Type: ActionAdd, Collection: CollectionTasks, Item: entity.Task{ID: "T-9", Title: "Call back", Status: "open"}},
		{Type: ActionUpdate, Collection: CollectionTasks, Item: entity.Task{ID: "T-9", Title: "Call back", Status: "done"}},
		{Type: ActionRemove, Collection: CollectionLeads, ID: "L-9"},
		{Type: ActionRemove, Collection: CollectionTasks, ID: "T-5003"},
		{Type: ActionSetLeadStatus, ID: "L-1001", Status: "Contacted"},
		{Type: ActionMergeContacts, KeepID: "C-2001", MergeIDs: []string{"C-2002"}},
		{Type: ActionRemove, Collection: CollectionInbox, ID: "M-4001"},
	}

	for _, action := range actions {
		state := store.Dispatch(action)
		assertCountsInvariant(t, state)
	}
}

func TestCountsDefinitions(t *testing.T) {
	store := newTestStore()
	store.LoadSeed()
	state := store.Snapshot()

	// seed: 3 leads, 2 open inbox (1 Closed), 2 open tasks (1 done)
	assert.Equal(t, 3, state.Counts.Leads)
	assert.Equal(t, 2, state.Counts.Inbox)
	assert.Equal(t, 2, state.Counts.Tasks)
}

func TestLoadMarksCollectionLoaded(t *testing.T) {
	store := newTestStore()

	state := store.Snapshot()
	assert.False(t, state.Loaded[CollectionLeads])
	assert.Zero(t, state.Counts.Leads)

	store.LoadSeed()
	state = store.Snapshot()
	for _, col := range []Collection{CollectionLeads, CollectionContacts, CollectionDeals, CollectionInbox, CollectionTasks} {
		assert.True(t, state.Loaded[col], "collection %s should be loaded", col)
	}
}

func TestReduceDoesNotMutateInput(t *testing.T) {
	before := State{
		Leads:  []entity.CrmLead{{ID: "L-1", Name: "A", Status: "New"}},
		Loaded: map[Collection]bool{CollectionLeads: true},
	}
	before.Counts = countsOf(before)

	after := Reduce(before, Action{Type: ActionRemove, Collection: CollectionLeads, ID: "L-1"})

	assert.Len(t, before.Leads, 1, "input state must stay untouched")
	assert.Empty(t, after.Leads)
	assert.Equal(t, 1, before.Counts.Leads)
	assert.Zero(t, after.Counts.Leads)
}

func TestMergeContactsKeepFirstFold(t *testing.T) {
	store := newTestStore()
	store.Dispatch(Action{Type: ActionLoad, Collection: CollectionContacts, Items: []entity.Contact{
		{ID: "C1", Name: "Ana", Company: "Acme", Tags: []string{"lead"}},
		{ID: "C2", Name: "Ana D.", Company: "", Tags: []string{"warm"}, Notes: "call back"},
	}})

	state := store.Dispatch(Action{Type: ActionMergeContacts, KeepID: "C1", MergeIDs: []string{"C1", "C2"}})

	require.Len(t, state.Contacts, 1)
	merged := state.Contacts[0]
	assert.Equal(t, "C1", merged.ID)
	assert.Equal(t, "Acme", merged.Company)
	assert.Equal(t, []string{"lead", "warm"}, merged.Tags)
	assert.Equal(t, "call back", merged.Notes)
}

func TestMergeContactsFirstNonEmptyWinsAndNotesConcatenate(t *testing.T) {
	store := newTestStore()
	store.Dispatch(Action{Type: ActionLoad, Collection: CollectionContacts, Items: []entity.Contact{
		{ID: "C1", Name: "Keep", Email: "", LastActivity: "", Notes: "first"},
		{ID: "C2", Name: "Mid", Email: "mid@example.com", LastActivity: "yesterday", Notes: "second"},
		{ID: "C3", Name: "Last", Email: "last@example.com", LastActivity: "today", Notes: "third"},
	}})

	state := store.Dispatch(Action{Type: ActionMergeContacts, KeepID: "C1", MergeIDs: []string{"C2", "C3"}})

	require.Len(t, state.Contacts, 1)
	merged := state.Contacts[0]
	assert.Equal(t, "Keep", merged.Name, "keep record's non-empty fields win")
	assert.Equal(t, "mid@example.com", merged.Email, "first non-empty in fold order")
	assert.Equal(t, "yesterday", merged.LastActivity)
	assert.Equal(t, "first\nsecond\nthird", merged.Notes)
}

func TestMergeContactsDedupesTags(t *testing.T) {
	store := newTestStore()
	store.Dispatch(Action{Type: ActionLoad, Collection: CollectionContacts, Items: []entity.Contact{
		{ID: "C1", Name: "A", Tags: []string{"vip", "buyer"}},
		{ID: "C2", Name: "B", Tags: []string{"buyer", "warm"}},
	}})

	state := store.Dispatch(Action{Type: ActionMergeContacts, KeepID: "C1", MergeIDs: []string{"C2"}})

	require.Len(t, state.Contacts, 1)
	assert.Equal(t, []string{"vip", "buyer", "warm"}, state.Contacts[0].Tags)
}

func TestMergeContactsLeavesUnselectedAlone(t *testing.T) {
	store := newTestStore()
	store.Dispatch(Action{Type: ActionLoad, Collection: CollectionContacts, Items: []entity.Contact{
		{ID: "C1", Name: "A"},
		{ID: "C2", Name: "B"},
		{ID: "C3", Name: "C"},
	}})

	state := store.Dispatch(Action{Type: ActionMergeContacts, KeepID: "C1", MergeIDs: []string{"C2"}})

	require.Len(t, state.Contacts, 2)
	assert.Equal(t, "C1", state.Contacts[0].ID)
	assert.Equal(t, "C3", state.Contacts[1].ID)
}

func TestMergeContactsUnknownKeepIsNoop(t *testing.T) {
	store := newTestStore()
	store.Dispatch(Action{Type: ActionLoad, Collection: CollectionContacts, Items: []entity.Contact{
		{ID: "C1", Name: "A"},
	}})

	state := store.Dispatch(Action{Type: ActionMergeContacts, KeepID: "missing", MergeIDs: []string{"C1"}})
	assert.Len(t, state.Contacts, 1)
}

func TestUpdateReplacesById(t *testing.T) {
	store := newTestStore()
	store.LoadSeed()

	state := store.Dispatch(Action{Type: ActionUpdate, Collection: CollectionDeals, Item: entity.Deal{
		ID: "D-3001", Title: "Alfama apartment sale", ContactID: "C-2001", Value: 390000, Stage: "Closing",
	}})

	for _, deal := range state.Deals {
		if deal.ID == "D-3001" {
			assert.Equal(t, "Closing", deal.Stage)
			assert.Equal(t, float64(390000), deal.Value)
		}
	}
}

func TestRemoveUnknownIdIsNoop(t *testing.T) {
	store := newTestStore()
	store.LoadSeed()
	before := store.Snapshot()

	state := store.Dispatch(Action{Type: ActionRemove, Collection: CollectionDeals, ID: "missing"})
	assert.Equal(t, len(before.Deals), len(state.Deals))
	assertCountsInvariant(t, state)
}

func TestSetLeadStatus(t *testing.T) {
	store := newTestStore()
	store.LoadSeed()

	state := store.Dispatch(Action{Type: ActionSetLeadStatus, ID: "L-1003", Status: "Contacted"})

	for _, lead := range state.Leads {
		if lead.ID == "L-1003" {
			assert.Equal(t, "Contacted", lead.Status)
		}
	}
	// leads count is the list length, independent of status
	assert.Equal(t, 3, state.Counts.Leads)
}
