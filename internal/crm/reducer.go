package crm

import (
	"strings"

	"EstateDesk/entity"
)

// Collection names the five independent entity lists of the mock CRM.
type Collection string

const (
	CollectionLeads    Collection = "leads"
	CollectionContacts Collection = "contacts"
	CollectionDeals    Collection = "deals"
	CollectionInbox    Collection = "inbox"
	CollectionTasks    Collection = "tasks"
)

type ActionType string

const (
	ActionLoad          ActionType = "load"
	ActionAdd           ActionType = "add"
	ActionUpdate        ActionType = "update"
	ActionRemove        ActionType = "remove"
	ActionMergeContacts ActionType = "merge_contacts"
	ActionSetLeadStatus ActionType = "set_lead_status"
)

// Action is one entry of the flat dispatch table. Only the fields
// relevant to its type are set.
type Action struct {
	Type       ActionType
	Collection Collection
	Item       any      // add/update payload, typed per collection
	Items      any      // load payload, slice typed per collection
	ID         string   // remove / set_lead_status target
	Status     string   // set_lead_status value
	MergeIDs   []string // merge selection, fold order
	KeepID     string   // merge survivor
}

// State is the whole CRM state tree. Counts is a pure projection of the
// five lists and is recomputed on every transition.
type State struct {
	Leads    []entity.CrmLead      `json:"leads"`
	Contacts []entity.Contact      `json:"contacts"`
	Deals    []entity.Deal         `json:"deals"`
	Inbox    []entity.InboxMessage `json:"inbox"`
	Tasks    []entity.Task         `json:"tasks"`
	Loaded   map[Collection]bool   `json:"loaded"`
	Counts   entity.CrmCounts      `json:"counts"`
}

// Reduce is the pure state transition function. The input state is never
// mutated; every returned state carries freshly computed counts.
func Reduce(s State, a Action) State {
	next := cloneState(s)

	switch a.Type {
	case ActionLoad:
		applyLoad(&next, a)
	case ActionAdd:
		applyAdd(&next, a)
	case ActionUpdate:
		applyUpdate(&next, a)
	case ActionRemove:
		applyRemove(&next, a)
	case ActionMergeContacts:
		next.Contacts = mergeContacts(next.Contacts, a.KeepID, a.MergeIDs)
	case ActionSetLeadStatus:
		for i := range next.Leads {
			if next.Leads[i].ID == a.ID {
				next.Leads[i].Status = a.Status
			}
		}
	}

	next.Counts = countsOf(next)
	return next
}

func cloneState(s State) State {
	next := State{
		Leads:    append([]entity.CrmLead(nil), s.Leads...),
		Contacts: append([]entity.Contact(nil), s.Contacts...),
		Deals:    append([]entity.Deal(nil), s.Deals...),
		Inbox:    append([]entity.InboxMessage(nil), s.Inbox...),
		Tasks:    append([]entity.Task(nil), s.Tasks...),
		Loaded:   make(map[Collection]bool, len(s.Loaded)),
	}
	for k, v := range s.Loaded {
		next.Loaded[k] = v
	}
	return next
}

// countsOf derives the projection: every lead is open, inbox items count
// until status "Closed", tasks until status "done".
func countsOf(s State) entity.CrmCounts {
	counts := entity.CrmCounts{Leads: len(s.Leads)}
	for _, msg := range s.Inbox {
		if msg.Status != "Closed" {
			counts.Inbox++
		}
	}
	for _, task := range s.Tasks {
		if task.Status != "done" {
			counts.Tasks++
		}
	}
	return counts
}

func applyLoad(s *State, a Action) {
	switch a.Collection {
	case CollectionLeads:
		s.Leads = append([]entity.CrmLead(nil), a.Items.([]entity.CrmLead)...)
	case CollectionContacts:
		s.Contacts = append([]entity.Contact(nil), a.Items.([]entity.Contact)...)
	case CollectionDeals:
		s.Deals = append([]entity.Deal(nil), a.Items.([]entity.Deal)...)
	case CollectionInbox:
		s.Inbox = append([]entity.InboxMessage(nil), a.Items.([]entity.InboxMessage)...)
	case CollectionTasks:
		s.Tasks = append([]entity.Task(nil), a.Items.([]entity.Task)...)
	}
	s.Loaded[a.Collection] = true
}

func applyAdd(s *State, a Action) {
	switch a.Collection {
	case CollectionLeads:
		s.Leads = append(s.Leads, a.Item.(entity.CrmLead))
	case CollectionContacts:
		s.Contacts = append(s.Contacts, a.Item.(entity.Contact))
	case CollectionDeals:
		s.Deals = append(s.Deals, a.Item.(entity.Deal))
	case CollectionInbox:
		s.Inbox = append(s.Inbox, a.Item.(entity.InboxMessage))
	case CollectionTasks:
		s.Tasks = append(s.Tasks, a.Item.(entity.Task))
	}
}

func applyUpdate(s *State, a Action) {
	switch a.Collection {
	case CollectionLeads:
		item := a.Item.(entity.CrmLead)
		for i := range s.Leads {
			if s.Leads[i].ID == item.ID {
				s.Leads[i] = item
			}
		}
	case CollectionContacts:
		item := a.Item.(entity.Contact)
		for i := range s.Contacts {
			if s.Contacts[i].ID == item.ID {
				s.Contacts[i] = item
			}
		}
	case CollectionDeals:
		item := a.Item.(entity.Deal)
		for i := range s.Deals {
			if s.Deals[i].ID == item.ID {
				s.Deals[i] = item
			}
		}
	case CollectionInbox:
		item := a.Item.(entity.InboxMessage)
		for i := range s.Inbox {
			if s.Inbox[i].ID == item.ID {
				s.Inbox[i] = item
			}
		}
	case CollectionTasks:
		item := a.Item.(entity.Task)
		for i := range s.Tasks {
			if s.Tasks[i].ID == item.ID {
				s.Tasks[i] = item
			}
		}
	}
}

func applyRemove(s *State, a Action) {
	switch a.Collection {
	case CollectionLeads:
		out := s.Leads[:0]
		for _, item := range s.Leads {
			if item.ID != a.ID {
				out = append(out, item)
			}
		}
		s.Leads = out
	case CollectionContacts:
		out := s.Contacts[:0]
		for _, item := range s.Contacts {
			if item.ID != a.ID {
				out = append(out, item)
			}
		}
		s.Contacts = out
	case CollectionDeals:
		out := s.Deals[:0]
		for _, item := range s.Deals {
			if item.ID != a.ID {
				out = append(out, item)
			}
		}
		s.Deals = out
	case CollectionInbox:
		out := s.Inbox[:0]
		for _, item := range s.Inbox {
			if item.ID != a.ID {
				out = append(out, item)
			}
		}
		s.Inbox = out
	case CollectionTasks:
		out := s.Tasks[:0]
		for _, item := range s.Tasks {
			if item.ID != a.ID {
				out = append(out, item)
			}
		}
		s.Tasks = out
	}
}

// mergeContacts folds the selected records into the keep record: first
// non-empty value wins per scalar field, tags are unioned preserving
// fold order, notes are concatenated with newlines. All non-kept records
// are removed in the same transition. Unknown ids are ignored; if the
// keep id is unknown the collection is left untouched.
func mergeContacts(contacts []entity.Contact, keepID string, ids []string) []entity.Contact {
	byID := make(map[string]entity.Contact, len(contacts))
	for _, c := range contacts {
		byID[c.ID] = c
	}

	keep, ok := byID[keepID]
	if !ok {
		return contacts
	}

	// fold order: keep record first, then the rest of the selection
	fold := []entity.Contact{keep}
	selected := map[string]bool{keepID: true}
	for _, id := range ids {
		if selected[id] {
			continue
		}
		if c, ok := byID[id]; ok {
			fold = append(fold, c)
			selected[id] = true
		}
	}

	merged := keep
	merged.Tags = nil
	var notes []string
	seenTags := make(map[string]bool)
	for _, c := range fold {
		if merged.Name == "" {
			merged.Name = c.Name
		}
		if merged.Company == "" {
			merged.Company = c.Company
		}
		if merged.Email == "" {
			merged.Email = c.Email
		}
		if merged.LastActivity == "" {
			merged.LastActivity = c.LastActivity
		}
		for _, tag := range c.Tags {
			if !seenTags[tag] {
				seenTags[tag] = true
				merged.Tags = append(merged.Tags, tag)
			}
		}
		if c.Notes != "" {
			notes = append(notes, c.Notes)
		}
	}
	merged.Notes = strings.Join(notes, "\n")

	out := make([]entity.Contact, 0, len(contacts))
	for _, c := range contacts {
		if c.ID == keepID {
			out = append(out, merged)
			continue
		}
		if selected[c.ID] {
			continue
		}
		out = append(out, c)
	}
	return out
}
