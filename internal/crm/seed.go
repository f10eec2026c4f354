package crm

import (
	"time"

	"EstateDesk/entity"
)

// LoadSeed replaces all five collections with the canned demo data.
// Collections start unloaded; the caller decides when (and after what
// delay) seeding happens, which keeps tests free of real timers.
func (s *Store) LoadSeed() {
	now := s.now()

	s.Dispatch(Action{Type: ActionLoad, Collection: CollectionLeads, Items: seedLeads(now)})
	s.Dispatch(Action{Type: ActionLoad, Collection: CollectionContacts, Items: seedContacts()})
	s.Dispatch(Action{Type: ActionLoad, Collection: CollectionDeals, Items: seedDeals()})
	s.Dispatch(Action{Type: ActionLoad, Collection: CollectionInbox, Items: seedInbox(now)})
	s.Dispatch(Action{Type: ActionLoad, Collection: CollectionTasks, Items: seedTasks(now)})

	s.log.Info("crm seed data loaded")
}

func seedLeads(now time.Time) []entity.CrmLead {
	return []entity.CrmLead{
		{ID: "L-1001", Name: "Ana Duarte", Email: "ana.duarte@example.com", Phone: "+351 912 000 111", Source: "Public listing", Status: "New", CreatedAt: now.Add(-36 * time.Hour)},
		{ID: "L-1002", Name: "Marco Silva", Email: "marco.silva@example.com", Source: "Referral", Status: "Contacted", CreatedAt: now.Add(-72 * time.Hour)},
		{ID: "L-1003", Name: "Julia Brandt", Email: "j.brandt@example.com", Phone: "+49 170 555 0101", Source: "Portal", Status: "New", CreatedAt: now.Add(-6 * time.Hour)},
	}
}

func seedContacts() []entity.Contact {
	return []entity.Contact{
		{ID: "C-2001", Name: "Ana Duarte", Company: "Duarte & Filhos", Email: "ana.duarte@example.com", LastActivity: "Viewing booked", Tags: []string{"buyer"}},
		{ID: "C-2002", Name: "Marco Silva", Company: "", Email: "marco.silva@example.com", LastActivity: "Called 2d ago", Tags: []string{"warm"}, Notes: "prefers evenings"},
		{ID: "C-2003", Name: "Rui Costa", Company: "Costa Invest", Email: "rui@costainvest.example.com", Tags: []string{"investor", "repeat"}},
	}
}

func seedDeals() []entity.Deal {
	return []entity.Deal{
		{ID: "D-3001", Title: "Alfama apartment sale", ContactID: "C-2001", Value: 385000, Stage: "Negotiation"},
		{ID: "D-3002", Title: "Cascais villa rental", ContactID: "C-2003", Value: 4200, Stage: "Proposal"},
	}
}

func seedInbox(now time.Time) []entity.InboxMessage {
	return []entity.InboxMessage{
		{ID: "M-4001", From: "ana.duarte@example.com", Subject: "Re: viewing on Saturday", Preview: "Saturday at 11 works for me", Status: "Open", ReceivedAt: now.Add(-2 * time.Hour)},
		{ID: "M-4002", From: "portal@example.com", Subject: "New inquiry for ref 1083", Preview: "A visitor asked about...", Status: "Open", ReceivedAt: now.Add(-26 * time.Hour)},
		{ID: "M-4003", From: "marco.silva@example.com", Subject: "Thanks", Preview: "All sorted, thank you!", Status: "Closed", ReceivedAt: now.Add(-90 * time.Hour)},
	}
}

func seedTasks(now time.Time) []entity.Task {
	return []entity.Task{
		{ID: "T-5001", Title: "Send contract draft to Ana", Assignee: "agent", Status: "open", Due: now.Add(24 * time.Hour)},
		{ID: "T-5002", Title: "Photograph Cascais villa", Assignee: "agent", Status: "open", Due: now.Add(72 * time.Hour)},
		{ID: "T-5003", Title: "Archive closed inquiries", Assignee: "agent", Status: "done", Due: now.Add(-24 * time.Hour)},
	}
}
