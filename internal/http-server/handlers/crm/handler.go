package crm

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"EstateDesk/entity"
	crmstore "EstateDesk/internal/crm"
	"EstateDesk/internal/lib/api/response"
)

// State returns the whole CRM state tree for the workspace shell.
func State(_ *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, response.Ok(handler.CrmSnapshot()))
	}
}

// Counts returns only the derived badge counters.
func Counts(_ *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, response.Ok(handler.CrmSnapshot().Counts))
	}
}

// List returns one collection, optionally filtered by the q query
// parameter with a case-insensitive substring match.
func List(_ *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		collection, ok := parseCollection(chi.URLParam(r, "collection"))
		if !ok {
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error("not found"))
			return
		}

		state := handler.CrmSnapshot()
		query := strings.ToLower(r.URL.Query().Get("q"))

		render.JSON(w, r, response.Ok(filterCollection(state, collection, query)))
	}
}

// Add appends one item to a collection.
func Add(_ *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		collection, ok := parseCollection(chi.URLParam(r, "collection"))
		if !ok {
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error("not found"))
			return
		}

		item, err := decodeItem(r, collection)
		if err != nil {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("Invalid request body"))
			return
		}

		state := handler.DispatchCrm(crmstore.Action{
			Type:       crmstore.ActionAdd,
			Collection: collection,
			Item:       item,
		})

		render.JSON(w, r, response.Ok(state.Counts))
	}
}

// Update replaces the item with a matching id. A missing id is a no-op,
// matching the reducer semantics.
func Update(_ *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		collection, ok := parseCollection(chi.URLParam(r, "collection"))
		if !ok {
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error("not found"))
			return
		}

		item, err := decodeItem(r, collection)
		if err != nil {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("Invalid request body"))
			return
		}

		// The path id wins over whatever the body carries.
		item = withID(item, chi.URLParam(r, "id"))

		state := handler.DispatchCrm(crmstore.Action{
			Type:       crmstore.ActionUpdate,
			Collection: collection,
			Item:       item,
		})

		render.JSON(w, r, response.Ok(state.Counts))
	}
}

// Remove drops the item with the given id from a collection.
func Remove(_ *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		collection, ok := parseCollection(chi.URLParam(r, "collection"))
		if !ok {
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error("not found"))
			return
		}

		state := handler.DispatchCrm(crmstore.Action{
			Type:       crmstore.ActionRemove,
			Collection: collection,
			ID:         chi.URLParam(r, "id"),
		})

		render.JSON(w, r, response.Ok(state.Counts))
	}
}

type mergeRequest struct {
	Merge  []string `json:"ids"`
	KeepID string   `json:"keepId"`
}

// MergeContacts folds the selected contacts into the keeper.
func MergeContacts(_ *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req mergeRequest
		if err := render.DecodeJSON(r.Body, &req); err != nil {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("Invalid request body"))
			return
		}

		if len(req.Merge) < 2 {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("merge needs at least two contacts"))
			return
		}

		state := handler.DispatchCrm(crmstore.Action{
			Type:     crmstore.ActionMergeContacts,
			MergeIDs: req.Merge,
			KeepID:   req.KeepID,
		})

		render.JSON(w, r, response.Ok(state.Contacts))
	}
}

type leadStatusRequest struct {
	Status string `json:"status"`
}

// SetLeadStatus moves a CRM lead through its pipeline stages.
func SetLeadStatus(_ *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req leadStatusRequest
		if err := render.DecodeJSON(r.Body, &req); err != nil {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("Invalid request body"))
			return
		}

		state := handler.DispatchCrm(crmstore.Action{
			Type:   crmstore.ActionSetLeadStatus,
			ID:     chi.URLParam(r, "id"),
			Status: req.Status,
		})

		render.JSON(w, r, response.Ok(state.Counts))
	}
}

func parseCollection(raw string) (crmstore.Collection, bool) {
	switch crmstore.Collection(raw) {
	case crmstore.CollectionLeads,
		crmstore.CollectionContacts,
		crmstore.CollectionDeals,
		crmstore.CollectionInbox,
		crmstore.CollectionTasks:
		return crmstore.Collection(raw), true
	}
	return "", false
}

func decodeItem(r *http.Request, collection crmstore.Collection) (any, error) {
	switch collection {
	case crmstore.CollectionLeads:
		var item entity.CrmLead
		return item, render.DecodeJSON(r.Body, &item)
	case crmstore.CollectionContacts:
		var item entity.Contact
		return item, render.DecodeJSON(r.Body, &item)
	case crmstore.CollectionDeals:
		var item entity.Deal
		return item, render.DecodeJSON(r.Body, &item)
	case crmstore.CollectionInbox:
		var item entity.InboxMessage
		return item, render.DecodeJSON(r.Body, &item)
	default:
		var item entity.Task
		return item, render.DecodeJSON(r.Body, &item)
	}
}

func withID(item any, id string) any {
	switch v := item.(type) {
	case entity.CrmLead:
		v.ID = id
		return v
	case entity.Contact:
		v.ID = id
		return v
	case entity.Deal:
		v.ID = id
		return v
	case entity.InboxMessage:
		v.ID = id
		return v
	case entity.Task:
		v.ID = id
		return v
	}
	return item
}

func filterCollection(state crmstore.State, collection crmstore.Collection, query string) any {
	match := func(fields ...string) bool {
		if query == "" {
			return true
		}
		for _, f := range fields {
			if strings.Contains(strings.ToLower(f), query) {
				return true
			}
		}
		return false
	}

	switch collection {
	case crmstore.CollectionLeads:
		out := []entity.CrmLead{}
		for _, v := range state.Leads {
			if match(v.Name, v.Email, v.Source) {
				out = append(out, v)
			}
		}
		return out
	case crmstore.CollectionContacts:
		out := []entity.Contact{}
		for _, v := range state.Contacts {
			if match(v.Name, v.Company, v.Email) {
				out = append(out, v)
			}
		}
		return out
	case crmstore.CollectionDeals:
		out := []entity.Deal{}
		for _, v := range state.Deals {
			if match(v.Title, v.Stage) {
				out = append(out, v)
			}
		}
		return out
	case crmstore.CollectionInbox:
		out := []entity.InboxMessage{}
		for _, v := range state.Inbox {
			if match(v.From, v.Subject, v.Preview) {
				out = append(out, v)
			}
		}
		return out
	default:
		out := []entity.Task{}
		for _, v := range state.Tasks {
			if match(v.Title, v.Assignee) {
				out = append(out, v)
			}
		}
		return out
	}
}
