package client

import (
	"context"
	"net/url"
	"strings"
	"sync"
	"time"
)

const (
	StatusNew      = "new"
	StatusReviewed = "reviewed"
	StatusArchived = "archived"
)

// Contact is the wire representation of a contact message.
type Contact struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ContactManager triages contact messages: list with filters, status
// updates, deletes. Same cache discipline as the project manager.
type ContactManager struct {
	api    *Client
	notify *Notifier

	mu           sync.Mutex
	cache        []Contact
	searchTerm   string
	statusFilter string
}

func NewContactManager(api *Client, notify *Notifier) *ContactManager {
	return &ContactManager{api: api, notify: notify}
}

type contactListResp struct {
	Data []Contact `json:"data"`
}

type contactResp struct {
	Data Contact `json:"data"`
}

// FetchList pulls the list using the current status/search filters as
// query parameters and replaces the cache. Failure keeps the stale cache
// and raises a banner.
func (cm *ContactManager) FetchList(ctx context.Context) error {
	cm.mu.Lock()
	query := url.Values{}
	if cm.statusFilter != "" {
		query.Set("status", cm.statusFilter)
	}
	if cm.searchTerm != "" {
		query.Set("search", cm.searchTerm)
	}
	cm.mu.Unlock()

	var resp contactListResp
	if err := cm.api.getJSON(ctx, "/api/contact", query, &resp); err != nil {
		cm.notify.Error(serverMessage(err, "Failed to fetch messages"))
		return err
	}

	cm.mu.Lock()
	cm.cache = resp.Data
	cm.mu.Unlock()
	return nil
}

// UpdateStatus PUTs the new status and replaces only the matching cached
// record. Any status is reachable from any other; there is no transition
// order to enforce.
func (cm *ContactManager) UpdateStatus(ctx context.Context, id, status string) error {
	var resp contactResp
	body := map[string]string{"status": status}
	if err := cm.api.putJSON(ctx, "/api/contact/"+id, body, &resp); err != nil {
		cm.notify.Error(serverMessage(err, "Failed to update message"))
		return err
	}

	cm.mu.Lock()
	for i := range cm.cache {
		if cm.cache[i].ID == id {
			cm.cache[i] = resp.Data
			break
		}
	}
	cm.mu.Unlock()

	cm.notify.Success("Contact status updated successfully")
	return nil
}

// Delete confirms, deletes server-side, and splices the record out of the
// cache by id. A failed request leaves the cache untouched.
func (cm *ContactManager) Delete(ctx context.Context, id string, confirm Confirmer) error {
	if confirm == nil || !confirm("Are you sure you want to delete this contact?") {
		return nil
	}

	if err := cm.api.delete(ctx, "/api/contact/"+id); err != nil {
		cm.notify.Error(serverMessage(err, "Delete failed. Please try again."))
		return err
	}

	cm.mu.Lock()
	kept := cm.cache[:0]
	for _, c := range cm.cache {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	cm.cache = kept
	cm.mu.Unlock()

	cm.notify.Success("Contact deleted successfully")
	return nil
}

// SetSearch updates the free-text filter term.
func (cm *ContactManager) SetSearch(term string) {
	cm.mu.Lock()
	defer cm.mu.Unlock()
	cm.searchTerm = term
}

// SetStatusFilter narrows to one status; setting the active filter again
// clears it, mirroring the toggle in the admin view.
func (cm *ContactManager) SetStatusFilter(status string) {
	cm.mu.Lock()
	defer cm.mu.Unlock()
	if cm.statusFilter == status {
		cm.statusFilter = ""
		return
	}
	cm.statusFilter = status
}

// Visible recomputes the filtered view: status equality plus
// case-insensitive substring match over email, phone and message.
func (cm *ContactManager) Visible() []Contact {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	term := strings.ToLower(cm.searchTerm)
	out := make([]Contact, 0, len(cm.cache))
	for _, c := range cm.cache {
		if cm.statusFilter != "" && c.Status != cm.statusFilter {
			continue
		}
		if term != "" && !contactMatches(c, term) {
			continue
		}
		out = append(out, c)
	}
	return out
}

func contactMatches(c Contact, term string) bool {
	return strings.Contains(strings.ToLower(c.Email), term) ||
		strings.Contains(strings.ToLower(c.Phone), term) ||
		strings.Contains(strings.ToLower(c.Message), term)
}
