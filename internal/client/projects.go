package client

import (
	"context"
	"net/url"
	"strings"
	"sync"
	"time"
)

// Confirmer asks the user to approve a destructive action. Deletes are
// never issued without it answering true.
type Confirmer func(prompt string) bool

// Project is the wire representation served by the API.
type Project struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Tags        []string  `json:"tags"`
	Category    string    `json:"category"`
	Featured    bool      `json:"featured"`
	Image       *Image    `json:"image,omitempty"`
	GitHub      string    `json:"github,omitempty"`
	Live        string    `json:"live,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Image carries the inline project image: base64 payload plus its type.
type Image struct {
	Data        string `json:"data"`
	ContentType string `json:"contentType"`
}

// ProjectForm is the editable state behind the create/update form.
type ProjectForm struct {
	Title       string
	Description string
	Tags        []string
	Category    string
	Featured    bool
	Image       *FormFile
	GitHub      string
	Live        string
}

// Validate applies the form rules. A non-empty result blocks submission;
// nothing goes over the wire for an invalid form.
func (f *ProjectForm) Validate() map[string]string {
	errs := make(map[string]string)

	if strings.TrimSpace(f.Title) == "" {
		errs["title"] = "Title is required"
	} else if len(f.Title) > 100 {
		errs["title"] = "Title must be less than 100 characters"
	}

	if strings.TrimSpace(f.Description) == "" {
		errs["description"] = "Description is required"
	} else if len(f.Description) > 2000 {
		errs["description"] = "Description must be less than 2000 characters"
	}

	if len(f.Tags) == 0 {
		errs["tags"] = "At least one tag is required"
	}

	if f.GitHub != "" && !validURL(f.GitHub) {
		errs["github"] = "Please enter a valid URL"
	}

	if f.Live != "" && !validURL(f.Live) {
		errs["live"] = "Please enter a valid URL"
	}

	return errs
}

func validURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

func (f *ProjectForm) fields() map[string]string {
	fields := map[string]string{
		"title":       f.Title,
		"description": f.Description,
		"tags":        strings.Join(f.Tags, ","),
		"category":    f.Category,
		"featured":    "false",
	}
	if f.Featured {
		fields["featured"] = "true"
	}
	if f.GitHub != "" {
		fields["github"] = f.GitHub
	}
	if f.Live != "" {
		fields["live"] = f.Live
	}
	return fields
}

// ProjectManager performs project CRUD against the API and keeps a local
// list cache in sync. The cache is a best-effort mirror: fetch replaces it
// wholesale, a create triggers a refetch, an update or delete touches only
// the matching record.
type ProjectManager struct {
	api    *Client
	notify *Notifier

	mu           sync.Mutex
	cache        []Project
	searchTerm   string
	category     string
	featuredOnly bool
}

func NewProjectManager(api *Client, notify *Notifier) *ProjectManager {
	return &ProjectManager{api: api, notify: notify}
}

type projectListResp struct {
	Data []Project `json:"data"`
}

type projectResp struct {
	Data Project `json:"data"`
}

// FetchList replaces the cache with the server's list. On failure the
// previous cache stays usable (stale but available) and the error lands in
// a banner.
func (pm *ProjectManager) FetchList(ctx context.Context) error {
	var resp projectListResp
	if err := pm.api.getJSON(ctx, "/api/projects", nil, &resp); err != nil {
		pm.notify.Error(serverMessage(err, "Failed to fetch projects"))
		return err
	}

	pm.mu.Lock()
	pm.cache = resp.Data
	pm.mu.Unlock()
	return nil
}

// Create validates the form, posts it, and on success refetches the whole
// list so server-derived fields (id, timestamps, stored image) are exact.
// A non-nil field-error map means nothing was sent.
func (pm *ProjectManager) Create(ctx context.Context, form ProjectForm) (map[string]string, error) {
	if errs := form.Validate(); len(errs) > 0 {
		return errs, nil
	}

	if err := pm.api.sendMultipart(ctx, "POST", "/api/projects", form.fields(), form.Image, nil); err != nil {
		pm.notify.Error(serverMessage(err, "Operation failed. Please try again."))
		return nil, err
	}

	pm.notify.Success("Project created successfully")
	return nil, pm.FetchList(ctx)
}

// Update validates, PUTs, and swaps only the matching cached record for
// the server's returned representation.
func (pm *ProjectManager) Update(ctx context.Context, id string, form ProjectForm) (map[string]string, error) {
	if errs := form.Validate(); len(errs) > 0 {
		return errs, nil
	}

	var resp projectResp
	if err := pm.api.sendMultipart(ctx, "PUT", "/api/projects/"+id, form.fields(), form.Image, &resp); err != nil {
		pm.notify.Error(serverMessage(err, "Operation failed. Please try again."))
		return nil, err
	}

	pm.mu.Lock()
	for i := range pm.cache {
		if pm.cache[i].ID == id {
			pm.cache[i] = resp.Data
			break
		}
	}
	pm.mu.Unlock()

	pm.notify.Success("Project updated successfully")
	return nil, nil
}

// Delete asks for confirmation, then removes the record server-side and
// splices exactly the matching id out of the cache.
func (pm *ProjectManager) Delete(ctx context.Context, id string, confirm Confirmer) error {
	if confirm == nil || !confirm("Are you sure you want to delete this project?") {
		return nil
	}

	if err := pm.api.delete(ctx, "/api/projects/"+id); err != nil {
		pm.notify.Error(serverMessage(err, "Delete failed. Please try again."))
		return err
	}

	pm.mu.Lock()
	kept := pm.cache[:0]
	for _, p := range pm.cache {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	pm.cache = kept
	pm.mu.Unlock()

	pm.notify.Success("Project deleted successfully")
	return nil
}

// SetSearch updates the free-text filter term.
func (pm *ProjectManager) SetSearch(term string) {
	pm.mu.Lock()
	defer pm.mu.Unlock()
	pm.searchTerm = term
}

// SetCategory narrows the visible list to one category; empty clears it.
func (pm *ProjectManager) SetCategory(category string) {
	pm.mu.Lock()
	defer pm.mu.Unlock()
	pm.category = category
}

// SetFeaturedOnly toggles the featured-only filter.
func (pm *ProjectManager) SetFeaturedOnly(on bool) {
	pm.mu.Lock()
	defer pm.mu.Unlock()
	pm.featuredOnly = on
}

// Visible recomputes the filtered view over the cache: case-insensitive
// substring match on title, description and tags, intersected with the
// category and featured filters. Pure client-side filtering over the
// already-fetched list.
func (pm *ProjectManager) Visible() []Project {
	pm.mu.Lock()
	defer pm.mu.Unlock()

	term := strings.ToLower(pm.searchTerm)
	out := make([]Project, 0, len(pm.cache))
	for _, p := range pm.cache {
		if pm.featuredOnly && !p.Featured {
			continue
		}
		if pm.category != "" && p.Category != pm.category {
			continue
		}
		if term != "" && !projectMatches(p, term) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func projectMatches(p Project, term string) bool {
	if strings.Contains(strings.ToLower(p.Title), term) ||
		strings.Contains(strings.ToLower(p.Description), term) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), term) {
			return true
		}
	}
	return false
}
