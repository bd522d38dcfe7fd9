package client

import (
	"context"
	"net/http"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeProjectAPI is an in-memory stand-in for the project endpoints. It
// counts every request so tests can assert nothing went over the wire.
type fakeProjectAPI struct {
	mu       sync.Mutex
	projects []Project
	requests int
}

func (f *fakeProjectAPI) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.requests
}

func (f *fakeProjectAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	f.requests++
	f.mu.Unlock()

	switch {
	case r.Method == http.MethodGet && r.URL.Path == "/api/projects":
		f.mu.Lock()
		list := append([]Project(nil), f.projects...)
		f.mu.Unlock()
		writeJSON(w, 200, map[string]any{"data": list})

	case r.Method == http.MethodPost && r.URL.Path == "/api/projects":
		_ = r.ParseMultipartForm(8 << 20)
		p := Project{
			ID:          uuid.NewString(),
			Title:       r.PostFormValue("title"),
			Description: r.PostFormValue("description"),
			Tags:        strings.Split(r.PostFormValue("tags"), ","),
			Category:    r.PostFormValue("category"),
			Featured:    r.PostFormValue("featured") == "true",
		}
		f.mu.Lock()
		f.projects = append(f.projects, p)
		f.mu.Unlock()
		writeJSON(w, 201, map[string]any{"data": p})

	case r.Method == http.MethodPut && strings.HasPrefix(r.URL.Path, "/api/projects/"):
		_ = r.ParseMultipartForm(8 << 20)
		id := strings.TrimPrefix(r.URL.Path, "/api/projects/")
		f.mu.Lock()
		defer f.mu.Unlock()
		for i := range f.projects {
			if f.projects[i].ID == id {
				f.projects[i].Title = r.PostFormValue("title")
				f.projects[i].Description = r.PostFormValue("description")
				writeJSON(w, 200, map[string]any{"data": f.projects[i]})
				return
			}
		}
		writeJSON(w, 404, map[string]string{"message": "Project not found"})

	case r.Method == http.MethodDelete && strings.HasPrefix(r.URL.Path, "/api/projects/"):
		id := strings.TrimPrefix(r.URL.Path, "/api/projects/")
		f.mu.Lock()
		kept := f.projects[:0]
		for _, p := range f.projects {
			if p.ID != id {
				kept = append(kept, p)
			}
		}
		f.projects = kept
		f.mu.Unlock()
		writeJSON(w, 200, map[string]string{"message": "Project deleted"})

	default:
		writeJSON(w, 404, map[string]string{"message": "not found"})
	}
}

func validForm() ProjectForm {
	return ProjectForm{
		Title:       "A",
		Description: "A project worth showing",
		Tags:        []string{"go"},
		Category:    "web",
	}
}

func TestProjectCreate_InvalidFormSendsNothing(t *testing.T) {
	fake := &fakeProjectAPI{}
	pm := NewProjectManager(newTestClient(t, fake), NewNotifier())

	form := validForm()
	form.Tags = nil

	errs, err := pm.Create(context.Background(), form)
	require.NoError(t, err)
	assert.Equal(t, "At least one tag is required", errs["tags"])
	assert.Zero(t, fake.count())
}

func TestProjectCreate_BadURLSendsNothing(t *testing.T) {
	fake := &fakeProjectAPI{}
	pm := NewProjectManager(newTestClient(t, fake), NewNotifier())

	form := validForm()
	form.GitHub = "not-a-url"

	errs, err := pm.Create(context.Background(), form)
	require.NoError(t, err)
	assert.Contains(t, errs, "github")
	assert.Zero(t, fake.count())
}

func TestProjectCreate_SuccessRefetchesList(t *testing.T) {
	fake := &fakeProjectAPI{}
	notify := NewNotifier()
	pm := NewProjectManager(newTestClient(t, fake), notify)

	errs, err := pm.Create(context.Background(), validForm())
	require.NoError(t, err)
	require.Empty(t, errs)

	// One POST plus the refetch GET.
	assert.Equal(t, 2, fake.count())

	visible := pm.Visible()
	require.Len(t, visible, 1)
	assert.Equal(t, "A", visible[0].Title)
	assert.NotEmpty(t, visible[0].ID)

	banner := notify.Current()
	require.NotNil(t, banner)
	assert.Equal(t, BannerSuccess, banner.Kind)
}

func TestProjectUpdate_ReplacesOnlyMatchingRecord(t *testing.T) {
	fake := &fakeProjectAPI{projects: []Project{
		{ID: "p1", Title: "one", Description: "first", Tags: []string{"a"}, Category: "web"},
		{ID: "p2", Title: "two", Description: "second", Tags: []string{"b"}, Category: "web"},
	}}
	pm := NewProjectManager(newTestClient(t, fake), NewNotifier())
	require.NoError(t, pm.FetchList(context.Background()))

	form := validForm()
	form.Title = "renamed"

	errs, err := pm.Update(context.Background(), "p2", form)
	require.NoError(t, err)
	require.Empty(t, errs)

	visible := pm.Visible()
	require.Len(t, visible, 2)
	assert.Equal(t, "one", visible[0].Title)
	assert.Equal(t, "renamed", visible[1].Title)
}

func TestProjectDelete_SplicesExactlyOneByID(t *testing.T) {
	fake := &fakeProjectAPI{projects: []Project{
		{ID: "p1", Title: "one"},
		{ID: "p2", Title: "two"},
		{ID: "p3", Title: "three"},
	}}
	pm := NewProjectManager(newTestClient(t, fake), NewNotifier())
	require.NoError(t, pm.FetchList(context.Background()))

	yes := func(string) bool { return true }
	require.NoError(t, pm.Delete(context.Background(), "p2", yes))

	visible := pm.Visible()
	require.Len(t, visible, 2)
	assert.Equal(t, "p1", visible[0].ID)
	assert.Equal(t, "p3", visible[1].ID)
}

func TestProjectDelete_DeclinedConfirmSendsNothing(t *testing.T) {
	fake := &fakeProjectAPI{projects: []Project{{ID: "p1"}}}
	pm := NewProjectManager(newTestClient(t, fake), NewNotifier())
	require.NoError(t, pm.FetchList(context.Background()))
	before := fake.count()

	no := func(string) bool { return false }
	require.NoError(t, pm.Delete(context.Background(), "p1", no))

	assert.Equal(t, before, fake.count())
	assert.Len(t, pm.Visible(), 1)
}

func TestProjectVisible_Filters(t *testing.T) {
	pm := NewProjectManager(nil, NewNotifier())
	pm.cache = []Project{
		{ID: "p1", Title: "Portfolio Site", Description: "react front", Tags: []string{"Go", "React"}, Category: "web", Featured: true},
		{ID: "p2", Title: "Chess Engine", Description: "minimax search", Tags: []string{"go"}, Category: "game"},
		{ID: "p3", Title: "Tracker", Description: "mobile habits", Tags: []string{"flutter"}, Category: "mobile", Featured: true},
	}

	pm.SetSearch("go")
	visible := pm.Visible()
	require.Len(t, visible, 2)

	// Tag match is case-insensitive.
	pm.SetSearch("REACT")
	visible = pm.Visible()
	require.Len(t, visible, 1)
	assert.Equal(t, "p1", visible[0].ID)

	pm.SetSearch("")
	pm.SetCategory("game")
	visible = pm.Visible()
	require.Len(t, visible, 1)
	assert.Equal(t, "p2", visible[0].ID)

	pm.SetCategory("")
	pm.SetFeaturedOnly(true)
	assert.Len(t, pm.Visible(), 2)
}
