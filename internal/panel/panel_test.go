package panel

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ozgurweb/sitepanel/internal/app/models"
	"github.com/ozgurweb/sitepanel/internal/app/models/dto"
)

// fakeAPI is a minimal admin API for one content collection.
type fakeAPI struct {
	mux      *http.ServeMux
	lists    atomic.Int64
	creates  atomic.Int64
	updates  atomic.Int64
	deletes  atomic.Int64
	rejectAs int // non-zero: reject mutations with this status
	entries  []models.ContentEntry
}

func newFakeAPI() *fakeAPI {
	api := &fakeAPI{mux: http.NewServeMux()}
	api.mux.HandleFunc("GET /api/blog", func(w http.ResponseWriter, r *http.Request) {
		api.lists.Add(1)
		json.NewEncoder(w).Encode(api.entries)
	})
	api.mux.HandleFunc("POST /api/blog", func(w http.ResponseWriter, r *http.Request) {
		if api.rejectAs != 0 {
			w.WriteHeader(api.rejectAs)
			json.NewEncoder(w).Encode(dto.ErrorResponse{Error: "title is required"})
			return
		}
		api.creates.Add(1)
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		entry := models.ContentEntry{
			ID:          "new",
			Title:       r.FormValue("title"),
			Description: r.FormValue("description"),
		}
		api.entries = append(api.entries, entry)
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(entry)
	})
	api.mux.HandleFunc("PUT /api/blog/{id}", func(w http.ResponseWriter, r *http.Request) {
		api.updates.Add(1)
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		entry := models.ContentEntry{
			ID:          r.PathValue("id"),
			Title:       r.FormValue("title"),
			Description: r.FormValue("description"),
		}
		for i := range api.entries {
			if api.entries[i].ID == entry.ID {
				api.entries[i] = entry
			}
		}
		json.NewEncoder(w).Encode(entry)
	})
	api.mux.HandleFunc("DELETE /api/blog/{id}", func(w http.ResponseWriter, r *http.Request) {
		api.deletes.Add(1)
		api.entries = nil
		json.NewEncoder(w).Encode(dto.MessageResponse{Message: "Blog deleted successfully."})
	})
	return api
}

func testFile() *File {
	return &File{Name: "photo.jpg", ContentType: "image/jpeg", Content: []byte("jpeg")}
}

func newTestPanel(t *testing.T) (*Panel[models.ContentEntry], *fakeAPI) {
	t.Helper()
	api := newFakeAPI()
	srv := httptest.NewServer(api.mux)
	t.Cleanup(srv.Close)

	client := NewClient(srv.URL, zerolog.Nop())
	return New[models.ContentEntry](client, Blogs), api
}

func TestSubmit_RefetchesListAfterCreate(t *testing.T) {
	p, api := newTestPanel(t)
	ctx := context.Background()

	require.NoError(t, p.Refresh(ctx))
	require.Equal(t, int64(1), api.lists.Load())

	p.OpenAdd()
	p.SetField("title", "A post")
	p.SetField("description", "Body")
	p.AttachFile(testFile())
	require.NoError(t, p.Submit(ctx))

	assert.Equal(t, int64(1), api.creates.Load())
	// The whole list is refetched rather than patched locally
	assert.Equal(t, int64(2), api.lists.Load())
	assert.Equal(t, StateIdle, p.State())
	require.Len(t, p.Records(), 1)
	assert.Equal(t, "A post", p.Records()[0].Title)
}

func TestSubmit_MissingRequiredFieldSendsNothing(t *testing.T) {
	p, api := newTestPanel(t)

	p.OpenAdd()
	p.SetField("description", "Body only")
	p.AttachFile(testFile())
	err := p.Submit(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "title")
	assert.Equal(t, int64(0), api.creates.Load())
	assert.Equal(t, StateComposing, p.State())
}

func TestSubmit_AddWithoutImageSendsNothing(t *testing.T) {
	p, api := newTestPanel(t)

	// Media panels block add-mode submits until a file is staged; the
	// server would accept it and fill in the placeholder, but the admin
	// screens never let that happen
	p.OpenAdd()
	p.SetField("title", "A post")
	p.SetField("description", "Body")
	err := p.Submit(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "image")
	assert.Equal(t, int64(0), api.creates.Load())
	assert.Equal(t, StateComposing, p.State())
}

func TestSubmit_ServerRejectionKeepsFormOpen(t *testing.T) {
	p, api := newTestPanel(t)
	api.rejectAs = http.StatusBadRequest

	p.OpenAdd()
	p.SetField("title", "A post")
	p.SetField("description", "Body")
	p.AttachFile(testFile())
	err := p.Submit(context.Background())

	require.Error(t, err)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "title is required", apiErr.Message)

	// The form stays open with its values so the user can correct it
	assert.Equal(t, StateComposing, p.State())
	p.SetField("title", "still editable")
	assert.Equal(t, int64(0), api.lists.Load())
}

func TestOpenEdit_PrePopulatesFormFromFetchedList(t *testing.T) {
	p, api := newTestPanel(t)
	api.entries = []models.ContentEntry{
		{ID: "some-id", Title: "Existing title", Description: "Existing body"},
	}

	require.NoError(t, p.Refresh(context.Background()))
	p.OpenEdit("some-id")

	assert.Equal(t, StateComposing, p.State())
	assert.Equal(t, "Existing title", p.Field("title"))
	assert.Equal(t, "Existing body", p.Field("description"))
}

func TestSubmit_EditWithoutNewFileIsAccepted(t *testing.T) {
	p, api := newTestPanel(t)
	api.entries = []models.ContentEntry{
		{ID: "some-id", Title: "Existing title", Description: "Existing body"},
	}

	require.NoError(t, p.Refresh(context.Background()))

	// The file gate is add-only; an edit with no replacement staged keeps
	// the stored image server-side
	p.OpenEdit("some-id")
	p.SetField("title", "Corrected title")
	require.NoError(t, p.Submit(context.Background()))

	assert.Equal(t, int64(1), api.updates.Load())
	assert.Equal(t, StateIdle, p.State())
	require.Len(t, p.Records(), 1)
	assert.Equal(t, "Corrected title", p.Records()[0].Title)
}

func TestSubmit_EditClearedRequiredFieldSendsNothing(t *testing.T) {
	p, api := newTestPanel(t)
	api.entries = []models.ContentEntry{
		{ID: "some-id", Title: "Existing title", Description: "Existing body"},
	}

	require.NoError(t, p.Refresh(context.Background()))

	// Field validation applies in edit mode too; without it a cleared
	// field would go out and blank the stored value
	p.OpenEdit("some-id")
	p.SetField("title", "")
	err := p.Submit(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "title")
	assert.Equal(t, int64(0), api.updates.Load())
	assert.Equal(t, StateComposing, p.State())
}

func TestDelete_DeclinedConfirmationSendsNothing(t *testing.T) {
	p, api := newTestPanel(t)

	err := p.Delete(context.Background(), "some-id", func() bool { return false })

	require.NoError(t, err)
	assert.Equal(t, int64(0), api.deletes.Load())
	assert.Equal(t, int64(0), api.lists.Load())
}

func TestDelete_ConfirmedDeletesAndRefetches(t *testing.T) {
	p, api := newTestPanel(t)
	api.entries = []models.ContentEntry{{ID: "some-id", Title: "Doomed"}}

	err := p.Delete(context.Background(), "some-id", func() bool { return true })

	require.NoError(t, err)
	assert.Equal(t, int64(1), api.deletes.Load())
	assert.Equal(t, int64(1), api.lists.Load())
	assert.Empty(t, p.Records())
}

func TestSetField_UnknownFieldIgnored(t *testing.T) {
	p, api := newTestPanel(t)

	p.OpenAdd()
	p.SetField("title", "A post")
	p.SetField("description", "Body")
	p.SetField("isAdmin", "true")
	p.AttachFile(testFile())
	require.NoError(t, p.Submit(context.Background()))

	assert.Equal(t, int64(1), api.creates.Load())
}
