package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ozgurweb/sitepanel/internal/app/models"
	"github.com/ozgurweb/sitepanel/internal/app/models/dto"
	"github.com/ozgurweb/sitepanel/internal/pkg/apperrors"
)

const testDefaultImage = "/default-image.jpg"

// fakeContentStore is an in-memory ContentStore for service tests.
type fakeContentStore struct {
	entries []*models.ContentEntry
}

func (s *fakeContentStore) List(ctx context.Context) ([]*models.ContentEntry, error) {
	return s.entries, nil
}

func (s *fakeContentStore) GetByID(ctx context.Context, id string) (*models.ContentEntry, error) {
	for _, e := range s.entries {
		if e.ID == id {
			copied := *e
			return &copied, nil
		}
	}
	return nil, apperrors.ErrResourceNotFound
}

func (s *fakeContentStore) Create(ctx context.Context, entry *models.ContentEntry) error {
	entry.ID = uuid.NewString()
	s.entries = append(s.entries, entry)
	return nil
}

func (s *fakeContentStore) Update(ctx context.Context, entry *models.ContentEntry) error {
	for i, e := range s.entries {
		if e.ID == entry.ID {
			s.entries[i] = entry
			return nil
		}
	}
	return apperrors.ErrResourceNotFound
}

func (s *fakeContentStore) Delete(ctx context.Context, id string) error {
	for i, e := range s.entries {
		if e.ID == id {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrResourceNotFound
}

// fakeStorage records saves and can be told to fail.
type fakeStorage struct {
	saved  int
	failed bool
}

func (s *fakeStorage) Save(fileHeader *multipart.FileHeader) (string, error) {
	if s.failed {
		return "", errors.New("disk full")
	}
	s.saved++
	return fmt.Sprintf("/uploads/2026-08-31/file-%d.jpg", s.saved), nil
}

func (s *fakeStorage) Remove(fileURL string) error { return nil }

func testFileHeader(t *testing.T) *multipart.FileHeader {
	t.Helper()

	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="image"; filename="photo.jpg"`)
	header.Set("Content-Type", "image/jpeg")
	part, err := w.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write([]byte("jpeg"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(buf, w.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { form.RemoveAll() })
	return form.File["image"][0]
}

func newContentService(store *fakeContentStore, storage *fakeStorage) *ContentService {
	return NewContentService(store, storage, "Blog", testDefaultImage)
}

func TestContentCreate_WithoutImageUsesDefault(t *testing.T) {
	store := &fakeContentStore{}
	svc := newContentService(store, &fakeStorage{})

	entry, err := svc.Create(context.Background(), &dto.ContentCreateRequest{
		Title:       "First post",
		Description: "Hello",
	}, nil)
	require.NoError(t, err)

	assert.NotEmpty(t, entry.ID)
	assert.Equal(t, "First post", entry.Title)
	assert.Equal(t, testDefaultImage, entry.ImageURL)
	assert.Len(t, store.entries, 1)
}

func TestContentCreate_WithImageStoresIt(t *testing.T) {
	store := &fakeContentStore{}
	storage := &fakeStorage{}
	svc := newContentService(store, storage)

	entry, err := svc.Create(context.Background(), &dto.ContentCreateRequest{
		Title:       "Post",
		Description: "Body",
	}, testFileHeader(t))
	require.NoError(t, err)

	assert.Equal(t, 1, storage.saved)
	assert.NotEqual(t, testDefaultImage, entry.ImageURL)
}

func TestContentCreate_MissingTitleRejectedBeforeStorage(t *testing.T) {
	store := &fakeContentStore{}
	storage := &fakeStorage{}
	svc := newContentService(store, storage)

	_, err := svc.Create(context.Background(), &dto.ContentCreateRequest{
		Description: "Body",
	}, testFileHeader(t))

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	assert.Contains(t, err.Error(), "title")
	// Validation runs before the upload; nothing was written anywhere
	assert.Equal(t, 0, storage.saved)
	assert.Empty(t, store.entries)
}

func TestContentCreate_StorageFailureCreatesNoRecord(t *testing.T) {
	store := &fakeContentStore{}
	svc := newContentService(store, &fakeStorage{failed: true})

	_, err := svc.Create(context.Background(), &dto.ContentCreateRequest{
		Title:       "Post",
		Description: "Body",
	}, testFileHeader(t))

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrStorage)
	assert.Empty(t, store.entries)
}

func TestContentUpdate_PartialKeepsOtherFields(t *testing.T) {
	store := &fakeContentStore{}
	svc := newContentService(store, &fakeStorage{})

	created, err := svc.Create(context.Background(), &dto.ContentCreateRequest{
		Title:       "Original title",
		Description: "Original description",
	}, nil)
	require.NoError(t, err)

	newTitle := "Updated title"
	updated, err := svc.Update(context.Background(), created.ID, &dto.ContentUpdateRequest{
		Title: &newTitle,
	}, nil)
	require.NoError(t, err)

	assert.Equal(t, "Updated title", updated.Title)
	assert.Equal(t, "Original description", updated.Description)
	assert.Equal(t, testDefaultImage, updated.ImageURL)
}

func TestContentUpdate_NewImageReplacesURL(t *testing.T) {
	store := &fakeContentStore{}
	storage := &fakeStorage{}
	svc := newContentService(store, storage)

	created, err := svc.Create(context.Background(), &dto.ContentCreateRequest{
		Title:       "Post",
		Description: "Body",
	}, nil)
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), created.ID, &dto.ContentUpdateRequest{}, testFileHeader(t))
	require.NoError(t, err)

	assert.Equal(t, 1, storage.saved)
	assert.NotEqual(t, testDefaultImage, updated.ImageURL)
}

func TestContentUpdate_MissingIDIsNotFound(t *testing.T) {
	svc := newContentService(&fakeContentStore{}, &fakeStorage{})

	title := "x"
	_, err := svc.Update(context.Background(), "no-such-id", &dto.ContentUpdateRequest{Title: &title}, nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
	assert.Contains(t, err.Error(), "Blog")
}

func TestContentDelete_MissingIDLeavesListUnchanged(t *testing.T) {
	store := &fakeContentStore{}
	svc := newContentService(store, &fakeStorage{})

	created, err := svc.Create(context.Background(), &dto.ContentCreateRequest{
		Title:       "Keep me",
		Description: "Body",
	}, nil)
	require.NoError(t, err)

	err = svc.Delete(context.Background(), "no-such-id")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)

	remaining, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, created.ID, remaining[0].ID)
}

func TestContentDelete_RemovesRecord(t *testing.T) {
	store := &fakeContentStore{}
	svc := newContentService(store, &fakeStorage{})

	created, err := svc.Create(context.Background(), &dto.ContentCreateRequest{
		Title:       "Doomed",
		Description: "Body",
	}, nil)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), created.ID))
	assert.Empty(t, store.entries)
}
