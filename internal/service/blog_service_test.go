package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notevault-be/internal/apperror"
	"notevault-be/internal/dto"
	"notevault-be/internal/entity"
	"notevault-be/internal/repository/contract"
)

// brokenProvider simulates a remote backend whose every note read fails,
// so the blog surface has to degrade to the fallback store.
type brokenProvider struct{}

func (brokenProvider) Notes() contract.NoteRepository          { return brokenNotes{} }
func (brokenProvider) Categories() contract.CategoryRepository { return nil }
func (brokenProvider) Users() contract.UserRepository          { return nil }
func (brokenProvider) Name() string                            { return "remote" }

type brokenNotes struct{}

var errBackendDown = apperror.New(apperror.KindGeneric, "backend unreachable")

func (brokenNotes) ListByUser(ctx context.Context, userId string) ([]*entity.Note, error) {
	return nil, errBackendDown
}
func (brokenNotes) Get(ctx context.Context, id, userId string) (*entity.Note, error) {
	return nil, errBackendDown
}
func (brokenNotes) Create(ctx context.Context, note *entity.Note) (*entity.Note, error) {
	return nil, errBackendDown
}
func (brokenNotes) Update(ctx context.Context, note *entity.Note) (*entity.Note, error) {
	return nil, errBackendDown
}
func (brokenNotes) Delete(ctx context.Context, id, userId string) error {
	return errBackendDown
}
func (brokenNotes) SetCategories(ctx context.Context, id, userId string, categoryIds []string) (*entity.Note, error) {
	return nil, errBackendDown
}
func (brokenNotes) Publish(ctx context.Context, id, userId string) (*entity.Note, error) {
	return nil, errBackendDown
}
func (brokenNotes) Unpublish(ctx context.Context, id, userId string) (*entity.Note, error) {
	return nil, errBackendDown
}
func (brokenNotes) ListPublished(ctx context.Context) ([]*entity.Note, error) {
	return nil, errBackendDown
}
func (brokenNotes) GetPublished(ctx context.Context, id string) (*entity.Note, error) {
	return nil, errBackendDown
}

func TestBlogServiceFallsBackToLocalStore(t *testing.T) {
	ctx := context.Background()

	fallback := newTestProvider(t)
	noteSvc := NewNoteService(fallback, nopLogger{})

	created, err := noteSvc.Create(ctx, "u1")
	require.NoError(t, err)
	saved, err := noteSvc.Update(ctx, "u1", &dto.UpdateNoteRequest{
		Id:      created.Id,
		Title:   "Locally published",
		Content: "<p>still readable offline</p>",
	})
	require.NoError(t, err)
	_, err = noteSvc.Publish(ctx, "u1", saved.Id)
	require.NoError(t, err)

	blogSvc := NewBlogService(brokenProvider{}, fallback, "http://localhost:5173", nopLogger{})

	t.Run("list degrades to the fallback", func(t *testing.T) {
		notes, err := blogSvc.ListPublished(ctx)
		require.NoError(t, err)
		require.Len(t, notes, 1)
		assert.Equal(t, "Locally published", notes[0].Title)
	})

	t.Run("lookup degrades to the fallback", func(t *testing.T) {
		note, err := blogSvc.GetPublished(ctx, saved.Id)
		require.NoError(t, err)
		assert.Equal(t, saved.Id, note.Id)
	})
}

func TestBlogServiceDoesNotFallBackOnNotFound(t *testing.T) {
	ctx := context.Background()

	primary := newTestProvider(t)
	fallback := newTestProvider(t)

	// Publish a note only in the fallback store. A clean not-found from the
	// primary must surface as-is, not leak the fallback's data.
	noteSvc := NewNoteService(fallback, nopLogger{})
	created, err := noteSvc.Create(ctx, "u1")
	require.NoError(t, err)
	_, err = noteSvc.Publish(ctx, "u1", created.Id)
	require.NoError(t, err)

	blogSvc := NewBlogService(primary, fallback, "http://localhost:5173", nopLogger{})

	_, err = blogSvc.GetPublished(ctx, created.Id)
	assert.True(t, apperror.IsNotFound(err))
}

func TestBlogServiceWithoutFallbackSurfacesError(t *testing.T) {
	blogSvc := NewBlogService(brokenProvider{}, nil, "http://localhost:5173", nopLogger{})

	_, err := blogSvc.ListPublished(context.Background())
	assert.Error(t, err)
}
