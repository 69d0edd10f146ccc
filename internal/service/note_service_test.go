package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notevault-be/internal/apperror"
	"notevault-be/internal/dto"
	"notevault-be/internal/repository/contract"
	"notevault-be/internal/repository/localstore"
)

func newTestProvider(t *testing.T) contract.Provider {
	t.Helper()
	provider, err := localstore.New(t.TempDir())
	require.NoError(t, err)
	return provider
}

// nopLogger keeps service tests quiet; nothing asserts on log output.
type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

func newNoteService(t *testing.T) (INoteService, contract.Provider) {
	t.Helper()
	provider := newTestProvider(t)
	return NewNoteService(provider, nopLogger{}), provider
}

func TestNoteServiceCreateUsesPlaceholder(t *testing.T) {
	svc, _ := newNoteService(t)
	ctx := context.Background()

	note, err := svc.Create(ctx, "u1")
	require.NoError(t, err)

	assert.Equal(t, "New Note", note.Title)
	assert.Equal(t, "<p>Start writing your note here...</p>", note.Content)
	assert.False(t, note.Published)
	assert.Empty(t, note.Categories)
}

func TestNoteServiceUpdateReturnsAuthoritativeState(t *testing.T) {
	svc, _ := newNoteService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, "u1")
	require.NoError(t, err)

	updated, err := svc.Update(ctx, "u1", &dto.UpdateNoteRequest{
		Id:          created.Id,
		Title:       "Go generics",
		Content:     "<p>notes on type sets</p>",
		CategoryIds: []string{"1", "5", "1"},
	})
	require.NoError(t, err)

	assert.Equal(t, "Go generics", updated.Title)
	require.Len(t, updated.Categories, 2)
	assert.Equal(t, "Technology", updated.Categories[0].Name)
	assert.Equal(t, "Learning", updated.Categories[1].Name)
}

func TestNoteServiceLifecycleScenario(t *testing.T) {
	provider := newTestProvider(t)
	noteSvc := NewNoteService(provider, nopLogger{})
	blogSvc := NewBlogService(provider, nil, "http://localhost:5173", nopLogger{})
	ctx := context.Background()

	// Create, edit, tag, publish, then read it back from the public surface.
	created, err := noteSvc.Create(ctx, "u1")
	require.NoError(t, err)

	saved, err := noteSvc.Update(ctx, "u1", &dto.UpdateNoteRequest{
		Id:          created.Id,
		Title:       "Shipping week",
		Content:     "<p>what went out</p>",
		CategoryIds: []string{"3"},
	})
	require.NoError(t, err)

	published, err := noteSvc.Publish(ctx, "u1", saved.Id)
	require.NoError(t, err)
	assert.True(t, published.Published)
	require.NotNil(t, published.PublishedAt)

	public, err := blogSvc.GetPublished(ctx, saved.Id)
	require.NoError(t, err)
	assert.Equal(t, "Shipping week", public.Title)
	assert.Equal(t, "http://localhost:5173/blog/"+saved.Id, public.ShareURL)

	t.Run("unpublish keeps title, content and categories", func(t *testing.T) {
		unpublished, err := noteSvc.Unpublish(ctx, "u1", saved.Id)
		require.NoError(t, err)
		assert.False(t, unpublished.Published)
		assert.Nil(t, unpublished.PublishedAt)
		assert.Equal(t, "Shipping week", unpublished.Title)
		assert.Equal(t, "<p>what went out</p>", unpublished.Content)
		require.Len(t, unpublished.Categories, 1)
		assert.Equal(t, "Work", unpublished.Categories[0].Name)

		_, err = blogSvc.GetPublished(ctx, saved.Id)
		assert.True(t, apperror.IsNotFound(err))
	})

	t.Run("delete removes it from the list", func(t *testing.T) {
		require.NoError(t, noteSvc.Delete(ctx, "u1", saved.Id))

		notes, err := noteSvc.List(ctx, "u1")
		require.NoError(t, err)
		assert.Empty(t, notes)
	})
}
