package localstore

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notevault-be/internal/apperror"
	"notevault-be/internal/entity"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := New(t.TempDir())
	require.NoError(t, err)
	return store
}

func strPtr(s string) *string { return &s }

func TestSeedsDefaultCategories(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	categories, err := store.Categories().List(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 5)

	wantNames := map[string]string{
		"1": "Technology",
		"2": "Personal",
		"3": "Work",
		"4": "Ideas",
		"5": "Learning",
	}
	wantColors := map[string]string{
		"1": "#3b82f6",
		"2": "#10b981",
		"3": "#f59e0b",
		"4": "#8b5cf6",
		"5": "#ef4444",
	}
	for _, c := range categories {
		assert.Equal(t, wantNames[c.Id], c.Name)
		assert.Equal(t, wantColors[c.Id], c.Color)
		assert.NotNil(t, c.Description)
	}

	t.Run("seed is stable across reopens", func(t *testing.T) {
		again, err := store.Categories().List(ctx)
		require.NoError(t, err)
		assert.Len(t, again, 5)
		assert.Equal(t, "technology", again[0].Slug)
	})
}

func TestCategoryCRUD(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	repo := store.Categories()

	created, err := repo.Create(ctx, &entity.Category{
		Name:        "Side Projects!",
		Description: strPtr("weekend hacks"),
		Color:       "#000000",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.Id)
	assert.Equal(t, "side-projects", created.Slug)

	t.Run("update re-derives the slug", func(t *testing.T) {
		updated, err := repo.Update(ctx, &entity.Category{
			Id:    created.Id,
			Name:  "Deep Work 2.0",
			Color: "#111111",
		})
		require.NoError(t, err)
		assert.Equal(t, "deep-work-2-0", updated.Slug)
		assert.Equal(t, "#111111", updated.Color)
	})

	t.Run("update of missing id is not found", func(t *testing.T) {
		_, err := repo.Update(ctx, &entity.Category{Id: "nope", Name: "x"})
		assert.True(t, apperror.IsNotFound(err))
	})

	t.Run("delete removes the row and reads drop the dangling link", func(t *testing.T) {
		note, err := store.Notes().Create(ctx, &entity.Note{Title: "n", Content: "c", UserId: "u1"})
		require.NoError(t, err)
		note, err = store.Notes().SetCategories(ctx, note.Id, "u1", []string{created.Id, "1"})
		require.NoError(t, err)
		require.Len(t, note.Categories, 2)

		require.NoError(t, repo.Delete(ctx, created.Id))

		_, err = repo.Get(ctx, created.Id)
		assert.True(t, apperror.IsNotFound(err))

		reloaded, err := store.Notes().Get(ctx, note.Id, "u1")
		require.NoError(t, err)
		require.Len(t, reloaded.Categories, 1)
		assert.Equal(t, "1", reloaded.Categories[0].Id)
	})
}

func TestNoteLifecycle(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	repo := store.Notes()

	first, err := repo.Create(ctx, &entity.Note{Title: "first", Content: "a", UserId: "u1"})
	require.NoError(t, err)
	second, err := repo.Create(ctx, &entity.Note{Title: "second", Content: "b", UserId: "u1"})
	require.NoError(t, err)
	_, err = repo.Create(ctx, &entity.Note{Title: "other user", Content: "x", UserId: "u2"})
	require.NoError(t, err)

	t.Run("list is newest-first and owner-scoped", func(t *testing.T) {
		notes, err := repo.ListByUser(ctx, "u1")
		require.NoError(t, err)
		require.Len(t, notes, 2)
		assert.Equal(t, second.Id, notes[0].Id)
		assert.Equal(t, first.Id, notes[1].Id)
	})

	t.Run("create starts unpublished", func(t *testing.T) {
		assert.False(t, first.Published)
		assert.Nil(t, first.PublishedAt)
	})

	t.Run("get enforces ownership", func(t *testing.T) {
		_, err := repo.Get(ctx, first.Id, "u2")
		assert.True(t, apperror.IsNotFound(err))
	})

	t.Run("update rewrites scalars and bumps updated_at", func(t *testing.T) {
		updated, err := repo.Update(ctx, &entity.Note{
			Id:      first.Id,
			UserId:  "u1",
			Title:   "renamed",
			Content: "rewritten",
		})
		require.NoError(t, err)
		assert.Equal(t, "renamed", updated.Title)
		assert.Equal(t, "rewritten", updated.Content)
		assert.True(t, updated.UpdatedAt.After(first.UpdatedAt) || updated.UpdatedAt.Equal(first.UpdatedAt))
	})

	t.Run("set categories replaces the whole set and dedups", func(t *testing.T) {
		note, err := repo.SetCategories(ctx, first.Id, "u1", []string{"2", "1", "2"})
		require.NoError(t, err)
		require.Len(t, note.Categories, 2)
		assert.Equal(t, "2", note.Categories[0].Id)
		assert.Equal(t, "1", note.Categories[1].Id)

		note, err = repo.SetCategories(ctx, first.Id, "u1", []string{"3"})
		require.NoError(t, err)
		require.Len(t, note.Categories, 1)
		assert.Equal(t, "3", note.Categories[0].Id)

		note, err = repo.SetCategories(ctx, first.Id, "u1", nil)
		require.NoError(t, err)
		assert.Empty(t, note.Categories)
	})

	t.Run("delete is permanent and idempotent", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, second.Id, "u1"))

		_, err := repo.Get(ctx, second.Id, "u1")
		assert.True(t, apperror.IsNotFound(err))

		// Deleting again is a no-op, not an error.
		assert.NoError(t, repo.Delete(ctx, second.Id, "u1"))
	})
}

func TestSetCategoriesOverridesLegacyLink(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	repo := store.Notes()

	// A record written before the embedded category set existed: singular
	// legacy link only, category_ids never persisted.
	now := time.Now().UTC()
	legacy := []noteRecord{{
		Id:         "legacy-note",
		Title:      "old",
		Content:    "c",
		UserId:     "u1",
		CategoryId: strPtr("1"),
		CreatedAt:  now,
		UpdatedAt:  now,
	}}
	require.NoError(t, store.write(keyNotes, legacy))

	t.Run("legacy link resolves while no set was ever written", func(t *testing.T) {
		note, err := repo.Get(ctx, "legacy-note", "u1")
		require.NoError(t, err)
		require.Len(t, note.Categories, 1)
		assert.Equal(t, "1", note.Categories[0].Id)
	})

	t.Run("clearing the set suppresses the legacy fallback", func(t *testing.T) {
		cleared, err := repo.SetCategories(ctx, "legacy-note", "u1", []string{})
		require.NoError(t, err)
		assert.Empty(t, cleared.Categories)

		// The empty set must survive the write/read round trip, not decay
		// back to the legacy link.
		reloaded, err := repo.Get(ctx, "legacy-note", "u1")
		require.NoError(t, err)
		assert.Empty(t, reloaded.Categories)
	})

	t.Run("replacing the set still works afterwards", func(t *testing.T) {
		note, err := repo.SetCategories(ctx, "legacy-note", "u1", []string{"2"})
		require.NoError(t, err)
		require.Len(t, note.Categories, 1)
		assert.Equal(t, "2", note.Categories[0].Id)
	})
}

func TestPublishLifecycle(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	repo := store.Notes()

	note, err := repo.Create(ctx, &entity.Note{Title: "draft", Content: "c", UserId: "u1"})
	require.NoError(t, err)

	published, err := repo.Publish(ctx, note.Id, "u1")
	require.NoError(t, err)
	assert.True(t, published.Published)
	require.NotNil(t, published.PublishedAt)

	t.Run("unpublish clears both fields but keeps content", func(t *testing.T) {
		withCats, err := repo.SetCategories(ctx, note.Id, "u1", []string{"1"})
		require.NoError(t, err)
		require.Len(t, withCats.Categories, 1)

		unpublished, err := repo.Unpublish(ctx, note.Id, "u1")
		require.NoError(t, err)
		assert.False(t, unpublished.Published)
		assert.Nil(t, unpublished.PublishedAt)
		assert.Equal(t, "draft", unpublished.Title)
		assert.Equal(t, "c", unpublished.Content)
		assert.Len(t, unpublished.Categories, 1)
	})

	t.Run("get published rejects drafts", func(t *testing.T) {
		_, err := repo.GetPublished(ctx, note.Id)
		assert.True(t, apperror.IsNotFound(err))

		_, err = repo.Publish(ctx, note.Id, "u1")
		require.NoError(t, err)

		got, err := repo.GetPublished(ctx, note.Id)
		require.NoError(t, err)
		assert.Equal(t, note.Id, got.Id)
	})
}

func TestListPublishedOrdering(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	repo := store.Notes()

	older, err := repo.Create(ctx, &entity.Note{Title: "older", Content: "c", UserId: "u1"})
	require.NoError(t, err)
	newer, err := repo.Create(ctx, &entity.Note{Title: "newer", Content: "c", UserId: "u1"})
	require.NoError(t, err)
	draft, err := repo.Create(ctx, &entity.Note{Title: "draft", Content: "c", UserId: "u1"})
	require.NoError(t, err)

	_, err = repo.Publish(ctx, older.Id, "u1")
	require.NoError(t, err)
	_, err = repo.Publish(ctx, newer.Id, "u1")
	require.NoError(t, err)

	published, err := repo.ListPublished(ctx)
	require.NoError(t, err)
	require.Len(t, published, 2)

	// Most recently published first; drafts never appear.
	assert.Equal(t, newer.Id, published[0].Id)
	assert.Equal(t, older.Id, published[1].Id)
	for _, n := range published {
		assert.NotEqual(t, draft.Id, n.Id)
	}
}

func TestLocalAuth(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	repo := store.Users()

	t.Run("digest is sha256 over password plus fixed salt", func(t *testing.T) {
		sum := sha256.Sum256([]byte("password123" + "salt_key_2024"))
		assert.Equal(t, hex.EncodeToString(sum[:]), hashPassword("password123"))
	})

	user, err := repo.Register(ctx, "amy@example.com", "password123", strPtr("Amy"))
	require.NoError(t, err)
	assert.NotEmpty(t, user.Id)
	assert.Equal(t, "amy@example.com", user.Email)

	t.Run("register persists the simulated session", func(t *testing.T) {
		current, err := repo.CurrentUser(ctx)
		require.NoError(t, err)
		require.NotNil(t, current)
		assert.Equal(t, user.Id, current.Id)
	})

	t.Run("duplicate email conflicts", func(t *testing.T) {
		_, err := repo.Register(ctx, "amy@example.com", "other", nil)
		assert.Equal(t, apperror.KindAlreadyExists, apperror.KindOf(err))
	})

	t.Run("authenticate verifies the digest", func(t *testing.T) {
		got, err := repo.Authenticate(ctx, "amy@example.com", "password123")
		require.NoError(t, err)
		assert.Equal(t, user.Id, got.Id)

		_, err = repo.Authenticate(ctx, "amy@example.com", "wrong")
		assert.Equal(t, apperror.KindInvalidCredentials, apperror.KindOf(err))

		_, err = repo.Authenticate(ctx, "nobody@example.com", "password123")
		assert.Equal(t, apperror.KindInvalidCredentials, apperror.KindOf(err))
	})

	t.Run("clear current user signs out", func(t *testing.T) {
		require.NoError(t, repo.ClearCurrentUser(ctx))
		current, err := repo.CurrentUser(ctx)
		require.NoError(t, err)
		assert.Nil(t, current)
	})
}

func TestThemePreference(t *testing.T) {
	store := newTestStore(t)

	theme, err := store.Theme()
	require.NoError(t, err)
	assert.Empty(t, theme)

	require.NoError(t, store.SetTheme("dark"))

	theme, err = store.Theme()
	require.NoError(t, err)
	assert.Equal(t, "dark", theme)
}
