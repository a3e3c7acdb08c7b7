package store

import (
	"context"
	"testing"

	"github.com/StikhanovKonstantin/ya-note/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Note{}))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	u := &models.User{Username: username, Password: "x"}
	require.NoError(t, db.Create(u).Error)
	return u
}

func seedNote(t *testing.T, db *gorm.DB, author *models.User, slug string) *models.Note {
	t.Helper()
	n := &models.Note{AuthorID: author.ID, Title: "title " + slug, Text: "text", Slug: slug}
	require.NoError(t, db.Create(n).Error)
	return n
}

func TestListByAuthorFilters(t *testing.T) {
	db := setupTestDB(t)
	notes := NewNoteStore(db)
	ctx := context.Background()

	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")
	seedNote(t, db, alice, "a-1")
	seedNote(t, db, alice, "a-2")
	seedNote(t, db, bob, "b-1")

	got, err := notes.ListByAuthor(ctx, alice.ID)
	require.NoError(t, err)
	assert.Len(t, got, 2)
	for _, n := range got {
		assert.Equal(t, alice.ID, n.AuthorID)
	}

	got, err = notes.ListByAuthor(ctx, bob.ID)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestFindBySlugEnforcesOwnership(t *testing.T) {
	db := setupTestDB(t)
	notes := NewNoteStore(db)
	ctx := context.Background()

	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")
	seedNote(t, db, alice, "secret")

	n, err := notes.FindBySlug(ctx, alice.ID, "secret")
	require.NoError(t, err)
	assert.Equal(t, "secret", n.Slug)

	// 别人的笔记和不存在的笔记返回同一个错误
	_, err = notes.FindBySlug(ctx, bob.ID, "secret")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = notes.FindBySlug(ctx, alice.ID, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteEnforcesOwnership(t *testing.T) {
	db := setupTestDB(t)
	notes := NewNoteStore(db)
	ctx := context.Background()

	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")
	seedNote(t, db, alice, "keep")

	deleted, err := notes.Delete(ctx, bob.ID, "keep")
	require.NoError(t, err)
	assert.False(t, deleted)

	var count int64
	require.NoError(t, db.Model(&models.Note{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	deleted, err = notes.Delete(ctx, alice.ID, "keep")
	require.NoError(t, err)
	assert.True(t, deleted)

	require.NoError(t, db.Model(&models.Note{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestSlugExists(t *testing.T) {
	db := setupTestDB(t)
	notes := NewNoteStore(db)
	ctx := context.Background()

	alice := seedUser(t, db, "alice")
	n := seedNote(t, db, alice, "taken")

	exists, err := notes.SlugExists(ctx, "taken", 0)
	require.NoError(t, err)
	assert.True(t, exists)

	// 编辑时排除自己
	exists, err = notes.SlugExists(ctx, "taken", n.ID)
	require.NoError(t, err)
	assert.False(t, exists)

	exists, err = notes.SlugExists(ctx, "free", 0)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestCreateDuplicateSlugTranslated(t *testing.T) {
	db := setupTestDB(t)
	notes := NewNoteStore(db)
	ctx := context.Background()

	alice := seedUser(t, db, "alice")
	seedNote(t, db, alice, "dup")

	err := notes.Create(ctx, &models.Note{AuthorID: alice.ID, Title: "t", Text: "x", Slug: "dup"})
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}
