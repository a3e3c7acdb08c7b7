// Package store is the persistence layer. Every query that touches a
// note takes the requesting user's ID so ownership is enforced here,
// not in the handlers.
package store

import (
	"context"
	"errors"

	"github.com/StikhanovKonstantin/ya-note/internal/models"

	"gorm.io/gorm"
)

// ErrNotFound 查不到就是查不到，不区分"不存在"和"不是你的"
var ErrNotFound = errors.New("note not found")

type NoteStore interface {
	ListByAuthor(ctx context.Context, authorID uint) ([]models.Note, error)
	FindBySlug(ctx context.Context, authorID uint, slug string) (*models.Note, error)
	Create(ctx context.Context, note *models.Note) error
	Update(ctx context.Context, note *models.Note) error
	Delete(ctx context.Context, authorID uint, slug string) (bool, error)
	SlugExists(ctx context.Context, slug string, excludeID uint) (bool, error)
}

type noteStore struct {
	db *gorm.DB
}

func NewNoteStore(db *gorm.DB) NoteStore {
	return &noteStore{db: db}
}

func (s *noteStore) ListByAuthor(ctx context.Context, authorID uint) ([]models.Note, error) {
	var notes []models.Note
	err := s.db.WithContext(ctx).
		Where("author_id = ?", authorID).
		Find(&notes).Error
	return notes, err
}

func (s *noteStore) FindBySlug(ctx context.Context, authorID uint, slug string) (*models.Note, error) {
	var note models.Note
	err := s.db.WithContext(ctx).
		Where("slug = ? AND author_id = ?", slug, authorID).
		First(&note).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &note, nil
}

func (s *noteStore) Create(ctx context.Context, note *models.Note) error {
	return s.db.WithContext(ctx).Create(note).Error
}

func (s *noteStore) Update(ctx context.Context, note *models.Note) error {
	return s.db.WithContext(ctx).Save(note).Error
}

// Delete removes the note owned by authorID. Returns false when no row
// matched, which covers both a missing slug and someone else's note.
func (s *noteStore) Delete(ctx context.Context, authorID uint, slug string) (bool, error) {
	result := s.db.WithContext(ctx).
		Where("slug = ? AND author_id = ?", slug, authorID).
		Delete(&models.Note{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// SlugExists reports whether any note other than excludeID already uses
// the slug. Pass excludeID=0 on create.
func (s *noteStore) SlugExists(ctx context.Context, slug string, excludeID uint) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.Note{}).
		Where("slug = ? AND id <> ?", slug, excludeID).
		Count(&count).Error
	return count > 0, err
}
