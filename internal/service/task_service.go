package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/ShaikhYousuf39/Hackathon-2-Phase-2-Backend/internal/domain"
)

var (
	ErrEmptyTitle         = errors.New("title must not be empty")
	ErrTitleTooLong       = fmt.Errorf("title must be at most %d characters", domain.MaxTitleLen)
	ErrDescriptionTooLong = fmt.Errorf("description must be at most %d characters", domain.MaxDescriptionLen)
)

// TaskStore is the persistence surface the service needs. Implemented by
// repository.TaskRepository; tests substitute an in-memory fake.
// Implementations must scope every operation to ownerID and report a
// missing or foreign id the same way.
type TaskStore interface {
	Create(ctx context.Context, ownerID, title string, description *string) (*domain.Task, error)
	List(ctx context.Context, ownerID string, status domain.StatusFilter) ([]*domain.Task, error)
	GetByID(ctx context.Context, ownerID string, id int64) (*domain.Task, error)
	Update(ctx context.Context, ownerID string, id int64, title *string, description *string, hasDescription bool) (*domain.Task, error)
	ToggleComplete(ctx context.Context, ownerID string, id int64) (*domain.Task, error)
	Delete(ctx context.Context, ownerID string, id int64) error
}

type TaskService struct {
	store TaskStore
}

func NewTaskService(store TaskStore) *TaskService {
	return &TaskService{store: store}
}

func (s *TaskService) Create(ctx context.Context, ownerID, title string, description *string) (*domain.Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyTitle
	}
	if utf8.RuneCountInString(title) > domain.MaxTitleLen {
		return nil, ErrTitleTooLong
	}

	if description != nil {
		d := strings.TrimSpace(*description)
		if d == "" {
			description = nil
		} else {
			if utf8.RuneCountInString(d) > domain.MaxDescriptionLen {
				return nil, ErrDescriptionTooLong
			}
			description = &d
		}
	}

	return s.store.Create(ctx, ownerID, title, description)
}

func (s *TaskService) List(ctx context.Context, ownerID string, status domain.StatusFilter) ([]*domain.Task, error) {
	return s.store.List(ctx, ownerID, status)
}

func (s *TaskService) Get(ctx context.Context, ownerID string, id int64) (*domain.Task, error) {
	return s.store.GetByID(ctx, ownerID, id)
}

// Update applies only the fields present in upd. An omitted description is
// left alone; an explicit empty one clears the stored value. updated_at is
// refreshed even when nothing else changes.
func (s *TaskService) Update(ctx context.Context, ownerID string, id int64, upd domain.TaskUpdate) (*domain.Task, error) {
	var title *string
	if upd.Title != nil {
		t := strings.TrimSpace(*upd.Title)
		if t == "" {
			return nil, ErrEmptyTitle
		}
		if utf8.RuneCountInString(t) > domain.MaxTitleLen {
			return nil, ErrTitleTooLong
		}
		title = &t
	}

	var description *string
	hasDescription := upd.Description != nil
	if hasDescription {
		d := strings.TrimSpace(*upd.Description)
		if d != "" {
			if utf8.RuneCountInString(d) > domain.MaxDescriptionLen {
				return nil, ErrDescriptionTooLong
			}
			description = &d
		}
	}

	return s.store.Update(ctx, ownerID, id, title, description, hasDescription)
}

func (s *TaskService) ToggleComplete(ctx context.Context, ownerID string, id int64) (*domain.Task, error) {
	return s.store.ToggleComplete(ctx, ownerID, id)
}

func (s *TaskService) Delete(ctx context.Context, ownerID string, id int64) error {
	return s.store.Delete(ctx, ownerID, id)
}
