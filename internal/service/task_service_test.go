package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/ShaikhYousuf39/Hackathon-2-Phase-2-Backend/internal/domain"
	"github.com/ShaikhYousuf39/Hackathon-2-Phase-2-Backend/internal/repository"
)

// recordingStore captures the arguments the service hands to the store so
// tests can assert what would be persisted.
type recordingStore struct {
	createTitle       string
	createDescription *string

	updateTitle       *string
	updateDescription *string
	updateHasDesc     bool

	notFound bool
}

func (s *recordingStore) Create(ctx context.Context, ownerID, title string, description *string) (*domain.Task, error) {
	s.createTitle = title
	s.createDescription = description
	return &domain.Task{ID: 1, UserID: ownerID, Title: title, Description: description, CreatedAt: time.Now(), UpdatedAt: time.Now()}, nil
}

func (s *recordingStore) List(ctx context.Context, ownerID string, status domain.StatusFilter) ([]*domain.Task, error) {
	return nil, nil
}

func (s *recordingStore) GetByID(ctx context.Context, ownerID string, id int64) (*domain.Task, error) {
	if s.notFound {
		return nil, repository.ErrTaskNotFound
	}
	return &domain.Task{ID: id, UserID: ownerID}, nil
}

func (s *recordingStore) Update(ctx context.Context, ownerID string, id int64, title *string, description *string, hasDescription bool) (*domain.Task, error) {
	if s.notFound {
		return nil, repository.ErrTaskNotFound
	}
	s.updateTitle = title
	s.updateDescription = description
	s.updateHasDesc = hasDescription
	return &domain.Task{ID: id, UserID: ownerID}, nil
}

func (s *recordingStore) ToggleComplete(ctx context.Context, ownerID string, id int64) (*domain.Task, error) {
	if s.notFound {
		return nil, repository.ErrTaskNotFound
	}
	return &domain.Task{ID: id, UserID: ownerID, Completed: true}, nil
}

func (s *recordingStore) Delete(ctx context.Context, ownerID string, id int64) error {
	if s.notFound {
		return repository.ErrTaskNotFound
	}
	return nil
}

func strptr(s string) *string { return &s }

func TestCreate_TrimsFields(t *testing.T) {
	store := &recordingStore{}
	svc := NewTaskService(store)

	task, err := svc.Create(context.Background(), "alice", "  Buy milk  ", strptr("  from the corner shop  "))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if task.Title != "Buy milk" {
		t.Fatalf("expected trimmed title, got %q", task.Title)
	}
	if store.createDescription == nil || *store.createDescription != "from the corner shop" {
		t.Fatalf("expected trimmed description, got %v", store.createDescription)
	}
}

func TestCreate_EmptyTitleRejected(t *testing.T) {
	svc := NewTaskService(&recordingStore{})

	for _, title := range []string{"", "   ", "\t\n"} {
		if _, err := svc.Create(context.Background(), "alice", title, nil); !errors.Is(err, ErrEmptyTitle) {
			t.Fatalf("title %q: expected ErrEmptyTitle, got %v", title, err)
		}
	}
}

func TestCreate_LengthLimits(t *testing.T) {
	svc := NewTaskService(&recordingStore{})
	ctx := context.Background()

	longTitle := strings.Repeat("a", domain.MaxTitleLen+1)
	if _, err := svc.Create(ctx, "alice", longTitle, nil); !errors.Is(err, ErrTitleTooLong) {
		t.Fatalf("expected ErrTitleTooLong, got %v", err)
	}

	longDesc := strings.Repeat("a", domain.MaxDescriptionLen+1)
	if _, err := svc.Create(ctx, "alice", "ok", strptr(longDesc)); !errors.Is(err, ErrDescriptionTooLong) {
		t.Fatalf("expected ErrDescriptionTooLong, got %v", err)
	}

	// exactly at the limit passes
	if _, err := svc.Create(ctx, "alice", strings.Repeat("a", domain.MaxTitleLen), strptr(strings.Repeat("b", domain.MaxDescriptionLen))); err != nil {
		t.Fatalf("at-limit create: %v", err)
	}
}

func TestCreate_BlankDescriptionStoredAsAbsent(t *testing.T) {
	store := &recordingStore{}
	svc := NewTaskService(store)

	if _, err := svc.Create(context.Background(), "alice", "Buy milk", strptr("   ")); err != nil {
		t.Fatalf("create: %v", err)
	}
	if store.createDescription != nil {
		t.Fatalf("expected nil description, got %q", *store.createDescription)
	}
}

func TestUpdate_OmittedFieldsLeftAlone(t *testing.T) {
	store := &recordingStore{}
	svc := NewTaskService(store)

	if _, err := svc.Update(context.Background(), "alice", 1, domain.TaskUpdate{}); err != nil {
		t.Fatalf("update: %v", err)
	}
	if store.updateTitle != nil {
		t.Fatalf("expected title untouched, got %q", *store.updateTitle)
	}
	if store.updateHasDesc {
		t.Fatal("expected description untouched")
	}
}

func TestUpdate_EmptyDescriptionClears(t *testing.T) {
	store := &recordingStore{}
	svc := NewTaskService(store)

	if _, err := svc.Update(context.Background(), "alice", 1, domain.TaskUpdate{Description: strptr("")}); err != nil {
		t.Fatalf("update: %v", err)
	}
	if !store.updateHasDesc {
		t.Fatal("expected description to be part of the update")
	}
	if store.updateDescription != nil {
		t.Fatalf("expected cleared description, got %q", *store.updateDescription)
	}
}

func TestUpdate_EmptyTitleRejected(t *testing.T) {
	svc := NewTaskService(&recordingStore{})

	if _, err := svc.Update(context.Background(), "alice", 1, domain.TaskUpdate{Title: strptr("   ")}); !errors.Is(err, ErrEmptyTitle) {
		t.Fatalf("expected ErrEmptyTitle, got %v", err)
	}
}

func TestNotFoundPassesThrough(t *testing.T) {
	svc := NewTaskService(&recordingStore{notFound: true})
	ctx := context.Background()

	if _, err := svc.Get(ctx, "alice", 99); !errors.Is(err, repository.ErrTaskNotFound) {
		t.Fatalf("get: expected ErrTaskNotFound, got %v", err)
	}
	if _, err := svc.Update(ctx, "alice", 99, domain.TaskUpdate{}); !errors.Is(err, repository.ErrTaskNotFound) {
		t.Fatalf("update: expected ErrTaskNotFound, got %v", err)
	}
	if _, err := svc.ToggleComplete(ctx, "alice", 99); !errors.Is(err, repository.ErrTaskNotFound) {
		t.Fatalf("toggle: expected ErrTaskNotFound, got %v", err)
	}
	if err := svc.Delete(ctx, "alice", 99); !errors.Is(err, repository.ErrTaskNotFound) {
		t.Fatalf("delete: expected ErrTaskNotFound, got %v", err)
	}
}
