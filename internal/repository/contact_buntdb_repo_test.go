package repository

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/Isaiahshap/pulse/internal/models"
)

func newTestBuntRepository(t *testing.T) *BuntContactRepository {
	t.Helper()

	repo, err := NewBuntContactRepository(":memory:")
	if err != nil {
		t.Fatalf("NewBuntContactRepository: %v", err)
	}
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

func TestBuntContactRepositorySaveAndGet(t *testing.T) {
	ctx := context.Background()
	repo := newTestBuntRepository(t)

	message := &models.ContactMessage{
		ID:         "msg-1",
		Name:       "Jordan Lee",
		Email:      "jordan@example.com",
		Subject:    models.SubjectMembership,
		Message:    "Can I freeze my plan?",
		ReceivedAt: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
	}
	if err := repo.Save(ctx, message); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := repo.Get(ctx, "msg-1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Name != message.Name || got.Subject != models.SubjectMembership || !got.ReceivedAt.Equal(message.ReceivedAt) {
		t.Fatalf("unexpected message: %+v", got)
	}

	if _, err := repo.Get(ctx, "missing"); !errors.Is(err, ErrMessageNotFound) {
		t.Fatalf("expected ErrMessageNotFound, got %v", err)
	}
}

func TestBuntContactRepositoryListNewestFirst(t *testing.T) {
	ctx := context.Background()
	repo := newTestBuntRepository(t)

	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		err := repo.Save(ctx, &models.ContactMessage{
			ID:         fmt.Sprintf("msg-%d", i),
			Name:       "Visitor",
			Email:      "visitor@example.com",
			Subject:    models.SubjectGeneral,
			Message:    "Hello",
			ReceivedAt: base.Add(time.Duration(i) * time.Minute),
		})
		if err != nil {
			t.Fatalf("Save %d: %v", i, err)
		}
	}

	page, total, err := repo.List(ctx, 0, 2)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if total != 5 {
		t.Fatalf("expected total 5, got %d", total)
	}
	if len(page) != 2 || page[0].ID != "msg-4" || page[1].ID != "msg-3" {
		t.Fatalf("unexpected first page: %+v", page)
	}

	page, _, err = repo.List(ctx, 4, 2)
	if err != nil {
		t.Fatalf("List offset: %v", err)
	}
	if len(page) != 1 || page[0].ID != "msg-0" {
		t.Fatalf("unexpected last page: %+v", page)
	}

	page, total, err = repo.List(ctx, 10, 2)
	if err != nil || total != 5 || len(page) != 0 {
		t.Fatalf("expected empty page past the end, got %d/%d (%v)", len(page), total, err)
	}
}
