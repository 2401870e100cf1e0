package store

import (
	"context"
	"testing"
	"time"

	"github.com/inkwellapp/inkwell-server/internal/domain"
)

func TestCreateComment_RequiresArticle(t *testing.T) {
	s := newTestStore(t)

	err := s.CreateComment(context.Background(), makeTestComment("cmt-1", "art-ghost", testEpoch))
	if err == nil {
		t.Error("expected foreign key failure for missing article")
	}
}

func TestListActiveComments_OldestFirst(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.CreateArticle(ctx, makeTestArticle("art-1", domain.StatusPublished, testEpoch)); err != nil {
		t.Fatal(err)
	}

	newer := makeTestComment("cmt-newer", "art-1", testEpoch.Add(2*time.Hour))
	older := makeTestComment("cmt-older", "art-1", testEpoch.Add(time.Hour))
	hidden := makeTestComment("cmt-hidden", "art-1", testEpoch)
	hidden.Active = false

	for _, c := range []*domain.Comment{newer, older, hidden} {
		if err := s.CreateComment(ctx, c); err != nil {
			t.Fatalf("CreateComment %s: %v", c.ID, err)
		}
	}

	comments, err := s.ListActiveComments(ctx, "art-1")
	if err != nil {
		t.Fatalf("ListActiveComments: %v", err)
	}
	if len(comments) != 2 {
		t.Fatalf("expected 2 active comments, got %d", len(comments))
	}
	if comments[0].ID != "cmt-older" || comments[1].ID != "cmt-newer" {
		t.Errorf("order = [%s, %s]", comments[0].ID, comments[1].ID)
	}
}

func TestListActiveComments_NoComments(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.CreateArticle(ctx, makeTestArticle("art-1", domain.StatusPublished, testEpoch)); err != nil {
		t.Fatal(err)
	}

	comments, err := s.ListActiveComments(ctx, "art-1")
	if err != nil {
		t.Fatalf("ListActiveComments: %v", err)
	}
	if comments == nil {
		t.Error("expected empty slice, got nil")
	}
	if len(comments) != 0 {
		t.Errorf("expected no comments, got %d", len(comments))
	}
}
