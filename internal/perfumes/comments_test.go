package perfumes

import (
	"context"
	"testing"

	pkgerrors "github.com/TuancoderLo/perfume-api/pkg/errors"
	"github.com/google/uuid"
)

func TestAddCommentOncePerMember(t *testing.T) {
	gdb := openTestDB(t)
	svc := newTestService(t, gdb)
	brand := seedBrand(t, gdb, "Dior")
	perfume := seedPerfume(t, gdb, brand.ID, "Sauvage", 120)
	author := seedMember(t, gdb, "riley")

	first, err := svc.AddComment(context.Background(), perfume.ID, author.ID, AddCommentRequest{
		Rating:  4,
		Content: "solid",
	})
	if err != nil {
		t.Fatalf("add comment: %v", err)
	}
	if first.Rating != 4 || first.AuthorID != author.ID {
		t.Fatalf("unexpected comment %+v", first)
	}

	_, err = svc.AddComment(context.Background(), perfume.ID, author.ID, AddCommentRequest{
		Rating:  5,
		Content: "changed my mind",
	})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeConflict {
		t.Fatalf("expected conflict on second comment, got %v", err)
	}
}

func TestAddCommentToUnknownPerfumeIsNotFound(t *testing.T) {
	gdb := openTestDB(t)
	svc := newTestService(t, gdb)
	author := seedMember(t, gdb, "riley")

	_, err := svc.AddComment(context.Background(), uuid.New(), author.ID, AddCommentRequest{
		Rating:  3,
		Content: "where is it",
	})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestSameMemberMayCommentDifferentPerfumes(t *testing.T) {
	gdb := openTestDB(t)
	svc := newTestService(t, gdb)
	brand := seedBrand(t, gdb, "Dior")
	one := seedPerfume(t, gdb, brand.ID, "Sauvage", 120)
	two := seedPerfume(t, gdb, brand.ID, "Homme", 95)
	author := seedMember(t, gdb, "riley")

	if _, err := svc.AddComment(context.Background(), one.ID, author.ID, AddCommentRequest{Rating: 4, Content: "a"}); err != nil {
		t.Fatalf("first perfume: %v", err)
	}
	if _, err := svc.AddComment(context.Background(), two.ID, author.ID, AddCommentRequest{Rating: 5, Content: "b"}); err != nil {
		t.Fatalf("second perfume: %v", err)
	}
}

func TestEditCommentPartialUpdate(t *testing.T) {
	gdb := openTestDB(t)
	svc := newTestService(t, gdb)
	brand := seedBrand(t, gdb, "Dior")
	perfume := seedPerfume(t, gdb, brand.ID, "Sauvage", 120)
	author := seedMember(t, gdb, "riley")

	comment, err := svc.AddComment(context.Background(), perfume.ID, author.ID, AddCommentRequest{
		Rating:  3,
		Content: "fine",
	})
	if err != nil {
		t.Fatalf("add comment: %v", err)
	}

	rating := 5
	edited, err := svc.EditComment(context.Background(), perfume.ID, comment.ID, author.ID, EditCommentRequest{
		Rating: &rating,
	})
	if err != nil {
		t.Fatalf("edit comment: %v", err)
	}
	if edited.Rating != 5 {
		t.Fatalf("expected rating 5, got %d", edited.Rating)
	}
	if edited.Content != "fine" {
		t.Fatal("content must survive a rating-only edit")
	}
}

func TestEditCommentRejectsNonAuthor(t *testing.T) {
	gdb := openTestDB(t)
	svc := newTestService(t, gdb)
	brand := seedBrand(t, gdb, "Dior")
	perfume := seedPerfume(t, gdb, brand.ID, "Sauvage", 120)
	author := seedMember(t, gdb, "riley")
	other := seedMember(t, gdb, "casey")

	comment, err := svc.AddComment(context.Background(), perfume.ID, author.ID, AddCommentRequest{
		Rating:  3,
		Content: "fine",
	})
	if err != nil {
		t.Fatalf("add comment: %v", err)
	}

	content := "hijacked"
	_, err = svc.EditComment(context.Background(), perfume.ID, comment.ID, other.ID, EditCommentRequest{
		Content: &content,
	})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeForbidden {
		t.Fatalf("expected forbidden for non-author edit, got %v", err)
	}
}

func TestDeleteCommentIsAuthorOnly(t *testing.T) {
	gdb := openTestDB(t)
	svc := newTestService(t, gdb)
	brand := seedBrand(t, gdb, "Dior")
	perfume := seedPerfume(t, gdb, brand.ID, "Sauvage", 120)
	author := seedMember(t, gdb, "riley")
	other := seedMember(t, gdb, "casey")
	other.IsAdmin = true
	if err := gdb.Save(other).Error; err != nil {
		t.Fatalf("promote member: %v", err)
	}

	comment, err := svc.AddComment(context.Background(), perfume.ID, author.ID, AddCommentRequest{
		Rating:  3,
		Content: "fine",
	})
	if err != nil {
		t.Fatalf("add comment: %v", err)
	}

	// Ownership is strict: an admin acting on someone else's comment is still
	// a non-author.
	err = svc.DeleteComment(context.Background(), perfume.ID, comment.ID, other.ID)
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeForbidden {
		t.Fatalf("expected forbidden for non-author delete, got %v", err)
	}

	if err := svc.DeleteComment(context.Background(), perfume.ID, comment.ID, author.ID); err != nil {
		t.Fatalf("author delete: %v", err)
	}

	_, err = svc.EditComment(context.Background(), perfume.ID, comment.ID, author.ID, EditCommentRequest{})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found after delete, got %v", err)
	}
}
