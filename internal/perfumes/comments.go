package perfumes

import (
	"context"

	"github.com/TuancoderLo/perfume-api/pkg/db"
	"github.com/TuancoderLo/perfume-api/pkg/db/models"
	pkgerrors "github.com/TuancoderLo/perfume-api/pkg/errors"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AddComment creates the author's review of a perfume. A member may hold at
// most one comment per perfume.
func (s *service) AddComment(ctx context.Context, perfumeID, authorID uuid.UUID, req AddCommentRequest) (*CommentDTO, error) {
	if _, err := s.load(ctx, perfumeID); err != nil {
		return nil, err
	}

	var created *models.Comment
	err := s.client.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)

		if _, err := repo.FindCommentByAuthor(ctx, perfumeID, authorID); err == nil {
			return pkgerrors.New(pkgerrors.CodeConflict, "You have already commented on this perfume")
		} else if !db.IsNotFound(err) {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "check existing comment")
		}

		comment, err := repo.CreateComment(ctx, &models.Comment{
			PerfumeID: perfumeID,
			AuthorID:  authorID,
			Rating:    req.Rating,
			Content:   req.Content,
		})
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create comment")
		}
		created = comment
		return nil
	})
	if err != nil {
		return nil, err
	}

	dto := commentToDTO(created)
	return &dto, nil
}

// EditComment applies a partial edit. Only the author may edit their comment.
func (s *service) EditComment(ctx context.Context, perfumeID, commentID, actorID uuid.UUID, req EditCommentRequest) (*CommentDTO, error) {
	var edited *models.Comment
	err := s.client.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)

		comment, err := repo.FindComment(ctx, perfumeID, commentID)
		if err != nil {
			if db.IsNotFound(err) {
				return pkgerrors.New(pkgerrors.CodeNotFound, "Comment not found")
			}
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load comment")
		}
		if comment.AuthorID != actorID {
			return pkgerrors.New(pkgerrors.CodeForbidden, "You can only edit your own comment")
		}

		if req.Rating != nil {
			comment.Rating = *req.Rating
		}
		if req.Content != nil {
			comment.Content = *req.Content
		}

		if err := repo.SaveComment(ctx, comment); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "save comment")
		}
		edited = comment
		return nil
	})
	if err != nil {
		return nil, err
	}

	dto := commentToDTO(edited)
	return &dto, nil
}

// DeleteComment removes a comment. Ownership is strict: only the author may
// delete, the admin flag grants nothing here.
func (s *service) DeleteComment(ctx context.Context, perfumeID, commentID, actorID uuid.UUID) error {
	return s.client.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)

		comment, err := repo.FindComment(ctx, perfumeID, commentID)
		if err != nil {
			if db.IsNotFound(err) {
				return pkgerrors.New(pkgerrors.CodeNotFound, "Comment not found")
			}
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load comment")
		}
		if comment.AuthorID != actorID {
			return pkgerrors.New(pkgerrors.CodeForbidden, "You can only delete your own comment")
		}

		if err := repo.DeleteComment(ctx, comment.ID); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "delete comment")
		}
		return nil
	})
}
