package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"stockwatch/internal/feature/comments/domain/entity"
)

// CommentRepository abstracts the persistence layer for comments.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type CommentRepository interface {
	Create(ctx context.Context, c *entity.Comment) error
	// FindByID returns ErrCommentNotFound when absent.
	FindByID(ctx context.Context, id uint) (*entity.Comment, error)
	// ListByStock returns the stock's comments, newest first.
	ListByStock(ctx context.Context, stockID uint) ([]entity.Comment, error)
	CountByStock(ctx context.Context, stockID uint) (int64, error)
	// Update writes title and content. It returns ErrCommentNotFound when the row is gone.
	Update(ctx context.Context, c *entity.Comment) error
	// Delete returns ErrCommentNotFound when nothing was deleted.
	Delete(ctx context.Context, id uint) error
}

// StockLookup reports whether a stock is in the catalog.
type StockLookup interface {
	Exists(ctx context.Context, id uint) (bool, error)
}

// CommentUsecase provides the stock comment operations.
type CommentUsecase struct {
	repo   CommentRepository
	stocks StockLookup
	now    func() time.Time
}

// NewCommentUsecase creates a new CommentUsecase.
func NewCommentUsecase(repo CommentRepository, stocks StockLookup) *CommentUsecase {
	return &CommentUsecase{repo: repo, stocks: stocks, now: time.Now}
}

// Create attaches a new comment to a stock in the catalog.
func (u *CommentUsecase) Create(ctx context.Context, stockID uint, title, content string) (*entity.Comment, error) {
	if err := u.requireStock(ctx, stockID); err != nil {
		return nil, err
	}
	if strings.TrimSpace(title) == "" {
		return nil, ErrBlankTitle
	}
	if strings.TrimSpace(content) == "" {
		return nil, ErrBlankContent
	}

	c := &entity.Comment{StockID: stockID, Title: title, Content: content, CreatedAt: u.now().UTC()}
	if err := u.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	slog.Info("comment created", "id", c.ID, "stock_id", stockID)
	return c, nil
}

func (u *CommentUsecase) GetByID(ctx context.Context, id uint) (*entity.Comment, error) {
	return u.repo.FindByID(ctx, id)
}

// ListForStock returns the comments of a stock in the catalog, newest first.
func (u *CommentUsecase) ListForStock(ctx context.Context, stockID uint) ([]entity.Comment, error) {
	if err := u.requireStock(ctx, stockID); err != nil {
		return nil, err
	}
	return u.repo.ListByStock(ctx, stockID)
}

// CountForStock returns how many comments a stock in the catalog has.
func (u *CommentUsecase) CountForStock(ctx context.Context, stockID uint) (int64, error) {
	if err := u.requireStock(ctx, stockID); err != nil {
		return 0, err
	}
	return u.repo.CountByStock(ctx, stockID)
}

// Update applies a merge-patch to the comment. A supplied title must not be blank.
func (u *CommentUsecase) Update(ctx context.Context, id uint, patch entity.CommentPatch) (*entity.Comment, error) {
	c, err := u.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if patch.Title != nil && strings.TrimSpace(*patch.Title) == "" {
		return nil, ErrBlankTitle
	}
	if patch.IsEmpty() {
		return c, nil
	}

	c.Apply(patch)
	if err := u.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (u *CommentUsecase) Delete(ctx context.Context, id uint) error {
	if err := u.repo.Delete(ctx, id); err != nil {
		return err
	}
	slog.Info("comment deleted", "id", id)
	return nil
}

func (u *CommentUsecase) requireStock(ctx context.Context, stockID uint) error {
	ok, err := u.stocks.Exists(ctx, stockID)
	if err != nil {
		return fmt.Errorf("check stock %d: %w", stockID, err)
	}
	if !ok {
		return ErrStockNotFound
	}
	return nil
}
