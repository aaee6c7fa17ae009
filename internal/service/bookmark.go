package service

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Rogue-Bear-Innovations/bookmarker-api/internal/db"
	"github.com/Rogue-Bear-Innovations/bookmarker-api/internal/metrics"
)

type (
	BookmarkRepository interface {
		ListBookmarks(ctx context.Context, userID uint64) ([]db.Bookmark, error)
		FindBookmark(ctx context.Context, userID, id uint64) (*db.Bookmark, error)
		InsertBookmark(ctx context.Context, bookmark *db.Bookmark) error
		UpdateBookmark(ctx context.Context, userID, id uint64, patch db.BookmarkPatch) (*db.Bookmark, error)
		DeleteBookmark(ctx context.Context, userID, id uint64) error
	}

	CreateBookmarkInput struct {
		Title       string
		Description *string
		Link        string
	}

	BookmarkService struct {
		repo   BookmarkRepository
		logger *zap.SugaredLogger
	}
)

func NewBookmarkService(repo BookmarkRepository, l *zap.SugaredLogger) *BookmarkService {
	return &BookmarkService{
		repo:   repo,
		logger: l,
	}
}

func (s *BookmarkService) ListBookmarks(ctx context.Context, userID uint64) ([]db.Bookmark, error) {
	bookmarks, err := s.repo.ListBookmarks(ctx, userID)
	return bookmarks, s.observe("list", err)
}

func (s *BookmarkService) GetBookmarkByID(ctx context.Context, userID, bookmarkID uint64) (*db.Bookmark, error) {
	bookmark, err := s.repo.FindBookmark(ctx, userID, bookmarkID)
	if err != nil {
		return nil, s.observe("get", notFound(err))
	}
	if err := s.checkOwner(userID, bookmark); err != nil {
		return nil, s.observe("get", err)
	}
	return bookmark, s.observe("get", nil)
}

func (s *BookmarkService) CreateBookmark(ctx context.Context, userID uint64, in CreateBookmarkInput) (*db.Bookmark, error) {
	bookmark := db.Bookmark{
		Title:       in.Title,
		Description: in.Description,
		Link:        in.Link,
		UserID:      userID,
	}
	if err := s.repo.InsertBookmark(ctx, &bookmark); err != nil {
		return nil, s.observe("create", err)
	}
	return &bookmark, s.observe("create", nil)
}

// EditBookmarkByID changes only the fields set in patch.
func (s *BookmarkService) EditBookmarkByID(ctx context.Context, userID, bookmarkID uint64, patch db.BookmarkPatch) (*db.Bookmark, error) {
	bookmark, err := s.repo.UpdateBookmark(ctx, userID, bookmarkID, patch)
	if err != nil {
		return nil, s.observe("edit", notFound(err))
	}
	if err := s.checkOwner(userID, bookmark); err != nil {
		return nil, s.observe("edit", err)
	}
	return bookmark, s.observe("edit", nil)
}

// DeleteBookmarkByID fails with ErrBookmarkNotFound when nothing owned by
// userID was removed, including on a repeated delete.
func (s *BookmarkService) DeleteBookmarkByID(ctx context.Context, userID, bookmarkID uint64) error {
	return s.observe("delete", notFound(s.repo.DeleteBookmark(ctx, userID, bookmarkID)))
}

// checkOwner can only fail if a repository query lost its user_id filter.
func (s *BookmarkService) checkOwner(userID uint64, bookmark *db.Bookmark) error {
	if bookmark.UserID != userID {
		s.logger.Errorw("bookmark owner mismatch after scoped query",
			"bookmark_id", bookmark.ID, "owner_id", bookmark.UserID, "user_id", userID)
		return ErrBookmarkNotFound
	}
	return nil
}

func (s *BookmarkService) observe(op string, err error) error {
	result := metrics.ResultOK
	switch {
	case err == nil:
	case errors.Is(err, ErrBookmarkNotFound):
		result = "not_found"
	default:
		result = metrics.ResultError
	}
	metrics.BookmarkOperationsTotal.WithLabelValues(op, result).Inc()
	return err
}

func notFound(err error) error {
	if errors.Is(err, db.ErrNotFound) {
		return ErrBookmarkNotFound
	}
	return err
}
