package db

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// pgUniqueViolation is the postgres SQLSTATE for unique_violation.
const pgUniqueViolation = "23505"

var (
	ErrNotFound     = errors.New("record not found")
	ErrDuplicateKey = errors.New("duplicate key")
)

type (
	UserPatch struct {
		FirstName *string
		LastName  *string
	}

	BookmarkPatch struct {
		Title       *string
		Description *string
		Link        *string
	}

	// Repository runs every query of the service. Bookmark queries are
	// always scoped by the owning user id.
	Repository struct {
		db *gorm.DB
	}
)

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) InsertUser(ctx context.Context, user *User) error {
	res := r.db.WithContext(ctx).Create(user)
	if res.Error != nil {
		if isUniqueViolation(res.Error) {
			return ErrDuplicateKey
		}
		return errors.Wrap(res.Error, "insert user")
	}
	return nil
}

func (r *Repository) FindUserByEmail(ctx context.Context, email string) (*User, error) {
	user := User{}
	res := r.db.WithContext(ctx).Where("email = ?", email).First(&user)
	if res.Error != nil {
		return nil, notFound(res.Error, "find user by email")
	}
	return &user, nil
}

func (r *Repository) FindUserByID(ctx context.Context, id uint64) (*User, error) {
	user := User{}
	res := r.db.WithContext(ctx).Where("id = ?", id).First(&user)
	if res.Error != nil {
		return nil, notFound(res.Error, "find user by id")
	}
	return &user, nil
}

func (r *Repository) UpdateUser(ctx context.Context, id uint64, patch UserPatch) (*User, error) {
	updates := map[string]interface{}{}
	if patch.FirstName != nil {
		updates["first_name"] = *patch.FirstName
	}
	if patch.LastName != nil {
		updates["last_name"] = *patch.LastName
	}

	if len(updates) != 0 {
		res := r.db.WithContext(ctx).Model(&User{}).Where("id = ?", id).Updates(updates)
		if res.Error != nil {
			return nil, errors.Wrap(res.Error, "update user")
		}
		if res.RowsAffected == 0 {
			return nil, ErrNotFound
		}
	}

	return r.FindUserByID(ctx, id)
}

func (r *Repository) ListBookmarks(ctx context.Context, userID uint64) ([]Bookmark, error) {
	sql, args, err := squirrel.
		Select("id", "created_at", "updated_at", "title", "description", "link", "user_id").
		From("bookmarks").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "build sql")
	}

	bookmarks := make([]Bookmark, 0)
	res := r.db.WithContext(ctx).Raw(sql, args...).Scan(&bookmarks)
	if res.Error != nil {
		return nil, errors.Wrap(res.Error, "scan")
	}

	return bookmarks, nil
}

func (r *Repository) FindBookmark(ctx context.Context, userID, id uint64) (*Bookmark, error) {
	bookmark := Bookmark{}
	res := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&bookmark)
	if res.Error != nil {
		return nil, notFound(res.Error, "find bookmark")
	}
	return &bookmark, nil
}

func (r *Repository) InsertBookmark(ctx context.Context, bookmark *Bookmark) error {
	res := r.db.WithContext(ctx).Create(bookmark)
	if res.Error != nil {
		return errors.Wrap(res.Error, "insert bookmark")
	}
	return nil
}

func (r *Repository) UpdateBookmark(ctx context.Context, userID, id uint64, patch BookmarkPatch) (*Bookmark, error) {
	updates := map[string]interface{}{}
	if patch.Title != nil {
		updates["title"] = *patch.Title
	}
	if patch.Description != nil {
		updates["description"] = *patch.Description
	}
	if patch.Link != nil {
		updates["link"] = *patch.Link
	}

	if len(updates) != 0 {
		res := r.db.WithContext(ctx).
			Model(&Bookmark{}).
			Where("id = ? AND user_id = ?", id, userID).
			Updates(updates)
		if res.Error != nil {
			return nil, errors.Wrap(res.Error, "update bookmark")
		}
		if res.RowsAffected == 0 {
			return nil, ErrNotFound
		}
	}

	return r.FindBookmark(ctx, userID, id)
}

func (r *Repository) DeleteBookmark(ctx context.Context, userID, id uint64) error {
	res := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&Bookmark{})
	if res.Error != nil {
		return errors.Wrap(res.Error, "delete bookmark")
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func notFound(err error, msg string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return errors.Wrap(err, msg)
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}
