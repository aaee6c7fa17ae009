package models

import (
	"github.com/Rogue-Bear-Innovations/bookmarker-api/internal/db"
)

func NewUserResp(u *db.User) UserResp {
	return UserResp{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func NewBookmarkResp(b *db.Bookmark) BookmarkResp {
	return BookmarkResp{
		ID:          b.ID,
		Title:       b.Title,
		Description: b.Description,
		Link:        b.Link,
		UserID:      b.UserID,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

// NewBookmarkListResp never returns nil, so an empty list encodes as [].
func NewBookmarkListResp(bookmarks []db.Bookmark) []BookmarkResp {
	resp := make([]BookmarkResp, len(bookmarks))
	for i := range bookmarks {
		resp[i] = NewBookmarkResp(&bookmarks[i])
	}
	return resp
}

func (r UserEditReq) Patch() db.UserPatch {
	return db.UserPatch{
		FirstName: r.FirstName,
		LastName:  r.LastName,
	}
}

func (r BookmarkEditReq) Patch() db.BookmarkPatch {
	return db.BookmarkPatch{
		Title:       r.Title,
		Description: r.Description,
		Link:        r.Link,
	}
}
