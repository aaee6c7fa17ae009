package models

import (
	"time"
)

type AuthReq struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type TokenResp struct {
	AccessToken string `json:"access_token"`
}

type UserEditReq struct {
	FirstName *string `json:"firstName" validate:"omitnil,max=255"`
	LastName  *string `json:"lastName" validate:"omitnil,max=255"`
}

type UserResp struct {
	ID        uint64    `json:"id"`
	Email     string    `json:"email"`
	FirstName *string   `json:"firstName,omitempty"`
	LastName  *string   `json:"lastName,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type BookmarkCreateReq struct {
	Title       string  `json:"title" validate:"required"`
	Description *string `json:"description"`
	Link        string  `json:"link" validate:"required,url"`
}

// BookmarkEditReq leaves absent fields untouched; present ones must still
// be valid.
type BookmarkEditReq struct {
	Title       *string `json:"title" validate:"omitnil,min=1"`
	Description *string `json:"description"`
	Link        *string `json:"link" validate:"omitnil,url"`
}

// BookmarkIDReq ids stay within the signed range the database accepts.
type BookmarkIDReq struct {
	ID uint64 `json:"id" validate:"required,max=9223372036854775807"`
}

type BookmarkResp struct {
	ID          uint64    `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description,omitempty"`
	Link        string    `json:"link"`
	UserID      uint64    `json:"userId"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type BookmarkListResp struct {
	Items []BookmarkResp `json:"items"`
}
