package service

import (
	"go.uber.org/fx"

	"github.com/Rogue-Bear-Innovations/bookmarker-api/internal/db"
)

var (
	Module = fx.Provide(
		fx.Annotate(NewArgon2Hasher, fx.As(new(PasswordHasher))),
		fx.Annotate(NewJWTIssuerFromConfig, fx.As(new(TokenIssuer))),
		func(repo *db.Repository) UserRepository { return repo },
		func(repo *db.Repository) BookmarkRepository { return repo },
		func() Argon2Params { return DefaultArgon2Params },
		NewIdentityService,
		NewBookmarkService,
		NewUserService,
	)
)
