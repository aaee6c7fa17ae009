package transport

import (
	"go.uber.org/fx"

	"github.com/Rogue-Bear-Innovations/bookmarker-api/internal/service"
)

var (
	Module = fx.Options(
		fx.Provide(
			func(s *service.IdentityService) Identity { return s },
			func(s *service.BookmarkService) Bookmarks { return s },
			func(s *service.UserService) Users { return s },
			NewHTTPServer,
		),
		fx.Invoke(func(*HTTPServer) {}),
	)
)
