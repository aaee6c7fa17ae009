package transport

//go:generate mockgen -destination=mock_services_test.go -package=transport . Identity,Bookmarks,Users

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/Rogue-Bear-Innovations/bookmarker-api/internal/config"
	"github.com/Rogue-Bear-Innovations/bookmarker-api/internal/db"
	"github.com/Rogue-Bear-Innovations/bookmarker-api/internal/models"
	"github.com/Rogue-Bear-Innovations/bookmarker-api/internal/service"
)

type (
	Identity interface {
		Register(ctx context.Context, email, password string) (*service.AccessToken, error)
		Login(ctx context.Context, email, password string) (*service.AccessToken, error)
		VerifyToken(token string) (*service.Identity, error)
	}

	Bookmarks interface {
		ListBookmarks(ctx context.Context, userID uint64) ([]db.Bookmark, error)
		GetBookmarkByID(ctx context.Context, userID, bookmarkID uint64) (*db.Bookmark, error)
		CreateBookmark(ctx context.Context, userID uint64, in service.CreateBookmarkInput) (*db.Bookmark, error)
		EditBookmarkByID(ctx context.Context, userID, bookmarkID uint64, patch db.BookmarkPatch) (*db.Bookmark, error)
		DeleteBookmarkByID(ctx context.Context, userID, bookmarkID uint64) error
	}

	Users interface {
		GetMe(ctx context.Context, userID uint64) (*db.User, error)
		EditUser(ctx context.Context, userID uint64, patch db.UserPatch) (*db.User, error)
	}

	CustomValidator struct {
		validator *validator.Validate
	}

	HTTPServer struct {
		e         *echo.Echo
		identity  Identity
		bookmarks Bookmarks
		users     Users
		logger    *zap.SugaredLogger
	}
)

// New builds the router. It does not listen.
func New(identity Identity, bookmarks Bookmarks, users Users, logger *zap.SugaredLogger) *HTTPServer {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	instance := HTTPServer{
		e:         e,
		identity:  identity,
		bookmarks: bookmarks,
		users:     users,
		logger:    logger,
	}

	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{Generator: newRequestID}))
	e.Use(middleware.CORS())
	e.Use(instance.observeRequests)
	e.Use(middleware.BodyDumpWithConfig(middleware.BodyDumpConfig{
		Skipper: skipBodyDump,
		Handler: instance.dumpBody,
	}))
	e.Use(middleware.Recover())

	e.Validator = &CustomValidator{validator: validator.New()}
	e.HTTPErrorHandler = instance.errorHandler

	authG := e.Group("/auth")
	authG.POST("/register", instance.Register)
	authG.POST("/login", instance.Login)

	usersG := e.Group("/users", instance.AuthMiddleware)
	usersG.GET("/me", instance.UserGetMe)
	usersG.PATCH("", instance.UserEdit)

	bookmarkG := e.Group("/bookmarks", instance.AuthMiddleware)
	bookmarkG.GET("", instance.BookmarkList)
	bookmarkG.POST("", instance.BookmarkCreate)
	bookmarkG.GET("/:id", instance.BookmarkGet)
	bookmarkG.PATCH("/:id", instance.BookmarkEdit)
	bookmarkG.DELETE("/:id", instance.BookmarkDelete)

	e.GET("/ping", func(c echo.Context) error { return c.String(http.StatusOK, "pong") })
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	return &instance
}

func NewHTTPServer(lc fx.Lifecycle, cfg *config.Config, identity Identity, bookmarks Bookmarks, users Users, logger *zap.SugaredLogger) *HTTPServer {
	instance := New(identity, bookmarks, users, logger)

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			listen := cfg.HTTPAddr()
			logger.Infow("Starting HTTP server.", "addr", listen)
			go func() {
				if err := instance.e.Start(listen); err != nil && err != http.ErrServerClosed {
					logger.Fatalw("HTTP server failed", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("Stopping HTTP server.")
			return instance.e.Shutdown(ctx)
		},
	})

	return instance
}

func (s *HTTPServer) Handler() http.Handler {
	return s.e
}

func (s *HTTPServer) Register(c echo.Context) error {
	req := models.AuthReq{}
	if err := BindAndValidate(c, &req); err != nil {
		return err
	}

	token, err := s.identity.Register(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, models.TokenResp{AccessToken: token.AccessToken})
}

func (s *HTTPServer) Login(c echo.Context) error {
	req := models.AuthReq{}
	if err := BindAndValidate(c, &req); err != nil {
		return err
	}

	token, err := s.identity.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, models.TokenResp{AccessToken: token.AccessToken})
}

func (s *HTTPServer) UserGetMe(c echo.Context) error {
	identity, err := GetIdentityFromContext(c)
	if err != nil {
		return err
	}

	user, err := s.users.GetMe(c.Request().Context(), identity.UserID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, models.NewUserResp(user))
}

func (s *HTTPServer) UserEdit(c echo.Context) error {
	identity, err := GetIdentityFromContext(c)
	if err != nil {
		return err
	}

	req := models.UserEditReq{}
	if err := BindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := s.users.EditUser(c.Request().Context(), identity.UserID, req.Patch())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, models.NewUserResp(user))
}

func (s *HTTPServer) BookmarkList(c echo.Context) error {
	identity, err := GetIdentityFromContext(c)
	if err != nil {
		return err
	}

	bookmarks, err := s.bookmarks.ListBookmarks(c.Request().Context(), identity.UserID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, models.NewBookmarkListResp(bookmarks))
}

func (s *HTTPServer) BookmarkCreate(c echo.Context) error {
	identity, err := GetIdentityFromContext(c)
	if err != nil {
		return err
	}

	req := models.BookmarkCreateReq{}
	if err := BindAndValidate(c, &req); err != nil {
		return err
	}

	bookmark, err := s.bookmarks.CreateBookmark(c.Request().Context(), identity.UserID, service.CreateBookmarkInput{
		Title:       req.Title,
		Description: req.Description,
		Link:        req.Link,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, models.NewBookmarkResp(bookmark))
}

func (s *HTTPServer) BookmarkGet(c echo.Context) error {
	id, err := GetAndParseParam(c, "id")
	if err != nil {
		return err
	}
	identity, err := GetIdentityFromContext(c)
	if err != nil {
		return err
	}

	bookmark, err := s.bookmarks.GetBookmarkByID(c.Request().Context(), identity.UserID, id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, models.NewBookmarkResp(bookmark))
}

func (s *HTTPServer) BookmarkEdit(c echo.Context) error {
	id, err := GetAndParseParam(c, "id")
	if err != nil {
		return err
	}
	identity, err := GetIdentityFromContext(c)
	if err != nil {
		return err
	}

	req := models.BookmarkEditReq{}
	if err := BindAndValidate(c, &req); err != nil {
		return err
	}

	bookmark, err := s.bookmarks.EditBookmarkByID(c.Request().Context(), identity.UserID, id, req.Patch())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, models.NewBookmarkResp(bookmark))
}

func (s *HTTPServer) BookmarkDelete(c echo.Context) error {
	id, err := GetAndParseParam(c, "id")
	if err != nil {
		return err
	}
	identity, err := GetIdentityFromContext(c)
	if err != nil {
		return err
	}

	if err := s.bookmarks.DeleteBookmarkByID(c.Request().Context(), identity.UserID, id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

////////

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

func BindAndValidate(c echo.Context, v interface{}) error {
	var err error
	if err = c.Bind(v); err != nil {
		var he *echo.HTTPError
		if errors.As(err, &he) {
			return echo.NewHTTPError(http.StatusBadRequest, he.Message)
		}
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err = c.Validate(v); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

func GetParam(c echo.Context, name string) (string, error) {
	value := c.Param(name)
	if value == "" {
		return "", echo.NewHTTPError(http.StatusBadRequest, "invalid path param '"+name+"'")
	}
	return value, nil
}

func GetAndParseParam(c echo.Context, name string) (uint64, error) {
	v, err := GetParam(c, name)
	if err != nil {
		return 0, err
	}
	vv, err := strconv.ParseUint(v, 10, 63)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid path param '"+name+"'")
	}
	return vv, nil
}
