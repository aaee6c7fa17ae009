package proto

import (
	"context"
	"encoding/json"
	"net"
	"runtime/debug"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/Rogue-Bear-Innovations/bookmarker-api/internal/config"
	"github.com/Rogue-Bear-Innovations/bookmarker-api/internal/db"
	"github.com/Rogue-Bear-Innovations/bookmarker-api/internal/metrics"
	"github.com/Rogue-Bear-Innovations/bookmarker-api/internal/models"
	"github.com/Rogue-Bear-Innovations/bookmarker-api/internal/service"
)

const authorizationKey = "authorization"

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

	BookmarkerServerImpl struct {
		identity  Identity
		bookmarks Bookmarks
		validate  *validator.Validate
		logger    *zap.SugaredLogger
		server    *grpc.Server
		lis       net.Listener
	}

	identityKey struct{}
)

var publicMethods = map[string]bool{
	FullMethod("Register"): true,
	FullMethod("Login"):    true,
}

func New(identity Identity, bookmarks Bookmarks, logger *zap.SugaredLogger) *BookmarkerServerImpl {
	instance := BookmarkerServerImpl{
		identity:  identity,
		bookmarks: bookmarks,
		validate:  validator.New(),
		logger:    logger,
	}

	instance.server = grpc.NewServer(
		grpc.ChainUnaryInterceptor(instance.recoverInterceptor, instance.observeInterceptor, instance.authInterceptor),
	)
	RegisterBookmarkerServer(instance.server, &instance)

	return &instance
}

func NewGRPCServer(lc fx.Lifecycle, cfg *config.Config, identity Identity, bookmarks Bookmarks, logger *zap.SugaredLogger) *BookmarkerServerImpl {
	instance := New(identity, bookmarks, logger)

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			lis, err := net.Listen("tcp", cfg.GRPCAddr())
			if err != nil {
				return errors.Wrap(err, "listen grpc")
			}
			instance.lis = lis
			logger.Infow("Starting GRPC server.", "addr", lis.Addr().String())
			go instance.Serve(lis)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("Stopping GRPC server.")
			instance.server.GracefulStop()
			return nil
		},
	})

	return instance
}

// Serve blocks until the server stops.
func (s *BookmarkerServerImpl) Serve(lis net.Listener) {
	if err := s.server.Serve(lis); err != nil {
		s.logger.Errorw("GRPC server failed", "error", err)
	}
}

// Addr is the listen address once the fx lifecycle has started.
func (s *BookmarkerServerImpl) Addr() net.Addr {
	if s.lis == nil {
		return nil
	}
	return s.lis.Addr()
}

func (s *BookmarkerServerImpl) Stop() {
	s.server.Stop()
}

func (s *BookmarkerServerImpl) Register(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	req := models.AuthReq{}
	if err := s.decode(in, &req); err != nil {
		return nil, err
	}

	token, err := s.identity.Register(ctx, req.Email, req.Password)
	if err != nil {
		return nil, s.toStatus(err)
	}
	return encode(models.TokenResp{AccessToken: token.AccessToken})
}

func (s *BookmarkerServerImpl) Login(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	req := models.AuthReq{}
	if err := s.decode(in, &req); err != nil {
		return nil, err
	}

	token, err := s.identity.Login(ctx, req.Email, req.Password)
	if err != nil {
		return nil, s.toStatus(err)
	}
	return encode(models.TokenResp{AccessToken: token.AccessToken})
}

func (s *BookmarkerServerImpl) ListBookmarks(ctx context.Context, _ *structpb.Struct) (*structpb.Struct, error) {
	identity, err := identityFromContext(ctx)
	if err != nil {
		return nil, err
	}

	bookmarks, err := s.bookmarks.ListBookmarks(ctx, identity.UserID)
	if err != nil {
		return nil, s.toStatus(err)
	}
	return encode(models.BookmarkListResp{Items: models.NewBookmarkListResp(bookmarks)})
}

func (s *BookmarkerServerImpl) GetBookmark(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	identity, err := identityFromContext(ctx)
	if err != nil {
		return nil, err
	}
	req := models.BookmarkIDReq{}
	if err := s.decode(in, &req); err != nil {
		return nil, err
	}

	bookmark, err := s.bookmarks.GetBookmarkByID(ctx, identity.UserID, req.ID)
	if err != nil {
		return nil, s.toStatus(err)
	}
	return encode(models.NewBookmarkResp(bookmark))
}

func (s *BookmarkerServerImpl) CreateBookmark(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	identity, err := identityFromContext(ctx)
	if err != nil {
		return nil, err
	}
	req := models.BookmarkCreateReq{}
	if err := s.decode(in, &req); err != nil {
		return nil, err
	}

	bookmark, err := s.bookmarks.CreateBookmark(ctx, identity.UserID, service.CreateBookmarkInput{
		Title:       req.Title,
		Description: req.Description,
		Link:        req.Link,
	})
	if err != nil {
		return nil, s.toStatus(err)
	}
	return encode(models.NewBookmarkResp(bookmark))
}

func (s *BookmarkerServerImpl) EditBookmark(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	identity, err := identityFromContext(ctx)
	if err != nil {
		return nil, err
	}
	idReq := models.BookmarkIDReq{}
	if err := s.decode(in, &idReq); err != nil {
		return nil, err
	}
	req := models.BookmarkEditReq{}
	if err := s.decode(in, &req); err != nil {
		return nil, err
	}

	bookmark, err := s.bookmarks.EditBookmarkByID(ctx, identity.UserID, idReq.ID, req.Patch())
	if err != nil {
		return nil, s.toStatus(err)
	}
	return encode(models.NewBookmarkResp(bookmark))
}

func (s *BookmarkerServerImpl) DeleteBookmark(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	identity, err := identityFromContext(ctx)
	if err != nil {
		return nil, err
	}
	req := models.BookmarkIDReq{}
	if err := s.decode(in, &req); err != nil {
		return nil, err
	}

	if err := s.bookmarks.DeleteBookmarkByID(ctx, identity.UserID, req.ID); err != nil {
		return nil, s.toStatus(err)
	}
	return &structpb.Struct{}, nil
}

////////

func (s *BookmarkerServerImpl) authInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	if publicMethods[info.FullMethod] {
		return handler(ctx, req)
	}

	var header string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if values := md.Get(authorizationKey); len(values) > 0 {
			header = values[0]
		}
	}
	scheme, token, found := strings.Cut(header, " ")
	token = strings.TrimSpace(token)
	if !found || !strings.EqualFold(scheme, "Bearer") || token == "" {
		return nil, status.Error(codes.Unauthenticated, "missing bearer token")
	}

	identity, err := s.identity.VerifyToken(token)
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, "invalid token")
	}

	return handler(context.WithValue(ctx, identityKey{}, identity), req)
}

func (s *BookmarkerServerImpl) observeInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	resp, err := handler(ctx, req)
	code := status.Code(err)
	metrics.GRPCRequestsTotal.WithLabelValues(info.FullMethod, code.String()).Inc()
	s.logger.Infow("grpc request", "method", info.FullMethod, "code", code.String())
	return resp, err
}

func (s *BookmarkerServerImpl) recoverInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (resp interface{}, err error) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Errorw("grpc handler panicked", "method", info.FullMethod, "panic", r, "stack", string(debug.Stack()))
			resp, err = nil, status.Error(codes.Internal, "internal error")
		}
	}()
	return handler(ctx, req)
}

// WithBearer attaches an access token to outgoing calls.
func WithBearer(ctx context.Context, token string) context.Context {
	return metadata.AppendToOutgoingContext(ctx, authorizationKey, "Bearer "+token)
}

func identityFromContext(ctx context.Context) (*service.Identity, error) {
	identity, ok := ctx.Value(identityKey{}).(*service.Identity)
	if !ok || identity == nil {
		return nil, status.Error(codes.Unauthenticated, "no identity found in context")
	}
	return identity, nil
}

func (s *BookmarkerServerImpl) toStatus(err error) error {
	switch {
	case errors.Is(err, service.ErrConflict), errors.Is(err, service.ErrWrongCredentials):
		return status.Error(codes.PermissionDenied, errors.Cause(err).Error())
	case errors.Is(err, service.ErrBookmarkNotFound):
		return status.Error(codes.NotFound, service.ErrBookmarkNotFound.Error())
	case errors.Is(err, service.ErrUnauthorized), errors.Is(err, service.ErrUserNotFound):
		return status.Error(codes.Unauthenticated, "unauthorized")
	}
	s.logger.Errorw("grpc request failed", "error", err)
	return status.Error(codes.Internal, "internal error")
}

// decode maps a request struct onto v and validates it.
func (s *BookmarkerServerImpl) decode(in *structpb.Struct, v interface{}) error {
	b, err := protojson.Marshal(in)
	if err != nil {
		return status.Error(codes.InvalidArgument, err.Error())
	}
	if err := json.Unmarshal(b, v); err != nil {
		return status.Error(codes.InvalidArgument, err.Error())
	}
	if err := s.validate.Struct(v); err != nil {
		return status.Error(codes.InvalidArgument, err.Error())
	}
	return nil
}

func encode(v interface{}) (*structpb.Struct, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	out := &structpb.Struct{}
	if err := protojson.Unmarshal(b, out); err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return out, nil
}
