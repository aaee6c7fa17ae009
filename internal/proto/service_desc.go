package proto

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

const ServiceName = "bookmarker.Bookmarker"

// BookmarkerServer is the server API for the bookmarker.Bookmarker service.
// Every message is a google.protobuf.Struct shaped like the HTTP JSON body.
type BookmarkerServer interface {
	Register(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Login(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListBookmarks(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetBookmark(context.Context, *structpb.Struct) (*structpb.Struct, error)
	CreateBookmark(context.Context, *structpb.Struct) (*structpb.Struct, error)
	EditBookmark(context.Context, *structpb.Struct) (*structpb.Struct, error)
	DeleteBookmark(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

type unaryCall func(srv BookmarkerServer, ctx context.Context, in *structpb.Struct) (*structpb.Struct, error)

func FullMethod(method string) string {
	return "/" + ServiceName + "/" + method
}

func unaryHandler(method string, call unaryCall) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: method,
		Handler: func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
			in := new(structpb.Struct)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(BookmarkerServer), ctx, in)
			}
			info := &grpc.UnaryServerInfo{
				Server:     srv,
				FullMethod: FullMethod(method),
			}
			handler := func(ctx context.Context, req interface{}) (interface{}, error) {
				return call(srv.(BookmarkerServer), ctx, req.(*structpb.Struct))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

var bookmarkerServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*BookmarkerServer)(nil),
	Methods: []grpc.MethodDesc{
		unaryHandler("Register", BookmarkerServer.Register),
		unaryHandler("Login", BookmarkerServer.Login),
		unaryHandler("ListBookmarks", BookmarkerServer.ListBookmarks),
		unaryHandler("GetBookmark", BookmarkerServer.GetBookmark),
		unaryHandler("CreateBookmark", BookmarkerServer.CreateBookmark),
		unaryHandler("EditBookmark", BookmarkerServer.EditBookmark),
		unaryHandler("DeleteBookmark", BookmarkerServer.DeleteBookmark),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "bookmarker.proto",
}

func RegisterBookmarkerServer(s grpc.ServiceRegistrar, srv BookmarkerServer) {
	s.RegisterService(&bookmarkerServiceDesc, srv)
}

// BookmarkerClient calls bookmarker.Bookmarker.
type BookmarkerClient struct {
	cc grpc.ClientConnInterface
}

func NewBookmarkerClient(cc grpc.ClientConnInterface) *BookmarkerClient {
	return &BookmarkerClient{cc: cc}
}

func (c *BookmarkerClient) invoke(ctx context.Context, method string, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, FullMethod(method), in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *BookmarkerClient) Register(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, "Register", in, opts...)
}

func (c *BookmarkerClient) Login(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, "Login", in, opts...)
}

func (c *BookmarkerClient) ListBookmarks(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, "ListBookmarks", in, opts...)
}

func (c *BookmarkerClient) GetBookmark(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, "GetBookmark", in, opts...)
}

func (c *BookmarkerClient) CreateBookmark(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, "CreateBookmark", in, opts...)
}

func (c *BookmarkerClient) EditBookmark(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, "EditBookmark", in, opts...)
}

func (c *BookmarkerClient) DeleteBookmark(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, "DeleteBookmark", in, opts...)
}
