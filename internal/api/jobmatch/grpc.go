package jobmatch

import (
	"context"

	"google.golang.org/grpc"
)

const packageName = "jobmatch.v1"

func fullMethod(service, method string) string {
	return "/" + service + "/" + method
}

// unary builds the method descriptor for one RPC of service, dispatching to
// call on the registered implementation.
func unary[S, Req, Resp any](service, name string, call func(S, context.Context, *Req) (*Resp, error)) grpc.MethodDesc {
	method := fullMethod(service, name)

	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(Req)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(S), ctx, in)
			}
			handler := func(ctx context.Context, req any) (any, error) {
				return call(srv.(S), ctx, req.(*Req))
			}
			return interceptor(ctx, in, &grpc.UnaryServerInfo{Server: srv, FullMethod: method}, handler)
		},
	}
}

// invoke performs a unary call using the JSON codec.
func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, service, name string, in any, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := cc.Invoke(ctx, fullMethod(service, name), in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
