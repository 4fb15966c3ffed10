package jobmatch

import (
	"context"

	"google.golang.org/grpc"
)

const professionalService = packageName + ".ProfessionalService"

// ProfessionalServiceServer is the server API for ProfessionalService: professional profiles and their applications.
type ProfessionalServiceServer interface {
	ListProfessionals(context.Context, *ListProfessionalsRequest) (*ProfessionalList, error)
	GetProfessional(context.Context, *IDRequest) (*ProfessionalProfile, error)
	CreateProfessional(context.Context, *CreateProfessionalRequest) (*ProfessionalProfile, error)
	UpdateProfessional(context.Context, *UpdateProfessionalRequest) (*ProfessionalProfile, error)
	SetPrivateMatches(context.Context, *SetPrivateMatchesRequest) (*Ack, error)
	UploadPhoto(context.Context, *BlobRequest) (*Ack, error)
	DownloadPhoto(context.Context, *IDRequest) (*Blob, error)
	UploadCV(context.Context, *BlobRequest) (*Ack, error)
	DownloadCV(context.Context, *IDRequest) (*Blob, error)
	DeleteCV(context.Context, *IDRequest) (*Ack, error)
	ListApplications(context.Context, *ListProfessionalApplicationsRequest) (*JobApplicationList, error)
	GetApplication(context.Context, *ProfessionalApplicationRequest) (*JobApplication, error)
	ListSkills(context.Context, *IDRequest) (*SkillList, error)
	ListMatchRequests(context.Context, *IDRequest) (*MatchRequestAdList, error)
}

var ProfessionalService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: professionalService,
	HandlerType: (*ProfessionalServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unary(professionalService, "ListProfessionals", ProfessionalServiceServer.ListProfessionals),
		unary(professionalService, "GetProfessional", ProfessionalServiceServer.GetProfessional),
		unary(professionalService, "CreateProfessional", ProfessionalServiceServer.CreateProfessional),
		unary(professionalService, "UpdateProfessional", ProfessionalServiceServer.UpdateProfessional),
		unary(professionalService, "SetPrivateMatches", ProfessionalServiceServer.SetPrivateMatches),
		unary(professionalService, "UploadPhoto", ProfessionalServiceServer.UploadPhoto),
		unary(professionalService, "DownloadPhoto", ProfessionalServiceServer.DownloadPhoto),
		unary(professionalService, "UploadCV", ProfessionalServiceServer.UploadCV),
		unary(professionalService, "DownloadCV", ProfessionalServiceServer.DownloadCV),
		unary(professionalService, "DeleteCV", ProfessionalServiceServer.DeleteCV),
		unary(professionalService, "ListApplications", ProfessionalServiceServer.ListApplications),
		unary(professionalService, "GetApplication", ProfessionalServiceServer.GetApplication),
		unary(professionalService, "ListSkills", ProfessionalServiceServer.ListSkills),
		unary(professionalService, "ListMatchRequests", ProfessionalServiceServer.ListMatchRequests),
	},
	Metadata: "jobmatch/v1/professional",
}

func RegisterProfessionalServiceServer(s grpc.ServiceRegistrar, srv ProfessionalServiceServer) {
	s.RegisterService(&ProfessionalService_ServiceDesc, srv)
}

type ProfessionalServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewProfessionalServiceClient(cc grpc.ClientConnInterface) *ProfessionalServiceClient {
	return &ProfessionalServiceClient{cc: cc}
}

func (c *ProfessionalServiceClient) ListProfessionals(ctx context.Context, in *ListProfessionalsRequest, opts ...grpc.CallOption) (*ProfessionalList, error) {
	return invoke[ProfessionalList](ctx, c.cc, professionalService, "ListProfessionals", in, opts)
}

func (c *ProfessionalServiceClient) GetProfessional(ctx context.Context, in *IDRequest, opts ...grpc.CallOption) (*ProfessionalProfile, error) {
	return invoke[ProfessionalProfile](ctx, c.cc, professionalService, "GetProfessional", in, opts)
}

func (c *ProfessionalServiceClient) CreateProfessional(ctx context.Context, in *CreateProfessionalRequest, opts ...grpc.CallOption) (*ProfessionalProfile, error) {
	return invoke[ProfessionalProfile](ctx, c.cc, professionalService, "CreateProfessional", in, opts)
}

func (c *ProfessionalServiceClient) UpdateProfessional(ctx context.Context, in *UpdateProfessionalRequest, opts ...grpc.CallOption) (*ProfessionalProfile, error) {
	return invoke[ProfessionalProfile](ctx, c.cc, professionalService, "UpdateProfessional", in, opts)
}

func (c *ProfessionalServiceClient) SetPrivateMatches(ctx context.Context, in *SetPrivateMatchesRequest, opts ...grpc.CallOption) (*Ack, error) {
	return invoke[Ack](ctx, c.cc, professionalService, "SetPrivateMatches", in, opts)
}

func (c *ProfessionalServiceClient) UploadPhoto(ctx context.Context, in *BlobRequest, opts ...grpc.CallOption) (*Ack, error) {
	return invoke[Ack](ctx, c.cc, professionalService, "UploadPhoto", in, opts)
}

func (c *ProfessionalServiceClient) DownloadPhoto(ctx context.Context, in *IDRequest, opts ...grpc.CallOption) (*Blob, error) {
	return invoke[Blob](ctx, c.cc, professionalService, "DownloadPhoto", in, opts)
}

func (c *ProfessionalServiceClient) UploadCV(ctx context.Context, in *BlobRequest, opts ...grpc.CallOption) (*Ack, error) {
	return invoke[Ack](ctx, c.cc, professionalService, "UploadCV", in, opts)
}

func (c *ProfessionalServiceClient) DownloadCV(ctx context.Context, in *IDRequest, opts ...grpc.CallOption) (*Blob, error) {
	return invoke[Blob](ctx, c.cc, professionalService, "DownloadCV", in, opts)
}

func (c *ProfessionalServiceClient) DeleteCV(ctx context.Context, in *IDRequest, opts ...grpc.CallOption) (*Ack, error) {
	return invoke[Ack](ctx, c.cc, professionalService, "DeleteCV", in, opts)
}

func (c *ProfessionalServiceClient) ListApplications(ctx context.Context, in *ListProfessionalApplicationsRequest, opts ...grpc.CallOption) (*JobApplicationList, error) {
	return invoke[JobApplicationList](ctx, c.cc, professionalService, "ListApplications", in, opts)
}

func (c *ProfessionalServiceClient) GetApplication(ctx context.Context, in *ProfessionalApplicationRequest, opts ...grpc.CallOption) (*JobApplication, error) {
	return invoke[JobApplication](ctx, c.cc, professionalService, "GetApplication", in, opts)
}

func (c *ProfessionalServiceClient) ListSkills(ctx context.Context, in *IDRequest, opts ...grpc.CallOption) (*SkillList, error) {
	return invoke[SkillList](ctx, c.cc, professionalService, "ListSkills", in, opts)
}

func (c *ProfessionalServiceClient) ListMatchRequests(ctx context.Context, in *IDRequest, opts ...grpc.CallOption) (*MatchRequestAdList, error) {
	return invoke[MatchRequestAdList](ctx, c.cc, professionalService, "ListMatchRequests", in, opts)
}
