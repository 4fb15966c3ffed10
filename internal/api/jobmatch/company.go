package jobmatch

import (
	"context"

	"google.golang.org/grpc"
)

const companyService = packageName + ".CompanyService"

// CompanyServiceServer is the server API for CompanyService: company accounts and the requests their ads received.
type CompanyServiceServer interface {
	ListCompanies(context.Context, *PageRequest) (*CompanyList, error)
	GetCompany(context.Context, *GetCompanyRequest) (*Company, error)
	CreateCompany(context.Context, *CreateCompanyRequest) (*Company, error)
	UpdateCompany(context.Context, *UpdateCompanyRequest) (*Company, error)
	UploadLogo(context.Context, *BlobRequest) (*Ack, error)
	DownloadLogo(context.Context, *IDRequest) (*Blob, error)
	DeleteLogo(context.Context, *IDRequest) (*Ack, error)
	ListMatchRequests(context.Context, *OwnerPageRequest) (*MatchRequestApplicationList, error)
	ProposeSkill(context.Context, *ProposeSkillRequest) (*PendingSkill, error)
}

var CompanyService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: companyService,
	HandlerType: (*CompanyServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unary(companyService, "ListCompanies", CompanyServiceServer.ListCompanies),
		unary(companyService, "GetCompany", CompanyServiceServer.GetCompany),
		unary(companyService, "CreateCompany", CompanyServiceServer.CreateCompany),
		unary(companyService, "UpdateCompany", CompanyServiceServer.UpdateCompany),
		unary(companyService, "UploadLogo", CompanyServiceServer.UploadLogo),
		unary(companyService, "DownloadLogo", CompanyServiceServer.DownloadLogo),
		unary(companyService, "DeleteLogo", CompanyServiceServer.DeleteLogo),
		unary(companyService, "ListMatchRequests", CompanyServiceServer.ListMatchRequests),
		unary(companyService, "ProposeSkill", CompanyServiceServer.ProposeSkill),
	},
	Metadata: "jobmatch/v1/company",
}

func RegisterCompanyServiceServer(s grpc.ServiceRegistrar, srv CompanyServiceServer) {
	s.RegisterService(&CompanyService_ServiceDesc, srv)
}

type CompanyServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewCompanyServiceClient(cc grpc.ClientConnInterface) *CompanyServiceClient {
	return &CompanyServiceClient{cc: cc}
}

func (c *CompanyServiceClient) ListCompanies(ctx context.Context, in *PageRequest, opts ...grpc.CallOption) (*CompanyList, error) {
	return invoke[CompanyList](ctx, c.cc, companyService, "ListCompanies", in, opts)
}

func (c *CompanyServiceClient) GetCompany(ctx context.Context, in *GetCompanyRequest, opts ...grpc.CallOption) (*Company, error) {
	return invoke[Company](ctx, c.cc, companyService, "GetCompany", in, opts)
}

func (c *CompanyServiceClient) CreateCompany(ctx context.Context, in *CreateCompanyRequest, opts ...grpc.CallOption) (*Company, error) {
	return invoke[Company](ctx, c.cc, companyService, "CreateCompany", in, opts)
}

func (c *CompanyServiceClient) UpdateCompany(ctx context.Context, in *UpdateCompanyRequest, opts ...grpc.CallOption) (*Company, error) {
	return invoke[Company](ctx, c.cc, companyService, "UpdateCompany", in, opts)
}

func (c *CompanyServiceClient) UploadLogo(ctx context.Context, in *BlobRequest, opts ...grpc.CallOption) (*Ack, error) {
	return invoke[Ack](ctx, c.cc, companyService, "UploadLogo", in, opts)
}

func (c *CompanyServiceClient) DownloadLogo(ctx context.Context, in *IDRequest, opts ...grpc.CallOption) (*Blob, error) {
	return invoke[Blob](ctx, c.cc, companyService, "DownloadLogo", in, opts)
}

func (c *CompanyServiceClient) DeleteLogo(ctx context.Context, in *IDRequest, opts ...grpc.CallOption) (*Ack, error) {
	return invoke[Ack](ctx, c.cc, companyService, "DeleteLogo", in, opts)
}

func (c *CompanyServiceClient) ListMatchRequests(ctx context.Context, in *OwnerPageRequest, opts ...grpc.CallOption) (*MatchRequestApplicationList, error) {
	return invoke[MatchRequestApplicationList](ctx, c.cc, companyService, "ListMatchRequests", in, opts)
}

func (c *CompanyServiceClient) ProposeSkill(ctx context.Context, in *ProposeSkillRequest, opts ...grpc.CallOption) (*PendingSkill, error) {
	return invoke[PendingSkill](ctx, c.cc, companyService, "ProposeSkill", in, opts)
}
