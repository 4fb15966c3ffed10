package jobmatch

import (
	"context"

	"google.golang.org/grpc"
)

const catalogService = packageName + ".CatalogService"

// CatalogServiceServer is the server API for CatalogService: reference data and the skill proposal inbox.
type CatalogServiceServer interface {
	ListCities(context.Context, *Empty) (*CityList, error)
	GetCity(context.Context, *GetCityRequest) (*City, error)
	ListCategories(context.Context, *Empty) (*CategoryList, error)
	ListSkills(context.Context, *IDRequest) (*SkillList, error)
	CreateSkill(context.Context, *CreateSkillRequest) (*Skill, error)
	ListPendingSkills(context.Context, *Empty) (*PendingSkillList, error)
}

var CatalogService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: catalogService,
	HandlerType: (*CatalogServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unary(catalogService, "ListCities", CatalogServiceServer.ListCities),
		unary(catalogService, "GetCity", CatalogServiceServer.GetCity),
		unary(catalogService, "ListCategories", CatalogServiceServer.ListCategories),
		unary(catalogService, "ListSkills", CatalogServiceServer.ListSkills),
		unary(catalogService, "CreateSkill", CatalogServiceServer.CreateSkill),
		unary(catalogService, "ListPendingSkills", CatalogServiceServer.ListPendingSkills),
	},
	Metadata: "jobmatch/v1/catalog",
}

func RegisterCatalogServiceServer(s grpc.ServiceRegistrar, srv CatalogServiceServer) {
	s.RegisterService(&CatalogService_ServiceDesc, srv)
}

type CatalogServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewCatalogServiceClient(cc grpc.ClientConnInterface) *CatalogServiceClient {
	return &CatalogServiceClient{cc: cc}
}

func (c *CatalogServiceClient) ListCities(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*CityList, error) {
	return invoke[CityList](ctx, c.cc, catalogService, "ListCities", in, opts)
}

func (c *CatalogServiceClient) GetCity(ctx context.Context, in *GetCityRequest, opts ...grpc.CallOption) (*City, error) {
	return invoke[City](ctx, c.cc, catalogService, "GetCity", in, opts)
}

func (c *CatalogServiceClient) ListCategories(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*CategoryList, error) {
	return invoke[CategoryList](ctx, c.cc, catalogService, "ListCategories", in, opts)
}

func (c *CatalogServiceClient) ListSkills(ctx context.Context, in *IDRequest, opts ...grpc.CallOption) (*SkillList, error) {
	return invoke[SkillList](ctx, c.cc, catalogService, "ListSkills", in, opts)
}

func (c *CatalogServiceClient) CreateSkill(ctx context.Context, in *CreateSkillRequest, opts ...grpc.CallOption) (*Skill, error) {
	return invoke[Skill](ctx, c.cc, catalogService, "CreateSkill", in, opts)
}

func (c *CatalogServiceClient) ListPendingSkills(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*PendingSkillList, error) {
	return invoke[PendingSkillList](ctx, c.cc, catalogService, "ListPendingSkills", in, opts)
}
