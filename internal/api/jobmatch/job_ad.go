package jobmatch

import (
	"context"

	"google.golang.org/grpc"
)

const jobAdService = packageName + ".JobAdService"

// JobAdServiceServer is the server API for JobAdService: job ad search and authoring.
type JobAdServiceServer interface {
	SearchJobAds(context.Context, *SearchJobAdsRequest) (*JobAdList, error)
	GetJobAd(context.Context, *IDRequest) (*JobAd, error)
	CreateJobAd(context.Context, *CreateJobAdRequest) (*JobAd, error)
	UpdateJobAd(context.Context, *UpdateJobAdRequest) (*JobAd, error)
	AddSkillRequirement(context.Context, *AddSkillRequirementRequest) (*Ack, error)
	ListReceivedMatches(context.Context, *IDRequest) (*MatchList, error)
	ListSentMatches(context.Context, *IDRequest) (*MatchList, error)
	CountReceivedMatches(context.Context, *IDRequest) (*Count, error)
}

var JobAdService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: jobAdService,
	HandlerType: (*JobAdServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unary(jobAdService, "SearchJobAds", JobAdServiceServer.SearchJobAds),
		unary(jobAdService, "GetJobAd", JobAdServiceServer.GetJobAd),
		unary(jobAdService, "CreateJobAd", JobAdServiceServer.CreateJobAd),
		unary(jobAdService, "UpdateJobAd", JobAdServiceServer.UpdateJobAd),
		unary(jobAdService, "AddSkillRequirement", JobAdServiceServer.AddSkillRequirement),
		unary(jobAdService, "ListReceivedMatches", JobAdServiceServer.ListReceivedMatches),
		unary(jobAdService, "ListSentMatches", JobAdServiceServer.ListSentMatches),
		unary(jobAdService, "CountReceivedMatches", JobAdServiceServer.CountReceivedMatches),
	},
	Metadata: "jobmatch/v1/job_ad",
}

func RegisterJobAdServiceServer(s grpc.ServiceRegistrar, srv JobAdServiceServer) {
	s.RegisterService(&JobAdService_ServiceDesc, srv)
}

type JobAdServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewJobAdServiceClient(cc grpc.ClientConnInterface) *JobAdServiceClient {
	return &JobAdServiceClient{cc: cc}
}

func (c *JobAdServiceClient) SearchJobAds(ctx context.Context, in *SearchJobAdsRequest, opts ...grpc.CallOption) (*JobAdList, error) {
	return invoke[JobAdList](ctx, c.cc, jobAdService, "SearchJobAds", in, opts)
}

func (c *JobAdServiceClient) GetJobAd(ctx context.Context, in *IDRequest, opts ...grpc.CallOption) (*JobAd, error) {
	return invoke[JobAd](ctx, c.cc, jobAdService, "GetJobAd", in, opts)
}

func (c *JobAdServiceClient) CreateJobAd(ctx context.Context, in *CreateJobAdRequest, opts ...grpc.CallOption) (*JobAd, error) {
	return invoke[JobAd](ctx, c.cc, jobAdService, "CreateJobAd", in, opts)
}

func (c *JobAdServiceClient) UpdateJobAd(ctx context.Context, in *UpdateJobAdRequest, opts ...grpc.CallOption) (*JobAd, error) {
	return invoke[JobAd](ctx, c.cc, jobAdService, "UpdateJobAd", in, opts)
}

func (c *JobAdServiceClient) AddSkillRequirement(ctx context.Context, in *AddSkillRequirementRequest, opts ...grpc.CallOption) (*Ack, error) {
	return invoke[Ack](ctx, c.cc, jobAdService, "AddSkillRequirement", in, opts)
}

func (c *JobAdServiceClient) ListReceivedMatches(ctx context.Context, in *IDRequest, opts ...grpc.CallOption) (*MatchList, error) {
	return invoke[MatchList](ctx, c.cc, jobAdService, "ListReceivedMatches", in, opts)
}

func (c *JobAdServiceClient) ListSentMatches(ctx context.Context, in *IDRequest, opts ...grpc.CallOption) (*MatchList, error) {
	return invoke[MatchList](ctx, c.cc, jobAdService, "ListSentMatches", in, opts)
}

func (c *JobAdServiceClient) CountReceivedMatches(ctx context.Context, in *IDRequest, opts ...grpc.CallOption) (*Count, error) {
	return invoke[Count](ctx, c.cc, jobAdService, "CountReceivedMatches", in, opts)
}
