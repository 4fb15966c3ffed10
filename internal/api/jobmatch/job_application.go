package jobmatch

import (
	"context"

	"google.golang.org/grpc"
)

const jobApplicationService = packageName + ".JobApplicationService"

// JobApplicationServiceServer is the server API for JobApplicationService: job application search and authoring.
type JobApplicationServiceServer interface {
	SearchJobApplications(context.Context, *SearchJobApplicationsRequest) (*JobApplicationList, error)
	GetJobApplication(context.Context, *IDRequest) (*JobApplication, error)
	CreateJobApplication(context.Context, *CreateJobApplicationRequest) (*JobApplication, error)
	UpdateJobApplication(context.Context, *UpdateJobApplicationRequest) (*JobApplication, error)
	ListMatchRequests(context.Context, *OwnerPageRequest) (*MatchRequestAdList, error)
}

var JobApplicationService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: jobApplicationService,
	HandlerType: (*JobApplicationServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unary(jobApplicationService, "SearchJobApplications", JobApplicationServiceServer.SearchJobApplications),
		unary(jobApplicationService, "GetJobApplication", JobApplicationServiceServer.GetJobApplication),
		unary(jobApplicationService, "CreateJobApplication", JobApplicationServiceServer.CreateJobApplication),
		unary(jobApplicationService, "UpdateJobApplication", JobApplicationServiceServer.UpdateJobApplication),
		unary(jobApplicationService, "ListMatchRequests", JobApplicationServiceServer.ListMatchRequests),
	},
	Metadata: "jobmatch/v1/job_application",
}

func RegisterJobApplicationServiceServer(s grpc.ServiceRegistrar, srv JobApplicationServiceServer) {
	s.RegisterService(&JobApplicationService_ServiceDesc, srv)
}

type JobApplicationServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewJobApplicationServiceClient(cc grpc.ClientConnInterface) *JobApplicationServiceClient {
	return &JobApplicationServiceClient{cc: cc}
}

func (c *JobApplicationServiceClient) SearchJobApplications(ctx context.Context, in *SearchJobApplicationsRequest, opts ...grpc.CallOption) (*JobApplicationList, error) {
	return invoke[JobApplicationList](ctx, c.cc, jobApplicationService, "SearchJobApplications", in, opts)
}

func (c *JobApplicationServiceClient) GetJobApplication(ctx context.Context, in *IDRequest, opts ...grpc.CallOption) (*JobApplication, error) {
	return invoke[JobApplication](ctx, c.cc, jobApplicationService, "GetJobApplication", in, opts)
}

func (c *JobApplicationServiceClient) CreateJobApplication(ctx context.Context, in *CreateJobApplicationRequest, opts ...grpc.CallOption) (*JobApplication, error) {
	return invoke[JobApplication](ctx, c.cc, jobApplicationService, "CreateJobApplication", in, opts)
}

func (c *JobApplicationServiceClient) UpdateJobApplication(ctx context.Context, in *UpdateJobApplicationRequest, opts ...grpc.CallOption) (*JobApplication, error) {
	return invoke[JobApplication](ctx, c.cc, jobApplicationService, "UpdateJobApplication", in, opts)
}

func (c *JobApplicationServiceClient) ListMatchRequests(ctx context.Context, in *OwnerPageRequest, opts ...grpc.CallOption) (*MatchRequestAdList, error) {
	return invoke[MatchRequestAdList](ctx, c.cc, jobApplicationService, "ListMatchRequests", in, opts)
}
