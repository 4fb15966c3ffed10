package jobapplication

import (
	"google.golang.org/grpc"

	"github.com/oggyb/jobmatch/internal/api/jobmatch"
	"github.com/oggyb/jobmatch/internal/app"
)

// Registrar ties the JobApplication service into the gRPC server
type Registrar struct {
	appCtx *app.AppContext
}

// NewRegistrar creates a new Registrar for the JobApplication service
func NewRegistrar(appCtx *app.AppContext) *Registrar {
	return &Registrar{appCtx: appCtx}
}

// Register attaches the JobApplication service implementation to the gRPC server
func (r *Registrar) Register(s *grpc.Server) {
	jobmatch.RegisterJobApplicationServiceServer(s, NewJobApplicationService(r.appCtx))
}
