package jobad

import (
	"google.golang.org/grpc"

	"github.com/oggyb/jobmatch/internal/api/jobmatch"
	"github.com/oggyb/jobmatch/internal/app"
)

// Registrar ties the JobAd service into the gRPC server
type Registrar struct {
	appCtx *app.AppContext
}

// NewRegistrar creates a new Registrar for the JobAd service
func NewRegistrar(appCtx *app.AppContext) *Registrar {
	return &Registrar{appCtx: appCtx}
}

// Register attaches the JobAd service implementation to the gRPC server
func (r *Registrar) Register(s *grpc.Server) {
	jobmatch.RegisterJobAdServiceServer(s, NewJobAdService(r.appCtx))
}
