package catalog

import (
	"google.golang.org/grpc"

	"github.com/oggyb/jobmatch/internal/api/jobmatch"
	"github.com/oggyb/jobmatch/internal/app"
)

// Registrar ties the Catalog service into the gRPC server
type Registrar struct {
	appCtx *app.AppContext
}

// NewRegistrar creates a new Registrar for the Catalog service
func NewRegistrar(appCtx *app.AppContext) *Registrar {
	return &Registrar{appCtx: appCtx}
}

// Register attaches the Catalog service implementation to the gRPC server
func (r *Registrar) Register(s *grpc.Server) {
	jobmatch.RegisterCatalogServiceServer(s, NewCatalogService(r.appCtx))
}
