package httpserver

import (
	"context"
	"time"

	"github.com/skillcoder/kubedev-controller/internal/infra/appstate"
	"github.com/skillcoder/kubedev-controller/internal/infra/pinger"
	"github.com/skillcoder/kubedev-controller/internal/logic/workspace"
)

// appstater is an internal interface for application state management
type appstater interface {
	GetState() appstate.State
	IsHealthy() bool
	IsReady() bool
	GetUptime() time.Duration
	GetStartTime() time.Time
	GetAllStats() map[string]*pinger.Statistics
}

// WorkspaceService is the lifecycle API served under /api/v1.
type WorkspaceService interface {
	CreateWorkspace(
		ctx context.Context,
		requester workspace.Requester,
		req workspace.CreateRequest,
	) (*workspace.CreateResult, error)
	BatchCreate(
		ctx context.Context,
		requester workspace.Requester,
		users []string,
		req workspace.CreateRequest,
	) (*workspace.BatchResult, error)
	ListWorkspaces(ctx context.Context, requester workspace.Requester) ([]workspace.WorkspaceView, error)
	ListAllWorkspaces(ctx context.Context, requester workspace.Requester) ([]workspace.WorkspaceView, error)
	GetWorkspace(ctx context.Context, requester workspace.Requester, id string) (*workspace.WorkspaceView, error)
	GetLogs(ctx context.Context, requester workspace.Requester, id string, tailLines int64) (string, error)
	StopWorkspace(ctx context.Context, requester workspace.Requester, id string) (*workspace.WorkspaceView, error)
	StartWorkspace(ctx context.Context, requester workspace.Requester, id string) (*workspace.WorkspaceView, error)
	RestartWorkspace(ctx context.Context, requester workspace.Requester, id string) error
	DeleteWorkspace(ctx context.Context, requester workspace.Requester, id string, deleteNamespaceFirst bool) error
	SweepExpired(ctx context.Context, requester workspace.Requester, dryRun bool) (*workspace.SweepReport, error)
	QuotaStatus(ctx context.Context, requester workspace.Requester, namespace string) (*workspace.QuotaView, error)
	ClusterOverview(ctx context.Context, requester workspace.Requester) (*workspace.ClusterOverview, error)
}

var _ WorkspaceService = (*workspace.Lifecycle)(nil)
