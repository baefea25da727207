package workspace

import (
	"context"

	"k8s.io/apimachinery/pkg/api/resource"
)

// Cluster is the port interface for orchestration platform operations.
// Create commands return an error implementing IsAlreadyExists() when the object
// exists; delete commands and queries return one implementing IsNotFound().
type Cluster interface {
	CreateNamespaceCommand(
		ctx context.Context,
		name string,
		labels map[string]string,
	) error

	DeleteNamespaceCommand(
		ctx context.Context,
		name string,
	) error

	CreateResourceQuotaCommand(
		ctx context.Context,
		namespace,
		name string,
		labels map[string]string,
		hard map[string]resource.Quantity,
	) error

	GetResourceQuotaQuery(
		ctx context.Context,
		namespace,
		name string,
	) (*QuotaRecord, error)

	ListResourceQuotasQuery(
		ctx context.Context,
		namespace string,
	) ([]QuotaRecord, error)

	CreateWorkloadCommand(
		ctx context.Context,
		spec WorkloadSpec,
	) error

	DeleteWorkloadCommand(
		ctx context.Context,
		namespace,
		name string,
	) error

	GetWorkloadStatusQuery(
		ctx context.Context,
		namespace,
		name string,
	) (*WorkloadStatus, error)

	CreateServiceCommand(
		ctx context.Context,
		spec ServiceSpec,
	) error

	DeleteServiceCommand(
		ctx context.Context,
		namespace,
		name string,
	) error

	CreateRouteCommand(
		ctx context.Context,
		spec RouteSpec,
	) error

	DeleteRouteCommand(
		ctx context.Context,
		namespace,
		name string,
	) error

	ListPodsQuery(
		ctx context.Context,
		namespace,
		labelSelector string,
	) ([]PodStatus, error)

	GetPodLogsQuery(
		ctx context.Context,
		namespace,
		pod string,
		tailLines int64,
	) (string, error)

	GetPodMetricsQuery(
		ctx context.Context,
		namespace,
		name string,
	) (*PodMetrics, error)

	ClusterOverviewQuery(
		ctx context.Context,
		namespacePrefix string,
	) (*ClusterOverview, error)
}

// Store is the port interface for durable Workspace records.
type Store interface {
	CreateWorkspaceCommand(
		ctx context.Context,
		ws *Workspace,
	) (*Workspace, error)

	GetWorkspaceQuery(
		ctx context.Context,
		id string,
	) (*Workspace, error)

	ListWorkspacesQuery(
		ctx context.Context,
		filter ListFilter,
	) ([]Workspace, error)

	// UpdateStatusCommand re-reads the record and applies mutate until the write
	// does not conflict. A mutate error aborts the update and is returned as is.
	UpdateStatusCommand(
		ctx context.Context,
		id string,
		mutate func(ws *Workspace) error,
	) (*Workspace, error)

	DeleteWorkspaceCommand(
		ctx context.Context,
		id string,
	) error
}

// ManifestFetcher loads the optional repository manifest overlay.
// The second result is false whenever no overlay could be produced.
type ManifestFetcher interface {
	Fetch(ctx context.Context, repoURL string) (*ManifestOverlay, bool)
}

// TemplateCatalog resolves template references.
type TemplateCatalog interface {
	Lookup(name string) (Template, bool)
}
