package workspace

import (
	"time"

	"k8s.io/apimachinery/pkg/api/resource"
)

// Workspace is the aggregate root persisted as the Workspace custom resource.
type Workspace struct {
	ID        string
	Owner     string
	CreatedAt time.Time
	Spec      Spec
	Status    Status
}

// Spec is the declared shape of a workspace.
type Spec struct {
	TemplateRef string
	Source      *GitSource
	Image       string
	Commands    Commands
	Ports       []int32
	Tier        string
	Resources   ResourceLimits
	Env         map[string]string
	Mode        string
}

// GitSource is the repository cloned into the working volume.
type GitSource struct {
	RepoURL string
	Ref     string
}

// Commands holds the optional init and start commands.
type Commands struct {
	Init  string
	Start string
}

// ResourceLimits are the per-workspace resource ceilings.
type ResourceLimits struct {
	CPU     resource.Quantity
	Memory  resource.Quantity
	Storage resource.Quantity
}

// Status is owned by the reconciler.
type Status struct {
	Phase            Phase
	Namespace        string
	Address          string
	Message          string
	StartedAt        *time.Time
	StoppedAt        *time.Time
	ExpiresAt        *time.Time
	LastTransitionAt *time.Time
}

// ServicePort returns the port the service and route expose.
func (s Spec) ServicePort() int32 {
	if len(s.Ports) == 0 {
		return defaultServicePort
	}

	return s.Ports[0]
}

// Template is a catalog entry a workspace may reference.
type Template struct {
	Name  string
	Image string
	Port  int32
	Env   map[string]string
}

// ListFilter narrows Store.ListWorkspacesQuery. Zero values match everything.
type ListFilter struct {
	Owner         string
	Phases        []Phase
	Namespace     string
	ExpiredBefore time.Time
}

// Matches reports whether ws satisfies every non-empty criterion of the filter.
func (f ListFilter) Matches(ws *Workspace) bool {
	if f.Owner != "" && ws.Owner != f.Owner {
		return false
	}

	if f.Namespace != "" && ws.Status.Namespace != f.Namespace {
		return false
	}

	if len(f.Phases) > 0 {
		phase := ws.Status.Phase
		if phase == "" {
			phase = PhasePending
		}

		found := false

		for _, p := range f.Phases {
			if phase == p {
				found = true

				break
			}
		}

		if !found {
			return false
		}
	}

	if !f.ExpiredBefore.IsZero() {
		if ws.Status.ExpiresAt == nil || !ws.Status.ExpiresAt.Before(f.ExpiredBefore) {
			return false
		}
	}

	return true
}

// QuotaLimits are the inputs of the quota governor.
type QuotaLimits struct {
	CPU        resource.Quantity
	Memory     resource.Quantity
	Storage    resource.Quantity
	Pods       int64
	Services   int64
	PVCs       int64
	Secrets    int64
	ConfigMaps int64
}

// QuotaRecord is the observed quota of one execution namespace.
type QuotaRecord struct {
	Name        string
	Namespace   string
	Hard        map[string]resource.Quantity
	Used        map[string]resource.Quantity
	Utilization map[string]float64
	Created     bool
}

// WorkloadSpec is the container group the provisioner asks the cluster to run.
type WorkloadSpec struct {
	Name       string
	Namespace  string
	Labels     map[string]string
	Image      string
	Env        map[string]string
	Ports      []int32
	Limits     ResourceLimits
	Start      string
	Init       string
	Clone      *CloneStep
	WorkingDir string
}

// CloneStep describes the repository clone init step.
type CloneStep struct {
	Image   string
	RepoURL string
	Ref     string
	Timeout time.Duration
}

// ServiceSpec is the cluster-internal service of a workspace.
type ServiceSpec struct {
	Name      string
	Namespace string
	Labels    map[string]string
	Selector  map[string]string
	Ports     []int32
}

// RouteSpec is the externally reachable route of a workspace.
type RouteSpec struct {
	Name         string
	Namespace    string
	Labels       map[string]string
	Host         string
	ServiceName  string
	ServicePort  int32
	IngressClass string
}

// WorkloadStatus is the live state of a workload.
type WorkloadStatus struct {
	Name              string
	Namespace         string
	Replicas          int32
	ReadyReplicas     int32
	AvailableReplicas int32
	Terminating       bool
}

// PodStatus is the live state of one pod of a workload.
type PodStatus struct {
	Name       string
	Namespace  string
	Phase      string
	Node       string
	IP         string
	Ready      int
	Total      int
	Restarts   int32
	Containers []ContainerStatus
	CreatedAt  time.Time
}

// ContainerStatus is a single container of a pod.
type ContainerStatus struct {
	Name  string `json:"name"`
	Image string `json:"image"`
	Ready bool   `json:"ready"`
}

// PodMetrics is the summed live usage of a pod.
type PodMetrics struct {
	CPUUsage    *resource.Quantity
	MemoryUsage *resource.Quantity
}

// ClusterOverview is the admin summary of cluster and workspace pods.
type ClusterOverview struct {
	TotalNodes       int
	ReadyNodes       int
	TotalPods        int
	RunningPods      int
	PendingPods      int
	FailedPods       int
	WorkspacePods    int
	RunningWorkspace int
	PendingWorkspace int
	FailedWorkspace  int
}

// ManifestOverlay is the subset of a repository manifest merged into a spec.
type ManifestOverlay struct {
	Image    string
	Commands Commands
	Ports    []int32
}

// ProvisionResult is returned by a successful Provisioner.Provision.
type ProvisionResult struct {
	Namespace string
	Host      string
	Address   string
	Quota     *QuotaRecord
}
