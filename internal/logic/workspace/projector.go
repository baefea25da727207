package workspace

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"k8s.io/apimachinery/pkg/api/resource"
	"k8s.io/apimachinery/pkg/labels"
)

// LiveState is the dependent state queried from the cluster at read time.
// Any part may be missing.
type LiveState struct {
	Workload *WorkloadStatus
	Pods     []PodStatus
	Quota    *QuotaRecord
	Usage    *PodMetrics
}

// WorkspaceView is the caller-facing projection of a workspace.
type WorkspaceView struct {
	ID          string     `json:"id"`
	Owner       string     `json:"owner"`
	Phase       Phase      `json:"phase"`
	Message     string     `json:"message,omitempty"`
	Namespace   string     `json:"namespace,omitempty"`
	Address     string     `json:"address,omitempty"`
	CanAccess   bool       `json:"canAccess"`
	TemplateRef string     `json:"template,omitempty"`
	Image       string     `json:"image"`
	Tier        string     `json:"tier,omitempty"`
	Ports       []int32    `json:"ports"`
	Repository  string     `json:"repository,omitempty"`
	Ref         string     `json:"ref,omitempty"`
	CPU         string     `json:"cpu"`
	Memory      string     `json:"memory"`
	Storage     string     `json:"storage"`
	CreatedAt   time.Time  `json:"createdAt"`
	StartedAt   *time.Time `json:"startedAt,omitempty"`
	StoppedAt   *time.Time `json:"stoppedAt,omitempty"`
	ExpiresAt   *time.Time `json:"expiresAt,omitempty"`
	Replicas    int32      `json:"replicas"`
	Ready       int32      `json:"readyReplicas"`
	Pods        []PodView  `json:"pods,omitempty"`
	Quota       *QuotaView `json:"quota,omitempty"`
	Usage       *UsageView `json:"usage,omitempty"`
}

// PodView is one pod in a WorkspaceView.
type PodView struct {
	Name       string            `json:"name"`
	Phase      string            `json:"phase"`
	Ready      string            `json:"ready"`
	Node       string            `json:"node,omitempty"`
	IP         string            `json:"ip,omitempty"`
	Restarts   int32             `json:"restarts"`
	Containers []ContainerStatus `json:"containers,omitempty"`
	CreatedAt  time.Time         `json:"createdAt"`
}

// QuotaView is the quota section of a view.
type QuotaView struct {
	Name        string             `json:"name"`
	Namespace   string             `json:"namespace"`
	Hard        map[string]string  `json:"hard"`
	Used        map[string]string  `json:"used"`
	Utilization map[string]float64 `json:"utilization"`
}

// UsageView is the live resource usage of the workload pods.
type UsageView struct {
	CPU    string `json:"cpu,omitempty"`
	Memory string `json:"memory,omitempty"`
}

// Project merges the persisted record with live state. The persisted phase is
// never overridden by live state.
func Project(ws *Workspace, live LiveState) WorkspaceView {
	view := WorkspaceView{
		ID:          ws.ID,
		Owner:       ws.Owner,
		Phase:       ws.Status.Phase,
		Message:     ws.Status.Message,
		Namespace:   ws.Status.Namespace,
		Address:     ws.Status.Address,
		TemplateRef: ws.Spec.TemplateRef,
		Image:       ws.Spec.Image,
		Tier:        ws.Spec.Tier,
		Ports:       servicePorts(ws.Spec),
		CPU:         ws.Spec.Resources.CPU.String(),
		Memory:      ws.Spec.Resources.Memory.String(),
		Storage:     ws.Spec.Resources.Storage.String(),
		CreatedAt:   ws.CreatedAt,
		StartedAt:   ws.Status.StartedAt,
		StoppedAt:   ws.Status.StoppedAt,
		ExpiresAt:   ws.Status.ExpiresAt,
	}

	if view.Phase == "" {
		view.Phase = PhasePending
	}

	view.CanAccess = view.Phase == PhaseRunning && view.Address != ""

	if ws.Spec.Source != nil {
		view.Repository = ws.Spec.Source.RepoURL
		view.Ref = ws.Spec.Source.Ref
	}

	if live.Workload != nil {
		view.Replicas = live.Workload.Replicas
		view.Ready = live.Workload.ReadyReplicas
	}

	for _, p := range live.Pods {
		view.Pods = append(view.Pods, PodView{
			Name:       p.Name,
			Phase:      p.Phase,
			Ready:      formatReady(p.Ready, p.Total),
			Node:       p.Node,
			IP:         p.IP,
			Restarts:   p.Restarts,
			Containers: p.Containers,
			CreatedAt:  p.CreatedAt,
		})
	}

	if live.Quota != nil {
		view.Quota = projectQuota(live.Quota)
	}

	if live.Usage != nil {
		view.Usage = &UsageView{
			CPU:    quantityString(live.Usage.CPUUsage),
			Memory: quantityString(live.Usage.MemoryUsage),
		}
	}

	return view
}

// projectQuota converts a quota record for display.
func projectQuota(record *QuotaRecord) *QuotaView {
	view := &QuotaView{
		Name:        record.Name,
		Namespace:   record.Namespace,
		Hard:        make(map[string]string, len(record.Hard)),
		Used:        make(map[string]string, len(record.Used)),
		Utilization: record.Utilization,
	}

	for k, v := range record.Hard {
		view.Hard[k] = v.String()
	}

	for k, v := range record.Used {
		view.Used[k] = v.String()
	}

	if view.Utilization == nil {
		view.Utilization = Utilization(record)
	}

	return view
}

func formatReady(ready, total int) string {
	return fmt.Sprintf("%d/%d", ready, total)
}

func quantityString(q *resource.Quantity) string {
	if q == nil {
		return ""
	}

	return q.String()
}

// StatusProjector gathers live state for workspace views.
type StatusProjector struct {
	logger  *slog.Logger
	cluster Cluster
	quota   *QuotaGovernor
}

// NewStatusProjector creates a new status projector.
func NewStatusProjector(logger *slog.Logger, cluster Cluster, quota *QuotaGovernor) *StatusProjector {
	return &StatusProjector{
		logger:  logger.With("component", "status-projector"),
		cluster: cluster,
		quota:   quota,
	}
}

// Observe queries live state best effort. Failures are logged and leave the
// corresponding part empty.
func (p *StatusProjector) Observe(ctx context.Context, ws *Workspace) LiveState {
	var live LiveState

	namespace := ws.Status.Namespace
	if namespace == "" {
		return live
	}

	logger := p.logger.With("workspace", ws.ID, "namespace", namespace)
	name := WorkloadName(ws.ID)

	workload, err := p.cluster.GetWorkloadStatusQuery(ctx, namespace, name)
	if err != nil {
		if !isNotFound(err) {
			logger.DebugContext(ctx, "workload status unavailable", "reason", err)
		}
	} else {
		live.Workload = workload
	}

	selector := labels.SelectorFromSet(workloadSelector(ws)).String()

	pods, err := p.cluster.ListPodsQuery(ctx, namespace, selector)
	if err != nil {
		logger.DebugContext(ctx, "pods unavailable", "reason", err)
	} else {
		live.Pods = pods
	}

	quota, err := p.quota.Status(ctx, namespace, QuotaName(ws.ID))
	if err != nil {
		logger.DebugContext(ctx, "quota unavailable", "reason", err)
	} else {
		live.Quota = quota
	}

	live.Usage = p.usage(ctx, logger, namespace, pods)

	return live
}

// View observes and projects in one call.
func (p *StatusProjector) View(ctx context.Context, ws *Workspace) WorkspaceView {
	return Project(ws, p.Observe(ctx, ws))
}

func (p *StatusProjector) usage(
	ctx context.Context,
	logger *slog.Logger,
	namespace string,
	pods []PodStatus,
) *PodMetrics {
	var (
		cpu, memory resource.Quantity
		found       bool
	)

	for _, pod := range pods {
		m, err := p.cluster.GetPodMetricsQuery(ctx, namespace, pod.Name)
		if err != nil {
			logger.DebugContext(ctx, "pod metrics unavailable", "pod", pod.Name, "reason", err)

			continue
		}

		if m.CPUUsage != nil {
			cpu.Add(*m.CPUUsage)
		}

		if m.MemoryUsage != nil {
			memory.Add(*m.MemoryUsage)
		}

		found = true
	}

	if !found {
		return nil
	}

	return &PodMetrics{CPUUsage: &cpu, MemoryUsage: &memory}
}
