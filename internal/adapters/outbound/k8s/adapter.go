package k8s

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/api/resource"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes"
	metricsv "k8s.io/metrics/pkg/client/clientset/versioned"

	"github.com/skillcoder/kubedev-controller/internal/logic/workspace"
)

const (
	kindNamespace   = "namespace"
	kindQuota       = "resourcequota"
	kindDeployment  = "deployment"
	kindService     = "service"
	kindIngress     = "ingress"
	kindPod         = "pod"
	kindPodMetrics  = "podmetrics"
	kindWorkspace   = "workspace"
	logsContainer   = mainContainer
	deletePolicyBg  = metav1.DeletePropagationBackground
	deletePolicyFg  = metav1.DeletePropagationForeground
	allNamespaces   = ""
	metricsDisabled = "metrics API client not configured"
)

type adapter struct {
	logger           *slog.Logger
	clientset        kubernetes.Interface
	metricsClientset metricsv.Interface
}

// New creates a new cluster adapter. metricsClientset may be nil, in which case
// pod usage is reported as not found.
func New(
	logger *slog.Logger,
	clientset kubernetes.Interface,
	metricsClientset metricsv.Interface,
) workspace.Cluster {
	return &adapter{
		logger:           logger.With("component", "k8s-adapter"),
		clientset:        clientset,
		metricsClientset: metricsClientset,
	}
}

var _ workspace.Cluster = (*adapter)(nil)

func (a *adapter) CreateNamespaceCommand(
	ctx context.Context,
	name string,
	labels map[string]string,
) error {
	ns := &corev1.Namespace{
		ObjectMeta: metav1.ObjectMeta{
			Name:   name,
			Labels: labels,
		},
	}

	_, err := a.clientset.CoreV1().Namespaces().Create(ctx, ns, metav1.CreateOptions{})
	if err != nil {
		return fmt.Errorf("create namespace: %w", translate(kindNamespace, name, err))
	}

	return nil
}

func (a *adapter) DeleteNamespaceCommand(ctx context.Context, name string) error {
	policy := deletePolicyFg

	err := a.clientset.CoreV1().Namespaces().Delete(ctx, name, metav1.DeleteOptions{
		PropagationPolicy: &policy,
	})
	if err != nil {
		return fmt.Errorf("delete namespace: %w", translate(kindNamespace, name, err))
	}

	return nil
}

func (a *adapter) CreateResourceQuotaCommand(
	ctx context.Context,
	namespace,
	name string,
	labels map[string]string,
	hard map[string]resource.Quantity,
) error {
	rq := toResourceQuota(namespace, name, labels, hard)

	_, err := a.clientset.CoreV1().ResourceQuotas(namespace).Create(ctx, rq, metav1.CreateOptions{})
	if err != nil {
		return fmt.Errorf("create resource quota: %w", translate(kindQuota, name, err))
	}

	return nil
}

func (a *adapter) GetResourceQuotaQuery(
	ctx context.Context,
	namespace,
	name string,
) (*workspace.QuotaRecord, error) {
	rq, err := a.clientset.CoreV1().ResourceQuotas(namespace).Get(ctx, name, metav1.GetOptions{})
	if err != nil {
		return nil, fmt.Errorf("get resource quota: %w", translate(kindQuota, name, err))
	}

	record := toDomainQuota(rq)

	return &record, nil
}

func (a *adapter) ListResourceQuotasQuery(
	ctx context.Context,
	namespace string,
) ([]workspace.QuotaRecord, error) {
	list, err := a.clientset.CoreV1().ResourceQuotas(namespace).List(ctx, metav1.ListOptions{})
	if err != nil {
		return nil, fmt.Errorf("list resource quotas: %w", translate(kindQuota, namespace, err))
	}

	out := make([]workspace.QuotaRecord, 0, len(list.Items))
	for i := range list.Items {
		out = append(out, toDomainQuota(&list.Items[i]))
	}

	return out, nil
}

func (a *adapter) CreateWorkloadCommand(ctx context.Context, spec workspace.WorkloadSpec) error {
	_, err := a.clientset.AppsV1().Deployments(spec.Namespace).Create(
		ctx,
		toDeployment(spec),
		metav1.CreateOptions{},
	)
	if err != nil {
		return fmt.Errorf("create deployment: %w", translate(kindDeployment, spec.Name, err))
	}

	return nil
}

func (a *adapter) DeleteWorkloadCommand(ctx context.Context, namespace, name string) error {
	policy := deletePolicyBg

	err := a.clientset.AppsV1().Deployments(namespace).Delete(ctx, name, metav1.DeleteOptions{
		PropagationPolicy: &policy,
	})
	if err != nil {
		return fmt.Errorf("delete deployment: %w", translate(kindDeployment, name, err))
	}

	return nil
}

func (a *adapter) GetWorkloadStatusQuery(
	ctx context.Context,
	namespace,
	name string,
) (*workspace.WorkloadStatus, error) {
	d, err := a.clientset.AppsV1().Deployments(namespace).Get(ctx, name, metav1.GetOptions{})
	if err != nil {
		return nil, fmt.Errorf("get deployment: %w", translate(kindDeployment, name, err))
	}

	return toDomainWorkloadStatus(d), nil
}

func (a *adapter) CreateServiceCommand(ctx context.Context, spec workspace.ServiceSpec) error {
	_, err := a.clientset.CoreV1().Services(spec.Namespace).Create(ctx, toService(spec), metav1.CreateOptions{})
	if err != nil {
		return fmt.Errorf("create service: %w", translate(kindService, spec.Name, err))
	}

	return nil
}

func (a *adapter) DeleteServiceCommand(ctx context.Context, namespace, name string) error {
	err := a.clientset.CoreV1().Services(namespace).Delete(ctx, name, metav1.DeleteOptions{})
	if err != nil {
		return fmt.Errorf("delete service: %w", translate(kindService, name, err))
	}

	return nil
}

func (a *adapter) CreateRouteCommand(ctx context.Context, spec workspace.RouteSpec) error {
	_, err := a.clientset.NetworkingV1().Ingresses(spec.Namespace).Create(
		ctx,
		toIngress(spec),
		metav1.CreateOptions{},
	)
	if err != nil {
		return fmt.Errorf("create ingress: %w", translate(kindIngress, spec.Name, err))
	}

	return nil
}

func (a *adapter) DeleteRouteCommand(ctx context.Context, namespace, name string) error {
	err := a.clientset.NetworkingV1().Ingresses(namespace).Delete(ctx, name, metav1.DeleteOptions{})
	if err != nil {
		return fmt.Errorf("delete ingress: %w", translate(kindIngress, name, err))
	}

	return nil
}

func (a *adapter) ListPodsQuery(
	ctx context.Context,
	namespace,
	labelSelector string,
) ([]workspace.PodStatus, error) {
	podList, err := a.clientset.CoreV1().Pods(namespace).List(
		ctx,
		metav1.ListOptions{
			LabelSelector: labelSelector,
		},
	)
	if err != nil {
		return nil, fmt.Errorf("list pods: %w", err)
	}

	pods := make([]workspace.PodStatus, 0, len(podList.Items))
	for i := range podList.Items {
		pods = append(pods, toDomainPod(&podList.Items[i]))
	}

	return pods, nil
}

func (a *adapter) GetPodLogsQuery(
	ctx context.Context,
	namespace,
	pod string,
	tailLines int64,
) (string, error) {
	raw, err := a.clientset.CoreV1().Pods(namespace).GetLogs(pod, &corev1.PodLogOptions{
		Container: logsContainer,
		TailLines: &tailLines,
	}).DoRaw(ctx)
	if err != nil {
		return "", fmt.Errorf("get pod logs: %w", translate(kindPod, pod, err))
	}

	return string(raw), nil
}

func (a *adapter) GetPodMetricsQuery(
	ctx context.Context,
	namespace,
	name string,
) (*workspace.PodMetrics, error) {
	if a.metricsClientset == nil {
		return nil, fmt.Errorf("get pod metrics: %s: %w", metricsDisabled, &NotFoundError{Kind: kindPodMetrics, Name: name})
	}

	podMetrics, err := a.metricsClientset.MetricsV1beta1().PodMetricses(namespace).Get(
		ctx,
		name,
		metav1.GetOptions{},
	)
	if err != nil {
		return nil, fmt.Errorf("get pod metrics: %w", translate(kindPodMetrics, name, err))
	}

	return toDomainPodMetrics(ctx, a.logger, podMetrics), nil
}

func (a *adapter) ClusterOverviewQuery(
	ctx context.Context,
	namespacePrefix string,
) (*workspace.ClusterOverview, error) {
	nodes, err := a.clientset.CoreV1().Nodes().List(ctx, metav1.ListOptions{})
	if err != nil {
		return nil, fmt.Errorf("list nodes: %w", err)
	}

	pods, err := a.clientset.CoreV1().Pods(allNamespaces).List(ctx, metav1.ListOptions{})
	if err != nil {
		return nil, fmt.Errorf("list pods: %w", err)
	}

	out := &workspace.ClusterOverview{
		TotalNodes: len(nodes.Items),
		TotalPods:  len(pods.Items),
	}

	for i := range nodes.Items {
		if nodeReady(&nodes.Items[i]) {
			out.ReadyNodes++
		}
	}

	for i := range pods.Items {
		pod := &pods.Items[i]
		isWorkspace := strings.HasPrefix(pod.Namespace, namespacePrefix)

		if isWorkspace {
			out.WorkspacePods++
		}

		switch pod.Status.Phase {
		case corev1.PodRunning:
			out.RunningPods++

			if isWorkspace {
				out.RunningWorkspace++
			}
		case corev1.PodPending:
			out.PendingPods++

			if isWorkspace {
				out.PendingWorkspace++
			}
		case corev1.PodFailed:
			out.FailedPods++

			if isWorkspace {
				out.FailedWorkspace++
			}
		}
	}

	return out, nil
}
