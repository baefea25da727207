package k8s

import (
	"context"
	"fmt"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/dynamic"
	"k8s.io/client-go/kubernetes"
	metricsv "k8s.io/metrics/pkg/client/clientset/versioned"
)

// APIPinger checks that the API server answers and the control namespace exists.
type APIPinger struct {
	clientset kubernetes.Interface
	namespace string
}

func NewAPIPinger(clientset kubernetes.Interface, namespace string) *APIPinger {
	return &APIPinger{clientset: clientset, namespace: namespace}
}

func (p *APIPinger) Name() string {
	return "kube-api"
}

func (p *APIPinger) Ping(ctx context.Context) error {
	_, err := p.clientset.CoreV1().Namespaces().Get(ctx, p.namespace, metav1.GetOptions{})
	if err != nil {
		return fmt.Errorf("get control namespace: %w", translate(kindNamespace, p.namespace, err))
	}

	return nil
}

// StorePinger checks that the Workspace resource is served and listable.
type StorePinger struct {
	client    dynamic.Interface
	namespace string
}

func NewStorePinger(client dynamic.Interface, namespace string) *StorePinger {
	return &StorePinger{client: client, namespace: namespace}
}

func (p *StorePinger) Name() string {
	return "workspace-store"
}

func (p *StorePinger) Ping(ctx context.Context) error {
	_, err := p.client.Resource(WorkspaceGVR).Namespace(p.namespace).List(ctx, metav1.ListOptions{Limit: 1})
	if err != nil {
		return fmt.Errorf("list workspaces: %w", err)
	}

	return nil
}

// MetricsPinger checks the metrics API. Usage figures are optional, so a
// failure never affects liveness or readiness.
type MetricsPinger struct {
	client metricsv.Interface
}

func NewMetricsPinger(client metricsv.Interface) *MetricsPinger {
	return &MetricsPinger{client: client}
}

func (p *MetricsPinger) Name() string {
	return "metrics-api"
}

func (p *MetricsPinger) Ping(ctx context.Context) error {
	_, err := p.client.MetricsV1beta1().NodeMetricses().List(ctx, metav1.ListOptions{Limit: 1})
	if err != nil {
		return fmt.Errorf("list node metrics: %w", err)
	}

	return nil
}

func (p *MetricsPinger) PingerReadyCritical() bool {
	return false
}

func (p *MetricsPinger) PingerCritical() bool {
	return false
}
