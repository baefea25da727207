package k8s

import (
	"context"
	"log/slog"
	"maps"
	"slices"
	"strconv"

	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
	networkingv1 "k8s.io/api/networking/v1"
	"k8s.io/apimachinery/pkg/api/resource"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/util/intstr"
	metricsv1beta1 "k8s.io/metrics/pkg/apis/metrics/v1beta1"

	"github.com/skillcoder/kubedev-controller/internal/logic/workspace"
)

const (
	volumeName        = "workspace"
	cloneContainer    = "git-clone"
	initContainer     = "workspace-init"
	mainContainer     = "ide"
	primaryPortName   = "http"
	workloadReplicas  = 1
	requestDivisor    = 2
	servicePortPrefix = "port-"
)

// cloneScript clones into the shared volume; a failed or timed out clone leaves
// an empty workspace instead of failing the pod. Inputs arrive through env only.
const cloneScript = `if timeout "$CLONE_TIMEOUT" git clone --depth 1 --branch "$GIT_REF" -- "$REPO_URL" ` +
	`/workspace; then
  echo "repository cloned"
else
  echo "clone failed, continuing with an empty workspace"
  find /workspace -mindepth 1 -delete
fi`

// initScript runs the user init command and never fails the pod.
const initScript = `sh -c "$INIT_COMMAND" || echo "init command failed, continuing"`

func toDeployment(spec workspace.WorkloadSpec) *appsv1.Deployment {
	replicas := int32(workloadReplicas)
	selector := map[string]string{workspace.LabelApp: spec.Name}
	resources := containerResources(spec.Limits)

	volumeSource := corev1.EmptyDirVolumeSource{}
	if !spec.Limits.Storage.IsZero() {
		size := spec.Limits.Storage.DeepCopy()
		volumeSource.SizeLimit = &size
	}

	mount := corev1.VolumeMount{Name: volumeName, MountPath: spec.WorkingDir}

	var initContainers []corev1.Container

	if spec.Clone != nil {
		initContainers = append(initContainers, corev1.Container{
			Name:    cloneContainer,
			Image:   spec.Clone.Image,
			Command: []string{"sh", "-c", cloneScript},
			Env: []corev1.EnvVar{
				{Name: "REPO_URL", Value: spec.Clone.RepoURL},
				{Name: "GIT_REF", Value: spec.Clone.Ref},
				{Name: "CLONE_TIMEOUT", Value: strconv.Itoa(int(spec.Clone.Timeout.Seconds()))},
				{Name: "GIT_TERMINAL_PROMPT", Value: "0"},
			},
			VolumeMounts: []corev1.VolumeMount{mount},
			Resources:    resources,
		})
	}

	if spec.Init != "" {
		initContainers = append(initContainers, corev1.Container{
			Name:         initContainer,
			Image:        spec.Image,
			Command:      []string{"sh", "-c", initScript},
			Env:          []corev1.EnvVar{{Name: "INIT_COMMAND", Value: spec.Init}},
			WorkingDir:   spec.WorkingDir,
			VolumeMounts: []corev1.VolumeMount{mount},
			Resources:    resources,
		})
	}

	main := corev1.Container{
		Name:         mainContainer,
		Image:        spec.Image,
		Env:          envVars(spec.Env),
		Ports:        containerPorts(spec.Ports),
		WorkingDir:   spec.WorkingDir,
		VolumeMounts: []corev1.VolumeMount{mount},
		Resources:    resources,
	}

	if spec.Start != "" {
		main.Command = []string{"sh", "-c", spec.Start}
	}

	return &appsv1.Deployment{
		ObjectMeta: metav1.ObjectMeta{
			Name:      spec.Name,
			Namespace: spec.Namespace,
			Labels:    spec.Labels,
		},
		Spec: appsv1.DeploymentSpec{
			Replicas: &replicas,
			Selector: &metav1.LabelSelector{MatchLabels: selector},
			Strategy: appsv1.DeploymentStrategy{Type: appsv1.RecreateDeploymentStrategyType},
			Template: corev1.PodTemplateSpec{
				ObjectMeta: metav1.ObjectMeta{Labels: spec.Labels},
				Spec: corev1.PodSpec{
					InitContainers: initContainers,
					Containers:     []corev1.Container{main},
					Volumes: []corev1.Volume{{
						Name:         volumeName,
						VolumeSource: corev1.VolumeSource{EmptyDir: &volumeSource},
					}},
				},
			},
		},
	}
}

// containerResources sets limits to the tier and requests to half of it, which
// keeps requests under the quota request ceiling.
func containerResources(limits workspace.ResourceLimits) corev1.ResourceRequirements {
	req := corev1.ResourceRequirements{
		Limits:   corev1.ResourceList{},
		Requests: corev1.ResourceList{},
	}

	if !limits.CPU.IsZero() {
		req.Limits[corev1.ResourceCPU] = limits.CPU.DeepCopy()
		req.Requests[corev1.ResourceCPU] = *resource.NewMilliQuantity(
			limits.CPU.MilliValue()/requestDivisor, resource.DecimalSI)
	}

	if !limits.Memory.IsZero() {
		req.Limits[corev1.ResourceMemory] = limits.Memory.DeepCopy()
		req.Requests[corev1.ResourceMemory] = *resource.NewQuantity(
			limits.Memory.Value()/requestDivisor, resource.BinarySI)
	}

	return req
}

func envVars(env map[string]string) []corev1.EnvVar {
	out := make([]corev1.EnvVar, 0, len(env))
	for _, k := range slices.Sorted(maps.Keys(env)) {
		out = append(out, corev1.EnvVar{Name: k, Value: env[k]})
	}

	return out
}

func portName(i int, port int32) string {
	if i == 0 {
		return primaryPortName
	}

	return servicePortPrefix + strconv.Itoa(int(port))
}

func containerPorts(ports []int32) []corev1.ContainerPort {
	out := make([]corev1.ContainerPort, 0, len(ports))
	for i, p := range ports {
		out = append(out, corev1.ContainerPort{
			Name:          portName(i, p),
			ContainerPort: p,
			Protocol:      corev1.ProtocolTCP,
		})
	}

	return out
}

func toService(spec workspace.ServiceSpec) *corev1.Service {
	ports := make([]corev1.ServicePort, 0, len(spec.Ports))
	for i, p := range spec.Ports {
		ports = append(ports, corev1.ServicePort{
			Name:       portName(i, p),
			Port:       p,
			TargetPort: intstr.FromInt32(p),
			Protocol:   corev1.ProtocolTCP,
		})
	}

	return &corev1.Service{
		ObjectMeta: metav1.ObjectMeta{
			Name:      spec.Name,
			Namespace: spec.Namespace,
			Labels:    spec.Labels,
		},
		Spec: corev1.ServiceSpec{
			Type:     corev1.ServiceTypeClusterIP,
			Selector: spec.Selector,
			Ports:    ports,
		},
	}
}

func toIngress(spec workspace.RouteSpec) *networkingv1.Ingress {
	pathType := networkingv1.PathTypePrefix

	ing := &networkingv1.Ingress{
		ObjectMeta: metav1.ObjectMeta{
			Name:      spec.Name,
			Namespace: spec.Namespace,
			Labels:    spec.Labels,
		},
		Spec: networkingv1.IngressSpec{
			Rules: []networkingv1.IngressRule{{
				Host: spec.Host,
				IngressRuleValue: networkingv1.IngressRuleValue{
					HTTP: &networkingv1.HTTPIngressRuleValue{
						Paths: []networkingv1.HTTPIngressPath{{
							Path:     "/",
							PathType: &pathType,
							Backend: networkingv1.IngressBackend{
								Service: &networkingv1.IngressServiceBackend{
									Name: spec.ServiceName,
									Port: networkingv1.ServiceBackendPort{Number: spec.ServicePort},
								},
							},
						}},
					},
				},
			}},
		},
	}

	if spec.IngressClass != "" {
		class := spec.IngressClass
		ing.Spec.IngressClassName = &class
	}

	return ing
}

func toResourceQuota(
	namespace,
	name string,
	labels map[string]string,
	hard map[string]resource.Quantity,
) *corev1.ResourceQuota {
	list := make(corev1.ResourceList, len(hard))
	for k, v := range hard {
		list[corev1.ResourceName(k)] = v.DeepCopy()
	}

	return &corev1.ResourceQuota{
		ObjectMeta: metav1.ObjectMeta{
			Name:      name,
			Namespace: namespace,
			Labels:    labels,
		},
		Spec: corev1.ResourceQuotaSpec{Hard: list},
	}
}

// toDomainQuota prefers the enforced hard set from status and falls back to spec
// until the quota controller has populated it.
func toDomainQuota(rq *corev1.ResourceQuota) workspace.QuotaRecord {
	hard := rq.Status.Hard
	if len(hard) == 0 {
		hard = rq.Spec.Hard
	}

	return workspace.QuotaRecord{
		Name:      rq.Name,
		Namespace: rq.Namespace,
		Hard:      fromResourceList(hard),
		Used:      fromResourceList(rq.Status.Used),
	}
}

func fromResourceList(list corev1.ResourceList) map[string]resource.Quantity {
	out := make(map[string]resource.Quantity, len(list))
	for k, v := range list {
		out[string(k)] = v.DeepCopy()
	}

	return out
}

func toDomainWorkloadStatus(d *appsv1.Deployment) *workspace.WorkloadStatus {
	return &workspace.WorkloadStatus{
		Name:              d.Name,
		Namespace:         d.Namespace,
		Replicas:          d.Status.Replicas,
		ReadyReplicas:     d.Status.ReadyReplicas,
		AvailableReplicas: d.Status.AvailableReplicas,
		Terminating:       d.DeletionTimestamp != nil,
	}
}

func toDomainPod(pod *corev1.Pod) workspace.PodStatus {
	out := workspace.PodStatus{
		Name:      pod.Name,
		Namespace: pod.Namespace,
		Phase:     string(pod.Status.Phase),
		Node:      pod.Spec.NodeName,
		IP:        pod.Status.PodIP,
		Total:     len(pod.Spec.Containers),
		CreatedAt: pod.CreationTimestamp.Time,
	}

	for i := range pod.Status.ContainerStatuses {
		cs := &pod.Status.ContainerStatuses[i]
		if cs.Ready {
			out.Ready++
		}

		out.Restarts += cs.RestartCount
		out.Containers = append(out.Containers, workspace.ContainerStatus{
			Name:  cs.Name,
			Image: cs.Image,
			Ready: cs.Ready,
		})
	}

	return out
}

func toDomainPodMetrics(
	ctx context.Context,
	logger *slog.Logger,
	podMetrics *metricsv1beta1.PodMetrics,
) *workspace.PodMetrics {
	cpuUsage := resource.NewMilliQuantity(0, resource.DecimalSI)
	memoryUsage := resource.NewQuantity(0, resource.BinarySI)

	for i := range podMetrics.Containers {
		c := &podMetrics.Containers[i]

		if cpu := c.Usage.Cpu(); cpu != nil {
			cpuUsage.Add(*cpu)
		}

		memory := c.Usage.Memory()
		if memory == nil {
			logger.WarnContext(ctx, "container memory usage is nil, skipping",
				"pod", podMetrics.Name,
				"namespace", podMetrics.Namespace,
				"container", c.Name,
			)

			continue
		}

		memoryUsage.Add(*memory)
	}

	return &workspace.PodMetrics{
		CPUUsage:    cpuUsage,
		MemoryUsage: memoryUsage,
	}
}

func nodeReady(node *corev1.Node) bool {
	for _, c := range node.Status.Conditions {
		if c.Type == corev1.NodeReady {
			return c.Status == corev1.ConditionTrue
		}
	}

	return false
}
