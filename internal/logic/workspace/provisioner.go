package workspace

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/skillcoder/kubedev-controller/internal/infra/metrics"
)

// Provision steps, also used as metric label values.
const (
	stepNamespace = "namespace"
	stepQuota     = "quota"
	stepWorkload  = "workload"
	stepService   = "service"
	stepRoute     = "route"
)

// ProvisionerOptions configures the dependent resources of a workspace.
type ProvisionerOptions struct {
	IngressDomain string
	IngressClass  string
	CloneImage    string
	CloneTimeout  time.Duration
}

// Provisioner creates and deletes the dependent resource set of a workspace.
type Provisioner struct {
	logger  *slog.Logger
	cluster Cluster
	quota   *QuotaGovernor
	opts    ProvisionerOptions
}

// NewProvisioner creates a new workload provisioner.
func NewProvisioner(
	logger *slog.Logger,
	cluster Cluster,
	quota *QuotaGovernor,
	opts ProvisionerOptions,
) *Provisioner {
	if opts.IngressDomain == "" {
		opts.IngressDomain = DefaultIngressDomain
	}

	if opts.CloneImage == "" {
		opts.CloneImage = DefaultCloneImage
	}

	if opts.CloneTimeout <= 0 {
		opts.CloneTimeout = DefaultCloneTimeout
	}

	return &Provisioner{
		logger:  logger.With("component", "provisioner"),
		cluster: cluster,
		quota:   quota,
		opts:    opts,
	}
}

// Provision materializes namespace, quota, workload, service and route in that order.
// The first failing step aborts provisioning; later steps are not attempted.
func (p *Provisioner) Provision(ctx context.Context, ws *Workspace) (*ProvisionResult, error) {
	start := time.Now()
	namespace := namespaceOf(ws)
	logger := p.logger.With("workspace", ws.ID, "namespace", namespace)

	logger.InfoContext(ctx, "provisioning workspace")

	err := p.cluster.CreateNamespaceCommand(ctx, namespace, workspaceLabels(ws))
	if err != nil && !isAlreadyExists(err) {
		return nil, p.stepFailed(stepNamespace, err)
	}

	quota, err := p.quota.Apply(
		ctx,
		namespace,
		QuotaName(ws.ID),
		workspaceLabels(ws),
		DefaultQuotaLimits(ws.Spec.Resources),
	)
	if err != nil {
		return nil, p.stepFailed(stepQuota, err)
	}

	err = p.cluster.CreateWorkloadCommand(ctx, p.workloadSpec(ws, namespace))
	if err != nil && !isAlreadyExists(err) {
		return nil, p.stepFailed(stepWorkload, err)
	}

	serviceName := WorkloadName(ws.ID)

	err = p.cluster.CreateServiceCommand(ctx, ServiceSpec{
		Name:      serviceName,
		Namespace: namespace,
		Labels:    workloadLabels(ws),
		Selector:  workloadSelector(ws),
		Ports:     servicePorts(ws.Spec),
	})
	if err != nil && !isAlreadyExists(err) {
		return nil, p.stepFailed(stepService, err)
	}

	host := RouteHost(ws.ID, p.opts.IngressDomain)

	err = p.cluster.CreateRouteCommand(ctx, RouteSpec{
		Name:         RouteName(ws.ID),
		Namespace:    namespace,
		Labels:       workloadLabels(ws),
		Host:         host,
		ServiceName:  serviceName,
		ServicePort:  ws.Spec.ServicePort(),
		IngressClass: p.opts.IngressClass,
	})
	if err != nil && !isAlreadyExists(err) {
		return nil, p.stepFailed(stepRoute, err)
	}

	metrics.ObserveProvisionDuration(time.Since(start))
	logger.InfoContext(ctx, "workspace provisioned", "host", host, "duration", time.Since(start))

	return &ProvisionResult{
		Namespace: namespace,
		Host:      host,
		Address:   "http://" + host,
		Quota:     quota,
	}, nil
}

// Teardown deletes the workload and its service. Both deletions are attempted
// even when the first one fails; "not found" counts as success.
func (p *Provisioner) Teardown(ctx context.Context, ws *Workspace) error {
	namespace := namespaceOf(ws)

	name := WorkloadName(ws.ID)

	var errs error

	err := p.cluster.DeleteWorkloadCommand(ctx, namespace, name)
	if err != nil && !isNotFound(err) {
		errs = errors.Join(errs, fmt.Errorf("delete workload: %w", err))
	}

	err = p.cluster.DeleteServiceCommand(ctx, namespace, name)
	if err != nil && !isNotFound(err) {
		errs = errors.Join(errs, fmt.Errorf("delete service: %w", err))
	}

	if errs == nil {
		p.logger.DebugContext(ctx, "workload torn down", "workspace", ws.ID, "namespace", namespace)
	}

	return errs
}

// Purge tears the workspace down completely: the namespace first when asked to,
// then workload, service and route. Every step is attempted; the first failure
// stays first in the joined error.
func (p *Provisioner) Purge(ctx context.Context, ws *Workspace, deleteNamespace bool) error {
	namespace := namespaceOf(ws)

	var errs error

	if deleteNamespace {
		err := p.cluster.DeleteNamespaceCommand(ctx, namespace)
		if err != nil && !isNotFound(err) {
			errs = errors.Join(errs, fmt.Errorf("delete namespace: %w", err))
		}
	}

	if err := p.Teardown(ctx, ws); err != nil {
		errs = errors.Join(errs, err)
	}

	err := p.cluster.DeleteRouteCommand(ctx, namespace, RouteName(ws.ID))
	if err != nil && !isNotFound(err) {
		errs = errors.Join(errs, fmt.Errorf("delete route: %w", err))
	}

	return errs
}

// WorkloadPresent reports whether the workload object still exists.
// A workload being deleted still counts as present.
func (p *Provisioner) WorkloadPresent(ctx context.Context, ws *Workspace) (bool, error) {
	_, err := p.cluster.GetWorkloadStatusQuery(ctx, namespaceOf(ws), WorkloadName(ws.ID))
	if err != nil {
		if isNotFound(err) {
			return false, nil
		}

		return false, fmt.Errorf("get workload status: %w", err)
	}

	return true, nil
}

func (p *Provisioner) stepFailed(step string, err error) error {
	metrics.RecordProvisionFailure(step)

	return fmt.Errorf("provision %s: %w", step, err)
}

func (p *Provisioner) workloadSpec(ws *Workspace, namespace string) WorkloadSpec {
	env := make(map[string]string, len(ws.Spec.Env)+3)
	for k, v := range ws.Spec.Env {
		env[k] = v
	}

	env["WORKSPACE_ID"] = ws.ID
	env["TEMPLATE_NAME"] = ws.Spec.TemplateRef
	env["USER_ID"] = ws.Owner

	spec := WorkloadSpec{
		Name:       WorkloadName(ws.ID),
		Namespace:  namespace,
		Labels:     workloadLabels(ws),
		Image:      ws.Spec.Image,
		Env:        env,
		Ports:      servicePorts(ws.Spec),
		Limits:     ws.Spec.Resources,
		Start:      ws.Spec.Commands.Start,
		Init:       ws.Spec.Commands.Init,
		WorkingDir: workingDir,
	}

	if ws.Spec.Source != nil && ws.Spec.Source.RepoURL != "" {
		ref := ws.Spec.Source.Ref
		if ref == "" {
			ref = defaultGitRef
		}

		spec.Clone = &CloneStep{
			Image:   p.opts.CloneImage,
			RepoURL: ws.Spec.Source.RepoURL,
			Ref:     ref,
			Timeout: p.opts.CloneTimeout,
		}
	}

	return spec
}

func servicePorts(spec Spec) []int32 {
	if len(spec.Ports) == 0 {
		return []int32{defaultServicePort}
	}

	return spec.Ports
}

// namespaceOf returns the recorded namespace, or the derived one before it is recorded.
func namespaceOf(ws *Workspace) string {
	if ws.Status.Namespace != "" {
		return ws.Status.Namespace
	}

	return NamespaceName(ws.ID)
}
