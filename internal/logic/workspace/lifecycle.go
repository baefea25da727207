package workspace

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"strings"

	"k8s.io/apimachinery/pkg/labels"
)

// Requester is the authenticated caller of a lifecycle operation.
type Requester struct {
	Name string
	Role string
}

// IsAdmin reports whether the requester has the admin role.
func (r Requester) IsAdmin() bool {
	return r.Role == RoleAdmin
}

// CreateResult is returned by a create call.
type CreateResult struct {
	ID        string `json:"id"`
	Phase     Phase  `json:"phase"`
	Namespace string `json:"namespace,omitempty"`
	Address   string `json:"address,omitempty"`
	Message   string `json:"message,omitempty"`
}

// BatchResult lists the outcome of a batch create.
type BatchResult struct {
	Created []CreateResult `json:"created"`
	Failed  []string       `json:"failed"`
}

// Lifecycle is the caller-facing workspace service. It validates and
// authorizes every request before handing it to the reconciler.
type Lifecycle struct {
	logger     *slog.Logger
	reconciler *Service
	store      Store
	cluster    Cluster
	quota      *QuotaGovernor
	projector  *StatusProjector
	catalog    TemplateCatalog
	manifests  ManifestFetcher
	tiers      Tiers
}

// NewLifecycle creates the lifecycle service. manifests may be nil.
func NewLifecycle(
	logger *slog.Logger,
	reconciler *Service,
	store Store,
	cluster Cluster,
	quota *QuotaGovernor,
	projector *StatusProjector,
	catalog TemplateCatalog,
	manifests ManifestFetcher,
	tiers Tiers,
) *Lifecycle {
	return &Lifecycle{
		logger:     logger.With("component", "lifecycle"),
		reconciler: reconciler,
		store:      store,
		cluster:    cluster,
		quota:      quota,
		projector:  projector,
		catalog:    catalog,
		manifests:  manifests,
		tiers:      tiers,
	}
}

// CreateWorkspace validates req, records a Pending workspace owned by the
// requester and provisions it. A provisioning failure is returned together with
// the result describing the Error phase.
func (l *Lifecycle) CreateWorkspace(
	ctx context.Context,
	requester Requester,
	req CreateRequest,
) (*CreateResult, error) {
	if requester.Name == "" {
		return nil, fmt.Errorf("%w: anonymous requester", ErrForbidden)
	}

	return l.create(ctx, requester.Name, req)
}

// BatchCreate creates the same workspace for every user. One user's failure
// never aborts the others.
func (l *Lifecycle) BatchCreate(
	ctx context.Context,
	requester Requester,
	users []string,
	req CreateRequest,
) (*BatchResult, error) {
	if !requester.IsAdmin() {
		return nil, fmt.Errorf("%w: batch create requires admin", ErrForbidden)
	}

	if len(users) == 0 {
		return nil, fmt.Errorf("%w: no users given", ErrValidation)
	}

	result := &BatchResult{
		Created: []CreateResult{},
		Failed:  []string{},
	}

	for _, user := range users {
		user = strings.TrimSpace(user)
		if user == "" {
			result.Failed = append(result.Failed, fmt.Sprintf("%q: empty user name", user))

			continue
		}

		created, err := l.create(ctx, user, req)
		if err != nil {
			l.logger.WarnContext(ctx, "batch create failed for user", "user", user, "reason", err)
			result.Failed = append(result.Failed, fmt.Sprintf("%s: %s", user, err))

			continue
		}

		result.Created = append(result.Created, *created)
	}

	l.logger.InfoContext(ctx, "batch create finished",
		"created", len(result.Created),
		"failed", len(result.Failed),
	)

	return result, nil
}

func (l *Lifecycle) create(ctx context.Context, owner string, req CreateRequest) (*CreateResult, error) {
	ws, err := l.buildWorkspace(ctx, owner, req)
	if err != nil {
		return nil, err
	}

	logger := l.logger.With("workspace", ws.ID, "owner", owner)

	if _, err := l.store.CreateWorkspaceCommand(ctx, ws); err != nil {
		if isAlreadyExists(err) {
			return nil, fmt.Errorf("%w: workspace %s already exists", ErrConflict, ws.ID)
		}

		return nil, fmt.Errorf("create workspace record: %w", err)
	}

	logger.InfoContext(ctx, "workspace recorded", "image", ws.Spec.Image, "tier", ws.Spec.Tier)

	release, ok := l.reconciler.TryBegin(ws.ID)
	if !ok {
		return nil, fmt.Errorf("%w: workspace %s is busy", ErrConflict, ws.ID)
	}
	defer release()

	provisioned, err := l.reconciler.ProvisionCommand(ctx, ws.ID)
	if provisioned == nil {
		if err == nil {
			err = fmt.Errorf("provision workspace %s: no record returned", ws.ID)
		}

		return nil, err
	}

	return resultOf(provisioned), err
}

func (l *Lifecycle) buildWorkspace(ctx context.Context, owner string, req CreateRequest) (*Workspace, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}

	id, err := WorkspaceID(owner, name)
	if err != nil {
		return nil, err
	}

	ports, err := validatePorts(req.Ports)
	if err != nil {
		return nil, err
	}

	if err := validateEnv(req.Env); err != nil {
		return nil, err
	}

	mode, err := resolveMode(req.Mode)
	if err != nil {
		return nil, err
	}

	tier, limits, err := l.tiers.Resolve(req.Tier)
	if err != nil {
		return nil, err
	}

	spec := Spec{
		TemplateRef: req.Template,
		Image:       strings.TrimSpace(req.Image),
		Commands: Commands{
			Init:  strings.TrimSpace(req.InitCommand),
			Start: strings.TrimSpace(req.StartCommand),
		},
		Ports:     ports,
		Tier:      tier,
		Resources: limits,
		Env:       maps.Clone(req.Env),
		Mode:      mode,
	}

	var template *Template

	if req.Template != "" {
		t, ok := l.catalog.Lookup(req.Template)
		if !ok {
			return nil, fmt.Errorf("%w: template %q not found", ErrValidation, req.Template)
		}

		template = &t
	}

	if req.RepoURL != "" {
		source, err := validateSource(strings.TrimSpace(req.RepoURL), req.Ref)
		if err != nil {
			return nil, err
		}

		spec.Source = source

		if l.manifests != nil {
			if overlay, ok := l.manifests.Fetch(ctx, source.RepoURL); ok {
				mergeOverlay(&spec, overlay)
			}
		}
	}

	if template != nil {
		applyTemplate(&spec, *template)
	}

	if spec.Image == "" {
		return nil, fmt.Errorf("%w: image is required when no template is given", ErrValidation)
	}

	return &Workspace{
		ID:    id,
		Owner: owner,
		Spec:  spec,
		Status: Status{
			Phase:   PhasePending,
			Message: "workspace accepted",
		},
	}, nil
}

// ListWorkspaces lists the requester's own workspaces from the persisted records.
func (l *Lifecycle) ListWorkspaces(ctx context.Context, requester Requester) ([]WorkspaceView, error) {
	return l.list(ctx, ListFilter{Owner: requester.Name})
}

// ListAllWorkspaces lists every workspace. Admin only.
func (l *Lifecycle) ListAllWorkspaces(ctx context.Context, requester Requester) ([]WorkspaceView, error) {
	if !requester.IsAdmin() {
		return nil, fmt.Errorf("%w: listing all workspaces requires admin", ErrForbidden)
	}

	return l.list(ctx, ListFilter{})
}

func (l *Lifecycle) list(ctx context.Context, filter ListFilter) ([]WorkspaceView, error) {
	items, err := l.store.ListWorkspacesQuery(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list workspaces: %w", err)
	}

	views := make([]WorkspaceView, 0, len(items))
	for i := range items {
		views = append(views, Project(&items[i], LiveState{}))
	}

	return views, nil
}

// GetWorkspace returns the workspace merged with its live state.
func (l *Lifecycle) GetWorkspace(ctx context.Context, requester Requester, id string) (*WorkspaceView, error) {
	ws, err := l.authorized(ctx, requester, id)
	if err != nil {
		return nil, err
	}

	view := l.projector.View(ctx, ws)

	return &view, nil
}

// GetLogs returns the last tailLines lines of the first workload pod.
func (l *Lifecycle) GetLogs(ctx context.Context, requester Requester, id string, tailLines int64) (string, error) {
	ws, err := l.authorized(ctx, requester, id)
	if err != nil {
		return "", err
	}

	if ws.Status.Namespace == "" {
		return "", fmt.Errorf("%w: %s has no namespace yet", ErrNotReady, id)
	}

	if tailLines <= 0 {
		tailLines = defaultLogTailLines
	}

	selector := labels.SelectorFromSet(workloadSelector(ws)).String()

	pods, err := l.cluster.ListPodsQuery(ctx, ws.Status.Namespace, selector)
	if err != nil {
		return "", fmt.Errorf("list workload pods: %w", err)
	}

	if len(pods) == 0 {
		return "", fmt.Errorf("%w: %s has no pods", ErrNotReady, id)
	}

	logs, err := l.cluster.GetPodLogsQuery(ctx, ws.Status.Namespace, pods[0].Name, tailLines)
	if err != nil {
		return "", fmt.Errorf("get pod logs: %w", err)
	}

	return logs, nil
}

// StopWorkspace stops the workload and keeps the namespace.
func (l *Lifecycle) StopWorkspace(ctx context.Context, requester Requester, id string) (*WorkspaceView, error) {
	return l.act(ctx, requester, id, l.reconciler.StopCommand)
}

// StartWorkspace starts a stopped or failed workspace.
func (l *Lifecycle) StartWorkspace(ctx context.Context, requester Requester, id string) (*WorkspaceView, error) {
	return l.act(ctx, requester, id, l.reconciler.StartCommand)
}

func (l *Lifecycle) act(
	ctx context.Context,
	requester Requester,
	id string,
	action func(ctx context.Context, id string) (*Workspace, error),
) (*WorkspaceView, error) {
	ws, err := l.authorized(ctx, requester, id)
	if err != nil {
		return nil, err
	}

	if ws.Status.Namespace == "" {
		return nil, fmt.Errorf("%w: %s has no namespace yet", ErrNotReady, id)
	}

	release, ok := l.reconciler.TryBegin(id)
	if !ok {
		return nil, fmt.Errorf("%w: another action is in progress on %s", ErrConflict, id)
	}
	defer release()

	ws, err = action(ctx, id)
	if err != nil {
		return nil, err
	}

	view := Project(ws, LiveState{})

	return &view, nil
}

// RestartWorkspace schedules a restart. It returns once the restart job runs.
func (l *Lifecycle) RestartWorkspace(ctx context.Context, requester Requester, id string) error {
	ws, err := l.authorized(ctx, requester, id)
	if err != nil {
		return err
	}

	if ws.Status.Namespace == "" {
		return fmt.Errorf("%w: %s has no namespace yet", ErrNotReady, id)
	}

	if err := checkTransition(ws.Status.Phase, PhaseCreating); err != nil {
		return err
	}

	release, ok := l.reconciler.TryBegin(id)
	if !ok {
		return fmt.Errorf("%w: another action is in progress on %s", ErrConflict, id)
	}

	if !l.reconciler.RestartCommand(ctx, id, release) {
		return fmt.Errorf("%w: restart already running for %s", ErrConflict, id)
	}

	return nil
}

// DeleteWorkspace removes the workspace and everything it owns.
func (l *Lifecycle) DeleteWorkspace(
	ctx context.Context,
	requester Requester,
	id string,
	deleteNamespaceFirst bool,
) error {
	if _, err := l.authorized(ctx, requester, id); err != nil {
		return err
	}

	release, ok := l.reconciler.TryBegin(id)
	if !ok {
		return fmt.Errorf("%w: another action is in progress on %s", ErrConflict, id)
	}
	defer release()

	return l.reconciler.DeleteCommand(ctx, id, deleteNamespaceFirst)
}

// SweepExpired runs the expiry sweep on demand. Admin only.
func (l *Lifecycle) SweepExpired(ctx context.Context, requester Requester, dryRun bool) (*SweepReport, error) {
	if !requester.IsAdmin() {
		return nil, fmt.Errorf("%w: sweep requires admin", ErrForbidden)
	}

	return l.reconciler.SweepExpiredCommand(ctx, dryRun)
}

// QuotaStatus reports the quota of an execution namespace. Admin only.
func (l *Lifecycle) QuotaStatus(ctx context.Context, requester Requester, namespace string) (*QuotaView, error) {
	if !requester.IsAdmin() {
		return nil, fmt.Errorf("%w: quota status requires admin", ErrForbidden)
	}

	record, err := l.quota.StatusForNamespace(ctx, namespace)
	if err != nil {
		return nil, err
	}

	return projectQuota(record), nil
}

// ClusterOverview summarizes nodes and pods. Admin only.
func (l *Lifecycle) ClusterOverview(ctx context.Context, requester Requester) (*ClusterOverview, error) {
	if !requester.IsAdmin() {
		return nil, fmt.Errorf("%w: cluster overview requires admin", ErrForbidden)
	}

	overview, err := l.cluster.ClusterOverviewQuery(ctx, namespacePrefix+"-")
	if err != nil {
		return nil, fmt.Errorf("cluster overview: %w", err)
	}

	return overview, nil
}

// authorized loads the workspace and checks the requester may act on it.
func (l *Lifecycle) authorized(ctx context.Context, requester Requester, id string) (*Workspace, error) {
	ws, err := l.reconciler.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if !requester.IsAdmin() && ws.Owner != requester.Name {
		return nil, fmt.Errorf("%w: %s is not owned by %s", ErrForbidden, id, requester.Name)
	}

	return ws, nil
}

func resultOf(ws *Workspace) *CreateResult {
	return &CreateResult{
		ID:        ws.ID,
		Phase:     ws.Status.Phase,
		Namespace: ws.Status.Namespace,
		Address:   ws.Status.Address,
		Message:   ws.Status.Message,
	}
}
