package k8s

import (
	"context"
	"fmt"
	"log/slog"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
	"k8s.io/apimachinery/pkg/labels"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/client-go/dynamic"
	"k8s.io/client-go/util/retry"

	"github.com/skillcoder/kubedev-controller/internal/logic/workspace"
)

type store struct {
	logger    *slog.Logger
	client    dynamic.Interface
	namespace string
}

// NewStore creates a Workspace record store backed by the custom resource in
// the control namespace.
func NewStore(logger *slog.Logger, client dynamic.Interface, namespace string) workspace.Store {
	return &store{
		logger:    logger.With("component", "workspace-store"),
		client:    client,
		namespace: namespace,
	}
}

var _ workspace.Store = (*store)(nil)

func (s *store) resource() dynamic.ResourceInterface {
	return s.client.Resource(WorkspaceGVR).Namespace(s.namespace)
}

func (s *store) CreateWorkspaceCommand(
	ctx context.Context,
	ws *workspace.Workspace,
) (*workspace.Workspace, error) {
	u, err := toUnstructured(toWorkspaceObject(ws, s.namespace))
	if err != nil {
		return nil, err
	}

	created, err := s.resource().Create(ctx, u, metav1.CreateOptions{})
	if err != nil {
		return nil, fmt.Errorf("create workspace: %w", translate(kindWorkspace, ws.ID, err))
	}

	// The status subresource ignores status on create.
	created.Object["status"] = u.Object["status"]

	updated, err := s.resource().UpdateStatus(ctx, created, metav1.UpdateOptions{})
	if err != nil {
		return nil, fmt.Errorf("set initial workspace status: %w", translate(kindWorkspace, ws.ID, err))
	}

	return fromUnstructured(updated)
}

func (s *store) GetWorkspaceQuery(ctx context.Context, id string) (*workspace.Workspace, error) {
	u, err := s.resource().Get(ctx, id, metav1.GetOptions{})
	if err != nil {
		return nil, fmt.Errorf("get workspace: %w", translate(kindWorkspace, id, err))
	}

	return fromUnstructured(u)
}

func (s *store) ListWorkspacesQuery(
	ctx context.Context,
	filter workspace.ListFilter,
) ([]workspace.Workspace, error) {
	selector := labels.Set{workspace.LabelManagedBy: workspace.ManagedByValue}
	if filter.Owner != "" {
		selector[workspace.LabelOwner] = workspace.OwnerLabelValue(filter.Owner)
	}

	list, err := s.resource().List(ctx, metav1.ListOptions{
		LabelSelector: labels.SelectorFromSet(selector).String(),
	})
	if err != nil {
		return nil, fmt.Errorf("list workspaces: %w", err)
	}

	out := make([]workspace.Workspace, 0, len(list.Items))

	for i := range list.Items {
		ws, err := fromUnstructured(&list.Items[i])
		if err != nil {
			s.logger.WarnContext(ctx, "skipping malformed workspace", "name", list.Items[i].GetName(), "reason", err)

			continue
		}

		if filter.Matches(ws) {
			out = append(out, *ws)
		}
	}

	return out, nil
}

func (s *store) UpdateStatusCommand(
	ctx context.Context,
	id string,
	mutate func(ws *workspace.Workspace) error,
) (*workspace.Workspace, error) {
	var out *workspace.Workspace

	err := retry.RetryOnConflict(retry.DefaultRetry, func() error {
		u, err := s.resource().Get(ctx, id, metav1.GetOptions{})
		if err != nil {
			return translate(kindWorkspace, id, err)
		}

		ws, err := fromUnstructured(u)
		if err != nil {
			return err
		}

		if err := mutate(ws); err != nil {
			return err
		}

		desired := toWorkspaceStatus(ws.Status)

		status, err := runtime.DefaultUnstructuredConverter.ToUnstructured(&desired)
		if err != nil {
			return fmt.Errorf("convert workspace status: %w", err)
		}

		u.Object["status"] = status

		updated, err := s.resource().UpdateStatus(ctx, u, metav1.UpdateOptions{})
		if err != nil {
			return err
		}

		out, err = fromUnstructured(updated)

		return err
	})
	if err != nil {
		return nil, fmt.Errorf("update workspace %s status: %w", id, translate(kindWorkspace, id, err))
	}

	return out, nil
}

func (s *store) DeleteWorkspaceCommand(ctx context.Context, id string) error {
	err := s.resource().Delete(ctx, id, metav1.DeleteOptions{})
	if err != nil {
		return fmt.Errorf("delete workspace: %w", translate(kindWorkspace, id, err))
	}

	return nil
}

func toUnstructured(obj *workspaceObject) (*unstructured.Unstructured, error) {
	content, err := runtime.DefaultUnstructuredConverter.ToUnstructured(obj)
	if err != nil {
		return nil, fmt.Errorf("convert workspace to unstructured: %w", err)
	}

	return &unstructured.Unstructured{Object: content}, nil
}

func fromUnstructured(u *unstructured.Unstructured) (*workspace.Workspace, error) {
	var obj workspaceObject

	err := runtime.DefaultUnstructuredConverter.FromUnstructured(u.Object, &obj)
	if err != nil {
		return nil, fmt.Errorf("convert unstructured to workspace: %w", err)
	}

	return toDomainWorkspace(&obj), nil
}
