package k8s

import (
	"time"

	"k8s.io/apimachinery/pkg/api/resource"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime/schema"

	"github.com/skillcoder/kubedev-controller/internal/logic/workspace"
)

const (
	workspaceVersion  = "v1alpha1"
	workspaceKind     = "Workspace"
	workspaceListKind = "WorkspaceList"
)

// WorkspaceGVR identifies the Workspace custom resource.
var WorkspaceGVR = schema.GroupVersionResource{
	Group:    workspace.LabelPrefix,
	Version:  workspaceVersion,
	Resource: "workspaces",
}

// WorkspaceListKinds maps the Workspace resource to its list kind for fake
// dynamic clients.
func WorkspaceListKinds() map[schema.GroupVersionResource]string {
	return map[schema.GroupVersionResource]string{WorkspaceGVR: workspaceListKind}
}

type workspaceObject struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   workspaceSpec   `json:"spec"`
	Status workspaceStatus `json:"status,omitempty"`
}

type workspaceSpec struct {
	Owner        string            `json:"owner"`
	TemplateRef  string            `json:"templateRef,omitempty"`
	Source       *gitSource        `json:"source,omitempty"`
	Image        string            `json:"image"`
	InitCommand  string            `json:"initCommand,omitempty"`
	StartCommand string            `json:"startCommand,omitempty"`
	Ports        []int32           `json:"ports,omitempty"`
	Tier         string            `json:"tier,omitempty"`
	Resources    resourceLimits    `json:"resources"`
	Env          map[string]string `json:"env,omitempty"`
	Mode         string            `json:"mode,omitempty"`
}

type gitSource struct {
	RepoURL string `json:"repoURL"`
	Ref     string `json:"ref,omitempty"`
}

type resourceLimits struct {
	CPU     resource.Quantity `json:"cpu"`
	Memory  resource.Quantity `json:"memory"`
	Storage resource.Quantity `json:"storage"`
}

type workspaceStatus struct {
	Phase              string       `json:"phase,omitempty"`
	Namespace          string       `json:"namespace,omitempty"`
	Address            string       `json:"address,omitempty"`
	Message            string       `json:"message,omitempty"`
	StartedAt          *metav1.Time `json:"startedAt,omitempty"`
	StoppedAt          *metav1.Time `json:"stoppedAt,omitempty"`
	ExpiresAt          *metav1.Time `json:"expiresAt,omitempty"`
	LastTransitionTime *metav1.Time `json:"lastTransitionTime,omitempty"`
}

func toWorkspaceObject(ws *workspace.Workspace, namespace string) *workspaceObject {
	obj := &workspaceObject{
		TypeMeta: metav1.TypeMeta{
			APIVersion: WorkspaceGVR.GroupVersion().String(),
			Kind:       workspaceKind,
		},
		ObjectMeta: metav1.ObjectMeta{
			Name:      ws.ID,
			Namespace: namespace,
			Labels: map[string]string{
				workspace.LabelManagedBy: workspace.ManagedByValue,
				workspace.LabelOwner:     workspace.OwnerLabelValue(ws.Owner),
			},
		},
		Spec: workspaceSpec{
			Owner:        ws.Owner,
			TemplateRef:  ws.Spec.TemplateRef,
			Image:        ws.Spec.Image,
			InitCommand:  ws.Spec.Commands.Init,
			StartCommand: ws.Spec.Commands.Start,
			Ports:        ws.Spec.Ports,
			Tier:         ws.Spec.Tier,
			Resources: resourceLimits{
				CPU:     ws.Spec.Resources.CPU,
				Memory:  ws.Spec.Resources.Memory,
				Storage: ws.Spec.Resources.Storage,
			},
			Env:  ws.Spec.Env,
			Mode: ws.Spec.Mode,
		},
		Status: toWorkspaceStatus(ws.Status),
	}

	if ws.Spec.Source != nil {
		obj.Spec.Source = &gitSource{RepoURL: ws.Spec.Source.RepoURL, Ref: ws.Spec.Source.Ref}
	}

	return obj
}

func toWorkspaceStatus(s workspace.Status) workspaceStatus {
	return workspaceStatus{
		Phase:              string(s.Phase),
		Namespace:          s.Namespace,
		Address:            s.Address,
		Message:            s.Message,
		StartedAt:          toMetaTime(s.StartedAt),
		StoppedAt:          toMetaTime(s.StoppedAt),
		ExpiresAt:          toMetaTime(s.ExpiresAt),
		LastTransitionTime: toMetaTime(s.LastTransitionAt),
	}
}

func toDomainWorkspace(obj *workspaceObject) *workspace.Workspace {
	ws := &workspace.Workspace{
		ID:        obj.Name,
		Owner:     obj.Spec.Owner,
		CreatedAt: obj.CreationTimestamp.Time,
		Spec: workspace.Spec{
			TemplateRef: obj.Spec.TemplateRef,
			Image:       obj.Spec.Image,
			Commands: workspace.Commands{
				Init:  obj.Spec.InitCommand,
				Start: obj.Spec.StartCommand,
			},
			Ports: obj.Spec.Ports,
			Tier:  obj.Spec.Tier,
			Resources: workspace.ResourceLimits{
				CPU:     obj.Spec.Resources.CPU,
				Memory:  obj.Spec.Resources.Memory,
				Storage: obj.Spec.Resources.Storage,
			},
			Env:  obj.Spec.Env,
			Mode: obj.Spec.Mode,
		},
		Status: workspace.Status{
			Phase:            workspace.Phase(obj.Status.Phase),
			Namespace:        obj.Status.Namespace,
			Address:          obj.Status.Address,
			Message:          obj.Status.Message,
			StartedAt:        fromMetaTime(obj.Status.StartedAt),
			StoppedAt:        fromMetaTime(obj.Status.StoppedAt),
			ExpiresAt:        fromMetaTime(obj.Status.ExpiresAt),
			LastTransitionAt: fromMetaTime(obj.Status.LastTransitionTime),
		},
	}

	if obj.Spec.Source != nil {
		ws.Spec.Source = &workspace.GitSource{RepoURL: obj.Spec.Source.RepoURL, Ref: obj.Spec.Source.Ref}
	}

	return ws
}

func toMetaTime(t *time.Time) *metav1.Time {
	if t == nil {
		return nil
	}

	mt := metav1.NewTime(*t)

	return &mt
}

func fromMetaTime(t *metav1.Time) *time.Time {
	if t == nil {
		return nil
	}

	v := t.Time

	return &v
}
