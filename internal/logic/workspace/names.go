package workspace

import (
	"fmt"
	"strings"

	"k8s.io/apimachinery/pkg/util/validation"
)

// maxIDLength keeps every name derived from an ID within a DNS label.
const maxIDLength = maxNameLength - len(workloadPrefix) - 1

// WorkspaceID builds the record identifier for owner's workspace called name.
func WorkspaceID(owner, name string) (string, error) {
	id := workspacePrefix + "-" + sanitizeName(owner) + "-" + sanitizeName(name)

	if len(id) > maxIDLength {
		return "", fmt.Errorf("%w: workspace id %q longer than %d characters", ErrValidation, id, maxIDLength)
	}

	if errs := validation.IsDNS1123Label(id); len(errs) > 0 {
		return "", fmt.Errorf("%w: workspace id %q: %s", ErrValidation, id, strings.Join(errs, "; "))
	}

	return id, nil
}

// NamespaceName is the execution namespace of a workspace.
func NamespaceName(id string) string {
	return namespacePrefix + "-" + strings.TrimPrefix(id, workspacePrefix+"-")
}

// WorkloadName is the name shared by the workload and its service.
func WorkloadName(id string) string {
	return workloadPrefix + "-" + id
}

// QuotaName is the resource quota name of a workspace.
func QuotaName(id string) string {
	return quotaPrefix + "-" + WorkloadName(id)
}

// RouteName is the external route name of a workspace.
func RouteName(id string) string {
	return routePrefix + "-" + WorkloadName(id)
}

// RouteHost is the deterministic external hostname of a workspace.
func RouteHost(id, domain string) string {
	return WorkloadName(id) + "." + domain
}

// OwnerLabelValue is the owner label value recorded on every workspace object.
func OwnerLabelValue(owner string) string {
	return sanitizeName(owner)
}

func sanitizeName(s string) string {
	var b strings.Builder

	lastDash := false

	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)

			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')

				lastDash = true
			}
		}
	}

	return strings.Trim(b.String(), "-")
}

func workspaceLabels(ws *Workspace) map[string]string {
	return map[string]string{
		LabelManagedBy: ManagedByValue,
		LabelPartOf:    PartOfValue,
		LabelOwner:     OwnerLabelValue(ws.Owner),
		LabelWorkspace: ws.ID,
	}
}

func workloadLabels(ws *Workspace) map[string]string {
	labels := workspaceLabels(ws)
	labels[LabelApp] = WorkloadName(ws.ID)
	labels[LabelComponent] = ComponentIDE

	return labels
}

func workloadSelector(ws *Workspace) map[string]string {
	return map[string]string{LabelApp: WorkloadName(ws.ID)}
}
