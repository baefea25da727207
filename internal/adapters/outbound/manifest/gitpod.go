package manifest

import (
	"fmt"
	"strconv"

	"k8s.io/apimachinery/pkg/util/intstr"
	"sigs.k8s.io/yaml"

	"github.com/skillcoder/kubedev-controller/internal/logic/workspace"
)

const maxPort = 65535

type gitpodManifest struct {
	Image any          `json:"image,omitempty"`
	Tasks []gitpodTask `json:"tasks,omitempty"`
	Ports []gitpodPort `json:"ports,omitempty"`
}

type gitpodTask struct {
	Init    string `json:"init,omitempty"`
	Command string `json:"command,omitempty"`
}

type gitpodPort struct {
	Port intstr.IntOrString `json:"port"`
}

// parseGitpod converts a .gitpod.yml document into an overlay. Only a string
// image is honoured; image build specs and port ranges are ignored.
func parseGitpod(raw []byte) (*workspace.ManifestOverlay, error) {
	var m gitpodManifest

	if err := yaml.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("parse gitpod manifest: %w", err)
	}

	overlay := &workspace.ManifestOverlay{}

	if image, ok := m.Image.(string); ok {
		overlay.Image = image
	}

	if len(m.Tasks) > 0 {
		overlay.Commands = workspace.Commands{
			Init:  m.Tasks[0].Init,
			Start: m.Tasks[0].Command,
		}
	}

	for _, p := range m.Ports {
		if port, ok := portNumber(p.Port); ok {
			overlay.Ports = append(overlay.Ports, port)
		}
	}

	if overlay.Image == "" && overlay.Commands == (workspace.Commands{}) && len(overlay.Ports) == 0 {
		return nil, ErrEmptyManifest
	}

	return overlay, nil
}

func portNumber(v intstr.IntOrString) (int32, bool) {
	n := v.IntVal

	if v.Type == intstr.String {
		parsed, err := strconv.ParseInt(v.StrVal, 10, 32)
		if err != nil {
			return 0, false
		}

		n = int32(parsed)
	}

	if n < 1 || n > maxPort {
		return 0, false
	}

	return n, true
}
