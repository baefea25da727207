package workspace

import (
	"fmt"
	"maps"
	"net/url"
	"slices"
	"strings"

	"k8s.io/apimachinery/pkg/util/validation"
)

const (
	ModePersonal = "personal"
	ModeTeam     = "team"
)

// CreateRequest is the caller input for a new workspace.
type CreateRequest struct {
	Name         string            `json:"name"`
	Template     string            `json:"template,omitempty"`
	RepoURL      string            `json:"repoUrl,omitempty"`
	Ref          string            `json:"ref,omitempty"`
	Image        string            `json:"image,omitempty"`
	InitCommand  string            `json:"initCommand,omitempty"`
	StartCommand string            `json:"startCommand,omitempty"`
	Ports        []int             `json:"ports,omitempty"`
	Tier         string            `json:"tier,omitempty"`
	Env          map[string]string `json:"env,omitempty"`
	Mode         string            `json:"mode,omitempty"`
}

// validatePorts checks the range of every port and drops duplicates keeping order.
func validatePorts(ports []int) ([]int32, error) {
	out := make([]int32, 0, len(ports))

	for _, p := range ports {
		if p < 1 || p > maxPort {
			return nil, fmt.Errorf("%w: port %d out of range 1-%d", ErrValidation, p, maxPort)
		}

		if !slices.Contains(out, int32(p)) {
			out = append(out, int32(p))
		}
	}

	return out, nil
}

func validateSource(repoURL, ref string) (*GitSource, error) {
	u, err := url.Parse(repoURL)
	if err != nil {
		return nil, fmt.Errorf("%w: repository url: %w", ErrValidation, err)
	}

	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("%w: repository url %q must be an http(s) url", ErrValidation, repoURL)
	}

	ref = strings.TrimSpace(ref)
	if ref == "" {
		ref = defaultGitRef
	}

	if strings.HasPrefix(ref, "-") || strings.ContainsAny(ref, " \t\n") {
		return nil, fmt.Errorf("%w: invalid git ref %q", ErrValidation, ref)
	}

	return &GitSource{RepoURL: repoURL, Ref: ref}, nil
}

func validateEnv(env map[string]string) error {
	for _, key := range slices.Sorted(maps.Keys(env)) {
		if errs := validation.IsEnvVarName(key); len(errs) > 0 {
			return fmt.Errorf("%w: env %q: %s", ErrValidation, key, strings.Join(errs, "; "))
		}
	}

	return nil
}

func resolveMode(mode string) (string, error) {
	switch mode {
	case "":
		return defaultMode, nil
	case ModePersonal, ModeTeam:
		return mode, nil
	default:
		return "", fmt.Errorf("%w: unknown mode %q", ErrValidation, mode)
	}
}

// mergeOverlay fills unset parts of spec from a repository manifest: commands
// only when empty, image only when unset, ports as a union.
func mergeOverlay(spec *Spec, overlay *ManifestOverlay) {
	if spec.Commands.Init == "" {
		spec.Commands.Init = overlay.Commands.Init
	}

	if spec.Commands.Start == "" {
		spec.Commands.Start = overlay.Commands.Start
	}

	if spec.Image == "" {
		spec.Image = overlay.Image
	}

	var extra []int32

	for _, p := range overlay.Ports {
		if p >= 1 && p <= maxPort && !slices.Contains(spec.Ports, p) && !slices.Contains(extra, p) {
			extra = append(extra, p)
		}
	}

	slices.Sort(extra)
	spec.Ports = append(spec.Ports, extra...)
}

func applyTemplate(spec *Spec, t Template) {
	if spec.Image == "" {
		spec.Image = t.Image
	}

	if len(spec.Ports) == 0 && t.Port > 0 {
		spec.Ports = []int32{t.Port}
	}

	if len(t.Env) == 0 {
		return
	}

	env := maps.Clone(t.Env)
	maps.Copy(env, spec.Env)
	spec.Env = env
}
