package workspace

import (
	"fmt"
	"sort"

	"k8s.io/apimachinery/pkg/api/resource"
)

const (
	codeServerImage = "codercom/code-server:latest"
	jupyterImage    = "jupyter/scipy-notebook:latest"
	jupyterPort     = 8888
)

// StaticCatalog is an in-memory template catalog.
type StaticCatalog struct {
	templates map[string]Template
}

// NewStaticCatalog returns a catalog with the given templates.
func NewStaticCatalog(templates ...Template) *StaticCatalog {
	c := &StaticCatalog{templates: make(map[string]Template, len(templates))}
	for _, t := range templates {
		c.templates[t.Name] = t
	}

	return c
}

// DefaultCatalog returns the built-in IDE templates.
func DefaultCatalog() *StaticCatalog {
	return NewStaticCatalog(
		Template{Name: "vscode-python", Image: codeServerImage, Port: defaultServicePort},
		Template{Name: "vscode-node", Image: codeServerImage, Port: defaultServicePort},
		Template{Name: "vscode-react", Image: codeServerImage, Port: defaultServicePort},
		Template{
			Name:  "jupyter",
			Image: jupyterImage,
			Port:  jupyterPort,
			Env:   map[string]string{"JUPYTER_ENABLE_LAB": "yes"},
		},
	)
}

func (c *StaticCatalog) Lookup(name string) (Template, bool) {
	t, ok := c.templates[name]

	return t, ok
}

// Names lists the template names in order.
func (c *StaticCatalog) Names() []string {
	names := make([]string, 0, len(c.templates))
	for name := range c.templates {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// Tiers maps tier names to resource ceilings.
type Tiers map[string]ResourceLimits

// DefaultTiers returns small and large tiers around the given medium tier.
func DefaultTiers(medium ResourceLimits) Tiers {
	return Tiers{
		TierSmall: {
			CPU:     resource.MustParse("500m"),
			Memory:  resource.MustParse("1Gi"),
			Storage: resource.MustParse("5Gi"),
		},
		TierMedium: medium,
		TierLarge: {
			CPU:     resource.MustParse("2000m"),
			Memory:  resource.MustParse("4Gi"),
			Storage: resource.MustParse("20Gi"),
		},
	}
}

// MediumLimits parses the default tier from its string form.
func MediumLimits(cpu, memory, storage string) (ResourceLimits, error) {
	var (
		limits ResourceLimits
		err    error
	)

	if limits.CPU, err = resource.ParseQuantity(cpu); err != nil {
		return ResourceLimits{}, fmt.Errorf("parse cpu %q: %w", cpu, err)
	}

	if limits.Memory, err = resource.ParseQuantity(memory); err != nil {
		return ResourceLimits{}, fmt.Errorf("parse memory %q: %w", memory, err)
	}

	if limits.Storage, err = resource.ParseQuantity(storage); err != nil {
		return ResourceLimits{}, fmt.Errorf("parse storage %q: %w", storage, err)
	}

	return limits, nil
}

// Resolve returns the limits of tier; an empty tier means medium.
func (t Tiers) Resolve(tier string) (string, ResourceLimits, error) {
	if tier == "" {
		tier = TierMedium
	}

	limits, ok := t[tier]
	if !ok {
		return "", ResourceLimits{}, fmt.Errorf("%w: unknown tier %q", ErrValidation, tier)
	}

	return tier, limits, nil
}
