package workspace

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"k8s.io/apimachinery/pkg/api/resource"
)

// utilizationKeys maps the reported utilization name to the quota resource it reads.
var utilizationKeys = map[string]string{
	"cpu":        QuotaLimitsCPU,
	"memory":     QuotaLimitsMemory,
	"storage":    QuotaStorage,
	"pods":       QuotaPods,
	"services":   QuotaServices,
	"pvcs":       QuotaPVCs,
	"secrets":    QuotaSecrets,
	"configmaps": QuotaConfigMaps,
}

// QuotaGovernor applies and reports per-namespace resource ceilings.
type QuotaGovernor struct {
	logger  *slog.Logger
	cluster Cluster
}

// NewQuotaGovernor creates a new quota governor.
func NewQuotaGovernor(logger *slog.Logger, cluster Cluster) *QuotaGovernor {
	return &QuotaGovernor{
		logger:  logger.With("component", "quota-governor"),
		cluster: cluster,
	}
}

// DefaultQuotaLimits returns limits with the default object counts for the given ceilings.
func DefaultQuotaLimits(limits ResourceLimits) QuotaLimits {
	return QuotaLimits{
		CPU:        limits.CPU,
		Memory:     limits.Memory,
		Storage:    limits.Storage,
		Pods:       defaultQuotaPods,
		Services:   defaultQuotaServices,
		PVCs:       defaultQuotaPVCs,
		Secrets:    defaultQuotaSecrets,
		ConfigMaps: defaultQuotaConfigMaps,
	}
}

// Apply creates the quota unless one already exists, in which case the existing
// record is returned untouched so limits are never tightened under a running workload.
func (g *QuotaGovernor) Apply(
	ctx context.Context,
	namespace,
	name string,
	labels map[string]string,
	limits QuotaLimits,
) (*QuotaRecord, error) {
	logger := g.logger.With("namespace", namespace, "quota", name)
	hard := quotaHard(limits)

	err := g.cluster.CreateResourceQuotaCommand(ctx, namespace, name, labels, hard)
	if err != nil {
		if !isAlreadyExists(err) {
			return nil, fmt.Errorf("create resource quota: %w", err)
		}

		existing, err := g.Status(ctx, namespace, name)
		if err != nil {
			return nil, fmt.Errorf("read existing resource quota: %w", err)
		}

		logger.DebugContext(ctx, "resource quota already exists, keeping first-applied limits")

		return existing, nil
	}

	logger.InfoContext(ctx, "resource quota created",
		"cpu", limits.CPU.String(),
		"memory", limits.Memory.String(),
		"storage", limits.Storage.String(),
	)

	record := &QuotaRecord{
		Name:      name,
		Namespace: namespace,
		Hard:      hard,
		Used:      map[string]resource.Quantity{},
		Created:   true,
	}
	record.Utilization = Utilization(record)

	return record, nil
}

// Status reads the named quota and recomputes its utilization.
func (g *QuotaGovernor) Status(ctx context.Context, namespace, name string) (*QuotaRecord, error) {
	record, err := g.cluster.GetResourceQuotaQuery(ctx, namespace, name)
	if err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("%w: %s/%s", ErrQuotaNotFound, namespace, name)
		}

		return nil, fmt.Errorf("get resource quota: %w", err)
	}

	record.Utilization = Utilization(record)

	return record, nil
}

// StatusForNamespace reports the first quota found in namespace.
func (g *QuotaGovernor) StatusForNamespace(ctx context.Context, namespace string) (*QuotaRecord, error) {
	records, err := g.cluster.ListResourceQuotasQuery(ctx, namespace)
	if err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("%w: %s", ErrQuotaNotFound, namespace)
		}

		return nil, fmt.Errorf("list resource quotas: %w", err)
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrQuotaNotFound, namespace)
	}

	record := records[0]
	record.Utilization = Utilization(&record)

	return &record, nil
}

// Utilization computes used/hard percentages for every tracked resource.
func Utilization(record *QuotaRecord) map[string]float64 {
	out := make(map[string]float64, len(utilizationKeys))

	for name, key := range utilizationKeys {
		hard, hasHard := record.Hard[key]
		used, hasUsed := record.Used[key]

		if !hasHard || !hasUsed {
			out[name] = 0

			continue
		}

		out[name] = percent(used, hard)
	}

	return out
}

func percent(used, hard resource.Quantity) float64 {
	h := hard.AsApproximateFloat64()
	if h <= 0 {
		return 0
	}

	v := used.AsApproximateFloat64() / h * percentScale
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}

	return math.Round(v*percentScale) / percentScale
}

func quotaHard(limits QuotaLimits) map[string]resource.Quantity {
	return map[string]resource.Quantity{
		QuotaLimitsCPU:      limits.CPU,
		QuotaLimitsMemory:   limits.Memory,
		QuotaRequestsCPU:    half(limits.CPU),
		QuotaRequestsMemory: half(limits.Memory),
		QuotaStorage:        limits.Storage,
		QuotaPods:           *resource.NewQuantity(limits.Pods, resource.DecimalSI),
		QuotaServices:       *resource.NewQuantity(limits.Services, resource.DecimalSI),
		QuotaPVCs:           *resource.NewQuantity(limits.PVCs, resource.DecimalSI),
		QuotaSecrets:        *resource.NewQuantity(limits.Secrets, resource.DecimalSI),
		QuotaConfigMaps:     *resource.NewQuantity(limits.ConfigMaps, resource.DecimalSI),
	}
}

func half(q resource.Quantity) resource.Quantity {
	return *resource.NewMilliQuantity(q.MilliValue()/requestDivisor, q.Format)
}
