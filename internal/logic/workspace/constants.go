package workspace

import "time"

const (
	LabelPrefix     = "kubedev.skillcoder.com"
	LabelOwner      = LabelPrefix + "/owner"
	LabelWorkspace  = LabelPrefix + "/workspace"
	LabelManagedBy  = "app.kubernetes.io/managed-by"
	LabelComponent  = "app.kubernetes.io/component"
	LabelPartOf     = "app.kubernetes.io/part-of"
	LabelApp        = "app"
	ManagedByValue  = "kubedev-controller"
	PartOfValue     = "kubedev"
	ComponentIDE    = "ide"
	defaultGitRef   = "main"
	defaultMode     = ModePersonal
	workingDir      = "/workspace"
	workspacePrefix = "env"
	namespacePrefix = "kubedev"
	workloadPrefix  = "ide"
	quotaPrefix     = "quota"
	routePrefix     = "ing"

	defaultServicePort int32 = 8080
	maxPort                  = 65535
	maxNameLength            = 63

	defaultQuotaPods       = 5
	defaultQuotaServices   = 5
	defaultQuotaPVCs       = 3
	defaultQuotaSecrets    = 10
	defaultQuotaConfigMaps = 10

	// percentScale turns a ratio into a percentage.
	percentScale = 100
	// requestDivisor derives the guaranteed request ceiling from the limit ceiling.
	requestDivisor = 2

	defaultLogTailLines int64 = 100
)

// Tier names.
const (
	TierSmall  = "small"
	TierMedium = "medium"
	TierLarge  = "large"
)

// Roles known to the lifecycle API.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// Quota resource keys used in QuotaRecord maps.
const (
	QuotaLimitsCPU      = "limits.cpu"
	QuotaLimitsMemory   = "limits.memory"
	QuotaRequestsCPU    = "requests.cpu"
	QuotaRequestsMemory = "requests.memory"
	QuotaStorage        = "requests.storage"
	QuotaPods           = "pods"
	QuotaServices       = "services"
	QuotaPVCs           = "persistentvolumeclaims"
	QuotaSecrets        = "secrets"
	QuotaConfigMaps     = "configmaps"
)

// Defaults used when Options leaves a field empty.
const (
	DefaultReadinessInterval    = 30 * time.Second
	DefaultReadinessTimeout     = 5 * time.Minute
	DefaultRestartSettleDelay   = 10 * time.Second
	DefaultRestartSettleTimeout = time.Minute
	DefaultExpiry               = 8 * time.Hour
	DefaultCloneTimeout         = 2 * time.Minute
	DefaultIngressDomain        = "kubdev.local"
	DefaultCloneImage           = "alpine/git:latest"
)
