package config

import "time"

const envPrefix = "KUBEDEV_"

// Environment keys.
const (
	envKubeConfig            = envPrefix + "KUBECONFIG"
	envKubeMaster            = envPrefix + "KUBE_MASTER"
	envLogLevel              = envPrefix + "LOG_LEVEL"
	envLogFormat             = envPrefix + "LOG_FORMAT"
	envHTTPPort              = envPrefix + "HTTP_PORT"
	envMetricsPort           = envPrefix + "METRICS_PORT"
	envControlNamespace      = envPrefix + "CONTROL_NAMESPACE"
	envResyncInterval        = envPrefix + "RESYNC_INTERVAL"
	envPingerInterval        = envPrefix + "PINGER_INTERVAL"
	envShutdownTimeout       = envPrefix + "SHUTDOWN_TIMEOUT"
	envTerminationFile       = envPrefix + "TERMINATION_FILE"
	envReadinessInterval     = envPrefix + "READINESS_INTERVAL"
	envReadinessTimeout      = envPrefix + "READINESS_TIMEOUT"
	envRestartSettleDelay    = envPrefix + "RESTART_SETTLE_DELAY"
	envRestartSettleTimeout  = envPrefix + "RESTART_SETTLE_TIMEOUT"
	envDefaultExpiry         = envPrefix + "DEFAULT_EXPIRY"
	envIngressDomain         = envPrefix + "INGRESS_DOMAIN"
	envIngressClass          = envPrefix + "INGRESS_CLASS"
	envCloneImage            = envPrefix + "CLONE_IMAGE"
	envCloneTimeout          = envPrefix + "CLONE_TIMEOUT"
	envDefaultCPU            = envPrefix + "DEFAULT_CPU"
	envDefaultMemory         = envPrefix + "DEFAULT_MEMORY"
	envDefaultStorage        = envPrefix + "DEFAULT_STORAGE"
	envSweepSchedule         = envPrefix + "SWEEP_SCHEDULE"
	envSweepTimezone         = envPrefix + "SWEEP_TIMEZONE"
	envManifestFetchTimeout  = envPrefix + "MANIFEST_FETCH_TIMEOUT"
	envManifestGitLabHosts   = envPrefix + "MANIFEST_GITLAB_HOSTS"
	envManifestGitHubBaseURL = envPrefix + "MANIFEST_GITHUB_API_URL"
	envAPIKeys               = envPrefix + "API_KEYS"

	// Fallbacks honoured by kubectl and client-go tooling.
	envKubeConfigFallback = "KUBECONFIG"
	envKubeMasterFallback = "KUBERNETES_MASTER"
)

// Defaults.
const (
	defaultLogLevel             = "info"
	defaultLogFormat            = "json"
	defaultHTTPPort             = "8080"
	defaultMetricsPort          = "9090"
	defaultControlNamespace     = "kubedev-users"
	defaultResyncInterval       = 5 * time.Minute
	defaultPingerInterval       = 10 * time.Second
	defaultShutdownTimeout      = 30 * time.Second
	defaultTerminationFile      = "/mnt/signal/terminating"
	defaultReadinessInterval    = 30 * time.Second
	defaultReadinessTimeout     = 5 * time.Minute
	defaultRestartSettleDelay   = 10 * time.Second
	defaultRestartSettleTimeout = time.Minute
	defaultExpiry               = 8 * time.Hour
	defaultIngressDomain        = "kubdev.local"
	defaultCloneImage           = "alpine/git:latest"
	defaultCloneTimeout         = 2 * time.Minute
	defaultCPU                  = "1000m"
	defaultMemory               = "2Gi"
	defaultStorage              = "10Gi"
	defaultSweepSchedule        = "*/15 * * * *"
	defaultManifestFetchTimeout = 5 * time.Second
)

// Lower bounds.
const (
	minResyncInterval       = 30 * time.Second
	minPingerInterval       = time.Second
	minShutdownTimeout      = time.Second
	minReadinessInterval    = time.Second
	minReadinessTimeout     = 10 * time.Second
	minRestartSettleTimeout = time.Second
	minExpiry               = time.Minute
	minCloneTimeout         = 10 * time.Second
	minManifestFetchTimeout = 100 * time.Millisecond
)
