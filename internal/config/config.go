package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"k8s.io/apimachinery/pkg/api/resource"

	"github.com/skillcoder/kubedev-controller/internal/infra/cronparser"
)

const (
	roleAdmin = "admin"
	roleUser  = "user"
	maxPort   = 65535
)

// APIKey is the identity bound to a static API key.
type APIKey struct {
	Role string
	User string
}

type Config struct {
	KubeConfig  string
	KubeMaster  string
	LogLevel    string
	LogFormat   string
	HTTPPort    string
	MetricsPort string

	ShutdownTimeout time.Duration
	TerminationFile string

	ControlNamespace     string
	ResyncInterval       time.Duration
	PingerInterval       time.Duration
	ReadinessInterval    time.Duration
	ReadinessTimeout     time.Duration
	RestartSettleDelay   time.Duration
	RestartSettleTimeout time.Duration
	DefaultExpiry        time.Duration

	IngressDomain  string
	IngressClass   string
	CloneImage     string
	CloneTimeout   time.Duration
	DefaultCPU     string
	DefaultMemory  string
	DefaultStorage string

	SweepSchedule string
	SweepTimezone string

	ManifestFetchTimeout  time.Duration
	ManifestGitLabHosts   []string
	ManifestGitHubBaseURL string

	APIKeys map[string]APIKey
}

// Load reads the configuration from the environment and validates it.
func Load() (*Config, error) {
	var err error

	cfg := &Config{
		KubeConfig:            firstEnv(envKubeConfig, envKubeConfigFallback),
		KubeMaster:            firstEnv(envKubeMaster, envKubeMasterFallback),
		LogLevel:              getEnv(envLogLevel, defaultLogLevel),
		LogFormat:             getEnv(envLogFormat, defaultLogFormat),
		HTTPPort:              getEnv(envHTTPPort, defaultHTTPPort),
		MetricsPort:           getEnv(envMetricsPort, defaultMetricsPort),
		TerminationFile:       getEnv(envTerminationFile, defaultTerminationFile),
		ControlNamespace:      getEnv(envControlNamespace, defaultControlNamespace),
		IngressDomain:         getEnv(envIngressDomain, defaultIngressDomain),
		IngressClass:          os.Getenv(envIngressClass),
		CloneImage:            getEnv(envCloneImage, defaultCloneImage),
		DefaultCPU:            getEnv(envDefaultCPU, defaultCPU),
		DefaultMemory:         getEnv(envDefaultMemory, defaultMemory),
		DefaultStorage:        getEnv(envDefaultStorage, defaultStorage),
		SweepSchedule:         getEnv(envSweepSchedule, defaultSweepSchedule),
		SweepTimezone:         os.Getenv(envSweepTimezone),
		ManifestGitLabHosts:   splitList(os.Getenv(envManifestGitLabHosts)),
		ManifestGitHubBaseURL: os.Getenv(envManifestGitHubBaseURL),
	}

	durations := []struct {
		key    string
		def    time.Duration
		min    time.Duration
		target *time.Duration
	}{
		{envResyncInterval, defaultResyncInterval, minResyncInterval, &cfg.ResyncInterval},
		{envPingerInterval, defaultPingerInterval, minPingerInterval, &cfg.PingerInterval},
		{envShutdownTimeout, defaultShutdownTimeout, minShutdownTimeout, &cfg.ShutdownTimeout},
		{envReadinessInterval, defaultReadinessInterval, minReadinessInterval, &cfg.ReadinessInterval},
		{envReadinessTimeout, defaultReadinessTimeout, minReadinessTimeout, &cfg.ReadinessTimeout},
		{envRestartSettleDelay, defaultRestartSettleDelay, 0, &cfg.RestartSettleDelay},
		{envRestartSettleTimeout, defaultRestartSettleTimeout, minRestartSettleTimeout, &cfg.RestartSettleTimeout},
		{envDefaultExpiry, defaultExpiry, minExpiry, &cfg.DefaultExpiry},
		{envCloneTimeout, defaultCloneTimeout, minCloneTimeout, &cfg.CloneTimeout},
		{envManifestFetchTimeout, defaultManifestFetchTimeout, minManifestFetchTimeout, &cfg.ManifestFetchTimeout},
	}

	for _, d := range durations {
		*d.target, err = parseDuration(d.key, d.def, d.min)
		if err != nil {
			return nil, err
		}
	}

	cfg.APIKeys, err = parseAPIKeys(os.Getenv(envAPIKeys))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", envAPIKeys, err)
	}

	err = cfg.validate()
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%s=%q: %w", envLogLevel, c.LogLevel, ErrInvalidLevel)
	}

	switch c.LogFormat {
	case "json", "text":
	default:
		return fmt.Errorf("%s=%q: %w", envLogFormat, c.LogFormat, ErrInvalidFormat)
	}

	for key, port := range map[string]string{envHTTPPort: c.HTTPPort, envMetricsPort: c.MetricsPort} {
		n, err := strconv.Atoi(port)
		if err != nil || n < 1 || n > maxPort {
			return fmt.Errorf("%s=%q: %w", key, port, ErrInvalidPort)
		}
	}

	for key, value := range map[string]string{
		envDefaultCPU:     c.DefaultCPU,
		envDefaultMemory:  c.DefaultMemory,
		envDefaultStorage: c.DefaultStorage,
	} {
		if _, err := resource.ParseQuantity(value); err != nil {
			return fmt.Errorf("parse %s=%q: %w", key, value, err)
		}
	}

	if _, err := cronparser.New().Parse(c.SweepSchedule, c.SweepTimezone); err != nil {
		return fmt.Errorf("parse %s: %w", envSweepSchedule, err)
	}

	if c.ManifestGitHubBaseURL != "" {
		u, err := url.Parse(c.ManifestGitHubBaseURL)
		if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
			return fmt.Errorf("%s=%q: %w", envManifestGitHubBaseURL, c.ManifestGitHubBaseURL, ErrInvalidBaseURL)
		}
	}

	return nil
}

func getEnv(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}

	return value
}

func firstEnv(keys ...string) string {
	for _, key := range keys {
		if value := strings.TrimSpace(os.Getenv(key)); value != "" {
			return value
		}
	}

	return ""
}

func parseDuration(key string, def, minimum time.Duration) (time.Duration, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def, nil
	}

	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}

	if d < 0 {
		return 0, fmt.Errorf("%s=%s: %w", key, d, ErrNegative)
	}

	if d < minimum {
		return 0, fmt.Errorf("%s=%s, minimum %s: %w", key, d, minimum, ErrBelowMinimum)
	}

	return d, nil
}

func splitList(raw string) []string {
	var out []string

	for item := range strings.SplitSeq(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}

	return out
}

// parseAPIKeys reads "key=role:user" entries separated by commas.
func parseAPIKeys(raw string) (map[string]APIKey, error) {
	keys := make(map[string]APIKey)

	for _, entry := range splitList(raw) {
		key, identity, ok := strings.Cut(entry, "=")
		if !ok {
			return nil, fmt.Errorf("%q: missing '=': %w", entry, ErrInvalidAPIKey)
		}

		role, user, ok := strings.Cut(identity, ":")
		key, role, user = strings.TrimSpace(key), strings.TrimSpace(role), strings.TrimSpace(user)

		if !ok || key == "" || user == "" {
			return nil, fmt.Errorf("%q: want key=role:user: %w", entry, ErrInvalidAPIKey)
		}

		if role != roleAdmin && role != roleUser {
			return nil, fmt.Errorf("%q: unknown role %q: %w", entry, role, ErrInvalidAPIKey)
		}

		if _, dup := keys[key]; dup {
			return nil, fmt.Errorf("%q: %w", user, ErrDuplicateKey)
		}

		keys[key] = APIKey{Role: role, User: user}
	}

	return keys, nil
}
