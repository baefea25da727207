package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/skillcoder/kubedev-controller/internal/config"
)

type loadCase struct {
	name    string
	giveEnv map[string]string
	wantErr error
	wantAny bool
	wantCfg *config.Config
}

func assertConfigFields(t *testing.T, got, want *config.Config) {
	t.Helper()

	if want == nil {
		return
	}

	if want.KubeConfig != "" {
		require.Equal(t, want.KubeConfig, got.KubeConfig)
	}

	if want.KubeMaster != "" {
		require.Equal(t, want.KubeMaster, got.KubeMaster)
	}

	if want.HTTPPort != "" {
		require.Equal(t, want.HTTPPort, got.HTTPPort)
	}

	if want.MetricsPort != "" {
		require.Equal(t, want.MetricsPort, got.MetricsPort)
	}

	if want.LogLevel != "" {
		require.Equal(t, want.LogLevel, got.LogLevel)
	}

	if want.LogFormat != "" {
		require.Equal(t, want.LogFormat, got.LogFormat)
	}

	if want.ControlNamespace != "" {
		require.Equal(t, want.ControlNamespace, got.ControlNamespace)
	}

	if want.ResyncInterval != 0 {
		require.Equal(t, want.ResyncInterval, got.ResyncInterval)
	}

	if want.PingerInterval != 0 {
		require.Equal(t, want.PingerInterval, got.PingerInterval)
	}

	if want.ShutdownTimeout != 0 {
		require.Equal(t, want.ShutdownTimeout, got.ShutdownTimeout)
	}

	if want.TerminationFile != "" {
		require.Equal(t, want.TerminationFile, got.TerminationFile)
	}

	if want.ReadinessInterval != 0 {
		require.Equal(t, want.ReadinessInterval, got.ReadinessInterval)
	}

	if want.ReadinessTimeout != 0 {
		require.Equal(t, want.ReadinessTimeout, got.ReadinessTimeout)
	}

	if want.RestartSettleDelay != 0 {
		require.Equal(t, want.RestartSettleDelay, got.RestartSettleDelay)
	}

	if want.RestartSettleTimeout != 0 {
		require.Equal(t, want.RestartSettleTimeout, got.RestartSettleTimeout)
	}

	if want.DefaultExpiry != 0 {
		require.Equal(t, want.DefaultExpiry, got.DefaultExpiry)
	}

	if want.IngressDomain != "" {
		require.Equal(t, want.IngressDomain, got.IngressDomain)
	}

	if want.CloneImage != "" {
		require.Equal(t, want.CloneImage, got.CloneImage)
	}

	if want.CloneTimeout != 0 {
		require.Equal(t, want.CloneTimeout, got.CloneTimeout)
	}

	if want.DefaultCPU != "" {
		require.Equal(t, want.DefaultCPU, got.DefaultCPU)
	}

	if want.DefaultMemory != "" {
		require.Equal(t, want.DefaultMemory, got.DefaultMemory)
	}

	if want.DefaultStorage != "" {
		require.Equal(t, want.DefaultStorage, got.DefaultStorage)
	}

	if want.SweepSchedule != "" {
		require.Equal(t, want.SweepSchedule, got.SweepSchedule)
	}

	if want.ManifestFetchTimeout != 0 {
		require.Equal(t, want.ManifestFetchTimeout, got.ManifestFetchTimeout)
	}

	if want.ManifestGitLabHosts != nil {
		require.Equal(t, want.ManifestGitLabHosts, got.ManifestGitLabHosts)
	}

	if want.APIKeys != nil {
		require.Equal(t, want.APIKeys, got.APIKeys)
	}
}

func TestLoad(t *testing.T) {
	tests := []loadCase{
		{
			name:    "all defaults",
			giveEnv: map[string]string{},
			wantCfg: &config.Config{
				LogLevel:             "info",
				LogFormat:            "json",
				HTTPPort:             "8080",
				MetricsPort:          "9090",
				ControlNamespace:     "kubedev-users",
				ResyncInterval:       5 * time.Minute,
				PingerInterval:       10 * time.Second,
				ShutdownTimeout:      30 * time.Second,
				TerminationFile:      "/mnt/signal/terminating",
				ReadinessInterval:    30 * time.Second,
				ReadinessTimeout:     5 * time.Minute,
				RestartSettleDelay:   10 * time.Second,
				RestartSettleTimeout: time.Minute,
				DefaultExpiry:        8 * time.Hour,
				IngressDomain:        "kubdev.local",
				CloneImage:           "alpine/git:latest",
				CloneTimeout:         2 * time.Minute,
				DefaultCPU:           "1000m",
				DefaultMemory:        "2Gi",
				DefaultStorage:       "10Gi",
				SweepSchedule:        "*/15 * * * *",
				ManifestFetchTimeout: 5 * time.Second,
				APIKeys:              map[string]config.APIKey{},
			},
		},
		{
			name: "override ports and intervals",
			giveEnv: map[string]string{
				"KUBEDEV_HTTP_PORT":          "8081",
				"KUBEDEV_METRICS_PORT":       "9091",
				"KUBEDEV_RESYNC_INTERVAL":    "1m",
				"KUBEDEV_READINESS_INTERVAL": "5s",
				"KUBEDEV_READINESS_TIMEOUT":  "10m",
				"KUBEDEV_DEFAULT_EXPIRY":     "24h",
			},
			wantCfg: &config.Config{
				HTTPPort:          "8081",
				MetricsPort:       "9091",
				ResyncInterval:    time.Minute,
				ReadinessInterval: 5 * time.Second,
				ReadinessTimeout:  10 * time.Minute,
				DefaultExpiry:     24 * time.Hour,
			},
		},
		{
			name: "kubeconfig falls back to KUBECONFIG",
			giveEnv: map[string]string{
				"KUBEDEV_KUBECONFIG":  "",
				"KUBECONFIG":          "/home/dev/.kube/config",
				"KUBEDEV_KUBE_MASTER": "",
				"KUBERNETES_MASTER":   "https://10.0.0.1:6443",
			},
			wantCfg: &config.Config{
				KubeConfig: "/home/dev/.kube/config",
				KubeMaster: "https://10.0.0.1:6443",
			},
		},
		{
			name: "prefixed kubeconfig wins over fallback",
			giveEnv: map[string]string{
				"KUBEDEV_KUBECONFIG": "/etc/kubedev/kubeconfig",
				"KUBECONFIG":         "/home/dev/.kube/config",
			},
			wantCfg: &config.Config{
				KubeConfig: "/etc/kubedev/kubeconfig",
			},
		},
		{
			name: "api keys and gitlab hosts",
			giveEnv: map[string]string{
				"KUBEDEV_API_KEYS":              "k-admin=admin:root, k-dev=user:alice",
				"KUBEDEV_MANIFEST_GITLAB_HOSTS": "gitlab.example.com, ,git.corp.io",
			},
			wantCfg: &config.Config{
				APIKeys: map[string]config.APIKey{
					"k-admin": {Role: "admin", User: "root"},
					"k-dev":   {Role: "user", User: "alice"},
				},
				ManifestGitLabHosts: []string{"gitlab.example.com", "git.corp.io"},
			},
		},
		{
			name: "zero restart settle delay is allowed",
			giveEnv: map[string]string{
				"KUBEDEV_RESTART_SETTLE_DELAY": "0s",
			},
			wantCfg: &config.Config{
				RestartSettleTimeout: time.Minute,
			},
		},
		{
			name: "sweep schedule with timezone",
			giveEnv: map[string]string{
				"KUBEDEV_SWEEP_SCHEDULE": "0 3 * * *",
				"KUBEDEV_SWEEP_TIMEZONE": "Europe/Berlin",
			},
			wantCfg: &config.Config{
				SweepSchedule: "0 3 * * *",
			},
		},
		{
			name:    "invalid resync interval",
			giveEnv: map[string]string{"KUBEDEV_RESYNC_INTERVAL": "x"},
			wantAny: true,
		},
		{
			name:    "resync interval below minimum",
			giveEnv: map[string]string{"KUBEDEV_RESYNC_INTERVAL": "5s"},
			wantErr: config.ErrBelowMinimum,
		},
		{
			name:    "pinger interval below minimum",
			giveEnv: map[string]string{"KUBEDEV_PINGER_INTERVAL": "100ms"},
			wantErr: config.ErrBelowMinimum,
		},
		{
			name:    "negative settle delay",
			giveEnv: map[string]string{"KUBEDEV_RESTART_SETTLE_DELAY": "-1s"},
			wantErr: config.ErrNegative,
		},
		{
			name:    "unknown log level",
			giveEnv: map[string]string{"KUBEDEV_LOG_LEVEL": "verbose"},
			wantErr: config.ErrInvalidLevel,
		},
		{
			name:    "unknown log format",
			giveEnv: map[string]string{"KUBEDEV_LOG_FORMAT": "xml"},
			wantErr: config.ErrInvalidFormat,
		},
		{
			name:    "port out of range",
			giveEnv: map[string]string{"KUBEDEV_HTTP_PORT": "70000"},
			wantErr: config.ErrInvalidPort,
		},
		{
			name:    "malformed memory quantity",
			giveEnv: map[string]string{"KUBEDEV_DEFAULT_MEMORY": "two gigs"},
			wantAny: true,
		},
		{
			name:    "malformed sweep schedule",
			giveEnv: map[string]string{"KUBEDEV_SWEEP_SCHEDULE": "every day"},
			wantAny: true,
		},
		{
			name:    "unknown sweep timezone",
			giveEnv: map[string]string{"KUBEDEV_SWEEP_TIMEZONE": "Mars/Olympus"},
			wantAny: true,
		},
		{
			name:    "api key without role",
			giveEnv: map[string]string{"KUBEDEV_API_KEYS": "k1=alice"},
			wantErr: config.ErrInvalidAPIKey,
		},
		{
			name:    "api key with unknown role",
			giveEnv: map[string]string{"KUBEDEV_API_KEYS": "k1=owner:alice"},
			wantErr: config.ErrInvalidAPIKey,
		},
		{
			name:    "duplicate api key",
			giveEnv: map[string]string{"KUBEDEV_API_KEYS": "k1=user:alice,k1=user:bob"},
			wantErr: config.ErrDuplicateKey,
		},
		{
			name:    "github base url without scheme",
			giveEnv: map[string]string{"KUBEDEV_MANIFEST_GITHUB_API_URL": "github.corp.io/api"},
			wantErr: config.ErrInvalidBaseURL,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.giveEnv {
				t.Setenv(k, v)
			}

			got, err := config.Load()
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)

				return
			}

			if tt.wantAny {
				require.Error(t, err)

				return
			}

			require.NoError(t, err)
			require.NotNil(t, got)

			assertConfigFields(t, got, tt.wantCfg)
		})
	}
}
