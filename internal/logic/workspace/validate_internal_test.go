package workspace

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_validatePorts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		give    []int
		want    []int32
		wantErr bool
	}{
		{name: "none", give: nil, want: []int32{}},
		{name: "keeps order and drops duplicates", give: []int{8080, 3000, 8080}, want: []int32{8080, 3000}},
		{name: "zero", give: []int{0}, wantErr: true},
		{name: "too large", give: []int{65536}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := validatePorts(tt.give)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrValidation)

				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func Test_validateSource(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		giveURL string
		giveRef string
		wantRef string
		wantErr bool
	}{
		{name: "default ref", giveURL: "https://github.com/acme/app", wantRef: "main"},
		{name: "explicit ref", giveURL: "http://git.local/acme/app.git", giveRef: " dev ", wantRef: "dev"},
		{name: "ssh url", giveURL: "git@github.com:acme/app.git", wantErr: true},
		{name: "file url", giveURL: "file:///etc/passwd", wantErr: true},
		{name: "option injection", giveURL: "https://github.com/acme/app", giveRef: "--upload-pack=x", wantErr: true},
		{name: "ref with space", giveURL: "https://github.com/acme/app", giveRef: "a b", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := validateSource(tt.giveURL, tt.giveRef)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrValidation)

				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.giveURL, got.RepoURL)
			require.Equal(t, tt.wantRef, got.Ref)
		})
	}
}

func Test_validateEnv(t *testing.T) {
	t.Parallel()

	require.NoError(t, validateEnv(map[string]string{"NODE_ENV": "dev", "a.b": "x"}))
	require.ErrorIs(t, validateEnv(map[string]string{"1BAD": "x"}), ErrValidation)
	require.ErrorIs(t, validateEnv(map[string]string{"A=B": "x"}), ErrValidation)
}

func Test_resolveMode(t *testing.T) {
	t.Parallel()

	got, err := resolveMode("")
	require.NoError(t, err)
	require.Equal(t, ModePersonal, got)

	got, err = resolveMode(ModeTeam)
	require.NoError(t, err)
	require.Equal(t, ModeTeam, got)

	_, err = resolveMode("shared")
	require.ErrorIs(t, err, ErrValidation)
}

func Test_mergeOverlay(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		giveSpec    Spec
		giveOverlay ManifestOverlay
		want        Spec
	}{
		{
			name:     "fills empty fields",
			giveSpec: Spec{},
			giveOverlay: ManifestOverlay{
				Image:    "node:20",
				Commands: Commands{Init: "npm ci", Start: "npm start"},
				Ports:    []int32{5173, 3000},
			},
			want: Spec{
				Image:    "node:20",
				Commands: Commands{Init: "npm ci", Start: "npm start"},
				Ports:    []int32{3000, 5173},
			},
		},
		{
			name: "request values win",
			giveSpec: Spec{
				Image:    "demo:latest",
				Commands: Commands{Start: "make run"},
				Ports:    []int32{9000, 3000},
			},
			giveOverlay: ManifestOverlay{
				Image:    "node:20",
				Commands: Commands{Init: "npm ci", Start: "npm start"},
				Ports:    []int32{8081, 3000, 8080, 8081, 0},
			},
			want: Spec{
				Image:    "demo:latest",
				Commands: Commands{Init: "npm ci", Start: "make run"},
				Ports:    []int32{9000, 3000, 8080, 8081},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			spec := tt.giveSpec
			mergeOverlay(&spec, &tt.giveOverlay)
			require.Equal(t, tt.want, spec)
		})
	}
}

func Test_applyTemplate(t *testing.T) {
	t.Parallel()

	tmpl := Template{
		Name:  "jupyter",
		Image: "jupyter/scipy-notebook:latest",
		Port:  8888,
		Env:   map[string]string{"JUPYTER_ENABLE_LAB": "yes", "MODE": "template"},
	}

	t.Run("fills image port and env", func(t *testing.T) {
		t.Parallel()

		spec := Spec{Env: map[string]string{"MODE": "request"}}
		applyTemplate(&spec, tmpl)

		require.Equal(t, "jupyter/scipy-notebook:latest", spec.Image)
		require.Equal(t, []int32{8888}, spec.Ports)
		require.Equal(t, map[string]string{"JUPYTER_ENABLE_LAB": "yes", "MODE": "request"}, spec.Env)
	})

	t.Run("explicit image and ports win", func(t *testing.T) {
		t.Parallel()

		spec := Spec{Image: "custom:1", Ports: []int32{9000}}
		applyTemplate(&spec, tmpl)

		require.Equal(t, "custom:1", spec.Image)
		require.Equal(t, []int32{9000}, spec.Ports)
	})
}
