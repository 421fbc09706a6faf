package config

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseArgs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		args       []string
		want       Args
		wantStderr string
	}{
		{
			name: "no args",
			args: nil,
			want: Args{},
		},
		{
			name: "import and export",
			args: []string{"-import", "in.txt", "-export", "out.txt"},
			want: Args{Import: "in.txt", Export: "out.txt"},
		},
		{
			name: "later flag wins",
			args: []string{"-export", "a.txt", "-export", "b.txt"},
			want: Args{Export: "b.txt"},
		},
		{
			name:       "unknown argument is skipped",
			args:       []string{"-verbose", "-import", "in.txt"},
			want:       Args{Import: "in.txt"},
			wantStderr: "Unknown argument: -verbose\n",
		},
		{
			name:       "missing value",
			args:       []string{"-import", "in.txt", "-export"},
			want:       Args{Import: "in.txt"},
			wantStderr: "Error: Missing argument for -export\n",
		},
		{
			name:       "flag value taken verbatim",
			args:       []string{"-import", "-export"},
			want:       Args{Import: "-export"},
			wantStderr: "",
		},
		{
			name:       "several problems",
			args:       []string{"x", "y", "-import"},
			want:       Args{},
			wantStderr: "Unknown argument: x\nUnknown argument: y\nError: Missing argument for -import\n",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			stderr := &bytes.Buffer{}
			got := ParseArgs(tt.args, stderr)

			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantStderr, stderr.String())
		})
	}
}

// Init reads process environment, so these tests do not run in parallel.

func TestInit_Defaults(t *testing.T) {
	t.Setenv("CONFIG_NAME", "missing")

	cfg, err := Init(nil, &bytes.Buffer{})
	require.NoError(t, err)

	assert.Equal(t, &Config{
		Env:   "production",
		Log:   LogConfig{Level: "warn", Output: "stderr"},
		Files: FilesConfig{},
		Quiz:  QuizConfig{Seed: 0},
	}, cfg)
}

func TestInit_Env(t *testing.T) {
	t.Setenv("CONFIG_NAME", "missing")
	t.Setenv("APP_ENV", "development")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_OUTPUT", "flashcards.log")
	t.Setenv("FLASHCARDS_IMPORT", "env_in.txt")
	t.Setenv("FLASHCARDS_EXPORT", "env_out.txt")
	t.Setenv("QUIZ_SEED", "42")

	cfg, err := Init(nil, &bytes.Buffer{})
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, LogConfig{Level: "debug", Output: "flashcards.log"}, cfg.Log)
	assert.Equal(t, FilesConfig{Import: "env_in.txt", Export: "env_out.txt"}, cfg.Files)
	assert.Equal(t, int64(42), cfg.Quiz.Seed)
}

func TestInit_ArgsOverrideEnv(t *testing.T) {
	t.Setenv("CONFIG_NAME", "missing")
	t.Setenv("FLASHCARDS_IMPORT", "env_in.txt")
	t.Setenv("FLASHCARDS_EXPORT", "env_out.txt")

	stderr := &bytes.Buffer{}
	cfg, err := Init([]string{"-import", "arg_in.txt", "-bogus"}, stderr)
	require.NoError(t, err)

	assert.Equal(t, FilesConfig{Import: "arg_in.txt", Export: "env_out.txt"}, cfg.Files)
	assert.Equal(t, "Unknown argument: -bogus\n", stderr.String())
}

func TestInit_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{
			name: "unknown env",
			env:  map[string]string{"APP_ENV": "staging"},
		},
		{
			name: "unknown log level",
			env:  map[string]string{"LOG_LEVEL": "loud"},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("CONFIG_NAME", "missing")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := Init(nil, &bytes.Buffer{})
			require.Error(t, err)
			assert.Contains(t, err.Error(), "validation failed")
		})
	}
}
