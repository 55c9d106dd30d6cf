package cli

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"habitat/internal/domain"
)

func writeContext(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Dockerfile"), []byte("FROM scratch\n"), 0o644))
	return dir
}

func stubPrompt(t *testing.T, terminal bool, password string, err error) *int {
	t.Helper()

	calls := 0
	origTerminal, origPrompt := stdinIsTerminal, promptPassword
	stdinIsTerminal = func() bool { return terminal }
	promptPassword = func(string) (string, error) {
		calls++
		return password, err
	}
	t.Cleanup(func() {
		stdinIsTerminal, promptPassword = origTerminal, origPrompt
	})
	return &calls
}

func TestBuild_StreamsProgress(t *testing.T) {
	stubPrompt(t, false, "", nil)
	dir := writeContext(t)

	fake := newFakeService()
	fake.buildOutput = []string{"Step 1/1 : FROM scratch", "Successfully tagged demo:latest"}

	out, err := runCLI(t, fake, testConfig(t), "build", "-d", dir, "-t", "demo:latest", "-p", "secret", "--no-cache")
	require.NoError(t, err)

	require.Len(t, fake.builds, 1)
	req := fake.builds[0]
	assert.Equal(t, dir, req.ContextDir)
	assert.Equal(t, filepath.Join(dir, "Dockerfile"), req.Dockerfile)
	assert.Equal(t, "demo:latest", req.Tag)
	assert.True(t, req.NoCache)
	assert.Equal(t, map[string]string{
		domain.BuildArgUser:     "alice",
		domain.BuildArgPassword: "secret",
	}, req.BuildArgs)

	assert.Contains(t, out, "Step 1/1 : FROM scratch\n")
	assert.Contains(t, out, "Successfully tagged demo:latest\n")
	assert.Contains(t, out, "Built demo:latest")
}

func TestBuild_PromptsForPasswordOnTerminal(t *testing.T) {
	calls := stubPrompt(t, true, "typed", nil)
	dir := writeContext(t)
	fake := newFakeService()

	_, err := runCLI(t, fake, testConfig(t), "build", "-d", dir, "-t", "demo", "-u", "bob")
	require.NoError(t, err)

	assert.Equal(t, 1, *calls)
	require.Len(t, fake.builds, 1)
	assert.Equal(t, "bob", fake.builds[0].BuildArgs[domain.BuildArgUser])
	assert.Equal(t, "typed", fake.builds[0].BuildArgs[domain.BuildArgPassword])
}

func TestBuild_PasswordFromConfig(t *testing.T) {
	calls := stubPrompt(t, true, "typed", nil)
	dir := writeContext(t)
	fake := newFakeService()

	cfg := testConfig(t)
	cfg.Build.Password = "configured"

	_, err := runCLI(t, fake, cfg, "build", "-d", dir, "-t", "demo")
	require.NoError(t, err)

	assert.Equal(t, 0, *calls)
	assert.Equal(t, "configured", fake.builds[0].BuildArgs[domain.BuildArgPassword])
}

func TestBuild_Errors(t *testing.T) {
	dir := writeContext(t)
	outside := writeContext(t)

	tests := []struct {
		name     string
		terminal bool
		args     []string
		wantErr  error
	}{
		{name: "no password off terminal", args: []string{"-d", dir, "-t", "demo"}},
		{name: "invalid tag", args: []string{"-d", dir, "-t", "Demo Image", "-p", "x"}, wantErr: domain.ErrInvalidImageFormat},
		{name: "user with spaces", args: []string{"-d", dir, "-t", "demo", "-u", "a b", "-p", "x"}, wantErr: domain.ErrInvalidName},
		{name: "dockerfile outside context", args: []string{"-d", dir, "-f", filepath.Join(outside, "Dockerfile"), "-t", "demo", "-p", "x"}, wantErr: domain.ErrDockerfileOutsideContext},
		{name: "missing dockerfile", args: []string{"-d", dir, "-f", filepath.Join(dir, "Nope"), "-t", "demo", "-p", "x"}, wantErr: os.ErrNotExist},
		{name: "missing tag", args: []string{"-d", dir, "-p", "x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stubPrompt(t, tt.terminal, "", nil)
			fake := newFakeService()

			_, err := runCLI(t, fake, testConfig(t), append([]string{"build"}, tt.args...)...)
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			assert.Empty(t, fake.builds)
		})
	}
}

func TestBuild_PromptError(t *testing.T) {
	stubPrompt(t, true, "", errors.New("interrupt"))
	dir := writeContext(t)
	fake := newFakeService()

	_, err := runCLI(t, fake, testConfig(t), "build", "-d", dir, "-t", "demo")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "interrupt")
	assert.Empty(t, fake.builds)
}

func TestBuild_ServiceError(t *testing.T) {
	stubPrompt(t, false, "", nil)
	dir := writeContext(t)
	fake := newFakeService()
	fake.buildErr = domain.ErrBuildFailed

	_, err := runCLI(t, fake, testConfig(t), "build", "-d", dir, "-t", "demo", "-p", "x")
	assert.ErrorIs(t, err, domain.ErrBuildFailed)
}
