package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"habitat/internal/domain"
)

func TestStart_CreatesAndStarts(t *testing.T) {
	fake := newFakeService()
	fake.images["demo:latest"] = true

	out, err := runCLI(t, fake, testConfig(t), "start", "-i", "demo:latest")
	require.NoError(t, err)

	assert.Equal(t, []string{"habitat"}, fake.created)
	assert.Equal(t, []string{
		"RunningContainerID", "ImageExists", "FindContainerID", "CreateContainer", "RunContainer", "BindNetworks",
	}, fake.calls)
	assert.Contains(t, out, "Container habitat started")
}

func TestStart_ReusesExistingContainer(t *testing.T) {
	fake := newFakeService()
	fake.images["demo:latest"] = true
	fake.containers["dev"] = &domain.Container{ID: "c1", Name: "dev", State: "exited"}

	_, err := runCLI(t, fake, testConfig(t), "start", "-i", "demo:latest", "-n", "dev")
	require.NoError(t, err)

	assert.Empty(t, fake.created)
	assert.Equal(t, "running", fake.containers["dev"].State)
	assert.Contains(t, fake.calls, "BindNetworks")
}

func TestStart_AlreadyRunning(t *testing.T) {
	fake := newFakeService()
	fake.containers["habitat"] = &domain.Container{ID: "c1", Name: "habitat", State: "running"}

	out, err := runCLI(t, fake, testConfig(t), "start", "-i", "demo:latest")
	require.NoError(t, err)

	assert.Equal(t, []string{"RunningContainerID"}, fake.calls)
	assert.Contains(t, out, "already running")
}

func TestStart_ImageMissing(t *testing.T) {
	fake := newFakeService()

	_, err := runCLI(t, fake, testConfig(t), "start", "-i", "ghost:latest")
	assert.ErrorIs(t, err, domain.ErrImageNotFound)
	assert.NotContains(t, fake.calls, "CreateContainer")
}

func TestStart_NotRunningAfterStart(t *testing.T) {
	fake := newFakeService()
	fake.images["demo:latest"] = true
	fake.startResult = false

	_, err := runCLI(t, fake, testConfig(t), "start", "-i", "demo:latest")
	assert.ErrorIs(t, err, domain.ErrContainerNotRunning)
	assert.NotContains(t, fake.calls, "BindNetworks")
}

func TestStart_Validation(t *testing.T) {
	fake := newFakeService()

	_, err := runCLI(t, fake, testConfig(t), "start")
	assert.Error(t, err, "image flag is required")

	_, err = runCLI(t, fake, testConfig(t), "start", "-i", "Not Valid")
	assert.ErrorIs(t, err, domain.ErrInvalidImageFormat)

	_, err = runCLI(t, fake, testConfig(t), "start", "-i", "demo", "-n", "bad name")
	assert.ErrorIs(t, err, domain.ErrInvalidName)

	assert.Empty(t, fake.calls)
}

func TestStop(t *testing.T) {
	fake := newFakeService()
	fake.containers["habitat"] = &domain.Container{ID: "c1", Name: "habitat", State: "running"}

	out, err := runCLI(t, fake, testConfig(t), "stop")
	require.NoError(t, err)

	assert.Equal(t, []string{"c1"}, fake.stopped)
	assert.Contains(t, out, "Container habitat stopped")
}

func TestStop_NotRunning(t *testing.T) {
	fake := newFakeService()
	fake.containers["habitat"] = &domain.Container{ID: "c1", Name: "habitat", State: "exited"}

	out, err := runCLI(t, fake, testConfig(t), "stop")
	require.NoError(t, err)

	assert.Empty(t, fake.stopped)
	assert.Contains(t, out, "No running container named habitat")
}

func TestConnect(t *testing.T) {
	fake := newFakeService()
	fake.containers["habitat"] = &domain.Container{ID: "c1", Name: "habitat", State: "running"}

	out, err := runCLI(t, fake, testConfig(t), "connect")
	require.NoError(t, err)
	assert.Equal(t, "docker exec -it habitat fish\n", out)

	out, err = runCLI(t, fake, testConfig(t), "connect", "-c", "bash")
	require.NoError(t, err)
	assert.Equal(t, "docker exec -it habitat bash\n", out)
}

func TestConnect_NotRunning(t *testing.T) {
	fake := newFakeService()

	_, err := runCLI(t, fake, testConfig(t), "connect", "-n", "dev")
	assert.ErrorIs(t, err, domain.ErrContainerNotRunning)
}
