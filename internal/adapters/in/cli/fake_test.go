package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"habitat/internal/app"
	"habitat/internal/boundaries/out"
	"habitat/internal/domain"
)

// fakeService is an in-memory ContainerService recording the calls it receives.
type fakeService struct {
	images     map[string]bool
	networks   map[string]bool
	containers map[string]*domain.Container // by name

	startResult bool
	pingErr     error
	buildErr    error
	buildOutput []string

	sink    out.ProgressSink
	calls   []string
	builds  []domain.BuildRequest
	created []string
	stopped []string
}

func newFakeService() *fakeService {
	return &fakeService{
		images:      map[string]bool{},
		networks:    map[string]bool{},
		containers:  map[string]*domain.Container{},
		startResult: true,
	}
}

func (f *fakeService) record(call string) { f.calls = append(f.calls, call) }

func (f *fakeService) Ping(context.Context) error {
	f.record("Ping")
	return f.pingErr
}

func (f *fakeService) ImageExists(_ context.Context, imageName string) (bool, error) {
	f.record("ImageExists")
	return f.images[imageName], nil
}

func (f *fakeService) FindImage(_ context.Context, imageName string) (*domain.Image, error) {
	f.record("FindImage")
	if !f.images[imageName] {
		return nil, nil
	}
	return &domain.Image{Name: imageName}, nil
}

func (f *fakeService) NetworkExists(_ context.Context, networkName string) (bool, error) {
	f.record("NetworkExists")
	return f.networks[networkName], nil
}

func (f *fakeService) RunningContainerID(_ context.Context, containerName string) (string, error) {
	f.record("RunningContainerID")
	if c, ok := f.containers[containerName]; ok && c.State == "running" {
		return c.ID, nil
	}
	return "", nil
}

func (f *fakeService) IsContainerRunning(ctx context.Context, containerName string) (bool, error) {
	id, err := f.RunningContainerID(ctx, containerName)
	return id != "", err
}

func (f *fakeService) FindContainerID(_ context.Context, containerName string) (string, error) {
	f.record("FindContainerID")
	if c, ok := f.containers[containerName]; ok {
		return c.ID, nil
	}
	return "", nil
}

func (f *fakeService) CreateContainer(_ context.Context, imageName, containerName string) (string, error) {
	f.record("CreateContainer")
	id := "id-" + containerName
	f.containers[containerName] = &domain.Container{ID: id, Name: containerName, Image: imageName, State: "created"}
	f.created = append(f.created, containerName)
	return id, nil
}

func (f *fakeService) RunContainer(_ context.Context, containerID string) (bool, error) {
	f.record("RunContainer")
	for _, c := range f.containers {
		if c.ID == containerID && f.startResult {
			c.State = "running"
		}
	}
	return f.startResult, nil
}

func (f *fakeService) StopContainer(_ context.Context, containerID string) (bool, error) {
	f.record("StopContainer")
	f.stopped = append(f.stopped, containerID)
	return true, nil
}

func (f *fakeService) BindNetworks(context.Context, string) error {
	f.record("BindNetworks")
	return nil
}

func (f *fakeService) BuildContainer(_ context.Context, req domain.BuildRequest) error {
	f.record("BuildContainer")
	f.builds = append(f.builds, req)
	for _, line := range f.buildOutput {
		f.sink.Progress(line)
	}
	return f.buildErr
}

func (f *fakeService) GetEntryPoint(_ context.Context, containerName string) (string, error) {
	f.record("GetEntryPoint")
	if c, ok := f.containers[containerName]; ok {
		return c.Command, nil
	}
	return "", nil
}

func (f *fakeService) GetLabels(_ context.Context, containerName string) (map[string]string, error) {
	f.record("GetLabels")
	if c, ok := f.containers[containerName]; ok {
		return c.Labels, nil
	}
	return nil, nil
}

// runCLI executes the root command against fake with the given args.
func runCLI(t *testing.T, fake *fakeService, cfg app.Config, args ...string) (string, error) {
	t.Helper()

	open := func(_ rootOptions, progress out.ProgressSink) (*session, error) {
		if progress != nil {
			fake.sink = progress
		}
		return &session{svc: fake, cfg: cfg, close: func() error { return nil }}, nil
	}

	var buf bytes.Buffer
	cmd := newRootCmd(open)
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())
	return buf.String(), err
}

func testConfig(t *testing.T) app.Config {
	t.Helper()

	cfg := app.DefaultConfig()
	cfg.Build.User = "alice"
	cfg.Build.Password = ""
	require.NoError(t, cfg.Validate())
	return cfg
}
