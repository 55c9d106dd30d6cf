package container

import (
	"context"
	"errors"
	"testing"

	"github.com/bnema/zerowrap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"habitat/internal/boundaries/out/mocks"
	"habitat/internal/domain"
)

func TestService_CreateContainer_NoLabels(t *testing.T) {
	svc, engine, _ := newTestService(t)

	engine.EXPECT().FindImage(mock.Anything, "demo:latest").Return(&domain.Image{ID: "i1", Name: "demo:latest"}, nil)
	engine.EXPECT().CreateContainer(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, spec domain.ContainerSpec) (string, error) {
			assert.Equal(t, "habitat", spec.Name)
			assert.Equal(t, "demo:latest", spec.Image)
			assert.True(t, spec.Tty)
			assert.True(t, spec.AttachStdin)
			assert.True(t, spec.AttachStdout)
			assert.True(t, spec.AttachStderr)
			assert.Empty(t, spec.Env)
			assert.Empty(t, spec.HostConfig.Mounts)
			return "c1", nil
		})

	id, err := svc.CreateContainer(testContext(), "demo:latest", "habitat")
	require.NoError(t, err)
	assert.Equal(t, "c1", id)
}

// Image declares socket access and X11.
func TestService_CreateContainer_SocketAndDisplay(t *testing.T) {
	svc, engine, _ := newTestService(t)

	engine.EXPECT().FindImage(mock.Anything, "demo:latest").Return(&domain.Image{
		ID:   "i1",
		Name: "demo:latest",
		Labels: map[string]string{
			domain.LabelWithDocker: "true",
			domain.LabelWithX11:    "true",
		},
	}, nil)

	var submitted domain.ContainerSpec
	engine.EXPECT().CreateContainer(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, spec domain.ContainerSpec) (string, error) {
			submitted = spec
			return "c1", nil
		})

	id, err := svc.CreateContainer(testContext(), "demo:latest", "habitat")
	require.NoError(t, err)
	assert.Equal(t, "c1", id)

	assert.Equal(t, []domain.Mount{{
		Type:   domain.MountTypeBind,
		Source: "/var/run/docker.sock",
		Target: "/var/run/docker.sock",
	}}, submitted.HostConfig.Mounts)
	assert.Equal(t, []string{"DISPLAY=host.docker.internal:0"}, submitted.Env)
}

// Image declares two volumes; "a" exists, "b" has to be created.
func TestService_CreateContainer_Volumes(t *testing.T) {
	svc, engine, _ := newTestService(t)

	engine.EXPECT().FindImage(mock.Anything, "demo:latest").Return(&domain.Image{
		ID:   "i1",
		Name: "demo:latest",
		Labels: map[string]string{
			domain.LabelVolumeRoot: "/data",
			domain.LabelVolumes:    "a,b",
		},
	}, nil)
	engine.EXPECT().FindVolume(mock.Anything, "a").Return(&domain.Volume{Name: "a", Driver: "local"}, nil)
	engine.EXPECT().FindVolume(mock.Anything, "b").Return(nil, nil)
	engine.EXPECT().CreateLocalVolume(mock.Anything, "b", map[string]string{
		domain.LabelManagedVolume:  "true",
		domain.LabelOwnerContainer: "habitat",
	}).Return(&domain.Volume{Name: "b", Driver: "local"}, nil).Once()

	var submitted domain.ContainerSpec
	engine.EXPECT().CreateContainer(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, spec domain.ContainerSpec) (string, error) {
			submitted = spec
			return "c1", nil
		})

	_, err := svc.CreateContainer(testContext(), "demo:latest", "habitat")
	require.NoError(t, err)

	assert.Equal(t, []domain.Mount{
		{Type: domain.MountTypeVolume, Source: "a", Target: "/data/a"},
		{Type: domain.MountTypeVolume, Source: "b", Target: "/data/b"},
	}, submitted.HostConfig.Mounts)
	assert.Empty(t, submitted.Env)
}

func TestService_CreateContainer_VolumeIdempotent(t *testing.T) {
	svc, engine, _ := newTestService(t)

	engine.EXPECT().FindImage(mock.Anything, "demo:latest").Return(&domain.Image{
		ID:     "i1",
		Name:   "demo:latest",
		Labels: map[string]string{domain.LabelVolumeRoot: "/data", domain.LabelVolumes: "cache"},
	}, nil)

	// Created on the first pass, found on the second.
	engine.EXPECT().FindVolume(mock.Anything, "cache").Return(nil, nil).Once()
	engine.EXPECT().CreateLocalVolume(mock.Anything, "cache", mock.Anything).Return(&domain.Volume{Name: "cache"}, nil).Once()
	engine.EXPECT().FindVolume(mock.Anything, "cache").Return(&domain.Volume{Name: "cache"}, nil).Once()
	engine.EXPECT().CreateContainer(mock.Anything, mock.Anything).Return("c1", nil).Twice()

	ctx := testContext()
	_, err := svc.CreateContainer(ctx, "demo:latest", "habitat")
	require.NoError(t, err)
	_, err = svc.CreateContainer(ctx, "demo:latest", "habitat")
	require.NoError(t, err)
}

func TestService_CreateContainer_PartialVolumeDeclaration(t *testing.T) {
	tests := []struct {
		name   string
		labels map[string]string
	}{
		{name: "root only", labels: map[string]string{domain.LabelVolumeRoot: "/data"}},
		{name: "names only", labels: map[string]string{domain.LabelVolumes: "a,b"}},
		{name: "blank names", labels: map[string]string{domain.LabelVolumeRoot: "/data", domain.LabelVolumes: " , "}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, engine, _ := newTestService(t)

			engine.EXPECT().FindImage(mock.Anything, "demo:latest").Return(&domain.Image{ID: "i1", Labels: tt.labels}, nil)
			engine.EXPECT().CreateContainer(mock.Anything, mock.Anything).
				RunAndReturn(func(_ context.Context, spec domain.ContainerSpec) (string, error) {
					assert.Empty(t, spec.HostConfig.Mounts)
					return "c1", nil
				})

			_, err := svc.CreateContainer(testContext(), "demo:latest", "habitat")
			require.NoError(t, err)
		})
	}
}

func TestService_CreateContainer_MarkerPresenceIgnoresValue(t *testing.T) {
	for _, value := range []string{"false", "0", "f", "FALSE", ""} {
		t.Run("value "+value, func(t *testing.T) {
			svc, engine, _ := newTestService(t)

			engine.EXPECT().FindImage(mock.Anything, "demo:latest").Return(&domain.Image{
				ID: "i1",
				Labels: map[string]string{
					domain.LabelWithDocker: value,
					domain.LabelWithX11:    value,
				},
			}, nil)
			engine.EXPECT().CreateContainer(mock.Anything, mock.Anything).
				RunAndReturn(func(_ context.Context, spec domain.ContainerSpec) (string, error) {
					require.Len(t, spec.HostConfig.Mounts, 1)
					assert.Equal(t, domain.DefaultDockerSocket, spec.HostConfig.Mounts[0].Source)
					assert.Equal(t, []string{"DISPLAY=" + domain.DefaultDisplay}, spec.Env)
					return "c1", nil
				})

			_, err := svc.CreateContainer(testContext(), "demo:latest", "habitat")
			require.NoError(t, err)
		})
	}
}

func TestService_CreateContainer_CustomSocketAndDisplay(t *testing.T) {
	engine := mocks.NewMockContainerEngine(t)
	svc := NewService(engine, nil, zerowrap.Default(), Config{
		DockerSocket: "/run/user/1000/docker.sock",
		Display:      ":1",
	})

	engine.EXPECT().FindImage(mock.Anything, "demo:latest").Return(&domain.Image{
		ID:     "i1",
		Labels: map[string]string{domain.LabelWithDocker: "", domain.LabelWithX11: "yes"},
	}, nil)
	engine.EXPECT().CreateContainer(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, spec domain.ContainerSpec) (string, error) {
			require.Len(t, spec.HostConfig.Mounts, 1)
			assert.Equal(t, "/run/user/1000/docker.sock", spec.HostConfig.Mounts[0].Source)
			assert.Equal(t, []string{"DISPLAY=:1"}, spec.Env)
			return "c1", nil
		})

	_, err := svc.CreateContainer(testContext(), "demo:latest", "habitat")
	require.NoError(t, err)
}

func TestService_CreateContainer_AbsentImagePanics(t *testing.T) {
	svc, engine, _ := newTestService(t)

	engine.EXPECT().FindImage(mock.Anything, "ghost:latest").Return(nil, nil)

	assert.Panics(t, func() {
		_, _ = svc.CreateContainer(testContext(), "ghost:latest", "habitat")
	})
}

func TestService_CreateContainer_Errors(t *testing.T) {
	engineErr := errors.New("engine failure")

	t.Run("image lookup", func(t *testing.T) {
		svc, engine, _ := newTestService(t)
		engine.EXPECT().FindImage(mock.Anything, "demo:latest").Return(nil, engineErr)

		_, err := svc.CreateContainer(testContext(), "demo:latest", "habitat")
		assert.ErrorIs(t, err, engineErr)
	})

	t.Run("volume creation", func(t *testing.T) {
		svc, engine, _ := newTestService(t)
		engine.EXPECT().FindImage(mock.Anything, "demo:latest").Return(&domain.Image{
			ID:     "i1",
			Labels: map[string]string{domain.LabelVolumeRoot: "/data", domain.LabelVolumes: "a"},
		}, nil)
		engine.EXPECT().FindVolume(mock.Anything, "a").Return(nil, nil)
		engine.EXPECT().CreateLocalVolume(mock.Anything, "a", mock.Anything).Return(nil, engineErr)

		_, err := svc.CreateContainer(testContext(), "demo:latest", "habitat")
		assert.ErrorIs(t, err, engineErr)
	})

	t.Run("container creation", func(t *testing.T) {
		svc, engine, _ := newTestService(t)
		engine.EXPECT().FindImage(mock.Anything, "demo:latest").Return(&domain.Image{ID: "i1"}, nil)
		engine.EXPECT().CreateContainer(mock.Anything, mock.Anything).Return("", engineErr)

		id, err := svc.CreateContainer(testContext(), "demo:latest", "habitat")
		assert.ErrorIs(t, err, engineErr)
		assert.Empty(t, id)
	})
}
