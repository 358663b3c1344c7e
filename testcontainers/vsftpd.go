package testcontainers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/c2fo/netstorage/backend/ftp"
)

const (
	vsftpdPort     = "21/tcp"
	vsftpdUser     = "admin"
	vsftpdPassword = "dummy"
)

// startVSFTPD starts a vsftpd container and returns the options to reach it.
func startVSFTPD(t *testing.T) ftp.Options {
	ctx := context.Background()
	is := require.New(t)

	req := testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Name:         "netstorage-vsftpd",
			Image:        "fauria/vsftpd:latest",
			ExposedPorts: []string{"21", "21100-21110:21100-21110"},
			Env:          map[string]string{"FTP_USER": vsftpdUser, "FTP_PASS": vsftpdPassword},
			WaitingFor:   wait.ForListeningPort(vsftpdPort),
		},
		Started: true,
	}
	ctr, err := testcontainers.GenericContainer(ctx, req)
	testcontainers.CleanupContainer(t, ctr)
	is.NoError(err)

	host, err := ctr.Host(ctx)
	is.NoError(err)

	port, err := ctr.MappedPort(ctx, vsftpdPort)
	is.NoError(err)

	return ftp.Options{
		Host:          host,
		Port:          port.Int(),
		User:          vsftpdUser,
		Password:      vsftpdPassword,
		MediaURL:      "https://cdn.example.com/media/",
		MaxMemorySize: 16,
	}
}
