// Container bring-up for integration testing against a real MariaDB.
// Used by the integration tests and by the standalone cmd/testcontainers
// developer tool. Expects docker to be reachable from the environment.
package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/docker/go-connections/nat"
	_ "github.com/go-sql-driver/mysql"
	"github.com/socialgraph/friendsdb/data"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	mariadbImage    = "mariadb:11"
	mariadbPort     = "3306/tcp"
	mariadbDatabase = "friendsdb"
	mariadbUser     = "friendsdb_app"
	mariadbPassword = "friendsdb_app_password"
	mariadbRootPass = "root_password"
)

// DBContainer wraps a running MariaDB test container with the connection
// settings the service's config layer expects.
type DBContainer struct {
	Container testcontainers.Container
	Host      string
	Port      string
	Database  string
	User      string
	Password  string
}

// StartMariaDB launches a MariaDB container with the graph DDL and
// privileges applied by the image's init hook, and waits until the database
// answers a real ping.
func StartMariaDB(ctx context.Context) (*DBContainer, error) {
	req := testcontainers.ContainerRequest{
		Image:        mariadbImage,
		ExposedPorts: []string{mariadbPort},
		Env: map[string]string{
			"MARIADB_ROOT_PASSWORD": mariadbRootPass,
			"MARIADB_DATABASE":      mariadbDatabase,
		},
		Files: []testcontainers.ContainerFile{
			{
				Reader:            strings.NewReader(data.InitdbMariaDBTables),
				ContainerFilePath: "/docker-entrypoint-initdb.d/002-ddl-tables.sql",
				FileMode:          0o644,
			},
			{
				Reader:            strings.NewReader(data.InitdbMariaDBPrivileges),
				ContainerFilePath: "/docker-entrypoint-initdb.d/003-ddl-privileges.sql",
				FileMode:          0o644,
			},
		},
		WaitingFor: wait.ForListeningPort(nat.Port(mariadbPort)).WithStartupTimeout(2 * time.Minute),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to start mariadb container: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, fmt.Errorf("failed to resolve container host: %w", err)
	}
	mapped, err := container.MappedPort(ctx, nat.Port(mariadbPort))
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, fmt.Errorf("failed to resolve mapped port: %w", err)
	}

	dbc := &DBContainer{
		Container: container,
		Host:      host,
		Port:      mapped.Port(),
		Database:  mariadbDatabase,
		User:      mariadbUser,
		Password:  mariadbPassword,
	}

	if err := dbc.waitForPing(ctx); err != nil {
		_ = container.Terminate(ctx)
		return nil, err
	}

	return dbc, nil
}

// DSN returns a go-sql-driver DSN for the container.
func (dbc *DBContainer) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?parseTime=true",
		dbc.User, dbc.Password, dbc.Host, dbc.Port, dbc.Database)
}

// Terminate stops and removes the container.
func (dbc *DBContainer) Terminate(ctx context.Context) error {
	return dbc.Container.Terminate(ctx)
}

// waitForPing retries a raw SQL ping until the init scripts have finished
// and the app user can authenticate.
func (dbc *DBContainer) waitForPing(ctx context.Context) error {
	deadline := time.Now().Add(90 * time.Second)
	var lastErr error

	for time.Now().Before(deadline) {
		conn, err := sql.Open("mysql", dbc.DSN())
		if err == nil {
			lastErr = conn.PingContext(ctx)
			_ = conn.Close()
			if lastErr == nil {
				return nil
			}
		} else {
			lastErr = err
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(2 * time.Second):
		}
	}

	return fmt.Errorf("mariadb container never became reachable: %w", lastErr)
}
