package testutils

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/ory/dockertest"
	logger "github.com/sirupsen/logrus"
)

const (
	postgresImage = "postgres"
	postgresTag   = "15-alpine"
	databaseName  = "giftbroker"
	password      = "secret"
)

// RunTestDatabase starts a throwaway postgres container. The returned cleanup func is always
// safe to call, even when an error is returned.
func RunTestDatabase() (string, func(), error) {
	noop := func() {}

	pool, err := dockertest.NewPool("")
	if err != nil {
		return "", noop, fmt.Errorf("could not connect to docker %w", err)
	}

	resource, err := pool.Run(postgresImage, postgresTag, []string{
		"POSTGRES_PASSWORD=" + password,
		"POSTGRES_DB=" + databaseName,
	})
	if err != nil {
		return "", noop, fmt.Errorf("could not start postgres %w", err)
	}

	cleanUp := func() {
		if err := pool.Purge(resource); err != nil {
			logger.Errorf("Could not purge postgres container: %s", err.Error())
		}
	}

	dsn := fmt.Sprintf("postgres://postgres:%s@localhost:%s/%s?sslmode=disable",
		password, resource.GetPort("5432/tcp"), databaseName)

	err = pool.Retry(func() error {
		conn, err := pgx.Connect(context.Background(), dsn)
		if err != nil {
			return err
		}
		defer conn.Close(context.Background())
		return conn.Ping(context.Background())
	})
	if err != nil {
		return "", cleanUp, fmt.Errorf("postgres never became ready %w", err)
	}

	return dsn, cleanUp, nil
}

// TruncateOrders empties the orders table between tests.
func TruncateOrders(dsn string) error {
	conn, err := pgx.Connect(context.Background(), dsn)
	if err != nil {
		return err
	}
	defer conn.Close(context.Background())
	_, err = conn.Exec(context.Background(), "TRUNCATE orders RESTART IDENTITY")
	return err
}
