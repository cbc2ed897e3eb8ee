package repository_test

import (
	"context"
	"fmt"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
)

func startMongo(ctx context.Context) (testcontainers.Container, string, error) {
	container, err := mongodb.Run(ctx, "mongo:7")
	if err != nil {
		return nil, "", fmt.Errorf("mongodb.Run: %w", err)
	}

	connStr, err := container.ConnectionString(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("container.ConnectionString: %w", err)
	}

	return container, connStr, nil
}
