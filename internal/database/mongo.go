package database

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoDB struct {
	Client   *mongo.Client
	Database *mongo.Database
}

var (
	once    sync.Once
	shared  *MongoDB
	connErr error
)

// Connect establishes the process-wide connection pool. The first call
// dials and pings the server; subsequent calls return the same handle.
// There is no per-request teardown — the pool lives until Disconnect.
func Connect(uri, dbName string) (*MongoDB, error) {
	once.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
		if err != nil {
			connErr = err
			return
		}

		// Ping to verify the connection actually works before handing it out
		if err := client.Ping(ctx, nil); err != nil {
			connErr = err
			return
		}

		shared = &MongoDB{
			Client:   client,
			Database: client.Database(dbName),
		}
	})

	return shared, connErr
}

func (m *MongoDB) Disconnect(ctx context.Context) error {
	return m.Client.Disconnect(ctx)
}
