//go:build integration

package mongo

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/jsamuelsen/cctv-quotations/internal/adapters/store/storetest"
	"github.com/jsamuelsen/cctv-quotations/internal/ports"
)

var _ ports.Store = (*Store)(nil)

func startMongo(t *testing.T) string {
	t.Helper()

	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "mongo:7",
			ExposedPorts: []string{"27017/tcp"},
			WaitingFor:   wait.ForListeningPort("27017/tcp").WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("terminating mongo container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)

	port, err := container.MappedPort(ctx, "27017")
	require.NoError(t, err)

	return fmt.Sprintf("mongodb://%s:%s", host, port.Port())
}

func TestStore_Contract(t *testing.T) {
	uri := startMongo(t)
	ctx := context.Background()

	store, err := Open(ctx, &Config{URI: uri, Database: "quotations_test", Collection: "quotations"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	require.NoError(t, store.Check(ctx))

	storetest.Run(t, func(t *testing.T) ports.QuotationRepository {
		_, err := store.coll.DeleteMany(ctx, bson.D{})
		require.NoError(t, err)

		return store
	}, storetest.Options{
		MalformedID: "not-an-object-id",
		MissingID:   "65f0c0ffee0000000000beef",
	})
}
