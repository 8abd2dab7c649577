package mongodb

import (
	"context"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/geocoder89/alumnihub/internal/db"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	tcmongo "github.com/testcontainers/testcontainers-go/modules/mongodb"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

var (
	sharedOnce      sync.Once
	sharedInitErr   error
	sharedContainer *tcmongo.MongoDBContainer
	sharedClient    *mongo.Client
)

func TestMain(m *testing.M) {
	code := m.Run()
	cleanupShared()
	os.Exit(code)
}

// mongoURI resolves the server for store tests: MONGO_TEST_URI wins,
// MONGO_TEST_CONTAINERS=1 starts a disposable container, otherwise "".
func mongoURI(ctx context.Context) (string, error) {
	if uri := os.Getenv("MONGO_TEST_URI"); uri != "" {
		return uri, nil
	}

	if os.Getenv("MONGO_TEST_CONTAINERS") != "1" {
		return "", nil
	}

	container, err := tcmongo.Run(ctx, "mongo:7")
	if err != nil {
		return "", err
	}
	sharedContainer = container

	return container.ConnectionString(ctx)
}

func initShared(t *testing.T) {
	t.Helper()
	sharedOnce.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()

		uri, err := mongoURI(ctx)
		if err != nil || uri == "" {
			sharedInitErr = err
			return
		}

		sharedClient, sharedInitErr = db.NewClient(uri)
	})

	require.NoError(t, sharedInitErr)
	if sharedClient == nil {
		t.Skip("set MONGO_TEST_URI or MONGO_TEST_CONTAINERS=1 to run MongoDB store tests")
	}
}

func cleanupShared() {
	if sharedClient != nil {
		_ = db.Disconnect(sharedClient, 5*time.Second)
	}
	if sharedContainer != nil {
		_ = sharedContainer.Terminate(context.Background())
	}
}

// setupStore gives each test its own database, dropped on cleanup.
func setupStore(t *testing.T) *Store {
	t.Helper()
	initShared(t)

	name := "alumnihub_test_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
	database := sharedClient.Database(name)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	store, err := NewStore(ctx, database, nil)
	require.NoError(t, err)

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = database.Drop(ctx)
	})

	return store
}
