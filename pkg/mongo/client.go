package mongo

import (
	"context"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/dmitrymomot/dbprobe/pkg/credentials"
)

const DriverName = "mongodb"

// Conn is a single-connection MongoDB client.
type Conn struct {
	client *mongo.Client
}

// ClientOptions builds driver options for the credential set.
func ClientOptions(set credentials.Set) (*options.ClientOptions, error) {
	uri := strings.TrimSpace(set.DSN)
	if !strings.HasPrefix(uri, "mongodb://") && !strings.HasPrefix(uri, "mongodb+srv://") {
		return nil, ErrInvalidURI
	}

	return options.Client().
		ApplyURI(uri).
		SetAuth(options.Credential{
			Username: set.User,
			Password: set.Password.Reveal(),
		}).
		SetMaxPoolSize(1).
		SetMinPoolSize(0).
		SetRetryReads(false).
		SetRetryWrites(false), nil
}

// Dial creates the client and verifies the deployment answers a ping.
func Dial(ctx context.Context, set credentials.Set) (*Conn, error) {
	opts, err := ClientOptions(set)
	if err != nil {
		return nil, err
	}

	client, err := mongo.Connect(opts)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToConnectToMongo, err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.WithoutCancel(ctx))
		return nil, err
	}
	return &Conn{client: client}, nil
}

// Liveness runs {ping: 1} and returns the "ok" field of the reply.
func (c *Conn) Liveness(ctx context.Context) (any, error) {
	var res bson.M
	err := c.client.Database("admin").
		RunCommand(ctx, bson.D{{Key: "ping", Value: 1}}).
		Decode(&res)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLivenessFailed, err)
	}
	return res["ok"], nil
}

// ServerVersion returns the version reported by buildInfo.
func (c *Conn) ServerVersion(ctx context.Context) (string, error) {
	var res bson.M
	err := c.client.Database("admin").
		RunCommand(ctx, bson.D{{Key: "buildInfo", Value: 1}}).
		Decode(&res)
	if err != nil {
		return "", err
	}
	if v, ok := res["version"]; ok {
		return fmt.Sprint(v), nil
	}
	return "", nil
}

func (c *Conn) Close(ctx context.Context) error {
	return c.client.Disconnect(ctx)
}
