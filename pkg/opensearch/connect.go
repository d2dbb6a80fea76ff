package opensearch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/opensearch-project/opensearch-go/v2"

	"github.com/dmitrymomot/dbprobe/pkg/credentials"
)

const DriverName = "opensearch"

// Conn is an OpenSearch client bound to one credential set.
type Conn struct {
	client *opensearch.Client
}

// ClientConfig builds the client configuration for the credential set.
func ClientConfig(set credentials.Set) (opensearch.Config, error) {
	var addrs []string
	for _, a := range strings.Split(set.DSN, ",") {
		if a = strings.TrimSpace(a); a != "" {
			addrs = append(addrs, a)
		}
	}
	if len(addrs) == 0 {
		return opensearch.Config{}, ErrNoAddresses
	}

	return opensearch.Config{
		Addresses:    addrs,
		Username:     set.User,
		Password:     set.Password.Reveal(),
		DisableRetry: true,
	}, nil
}

// Dial creates the client and verifies the cluster answers a ping.
func Dial(ctx context.Context, set credentials.Set) (*Conn, error) {
	cfg, err := ClientConfig(set)
	if err != nil {
		return nil, err
	}

	client, err := opensearch.NewClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConnectionFailed, err)
	}

	c := &Conn{client: client}
	if _, err := c.Liveness(ctx); err != nil {
		return nil, err
	}
	return c, nil
}

// Liveness pings the cluster and returns the HTTP status code.
func (c *Conn) Liveness(ctx context.Context) (any, error) {
	res, err := c.client.Ping(c.client.Ping.WithContext(ctx))
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.IsError() {
		return nil, fmt.Errorf("%w: %s", ErrUnhealthy, res.Status())
	}
	return res.StatusCode, nil
}

// ServerVersion returns version.number from the cluster info endpoint.
func (c *Conn) ServerVersion(ctx context.Context) (string, error) {
	res, err := c.client.Info(c.client.Info.WithContext(ctx))
	if err != nil {
		return "", err
	}
	defer res.Body.Close()

	if res.IsError() {
		return "", fmt.Errorf("%w: %s", ErrUnhealthy, res.Status())
	}
	return decodeVersion(res.Body)
}

// Close is a no-op: the client speaks HTTP and holds no session.
func (c *Conn) Close(context.Context) error {
	return nil
}

func decodeVersion(r io.Reader) (string, error) {
	var info struct {
		Version struct {
			Number string `json:"number"`
		} `json:"version"`
	}
	if err := json.NewDecoder(r).Decode(&info); err != nil {
		return "", err
	}
	return info.Version.Number, nil
}
