package notion

import (
	"fmt"

	"github.com/notion-sdk/notion-go/pkg/connection"
	"github.com/notion-sdk/notion-go/pkg/constants"
	"github.com/notion-sdk/notion-go/pkg/models"
)

// Version of the client library.
const Version = "0.1.0"

type Client struct {
	con *connection.HTTPConnection
}

func New(cfg *connection.Config) (*Client, error) {
	con, err := connection.New(cfg)
	if err != nil {
		return nil, err
	}
	return &Client{con: con}, nil
}

// FromEnv configures the client from the environment only.
func FromEnv() (*Client, error) {
	return New(ApplyEnv(connection.NewConfig("")))
}

// FromConfigFile reads a YAML configuration; environment variables take
// precedence over the file.
func FromConfigFile(path string) (*Client, error) {
	cfg, err := connection.LoadConfig(path)
	if err != nil {
		return nil, err
	}
	return New(ApplyEnv(cfg))
}

// Connection exposes the underlying connection, for example to replace its
// http.Client.
func (c *Client) Connection() *connection.HTTPConnection {
	return c.con
}

func (c *Client) Blocks() *BlockService {
	return &BlockService{con: c.con}
}

func (c *Client) Pages() *PageService {
	return &PageService{con: c.con}
}

func requireID(kind, id string) (string, error) {
	if id == "" {
		return "", fmt.Errorf("%w: %s", constants.ErrNoID, kind)
	}
	return models.ParseID(id)
}
