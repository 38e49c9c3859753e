// Package ethereum reads blocks from Ethereum-compatible nodes over JSON-RPC.
package ethereum

import (
	"github.com/gabapcia/walletsync/internal/chainfeed"
	"github.com/gabapcia/walletsync/internal/pkg/transport/jsonrpc"
)

type client struct {
	conn jsonrpc.Client
}

var _ chainfeed.Blockchain = (*client)(nil)

// NewClient creates a block reader on top of a JSON-RPC connection.
func NewClient(conn jsonrpc.Client) *client {
	return &client{
		conn: conn,
	}
}
