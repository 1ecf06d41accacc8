package rpc

import (
	"context"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/lifeos/governance/internal/capacity"
	"github.com/lifeos/governance/internal/engine"
	"github.com/lifeos/governance/internal/intake"
)

// #region client-struct
// Client wraps a connection to a governd instance.
type Client struct {
	conn   *grpc.ClientConn
	client GovernanceClient
}

// #endregion client-struct

// #region constructor
// NewClient connects to governd at addr.
func NewClient(addr string, opts ...grpc.DialOption) (*Client, error) {
	opts = append([]grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}, opts...)
	conn, err := grpc.NewClient(addr, opts...)
	if err != nil {
		return nil, fmt.Errorf("grpc dial %s: %w", addr, err)
	}
	return &Client{conn: conn, client: NewGovernanceClient(conn)}, nil
}

// NewClientWithService creates a Client over an injected stub.
func NewClientWithService(svc GovernanceClient) *Client {
	return &Client{client: svc}
}

// #endregion constructor

// Close shuts down the connection.
func (c *Client) Close() error {
	if c.conn == nil {
		return nil
	}
	return c.conn.Close()
}

// #region govern
// Govern evaluates a document remotely.
func (c *Client) Govern(ctx context.Context, doc intake.Document) (engine.Result, error) {
	req, err := toStruct(doc)
	if err != nil {
		return engine.Result{}, err
	}
	resp, err := c.client.Govern(ctx, req)
	if err != nil {
		return engine.Result{}, fmt.Errorf("govern rpc: %w", err)
	}
	var r engine.Result
	if err := fromStruct(resp, &r, false); err != nil {
		return engine.Result{}, err
	}
	return r, nil
}

// #endregion govern

// #region classify
// Classify runs the remote capacity classifier.
func (c *Client) Classify(ctx context.Context, a capacity.Assessment) (capacity.Classification, error) {
	req, err := toStruct(a)
	if err != nil {
		return capacity.Classification{}, err
	}
	resp, err := c.client.Classify(ctx, req)
	if err != nil {
		return capacity.Classification{}, fmt.Errorf("classify rpc: %w", err)
	}
	var out capacity.Classification
	if err := fromStruct(resp, &out, false); err != nil {
		return capacity.Classification{}, err
	}
	return out, nil
}

// #endregion classify
