// Copyright 2025 Nhat-Nguyen Nguyen
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package mongo

import (
	"context"
	"log/slog"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Client owns the document-store connection lifecycle. It is the only
// shared mutable resource of the service; all mutation goes through the
// store's native atomic per-document operations.
type Client struct {
	client *mongo.Client
	db     *mongo.Database
}

func NewClient(ctx context.Context, cfg MongoConfig) (*Client, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, err
	}
	slog.InfoContext(ctx, "document store connection opened", slog.String("database", cfg.Database))

	return &Client{
		client: client,
		db:     client.Database(cfg.Database),
	}, nil
}

// HealthCheck pings the deployment's primary.
func (c *Client) HealthCheck(ctx context.Context) error {
	return c.client.Ping(ctx, readpref.Primary())
}

func (c *Client) Collection(name string) *mongo.Collection {
	return c.db.Collection(name)
}

// Shutdown disconnects the underlying client.
func (c *Client) Shutdown(ctx context.Context) error {
	if c == nil {
		return nil
	}
	return c.client.Disconnect(ctx)
}
