package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	UserCollection     = "user"
	PlaylistCollection = "playlist"
	SongCollection     = "song"
)

// Gateway is the process-wide handle to the document store.
// It is safe for concurrent use and adds no coordination of its own.
type Gateway struct {
	Client *mongo.Client
	DB     *mongo.Database
}

func NewGateway(ctx context.Context, uri, database string, maxPoolSize uint64, connectTimeout time.Duration) (*Gateway, error) {
	opts := options.Client().
		ApplyURI(uri).
		SetMaxPoolSize(maxPoolSize).
		SetConnectTimeout(connectTimeout)
	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, err
	}
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}
	return &Gateway{Client: client, DB: client.Database(database)}, nil
}

func (g *Gateway) Ping(ctx context.Context) error {
	return g.Client.Ping(ctx, readpref.Primary())
}

func (g *Gateway) Close(ctx context.Context) error {
	return g.Client.Disconnect(ctx)
}

// EnsureIndexes creates the unique name indexes that back the
// already-exists checks of the services.
func (g *Gateway) EnsureIndexes(ctx context.Context) error {
	for _, coll := range []string{UserCollection, PlaylistCollection, SongCollection} {
		_, err := g.DB.Collection(coll).Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: "name", Value: 1}},
			Options: options.Index().SetName("name_unique").SetUnique(true),
		})
		if err != nil {
			return err
		}
	}
	return nil
}
