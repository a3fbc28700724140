package util

import (
	"context"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.mongodb.org/mongo-driver/x/mongo/driver/connstring"
)

const DefaultDatabase = "test"

// Connect builds the process-wide client. No network I/O happens here;
// use Ping to find out whether the server is reachable.
func Connect(uri string) (*mongo.Client, error) {
	log.Debug().Msg("Connect: creating mongodb client")
	client, err := mongo.Connect(context.Background(), options.Client().ApplyURI(uri))
	if err != nil {
		return nil, errors.Wrap(err, "creating mongodb client")
	}
	return client, nil
}

// Ping reports whether the primary answers. A failure is not retried; the
// driver keeps reconnecting for individual operations on its own.
func Ping(ctx context.Context, client *mongo.Client) error {
	if client == nil {
		return ErrNotConnected
	}
	return errors.Wrap(client.Ping(ctx, readpref.Primary()), "pinging mongodb")
}

func Disconnect(ctx context.Context, client *mongo.Client) error {
	if client == nil {
		return nil
	}
	log.Debug().Msg("Disconnect: closing mongodb client")
	return errors.Wrap(client.Disconnect(ctx), "disconnecting mongodb client")
}

// DatabaseName picks the database named in the URI path, falling back to
// fallback and then to DefaultDatabase.
func DatabaseName(uri, fallback string) string {
	if uri != "" {
		if cs, err := connstring.ParseAndValidate(uri); err == nil && cs.Database != "" {
			return cs.Database
		}
	}
	if fallback != "" {
		return fallback
	}
	return DefaultDatabase
}
