// internal/app/bootstrap/dbdeps.go
package bootstrap

import (
	"github.com/dalemusser/pulseboard/internal/app/store/docstore"
	"go.mongodb.org/mongo-driver/mongo"
)

// DBDeps holds database/back-end dependencies for the app.
//
// Docs is the read-only view the query layer uses; handlers never touch
// the Mongo handles directly except for the health-check ping.
type DBDeps struct {
	MongoClient   *mongo.Client
	MongoDatabase *mongo.Database
	Docs          docstore.Store
}
