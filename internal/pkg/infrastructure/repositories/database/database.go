package database

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/andreclerigo/payload-api/internal/pkg/infrastructure/config"
	"github.com/andreclerigo/payload-api/internal/pkg/infrastructure/logging"
	"github.com/andreclerigo/payload-api/internal/pkg/infrastructure/messaging"
)

//Datastore is an interface that is used to inject the database into different handlers to improve testability
type Datastore interface {
	//FetchAll returns every document stored in the named collection
	FetchAll(ctx context.Context, collection string) ([]bson.M, error)
	//Insert stamps the document with a server side creation timestamp and
	//stores it in the named collection. Inserts into allow listed
	//collections are republished on the message bus after the write.
	Insert(ctx context.Context, collection string, document bson.M) (bson.M, error)
	//DeleteByID removes the document with the given id from the named
	//collection and returns it. A missing id yields (nil, nil).
	DeleteByID(ctx context.Context, collection string, id primitive.ObjectID) (bson.M, error)
}

//Collections whose inserts are republished on the message bus. Positioning
//sub sentence collections are deliberately not part of this set.
var publishOnInsert = map[string]bool{
	"neo7m":   true,
	"mpu6500": true,
}

var errDataAccess = errors.New("data access failure")

//ConnectorFunc is used to inject a database connection method into NewDatastore
type ConnectorFunc func(ctx context.Context) (*mongo.Client, error)

//NewMongoDBConnector opens a connection to a MongoDB instance from configuration
func NewMongoDBConnector(cfg config.Config, log logging.Logger) ConnectorFunc {
	uri := cfg.MongoDBURI()

	return func(ctx context.Context) (*mongo.Client, error) {
		log.Infof("[DATABASE] Connecting to %s ...", uri)

		client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
		if err != nil {
			return nil, err
		}

		if err := client.Ping(ctx, readpref.Primary()); err != nil {
			return nil, err
		}

		return client, nil
	}
}

//collectionAPI is the slice of *mongo.Collection the Datastore relies on,
//split out so tests can drive the write and fan out paths without a server
type collectionAPI interface {
	Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) (*mongo.Cursor, error)
	InsertOne(ctx context.Context, document interface{}, opts ...*options.InsertOneOptions) (*mongo.InsertOneResult, error)
	FindOne(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) *mongo.SingleResult
	DeleteOne(ctx context.Context, filter interface{}, opts ...*options.DeleteOptions) (*mongo.DeleteResult, error)
}

//NewDatastore wraps a lazily established database connection in a Datastore.
//The connection is made on first use and is reused for the remainder of the
//process lifetime; the driver pools sessions internally so the Datastore is
//safe for concurrent handlers.
func NewDatastore(connect ConnectorFunc, databaseName string, publisher messaging.Publisher, log logging.Logger) Datastore {
	db := &payloadDB{
		connect:      connect,
		databaseName: databaseName,
		publisher:    publisher,
		log:          log,
	}
	db.lookup = db.connectedCollection
	return db
}

type payloadDB struct {
	connect      ConnectorFunc
	databaseName string
	publisher    messaging.Publisher
	log          logging.Logger

	lookup func(ctx context.Context, name string) (collectionAPI, error)

	mutex  sync.Mutex
	client *mongo.Client
}

func (db *payloadDB) connectedCollection(ctx context.Context, name string) (collectionAPI, error) {
	client, err := db.session(ctx)
	if err != nil {
		return nil, err
	}

	return client.Database(db.databaseName).Collection(name), nil
}

//session returns the shared client, establishing it on first use. A failed
//attempt is retried on the next call; a transient outage at startup must not
//brick the store for the rest of the process lifetime.
func (db *payloadDB) session(ctx context.Context) (*mongo.Client, error) {
	db.mutex.Lock()
	defer db.mutex.Unlock()

	if db.client != nil {
		return db.client, nil
	}

	client, err := db.connect(ctx)
	if err != nil {
		db.log.Errorf("[DATABASE] Failed to connect: %s", err.Error())
		return nil, errDataAccess
	}

	db.client = client
	return client, nil
}

func (db *payloadDB) FetchAll(ctx context.Context, collectionName string) ([]bson.M, error) {
	collection, err := db.lookup(ctx, collectionName)
	if err != nil {
		return nil, err
	}

	cursor, err := collection.Find(ctx, bson.M{})
	if err != nil {
		db.log.Errorf("[DATABASE] Failed to fetch data from %s collection: %s", collectionName, err.Error())
		return nil, errDataAccess
	}

	documents := []bson.M{}
	if err := cursor.All(ctx, &documents); err != nil {
		db.log.Errorf("[DATABASE] Failed to decode data from %s collection: %s", collectionName, err.Error())
		return nil, errDataAccess
	}

	db.log.Infof("[DATABASE] Fetched data from %s collection", collectionName)
	return documents, nil
}

func (db *payloadDB) Insert(ctx context.Context, collectionName string, document bson.M) (bson.M, error) {
	collection, err := db.lookup(ctx, collectionName)
	if err != nil {
		return nil, err
	}

	document = stampCreationTime(document)

	result, err := collection.InsertOne(ctx, document)
	if err != nil {
		db.log.Errorf("[DATABASE] Failed to add data to %s collection: %s", collectionName, err.Error())
		return nil, errDataAccess
	}

	document["_id"] = result.InsertedID
	db.log.Infof("[DATABASE] Added data to %s collection", collectionName)

	// Best effort fan out; a broker failure never rolls back the insert.
	if publishOnInsert[collectionName] {
		db.publisher.Publish(collectionName, document)
	}

	return document, nil
}

func (db *payloadDB) DeleteByID(ctx context.Context, collectionName string, id primitive.ObjectID) (bson.M, error) {
	collection, err := db.lookup(ctx, collectionName)
	if err != nil {
		return nil, err
	}

	document := bson.M{}
	err = collection.FindOne(ctx, bson.M{"_id": id}).Decode(&document)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		db.log.Errorf("[DATABASE] Failed to look up %s in %s collection: %s", id.Hex(), collectionName, err.Error())
		return nil, errDataAccess
	}

	if _, err := collection.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		db.log.Errorf("[DATABASE] Failed to delete data from %s collection: %s", collectionName, err.Error())
		return nil, errDataAccess
	}

	db.log.Warnf("[DATABASE] Deleted data from %s collection with id %s", collectionName, id.Hex())
	return document, nil
}

//stampCreationTime overwrites any client supplied timestamp with the server
//side creation time.
func stampCreationTime(document bson.M) bson.M {
	stamped := bson.M{}
	for key, value := range document {
		stamped[key] = value
	}
	stamped["timestamp"] = time.Now().UTC()
	return stamped
}
