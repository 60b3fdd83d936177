package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"taskboard/app/models"
)

// MongoRepository stores tasks as documents keyed by ObjectID.
type MongoRepository struct {
	coll *mongo.Collection
}

// NewMongoRepository creates a repository on the given collection.
func NewMongoRepository(coll *mongo.Collection) *MongoRepository {
	return &MongoRepository{coll: coll}
}

type taskDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Description string             `bson:"description"`
	Status      string             `bson:"status"`
}

func (d taskDocument) task() models.Task {
	return models.Task{
		ID:          d.ID.Hex(),
		Name:        d.Name,
		Description: d.Description,
		Status:      models.Status(d.Status),
	}
}

func (r *MongoRepository) List(ctx context.Context) ([]models.Task, error) {
	cur, err := r.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var docs []taskDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	tasks := make([]models.Task, 0, len(docs))
	for _, doc := range docs {
		tasks = append(tasks, doc.task())
	}
	return tasks, nil
}

func (r *MongoRepository) Create(ctx context.Context, in models.TaskInput) (models.Task, error) {
	doc := taskDocument{
		Name:        in.Name,
		Description: in.Description,
		Status:      string(in.Status),
	}
	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return models.Task{}, err
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return models.Task{}, errors.New("unexpected inserted id type")
	}
	doc.ID = oid
	return doc.task(), nil
}

func (r *MongoRepository) Update(ctx context.Context, id string, patch models.TaskPatch) (models.Task, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.Task{}, ErrNotFound
	}

	filter := bson.M{"_id": oid}
	var res *mongo.SingleResult
	if patch.Empty() {
		res = r.coll.FindOne(ctx, filter)
	} else {
		opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
		res = r.coll.FindOneAndUpdate(ctx, filter, bson.M{"$set": patchFields(patch)}, opts)
	}

	var doc taskDocument
	if err := res.Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Task{}, ErrNotFound
		}
		return models.Task{}, err
	}
	return doc.task(), nil
}

// patchFields maps the set fields of patch to document fields.
func patchFields(patch models.TaskPatch) bson.M {
	set := bson.M{}
	if patch.Name != nil {
		set["name"] = *patch.Name
	}
	if patch.Description != nil {
		set["description"] = *patch.Description
	}
	if patch.Status != nil {
		set["status"] = string(*patch.Status)
	}
	return set
}

func (r *MongoRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
