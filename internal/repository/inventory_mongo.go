package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/tuanvumaihuynh/inventory-service/internal/model"
)

type inventoryDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Description string             `bson:"description"`
	Quantity    int                `bson:"quantity"`
	Price       float64            `bson:"price"`
}

type mongoInventoryRepository struct {
	coll *mongo.Collection
}

// NewMongoInventoryRepository returns an InventoryRepository backed by a MongoDB collection.
func NewMongoInventoryRepository(coll *mongo.Collection) InventoryRepository {
	return &mongoInventoryRepository{coll: coll}
}

func (r mongoInventoryRepository) Insert(ctx context.Context, inv model.Inventory) (string, error) {
	res, err := r.coll.InsertOne(ctx, modelToDocument(primitive.NilObjectID, inv))
	if err != nil {
		return "", fmt.Errorf("insert inventory: %w", err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}

	return oid.Hex(), nil
}

func (r mongoInventoryRepository) Replace(ctx context.Context, id string, inv model.Inventory) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, nil
	}

	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": oid}, modelToDocument(oid, inv))
	if err != nil {
		return false, fmt.Errorf("replace inventory: %w", err)
	}

	return res.MatchedCount > 0, nil
}

func (r mongoInventoryRepository) Delete(ctx context.Context, id string) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, nil
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return false, fmt.Errorf("delete inventory: %w", err)
	}

	return res.DeletedCount > 0, nil
}

func (r mongoInventoryRepository) List(ctx context.Context) ([]model.Inventory, error) {
	cur, err := r.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("find inventory: %w", err)
	}

	var docs []inventoryDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode inventory: %w", err)
	}

	items := make([]model.Inventory, 0, len(docs))
	for _, doc := range docs {
		items = append(items, documentToModel(doc))
	}

	return items, nil
}

func (r mongoInventoryRepository) Get(ctx context.Context, id string) (model.Inventory, bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return model.Inventory{}, false, nil
	}

	var doc inventoryDocument
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return model.Inventory{}, false, nil
		}
		return model.Inventory{}, false, fmt.Errorf("find inventory: %w", err)
	}

	return documentToModel(doc), true, nil
}

func modelToDocument(id primitive.ObjectID, inv model.Inventory) inventoryDocument {
	return inventoryDocument{
		ID:          id,
		Name:        inv.Name,
		Description: inv.Description,
		Quantity:    inv.Quantity,
		Price:       inv.Price,
	}
}

func documentToModel(doc inventoryDocument) model.Inventory {
	return model.Inventory{
		ID:          doc.ID.Hex(),
		Name:        doc.Name,
		Description: doc.Description,
		Quantity:    doc.Quantity,
		Price:       doc.Price,
	}
}
