package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"carteasy/internal/catalog"
	"carteasy/internal/models"
)

var ErrProductNotFound = errors.New("product not found")

// ProductRepository es la fuente del catálogo
type ProductRepository interface {
	FindAll(ctx context.Context) ([]models.Product, error)
	FindByID(ctx context.Context, id string) (models.Product, error)
}

// MemoryProductRepository sirve el catálogo estático
type MemoryProductRepository struct {
	products []models.Product
}

func NewMemoryProductRepository() *MemoryProductRepository {
	return &MemoryProductRepository{products: catalog.Products()}
}

func (r *MemoryProductRepository) FindAll(_ context.Context) ([]models.Product, error) {
	return catalog.Products(), nil
}

func (r *MemoryProductRepository) FindByID(_ context.Context, id string) (models.Product, error) {
	p, ok := catalog.FindByID(r.products, id)
	if !ok {
		return models.Product{}, ErrProductNotFound
	}
	return p, nil
}

// productDocument guarda la posición para conservar el orden del catálogo
type productDocument struct {
	models.Product `bson:",inline"`
	Position       int `bson:"position"`
}

// MongoProductRepository lee el catálogo desde una colección de MongoDB
type MongoProductRepository struct {
	collection *mongo.Collection
}

func NewMongoProductRepository(collection *mongo.Collection) *MongoProductRepository {
	return &MongoProductRepository{
		collection: collection,
	}
}

// FindAll lista todos los productos en el orden del catálogo
func (r *MongoProductRepository) FindAll(ctx context.Context) ([]models.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	findOptions := options.Find().SetSort(bson.D{{Key: "position", Value: 1}})

	cursor, err := r.collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []productDocument
	if err = cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	products := make([]models.Product, 0, len(docs))
	for _, d := range docs {
		products = append(products, d.Product)
	}
	return products, nil
}

// FindByID obtiene un producto por ID
func (r *MongoProductRepository) FindByID(ctx context.Context, id string) (models.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var doc productDocument
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Product{}, ErrProductNotFound
		}
		return models.Product{}, err
	}

	return doc.Product, nil
}

// Seed inserta o reemplaza los productos dados conservando su orden
func (r *MongoProductRepository) Seed(ctx context.Context, products []models.Product) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	writes := make([]mongo.WriteModel, 0, len(products))
	for i, p := range products {
		writes = append(writes, mongo.NewReplaceOneModel().
			SetFilter(bson.M{"_id": p.ID}).
			SetReplacement(productDocument{Product: p, Position: i}).
			SetUpsert(true))
	}

	result, err := r.collection.BulkWrite(ctx, writes)
	if err != nil {
		return 0, fmt.Errorf("seed products: %w", err)
	}
	return int(result.UpsertedCount + result.ModifiedCount), nil
}
