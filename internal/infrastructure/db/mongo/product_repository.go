package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sellerhub/sellerhub-api/internal/core/domain"
	"github.com/sellerhub/sellerhub-api/internal/core/ports"
)

const productCollection = "products"

type MongoProductRepository struct {
	coll *mongo.Collection
}

func NewProductRepository(db *mongo.Database) *MongoProductRepository {
	return &MongoProductRepository{coll: db.Collection(productCollection)}
}

// ownerFilter scopes every query to the owning seller. A document owned by
// someone else is indistinguishable from a missing one.
func ownerFilter(id, userID string) bson.M {
	return bson.M{"_id": id, "user_id": userID}
}

func (r *MongoProductRepository) FindAllByUser(ctx context.Context, userID string) ([]domain.Product, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.coll.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("find products: %w", err)
	}
	defer cur.Close(ctx)

	products := []domain.Product{}
	if err := cur.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("decode products: %w", err)
	}
	return products, nil
}

func (r *MongoProductRepository) FindByID(ctx context.Context, id, userID string) (*domain.Product, error) {
	var product domain.Product
	if err := r.coll.FindOne(ctx, ownerFilter(id, userID)).Decode(&product); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("find product: %w", err)
	}
	return &product, nil
}

func (r *MongoProductRepository) Create(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	doc := *product
	doc.ID = primitive.NewObjectID().Hex()

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert product: %w", err)
	}
	return &doc, nil
}

func (r *MongoProductRepository) Update(ctx context.Context, id, userID string, update ports.ProductUpdate) (*domain.Product, error) {
	set := bson.M{}
	if update.Name != nil {
		set["name"] = *update.Name
	}
	if update.Description != nil {
		set["description"] = *update.Description
	}
	if update.Price != nil {
		set["price"] = *update.Price
	}
	if update.Stock != nil {
		set["stock"] = *update.Stock
	}
	if update.Category != nil {
		set["category"] = *update.Category
	}
	if update.ImageURL != nil {
		set["image_url"] = *update.ImageURL
	}
	set["updated_at"] = time.Now().UTC()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated domain.Product
	err := r.coll.FindOneAndUpdate(ctx, ownerFilter(id, userID), bson.M{"$set": set}, opts).Decode(&updated)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("update product: %w", err)
	}
	return &updated, nil
}

func (r *MongoProductRepository) Delete(ctx context.Context, id, userID string) error {
	res, err := r.coll.DeleteOne(ctx, ownerFilter(id, userID))
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

// sortFields maps API sort keys to document fields.
var sortFields = map[string]string{
	"name":      "name",
	"price":     "price",
	"stock":     "stock",
	"createdAt": "created_at",
}

// Search runs the dynamic catalog query: substring match on name/description,
// category, price range, stock filter, sorting and skip/limit pagination.
func (r *MongoProductRepository) Search(ctx context.Context, userID string, query ports.ProductQuery) ([]domain.Product, int64, error) {
	filter := bson.M{"user_id": userID}

	if query.Search != "" {
		filter["$or"] = []bson.M{
			{"name": bson.M{"$regex": query.Search, "$options": "i"}},
			{"description": bson.M{"$regex": query.Search, "$options": "i"}},
		}
	}
	if query.Category != "" {
		filter["category"] = query.Category
	}
	if query.MinPrice != nil || query.MaxPrice != nil {
		price := bson.M{}
		if query.MinPrice != nil {
			price["$gte"] = *query.MinPrice
		}
		if query.MaxPrice != nil {
			price["$lte"] = *query.MaxPrice
		}
		filter["price"] = price
	}
	switch query.StockFilter {
	case ports.StockFilterIn:
		filter["stock"] = bson.M{"$gt": 0}
	case ports.StockFilterOut:
		filter["stock"] = bson.M{"$lte": 0}
	}

	sortField, ok := sortFields[query.SortBy]
	if !ok {
		sortField = "created_at"
	}
	direction := -1
	if query.SortOrder == "asc" {
		direction = 1
	}

	opts := options.Find().
		SetSort(bson.D{{Key: sortField, Value: direction}}).
		SetSkip((query.Page - 1) * query.Limit).
		SetLimit(query.Limit)

	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("search products: %w", err)
	}
	defer cur.Close(ctx)

	products := []domain.Product{}
	if err := cur.All(ctx, &products); err != nil {
		return nil, 0, fmt.Errorf("decode products: %w", err)
	}

	total, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("count products: %w", err)
	}

	return products, total, nil
}
