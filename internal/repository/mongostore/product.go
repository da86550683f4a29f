package mongostore

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/catalogapp/catalog/internal/models"
)

type productDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Description string             `bson:"description"`
	Price       float64            `bson:"price"`
	Quantity    int                `bson:"quantity"`
	CategoryID  primitive.ObjectID `bson:"categoryId"`
	IsDeleted   bool               `bson:"isDeleted"`
	CreatedAt   time.Time          `bson:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt"`
}

func (d *productDocument) toModel() *models.Product {
	return &models.Product{
		ID:          d.ID.Hex(),
		Name:        d.Name,
		Description: d.Description,
		Price:       d.Price,
		Quantity:    d.Quantity,
		CategoryID:  d.CategoryID.Hex(),
		IsDeleted:   d.IsDeleted,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

type ProductRepository struct {
	coll *mongo.Collection
}

func NewProductRepository(db *mongo.Database) *ProductRepository {
	return &ProductRepository{coll: db.Collection(productsCollection)}
}

func (r *ProductRepository) ValidID(productID string) bool {
	return primitive.IsValidObjectID(productID)
}

func (r *ProductRepository) Create(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error) {
	categoryID, err := primitive.ObjectIDFromHex(req.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("insert product: category id: %w", err)
	}

	ts := now()
	doc := productDocument{
		Name:       req.Name,
		Price:      req.Price,
		Quantity:   req.Quantity,
		CategoryID: categoryID,
		CreatedAt:  ts,
		UpdatedAt:  ts,
	}
	if req.Description != nil {
		doc.Description = *req.Description
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert product: %w", translateError(err))
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, fmt.Errorf("insert product: unexpected id type %T", res.InsertedID)
	}
	doc.ID = oid
	return doc.toModel(), nil
}

func (r *ProductRepository) GetByID(ctx context.Context, params models.GetProductParams) (*models.Product, error) {
	oid, err := parseID(params.ProductID)
	if err != nil {
		return nil, err
	}

	var doc productDocument
	if err := r.coll.FindOne(ctx, liveFilter(oid)).Decode(&doc); err != nil {
		return nil, translateError(err)
	}
	return doc.toModel(), nil
}

func (r *ProductRepository) Update(ctx context.Context, req *models.UpdateProductRequest) (*models.Product, error) {
	oid, err := parseID(req.ID)
	if err != nil {
		return nil, err
	}

	set := bson.D{{Key: "updatedAt", Value: now()}}
	if req.Name != nil {
		set = append(set, bson.E{Key: "name", Value: *req.Name})
	}
	if req.Description != nil {
		set = append(set, bson.E{Key: "description", Value: *req.Description})
	}
	if req.Price != nil {
		set = append(set, bson.E{Key: "price", Value: *req.Price})
	}
	if req.Quantity != nil {
		set = append(set, bson.E{Key: "quantity", Value: *req.Quantity})
	}
	if req.CategoryID != nil {
		categoryID, err := primitive.ObjectIDFromHex(*req.CategoryID)
		if err != nil {
			return nil, fmt.Errorf("update product: category id: %w", err)
		}
		set = append(set, bson.E{Key: "categoryId", Value: categoryID})
	}

	var doc productDocument
	err = r.coll.FindOneAndUpdate(ctx,
		liveFilter(oid),
		bson.D{{Key: "$set", Value: set}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		return nil, translateError(err)
	}
	return doc.toModel(), nil
}

func (r *ProductRepository) List(ctx context.Context, filter models.PageFilter) ([]*models.Product, int64, error) {
	f := listFilter(filter.Search)

	cur, err := r.coll.Find(ctx, f, listOptions(filter.Skip, filter.Limit))
	if err != nil {
		return nil, 0, fmt.Errorf("find products: %w", err)
	}
	var docs []productDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, 0, fmt.Errorf("decode products: %w", err)
	}

	total, err := r.coll.CountDocuments(ctx, f)
	if err != nil {
		return nil, 0, fmt.Errorf("count products: %w", err)
	}

	products := make([]*models.Product, len(docs))
	for i := range docs {
		products[i] = docs[i].toModel()
	}
	return products, total, nil
}

func (r *ProductRepository) SoftDelete(ctx context.Context, params models.DeleteProductParams) (*models.Product, error) {
	oid, err := parseID(params.ProductID)
	if err != nil {
		return nil, err
	}

	var doc productDocument
	err = r.coll.FindOneAndUpdate(ctx,
		liveFilter(oid),
		bson.D{{Key: "$set", Value: bson.D{
			{Key: "isDeleted", Value: true},
			{Key: "updatedAt", Value: now()},
		}}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		return nil, translateError(err)
	}
	return doc.toModel(), nil
}

func (r *ProductRepository) HardDelete(ctx context.Context, params models.DeleteProductParams) (*models.Product, error) {
	oid, err := parseID(params.ProductID)
	if err != nil {
		return nil, err
	}

	var doc productDocument
	if err := r.coll.FindOneAndDelete(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&doc); err != nil {
		return nil, translateError(err)
	}
	return doc.toModel(), nil
}
