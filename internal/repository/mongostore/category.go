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

type categoryDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Description string             `bson:"description"`
	IsDeleted   bool               `bson:"isDeleted"`
	CreatedAt   time.Time          `bson:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt"`
}

func (d *categoryDocument) toModel() *models.Category {
	return &models.Category{
		ID:          d.ID.Hex(),
		Name:        d.Name,
		Description: d.Description,
		IsDeleted:   d.IsDeleted,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

type CategoryRepository struct {
	db   *mongo.Database
	coll *mongo.Collection
}

func NewCategoryRepository(db *mongo.Database) *CategoryRepository {
	return &CategoryRepository{
		db:   db,
		coll: db.Collection(categoriesCollection),
	}
}

func (r *CategoryRepository) ValidID(categoryID string) bool {
	return primitive.IsValidObjectID(categoryID)
}

func (r *CategoryRepository) Ping(ctx context.Context) error {
	return Ping(ctx, r.db)
}

func (r *CategoryRepository) Create(ctx context.Context, req *models.CreateCategoryRequest) (*models.Category, error) {
	ts := now()
	doc := categoryDocument{
		Name:      req.Name,
		CreatedAt: ts,
		UpdatedAt: ts,
	}
	if req.Description != nil {
		doc.Description = *req.Description
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert category: %w", translateError(err))
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, fmt.Errorf("insert category: unexpected id type %T", res.InsertedID)
	}
	doc.ID = oid
	return doc.toModel(), nil
}

func (r *CategoryRepository) GetByID(ctx context.Context, params models.GetCategoryParams) (*models.Category, error) {
	oid, err := parseID(params.CategoryID)
	if err != nil {
		return nil, err
	}

	var doc categoryDocument
	if err := r.coll.FindOne(ctx, liveFilter(oid)).Decode(&doc); err != nil {
		return nil, translateError(err)
	}
	return doc.toModel(), nil
}

// GetRefs resolves ids regardless of soft-deletion. Unknown ids are absent
// from the result.
func (r *CategoryRepository) GetRefs(ctx context.Context, ids []string) (map[string]*models.CategoryRef, error) {
	oids := make([]primitive.ObjectID, 0, len(ids))
	for _, hex := range ids {
		if oid, err := primitive.ObjectIDFromHex(hex); err == nil {
			oids = append(oids, oid)
		}
	}
	refs := make(map[string]*models.CategoryRef, len(oids))
	if len(oids) == 0 {
		return refs, nil
	}

	cur, err := r.coll.Find(ctx,
		bson.D{{Key: "_id", Value: bson.D{{Key: "$in", Value: oids}}}},
		options.Find().SetProjection(bson.D{{Key: "name", Value: 1}, {Key: "description", Value: 1}}),
	)
	if err != nil {
		return nil, fmt.Errorf("find category refs: %w", err)
	}
	var docs []categoryDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode category refs: %w", err)
	}

	for _, doc := range docs {
		refs[doc.ID.Hex()] = &models.CategoryRef{
			ID:          doc.ID.Hex(),
			Name:        doc.Name,
			Description: doc.Description,
			Resolved:    true,
		}
	}
	return refs, nil
}

func (r *CategoryRepository) Update(ctx context.Context, req *models.UpdateCategoryRequest) (*models.Category, error) {
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

	var doc categoryDocument
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

func (r *CategoryRepository) List(ctx context.Context, filter models.PageFilter) ([]*models.Category, int64, error) {
	f := listFilter(filter.Search)

	cur, err := r.coll.Find(ctx, f, listOptions(filter.Skip, filter.Limit))
	if err != nil {
		return nil, 0, fmt.Errorf("find categories: %w", err)
	}
	var docs []categoryDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, 0, fmt.Errorf("decode categories: %w", err)
	}

	total, err := r.coll.CountDocuments(ctx, f)
	if err != nil {
		return nil, 0, fmt.Errorf("count categories: %w", err)
	}

	categories := make([]*models.Category, len(docs))
	for i := range docs {
		categories[i] = docs[i].toModel()
	}
	return categories, total, nil
}

func (r *CategoryRepository) SoftDelete(ctx context.Context, params models.DeleteCategoryParams) (*models.Category, error) {
	oid, err := parseID(params.CategoryID)
	if err != nil {
		return nil, err
	}

	var doc categoryDocument
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

func (r *CategoryRepository) HardDelete(ctx context.Context, params models.DeleteCategoryParams) (*models.Category, error) {
	oid, err := parseID(params.CategoryID)
	if err != nil {
		return nil, err
	}

	var doc categoryDocument
	if err := r.coll.FindOneAndDelete(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&doc); err != nil {
		return nil, translateError(err)
	}
	return doc.toModel(), nil
}
