package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/pressroom/publishing-api/internal/core/domain"
)

const commentsCollection = "comments"

// CommentRepository implements ports.CommentRepository using MongoDB.
type CommentRepository struct {
	coll *mongo.Collection
}

func NewCommentRepository(db *mongo.Database) *CommentRepository {
	return &CommentRepository{coll: db.Collection(commentsCollection)}
}

type mongoComment struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Content   string             `bson:"content"`
	AuthorID  primitive.ObjectID `bson:"author"`
	ArticleID primitive.ObjectID `bson:"article"`
	CreatedAt time.Time          `bson:"created_at"`
}

func (mc *mongoComment) toDomain() *domain.Comment {
	return &domain.Comment{
		ID:        mc.ID.Hex(),
		Content:   mc.Content,
		AuthorID:  mc.AuthorID.Hex(),
		ArticleID: mc.ArticleID.Hex(),
		CreatedAt: mc.CreatedAt.UTC(),
	}
}

func (r *CommentRepository) Create(ctx context.Context, c *domain.Comment) (*domain.Comment, error) {
	authorID, err := primitive.ObjectIDFromHex(c.AuthorID)
	if err != nil {
		return nil, fmt.Errorf("create comment: bad author id: %w", err)
	}
	articleID, err := primitive.ObjectIDFromHex(c.ArticleID)
	if err != nil {
		return nil, domain.ErrArticleNotFound
	}

	doc := mongoComment{
		ID:        primitive.NewObjectID(),
		Content:   c.Content,
		AuthorID:  authorID,
		ArticleID: articleID,
		CreatedAt: c.CreatedAt.UTC(),
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert comment: %w", err)
	}
	return doc.toDomain(), nil
}

// FindByArticle returns an article's comments oldest first, the order they
// are displayed in.
func (r *CommentRepository) FindByArticle(ctx context.Context, articleID string) ([]*domain.Comment, error) {
	oid, err := primitive.ObjectIDFromHex(articleID)
	if err != nil {
		return nil, domain.ErrArticleNotFound
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cur, err := r.coll.Find(ctx, bson.M{"article": oid}, opts)
	if err != nil {
		return nil, fmt.Errorf("find comments: %w", err)
	}
	defer cur.Close(ctx)

	var out []*domain.Comment
	for cur.Next(ctx) {
		var mc mongoComment
		if err := cur.Decode(&mc); err != nil {
			return nil, fmt.Errorf("decode comment: %w", err)
		}
		out = append(out, mc.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate comments: %w", err)
	}
	return out, nil
}

// EnsureIndexes creates the article lookup index on the comments collection.
func (r *CommentRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "article", Value: 1}, {Key: "created_at", Value: 1}},
	})
	return err
}
