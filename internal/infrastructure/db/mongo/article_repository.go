package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/pressroom/publishing-api/internal/core/domain"
)

const articlesCollection = "articles"

// ArticleRepository implements ports.ArticleRepository using MongoDB.
//
// The engagement paths (AddLike, AppendComment) rely on single-document
// atomic updates, so the likes-set/likes-count invariant holds even with
// several service instances writing concurrently.
type ArticleRepository struct {
	coll *mongo.Collection
}

func NewArticleRepository(db *mongo.Database) *ArticleRepository {
	return &ArticleRepository{coll: db.Collection(articlesCollection)}
}

type mongoArticle struct {
	ID         primitive.ObjectID   `bson:"_id,omitempty"`
	Title      string               `bson:"title"`
	Content    string               `bson:"content"`
	AuthorID   primitive.ObjectID   `bson:"author"`
	AuthorName string               `bson:"author_name"`
	Comments   []primitive.ObjectID `bson:"comments"`
	Likes      []primitive.ObjectID `bson:"likes"`
	LikesCount int64                `bson:"likes_count"`
	CreatedAt  time.Time            `bson:"created_at"`
	UpdatedAt  time.Time            `bson:"updated_at"`
}

func (ma *mongoArticle) toDomain() *domain.Article {
	a := &domain.Article{
		ID:         ma.ID.Hex(),
		Title:      ma.Title,
		Content:    ma.Content,
		AuthorID:   ma.AuthorID.Hex(),
		AuthorName: ma.AuthorName,
		LikesCount: ma.LikesCount,
		CreatedAt:  ma.CreatedAt.UTC(),
		UpdatedAt:  ma.UpdatedAt.UTC(),
	}
	for _, cid := range ma.Comments {
		a.CommentIDs = append(a.CommentIDs, cid.Hex())
	}
	for _, uid := range ma.Likes {
		a.Likes = append(a.Likes, uid.Hex())
	}
	return a
}

func (r *ArticleRepository) Create(ctx context.Context, a *domain.Article) (*domain.Article, error) {
	authorID, err := primitive.ObjectIDFromHex(a.AuthorID)
	if err != nil {
		return nil, fmt.Errorf("create article: bad author id: %w", err)
	}

	doc := mongoArticle{
		ID:         primitive.NewObjectID(),
		Title:      a.Title,
		Content:    a.Content,
		AuthorID:   authorID,
		AuthorName: a.AuthorName,
		Comments:   []primitive.ObjectID{},
		Likes:      []primitive.ObjectID{},
		LikesCount: 0,
		CreatedAt:  a.CreatedAt.UTC(),
		UpdatedAt:  a.UpdatedAt.UTC(),
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert article: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *ArticleRepository) FindByID(ctx context.Context, id string) (*domain.Article, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrArticleNotFound
	}

	var ma mongoArticle
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&ma); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrArticleNotFound
		}
		return nil, fmt.Errorf("find article: %w", err)
	}
	return ma.toDomain(), nil
}

// List returns up to limit articles, newest first.
func (r *ArticleRepository) List(ctx context.Context, limit int64) ([]*domain.Article, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit)

	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	return decodeArticles(ctx, cur)
}

func (r *ArticleRepository) ListByAuthor(ctx context.Context, authorID string) ([]*domain.Article, error) {
	oid, err := primitive.ObjectIDFromHex(authorID)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.coll.Find(ctx, bson.M{"author": oid}, opts)
	if err != nil {
		return nil, fmt.Errorf("list articles by author: %w", err)
	}
	return decodeArticles(ctx, cur)
}

func (r *ArticleRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrArticleNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete article: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrArticleNotFound
	}
	return nil
}

// AppendComment attaches a comment id to the article. $addToSet makes the
// attachment idempotent: replaying the same comment id changes nothing.
func (r *ArticleRepository) AppendComment(ctx context.Context, articleID, commentID string) error {
	aid, err := primitive.ObjectIDFromHex(articleID)
	if err != nil {
		return domain.ErrArticleNotFound
	}
	cid, err := primitive.ObjectIDFromHex(commentID)
	if err != nil {
		return fmt.Errorf("append comment: bad comment id: %w", err)
	}

	update := bson.M{
		"$addToSet": bson.M{"comments": cid},
		"$set":      bson.M{"updated_at": time.Now().UTC()},
	}
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": aid}, update)
	if err != nil {
		return fmt.Errorf("append comment: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrArticleNotFound
	}
	return nil
}

// AddLike performs the insert-if-absent and the counter increment in one
// conditional update: the filter only matches when the user is not yet in the
// likes set, so two concurrent first-time likers cannot both increment.
// likes_count therefore always equals the cardinality of the likes set.
func (r *ArticleRepository) AddLike(ctx context.Context, articleID, userID string) error {
	aid, err := primitive.ObjectIDFromHex(articleID)
	if err != nil {
		return domain.ErrArticleNotFound
	}
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return fmt.Errorf("add like: bad user id: %w", err)
	}

	filter := bson.M{"_id": aid, "likes": bson.M{"$ne": uid}}
	update := bson.M{
		"$addToSet": bson.M{"likes": uid},
		"$inc":      bson.M{"likes_count": 1},
		"$set":      bson.M{"updated_at": time.Now().UTC()},
	}

	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("add like: %w", err)
	}
	if res.MatchedCount > 0 {
		return nil
	}

	// No match: either the article is gone or the user already liked it.
	n, err := r.coll.CountDocuments(ctx, bson.M{"_id": aid})
	if err != nil {
		return fmt.Errorf("add like: %w", err)
	}
	if n == 0 {
		return domain.ErrArticleNotFound
	}
	return domain.ErrAlreadyLiked
}

// EnsureIndexes creates the listing indexes on the articles collection.
func (r *ArticleRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "author", Value: 1}}},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
	}
	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}

func decodeArticles(ctx context.Context, cur *mongo.Cursor) ([]*domain.Article, error) {
	defer cur.Close(ctx)

	var out []*domain.Article
	for cur.Next(ctx) {
		var ma mongoArticle
		if err := cur.Decode(&ma); err != nil {
			return nil, fmt.Errorf("decode article: %w", err)
		}
		out = append(out, ma.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate articles: %w", err)
	}
	return out, nil
}
