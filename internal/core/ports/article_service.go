package ports

import (
	"context"
	"time"

	"github.com/pressroom/publishing-api/internal/core/domain"
)

// CreateArticleInput carries the data needed to publish a new article.
// AuthorID comes from the authenticated identity, never from the request body.
type CreateArticleInput struct {
	Title    string
	Content  string
	AuthorID string
}

// ArticleSummary is the lightweight view used in list responses; comments and
// the likes set are omitted.
type ArticleSummary struct {
	ID         string
	Title      string
	Content    string
	AuthorID   string
	AuthorName string
	LikesCount int64
	CreatedAt  time.Time
}

// CommentAuthor is the resolved author view embedded in a populated comment.
type CommentAuthor struct {
	ID    string
	Name  string
	Email string
}

// CommentView is a comment with its author resolved.
type CommentView struct {
	ID        string
	Content   string
	Author    CommentAuthor
	CreatedAt time.Time
}

// ArticleDetail is the full article view with populated comments.
type ArticleDetail struct {
	ID         string
	Title      string
	Content    string
	AuthorID   string
	AuthorName string
	Likes      []string
	LikesCount int64
	CreatedAt  time.Time
	Comments   []CommentView
}

// AuthorProfile is the public subset of a user record.
type AuthorProfile struct {
	ID    string
	Name  string
	Email string
}

// AuthorArticles bundles a profile with everything that user has published.
type AuthorArticles struct {
	User     AuthorProfile
	Articles []ArticleSummary
}

// ArticleService defines use-case operations for articles and their
// engagement (comments, likes).
type ArticleService interface {
	Create(ctx context.Context, input CreateArticleInput) (*domain.Article, error)
	Get(ctx context.Context, articleID string) (*ArticleDetail, error)
	List(ctx context.Context) ([]ArticleSummary, error)
	ListPopular(ctx context.Context) ([]ArticleSummary, error)
	ListByAuthor(ctx context.Context, authorID string) (*AuthorArticles, error)
	// Delete removes the article when requesterID is its author; otherwise
	// fails with domain.ErrNotArticleAuthor and leaves the article untouched.
	Delete(ctx context.Context, articleID, requesterID string) error
	AddComment(ctx context.Context, articleID, authorID, content string) (*domain.Comment, error)
	// Like records at most one like per (article, user) pair.
	Like(ctx context.Context, articleID, userID string) error
}
