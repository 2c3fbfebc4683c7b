package ports

import (
	"context"

	"github.com/pressroom/publishing-api/internal/core/domain"
)

// ArticleRepository defines persistence operations for articles.
//
// AppendComment and AddLike are the two shared-mutable paths; both must be
// single atomic store updates scoped to one article document so that
// concurrent engagement on the same article cannot interleave.
type ArticleRepository interface {
	Create(ctx context.Context, a *domain.Article) (*domain.Article, error)
	FindByID(ctx context.Context, id string) (*domain.Article, error)
	// List returns the newest articles first, at most limit of them.
	List(ctx context.Context, limit int64) ([]*domain.Article, error)
	ListByAuthor(ctx context.Context, authorID string) ([]*domain.Article, error)
	Delete(ctx context.Context, id string) error

	// AppendComment atomically attaches an already-created comment to the
	// article. Attach-by-id is idempotent: re-appending the same comment id
	// is a no-op. Returns domain.ErrArticleNotFound when the article is gone.
	AppendComment(ctx context.Context, articleID, commentID string) error

	// AddLike atomically inserts userID into the likes set and increments the
	// cached counter, in one conditional update. Returns domain.ErrAlreadyLiked
	// when the user is already in the set and domain.ErrArticleNotFound when
	// the article does not exist.
	AddLike(ctx context.Context, articleID, userID string) error
}

// CommentRepository defines persistence operations for comments.
type CommentRepository interface {
	Create(ctx context.Context, c *domain.Comment) (*domain.Comment, error)
	FindByArticle(ctx context.Context, articleID string) ([]*domain.Comment, error)
}

// ActivityRepository persists engagement audit events.
type ActivityRepository interface {
	Insert(ctx context.Context, event *domain.ActivityEvent) error
}
