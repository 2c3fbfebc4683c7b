package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/pressroom/publishing-api/internal/core/domain"
	"github.com/pressroom/publishing-api/internal/core/ports"
)

const (
	listLimit    = 10
	popularLimit = 3
)

// PopularCache abstracts the read-through cache for the public popular listing.
// A miss is reported as (nil, nil); cache failures must never break the read path.
type PopularCache interface {
	Get(ctx context.Context) ([]ports.ArticleSummary, error)
	Set(ctx context.Context, items []ports.ArticleSummary) error
}

// ActivityPublisher enqueues engagement events for asynchronous recording.
type ActivityPublisher interface {
	Publish(event domain.ActivityEvent)
}

type articleService struct {
	articles ports.ArticleRepository
	comments ports.CommentRepository
	users    ports.UserRepository
	cache    PopularCache
	activity ActivityPublisher
	log      zerolog.Logger
}

// NewArticleService returns an ArticleService implementation. cache and
// activity may be nil; both are best-effort collaborators.
func NewArticleService(
	articles ports.ArticleRepository,
	comments ports.CommentRepository,
	users ports.UserRepository,
	cache PopularCache,
	activity ActivityPublisher,
	log zerolog.Logger,
) ports.ArticleService {
	return &articleService{
		articles: articles,
		comments: comments,
		users:    users,
		cache:    cache,
		activity: activity,
		log:      log,
	}
}

// Create publishes a new article. The author's display name is captured as a
// snapshot; it is not kept in sync with later profile changes.
func (s *articleService) Create(ctx context.Context, input ports.CreateArticleInput) (*domain.Article, error) {
	author, err := s.users.FindByID(ctx, input.AuthorID)
	if err != nil {
		return nil, fmt.Errorf("create article: %w", err)
	}

	now := time.Now().UTC()
	article := &domain.Article{
		Title:      input.Title,
		Content:    input.Content,
		AuthorID:   author.ID,
		AuthorName: author.Name,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	created, err := s.articles.Create(ctx, article)
	if err != nil {
		s.log.Error().Err(err).Str("author_id", input.AuthorID).Msg("failed to create article")
		return nil, err
	}

	s.publish(domain.ActivityEvent{
		Type:      domain.ActivityArticleCreated,
		ArticleID: created.ID,
		ActorID:   author.ID,
		Timestamp: now,
	})

	s.log.Info().Str("article_id", created.ID).Str("author_id", author.ID).Msg("article created")
	return created, nil
}

// Get returns the full article with its comments populated, resolving each
// comment author's current name and email.
func (s *articleService) Get(ctx context.Context, articleID string) (*ports.ArticleDetail, error) {
	article, err := s.articles.FindByID(ctx, articleID)
	if err != nil {
		return nil, err
	}

	comments, err := s.comments.FindByArticle(ctx, articleID)
	if err != nil {
		return nil, fmt.Errorf("get article: load comments: %w", err)
	}

	authors := make(map[string]*domain.User)
	views := make([]ports.CommentView, 0, len(comments))
	for _, c := range comments {
		author, ok := authors[c.AuthorID]
		if !ok {
			author, err = s.users.FindByID(ctx, c.AuthorID)
			if err != nil {
				if !errors.Is(err, domain.ErrUserNotFound) {
					return nil, fmt.Errorf("get article: resolve comment author: %w", err)
				}
				author = &domain.User{ID: c.AuthorID}
			}
			authors[c.AuthorID] = author
		}
		views = append(views, ports.CommentView{
			ID:      c.ID,
			Content: c.Content,
			Author: ports.CommentAuthor{
				ID:    author.ID,
				Name:  author.Name,
				Email: author.Email,
			},
			CreatedAt: c.CreatedAt,
		})
	}

	return &ports.ArticleDetail{
		ID:         article.ID,
		Title:      article.Title,
		Content:    article.Content,
		AuthorID:   article.AuthorID,
		AuthorName: article.AuthorName,
		Likes:      article.Likes,
		LikesCount: article.LikesCount,
		CreatedAt:  article.CreatedAt,
		Comments:   views,
	}, nil
}

func (s *articleService) List(ctx context.Context) ([]ports.ArticleSummary, error) {
	articles, err := s.articles.List(ctx, listLimit)
	if err != nil {
		return nil, err
	}
	return toSummaries(articles), nil
}

// ListPopular serves the public landing listing through a short-TTL cache.
// Cache errors are logged and the store is consulted instead.
func (s *articleService) ListPopular(ctx context.Context) ([]ports.ArticleSummary, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx)
		if err != nil {
			s.log.Warn().Err(err).Msg("popular cache read failed, falling back to store")
		} else if cached != nil {
			return cached, nil
		}
	}

	articles, err := s.articles.List(ctx, popularLimit)
	if err != nil {
		return nil, err
	}
	summaries := toSummaries(articles)

	if s.cache != nil {
		if err := s.cache.Set(ctx, summaries); err != nil {
			s.log.Warn().Err(err).Msg("failed to populate popular cache")
		}
	}
	return summaries, nil
}

func (s *articleService) ListByAuthor(ctx context.Context, authorID string) (*ports.AuthorArticles, error) {
	user, err := s.users.FindByID(ctx, authorID)
	if err != nil {
		return nil, err
	}

	articles, err := s.articles.ListByAuthor(ctx, authorID)
	if err != nil {
		return nil, err
	}

	return &ports.AuthorArticles{
		User: ports.AuthorProfile{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
		},
		Articles: toSummaries(articles),
	}, nil
}

// Delete removes an article after verifying ownership. A non-author requester
// gets ErrNotArticleAuthor and the article is left untouched.
func (s *articleService) Delete(ctx context.Context, articleID, requesterID string) error {
	article, err := s.articles.FindByID(ctx, articleID)
	if err != nil {
		return err
	}

	if article.AuthorID != requesterID {
		return domain.ErrNotArticleAuthor
	}

	if err := s.articles.Delete(ctx, articleID); err != nil {
		return err
	}

	s.publish(domain.ActivityEvent{
		Type:      domain.ActivityArticleDeleted,
		ArticleID: articleID,
		ActorID:   requesterID,
		Timestamp: time.Now().UTC(),
	})

	s.log.Info().Str("article_id", articleID).Str("author_id", requesterID).Msg("article deleted")
	return nil
}

// AddComment creates the comment and atomically attaches it to the article.
// If the article disappears between creation and attachment, the orphaned
// comment is logged and NotFound is returned.
func (s *articleService) AddComment(ctx context.Context, articleID, authorID, content string) (*domain.Comment, error) {
	if _, err := s.articles.FindByID(ctx, articleID); err != nil {
		return nil, err
	}

	comment, err := s.comments.Create(ctx, &domain.Comment{
		Content:   content,
		AuthorID:  authorID,
		ArticleID: articleID,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("add comment: %w", err)
	}

	if err := s.articles.AppendComment(ctx, articleID, comment.ID); err != nil {
		s.log.Warn().Err(err).
			Str("article_id", articleID).
			Str("comment_id", comment.ID).
			Msg("comment created but not attached")
		return nil, err
	}

	s.publish(domain.ActivityEvent{
		Type:      domain.ActivityCommentAdded,
		ArticleID: articleID,
		ActorID:   authorID,
		Timestamp: comment.CreatedAt,
	})

	return comment, nil
}

// Like records at most one like per (article, user) pair. The check and the
// counter increment happen inside a single atomic store update, so concurrent
// first-time likers on the same article cannot double-count.
func (s *articleService) Like(ctx context.Context, articleID, userID string) error {
	if err := s.articles.AddLike(ctx, articleID, userID); err != nil {
		return err
	}

	s.publish(domain.ActivityEvent{
		Type:      domain.ActivityArticleLiked,
		ArticleID: articleID,
		ActorID:   userID,
		Timestamp: time.Now().UTC(),
	})
	return nil
}

func (s *articleService) publish(event domain.ActivityEvent) {
	if s.activity != nil {
		s.activity.Publish(event)
	}
}

func toSummaries(articles []*domain.Article) []ports.ArticleSummary {
	out := make([]ports.ArticleSummary, len(articles))
	for i, a := range articles {
		out[i] = ports.ArticleSummary{
			ID:         a.ID,
			Title:      a.Title,
			Content:    a.Content,
			AuthorID:   a.AuthorID,
			AuthorName: a.AuthorName,
			LikesCount: a.LikesCount,
			CreatedAt:  a.CreatedAt,
		}
	}
	return out
}
