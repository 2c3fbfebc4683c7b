package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/pressroom/publishing-api/internal/core/domain"
	"github.com/pressroom/publishing-api/internal/core/ports"
)

type stubArticleService struct {
	createFn       func(ctx context.Context, input ports.CreateArticleInput) (*domain.Article, error)
	getFn          func(ctx context.Context, articleID string) (*ports.ArticleDetail, error)
	listFn         func(ctx context.Context) ([]ports.ArticleSummary, error)
	listPopularFn  func(ctx context.Context) ([]ports.ArticleSummary, error)
	listByAuthorFn func(ctx context.Context, authorID string) (*ports.AuthorArticles, error)
	deleteFn       func(ctx context.Context, articleID, requesterID string) error
	addCommentFn   func(ctx context.Context, articleID, authorID, content string) (*domain.Comment, error)
	likeFn         func(ctx context.Context, articleID, userID string) error
}

func (s *stubArticleService) Create(ctx context.Context, input ports.CreateArticleInput) (*domain.Article, error) {
	return s.createFn(ctx, input)
}

func (s *stubArticleService) Get(ctx context.Context, articleID string) (*ports.ArticleDetail, error) {
	return s.getFn(ctx, articleID)
}

func (s *stubArticleService) List(ctx context.Context) ([]ports.ArticleSummary, error) {
	return s.listFn(ctx)
}

func (s *stubArticleService) ListPopular(ctx context.Context) ([]ports.ArticleSummary, error) {
	return s.listPopularFn(ctx)
}

func (s *stubArticleService) ListByAuthor(ctx context.Context, authorID string) (*ports.AuthorArticles, error) {
	return s.listByAuthorFn(ctx, authorID)
}

func (s *stubArticleService) Delete(ctx context.Context, articleID, requesterID string) error {
	return s.deleteFn(ctx, articleID, requesterID)
}

func (s *stubArticleService) AddComment(ctx context.Context, articleID, authorID, content string) (*domain.Comment, error) {
	return s.addCommentFn(ctx, articleID, authorID, content)
}

func (s *stubArticleService) Like(ctx context.Context, articleID, userID string) error {
	return s.likeFn(ctx, articleID, userID)
}

// authedContext builds a request context carrying the identity the auth
// middleware would have injected.
func authedContext(t *testing.T, method, target, body, userID string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if userID != "" {
		c.Set("user_id", userID)
	}
	return c, rec
}

func TestArticleHandler_Create_AuthorFromToken(t *testing.T) {
	stub := &stubArticleService{
		createFn: func(_ context.Context, input ports.CreateArticleInput) (*domain.Article, error) {
			if input.AuthorID != "user-1" {
				t.Fatalf("author id %q, want the authenticated user", input.AuthorID)
			}
			return &domain.Article{
				ID:         "article-1",
				Title:      input.Title,
				Content:    input.Content,
				AuthorID:   input.AuthorID,
				AuthorName: "Alice",
				CreatedAt:  time.Now().UTC(),
			}, nil
		},
	}
	h := NewArticleHandler(stub)

	c, rec := authedContext(t, http.MethodPost, "/api/articles",
		`{"title":"T1","content":"B1"}`, "user-1")
	if err := h.Create(c); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("status %d, want 201", rec.Code)
	}

	data, _ := decodeEnvelope(t, rec)["data"].(map[string]any)
	if data["authorName"] != "Alice" || data["author"] != "user-1" {
		t.Fatalf("unexpected data: %v", data)
	}
}

func TestArticleHandler_Create_Unauthenticated(t *testing.T) {
	h := NewArticleHandler(&stubArticleService{})

	c, _ := authedContext(t, http.MethodPost, "/api/articles",
		`{"title":"T1","content":"B1"}`, "")
	err := h.Create(c)
	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestArticleHandler_Create_MissingTitle(t *testing.T) {
	h := NewArticleHandler(&stubArticleService{})

	c, _ := authedContext(t, http.MethodPost, "/api/articles",
		`{"content":"B1"}`, "user-1")
	err := h.Create(c)
	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestArticleHandler_List_DateOnlyTimestamps(t *testing.T) {
	created := time.Date(2024, 5, 17, 13, 45, 0, 0, time.UTC)
	stub := &stubArticleService{
		listFn: func(context.Context) ([]ports.ArticleSummary, error) {
			return []ports.ArticleSummary{{
				ID:         "article-1",
				Title:      "T1",
				AuthorID:   "user-1",
				AuthorName: "Alice",
				LikesCount: 2,
				CreatedAt:  created,
			}}, nil
		},
	}
	h := NewArticleHandler(stub)

	c, rec := authedContext(t, http.MethodGet, "/api/articles", "", "user-1")
	if err := h.List(c); err != nil {
		t.Fatalf("List returned error: %v", err)
	}

	items, _ := decodeEnvelope(t, rec)["data"].([]any)
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	item, _ := items[0].(map[string]any)
	if item["createdAt"] != "2024-05-17" {
		t.Fatalf("createdAt %v, want date-only form", item["createdAt"])
	}
	if item["likesCount"] != float64(2) {
		t.Fatalf("likesCount %v, want 2", item["likesCount"])
	}
}

func TestArticleHandler_Get_PopulatedComments(t *testing.T) {
	stub := &stubArticleService{
		getFn: func(_ context.Context, articleID string) (*ports.ArticleDetail, error) {
			if articleID != "article-1" {
				t.Fatalf("article id %q", articleID)
			}
			return &ports.ArticleDetail{
				ID:         "article-1",
				Title:      "T1",
				AuthorID:   "user-1",
				AuthorName: "Alice",
				Likes:      []string{"user-2"},
				LikesCount: 1,
				Comments: []ports.CommentView{{
					ID:      "comment-1",
					Content: "nice",
					Author:  ports.CommentAuthor{ID: "user-2", Name: "Bob", Email: "bob@example.com"},
				}},
			}, nil
		},
	}
	h := NewArticleHandler(stub)

	c, rec := authedContext(t, http.MethodGet, "/api/articles/article-1", "", "user-1")
	c.SetParamNames("articleId")
	c.SetParamValues("article-1")
	if err := h.Get(c); err != nil {
		t.Fatalf("Get returned error: %v", err)
	}

	data, _ := decodeEnvelope(t, rec)["data"].(map[string]any)
	comments, _ := data["comments"].([]any)
	if len(comments) != 1 {
		t.Fatalf("expected 1 comment, got %d", len(comments))
	}
	author, _ := comments[0].(map[string]any)["author"].(map[string]any)
	if author["name"] != "Bob" {
		t.Fatalf("comment author not populated: %v", author)
	}
}

func TestArticleHandler_Delete_NotAuthorBubblesUp(t *testing.T) {
	stub := &stubArticleService{
		deleteFn: func(_ context.Context, articleID, requesterID string) error {
			return domain.ErrNotArticleAuthor
		},
	}
	h := NewArticleHandler(stub)

	c, _ := authedContext(t, http.MethodDelete, "/api/articles/article-1", "", "user-2")
	c.SetParamNames("articleId")
	c.SetParamValues("article-1")
	if err := h.Delete(c); !errors.Is(err, domain.ErrNotArticleAuthor) {
		t.Fatalf("expected ErrNotArticleAuthor to bubble up, got %v", err)
	}
}

func TestArticleHandler_AddComment(t *testing.T) {
	stub := &stubArticleService{
		addCommentFn: func(_ context.Context, articleID, authorID, content string) (*domain.Comment, error) {
			if articleID != "article-1" || authorID != "user-2" || content != "hello" {
				t.Fatalf("unexpected args: %s %s %s", articleID, authorID, content)
			}
			return &domain.Comment{ID: "comment-1", Content: content, AuthorID: authorID, ArticleID: articleID}, nil
		},
	}
	h := NewArticleHandler(stub)

	c, rec := authedContext(t, http.MethodPost, "/api/articles/article-1/comments",
		`{"content":"hello"}`, "user-2")
	c.SetParamNames("articleId")
	c.SetParamValues("article-1")
	if err := h.AddComment(c); err != nil {
		t.Fatalf("AddComment returned error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("status %d, want 201", rec.Code)
	}
}

func TestArticleHandler_Like(t *testing.T) {
	liked := false
	stub := &stubArticleService{
		likeFn: func(_ context.Context, articleID, userID string) error {
			if liked {
				return domain.ErrAlreadyLiked
			}
			liked = true
			return nil
		},
	}
	h := NewArticleHandler(stub)

	c, rec := authedContext(t, http.MethodPost, "/api/articles/article-1/like", "", "user-2")
	c.SetParamNames("articleId")
	c.SetParamValues("article-1")
	if err := h.Like(c); err != nil {
		t.Fatalf("first like returned error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("status %d, want 201", rec.Code)
	}

	c, _ = authedContext(t, http.MethodPost, "/api/articles/article-1/like", "", "user-2")
	c.SetParamNames("articleId")
	c.SetParamValues("article-1")
	if err := h.Like(c); !errors.Is(err, domain.ErrAlreadyLiked) {
		t.Fatalf("expected ErrAlreadyLiked to bubble up, got %v", err)
	}
}
