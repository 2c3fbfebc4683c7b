package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pressroom/publishing-api/internal/api/metrics"
	"github.com/pressroom/publishing-api/internal/core/domain"
	"github.com/pressroom/publishing-api/internal/core/ports"
)

// ArticleHandler handles article CRUD and engagement (comments, likes).
type ArticleHandler struct {
	service ports.ArticleService
}

func NewArticleHandler(service ports.ArticleService) *ArticleHandler {
	return &ArticleHandler{service: service}
}

// Create publishes a new article authored by the authenticated user.
//
// @Summary      Publish an article
// @Tags         articles
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createArticleRequest  true  "Article contents"
// @Success      201   {object}  successResponse{data=articleData}
// @Failure      400   {object}  map[string]any
// @Failure      401   {object}  map[string]any
// @Router       /api/articles [post]
func (h *ArticleHandler) Create(c echo.Context) error {
	userID, err := requireUserID(c)
	if err != nil {
		return err
	}

	var req createArticleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	article, err := h.service.Create(c.Request().Context(), ports.CreateArticleInput{
		Title:    req.Title,
		Content:  req.Content,
		AuthorID: userID,
	})
	if err != nil {
		return err
	}

	metrics.ArticlesCreatedTotal.Inc()
	return respondData(c, http.StatusCreated, articleData{
		ID:         article.ID,
		Title:      article.Title,
		Content:    article.Content,
		Author:     article.AuthorID,
		AuthorName: article.AuthorName,
		LikesCount: article.LikesCount,
		CreatedAt:  article.CreatedAt,
	})
}

// List returns the latest articles.
//
// @Summary      List latest articles
// @Tags         articles
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  successResponse{data=[]articleSummaryData}
// @Failure      401  {object}  map[string]any
// @Router       /api/articles [get]
func (h *ArticleHandler) List(c echo.Context) error {
	summaries, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return respondData(c, http.StatusOK, toSummaryData(summaries))
}

// ListPopular returns the top articles for the public landing page.
//
// @Summary      List popular articles
// @Tags         articles
// @Produce      json
// @Success      200  {object}  successResponse{data=[]articleSummaryData}
// @Router       /api/articles/popular [get]
func (h *ArticleHandler) ListPopular(c echo.Context) error {
	summaries, err := h.service.ListPopular(c.Request().Context())
	if err != nil {
		return err
	}
	return respondData(c, http.StatusOK, toSummaryData(summaries))
}

// ListByAuthor returns a user's profile together with their articles.
//
// @Summary      List a user's articles
// @Tags         articles
// @Produce      json
// @Security     BearerAuth
// @Param        userId  path      string  true  "Author user id"
// @Success      200     {object}  successResponse{data=authorArticlesData}
// @Failure      401     {object}  map[string]any
// @Failure      404     {object}  map[string]any
// @Router       /api/users/{userId}/articles [get]
func (h *ArticleHandler) ListByAuthor(c echo.Context) error {
	result, err := h.service.ListByAuthor(c.Request().Context(), c.Param("userId"))
	if err != nil {
		return err
	}

	return respondData(c, http.StatusOK, authorArticlesData{
		User: authorProfileData{
			ID:    result.User.ID,
			Name:  result.User.Name,
			Email: result.User.Email,
		},
		Articles: toSummaryData(result.Articles),
	})
}

// Get returns a single article with its comments populated.
//
// @Summary      Get an article
// @Tags         articles
// @Produce      json
// @Security     BearerAuth
// @Param        articleId  path      string  true  "Article id"
// @Success      200        {object}  successResponse{data=articleDetailData}
// @Failure      401        {object}  map[string]any
// @Failure      404        {object}  map[string]any
// @Router       /api/articles/{articleId} [get]
func (h *ArticleHandler) Get(c echo.Context) error {
	detail, err := h.service.Get(c.Request().Context(), c.Param("articleId"))
	if err != nil {
		return err
	}

	comments := make([]commentData, len(detail.Comments))
	for i, cm := range detail.Comments {
		comments[i] = commentData{
			ID:      cm.ID,
			Content: cm.Content,
			Author: commentAuthorData{
				ID:    cm.Author.ID,
				Name:  cm.Author.Name,
				Email: cm.Author.Email,
			},
			CreatedAt: cm.CreatedAt,
		}
	}

	return respondData(c, http.StatusOK, articleDetailData{
		ID:         detail.ID,
		Title:      detail.Title,
		Content:    detail.Content,
		Author:     detail.AuthorID,
		AuthorName: detail.AuthorName,
		Likes:      detail.Likes,
		LikesCount: detail.LikesCount,
		Comments:   comments,
		CreatedAt:  detail.CreatedAt,
	})
}

// Delete removes an article; only its author may do so.
//
// @Summary      Delete an article
// @Tags         articles
// @Produce      json
// @Security     BearerAuth
// @Param        articleId  path      string  true  "Article id"
// @Success      200        {object}  successResponse
// @Failure      401        {object}  map[string]any
// @Failure      403        {object}  map[string]any
// @Failure      404        {object}  map[string]any
// @Router       /api/articles/{articleId} [delete]
func (h *ArticleHandler) Delete(c echo.Context) error {
	userID, err := requireUserID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), c.Param("articleId"), userID); err != nil {
		return err
	}

	return respondMessage(c, http.StatusOK, "article deleted successfully")
}

// AddComment attaches a new comment to an article.
//
// @Summary      Comment on an article
// @Tags         articles
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        articleId  path      string             true  "Article id"
// @Param        body       body      addCommentRequest  true  "Comment contents"
// @Success      201        {object}  successResponse{data=commentData}
// @Failure      400        {object}  map[string]any
// @Failure      401        {object}  map[string]any
// @Failure      404        {object}  map[string]any
// @Router       /api/articles/{articleId}/comments [post]
func (h *ArticleHandler) AddComment(c echo.Context) error {
	userID, err := requireUserID(c)
	if err != nil {
		return err
	}

	var req addCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	comment, err := h.service.AddComment(c.Request().Context(), c.Param("articleId"), userID, req.Content)
	if err != nil {
		return err
	}

	metrics.CommentsCreatedTotal.Inc()
	return respondData(c, http.StatusCreated, commentData{
		ID:        comment.ID,
		Content:   comment.Content,
		Author:    commentAuthorData{ID: comment.AuthorID},
		CreatedAt: comment.CreatedAt,
	})
}

// Like records a like for the authenticated user; liking twice is a conflict.
//
// @Summary      Like an article
// @Tags         articles
// @Produce      json
// @Security     BearerAuth
// @Param        articleId  path      string  true  "Article id"
// @Success      201        {object}  successResponse
// @Failure      401        {object}  map[string]any
// @Failure      404        {object}  map[string]any
// @Failure      409        {object}  map[string]any
// @Router       /api/articles/{articleId}/like [post]
func (h *ArticleHandler) Like(c echo.Context) error {
	userID, err := requireUserID(c)
	if err != nil {
		return err
	}

	if err := h.service.Like(c.Request().Context(), c.Param("articleId"), userID); err != nil {
		if errors.Is(err, domain.ErrAlreadyLiked) {
			metrics.LikeConflictsTotal.Inc()
		}
		return err
	}

	metrics.LikesTotal.Inc()
	return respondMessage(c, http.StatusCreated, "article liked successfully")
}

// toSummaryData trims timestamps to the date part, the contract used by the
// listing endpoints.
func toSummaryData(items []ports.ArticleSummary) []articleSummaryData {
	out := make([]articleSummaryData, len(items))
	for i, s := range items {
		out[i] = articleSummaryData{
			ID:         s.ID,
			Title:      s.Title,
			Content:    s.Content,
			Author:     s.AuthorID,
			AuthorName: s.AuthorName,
			LikesCount: s.LikesCount,
			CreatedAt:  s.CreatedAt.UTC().Format("2006-01-02"),
		}
	}
	return out
}
