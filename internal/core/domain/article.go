package domain

import (
	"errors"
	"time"
)

var ErrArticleNotFound = errors.New("article not found")
var ErrAlreadyLiked = errors.New("article already liked")
var ErrNotArticleAuthor = errors.New("not the article author")

// Article is the shared-mutable aggregate. AuthorName is a snapshot taken at
// creation time and is not kept in sync with later profile changes.
//
// LikesCount is cached alongside the Likes set and must always equal its
// cardinality; both are only ever changed together by a single atomic store
// update.
type Article struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	AuthorID   string    `json:"author_id"`
	AuthorName string    `json:"author_name"`
	CommentIDs []string  `json:"comment_ids,omitempty"`
	Likes      []string  `json:"likes,omitempty"`
	LikesCount int64     `json:"likes_count"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Comment is immutable once created; it is attached to its article by id.
type Comment struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	AuthorID  string    `json:"author_id"`
	ArticleID string    `json:"article_id"`
	CreatedAt time.Time `json:"created_at"`
}

// ActivityType enumerates the engagement events recorded in the activity trail.
type ActivityType string

const (
	ActivityArticleCreated ActivityType = "article_created"
	ActivityArticleDeleted ActivityType = "article_deleted"
	ActivityCommentAdded   ActivityType = "comment_added"
	ActivityArticleLiked   ActivityType = "article_liked"
)

// ActivityEvent is an audit record of a single engagement mutation.
type ActivityEvent struct {
	Type      ActivityType
	ArticleID string
	ActorID   string
	Timestamp time.Time
}
