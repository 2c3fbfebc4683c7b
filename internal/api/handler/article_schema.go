package handler

import "time"

type createArticleRequest struct {
	Title   string `json:"title"   validate:"required,min=3,max=200"`
	Content string `json:"content" validate:"required"`
}

type addCommentRequest struct {
	Content string `json:"content" validate:"required,max=2000"`
}

// articleSummaryData is the list item view. CreatedAt carries only the date
// part (YYYY-MM-DD), matching the public listing contract.
type articleSummaryData struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Content    string `json:"content"`
	Author     string `json:"author"`
	AuthorName string `json:"authorName"`
	LikesCount int64  `json:"likesCount"`
	CreatedAt  string `json:"createdAt"`
}

type articleData struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	Author     string    `json:"author"`
	AuthorName string    `json:"authorName"`
	LikesCount int64     `json:"likesCount"`
	CreatedAt  time.Time `json:"createdAt"`
}

type commentAuthorData struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type commentData struct {
	ID        string            `json:"id"`
	Content   string            `json:"content"`
	Author    commentAuthorData `json:"author"`
	CreatedAt time.Time         `json:"createdAt"`
}

type articleDetailData struct {
	ID         string        `json:"id"`
	Title      string        `json:"title"`
	Content    string        `json:"content"`
	Author     string        `json:"author"`
	AuthorName string        `json:"authorName"`
	Likes      []string      `json:"likes"`
	LikesCount int64         `json:"likesCount"`
	Comments   []commentData `json:"comments"`
	CreatedAt  time.Time     `json:"createdAt"`
}

type authorProfileData struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type authorArticlesData struct {
	User     authorProfileData    `json:"user"`
	Articles []articleSummaryData `json:"articles"`
}
