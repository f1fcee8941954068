package thread

import "forum/internal/app/post"

// Thread is a row of the threads table.
type Thread struct {
	ID        uint64 `gorm:"primaryKey"`
	Title     string `gorm:"not null"`
	Author    string `gorm:"not null"`
	CreatedAt string `gorm:"column:created_at;not null;autoCreateTime:false"`
}

func (Thread) TableName() string {
	return "threads"
}

// Summary is a thread with its activity aggregates, computed at read time.
type Summary struct {
	ID         uint64
	Title      string
	Author     string
	CreatedAt  string
	PostsCount int64
	LastPostAt string
}

// Detail is a thread together with all of its posts, oldest first.
type Detail struct {
	Thread
	Posts []*post.Post
}

type CreateThreadRequest struct {
	Title  string `json:"title"`
	Body   string `json:"body"`
	Author string `json:"author"`
}

type SummaryResponse struct {
	ID         uint64 `json:"id"`
	Title      string `json:"title"`
	Author     string `json:"author"`
	CreatedAt  string `json:"created_at"`
	PostsCount int64  `json:"posts_count"`
	LastPostAt string `json:"last_post_at"`
}

type ThreadResponse struct {
	ID        uint64              `json:"id"`
	Title     string              `json:"title"`
	Author    string              `json:"author"`
	CreatedAt string              `json:"created_at"`
	Posts     []post.PostResponse `json:"posts"`
}

func NewSummaryResponses(summaries []*Summary) []SummaryResponse {
	out := make([]SummaryResponse, 0, len(summaries))
	for _, s := range summaries {
		out = append(out, SummaryResponse{
			ID:         s.ID,
			Title:      s.Title,
			Author:     s.Author,
			CreatedAt:  s.CreatedAt,
			PostsCount: s.PostsCount,
			LastPostAt: s.LastPostAt,
		})
	}
	return out
}

func NewThreadResponse(d *Detail) ThreadResponse {
	return ThreadResponse{
		ID:        d.ID,
		Title:     d.Title,
		Author:    d.Author,
		CreatedAt: d.CreatedAt,
		Posts:     post.NewPostResponses(d.Posts),
	}
}
