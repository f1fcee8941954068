package post

// Post is a row of the posts table.
type Post struct {
	ID        uint64 `gorm:"primaryKey"`
	ThreadID  uint64 `gorm:"not null"`
	Author    string `gorm:"not null"`
	Body      string `gorm:"not null"`
	CreatedAt string `gorm:"column:created_at;not null;autoCreateTime:false"`
}

func (Post) TableName() string {
	return "posts"
}

type CreatePostRequest struct {
	Body   string `json:"body"`
	Author string `json:"author"`
}

type PostResponse struct {
	ID        uint64 `json:"id"`
	Author    string `json:"author"`
	Body      string `json:"body"`
	CreatedAt string `json:"created_at"`
}

func NewPostResponse(p *Post) PostResponse {
	return PostResponse{
		ID:        p.ID,
		Author:    p.Author,
		Body:      p.Body,
		CreatedAt: p.CreatedAt,
	}
}

// NewPostResponses never returns nil so an empty thread encodes as [].
func NewPostResponses(posts []*Post) []PostResponse {
	out := make([]PostResponse, 0, len(posts))
	for _, p := range posts {
		out = append(out, NewPostResponse(p))
	}
	return out
}
