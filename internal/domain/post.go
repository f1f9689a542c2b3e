package domain

import (
	"context"
	"time"
)

// Post is a bilingual blog entry.
// swagger:model Post
type Post struct {
	ID        string        `json:"id"`
	Slug      string        `json:"slug"`
	TitleAr   string        `json:"title_ar"`
	TitleEn   string        `json:"title_en"`
	BodyAr    string        `json:"body_ar"`
	BodyEn    string        `json:"body_en"`
	Status    PublishStatus `json:"status"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// Title returns the post's display title for the given language.
func (p *Post) Title(lang Lang) string {
	return Localized(lang, p.TitleAr, p.TitleEn)
}

// PostRepository defines storage for blog posts.
type PostRepository interface {
	Create(ctx context.Context, p *Post) error
	GetBySlug(ctx context.Context, slug string) (*Post, error)
	List(ctx context.Context, status PublishStatus) ([]*Post, error)
	Update(ctx context.Context, p *Post) error
	Delete(ctx context.Context, id string) error
}

// Link is one entry of the external link/partner directory.
// swagger:model Link
type Link struct {
	ID        string    `json:"id"`
	LabelAr   string    `json:"label_ar"`
	LabelEn   string    `json:"label_en"`
	URL       string    `json:"url"`
	Position  int       `json:"position"`
	CreatedAt time.Time `json:"created_at"`
}

// Label returns the link's display label for the given language.
func (l *Link) Label(lang Lang) string {
	return Localized(lang, l.LabelAr, l.LabelEn)
}

// LinkRepository defines storage for directory links, ordered by Position.
type LinkRepository interface {
	Create(ctx context.Context, l *Link) error
	List(ctx context.Context) ([]*Link, error)
	Update(ctx context.Context, l *Link) error
	Delete(ctx context.Context, id string) error
}

// ContentService defines blog and link-directory management.
type ContentService interface {
	CreatePost(ctx context.Context, p *Post) error
	GetPostBySlug(ctx context.Context, slug string) (*Post, error)
	ListPosts(ctx context.Context, status PublishStatus) ([]*Post, error)
	UpdatePost(ctx context.Context, p *Post) error
	DeletePost(ctx context.Context, id string) error

	CreateLink(ctx context.Context, l *Link) error
	ListLinks(ctx context.Context) ([]*Link, error)
	UpdateLink(ctx context.Context, l *Link) error
	DeleteLink(ctx context.Context, id string) error
}
