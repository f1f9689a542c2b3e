package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"multaqa/internal/domain"
)

type contentService struct {
	postRepo domain.PostRepository
	linkRepo domain.LinkRepository
}

// NewContentService creates a ContentService for blog posts and the link
// directory.
func NewContentService(postRepo domain.PostRepository, linkRepo domain.LinkRepository) domain.ContentService {
	return &contentService{
		postRepo: postRepo,
		linkRepo: linkRepo,
	}
}

func (s *contentService) CreatePost(ctx context.Context, p *domain.Post) error {
	p.Slug = strings.ToLower(strings.TrimSpace(p.Slug))
	if p.Slug == "" || (p.TitleAr == "" && p.TitleEn == "") {
		return domain.ErrInvalidInput
	}
	if p.Status == "" {
		p.Status = domain.PublishDraft
	}
	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now
	if err := s.postRepo.Create(ctx, p); err != nil {
		return fmt.Errorf("create post: %w", err)
	}
	return nil
}

func (s *contentService) GetPostBySlug(ctx context.Context, slug string) (*domain.Post, error) {
	p, err := s.postRepo.GetBySlug(ctx, strings.ToLower(strings.TrimSpace(slug)))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get post: %w", err)
	}
	return p, nil
}

func (s *contentService) ListPosts(ctx context.Context, status domain.PublishStatus) ([]*domain.Post, error) {
	posts, err := s.postRepo.List(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	if posts == nil {
		posts = []*domain.Post{}
	}
	return posts, nil
}

func (s *contentService) UpdatePost(ctx context.Context, p *domain.Post) error {
	p.UpdatedAt = time.Now()
	if err := s.postRepo.Update(ctx, p); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("update post: %w", err)
	}
	return nil
}

func (s *contentService) DeletePost(ctx context.Context, id string) error {
	if err := s.postRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete post: %w", err)
	}
	return nil
}

func (s *contentService) CreateLink(ctx context.Context, l *domain.Link) error {
	l.URL = strings.TrimSpace(l.URL)
	if l.URL == "" || (l.LabelAr == "" && l.LabelEn == "") {
		return domain.ErrInvalidInput
	}
	l.CreatedAt = time.Now()
	if err := s.linkRepo.Create(ctx, l); err != nil {
		return fmt.Errorf("create link: %w", err)
	}
	return nil
}

func (s *contentService) ListLinks(ctx context.Context) ([]*domain.Link, error) {
	links, err := s.linkRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list links: %w", err)
	}
	if links == nil {
		links = []*domain.Link{}
	}
	return links, nil
}

func (s *contentService) UpdateLink(ctx context.Context, l *domain.Link) error {
	if err := s.linkRepo.Update(ctx, l); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("update link: %w", err)
	}
	return nil
}

func (s *contentService) DeleteLink(ctx context.Context, id string) error {
	if err := s.linkRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete link: %w", err)
	}
	return nil
}
