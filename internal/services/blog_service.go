package services

import (
	"context"

	"github.com/rafabene/casadf-backend/internal/domain/entities"
	"github.com/rafabene/casadf-backend/internal/domain/errors"
	"github.com/rafabene/casadf-backend/internal/domain/repositories"
)

// BlogService expõe o blog público e os depoimentos do site
type BlogService struct {
	postRepo     repositories.BlogPostRepository
	categoryRepo repositories.BlogCategoryRepository
	reviewRepo   repositories.ReviewRepository
}

// NewBlogService cria um novo BlogService
func NewBlogService(
	postRepo repositories.BlogPostRepository,
	categoryRepo repositories.BlogCategoryRepository,
	reviewRepo repositories.ReviewRepository,
) *BlogService {
	return &BlogService{
		postRepo:     postRepo,
		categoryRepo: categoryRepo,
		reviewRepo:   reviewRepo,
	}
}

// ListPublished lista os posts publicados
func (s *BlogService) ListPublished(ctx context.Context) ([]*entities.BlogPost, error) {
	return s.postRepo.List(ctx, true)
}

// GetPublished busca um post publicado pelo slug. Rascunhos são tratados como inexistentes.
func (s *BlogService) GetPublished(ctx context.Context, slug string) (*entities.BlogPost, error) {
	post, err := s.postRepo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if post == nil || !post.Published {
		return nil, errors.ErrPostNotFound
	}
	return post, nil
}

// ListCategories lista as categorias do blog
func (s *BlogService) ListCategories(ctx context.Context) ([]*entities.BlogCategory, error) {
	return s.categoryRepo.List(ctx)
}

// ListFeaturedReviews lista os depoimentos da home
func (s *BlogService) ListFeaturedReviews(ctx context.Context, limit int) ([]*entities.Review, error) {
	return s.reviewRepo.ListFeatured(ctx, limit)
}
