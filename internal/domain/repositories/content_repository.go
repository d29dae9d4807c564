package repositories

import (
	"context"

	"github.com/rafabene/casadf-backend/internal/domain/entities"
)

// BlogPostRepository define a interface para posts do blog
type BlogPostRepository interface {
	Create(ctx context.Context, post *entities.BlogPost) error
	Update(ctx context.Context, id int64, patch entities.BlogPostPatch) error
	Delete(ctx context.Context, id int64) error
	FindByID(ctx context.Context, id int64) (*entities.BlogPost, error)
	FindBySlug(ctx context.Context, slug string) (*entities.BlogPost, error)
	List(ctx context.Context, published bool) ([]*entities.BlogPost, error)
}

// BlogCategoryRepository define a interface para categorias do blog
type BlogCategoryRepository interface {
	Create(ctx context.Context, category *entities.BlogCategory) error
	Update(ctx context.Context, id int64, patch entities.BlogCategoryPatch) error
	Delete(ctx context.Context, id int64) error
	FindByID(ctx context.Context, id int64) (*entities.BlogCategory, error)
	FindBySlug(ctx context.Context, slug string) (*entities.BlogCategory, error)
	List(ctx context.Context) ([]*entities.BlogCategory, error)
}

// ReviewRepository define a interface para depoimentos
type ReviewRepository interface {
	Create(ctx context.Context, review *entities.Review) error
	Update(ctx context.Context, id int64, patch entities.ReviewPatch) error
	Delete(ctx context.Context, id int64) error
	FindByID(ctx context.Context, id int64) (*entities.Review, error)
	List(ctx context.Context, approvedOnly bool) ([]*entities.Review, error)
	// ListFeatured retorna depoimentos aprovados e em destaque por display_order decrescente
	ListFeatured(ctx context.Context, limit int) ([]*entities.Review, error)
}
