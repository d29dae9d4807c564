package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/rafabene/casadf-backend/internal/domain/entities"
	"github.com/rafabene/casadf-backend/internal/domain/repositories"
)

// BlogPostRepository implementa repositories.BlogPostRepository
type BlogPostRepository struct {
	store store[entities.BlogPost]
}

// NewBlogPostRepository cria um novo BlogPostRepository
func NewBlogPostRepository(h Handle) repositories.BlogPostRepository {
	return &BlogPostRepository{store: newStore[entities.BlogPost](h, "blog_posts")}
}

func (r *BlogPostRepository) Create(ctx context.Context, post *entities.BlogPost) error {
	return r.store.create(ctx, post)
}

func (r *BlogPostRepository) Update(ctx context.Context, id int64, patch entities.BlogPostPatch) error {
	return r.store.update(ctx, id, patch)
}

func (r *BlogPostRepository) Delete(ctx context.Context, id int64) error {
	return r.store.delete(ctx, id)
}

func (r *BlogPostRepository) FindByID(ctx context.Context, id int64) (*entities.BlogPost, error) {
	return r.store.findByID(ctx, id)
}

func (r *BlogPostRepository) FindBySlug(ctx context.Context, slug string) (*entities.BlogPost, error) {
	return r.store.first(ctx, "slug = ?", slug)
}

// List retorna os posts com a flag published igual à informada; false lista os rascunhos
func (r *BlogPostRepository) List(ctx context.Context, published bool) ([]*entities.BlogPost, error) {
	return r.store.list(ctx, func(q *gorm.DB) *gorm.DB {
		return q.Where("published = ?", published)
	})
}

// BlogCategoryRepository implementa repositories.BlogCategoryRepository
type BlogCategoryRepository struct {
	store store[entities.BlogCategory]
}

// NewBlogCategoryRepository cria um novo BlogCategoryRepository
func NewBlogCategoryRepository(h Handle) repositories.BlogCategoryRepository {
	return &BlogCategoryRepository{store: newStore[entities.BlogCategory](h, "blog_categories")}
}

func (r *BlogCategoryRepository) Create(ctx context.Context, category *entities.BlogCategory) error {
	return r.store.create(ctx, category)
}

func (r *BlogCategoryRepository) Update(ctx context.Context, id int64, patch entities.BlogCategoryPatch) error {
	return r.store.update(ctx, id, patch)
}

func (r *BlogCategoryRepository) Delete(ctx context.Context, id int64) error {
	return r.store.delete(ctx, id)
}

func (r *BlogCategoryRepository) FindByID(ctx context.Context, id int64) (*entities.BlogCategory, error) {
	return r.store.findByID(ctx, id)
}

func (r *BlogCategoryRepository) FindBySlug(ctx context.Context, slug string) (*entities.BlogCategory, error) {
	return r.store.first(ctx, "slug = ?", slug)
}

// List ordena por nome
func (r *BlogCategoryRepository) List(ctx context.Context) ([]*entities.BlogCategory, error) {
	db, err := r.store.db(ctx)
	if err != nil {
		return nil, err
	}

	var categories []*entities.BlogCategory
	if err := db.Order("name ASC").Find(&categories).Error; err != nil {
		return nil, translateError("list blog_categories", err)
	}
	return categories, nil
}

// ReviewRepository implementa repositories.ReviewRepository
type ReviewRepository struct {
	store store[entities.Review]
}

// NewReviewRepository cria um novo ReviewRepository
func NewReviewRepository(h Handle) repositories.ReviewRepository {
	return &ReviewRepository{store: newStore[entities.Review](h, "reviews")}
}

func (r *ReviewRepository) Create(ctx context.Context, review *entities.Review) error {
	return r.store.create(ctx, review)
}

func (r *ReviewRepository) Update(ctx context.Context, id int64, patch entities.ReviewPatch) error {
	return r.store.update(ctx, id, patch)
}

func (r *ReviewRepository) Delete(ctx context.Context, id int64) error {
	return r.store.delete(ctx, id)
}

func (r *ReviewRepository) FindByID(ctx context.Context, id int64) (*entities.Review, error) {
	return r.store.findByID(ctx, id)
}

func (r *ReviewRepository) List(ctx context.Context, approvedOnly bool) ([]*entities.Review, error) {
	return r.store.list(ctx, func(q *gorm.DB) *gorm.DB {
		if approvedOnly {
			q = q.Where("approved = ?", true)
		}
		return q
	})
}

func (r *ReviewRepository) ListFeatured(ctx context.Context, limit int) ([]*entities.Review, error) {
	if limit <= 0 {
		limit = repositories.DefaultFeaturedLimit
	}

	db, err := r.store.db(ctx)
	if err != nil {
		return nil, err
	}

	var reviews []*entities.Review
	err = db.Where("approved = ? AND featured = ?", true, true).
		Order("display_order DESC").
		Order("id ASC").
		Limit(limit).
		Find(&reviews).Error
	if err != nil {
		return nil, translateError("list reviews", err)
	}
	return reviews, nil
}
