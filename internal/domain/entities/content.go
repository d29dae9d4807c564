package entities

import "time"

// BlogPost é um artigo do blog. Published e PublishedAt são independentes:
// um post pode estar publicado sem data de publicação.
type BlogPost struct {
	ID              int64      `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Title           string     `gorm:"type:varchar(255);not null;column:title" json:"title" validate:"required,max=255"`
	Slug            string     `gorm:"type:varchar(255);not null;uniqueIndex;column:slug" json:"slug" validate:"required,max=255"`
	Excerpt         *string    `gorm:"type:text;column:excerpt" json:"excerpt"`
	Content         string     `gorm:"type:text;not null;column:content" json:"content" validate:"required"`
	FeaturedImage   *string    `gorm:"type:varchar(500);column:featured_image" json:"featured_image"`
	CategoryID      *int64     `gorm:"index;column:category_id" json:"category_id"`
	AuthorID        *int64     `gorm:"column:author_id" json:"author_id"`
	MetaTitle       *string    `gorm:"type:varchar(255);column:meta_title" json:"meta_title"`
	MetaDescription *string    `gorm:"type:text;column:meta_description" json:"meta_description"`
	Published       bool       `gorm:"default:false;index;column:published" json:"published"`
	PublishedAt     *time.Time `gorm:"column:published_at" json:"published_at"`
	Views           int        `gorm:"default:0;column:views" json:"views"`
	CreatedAt       time.Time  `gorm:"not null;autoCreateTime;column:created_at" json:"created_at"`
	UpdatedAt       time.Time  `gorm:"not null;autoUpdateTime;column:updated_at" json:"updated_at"`
}

func (BlogPost) TableName() string {
	return "blog_posts"
}

type BlogPostPatch struct {
	Title           *string    `gorm:"column:title" json:"title" validate:"omitempty,max=255"`
	Slug            *string    `gorm:"column:slug" json:"slug" validate:"omitempty,max=255"`
	Excerpt         *string    `gorm:"column:excerpt" json:"excerpt"`
	Content         *string    `gorm:"column:content" json:"content"`
	FeaturedImage   *string    `gorm:"column:featured_image" json:"featured_image"`
	CategoryID      *int64     `gorm:"column:category_id" json:"category_id"`
	AuthorID        *int64     `gorm:"column:author_id" json:"author_id"`
	MetaTitle       *string    `gorm:"column:meta_title" json:"meta_title"`
	MetaDescription *string    `gorm:"column:meta_description" json:"meta_description"`
	Published       *bool      `gorm:"column:published" json:"published"`
	PublishedAt     *time.Time `gorm:"column:published_at" json:"published_at"`
	Views           *int       `gorm:"column:views" json:"views"`
}

type BlogCategory struct {
	ID          int64     `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Name        string    `gorm:"type:varchar(100);not null;column:name" json:"name" validate:"required,max=100"`
	Slug        string    `gorm:"type:varchar(100);not null;uniqueIndex;column:slug" json:"slug" validate:"required,max=100"`
	Description *string   `gorm:"type:text;column:description" json:"description"`
	CreatedAt   time.Time `gorm:"not null;autoCreateTime;column:created_at" json:"created_at"`
}

func (BlogCategory) TableName() string {
	return "blog_categories"
}

type BlogCategoryPatch struct {
	Name        *string `gorm:"column:name" json:"name" validate:"omitempty,max=100"`
	Slug        *string `gorm:"column:slug" json:"slug" validate:"omitempty,max=100"`
	Description *string `gorm:"column:description" json:"description"`
}

// Review é um depoimento de cliente exibido no site
type Review struct {
	ID           int64     `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	ClientName   string    `gorm:"type:varchar(255);not null;column:client_name" json:"client_name" validate:"required,max=255"`
	ClientRole   *string   `gorm:"type:varchar(100);column:client_role" json:"client_role"`
	ClientPhoto  *string   `gorm:"type:varchar(500);column:client_photo" json:"client_photo"`
	Rating       int       `gorm:"not null;column:rating" json:"rating" validate:"required,min=1,max=5"`
	Title        *string   `gorm:"type:varchar(255);column:title" json:"title"`
	Content      string    `gorm:"type:text;not null;column:content" json:"content" validate:"required"`
	PropertyID   *int64    `gorm:"column:property_id" json:"property_id"`
	LeadID       *int64    `gorm:"column:lead_id" json:"lead_id"`
	Approved     bool      `gorm:"default:false;column:approved" json:"approved"`
	Featured     bool      `gorm:"default:false;column:featured" json:"featured"`
	DisplayOrder int       `gorm:"default:0;column:display_order" json:"display_order"`
	CreatedAt    time.Time `gorm:"not null;autoCreateTime;column:created_at" json:"created_at"`
	UpdatedAt    time.Time `gorm:"not null;autoUpdateTime;column:updated_at" json:"updated_at"`
}

func (Review) TableName() string {
	return "reviews"
}

type ReviewPatch struct {
	ClientName   *string `gorm:"column:client_name" json:"client_name" validate:"omitempty,max=255"`
	ClientRole   *string `gorm:"column:client_role" json:"client_role"`
	ClientPhoto  *string `gorm:"column:client_photo" json:"client_photo"`
	Rating       *int    `gorm:"column:rating" json:"rating" validate:"omitempty,min=1,max=5"`
	Title        *string `gorm:"column:title" json:"title"`
	Content      *string `gorm:"column:content" json:"content"`
	PropertyID   *int64  `gorm:"column:property_id" json:"property_id"`
	LeadID       *int64  `gorm:"column:lead_id" json:"lead_id"`
	Approved     *bool   `gorm:"column:approved" json:"approved"`
	Featured     *bool   `gorm:"column:featured" json:"featured"`
	DisplayOrder *int    `gorm:"column:display_order" json:"display_order"`
}
