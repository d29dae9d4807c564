package postgres

import (
	"github.com/rafabene/casadf-backend/internal/domain/ports"
	"github.com/rafabene/casadf-backend/internal/domain/repositories"
)

// Repositories agrupa todos os repositórios sobre a mesma conexão
type Repositories struct {
	Users           repositories.UserRepository
	Properties      repositories.PropertyRepository
	PropertyImages  repositories.PropertyImageRepository
	Leads           repositories.LeadRepository
	Interactions    repositories.InteractionRepository
	ClientInterests repositories.ClientInterestRepository
	BlogPosts       repositories.BlogPostRepository
	BlogCategories  repositories.BlogCategoryRepository
	Reviews         repositories.ReviewRepository
	Owners          repositories.OwnerRepository
	Transactions    repositories.TransactionRepository
	Commissions     repositories.CommissionRepository
	AnalyticsEvents repositories.AnalyticsEventRepository
	CampaignSources repositories.CampaignSourceRepository
	WebhookLogs     repositories.WebhookLogRepository
	MessageBuffer   repositories.MessageBufferRepository
	AiContext       repositories.AiContextRepository
	SiteSettings    repositories.SiteSettingsRepository
}

// NewRepositories cria todos os repositórios
func NewRepositories(h Handle, log ports.Logger, ownerOpenID string) *Repositories {
	return &Repositories{
		Users:           NewUserRepository(h, log, ownerOpenID),
		Properties:      NewPropertyRepository(h),
		PropertyImages:  NewPropertyImageRepository(h),
		Leads:           NewLeadRepository(h),
		Interactions:    NewInteractionRepository(h),
		ClientInterests: NewClientInterestRepository(h),
		BlogPosts:       NewBlogPostRepository(h),
		BlogCategories:  NewBlogCategoryRepository(h),
		Reviews:         NewReviewRepository(h),
		Owners:          NewOwnerRepository(h),
		Transactions:    NewTransactionRepository(h),
		Commissions:     NewCommissionRepository(h),
		AnalyticsEvents: NewAnalyticsEventRepository(h),
		CampaignSources: NewCampaignSourceRepository(h),
		WebhookLogs:     NewWebhookLogRepository(h),
		MessageBuffer:   NewMessageBufferRepository(h),
		AiContext:       NewAiContextRepository(h),
		SiteSettings:    NewSiteSettingsRepository(h),
	}
}
