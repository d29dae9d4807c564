package entities

import "time"

// SiteSettingsID é a chave fixa da única linha de configurações
const SiteSettingsID int64 = 1

// SiteSettings guarda as configurações públicas do site (linha única)
type SiteSettings struct {
	ID int64 `gorm:"primaryKey;autoIncrement:false;column:id" json:"id"`

	CompanyName        *string `gorm:"type:varchar(255);column:company_name" json:"company_name"`
	CompanyDescription *string `gorm:"type:text;column:company_description" json:"company_description"`
	CompanyLogo        *string `gorm:"type:varchar(500);column:company_logo" json:"company_logo"`

	RealtorName  *string `gorm:"type:varchar(255);column:realtor_name" json:"realtor_name"`
	RealtorBio   *string `gorm:"type:text;column:realtor_bio" json:"realtor_bio"`
	RealtorCreci *string `gorm:"type:varchar(50);column:realtor_creci" json:"realtor_creci"`

	Phone    *string `gorm:"type:varchar(20);column:phone" json:"phone"`
	Whatsapp *string `gorm:"type:varchar(20);column:whatsapp" json:"whatsapp"`
	Email    *string `gorm:"type:varchar(320);column:email" json:"email"`
	Address  *string `gorm:"type:text;column:address" json:"address"`

	Instagram *string `gorm:"type:varchar(255);column:instagram" json:"instagram"`
	Facebook  *string `gorm:"type:varchar(255);column:facebook" json:"facebook"`
	Youtube   *string `gorm:"type:varchar(255);column:youtube" json:"youtube"`
	Tiktok    *string `gorm:"type:varchar(255);column:tiktok" json:"tiktok"`
	Linkedin  *string `gorm:"type:varchar(255);column:linkedin" json:"linkedin"`

	SiteTitle       *string `gorm:"type:varchar(255);column:site_title" json:"site_title"`
	SiteDescription *string `gorm:"type:text;column:site_description" json:"site_description"`
	SiteKeywords    *string `gorm:"type:text;column:site_keywords" json:"site_keywords"`

	GoogleAnalyticsID *string `gorm:"type:varchar(50);column:google_analytics_id" json:"google_analytics_id"`
	FacebookPixelID   *string `gorm:"type:varchar(50);column:facebook_pixel_id" json:"facebook_pixel_id"`

	UpdatedAt time.Time `gorm:"not null;autoUpdateTime;column:updated_at" json:"updated_at"`
}

func (SiteSettings) TableName() string {
	return "site_settings"
}

type SiteSettingsPatch struct {
	CompanyName        *string `gorm:"column:company_name" json:"company_name"`
	CompanyDescription *string `gorm:"column:company_description" json:"company_description"`
	CompanyLogo        *string `gorm:"column:company_logo" json:"company_logo"`
	RealtorName        *string `gorm:"column:realtor_name" json:"realtor_name"`
	RealtorBio         *string `gorm:"column:realtor_bio" json:"realtor_bio"`
	RealtorCreci       *string `gorm:"column:realtor_creci" json:"realtor_creci"`
	Phone              *string `gorm:"column:phone" json:"phone"`
	Whatsapp           *string `gorm:"column:whatsapp" json:"whatsapp"`
	Email              *string `gorm:"column:email" json:"email" validate:"omitempty,email"`
	Address            *string `gorm:"column:address" json:"address"`
	Instagram          *string `gorm:"column:instagram" json:"instagram"`
	Facebook           *string `gorm:"column:facebook" json:"facebook"`
	Youtube            *string `gorm:"column:youtube" json:"youtube"`
	Tiktok             *string `gorm:"column:tiktok" json:"tiktok"`
	Linkedin           *string `gorm:"column:linkedin" json:"linkedin"`
	SiteTitle          *string `gorm:"column:site_title" json:"site_title"`
	SiteDescription    *string `gorm:"column:site_description" json:"site_description"`
	SiteKeywords       *string `gorm:"column:site_keywords" json:"site_keywords"`
	GoogleAnalyticsID  *string `gorm:"column:google_analytics_id" json:"google_analytics_id"`
	FacebookPixelID    *string `gorm:"column:facebook_pixel_id" json:"facebook_pixel_id"`
}
