package entities

// All lista todos os models persistidos, na ordem usada pelas migrações
func All() []any {
	return []any{
		&User{},
		&Property{},
		&PropertyImage{},
		&Lead{},
		&Interaction{},
		&BlogPost{},
		&BlogCategory{},
		&SiteSettings{},
		&MessageBuffer{},
		&AiContextStatus{},
		&ClientInterest{},
		&WebhookLog{},
		&Owner{},
		&AnalyticsEvent{},
		&CampaignSource{},
		&Transaction{},
		&Commission{},
		&Review{},
	}
}
