package postgres_test

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/shopspring/decimal"

	"github.com/rafabene/casadf-backend/internal/domain/entities"
	domainerrors "github.com/rafabene/casadf-backend/internal/domain/errors"
	"github.com/rafabene/casadf-backend/internal/domain/repositories"
	"github.com/rafabene/casadf-backend/internal/infrastructure/persistence/postgres"
)

var _ = Describe("Marketing", func() {
	var (
		ctx  context.Context
		conn *postgres.Connector
	)

	BeforeEach(func() {
		ctx = context.Background()
		conn = openTestDB()
	})

	Describe("AnalyticsEventRepository", func() {
		var repo repositories.AnalyticsEventRepository

		BeforeEach(func() {
			repo = postgres.NewAnalyticsEventRepository(conn)
		})

		It("filtra por tipo, imóvel e período", func() {
			Expect(repo.Create(ctx, &entities.AnalyticsEvent{EventType: "page_view", PropertyID: ptr(int64(3))})).To(Succeed())
			Expect(repo.Create(ctx, &entities.AnalyticsEvent{EventType: "page_view", PropertyID: ptr(int64(4))})).To(Succeed())
			Expect(repo.Create(ctx, &entities.AnalyticsEvent{EventType: "whatsapp_click", PropertyID: ptr(int64(3)), IPAddress: ptr("200.1.2.3")})).To(Succeed())

			views, err := repo.List(ctx, repositories.AnalyticsFilters{EventType: "page_view"})
			Expect(err).NotTo(HaveOccurred())
			Expect(views).To(HaveLen(2))

			forProperty, err := repo.List(ctx, repositories.AnalyticsFilters{PropertyID: 3})
			Expect(err).NotTo(HaveOccurred())
			Expect(forProperty).To(HaveLen(2))

			now := time.Now().UTC()
			inRange, err := repo.List(ctx, repositories.AnalyticsFilters{
				StartDate: now.Add(-time.Hour),
				EndDate:   now.Add(time.Hour),
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(inRange).To(HaveLen(3))

			future, err := repo.List(ctx, repositories.AnalyticsFilters{StartDate: now.Add(24 * time.Hour)})
			Expect(err).NotTo(HaveOccurred())
			Expect(future).To(BeEmpty())
		})

		It("rejeita IP inválido", func() {
			err := repo.Create(ctx, &entities.AnalyticsEvent{EventType: "page_view", IPAddress: ptr("999.1.1")})
			Expect(err).To(MatchError(domainerrors.ErrValidation))
		})
	})

	Describe("CampaignSourceRepository", func() {
		It("cria, atualiza métricas e lista ativas", func() {
			repo := postgres.NewCampaignSourceRepository(conn)
			campaign := &entities.CampaignSource{
				Name:   "Lançamento Noroeste",
				Source: "google",
				Budget: decimal.NewNullDecimal(decimal.RequireFromString("2500.00")),
			}
			Expect(repo.Create(ctx, campaign)).To(Succeed())
			Expect(repo.Create(ctx, &entities.CampaignSource{Name: "Antiga", Source: "facebook", Active: ptr(false)})).To(Succeed())

			Expect(repo.Update(ctx, campaign.ID, entities.CampaignSourcePatch{
				Clicks:      ptr(200),
				Conversions: ptr(10),
			})).To(Succeed())

			active, err := repo.List(ctx, true)
			Expect(err).NotTo(HaveOccurred())
			Expect(active).To(HaveLen(1))
			Expect(active[0].Clicks).To(Equal(200))
			Expect(active[0].Budget.Decimal.Equal(decimal.NewFromInt(2500))).To(BeTrue())
			Expect(active[0].ConversionRate().Equal(decimal.RequireFromString("0.05"))).To(BeTrue())
		})
	})
})
