package postgres_test

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"

	"github.com/rafabene/casadf-backend/internal/domain/entities"
	"github.com/rafabene/casadf-backend/internal/domain/repositories"
	"github.com/rafabene/casadf-backend/internal/infrastructure/persistence/postgres"
)

func date(year int, month time.Month, day int) *datatypes.Date {
	d := datatypes.Date(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
	return &d
}

var _ = Describe("Financeiro", func() {
	var ctx context.Context

	BeforeEach(func() {
		ctx = context.Background()
	})

	Describe("OwnerRepository", func() {
		It("lista apenas ativos quando solicitado", func() {
			repo := postgres.NewOwnerRepository(openTestDB())
			Expect(repo.Create(ctx, &entities.Owner{Name: "Carlos"})).To(Succeed())
			Expect(repo.Create(ctx, &entities.Owner{Name: "Helena", Active: ptr(false)})).To(Succeed())

			active, err := repo.List(ctx, true)
			Expect(err).NotTo(HaveOccurred())
			Expect(active).To(HaveLen(1))
			Expect(active[0].Name).To(Equal("Carlos"))

			all, err := repo.List(ctx, false)
			Expect(err).NotTo(HaveOccurred())
			Expect(all).To(HaveLen(2))
		})
	})

	Describe("TransactionRepository", func() {
		var repo repositories.TransactionRepository

		BeforeEach(func() {
			repo = postgres.NewTransactionRepository(openTestDB())
		})

		It("preserva o valor decimal", func() {
			tx := &entities.Transaction{
				Type:        "receita",
				Amount:      decimal.RequireFromString("1234.56"),
				Description: "Aluguel de março",
			}
			Expect(repo.Create(ctx, tx)).To(Succeed())

			found, err := repo.FindByID(ctx, tx.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(found.Amount.Equal(decimal.RequireFromString("1234.56"))).To(BeTrue())
			Expect(found.Currency).To(Equal("BRL"))
			Expect(found.Status).To(Equal("pending"))
		})

		It("filtra por vencimento inclusivo e proprietário", func() {
			Expect(repo.Create(ctx, &entities.Transaction{Type: "despesa", Amount: decimal.NewFromInt(100), Description: "IPTU", OwnerID: ptr(int64(1)), DueDate: date(2025, 3, 1)})).To(Succeed())
			Expect(repo.Create(ctx, &entities.Transaction{Type: "despesa", Amount: decimal.NewFromInt(200), Description: "Condomínio", OwnerID: ptr(int64(1)), DueDate: date(2025, 3, 31)})).To(Succeed())
			Expect(repo.Create(ctx, &entities.Transaction{Type: "despesa", Amount: decimal.NewFromInt(300), Description: "Reforma", OwnerID: ptr(int64(1)), DueDate: date(2025, 4, 15)})).To(Succeed())
			Expect(repo.Create(ctx, &entities.Transaction{Type: "receita", Amount: decimal.NewFromInt(400), Description: "Aluguel", OwnerID: ptr(int64(2)), DueDate: date(2025, 3, 10)})).To(Succeed())

			march, err := repo.List(ctx, repositories.TransactionFilters{
				OwnerID: 1,
				DueFrom: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
				DueTo:   time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC),
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(march).To(HaveLen(2))

			income, err := repo.List(ctx, repositories.TransactionFilters{Type: "receita"})
			Expect(err).NotTo(HaveOccurred())
			Expect(income).To(HaveLen(1))
			Expect(income[0].Description).To(Equal("Aluguel"))
		})

		It("marca como pago via patch", func() {
			tx := &entities.Transaction{Type: "receita", Amount: decimal.NewFromInt(10), Description: "Taxa"}
			Expect(repo.Create(ctx, tx)).To(Succeed())
			Expect(repo.Update(ctx, tx.ID, entities.TransactionPatch{
				Status:      ptr("paid"),
				PaymentDate: date(2025, 5, 2),
			})).To(Succeed())

			found, err := repo.FindByID(ctx, tx.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(found.Status).To(Equal("paid"))
			Expect(found.PaymentDate).NotTo(BeNil())
		})
	})

	Describe("CommissionRepository", func() {
		It("calcula o valor da comissão quando omitido", func() {
			repo := postgres.NewCommissionRepository(openTestDB())
			commission := &entities.Commission{
				PropertyID:     1,
				LeadID:         2,
				SalePrice:      decimal.RequireFromString("500000.00"),
				CommissionRate: decimal.RequireFromString("6.00"),
			}
			Expect(repo.Create(ctx, commission)).To(Succeed())

			found, err := repo.FindByID(ctx, commission.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(found.CommissionAmount.Equal(decimal.NewFromInt(30000))).To(BeTrue())
			Expect(found.AgentCommissionAmount.Valid).To(BeFalse())

			list, err := repo.List(ctx, repositories.CommissionFilters{LeadID: 2})
			Expect(err).NotTo(HaveOccurred())
			Expect(list).To(HaveLen(1))
		})
	})
})
