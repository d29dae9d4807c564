package postgres_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/datatypes"

	"github.com/rafabene/casadf-backend/internal/domain/entities"
	domainerrors "github.com/rafabene/casadf-backend/internal/domain/errors"
	"github.com/rafabene/casadf-backend/internal/domain/repositories"
	"github.com/rafabene/casadf-backend/internal/infrastructure/persistence/postgres"
)

var _ = Describe("LeadRepository", func() {
	var (
		ctx          context.Context
		repo         repositories.LeadRepository
		interactions repositories.InteractionRepository
		interests    repositories.ClientInterestRepository
	)

	BeforeEach(func() {
		ctx = context.Background()
		conn := openTestDB()
		repo = postgres.NewLeadRepository(conn)
		interactions = postgres.NewInteractionRepository(conn)
		interests = postgres.NewClientInterestRepository(conn)
	})

	It("aplica os valores padrão do funil", func() {
		lead := &entities.Lead{Name: "João"}
		Expect(repo.Create(ctx, lead)).To(Succeed())

		found, err := repo.FindByID(ctx, lead.ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(found.Stage).To(Equal(entities.LeadStageNovo))
		Expect(found.Source).To(Equal(entities.LeadSourceSite))
		Expect(found.ClientType).To(Equal(entities.ClientTypeComprador))
		Expect(found.Qualification).To(Equal(entities.QualificationNaoQualificado))
		Expect(found.UrgencyLevel).To(Equal(entities.LevelMedia))
		Expect(found.Priority).To(Equal(entities.LevelMedia))
		Expect(found.TransactionInterest).To(Equal(entities.TransactionTypeVenda))
		Expect(found.Score).To(BeZero())
	})

	It("rejeita estágio desconhecido", func() {
		lead := &entities.Lead{Name: "João", Stage: "perdido"}
		Expect(repo.Create(ctx, lead)).To(MatchError(domainerrors.ErrValidation))
	})

	It("rejeita e-mail inválido", func() {
		lead := &entities.Lead{Name: "João", Email: ptr("joao")}
		Expect(repo.Create(ctx, lead)).To(MatchError(domainerrors.ErrValidation))
	})

	It("atualiza parcialmente", func() {
		lead := &entities.Lead{Name: "João", Tags: datatypes.JSONSlice[string]{"vip"}}
		Expect(repo.Create(ctx, lead)).To(Succeed())

		Expect(repo.Update(ctx, lead.ID, entities.LeadPatch{
			Stage: ptr(entities.LeadStageQualificado),
			Score: ptr(80),
		})).To(Succeed())

		found, err := repo.FindByID(ctx, lead.ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(found.Stage).To(Equal(entities.LeadStageQualificado))
		Expect(found.Score).To(Equal(80))
		Expect(found.Name).To(Equal("João"))
		Expect([]string(found.Tags)).To(Equal([]string{"vip"}))
	})

	Describe("List", func() {
		BeforeEach(func() {
			Expect(repo.Create(ctx, &entities.Lead{Name: "A", Source: entities.LeadSourceWhatsapp, AssignedTo: ptr(int64(1))})).To(Succeed())
			Expect(repo.Create(ctx, &entities.Lead{Name: "B", Source: entities.LeadSourceWhatsapp, Stage: entities.LeadStageProposta})).To(Succeed())
			Expect(repo.Create(ctx, &entities.Lead{Name: "C", Source: entities.LeadSourceInstagram, AssignedTo: ptr(int64(1))})).To(Succeed())
		})

		It("filtra por origem", func() {
			result, err := repo.List(ctx, repositories.LeadFilters{Source: entities.LeadSourceWhatsapp})
			Expect(err).NotTo(HaveOccurred())
			Expect(result).To(HaveLen(2))
			Expect(result[0].Name).To(Equal("B"))
		})

		It("filtra por responsável", func() {
			result, err := repo.List(ctx, repositories.LeadFilters{AssignedTo: 1})
			Expect(err).NotTo(HaveOccurred())
			Expect(result).To(HaveLen(2))
		})

		It("ignora responsável zerado", func() {
			Expect(repo.Create(ctx, &entities.Lead{Name: "D", Source: entities.LeadSourceSite, AssignedTo: ptr(int64(0))})).To(Succeed())

			result, err := repo.List(ctx, repositories.LeadFilters{AssignedTo: 0})
			Expect(err).NotTo(HaveOccurred())
			Expect(result).To(HaveLen(4))
			Expect(result[0].Name).To(Equal("D"))
		})

		It("lista por estágio", func() {
			result, err := repo.ListByStage(ctx, entities.LeadStageProposta)
			Expect(err).NotTo(HaveOccurred())
			Expect(result).To(HaveLen(1))
			Expect(result[0].Name).To(Equal("B"))
		})

		It("rejeita origem desconhecida", func() {
			_, err := repo.List(ctx, repositories.LeadFilters{Source: "tiktok"})
			Expect(err).To(MatchError(domainerrors.ErrValidation))
		})
	})

	Describe("InteractionRepository", func() {
		It("lista o histórico do lead, mais recente primeiro", func() {
			Expect(interactions.Create(ctx, &entities.Interaction{LeadID: 1, Type: entities.InteractionLigacao})).To(Succeed())
			Expect(interactions.Create(ctx, &entities.Interaction{
				LeadID:   1,
				UserID:   ptr(int64(9)),
				Type:     entities.InteractionVisita,
				Metadata: datatypes.JSON(`{"endereco":"SHIS QI 9"}`),
			})).To(Succeed())
			Expect(interactions.Create(ctx, &entities.Interaction{LeadID: 2, Type: entities.InteractionNota})).To(Succeed())

			byLead, err := interactions.ListByLead(ctx, 1)
			Expect(err).NotTo(HaveOccurred())
			Expect(byLead).To(HaveLen(2))
			Expect(byLead[0].Type).To(Equal(entities.InteractionVisita))
			Expect(string(byLead[0].Metadata)).To(MatchJSON(`{"endereco":"SHIS QI 9"}`))

			byUser, err := interactions.ListByUser(ctx, 9)
			Expect(err).NotTo(HaveOccurred())
			Expect(byUser).To(HaveLen(1))
		})

		It("rejeita tipo desconhecido", func() {
			err := interactions.Create(ctx, &entities.Interaction{LeadID: 1, Type: "telegrama"})
			Expect(err).To(MatchError(domainerrors.ErrValidation))
		})
	})

	Describe("ClientInterestRepository", func() {
		It("cria, altera e remove perfis de interesse", func() {
			interest := &entities.ClientInterest{
				ClientID:               5,
				InterestType:           ptr(entities.InterestVenda),
				PreferredNeighborhoods: datatypes.JSONSlice[string]{"Sudoeste"},
			}
			Expect(interests.Create(ctx, interest)).To(Succeed())

			Expect(interests.Update(ctx, interest.ID, entities.ClientInterestPatch{
				BudgetMax: ptr(int64(150000000)),
			})).To(Succeed())

			list, err := interests.ListByClient(ctx, 5)
			Expect(err).NotTo(HaveOccurred())
			Expect(list).To(HaveLen(1))
			Expect(*list[0].BudgetMax).To(Equal(int64(150000000)))
			Expect([]string(list[0].PreferredNeighborhoods)).To(Equal([]string{"Sudoeste"}))

			Expect(interests.Delete(ctx, interest.ID)).To(Succeed())
			list, err = interests.ListByClient(ctx, 5)
			Expect(err).NotTo(HaveOccurred())
			Expect(list).To(BeEmpty())
		})
	})

	Context("sem banco de dados", func() {
		It("falha nas operações de lead", func() {
			unavailable := postgres.NewLeadRepository(unavailableDB())
			_, err := unavailable.List(ctx, repositories.LeadFilters{})
			Expect(err).To(MatchError(domainerrors.ErrDatabaseUnavailable))
			Expect(unavailable.Update(ctx, 1, entities.LeadPatch{Name: ptr("x")})).To(MatchError(domainerrors.ErrDatabaseUnavailable))
		})
	})
})
