package postgres_test

import (
	"context"
	"fmt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/datatypes"

	"github.com/rafabene/casadf-backend/internal/domain/entities"
	domainerrors "github.com/rafabene/casadf-backend/internal/domain/errors"
	"github.com/rafabene/casadf-backend/internal/domain/repositories"
	"github.com/rafabene/casadf-backend/internal/infrastructure/persistence/postgres"
)

var _ = Describe("Integrações", func() {
	var (
		ctx  context.Context
		conn *postgres.Connector
	)

	BeforeEach(func() {
		ctx = context.Background()
		conn = openTestDB()
	})

	Describe("AiContextRepository", func() {
		var repo repositories.AiContextRepository

		BeforeEach(func() {
			repo = postgres.NewAiContextRepository(conn)
		})

		It("retorna as últimas entradas em ordem cronológica", func() {
			for i := 1; i <= 5; i++ {
				_, err := repo.Append(ctx, "sessao-1", "61999990000", fmt.Sprintf("mensagem %d", i), entities.AiRoleUser)
				Expect(err).NotTo(HaveOccurred())
			}
			_, err := repo.Append(ctx, "sessao-2", "61988880000", "outra sessão", entities.AiRoleAssistant)
			Expect(err).NotTo(HaveOccurred())

			recent, err := repo.Recent(ctx, "sessao-1", 3)
			Expect(err).NotTo(HaveOccurred())
			Expect(recent).To(HaveLen(3))
			Expect(recent[0].Message).To(Equal("mensagem 3"))
			Expect(recent[1].Message).To(Equal("mensagem 4"))
			Expect(recent[2].Message).To(Equal("mensagem 5"))
		})

		It("rejeita papel desconhecido", func() {
			_, err := repo.Append(ctx, "sessao-1", "61999990000", "oi", entities.AiRole("bot"))
			Expect(err).To(MatchError(domainerrors.ErrValidation))
		})
	})

	Describe("MessageBufferRepository", func() {
		var repo repositories.MessageBufferRepository

		BeforeEach(func() {
			repo = postgres.NewMessageBufferRepository(conn)
		})

		It("lista pendentes e marca como processada de forma idempotente", func() {
			first := &entities.MessageBuffer{Phone: "61999990000", MessageID: "wamid.1", Type: entities.MessageIncoming}
			second := &entities.MessageBuffer{Phone: "61999990000", MessageID: "wamid.2", Type: entities.MessageIncoming}
			Expect(repo.Enqueue(ctx, first)).To(Succeed())
			Expect(repo.Enqueue(ctx, second)).To(Succeed())

			pending, err := repo.ListUnprocessed(ctx, 100)
			Expect(err).NotTo(HaveOccurred())
			Expect(pending).To(HaveLen(2))
			Expect(pending[0].MessageID).To(Equal("wamid.2"))

			Expect(repo.MarkProcessed(ctx, first.ID)).To(Succeed())
			Expect(repo.MarkProcessed(ctx, first.ID)).To(Succeed())
			Expect(repo.MarkProcessed(ctx, 9999)).To(Succeed())

			pending, err = repo.ListUnprocessed(ctx, 100)
			Expect(err).NotTo(HaveOccurred())
			Expect(pending).To(HaveLen(1))
			Expect(pending[0].MessageID).To(Equal("wamid.2"))
		})

		It("rejeita message_id duplicado", func() {
			Expect(repo.Enqueue(ctx, &entities.MessageBuffer{Phone: "61", MessageID: "wamid.1", Type: entities.MessageIncoming})).To(Succeed())
			err := repo.Enqueue(ctx, &entities.MessageBuffer{Phone: "61", MessageID: "wamid.1", Type: entities.MessageIncoming})
			Expect(err).To(MatchError(domainerrors.ErrUniqueViolation))
		})
	})

	Describe("WebhookLogRepository", func() {
		It("preserva o payload e limita a listagem", func() {
			repo := postgres.NewWebhookLogRepository(conn)
			for i := 0; i < 3; i++ {
				Expect(repo.Create(ctx, &entities.WebhookLog{
					Source:  "whatsapp",
					Event:   "message",
					Status:  entities.WebhookSuccess,
					Payload: datatypes.JSON(fmt.Sprintf(`{"seq":%d,"nested":{"ok":true}}`, i)),
				})).To(Succeed())
			}

			logs, err := repo.ListRecent(ctx, 2)
			Expect(err).NotTo(HaveOccurred())
			Expect(logs).To(HaveLen(2))
			Expect(string(logs[0].Payload)).To(MatchJSON(`{"seq":2,"nested":{"ok":true}}`))
		})
	})

	Describe("SiteSettingsRepository", func() {
		var repo repositories.SiteSettingsRepository

		BeforeEach(func() {
			repo = postgres.NewSiteSettingsRepository(conn)
		})

		It("retorna nil antes da primeira gravação", func() {
			settings, err := repo.Get(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(settings).To(BeNil())
		})

		It("mantém uma única linha e altera apenas os campos informados", func() {
			Expect(repo.Update(ctx, entities.SiteSettingsPatch{
				CompanyName: ptr("CasaDF"),
				Phone:       ptr("6133334444"),
			})).To(Succeed())
			Expect(repo.Update(ctx, entities.SiteSettingsPatch{
				Phone: ptr("6199998888"),
			})).To(Succeed())

			Expect(countRows(conn, &entities.SiteSettings{})).To(Equal(int64(1)))

			settings, err := repo.Get(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(settings.ID).To(Equal(entities.SiteSettingsID))
			Expect(*settings.CompanyName).To(Equal("CasaDF"))
			Expect(*settings.Phone).To(Equal("6199998888"))
		})

		It("falha sem banco de dados", func() {
			unavailable := postgres.NewSiteSettingsRepository(unavailableDB())
			err := unavailable.Update(ctx, entities.SiteSettingsPatch{CompanyName: ptr("CasaDF")})
			Expect(err).To(MatchError(domainerrors.ErrDatabaseUnavailable))
		})
	})
})
