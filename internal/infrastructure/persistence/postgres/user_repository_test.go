package postgres_test

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/rafabene/casadf-backend/internal/domain/entities"
	domainerrors "github.com/rafabene/casadf-backend/internal/domain/errors"
	"github.com/rafabene/casadf-backend/internal/domain/repositories"
	"github.com/rafabene/casadf-backend/internal/infrastructure/logging"
	"github.com/rafabene/casadf-backend/internal/infrastructure/persistence/postgres"
)

const ownerOpenID = "owner-open-id"

var _ = Describe("UserRepository", func() {
	var (
		ctx  context.Context
		conn *postgres.Connector
		repo repositories.UserRepository
	)

	BeforeEach(func() {
		ctx = context.Background()
		conn = openTestDB()
		repo = postgres.NewUserRepository(conn, logging.NewNopLogger(), ownerOpenID)
	})

	Describe("Upsert", func() {
		It("insere o usuário no primeiro login", func() {
			Expect(repo.Upsert(ctx, entities.UserUpsert{
				OpenID: "abc",
				Name:   entities.Some("Maria"),
				Email:  entities.Some("maria@casadf.com.br"),
			})).To(Succeed())

			user, err := repo.FindByOpenID(ctx, "abc")
			Expect(err).NotTo(HaveOccurred())
			Expect(user).NotTo(BeNil())
			Expect(*user.Name).To(Equal("Maria"))
			Expect(*user.Email).To(Equal("maria@casadf.com.br"))
			Expect(user.Role).To(Equal(entities.RoleUser))
			Expect(user.LastSignedIn).NotTo(BeZero())
		})

		It("mantém uma única linha por open_id e grava os valores mais recentes", func() {
			Expect(repo.Upsert(ctx, entities.UserUpsert{OpenID: "abc", Name: entities.Some("Maria")})).To(Succeed())
			Expect(repo.Upsert(ctx, entities.UserUpsert{OpenID: "abc", Name: entities.Some("Maria Silva")})).To(Succeed())

			Expect(countRows(conn, &entities.User{})).To(Equal(int64(1)))

			user, err := repo.FindByOpenID(ctx, "abc")
			Expect(err).NotTo(HaveOccurred())
			Expect(*user.Name).To(Equal("Maria Silva"))
		})

		It("não altera campos omitidos e grava nulo explícito", func() {
			Expect(repo.Upsert(ctx, entities.UserUpsert{
				OpenID:      "abc",
				Name:        entities.Some("Maria"),
				LoginMethod: entities.Some("google"),
			})).To(Succeed())

			Expect(repo.Upsert(ctx, entities.UserUpsert{
				OpenID:      "abc",
				LoginMethod: entities.Null[string](),
			})).To(Succeed())

			user, err := repo.FindByOpenID(ctx, "abc")
			Expect(err).NotTo(HaveOccurred())
			Expect(user.Name).NotTo(BeNil())
			Expect(*user.Name).To(Equal("Maria"))
			Expect(user.LoginMethod).To(BeNil())
		})

		It("atualiza last_signed_in quando não há outros campos", func() {
			first := time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)
			Expect(repo.Upsert(ctx, entities.UserUpsert{OpenID: "abc", LastSignedIn: &first})).To(Succeed())
			Expect(repo.Upsert(ctx, entities.UserUpsert{OpenID: "abc"})).To(Succeed())

			user, err := repo.FindByOpenID(ctx, "abc")
			Expect(err).NotTo(HaveOccurred())
			Expect(user.LastSignedIn.After(first)).To(BeTrue())
		})

		It("promove o dono a admin mesmo com outro papel informado", func() {
			Expect(repo.Upsert(ctx, entities.UserUpsert{
				OpenID: ownerOpenID,
				Role:   ptr(entities.RoleUser),
			})).To(Succeed())

			user, err := repo.FindByOpenID(ctx, ownerOpenID)
			Expect(err).NotTo(HaveOccurred())
			Expect(user.Role).To(Equal(entities.RoleAdmin))
			Expect(user.IsAdmin()).To(BeTrue())
		})

		It("grava o papel informado para outros usuários", func() {
			Expect(repo.Upsert(ctx, entities.UserUpsert{OpenID: "abc", Role: ptr(entities.RoleAdmin)})).To(Succeed())
			Expect(repo.Upsert(ctx, entities.UserUpsert{OpenID: "abc", Role: ptr(entities.RoleUser)})).To(Succeed())

			user, err := repo.FindByOpenID(ctx, "abc")
			Expect(err).NotTo(HaveOccurred())
			Expect(user.Role).To(Equal(entities.RoleUser))
		})

		It("rejeita open_id vazio", func() {
			err := repo.Upsert(ctx, entities.UserUpsert{OpenID: "  "})
			Expect(err).To(MatchError(domainerrors.ErrValidation))
		})

		It("rejeita papel desconhecido", func() {
			err := repo.Upsert(ctx, entities.UserUpsert{OpenID: "abc", Role: ptr(entities.Role("root"))})
			Expect(err).To(MatchError(domainerrors.ErrValidation))
		})
	})

	Describe("FindByOpenID", func() {
		It("retorna nil quando não existe", func() {
			user, err := repo.FindByOpenID(ctx, "desconhecido")
			Expect(err).NotTo(HaveOccurred())
			Expect(user).To(BeNil())
		})
	})

	Describe("FindByID", func() {
		It("encontra o usuário pelo id gerado", func() {
			Expect(repo.Upsert(ctx, entities.UserUpsert{OpenID: "abc"})).To(Succeed())
			byOpenID, err := repo.FindByOpenID(ctx, "abc")
			Expect(err).NotTo(HaveOccurred())

			byID, err := repo.FindByID(ctx, byOpenID.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(byID.OpenID).To(Equal("abc"))
		})
	})

	Context("sem banco de dados", func() {
		BeforeEach(func() {
			repo = postgres.NewUserRepository(unavailableDB(), logging.NewNopLogger(), ownerOpenID)
		})

		It("ignora o upsert silenciosamente", func() {
			Expect(repo.Upsert(ctx, entities.UserUpsert{OpenID: "abc"})).To(Succeed())
		})

		It("retorna nil na busca por open_id", func() {
			user, err := repo.FindByOpenID(ctx, "abc")
			Expect(err).NotTo(HaveOccurred())
			Expect(user).To(BeNil())
		})

		It("falha na busca por id", func() {
			_, err := repo.FindByID(ctx, 1)
			Expect(err).To(MatchError(domainerrors.ErrDatabaseUnavailable))
		})
	})
})
