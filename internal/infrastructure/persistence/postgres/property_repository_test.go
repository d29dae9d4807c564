package postgres_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/rafabene/casadf-backend/internal/domain/entities"
	domainerrors "github.com/rafabene/casadf-backend/internal/domain/errors"
	"github.com/rafabene/casadf-backend/internal/domain/repositories"
	"github.com/rafabene/casadf-backend/internal/infrastructure/persistence/postgres"
)

var _ = Describe("PropertyRepository", func() {
	var (
		ctx    context.Context
		conn   *postgres.Connector
		repo   repositories.PropertyRepository
		images repositories.PropertyImageRepository
	)

	BeforeEach(func() {
		ctx = context.Background()
		conn = openTestDB()
		repo = postgres.NewPropertyRepository(conn)
		images = postgres.NewPropertyImageRepository(conn)
	})

	Describe("Create", func() {
		It("preenche id e valores padrão", func() {
			property := newProperty("Casa no Lago Sul")
			property.Features = []string{"piscina", "churrasqueira"}
			property.Images = []entities.ImageRef{{URL: "https://cdn.casadf.com.br/1.jpg", Caption: "Fachada"}}
			Expect(repo.Create(ctx, property)).To(Succeed())
			Expect(property.ID).NotTo(BeZero())

			found, err := repo.FindByID(ctx, property.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(found.Status).To(Equal(entities.PropertyStatusDisponivel))
			Expect(*found.Published).To(BeTrue())
			Expect(*found.Featured).To(BeFalse())
			Expect([]string(found.Features)).To(Equal([]string{"piscina", "churrasqueira"}))
			Expect(found.Images).To(HaveLen(1))
			Expect(found.Images[0].Caption).To(Equal("Fachada"))
		})

		It("rejeita tipo de imóvel desconhecido", func() {
			property := newProperty("Chácara")
			property.PropertyType = "chacara"
			Expect(repo.Create(ctx, property)).To(MatchError(domainerrors.ErrValidation))
		})

		It("rejeita slug duplicado", func() {
			first := newProperty("Casa 1")
			first.Slug = ptr("casa-lago-sul")
			Expect(repo.Create(ctx, first)).To(Succeed())

			second := newProperty("Casa 2")
			second.Slug = ptr("casa-lago-sul")
			Expect(repo.Create(ctx, second)).To(MatchError(domainerrors.ErrUniqueViolation))
		})
	})

	Describe("Update", func() {
		It("altera apenas os campos informados", func() {
			property := newProperty("Apartamento na Asa Sul")
			property.SalePrice = ptr(int64(80000000))
			property.Neighborhood = ptr("Asa Sul")
			Expect(repo.Create(ctx, property)).To(Succeed())

			Expect(repo.Update(ctx, property.ID, entities.PropertyPatch{
				SalePrice: ptr(int64(75000000)),
				Status:    ptr(entities.PropertyStatusReservado),
			})).To(Succeed())

			found, err := repo.FindByID(ctx, property.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(*found.SalePrice).To(Equal(int64(75000000)))
			Expect(found.Status).To(Equal(entities.PropertyStatusReservado))
			Expect(found.Title).To(Equal("Apartamento na Asa Sul"))
			Expect(*found.Neighborhood).To(Equal("Asa Sul"))
		})

		It("não falha para id inexistente", func() {
			Expect(repo.Update(ctx, 999, entities.PropertyPatch{Title: ptr("Nada")})).To(Succeed())
		})

		It("rejeita status desconhecido", func() {
			err := repo.Update(ctx, 1, entities.PropertyPatch{Status: ptr(entities.PropertyStatus("demolido"))})
			Expect(err).To(MatchError(domainerrors.ErrValidation))
		})
	})

	Describe("Delete", func() {
		It("remove o imóvel sem apagar as imagens", func() {
			property := newProperty("Cobertura")
			Expect(repo.Create(ctx, property)).To(Succeed())
			Expect(images.Create(ctx, &entities.PropertyImage{
				PropertyID: property.ID,
				ImageURL:   "https://cdn.casadf.com.br/a.jpg",
				ImageKey:   "properties/a.jpg",
			})).To(Succeed())

			Expect(repo.Delete(ctx, property.ID)).To(Succeed())

			found, err := repo.FindByID(ctx, property.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(found).To(BeNil())

			remaining, err := images.ListByProperty(ctx, property.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(remaining).To(HaveLen(1))
		})

		It("não falha para id inexistente", func() {
			Expect(repo.Delete(ctx, 12345)).To(Succeed())
		})
	})

	Describe("FindBySlug", func() {
		It("retorna nil quando não existe", func() {
			found, err := repo.FindBySlug(ctx, "nao-existe")
			Expect(err).NotTo(HaveOccurred())
			Expect(found).To(BeNil())
		})
	})

	Describe("List", func() {
		BeforeEach(func() {
			cheap := newProperty("Kitnet")
			cheap.SalePrice = ptr(int64(99999))
			cheap.Neighborhood = ptr("Guará II")
			cheap.TotalArea = ptr(30)
			cheap.Bedrooms = ptr(1)
			Expect(repo.Create(ctx, cheap)).To(Succeed())

			boundary := newProperty("Casa no limite")
			boundary.SalePrice = ptr(int64(100000))
			boundary.Neighborhood = ptr("Lago Sul")
			boundary.TotalArea = ptr(200)
			boundary.Bedrooms = ptr(3)
			Expect(repo.Create(ctx, boundary)).To(Succeed())

			rental := newProperty("Apartamento para alugar")
			rental.TransactionType = entities.TransactionTypeLocacao
			rental.PropertyType = entities.PropertyTypeApartamento
			rental.Neighborhood = ptr("Lago Norte")
			rental.Status = entities.PropertyStatusAlugado
			Expect(repo.Create(ctx, rental)).To(Succeed())
		})

		It("retorna todos sem filtros, do mais recente ao mais antigo", func() {
			all, err := repo.List(ctx, repositories.PropertyFilters{})
			Expect(err).NotTo(HaveOccurred())
			Expect(all).To(HaveLen(3))
			Expect(all[0].Title).To(Equal("Apartamento para alugar"))
			Expect(all[2].Title).To(Equal("Kitnet"))
		})

		It("inclui o preço mínimo exato e exclui valores abaixo", func() {
			result, err := repo.List(ctx, repositories.PropertyFilters{MinPrice: 100000})
			Expect(err).NotTo(HaveOccurred())
			Expect(result).To(HaveLen(1))
			Expect(result[0].Title).To(Equal("Casa no limite"))
		})

		It("inclui o preço máximo exato", func() {
			result, err := repo.List(ctx, repositories.PropertyFilters{MaxPrice: 99999})
			Expect(err).NotTo(HaveOccurred())
			Expect(result).To(HaveLen(1))
			Expect(result[0].Title).To(Equal("Kitnet"))
		})

		It("busca bairro por substring", func() {
			result, err := repo.List(ctx, repositories.PropertyFilters{Neighborhood: "Lago"})
			Expect(err).NotTo(HaveOccurred())
			Expect(result).To(HaveLen(2))
		})

		It("combina filtros com AND", func() {
			result, err := repo.List(ctx, repositories.PropertyFilters{
				Neighborhood:    "Lago",
				TransactionType: entities.TransactionTypeLocacao,
				Status:          entities.PropertyStatusAlugado,
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(result).To(HaveLen(1))
			Expect(result[0].PropertyType).To(Equal(entities.PropertyTypeApartamento))
		})

		It("filtra por área e quartos", func() {
			result, err := repo.List(ctx, repositories.PropertyFilters{MinArea: 100, Bedrooms: 3})
			Expect(err).NotTo(HaveOccurred())
			Expect(result).To(HaveLen(1))
			Expect(result[0].Title).To(Equal("Casa no limite"))
		})

		It("trata filtros zerados como ausentes", func() {
			studio := newProperty("Studio em permuta")
			studio.SalePrice = ptr(int64(0))
			studio.Bedrooms = ptr(0)
			studio.TotalArea = ptr(0)
			Expect(repo.Create(ctx, studio)).To(Succeed())

			result, err := repo.List(ctx, repositories.PropertyFilters{
				Bedrooms: 0,
				MinPrice: 0,
				MaxPrice: 0,
				MinArea:  0,
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(result).To(HaveLen(4))
			Expect(result[0].Title).To(Equal("Studio em permuta"))
		})

		It("rejeita filtro de status desconhecido", func() {
			_, err := repo.List(ctx, repositories.PropertyFilters{Status: "demolido"})
			Expect(err).To(MatchError(domainerrors.ErrValidation))
		})
	})

	Describe("ListFeatured", func() {
		It("retorna apenas destaques, limitado", func() {
			for i := 0; i < 8; i++ {
				property := newProperty("Destaque")
				property.Featured = ptr(true)
				Expect(repo.Create(ctx, property)).To(Succeed())
			}
			Expect(repo.Create(ctx, newProperty("Comum"))).To(Succeed())

			featured, err := repo.ListFeatured(ctx, repositories.DefaultFeaturedLimit)
			Expect(err).NotTo(HaveOccurred())
			Expect(featured).To(HaveLen(6))
			for _, p := range featured {
				Expect(*p.Featured).To(BeTrue())
			}
		})
	})

	Describe("PropertyImageRepository", func() {
		It("lista por display_order decrescente", func() {
			for _, order := range []int{1, 3, 2} {
				Expect(images.Create(ctx, &entities.PropertyImage{
					PropertyID:   7,
					ImageURL:     "https://cdn.casadf.com.br/img.jpg",
					ImageKey:     "properties/img.jpg",
					DisplayOrder: order,
				})).To(Succeed())
			}

			list, err := images.ListByProperty(ctx, 7)
			Expect(err).NotTo(HaveOccurred())
			Expect(list).To(HaveLen(3))
			Expect(list[0].DisplayOrder).To(Equal(3))
			Expect(list[1].DisplayOrder).To(Equal(2))
			Expect(list[2].DisplayOrder).To(Equal(1))
		})

		It("rejeita is_primary fora de 0 e 1", func() {
			err := images.Create(ctx, &entities.PropertyImage{
				PropertyID: 1,
				ImageURL:   "https://cdn.casadf.com.br/img.jpg",
				ImageKey:   "properties/img.jpg",
				IsPrimary:  2,
			})
			Expect(err).To(MatchError(domainerrors.ErrValidation))
		})
	})

	Context("sem banco de dados", func() {
		BeforeEach(func() {
			repo = postgres.NewPropertyRepository(unavailableDB())
		})

		It("falha em todas as operações", func() {
			Expect(repo.Create(ctx, newProperty("Casa"))).To(MatchError(domainerrors.ErrDatabaseUnavailable))

			_, err := repo.List(ctx, repositories.PropertyFilters{})
			Expect(err).To(MatchError(domainerrors.ErrDatabaseUnavailable))

			_, err = repo.FindByID(ctx, 1)
			Expect(err).To(MatchError(domainerrors.ErrDatabaseUnavailable))

			Expect(repo.Delete(ctx, 1)).To(MatchError(domainerrors.ErrDatabaseUnavailable))
		})
	})
})
