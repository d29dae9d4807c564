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

var _ = Describe("Conteúdo", func() {
	var ctx context.Context

	BeforeEach(func() {
		ctx = context.Background()
	})

	Describe("BlogPostRepository", func() {
		var repo repositories.BlogPostRepository

		BeforeEach(func() {
			repo = postgres.NewBlogPostRepository(openTestDB())
		})

		It("filtra por published e encontra por slug", func() {
			Expect(repo.Create(ctx, &entities.BlogPost{Title: "Rascunho", Slug: "rascunho", Content: "..."})).To(Succeed())
			Expect(repo.Create(ctx, &entities.BlogPost{Title: "Guia do Noroeste", Slug: "guia-noroeste", Content: "...", Published: true})).To(Succeed())

			published, err := repo.List(ctx, true)
			Expect(err).NotTo(HaveOccurred())
			Expect(published).To(HaveLen(1))
			Expect(published[0].Slug).To(Equal("guia-noroeste"))

			drafts, err := repo.List(ctx, false)
			Expect(err).NotTo(HaveOccurred())
			Expect(drafts).To(HaveLen(1))
			Expect(drafts[0].Slug).To(Equal("rascunho"))

			post, err := repo.FindBySlug(ctx, "guia-noroeste")
			Expect(err).NotTo(HaveOccurred())
			Expect(post.Published).To(BeTrue())
			Expect(post.PublishedAt).To(BeNil())
		})

		It("rejeita slug duplicado", func() {
			Expect(repo.Create(ctx, &entities.BlogPost{Title: "A", Slug: "mesmo", Content: "a"})).To(Succeed())
			err := repo.Create(ctx, &entities.BlogPost{Title: "B", Slug: "mesmo", Content: "b"})
			Expect(err).To(MatchError(domainerrors.ErrUniqueViolation))
		})

		It("publica um rascunho via patch", func() {
			post := &entities.BlogPost{Title: "Rascunho", Slug: "rascunho", Content: "..."}
			Expect(repo.Create(ctx, post)).To(Succeed())
			Expect(repo.Update(ctx, post.ID, entities.BlogPostPatch{Published: ptr(true)})).To(Succeed())

			found, err := repo.FindByID(ctx, post.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(found.Published).To(BeTrue())
		})
	})

	Describe("BlogCategoryRepository", func() {
		It("lista categorias em ordem alfabética", func() {
			repo := postgres.NewBlogCategoryRepository(openTestDB())
			Expect(repo.Create(ctx, &entities.BlogCategory{Name: "Mercado", Slug: "mercado"})).To(Succeed())
			Expect(repo.Create(ctx, &entities.BlogCategory{Name: "Financiamento", Slug: "financiamento"})).To(Succeed())

			list, err := repo.List(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(list).To(HaveLen(2))
			Expect(list[0].Name).To(Equal("Financiamento"))

			found, err := repo.FindBySlug(ctx, "mercado")
			Expect(err).NotTo(HaveOccurred())
			Expect(found.Name).To(Equal("Mercado"))
		})
	})

	Describe("ReviewRepository", func() {
		var repo repositories.ReviewRepository

		BeforeEach(func() {
			repo = postgres.NewReviewRepository(openTestDB())
		})

		It("retorna destaques aprovados por display_order decrescente", func() {
			Expect(repo.Create(ctx, &entities.Review{ClientName: "Ana", Rating: 5, Content: "Ótimo", Approved: true, Featured: true, DisplayOrder: 1})).To(Succeed())
			Expect(repo.Create(ctx, &entities.Review{ClientName: "Bia", Rating: 4, Content: "Bom", Approved: true, Featured: true, DisplayOrder: 5})).To(Succeed())
			Expect(repo.Create(ctx, &entities.Review{ClientName: "Caio", Rating: 5, Content: "Pendente", Featured: true, DisplayOrder: 9})).To(Succeed())
			Expect(repo.Create(ctx, &entities.Review{ClientName: "Davi", Rating: 3, Content: "Ok", Approved: true})).To(Succeed())

			featured, err := repo.ListFeatured(ctx, 6)
			Expect(err).NotTo(HaveOccurred())
			Expect(featured).To(HaveLen(2))
			Expect(featured[0].ClientName).To(Equal("Bia"))
			Expect(featured[1].ClientName).To(Equal("Ana"))

			approved, err := repo.List(ctx, true)
			Expect(err).NotTo(HaveOccurred())
			Expect(approved).To(HaveLen(3))
		})

		It("rejeita nota fora de 1 a 5", func() {
			err := repo.Create(ctx, &entities.Review{ClientName: "Ana", Rating: 6, Content: "?"})
			Expect(err).To(MatchError(domainerrors.ErrValidation))
		})
	})
})
