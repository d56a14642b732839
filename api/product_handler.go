package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/bazarche/bazarche-backend/database"
	"github.com/bazarche/bazarche-backend/errs"
	"github.com/bazarche/bazarche-backend/models"
)

type productHandler struct {
	responder           Responder
	logger              zerolog.Logger
	productRepo         *database.ProductRepo
	productCategoryRepo *database.ProductCategoryRepo
}

func newProductHandler(productRepo *database.ProductRepo, productCategoryRepo *database.ProductCategoryRepo) productHandler {
	logger := log.With().Str("handlerName", "productHandler").Logger()

	return productHandler{
		responder:           NewResponder(logger),
		logger:              logger,
		productRepo:         productRepo,
		productCategoryRepo: productCategoryRepo,
	}
}

// ProductCollection represents a page of catalog products
type ProductCollection struct {
	Products []models.Product `json:"products"`
	Total    int64            `json:"total"`
}

// listProducts retrieves a filtered page of active catalog products
// @Summary List products
// @Description Lists active products filtered by category, featured flag and search text
// @Tags Products
// @Produce json
// @Success 200 {object} ProductCollection "Page of products"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid filter parameter"
// @Router /products [get]
func (h productHandler) listProducts(adminListing bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		filter := database.ProductFilter{
			ActiveOnly: !adminListing,
			Search:     q.Get("q"),
			Limit:      24,
		}

		if categoryIDStr := q.Get("categoryId"); categoryIDStr != "" {
			categoryID, err := uuid.Parse(categoryIDStr)
			if err != nil {
				h.responder.WriteError(w, errs.NewBadRequestErrorWithField("invalid categoryId", "categoryId", err.Error()))
				return
			}
			filter.CategoryID = &categoryID
		}
		if featuredStr := q.Get("featured"); featuredStr != "" {
			featured, err := strconv.ParseBool(featuredStr)
			if err != nil {
				h.responder.WriteError(w, errs.NewBadRequestErrorWithField("invalid featured", "featured", "featured must be a boolean"))
				return
			}
			filter.Featured = &featured
		}
		if limitStr := q.Get("limit"); limitStr != "" {
			limit, err := strconv.Atoi(limitStr)
			if err != nil || limit < 1 {
				h.responder.WriteError(w, errs.NewBadRequestErrorWithField("invalid limit", "limit", "limit must be a positive integer"))
				return
			}
			if limit > 100 {
				limit = 100
			}
			filter.Limit = limit
		}
		if offsetStr := q.Get("offset"); offsetStr != "" {
			offset, err := strconv.Atoi(offsetStr)
			if err != nil || offset < 0 {
				h.responder.WriteError(w, errs.NewBadRequestErrorWithField("invalid offset", "offset", "offset must be a non-negative integer"))
				return
			}
			filter.Offset = offset
		}

		products, total, err := h.productRepo.Find(filter)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find products", "products", err))
			return
		}

		collection := ProductCollection{Total: total}
		for _, p := range products {
			collection.Products = append(collection.Products, *p)
		}
		h.responder.WriteJSON(w, collection)
	}
}

// getProduct retrieves a product by ID or slug.
func (h productHandler) getProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ref := chi.URLParam(r, "productRef")
		if ref == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing product reference"))
			return
		}

		var product *models.Product
		var err error
		if productID, parseErr := uuid.Parse(ref); parseErr == nil {
			product, err = h.productRepo.FindByID(productID)
		} else {
			product, err = h.productRepo.FindBySlug(ref)
		}
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find product", "product", err))
			return
		}

		h.responder.WriteJSON(w, product)
	}
}

func (h productHandler) createProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var product models.Product
		if err := json.NewDecoder(r.Body).Decode(&product); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode product request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if product.Title == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("title is required"))
			return
		}
		if product.Slug == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("slug is required"))
			return
		}
		switch product.LayoutStyle {
		case "":
			product.LayoutStyle = models.LayoutStyleClassic
		case models.LayoutStyleClassic, models.LayoutStyleChat:
		default:
			h.responder.WriteError(w, errs.NewBadRequestErrorWithField("invalid layoutStyle", "layoutStyle", "layoutStyle must be classic or chat"))
			return
		}

		if err := h.productRepo.Add(&product); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create product", "product", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, product)
	}
}

func (h productHandler) updateProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		productID, err := parseURLID(r, "productID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		existing, err := h.productRepo.FindByID(productID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find product", "product", err))
			return
		}

		var product models.Product
		if err := json.NewDecoder(r.Body).Decode(&product); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode product request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		product.ID = productID
		product.CreatedAt = existing.CreatedAt
		if product.LayoutStyle == "" {
			product.LayoutStyle = existing.LayoutStyle
		}

		if err := h.productRepo.Update(&product); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update product", "product", err))
			return
		}

		h.responder.WriteJSON(w, product)
	}
}

func (h productHandler) deleteProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		productID, err := parseURLID(r, "productID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if _, err := h.productRepo.FindByID(productID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find product", "product", err))
			return
		}

		if err := h.productRepo.Delete(productID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete product", "product", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "product deleted successfully",
		})
	}
}

func (h productHandler) listProductCategories() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categories, err := h.productCategoryRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find product categories", "product_categories", err))
			return
		}
		h.responder.WriteJSON(w, map[string]any{"categories": categories, "total": len(categories)})
	}
}

func (h productHandler) createProductCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var category models.ProductCategory
		if err := json.NewDecoder(r.Body).Decode(&category); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}
		if category.Name == "" || category.Slug == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("name and slug are required"))
			return
		}

		if err := h.productCategoryRepo.Add(&category); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create product category", "product_category", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, category)
	}
}

func (h productHandler) deleteProductCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categoryID, err := parseURLID(r, "categoryID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.productCategoryRepo.Delete(categoryID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete product category", "product_category", err))
			return
		}
		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "product category deleted successfully",
		})
	}
}
