package handlers

import (
	"context"
	"errors"
	"html/template"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mamadbah2/shoecard/internal/catalog"
	"github.com/mamadbah2/shoecard/internal/domain/models"
	"github.com/mamadbah2/shoecard/internal/format"
	"github.com/mamadbah2/shoecard/internal/render/card"
)

// Catalog is the read side of the catalog service used by the handlers.
type Catalog interface {
	List(order catalog.SortOrder) []models.Shoe
	Get(slug string) (models.Shoe, error)
	Refresh(ctx context.Context) error
	Status() (count int, loadedAt time.Time, lastErr error)
}

// ShoeHandler serves shoe cards as HTML pages and JSON.
type ShoeHandler struct {
	catalog    Catalog
	classifier catalog.Classifier
	logger     *zap.Logger
}

// NewShoeHandler constructs the HTTP handler adapter.
func NewShoeHandler(c Catalog, classifier catalog.Classifier, logger *zap.Logger) *ShoeHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ShoeHandler{catalog: c, classifier: classifier, logger: logger}
}

type shoeResponse struct {
	Slug           string         `json:"slug"`
	Name           string         `json:"name"`
	ImageSrc       string         `json:"imageSrc"`
	Price          models.Money   `json:"price"`
	SalePrice      *models.Money  `json:"salePrice,omitempty"`
	ReleaseDate    *time.Time     `json:"releaseDate,omitempty"`
	NumOfColors    int            `json:"numOfColors"`
	Variant        models.Variant `json:"variant"`
	Href           string         `json:"href"`
	PriceLabel     string         `json:"priceLabel"`
	SalePriceLabel string         `json:"salePriceLabel,omitempty"`
	ColorLabel     string         `json:"colorLabel"`
}

// Grid renders every shoe as a card grid.
func (h *ShoeHandler) Grid(c *gin.Context) {
	shoes := h.catalog.List(catalog.ParseSortOrder(c.Query("sort")))

	cards := make([]template.HTML, 0, len(shoes))
	for _, shoe := range shoes {
		cards = append(cards, h.renderCard(shoe))
	}

	c.HTML(http.StatusOK, "grid.html", pageData{Title: "Shoes", Cards: cards})
}

// Shoe renders a single shoe's card on its own page.
func (h *ShoeHandler) Shoe(c *gin.Context) {
	shoe, ok := h.lookup(c)
	if !ok {
		return
	}
	c.HTML(http.StatusOK, "shoe.html", pageData{Title: shoe.Name, Cards: []template.HTML{h.renderCard(shoe)}})
}

// CardFragment returns one card as a bare HTML fragment.
func (h *ShoeHandler) CardFragment(c *gin.Context) {
	shoe, ok := h.lookup(c)
	if !ok {
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(h.renderCard(shoe)))
}

// List returns every shoe with its computed variant.
func (h *ShoeHandler) List(c *gin.Context) {
	shoes := h.catalog.List(catalog.ParseSortOrder(c.Query("sort")))

	items := make([]shoeResponse, 0, len(shoes))
	for _, shoe := range shoes {
		items = append(items, h.toResponse(shoe))
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// Refresh reloads the catalog from its source.
func (h *ShoeHandler) Refresh(c *gin.Context) {
	if err := h.catalog.Refresh(c.Request.Context()); err != nil {
		h.logger.Error("manual catalog refresh failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "unable to refresh catalog"})
		return
	}
	c.Status(http.StatusNoContent)
}

// Health reports liveness plus the state of the catalog snapshot. A failed
// last refresh marks the service degraded; the previous snapshot still serves.
func (h *ShoeHandler) Health(c *gin.Context) {
	count, loadedAt, lastErr := h.catalog.Status()

	body := gin.H{"status": "ok", "shoes": count}
	if !loadedAt.IsZero() {
		body["loadedAt"] = loadedAt.UTC().Format(time.RFC3339)
	}
	if lastErr != nil {
		body["status"] = "degraded"
		body["lastError"] = lastErr.Error()
	}
	c.JSON(http.StatusOK, body)
}

func (h *ShoeHandler) lookup(c *gin.Context) (models.Shoe, bool) {
	shoe, err := h.catalog.Get(c.Param("slug"))
	if err == nil {
		return shoe, true
	}
	if errors.Is(err, catalog.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "shoe not found"})
		return models.Shoe{}, false
	}
	h.logger.Error("failed looking up shoe", zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "lookup failed"})
	return models.Shoe{}, false
}

func (h *ShoeHandler) renderCard(shoe models.Shoe) template.HTML {
	return card.HTML(card.Render(shoe, h.classifier.Variant(shoe)))
}

func (h *ShoeHandler) toResponse(shoe models.Shoe) shoeResponse {
	variant := h.classifier.Variant(shoe)
	resp := shoeResponse{
		Slug:        shoe.Slug,
		Name:        shoe.Name,
		ImageSrc:    shoe.ImageSrc,
		Price:       shoe.Price,
		SalePrice:   shoe.SalePrice,
		NumOfColors: shoe.NumOfColors,
		Variant:     variant,
		Href:        shoe.Href(),
		PriceLabel:  format.FormatPrice(shoe.Price),
		ColorLabel:  format.Pluralize("Color", shoe.NumOfColors),
	}
	if !shoe.ReleaseDate.IsZero() {
		released := shoe.ReleaseDate
		resp.ReleaseDate = &released
	}
	if variant == models.VariantOnSale {
		resp.SalePriceLabel = format.FormatPrice(shoe.EffectivePrice())
	}
	return resp
}
