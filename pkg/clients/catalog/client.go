package catalog

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/mamadbah2/shoecard/internal/config"
	"github.com/mamadbah2/shoecard/internal/domain/models"
)

// APIClient is a resty-backed client for a remote JSON catalog.
type APIClient struct {
	httpClient *resty.Client
}

// NewClient builds a remote catalog client using the provided configuration values.
func NewClient(cfg config.RemoteConfig) *APIClient {
	restyClient := resty.New()
	restyClient.
		SetBaseURL(strings.TrimSuffix(cfg.BaseURL, "/")).
		SetHeader("Accept", "application/json").
		SetTimeout(15 * time.Second).
		SetRetryCount(2).
		SetRetryWaitTime(500 * time.Millisecond)

	if cfg.Token != "" {
		restyClient.SetAuthToken(cfg.Token)
	}

	return &APIClient{httpClient: restyClient}
}

// shoeDTO mirrors the remote payload. Prices are cents; releaseDate may be an
// ISO date or epoch milliseconds.
type shoeDTO struct {
	Slug        string `json:"slug"`
	Name        string `json:"name"`
	ImageSrc    string `json:"imageSrc"`
	Price       int64  `json:"price"`
	SalePrice   *int64 `json:"salePrice"`
	ReleaseDate any    `json:"releaseDate"`
	NumOfColors int    `json:"numOfColors"`
}

type listResponse struct {
	Shoes []shoeDTO `json:"shoes"`
}

type apiError struct {
	Error string `json:"error"`
}

// ListShoes fetches the full catalog from GET /shoes.
func (c *APIClient) ListShoes(ctx context.Context) ([]models.Shoe, error) {
	result := new(listResponse)
	apiErr := new(apiError)

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetResult(result).
		SetError(apiErr).
		Get("/shoes")
	if err != nil {
		return nil, fmt.Errorf("fetch remote catalog: %w", err)
	}

	if resp.StatusCode() >= http.StatusBadRequest {
		return nil, fmt.Errorf("remote catalog error: code=%d, message=%s", resp.StatusCode(), apiErr.Error)
	}

	shoes := make([]models.Shoe, 0, len(result.Shoes))
	for _, dto := range result.Shoes {
		shoe := models.Shoe{
			Slug:        dto.Slug,
			Name:        dto.Name,
			ImageSrc:    dto.ImageSrc,
			Price:       models.Money(dto.Price),
			ReleaseDate: models.ParseReleaseDate(dto.ReleaseDate),
			NumOfColors: dto.NumOfColors,
		}
		if dto.SalePrice != nil {
			shoe.SalePrice = models.Cents(*dto.SalePrice)
		}
		shoes = append(shoes, shoe)
	}
	return shoes, nil
}
