// Package catalog fetches product records from the external product API.
package catalog

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/port"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/text/currency"
	"gopkg.in/resty.v1"
)

const DefaultBaseURL = "https://api.escuelajs.co/api/v1"

type productDTO struct {
	ID       int             `json:"id"`
	Title    string          `json:"title"`
	Price    decimal.Decimal `json:"price"`
	Images   []string        `json:"images"`
	Category struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	} `json:"category"`
}

type client struct {
	rest     *resty.Client
	currency currency.Unit
	logger   *zap.Logger
}

// New returns a catalog backed by the product API at baseURL. Prices are
// reported in unit.
func New(baseURL string, timeout time.Duration, unit currency.Unit, logger *zap.Logger) port.Catalog {
	rest := resty.New().
		SetHostURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")

	return &client{
		rest:     rest,
		currency: unit,
		logger:   logger,
	}
}

func (c *client) GetProduct(ctx context.Context, id int) (domain.Product, error) {
	var dto productDTO

	resp, err := c.rest.R().
		SetContext(ctx).
		SetResult(&dto).
		Get(fmt.Sprintf("/products/%d", id))
	if err != nil {
		return domain.Product{}, fmt.Errorf("rest.Get: %w", err)
	}

	switch {
	case resp.StatusCode() == http.StatusNotFound:
		return domain.Product{}, fmt.Errorf("product[%d]: %w", id, domain.ErrProductNotFound)
	case resp.IsError():
		c.logger.Warn("catalog request failed", zap.Int("product_id", id), zap.Int("status", resp.StatusCode()))
		return domain.Product{}, fmt.Errorf("product[%d]: unexpected status %d", id, resp.StatusCode())
	}

	if dto.ID == 0 {
		return domain.Product{}, fmt.Errorf("product[%d]: %w", id, domain.ErrProductNotFound)
	}

	return domain.Product{
		ID:     dto.ID,
		Title:  dto.Title,
		Price:  domain.NewMoney(dto.Price, c.currency),
		Images: dto.Images,
		Category: domain.Category{
			ID:   dto.Category.ID,
			Name: dto.Category.Name,
		},
	}, nil
}
