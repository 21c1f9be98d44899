package freteapi

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/transgraos/fretelog/internal/config"
	"github.com/transgraos/fretelog/internal/domain/models"
)

// Client exposes the legacy freight API operations used by the application.
// The remote store is the system of record for all four collections; this
// client only reads.
type Client interface {
	FetchFreightPage(ctx context.Context, page, pageSize int) (*FreightPage, error)
	FetchAllFreights(ctx context.Context) ([]models.Freight, error)
	FetchCosts(ctx context.Context) ([]models.Cost, error)
	FetchPayments(ctx context.Context) ([]models.PaymentBatch, error)
	FetchFarms(ctx context.Context) ([]models.FarmStock, error)
}

// APIClient is a resty-backed implementation of Client.
type APIClient struct {
	httpClient *resty.Client
	pageSize   int
}

// NewClient builds a freight API client using the provided configuration.
func NewClient(cfg config.FreteAPIConfig) *APIClient {
	restyClient := resty.New()
	restyClient.
		SetBaseURL(strings.TrimSuffix(cfg.BaseURL, "/")).
		SetHeader("Content-Type", "application/json").
		SetTimeout(cfg.Timeout)

	if cfg.Token != "" {
		restyClient.SetHeader("Authorization", fmt.Sprintf("Bearer %s", cfg.Token))
	}

	return &APIClient{
		httpClient: restyClient,
		pageSize:   cfg.PageSize,
	}
}

// FreightPage mirrors the upstream pagination envelope for the paged freight
// listing.
type FreightPage struct {
	Data         []models.Freight `json:"dados"`
	Page         int              `json:"pagina"`
	TotalPages   int              `json:"total_paginas"`
	TotalRecords int              `json:"total_registros"`
}

// apiError represents the upstream error payload.
type apiError struct {
	Erro     string `json:"erro"`
	Mensagem string `json:"mensagem"`
}

// FetchFreightPage retrieves one server-side page of freights along with the
// pagination envelope.
func (c *APIClient) FetchFreightPage(ctx context.Context, page, pageSize int) (*FreightPage, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = c.pageSize
	}

	result := new(FreightPage)
	apiErr := new(apiError)

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetQueryParam("pagina", fmt.Sprint(page)).
		SetQueryParam("por_pagina", fmt.Sprint(pageSize)).
		SetResult(result).
		SetError(apiErr).
		Get("/fretes")
	if err != nil {
		return nil, fmt.Errorf("fetch freight page %d: %w", page, err)
	}
	if resp.StatusCode() >= http.StatusBadRequest {
		return nil, responseError("fretes", resp.StatusCode(), apiErr)
	}

	return result, nil
}

// FetchAllFreights walks the paged freight listing until exhaustion.
func (c *APIClient) FetchAllFreights(ctx context.Context) ([]models.Freight, error) {
	var all []models.Freight

	for page := 1; ; page++ {
		fetched, err := c.FetchFreightPage(ctx, page, c.pageSize)
		if err != nil {
			return nil, err
		}
		all = append(all, fetched.Data...)

		if page >= fetched.TotalPages || len(fetched.Data) == 0 {
			return all, nil
		}
	}
}

// FetchCosts retrieves the full cost collection.
func (c *APIClient) FetchCosts(ctx context.Context) ([]models.Cost, error) {
	var costs []models.Cost
	if err := c.fetchCollection(ctx, "/custos", &costs); err != nil {
		return nil, err
	}
	return costs, nil
}

// FetchPayments retrieves the full payment-batch collection.
func (c *APIClient) FetchPayments(ctx context.Context) ([]models.PaymentBatch, error) {
	var batches []models.PaymentBatch
	if err := c.fetchCollection(ctx, "/pagamentos", &batches); err != nil {
		return nil, err
	}
	return batches, nil
}

// FetchFarms retrieves the full farm-stock collection.
func (c *APIClient) FetchFarms(ctx context.Context) ([]models.FarmStock, error) {
	var farms []models.FarmStock
	if err := c.fetchCollection(ctx, "/fazendas", &farms); err != nil {
		return nil, err
	}
	return farms, nil
}

func (c *APIClient) fetchCollection(ctx context.Context, path string, out any) error {
	apiErr := new(apiError)

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetResult(out).
		SetError(apiErr).
		Get(path)
	if err != nil {
		return fmt.Errorf("fetch %s: %w", path, err)
	}
	if resp.StatusCode() >= http.StatusBadRequest {
		return responseError(path, resp.StatusCode(), apiErr)
	}
	return nil
}

func responseError(resource string, status int, apiErr *apiError) error {
	message := ""
	if apiErr != nil {
		message = apiErr.Mensagem
		if message == "" {
			message = apiErr.Erro
		}
	}
	return fmt.Errorf("freteapi error on %s: status=%d, message=%s", resource, status, message)
}
