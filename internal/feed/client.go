package feed

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/rsat/josephjoseph-chile/internal/logger"
)

// pageSize is the maximum the storefront feed serves per request.
const pageSize = 250

type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *logger.Logger
}

// NewClient creates a feed client. baseURL points at the products.json
// endpoint, e.g. https://josephjoseph.com/products.json.
func NewClient(baseURL string, logger *logger.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}
}

// FetchPage requests a single page of the feed.
func (c *Client) FetchPage(page int) ([]Product, error) {
	req, err := http.NewRequest("GET", c.baseURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	q := req.URL.Query()
	q.Set("limit", strconv.Itoa(pageSize))
	q.Set("page", strconv.Itoa(page))
	req.URL.RawQuery = q.Encode()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("feed request failed: %d - %s", resp.StatusCode, string(body))
	}

	var pageResp productsResponse
	if err := json.NewDecoder(resp.Body).Decode(&pageResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return pageResp.Products, nil
}

// FetchAll drains the paginated feed into memory. The feed sends no
// total-count header; an empty page is the only termination signal. A
// transport failure aborts the drain and returns the pages collected so
// far together with the error.
func (c *Client) FetchAll() ([]Product, error) {
	var all []Product

	for page := 1; ; page++ {
		c.logger.Info("Fetching feed page %d...", page)

		products, err := c.FetchPage(page)
		if err != nil {
			return all, fmt.Errorf("page %d: %w", page, err)
		}
		if len(products) == 0 {
			break
		}

		c.logger.Info("Got %d products", len(products))
		all = append(all, products...)
	}

	return all, nil
}
