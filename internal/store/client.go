package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/rsat/josephjoseph-chile/internal/logger"
)

// listPageSize matches what the store serves comfortably per listing page.
const listPageSize = 100

// Client talks to the remote catalog store's REST API. Every request
// carries the bearer credential when one is configured.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	logger     *logger.Logger
}

func NewClient(baseURL, token string, logger *logger.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		token:   token,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}
}

// BaseURL exposes the store origin so the read layer can absolutize
// uploaded-media paths.
func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) do(method, path string, body io.Reader, contentType string) (*http.Response, error) {
	req, err := http.NewRequest(method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to make request: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		return nil, fmt.Errorf("store request failed: %d - %s", resp.StatusCode, string(respBody))
	}

	return resp, nil
}

// CreateProduct creates a catalog record and returns the documentId the
// store assigned to it.
func (c *Client) CreateProduct(input *RecordInput) (string, error) {
	payload := struct {
		Data *RecordInput `json:"data"`
	}{input}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal record: %w", err)
	}

	resp, err := c.do("POST", "/api/products", bytes.NewBuffer(jsonData), "application/json")
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var created recordResponse
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	return created.Data.DocumentID, nil
}

// UpdateProduct applies a partial update; only the supplied fields change.
func (c *Client) UpdateProduct(documentID string, fields map[string]interface{}) error {
	payload := struct {
		Data map[string]interface{} `json:"data"`
	}{fields}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal update: %w", err)
	}

	resp, err := c.do("PUT", "/api/products/"+documentID, bytes.NewBuffer(jsonData), "application/json")
	if err != nil {
		return err
	}
	resp.Body.Close()

	return nil
}

// DeleteProduct removes a catalog record. Irreversible on the store side.
func (c *Client) DeleteProduct(documentID string) error {
	resp, err := c.do("DELETE", "/api/products/"+documentID, nil, "")
	if err != nil {
		return err
	}
	resp.Body.Close()

	return nil
}

// ListProducts fetches one page of the store listing.
func (c *Client) ListProducts(page, pageSize int) ([]Record, error) {
	path := fmt.Sprintf("/api/products?pagination[page]=%d&pagination[pageSize]=%d", page, pageSize)

	resp, err := c.do("GET", path, nil, "")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var listing listResponse
	if err := json.NewDecoder(resp.Body).Decode(&listing); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return listing.Data, nil
}

// ListAllProducts drains the paginated store listing. Like the upstream
// feed, an empty page is the termination signal.
func (c *Client) ListAllProducts() ([]Record, error) {
	var all []Record

	for page := 1; ; page++ {
		records, err := c.ListProducts(page, listPageSize)
		if err != nil {
			return all, fmt.Errorf("listing page %d: %w", page, err)
		}
		if len(records) == 0 {
			break
		}
		all = append(all, records...)
	}

	return all, nil
}

// QueryProducts runs a filtered listing. query is an encoded query string,
// e.g. "filters[category][$eq]=Cocción&populate=*".
func (c *Client) QueryProducts(query string) ([]Record, error) {
	resp, err := c.do("GET", "/api/products?"+query, nil, "")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var listing listResponse
	if err := json.NewDecoder(resp.Body).Decode(&listing); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return listing.Data, nil
}

// UploadFile posts a local file to the store's media library and returns
// the created media descriptors.
func (c *Client) UploadFile(filePath string) ([]Media, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("files", filepath.Base(filePath))
	if err != nil {
		return nil, fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize form: %w", err)
	}

	resp, err := c.do("POST", "/api/upload", &buf, writer.FormDataContentType())
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var media []Media
	if err := json.NewDecoder(resp.Body).Decode(&media); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return media, nil
}

// LinkImage attaches an uploaded media id as the record's primary image.
func (c *Client) LinkImage(documentID string, mediaID int) error {
	return c.UpdateProduct(documentID, map[string]interface{}{"image": mediaID})
}
