// Package catalogsource loads the product catalog from its external
// sources: a shop JSON document (file or HTTP) or an Excel workbook.
package catalogsource

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/nicolesequeira/simpleshop/models"
)

// ErrLoadFailed wraps every transport or parse failure so callers can show
// a retry affordance without caring which step broke.
var ErrLoadFailed = errors.New("catalogsource: load failed")

// FromJSON decodes a product array.
func FromJSON(r io.Reader) ([]models.Product, error) {
	var products []models.Product
	if err := json.NewDecoder(r).Decode(&products); err != nil {
		return nil, fmt.Errorf("%w: parse: %v", ErrLoadFailed, err)
	}
	return products, nil
}

// FromFile reads the shop document from disk.
func FromFile(path string) ([]models.Product, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", ErrLoadFailed, path, err)
	}
	defer f.Close()
	return FromJSON(f)
}

// Fetch retrieves the shop document over HTTP. One attempt, no retries;
// a failed load is retried only by reloading the page.
func Fetch(ctx context.Context, url string) ([]models.Product, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadFailed, err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: fetch %s: %v", ErrLoadFailed, url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: fetch %s: status %d", ErrLoadFailed, url, resp.StatusCode)
	}
	return FromJSON(resp.Body)
}
