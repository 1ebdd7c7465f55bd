package miniflux

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

// CreateCategory creates a category with the given title
func (c *Client) CreateCategory(ctx context.Context, title string) (*Category, error) {
	var category Category
	if err := c.postJSON(ctx, "/v1/categories", categoryRequest{Title: title}, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

// UpdateCategory renames a category
func (c *Client) UpdateCategory(ctx context.Context, categoryID int64, title string) (*Category, error) {
	var category Category
	if err := c.putJSON(ctx, fmt.Sprintf("/v1/categories/%d", categoryID), categoryRequest{Title: title}, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

// DeleteCategory removes a category
func (c *Client) DeleteCategory(ctx context.Context, categoryID int64) (bool, error) {
	return c.expectStatus(ctx, http.MethodDelete, fmt.Sprintf("/v1/categories/%d", categoryID), NoBody(), http.StatusNoContent)
}

// MarkCategoryAsRead marks every entry of a category as read
func (c *Client) MarkCategoryAsRead(ctx context.Context, categoryID int64) (bool, error) {
	return c.expectStatus(ctx, http.MethodPut, fmt.Sprintf("/v1/categories/%d/mark-all-as-read", categoryID), NoBody(), http.StatusNoContent)
}

// Export returns the subscriptions as OPML text
func (c *Client) Export(ctx context.Context) (string, error) {
	return c.getText(ctx, "/v1/export")
}

// Import uploads an OPML document. It reports true only when the server answers 201.
func (c *Client) Import(ctx context.Context, opml io.Reader) (bool, error) {
	return c.expectStatus(ctx, http.MethodPost, "/v1/import", RawBody(opml), http.StatusCreated)
}
