package miniflux

import (
	"context"
	"fmt"
	"net/http"
)

// Me retrieves the authenticated user
func (c *Client) Me(ctx context.Context) (*User, error) {
	var user User
	if err := c.getJSON(ctx, "/v1/me", &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Users retrieves all users. Requires an admin account.
func (c *Client) Users(ctx context.Context) (Users, error) {
	var users Users
	if err := c.getJSON(ctx, "/v1/users", &users); err != nil {
		return nil, err
	}
	return users, nil
}

// UserByID retrieves a single user
func (c *Client) UserByID(ctx context.Context, userID int64) (*User, error) {
	var user User
	if err := c.getJSON(ctx, fmt.Sprintf("/v1/users/%d", userID), &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// CreateUser creates a user
func (c *Client) CreateUser(ctx context.Context, req *UserCreationRequest) (*User, error) {
	var user User
	if err := c.postJSON(ctx, "/v1/users", req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateUser modifies a user
func (c *Client) UpdateUser(ctx context.Context, userID int64, req *UserModificationRequest) (*User, error) {
	var user User
	if err := c.putJSON(ctx, fmt.Sprintf("/v1/users/%d", userID), req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// DeleteUser removes a user
func (c *Client) DeleteUser(ctx context.Context, userID int64) (bool, error) {
	return c.expectStatus(ctx, http.MethodDelete, fmt.Sprintf("/v1/users/%d", userID), NoBody(), http.StatusNoContent)
}

// MarkUserAsRead marks every entry of a user as read
func (c *Client) MarkUserAsRead(ctx context.Context, userID int64) (bool, error) {
	return c.expectStatus(ctx, http.MethodPut, fmt.Sprintf("/v1/users/%d/mark-all-as-read", userID), NoBody(), http.StatusNoContent)
}
