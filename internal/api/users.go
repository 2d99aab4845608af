package api

import (
	"context"
	"net/http"
)

type LoginResult struct {
	Success      bool   `json:"success"`
	RestaurantID string `json:"restaurantId"`
}

// Login authenticates a user. On success the caller persists the returned
// restaurant id; there is no token lifecycle yet.
func (c *Client) Login(ctx context.Context, email, password string) (LoginResult, error) {
	body := map[string]string{"email": email, "password": password}
	var out LoginResult
	err := c.doJSON(ctx, http.MethodPost, "/api/Users/login", "", body, &out)
	return out, err
}

// RegisterUser creates a user account under an existing restaurant.
func (c *Client) RegisterUser(ctx context.Context, restaurantID, email, password string) error {
	body := map[string]string{
		"restaurantId": restaurantID,
		"email":        email,
		"password":     password,
	}
	return c.doJSON(ctx, http.MethodPost, "/api/Users", "", body, nil)
}

type RegisteredRestaurant struct {
	ID string `json:"id"`
}

// RegisterRestaurant creates a restaurant and returns its id.
func (c *Client) RegisterRestaurant(ctx context.Context, name, phone, address string) (RegisteredRestaurant, error) {
	body := map[string]string{"name": name, "phone": phone, "address": address}
	var out RegisteredRestaurant
	err := c.doJSON(ctx, http.MethodPost, "/api/Restaurants", "", body, &out)
	return out, err
}
