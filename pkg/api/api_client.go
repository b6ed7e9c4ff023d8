package api

import (
	"breakfast4u-web/domain"
	"breakfast4u-web/entities"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

type (
	// Client wraps the remote breakfast4U REST API. Every call is a single
	// attempt; nothing is retried and failures surface as display-ready
	// error messages.
	Client interface {
		Register(ctx context.Context, req domain.RegisterRequest) (*domain.AuthResponse, error)
		Login(ctx context.Context, req domain.LoginRequest) (*domain.AuthResponse, error)
		Logout(ctx context.Context, token string) error
		CurrentUser(ctx context.Context, token string) (*entities.User, error)
		ListPublicMeals(ctx context.Context, filters url.Values) ([]entities.Meal, error)
		ListOwnerMeals(ctx context.Context, token string) ([]entities.Meal, error)
		CreateMeal(ctx context.Context, token string, req domain.MealRequest) (*entities.Meal, error)
		UpdateMeal(ctx context.Context, token string, mealID string, req domain.MealRequest) (*entities.Meal, error)
		DeleteMeal(ctx context.Context, token string, mealID string) error
		ListStores(ctx context.Context, filters url.Values) ([]entities.Store, error)
		SubmitContactForm(ctx context.Context, req domain.ContactRequest) error
	}

	apiClient struct {
		baseURL    string
		httpClient *http.Client
	}

	// errorBody is the remote API's failure shape: a human message plus an
	// optional list of field-level validation errors.
	errorBody struct {
		Message string `json:"message"`
		Errors  []struct {
			Msg string `json:"msg"`
		} `json:"errors"`
	}
)

func NewClient(baseURL string) Client {
	return &apiClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *apiClient) Register(ctx context.Context, req domain.RegisterRequest) (*domain.AuthResponse, error) {
	res := new(domain.AuthResponse)
	if err := c.do(ctx, http.MethodPost, "/auth/register", nil, "", req, domain.MessageFailedRegister, res); err != nil {
		return nil, err
	}
	return res, nil
}

func (c *apiClient) Login(ctx context.Context, req domain.LoginRequest) (*domain.AuthResponse, error) {
	res := new(domain.AuthResponse)
	if err := c.do(ctx, http.MethodPost, "/auth/login", nil, "", req, domain.MessageFailedLogin, res); err != nil {
		return nil, err
	}
	return res, nil
}

func (c *apiClient) Logout(ctx context.Context, token string) error {
	return c.do(ctx, http.MethodPost, "/auth/logout", nil, token, nil, domain.MessageFailedProcessRequest, nil)
}

func (c *apiClient) CurrentUser(ctx context.Context, token string) (*entities.User, error) {
	user := new(entities.User)
	if err := c.do(ctx, http.MethodGet, "/auth/me", nil, token, nil, domain.MessageFailedGetUser, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (c *apiClient) ListPublicMeals(ctx context.Context, filters url.Values) ([]entities.Meal, error) {
	var res struct {
		Data []entities.Meal `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, "/meals", filters, "", nil, domain.MessageFailedFetchMeals, &res); err != nil {
		return nil, err
	}
	if res.Data == nil {
		return []entities.Meal{}, nil
	}
	return res.Data, nil
}

func (c *apiClient) ListOwnerMeals(ctx context.Context, token string) ([]entities.Meal, error) {
	var res struct {
		Data []entities.Meal `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, "/meals", nil, token, nil, domain.MessageFailedFetchMeals, &res); err != nil {
		return nil, err
	}
	if res.Data == nil {
		return []entities.Meal{}, nil
	}
	return res.Data, nil
}

func (c *apiClient) CreateMeal(ctx context.Context, token string, req domain.MealRequest) (*entities.Meal, error) {
	meal := new(entities.Meal)
	if err := c.do(ctx, http.MethodPost, "/meals", nil, token, req, domain.MessageFailedCreateMeal, meal); err != nil {
		return nil, err
	}
	return meal, nil
}

func (c *apiClient) UpdateMeal(ctx context.Context, token string, mealID string, req domain.MealRequest) (*entities.Meal, error) {
	meal := new(entities.Meal)
	path := "/meals/" + url.PathEscape(mealID)
	if err := c.do(ctx, http.MethodPut, path, nil, token, req, domain.MessageFailedUpdateMeal, meal); err != nil {
		return nil, err
	}
	return meal, nil
}

func (c *apiClient) DeleteMeal(ctx context.Context, token string, mealID string) error {
	path := "/meals/" + url.PathEscape(mealID)
	return c.do(ctx, http.MethodDelete, path, nil, token, nil, domain.MessageFailedDeleteMeal, nil)
}

func (c *apiClient) ListStores(ctx context.Context, filters url.Values) ([]entities.Store, error) {
	var res struct {
		Data []entities.Store `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, "/stores", filters, "", nil, domain.MessageFailedFetchStores, &res); err != nil {
		return nil, err
	}
	if res.Data == nil {
		return []entities.Store{}, nil
	}
	return res.Data, nil
}

func (c *apiClient) SubmitContactForm(ctx context.Context, req domain.ContactRequest) error {
	return c.do(ctx, http.MethodPost, "/contact", nil, "", req, domain.MessageFailedContact, nil)
}

// do issues one request and decodes the JSON response into out when out is
// non-nil. An empty token sends the request unauthenticated; the server is
// responsible for rejecting it.
func (c *apiClient) do(ctx context.Context, method, path string, query url.Values, token string, body any, fallback string, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reqBody *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewReader(raw)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", fallback, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decodeError(resp.Body, fallback)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s: %w", fallback, err)
	}
	return nil
}

// decodeError builds the display message from a failure body: joined
// field-level messages when present, else the server message, else the
// per-operation fallback.
func decodeError(r io.Reader, fallback string) error {
	var body errorBody
	if err := json.NewDecoder(r).Decode(&body); err != nil {
		return errors.New(fallback)
	}

	if len(body.Errors) > 0 {
		msgs := make([]string, 0, len(body.Errors))
		for _, e := range body.Errors {
			msgs = append(msgs, e.Msg)
		}
		return errors.New(strings.Join(msgs, ", "))
	}
	if body.Message != "" {
		return errors.New(body.Message)
	}
	return errors.New(fallback)
}
