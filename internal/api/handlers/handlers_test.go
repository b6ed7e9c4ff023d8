package handlers_test

import (
	"breakfast4u-web/domain"
	"breakfast4u-web/entities"
	"breakfast4u-web/internal/api/handlers"
	"breakfast4u-web/internal/api/routes"
	"breakfast4u-web/internal/middleware"
	"breakfast4u-web/pkg/owner"
	"breakfast4u-web/pkg/session"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCookie = "b4u_session"

type stubClient struct {
	meals   []entities.Meal
	stores  []entities.Store
	listErr error
}

func (s *stubClient) Register(ctx context.Context, req domain.RegisterRequest) (*domain.AuthResponse, error) {
	return &domain.AuthResponse{Token: "tok", User: entities.User{ID: "u1", Name: req.Name, Role: req.Role}}, nil
}

func (s *stubClient) Login(ctx context.Context, req domain.LoginRequest) (*domain.AuthResponse, error) {
	return &domain.AuthResponse{Token: "tok", User: entities.User{ID: "u1", Role: domain.RoleOwner}}, nil
}

func (s *stubClient) Logout(ctx context.Context, token string) error { return nil }

func (s *stubClient) CurrentUser(ctx context.Context, token string) (*entities.User, error) {
	return &entities.User{ID: "u1", Role: domain.RoleOwner}, nil
}

func (s *stubClient) ListPublicMeals(ctx context.Context, filters url.Values) ([]entities.Meal, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.meals, nil
}

func (s *stubClient) ListOwnerMeals(ctx context.Context, token string) ([]entities.Meal, error) {
	return s.meals, nil
}

func (s *stubClient) CreateMeal(ctx context.Context, token string, req domain.MealRequest) (*entities.Meal, error) {
	return &entities.Meal{ID: "new"}, nil
}

func (s *stubClient) UpdateMeal(ctx context.Context, token string, mealID string, req domain.MealRequest) (*entities.Meal, error) {
	return &entities.Meal{ID: mealID}, nil
}

func (s *stubClient) DeleteMeal(ctx context.Context, token string, mealID string) error { return nil }

func (s *stubClient) ListStores(ctx context.Context, filters url.Values) ([]entities.Store, error) {
	return s.stores, nil
}

func (s *stubClient) SubmitContactForm(ctx context.Context, req domain.ContactRequest) error {
	return nil
}

func newTestApp(t *testing.T, client *stubClient) (*fiber.App, session.Manager) {
	t.Helper()

	app := fiber.New()
	sessions := session.NewManager("")
	validate := validator.New()

	cfg := routes.Config{
		App:              app,
		AuthHandler:      handlers.NewAuthHandler(client, sessions, validate, testCookie),
		MenuHandler:      handlers.NewMenuHandler(client),
		StoreHandler:     handlers.NewStoreHandler(client),
		ContactHandler:   handlers.NewContactHandler(client, validate),
		DashboardHandler: handlers.NewDashboardHandler(owner.NewMealService(client, validate)),
		Middleware:       middleware.NewMiddleware(),
		Sessions:         sessions,
		SessionCookie:    testCookie,
	}
	cfg.Setup()

	return app, sessions
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func TestGetMenu_FiltersAndSorts(t *testing.T) {
	client := &stubClient{meals: []entities.Meal{
		{ID: "m1", Name: "Masala Dosa", Description: "crepe", Category: "South Indian", TimeOfDay: "morning", Rating: 4.5},
		{ID: "m2", Name: "Pancake", Description: "stack", Category: "Pancakes", TimeOfDay: "morning", Rating: 4.8},
	}}
	app, _ := newTestApp(t, client)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/menu?q=dosa", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	data := body["data"].(map[string]any)
	items := data["items"].([]any)

	require.Len(t, items, 1)
	assert.Equal(t, "Masala Dosa", items[0].(map[string]any)["name"])
	assert.Equal(t, float64(2), data["total"])
	assert.Equal(t, "ready", data["state"])
}

func TestGetMenu_RemoteFailureStillRenders(t *testing.T) {
	client := &stubClient{listErr: assertableError(domain.MessageFailedFetchMeals)}
	app, _ := newTestApp(t, client)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/menu", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode, "a failed fetch leaves the view usable")

	data := decodeBody(t, resp)["data"].(map[string]any)
	assert.Equal(t, "failed", data["state"])
	assert.Equal(t, domain.MessageFailedFetchMeals, data["error"])
}

func TestGetStores_OpenNowFilter(t *testing.T) {
	client := &stubClient{stores: []entities.Store{
		{ID: "s1", Name: "Anna's Kitchen", IsActive: true},
		{ID: "s2", Name: "Pav Corner", IsActive: false},
	}}
	app, _ := newTestApp(t, client)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/stores?open=true", nil))
	require.NoError(t, err)

	data := decodeBody(t, resp)["data"].(map[string]any)
	items := data["items"].([]any)
	require.Len(t, items, 1)
	assert.Equal(t, "Anna's Kitchen", items[0].(map[string]any)["name"])
}

func TestDashboard_MissingSessionRedirectsToSignIn(t *testing.T) {
	app, _ := newTestApp(t, &stubClient{})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/dashboard/meals", nil))
	require.NoError(t, err)

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "/signin", resp.Header.Get("X-Redirect"))
}

func TestDashboard_CustomerRoleRejected(t *testing.T) {
	app, sessions := newTestApp(t, &stubClient{})
	sess, err := sessions.Create("tok", entities.User{ID: "u1", Role: domain.RoleCustomer})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard/meals", nil)
	req.AddCookie(&http.Cookie{Name: testCookie, Value: sess.ID})

	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "/", resp.Header.Get("X-Redirect"))
}

func TestDashboard_CreateMealValidationErrors(t *testing.T) {
	app, sessions := newTestApp(t, &stubClient{})
	sess, err := sessions.Create("tok", entities.User{ID: "u1", Role: domain.RoleOwner})
	require.NoError(t, err)

	payload := `{"name":"Masala Dosa","description":"crepe","image":"https://example.com/x.jpg","category":"South Indian"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/dashboard/meals", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(&http.Cookie{Name: testCookie, Value: sess.ID})

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body := decodeBody(t, resp)
	fields := body["fields"].(map[string]any)
	assert.Contains(t, fields, "price")
}

func TestDashboard_DeleteWithoutConfirm(t *testing.T) {
	app, sessions := newTestApp(t, &stubClient{meals: []entities.Meal{{ID: "m1"}}})
	sess, err := sessions.Create("tok", entities.User{ID: "u1", Role: domain.RoleOwner})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/dashboard/meals/m1", nil)
	req.AddCookie(&http.Cookie{Name: testCookie, Value: sess.ID})

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestSignIn_SetsSessionCookie(t *testing.T) {
	app, _ := newTestApp(t, &stubClient{})

	payload := `{"email":"asha@example.com","password":"secret"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/signin", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var found bool
	for _, c := range resp.Cookies() {
		if c.Name == testCookie && c.Value != "" {
			found = true
		}
	}
	assert.True(t, found, "sign-in must set the session cookie")
}

type assertableError string

func (e assertableError) Error() string { return string(e) }
