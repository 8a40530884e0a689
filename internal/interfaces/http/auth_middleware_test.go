package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcastro/licita-pro/internal/domain/entity"
	apphttp "github.com/jcastro/licita-pro/internal/interfaces/http"
	"github.com/jcastro/licita-pro/pkg/logger"
	pkgtoken "github.com/jcastro/licita-pro/pkg/token"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testIssuer    = "licita-pro-test"
	testExpMin    = 60
)

// fakeStore identity store en memoria. err simula un fallo de infraestructura.
type fakeStore struct {
	users map[string]*entity.User
	err   error
}

func (s *fakeStore) FindByID(_ context.Context, id string) (*entity.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.users[id], nil
}

func storeWith(users ...*entity.User) *fakeStore {
	s := &fakeStore{users: make(map[string]*entity.User)}
	for _, u := range users {
		s.users[u.ID] = u
	}
	return s
}

func activeUser(id, role string) *entity.User {
	return &entity.User{
		ID:        id,
		Email:     id + "@example.com",
		FirstName: "Ana",
		LastName:  "Prueba",
		Role:      role,
		IsActive:  true,
	}
}

// buildTestApp construye una app Fiber mínima con la cadena completa:
// AuthMiddleware -> RequireRoles -> handler dummy que devuelve 200.
func buildTestApp(store *fakeStore, allowedRoles ...string) *fiber.App {
	app := fiber.New()
	log := logger.New(logger.Config{Env: "test", Level: "error"})
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret, store, log),
		apphttp.RequireRoles(allowedRoles...),
		func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"ok":   true,
				"role": apphttp.GetRole(c),
			})
		},
	)
	return app
}

// tokenFor genera un JWT firmado para el subject indicado.
func tokenFor(t *testing.T, subject string) string {
	t.Helper()
	tok, err := pkgtoken.Generate(testJWTSecret, subject, testIssuer, testExpMin)
	require.NoError(t, err, "debe generarse un token válido")
	return "Bearer " + tok
}

// doRequest lanza GET /protected con el header Authorization indicado.
func doRequest(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// errorBody decodifica el cuerpo de error {success, error}.
func errorBody(t *testing.T, resp *http.Response) (bool, string) {
	t.Helper()
	var body struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body.Success, body.Error
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware — extracción y verificación del Bearer token
// ──────────────────────────────────────────────────────────────────────────────

// Sin header Authorization → 401 con el mensaje exacto.
func TestAuthMiddleware_SinHeader_Retorna401(t *testing.T) {
	app := buildTestApp(storeWith(activeUser("u1", entity.RoleAdmin)), entity.RoleAdmin)
	resp := doRequest(t, app, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	success, msg := errorBody(t, resp)
	assert.False(t, success)
	assert.Equal(t, "Not authorized to access this route", msg)
}

// Esquemas malformados: sin "Bearer", minúsculas, token vacío → 401, mismo mensaje.
func TestAuthMiddleware_EsquemaMalformado_Retorna401(t *testing.T) {
	store := storeWith(activeUser("u1", entity.RoleAdmin))
	headers := []string{
		"Token abc123",
		"bearer abc123", // el esquema es el literal "Bearer", case-sensitive
		"Bearer",
		"Bearer ",
		"abc123",
	}
	for _, h := range headers {
		app := buildTestApp(store, entity.RoleAdmin)
		resp := doRequest(t, app, h)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, "header %q", h)
		_, msg := errorBody(t, resp)
		assert.Equal(t, "Not authorized to access this route", msg, "header %q", h)
		resp.Body.Close()
	}
}

// Token corrupto → 401, indistinguible del token ausente.
func TestAuthMiddleware_TokenInvalido_Retorna401(t *testing.T) {
	app := buildTestApp(storeWith(activeUser("u1", entity.RoleAdmin)), entity.RoleAdmin)
	resp := doRequest(t, app, "Bearer token.invalido.aqui")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	_, msg := errorBody(t, resp)
	assert.Equal(t, "Not authorized to access this route", msg)
}

// Token bien formado pero expirado → 401 por la vía de token inválido, nunca 500.
func TestAuthMiddleware_TokenExpirado_Retorna401(t *testing.T) {
	store := storeWith(activeUser("u1", entity.RoleAdmin))
	app := buildTestApp(store, entity.RoleAdmin)

	expired, err := pkgtoken.Generate(testJWTSecret, "u1", testIssuer, -1)
	require.NoError(t, err)

	resp := doRequest(t, app, "Bearer "+expired)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	_, msg := errorBody(t, resp)
	assert.Equal(t, "Not authorized to access this route", msg)
}

// Token firmado con otro secret → 401.
func TestAuthMiddleware_SecretIncorrecto_Retorna401(t *testing.T) {
	app := buildTestApp(storeWith(activeUser("u1", entity.RoleAdmin)), entity.RoleAdmin)

	tok, err := pkgtoken.Generate("otro-secret-completamente-distinto", "u1", testIssuer, testExpMin)
	require.NoError(t, err)

	resp := doRequest(t, app, "Bearer "+tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware — resolución de identidad contra el store
// ──────────────────────────────────────────────────────────────────────────────

// Token válido pero el subject no existe en la base → 401 "User not found".
func TestAuthMiddleware_UsuarioInexistente_Retorna401(t *testing.T) {
	app := buildTestApp(storeWith(), entity.RoleAdmin)
	resp := doRequest(t, app, tokenFor(t, "no-existe"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	_, msg := errorBody(t, resp)
	assert.Equal(t, "User not found", msg)
}

// Usuario desactivado → 401 "Account is deactivated", aunque el rol alcanzara.
func TestAuthMiddleware_CuentaDesactivada_Retorna401(t *testing.T) {
	inactive := activeUser("u1", entity.RoleAdmin)
	inactive.IsActive = false
	app := buildTestApp(storeWith(inactive), entity.RoleAdmin)

	resp := doRequest(t, app, tokenFor(t, "u1"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	_, msg := errorBody(t, resp)
	assert.Equal(t, "Account is deactivated", msg)
}

// Fallo de infraestructura del store → 500 "Server error", nunca 401.
func TestAuthMiddleware_StoreCaido_Retorna500(t *testing.T) {
	store := &fakeStore{err: errors.New("pool agotado")}
	app := buildTestApp(store, entity.RoleAdmin)

	resp := doRequest(t, app, tokenFor(t, "u1"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	_, msg := errorBody(t, resp)
	assert.Equal(t, "Server error", msg)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequireRoles
// ──────────────────────────────────────────────────────────────────────────────

// El usuario tiene el rol requerido → 200 y el rol viene del store, no del token.
func TestRequireRoles_RolPermitido_Retorna200(t *testing.T) {
	app := buildTestApp(storeWith(activeUser("u1", entity.RoleTenderCreator)),
		entity.RoleAdmin, entity.RoleTenderCreator)

	resp := doRequest(t, app, tokenFor(t, "u1"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, entity.RoleTenderCreator, body["role"])
}

// Rol fuera del set → 403 con el rol real interpolado en el mensaje.
func TestRequireRoles_RolNoPermitido_Retorna403(t *testing.T) {
	app := buildTestApp(storeWith(activeUser("u1", entity.RoleVendor)), entity.RoleAdmin)

	resp := doRequest(t, app, tokenFor(t, "u1"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	_, msg := errorBody(t, resp)
	assert.Equal(t, "User role vendor is not authorized to access this route", msg)
}

// Sin jerarquía: admin NO pasa por una ruta solo-vendor.
func TestRequireRoles_AdminSinJerarquia_Retorna403(t *testing.T) {
	app := buildTestApp(storeWith(activeUser("u1", entity.RoleAdmin)), entity.RoleVendor)

	resp := doRequest(t, app, tokenFor(t, "u1"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	_, msg := errorBody(t, resp)
	assert.Contains(t, msg, "admin")
}

// RequireRoles sin AuthMiddleware antes → 401: la autenticación tiene
// precedencia sobre la autorización.
func TestRequireRoles_SinIdentidadEnContexto_Retorna401(t *testing.T) {
	app := fiber.New()
	app.Get("/solo-roles",
		apphttp.RequireRoles(entity.RoleAdmin),
		func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) },
	)

	req := httptest.NewRequest(http.MethodGet, "/solo-roles", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	_, msg := errorBody(t, resp)
	assert.Equal(t, "Not authorized to access this route", msg)
}

// Set de roles vacío es error de configuración: panic en el wiring.
func TestRequireRoles_SetVacio_Panic(t *testing.T) {
	assert.Panics(t, func() { apphttp.RequireRoles() })
}

// Rol desconocido en el wiring también es error de configuración.
func TestRequireRoles_RolDesconocido_Panic(t *testing.T) {
	assert.Panics(t, func() { apphttp.RequireRoles("superuser") })
}

// ──────────────────────────────────────────────────────────────────────────────
// Identidad en el contexto
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_AdjuntaIdentidad(t *testing.T) {
	user := activeUser("u9", entity.RoleVendor)
	store := storeWith(user)
	log := logger.New(logger.Config{Env: "test", Level: "error"})

	app := fiber.New()
	app.Get("/me", apphttp.AuthMiddleware(testJWTSecret, store, log), func(c *fiber.Ctx) error {
		u := apphttp.GetUser(c)
		require.NotNil(t, u)
		return c.JSON(fiber.Map{
			"id":    u.ID,
			"email": u.Email,
			"role":  u.Role,
		})
	})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", tokenFor(t, "u9"))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "u9", body["id"])
	assert.Equal(t, "u9@example.com", body["email"])
	assert.Equal(t, entity.RoleVendor, body["role"])
}
