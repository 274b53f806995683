package middleware

import (
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salesdesk/models"
	"salesdesk/store"
)

type fakeSessionAPI struct {
	session      models.Session
	refreshCount int
}

func (f *fakeSessionAPI) Login(creds models.Credentials) (models.Session, error) {
	return f.session, nil
}

func (f *fakeSessionAPI) RefreshSession(refreshToken string) (models.Session, error) {
	f.refreshCount++
	return f.session, nil
}

func (f *fakeSessionAPI) Logout(refreshToken string) error { return nil }

func signedSessionToken(t *testing.T, expiresIn time.Duration) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiresIn)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

func sessionApp(t *testing.T, accessToken string) (*fiber.App, *fakeSessionAPI) {
	t.Helper()
	fake := &fakeSessionAPI{session: models.Session{
		AccessToken:  accessToken,
		RefreshToken: "refresh-1",
		User:         models.User{ID: "usr-1", CompanyID: "co-1", Role: "member", IsActive: true},
	}}
	sessions := store.NewSessionStore(log.New(os.Stdout, "TEST: ", log.LstdFlags))
	sessions.AttachAPI(fake)
	require.NoError(t, sessions.Login(models.Credentials{Email: "dana@acme.test", Password: "password1"}))

	app := fiber.New()
	app.Get("/guarded", RequireSession(sessions), func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	return app, fake
}

func TestRequireSessionRejectsExpiredTokenWithoutRefreshing(t *testing.T) {
	app, fake := sessionApp(t, signedSessionToken(t, -time.Minute))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/guarded", nil))
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, 0, fake.refreshCount, "the refresh exchange is the caller's to run")
}

func TestRequireSessionFlagsExpiringTokenButServes(t *testing.T) {
	app, fake := sessionApp(t, signedSessionToken(t, 90*time.Second))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/guarded", nil))
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "1", resp.Header.Get(SessionExpiringHeader))
	assert.Equal(t, 0, fake.refreshCount)
}

func TestRequireSessionPassesFreshToken(t *testing.T) {
	app, _ := sessionApp(t, signedSessionToken(t, time.Hour))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/guarded", nil))
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Empty(t, resp.Header.Get(SessionExpiringHeader))
}
