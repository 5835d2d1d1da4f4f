package owner

import (
	"net/http/httptest"
	"testing"

	"github.com/ahmetcoskunkizilkaya/workout-logger-backend/internal/models"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestSubjectRoundTrip(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		_, err := GetSubject(c)
		assert.ErrorIs(t, err, ErrNoSubject)

		SetSubject(c, "uid-123")
		subject, err := GetSubject(c)
		require.NoError(t, err)
		return c.SendString(subject)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestEmptySubjectIsRejected(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		SetSubject(c, "")
		_, err := GetSubject(c)
		assert.ErrorIs(t, err, ErrNoSubject)
		return nil
	})

	_, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
}

func TestForOwnerAddsFilter(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{DryRun: true})
	require.NoError(t, err)

	stmt := db.Scopes(ForOwner("uid-123")).Find(&[]models.Routine{}).Statement

	assert.Contains(t, stmt.SQL.String(), "owner_id = ?")
	assert.Equal(t, []interface{}{"uid-123"}, stmt.Vars)
}
