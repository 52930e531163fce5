package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"tesotunes/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRoleContext(roles any) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if roles != nil {
		c.Set(ContextKeyRoles, roles)
	}

	return c, rec
}

func TestRequireAnyRole_PassesWithOneMatchingRole(t *testing.T) {
	m := &AuthMiddleware{}
	called := false
	next := func(c echo.Context) error {
		called = true

		return c.NoContent(http.StatusOK)
	}

	c, rec := newRoleContext([]string{entity.RoleArtist.String()})

	err := m.RequireAnyRole(entity.RoleArtist.String(), entity.RoleAdmin.String())(next)(c)

	require.NoError(t, err)
	assert.True(t, called)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireAnyRole_RejectsWithoutAnyMatchingRole(t *testing.T) {
	m := &AuthMiddleware{}
	next := func(c echo.Context) error {
		t.Fatal("next handler must not run")

		return nil
	}

	c, rec := newRoleContext([]string{entity.RoleMember.String()})

	err := m.RequireAnyRole(entity.RoleArtist.String(), entity.RoleAdmin.String())(next)(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequireAnyRole_RejectsWhenRolesMissing(t *testing.T) {
	m := &AuthMiddleware{}
	next := func(c echo.Context) error {
		t.Fatal("next handler must not run")

		return nil
	}

	c, rec := newRoleContext(nil)

	err := m.RequireAnyRole(entity.RoleAdmin.String())(next)(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestHasRole(t *testing.T) {
	c, _ := newRoleContext([]string{entity.RoleMember.String(), entity.RoleArtist.String()})

	assert.True(t, HasRole(c, entity.RoleMember.String()))
	assert.False(t, HasRole(c, entity.RoleAdmin.String()))

	empty, _ := newRoleContext(nil)
	assert.False(t, HasRole(empty, entity.RoleAdmin.String()))
}

func TestUserID_MissingContextReturnsNil(t *testing.T) {
	c, _ := newRoleContext(nil)

	assert.Equal(t, uuid.Nil, UserID(c))
}
