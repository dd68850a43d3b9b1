package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserPassword(t *testing.T) {
	user := &User{Email: "admin@lanchonete.com"}
	require.NoError(t, user.SetPassword("segredo123"))

	assert.NotEqual(t, "segredo123", user.PasswordHash, "password is never stored in plain text")
	assert.True(t, user.CheckPassword("segredo123"))
	assert.False(t, user.CheckPassword("errada"))
}

func TestUserIsAdmin(t *testing.T) {
	assert.True(t, (&User{Role: string(SuperAdmin)}).IsAdmin())
	assert.True(t, (&User{Role: string(Admin)}).IsAdmin())
	assert.False(t, (&User{Role: string(Client)}).IsAdmin())
	assert.False(t, (&User{}).IsAdmin())
}
