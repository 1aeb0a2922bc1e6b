package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPermissionCatalog(t *testing.T) {
	require.Len(t, DefaultPermissionCatalog, 14)

	seen := make(map[[2]string]bool)
	for _, g := range DefaultPermissionCatalog {
		assert.NotEmpty(t, g.PageName)
		assert.NotEmpty(t, g.ActionName)

		key := [2]string{g.PageName, g.ActionName}
		assert.False(t, seen[key], "duplicate grant %v", key)
		seen[key] = true
	}
}

func TestValidAdminRole(t *testing.T) {
	assert.True(t, ValidAdminRole(AdminRoleAdmin))
	assert.True(t, ValidAdminRole(AdminRoleManager))
	assert.False(t, ValidAdminRole("superuser"))
	assert.False(t, ValidAdminRole(""))
}

func TestUpdateClientRequestEmpty(t *testing.T) {
	assert.True(t, (&UpdateClientRequest{}).Empty())

	email := "new@org.dev"
	assert.False(t, (&UpdateClientRequest{Email: &email}).Empty())

	status := ClientStatusActive
	assert.False(t, (&UpdateClientRequest{Status: &status}).Empty())
}
