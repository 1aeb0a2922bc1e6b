package repositories

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTenantTablesOrderAndIdempotence(t *testing.T) {
	stmts := tenantTables("igreja_central")
	require.Len(t, stmts, 5)

	// Dependency order: users before permissions and the financial tables
	wantOrder := []string{
		`"igreja_central"."users"`,
		`"igreja_central"."permissions"`,
		`"igreja_central"."members"`,
		`"igreja_central"."income"`,
		`"igreja_central"."expense"`,
	}
	for i, stmt := range stmts {
		assert.True(t, strings.HasPrefix(strings.TrimSpace(stmt), "CREATE TABLE IF NOT EXISTS"),
			"statement %d must be idempotent", i)
		assert.Contains(t, stmt, wantOrder[i])
	}

	// income references members (nullable, SET NULL) and users (CASCADE)
	income := stmts[3]
	assert.Contains(t, income, `REFERENCES "igreja_central"."members"(id) ON DELETE SET NULL`)
	assert.Contains(t, income, `REFERENCES "igreja_central"."users"(id) ON DELETE CASCADE`)

	// permissions enforce one grant per (user, page, action)
	assert.Contains(t, stmts[1], "UNIQUE (user_id, page_name, action_name)")
}

func TestIdentQuotesIdentifiers(t *testing.T) {
	assert.Equal(t, `"tenant"."users"`, ident("tenant", "users"))
	// Embedded quotes are escaped rather than breaking out of the identifier
	assert.Equal(t, `"evil""name"`, ident(`evil"name`))
}
