package services

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/MyDevVinicius/PainelAdminMinisterio/internal/auth"
	"github.com/MyDevVinicius/PainelAdminMinisterio/internal/models"
)

func TestDeriveSchemaName(t *testing.T) {
	cases := []struct {
		org  string
		want string
	}{
		{"Igreja Central", "igreja_central"},
		{"Igreja   Central", "igreja_central"},
		{"São Paulo Church!", "so_paulo_church"},
		{"ALLCAPS", "allcaps"},
		{"already_safe_123", "already_safe_123"},
		{"tabs\tand\nnewlines", "tabs_and_newlines"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, deriveSchemaName(tc.org), "org %q", tc.org)
	}
}

func TestDeriveSchemaNameIsPureAndSafe(t *testing.T) {
	safe := regexp.MustCompile(`^[a-z0-9_]*$`)

	inputs := []string{"Igreja Central", "weird !@# name", "", "A B C 123"}
	for _, in := range inputs {
		first := deriveSchemaName(in)
		second := deriveSchemaName(in)
		require.Equal(t, first, second, "must be deterministic for %q", in)
		assert.True(t, safe.MatchString(first), "%q contains unsafe characters", first)
	}
}

func TestRegisterClientRequiresAllFields(t *testing.T) {
	s := NewClientService(nil, nil, zap.NewNop())

	reqs := []*models.RegisterClientRequest{
		{},
		{ResponsibleName: "John", OrgName: "Org", Email: "a@b.c", TaxID: "123"},
		{OrgName: "Org", Email: "a@b.c", TaxID: "123", Address: "Street 1"},
	}

	for _, req := range reqs {
		_, err := s.RegisterClient(context.Background(), req)
		require.ErrorIs(t, err, ErrValidation)
	}
}

func TestUpdateClientRejectsEmptyAndBadStatus(t *testing.T) {
	s := NewClientService(nil, nil, zap.NewNop())

	_, err := s.UpdateClient(context.Background(), 1, &models.UpdateClientRequest{})
	require.ErrorIs(t, err, ErrValidation)

	bad := "pending"
	_, err = s.UpdateClient(context.Background(), 1, &models.UpdateClientRequest{Status: &bad})
	require.ErrorIs(t, err, ErrValidation)
}

func TestSetClientStatusRejectsInvalidStatus(t *testing.T) {
	s := NewClientService(nil, nil, zap.NewNop())

	for _, status := range []string{"", "pending", "deleted", "Active"} {
		err := s.SetClientStatus(context.Background(), 1, status)
		require.ErrorIs(t, err, ErrValidation, "status %q", status)
	}
}

// fakeRegistry implements ClientRegistry in memory, recording what the
// service asked of it.
type fakeRegistry struct {
	countByOrg int
	countErr   error
	createErr  error
	clients    []*models.Client
	listErr    error
	codeByMail map[string]string
	codeErr    map[string]error
	getClient  *models.Client
	getErr     error
	statusRows int64
	statusErr  error

	created       *models.Client
	deletedID     int
	deletedSchema string
	deleteErr     error
	deleteCalled  bool
	statusWritten []string
}

func (f *fakeRegistry) Create(_ context.Context, c *models.Client, _ string) error {
	if f.createErr != nil {
		return f.createErr
	}
	c.ID = 42
	f.created = c
	return nil
}

func (f *fakeRegistry) CountByOrgName(context.Context, string) (int, error) {
	return f.countByOrg, f.countErr
}

func (f *fakeRegistry) List(context.Context) ([]*models.Client, error) {
	return f.clients, f.listErr
}

func (f *fakeRegistry) Get(context.Context, int) (*models.Client, error) {
	return f.getClient, f.getErr
}

func (f *fakeRegistry) Update(context.Context, int, *models.UpdateClientRequest, string) error {
	return nil
}

func (f *fakeRegistry) UpdateStatus(_ context.Context, _ int, status string) (int64, error) {
	f.statusWritten = append(f.statusWritten, status)
	return f.statusRows, f.statusErr
}

func (f *fakeRegistry) VerificationCodeByEmail(_ context.Context, email string) (string, error) {
	if err := f.codeErr[email]; err != nil {
		return "", err
	}
	return f.codeByMail[email], nil
}

func (f *fakeRegistry) Delete(_ context.Context, id int, schemaName string) error {
	f.deleteCalled = true
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deletedID = id
	f.deletedSchema = schemaName
	return nil
}

// fakeTenantStore implements TenantStore in memory.
type fakeTenantStore struct {
	provisionErr error
	secretByKey  map[string]string // "schema/email"
	secretErr    map[string]error

	provisionedSchema string
	provisionedAdmin  *models.TenantUser
	provisionedGrants []models.PermissionGrant
}

func (f *fakeTenantStore) Provision(_ context.Context, schema string, admin *models.TenantUser, grants []models.PermissionGrant) error {
	if f.provisionErr != nil {
		return f.provisionErr
	}
	f.provisionedSchema = schema
	f.provisionedAdmin = admin
	f.provisionedGrants = grants
	return nil
}

func (f *fakeTenantStore) UserSecretByEmail(_ context.Context, schema, email string) (string, error) {
	key := schema + "/" + email
	if err := f.secretErr[key]; err != nil {
		return "", err
	}
	return f.secretByKey[key], nil
}

func (f *fakeTenantStore) UpdateUserByEmail(context.Context, string, *string, *string, *string, string) error {
	return nil
}

func validRegistration() *models.RegisterClientRequest {
	return &models.RegisterClientRequest{
		ResponsibleName: "Maria Souza",
		OrgName:         "Igreja Central",
		Email:           "maria@igreja.example",
		TaxID:           "12345678000199",
		Address:         "Rua das Flores 10",
	}
}

func TestRegisterClientProvisionsTenant(t *testing.T) {
	registry := &fakeRegistry{}
	tenants := &fakeTenantStore{}
	s := NewClientService(registry, tenants, zap.NewNop())

	res, err := s.RegisterClient(context.Background(), validRegistration())
	require.NoError(t, err)
	require.NotNil(t, registry.created)

	assert.Equal(t, 42, res.ClientID)
	assert.Len(t, res.AccessCode, auth.CodeLength)

	created := registry.created
	assert.Equal(t, "igreja_central", created.SchemaName)
	assert.Equal(t, models.ClientStatusPending, created.Status)
	assert.True(t, auth.VerifySecret(created.AccessKey, res.AccessCode),
		"stored access key must be the bcrypt hash of the returned code")

	assert.Equal(t, "igreja_central", tenants.provisionedSchema)
	require.NotNil(t, tenants.provisionedAdmin)
	assert.Equal(t, models.TenantRoleFiscalCouncil, tenants.provisionedAdmin.Role)
	assert.Equal(t, created.AccessKey, tenants.provisionedAdmin.Secret)
	assert.Len(t, tenants.provisionedGrants, len(models.DefaultPermissionCatalog))
}

func TestRegisterClientDuplicateOrgName(t *testing.T) {
	registry := &fakeRegistry{countByOrg: 1}
	tenants := &fakeTenantStore{}
	s := NewClientService(registry, tenants, zap.NewNop())

	_, err := s.RegisterClient(context.Background(), validRegistration())
	require.ErrorIs(t, err, ErrDuplicate)
	assert.Nil(t, registry.created, "row must not be inserted for a duplicate")
	assert.Empty(t, tenants.provisionedSchema, "schema must not be provisioned for a duplicate")
}

func TestRegisterClientMapsUniqueViolation(t *testing.T) {
	// A concurrent registration can slip past the count check and hit the
	// UNIQUE constraint on org_name instead.
	registry := &fakeRegistry{createErr: &pgconn.PgError{Code: pgUniqueViolation}}
	s := NewClientService(registry, &fakeTenantStore{}, zap.NewNop())

	_, err := s.RegisterClient(context.Background(), validRegistration())
	require.ErrorIs(t, err, ErrDuplicate)
}

func TestRegisterClientRejectsUnderivableOrgName(t *testing.T) {
	registry := &fakeRegistry{}
	s := NewClientService(registry, &fakeTenantStore{}, zap.NewNop())

	req := validRegistration()
	req.OrgName = "!!! ??? ***"

	_, err := s.RegisterClient(context.Background(), req)
	require.ErrorIs(t, err, ErrValidation)
	assert.Nil(t, registry.created, "row must not be inserted when no schema name can be derived")
}

func TestListClientsDegradesPerItem(t *testing.T) {
	clients := []*models.Client{
		{ID: 1, OrgName: "Alpha", Email: "alpha@x", SchemaName: "alpha"},
		{ID: 2, OrgName: "Beta", Email: "beta@x", SchemaName: "beta"},
		{ID: 3, OrgName: "Gamma", Email: "gamma@x", SchemaName: "gamma"},
	}
	registry := &fakeRegistry{
		clients: clients,
		codeByMail: map[string]string{
			"alpha@x": "CODEALPHA",
			"gamma@x": "CODEGAMMA",
		},
		codeErr: map[string]error{"beta@x": errors.New("connection reset")},
	}
	tenants := &fakeTenantStore{
		secretByKey: map[string]string{
			"alpha/alpha@x": "hash-alpha",
			"gamma/gamma@x": "hash-gamma",
		},
		secretErr: map[string]error{"beta/beta@x": errors.New("schema unreachable")},
	}
	s := NewClientService(registry, tenants, zap.NewNop())

	got, err := s.ListClients(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 3)

	require.NotNil(t, got[0].Secret)
	assert.Equal(t, "hash-alpha", *got[0].Secret)
	require.NotNil(t, got[0].VerificationCode)
	assert.Equal(t, "CODEALPHA", *got[0].VerificationCode)

	assert.Nil(t, got[1].Secret, "failed lookup leaves the field nil")
	assert.Nil(t, got[1].VerificationCode, "failed lookup leaves the field nil")

	require.NotNil(t, got[2].Secret)
	assert.Equal(t, "hash-gamma", *got[2].Secret)
	require.NotNil(t, got[2].VerificationCode)
	assert.Equal(t, "CODEGAMMA", *got[2].VerificationCode)
}

func TestDeleteClientDropsSchemaWithRow(t *testing.T) {
	registry := &fakeRegistry{
		getClient: &models.Client{ID: 7, SchemaName: "igreja_central"},
	}
	s := NewClientService(registry, &fakeTenantStore{}, zap.NewNop())

	require.NoError(t, s.DeleteClient(context.Background(), 7))
	assert.Equal(t, 7, registry.deletedID)
	assert.Equal(t, "igreja_central", registry.deletedSchema)
}

func TestDeleteClientUnknownID(t *testing.T) {
	registry := &fakeRegistry{getErr: pgx.ErrNoRows}
	s := NewClientService(registry, &fakeTenantStore{}, zap.NewNop())

	err := s.DeleteClient(context.Background(), 999)
	require.ErrorIs(t, err, ErrNotFound)
	assert.False(t, registry.deleteCalled, "delete must not run for an unknown client")
}

func TestDeleteClientRaceWithConcurrentDelete(t *testing.T) {
	registry := &fakeRegistry{
		getClient: &models.Client{ID: 7, SchemaName: "igreja_central"},
		deleteErr: pgx.ErrNoRows,
	}
	s := NewClientService(registry, &fakeTenantStore{}, zap.NewNop())

	err := s.DeleteClient(context.Background(), 7)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestSetClientStatusUnknownID(t *testing.T) {
	registry := &fakeRegistry{statusRows: 0}
	s := NewClientService(registry, &fakeTenantStore{}, zap.NewNop())

	err := s.SetClientStatus(context.Background(), 999, models.ClientStatusActive)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateClientWritesStatusOnlyOnChange(t *testing.T) {
	registry := &fakeRegistry{
		getClient:  &models.Client{ID: 5, Email: "a@b.c", Status: models.ClientStatusActive},
		statusRows: 1,
	}
	s := NewClientService(registry, &fakeTenantStore{}, zap.NewNop())

	same := models.ClientStatusActive
	_, err := s.UpdateClient(context.Background(), 5, &models.UpdateClientRequest{Status: &same})
	require.NoError(t, err)
	assert.Empty(t, registry.statusWritten, "unchanged status must not be rewritten")

	changed := models.ClientStatusInactive
	_, err = s.UpdateClient(context.Background(), 5, &models.UpdateClientRequest{Status: &changed})
	require.NoError(t, err)
	assert.Equal(t, []string{models.ClientStatusInactive}, registry.statusWritten)
}
