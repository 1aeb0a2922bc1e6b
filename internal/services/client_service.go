package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"github.com/MyDevVinicius/PainelAdminMinisterio/internal/auth"
	"github.com/MyDevVinicius/PainelAdminMinisterio/internal/metrics"
	"github.com/MyDevVinicius/PainelAdminMinisterio/internal/models"
)

// pgUniqueViolation is the Postgres error code raised by the UNIQUE
// constraint on clients.org_name. Mapping it to ErrDuplicate closes the
// check-then-insert race between concurrent registrations.
const pgUniqueViolation = "23505"

var (
	whitespaceRun = regexp.MustCompile(`\s+`)
	invalidIdent  = regexp.MustCompile(`[^A-Za-z0-9_]`)
)

// deriveSchemaName turns an organization name into a safe SQL identifier:
// lowercase, whitespace runs collapsed to underscores, everything outside
// [a-z0-9_] stripped. Pure function of its input.
func deriveSchemaName(orgName string) string {
	name := strings.ToLower(orgName)
	name = whitespaceRun.ReplaceAllString(name, "_")
	return invalidIdent.ReplaceAllString(name, "")
}

// ClientRegistry is the slice of the central registry the client service
// consumes. Implemented by repositories.ClientRepository.
type ClientRegistry interface {
	Create(ctx context.Context, c *models.Client, verificationCode string) error
	CountByOrgName(ctx context.Context, orgName string) (int, error)
	List(ctx context.Context) ([]*models.Client, error)
	Get(ctx context.Context, id int) (*models.Client, error)
	Update(ctx context.Context, id int, req *models.UpdateClientRequest, accessKeyHash string) error
	UpdateStatus(ctx context.Context, id int, status string) (int64, error)
	VerificationCodeByEmail(ctx context.Context, email string) (string, error)
	Delete(ctx context.Context, id int, schemaName string) error
}

// TenantStore is the tenant-schema surface the client service consumes.
// Implemented by repositories.TenantRepository.
type TenantStore interface {
	Provision(ctx context.Context, schema string, admin *models.TenantUser, grants []models.PermissionGrant) error
	UserSecretByEmail(ctx context.Context, schema, email string) (string, error)
	UpdateUserByEmail(ctx context.Context, schema string, name, newEmail, secretHash *string, matchEmail string) error
}

// ClientService implements client registration (tenant provisioning) and
// the registry CRUD around it.
type ClientService struct {
	Repo       ClientRegistry
	TenantRepo TenantStore
	Logger     *zap.Logger
}

func NewClientService(repo ClientRegistry, tenantRepo TenantStore, logger *zap.Logger) *ClientService {
	return &ClientService{Repo: repo, TenantRepo: tenantRepo, Logger: logger}
}

// RegistrationResult is returned to the handler after a successful
// registration. AccessCode is plaintext; only its hash is stored.
type RegistrationResult struct {
	ClientID   int
	AccessCode string
}

// RegisterClient creates the registry row and provisions the tenant schema.
// Any failure aborts the registration; schema objects created before the
// failure are not compensated.
func (s *ClientService) RegisterClient(ctx context.Context, req *models.RegisterClientRequest) (*RegistrationResult, error) {
	if req.ResponsibleName == "" || req.OrgName == "" || req.Email == "" ||
		req.TaxID == "" || req.Address == "" {
		return nil, fmt.Errorf("%w: all fields are required", ErrValidation)
	}

	schemaName := deriveSchemaName(req.OrgName)
	if schemaName == "" {
		// An org name made only of stripped characters would otherwise
		// insert a registry row and then fail at CREATE SCHEMA "".
		return nil, fmt.Errorf("%w: organization name must contain letters or digits", ErrValidation)
	}

	count, err := s.Repo.CountByOrgName(ctx, req.OrgName)
	if err != nil {
		return nil, fmt.Errorf("check duplicate org: %w", err)
	}
	if count > 0 {
		return nil, fmt.Errorf("%w: a client with this organization name is already registered", ErrDuplicate)
	}

	accessCode := auth.RandomCode(auth.CodeLength, auth.AccessCodeAlphabet)
	verificationCode := auth.RandomCode(auth.CodeLength, auth.VerificationCodeAlphabet)

	accessKeyHash, err := auth.HashSecret(accessCode)
	if err != nil {
		return nil, fmt.Errorf("hash access code: %w", err)
	}

	client := &models.Client{
		ResponsibleName: req.ResponsibleName,
		OrgName:         req.OrgName,
		Email:           req.Email,
		TaxID:           req.TaxID,
		Address:         req.Address,
		SchemaName:      schemaName,
		AccessKey:       accessKeyHash,
		Status:          models.ClientStatusPending,
	}

	if err := s.Repo.Create(ctx, client, verificationCode); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return nil, fmt.Errorf("%w: a client with this organization name is already registered", ErrDuplicate)
		}
		return nil, fmt.Errorf("insert client: %w", err)
	}

	// The responsible person becomes the tenant's first user and reuses
	// the access key hash as their secret.
	admin := &models.TenantUser{
		Name:   req.ResponsibleName,
		Email:  req.Email,
		Secret: accessKeyHash,
		Role:   models.TenantRoleFiscalCouncil,
	}

	if err := s.TenantRepo.Provision(ctx, schemaName, admin, models.DefaultPermissionCatalog); err != nil {
		return nil, fmt.Errorf("provision tenant %s: %w", schemaName, err)
	}

	metrics.TenantsProvisioned.Inc()
	return &RegistrationResult{ClientID: client.ID, AccessCode: accessCode}, nil
}

// ListClients returns every registry row with best-effort enrichment: the
// tenant user's hashed secret and the verification code. A failed lookup
// leaves that client's optional fields nil and never aborts the listing.
func (s *ClientService) ListClients(ctx context.Context) ([]*models.Client, error) {
	clients, err := s.Repo.List(ctx)
	if err != nil {
		return nil, err
	}

	for _, c := range clients {
		if c.SchemaName == "" {
			continue
		}

		if secret, err := s.TenantRepo.UserSecretByEmail(ctx, c.SchemaName, c.Email); err == nil {
			c.Secret = &secret
		} else if !errors.Is(err, pgx.ErrNoRows) {
			s.Logger.Warn("tenant secret lookup failed",
				zap.String("schema", c.SchemaName), zap.Error(err))
		}

		if code, err := s.Repo.VerificationCodeByEmail(ctx, c.Email); err == nil {
			c.VerificationCode = &code
		} else if !errors.Is(err, pgx.ErrNoRows) {
			s.Logger.Warn("verification code lookup failed",
				zap.String("schema", c.SchemaName), zap.Error(err))
		}
	}

	return clients, nil
}

// UpdateClient merges the supplied fields into the registry row and the
// tenant user row matched by the client's stored email. Returns the
// plaintext access key now in effect.
func (s *ClientService) UpdateClient(ctx context.Context, id int, req *models.UpdateClientRequest) (string, error) {
	if req.Empty() {
		return "", fmt.Errorf("%w: at least one field must be supplied", ErrValidation)
	}
	if req.Status != nil && *req.Status != models.ClientStatusActive && *req.Status != models.ClientStatusInactive {
		return "", fmt.Errorf("%w: status must be active or inactive", ErrValidation)
	}

	stored, err := s.Repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", fmt.Errorf("%w: client %d", ErrNotFound, id)
		}
		return "", err
	}

	// A fresh access key is issued when none is supplied; only its hash is
	// stored, the plaintext goes back to the caller once.
	accessKey := auth.RandomCode(auth.CodeLength, auth.AccessCodeAlphabet)
	if req.AccessKey != nil && *req.AccessKey != "" {
		accessKey = *req.AccessKey
	}
	accessKeyHash, err := auth.HashSecret(accessKey)
	if err != nil {
		return "", fmt.Errorf("hash access key: %w", err)
	}

	if err := s.Repo.Update(ctx, id, req, accessKeyHash); err != nil {
		return "", fmt.Errorf("update client: %w", err)
	}

	// Status is written separately, and only when it actually changes.
	if req.Status != nil && *req.Status != stored.Status {
		if _, err := s.Repo.UpdateStatus(ctx, id, *req.Status); err != nil {
			return "", fmt.Errorf("update status: %w", err)
		}
	}

	var secretHash *string
	if req.Secret != nil && *req.Secret != "" {
		h, err := auth.HashSecret(*req.Secret)
		if err != nil {
			return "", fmt.Errorf("hash secret: %w", err)
		}
		secretHash = &h
	}

	if stored.SchemaName != "" {
		if err := s.TenantRepo.UpdateUserByEmail(ctx, stored.SchemaName,
			req.ResponsibleName, req.Email, secretHash, stored.Email); err != nil {
			return "", fmt.Errorf("update tenant user: %w", err)
		}
	}

	return accessKey, nil
}

// SetClientStatus writes an explicit lifecycle transition; only active and
// inactive are reachable through this operation.
func (s *ClientService) SetClientStatus(ctx context.Context, id int, status string) error {
	if status != models.ClientStatusActive && status != models.ClientStatusInactive {
		return fmt.Errorf("%w: status must be active or inactive", ErrValidation)
	}

	affected, err := s.Repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("%w: client %d", ErrNotFound, id)
	}
	return nil
}

// DeleteClient drops the tenant schema and removes the registry row.
func (s *ClientService) DeleteClient(ctx context.Context, id int) error {
	stored, err := s.Repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("%w: client %d", ErrNotFound, id)
		}
		return err
	}

	if err := s.Repo.Delete(ctx, id, stored.SchemaName); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("%w: client %d", ErrNotFound, id)
		}
		return err
	}

	metrics.TenantsDeleted.Inc()
	return nil
}
