package models

import "time"

// Tenant user roles.
const (
	TenantRoleCooperator    = "cooperator"
	TenantRolePastor        = "pastor"
	TenantRoleTreasurer     = "treasurer"
	TenantRoleDeacon        = "deacon"
	TenantRoleFiscalCouncil = "fiscal_council"
)

// TenantUser is a row in <schema>.users. The responsible person is created
// at provisioning time with the fiscal_council role.
type TenantUser struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Secret    string    `json:"-"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// Permission is a (page, action) capability of a tenant user. The tuple
// (user_id, page_name, action_name) is unique within a tenant.
type Permission struct {
	ID         int       `json:"id"`
	UserID     int       `json:"userId"`
	PageName   string    `json:"pageName"`
	ActionName string    `json:"actionName"`
	Enabled    bool      `json:"enabled"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// PermissionGrant is one entry of the fixed catalog seeded for the
// responsible person at provisioning.
type PermissionGrant struct {
	PageName   string
	ActionName string
}

// DefaultPermissionCatalog is the fixed set of grants every newly
// provisioned tenant admin receives, all enabled.
var DefaultPermissionCatalog = []PermissionGrant{
	{PageName: "Dashboard", ActionName: "Access Dashboard"},
	{PageName: "Reports", ActionName: "Generate Report"},
	{PageName: "Users", ActionName: "Add User"},
	{PageName: "Users", ActionName: "Edit User"},
	{PageName: "Users", ActionName: "Remove User"},
	{PageName: "Members", ActionName: "Add Member"},
	{PageName: "Members", ActionName: "Delete Member"},
	{PageName: "Members", ActionName: "Edit Member"},
	{PageName: "Finance", ActionName: "Incomes"},
	{PageName: "Finance", ActionName: "Expenses"},
	{PageName: "Finance", ActionName: "Edit Accounts"},
	{PageName: "Finance", ActionName: "Delete Accounts"},
	{PageName: "Permissions", ActionName: "View Permissions"},
	{PageName: "Permissions", ActionName: "Change Permissions"},
}
