package constants

import "fmt"

// Requested role on a church membership.
const (
	RoleMember      = "member"
	RolePastor      = "pastor"
	RoleWorshipTeam = "worship_team"
	RoleAdmin       = "admin"
)

// Review lifecycle of a role request.
const (
	RoleStatusPending  = "pending"
	RoleStatusApproved = "approved"
	RoleStatusRejected = "rejected"
)

// Role error message templates
const (
	ErrOnlyPastorsCanAccess     = "Only pastors or admins may access %s."
	ErrOnlyAdminsCanAccess      = "Only admins may access %s."
	ErrOnlyWorshipTeamCanAccess = "Only worship team, pastors, or admins may access %s."
	ErrNotApproved              = "Your role request has not been approved yet."
)

func RoleErrorPastor(feature string) string {
	return fmt.Sprintf(ErrOnlyPastorsCanAccess, feature)
}

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorWorshipTeam(feature string) string {
	return fmt.Sprintf(ErrOnlyWorshipTeamCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleMember,
		RolePastor,
		RoleWorshipTeam,
		RoleAdmin,
	}

	PastorAndAbove = []string{
		RolePastor,
		RoleAdmin,
	}

	WorshipTeamAndAbove = []string{
		RoleWorshipTeam,
		RolePastor,
		RoleAdmin,
	}

	AdminOnly = []string{
		RoleAdmin,
	}
)

func IsValidRole(role string) bool {
	for _, r := range AllRoles {
		if r == role {
			return true
		}
	}
	return false
}
