package helper

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"gerejaku_backend/internals/constants"
)

func TestBuildUserChurchCapabilityFlags(t *testing.T) {
	churchID := uuid.New()
	churchName := "Grace Fellowship"

	cases := []struct {
		name          string
		role          string
		status        string
		isApproved    bool
		isPastor      bool
		isAdmin       bool
		isWorshipTeam bool
	}{
		{"approved member", constants.RoleMember, constants.RoleStatusApproved, true, false, false, false},
		{"approved pastor", constants.RolePastor, constants.RoleStatusApproved, true, true, false, false},
		{"approved admin", constants.RoleAdmin, constants.RoleStatusApproved, true, false, true, false},
		{"approved worship team", constants.RoleWorshipTeam, constants.RoleStatusApproved, true, false, false, true},
		{"pending pastor grants nothing", constants.RolePastor, constants.RoleStatusPending, false, false, false, false},
		{"pending admin grants nothing", constants.RoleAdmin, constants.RoleStatusPending, false, false, false, false},
		{"rejected worship team grants nothing", constants.RoleWorshipTeam, constants.RoleStatusRejected, false, false, false, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc := BuildUserChurch(tc.role, tc.status, &churchID, &churchName)

			assert.Equal(t, tc.isApproved, uc.IsApproved)
			assert.Equal(t, tc.isPastor, uc.IsPastor)
			assert.Equal(t, tc.isAdmin, uc.IsAdmin)
			assert.Equal(t, tc.isWorshipTeam, uc.IsWorshipTeam)
			if assert.NotNil(t, uc.Role) {
				assert.Equal(t, tc.role, *uc.Role)
			}
			if assert.NotNil(t, uc.ChurchID) {
				assert.Equal(t, churchID, *uc.ChurchID)
			}
		})
	}
}

func TestBuildUserChurchEmptyAssignment(t *testing.T) {
	uc := BuildUserChurch("", "", nil, nil)

	assert.Nil(t, uc.Role)
	assert.Nil(t, uc.Status)
	assert.Nil(t, uc.ChurchID)
	assert.False(t, uc.IsApproved)
	assert.False(t, uc.IsPastor)
	assert.False(t, uc.IsAdmin)
	assert.False(t, uc.IsWorshipTeam)
}

func TestResolveUserChurchFailsClosed(t *testing.T) {
	// nil handle and nil user both resolve to the zero snapshot
	uc := ResolveUserChurch(nil, uuid.New())
	assert.Equal(t, UserChurch{}, uc)

	uc = ResolveUserChurch(nil, uuid.Nil)
	assert.Equal(t, UserChurch{}, uc)
}

func TestHasAnyRole(t *testing.T) {
	churchID := uuid.New()
	name := "Grace Fellowship"

	pastor := BuildUserChurch(constants.RolePastor, constants.RoleStatusApproved, &churchID, &name)
	assert.True(t, pastor.HasAnyRole(constants.PastorAndAbove...))
	assert.True(t, pastor.HasAnyRole(constants.WorshipTeamAndAbove...))
	assert.False(t, pastor.HasAnyRole(constants.RoleAdmin))

	member := BuildUserChurch(constants.RoleMember, constants.RoleStatusApproved, &churchID, &name)
	assert.False(t, member.HasAnyRole(constants.PastorAndAbove...))

	// an unapproved pastor matches nothing, not even its own role
	pending := BuildUserChurch(constants.RolePastor, constants.RoleStatusPending, &churchID, &name)
	assert.False(t, pending.HasAnyRole(constants.RolePastor))
	assert.False(t, pending.HasAnyRole(constants.AllRoles...))

	assert.False(t, UserChurch{}.HasAnyRole(constants.AllRoles...))
}
