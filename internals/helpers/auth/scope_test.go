package helper

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/utils/tests"

	"gerejaku_backend/internals/constants"
)

func dryRunDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(tests.DummyDialector{}, &gorm.Config{DryRun: true})
	require.NoError(t, err)
	return db
}

func approvedUC(role string) UserChurch {
	id := uuid.New()
	name := "Grace Fellowship"
	return BuildUserChurch(role, constants.RoleStatusApproved, &id, &name)
}

func TestScopeChurchNonAdminForcedToOwnChurch(t *testing.T) {
	db := dryRunDB(t)
	uc := approvedUC(constants.RolePastor)

	// an explicit selection must not widen a non-admin query
	other := uuid.New()
	scoped, err := ScopeChurch(db.Table("sermons"), "sermon_church_id", uc, &other)
	require.NoError(t, err)

	stmt := scoped.Find(&[]map[string]interface{}{}).Statement
	assert.Contains(t, stmt.SQL.String(), "sermon_church_id = ")
	require.Len(t, stmt.Vars, 1)
	assert.Equal(t, *uc.ChurchID, stmt.Vars[0])
}

func TestScopeChurchNoChurchNeverQueries(t *testing.T) {
	db := dryRunDB(t)

	cases := []struct {
		name string
		uc   UserChurch
	}{
		{"zero snapshot", UserChurch{}},
		{"pending assignment", func() UserChurch {
			id := uuid.New()
			name := "Grace Fellowship"
			return BuildUserChurch(constants.RoleMember, constants.RoleStatusPending, &id, &name)
		}()},
		{"approved but no church row", BuildUserChurch(constants.RoleMember, constants.RoleStatusApproved, nil, nil)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			scoped, err := ScopeChurch(db.Table("sermons"), "sermon_church_id", tc.uc, nil)
			assert.ErrorIs(t, err, ErrMembersOnly)
			assert.Nil(t, scoped)
		})
	}
}

func TestScopeChurchAdmin(t *testing.T) {
	db := dryRunDB(t)
	admin := approvedUC(constants.RoleAdmin)

	// no selection: unfiltered across tenants
	scoped, err := ScopeChurch(db.Table("sermons"), "sermon_church_id", admin, nil)
	require.NoError(t, err)
	stmt := scoped.Find(&[]map[string]interface{}{}).Statement
	assert.NotContains(t, stmt.SQL.String(), "sermon_church_id")

	// explicit selection narrows to that church
	selected := uuid.New()
	scoped, err = ScopeChurch(db.Table("sermons"), "sermon_church_id", admin, &selected)
	require.NoError(t, err)
	stmt = scoped.Find(&[]map[string]interface{}{}).Statement
	assert.Contains(t, stmt.SQL.String(), "sermon_church_id = ")
	require.Len(t, stmt.Vars, 1)
	assert.Equal(t, selected, stmt.Vars[0])
}

func TestWriteChurchID(t *testing.T) {
	pastor := approvedUC(constants.RolePastor)
	admin := approvedUC(constants.RoleAdmin)
	selected := uuid.New()

	t.Run("admin must select explicitly", func(t *testing.T) {
		_, err := WriteChurchID(admin, nil)
		assert.ErrorIs(t, err, ErrChurchRequired)

		got, err := WriteChurchID(admin, &selected)
		require.NoError(t, err)
		assert.Equal(t, selected, got)
	})

	t.Run("non-admin writes into own church", func(t *testing.T) {
		got, err := WriteChurchID(pastor, nil)
		require.NoError(t, err)
		assert.Equal(t, *pastor.ChurchID, got)

		// passing the own church explicitly is fine
		got, err = WriteChurchID(pastor, pastor.ChurchID)
		require.NoError(t, err)
		assert.Equal(t, *pastor.ChurchID, got)
	})

	t.Run("non-admin cross-tenant write rejected", func(t *testing.T) {
		other := uuid.New()
		_, err := WriteChurchID(pastor, &other)
		assert.ErrorIs(t, err, ErrCrossTenantWrite)
	})

	t.Run("no church means no write", func(t *testing.T) {
		_, err := WriteChurchID(UserChurch{}, nil)
		assert.ErrorIs(t, err, ErrMembersOnly)
	})
}
