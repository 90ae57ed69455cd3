package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/utils/tests"

	"gerejaku_backend/internals/constants"
)

// dryRunDialector quotes identifiers with double quotes, matching the
// postgres dialect the app runs against, while keeping the dummy
// dialector's `?` placeholders.
type dryRunDialector struct{ tests.DummyDialector }

func (dryRunDialector) QuoteTo(writer clause.Writer, str string) {
	writer.WriteByte('"')
	writer.WriteString(str)
	writer.WriteByte('"')
}

func dryRunDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(dryRunDialector{}, &gorm.Config{DryRun: true})
	require.NoError(t, err)
	return db
}

func TestStatusForDecision(t *testing.T) {
	status, err := StatusForDecision(DecisionApprove)
	require.NoError(t, err)
	assert.Equal(t, constants.RoleStatusApproved, status)

	status, err = StatusForDecision(DecisionReject)
	require.NoError(t, err)
	assert.Equal(t, constants.RoleStatusRejected, status)

	for _, bad := range []string{"", "approved", "rejected", "pending", "APPROVE"} {
		_, err := StatusForDecision(bad)
		assert.ErrorIs(t, err, ErrInvalidDecision, "decision %q", bad)
	}
}

func TestCanReapply(t *testing.T) {
	// a rejection is terminal for its row; the retry is a brand-new
	// request, so only rejected (or no history at all) may re-apply
	assert.True(t, CanReapply(constants.RoleStatusRejected))
	assert.True(t, CanReapply(""))

	assert.False(t, CanReapply(constants.RoleStatusPending))
	assert.False(t, CanReapply(constants.RoleStatusApproved))
}

func TestReapplyGate(t *testing.T) {
	cases := []struct {
		name    string
		latest  string
		wantErr error
	}{
		{"no history", "", nil},
		{"after rejection", constants.RoleStatusRejected, nil},
		{"pending blocks", constants.RoleStatusPending, ErrRequestPending},
		{"approved blocks", constants.RoleStatusApproved, ErrAlreadyMember},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := reapplyGate(tc.latest)
			if tc.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tc.wantErr)
			}
		})
	}
}

func TestReviewUpdateOnlyTouchesPendingRows(t *testing.T) {
	db := dryRunDB(t)
	roleID := uuid.New()
	reviewerID := uuid.New()
	now := time.Now().UTC()

	stmt := reviewUpdate(db, roleID, reviewerID, constants.RoleStatusApproved, now).Statement
	sql := stmt.SQL.String()

	// the pending-only predicate is what makes a second approve a no-op
	assert.Contains(t, sql, "user_role_id = ? AND user_role_status = ?")
	assert.Contains(t, stmt.Vars, constants.RoleStatusPending)
	assert.Contains(t, stmt.Vars, roleID)

	// the decision stamps the reviewer alongside the status flip
	assert.Contains(t, sql, `"user_role_reviewed_by"`)
	assert.Contains(t, sql, `"user_role_reviewed_at"`)
	assert.Contains(t, sql, `"user_role_status"`)
	assert.Contains(t, stmt.Vars, reviewerID)
	assert.Contains(t, stmt.Vars, constants.RoleStatusApproved)
	assert.Contains(t, stmt.Vars, now)
}
