package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"gerejaku_backend/internals/features/missions/model"
)

func TestToMissionResponseProgress(t *testing.T) {
	m := model.MissionModel{MissionGoalAmount: 1000, MissionRaisedAmount: 250}
	out := ToMissionResponse(m)
	assert.InDelta(t, 25.0, out.ProgressPercent, 0.001)
	assert.False(t, out.Overfunded)

	// raised past goal stays uncapped and flags overfunded
	m.MissionRaisedAmount = 1200
	out = ToMissionResponse(m)
	assert.InDelta(t, 120.0, out.ProgressPercent, 0.001)
	assert.True(t, out.Overfunded)

	// zero goal never divides and never overfunds
	m = model.MissionModel{MissionGoalAmount: 0, MissionRaisedAmount: 500}
	out = ToMissionResponse(m)
	assert.Equal(t, 0.0, out.ProgressPercent)
	assert.False(t, out.Overfunded)
}
