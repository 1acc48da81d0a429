package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveRankLowestTier(t *testing.T) {
	rank := ResolveRank(0)
	assert.Equal(t, "Apprentice", rank.Name)
	assert.Equal(t, 0, rank.Threshold)
}

func TestResolveRankNegativeInput(t *testing.T) {
	rank := ResolveRank(-100)
	assert.Equal(t, "Apprentice", rank.Name)
}

func TestResolveRankExactThresholds(t *testing.T) {
	cases := []struct {
		totalEarned int
		want        string
	}{
		{499, "Apprentice"},
		{500, "Eager Learner"},
		{1999, "Eager Learner"},
		{2000, "Knowledge Explorer"},
		{5000, "Skilled Craftsman"},
		{10000, "Domain Navigator"},
		{24999, "Domain Navigator"},
		{25000, "Legendary Grandmaster"},
		{1000000, "Legendary Grandmaster"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ResolveRank(tc.totalEarned).Name, "totalEarned=%d", tc.totalEarned)
	}
}

func TestMissionClampPoints(t *testing.T) {
	low := Mission{Title: "t", Description: "d", Points: 10}
	low.ClampPoints()
	assert.Equal(t, MissionMinPoints, low.Points)

	high := Mission{Title: "t", Description: "d", Points: 9000}
	high.ClampPoints()
	assert.Equal(t, MissionMaxPoints, high.Points)

	ok := Mission{Title: "t", Description: "d", Points: 120}
	ok.ClampPoints()
	assert.Equal(t, 120, ok.Points)
}

func TestProfileValidate(t *testing.T) {
	p := &Profile{Name: "Alex", Role: RoleStudent, Points: 10, TotalEarned: 10}
	assert.NoError(t, p.Validate())

	assert.ErrorIs(t, (&Profile{Role: RoleStudent}).Validate(), ErrMalformedRecord)
	assert.ErrorIs(t, (&Profile{Name: "x", Role: "WIZARD"}).Validate(), ErrMalformedRecord)
	assert.ErrorIs(t, (&Profile{Name: "x", Role: RoleStudent, Points: -1}).Validate(), ErrMalformedRecord)
}
