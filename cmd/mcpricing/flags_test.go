package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tembolo1284/mcpricing/internal/pricing"
)

func TestOptionKindAcceptsCallAndPut(t *testing.T) {
	callFlags := runFlags{optionType: "call"}
	ot, err := callFlags.optionKind()
	assert.NoError(t, err)
	assert.Equal(t, pricing.Call, ot)

	putFlags := runFlags{optionType: "put"}
	ot, err = putFlags.optionKind()
	assert.NoError(t, err)
	assert.Equal(t, pricing.Put, ot)
}

func TestOptionKindRejectsUnknown(t *testing.T) {
	f := runFlags{optionType: "straddle"}
	_, err := f.optionKind()
	assert.Error(t, err)
}

func TestBarrierKindMapsAllFourStyles(t *testing.T) {
	cases := map[string]pricing.BarrierType{
		"down-in":  pricing.DownIn,
		"down-out": pricing.DownOut,
		"up-in":    pricing.UpIn,
		"up-out":   pricing.UpOut,
	}
	for style, want := range cases {
		got, err := barrierKind(style)
		assert.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestBarrierKindRejectsUnknown(t *testing.T) {
	_, err := barrierKind("sideways")
	assert.Error(t, err)
}

func TestParseScheduleSplitsAndTrims(t *testing.T) {
	schedule, err := parseSchedule("0.25, 0.5 ,0.75,1.0")
	assert.NoError(t, err)
	assert.Equal(t, pricing.ExerciseSchedule{0.25, 0.5, 0.75, 1.0}, schedule)
}

func TestParseScheduleRejectsMalformedFraction(t *testing.T) {
	_, err := parseSchedule("0.25,not-a-number")
	assert.Error(t, err)
}
