package main

import (
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meverselabs/boosto/common/amount"
)

const testCampaign = `
durationSeconds: 2592000
coinsPerETH: 100
maxCap: "4"
minAmount: "0.1"
bonusHours: [10, 24, 48, 100]
bonusPercents: [20, 10, 5, 0]
isPublic: true
`

func TestLoadCampaign(t *testing.T) {
	c, err := LoadCampaign(strings.NewReader(testCampaign))
	require.NoError(t, err)

	assert.Equal(t, uint64(2592000), c.DurationSeconds)
	assert.Equal(t, "4", c.MaxCap.String())
	assert.Equal(t, "0.1", c.MinAmount.String())
	assert.Equal(t, []uint64{10, 24, 48, 100}, c.BonusHours)
	assert.True(t, c.IsPublic)

	params := c.Params(1000)
	require.Len(t, params, 8)
	assert.Equal(t, uint64(1000), params[0])
	assert.Equal(t, "4", params[3].(*amount.Amount).String())

	c.StartTime = 50
	assert.Equal(t, uint64(50), c.Params(1000)[0])
}

func TestLoadCampaignMissingAmount(t *testing.T) {
	_, err := LoadCampaign(strings.NewReader("durationSeconds: 10\n"))
	assert.Equal(t, ErrMissingAmount, errors.Cause(err))

	_, err = LoadCampaign(strings.NewReader(`maxCap: "x"`))
	assert.Error(t, err)
}
