package test

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meverselabs/boosto/common"
	"github.com/meverselabs/boosto/common/amount"
	"github.com/meverselabs/boosto/contract/boosto"
	"github.com/meverselabs/boosto/extern/test/util"
)

const (
	oneMonth    = uint64(30 * 24 * 60 * 60)
	coinsPerETH = uint64(100)
	maxCap      = "4"
	minAmount   = "0.1"
)

var (
	rewardHours    = []uint64{10, 24, 48, 100}
	rewardPercents = []uint64{20, 10, 5, 0}
)

func setupTest(t *testing.T) (*util.TestContext, common.Address, common.Address) {
	tc := util.NewTestContext()
	t.Cleanup(tc.Close)
	return tc, util.Users[0], util.Users[1]
}

func addPublicICO(tc *util.TestContext) error {
	return tc.AddICO(oneMonth, coinsPerETH, maxCap, minAmount, rewardHours, rewardPercents, true)
}

func addPrivateICO(tc *util.TestContext) error {
	return tc.AddICO(oneMonth, coinsPerETH, maxCap, minAmount, rewardHours, rewardPercents, false)
}

func assertConservation(t *testing.T, tc *util.TestContext) {
	assert.Equal(t, tc.TotalSupply().String(), tc.SumBalances(util.Holders()).String())
}

func TestSupplyAndMinAmount(t *testing.T) {
	tc, _, _ := setupTest(t)

	assert.Equal(t, "1000000000", tc.TotalSupply().String())
	assert.Equal(t, "1000000000", tc.BalanceOf(util.Admin).String())
	assert.Equal(t, "0.1", tc.MustRead("minAmount").(*amount.Amount).String())
	assert.Equal(t, "Boosto", tc.MustRead("name"))
	assert.Equal(t, "BST", tc.MustRead("symbol"))
	assert.Equal(t, uint64(18), tc.MustRead("decimals"))
	assert.Equal(t, util.Admin, tc.MustRead("admin"))
	assertConservation(t, tc)
}

func TestNoICOByDefault(t *testing.T) {
	tc, account1, _ := setupTest(t)

	assert.Equal(t, false, tc.MustRead("isIcoInProgress"))
	assert.Equal(t, uint64(0), tc.MustRead("icoSeq"))
	assert.Equal(t, "0", tc.MustRead("maxCap").(*amount.Amount).String())

	r, err := tc.SendValue(account1, util.Ether("1"))
	require.Error(t, err)
	assert.Equal(t, boosto.ErrNoActiveCampaign, errors.Cause(err))
	assert.False(t, r.Success)
	assert.Equal(t, boosto.ErrNoActiveCampaign.Error(), r.Error)

	assert.Equal(t, "100", tc.NativeBalance(account1).String())
	assert.Equal(t, "100", tc.NativeBalance(util.Admin).String())
	assert.Equal(t, "0", tc.BalanceOf(account1).String())
	assert.Equal(t, "0", tc.NativeBalance(tc.Token).String())
}

func TestAddICO(t *testing.T) {
	tc, _, _ := setupTest(t)

	assert.Equal(t, false, tc.MustRead("isIcoInProgress"))
	require.NoError(t, addPublicICO(tc))
	assert.Equal(t, true, tc.MustRead("isIcoInProgress"))

	assert.Equal(t, maxCap, tc.MustRead("maxCap").(*amount.Amount).String())
	assert.Equal(t, minAmount, tc.MustRead("minAmount").(*amount.Amount).String())
	assert.Equal(t, "0", tc.MustRead("totalRaised").(*amount.Amount).String())
	assert.Equal(t, oneMonth, tc.MustRead("durationSeconds"))
	assert.Equal(t, coinsPerETH, tc.MustRead("coinsPerETH"))
	assert.Equal(t, tc.Now(), tc.MustRead("startTime"))
	assert.Equal(t, rewardHours, tc.MustRead("bonusHours"))
	assert.Equal(t, rewardPercents, tc.MustRead("bonusPercents"))
	assert.Equal(t, true, tc.MustRead("isPublic"))
	assert.Equal(t, uint64(1), tc.MustRead("icoSeq"))
	assert.Equal(t, uint64(20), tc.MustRead("currentBonusPercent"))

	err := addPublicICO(tc)
	require.Error(t, err)
	assert.Equal(t, boosto.ErrCampaignInProgress, errors.Cause(err))
	assert.Equal(t, uint64(1), tc.MustRead("icoSeq"))
}

func TestAddICOByNotAdmin(t *testing.T) {
	tc, account1, _ := setupTest(t)

	_, err := tc.SendTx(account1, "adminAddICO", tc.Now(), oneMonth, coinsPerETH, util.Ether(maxCap), util.Ether(minAmount), rewardHours, rewardPercents, true)
	require.Error(t, err)
	assert.Equal(t, boosto.ErrUnauthorized, errors.Cause(err))
	assert.Equal(t, false, tc.MustRead("isIcoInProgress"))
}

func TestAddICOInvalid(t *testing.T) {
	tc, _, _ := setupTest(t)

	cases := []struct {
		name     string
		duration uint64
		rate     uint64
		maxCap   string
		hours    []uint64
		percents []uint64
		want     error
	}{
		{"length mismatch", oneMonth, coinsPerETH, maxCap, []uint64{10, 24}, []uint64{20}, boosto.ErrInvalidBonusTable},
		{"empty table", oneMonth, coinsPerETH, maxCap, []uint64{}, []uint64{}, boosto.ErrInvalidBonusTable},
		{"not ascending", oneMonth, coinsPerETH, maxCap, []uint64{24, 10}, []uint64{20, 10}, boosto.ErrInvalidBonusTable},
		{"same hours", oneMonth, coinsPerETH, maxCap, []uint64{10, 10}, []uint64{20, 10}, boosto.ErrInvalidBonusTable},
		{"zero duration", 0, coinsPerETH, maxCap, rewardHours, rewardPercents, boosto.ErrInvalidCampaign},
		{"zero rate", oneMonth, 0, maxCap, rewardHours, rewardPercents, boosto.ErrInvalidCampaign},
		{"zero cap", oneMonth, coinsPerETH, "0", rewardHours, rewardPercents, boosto.ErrInvalidCampaign},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := tc.AddICO(c.duration, c.rate, c.maxCap, minAmount, c.hours, c.percents, true)
			require.Error(t, err)
			assert.Equal(t, c.want, errors.Cause(err))
		})
	}
	assert.Equal(t, false, tc.MustRead("isIcoInProgress"))
	assert.Equal(t, uint64(0), tc.MustRead("icoSeq"))
}

func TestMultipleICO(t *testing.T) {
	tc, account1, account2 := setupTest(t)

	require.NoError(t, addPublicICO(tc))
	assert.Equal(t, true, tc.MustRead("isIcoInProgress"))

	_, err := tc.SendValue(account1, util.Ether("4"))
	require.NoError(t, err)
	assert.Equal(t, false, tc.MustRead("isIcoInProgress"))
	assert.Equal(t, "480", tc.BalanceOf(account1).String())

	_, err = tc.SendValue(account2, util.Ether("1"))
	assert.Equal(t, boosto.ErrNoActiveCampaign, errors.Cause(err))

	require.NoError(t, addPublicICO(tc))
	assert.Equal(t, true, tc.MustRead("isIcoInProgress"))
	assert.Equal(t, "0", tc.MustRead("totalRaised").(*amount.Amount).String())
	assert.Equal(t, uint64(2), tc.MustRead("icoSeq"))

	tc.SleepHours(50)
	_, err = tc.SendValue(account2, util.Ether("1"))
	require.NoError(t, err)
	assert.Equal(t, "100", tc.BalanceOf(account2).String())
	assertConservation(t, tc)
}

func TestPurchase(t *testing.T) {
	tc, account1, account2 := setupTest(t)
	require.NoError(t, addPublicICO(tc))

	adminBefore := tc.NativeBalance(util.Admin)
	r, err := tc.SendValue(account1, util.Ether("1"))
	require.NoError(t, err)
	assert.True(t, r.Success)

	assert.Equal(t, adminBefore.Add(util.Ether("1")).String(), tc.NativeBalance(util.Admin).String())
	assert.Equal(t, "99", tc.NativeBalance(account1).String())
	assert.Equal(t, "0", tc.NativeBalance(tc.Token).String())
	assert.Equal(t, "120", tc.BalanceOf(account1).String())

	tc.SleepHours(rewardHours[0] + 1)
	assert.Equal(t, uint64(10), tc.MustRead("currentBonusPercent"))
	_, err = tc.SendValue(account2, util.Ether("1"))
	require.NoError(t, err)
	assert.Equal(t, "110", tc.BalanceOf(account2).String())

	_, err = tc.SendValue(account2, util.Ether("0.05"))
	require.Error(t, err)
	assert.Equal(t, boosto.ErrBelowMinimum, errors.Cause(err))
	assert.Equal(t, "110", tc.BalanceOf(account2).String())
	assert.Equal(t, "99", tc.NativeBalance(account2).String())

	assert.Equal(t, "2", tc.MustRead("totalRaised").(*amount.Amount).String())
	assertConservation(t, tc)
}

func TestPurchaseEvents(t *testing.T) {
	tc, account1, _ := setupTest(t)
	require.NoError(t, addPublicICO(tc))

	r, err := tc.SendValue(account1, util.Ether("1.5"))
	require.NoError(t, err)
	require.Len(t, r.Events, 2)

	assert.Equal(t, "Transfer", r.Events[0].Type)
	assert.Equal(t, util.Admin, r.Events[0].Params["from"])
	assert.Equal(t, account1, r.Events[0].Params["to"])

	e := r.Events[1]
	assert.Equal(t, uint16(1), e.Index)
	assert.Equal(t, "TokenPurchase", e.Type)
	assert.Equal(t, tc.Token, e.Contract)
	assert.Equal(t, account1, e.Params["buyer"])
	assert.Equal(t, "1.5", e.Params["value"].(*amount.Amount).String())
	assert.Equal(t, "180", e.Params["tokens"].(*amount.Amount).String())
	assert.Equal(t, uint64(20), e.Params["bonus"])
	assert.Equal(t, uint64(1), e.Params["seq"])

	stored, err := tc.Cn.Receipt(r.TxHash)
	require.NoError(t, err)
	assert.True(t, stored.Success)
}

func TestPurchaseAllocationExhausted(t *testing.T) {
	tc, account1, account2 := setupTest(t)
	require.NoError(t, addPublicICO(tc))

	tc.MustSendTx(util.Admin, "transfer", account2, util.Ether("999999950"))
	assert.Equal(t, "50", tc.BalanceOf(util.Admin).String())

	r, err := tc.SendValue(account1, util.Ether("1"))
	require.Error(t, err)
	assert.Equal(t, boosto.ErrInsufficientBalance, errors.Cause(err))
	assert.False(t, r.Success)

	assert.Equal(t, "100", tc.NativeBalance(account1).String())
	assert.Equal(t, "100", tc.NativeBalance(util.Admin).String())
	assert.Equal(t, "0", tc.NativeBalance(tc.Token).String())
	assert.Equal(t, "0", tc.BalanceOf(account1).String())
	assert.Equal(t, "50", tc.BalanceOf(util.Admin).String())
	assert.Equal(t, "0", tc.MustRead("totalRaised").(*amount.Amount).String())
	assert.Equal(t, true, tc.MustRead("isIcoInProgress"))
	assertConservation(t, tc)
}

func TestBonusTiers(t *testing.T) {
	tc, _, _ := setupTest(t)
	require.NoError(t, tc.AddICO(oneMonth*2, coinsPerETH, "1000", minAmount, rewardHours, rewardPercents, true))

	steps := []struct {
		sleep  uint64
		bonus  uint64
		tokens string
	}{
		{0, 20, "120"},
		{9, 20, "120"},
		{1, 10, "110"},
		{14, 5, "105"},
		{24, 0, "100"},
		{52, 0, "100"},
		{100, 0, "100"},
	}
	for i, s := range steps {
		tc.SleepHours(s.sleep)
		buyer := util.Users[i]
		assert.Equal(t, s.bonus, tc.MustRead("currentBonusPercent"))
		_, err := tc.SendValue(buyer, util.Ether("1"))
		require.NoError(t, err)
		assert.Equal(t, s.tokens, tc.BalanceOf(buyer).String())
	}
	assertConservation(t, tc)
}

func TestCapOvershootAccepted(t *testing.T) {
	tc, account1, account2 := setupTest(t)
	require.NoError(t, addPublicICO(tc))

	_, err := tc.SendValue(account1, util.Ether("3"))
	require.NoError(t, err)
	assert.Equal(t, true, tc.MustRead("isIcoInProgress"))

	_, err = tc.SendValue(account2, util.Ether("3"))
	require.NoError(t, err)
	assert.Equal(t, "360", tc.BalanceOf(account2).String())
	assert.Equal(t, "6", tc.MustRead("totalRaised").(*amount.Amount).String())
	assert.Equal(t, false, tc.MustRead("isIcoInProgress"))
	assert.Equal(t, "106", tc.NativeBalance(util.Admin).String())
}

func TestCampaignExpires(t *testing.T) {
	tc, account1, _ := setupTest(t)
	require.NoError(t, addPublicICO(tc))

	tc.Sleep(oneMonth - 1)
	assert.Equal(t, true, tc.MustRead("isIcoInProgress"))
	tc.Sleep(1)
	assert.Equal(t, false, tc.MustRead("isIcoInProgress"))
	assert.Equal(t, uint64(0), tc.MustRead("currentBonusPercent"))

	_, err := tc.SendValue(account1, util.Ether("1"))
	assert.Equal(t, boosto.ErrNoActiveCampaign, errors.Cause(err))

	require.NoError(t, addPublicICO(tc))
	assert.Equal(t, true, tc.MustRead("isIcoInProgress"))
}

func TestScheduledCampaign(t *testing.T) {
	tc, account1, _ := setupTest(t)

	addScheduled := func(start uint64) error {
		_, err := tc.SendTx(util.Admin, "adminAddICO", start, oneMonth, coinsPerETH,
			amount.MustParseAmount(maxCap), amount.MustParseAmount(minAmount), rewardHours, rewardPercents, true)
		return err
	}
	require.NoError(t, addScheduled(tc.Now()+3600))
	assert.Equal(t, uint64(1), tc.MustRead("icoSeq"))
	assert.Equal(t, false, tc.MustRead("isIcoInProgress"))
	assert.Equal(t, uint64(0), tc.MustRead("currentBonusPercent"))

	_, err := tc.SendValue(account1, util.Ether("1"))
	assert.Equal(t, boosto.ErrNoActiveCampaign, errors.Cause(err))
	assert.Equal(t, "100", tc.NativeBalance(account1).String())
	assert.Equal(t, "0", tc.BalanceOf(account1).String())

	// not opened yet, so it can be rescheduled
	require.NoError(t, addScheduled(tc.Now()+7200))
	assert.Equal(t, uint64(2), tc.MustRead("icoSeq"))

	tc.Sleep(7199)
	assert.Equal(t, false, tc.MustRead("isIcoInProgress"))
	tc.Sleep(1)
	assert.Equal(t, true, tc.MustRead("isIcoInProgress"))
	assert.Equal(t, uint64(20), tc.MustRead("currentBonusPercent"))

	_, err = tc.SendValue(account1, util.Ether("1"))
	require.NoError(t, err)
	assert.Equal(t, "120", tc.BalanceOf(account1).String())
	assert.Equal(t, boosto.ErrCampaignInProgress, errors.Cause(addScheduled(tc.Now()+3600)))
}

func TestWhiteList(t *testing.T) {
	tc, account1, account2 := setupTest(t)

	tc.MustSendTx(util.Admin, "adminUpdateWhiteList", account1, true)
	assert.Equal(t, true, tc.MustRead("whiteList", account1))
	assert.Equal(t, false, tc.MustRead("whiteList", account2))

	tc.MustSendTx(util.Admin, "adminUpdateWhiteList", account1, true)
	assert.Equal(t, true, tc.MustRead("whiteList", account1))

	tc.MustSendTx(util.Admin, "adminUpdateWhiteList", account1, false)
	assert.Equal(t, false, tc.MustRead("whiteList", account1))

	_, err := tc.SendTx(account1, "adminUpdateWhiteList", account1, true)
	assert.Equal(t, boosto.ErrUnauthorized, errors.Cause(err))
	assert.Equal(t, false, tc.MustRead("whiteList", account1))
}

func TestPrivateICO(t *testing.T) {
	tc, _, _ := setupTest(t)

	require.NoError(t, addPrivateICO(tc))
	assert.Equal(t, true, tc.MustRead("isIcoInProgress"))
	assert.Equal(t, false, tc.MustRead("isPublic"))
	assert.Equal(t, maxCap, tc.MustRead("maxCap").(*amount.Amount).String())
	assert.Equal(t, minAmount, tc.MustRead("minAmount").(*amount.Amount).String())
	assert.Equal(t, oneMonth, tc.MustRead("durationSeconds"))
	assert.Equal(t, coinsPerETH, tc.MustRead("coinsPerETH"))

	err := addPublicICO(tc)
	assert.Equal(t, boosto.ErrCampaignInProgress, errors.Cause(err))
}

func TestPrivateICOPurchase(t *testing.T) {
	tc, account1, account2 := setupTest(t)
	account3 := util.Users[2]

	tc.MustSendTx(util.Admin, "adminUpdateWhiteList", account1, true)
	tc.MustSendTx(util.Admin, "adminUpdateWhiteList", account2, true)
	require.NoError(t, addPrivateICO(tc))

	_, err := tc.SendValue(account3, util.Ether("1"))
	require.Error(t, err)
	assert.Equal(t, boosto.ErrNotWhitelisted, errors.Cause(err))
	assert.Equal(t, "100", tc.NativeBalance(account3).String())
	assert.Equal(t, "0", tc.BalanceOf(account3).String())

	tc.MustSendTx(util.Admin, "adminUpdateWhiteList", account3, true)
	_, err = tc.SendValue(account3, util.Ether("1"))
	require.NoError(t, err)
	assert.Equal(t, "99", tc.NativeBalance(account3).String())
	assert.Equal(t, "120", tc.BalanceOf(account3).String())

	_, err = tc.SendValue(account1, util.Ether("1"))
	require.NoError(t, err)
	assert.Equal(t, "102", tc.NativeBalance(util.Admin).String())
	assert.Equal(t, "120", tc.BalanceOf(account1).String())

	tc.SleepHours(rewardHours[0] + 1)
	_, err = tc.SendValue(account2, util.Ether("1"))
	require.NoError(t, err)
	assert.Equal(t, "110", tc.BalanceOf(account2).String())

	_, err = tc.SendValue(account2, util.Ether("0.05"))
	assert.Equal(t, boosto.ErrBelowMinimum, errors.Cause(err))
	assert.Equal(t, "110", tc.BalanceOf(account2).String())
	assertConservation(t, tc)
}

func TestTokenTransfer(t *testing.T) {
	tc, account1, account2 := setupTest(t)

	res := tc.MustSendTx(util.Admin, "transfer", account1, util.Ether("10"))
	assert.Equal(t, []interface{}{true}, res)
	assert.Equal(t, "10", tc.BalanceOf(account1).String())

	_, err := tc.SendTx(account1, "transfer", account2, util.Ether("11"))
	assert.Equal(t, boosto.ErrInsufficientBalance, errors.Cause(err))

	_, err = tc.SendTx(account1, "transfer", common.ZeroAddr, util.Ether("1"))
	assert.Equal(t, boosto.ErrTransferToZeroAddress, errors.Cause(err))

	tc.MustSendTx(account1, "transfer", account2, util.Ether("10"))
	assert.Equal(t, "0", tc.BalanceOf(account1).String())
	assert.Equal(t, "10", tc.BalanceOf(account2).String())
	assertConservation(t, tc)
}

func TestNotPayable(t *testing.T) {
	tc, account1, _ := setupTest(t)

	_, err := tc.SendTxTo(util.Admin, tc.Token, util.Ether("1"), "transfer", account1, util.Ether("10"))
	assert.Equal(t, boosto.ErrNotPayable, errors.Cause(err))
	assert.Equal(t, "100", tc.NativeBalance(util.Admin).String())
	assert.Equal(t, "0", tc.NativeBalance(tc.Token).String())
	assert.Equal(t, "0", tc.BalanceOf(account1).String())
}

func TestJSONInputs(t *testing.T) {
	tc, account1, _ := setupTest(t)

	_, err := tc.SendTx(util.Admin, "adminAddICO", float64(tc.Now()), "2592000", float64(100), "4", "0.1",
		[]interface{}{float64(10), float64(24)}, []interface{}{"20", "10"}, true)
	require.NoError(t, err)
	assert.Equal(t, []uint64{10, 24}, tc.MustRead("bonusHours"))

	bal, err := tc.ReadTx("balanceOf", account1.String())
	require.NoError(t, err)
	assert.Equal(t, "0", bal[0].(*amount.Amount).String())

	_, err = tc.ReadTx("balanceOf", "nope")
	assert.Error(t, err)
	_, err = tc.ReadTx("unknownMethod")
	assert.Error(t, err)
}
