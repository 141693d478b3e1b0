package util

import (
	"fmt"
	"time"

	"github.com/meverselabs/boosto/common"
	"github.com/meverselabs/boosto/common/amount"
	"github.com/meverselabs/boosto/core/types"
)

// Now returns the time of the next call
func (tc *TestContext) Now() uint64 {
	return tc.Clock.Now()
}

// Sleep moves the clock forward
func (tc *TestContext) Sleep(seconds uint64) {
	tc.Clock.Add(time.Duration(seconds) * time.Second)
}

func (tc *TestContext) SleepHours(hours uint64) {
	tc.Sleep(hours * 3600)
}

// SendTx calls the method of the token as the address
func (tc *TestContext) SendTx(from common.Address, method string, params ...interface{}) ([]interface{}, error) {
	return tc.SendTxTo(from, tc.Token, nil, method, params...)
}

// SendTxTo calls the method of the contract as the address with the attached native value
func (tc *TestContext) SendTxTo(from common.Address, to common.Address, value *amount.Amount, method string, params ...interface{}) ([]interface{}, error) {
	if params == nil {
		params = []interface{}{}
	}
	_, res, err := tc.Cn.Call(from, to, method, value, params)
	return res, err
}

// SendValue sends the native value to the token, which is a purchase
func (tc *TestContext) SendValue(from common.Address, value *amount.Amount) (*types.Receipt, error) {
	r, _, err := tc.Cn.Call(from, tc.Token, "receive", value, []interface{}{})
	return r, err
}

func (tc *TestContext) MustSendTx(from common.Address, method string, params ...interface{}) []interface{} {
	res, err := tc.SendTx(from, method, params...)
	if err != nil {
		fmt.Printf("%+v\n", err)
		panic(err)
	}
	return res
}

// ReadTx calls the reader of the token at the current time
func (tc *TestContext) ReadTx(method string, params ...interface{}) ([]interface{}, error) {
	if params == nil {
		params = []interface{}{}
	}
	return tc.Cn.ViewCall(tc.Token, method, params)
}

func (tc *TestContext) MustRead(method string, params ...interface{}) interface{} {
	res, err := tc.ReadTx(method, params...)
	if err != nil {
		panic(err)
	}
	if len(res) == 0 {
		return nil
	}
	return res[0]
}

func (tc *TestContext) NativeBalance(addr common.Address) *amount.Amount {
	am, err := tc.Cn.NativeBalance(addr)
	if err != nil {
		panic(err)
	}
	return am
}
