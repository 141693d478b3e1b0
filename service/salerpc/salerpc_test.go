package salerpc

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meverselabs/boosto/contract/boosto"
	"github.com/meverselabs/boosto/extern/test/util"
	"github.com/meverselabs/boosto/service/apiserver"
)

type rpcResponse struct {
	ID     interface{}     `json:"id"`
	Result json.RawMessage `json:"result"`
	Error  string          `json:"error"`
}

type rpcClient struct {
	t   *testing.T
	url string
	seq int
}

func (c *rpcClient) call(method string, params ...interface{}) rpcResponse {
	c.seq++
	body, err := json.Marshal(map[string]interface{}{
		"jsonrpc": "2.0",
		"id":      c.seq,
		"method":  method,
		"params":  params,
	})
	require.NoError(c.t, err)
	res, err := http.Post(c.url+"/api/endpoints/http", "application/json", bytes.NewReader(body))
	require.NoError(c.t, err)
	defer res.Body.Close()

	var r rpcResponse
	require.NoError(c.t, json.NewDecoder(res.Body).Decode(&r))
	return r
}

func (c *rpcClient) result(method string, params ...interface{}) string {
	r := c.call(method, params...)
	require.Empty(c.t, r.Error, method)
	return string(r.Result)
}

func setupTest(t *testing.T) (*util.TestContext, *httptest.Server, *rpcClient) {
	tc := util.NewTestContext()
	t.Cleanup(tc.Close)

	s := apiserver.NewAPIServer(tc.Cn)
	_, err := Register(s, tc.Cn, tc.Token)
	require.NoError(t, err)
	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)
	return tc, ts, &rpcClient{t: t, url: ts.URL}
}

func TestReaders(t *testing.T) {
	tc, _, c := setupTest(t)

	assert.Equal(t, `"1000000000"`, c.result("boosto.totalSupply"))
	assert.Equal(t, `"Boosto"`, c.result("boosto.name"))
	assert.Equal(t, `18`, c.result("boosto.decimals"))
	assert.Equal(t, `"0.1"`, c.result("boosto.minAmount"))
	assert.Equal(t, `false`, c.result("boosto.isIcoInProgress"))
	assert.Equal(t, `"1000000000"`, c.result("boosto.balanceOf", util.Admin.String()))
	assert.Equal(t, `"100"`, c.result("chain.nativeBalance", util.Users[0].String()))
	assert.Equal(t, fmt.Sprint(tc.Now()), c.result("chain.timestamp"))

	r := c.call("boosto.balanceOf", "bad")
	assert.NotEmpty(t, r.Error)
}

func TestSaleOverRPC(t *testing.T) {
	tc, _, c := setupTest(t)
	buyer := util.Users[0]

	c.result("boosto.adminAddICO", util.Admin.String(), tc.Now(), 2592000, 100, "4", "0.1", []uint64{10, 24, 48, 100}, []uint64{20, 10, 5, 0}, true)
	assert.Equal(t, `true`, c.result("boosto.isIcoInProgress"))
	assert.Equal(t, `[10,24,48,100]`, c.result("boosto.bonusHours"))

	res := c.result("boosto.receive", buyer.String(), "1")
	var cr struct {
		Receipt struct {
			TxHash  string `json:"txHash"`
			Success bool   `json:"success"`
		} `json:"receipt"`
	}
	require.NoError(t, json.Unmarshal([]byte(res), &cr))
	assert.True(t, cr.Receipt.Success)
	assert.Equal(t, `"120"`, c.result("boosto.balanceOf", buyer.String()))
	assert.Equal(t, `"101"`, c.result("chain.nativeBalance", util.Admin.String()))

	rec := c.result("chain.receipt", cr.Receipt.TxHash)
	assert.Contains(t, rec, `"TokenPurchase"`)

	r := c.call("boosto.receive", buyer.String(), "0.05")
	assert.Equal(t, boosto.ErrBelowMinimum.Error(), r.Error)

	r = c.call("boosto.adminUpdateWhiteList", buyer.String(), buyer.String(), true)
	assert.Equal(t, boosto.ErrUnauthorized.Error(), r.Error)
}

func TestEventStream(t *testing.T) {
	_, ts, c := setupTest(t)

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/api/endpoints/websocket?type=events"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	c.result("boosto.adminUpdateWhiteList", util.Admin.String(), util.Users[1].String(), true)

	m := map[string]interface{}{}
	require.NoError(t, conn.ReadJSON(&m))
	assert.Equal(t, "WhiteListUpdated", m["type"])
	params := m["params"].(map[string]interface{})
	assert.Equal(t, true, params["value"])
}
