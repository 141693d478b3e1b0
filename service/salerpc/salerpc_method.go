package salerpc

import (
	"github.com/meverselabs/boosto/service/apiserver"
)

func (sr *SaleRPC) reader(method string) apiserver.Handler {
	return func(ID interface{}, arg *apiserver.Argument) (interface{}, error) {
		res, err := sr.cn.ViewCall(sr.token, method, arg.Interfaces(0))
		if err != nil {
			return nil, err
		}
		if len(res) == 1 {
			return res[0], nil
		}
		return res, nil
	}
}

func (sr *SaleRPC) writer(method string) apiserver.Handler {
	return func(ID interface{}, arg *apiserver.Argument) (interface{}, error) {
		from, err := arg.Address(0)
		if err != nil {
			return nil, err
		}
		r, res, err := sr.cn.Call(from, sr.token, method, nil, arg.Interfaces(1))
		if err != nil {
			return nil, err
		}
		return &CallResult{
			Receipt: r,
			Result:  res,
		}, nil
	}
}

// receive buys the tokens with the value: [from, value]
func (sr *SaleRPC) receive(ID interface{}, arg *apiserver.Argument) (interface{}, error) {
	from, err := arg.Address(0)
	if err != nil {
		return nil, err
	}
	value, err := arg.Amount(1)
	if err != nil {
		return nil, err
	}
	r, res, err := sr.cn.Call(from, sr.token, "receive", value, []interface{}{})
	if err != nil {
		return nil, err
	}
	return &CallResult{
		Receipt: r,
		Result:  res,
	}, nil
}

func (sr *SaleRPC) receipt(ID interface{}, arg *apiserver.Argument) (interface{}, error) {
	h, err := arg.Hash(0)
	if err != nil {
		return nil, err
	}
	return sr.cn.Receipt(h)
}

func (sr *SaleRPC) nativeBalance(ID interface{}, arg *apiserver.Argument) (interface{}, error) {
	addr, err := arg.Address(0)
	if err != nil {
		return nil, err
	}
	return sr.cn.NativeBalance(addr)
}
