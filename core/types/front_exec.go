package types

import (
	"fmt"
	"math"
	"math/big"
	"reflect"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/meverselabs/boosto/common"
	"github.com/meverselabs/boosto/common/amount"
)

var (
	errType     = reflect.TypeOf((*error)(nil)).Elem()
	addressType = reflect.TypeOf(common.Address{})
	amountType  = reflect.TypeOf(&amount.Amount{})
	bigIntType  = reflect.TypeOf(&big.Int{})
)

// ExecuteFront calls the method of the contract front by the name
// the first letter of the method is capitalized and the inputs are converted to the parameter types
// the returned error keeps the cause of the contract error
func ExecuteFront(cc *ContractContext, cont Contract, method string, inputs []interface{}) (result []interface{}, err error) {
	if len(method) < 1 {
		return nil, errors.WithStack(ErrInvalidMethod)
	}
	method = strings.ToUpper(string(method[0])) + method[1:]

	fr := cont.Front()
	if fr == nil {
		return nil, errors.Wrap(ErrInvalidMethod, method)
	}
	front := reflect.ValueOf(fr)
	rMethod := front.MethodByName(method)
	if rMethod.Kind() == reflect.Invalid {
		return nil, errors.Wrap(ErrInvalidMethod, method)
	}
	in, err := FrontInputsConv(inputs, rMethod)
	if err != nil {
		return nil, err
	}
	in = append([]reflect.Value{reflect.ValueOf(cc)}, in...)

	vs, err := func() (vs []reflect.Value, err error) {
		defer func() {
			if v := recover(); v != nil {
				err = errors.Errorf("occur error call method(%v) of message: %v", method, v)
			}
		}()
		return rMethod.Call(in), nil
	}()
	if err != nil {
		return nil, err
	}

	mtype := rMethod.Type()
	result = []interface{}{}
	for i, v := range vs {
		if mtype.Out(i) == errType {
			if !v.IsNil() {
				err = v.Interface().(error)
			}
			continue
		}
		result = append(result, v.Interface())
	}
	if err != nil {
		return nil, err
	}
	return result, nil
}

// FrontInputsConv converts the inputs decoded from json or yaml to the parameter types of the method
func FrontInputsConv(inputs []interface{}, rMethod reflect.Value) ([]reflect.Value, error) {
	mt := rMethod.Type()
	if mt.NumIn() < 1 {
		return nil, errors.WithStack(ErrInvalidMethod)
	}
	if mt.NumIn() != len(inputs)+1 {
		return nil, errors.Wrapf(ErrInvalidArgument, "invalid inputs count got %v want %v", len(inputs), mt.NumIn()-1)
	}
	in := make([]reflect.Value, len(inputs))
	for i, v := range inputs {
		param, err := convInput(v, mt.In(i+1))
		if err != nil {
			return nil, errors.Wrapf(err, "index(%v)", i)
		}
		in[i] = param
	}
	return in, nil
}

func convInput(v interface{}, mType reflect.Type) (reflect.Value, error) {
	if v == nil {
		return reflect.Value{}, errors.Wrap(ErrInvalidArgument, "nil param")
	}
	param := reflect.ValueOf(v)
	if param.Type() == mType {
		return param, nil
	}
	switch mType {
	case addressType:
		switch pv := v.(type) {
		case string:
			addr, err := common.ParseAddress(pv)
			if err != nil {
				return reflect.Value{}, err
			}
			return reflect.ValueOf(addr), nil
		case fmt.Stringer:
			return convInput(pv.String(), mType)
		}
	case amountType:
		switch pv := v.(type) {
		case string:
			am, err := amount.ParseAmount(pv)
			if err != nil {
				return reflect.Value{}, err
			}
			return reflect.ValueOf(am), nil
		case *big.Int:
			return reflect.ValueOf(amount.NewAmountFromBig(pv)), nil
		}
	case bigIntType:
		if pv, ok := v.(*amount.Amount); ok {
			return reflect.ValueOf(new(big.Int).Set(pv.Int)), nil
		}
	}
	switch mType.Kind() {
	case reflect.Uint64, reflect.Uint32, reflect.Uint16, reflect.Uint8, reflect.Uint:
		n, err := toUint64(v)
		if err != nil {
			return reflect.Value{}, err
		}
		return reflect.ValueOf(n).Convert(mType), nil
	case reflect.Bool:
		switch pv := v.(type) {
		case string:
			b, err := strconv.ParseBool(pv)
			if err != nil {
				return reflect.Value{}, errors.Wrap(ErrInvalidArgument, err.Error())
			}
			return reflect.ValueOf(b), nil
		}
	case reflect.String:
		if pv, ok := v.(fmt.Stringer); ok {
			return reflect.ValueOf(pv.String()), nil
		}
	case reflect.Slice:
		if param.Kind() == reflect.Slice {
			list := reflect.MakeSlice(mType, 0, param.Len())
			for i := 0; i < param.Len(); i++ {
				item, err := convInput(param.Index(i).Interface(), mType.Elem())
				if err != nil {
					return reflect.Value{}, err
				}
				list = reflect.Append(list, item)
			}
			return list, nil
		}
	}
	return reflect.Value{}, errors.Wrapf(ErrInvalidArgument, "get %v want %v", param.Type(), mType)
}

func toUint64(v interface{}) (uint64, error) {
	switch pv := v.(type) {
	case uint64:
		return pv, nil
	case uint32:
		return uint64(pv), nil
	case uint:
		return uint64(pv), nil
	case int:
		if pv >= 0 {
			return uint64(pv), nil
		}
	case int64:
		if pv >= 0 {
			return uint64(pv), nil
		}
	case float64:
		if pv >= 0 && pv < (1<<63) && pv == math.Trunc(pv) {
			return uint64(pv), nil
		}
	case string:
		n, err := strconv.ParseUint(pv, 10, 64)
		if err != nil {
			return 0, errors.Wrap(ErrInvalidArgument, err.Error())
		}
		return n, nil
	}
	return 0, errors.Wrapf(ErrInvalidArgument, "get %v(%T) want uint", v, v)
}
