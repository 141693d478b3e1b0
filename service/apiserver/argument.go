package apiserver

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"

	"github.com/pkg/errors"

	"github.com/meverselabs/boosto/common"
	"github.com/meverselabs/boosto/common/amount"
	"github.com/meverselabs/boosto/common/hash"
)

// Argument parses rpc arguments
type Argument struct {
	args []interface{}
}

// NewArgument returns a Argument
func NewArgument(args []interface{}) *Argument {
	arg := &Argument{
		args: args,
	}
	return arg
}

// Len returns length of arguments
func (arg *Argument) Len() int {
	return len(arg.args)
}

func (arg *Argument) get(index int) (interface{}, error) {
	if index < 0 || index >= len(arg.args) {
		return nil, errors.WithStack(ErrInvalidArgumentIndex)
	}
	a := arg.args[index]
	if a == nil {
		return nil, errors.WithStack(ErrInvalidArgumentType)
	}
	return a, nil
}

// Int returns a int value of the index
func (arg *Argument) Int(index int) (int, error) {
	a, err := arg.get(index)
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseInt(fmt.Sprintf("%v", a), 10, 32)
	if err != nil {
		return 0, errors.WithStack(err)
	}
	return int(n), nil
}

// Uint64 returns a uint64 value of the index
func (arg *Argument) Uint64(index int) (uint64, error) {
	a, err := arg.get(index)
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseUint(fmt.Sprintf("%v", a), 10, 64)
	if err != nil {
		return 0, errors.WithStack(err)
	}
	return n, nil
}

// String returns a string value of the index
func (arg *Argument) String(index int) (string, error) {
	a, err := arg.get(index)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%v", a), nil
}

// Bool returns a bool value of the index
func (arg *Argument) Bool(index int) (bool, error) {
	a, err := arg.get(index)
	if err != nil {
		return false, err
	}
	if b, ok := a.(bool); ok {
		return b, nil
	}
	b, err := strconv.ParseBool(fmt.Sprintf("%v", a))
	if err != nil {
		return false, errors.WithStack(ErrInvalidArgumentType)
	}
	return b, nil
}

// Address returns a address value of the index
func (arg *Argument) Address(index int) (common.Address, error) {
	str, err := arg.String(index)
	if err != nil {
		return common.ZeroAddr, err
	}
	return common.ParseAddress(str)
}

// Amount returns a amount value of the index from the float string
func (arg *Argument) Amount(index int) (*amount.Amount, error) {
	str, err := arg.String(index)
	if err != nil {
		return nil, err
	}
	return amount.ParseAmount(str)
}

// Hash returns a hash value of the index
func (arg *Argument) Hash(index int) (hash.Hash256, error) {
	str, err := arg.String(index)
	if err != nil {
		return hash.Hash256{}, err
	}
	return hash.HexToHash(str), nil
}

// Array returns a array value of the index
func (arg *Argument) Array(index int) ([]interface{}, error) {
	a, err := arg.get(index)
	if err != nil {
		return nil, err
	}
	switch reflect.TypeOf(a).Kind() {
	case reflect.Slice:
		s := reflect.ValueOf(a)

		r := []interface{}{}
		for i := 0; i < s.Len(); i++ {
			r = append(r, s.Index(i).Interface())
		}
		return r, nil
	}
	return nil, errors.WithStack(ErrInvalidArgumentType)
}

// Interfaces returns the arguments from the index with the json numbers as strings
func (arg *Argument) Interfaces(from int) []interface{} {
	if from >= len(arg.args) {
		return []interface{}{}
	}
	list := make([]interface{}, 0, len(arg.args)-from)
	for _, a := range arg.args[from:] {
		list = append(list, plain(a))
	}
	return list
}

func plain(v interface{}) interface{} {
	switch pv := v.(type) {
	case json.Number:
		return pv.String()
	case []interface{}:
		list := make([]interface{}, 0, len(pv))
		for _, a := range pv {
			list = append(list, plain(a))
		}
		return list
	}
	return v
}
