package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/davecgh/go-spew/spew"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/meverselabs/boosto/service/apiserver"
)

func DoRequest(hostURL string, Method string, Params []interface{}) (interface{}, error) {
	req := &apiserver.JRPCRequest{
		JSONRPC: "2.0",
		ID:      uuid.New().String(),
		Method:  Method,
		Params:  Params,
	}
	bs, err := json.Marshal(req)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	r, err := http.Post(hostURL+"/api/endpoints/http", "application/json", bytes.NewReader(bs))
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer r.Body.Close()

	var res apiserver.JRPCResponse
	if err := json.NewDecoder(r.Body).Decode(&res); err != nil {
		return nil, errors.WithStack(err)
	}
	if len(res.Error) > 0 {
		return nil, errors.New(res.Error)
	}
	return res.Result, nil
}

type printer struct {
	dump *bool
}

func (p *printer) print(res interface{}, err error) {
	if err != nil {
		fmt.Println("error :", err)
		return
	}
	if *p.dump {
		spew.Dump(res)
		return
	}
	switch v := res.(type) {
	case map[string]interface{}, []interface{}:
		bs, err := json.MarshalIndent(v, "", "\t")
		if err != nil {
			fmt.Println("error :", err)
		} else {
			fmt.Println(string(bs))
		}
	default:
		fmt.Println(v)
	}
}
