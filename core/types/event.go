package types

import (
	"github.com/meverselabs/boosto/common"
)

// Event is a notification emitted by a contract during a call
type Event struct {
	Index    uint16                 `json:"index"`
	Contract common.Address         `json:"contract"`
	Type     string                 `json:"type"`
	Params   map[string]interface{} `json:"params"`
}
