package boosto

import (
	"bytes"

	"github.com/meverselabs/boosto/common/bin"
	"github.com/meverselabs/boosto/core/types"
)

//////////////////////////////////////////////////
// Private Functions
//////////////////////////////////////////////////

// ico returns nil when no campaign was ever added
func (cont *BoostoToken) ico(cc *types.ContractContext) (*ICO, error) {
	bs := cc.ContractData([]byte{tagICO})
	if len(bs) == 0 {
		return nil, nil
	}
	ico := &ICO{}
	if _, err := ico.ReadFrom(bytes.NewReader(bs)); err != nil {
		return nil, err
	}
	return ico, nil
}

func (cont *BoostoToken) setICO(cc *types.ContractContext, ico *ICO) error {
	bs, _, err := bin.WriterToBytes(ico)
	if err != nil {
		return err
	}
	cc.SetContractData([]byte{tagICO}, bs)
	return nil
}

// activeICO returns nil when there is no campaign accepting purchases at the call time
func (cont *BoostoToken) activeICO(cc *types.ContractContext) (*ICO, error) {
	ico, err := cont.ico(cc)
	if err != nil {
		return nil, err
	}
	if ico == nil || !ico.IsActive(cc.Timestamp()) {
		return nil, nil
	}
	return ico, nil
}

func (cont *BoostoToken) addICOSeq(cc *types.ContractContext) uint64 {
	seq := cont.ICOSeq(cc) + 1
	cc.SetContractData([]byte{tagICOSeq}, bin.Uint64Bytes(seq))
	return seq
}
