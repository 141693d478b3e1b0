package boosto

import (
	"io"

	"github.com/meverselabs/boosto/common"
	"github.com/meverselabs/boosto/common/amount"
	"github.com/meverselabs/boosto/common/bin"
)

// BoostoTokenConstruction is the deploy argument of the token.
// Zero fields take the defaults of the Boosto token
type BoostoTokenConstruction struct {
	Name        string
	Symbol      string
	Admin       common.Address
	TotalSupply *amount.Amount
	MinAmount   *amount.Amount
}

func (s *BoostoTokenConstruction) WriteTo(w io.Writer) (int64, error) {
	sw := bin.NewSumWriter()
	if sum, err := sw.String(w, s.Name); err != nil {
		return sum, err
	}
	if sum, err := sw.String(w, s.Symbol); err != nil {
		return sum, err
	}
	if sum, err := sw.Address(w, s.Admin); err != nil {
		return sum, err
	}
	if sum, err := sw.Amount(w, s.TotalSupply); err != nil {
		return sum, err
	}
	if sum, err := sw.Amount(w, s.MinAmount); err != nil {
		return sum, err
	}
	return sw.Sum(), nil
}

func (s *BoostoTokenConstruction) ReadFrom(r io.Reader) (int64, error) {
	sr := bin.NewSumReader()
	if sum, err := sr.String(r, &s.Name); err != nil {
		return sum, err
	}
	if sum, err := sr.String(r, &s.Symbol); err != nil {
		return sum, err
	}
	if sum, err := sr.Address(r, &s.Admin); err != nil {
		return sum, err
	}
	if sum, err := sr.Amount(r, &s.TotalSupply); err != nil {
		return sum, err
	}
	if sum, err := sr.Amount(r, &s.MinAmount); err != nil {
		return sum, err
	}
	return sr.Sum(), nil
}
