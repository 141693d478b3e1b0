package boosto

import (
	"io"
	"math/big"

	"github.com/meverselabs/boosto/common/amount"
	"github.com/meverselabs/boosto/common/bin"
)

// ICO is the stored sale campaign. Only TotalRaised changes after it is added
type ICO struct {
	StartTime       uint64
	DurationSeconds uint64
	CoinsPerETH     uint64
	MaxCap          *amount.Amount
	MinAmount       *amount.Amount
	BonusHours      []uint64
	BonusPercents   []uint64
	IsPublic        bool
	TotalRaised     *amount.Amount
}

// IsActive reports whether purchases are accepted at the time.
// A campaign is not active before its start time
func (s *ICO) IsActive(now uint64) bool {
	if now < s.StartTime {
		return false
	}
	return now-s.StartTime < s.DurationSeconds && s.TotalRaised.Less(s.MaxCap)
}

func (s *ICO) elapsed(now uint64) uint64 {
	if now < s.StartTime {
		return 0
	}
	return now - s.StartTime
}

// BonusPercent returns the percent of the first tier whose hour is above the elapsed hours,
// or the last percent when every tier has passed
func (s *ICO) BonusPercent(now uint64) uint64 {
	if len(s.BonusPercents) == 0 {
		return 0
	}
	hours := s.elapsed(now) / 3600
	for i, h := range s.BonusHours {
		if hours < h {
			return s.BonusPercents[i]
		}
	}
	return s.BonusPercents[len(s.BonusPercents)-1]
}

// Tokens returns value * CoinsPerETH * (100 + bonus) / 100
func (s *ICO) Tokens(value *amount.Amount, bonus uint64) *amount.Amount {
	bi := new(big.Int).Mul(value.Int, new(big.Int).SetUint64(s.CoinsPerETH))
	bi.Mul(bi, new(big.Int).Add(big.NewInt(100), new(big.Int).SetUint64(bonus)))
	bi.Div(bi, big.NewInt(100))
	return amount.NewAmountFromBig(bi)
}

func (s *ICO) validate() error {
	if len(s.BonusHours) == 0 || len(s.BonusHours) != len(s.BonusPercents) {
		return ErrInvalidBonusTable
	}
	for i := 1; i < len(s.BonusHours); i++ {
		if s.BonusHours[i] <= s.BonusHours[i-1] {
			return ErrInvalidBonusTable
		}
	}
	if s.DurationSeconds == 0 || s.CoinsPerETH == 0 {
		return ErrInvalidCampaign
	}
	if s.MaxCap == nil || !s.MaxCap.IsPlus() {
		return ErrInvalidCampaign
	}
	if s.MinAmount == nil || s.MinAmount.IsMinus() {
		return ErrInvalidCampaign
	}
	return nil
}

func (s *ICO) WriteTo(w io.Writer) (int64, error) {
	sw := bin.NewSumWriter()
	if sum, err := sw.Uint64(w, s.StartTime); err != nil {
		return sum, err
	}
	if sum, err := sw.Uint64(w, s.DurationSeconds); err != nil {
		return sum, err
	}
	if sum, err := sw.Uint64(w, s.CoinsPerETH); err != nil {
		return sum, err
	}
	if sum, err := sw.Amount(w, s.MaxCap); err != nil {
		return sum, err
	}
	if sum, err := sw.Amount(w, s.MinAmount); err != nil {
		return sum, err
	}
	if sum, err := sw.Uint64Slice(w, s.BonusHours); err != nil {
		return sum, err
	}
	if sum, err := sw.Uint64Slice(w, s.BonusPercents); err != nil {
		return sum, err
	}
	if sum, err := sw.Bool(w, s.IsPublic); err != nil {
		return sum, err
	}
	if sum, err := sw.Amount(w, s.TotalRaised); err != nil {
		return sum, err
	}
	return sw.Sum(), nil
}

func (s *ICO) ReadFrom(r io.Reader) (int64, error) {
	sr := bin.NewSumReader()
	if sum, err := sr.Uint64(r, &s.StartTime); err != nil {
		return sum, err
	}
	if sum, err := sr.Uint64(r, &s.DurationSeconds); err != nil {
		return sum, err
	}
	if sum, err := sr.Uint64(r, &s.CoinsPerETH); err != nil {
		return sum, err
	}
	if sum, err := sr.Amount(r, &s.MaxCap); err != nil {
		return sum, err
	}
	if sum, err := sr.Amount(r, &s.MinAmount); err != nil {
		return sum, err
	}
	if sum, err := sr.Uint64Slice(r, &s.BonusHours); err != nil {
		return sum, err
	}
	if sum, err := sr.Uint64Slice(r, &s.BonusPercents); err != nil {
		return sum, err
	}
	if sum, err := sr.Bool(r, &s.IsPublic); err != nil {
		return sum, err
	}
	if sum, err := sr.Amount(r, &s.TotalRaised); err != nil {
		return sum, err
	}
	return sr.Sum(), nil
}
