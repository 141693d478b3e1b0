package main

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"

	"github.com/meverselabs/boosto/common/amount"
)

// Campaign is the yaml definition of a sale campaign.
// A zero StartTime starts the campaign at the time of the node
type Campaign struct {
	StartTime       uint64         `yaml:"startTime"`
	DurationSeconds uint64         `yaml:"durationSeconds"`
	CoinsPerETH     uint64         `yaml:"coinsPerETH"`
	MaxCap          *amount.Amount `yaml:"maxCap"`
	MinAmount       *amount.Amount `yaml:"minAmount"`
	BonusHours      []uint64       `yaml:"bonusHours"`
	BonusPercents   []uint64       `yaml:"bonusPercents"`
	IsPublic        bool           `yaml:"isPublic"`
}

func LoadCampaignFile(path string) (*Campaign, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer file.Close()

	return LoadCampaign(file)
}

func LoadCampaign(r io.Reader) (*Campaign, error) {
	c := &Campaign{}
	if err := yaml.NewDecoder(r).Decode(c); err != nil {
		return nil, errors.WithStack(err)
	}
	if c.MaxCap == nil || c.MinAmount == nil {
		return nil, errors.WithStack(ErrMissingAmount)
	}
	return c, nil
}

// Params returns the params of boosto.adminAddICO after the caller
func (c *Campaign) Params(now uint64) []interface{} {
	start := c.StartTime
	if start == 0 {
		start = now
	}
	return []interface{}{
		start,
		c.DurationSeconds,
		c.CoinsPerETH,
		c.MaxCap,
		c.MinAmount,
		c.BonusHours,
		c.BonusPercents,
		c.IsPublic,
	}
}
