package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Channel selects which percentage set of a share configuration applies.
type Channel string

const (
	ChannelStandard Channel = "STANDARD"
	ChannelCMoney   Channel = "CMONEY"
)

// Channels lists every channel an operation may select.
var Channels = []Channel{ChannelStandard, ChannelCMoney}

// Validate checks the channel value.
func (c Channel) Validate() error {
	if c != ChannelStandard && c != ChannelCMoney {
		return fmt.Errorf("%w: unknown share channel %q", ErrShareConfigInvalid, c)
	}
	return nil
}

// Party is a stakeholder receiving part of a split amount.
type Party string

const (
	PartyHeadOffice        Party = "head_office"
	PartyPartner           Party = "partner"
	PartySourceBranch      Party = "source_branch"
	PartyDestinationBranch Party = "destination_branch"
)

// Parties lists the parties in split order.
var Parties = []Party{PartyHeadOffice, PartyPartner, PartySourceBranch, PartyDestinationBranch}

// Validate checks the party value.
func (p Party) Validate() error {
	for _, known := range Parties {
		if p == known {
			return nil
		}
	}
	return fmt.Errorf("%w: unknown party %q", ErrShareConfigInvalid, p)
}

// ResidualParty decides which party absorbs the truncation residual.
type ResidualParty string

const (
	ResidualToLast  ResidualParty = "last"
	ResidualToFirst ResidualParty = "first"
)

var hundred = decimal.NewFromInt(100)

// ShareSet holds the percentages of one channel.
type ShareSet struct {
	HeadOffice        decimal.Decimal
	Partner           decimal.Decimal
	SourceBranch      decimal.Decimal
	DestinationBranch decimal.Decimal
}

// Percent returns the party's percentage.
func (s ShareSet) Percent(p Party) decimal.Decimal {
	switch p {
	case PartyHeadOffice:
		return s.HeadOffice
	case PartyPartner:
		return s.Partner
	case PartySourceBranch:
		return s.SourceBranch
	case PartyDestinationBranch:
		return s.DestinationBranch
	}
	return decimal.Zero
}

// Validate requires non-negative percentages summing to exactly 100.
func (s ShareSet) Validate() error {
	total := decimal.Zero
	for _, p := range Parties {
		pct := s.Percent(p)
		if pct.IsNegative() {
			return fmt.Errorf("%w: %s share %s is negative", ErrShareConfigInvalid, p, pct)
		}
		total = total.Add(pct)
	}
	if !total.Equal(hundred) {
		return fmt.Errorf("%w: shares sum to %s, want 100", ErrShareConfigInvalid, total)
	}
	return nil
}

// ShareConfig is a named split of an amount across parties, per channel.
type ShareConfig struct {
	Code     string
	Channels map[Channel]ShareSet
}

// Validate validates every channel of the configuration.
func (c *ShareConfig) Validate() error {
	if c.Code == "" {
		return fmt.Errorf("%w: share config without code", ErrShareConfigInvalid)
	}
	if len(c.Channels) == 0 {
		return fmt.Errorf("%w: share config %s has no channels", ErrShareConfigInvalid, c.Code)
	}
	for ch, set := range c.Channels {
		if err := ch.Validate(); err != nil {
			return err
		}
		if err := set.Validate(); err != nil {
			return fmt.Errorf("share config %s channel %s: %w", c.Code, ch, err)
		}
	}
	return nil
}

// Split divides amount across the parties of set. Parts are computed in
// party order, each truncated to minorUnits decimal places, and the
// truncation residual goes to the last (or first) party with a non-zero
// share so that the parts always sum to amount exactly.
func Split(amount decimal.Decimal, set ShareSet, minorUnits int32, residual ResidualParty) (map[Party]decimal.Decimal, error) {
	if amount.IsNegative() {
		return nil, fmt.Errorf("%w: split amount %s", ErrInvalidAmount, amount)
	}
	if err := set.Validate(); err != nil {
		return nil, err
	}

	parts := make(map[Party]decimal.Decimal, len(Parties))
	allocated := decimal.Zero
	var first, last Party
	for _, p := range Parties {
		pct := set.Percent(p)
		part := amount.Mul(pct).Shift(-2).Truncate(minorUnits)
		parts[p] = part
		allocated = allocated.Add(part)
		if pct.IsPositive() {
			if first == "" {
				first = p
			}
			last = p
		}
	}

	target := last
	if residual == ResidualToFirst {
		target = first
	}
	parts[target] = parts[target].Add(amount.Sub(allocated))

	return parts, nil
}
