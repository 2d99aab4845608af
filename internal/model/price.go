package model

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Price is a menu price. It always renders with exactly two fractional
// digits and round-trips through that textual form without loss.
type Price struct {
	d decimal.Decimal
}

func NewPrice(d decimal.Decimal) Price {
	return Price{d: d.Round(2)}
}

// ParsePrice accepts both dot and comma decimal separators ("12.50", "12,50").
func ParsePrice(s string) (Price, error) {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, ",", ".")
	if s == "" {
		return Price{}, fmt.Errorf("empty price")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Price{}, fmt.Errorf("invalid price %q: %w", s, err)
	}
	if d.IsNegative() {
		return Price{}, fmt.Errorf("negative price %q", s)
	}
	return Price{d: d.Round(2)}, nil
}

// String renders the display/edit form: two fractional digits, dot separator.
func (p Price) String() string {
	return p.d.StringFixed(2)
}

// Wire renders the form the multipart endpoints expect: comma separator.
func (p Price) Wire() string {
	return strings.ReplaceAll(p.d.StringFixed(2), ".", ",")
}

func (p Price) Decimal() decimal.Decimal { return p.d }

func (p Price) IsZero() bool { return p.d.IsZero() }

func (p Price) Equal(o Price) bool { return p.d.Equal(o.d) }

func (p Price) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

// UnmarshalJSON tolerates the server sending prices as JSON numbers or as
// strings (with either separator).
func (p *Price) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		parsed, perr := ParsePrice(s)
		if perr != nil {
			return perr
		}
		*p = parsed
		return nil
	}
	var d decimal.Decimal
	if err := json.Unmarshal(b, &d); err != nil {
		return fmt.Errorf("price: %w", err)
	}
	*p = Price{d: d.Round(2)}
	return nil
}
