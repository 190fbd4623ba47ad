// Package catalog loads the travel package snapshot and answers lookups against it.
package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

type PackageRecord struct {
	ID     int      `json:"id" yaml:"id"`
	Title  string   `json:"title" yaml:"title"`
	Region string   `json:"region" yaml:"region"`
	Budget string   `json:"budget" yaml:"budget"`
	Price  float64  `json:"price" yaml:"price"`
	Days   Days     `json:"days" yaml:"days"`
	Image  string   `json:"image" yaml:"image"`
	Tags   []string `json:"tags" yaml:"tags"`
}

// Days is the trip duration as displayed. Snapshots carry it either as a
// number (7) or as a label ("7 Days").
type Days string

func (d *Days) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*d = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("decode days: %w", err)
		}
		*d = Days(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("decode days: %w", err)
	}
	*d = Days(n.String())
	return nil
}

func (d Days) String() string {
	return string(d)
}

// PriceLabel formats the price the way cards show it, without trailing zeros.
func (r PackageRecord) PriceLabel() string {
	return "$" + strconv.FormatFloat(r.Price, 'f', -1, 64)
}
