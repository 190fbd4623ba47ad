package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
)

const (
	CustomDestination      = "custom"
	CustomDestinationLabel = "Custom Trip / Not Listed"
)

var ErrNotFound = errors.New("package not found")

// LoadError reports a snapshot that could not be fetched or decoded. The
// browser keeps an empty catalog and falls back to the custom booking path.
type LoadError struct {
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load catalog from %s: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Destination is one entry of the booking destination selector.
type Destination struct {
	Value string
	Label string
}

// Catalog is the read-only snapshot of package records for one session.
type Catalog struct {
	records      []PackageRecord
	byID         map[int]int
	destinations []Destination
	regions      []string
	budgets      []string
}

// Load performs the single read against src and builds the catalog.
func Load(ctx context.Context, src Source) (*Catalog, error) {
	data, err := src.Fetch(ctx)
	if err != nil {
		return nil, &LoadError{Source: src.String(), Err: err}
	}

	var records []PackageRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, &LoadError{Source: src.String(), Err: fmt.Errorf("parse packages: %w", err)}
	}

	cat, err := New(records)
	if err != nil {
		return nil, &LoadError{Source: src.String(), Err: err}
	}
	return cat, nil
}

// New builds a catalog from records already in memory. Ids must be unique.
func New(records []PackageRecord) (*Catalog, error) {
	cat := &Catalog{
		records: make([]PackageRecord, len(records)),
		byID:    make(map[int]int, len(records)),
	}
	copy(cat.records, records)

	seenRegion := map[string]struct{}{}
	seenBudget := map[string]struct{}{}
	for i, r := range cat.records {
		if _, exists := cat.byID[r.ID]; exists {
			return nil, fmt.Errorf("duplicate package id %d", r.ID)
		}
		cat.byID[r.ID] = i

		if _, ok := seenRegion[r.Region]; !ok && r.Region != "" {
			seenRegion[r.Region] = struct{}{}
			cat.regions = append(cat.regions, r.Region)
		}
		if _, ok := seenBudget[r.Budget]; !ok && r.Budget != "" {
			seenBudget[r.Budget] = struct{}{}
			cat.budgets = append(cat.budgets, r.Budget)
		}
	}
	cat.destinations = BuildDestinations(cat.records)
	return cat, nil
}

// Records returns the records in snapshot order. Callers must not modify the slice.
func (c *Catalog) Records() []PackageRecord {
	if c == nil {
		return nil
	}
	return c.records
}

func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.records)
}

func (c *Catalog) FindByID(id int) (PackageRecord, error) {
	if c == nil {
		return PackageRecord{}, ErrNotFound
	}
	i, ok := c.byID[id]
	if !ok {
		return PackageRecord{}, ErrNotFound
	}
	return c.records[i], nil
}

// Destinations returns the booking selector entries, custom entry first.
func (c *Catalog) Destinations() []Destination {
	if c == nil {
		return BuildDestinations(nil)
	}
	return c.destinations
}

// Regions returns the distinct region tags in snapshot order.
func (c *Catalog) Regions() []string {
	if c == nil {
		return nil
	}
	return c.regions
}

// Budgets returns the distinct budget tags in snapshot order.
func (c *Catalog) Budgets() []string {
	if c == nil {
		return nil
	}
	return c.budgets
}

func BuildDestinations(records []PackageRecord) []Destination {
	destinations := make([]Destination, 0, len(records)+1)
	destinations = append(destinations, Destination{Value: CustomDestination, Label: CustomDestinationLabel})
	for _, r := range records {
		destinations = append(destinations, Destination{Value: strconv.Itoa(r.ID), Label: r.Title})
	}
	return destinations
}

// ResolveDestination maps a selector value back to a record. The custom entry
// and unknown values resolve to no record.
func (c *Catalog) ResolveDestination(value string) (PackageRecord, bool) {
	if value == CustomDestination {
		return PackageRecord{}, false
	}
	id, err := strconv.Atoi(value)
	if err != nil {
		return PackageRecord{}, false
	}
	r, err := c.FindByID(id)
	if err != nil {
		return PackageRecord{}, false
	}
	return r, true
}
