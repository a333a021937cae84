package honeycomb

import (
	"errors"
	"fmt"
	"time"

	"github.com/irvingpop/honeycomb-api/internal/constants"
)

// CalculationOp is an aggregate operation in a query specification.
type CalculationOp string

// Calculation operations supported by the query engine.
const (
	CalculationOpCount         CalculationOp = "COUNT"
	CalculationOpConcurrency   CalculationOp = "CONCURRENCY"
	CalculationOpSum           CalculationOp = "SUM"
	CalculationOpAvg           CalculationOp = "AVG"
	CalculationOpCountDistinct CalculationOp = "COUNT_DISTINCT"
	CalculationOpMax           CalculationOp = "MAX"
	CalculationOpMin           CalculationOp = "MIN"
	CalculationOpP001          CalculationOp = "P001"
	CalculationOpP01           CalculationOp = "P01"
	CalculationOpP05           CalculationOp = "P05"
	CalculationOpP10           CalculationOp = "P10"
	CalculationOpP25           CalculationOp = "P25"
	CalculationOpP50           CalculationOp = "P50"
	CalculationOpP75           CalculationOp = "P75"
	CalculationOpP90           CalculationOp = "P90"
	CalculationOpP95           CalculationOp = "P95"
	CalculationOpP99           CalculationOp = "P99"
	CalculationOpP999          CalculationOp = "P999"
	CalculationOpHeatmap       CalculationOp = "HEATMAP"
	CalculationOpRateAvg       CalculationOp = "RATE_AVG"
	CalculationOpRateSum       CalculationOp = "RATE_SUM"
	CalculationOpRateMax       CalculationOp = "RATE_MAX"
)

// validCalculationOps is the closed set of operations accepted by Build.
var validCalculationOps = map[CalculationOp]bool{
	CalculationOpCount: true, CalculationOpConcurrency: true,
	CalculationOpSum: true, CalculationOpAvg: true, CalculationOpCountDistinct: true,
	CalculationOpMax: true, CalculationOpMin: true,
	CalculationOpP001: true, CalculationOpP01: true, CalculationOpP05: true,
	CalculationOpP10: true, CalculationOpP25: true, CalculationOpP50: true,
	CalculationOpP75: true, CalculationOpP90: true, CalculationOpP95: true,
	CalculationOpP99: true, CalculationOpP999: true,
	CalculationOpHeatmap: true,
	CalculationOpRateAvg: true, CalculationOpRateSum: true, CalculationOpRateMax: true,
}

// RequiresColumn reports whether the operation aggregates over a column.
// COUNT and CONCURRENCY operate on whole events.
func (op CalculationOp) RequiresColumn() bool {
	return op != CalculationOpCount && op != CalculationOpConcurrency
}

// FilterOp is a comparison operation in a query filter.
type FilterOp string

// Filter operations supported by the query engine.
const (
	FilterOpEquals           FilterOp = "="
	FilterOpNotEquals        FilterOp = "!="
	FilterOpGT               FilterOp = ">"
	FilterOpGTE              FilterOp = ">="
	FilterOpLT               FilterOp = "<"
	FilterOpLTE              FilterOp = "<="
	FilterOpStartsWith       FilterOp = "starts-with"
	FilterOpDoesNotStartWith FilterOp = "does-not-start-with"
	FilterOpContains         FilterOp = "contains"
	FilterOpDoesNotContain   FilterOp = "does-not-contain"
	FilterOpExists           FilterOp = "exists"
	FilterOpDoesNotExist     FilterOp = "does-not-exist"
	FilterOpIn               FilterOp = "in"
	FilterOpNotIn            FilterOp = "not-in"
)

var validFilterOps = map[FilterOp]bool{
	FilterOpEquals: true, FilterOpNotEquals: true,
	FilterOpGT: true, FilterOpGTE: true, FilterOpLT: true, FilterOpLTE: true,
	FilterOpStartsWith: true, FilterOpDoesNotStartWith: true,
	FilterOpContains: true, FilterOpDoesNotContain: true,
	FilterOpExists: true, FilterOpDoesNotExist: true,
	FilterOpIn: true, FilterOpNotIn: true,
}

// RequiresValue reports whether the operation compares against a value.
// Pure existence checks carry none.
func (op FilterOp) RequiresValue() bool {
	return op != FilterOpExists && op != FilterOpDoesNotExist
}

// FilterCombination controls how multiple filters are combined.
type FilterCombination string

// Filter combinations.
const (
	FilterCombinationAnd FilterCombination = "AND"
	FilterCombinationOr  FilterCombination = "OR"
)

// SortDirection orders query results.
type SortDirection string

// Sort directions.
const (
	SortAscending  SortDirection = "ascending"
	SortDescending SortDirection = "descending"
)

// Calculation is one aggregate in a query specification.
type Calculation struct {
	Op     CalculationOp `json:"op"               yaml:"op"`
	Column string        `json:"column,omitempty" yaml:"column,omitempty"`
}

// Filter is one pre-aggregation predicate in a query specification.
type Filter struct {
	Column string      `json:"column"          yaml:"column"`
	Op     FilterOp    `json:"op"              yaml:"op"`
	Value  interface{} `json:"value,omitempty" yaml:"value,omitempty"`
}

// Order sorts results by a calculation or breakdown column.
type Order struct {
	Op     CalculationOp `json:"op,omitempty"     yaml:"op,omitempty"`
	Column string        `json:"column,omitempty" yaml:"column,omitempty"`
	Order  SortDirection `json:"order,omitempty"  yaml:"order,omitempty"`
}

// Having is a post-aggregation predicate.
type Having struct {
	CalculateOp CalculationOp `json:"calculate_op"     yaml:"calculate_op"`
	Column      string        `json:"column,omitempty" yaml:"column,omitempty"`
	Op          FilterOp      `json:"op"               yaml:"op"`
	Value       float64       `json:"value"            yaml:"value"`
}

// QuerySpec is a complete query specification, serialized as the JSON body
// of query, trigger, and board requests. Build returns a fresh copy, so a
// spec handed to a caller is never shared with the builder that produced it.
type QuerySpec struct {
	Breakdowns        []string          `json:"breakdowns,omitempty"         yaml:"breakdowns,omitempty"`
	Calculations      []Calculation     `json:"calculations,omitempty"       yaml:"calculations,omitempty"`
	Filters           []Filter          `json:"filters,omitempty"            yaml:"filters,omitempty"`
	FilterCombination FilterCombination `json:"filter_combination,omitempty" yaml:"filter_combination,omitempty"`
	Granularity       int               `json:"granularity,omitempty"        yaml:"granularity,omitempty"`
	Orders            []Order           `json:"orders,omitempty"             yaml:"orders,omitempty"`
	Limit             int               `json:"limit,omitempty"              yaml:"limit,omitempty"`
	TimeRange         int               `json:"time_range,omitempty"         yaml:"time_range,omitempty"`
	StartTime         int64             `json:"start_time,omitempty"         yaml:"start_time,omitempty"`
	EndTime           int64             `json:"end_time,omitempty"           yaml:"end_time,omitempty"`
	Havings           []Having          `json:"havings,omitempty"            yaml:"havings,omitempty"`
}

// Clone returns a deep copy of the spec.
func (s *QuerySpec) Clone() *QuerySpec {
	clone := *s
	clone.Breakdowns = append([]string(nil), s.Breakdowns...)
	clone.Calculations = append([]Calculation(nil), s.Calculations...)
	clone.Filters = append([]Filter(nil), s.Filters...)
	clone.Orders = append([]Order(nil), s.Orders...)
	clone.Havings = append([]Having(nil), s.Havings...)

	return &clone
}

// ErrInvalidQuery is the sentinel for builder validation failures, checked
// with errors.Is. Builder validation is local and never touches the network.
var ErrInvalidQuery = errors.New("honeycomb: invalid query")

// BuildError reports a query specification that violates API constraints.
type BuildError struct {
	Message string
}

// Error implements the error interface.
func (e *BuildError) Error() string {
	return "honeycomb: invalid query: " + e.Message
}

// Unwrap allows errors.Is(err, ErrInvalidQuery).
func (e *BuildError) Unwrap() error {
	return ErrInvalidQuery
}

func buildErrorf(format string, args ...interface{}) *BuildError {
	return &BuildError{Message: fmt.Sprintf(format, args...)}
}

// QueryBuilder accumulates a query specification through chained calls.
// Validation happens at Build or BuildTriggerQuery, not per call, so a
// builder can be assembled in any order. The zero value is not usable; call
// NewQueryBuilder.
type QueryBuilder struct {
	spec QuerySpec
}

// NewQueryBuilder creates an empty query builder.
func NewQueryBuilder() *QueryBuilder {
	return &QueryBuilder{}
}

// Calculate appends an aggregate calculation. Prefer the named helpers
// (Count, Avg, P99, ...) for the common operations.
func (b *QueryBuilder) Calculate(op CalculationOp, column string) *QueryBuilder {
	b.spec.Calculations = append(b.spec.Calculations, Calculation{Op: op, Column: column})

	return b
}

// Count appends a COUNT calculation.
func (b *QueryBuilder) Count() *QueryBuilder { return b.Calculate(CalculationOpCount, "") }

// Concurrency appends a CONCURRENCY calculation.
func (b *QueryBuilder) Concurrency() *QueryBuilder { return b.Calculate(CalculationOpConcurrency, "") }

// Sum appends a SUM calculation over column.
func (b *QueryBuilder) Sum(column string) *QueryBuilder { return b.Calculate(CalculationOpSum, column) }

// Avg appends an AVG calculation over column.
func (b *QueryBuilder) Avg(column string) *QueryBuilder { return b.Calculate(CalculationOpAvg, column) }

// CountDistinct appends a COUNT_DISTINCT calculation over column.
func (b *QueryBuilder) CountDistinct(column string) *QueryBuilder {
	return b.Calculate(CalculationOpCountDistinct, column)
}

// Max appends a MAX calculation over column.
func (b *QueryBuilder) Max(column string) *QueryBuilder { return b.Calculate(CalculationOpMax, column) }

// Min appends a MIN calculation over column.
func (b *QueryBuilder) Min(column string) *QueryBuilder { return b.Calculate(CalculationOpMin, column) }

// P50 appends a P50 calculation over column.
func (b *QueryBuilder) P50(column string) *QueryBuilder { return b.Calculate(CalculationOpP50, column) }

// P90 appends a P90 calculation over column.
func (b *QueryBuilder) P90(column string) *QueryBuilder { return b.Calculate(CalculationOpP90, column) }

// P95 appends a P95 calculation over column.
func (b *QueryBuilder) P95(column string) *QueryBuilder { return b.Calculate(CalculationOpP95, column) }

// P99 appends a P99 calculation over column.
func (b *QueryBuilder) P99(column string) *QueryBuilder { return b.Calculate(CalculationOpP99, column) }

// Heatmap appends a HEATMAP calculation over column.
func (b *QueryBuilder) Heatmap(column string) *QueryBuilder {
	return b.Calculate(CalculationOpHeatmap, column)
}

// RateAvg appends a RATE_AVG calculation over column.
func (b *QueryBuilder) RateAvg(column string) *QueryBuilder {
	return b.Calculate(CalculationOpRateAvg, column)
}

// RateSum appends a RATE_SUM calculation over column.
func (b *QueryBuilder) RateSum(column string) *QueryBuilder {
	return b.Calculate(CalculationOpRateSum, column)
}

// RateMax appends a RATE_MAX calculation over column.
func (b *QueryBuilder) RateMax(column string) *QueryBuilder {
	return b.Calculate(CalculationOpRateMax, column)
}

// Filter appends a comparison filter.
func (b *QueryBuilder) Filter(column string, op FilterOp, value interface{}) *QueryBuilder {
	b.spec.Filters = append(b.spec.Filters, Filter{Column: column, Op: op, Value: value})

	return b
}

// FilterExists appends an existence filter; it carries no value.
func (b *QueryBuilder) FilterExists(column string) *QueryBuilder {
	b.spec.Filters = append(b.spec.Filters, Filter{Column: column, Op: FilterOpExists})

	return b
}

// FilterNotExists appends a non-existence filter; it carries no value.
func (b *QueryBuilder) FilterNotExists(column string) *QueryBuilder {
	b.spec.Filters = append(b.spec.Filters, Filter{Column: column, Op: FilterOpDoesNotExist})

	return b
}

// CombineWith sets how multiple filters are combined. Unset defaults to AND.
func (b *QueryBuilder) CombineWith(combination FilterCombination) *QueryBuilder {
	b.spec.FilterCombination = combination

	return b
}

// GroupBy appends breakdown columns.
func (b *QueryBuilder) GroupBy(columns ...string) *QueryBuilder {
	b.spec.Breakdowns = append(b.spec.Breakdowns, columns...)

	return b
}

// OrderBy appends a sort over a calculation.
func (b *QueryBuilder) OrderBy(op CalculationOp, column string, direction SortDirection) *QueryBuilder {
	b.spec.Orders = append(b.spec.Orders, Order{Op: op, Column: column, Order: direction})

	return b
}

// OrderByColumn appends a sort over a breakdown column.
func (b *QueryBuilder) OrderByColumn(column string, direction SortDirection) *QueryBuilder {
	b.spec.Orders = append(b.spec.Orders, Order{Column: column, Order: direction})

	return b
}

// Limit caps the number of result rows.
func (b *QueryBuilder) Limit(limit int) *QueryBuilder {
	b.spec.Limit = limit

	return b
}

// TimeRange sets a relative time range in seconds, ending now.
func (b *QueryBuilder) TimeRange(seconds int) *QueryBuilder {
	b.spec.TimeRange = seconds

	return b
}

// AbsoluteTimeRange sets an explicit start/end window.
func (b *QueryBuilder) AbsoluteTimeRange(start, end time.Time) *QueryBuilder {
	b.spec.StartTime = start.Unix()
	b.spec.EndTime = end.Unix()

	return b
}

// Granularity sets the time bucket size in seconds.
func (b *QueryBuilder) Granularity(seconds int) *QueryBuilder {
	b.spec.Granularity = seconds

	return b
}

// Having appends a post-aggregation predicate.
func (b *QueryBuilder) Having(calcOp CalculationOp, column string, op FilterOp, value float64) *QueryBuilder {
	b.spec.Havings = append(b.spec.Havings, Having{CalculateOp: calcOp, Column: column, Op: op, Value: value})

	return b
}

// Build validates the accumulated specification and returns a frozen copy.
// The builder is left unmodified, so calling Build twice yields value-equal
// specifications.
func (b *QueryBuilder) Build() (*QuerySpec, error) {
	if err := b.validate(); err != nil {
		return nil, err
	}

	spec := b.spec.Clone()

	if spec.FilterCombination == "" && len(spec.Filters) > 1 {
		spec.FilterCombination = FilterCombinationAnd
	}

	return spec, nil
}

// BuildTriggerQuery validates the specification against the narrower rules
// for trigger queries: exactly one calculation, a relative time range of at
// most one hour, and no absolute start/end. The upstream API rejects trigger
// queries violating these bounds, so failing locally saves a round trip.
func (b *QueryBuilder) BuildTriggerQuery() (*QuerySpec, error) {
	spec, err := b.Build()
	if err != nil {
		return nil, err
	}

	if got := len(spec.Calculations); got != 1 {
		return nil, buildErrorf("exactly one calculation required, got %d", got)
	}

	if spec.StartTime != 0 || spec.EndTime != 0 {
		return nil, buildErrorf("absolute time range is not allowed for trigger queries")
	}

	if spec.TimeRange <= 0 {
		return nil, buildErrorf("trigger queries require a relative time range")
	}

	if spec.TimeRange > constants.TriggerMaxTimeRange {
		return nil, buildErrorf("time range must be at most %d seconds, got %d",
			constants.TriggerMaxTimeRange, spec.TimeRange)
	}

	return spec, nil
}

func (b *QueryBuilder) validate() error {
	for _, calc := range b.spec.Calculations {
		if !validCalculationOps[calc.Op] {
			return buildErrorf("unknown calculation operation %q", calc.Op)
		}

		if calc.Op.RequiresColumn() && calc.Column == "" {
			return buildErrorf("missing column for operation %s", calc.Op)
		}

		if !calc.Op.RequiresColumn() && calc.Column != "" {
			return buildErrorf("operation %s does not take a column", calc.Op)
		}
	}

	for _, filter := range b.spec.Filters {
		if filter.Column == "" {
			return buildErrorf("filter is missing a column")
		}

		if !validFilterOps[filter.Op] {
			return buildErrorf("unknown filter operation %q", filter.Op)
		}

		if filter.Op.RequiresValue() && filter.Value == nil {
			return buildErrorf("filter operation %q on column %q requires a value", filter.Op, filter.Column)
		}

		if !filter.Op.RequiresValue() && filter.Value != nil {
			return buildErrorf("filter operation %q must not carry a value", filter.Op)
		}
	}

	if c := b.spec.FilterCombination; c != "" && c != FilterCombinationAnd && c != FilterCombinationOr {
		return buildErrorf("filter combination must be AND or OR, got %q", c)
	}

	if b.spec.Limit < 0 {
		return buildErrorf("limit must be positive, got %d", b.spec.Limit)
	}

	if b.spec.TimeRange < 0 {
		return buildErrorf("time range must be positive, got %d", b.spec.TimeRange)
	}

	if b.spec.Granularity < 0 {
		return buildErrorf("granularity must be positive, got %d", b.spec.Granularity)
	}

	if (b.spec.StartTime == 0) != (b.spec.EndTime == 0) {
		return buildErrorf("absolute time range requires both start and end")
	}

	if b.spec.StartTime != 0 && b.spec.EndTime <= b.spec.StartTime {
		return buildErrorf("end time must be after start time")
	}

	for _, having := range b.spec.Havings {
		if !validCalculationOps[having.CalculateOp] {
			return buildErrorf("unknown calculation operation %q in having", having.CalculateOp)
		}

		if having.CalculateOp.RequiresColumn() && having.Column == "" {
			return buildErrorf("missing column for having on %s", having.CalculateOp)
		}
	}

	return nil
}

// QueryInput accepts either a builder or a raw specification at call
// boundaries that take a query. Exactly one field must be set; Resolve
// applies builder validation once, at the boundary.
type QueryInput struct {
	Builder *QueryBuilder
	Spec    *QuerySpec
}

// Static errors for QueryInput resolution.
var (
	ErrNoQueryProvided        = errors.New("honeycomb: either Builder or Spec must be set")
	ErrAmbiguousQueryProvided = errors.New("honeycomb: only one of Builder or Spec may be set")
)

// Resolve returns the concrete specification for this input.
func (q QueryInput) Resolve() (*QuerySpec, error) {
	switch {
	case q.Builder != nil && q.Spec != nil:
		return nil, ErrAmbiguousQueryProvided
	case q.Builder != nil:
		return q.Builder.Build()
	case q.Spec != nil:
		return q.Spec.Clone(), nil
	default:
		return nil, ErrNoQueryProvided
	}
}

// ResolveForTrigger returns the concrete specification, applying trigger
// query constraints when the input is a builder. Raw specs are validated
// through a throwaway builder so both arms enforce the same rules.
func (q QueryInput) ResolveForTrigger() (*QuerySpec, error) {
	switch {
	case q.Builder != nil && q.Spec != nil:
		return nil, ErrAmbiguousQueryProvided
	case q.Builder != nil:
		return q.Builder.BuildTriggerQuery()
	case q.Spec != nil:
		return (&QueryBuilder{spec: *q.Spec.Clone()}).BuildTriggerQuery()
	default:
		return nil, ErrNoQueryProvided
	}
}
