// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/tomatokenizer-web/LOGOSproject-sub002/ent/calibrationevent"
	"github.com/tomatokenizer-web/LOGOSproject-sub002/ent/predicate"
)

// CalibrationEventQuery is the builder for querying CalibrationEvent entities.
type CalibrationEventQuery struct {
	config
	ctx        *QueryContext
	order      []calibrationevent.OrderOption
	inters     []Interceptor
	predicates []predicate.CalibrationEvent
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the CalibrationEventQuery builder.
func (ceq *CalibrationEventQuery) Where(ps ...predicate.CalibrationEvent) *CalibrationEventQuery {
	ceq.predicates = append(ceq.predicates, ps...)
	return ceq
}

// Limit the number of records to be returned by this query.
func (ceq *CalibrationEventQuery) Limit(limit int) *CalibrationEventQuery {
	ceq.ctx.Limit = &limit
	return ceq
}

// Offset to start from.
func (ceq *CalibrationEventQuery) Offset(offset int) *CalibrationEventQuery {
	ceq.ctx.Offset = &offset
	return ceq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (ceq *CalibrationEventQuery) Unique(unique bool) *CalibrationEventQuery {
	ceq.ctx.Unique = &unique
	return ceq
}

// Order specifies how the records should be ordered.
func (ceq *CalibrationEventQuery) Order(o ...calibrationevent.OrderOption) *CalibrationEventQuery {
	ceq.order = append(ceq.order, o...)
	return ceq
}

// First returns the first CalibrationEvent entity from the query.
// Returns a *NotFoundError when no CalibrationEvent was found.
func (ceq *CalibrationEventQuery) First(ctx context.Context) (*CalibrationEvent, error) {
	nodes, err := ceq.Limit(1).All(setContextOp(ctx, ceq.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{calibrationevent.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (ceq *CalibrationEventQuery) FirstX(ctx context.Context) *CalibrationEvent {
	node, err := ceq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first CalibrationEvent ID from the query.
// Returns a *NotFoundError when no CalibrationEvent ID was found.
func (ceq *CalibrationEventQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = ceq.Limit(1).IDs(setContextOp(ctx, ceq.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{calibrationevent.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (ceq *CalibrationEventQuery) FirstIDX(ctx context.Context) int {
	id, err := ceq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single CalibrationEvent entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one CalibrationEvent entity is found.
// Returns a *NotFoundError when no CalibrationEvent entities are found.
func (ceq *CalibrationEventQuery) Only(ctx context.Context) (*CalibrationEvent, error) {
	nodes, err := ceq.Limit(2).All(setContextOp(ctx, ceq.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{calibrationevent.Label}
	default:
		return nil, &NotSingularError{calibrationevent.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (ceq *CalibrationEventQuery) OnlyX(ctx context.Context) *CalibrationEvent {
	node, err := ceq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only CalibrationEvent ID in the query.
// Returns a *NotSingularError when more than one CalibrationEvent ID is found.
// Returns a *NotFoundError when no entities are found.
func (ceq *CalibrationEventQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = ceq.Limit(2).IDs(setContextOp(ctx, ceq.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{calibrationevent.Label}
	default:
		err = &NotSingularError{calibrationevent.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (ceq *CalibrationEventQuery) OnlyIDX(ctx context.Context) int {
	id, err := ceq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of CalibrationEvents.
func (ceq *CalibrationEventQuery) All(ctx context.Context) ([]*CalibrationEvent, error) {
	ctx = setContextOp(ctx, ceq.ctx, ent.OpQueryAll)
	if err := ceq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*CalibrationEvent, *CalibrationEventQuery]()
	return withInterceptors[[]*CalibrationEvent](ctx, ceq, qr, ceq.inters)
}

// AllX is like All, but panics if an error occurs.
func (ceq *CalibrationEventQuery) AllX(ctx context.Context) []*CalibrationEvent {
	nodes, err := ceq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of CalibrationEvent IDs.
func (ceq *CalibrationEventQuery) IDs(ctx context.Context) (ids []int, err error) {
	if ceq.ctx.Unique == nil && ceq.path != nil {
		ceq.Unique(true)
	}
	ctx = setContextOp(ctx, ceq.ctx, ent.OpQueryIDs)
	if err = ceq.Select(calibrationevent.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (ceq *CalibrationEventQuery) IDsX(ctx context.Context) []int {
	ids, err := ceq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (ceq *CalibrationEventQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, ceq.ctx, ent.OpQueryCount)
	if err := ceq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, ceq, querierCount[*CalibrationEventQuery](), ceq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (ceq *CalibrationEventQuery) CountX(ctx context.Context) int {
	count, err := ceq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (ceq *CalibrationEventQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, ceq.ctx, ent.OpQueryExist)
	switch _, err := ceq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (ceq *CalibrationEventQuery) ExistX(ctx context.Context) bool {
	exist, err := ceq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the CalibrationEventQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (ceq *CalibrationEventQuery) Clone() *CalibrationEventQuery {
	if ceq == nil {
		return nil
	}
	return &CalibrationEventQuery{
		config:     ceq.config,
		ctx:        ceq.ctx.Clone(),
		order:      append([]calibrationevent.OrderOption{}, ceq.order...),
		inters:     append([]Interceptor{}, ceq.inters...),
		predicates: append([]predicate.CalibrationEvent{}, ceq.predicates...),
		// clone intermediate query.
		sql:  ceq.sql.Clone(),
		path: ceq.path,
	}
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		Sequence int64 `json:"sequence,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.CalibrationEvent.Query().
//		GroupBy(calibrationevent.FieldSequence).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (ceq *CalibrationEventQuery) GroupBy(field string, fields ...string) *CalibrationEventGroupBy {
	ceq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &CalibrationEventGroupBy{build: ceq}
	grbuild.flds = &ceq.ctx.Fields
	grbuild.label = calibrationevent.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		Sequence int64 `json:"sequence,omitempty"`
//	}
//
//	client.CalibrationEvent.Query().
//		Select(calibrationevent.FieldSequence).
//		Scan(ctx, &v)
func (ceq *CalibrationEventQuery) Select(fields ...string) *CalibrationEventSelect {
	ceq.ctx.Fields = append(ceq.ctx.Fields, fields...)
	sbuild := &CalibrationEventSelect{CalibrationEventQuery: ceq}
	sbuild.label = calibrationevent.Label
	sbuild.flds, sbuild.scan = &ceq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a CalibrationEventSelect configured with the given aggregations.
func (ceq *CalibrationEventQuery) Aggregate(fns ...AggregateFunc) *CalibrationEventSelect {
	return ceq.Select().Aggregate(fns...)
}

func (ceq *CalibrationEventQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range ceq.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, ceq); err != nil {
				return err
			}
		}
	}
	for _, f := range ceq.ctx.Fields {
		if !calibrationevent.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if ceq.path != nil {
		prev, err := ceq.path(ctx)
		if err != nil {
			return err
		}
		ceq.sql = prev
	}
	return nil
}

func (ceq *CalibrationEventQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*CalibrationEvent, error) {
	var (
		nodes = []*CalibrationEvent{}
		_spec = ceq.querySpec()
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*CalibrationEvent).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &CalibrationEvent{config: ceq.config}
		nodes = append(nodes, node)
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, ceq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	return nodes, nil
}

func (ceq *CalibrationEventQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := ceq.querySpec()
	_spec.Node.Columns = ceq.ctx.Fields
	if len(ceq.ctx.Fields) > 0 {
		_spec.Unique = ceq.ctx.Unique != nil && *ceq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, ceq.driver, _spec)
}

func (ceq *CalibrationEventQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(calibrationevent.Table, calibrationevent.Columns, sqlgraph.NewFieldSpec(calibrationevent.FieldID, field.TypeInt))
	_spec.From = ceq.sql
	if unique := ceq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if ceq.path != nil {
		_spec.Unique = true
	}
	if fields := ceq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, calibrationevent.FieldID)
		for i := range fields {
			if fields[i] != calibrationevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := ceq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := ceq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := ceq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := ceq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (ceq *CalibrationEventQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(ceq.driver.Dialect())
	t1 := builder.Table(calibrationevent.Table)
	columns := ceq.ctx.Fields
	if len(columns) == 0 {
		columns = calibrationevent.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if ceq.sql != nil {
		selector = ceq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if ceq.ctx.Unique != nil && *ceq.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range ceq.predicates {
		p(selector)
	}
	for _, p := range ceq.order {
		p(selector)
	}
	if offset := ceq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := ceq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// CalibrationEventGroupBy is the group-by builder for CalibrationEvent entities.
type CalibrationEventGroupBy struct {
	selector
	build *CalibrationEventQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (cegb *CalibrationEventGroupBy) Aggregate(fns ...AggregateFunc) *CalibrationEventGroupBy {
	cegb.fns = append(cegb.fns, fns...)
	return cegb
}

// Scan applies the selector query and scans the result into the given value.
func (cegb *CalibrationEventGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, cegb.build.ctx, ent.OpQueryGroupBy)
	if err := cegb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*CalibrationEventQuery, *CalibrationEventGroupBy](ctx, cegb.build, cegb, cegb.build.inters, v)
}

func (cegb *CalibrationEventGroupBy) sqlScan(ctx context.Context, root *CalibrationEventQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(cegb.fns))
	for _, fn := range cegb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*cegb.flds)+len(cegb.fns))
		for _, f := range *cegb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*cegb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := cegb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// CalibrationEventSelect is the builder for selecting fields of CalibrationEvent entities.
type CalibrationEventSelect struct {
	*CalibrationEventQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (ces *CalibrationEventSelect) Aggregate(fns ...AggregateFunc) *CalibrationEventSelect {
	ces.fns = append(ces.fns, fns...)
	return ces
}

// Scan applies the selector query and scans the result into the given value.
func (ces *CalibrationEventSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, ces.ctx, ent.OpQuerySelect)
	if err := ces.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*CalibrationEventQuery, *CalibrationEventSelect](ctx, ces.CalibrationEventQuery, ces, ces.inters, v)
}

func (ces *CalibrationEventSelect) sqlScan(ctx context.Context, root *CalibrationEventQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(ces.fns))
	for _, fn := range ces.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*ces.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := ces.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
