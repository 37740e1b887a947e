package query

// Operator names how a Condition compares a field with its value.
type Operator string

const (
	// Equal matches documents whose field equals Value.
	Equal Operator = "eq"
	// In matches documents whose field (or any element of an array field) is one of Value.
	In Operator = "in"
	// ContainsFold matches documents whose string field contains Value, ignoring case.
	ContainsFold Operator = "icontains"
)

type Condition struct {
	Field    string
	Operator Operator
	Value    any
}

// Clause holds when at least one of its conditions holds.
type Clause struct {
	Any []Condition
}

type SortField struct {
	Field string
	Desc  bool
}

// Spec is a store-independent query: every clause must hold, results are
// ordered by Sort and windowed by Skip and Limit.
type Spec struct {
	Clauses []Clause
	Sort    []SortField
	Skip    int64
	Limit   int64
}

// Where appends a single-condition clause.
func (s *Spec) Where(field string, op Operator, value any) {
	s.Clauses = append(s.Clauses, Clause{Any: []Condition{{Field: field, Operator: op, Value: value}}})
}

// WhereAny appends a clause that holds when any of conds holds.
func (s *Spec) WhereAny(conds ...Condition) {
	if len(conds) == 0 {
		return
	}

	s.Clauses = append(s.Clauses, Clause{Any: conds})
}
