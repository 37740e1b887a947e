package database

import (
	"fmt"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"prana/internal/domain/query"
)

// toFilter renders a query spec as a Mongo filter document. Clauses are
// joined with $and, multi-condition clauses become $or.
func toFilter(spec query.Spec) (bson.M, error) {
	and := bson.A{}

	for _, clause := range spec.Clauses {
		conds := make(bson.A, 0, len(clause.Any))
		for _, c := range clause.Any {
			cond, err := toCondition(c)
			if err != nil {
				return nil, err
			}
			conds = append(conds, cond)
		}

		switch len(conds) {
		case 0:
			continue
		case 1:
			and = append(and, conds[0])
		default:
			and = append(and, bson.M{"$or": conds})
		}
	}

	if len(and) == 0 {
		return bson.M{}, nil
	}

	return bson.M{"$and": and}, nil
}

func toCondition(c query.Condition) (bson.M, error) {
	switch c.Operator {
	case query.Equal:
		return bson.M{c.Field: c.Value}, nil
	case query.In:
		return bson.M{c.Field: bson.M{"$in": c.Value}}, nil
	case query.ContainsFold:
		s, ok := c.Value.(string)
		if !ok {
			return nil, fmt.Errorf("operator %s on %s needs a string value", c.Operator, c.Field)
		}

		return bson.M{c.Field: primitive.Regex{Pattern: regexp.QuoteMeta(s), Options: "i"}}, nil
	default:
		return nil, fmt.Errorf("unsupported operator %q", c.Operator)
	}
}

func toSort(fields []query.SortField) bson.D {
	sort := make(bson.D, 0, len(fields))
	for _, f := range fields {
		dir := 1
		if f.Desc {
			dir = -1
		}
		sort = append(sort, bson.E{Key: f.Field, Value: dir})
	}

	return sort
}
