package repository

import "github.com/doug-martin/goqu/v9"

// QueryBuilder collects optional list filters from a handler and turns
// them into a goqu expression, mapping request field names onto the
// aliased columns of the repository's joined query.
type QueryBuilder interface {
	AddCondition(key string, value interface{})
	BuildConditions(aliases map[string]string) goqu.Ex
	HasConditions() bool
}

type queryBuilder struct {
	conditions map[string]interface{}
}

func NewQueryBuilder() QueryBuilder {
	return &queryBuilder{
		conditions: make(map[string]interface{}),
	}
}

func (q *queryBuilder) AddCondition(key string, value interface{}) {
	q.conditions[key] = value
}

func (q *queryBuilder) HasConditions() bool {
	return len(q.conditions) > 0
}

func (q *queryBuilder) BuildConditions(aliases map[string]string) goqu.Ex {
	conditions := goqu.Ex{}
	for key, value := range q.conditions {
		if alias, ok := aliases[key]; ok {
			conditions[alias] = value
		} else {
			conditions[key] = value
		}
	}
	return conditions
}
