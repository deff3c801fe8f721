package production

// QueryResult separates "the store answered with rows", "the store answered with nothing"
// and "the store failed", so callers can pick a policy for each.
type QueryResult[T any] struct {
	Rows []T
	Err  error
}

func Ok[T any](rows []T) QueryResult[T] {
	return QueryResult[T]{Rows: rows}
}

func Failed[T any](err error) QueryResult[T] {
	return QueryResult[T]{Err: err}
}

func (r QueryResult[T]) Failed() bool {
	return r.Err != nil
}

// Empty reports a successful query that returned no rows.
func (r QueryResult[T]) Empty() bool {
	return r.Err == nil && len(r.Rows) == 0
}
