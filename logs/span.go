package logs

type Span string

type spanKey struct{}

// SpanKey is the context key carrying the current Span.
var SpanKey = spanKey{}
