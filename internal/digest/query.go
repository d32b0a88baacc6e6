package digest

import (
	"fmt"
	"strings"
)

// DefaultTopic is searched when a request names no topic.
const DefaultTopic = "shipping industry"

// DefaultEntities are the organizations searched when a request names none.
// The summary prompt always names these.
var DefaultEntities = []string{"Maersk", "CMA CGM", "Hapag-Lloyd", "MSC", "ONE"}

// Query is a topic plus the entity names it is combined with.
type Query struct {
	Topic    string
	Entities []string
}

// NewQuery returns a Query, substituting DefaultTopic for an empty topic and
// DefaultEntities for a nil entity list.
func NewQuery(topic string, entities []string) Query {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		topic = DefaultTopic
	}
	if entities == nil {
		entities = append([]string(nil), DefaultEntities...)
	}
	return Query{Topic: topic, Entities: entities}
}

// String renders the free-text search expression:
//
//	<topic> podcast OR interview OR news "<e1>" OR "<e2>" ...
func (q Query) String() string {
	quoted := make([]string, len(q.Entities))
	for i, e := range q.Entities {
		quoted[i] = `"` + e + `"`
	}
	return q.Topic + " podcast OR interview OR news " + strings.Join(quoted, " OR ")
}

// NormalizeEntities converts a decoded JSON value into an entity list.
// nil means "not given" and yields (nil, nil) so NewQuery applies the default.
// A string becomes a one-element list; an array must hold strings. Blank
// names are dropped, and an empty result is ErrInvalidInput.
func NormalizeEntities(v any) ([]string, error) {
	var raw []any
	switch t := v.(type) {
	case nil:
		return nil, nil
	case string:
		raw = []any{t}
	case []string:
		for _, s := range t {
			raw = append(raw, s)
		}
	case []any:
		raw = t
	default:
		return nil, fmt.Errorf("%w: company/companies must be a non-empty list or string", ErrInvalidInput)
	}

	entities := make([]string, 0, len(raw))
	for _, item := range raw {
		s, ok := item.(string)
		if !ok {
			return nil, fmt.Errorf("%w: company/companies must contain only strings", ErrInvalidInput)
		}
		if s = strings.TrimSpace(s); s != "" {
			entities = append(entities, s)
		}
	}
	if len(entities) == 0 {
		return nil, fmt.Errorf("%w: company/companies must be a non-empty list or string", ErrInvalidInput)
	}
	return entities, nil
}
