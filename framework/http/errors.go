package http

// Errors holds per-parameter validation messages, like Laravel's MessageBag.
// JSON output: {"errors": {"field": ["msg1", "msg2"]}}
type Errors struct {
	Bag map[string][]string `json:"errors"`
}

// Add appends a message for field.
func (e *Errors) Add(field, msg string) {
	if e.Bag == nil {
		e.Bag = make(map[string][]string)
	}
	e.Bag[field] = append(e.Bag[field], msg)
}

// Has returns true if there are any errors.
func (e *Errors) Has() bool { return len(e.Bag) > 0 }

// HasField returns true if field has at least one message.
func (e *Errors) HasField(field string) bool { return len(e.Bag[field]) > 0 }

// First returns the first error for a field.
func (e *Errors) First(field string) string {
	if msgs, ok := e.Bag[field]; ok && len(msgs) > 0 {
		return msgs[0]
	}
	return ""
}

// Get returns all messages for a field.
func (e *Errors) Get(field string) []string { return e.Bag[field] }
