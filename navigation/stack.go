package navigation

// Stack holds the navigation history used for back navigation.
type Stack struct {
	entries []RouteDefinition
}

// NewStack creates an empty stack.
func NewStack() *Stack {
	return &Stack{
		entries: make([]RouteDefinition, 0),
	}
}

// Push adds a route on top of the stack.
func (s *Stack) Push(def RouteDefinition) {
	s.entries = append(s.entries, def)
}

// Pop removes and returns the top route. ok is false if the stack is empty.
func (s *Stack) Pop() (def RouteDefinition, ok bool) {
	if len(s.entries) == 0 {
		return RouteDefinition{}, false
	}
	def = s.entries[len(s.entries)-1]
	s.entries = s.entries[:len(s.entries)-1]
	return def, true
}

// Peek returns the top route without removing it.
func (s *Stack) Peek() (RouteDefinition, bool) {
	if len(s.entries) == 0 {
		return RouteDefinition{}, false
	}
	return s.entries[len(s.entries)-1], true
}

func (s *Stack) Len() int {
	return len(s.entries)
}
