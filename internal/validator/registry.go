package validator

// Registry holds validators in registration order.
type Registry struct {
	validators []Validator
	index      map[string]int
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{index: make(map[string]int)}
}

// Register adds a validator. A validator with an already-registered rule key
// replaces the earlier one in place.
func (r *Registry) Register(v Validator) {
	if i, ok := r.index[v.RuleKey()]; ok {
		r.validators[i] = v
		return
	}
	r.index[v.RuleKey()] = len(r.validators)
	r.validators = append(r.validators, v)
}

// Get returns the validator for a given rule key, or nil if not found.
func (r *Registry) Get(key string) Validator {
	i, ok := r.index[key]
	if !ok {
		return nil
	}
	return r.validators[i]
}

// All returns all registered validators in registration order.
func (r *Registry) All() []Validator {
	out := make([]Validator, len(r.validators))
	copy(out, r.validators)
	return out
}
