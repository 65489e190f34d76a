package page

// ordered is a map that remembers insertion order. Overwriting a key keeps
// its original position.
type ordered[V any] struct {
	index  map[string]int
	keys   []string
	values []V
}

func newOrdered[V any]() *ordered[V] {
	return &ordered[V]{index: make(map[string]int)}
}

func (o *ordered[V]) get(key string) (V, bool) {
	i, ok := o.index[key]
	if !ok {
		var zero V
		return zero, false
	}
	return o.values[i], true
}

// set stores v and reports whether key was already present.
func (o *ordered[V]) set(key string, v V) bool {
	if i, ok := o.index[key]; ok {
		o.values[i] = v
		return true
	}
	o.index[key] = len(o.keys)
	o.keys = append(o.keys, key)
	o.values = append(o.values, v)
	return false
}

func (o *ordered[V]) delete(key string) (V, bool) {
	i, ok := o.index[key]
	if !ok {
		var zero V
		return zero, false
	}
	v := o.values[i]
	delete(o.index, key)
	o.keys = append(o.keys[:i], o.keys[i+1:]...)
	o.values = append(o.values[:i], o.values[i+1:]...)
	for j := i; j < len(o.keys); j++ {
		o.index[o.keys[j]] = j
	}
	return v, true
}

func (o *ordered[V]) len() int {
	return len(o.keys)
}

// each visits a snapshot of the entries, so fn may delete while iterating.
func (o *ordered[V]) each(fn func(key string, v V)) {
	keys := append([]string(nil), o.keys...)
	values := append([]V(nil), o.values...)
	for i, k := range keys {
		fn(k, values[i])
	}
}
