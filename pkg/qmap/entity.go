package qmap

// Entity is a classname plus an ordered set of string parameters and an
// ordered list of brushes (empty for point entities). Params is keyed by
// name for O(1) lookup; order is tracked separately in paramOrder because
// Go maps have no stable iteration order and the on-disk format must
// round-trip key order byte-for-byte.
type Entity struct {
	Params     map[string]string
	paramOrder []string
	Brushes    []*Brush
}

// NewEntity creates an entity with the given classname.
func NewEntity(classname string) *Entity {
	e := &Entity{Params: make(map[string]string)}
	e.SetParam("classname", classname)
	return e
}

// Classname returns the entity's classname, or "" if unset.
func (e *Entity) Classname() string {
	return e.Params["classname"]
}

// SetParam sets key to value, appending key to the emission order on
// first use and leaving the order unchanged on update.
func (e *Entity) SetParam(key, value string) {
	if e.Params == nil {
		e.Params = make(map[string]string)
	}
	if _, exists := e.Params[key]; !exists {
		e.paramOrder = append(e.paramOrder, key)
	}
	e.Params[key] = value
}

// DeleteParam removes key from the entity, if present.
func (e *Entity) DeleteParam(key string) {
	if _, exists := e.Params[key]; !exists {
		return
	}
	delete(e.Params, key)
	for i, k := range e.paramOrder {
		if k == key {
			e.paramOrder = append(e.paramOrder[:i], e.paramOrder[i+1:]...)
			break
		}
	}
}

// ParamOrder returns the keys in insertion order, classname first if
// present (matching how the serializer emits entities: classname always
// leads, everything else follows in the order it was parsed or set).
func (e *Entity) ParamOrder() []string {
	order := make([]string, 0, len(e.paramOrder))
	if _, ok := e.Params["classname"]; ok {
		order = append(order, "classname")
	}
	for _, k := range e.paramOrder {
		if k == "classname" {
			continue
		}
		order = append(order, k)
	}
	return order
}

// Clone returns a deep copy of the entity and its brushes.
func (e *Entity) Clone() *Entity {
	clone := &Entity{
		Params:     make(map[string]string, len(e.Params)),
		paramOrder: append([]string(nil), e.paramOrder...),
		Brushes:    make([]*Brush, len(e.Brushes)),
	}
	for k, v := range e.Params {
		clone.Params[k] = v
	}
	for i, b := range e.Brushes {
		clone.Brushes[i] = b.Clone()
	}
	return clone
}
