package qmap

// Map is exactly one worldspawn entity plus an ordered list of other
// entities. Connector entities and all other non-worldspawn entities live
// in Entities; worldspawn is held out separately because the format
// always emits it first and because most traversals need to treat its
// brushes as "the world" rather than as just another entity's brushes.
type Map struct {
	Worldspawn *Entity
	Entities   []*Entity
}

// EmptyBase returns a map with an empty worldspawn and no other
// entities — the seed root that tile placement grows from.
func EmptyBase() *Map {
	return &Map{Worldspawn: NewEntity("worldspawn")}
}

// NewMap builds a Map from a flat entity list, pulling out the first
// worldspawn entity found. Returns ErrNoWorldspawn if none is present.
func NewMap(entities []*Entity) (*Map, error) {
	for i, e := range entities {
		if e.Classname() == "worldspawn" {
			rest := make([]*Entity, 0, len(entities)-1)
			rest = append(rest, entities[:i]...)
			rest = append(rest, entities[i+1:]...)
			return &Map{Worldspawn: e, Entities: rest}, nil
		}
	}
	return nil, ErrNoWorldspawn
}

// Merge appends other's worldspawn brushes and entities onto m, in place.
// Entity order is preserved: m's entities first, then other's.
func (m *Map) Merge(other *Map) {
	if other.Worldspawn != nil {
		m.Worldspawn.Brushes = append(m.Worldspawn.Brushes, other.Worldspawn.Brushes...)
	}
	m.Entities = append(m.Entities, other.Entities...)
}

// Clone returns a deep copy of the map, suitable for placement attempts
// that mutate a tile's geometry in place and may need to be discarded.
func (m *Map) Clone() *Map {
	clone := &Map{Entities: make([]*Entity, len(m.Entities))}
	if m.Worldspawn != nil {
		clone.Worldspawn = m.Worldspawn.Clone()
	}
	for i, e := range m.Entities {
		clone.Entities[i] = e.Clone()
	}
	return clone
}

// RemoveEntity removes the entity at index i, preserving the order of the
// rest.
func (m *Map) RemoveEntity(i int) {
	m.Entities = append(m.Entities[:i], m.Entities[i+1:]...)
}
