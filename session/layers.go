package session

import "github.com/RezixDev/map-editor/levels"

// mutate runs fn and records the prior map only when fn reports a change.
func (s *Session) mutate(fn func(m *levels.Map) bool) bool {
	before := s.Map.Clone()
	if !fn(s.Map) {
		return false
	}
	s.history.Checkpoint(before)
	return true
}

// AddLayer pushes a new layer on top and makes it active.
func (s *Session) AddLayer(name string) string {
	var id string
	s.mutate(func(m *levels.Map) bool {
		id = m.AddLayer(name).ID
		return true
	})
	s.active = id
	return id
}

func (s *Session) RemoveLayer(id string) bool {
	i := s.Map.LayerIndex(id)
	ok := s.mutate(func(m *levels.Map) bool { return m.RemoveLayer(id) })
	if ok && id == s.active {
		s.active = s.Map.Layers[max(0, min(i, len(s.Map.Layers)-1))].ID
	}
	return ok
}

func (s *Session) MoveLayer(id string, to int) bool {
	return s.mutate(func(m *levels.Map) bool { return m.MoveLayer(id, to) })
}

func (s *Session) RenameLayer(id, name string) (string, bool) {
	var applied string
	ok := s.mutate(func(m *levels.Map) bool {
		l := m.LayerByID(id)
		if l == nil || l.Name == name {
			return false
		}
		var ok bool
		applied, ok = m.RenameLayer(id, name)
		return ok
	})
	return applied, ok
}

func (s *Session) SetLayerVisible(id string, visible bool) bool {
	return s.mutate(func(m *levels.Map) bool {
		l := m.LayerByID(id)
		if l == nil || l.Visible == visible {
			return false
		}
		return m.SetVisible(id, visible)
	})
}

func (s *Session) SetLayerOpacity(id string, opacity float64) bool {
	opacity = max(0, min(opacity, 1))
	return s.mutate(func(m *levels.Map) bool {
		l := m.LayerByID(id)
		if l == nil || l.Opacity == opacity {
			return false
		}
		return m.SetOpacity(id, opacity)
	})
}
