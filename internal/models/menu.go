package models

// Node is an element of the generated menu tree: *Menu or *Program
type Node interface {
	node()
}

// Menu is a labeled container of nodes
type Menu struct {
	Label    string
	Children []Node
}

// Program is a launchable leaf
type Program struct {
	Label   string // Display name, may be empty
	Command string // Sanitized launch command
	Icon    string // Icon name or path, may be empty
}

func (*Menu) node()    {}
func (*Program) node() {}

// NewMenu creates an empty menu
func NewMenu(label string) *Menu {
	return &Menu{Label: label}
}

// Append adds a child node
func (m *Menu) Append(n Node) {
	m.Children = append(m.Children, n)
}

// Submenus returns the direct child menus
func (m *Menu) Submenus() []*Menu {
	var menus []*Menu
	for _, n := range m.Children {
		if sub, ok := n.(*Menu); ok {
			menus = append(menus, sub)
		}
	}
	return menus
}

// Programs returns the direct child programs
func (m *Menu) Programs() []*Program {
	var programs []*Program
	for _, n := range m.Children {
		if p, ok := n.(*Program); ok {
			programs = append(programs, p)
		}
	}
	return programs
}

// CountPrograms returns the number of programs in the whole tree
func (m *Menu) CountPrograms() int {
	count := 0
	for _, n := range m.Children {
		switch v := n.(type) {
		case *Program:
			count++
		case *Menu:
			count += v.CountPrograms()
		}
	}
	return count
}
