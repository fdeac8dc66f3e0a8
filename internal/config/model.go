package config

import "fmt"

// StatementKind identifies the three statements a settings file may contain.
type StatementKind int

const (
	// StatementRootName sets the cosmetic name of the whole registry.
	StatementRootName StatementKind = iota + 1
	// StatementInclude registers an identifier with its conventional directory.
	StatementInclude
	// StatementSetDirectory overrides the directory of an included identifier.
	StatementSetDirectory
)

func (k StatementKind) String() string {
	switch k {
	case StatementRootName:
		return "rootName"
	case StatementInclude:
		return "include"
	case StatementSetDirectory:
		return "setDirectory"
	default:
		return fmt.Sprintf("StatementKind(%d)", int(k))
	}
}

// Position is the source location of a statement.
type Position struct {
	File string
	Line int
}

func (p Position) String() string {
	if p.Line <= 0 {
		return p.File
	}
	return fmt.Sprintf("%s:%d", p.File, p.Line)
}

// Statement is the format-agnostic representation of one settings statement.
type Statement struct {
	Kind       StatementKind
	Identifier string // include, setDirectory
	Directory  string // setDirectory
	Name       string // rootName
	Pos        Position
}

// Settings is the ordered list of statements read from one settings file.
type Settings struct {
	Source     string
	Statements []Statement
}

// RootName returns the name set by the last rootName statement, if any.
func (s *Settings) RootName() string {
	name := ""
	for _, stmt := range s.Statements {
		if stmt.Kind == StatementRootName {
			name = stmt.Name
		}
	}
	return name
}

// AddRootName appends a rootName statement.
func (s *Settings) AddRootName(name string, pos Position) {
	s.Statements = append(s.Statements, Statement{Kind: StatementRootName, Name: name, Pos: pos})
}

// AddInclude appends an include statement.
func (s *Settings) AddInclude(id string, pos Position) {
	s.Statements = append(s.Statements, Statement{Kind: StatementInclude, Identifier: id, Pos: pos})
}

// AddSetDirectory appends a setDirectory statement.
func (s *Settings) AddSetDirectory(id, dir string, pos Position) {
	s.Statements = append(s.Statements, Statement{Kind: StatementSetDirectory, Identifier: id, Directory: dir, Pos: pos})
}
