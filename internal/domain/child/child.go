package child

import (
	"fmt"
	"strconv"
	"strings"
)

// Child is a recognized player and the bank version they practise on.
type Child struct {
	Name        string
	BankVersion int
}

// Roster is the fixed set of recognized children, in display order.
type Roster struct {
	children []Child
	byName   map[string]Child
}

// Normalize trims and lower-cases a candidate name.
func Normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func NewRoster(children ...Child) *Roster {
	r := &Roster{byName: make(map[string]Child, len(children))}
	for _, c := range children {
		c.Name = Normalize(c.Name)
		if _, dup := r.byName[c.Name]; dup {
			continue
		}
		r.children = append(r.children, c)
		r.byName[c.Name] = c
	}
	return r
}

// ParseRoster reads a "name:version,name:version" list.
func ParseRoster(list string) (*Roster, error) {
	var children []Child
	for _, entry := range strings.Split(list, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		name, version, ok := strings.Cut(entry, ":")
		if !ok || Normalize(name) == "" {
			return nil, fmt.Errorf("roster entry %q: expected name:version", entry)
		}
		v, err := strconv.Atoi(strings.TrimSpace(version))
		if err != nil || v <= 0 {
			return nil, fmt.Errorf("roster entry %q: invalid bank version", entry)
		}
		children = append(children, Child{Name: name, BankVersion: v})
	}
	if len(children) == 0 {
		return nil, fmt.Errorf("roster %q has no children", list)
	}
	return NewRoster(children...), nil
}

// Lookup reports whether name (after normalization) is recognized.
func (r *Roster) Lookup(name string) (Child, bool) {
	c, ok := r.byName[Normalize(name)]
	return c, ok
}

func (r *Roster) Children() []Child {
	return r.children
}

func (r *Roster) Names() []string {
	names := make([]string, len(r.children))
	for i, c := range r.children {
		names[i] = c.Name
	}
	return names
}
