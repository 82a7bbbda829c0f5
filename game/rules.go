package game

import "fmt"

type Rules interface {
	// WarDrawCount is the number of face-down cards each player puts in the pot per war round
	WarDrawCount() int
	Name() string
}

// NewRules looks up a rule set by name, the empty name picks the standard rules.
func NewRules(name string) (Rules, error) {
	switch name {
	case "", StandardRulesName:
		return NewStandardRules(), nil
	case ClassicRulesName:
		return NewClassicRules(), nil
	default:
		return nil, fmt.Errorf("unknown rules %q", name)
	}
}
