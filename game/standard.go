package game

const (
	StandardRulesName    = "standard"
	StandardWarDrawCount = 3

	ClassicRulesName    = "classic"
	ClassicWarDrawCount = 1
)

type StandardRules struct {
	FaceDown int
}

// NewStandardRules plays three cards face down before the deciding face-up card.
func NewStandardRules() *StandardRules {
	return &StandardRules{
		FaceDown: StandardWarDrawCount,
	}
}

func (sr *StandardRules) WarDrawCount() int {
	return sr.FaceDown
}

func (sr *StandardRules) Name() string {
	return StandardRulesName
}

type ClassicRules struct {
	FaceDown int
}

// NewClassicRules plays a single face-down card per war round.
func NewClassicRules() *ClassicRules {
	return &ClassicRules{
		FaceDown: ClassicWarDrawCount,
	}
}

func (cr *ClassicRules) WarDrawCount() int {
	return cr.FaceDown
}

func (cr *ClassicRules) Name() string {
	return ClassicRulesName
}
