package shared

const (
	// MaxAttributeAdvances is the most advances a single attribute can accumulate.
	MaxAttributeAdvances = 20

	// MaxSkillRank is the highest rank an owned skill can reach.
	MaxSkillRank = 10
)
