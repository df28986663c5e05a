package olympiad

// PresetPrompt is the problem shown when the app starts.
const PresetPrompt = "Let M be the midpoint of side BC in a triangle ABC. Prove that AM < (AB + AC) / 2."

// ClassicProblem is a well-known problem offered as a starting point.
type ClassicProblem struct {
	Name   string
	Prompt string
}

var classics = []ClassicProblem{
	{Name: "Triangle Inequality on Median", Prompt: PresetPrompt},
	{Name: "Ptolemy's Theorem", Prompt: "For a cyclic quadrilateral ABCD, prove that the sum of the products of opposite sides equals the product of the diagonals: AB * CD + BC * DA = AC * BD."},
	{Name: "Angle Bisector Theorem", Prompt: "In a triangle ABC, let the angle bisector of angle A intersect side BC at a point D. Prove that AB/AC = BD/DC."},
	{Name: "Ceva's Theorem", Prompt: "In a triangle ABC, let lines AD, BE, CF be cevians that intersect at a point P. Prove that (AF/FB) * (BD/DC) * (CE/EA) = 1."},
}

// ClassicProblems returns a copy of the built-in classic problems.
func ClassicProblems() []ClassicProblem {
	out := make([]ClassicProblem, len(classics))
	copy(out, classics)
	return out
}
