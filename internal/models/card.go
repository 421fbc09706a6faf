package models

type Card struct {
	Term       string
	Definition string
	Mistakes   int `validate:"min=0"`
}

// Verdict is the outcome of checking one answer.
type Verdict struct {
	Card    Card
	Answer  string
	Correct bool
	// Matched is set when a wrong answer is the definition of another card,
	// whose term is MatchedTerm. The term itself may be empty.
	Matched     bool
	MatchedTerm string
}

type Hardest struct {
	Terms    []string
	Mistakes int
}
