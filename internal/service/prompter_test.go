package service

import "io"

// scriptedPrompter replays answers in order and records everything it was told.
type scriptedPrompter struct {
	answers   []string
	questions []string
	said      []string
}

func (p *scriptedPrompter) Ask(question string) (string, error) {
	p.questions = append(p.questions, question)
	if len(p.answers) == 0 {
		return "", io.EOF
	}
	answer := p.answers[0]
	p.answers = p.answers[1:]
	return answer, nil
}

func (p *scriptedPrompter) Say(text string) {
	p.said = append(p.said, text)
}
