// Package question generates the technology-tailored interview questions asked
// at the end of the screening conversation.
package question

import "context"

// MaxQuestions caps the number of questions asked in one interview.
const MaxQuestions = 5

type Request struct {
	TechStack       string
	YearsExperience float64

	// Count is the desired number of questions; zero means MaxQuestions.
	Count int
}

type Generator interface {
	GenerateQuestions(ctx context.Context, req *Request) ([]string, error)
}
