// Package dialogue owns the outbound message catalog of the screening
// conversation and the optional best-effort enrichment of those messages.
package dialogue

import "fmt"

func Greeting() string {
	return "Hello! 👋 Welcome to TalentScout's AI-powered hiring assistant. I'm here to streamline your interview process by gathering essential information. This will take about 10-15 minutes. Let's get started! Could you please tell me your full name?"
}

func AskEmail(name string) string {
	return fmt.Sprintf("Nice to meet you, %s! 😊 Please provide your email address.", name)
}

func RepromptName() string {
	return "I'd like to make sure I have your name correctly. Could you please provide your full name?"
}

func AskPhone() string {
	return "Great! Now, what is your contact phone number?"
}

func RepromptEmail() string {
	return "Please provide a valid email address (e.g., name@example.com)."
}

func AskExperience() string {
	return "Perfect! How many years of professional experience do you have?"
}

func RepromptPhone() string {
	return "Please provide a valid phone number."
}

func AskPosition() string {
	return "Excellent! What position(s) are you interested in?"
}

func RepromptExperience() string {
	return "Please provide your years of experience as a number (e.g., 2, 3.5)."
}

func AskLocation() string {
	return "Great choice! What's your current location? (City, Country)"
}

func RepromptPosition() string {
	return "Please tell me what position(s) you're interested in. An answer like 'nothing' is not a valid role."
}

func AskTechStack() string {
	return "Perfect! Now for the technical part. 🔧 Please list your tech stack: programming languages, frameworks, databases, and any other relevant tools."
}

func RepromptLocation() string {
	return "Please provide a valid location (e.g., 'Pune, India' or 'San Francisco, CA')."
}

func RepromptTechStack() string {
	return "Please describe your technical skills and expertise."
}

func QuestionIntro(total int, first string) string {
	return fmt.Sprintf("Excellent! I've prepared %d questions. Let's begin:\n\n**Question 1/%d:**\n%s", total, total, first)
}

// NextQuestion frames the index-th question (1-based) of total.
func NextQuestion(index, total int, question string) string {
	return fmt.Sprintf("Thank you. **Question %d/%d:**\n%s", index, total, question)
}

func RepromptAnswer() string {
	return "Please provide an answer to the question."
}

func GenerationTrouble() string {
	return "Thank you. I seem to be having trouble generating questions right now."
}

func Apology() string {
	return "I apologize, but I encountered an issue. Please try again, or type 'end' to quit."
}

// Ending composes the closing message, referencing the stored name and email
// when present.
func Ending(name, email string) string {
	if name == "" {
		name = "there"
	}
	message := fmt.Sprintf("Thank you, %s! 🎉 I've collected all the necessary information. Our recruitment team will review your profile and contact you within 2-3 business days if there's a good match.", name)
	if email != "" {
		message += fmt.Sprintf(" We'll reach out at %s.", email)
	}
	return message + " Best of luck with your job search! 🚀"
}

var fallbackMessages = []string{
	"I didn't quite understand. Could you rephrase?",
	"Let's stay focused. Please answer the current question.",
}

// FallbackMessages returns the fixed set of generic fallback replies.
func FallbackMessages() []string {
	out := make([]string, len(fallbackMessages))
	copy(out, fallbackMessages)
	return out
}

// PickFallback selects one fallback reply via the injected selector, which
// receives the set size and returns an index. Out-of-range picks clamp to the
// first message.
func PickFallback(selector func(n int) int) string {
	if selector == nil {
		return fallbackMessages[0]
	}
	i := selector(len(fallbackMessages))
	if i < 0 || i >= len(fallbackMessages) {
		i = 0
	}
	return fallbackMessages[i]
}
