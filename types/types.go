package types

// Stage is one discrete step of the screening conversation. Stages advance in
// the fixed order below and never move backwards; StageComplete is terminal.
type Stage string

const (
	StageGreeting          Stage = "greeting"
	StageCollectName       Stage = "collect_name"
	StageCollectEmail      Stage = "collect_email"
	StageCollectPhone      Stage = "collect_phone"
	StageCollectExperience Stage = "collect_experience"
	StageCollectPosition   Stage = "collect_position"
	StageCollectLocation   Stage = "collect_location"
	StageCollectTechStack  Stage = "collect_tech_stack"
	StageGenerateQuestions Stage = "generate_questions"
	StageAskQuestions      Stage = "ask_questions"
	StageComplete          Stage = "complete"
)

var stageOrder = map[Stage]int{
	StageGreeting:          0,
	StageCollectName:       1,
	StageCollectEmail:      2,
	StageCollectPhone:      3,
	StageCollectExperience: 4,
	StageCollectPosition:   5,
	StageCollectLocation:   6,
	StageCollectTechStack:  7,
	StageGenerateQuestions: 8,
	StageAskQuestions:      9,
	StageComplete:          10,
}

// Index returns the position of the stage in the fixed order, or -1 for an
// unknown stage.
func (s Stage) Index() int {
	i, ok := stageOrder[s]
	if !ok {
		return -1
	}
	return i
}

func (s Stage) Terminal() bool {
	return s == StageComplete
}

// Sentiment is the label set produced by sentiment classification.
type Sentiment string

const (
	SentimentPositive Sentiment = "POSITIVE"
	SentimentNeutral  Sentiment = "NEUTRAL"
	SentimentNegative Sentiment = "NEGATIVE"
)

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Turn is one entry of the conversation transcript.
type Turn struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Candidate record field names. Question answers use QuestionAnswerField.
const (
	FieldFullName        = "full_name"
	FieldEmail           = "email"
	FieldPhone           = "phone"
	FieldYearsExperience = "years_experience"
	FieldPositions       = "desired_positions"
	FieldLocation        = "location"
	FieldTechStack       = "tech_stack"
)
