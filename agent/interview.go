// Package agent drives one screening conversation: a fixed sequence of
// information-collection stages followed by generated technical questions.
package agent

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/scouterlab/talentscout/command"
	"github.com/scouterlab/talentscout/dialogue"
	"github.com/scouterlab/talentscout/extract"
	"github.com/scouterlab/talentscout/question"
	"github.com/scouterlab/talentscout/textgen"
	"github.com/scouterlab/talentscout/types"
)

// languageDetectionTurns bounds how many early user turns are probed for the
// input language.
const languageDetectionTurns = 3

// Interview owns the conversation state and candidate record for a single
// candidate. It is not safe for concurrent use; each conversation must have
// its own instance.
type Interview struct {
	id         string
	gen        textgen.Generator
	names      *NameExtractor
	questions  question.Generator
	terminator command.Parser
	enricher   *dialogue.Enricher
	selector   func(n int) int
	trimmer    Trimmer

	record        *types.CandidateRecord
	stage         types.Stage
	questionList  []string
	questionIndex int
	complete      bool
	message       string
	transcript    []types.Turn

	detectedLanguage string
	sentimentCounts  map[types.Sentiment]int
	lastSentiment    types.Sentiment
	userTurns        int
	startTime        time.Time
	turnLatencies    []time.Duration
}

type Option func(*Interview)

// WithQuestionGenerator replaces the default model-with-static-fallback
// question generator.
func WithQuestionGenerator(gen question.Generator) Option {
	return func(iv *Interview) {
		iv.questions = gen
	}
}

func WithCommandParser(parser command.Parser) Option {
	return func(iv *Interview) {
		iv.terminator = parser
	}
}

// WithEnricher enables best-effort sentiment/language enrichment of outbound
// messages.
func WithEnricher(enricher *dialogue.Enricher) Option {
	return func(iv *Interview) {
		iv.enricher = enricher
	}
}

// WithFallbackSelector injects the fallback-message selector, e.g. a seeded
// or constant index for reproducible tests.
func WithFallbackSelector(selector func(n int) int) Option {
	return func(iv *Interview) {
		iv.selector = selector
	}
}

func WithTranscriptTrimmer(trimmer Trimmer) Option {
	return func(iv *Interview) {
		iv.trimmer = trimmer
	}
}

// NewInterview creates an idle interview. gen may be nil; every AI-backed step
// then runs on its local fallback.
func NewInterview(gen textgen.Generator, opts ...Option) *Interview {
	iv := &Interview{
		id:               uuid.NewString(),
		gen:              gen,
		names:            NewNameExtractor(gen),
		terminator:       command.NewLocalParser(),
		selector:         rand.IntN,
		trimmer:          KeepLastNTrimmer{N: 200},
		record:           types.NewCandidateRecord(),
		stage:            types.StageGreeting,
		sentimentCounts:  map[types.Sentiment]int{},
		detectedLanguage: "en",
		startTime:        time.Now(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(iv)
		}
	}
	if iv.questions == nil {
		if gen != nil {
			iv.questions = question.NewFailbackGenerator(
				question.NewModelGenerator(gen),
				question.NewStaticGenerator(),
			)
		} else {
			iv.questions = question.NewStaticGenerator()
		}
	}
	return iv
}

func (iv *Interview) ID() string {
	return iv.id
}

// Start emits the greeting and opens the conversation.
func (iv *Interview) Start() {
	iv.stage = types.StageGreeting
	iv.message = dialogue.Greeting()
	iv.appendTurn(types.RoleAssistant, iv.message)
	slog.Debug("conversation started", "interview", iv.id)
}

// CurrentMessage returns the message the front end should render.
func (iv *Interview) CurrentMessage() string {
	return iv.message
}

func (iv *Interview) Stage() types.Stage {
	return iv.stage
}

func (iv *Interview) Completed() bool {
	return iv.complete
}

// Summary returns a snapshot of the candidate record.
func (iv *Interview) Summary() map[string]any {
	return iv.record.Snapshot()
}

// SummaryText renders the record as markdown for recruiters.
func (iv *Interview) SummaryText() string {
	return types.FormatCandidateSummary(iv.record)
}

func (iv *Interview) Transcript() []types.Turn {
	out := make([]types.Turn, len(iv.transcript))
	copy(out, iv.transcript)
	return out
}

func (iv *Interview) Questions() []string {
	out := make([]string, len(iv.questionList))
	copy(out, iv.questionList)
	return out
}

// ProcessInput advances the conversation by one turn. Invalid input keeps the
// stage and re-prompts; failures never propagate to the caller.
func (iv *Interview) ProcessInput(ctx context.Context, input string) {
	if strings.TrimSpace(input) == "" {
		return
	}
	start := time.Now()
	defer func() {
		elapsed := time.Since(start)
		iv.turnLatencies = append(iv.turnLatencies, elapsed)
		slog.Debug("turn processed", "interview", iv.id, "stage", iv.stage, "elapsed", elapsed)
	}()

	iv.analyze(ctx, input)
	iv.appendTurn(types.RoleUser, input)
	iv.userTurns++

	if cmd, err := iv.terminator.ParseCommand(ctx, input); err == nil && cmd == command.End {
		iv.End()
		return
	}

	if iv.complete {
		iv.message = dialogue.PickFallback(iv.selector)
		iv.appendTurn(types.RoleAssistant, iv.message)
		return
	}

	base, ended := iv.dispatch(ctx, input)
	if ended {
		return
	}
	iv.message = iv.enrich(ctx, base)
	iv.appendTurn(types.RoleAssistant, iv.message)
}

// End closes the conversation. Repeated calls are no-ops.
func (iv *Interview) End() {
	if iv.complete {
		return
	}
	name, _ := iv.record.GetString(types.FieldFullName)
	email, _ := iv.record.GetString(types.FieldEmail)
	iv.message = dialogue.Ending(name, email)
	iv.complete = true
	iv.stage = types.StageComplete
	iv.appendTurn(types.RoleAssistant, iv.message)
	slog.Info("conversation ended", "interview", iv.id, "fields", iv.record.Len())
}

// dispatch routes input to the current stage's handler. Panics are converted
// to an apology without advancing the stage; stored data is preserved.
func (iv *Interview) dispatch(ctx context.Context, input string) (base string, ended bool) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("stage dispatch failed", "interview", iv.id, "stage", iv.stage, "recover", r)
			base = dialogue.Apology()
			ended = false
		}
	}()
	switch iv.stage {
	case types.StageGreeting, types.StageCollectName:
		return iv.handleName(ctx, input)
	case types.StageCollectEmail:
		return iv.handleEmail(input)
	case types.StageCollectPhone:
		return iv.handlePhone(input)
	case types.StageCollectExperience:
		return iv.handleExperience(input)
	case types.StageCollectPosition:
		return iv.handleFreeText(input, types.FieldPositions, types.StageCollectLocation,
			dialogue.AskLocation(), dialogue.RepromptPosition())
	case types.StageCollectLocation:
		return iv.handleFreeText(input, types.FieldLocation, types.StageCollectTechStack,
			dialogue.AskTechStack(), dialogue.RepromptLocation())
	case types.StageCollectTechStack:
		return iv.handleTechStack(ctx, input)
	case types.StageAskQuestions:
		return iv.handleAnswer(input)
	default:
		return dialogue.PickFallback(iv.selector), false
	}
}

func (iv *Interview) handleName(ctx context.Context, input string) (string, bool) {
	name, ok := iv.names.Extract(ctx, input)
	if !ok {
		return dialogue.RepromptName(), false
	}
	if err := iv.record.Set(types.FieldFullName, name); err != nil {
		slog.Error("store full name", "error", err)
		return dialogue.Apology(), false
	}
	iv.stage = types.StageCollectEmail
	return dialogue.AskEmail(name), false
}

func (iv *Interview) handleEmail(input string) (string, bool) {
	email, ok := extract.Email(input)
	if !ok {
		return dialogue.RepromptEmail(), false
	}
	if err := iv.record.Set(types.FieldEmail, email); err != nil {
		slog.Error("store email", "error", err)
		return dialogue.Apology(), false
	}
	iv.stage = types.StageCollectPhone
	return dialogue.AskPhone(), false
}

func (iv *Interview) handlePhone(input string) (string, bool) {
	phone, ok := extract.Phone(input)
	if !ok {
		return dialogue.RepromptPhone(), false
	}
	if err := iv.record.Set(types.FieldPhone, phone); err != nil {
		slog.Error("store phone", "error", err)
		return dialogue.Apology(), false
	}
	iv.stage = types.StageCollectExperience
	return dialogue.AskExperience(), false
}

func (iv *Interview) handleExperience(input string) (string, bool) {
	years, ok := extract.Experience(input)
	if !ok {
		return dialogue.RepromptExperience(), false
	}
	if err := iv.record.Set(types.FieldYearsExperience, years); err != nil {
		slog.Error("store experience", "error", err)
		return dialogue.Apology(), false
	}
	iv.stage = types.StageCollectPosition
	return dialogue.AskPosition(), false
}

func (iv *Interview) handleFreeText(input, field string, next types.Stage, ask, reprompt string) (string, bool) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" || extract.IsFiller(trimmed) {
		return reprompt, false
	}
	if err := iv.record.Set(field, extract.Sanitize(trimmed)); err != nil {
		slog.Error("store field", "field", field, "error", err)
		return dialogue.Apology(), false
	}
	iv.stage = next
	return ask, false
}

func (iv *Interview) handleTechStack(ctx context.Context, input string) (string, bool) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" || extract.IsFiller(trimmed) {
		return dialogue.RepromptTechStack(), false
	}
	techStack := extract.Sanitize(trimmed)
	if err := iv.record.Set(types.FieldTechStack, techStack); err != nil {
		slog.Error("store tech stack", "error", err)
		return dialogue.Apology(), false
	}
	iv.stage = types.StageGenerateQuestions

	years, _ := iv.record.GetFloat(types.FieldYearsExperience)
	questions, err := iv.questions.GenerateQuestions(ctx, &question.Request{
		TechStack:       techStack,
		YearsExperience: years,
	})
	if err != nil || len(questions) == 0 {
		slog.Warn("question generation failed, using fallback list", "interview", iv.id, "error", err)
		questions = question.FallbackQuestions()
	}
	if len(questions) > question.MaxQuestions {
		questions = questions[:question.MaxQuestions]
	}
	if len(questions) == 0 {
		iv.appendTurn(types.RoleAssistant, dialogue.GenerationTrouble())
		iv.End()
		return "", true
	}
	iv.questionList = questions
	iv.questionIndex = 0
	iv.stage = types.StageAskQuestions
	return dialogue.QuestionIntro(len(questions), questions[0]), false
}

func (iv *Interview) handleAnswer(input string) (string, bool) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return dialogue.RepromptAnswer(), false
	}
	field := types.QuestionAnswerField(iv.questionIndex + 1)
	if err := iv.record.Set(field, extract.Sanitize(trimmed)); err != nil {
		slog.Error("store answer", "field", field, "error", err)
		return dialogue.Apology(), false
	}
	iv.questionIndex++
	if iv.questionIndex < len(iv.questionList) {
		next := iv.questionList[iv.questionIndex]
		return dialogue.NextQuestion(iv.questionIndex+1, len(iv.questionList), next), false
	}
	iv.End()
	return "", true
}

// analyze runs the best-effort per-turn classifications. Failures are logged
// and otherwise ignored.
func (iv *Interview) analyze(ctx context.Context, input string) {
	if iv.enricher == nil {
		return
	}
	sentiment, err := iv.enricher.ClassifySentiment(ctx, input)
	if err == nil {
		iv.sentimentCounts[sentiment]++
		iv.lastSentiment = sentiment
		slog.Debug("classified sentiment", "interview", iv.id, "sentiment", sentiment)
	} else {
		slog.Debug("sentiment classification failed", "error", err)
	}
	if iv.userTurns < languageDetectionTurns {
		code, lErr := iv.enricher.DetectLanguage(ctx, input)
		if lErr == nil {
			iv.detectedLanguage = code
		} else {
			slog.Debug("language detection failed", "error", lErr)
		}
	}
}

// enrich optionally rewrites the base message (tone, translation). The base
// message survives any failure.
func (iv *Interview) enrich(ctx context.Context, base string) string {
	if iv.enricher == nil || base == "" {
		return base
	}
	message := base
	if rewritten, err := iv.enricher.RewriteTone(ctx, message, iv.lastSentiment); err == nil && rewritten != "" {
		message = rewritten
	} else if err != nil {
		slog.Debug("tone rewrite failed", "error", err)
	}
	if translated, err := iv.enricher.Translate(ctx, message, iv.detectedLanguage); err == nil && translated != "" {
		message = translated
	} else if err != nil {
		slog.Debug("translation failed", "error", err)
	}
	return message
}

func (iv *Interview) appendTurn(role types.Role, content string) {
	iv.transcript = appendTurns(iv.transcript, types.Turn{Role: role, Content: content})
	if iv.trimmer != nil {
		iv.transcript = iv.trimmer.Trim(iv.transcript)
	}
}
