package testcases

import (
	"context"
	"testing"

	"github.com/scouterlab/talentscout/types"
)

// TestFullScreeningFlow walks one complete candidate conversation against a
// live model: every collection stage, question generation and the summary.
func TestFullScreeningFlow(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	iv := NewTestInterview(t)

	steps := []struct {
		input     string
		wantStage types.Stage
	}{
		{"Hello! My name is Alice Johnson, happy to chat.", types.StageCollectEmail},
		{"alice.johnson@example.com", types.StageCollectPhone},
		{"+1 555 123 4567", types.StageCollectExperience},
		{"I have 6 years of professional experience", types.StageCollectPosition},
		{"Senior Backend Engineer", types.StageCollectLocation},
		{"Austin, Texas", types.StageCollectTechStack},
	}
	for _, step := range steps {
		iv.ProcessInput(ctx, step.input)
		t.Logf("assistant: %s", iv.CurrentMessage())
		if iv.Stage() != step.wantStage {
			t.Fatalf("after %q: stage = %s, want %s", step.input, iv.Stage(), step.wantStage)
		}
	}

	iv.ProcessInput(ctx, "Go, PostgreSQL, Kubernetes and gRPC")
	t.Logf("assistant: %s", iv.CurrentMessage())
	if iv.Stage() != types.StageAskQuestions {
		t.Fatalf("stage after tech stack = %s", iv.Stage())
	}
	questions := iv.Questions()
	if len(questions) == 0 {
		t.Fatal("no questions generated")
	}
	t.Logf("generated %d questions", len(questions))

	for i := range questions {
		iv.ProcessInput(ctx, "I would start from the requirements, sketch the data model and iterate with load tests.")
		t.Logf("assistant after answer %d: %s", i+1, iv.CurrentMessage())
	}

	if !iv.Completed() {
		t.Fatalf("conversation not complete, stage %s", iv.Stage())
	}
	summary := iv.Summary()
	for _, field := range []string{types.FieldFullName, types.FieldEmail, types.FieldTechStack} {
		if _, ok := summary[field]; !ok {
			t.Errorf("summary missing %s", field)
		}
	}
	t.Logf("summary:\n%s", iv.SummaryText())

	stats := iv.Stats()
	t.Logf("stats: duration=%s language=%s sentiments=%v",
		stats.SessionDuration, stats.DetectedLanguage, stats.SentimentCounts)
}

// TestEarlyTermination checks a live model does not swallow the exit intent.
func TestEarlyTermination(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	iv := NewTestInterview(t)

	iv.ProcessInput(ctx, "Bob Miller")
	iv.ProcessInput(ctx, "goodbye")

	if !iv.Completed() {
		t.Fatalf("conversation should end on goodbye, stage %s", iv.Stage())
	}
	t.Logf("ending: %s", iv.CurrentMessage())
}
