package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/joho/godotenv"

	"github.com/scouterlab/talentscout/agent"
	"github.com/scouterlab/talentscout/dialogue"
	"github.com/scouterlab/talentscout/textgen"
)

func main() {
	_ = godotenv.Load()
	config := loadConfig()
	if err := run(context.Background(), config); err != nil {
		log.Fatalf("run: %v", err)
	}
}

func run(ctx context.Context, config *Config) error {
	if config.Debug {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	} else {
		slog.SetLogLoggerLevel(slog.LevelInfo)
	}

	gen, err := newGenerator(ctx, config)
	if err != nil {
		gen = nil
		fmt.Println("No generation backend configured; running with local fallbacks only.")
	}

	sessions := agent.NewMemorySessionStore(func(ctx context.Context) *agent.Interview {
		var opts []agent.Option
		if gen != nil {
			opts = append(opts, agent.WithEnricher(dialogue.NewEnricher(gen)))
		}
		return agent.NewInterview(gen, opts...)
	})
	ctx = agent.WithSessionKey(ctx, "cli")
	interview, err := sessions.Load(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("Assistant: %s\n", interview.CurrentMessage())
	reader := bufio.NewReader(os.Stdin)
	for !interview.Completed() {
		fmt.Print("You: ")
		line, rErr := reader.ReadString('\n')
		if rErr != nil {
			interview.End()
			break
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		interview.ProcessInput(ctx, line)
		fmt.Printf("\nAssistant: %s\n======\n", interview.CurrentMessage())
	}

	fmt.Println()
	fmt.Println(interview.SummaryText())
	stats := interview.Stats()
	fmt.Printf("Session duration: %s | avg turn latency: %s | language: %s\n",
		stats.SessionDuration.Round(10*time.Millisecond),
		stats.AverageTurnLatency.Round(time.Millisecond),
		stats.DetectedLanguage)
	for sentiment, count := range stats.SentimentCounts {
		fmt.Printf("  %s: %d\n", sentiment, count)
	}
	return sessions.Remove(ctx)
}

func newGenerator(ctx context.Context, config *Config) (textgen.Generator, error) {
	if config.OpenAIAPIKey != "" {
		chatModel, err := openai.NewChatModel(ctx, &openai.ChatModelConfig{
			APIKey:  config.OpenAIAPIKey,
			Model:   config.OpenAIModel,
			BaseURL: config.OpenAIBaseURL,
		})
		if err != nil {
			return nil, fmt.Errorf("init openai chat model: %w", err)
		}
		return textgen.NewEinoGenerator(chatModel), nil
	}
	if config.GeminiAPIKey != "" {
		return textgen.NewGeminiGenerator(ctx, config.GeminiAPIKey, config.GeminiModel)
	}
	return nil, textgen.ErrUnavailable
}
