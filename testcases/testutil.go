package testcases

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/cloudwego/eino-ext/components/model/openai"

	"github.com/scouterlab/talentscout/agent"
	"github.com/scouterlab/talentscout/dialogue"
	"github.com/scouterlab/talentscout/textgen"
)

type Config struct {
	APIKey  string `json:"api_key"`
	BaseURL string `json:"base_url"`
	Model   string `json:"model"`
}

func loadConfig(path string) (*Config, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var conf Config
	if err := sonic.Unmarshal(file, &conf); err != nil {
		return nil, err
	}
	return &conf, nil
}

func InitGenerator(t *testing.T) textgen.Generator {
	if os.Getenv("TALENTSCOUT_RUN_LIVE_TESTS") != "1" {
		t.Skip("set TALENTSCOUT_RUN_LIVE_TESTS=1 to run live LLM tests")
		return nil
	}

	ctx := context.Background()
	conf, err := loadConfig("../config.json")
	if err != nil {
		t.Skipf("failed to load config: %v", err)
		return nil
	}
	if conf.APIKey == "" {
		t.Skip("config.json api_key is empty")
		return nil
	}
	chatModel, err := openai.NewChatModel(ctx, &openai.ChatModelConfig{
		APIKey:  conf.APIKey,
		Model:   conf.Model,
		BaseURL: conf.BaseURL,
	})
	if err != nil {
		t.Fatalf("failed to init chat model: %v", err)
		return nil
	}
	return textgen.NewEinoGenerator(chatModel)
}

func NewTestInterview(t *testing.T) *agent.Interview {
	gen := InitGenerator(t)
	if gen == nil {
		return nil
	}
	iv := agent.NewInterview(gen, agent.WithEnricher(dialogue.NewEnricher(gen)))
	iv.Start()
	return iv
}

func (c *Config) String() string {
	return fmt.Sprintf("Config{BaseURL:%q, Model:%q}", c.BaseURL, c.Model)
}
