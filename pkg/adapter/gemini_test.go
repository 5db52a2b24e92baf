package adapter_test

import (
	"context"
	"os"
	"testing"

	"github.com/m-mizutani/duamind/pkg/adapter"
	"github.com/m-mizutani/gt"
	"google.golang.org/genai"
)

func TestGenerateContent(t *testing.T) {
	apiKey := os.Getenv("TEST_GEMINI_API_KEY")
	if apiKey == "" {
		t.Skip("TEST_GEMINI_API_KEY is not set")
	}

	ctx := context.Background()
	client, err := adapter.NewGemini(ctx, apiKey)
	gt.NoError(t, err)

	contents := []*genai.Content{
		{
			Role: "user",
			Parts: []*genai.Part{
				{Text: "Formuliere ein kurzes Bittgebet über Dankbarkeit."},
			},
		},
	}

	resp, err := client.GenerateContent(ctx, contents, &genai.GenerateContentConfig{})
	gt.NoError(t, err)
	gt.True(t, resp.Text() != "")
}
