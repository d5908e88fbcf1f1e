package articles

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	openai "github.com/sashabaranov/go-openai"
	"github.com/tidwall/gjson"
)

// classificationInputLimit bounds the text sent to the remote model.
const classificationInputLimit = 2000

// OpenAIClassifier scores text against a label set with a chat-completion
// model, covering the zero-shot classification capability. Failures are
// returned to the caller so the pipeline can degrade to the keyword scorer.
type OpenAIClassifier struct {
	client *openai.Client
	model  string
}

// NewOpenAIClassifier wraps client with the given model identifier.
func NewOpenAIClassifier(client *openai.Client, model string) *OpenAIClassifier {
	if model == "" {
		model = openai.GPT4oMini
	}
	return &OpenAIClassifier{client: client, model: model}
}

// Classify implements the Classifier interface.
func (c *OpenAIClassifier) Classify(ctx context.Context, text string, labels []string) ([]CategoryScore, error) {
	if c.client == nil {
		return nil, errors.New("openai client not configured")
	}
	if len(labels) == 0 {
		labels = CrimeCategories
	}
	if len(text) > classificationInputLimit {
		text = text[:classificationInputLimit]
	}

	prompt := fmt.Sprintf(
		"Classify the article below against these categories: %s.\n"+
			"Respond with only a JSON array of objects {\"category\": string, \"confidence\": number between 0 and 1}, "+
			"including only categories that apply.\n\nArticle:\n%s",
		strings.Join(labels, ", "), text)

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: "You classify criminal-justice news articles. Answer with JSON only."},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: 0,
	})
	if err != nil {
		return nil, errors.Wrap(err, "classification request failed")
	}
	if len(resp.Choices) == 0 {
		return nil, errors.New("classification returned no choices")
	}

	return parseCategoryScores(resp.Choices[0].Message.Content, labels)
}

func parseCategoryScores(payload string, labels []string) ([]CategoryScore, error) {
	start := strings.Index(payload, "[")
	end := strings.LastIndex(payload, "]")
	if start < 0 || end <= start {
		return nil, errors.Errorf("no JSON array in classification response: %q", payload)
	}

	allowed := make(map[string]bool, len(labels))
	for _, label := range labels {
		allowed[label] = true
	}

	var scores []CategoryScore
	for _, item := range gjson.Parse(payload[start : end+1]).Array() {
		category := item.Get("category").String()
		if !allowed[category] {
			continue
		}
		confidence := item.Get("confidence").Float()
		if confidence > 0.95 {
			confidence = 0.95
		}
		scores = append(scores, CategoryScore{Category: category, Confidence: confidence})
	}
	return scores, nil
}
