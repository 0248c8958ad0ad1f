// Package llm wraps the model providers behind the two narrow interfaces
// the pipeline consumes: a chat + structured-extraction client and an
// embedder.
package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"reflect"
	"time"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// Client is the LLM surface the extractor and synthesis passes consume.
type Client interface {
	// Chat sends a system + user prompt and returns the assistant's text.
	Chat(ctx context.Context, system, user string) (string, error)
	// ExtractInto forces a structured response matching out's derived JSON
	// schema and decodes into it. out must be a non-nil pointer to a struct.
	ExtractInto(ctx context.Context, system, user string, out any) error
}

// Extract is the typed convenience wrapper over Client.ExtractInto.
func Extract[T any](ctx context.Context, c Client, system, user string) (T, error) {
	var out T
	err := c.ExtractInto(ctx, system, user, &out)
	return out, err
}

// extractToolName is the tool the model must call to return structured
// output.
const extractToolName = "record_result"

// maxExtractTurns bounds the tool-use loop: the model gets one retry if its
// first response carries no tool call.
const maxExtractTurns = 2

// AnthropicClient implements Client on the Anthropic Messages API.
type AnthropicClient struct {
	messages *sdk.MessageService
	model    string
	maxTok   int64
	timeout  time.Duration
}

// NewAnthropicClient builds a client from an API key and model identifier.
func NewAnthropicClient(apiKey, model string, timeout time.Duration) (*AnthropicClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("anthropic api key is required")
	}
	if model == "" {
		return nil, fmt.Errorf("model identifier is required")
	}
	ac := sdk.NewClient(option.WithAPIKey(apiKey))
	return &AnthropicClient{
		messages: &ac.Messages,
		model:    model,
		maxTok:   8192,
		timeout:  timeout,
	}, nil
}

// Chat issues a plain Messages.New request and concatenates the text blocks.
func (c *AnthropicClient) Chat(ctx context.Context, system, user string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	msg, err := c.messages.New(ctx, sdk.MessageNewParams{
		Model:     sdk.Model(c.model),
		MaxTokens: c.maxTok,
		System:    []sdk.TextBlockParam{{Text: system}},
		Messages: []sdk.MessageParam{
			sdk.NewUserMessage(sdk.NewTextBlock(user)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("anthropic messages.new: %w", err)
	}

	var text string
	for _, block := range msg.Content {
		if block.Type == "text" {
			text += block.Text
		}
	}
	return text, nil
}

// ExtractInto advertises a single tool whose input schema is derived from
// out's type, forces the model to call it, and decodes the tool input. If
// the first turn returns no tool call, the transcript is extended with a
// nudge and retried once.
func (c *AnthropicClient) ExtractInto(ctx context.Context, system, user string, out any) error {
	rv := reflect.ValueOf(out)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return fmt.Errorf("extraction target must be a non-nil pointer, got %T", out)
	}

	schema, err := SchemaFor(rv.Elem().Type())
	if err != nil {
		return fmt.Errorf("failed to derive extraction schema: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	tool := sdk.ToolUnionParamOfTool(sdk.ToolInputSchemaParam{ExtraFields: schema}, extractToolName)
	if tool.OfTool != nil {
		tool.OfTool.Description = sdk.String("Record the extraction result. Call exactly once with the complete result.")
	}
	toolChoice := sdk.ToolChoiceParamOfTool(extractToolName)

	conversation := []sdk.MessageParam{
		sdk.NewUserMessage(sdk.NewTextBlock(user)),
	}

	for turn := 0; turn < maxExtractTurns; turn++ {
		msg, err := c.messages.New(ctx, sdk.MessageNewParams{
			Model:      sdk.Model(c.model),
			MaxTokens:  c.maxTok,
			System:     []sdk.TextBlockParam{{Text: system}},
			Messages:   conversation,
			Tools:      []sdk.ToolUnionParam{tool},
			ToolChoice: toolChoice,
		})
		if err != nil {
			return fmt.Errorf("anthropic messages.new: %w", err)
		}

		for _, block := range msg.Content {
			if block.Type == "tool_use" && block.Name == extractToolName {
				if err := json.Unmarshal([]byte(block.Input), out); err != nil {
					return fmt.Errorf("failed to decode extraction result: %w", err)
				}
				return nil
			}
		}

		slog.Warn("Extraction turn returned no tool call, retrying", "turn", turn)
		conversation = append(conversation,
			msg.ToParam(),
			sdk.NewUserMessage(sdk.NewTextBlock(
				"You must call the "+extractToolName+" tool with the complete result.")),
		)
	}

	return fmt.Errorf("model returned no structured result after %d turns", maxExtractTurns)
}
