package narrative

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/AdmiralBulldogTv/LeagueRecap/src/instance"
	"github.com/AdmiralBulldogTv/LeagueRecap/src/structures"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const anthropicVersion = "bedrock-2023-05-31"

var ErrEmptyResponse = errors.New("narrative: model returned no text")

type invoker interface {
	InvokeModel(ctx context.Context, params *bedrockruntime.InvokeModelInput, optFns ...func(*bedrockruntime.Options)) (*bedrockruntime.InvokeModelOutput, error)
}

type SetupOptions struct {
	Region          string
	ModelID         string
	MaxTokens       int
	AccessKeyID     string
	SecretAccessKey string
	Timeout         time.Duration
}

type Generator struct {
	client  invoker
	opts    SetupOptions
	metrics instance.Prometheus
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type invokeRequest struct {
	AnthropicVersion string    `json:"anthropic_version"`
	MaxTokens        int       `json:"max_tokens"`
	Messages         []message `json:"messages"`
}

type invokeResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
}

// New builds a Bedrock backed generator. Static credentials are used when both keys are
// set, otherwise the default AWS credential chain applies.
func New(ctx context.Context, opts SetupOptions, metrics instance.Prometheus) (*Generator, error) {
	loaders := []func(*config.LoadOptions) error{
		config.WithRegion(opts.Region),
	}
	if opts.AccessKeyID != "" && opts.SecretAccessKey != "" {
		loaders = append(loaders, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(opts.AccessKeyID, opts.SecretAccessKey, ""),
		))
	}

	cfg, err := config.LoadDefaultConfig(ctx, loaders...)
	if err != nil {
		return nil, err
	}

	return newGenerator(bedrockruntime.NewFromConfig(cfg), opts, metrics), nil
}

func newGenerator(client invoker, opts SetupOptions, metrics instance.Prometheus) *Generator {
	if opts.MaxTokens <= 0 {
		opts.MaxTokens = 1000
	}
	return &Generator{
		client:  client,
		opts:    opts,
		metrics: metrics,
	}
}

var _ instance.Narrative = (*Generator)(nil)

func (g *Generator) Generate(ctx context.Context, summary map[string]string) (structures.Narrative, error) {
	text, err := g.invoke(ctx, BuildPrompt(summary))
	if err != nil {
		g.observe("error")
		return structures.Narrative{}, err
	}

	cards := ParseCards(text)
	if len(cards) == 0 {
		logrus.Debug("narrative had no cards, returning raw text")
		g.observe("raw")
	} else {
		g.observe("cards")
	}

	return structures.Narrative{
		Text:  text,
		Cards: cards,
	}, nil
}

func (g *Generator) invoke(ctx context.Context, prompt string) (string, error) {
	if g.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.opts.Timeout)
		defer cancel()
	}

	body, err := json.Marshal(invokeRequest{
		AnthropicVersion: anthropicVersion,
		MaxTokens:        g.opts.MaxTokens,
		Messages: []message{{
			Role:    "user",
			Content: prompt,
		}},
	})
	if err != nil {
		return "", err
	}

	out, err := g.client.InvokeModel(ctx, &bedrockruntime.InvokeModelInput{
		ModelId:     aws.String(g.opts.ModelID),
		ContentType: aws.String("application/json"),
		Accept:      aws.String("application/json"),
		Body:        body,
	})
	if err != nil {
		return "", err
	}

	resp := invokeResponse{}
	if err := json.Unmarshal(out.Body, &resp); err != nil {
		return "", err
	}

	for _, c := range resp.Content {
		if c.Type == "" || c.Type == "text" {
			if text := strings.TrimSpace(c.Text); text != "" {
				return text, nil
			}
		}
	}

	return "", ErrEmptyResponse
}

func (g *Generator) observe(outcome string) {
	if g.metrics != nil {
		g.metrics.Narrative(outcome)
	}
}
