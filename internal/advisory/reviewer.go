// Package advisory produces the optional AI review of a score report.
//
// The reviewer talks to a GitHub Models (OpenAI-compatible) endpoint and
// returns a structured review: a short French summary plus three to six
// prioritized recommendations. Reviews are strictly additive; they never
// change verdicts or scores.
package advisory

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"net/http"

	"github.com/invopop/jsonschema"
	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/rs/zerolog"

	"github.com/FabLrc/GithubCICDChecker/internal/catalog"
	"github.com/FabLrc/GithubCICDChecker/internal/constants"
	"github.com/FabLrc/GithubCICDChecker/internal/domain"
	"github.com/FabLrc/GithubCICDChecker/internal/errors"
)

const systemPrompt = "Tu es un expert DevOps et CI/CD. " +
	"Tu analyses des pipelines GitHub et fournis des recommandations techniques précises et actionnables. " +
	"Tu réponds toujours en JSON valide."

// reviewSchema is the strict response schema sent with every request.
//
//nolint:gochecknoglobals // reflected once, read-only afterwards
var reviewSchema = generateSchema[domain.Review]()

// Reviewer requests AI reviews of score reports.
type Reviewer struct {
	client      openai.Client
	model       openai.ChatModel
	catalog     *catalog.Catalog
	maxTokens   int64
	temperature float64
}

// Option adjusts how New builds the reviewer.
type Option func(*reviewerOptions)

type reviewerOptions struct {
	baseURL     string
	model       string
	httpClient  *http.Client
	maxTokens   int64
	temperature float64
}

// WithBaseURL points the reviewer at a different OpenAI-compatible endpoint.
func WithBaseURL(raw string) Option {
	return func(o *reviewerOptions) {
		if raw != "" {
			o.baseURL = raw
		}
	}
}

// WithModel selects the chat model.
func WithModel(model string) Option {
	return func(o *reviewerOptions) {
		if model != "" {
			o.model = model
		}
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(o *reviewerOptions) { o.httpClient = hc }
}

// WithMaxTokens caps the review response length.
func WithMaxTokens(n int) Option {
	return func(o *reviewerOptions) {
		if n > 0 {
			o.maxTokens = int64(n)
		}
	}
}

// WithTemperature sets the sampling temperature. Zero is a valid value and
// is applied as given.
func WithTemperature(t float64) Option {
	return func(o *reviewerOptions) {
		if t >= 0 {
			o.temperature = t
		}
	}
}

// New builds a reviewer. An empty token means the feature is off; callers
// get ErrAdvisoryUnavailable and should render the report without a review.
func New(token string, cat *catalog.Catalog, opts ...Option) (*Reviewer, error) {
	if token == "" {
		return nil, errors.ErrAdvisoryUnavailable
	}

	o := reviewerOptions{
		baseURL:     constants.DefaultAdvisoryBaseURL,
		model:       constants.DefaultAdvisoryModel,
		maxTokens:   constants.DefaultAdvisoryMaxTokens,
		temperature: constants.DefaultAdvisoryTemperature,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.httpClient == nil {
		o.httpClient = &http.Client{Timeout: constants.DefaultAdvisoryTimeout}
	}

	requestOpts := []option.RequestOption{
		option.WithAPIKey(token),
		option.WithBaseURL(o.baseURL),
		option.WithHTTPClient(o.httpClient),
	}

	return &Reviewer{
		client:      openai.NewClient(requestOpts...),
		model:       o.model,
		catalog:     cat,
		maxTokens:   o.maxTokens,
		temperature: o.temperature,
	}, nil
}

// Review asks the model for a summary and prioritized recommendations. The
// workflowYAML argument is an optional excerpt of the main CI workflow; pass
// an empty string when none is available.
func (r *Reviewer) Review(ctx context.Context, report *domain.ScoreReport, workflowYAML string) (*domain.Review, error) {
	logger := zerolog.Ctx(ctx)

	prompt := r.buildPrompt(report, workflowYAML)
	schemaParam := openai.ResponseFormatJSONSchemaJSONSchemaParam{
		Name:   "cicd_review",
		Schema: reviewSchema,
		Strict: openai.Bool(true),
	}

	logger.Debug().Str("model", string(r.model)).Msg("requesting AI review")

	chat, err := r.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(prompt),
		},
		ResponseFormat: openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONSchema: &openai.ResponseFormatJSONSchemaParam{JSONSchema: schemaParam},
		},
		Model:       r.model,
		Temperature: openai.Float(r.temperature),
		MaxTokens:   openai.Int(r.maxTokens),
	})
	if err != nil {
		return nil, classifyRequestError(err)
	}
	if len(chat.Choices) == 0 {
		return nil, errors.Wrap(errors.ErrAdvisoryResponse, "réponse vide du modèle")
	}

	var review domain.Review
	if unmarshalErr := json.Unmarshal([]byte(chat.Choices[0].Message.Content), &review); unmarshalErr != nil {
		return nil, errors.Wrapf(errors.ErrAdvisoryResponse, "%v", unmarshalErr)
	}

	logger.Debug().Int("recommendations", len(review.Recommendations)).Msg("AI review received")
	return &review, nil
}

// classifyRequestError maps endpoint failures to advisory sentinels. Token
// problems get the dedicated sentinel with guidance on the fine-grained
// "Models" permission GitHub Models requires.
func classifyRequestError(err error) error {
	var apiErr *openai.Error
	if stderrors.As(err, &apiErr) {
		switch apiErr.StatusCode {
		case http.StatusUnauthorized:
			return errors.Wrap(errors.ErrAdvisoryToken,
				"Token invalide ou permission manquante. Assurez-vous d'utiliser un fine-grained token avec la permission \"Models\" (Read-only) activée.")
		case http.StatusForbidden:
			return errors.Wrap(errors.ErrAdvisoryToken,
				"Accès refusé. Vérifiez que votre token a la permission \"Models\" et que vous avez accès à GitHub Models.")
		}
	}
	return errors.Wrapf(errors.ErrAdvisoryRequest, "%v", err)
}

// generateSchema reflects a strict JSON schema: no references, no
// additional properties, so the model cannot drift from the Review shape.
func generateSchema[T any]() any {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	var v T
	return reflector.Reflect(v)
}
