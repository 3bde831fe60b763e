package gemini

import (
	"context"

	"github.com/fwojciec/rathaus"
	"golang.org/x/time/rate"
	"google.golang.org/genai"
)

// extractSystem is the system instruction for structured extraction calls.
const extractSystem = "You are a helpful assistant specialized in extracting contact information from website content."

// extractInstruction accompanies the content message and asks the model to
// invoke the extraction function.
const extractInstruction = "Based on the provided content, and based on what URL that content was found," +
	" extract the most relevant point of contact details for a person likely to be from the " +
	"social media or press team. Provide the details in the structured format below."

// extractContactDecl describes the function the model is asked to invoke.
var extractContactDecl = &genai.FunctionDeclaration{
	Name:        "extract_contact_info",
	Description: "Extracts the best contact information from the provided text.",
	Parameters: &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"name":  {Type: genai.TypeString, Description: "The full name of the contact person."},
			"email": {Type: genai.TypeString, Description: "The email address of the contact person."},
			"phone": {Type: genai.TypeString, Description: "The phone number of the contact person."},
		},
		Required: []string{"name", "email", "phone"},
	},
}

// Ensure ContactExtractor implements rathaus.ContactExtractor at compile time.
var _ rathaus.ContactExtractor = (*ContactExtractor)(nil)

// ContactExtractor implements rathaus.ContactExtractor using Gemini
// function calling.
type ContactExtractor struct {
	client  *genai.Client
	model   string
	limiter *rate.Limiter
}

// ExtractorOption configures a ContactExtractor.
type ExtractorOption func(*ContactExtractor)

// WithExtractorModel overrides the model. Defaults to DefaultModel.
func WithExtractorModel(model string) ExtractorOption {
	return func(e *ContactExtractor) {
		e.model = model
	}
}

// WithExtractorLimiter sets a client-side QPS guard applied before every call.
func WithExtractorLimiter(l *rate.Limiter) ExtractorOption {
	return func(e *ContactExtractor) {
		e.limiter = l
	}
}

// NewContactExtractor creates a new ContactExtractor.
func NewContactExtractor(client *genai.Client, opts ...ExtractorOption) *ContactExtractor {
	e := &ContactExtractor{client: client, model: DefaultModel}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ExtractContact extracts name, email and phone from the given free-text
// contact description. A model failure or a response without a function
// call degrades to a contact with every field set to NotAvailable; the
// error return is reserved for context cancellation.
func (e *ContactExtractor) ExtractContact(ctx context.Context, text string) (rathaus.Contact, error) {
	if e.limiter != nil {
		if err := e.limiter.Wait(ctx); err != nil {
			return rathaus.UnknownContact(), err
		}
	}

	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: extractSystem}},
		},
		Tools: []*genai.Tool{
			{FunctionDeclarations: []*genai.FunctionDeclaration{extractContactDecl}},
		},
	}

	result, err := e.client.Models.GenerateContent(ctx, e.model, userContents([]string{text, extractInstruction}), config)
	if err != nil {
		if ctx.Err() != nil {
			return rathaus.UnknownContact(), ctx.Err()
		}
		return rathaus.UnknownContact(), nil
	}

	if result == nil {
		return rathaus.UnknownContact(), nil
	}

	calls := result.FunctionCalls()
	if len(calls) == 0 {
		return rathaus.UnknownContact(), nil
	}

	return ContactFromArgs(calls[0].Args), nil
}

// ContactFromArgs builds a Contact from function-call arguments. Fields
// that are absent or not strings default to NotAvailable.
func ContactFromArgs(args map[string]any) rathaus.Contact {
	return rathaus.Contact{
		Name:  stringArg(args, "name"),
		Email: stringArg(args, "email"),
		Phone: stringArg(args, "phone"),
	}
}

func stringArg(args map[string]any, key string) string {
	v, ok := args[key]
	if !ok {
		return rathaus.NotAvailable
	}
	s, ok := v.(string)
	if !ok {
		return rathaus.NotAvailable
	}
	return s
}
