package rathaus

import "context"

// Completer provides free-text chat completions.
type Completer interface {
	// Complete sends the system instruction and one or more user messages
	// to the model and returns the trimmed response text.
	Complete(ctx context.Context, system string, messages ...string) (string, error)
}

// ContactExtractor turns a free-text contact description into a structured
// Contact via a schema-constrained model call.
type ContactExtractor interface {
	// ExtractContact extracts name, email and phone from the given text.
	// Fields the model does not produce default to NotAvailable; if the
	// model produces no structured result at all, every field is
	// NotAvailable. Extraction failure degrades, it does not error.
	ExtractContact(ctx context.Context, text string) (Contact, error)
}
