package rathaus

import "context"

// Website sentinel values. A municipality's Website field only moves
// forward: unset → URL or WebsiteNotFound; WebsiteNotFound may be retried
// and become a URL or the terminal NoWebsite, which is never retried.
const (
	// WebsiteNotFound marks a failed resolution attempt that may be retried.
	WebsiteNotFound = "Website not found"

	// NoWebsite marks a municipality with no official site. Terminal.
	NoWebsite = "No Website"

	// NotAvailable is the placeholder for contact fields that could not
	// be determined.
	NotAvailable = "N/A"
)

// Municipality represents one row of the municipality table.
type Municipality struct {
	// Name is the natural key ("Gemeinde" column).
	Name string

	// Population is carried through verbatim ("Einwohner" column).
	Population string

	// Website is empty, a confirmed URL, or one of the sentinel values.
	Website string

	// Contact fields, empty or NotAvailable until extracted.
	ContactName string
	Email       string
	Phone       string

	// Auxiliary bookkeeping columns, carried through verbatim.
	EmailStatus string
	Notes       string
}

// NeedsWebsite reports whether the resolution pass should process the row.
// Rows with a URL or the terminal NoWebsite sentinel are skipped.
func (m *Municipality) NeedsWebsite() bool {
	return m.Website == "" || m.Website == WebsiteNotFound
}

// NeedsContact reports whether the extraction pass should process the row.
// A row is due when all three contact fields are empty or NotAvailable.
func (m *Municipality) NeedsContact() bool {
	return isUnset(m.ContactName) && isUnset(m.Email) && isUnset(m.Phone)
}

func isUnset(s string) bool {
	return s == "" || s == NotAvailable
}

// Contact is the structured extraction result for one website.
type Contact struct {
	Name  string
	Email string
	Phone string
}

// UnknownContact returns a Contact with every field set to NotAvailable.
func UnknownContact() Contact {
	return Contact{Name: NotAvailable, Email: NotAvailable, Phone: NotAvailable}
}

// MunicipalityStore persists municipality rows. The pipeline driver is the
// only writer; updates are durable before the call returns (the backing
// table is rewritten in full so an interrupted run leaves a valid file).
type MunicipalityStore interface {
	// Load returns all rows in table order.
	Load(ctx context.Context) ([]*Municipality, error)

	// UpdateWebsite sets the Website field of the row with the given name.
	// Returns ENOTFOUND if no row matches.
	UpdateWebsite(ctx context.Context, name, website string) error

	// UpdateContact sets the contact fields of every row whose Website
	// equals the given URL. Returns ENOTFOUND if no row matches.
	UpdateContact(ctx context.Context, website string, contact Contact) error
}
