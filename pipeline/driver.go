// Package pipeline drives the two batch passes over the municipality
// store: website resolution and contact extraction. Processing is
// strictly sequential and each row is persisted before the next one
// starts, so a killed run resumes where it left off.
package pipeline

import (
	"context"
	"log/slog"
	"strings"

	"github.com/fwojciec/rathaus"
	"github.com/google/uuid"
)

// WebsiteResolver resolves the official website of a municipality.
// An empty URL means no site could be confirmed.
type WebsiteResolver interface {
	Resolve(ctx context.Context, municipality string) (string, error)
}

// ContactFinder extracts a contact from a confirmed website.
// A nil contact means nothing could be found.
type ContactFinder interface {
	Find(ctx context.Context, siteURL string) (*rathaus.Contact, error)
}

// Driver owns the iteration over municipality rows and is the sole writer
// of the store.
type Driver struct {
	Store    rathaus.MunicipalityStore
	Resolver WebsiteResolver
	Finder   ContactFinder

	// Logger for per-row progress. Defaults to slog.Default().
	Logger *slog.Logger
}

// ResolveWebsites runs the resolution pass. Rows with an unset website are
// resolved; rows holding the retriable "Website not found" sentinel are
// retried once more and become terminal "No Website" on a second failure;
// everything else is skipped. Per-row resolution failures are recorded in
// the row, never returned; the error return is reserved for store I/O and
// context cancellation.
func (d *Driver) ResolveWebsites(ctx context.Context) error {
	logger := d.logger().With("run", uuid.NewString(), "pass", "resolve")

	rows, err := d.Store.Load(ctx)
	if err != nil {
		return err
	}
	logger.Info("pass started", "rows", len(rows))

	for _, m := range rows {
		if err := ctx.Err(); err != nil {
			return err
		}

		if !m.NeedsWebsite() {
			logger.Debug("skipping row", "gemeinde", m.Name, "website", m.Website)
			continue
		}

		retry := m.Website == rathaus.WebsiteNotFound
		if retry {
			logger.Info("retrying municipality", "gemeinde", m.Name)
		}

		url, err := d.Resolver.Resolve(ctx, m.Name)
		if err != nil {
			return err
		}
		if url == "" {
			// A failed retry is terminal.
			if retry {
				url = rathaus.NoWebsite
			} else {
				url = rathaus.WebsiteNotFound
			}
		}

		if err := d.Store.UpdateWebsite(ctx, m.Name, url); err != nil {
			return err
		}
		logger.Info("row resolved", "gemeinde", m.Name, "website", url)
	}

	logger.Info("pass completed")
	return nil
}

// ExtractContacts runs the extraction pass. A row is due when all three
// contact fields are empty or "N/A". Rows whose website holds the
// "No Website" sentinel get all fields set to "N/A" without any network
// activity; rows without a usable website are skipped. A row for which no
// contact can be found is left untouched so a later run can try again.
func (d *Driver) ExtractContacts(ctx context.Context) error {
	logger := d.logger().With("run", uuid.NewString(), "pass", "contacts")

	rows, err := d.Store.Load(ctx)
	if err != nil {
		return err
	}
	logger.Info("pass started", "rows", len(rows))

	for _, m := range rows {
		if err := ctx.Err(); err != nil {
			return err
		}

		if !m.NeedsContact() {
			logger.Debug("skipping row", "gemeinde", m.Name)
			continue
		}

		if strings.Contains(m.Website, rathaus.NoWebsite) {
			if err := d.Store.UpdateContact(ctx, m.Website, rathaus.UnknownContact()); err != nil {
				return err
			}
			logger.Info("no website, contact set to N/A", "gemeinde", m.Name)
			continue
		}

		if m.Website == "" || m.Website == rathaus.WebsiteNotFound {
			logger.Info("skipping row without usable website", "gemeinde", m.Name, "website", m.Website)
			continue
		}

		contact, err := d.Finder.Find(ctx, m.Website)
		if err != nil {
			return err
		}
		if contact == nil {
			logger.Info("no contact found", "gemeinde", m.Name, "website", m.Website)
			continue
		}

		if err := d.Store.UpdateContact(ctx, m.Website, *contact); err != nil {
			return err
		}
		logger.Info("contact extracted",
			"gemeinde", m.Name,
			"website", m.Website,
			"name", contact.Name,
			"email", contact.Email,
			"phone", contact.Phone,
		)
	}

	logger.Info("pass completed")
	return nil
}

func (d *Driver) logger() *slog.Logger {
	if d.Logger != nil {
		return d.Logger
	}
	return slog.Default()
}
