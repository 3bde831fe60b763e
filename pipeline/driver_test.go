package pipeline_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/rathaus"
	"github.com/fwojciec/rathaus/csv"
	"github.com/fwojciec/rathaus/mock"
	"github.com/fwojciec/rathaus/pipeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type resolverStub struct {
	fn    func(ctx context.Context, municipality string) (string, error)
	calls []string
}

func (r *resolverStub) Resolve(ctx context.Context, municipality string) (string, error) {
	r.calls = append(r.calls, municipality)
	if r.fn == nil {
		return "", nil
	}
	return r.fn(ctx, municipality)
}

type finderStub struct {
	fn    func(ctx context.Context, siteURL string) (*rathaus.Contact, error)
	calls []string
}

func (f *finderStub) Find(ctx context.Context, siteURL string) (*rathaus.Contact, error) {
	f.calls = append(f.calls, siteURL)
	if f.fn == nil {
		return nil, nil
	}
	return f.fn(ctx, siteURL)
}

func TestDriver_ResolveWebsites(t *testing.T) {
	t.Parallel()

	t.Run("resolves empty rows and skips settled ones", func(t *testing.T) {
		t.Parallel()

		updates := map[string]string{}
		store := &mock.MunicipalityStore{
			LoadFn: func(_ context.Context) ([]*rathaus.Municipality, error) {
				return []*rathaus.Municipality{
					{Name: "Beispielstadt"},
					{Name: "Musterdorf", Website: "https://musterdorf.de"},
					{Name: "Kleinort", Website: rathaus.NoWebsite},
				}, nil
			},
			UpdateWebsiteFn: func(_ context.Context, name, website string) error {
				updates[name] = website
				return nil
			},
		}
		resolver := &resolverStub{
			fn: func(_ context.Context, municipality string) (string, error) {
				return "https://beispielstadt.de", nil
			},
		}
		d := &pipeline.Driver{Store: store, Resolver: resolver}

		require.NoError(t, d.ResolveWebsites(context.Background()))
		assert.Equal(t, []string{"Beispielstadt"}, resolver.calls)
		assert.Equal(t, map[string]string{"Beispielstadt": "https://beispielstadt.de"}, updates)
	})

	t.Run("records the retriable sentinel on a first failure", func(t *testing.T) {
		t.Parallel()

		updates := map[string]string{}
		store := &mock.MunicipalityStore{
			LoadFn: func(_ context.Context) ([]*rathaus.Municipality, error) {
				return []*rathaus.Municipality{{Name: "Beispielstadt"}}, nil
			},
			UpdateWebsiteFn: func(_ context.Context, name, website string) error {
				updates[name] = website
				return nil
			},
		}
		d := &pipeline.Driver{Store: store, Resolver: &resolverStub{}}

		require.NoError(t, d.ResolveWebsites(context.Background()))
		assert.Equal(t, rathaus.WebsiteNotFound, updates["Beispielstadt"])
	})

	t.Run("a failed retry becomes terminal", func(t *testing.T) {
		t.Parallel()

		updates := map[string]string{}
		store := &mock.MunicipalityStore{
			LoadFn: func(_ context.Context) ([]*rathaus.Municipality, error) {
				return []*rathaus.Municipality{{Name: "Beispielstadt", Website: rathaus.WebsiteNotFound}}, nil
			},
			UpdateWebsiteFn: func(_ context.Context, name, website string) error {
				updates[name] = website
				return nil
			},
		}
		d := &pipeline.Driver{Store: store, Resolver: &resolverStub{}}

		require.NoError(t, d.ResolveWebsites(context.Background()))
		assert.Equal(t, rathaus.NoWebsite, updates["Beispielstadt"])
	})

	t.Run("a successful retry records the url", func(t *testing.T) {
		t.Parallel()

		updates := map[string]string{}
		store := &mock.MunicipalityStore{
			LoadFn: func(_ context.Context) ([]*rathaus.Municipality, error) {
				return []*rathaus.Municipality{{Name: "Beispielstadt", Website: rathaus.WebsiteNotFound}}, nil
			},
			UpdateWebsiteFn: func(_ context.Context, name, website string) error {
				updates[name] = website
				return nil
			},
		}
		resolver := &resolverStub{
			fn: func(_ context.Context, _ string) (string, error) {
				return "https://beispielstadt.de", nil
			},
		}
		d := &pipeline.Driver{Store: store, Resolver: resolver}

		require.NoError(t, d.ResolveWebsites(context.Background()))
		assert.Equal(t, "https://beispielstadt.de", updates["Beispielstadt"])
	})

	t.Run("store errors stop the pass", func(t *testing.T) {
		t.Parallel()

		store := &mock.MunicipalityStore{
			LoadFn: func(_ context.Context) ([]*rathaus.Municipality, error) {
				return nil, rathaus.Errorf(rathaus.ENOTFOUND, "no such file")
			},
		}
		d := &pipeline.Driver{Store: store, Resolver: &resolverStub{}}

		err := d.ResolveWebsites(context.Background())
		require.Error(t, err)
		assert.Equal(t, rathaus.ENOTFOUND, rathaus.ErrorCode(err))
	})

	t.Run("cancellation stops between rows", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		store := &mock.MunicipalityStore{
			LoadFn: func(_ context.Context) ([]*rathaus.Municipality, error) {
				return []*rathaus.Municipality{{Name: "Beispielstadt"}, {Name: "Musterdorf"}}, nil
			},
			UpdateWebsiteFn: func(_ context.Context, _, _ string) error {
				cancel()
				return nil
			},
		}
		resolver := &resolverStub{}
		d := &pipeline.Driver{Store: store, Resolver: resolver}

		err := d.ResolveWebsites(ctx)
		require.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, []string{"Beispielstadt"}, resolver.calls)
	})

	t.Run("persists each row against the real csv store", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "gemeinden.csv")
		content := "Gemeinde,Einwohner,Website\n" +
			"Beispielstadt,1234,\n" +
			"Musterdorf,567,https://musterdorf.de\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		store := csv.NewStore(path)
		resolver := &resolverStub{
			fn: func(_ context.Context, _ string) (string, error) {
				return "https://beispielstadt.de", nil
			},
		}
		d := &pipeline.Driver{Store: store, Resolver: resolver}

		require.NoError(t, d.ResolveWebsites(context.Background()))

		rows, err := store.Load(context.Background())
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, "https://beispielstadt.de", rows[0].Website)
		assert.Equal(t, "1234", rows[0].Population)
		assert.Equal(t, "https://musterdorf.de", rows[1].Website)
		assert.Equal(t, []string{"Beispielstadt"}, resolver.calls)
	})
}

func TestDriver_ExtractContacts(t *testing.T) {
	t.Parallel()

	t.Run("extracts contacts for due rows only", func(t *testing.T) {
		t.Parallel()

		updates := map[string]rathaus.Contact{}
		store := &mock.MunicipalityStore{
			LoadFn: func(_ context.Context) ([]*rathaus.Municipality, error) {
				return []*rathaus.Municipality{
					{Name: "Beispielstadt", Website: "https://beispielstadt.de"},
					{Name: "Musterdorf", Website: "https://musterdorf.de", ContactName: "Anna Schmidt", Email: "presse@musterdorf.de", Phone: "0123 456"},
				}, nil
			},
			UpdateContactFn: func(_ context.Context, website string, contact rathaus.Contact) error {
				updates[website] = contact
				return nil
			},
		}
		finder := &finderStub{
			fn: func(_ context.Context, _ string) (*rathaus.Contact, error) {
				return &rathaus.Contact{Name: "Max Mustermann", Email: "presse@beispielstadt.de", Phone: "0345 123"}, nil
			},
		}
		d := &pipeline.Driver{Store: store, Finder: finder}

		require.NoError(t, d.ExtractContacts(context.Background()))
		assert.Equal(t, []string{"https://beispielstadt.de"}, finder.calls)
		assert.Equal(t, map[string]rathaus.Contact{
			"https://beispielstadt.de": {Name: "Max Mustermann", Email: "presse@beispielstadt.de", Phone: "0345 123"},
		}, updates)
	})

	t.Run("rows without a site get placeholders without network calls", func(t *testing.T) {
		t.Parallel()

		updates := map[string]rathaus.Contact{}
		store := &mock.MunicipalityStore{
			LoadFn: func(_ context.Context) ([]*rathaus.Municipality, error) {
				return []*rathaus.Municipality{{Name: "Kleinort", Website: rathaus.NoWebsite}}, nil
			},
			UpdateContactFn: func(_ context.Context, website string, contact rathaus.Contact) error {
				updates[website] = contact
				return nil
			},
		}
		finder := &finderStub{}
		d := &pipeline.Driver{Store: store, Finder: finder}

		require.NoError(t, d.ExtractContacts(context.Background()))
		assert.Empty(t, finder.calls)
		assert.Equal(t, map[string]rathaus.Contact{rathaus.NoWebsite: rathaus.UnknownContact()}, updates)
	})

	t.Run("rows without a usable website are skipped", func(t *testing.T) {
		t.Parallel()

		store := &mock.MunicipalityStore{
			LoadFn: func(_ context.Context) ([]*rathaus.Municipality, error) {
				return []*rathaus.Municipality{
					{Name: "Beispielstadt"},
					{Name: "Musterdorf", Website: rathaus.WebsiteNotFound},
				}, nil
			},
		}
		finder := &finderStub{}
		d := &pipeline.Driver{Store: store, Finder: finder}

		require.NoError(t, d.ExtractContacts(context.Background()))
		assert.Empty(t, finder.calls)
	})

	t.Run("rows without a found contact stay untouched", func(t *testing.T) {
		t.Parallel()

		store := &mock.MunicipalityStore{
			LoadFn: func(_ context.Context) ([]*rathaus.Municipality, error) {
				return []*rathaus.Municipality{{Name: "Beispielstadt", Website: "https://beispielstadt.de"}}, nil
			},
			UpdateContactFn: func(_ context.Context, _ string, _ rathaus.Contact) error {
				t.Fatal("unexpected update")
				return nil
			},
		}
		finder := &finderStub{}
		d := &pipeline.Driver{Store: store, Finder: finder}

		require.NoError(t, d.ExtractContacts(context.Background()))
		assert.Equal(t, []string{"https://beispielstadt.de"}, finder.calls)
	})

	t.Run("a second run over settled rows is a no-op", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "gemeinden.csv")
		content := "Gemeinde,Einwohner,Website,Contact Name,Email,Phone,Email Status,Notes\n" +
			"Beispielstadt,1234,https://beispielstadt.de,Max Mustermann,presse@beispielstadt.de,0345 123,,\n" +
			"Kleinort,89,No Website,N/A,N/A,N/A,,\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		finder := &finderStub{}
		d := &pipeline.Driver{Store: csv.NewStore(path), Finder: finder}

		require.NoError(t, d.ExtractContacts(context.Background()))
		assert.Empty(t, finder.calls)

		after, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, content, string(after))
	})
}
