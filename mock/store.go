package mock

import (
	"context"

	"github.com/fwojciec/rathaus"
)

var _ rathaus.MunicipalityStore = (*MunicipalityStore)(nil)

// MunicipalityStore is a mock implementation of rathaus.MunicipalityStore.
type MunicipalityStore struct {
	LoadFn          func(ctx context.Context) ([]*rathaus.Municipality, error)
	UpdateWebsiteFn func(ctx context.Context, name, website string) error
	UpdateContactFn func(ctx context.Context, website string, contact rathaus.Contact) error
}

func (s *MunicipalityStore) Load(ctx context.Context) ([]*rathaus.Municipality, error) {
	return s.LoadFn(ctx)
}

func (s *MunicipalityStore) UpdateWebsite(ctx context.Context, name, website string) error {
	return s.UpdateWebsiteFn(ctx, name, website)
}

func (s *MunicipalityStore) UpdateContact(ctx context.Context, website string, contact rathaus.Contact) error {
	return s.UpdateContactFn(ctx, website, contact)
}
