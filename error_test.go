package rathaus_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/rathaus"
	"github.com/stretchr/testify/assert"
)

func TestErrorCode(t *testing.T) {
	t.Parallel()

	t.Run("nil error", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "", rathaus.ErrorCode(nil))
	})

	t.Run("application error", func(t *testing.T) {
		t.Parallel()
		err := rathaus.Errorf(rathaus.ENOTFOUND, "row %q not found", "Beispielstadt")
		assert.Equal(t, rathaus.ENOTFOUND, rathaus.ErrorCode(err))
	})

	t.Run("wrapped application error", func(t *testing.T) {
		t.Parallel()
		err := fmt.Errorf("load: %w", rathaus.Errorf(rathaus.EUNAVAILABLE, "timeout"))
		assert.Equal(t, rathaus.EUNAVAILABLE, rathaus.ErrorCode(err))
	})

	t.Run("non-application error", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, rathaus.EINTERNAL, rathaus.ErrorCode(errors.New("boom")))
	})
}

func TestErrorMessage(t *testing.T) {
	t.Parallel()

	t.Run("application error", func(t *testing.T) {
		t.Parallel()
		err := rathaus.Errorf(rathaus.EINVALID, "name required")
		assert.Equal(t, "name required", rathaus.ErrorMessage(err))
	})

	t.Run("non-application error", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "Internal error.", rathaus.ErrorMessage(errors.New("boom")))
	})
}
