package deps

import (
	"github.com/pkg/errors"
	"github.com/tryanzu/storefront/modules/exceptions"
)

func IgniteExceptions(container Deps) (Deps, error) {
	module, err := exceptions.Boot(container.Config().UString("sentry.dsn", ""), container.Log())
	if err != nil {
		return container, errors.Wrap(err, "sentry client")
	}
	container.ExceptionsProvider = module
	return container, nil
}
