package deps

import (
	"github.com/pkg/errors"
	"github.com/tidwall/buntdb"
)

func IgniteBuntDB(container Deps) (Deps, error) {
	path := container.Config().UString("storage.bunt.path", "cart.db")
	db, err := buntdb.Open(path)
	if err != nil {
		return container, errors.Wrapf(err, "open buntdb %s", path)
	}

	container.BuntProvider = db
	return container, nil
}
