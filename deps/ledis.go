package deps

import (
	"github.com/tryanzu/storefront/core/kv"
)

func IgniteLedisDB(container Deps) (Deps, error) {
	dir := container.Config().UString("storage.ledis.dir", "./var/ledis")
	conn, db, err := kv.OpenLedis(dir)
	if err != nil {
		return container, err
	}

	container.LedisConnProvider = conn
	container.LedisProvider = db
	return container, nil
}
