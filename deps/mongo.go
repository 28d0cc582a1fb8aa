package deps

import (
	"github.com/pkg/errors"
	"gopkg.in/mgo.v2"
)

func IgniteMongoDB(container Deps) (Deps, error) {
	url := container.Config().UString("storage.mongo.url", "mongodb://localhost:27017")
	session, err := mgo.Dial(url)
	if err != nil {
		log.Error(err)
		log.Info(url)
		return container, errors.Wrap(err, "dial mongo")
	}

	// See https://godoc.org/gopkg.in/mgo.v2#Session.SetMode
	session.SetMode(mgo.Monotonic, true)

	container.DatabaseSessionProvider = session
	container.DatabaseProvider = session.DB(container.Config().UString("storage.mongo.name", "storefront"))
	return container, nil
}
