package deps

import (
	"context"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/olebedev/config"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/tryanzu/storefront/core/kv"
	"github.com/tryanzu/storefront/modules/cart"
)

func writeFile(dir, name, content string) string {
	path := filepath.Join(dir, name)
	So(ioutil.WriteFile(path, []byte(content), 0644), ShouldBeNil)
	return path
}

func TestLoadConfig(t *testing.T) {
	dir, err := ioutil.TempDir("", "storefront-config")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)

	Convey("A missing file keeps the defaults", t, func() {
		conf, err := LoadConfig(filepath.Join(dir, "nope.json"))
		So(err, ShouldBeNil)
		So(conf.UString("storage.driver"), ShouldEqual, "ledis")
		So(conf.UInt("cart.retry.max"), ShouldEqual, 3)
	})

	Convey("A json file overrides defaults key by key", t, func() {
		path := writeFile(dir, "env.json", `{"storage": {"driver": "bunt"}, "cart": {"retry": {"max": 7}}}`)
		conf, err := LoadConfig(path)
		So(err, ShouldBeNil)
		So(conf.UString("storage.driver"), ShouldEqual, "bunt")
		So(conf.UString("storage.bunt.path"), ShouldEqual, "cart.db")
		So(conf.UInt("cart.retry.max"), ShouldEqual, 7)
	})

	Convey("A toml file is read into the same tree", t, func() {
		path := writeFile(dir, "config.toml", "[storage]\ndriver = \"memory\"\n\n[cart.retry]\nmax = 5\n")
		conf, err := LoadConfig(path)
		So(err, ShouldBeNil)
		So(conf.UString("storage.driver"), ShouldEqual, "memory")
		So(conf.UInt("cart.retry.max"), ShouldEqual, 5)
	})

	Convey("A yaml file is read into the same tree", t, func() {
		path := writeFile(dir, "config.yaml", "storage:\n  driver: redis\n")
		conf, err := LoadConfig(path)
		So(err, ShouldBeNil)
		So(conf.UString("storage.driver"), ShouldEqual, "redis")
	})

	Convey("Environment variables win over the file", t, func() {
		os.Setenv("CART_QUANTITY_POLICY", "reject")
		defer os.Unsetenv("CART_QUANTITY_POLICY")

		conf, err := LoadConfig(filepath.Join(dir, "nope.json"))
		So(err, ShouldBeNil)
		So(conf.UString("cart.quantity_policy"), ShouldEqual, "reject")
	})

	Convey("Malformed files are reported", t, func() {
		path := writeFile(dir, "broken.json", `{"storage": `)
		_, err := LoadConfig(path)
		So(err, ShouldNotBeNil)
	})
}

func TestBootstrap(t *testing.T) {
	Convey("Given an in-memory configuration", t, func() {
		root := Defaults()
		root["storage"].(map[string]interface{})["driver"] = "memory"
		container := Deps{ConfigProvider: &config.Config{Root: root}}

		Convey("Bootstrap wires a working cart registry", func() {
			container, err := Bootstrap(container)
			So(err, ShouldBeNil)
			defer container.Close()

			So(container.Log(), ShouldNotBeNil)
			So(container.Exceptions(), ShouldNotBeNil)
			So(container.Storage(), ShouldHaveSameTypeAs, kv.NewMemoryStore())

			So(container.Events(), ShouldNotBeNil)

			c, err := container.Carts().Get(context.Background(), "cli")
			So(err, ShouldBeNil)
			So(c.IsEmpty(), ShouldBeTrue)
			So(c.AddItem(context.Background(), cart.Product{ID: "p1"}, cart.Variant{ID: "v1"}, 1), ShouldBeNil)
			So(c.Count(), ShouldEqual, 1)
		})

		Convey("Carts are stored under storage.key", func() {
			root["storage"].(map[string]interface{})["key"] = "basket"
			root["cart"].(map[string]interface{})["registry"] = map[string]interface{}{"size": 2}
			container, err := Bootstrap(container)
			So(err, ShouldBeNil)
			defer container.Close()

			ctx := context.Background()
			c, err := container.Carts().Get(ctx, "cli")
			So(err, ShouldBeNil)
			So(c.AddItem(ctx, cart.Product{ID: "p1"}, cart.Variant{ID: "v1"}, 1), ShouldBeNil)

			_, err = container.Storage().Get(ctx, "cli:basket")
			So(err, ShouldBeNil)
			So(container.Carts().Capacity, ShouldEqual, 2)
		})

		Convey("An unknown driver fails", func() {
			root["storage"].(map[string]interface{})["driver"] = "floppy"
			_, err := Bootstrap(container)
			So(err, ShouldNotBeNil)
		})

		Convey("An unknown policy fails", func() {
			root["cart"].(map[string]interface{})["persist_policy"] = "pray"
			_, err := Bootstrap(container)
			So(err, ShouldNotBeNil)
		})

		Convey("The bunt driver opens a file store", func() {
			dir, err := ioutil.TempDir("", "storefront-bunt")
			So(err, ShouldBeNil)
			defer os.RemoveAll(dir)

			root["storage"].(map[string]interface{})["driver"] = "bunt"
			root["storage"].(map[string]interface{})["bunt"] = map[string]interface{}{"path": filepath.Join(dir, "cart.db")}
			container, err := Bootstrap(container)
			So(err, ShouldBeNil)
			defer container.Close()
			So(container.BuntDB(), ShouldNotBeNil)
		})
	})
}
