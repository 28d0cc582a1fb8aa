package kv

import (
	"context"
	"io/ioutil"
	"os"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/tidwall/buntdb"
)

func behavesLikeStore(store Store) {
	ctx := context.Background()

	Convey("A missing key reports ErrNotFound", func() {
		_, err := store.Get(ctx, "missing")
		So(err, ShouldEqual, ErrNotFound)
	})

	Convey("A stored value reads back", func() {
		So(store.Set(ctx, "cart-storage", `{"state":{"items":[]},"version":0}`), ShouldBeNil)
		v, err := store.Get(ctx, "cart-storage")
		So(err, ShouldBeNil)
		So(v, ShouldEqual, `{"state":{"items":[]},"version":0}`)
	})

	Convey("Set overwrites", func() {
		So(store.Set(ctx, "k", "one"), ShouldBeNil)
		So(store.Set(ctx, "k", "two"), ShouldBeNil)
		v, err := store.Get(ctx, "k")
		So(err, ShouldBeNil)
		So(v, ShouldEqual, "two")
	})
}

func TestMemoryStore(t *testing.T) {
	Convey("Memory store", t, func() {
		behavesLikeStore(NewMemoryStore())
	})
}

func TestScoped(t *testing.T) {
	Convey("Scoped stores share a backend without colliding", t, func() {
		ctx := context.Background()
		backend := NewMemoryStore()
		a := Scoped(backend, "a")
		b := Scoped(backend, "b")

		So(a.Set(ctx, "cart-storage", "A"), ShouldBeNil)
		So(b.Set(ctx, "cart-storage", "B"), ShouldBeNil)

		va, _ := a.Get(ctx, "cart-storage")
		vb, _ := b.Get(ctx, "cart-storage")
		So(va, ShouldEqual, "A")
		So(vb, ShouldEqual, "B")
		So(backend.Keys(), ShouldContain, "a:cart-storage")

		_, err := backend.Get(ctx, "cart-storage")
		So(err, ShouldEqual, ErrNotFound)
	})

	Convey("An empty scope is the backend itself", t, func() {
		backend := NewMemoryStore()
		So(Scoped(backend, ""), ShouldEqual, backend)
	})
}

func TestBuntStore(t *testing.T) {
	db, err := buntdb.Open(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	Convey("Bunt store", t, func() {
		behavesLikeStore(NewBuntStore(db))
	})
}

func TestLedisStore(t *testing.T) {
	ctx := context.Background()
	dir, err := ioutil.TempDir("", "ledis")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)

	conn, db, err := OpenLedis(dir)
	if err != nil {
		t.Fatal(err)
	}

	Convey("Ledis store", t, func() {
		behavesLikeStore(NewLedisStore(db))
	})

	if err := NewLedisStore(db).Set(ctx, "durable", "yes"); err != nil {
		t.Fatal(err)
	}
	conn.Close()

	conn, db, err = OpenLedis(dir)
	if err != nil {
		t.Fatal(err)
	}
	defer conn.Close()

	Convey("Ledis data survives reopening the data dir", t, func() {
		v, err := NewLedisStore(db).Get(ctx, "durable")
		So(err, ShouldBeNil)
		So(v, ShouldEqual, "yes")
	})
}

func TestRedisStore(t *testing.T) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set")
	}
	client := DialRedis(addr)
	defer client.Close()

	store := NewRedisStore(client)
	if !store.Ping(context.Background()) {
		t.Skip("redis not reachable")
	}
	client.Del(context.Background(), "missing", "k", "cart-storage")

	Convey("Redis store", t, func() {
		behavesLikeStore(store)
	})
}
