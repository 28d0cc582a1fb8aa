package deps

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/divideandconquer/go-merge/merge"
	"github.com/olebedev/config"
	"github.com/pkg/errors"
	"github.com/subosito/gotenv"
)

// Version is reported in traces and by the CLI.
const Version = "0.3.0"

// Defaults lists every known key. Env overrides only apply to keys present
// in the tree, so each one needs a default here.
func Defaults() map[string]interface{} {
	return map[string]interface{}{
		"environment": "development",
		"application": map[string]interface{}{
			"secret": "change-me",
		},
		"api": map[string]interface{}{
			"port":   ":3200",
			"origin": "http://localhost:3000",
		},
		"log": map[string]interface{}{
			"level": "info",
		},
		"storage": map[string]interface{}{
			"driver": "ledis",
			"key":    "cart-storage",
			"ledis":  map[string]interface{}{"dir": "./var/ledis"},
			"bunt":   map[string]interface{}{"path": "cart.db"},
			"redis":  map[string]interface{}{"addr": "localhost:6379"},
			"mongo": map[string]interface{}{
				"url":        "mongodb://localhost:27017",
				"name":       "storefront",
				"collection": "storage",
			},
			"s3": map[string]interface{}{
				"bucket": "",
				"region": "us-west-1",
				"prefix": "carts/",
			},
		},
		"amazon": map[string]interface{}{
			"access_key": "",
			"secret":     "",
		},
		"cart": map[string]interface{}{
			"persist_policy":  "log",
			"quantity_policy": "keep",
			"retry":           map[string]interface{}{"max": 3},
			"currency":        "USD",
			"locale":          "en",
			"scope":           "cli",
			"registry":        map[string]interface{}{"size": 1024},
		},
		"sentry": map[string]interface{}{
			"dsn": "",
		},
		"events": map[string]interface{}{
			"buffer": 64,
		},
		"tracing": map[string]interface{}{
			"endpoint": "",
		},
	}
}

// LoadConfig reads envfile (json, yaml or toml by extension) over the
// defaults, after loading .env into the process environment. A missing
// envfile leaves the defaults.
func LoadConfig(envfile string) (*config.Config, error) {
	if _, err := os.Stat(".env"); err == nil {
		if err := gotenv.Load(".env"); err != nil {
			return nil, errors.Wrap(err, "load .env")
		}
	}

	root := map[string]interface{}{}
	if _, err := os.Stat(envfile); err == nil {
		parsed, err := parseFile(envfile)
		if err != nil {
			return nil, errors.Wrapf(err, "parse %s", envfile)
		}
		root = parsed
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	merged := merge.Merge(Defaults(), root)
	conf := &config.Config{Root: merged}
	return conf.Env(), nil
}

func parseFile(file string) (map[string]interface{}, error) {
	var (
		conf *config.Config
		err  error
	)
	switch strings.ToLower(filepath.Ext(file)) {
	case ".toml":
		var m map[string]interface{}
		if _, err := toml.DecodeFile(file, &m); err != nil {
			return nil, err
		}
		return normalize(m).(map[string]interface{}), nil
	case ".yaml", ".yml":
		conf, err = config.ParseYamlFile(file)
	default:
		conf, err = config.ParseJsonFile(file)
	}
	if err != nil {
		return nil, err
	}

	m, ok := conf.Root.(map[string]interface{})
	if !ok {
		return nil, errors.Errorf("%s: top level must be a map", file)
	}
	return m, nil
}

// normalize turns toml's int64 into int, which the config tree reads.
func normalize(v interface{}) interface{} {
	switch n := v.(type) {
	case map[string]interface{}:
		for k, item := range n {
			n[k] = normalize(item)
		}
		return n
	case []interface{}:
		for i, item := range n {
			n[i] = normalize(item)
		}
		return n
	case []map[string]interface{}:
		list := make([]interface{}, len(n))
		for i, item := range n {
			list[i] = normalize(item)
		}
		return list
	case int64:
		return int(n)
	}
	return v
}
