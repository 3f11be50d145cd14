package cache

import (
	"errors"
	"testing"

	"github.com/matryer/is"

	"github.com/domino14/wordhand/config"
)

func TestLoadCachesObject(t *testing.T) {
	is := is.New(t)
	CreateGlobalObjectCache()
	cfg := config.DefaultConfig()
	calls := 0
	loader := func(cfg *config.Config, key string) (any, error) {
		calls++
		return []string{key}, nil
	}
	obj1, err := Load(cfg, "words.txt", loader)
	is.NoErr(err)
	obj2, err := Load(cfg, "words.txt", loader)
	is.NoErr(err)
	is.Equal(calls, 1)
	is.Equal(obj1, obj2)

	_, err = Load(cfg, "other.txt", loader)
	is.NoErr(err)
	is.Equal(calls, 2)
}

func TestLoadErrorNotCached(t *testing.T) {
	is := is.New(t)
	CreateGlobalObjectCache()
	cfg := config.DefaultConfig()
	boom := errors.New("boom")
	calls := 0
	loader := func(cfg *config.Config, key string) (any, error) {
		calls++
		if calls == 1 {
			return nil, boom
		}
		return key, nil
	}
	_, err := Load(cfg, "flaky", loader)
	is.True(errors.Is(err, boom))
	obj, err := Load(cfg, "flaky", loader)
	is.NoErr(err)
	is.Equal(obj, "flaky")
}
