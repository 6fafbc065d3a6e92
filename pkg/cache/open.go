package cache

import (
	"context"
	"fmt"
	"strings"
)

// RedisPrefix namespaces every key written to a shared Redis server.
const RedisPrefix = "blueprint:"

// Open returns the backend named by url:
//
//	""                      file cache in dir, or no cache when dir is empty
//	"none", "off"           no cache
//	"file:///path"          file cache in /path
//	"redis://…", "rediss://…" Redis, with keys under [RedisPrefix]
func Open(ctx context.Context, url, dir string) (Cache, error) {
	switch {
	case url == "":
		if dir == "" {
			return NewNullCache(), nil
		}
		return openFile(dir)
	case url == "none" || url == "off":
		return NewNullCache(), nil
	case strings.HasPrefix(url, "file://"):
		return openFile(strings.TrimPrefix(url, "file://"))
	case strings.HasPrefix(url, "redis://"), strings.HasPrefix(url, "rediss://"):
		rc, err := NewRedisCache(ctx, url)
		if err != nil {
			return nil, err
		}
		return NewScoped(rc, RedisPrefix), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupported, url)
	}
}

func openFile(dir string) (Cache, error) {
	fc, err := NewFileCache(dir)
	if err != nil {
		return nil, err
	}
	return fc, nil
}
