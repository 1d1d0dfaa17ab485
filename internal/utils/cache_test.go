package utils

import (
	"testing"
	"time"
)

func TestCacheTTL(t *testing.T) {
	c := GetCache()

	c.Set("test:key", "value", time.Minute)
	if got := c.Get("test:key"); got != "value" {
		t.Errorf("Get = %v, want value", got)
	}

	c.Set("test:expired", "gone", -time.Second)
	if got := c.Get("test:expired"); got != nil {
		t.Errorf("expired entry returned %v", got)
	}

	c.Delete("test:key")
	if got := c.Get("test:key"); got != nil {
		t.Errorf("deleted entry returned %v", got)
	}
}
