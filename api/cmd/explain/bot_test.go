package main

import (
	"errors"
	"net"
	"testing"
	"time"
)

type timeoutErr struct{}

func (timeoutErr) Error() string   { return "i/o timeout" }
func (timeoutErr) Timeout() bool   { return true }
func (timeoutErr) Temporary() bool { return true }

var _ net.Error = timeoutErr{}

func TestPollBackoffDelay(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want time.Duration
	}{
		{"nil", nil, 0},
		{"rate limited with hint", errors.New("Too Many Requests: retry after 7"), 7 * time.Second},
		{"rate limited hint over ceiling", errors.New("Too Many Requests: retry after 120"), 15 * time.Second},
		{"rate limited without hint", errors.New("too many requests"), 3 * time.Second},
		{"timeout", timeoutErr{}, 2 * time.Second},
		{"other", errors.New("boom"), time.Second},
	}
	for _, tc := range cases {
		if got := defaultPollBackoff.delay(tc.err); got != tc.want {
			t.Errorf("%s: got %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestPollBackoffFloor(t *testing.T) {
	b := pollBackoff{floor: 5 * time.Second, ceil: 10 * time.Second}
	if got := b.delay(errors.New("boom")); got != 5*time.Second {
		t.Fatalf("got %v, want floor", got)
	}
	if got := b.delay(timeoutErr{}); got != 5*time.Second {
		t.Fatalf("got %v, want floor", got)
	}
}

func TestShortHashIsStable(t *testing.T) {
	a, b := shortHash("token"), shortHash("token")
	if a != b || len(a) != 16 {
		t.Fatalf("unexpected hashes %q %q", a, b)
	}
	if shortHash("other") == a {
		t.Fatal("different tokens share a path")
	}
}
