package client

import (
	"sync"
	"time"
)

// successTTL is how long a success banner stays before dismissing itself.
const successTTL = 5 * time.Second

type BannerKind int

const (
	BannerSuccess BannerKind = iota
	BannerError
)

type Banner struct {
	Kind BannerKind
	Text string
}

// Notifier holds the single visible banner. Success banners auto-dismiss;
// error banners persist until dismissed or superseded.
type Notifier struct {
	mu     sync.Mutex
	banner *Banner
	seq    int
	ttl    time.Duration
}

func NewNotifier() *Notifier {
	return &Notifier{ttl: successTTL}
}

func (n *Notifier) Success(text string) {
	n.mu.Lock()
	n.seq++
	seq := n.seq
	n.banner = &Banner{Kind: BannerSuccess, Text: text}
	ttl := n.ttl
	n.mu.Unlock()

	time.AfterFunc(ttl, func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		// Only clear if nothing replaced this banner in the meantime.
		if n.seq == seq {
			n.banner = nil
		}
	})
}

func (n *Notifier) Error(text string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.seq++
	n.banner = &Banner{Kind: BannerError, Text: text}
}

func (n *Notifier) Dismiss() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.seq++
	n.banner = nil
}

// Current returns the visible banner, or nil.
func (n *Notifier) Current() *Banner {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.banner == nil {
		return nil
	}
	b := *n.banner
	return &b
}
