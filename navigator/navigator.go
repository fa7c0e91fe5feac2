// Package navigator carries out the signals emitted by the key interpreter:
// it moves the calendar and navigates the host to dates and event creation.
package navigator

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"path"

	"github.com/ionut-t/calkeys/core"
)

const (
	gotoParam   = "goto"
	insertParam = "nl"
	createPath  = "local"
)

type Kind int

const (
	// Link follows a link inside the application.
	Link Kind = iota
	// Redirect replaces the page.
	Redirect
)

func (k Kind) String() string {
	switch k {
	case Link:
		return "link"
	case Redirect:
		return "redirect"
	}
	return "unknown"
}

// Navigation is a request to show another page.
type Navigation struct {
	Kind Kind
	URL  string
	// Boosted links go through the host's client-side navigation, which
	// needs a frame to attach before the link is activated.
	Boosted bool
}

// Host performs navigations.
type Host interface {
	Navigate(nav Navigation) error
}

// Calendar exposes the calendar's own pan controls. Each call reports false
// when the control does not exist.
type Calendar interface {
	Previous() bool
	Next() bool
}

type Navigator struct {
	host     Host
	calendar Calendar
	basePath string
}

type Option func(*Navigator)

// WithBasePath mounts the generated URLs below p instead of "/".
func WithBasePath(p string) Option {
	return func(n *Navigator) {
		n.basePath = p
	}
}

// New creates a Navigator. calendar may be nil when no calendar is shown.
func New(host Host, calendar Calendar, opts ...Option) *Navigator {
	n := &Navigator{
		host:     host,
		calendar: calendar,
		basePath: "/",
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Handle reacts to a single signal.
func (n *Navigator) Handle(signal core.Signal) error {
	switch s := signal.(type) {
	case core.GotoSignal:
		if s.IsNow() {
			return n.navigate(Navigation{Kind: Link, URL: n.root()})
		}
		return n.navigate(Navigation{Kind: Link, URL: n.GotoURL(s.Value()), Boosted: true})

	case core.MoveSignal:
		n.move(s.Value())
		return nil

	case core.InsertSignal:
		return n.navigate(Navigation{Kind: Redirect, URL: n.InsertURL(s.Value())})

	case core.SearchSignal:
		log.Printf("no handler for search %q", s.Value())
		return nil
	}

	return fmt.Errorf("unknown signal %T", signal)
}

// Run handles signals until ctx is done or signals is closed. Errors from
// single signals are logged and do not stop the loop. It is meant for hosts
// without an event loop of their own; a bubbletea host calls Handle from
// Update instead.
func (n *Navigator) Run(ctx context.Context, signals <-chan core.Signal) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case signal, ok := <-signals:
			if !ok {
				return nil
			}
			if err := n.Handle(signal); err != nil {
				log.Printf("handling %s signal: %v", signal.Name(), err)
			}
		}
	}
}

// GotoURL is the root view focused on target.
func (n *Navigator) GotoURL(target string) string {
	return n.root() + "?" + url.Values{gotoParam: {target}}.Encode()
}

// InsertURL is the event creation page prefilled with text.
func (n *Navigator) InsertURL(text string) string {
	return path.Join(n.root(), createPath) + "?" + url.Values{insertParam: {text}}.Encode()
}

// GotoTarget extracts the goto target from a URL built by GotoURL.
// It returns core.GotoNow for the bare root.
func GotoTarget(rawURL string) (string, bool) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", false
	}
	if !u.Query().Has(gotoParam) {
		return core.GotoNow, true
	}
	return u.Query().Get(gotoParam), true
}

func (n *Navigator) root() string {
	root := path.Clean("/" + n.basePath)
	if root != "/" {
		root += "/"
	}
	return root
}

func (n *Navigator) move(direction core.Direction) {
	if n.calendar == nil {
		return
	}

	var ok bool
	switch direction {
	case core.DirectionLeft:
		ok = n.calendar.Previous()
	case core.DirectionRight:
		ok = n.calendar.Next()
	default:
		// up and down are reserved
		return
	}

	if !ok {
		log.Printf("calendar has no control for %s", direction)
	}
}

func (n *Navigator) navigate(nav Navigation) error {
	if n.host == nil {
		return nil
	}
	log.Printf("navigating (%s) to %s", nav.Kind, nav.URL)
	if err := n.host.Navigate(nav); err != nil {
		return fmt.Errorf("navigate to %s: %w", nav.URL, err)
	}
	return nil
}
