// Package views builds the HTML of the contacts application as [html.Node] trees.
package views

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	ds "github.com/oaiiae/huma-contacts/datastores"
)

// NavState is the phase of the navigation that led to a render.
type NavState string

const (
	NavIdle       NavState = "idle"
	NavLoading    NavState = "loading"
	NavSubmitting NavState = "submitting"
)

// ParseNavState maps unknown values to [NavIdle].
func ParseNavState(s string) NavState {
	switch st := NavState(strings.ToLower(s)); st {
	case NavLoading, NavSubmitting:
		return st
	default:
		return NavIdle
	}
}

const (
	NoName     = "No Name"
	NoContacts = "No contacts"
	Star       = "★"
)

// DisplayName joins the present name parts with a space, or returns [NoName].
func DisplayName(first, last string) string {
	switch {
	case first == "" && last == "":
		return NoName
	case first == "":
		return last
	case last == "":
		return first
	default:
		return first + " " + last
	}
}

// Label is the accessible name of a contact link: its display name followed by
// the favorite marker when relevant.
func Label(c *ds.Contact) string {
	if c.Favorite {
		return DisplayName(c.First, c.Last) + " " + Star
	}
	return DisplayName(c.First, c.Last)
}

// ContactPath is the route of a contact's detail view. The id is not escaped.
func ContactPath(id ds.ContactID) string { return "/contacts/" + string(id) }

type navOptions struct {
	activePath string
}

type NavOption func(*navOptions)

// WithActivePath marks the entry linking to path as the current page.
func WithActivePath(path string) NavOption {
	return func(o *navOptions) { o.activePath = path }
}

// ContactNav renders the sidebar list of contacts, in the given order.
//
// The navigation state is only exposed as the data-navigation-state attribute
// of the returned <nav>; links stay interactive whatever the state.
func ContactNav(contacts []*ds.Contact, state NavState, opts ...NavOption) *html.Node {
	var o navOptions
	for _, opt := range opts {
		opt(&o)
	}

	nav := element(atom.Nav, attrs("data-navigation-state", string(state)))
	if len(contacts) == 0 {
		nav.AppendChild(element(atom.P, nil, element(atom.I, nil, text(NoContacts))))
		return nav
	}

	ul := element(atom.Ul, nil)
	for _, c := range contacts {
		ul.AppendChild(element(atom.Li, nil, contactLink(c, o.activePath)))
	}
	nav.AppendChild(ul)
	return nav
}

func contactLink(c *ds.Contact, activePath string) *html.Node {
	href := ContactPath(c.ID)
	a := element(atom.A, attrs("href", href))
	if href == activePath {
		a.Attr = append(a.Attr, attrs("class", "active", "aria-current", "page")...)
	}

	if c.First == "" && c.Last == "" {
		a.AppendChild(element(atom.I, nil, text(NoName)))
	} else {
		a.AppendChild(text(DisplayName(c.First, c.Last)))
	}
	if c.Favorite {
		a.AppendChild(text(" "))
		a.AppendChild(element(atom.Span, nil, text(Star)))
	}
	return a
}
