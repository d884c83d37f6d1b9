package views

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"

	ds "github.com/oaiiae/huma-contacts/datastores"
)

type link struct {
	Name, Href string
	Active     bool
}

// textContent returns the text of n with whitespace collapsed, as an
// accessible name would be computed.
func textContent(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.Join(strings.Fields(sb.String()), " ")
}

func attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

func links(root *html.Node) []link {
	var out []link
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "a" {
			href, _ := attr(n, "href")
			current, _ := attr(n, "aria-current")
			out = append(out, link{Name: textContent(n), Href: href, Active: current == "page"})
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
	return out
}

var mockContacts = []*ds.Contact{
	{ID: "1", First: "John", Last: "Doe", Favorite: true},
	{ID: "2", First: "Jane", Last: "Smith", Favorite: false},
	{ID: "3", Favorite: false},
}

func TestContactNavEmpty(t *testing.T) {
	nav := ContactNav(nil, NavIdle)
	assert.Empty(t, links(nav))
	require.NotNil(t, nav.FirstChild)
	assert.Nil(t, nav.FirstChild.NextSibling, "exactly one node")
	assert.Contains(t, strings.ToLower(textContent(nav)), "no contacts")

	assert.Empty(t, links(ContactNav([]*ds.Contact{}, NavLoading)))
}

func TestContactNavLinks(t *testing.T) {
	want := []link{
		{Name: "John Doe ★", Href: "/contacts/1"},
		{Name: "Jane Smith", Href: "/contacts/2"},
		{Name: "No Name", Href: "/contacts/3"},
	}
	if diff := cmp.Diff(want, links(ContactNav(mockContacts, NavIdle))); diff != "" {
		t.Errorf("links mismatch (-want +got):\n%s", diff)
	}
}

func TestContactNavScenarios(t *testing.T) {
	tests := []struct {
		name    string
		contact *ds.Contact
		want    link
	}{
		{"favorite", &ds.Contact{ID: "5", First: "Fav", Last: "User", Favorite: true}, link{Name: "Fav User ★", Href: "/contacts/5"}},
		{"not favorite", &ds.Contact{ID: "6", First: "NonFav", Last: "User"}, link{Name: "NonFav User", Href: "/contacts/6"}},
		{"no name", &ds.Contact{ID: "4"}, link{Name: "No Name", Href: "/contacts/4"}},
		{"no name favorite", &ds.Contact{ID: "7", Favorite: true}, link{Name: "No Name ★", Href: "/contacts/7"}},
		{"first only", &ds.Contact{ID: "8", First: "Cher"}, link{Name: "Cher", Href: "/contacts/8"}},
		{"last only", &ds.Contact{ID: "9", Last: "Prince"}, link{Name: "Prince", Href: "/contacts/9"}},
		{"raw id", &ds.Contact{ID: "a b/c?d", First: "Odd"}, link{Name: "Odd", Href: "/contacts/a b/c?d"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := links(ContactNav([]*ds.Contact{tt.contact}, NavIdle))
			require.Len(t, got, 1)
			assert.Equal(t, tt.want, got[0])
			assert.Equal(t, tt.want.Name, Label(tt.contact))
			if tt.contact.Favorite {
				assert.True(t, strings.HasSuffix(got[0].Name, " ★"))
			} else {
				assert.NotContains(t, got[0].Name, "★")
			}
		})
	}
}

func TestContactNavPreservesOrder(t *testing.T) {
	contacts := []*ds.Contact{
		{ID: "z", First: "Zed"},
		{ID: "a", First: "Amy"},
		{ID: "m", First: "Mo"},
	}
	got := links(ContactNav(contacts, NavIdle))
	require.Len(t, got, len(contacts))
	for i, c := range contacts {
		assert.Equal(t, ContactPath(c.ID), got[i].Href)
	}
}

func TestContactNavActivePath(t *testing.T) {
	got := links(ContactNav(mockContacts, NavIdle, WithActivePath("/contacts/2")))
	require.Len(t, got, 3)
	assert.False(t, got[0].Active)
	assert.True(t, got[1].Active)
	assert.False(t, got[2].Active)
}

func TestContactNavState(t *testing.T) {
	for _, state := range []NavState{NavIdle, NavLoading, NavSubmitting} {
		nav := ContactNav(mockContacts, state)
		v, _ := attr(nav, "data-navigation-state")
		assert.Equal(t, string(state), v)

		// links stay enabled whatever the navigation state
		var walk func(*html.Node)
		walk = func(n *html.Node) {
			if n.Type == html.ElementNode && n.Data == "a" {
				_, disabled := attr(n, "aria-disabled")
				assert.False(t, disabled)
			}
			for c := n.FirstChild; c != nil; c = c.NextSibling {
				walk(c)
			}
		}
		walk(nav)
	}
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "No Name", DisplayName("", ""))
	assert.Equal(t, "John", DisplayName("John", ""))
	assert.Equal(t, "Doe", DisplayName("", "Doe"))
	assert.Equal(t, "John Doe", DisplayName("John", "Doe"))
}

func TestParseNavState(t *testing.T) {
	assert.Equal(t, NavLoading, ParseNavState("LOADING"))
	assert.Equal(t, NavSubmitting, ParseNavState("submitting"))
	assert.Equal(t, NavIdle, ParseNavState(""))
	assert.Equal(t, NavIdle, ParseNavState("bogus"))
}
