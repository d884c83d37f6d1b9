package views

import (
	"strconv"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	ds "github.com/oaiiae/huma-contacts/datastores"
)

type PageData struct {
	Title  string
	Query  string
	State  NavState
	Nav    *html.Node
	Detail *html.Node
}

// Page lays out the sidebar next to the detail region.
func Page(d PageData) *html.Node {
	detailAttrs := attrs("id", "detail")
	if d.State == NavLoading {
		detailAttrs = append(detailAttrs, attrs("class", "loading")...)
	}

	return element(atom.Html, attrs("lang", "en"),
		element(atom.Head, nil,
			element(atom.Meta, attrs("charset", "utf-8")),
			element(atom.Meta, attrs("name", "viewport", "content", "width=device-width, initial-scale=1")),
			element(atom.Title, nil, text(d.Title)),
		),
		element(atom.Body, nil,
			element(atom.Div, attrs("id", "sidebar"),
				element(atom.H1, nil, element(atom.A, attrs("href", "/"), text("Contacts"))),
				element(atom.Div, nil,
					element(atom.Form, attrs("id", "search-form", "role", "search", "method", "get"),
						element(atom.Input, attrs(
							"id", "q",
							"name", "q",
							"type", "search",
							"placeholder", "Search",
							"aria-label", "Search contacts",
							"value", d.Query,
						)),
					),
				),
				d.Nav,
			),
			element(atom.Div, detailAttrs, d.Detail),
		),
	)
}

// Index is the detail region shown when no contact is selected.
func Index() *html.Node {
	return element(atom.P, attrs("id", "index-page"), text("Select a contact from the list on the left."))
}

// ContactDetail is the detail region of a single contact.
func ContactDetail(c *ds.Contact) *html.Node {
	var avatar *html.Node
	if c.Avatar != "" {
		avatar = element(atom.Img, attrs("alt", DisplayName(c.First, c.Last)+" avatar", "src", c.Avatar))
	}

	var twitter *html.Node
	if c.Twitter != "" {
		twitter = element(atom.P, nil,
			element(atom.A, attrs("href", "https://twitter.com/"+c.Twitter), text(c.Twitter)))
	}

	var notes *html.Node
	if c.Notes != "" {
		notes = element(atom.P, nil, text(c.Notes))
	}

	var name *html.Node
	if c.First == "" && c.Last == "" {
		name = element(atom.I, nil, text(NoName))
	} else {
		name = text(DisplayName(c.First, c.Last))
	}

	return element(atom.Div, attrs("id", "contact"),
		avatar,
		element(atom.Div, nil,
			element(atom.H1, nil, name, favoriteForm(c)),
			twitter,
			notes,
			element(atom.Form, attrs("action", ContactPath(c.ID)+"/destroy", "method", "post"),
				element(atom.Button, attrs("type", "submit"), text("Delete")),
			),
		),
	)
}

func favoriteForm(c *ds.Contact) *html.Node {
	label, marker := "Add to favorites", "☆"
	if c.Favorite {
		label, marker = "Remove from favorites", Star
	}
	return element(atom.Form, attrs("action", ContactPath(c.ID)+"/favorite", "method", "post"),
		element(atom.Button, attrs(
			"aria-label", label,
			"name", "favorite",
			"value", strconv.FormatBool(!c.Favorite),
		), text(marker)),
	)
}
