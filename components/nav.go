package components

import "github.com/yohamta/donburi"

// NavTarget is where a nav link leads
type NavTarget int

const (
	NavHome NavTarget = iota
	NavBlog
	NavContact
	NavPartner
	NavFAQ
	NavLanguage
	NavSite
)

// NavLinkData is a clickable link in the navigation bar or footer
type NavLinkData struct {
	Target  NavTarget
	Label   func() string
	Hovered bool
}

var NavLink = donburi.NewComponentType[NavLinkData]()

// NavStateData is the singleton recording the last activated link
type NavStateData struct {
	Pending   NavTarget
	Activated bool
}

var NavState = donburi.NewComponentType[NavStateData]()
