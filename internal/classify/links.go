package classify

import "strings"

// Hardcoded external links the daemon prints in its banner.
const (
	LicenseURL = "https://github.com/turtlecoin/turtlecoin/blob/master/LICENSE"
	ChatURL    = "http://chat.turtlecoin.lol"
)

// Links reports which external links a raw line mentions.
type Links struct {
	License bool
	Chat    bool
}

// DetectLinks checks line for the license and chat links. Both may be set.
func DetectLinks(line string) Links {
	return Links{
		License: strings.Contains(line, LicenseURL),
		Chat:    strings.Contains(line, ChatURL),
	}
}
