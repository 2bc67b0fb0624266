package nav

import "strings"

// Page is a navigation target, named by its path.
type Page string

const (
	Home          Page = "/"
	Login         Page = "/login"
	Questionnaire Page = "/questionnaire"
	Chat          Page = "/chat"
	Profile       Page = "/profile"
)

var pages = []Page{Home, Login, Questionnaire, Chat, Profile}

// Resolve maps a path to its page; anything unknown lands on Home.
func Resolve(path string) Page {
	p := "/" + strings.Trim(strings.TrimSpace(path), "/")
	for _, page := range pages {
		if string(page) == p {
			return page
		}
	}
	return Home
}

func (p Page) String() string {
	switch p {
	case Login:
		return "login"
	case Questionnaire:
		return "questionnaire"
	case Chat:
		return "chat"
	case Profile:
		return "profile"
	default:
		return "home"
	}
}
