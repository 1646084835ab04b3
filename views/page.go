package views

// Page identifies one screen of the viewer
type Page int

const (
	PageNotFound Page = iota
	PageHome
	PageLogin
	PageProfile
	PageServerError
)

var pageNames = map[Page]string{
	PageNotFound:    "not-found",
	PageHome:        "home",
	PageLogin:       "login",
	PageProfile:     "profile",
	PageServerError: "server-error",
}

var pageTitles = map[Page]string{
	PageNotFound:    "Not Found",
	PageHome:        "Active Missions",
	PageLogin:       "Login",
	PageProfile:     "Profile",
	PageServerError: "Server Error",
}

func (p Page) String() string {
	if name, ok := pageNames[p]; ok {
		return name
	}
	return pageNames[PageNotFound]
}

func (p Page) Title() string {
	if title, ok := pageTitles[p]; ok {
		return title
	}
	return pageTitles[PageNotFound]
}
