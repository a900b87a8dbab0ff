package role

import "strings"

// Role is the canonical enumerated role. The original system stored
// free-form bilingual strings ("Client"/"Cliente"); synonyms are
// normalized here once instead of re-matched in every component.
type Role string

const (
	Client  Role = "Client"
	Barber  Role = "Barber"
	Admin   Role = "Administrator"
	Unknown Role = ""
)

var synonyms = map[string]Role{
	"client":        Client,
	"cliente":       Client,
	"barber":        Barber,
	"barbero":       Barber,
	"administrator": Admin,
	"administrador": Admin,
	"manager":       Admin,
}

var byID = map[uint]Role{
	1: Client,
	2: Barber,
	3: Admin,
}

// Normalize maps a role string, including its localized synonyms, onto
// the canonical Role. Unrecognized input yields Unknown.
func Normalize(s string) Role {
	if r, ok := synonyms[strings.ToLower(strings.TrimSpace(s))]; ok {
		return r
	}
	return Unknown
}

// FromID resolves the numeric roleId used by the registration form.
func FromID(id uint) Role {
	if r, ok := byID[id]; ok {
		return r
	}
	return Unknown
}

func (r Role) ID() uint {
	for id, role := range byID {
		if role == r {
			return id
		}
	}
	return 0
}

func (r Role) String() string {
	return string(r)
}

// RedirectTarget is the dashboard path a freshly authenticated user of
// this role lands on.
func (r Role) RedirectTarget() string {
	switch r {
	case Client:
		return "/cliente/dashboard"
	case Barber:
		return "/barbero/dashboard"
	case Admin:
		return "/admin/dashboard"
	default:
		return "/"
	}
}

// In reports whether r matches any of the allowed roles, where each
// allowed entry may itself be a localized synonym.
func (r Role) In(allowed ...string) bool {
	for _, a := range allowed {
		if Normalize(a) == r {
			return true
		}
	}
	return false
}
