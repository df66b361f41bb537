package security

// CredentialComparer decides whether a supplied password matches the stored
// credential. The comparison strategy is pluggable so a hashing scheme can be
// substituted without changing the login contract.
type CredentialComparer interface {
	Matches(stored, supplied string) bool
}

// PlaintextComparer compares credentials byte for byte, case-sensitively.
// The directory stores passwords as supplied, so this is the matching
// comparer for it. Not suitable for anything beyond a demonstration backend.
type PlaintextComparer struct{}

// NewPlaintextComparer creates a new PlaintextComparer.
func NewPlaintextComparer() PlaintextComparer {
	return PlaintextComparer{}
}

// Matches reports whether supplied is exactly equal to stored.
func (PlaintextComparer) Matches(stored, supplied string) bool {
	return stored == supplied
}
