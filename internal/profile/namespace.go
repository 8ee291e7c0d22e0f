package profile

// Identity is who is running the tool, fixed for the life of the process.
type Identity struct {
	Username    string
	PackageName string
}

// DeriveNamespace returns the backend service name for a profile.
//
// The format is a compatibility contract: changing it orphans every
// credential stored under the old names.
func DeriveNamespace(username, packageName, profile string) string {
	return username + "@" + packageName + "/" + profile
}

// Namespace returns the namespace of profile for this identity.
func (id Identity) Namespace(profile string) string {
	return DeriveNamespace(id.Username, id.PackageName, profile)
}
