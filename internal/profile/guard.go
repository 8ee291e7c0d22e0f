package profile

// AssertAbsent fails with ConflictError on the first key that already
// exists in v. Keys are checked in order and checking stops at the first
// conflict.
func AssertAbsent(v *Vault, keys []string) error {
	for _, key := range keys {
		_, found, err := v.Get(key)
		if err != nil {
			return err
		}
		if found {
			return newError(KindConflict, "%s exists", key).WithDebug("namespace", v.Namespace()).WithDebug("key", key)
		}
	}
	return nil
}

// AssertPresent fails with NotFoundError if key does not exist in v.
func AssertPresent(v *Vault, key string) error {
	_, found, err := v.Get(key)
	if err != nil {
		return err
	}
	if !found {
		return newError(KindNotFound, "%s does not exist", key).WithDebug("namespace", v.Namespace()).WithDebug("key", key)
	}
	return nil
}
