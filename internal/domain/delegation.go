package domain

// DelegationRegistry is the per-collection custodian. Its Address is also
// the collection address of the proxy tokens it mints.
type DelegationRegistry struct {
	Address    Address `json:"address"`
	Collection Address `json:"collection"`
	CreatedAt  int64   `json:"created_at"`
}

// Delegation records who gets the item back and which caller may withdraw it.
type Delegation struct {
	Registry      Address `json:"registry"`
	TokenID       int64   `json:"token_id"`
	RealOwner     Address `json:"real_owner"`
	AccessControl Address `json:"access_control"`
}

// RegistryAddressFor derives the proxy collection address for a collection.
func RegistryAddressFor(collection Address) Address {
	return "delegated:" + collection
}
