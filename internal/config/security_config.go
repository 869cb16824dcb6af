package config

type SecurityLevel int

const (
	SecurityPublic SecurityLevel = iota // No authentication
	SecurityAccess                      // Access token required; the caller address comes from it
	SecurityAdmin                       // Access token with the admin role
)

// EndpointSecurityConfig maps methods to their required security level
var EndpointSecurityConfig = map[string]SecurityLevel{
	// RentService - Access Protected
	"/rentescrow.v1.RentService/Deposit":               SecurityAccess,
	"/rentescrow.v1.RentService/DepositDutchAuction":   SecurityAccess,
	"/rentescrow.v1.RentService/DepositEnglishAuction": SecurityAccess,
	"/rentescrow.v1.RentService/Delegate":              SecurityAccess,
	"/rentescrow.v1.RentService/Withdraw":              SecurityAccess,
	"/rentescrow.v1.RentService/StartRent":             SecurityAccess,
	"/rentescrow.v1.RentService/ExtendRent":            SecurityAccess,
	"/rentescrow.v1.RentService/EndRent":               SecurityAccess,
	"/rentescrow.v1.RentService/NewBid":                SecurityAccess,
	"/rentescrow.v1.RentService/EndAuction":            SecurityAccess,

	// RentService - Public
	"/rentescrow.v1.RentService/GetItem":    SecurityPublic,
	"/rentescrow.v1.RentService/ListRented": SecurityPublic,
	"/rentescrow.v1.RentService/ListEvents": SecurityPublic,

	// LedgerService
	"/rentescrow.v1.LedgerService/GetBalance":         SecurityPublic,
	"/rentescrow.v1.LedgerService/GetTransfers":       SecurityAccess,
	"/rentescrow.v1.LedgerService/SetRejectsPayments": SecurityAccess,
	"/rentescrow.v1.LedgerService/Fund":               SecurityAdmin,

	// TokenService
	"/rentescrow.v1.TokenService/OwnerOf":            SecurityPublic,
	"/rentescrow.v1.TokenService/TokenURI":           SecurityPublic,
	"/rentescrow.v1.TokenService/Approve":            SecurityAccess,
	"/rentescrow.v1.TokenService/TransferFrom":       SecurityAccess,
	"/rentescrow.v1.TokenService/RegisterCollection": SecurityAdmin,
	"/rentescrow.v1.TokenService/Mint":               SecurityAdmin,
}

// GetSecurityLevel returns the security level for a given method
func GetSecurityLevel(method string) SecurityLevel {
	if level, exists := EndpointSecurityConfig[method]; exists {
		return level
	}
	// Default to highest security for unknown endpoints
	return SecurityAdmin
}
