package nocoah

// CloudProvider identifies which vendor's endpoint table a client uses.
type CloudProvider string

const (
	// ProviderConoHa is the default public cloud.
	ProviderConoHa CloudProvider = "conoha"
)

// String returns the provider key as a string.
func (p CloudProvider) String() string {
	return string(p)
}

// Valid reports whether the provider key is known.
func (p CloudProvider) Valid() bool {
	return p == ProviderConoHa
}

// Credentials is the resolved account identity used to authenticate
// against the identity service. Values are immutable once resolved.
type Credentials struct {
	User     string        `json:"api_user"  yaml:"api_user"`
	Password string        `json:"-"         yaml:"-"`
	TenantID string        `json:"tenant_id" yaml:"tenant_id"`
	Region   string        `json:"region"    yaml:"region"`
	Provider CloudProvider `json:"public_cloud,omitempty" yaml:"public_cloud,omitempty"`
}

// Complete reports whether all required fields are present.
func (c *Credentials) Complete() bool {
	return c != nil && c.User != "" && c.Password != "" && c.TenantID != "" && c.Region != ""
}
