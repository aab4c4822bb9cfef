package nocoah

import (
	"time"
)

// Server represents a compute instance (VPS).
type Server struct {
	ID       string            `json:"id"                 yaml:"id"`
	Name     string            `json:"name"               yaml:"name"`
	Status   string            `json:"status"             yaml:"status"`
	Created  time.Time         `json:"created,omitempty"  yaml:"created,omitempty"`
	Updated  time.Time         `json:"updated,omitempty"  yaml:"updated,omitempty"`
	Metadata map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// ServerCreateRequest is the body for creating a server.
type ServerCreateRequest struct {
	ImageRef  string            `json:"imageRef"            yaml:"imageRef"`
	FlavorRef string            `json:"flavorRef"           yaml:"flavorRef"`
	AdminPass string            `json:"adminPass,omitempty" yaml:"adminPass,omitempty"`
	KeyName   string            `json:"key_name,omitempty"  yaml:"key_name,omitempty"`
	Metadata  map[string]string `json:"metadata,omitempty"  yaml:"metadata,omitempty"`
}

// Network represents a layer-2 network.
type Network struct {
	ID        string   `json:"id"         yaml:"id"`
	Name      string   `json:"name"       yaml:"name"`
	Status    string   `json:"status"     yaml:"status"`
	Subnets   []string `json:"subnets"    yaml:"subnets"`
	AdminUp   bool     `json:"admin_state_up" yaml:"admin_state_up"`
	SharedNet bool     `json:"shared"     yaml:"shared"`
}

// SecurityGroup represents a security group.
type SecurityGroup struct {
	ID          string              `json:"id"          yaml:"id"`
	Name        string              `json:"name"        yaml:"name"`
	Description string              `json:"description" yaml:"description"`
	Rules       []SecurityGroupRule `json:"security_group_rules" yaml:"security_group_rules"`
}

// SecurityGroupRule represents a single rule within a security group.
type SecurityGroupRule struct {
	ID           string `json:"id"                       yaml:"id"`
	Direction    string `json:"direction"                yaml:"direction"`
	Protocol     string `json:"protocol,omitempty"       yaml:"protocol,omitempty"`
	PortRangeMin *int   `json:"port_range_min,omitempty" yaml:"port_range_min,omitempty"`
	PortRangeMax *int   `json:"port_range_max,omitempty" yaml:"port_range_max,omitempty"`
	RemoteIP     string `json:"remote_ip_prefix,omitempty" yaml:"remote_ip_prefix,omitempty"`
}

// Volume represents a block storage volume.
type Volume struct {
	ID     string `json:"id"     yaml:"id"`
	Name   string `json:"name"   yaml:"name"`
	Status string `json:"status" yaml:"status"`
	Size   int    `json:"size"   yaml:"size"`
}

// VolumeCreateRequest is the body for creating a volume.
type VolumeCreateRequest struct {
	Name string `json:"name" yaml:"name"`
	Size int    `json:"size" yaml:"size"`
}

// Image represents a bootable image.
type Image struct {
	ID         string    `json:"id"                   yaml:"id"`
	Name       string    `json:"name"                 yaml:"name"`
	Status     string    `json:"status"               yaml:"status"`
	SizeBytes  int64     `json:"size,omitempty"       yaml:"size,omitempty"`
	Visibility string    `json:"visibility,omitempty" yaml:"visibility,omitempty"`
	CreatedAt  time.Time `json:"created_at,omitempty" yaml:"created_at,omitempty"`
}

// Container represents an object storage container.
type Container struct {
	Name  string `json:"name"  yaml:"name"`
	Count int64  `json:"count" yaml:"count"`
	Bytes int64  `json:"bytes" yaml:"bytes"`
}

// Object represents a stored object summary.
type Object struct {
	Name         string    `json:"name"          yaml:"name"`
	Bytes        int64     `json:"bytes"         yaml:"bytes"`
	ContentType  string    `json:"content_type"  yaml:"content_type"`
	Hash         string    `json:"hash"          yaml:"hash"`
	LastModified time.Time `json:"last_modified" yaml:"last_modified"`
}

// Database represents a hosted database.
type Database struct {
	ID      string `json:"database_id" yaml:"database_id"`
	Name    string `json:"db_name"     yaml:"db_name"`
	Type    string `json:"type"        yaml:"type"`
	Charset string `json:"charset"     yaml:"charset"`
	Status  string `json:"status"      yaml:"status"`
}

// DatabaseCreateRequest is the body for creating a database.
type DatabaseCreateRequest struct {
	ServiceID string `json:"service_id" yaml:"service_id"`
	Name      string `json:"db_name"    yaml:"db_name"`
	Type      string `json:"type"       yaml:"type"`
	Charset   string `json:"charset"    yaml:"charset"`
}

// DatabaseUser represents a database account.
type DatabaseUser struct {
	ID       string `json:"user_id"   yaml:"user_id"`
	Name     string `json:"user_name" yaml:"user_name"`
	Hostname string `json:"hostname"  yaml:"hostname"`
	Status   string `json:"status"    yaml:"status"`
}

// DatabaseUserCreateRequest is the body for creating a database user.
type DatabaseUserCreateRequest struct {
	ServiceID string `json:"service_id" yaml:"service_id"`
	Name      string `json:"user_name"  yaml:"user_name"`
	Password  string `json:"password"   yaml:"password"`
	Hostname  string `json:"hostname"   yaml:"hostname"`
}

// Domain represents a DNS zone.
type Domain struct {
	ID    string `json:"id"    yaml:"id"`
	Name  string `json:"name"  yaml:"name"`
	TTL   int    `json:"ttl"   yaml:"ttl"`
	Email string `json:"email" yaml:"email"`
}

// DomainCreateRequest is the body for creating a DNS zone.
type DomainCreateRequest struct {
	Name  string `json:"name"          yaml:"name"`
	TTL   int    `json:"ttl,omitempty" yaml:"ttl,omitempty"`
	Email string `json:"email"         yaml:"email"`
}

// Record represents a DNS record within a zone.
type Record struct {
	ID   string `json:"id"   yaml:"id"`
	Name string `json:"name" yaml:"name"`
	Type string `json:"type" yaml:"type"`
	Data string `json:"data" yaml:"data"`
	TTL  int    `json:"ttl"  yaml:"ttl"`
}

// RecordCreateRequest is the body for creating a DNS record.
type RecordCreateRequest struct {
	Name string `json:"name"          yaml:"name"`
	Type string `json:"type"          yaml:"type"`
	Data string `json:"data"          yaml:"data"`
	TTL  int    `json:"ttl,omitempty" yaml:"ttl,omitempty"`
}

// MailDomain represents a mail hosting domain.
type MailDomain struct {
	ID          string `json:"domain_id"   yaml:"domain_id"`
	Name        string `json:"domain_name" yaml:"domain_name"`
	ServiceID   string `json:"service_id"  yaml:"service_id"`
	DedicatedIP bool   `json:"dedicated_ip" yaml:"dedicated_ip"`
}

// MailDomainCreateRequest is the body for creating a mail domain.
type MailDomainCreateRequest struct {
	ServiceID string `json:"service_id"  yaml:"service_id"`
	Name      string `json:"domain_name" yaml:"domain_name"`
}
