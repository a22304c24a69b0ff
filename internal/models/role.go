package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Role distinguishes employer and employee accounts. In storage and on
// the wire the role travels as the legacy one-character flag kept in
// the users.description column: "0" for employers, "1" for employees.
type Role string

const (
	RoleEmployer Role = "employer"
	RoleEmployee Role = "employee"
)

const (
	flagEmployer = "0"
	flagEmployee = "1"
)

// ParseRoleFlag maps the wire flag onto a Role. An empty flag defaults
// to employee, matching accounts registered before the flag existed.
func ParseRoleFlag(flag string) (Role, error) {
	switch flag {
	case flagEmployer:
		return RoleEmployer, nil
	case flagEmployee, "":
		return RoleEmployee, nil
	default:
		return "", fmt.Errorf("invalid role flag %q", flag)
	}
}

func (r Role) IsEmployer() bool { return r == RoleEmployer }

// Flag returns the wire encoding of the role.
func (r Role) Flag() string {
	if r == RoleEmployer {
		return flagEmployer
	}
	return flagEmployee
}

func (r Role) Value() (driver.Value, error) {
	return r.Flag(), nil
}

func (r *Role) Scan(src any) error {
	var flag string
	switch v := src.(type) {
	case string:
		flag = v
	case []byte:
		flag = string(v)
	case nil:
		flag = ""
	default:
		return fmt.Errorf("cannot scan %T into Role", src)
	}
	role, err := ParseRoleFlag(flag)
	if err != nil {
		return err
	}
	*r = role
	return nil
}

func (r Role) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.Flag())
}

func (r *Role) UnmarshalJSON(data []byte) error {
	var flag string
	if err := json.Unmarshal(data, &flag); err != nil {
		return err
	}
	role, err := ParseRoleFlag(flag)
	if err != nil {
		return err
	}
	*r = role
	return nil
}
