package config

import "strings"

// List is an ordered, comma-separated argument such as "ec2,rds".
type List []string

// ParseList splits value on commas. Elements are not trimmed, and an empty
// value yields a single empty element.
func ParseList(value string) List {
	return strings.Split(value, ",")
}

func (l List) String() string {
	return strings.Join(l, ",")
}
