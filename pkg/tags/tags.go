// Package tags holds provider-agnostic tag sets and their textual rendering.
package tags

import (
	"fmt"
	"sort"
	"strings"
)

// Tag is a single key/value pair attached to a resource.
type Tag struct {
	Key   string
	Value string
}

// List is a tag set rendered as a list of key/value records, e.g.
// [{'Key': 'env', 'Value': 'prod'}]. Order is the order the provider returned.
type List []Tag

func (l List) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, t := range l {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString("{'Key': ")
		sb.WriteString(quote(t.Key))
		sb.WriteString(", 'Value': ")
		sb.WriteString(quote(t.Value))
		sb.WriteByte('}')
	}
	sb.WriteByte(']')
	return sb.String()
}

// Dict is a tag set rendered as a mapping, e.g. {'env': 'prod'}.
type Dict []Tag

func (d Dict) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, t := range d {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(quote(t.Key))
		sb.WriteString(": ")
		sb.WriteString(quote(t.Value))
	}
	sb.WriteByte('}')
	return sb.String()
}

// Records is a list of provider records, each rendered as a mapping in field
// order, e.g. [{'Key': 'env', 'ResourceId': 'vpc-1', 'ResourceType': 'vpc', 'Value': 'prod'}].
type Records []Dict

func (r Records) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, d := range r {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(d.String())
	}
	sb.WriteByte(']')
	return sb.String()
}

// Items is a List wrapped in an Items envelope, e.g. {'Items': [{'Key': 'env', 'Value': 'prod'}]}.
type Items List

func (i Items) String() string {
	return "{'Items': " + List(i).String() + "}"
}

// FromMap converts a tag map into a Dict. Keys are sorted since map order is random.
func FromMap(m map[string]string) Dict {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	d := make(Dict, 0, len(keys))
	for _, k := range keys {
		d = append(d, Tag{Key: k, Value: m[k]})
	}
	return d
}

// quote wraps s in single quotes, switching to double quotes when s contains a
// single quote and no double quote. Control bytes are written as \xNN.
func quote(s string) string {
	q := byte('\'')
	if strings.IndexByte(s, '\'') >= 0 && strings.IndexByte(s, '"') < 0 {
		q = '"'
	}

	var sb strings.Builder
	sb.Grow(len(s) + 2)
	sb.WriteByte(q)
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '\\' || c == q:
			sb.WriteByte('\\')
			sb.WriteByte(c)
		case c == '\n':
			sb.WriteString(`\n`)
		case c == '\t':
			sb.WriteString(`\t`)
		case c == '\r':
			sb.WriteString(`\r`)
		case c < 0x20 || c == 0x7f:
			fmt.Fprintf(&sb, `\x%02x`, c)
		default:
			sb.WriteByte(c)
		}
	}
	sb.WriteByte(q)
	return sb.String()
}
