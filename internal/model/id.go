package model

import (
	"fmt"
	"strconv"
)

// ID is a 64-bit patient or appointment identifier. JSON numbers cannot
// safely carry all 64-bit integer values, so IDs cross the wire as decimal
// strings in both directions.
type ID int64

func (id ID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

func (id ID) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(id.String())), nil
}

func (id *ID) UnmarshalJSON(data []byte) error {
	s := string(data)
	if unquoted, err := strconv.Unquote(s); err == nil {
		s = unquoted
	}
	parsed, err := ParseID(s)
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// ParseID parses a decimal-digit identifier string. Anything other than
// digits is rejected, so a malformed path parameter never reaches storage.
func ParseID(s string) (ID, error) {
	if s == "" {
		return 0, fmt.Errorf("empty identifier")
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("identifier %q is not numeric", s)
		}
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("identifier %q out of range", s)
	}
	return ID(n), nil
}
