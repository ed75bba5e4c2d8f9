// Package utils contains small helpers shared by the transport layer.
package utils

import "strconv"

// ConvertToInt parses s as a base 10 integer, returning 0 when it is not one.
func ConvertToInt(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}

// ConvertToInt64 parses s as a base 10 int64, returning 0 when it is not one.
func ConvertToInt64(s string) int64 {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0
	}
	return n
}
