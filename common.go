package cder

/*
common.go collects the small stdlib aliases used throughout the
package. Keeping them as package-level vars (rather than calling
strconv/strings directly everywhere) matches the terse call-site style
used across the rest of this codec.
*/

import (
	"strconv"
	"strings"
)

var (
	itoa = strconv.Itoa
	atoi = strconv.Atoi

	lc = strings.ToLower
	uc = strings.ToUpper

	join    = strings.Join
	split   = strings.Split
	trimS   = strings.TrimSpace
	trim    = strings.Trim
	hasPfx  = strings.HasPrefix
	hasSfx  = strings.HasSuffix
	trimPfx = strings.TrimPrefix
	trimSfx = strings.TrimSuffix
	cntns   = strings.Contains
)

func strInSlice(s string, set []string) bool {
	for _, c := range set {
		if c == s {
			return true
		}
	}
	return false
}

func bool2str(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
