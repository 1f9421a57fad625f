package main

import (
	"io/fs"
	"strings"
)

const rightsFiller = "-"

// Bits are tested in this order; the order fixes the output layout.
var rightBits = []struct {
	value uint32
	char  string
	role  Role
}{
	{4, "r", RoleRead},
	{2, "w", RoleWrite},
	{1, "x", RoleExec},
}

// formatTriplet decodes one octal permission digit into its read, write
// and execute slots, using rightsFiller for absent bits.
func formatTriplet(digit uint32) [3]string {
	var out [3]string
	rest := digit
	for i, bit := range rightBits {
		if rest >= bit.value {
			out[i] = bit.char
			rest -= bit.value
		} else {
			out[i] = rightsFiller
		}
	}
	return out
}

// styleTriplet styles each slot on its own, so a style reset only ends its
// own slot. Owner slots are also emphasized.
func styleTriplet(digit uint32, owner bool, s Styler) string {
	var b strings.Builder
	for i, c := range formatTriplet(digit) {
		if c != rightsFiller {
			c = s.Style(rightBits[i].role, c)
		}
		if owner {
			c = s.Style(RoleOwnerRights, c)
		}
		b.WriteString(c)
	}
	return b.String()
}

// formatRights renders the type marker followed by the owner triplet, and
// the group and other triplets when full is set.
func formatRights(perm fs.FileMode, isDir bool, full bool, s Styler) string {
	bits := uint32(perm.Perm())
	owner := (bits >> 6) & 7
	group := (bits >> 3) & 7
	other := bits & 7

	var b strings.Builder
	if isDir {
		b.WriteString(s.Style(RoleDirMarker, "d"))
	} else {
		b.WriteString(".")
	}
	b.WriteString(styleTriplet(owner, true, s))
	if full {
		b.WriteString(styleTriplet(group, false, s))
		b.WriteString(styleTriplet(other, false, s))
	}
	return b.String()
}
