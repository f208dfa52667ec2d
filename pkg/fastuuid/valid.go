package fastuuid

// IsValidHex128 reports whether id has the shape produced by Hex128:
// 36 characters, hyphens at 8, 13, 18 and 23, lower-case hex elsewhere.
//
// Upper-case hex is rejected. Version and variant bits are not checked.
func IsValidHex128(id string) bool {
	if len(id) != Hex128Size {
		return false
	}
	if id[8] != '-' || id[13] != '-' || id[18] != '-' || id[23] != '-' {
		return false
	}
	return isValidHex(id[0:8]) &&
		isValidHex(id[9:13]) &&
		isValidHex(id[14:18]) &&
		isValidHex(id[19:23]) &&
		isValidHex(id[24:])
}

func isValidHex(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !('0' <= c && c <= '9' || 'a' <= c && c <= 'f') {
			return false
		}
	}
	return true
}
