package validation

// PhoneTag is the struct tag that applies IsPhoneNumber.
const PhoneTag = "phone"

// IsPhoneNumber reports whether value has the international shape accepted
// for work center phones: a leading '+' followed only by digits, 12 or 13
// characters in total. An empty value is accepted; presence is enforced by
// the separate required rule.
func IsPhoneNumber(value string) bool {
	if value == "" {
		return true
	}
	if len(value) != 12 && len(value) != 13 {
		return false
	}
	if value[0] != '+' {
		return false
	}
	for i := 1; i < len(value); i++ {
		if value[i] < '0' || value[i] > '9' {
			return false
		}
	}
	return true
}
