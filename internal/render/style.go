package render

// Shared style derivation. Every surface maps the same config token to the
// same CSS value; the mappers below are the only place those values live.

// BorderRadiusCSS maps a radius token to its CSS value. Absent or unknown
// tokens fall back to small, the documented default.
func BorderRadiusCSS(token string) string {
	switch token {
	case "none":
		return "0"
	case "medium":
		return "12px"
	case "large":
		return "16px"
	case "full":
		return "9999px"
	default: // small
		return "8px"
	}
}

// ShadowCSS maps a shadow token to its box-shadow value.
func ShadowCSS(token string) string {
	switch token {
	case "sm":
		return "0 1px 2px rgba(0,0,0,0.08)"
	case "md":
		return "0 4px 8px rgba(0,0,0,0.12)"
	case "lg":
		return "0 10px 20px rgba(0,0,0,0.16)"
	default: // none
		return "none"
	}
}

// SpacingCSS maps a spacing token to the gap between sibling items.
func SpacingCSS(token string) string {
	switch token {
	case "small":
		return "6px"
	case "large":
		return "16px"
	default: // medium
		return "10px"
	}
}

// FontSizeCSS maps a text size token to its CSS value.
func FontSizeCSS(token string) string {
	switch token {
	case "small":
		return "14px"
	case "large":
		return "20px"
	default: // medium
		return "16px"
	}
}

// SpacerHeightCSS maps a spacer height token to pixels.
func SpacerHeightCSS(token string) string {
	switch token {
	case "small":
		return "12px"
	case "large":
		return "48px"
	default: // medium
		return "24px"
	}
}

// ButtonPaddingCSS maps a button size token to its padding.
func ButtonPaddingCSS(token string) string {
	switch token {
	case "small":
		return "8px 16px"
	case "large":
		return "16px 32px"
	default: // medium
		return "12px 24px"
	}
}

// AspectRatioCSS maps a video aspect token to the CSS aspect-ratio value.
func AspectRatioCSS(token string) string {
	switch token {
	case "9:16":
		return "9 / 16"
	case "1:1":
		return "1 / 1"
	default: // 16:9
		return "16 / 9"
	}
}
