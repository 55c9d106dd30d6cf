package styles

// Icons in plain unicode so they render without a patched font.
const (
	IconSuccess = "✓"
	IconError   = "✗"
	IconWarning = "!"
	IconInfo    = "i"
	IconBullet  = "▸"
)
