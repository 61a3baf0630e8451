package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconCheck   = "" // check
	IconX       = "" // x
	IconWarning = "" // warning
	IconInfo    = "" // info
	IconConfig  = "" // config
	IconFolder  = "" // folder
	IconImage   = "" // image file
	IconArrow   = "" // arrow right

	IconChevronLeft  = "" // back
	IconChevronRight = "" // forward
)
