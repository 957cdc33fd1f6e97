package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconCheck    = "\uf00c" // check
	IconX        = "\uf00d" // x
	IconWarning  = "\uf071" // warning
	IconInfo     = "\uf05a" // info
	IconTrash    = "\uf1f8" // trash
	IconFolder   = "\uf07b" // folder
	IconDownload = "\uf019" // download
	IconArchive  = "\uf187" // archive/package
	IconColumns  = "\uf0db" // columns
	IconVersion  = "\uf02b" // tag
)
