package main

// Kind is the display classification of a listed path.
type Kind int

const (
	Normal Kind = iota
	Folder
	Executable
	Important
	Image
	Binary
)

func (k Kind) String() string {
	switch k {
	case Folder:
		return "folder"
	case Executable:
		return "executable"
	case Important:
		return "important"
	case Image:
		return "image"
	case Binary:
		return "binary"
	default:
		return "normal"
	}
}

// Style renders name the way entries of this kind are displayed.
// Images and binaries have no visible output.
func (k Kind) Style(s Styler, name string) string {
	switch k {
	case Folder:
		return s.Style(RoleFolder, name)
	case Executable:
		return s.Style(RoleExecutable, name)
	case Important:
		return s.Style(RoleImportant, name)
	case Image, Binary:
		return ""
	default:
		return name
	}
}
