package icon

import (
	"path/filepath"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// fileClass groups extensions that share a generic icon.
type fileClass int

const (
	classGeneric fileClass = iota
	classExecutable
	classScript
	classDocument
	classAudio
	classVideo
	classImage
	classLink
)

func classOf(path string) fileClass {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".exe", ".msi", ".bat", ".cmd", ".com", ".appimage":
		return classExecutable
	case ".py", ".pyw", ".js", ".vbs", ".ps1", ".sh":
		return classScript
	case ".txt", ".doc", ".docx", ".pdf", ".rtf", ".md":
		return classDocument
	case ".mp3", ".wav", ".flac", ".ogg":
		return classAudio
	case ".mp4", ".avi", ".mov", ".mkv", ".webm":
		return classVideo
	case ".png", ".jpg", ".jpeg", ".gif", ".bmp", ".ico":
		return classImage
	case ".lnk", ".desktop", ".url":
		return classLink
	default:
		return classGeneric
	}
}

// Placeholder returns the generic theme icon for a path. This is the
// terminal fallback of the extraction chain and never fails.
func Placeholder(path string) fyne.Resource {
	switch classOf(path) {
	case classExecutable:
		return theme.ComputerIcon()
	case classScript:
		return theme.FileTextIcon()
	case classDocument:
		return theme.DocumentIcon()
	case classAudio:
		return theme.FileAudioIcon()
	case classVideo:
		return theme.FileVideoIcon()
	case classImage:
		return theme.FileImageIcon()
	case classLink:
		return theme.FileApplicationIcon()
	default:
		return theme.FileIcon()
	}
}
