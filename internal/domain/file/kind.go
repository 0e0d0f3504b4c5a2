package file

import "strings"

type Kind string

const (
	KindDocument Kind = "document"
	KindPhoto    Kind = "photo"
	KindVideo    Kind = "video"
	KindAudio    Kind = "audio"
	KindVoice    Kind = "voice"
	KindArchive  Kind = "archive"
	KindOther    Kind = "other"
)

var kinds = map[Kind]struct{}{
	KindDocument: {}, KindPhoto: {}, KindVideo: {}, KindAudio: {},
	KindVoice: {}, KindArchive: {}, KindOther: {},
}

func (k Kind) Valid() bool {
	_, ok := kinds[k]
	return ok
}

var kindByExt = map[string]Kind{
	"mp4": KindVideo, "avi": KindVideo, "mkv": KindVideo, "mov": KindVideo,
	"wmv": KindVideo, "flv": KindVideo, "webm": KindVideo, "m4v": KindVideo,

	"mp3": KindAudio, "wav": KindAudio, "ogg": KindAudio, "flac": KindAudio,
	"aac": KindAudio, "m4a": KindAudio, "wma": KindAudio,

	"jpg": KindPhoto, "jpeg": KindPhoto, "png": KindPhoto, "gif": KindPhoto,
	"bmp": KindPhoto, "webp": KindPhoto, "svg": KindPhoto,

	"pdf": KindDocument, "doc": KindDocument, "docx": KindDocument,
	"xls": KindDocument, "xlsx": KindDocument, "ppt": KindDocument,
	"pptx": KindDocument, "txt": KindDocument,

	"zip": KindArchive, "rar": KindArchive, "7z": KindArchive,
	"tar": KindArchive, "gz": KindArchive,
}

// KindForName classifies a file by its name's extension.
func KindForName(name string) Kind {
	ext := ExtensionFor(name, "")
	if k, ok := kindByExt[ext]; ok {
		return k
	}
	return KindOther
}

var extByMime = map[string]string{
	"application/pdf": "pdf",
	"image/jpeg":      "jpg",
	"image/png":       "png",
	"image/gif":       "gif",
	"video/mp4":       "mp4",
	"audio/mpeg":      "mp3",
}

// ExtensionFor returns the lowercase extension from the name, falling back to
// a small mime-type map when the name carries none.
func ExtensionFor(name, mimeType string) string {
	if i := strings.LastIndexByte(name, '.'); i >= 0 && i < len(name)-1 {
		return strings.ToLower(name[i+1:])
	}
	if mimeType != "" {
		return extByMime[mimeType]
	}
	return ""
}
