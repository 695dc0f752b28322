package media

import (
	"path/filepath"
	"strings"
)

// Kind identifies which image family a file belongs to.
type Kind int

const (
	Raw Kind = iota
	Jpeg
)

// Kinds lists every image kind in move order.
var Kinds = []Kind{Raw, Jpeg}

// rawExts covers the vendor raw formats recognized by the classifier.
var rawExts = map[string]struct{}{
	".crw": {}, // Canon
	".cr2": {},
	".cr3": {},
	".nef": {}, // Nikon
	".nrw": {},
	".pef": {}, // Pentax
	".dng": {}, // Adobe Digital Negative
	".raf": {}, // Fujifilm
	".srw": {}, // Samsung
	".orf": {}, // Olympus
	".srf": {}, // Sony
	".sr2": {},
	".arw": {},
	".rw2": {}, // Panasonic
	".3fr": {}, // Hasselblad
	".dcr": {}, // Kodak
	".kdc": {},
	".mrw": {}, // Minolta
	".rwl": {}, // Leica
	".mos": {}, // Leaf
	".x3f": {}, // Sigma
	".gpr": {}, // GoPro
}

var jpegExts = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
}

func (k Kind) String() string {
	switch k {
	case Raw:
		return "raw"
	case Jpeg:
		return "jpeg"
	default:
		return "unknown"
	}
}

// Other returns the opposite kind.
func (k Kind) Other() Kind {
	if k == Raw {
		return Jpeg
	}
	return Raw
}

// Matches reports whether name carries an extension of this kind. The
// comparison ignores case.
func (k Kind) Matches(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	if ext == "" {
		return false
	}
	switch k {
	case Raw:
		_, ok := rawExts[ext]
		return ok
	case Jpeg:
		_, ok := jpegExts[ext]
		return ok
	default:
		return false
	}
}
