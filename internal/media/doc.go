// Package media describes the image files photosort understands.
//
// It owns the raw/JPEG extension table, the stem rule used to pair a raw file
// with its JPEG counterpart, and a best-effort EXIF capture time reader used
// when listing files to the user. Nothing here touches directories; scanning
// lives in the classify package.
package media
