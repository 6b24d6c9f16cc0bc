package video

import "strings"

// IDDeriver turns an uploaded object's name into the video id and owner
// id. The rules encode an upload-naming contract owned by the uploader,
// not by this service, so they are pluggable.
type IDDeriver interface {
	VideoID(objectName string) string
	OwnerID(videoID string) string
}

// ConventionDeriver implements the default convention: uploads are named
// `<ownerId>-<suffix>.<ext>`, so the video id is everything before the
// first dot and the owner id everything before the first dash.
type ConventionDeriver struct{}

var _ IDDeriver = ConventionDeriver{}

func (ConventionDeriver) VideoID(objectName string) string {
	id, _, _ := strings.Cut(objectName, ".")
	return id
}

func (ConventionDeriver) OwnerID(videoID string) string {
	owner, _, _ := strings.Cut(videoID, "-")
	return owner
}
