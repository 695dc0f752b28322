package reconcile

import (
	"photosort/internal/media"
)

// Plan is the set of files to delete after comparing the raw and jpeg
// folders. Files all belong to Target.
type Plan struct {
	Target media.Kind
	Files  []media.FileEntry
	// RawCount and JpegCount record the folder sizes the plan was built from.
	RawCount  int
	JpegCount int
}

// Empty reports whether the plan deletes nothing.
func (p Plan) Empty() bool {
	return len(p.Files) == 0
}

// FindUnpaired returns the entries of a whose stem matches no stem in b, in
// the order they appear in a. Stems are compared in NFC form (media.StemKey).
func FindUnpaired(a, b []media.FileEntry) []media.FileEntry {
	var unpaired []media.FileEntry
	for _, candidate := range a {
		key := media.StemKey(candidate.Name)
		paired := false
		for _, other := range b {
			if media.StemKey(other.Name) == key {
				paired = true
				break
			}
		}
		if !paired {
			unpaired = append(unpaired, candidate)
		}
	}
	return unpaired
}

// DeletePlan decides which unpaired files to remove. The kind with fewer files
// is taken as the photographer's selection, so the other kind loses the
// files that have no counterpart. Equal counts, or an empty side, produce an
// empty plan.
func DeletePlan(raw, jpeg []media.FileEntry) Plan {
	plan := Plan{RawCount: len(raw), JpegCount: len(jpeg)}
	if len(raw) == len(jpeg) || len(raw) == 0 || len(jpeg) == 0 {
		return plan
	}
	if len(jpeg) < len(raw) {
		plan.Target = media.Raw
		plan.Files = FindUnpaired(raw, jpeg)
		return plan
	}
	plan.Target = media.Jpeg
	plan.Files = FindUnpaired(jpeg, raw)
	return plan
}
