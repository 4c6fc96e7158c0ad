package model

// UnknownPaperID groups sources whose origin document was not reported.
const UnknownPaperID = "unknown"

// Source is a retrieved passage cited by an assistant turn. Page and Score
// are optional on the wire; zero values mean absent.
type Source struct {
	PaperID   string  `json:"paper_id"`
	PaperName string  `json:"paper_name"`
	Page      int     `json:"page,omitempty"`
	Score     float64 `json:"score,omitempty"`
	Content   string  `json:"content"`
}

// SourceGroup collects the sources citing a single origin document.
type SourceGroup struct {
	PaperID   string
	PaperName string
	Sources   []Source
}

// GroupSources groups retrieval hits by origin document for display. Group
// order is the first-seen order of the input, and each group keeps the
// original relative order of its sources, so repeated runs over the same
// input always produce the same layout. Sources with no paper ID are kept
// under UnknownPaperID rather than dropped.
func GroupSources(sources []Source) []SourceGroup {
	var groups []SourceGroup
	index := make(map[string]int)

	for _, src := range sources {
		paperID := src.PaperID
		if paperID == "" {
			paperID = UnknownPaperID
		}

		i, ok := index[paperID]
		if !ok {
			i = len(groups)
			index[paperID] = i
			groups = append(groups, SourceGroup{
				PaperID:   paperID,
				PaperName: src.PaperName,
			})
		}
		groups[i].Sources = append(groups[i].Sources, src)
	}

	return groups
}
