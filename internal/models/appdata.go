package models

import "time"

// AppData is the full data set: every item (archived ones included), the
// category list, the grading settings and the time of the last write. It is
// the document served by the data endpoint and the format of snapshots.
type AppData struct {
	Items       []Item    `json:"items"`
	Categories  []string  `json:"categories"`
	Settings    Settings  `json:"settings"`
	LastUpdated time.Time `json:"last_updated"`
}

// ActiveItems filters out archived items.
func ActiveItems(items []Item) []Item {
	out := make([]Item, 0, len(items))
	for _, it := range items {
		if !it.Archived {
			out = append(out, it)
		}
	}
	return out
}
