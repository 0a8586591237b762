package ingest

import "encoding/json"

// Detail keys used by the tender source document.
const (
	detailDeadline = "Submission deadline"
	detailLocation = "Contract location"
)

// RawTender represents one untrusted, unnormalized tender record from
// the source document. Every field may be absent or malformed.
type RawTender struct {
	Title           string            `json:"title"`
	Organisation    string            `json:"organisation"`
	Link            string            `json:"link"`
	CPVCodes        []string          `json:"cpv_codes"`
	CPVDescriptions []string          `json:"cpv_descriptions"`
	Details         map[string]string `json:"details"`
}

// Document is the top-level shape of the source file. Records are kept
// raw so one malformed tender cannot fail the whole load.
type Document struct {
	Tenders []json.RawMessage `json:"tenders"`
}

// Options controls normalization behavior. The zero value is usable;
// withDefaults fills in the standard limits.
type Options struct {
	// RichEventProps attaches the extended metadata (tender ID,
	// combined category text) to calendar events.
	RichEventProps bool
	// UrgentWindowDays classifies an event as urgent when its deadline
	// falls within this many days of the load date. Default 7.
	UrgentWindowDays int
	// TitleDisplayLimit caps the event display title; longer titles
	// keep the first N characters and gain an ellipsis. Default 80.
	TitleDisplayLimit int
}

func (o Options) withDefaults() Options {
	if o.UrgentWindowDays <= 0 {
		o.UrgentWindowDays = 7
	}
	if o.TitleDisplayLimit <= 0 {
		o.TitleDisplayLimit = 80
	}
	return o
}
