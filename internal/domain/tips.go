package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/google/uuid"
)

const (
	// CategoryAll is the filter sentinel meaning "every bucket except practical".
	CategoryAll = "all"
	// BucketPractical holds informational entries. It is left out of the
	// CategoryAll view and is never filtered by search or priority.
	BucketPractical = "practical"
)

// Recommendation is one tip, restaurant, activity or practical note.
// Only Name, Description, Category and Priority take part in filtering; the
// remaining fields are passed through for display.
type Recommendation struct {
	ID          string   `json:"id,omitempty"`
	Name        string   `json:"name,omitempty"`
	Title       string   `json:"title,omitempty"`
	Description string   `json:"description,omitempty"`
	Category    string   `json:"category,omitempty"`
	Priority    Priority `json:"priority,omitempty"`

	Location    string   `json:"location,omitempty"`
	Area        string   `json:"area,omitempty"`
	Dishes      []string `json:"dishes,omitempty"`
	PriceRange  string   `json:"priceRange,omitempty"`
	Difficulty  string   `json:"difficulty,omitempty"`
	Duration    string   `json:"duration,omitempty"`
	Time        string   `json:"time,omitempty"`
	OpeningDays []string `json:"openingDays,omitempty"`
	Tips        string   `json:"tips,omitempty"`
	Note        string   `json:"note,omitempty"`
	Source      string   `json:"source,omitempty"`
	Website     string   `json:"website,omitempty"`
	URL         string   `json:"url,omitempty"`
	Deadline    string   `json:"deadline,omitempty"`
}

// DisplayName returns Name, falling back to Title (practical entries only
// carry a title).
func (r Recommendation) DisplayName() string {
	if r.Name != "" {
		return r.Name
	}
	return r.Title
}

// recordKeyNamespace scopes the name-based UUIDs generated by Key.
var recordKeyNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("tripdash:recommendation"))

// Key returns a stable identity for a record: its ID when present, otherwise
// a name-based UUID derived from where the record sits in the document.
func (r Recommendation) Key(destination DestinationID, bucket string, index int) string {
	if r.ID != "" {
		return r.ID
	}
	name := string(destination) + "/" + bucket + "/" + strconv.Itoa(index)
	return uuid.NewSHA1(recordKeyNamespace, []byte(name)).String()
}

// TaggedRecommendation is a filter result. CategoryName is set only when the
// record was collected by the CategoryAll aggregation.
type TaggedRecommendation struct {
	Recommendation
	CategoryName string
	// Key is the record's stable identity (see Recommendation.Key).
	Key string
}

// Bucket is a named, ordered group of records under one destination.
type Bucket struct {
	Name    string
	Records []Recommendation
}

// DestinationTips is the ordered list of buckets for one destination.
// Bucket order is the key order of the JSON object it was decoded from,
// which a plain map would lose.
type DestinationTips struct {
	Buckets []Bucket
}

// Bucket returns the bucket with the given name.
func (d DestinationTips) Bucket(name string) (Bucket, bool) {
	for _, b := range d.Buckets {
		if b.Name == name {
			return b, true
		}
	}
	return Bucket{}, false
}

// BucketNames returns the bucket names in document order.
func (d DestinationTips) BucketNames() []string {
	names := make([]string, 0, len(d.Buckets))
	for _, b := range d.Buckets {
		names = append(names, b.Name)
	}
	return names
}

// UnmarshalJSON decodes a {"bucket": [records...], ...} object keeping key order.
func (d *DestinationTips) UnmarshalJSON(b []byte) error {
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(b))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("%w: destination tips must be an object", ErrValidation)
	}

	var buckets []Bucket
	seen := make(map[string]int)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		name, _ := tok.(string)

		var records []Recommendation
		if err := dec.Decode(&records); err != nil {
			return fmt.Errorf("bucket %q: %w", name, err)
		}
		// A repeated key keeps its first position and its last value.
		if i, ok := seen[name]; ok {
			buckets[i].Records = records
			continue
		}
		seen[name] = len(buckets)
		buckets = append(buckets, Bucket{Name: name, Records: records})
	}
	if _, err := dec.Token(); err != nil {
		return err
	}

	d.Buckets = buckets
	return nil
}

// MarshalJSON writes the buckets back as an object in the same order.
func (d DestinationTips) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, b := range d.Buckets {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(b.Name)
		if err != nil {
			return nil, err
		}
		records := b.Records
		if records == nil {
			records = []Recommendation{}
		}
		val, err := json.Marshal(records)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// TipsDocument maps each destination to its buckets.
type TipsDocument map[DestinationID]DestinationTips

// FilterSelection is the user's current filter intent.
type FilterSelection struct {
	SearchText string
	Category   string   // CategoryAll or a bucket name
	Priority   Priority // PriorityAll or an enumerated priority
}

// DefaultSelection is what a freshly opened tips view starts with.
func DefaultSelection() FilterSelection {
	return FilterSelection{Category: CategoryAll, Priority: PriorityAll}
}

// Normalize fills empty facets with their "all" sentinels.
func (s FilterSelection) Normalize() FilterSelection {
	if s.Category == "" {
		s.Category = CategoryAll
	}
	if s.Priority == "" {
		s.Priority = PriorityAll
	}
	return s
}

// SwitchDestination returns the selection after the user picks another
// destination: search text and category reset, priority is kept.
func (s FilterSelection) SwitchDestination() FilterSelection {
	return FilterSelection{
		SearchText: "",
		Category:   CategoryAll,
		Priority:   s.Normalize().Priority,
	}
}

// TipsResult is a filtered view of one destination's tips.
type TipsResult struct {
	Destination DestinationID
	Selection   FilterSelection
	Records     []TaggedRecommendation
	// Total is len(Records); zero is a valid outcome, not a load failure.
	Total      int
	Categories []CategoryOption
	// Practical is true when the practical bucket was selected explicitly and
	// Records therefore bypassed search and priority filtering.
	Practical bool
}
