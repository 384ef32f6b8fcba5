package model

import "time"

// Book is one record of the remote catalog feed. BookName is the de-facto
// identity key within a catalog snapshot; it doubles as the route key after
// percent-decoding. Score and Mtime are optional and must not break
// filtering or sorting when absent.
type Book struct {
	BookName   string   `json:"bookName"`
	DoubanURL  string   `json:"doubanUrl"`
	BookCover  string   `json:"bookCover"`
	CateLevel1 string   `json:"cate_level1"`
	CateLeaf   string   `json:"cate_leaf"`
	GithubURL  string   `json:"githubUrl"`
	Score      *float64 `json:"score,omitempty"`
	Mtime      string   `json:"mtime,omitempty"`
	Tags       []string `json:"tags,omitempty"`
}

// ModifiedAt parses the record's mtime. The zero time and false mean the
// record has no usable timestamp and sorts after any record that has one.
func (b Book) ModifiedAt() (time.Time, bool) {
	if b.Mtime == "" {
		return time.Time{}, false
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02 15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, b.Mtime); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
