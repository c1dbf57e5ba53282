package datemath

import "time"

// Match is a relative date phrase located inside a longer text.
type Match struct {
	Phrase string    // phrase as written in the text
	Index  int       // byte offset of Phrase in the text
	Time   time.Time // start of the resolved day
}
