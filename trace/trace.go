// Package trace records receiver events to a CSV file for later analysis.
package trace

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/xid"
	"github.com/sparques/ircapture"
	"github.com/tebeka/atexit"
)

// Event is one dispatcher event.
type Event struct {
	Time        time.Duration
	Kind        string
	Index       int
	Overwritten bool
	Code        ircapture.Code
}

// CSVWriter is an ircapture.Reporter that stores the events into a CSV
// file.
type CSVWriter struct {
	path string
	file *os.File

	start time.Time
	now   func() time.Time

	events     []Event
	bufferSize int
}

// NewCSVWriter creates a new CSVWriter. An empty path gets a unique name on
// Init.
func NewCSVWriter(path string) *CSVWriter {
	return &CSVWriter{
		path:       path,
		now:        time.Now,
		bufferSize: 100,
	}
}

// Init creates the csv file. It panics if the file already exists. The file
// is flushed and closed when the program leaves through atexit.Exit.
func (t *CSVWriter) Init() {
	if t.path == "" {
		t.path = "ircapture_trace_" + xid.New().String()
	}

	filename := t.Filename()
	_, err := os.Stat(filename)
	if err == nil {
		panic(fmt.Errorf("file %s already exists", filename))
	}

	file, err := os.Create(filename)
	if err != nil {
		panic(err)
	}
	t.file = file
	t.start = t.now()

	fmt.Fprintf(file, "Time, Event, Index, Overwritten, Code\n")

	atexit.Register(func() {
		if err := t.Close(); err != nil {
			panic(err)
		}
	})
}

// Filename returns the path of the csv file.
func (t *CSVWriter) Filename() string {
	return t.path + ".csv"
}

func (t *CSVWriter) StartupBanner() {
	t.write(Event{Kind: "start", Index: -1})
}

func (t *CSVWriter) CodeReceived(code ircapture.Code) {
	t.write(Event{Kind: "received", Index: -1, Code: code})
}

func (t *CSVWriter) CodeStored(index int, overwritten bool, code ircapture.Code) {
	t.write(Event{Kind: "stored", Index: index, Overwritten: overwritten, Code: code})
}

func (t *CSVWriter) ListCodes(codes []ircapture.Code) {
	for i, code := range codes {
		t.write(Event{Kind: "listed", Index: i, Code: code})
	}
}

func (t *CSVWriter) ListEmpty() {
	t.write(Event{Kind: "empty", Index: -1})
}

func (t *CSVWriter) write(e Event) {
	e.Time = t.now().Sub(t.start)
	t.events = append(t.events, e)
	if len(t.events) >= t.bufferSize {
		t.Flush()
	}
}

// Flush writes the buffered events to the file.
func (t *CSVWriter) Flush() {
	if t.file == nil {
		return
	}
	for _, e := range t.events {
		fmt.Fprintf(t.file, "%.6f, %s, %d, %t, %s\n",
			e.Time.Seconds(),
			e.Kind,
			e.Index,
			e.Overwritten,
			e.Code,
		)
	}

	t.events = nil
}

// Close flushes and closes the file. It is safe to call more than once.
func (t *CSVWriter) Close() error {
	if t.file == nil {
		return nil
	}
	t.Flush()
	err := t.file.Close()
	t.file = nil
	return err
}
