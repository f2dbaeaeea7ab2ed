// Package report renders receiver events as text for a debug serial line.
package report

import (
	"io"
	"strconv"

	"github.com/sparques/ircapture"
)

// BaudRate is the debug line speed; frames are 8N1.
const BaudRate = 9600

const (
	bannerText = "\r\nIR Remote Receiver\r\n" +
		"Initialization Done\r\n" +
		"Press button to display stored codes\r\n"
	listHeader = "\r\n--- Stored IR Codes ---"
	listFooter = "\r\n--- End of List ---"
	emptyText  = "\r\nNo IR codes stored yet!"
)

// Serial writes each event as CRLF-framed text. After the first write error
// it stops writing; Err returns that error.
type Serial struct {
	w   io.Writer
	buf []byte
	err error
}

func NewSerial(w io.Writer) *Serial {
	return &Serial{w: w, buf: make([]byte, 0, 64)}
}

func (s *Serial) StartupBanner() {
	s.flush(append(s.buf[:0], bannerText...))
}

func (s *Serial) CodeReceived(code ircapture.Code) {
	b := append(s.buf[:0], "\r\nReceived Code: "...)
	s.flush(append(b, code.String()...))
}

func (s *Serial) CodeStored(index int, overwritten bool, code ircapture.Code) {
	b := append(s.buf[:0], "\r\nStored Code "...)
	if overwritten {
		b = append(b, "(overwrite)"...)
	} else {
		b = strconv.AppendInt(b, int64(index), 10)
	}
	b = append(b, ": "...)
	s.flush(append(b, code.String()...))
}

func (s *Serial) ListCodes(codes []ircapture.Code) {
	s.flush(append(s.buf[:0], listHeader...))
	for i, code := range codes {
		b := append(s.buf[:0], "\r\nCode "...)
		b = strconv.AppendInt(b, int64(i), 10)
		b = append(b, ": "...)
		s.flush(append(b, code.String()...))
	}
	s.flush(append(s.buf[:0], listFooter...))
}

func (s *Serial) ListEmpty() {
	s.flush(append(s.buf[:0], emptyText...))
}

// Err returns the first write error, if any.
func (s *Serial) Err() error {
	return s.err
}

func (s *Serial) flush(b []byte) {
	s.buf = b[:0]
	if s.err != nil {
		return
	}
	_, s.err = s.w.Write(b)
}

type multiReporter []ircapture.Reporter

// Multi returns a Reporter that forwards every call to each of rs in turn.
func Multi(rs ...ircapture.Reporter) ircapture.Reporter {
	return multiReporter(rs)
}

func (m multiReporter) StartupBanner() {
	for i := range m {
		m[i].StartupBanner()
	}
}

func (m multiReporter) CodeReceived(code ircapture.Code) {
	for i := range m {
		m[i].CodeReceived(code)
	}
}

func (m multiReporter) CodeStored(index int, overwritten bool, code ircapture.Code) {
	for i := range m {
		m[i].CodeStored(index, overwritten, code)
	}
}

func (m multiReporter) ListCodes(codes []ircapture.Code) {
	for i := range m {
		m[i].ListCodes(codes)
	}
}

func (m multiReporter) ListEmpty() {
	for i := range m {
		m[i].ListEmpty()
	}
}
