package styles

import (
	"encoding/xml"
	"io"

	"github.com/shabbyrobe/xmlwriter"
	"github.com/valyala/bytebufferpool"
)

const xmlDeclaration = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n"

// Attr is one (name, value) attribute pair. Attribute order within a
// tag is part of the output contract and is preserved verbatim by
// every Sink.
type Attr struct {
	Name  string
	Value string
}

// Sink is the element-level writer the serializer emits through. The
// serializer guarantees well-formed nesting; implementations only
// have to put bytes somewhere.
type Sink interface {
	WriteDeclaration() error
	WriteStartTag(name string, attrs ...Attr) error
	WriteEmptyTag(name string, attrs ...Attr) error
	WriteEndTag(name string) error
}

// BufferSink accumulates the document in a pooled in-memory buffer.
type BufferSink struct {
	buf *bytebufferpool.ByteBuffer
}

func NewBufferSink() *BufferSink {
	return &BufferSink{buf: bytebufferpool.Get()}
}

func (s *BufferSink) WriteDeclaration() error {
	s.buf.WriteString(xmlDeclaration)
	return nil
}

func (s *BufferSink) WriteStartTag(name string, attrs ...Attr) error {
	return s.writeTag(name, attrs, false)
}

func (s *BufferSink) WriteEmptyTag(name string, attrs ...Attr) error {
	return s.writeTag(name, attrs, true)
}

func (s *BufferSink) WriteEndTag(name string) error {
	s.buf.WriteString("</")
	s.buf.WriteString(name)
	s.buf.WriteByte('>')
	return nil
}

func (s *BufferSink) writeTag(name string, attrs []Attr, empty bool) error {
	s.buf.WriteByte('<')
	s.buf.WriteString(name)
	for _, a := range attrs {
		s.buf.WriteByte(' ')
		s.buf.WriteString(a.Name)
		s.buf.WriteString(`="`)
		if err := xml.EscapeText(s.buf, []byte(a.Value)); err != nil {
			return err
		}
		s.buf.WriteByte('"')
	}
	if empty {
		s.buf.WriteByte('/')
	}
	s.buf.WriteByte('>')
	return nil
}

// Bytes returns the accumulated document. The slice is only valid
// until Release.
func (s *BufferSink) Bytes() []byte {
	return s.buf.B
}

func (s *BufferSink) String() string {
	return s.buf.String()
}

// Release returns the buffer to the pool. The sink must not be used
// afterwards.
func (s *BufferSink) Release() {
	bytebufferpool.Put(s.buf)
	s.buf = nil
}

// XMLWriterSink streams tags to an io.Writer through
// github.com/shabbyrobe/xmlwriter. The declaration is written raw
// because the document is declared standalone.
type XMLWriterSink struct {
	w *xmlwriter.Writer
}

func NewXMLWriterSink(out io.Writer) *XMLWriterSink {
	return &XMLWriterSink{w: xmlwriter.Open(out)}
}

func (s *XMLWriterSink) WriteDeclaration() error {
	return s.w.WriteRaw(xmlDeclaration)
}

func (s *XMLWriterSink) WriteStartTag(name string, attrs ...Attr) error {
	return s.w.StartElem(elemOf(name, attrs))
}

func (s *XMLWriterSink) WriteEmptyTag(name string, attrs ...Attr) error {
	if err := s.w.StartElem(elemOf(name, attrs)); err != nil {
		return err
	}
	return s.w.EndElem(name)
}

func (s *XMLWriterSink) WriteEndTag(name string) error {
	return s.w.EndElem(name)
}

// Flush drains xmlwriter's internal buffer to the underlying writer.
// Call it once after a successful Serialize.
func (s *XMLWriterSink) Flush() error {
	return s.w.Flush()
}

func elemOf(name string, attrs []Attr) xmlwriter.Elem {
	elem := xmlwriter.Elem{Name: name}
	for _, a := range attrs {
		elem.Attrs = append(elem.Attrs, xmlwriter.Attr{Name: a.Name, Value: a.Value})
	}
	return elem
}
