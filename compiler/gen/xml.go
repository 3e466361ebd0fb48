package gen

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
)

// DocType returns the root element name and the public and system
// identifiers of the document type of a runtime.
func DocType(r Runtime) (root, public, system string) {
	if r == Legacy {
		return "sqlMap", "-//ibatis.apache.org//DTD SQL Map 2.0//EN", "http://ibatis.apache.org/dtd/sql-map-2.dtd"
	}
	return "mapper", "-//mybatis.org//DTD Mapper 3.0//EN", "http://mybatis.org/dtd/mybatis-3-mapper.dtd"
}

// WriteXML serializes the document with its prolog and document type.
func (d *Document) WriteXML(w io.Writer) error {
	root, public, system := DocType(d.Runtime)
	if _, err := fmt.Fprintf(w, "%s<!DOCTYPE %s PUBLIC %q %q>\n", xml.Header, root, public, system); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := encodeNode(enc, d.Root); err != nil {
		return err
	}
	if err := enc.Flush(); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// XML returns the serialized document.
func (d *Document) XML() ([]byte, error) {
	var buf bytes.Buffer
	if err := d.WriteXML(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func encodeNode(enc *xml.Encoder, n *Node) error {
	if n.IsText() {
		return enc.EncodeToken(xml.CharData(n.Text))
	}
	start := xml.StartElement{Name: xml.Name{Local: n.Name}}
	for _, a := range n.Attrs {
		start.Attr = append(start.Attr, xml.Attr{Name: xml.Name{Local: a.Key}, Value: a.Value})
	}
	if err := enc.EncodeToken(start); err != nil {
		return err
	}
	for _, c := range n.Children {
		if err := encodeNode(enc, c); err != nil {
			return err
		}
	}
	return enc.EncodeToken(start.End())
}
