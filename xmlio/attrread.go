// File: attrread.go
// Role: <attributes>/<attribute> parsing, the read-side counterpart of
//       attrcodec.go's writers.

package xmlio

import (
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/opendse/opendse/attr"
)

// parseAttributesBody reads tokens until the matching </attributes>,
// collecting one entry per <attribute> child in document order.
func parseAttributesBody(dec *xml.Decoder) (*attr.Attributes, error) {
	result := attr.NewAttributes()
	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local != elAttribute {
				if err := dec.Skip(); err != nil {
					return nil, err
				}
				continue
			}
			name, v, err := parseAttributeElement(dec, t)
			if err != nil {
				return nil, err
			}
			result.Set(name, v)
		case xml.EndElement:
			if t.Name.Local == elAttributes {
				return result, nil
			}
		}
	}
}

// parseAttributeElement parses one already-opened <attribute> element,
// including its closing tag, recursing into children for collections.
func parseAttributeElement(dec *xml.Decoder, se xml.StartElement) (string, attr.Value, error) {
	name := getAttr(se, attrName)
	typeName := getAttr(se, attrType)

	if typeName == "Parameter" {
		paramKind := getAttr(se, attrParameter)
		text, err := readCharDataUntilEnd(dec, se.Name.Local)
		if err != nil {
			return "", attr.Value{}, err
		}
		p, err := attr.ParseParameter(paramKind, strings.TrimSpace(text))
		if err != nil {
			return "", attr.Value{}, fmt.Errorf("%w: attribute %q: %v", ErrUnparseableParameter, name, err)
		}
		return name, attr.NewParameter(p), nil
	}

	kind, err := typeNameToKind(typeName)
	if err != nil {
		return "", attr.Value{}, fmt.Errorf("%w: attribute %q", err, name)
	}

	if kind == attr.KindCollection {
		elemKind, err := typeNameToKind(getAttr(se, attrElemType))
		if err != nil {
			return "", attr.Value{}, fmt.Errorf("%w: attribute %q elemType", err, name)
		}
		var items []attr.Value
		for {
			tok, err := dec.Token()
			if err != nil {
				return "", attr.Value{}, err
			}
			switch t := tok.(type) {
			case xml.StartElement:
				if t.Name.Local != elAttribute {
					if err := dec.Skip(); err != nil {
						return "", attr.Value{}, err
					}
					continue
				}
				_, item, err := parseAttributeElement(dec, t)
				if err != nil {
					return "", attr.Value{}, err
				}
				items = append(items, item)
			case xml.EndElement:
				if t.Name.Local == elAttribute {
					coll, err := attr.NewCollection(elemKind, items)
					if err != nil {
						return "", attr.Value{}, fmt.Errorf("%w: attribute %q: %v", ErrMalformedInput, name, err)
					}
					return name, coll, nil
				}
			}
		}
	}

	text, err := readCharDataUntilEnd(dec, se.Name.Local)
	if err != nil {
		return "", attr.Value{}, err
	}
	if kind != attr.KindString && kind != attr.KindBlob {
		text = strings.TrimSpace(text)
	}
	v, err := parseScalar(kind, text)
	if err != nil {
		return "", attr.Value{}, fmt.Errorf("%w: attribute %q: %v", ErrMalformedInput, name, err)
	}
	return name, v, nil
}

// readCharDataUntilEnd accumulates character data until the EndElement
// matching localName, which it also consumes.
func readCharDataUntilEnd(dec *xml.Decoder, localName string) (string, error) {
	var sb strings.Builder
	for {
		tok, err := dec.Token()
		if err != nil {
			return "", err
		}
		switch t := tok.(type) {
		case xml.CharData:
			sb.Write(t)
		case xml.EndElement:
			if t.Name.Local == localName {
				return sb.String(), nil
			}
		}
	}
}
