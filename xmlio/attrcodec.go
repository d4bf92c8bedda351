// File: attrcodec.go
// Role: attr.Value <-> XML <attribute> element conversion (spec.md §4.E,
//       §6 "<attributes>: sequence of <attribute name=… type=…
//       parameter=RANGE|SELECT|UID?>text</attribute>").
// AI-HINT (file):
//   - Collection entries carry an "elemType" attribute on the parent so a
//     reader can reconstruct attr.NewCollection's explicit elemKind
//     without a Java-style generic class to inspect; this is a practical
//     addition the wire format needs since this module has no reflective
//     type system to recover it from, see DESIGN.md.

package xmlio

import (
	"encoding/base64"
	"encoding/xml"
	"fmt"
	"strconv"

	"github.com/opendse/opendse/attr"
)

const attrElemType = "elemType"

func kindToTypeName(k attr.Kind) (string, error) {
	switch k {
	case attr.KindString:
		return typeString, nil
	case attr.KindInt:
		return typeInt, nil
	case attr.KindFloat:
		return typeFloat, nil
	case attr.KindBool:
		return typeBool, nil
	case attr.KindBlob:
		return typeBlob, nil
	case attr.KindCollection:
		return typeCollection, nil
	default:
		return "", fmt.Errorf("%w: attribute kind %v has no wire type name", ErrMalformedInput, k)
	}
}

func typeNameToKind(name string) (attr.Kind, error) {
	switch name {
	case typeString:
		return attr.KindString, nil
	case typeInt:
		return attr.KindInt, nil
	case typeFloat:
		return attr.KindFloat, nil
	case typeBool:
		return attr.KindBool, nil
	case typeBlob:
		return attr.KindBlob, nil
	case typeCollection:
		return attr.KindCollection, nil
	default:
		return 0, fmt.Errorf("%w: attribute type %q", ErrUnknownClass, name)
	}
}

func formatScalar(v attr.Value) (string, error) {
	switch v.Kind() {
	case attr.KindString:
		s, _ := v.AsString()
		return s, nil
	case attr.KindInt:
		i, _ := v.AsInt()
		return strconv.FormatInt(i, 10), nil
	case attr.KindFloat:
		f, _ := v.AsFloat()
		return strconv.FormatFloat(f, 'g', -1, 64), nil
	case attr.KindBool:
		b, _ := v.AsBool()
		return strconv.FormatBool(b), nil
	case attr.KindBlob:
		blob, _ := v.AsBlob()
		return base64.StdEncoding.EncodeToString(blob), nil
	default:
		return "", fmt.Errorf("%w: cannot format kind %v as scalar text", ErrMalformedInput, v.Kind())
	}
}

func parseScalar(kind attr.Kind, text string) (attr.Value, error) {
	switch kind {
	case attr.KindString:
		return attr.NewString(text), nil
	case attr.KindInt:
		i, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return attr.Value{}, fmt.Errorf("%w: integer %q: %v", ErrMalformedInput, text, err)
		}
		return attr.NewInt(i), nil
	case attr.KindFloat:
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return attr.Value{}, fmt.Errorf("%w: float %q: %v", ErrMalformedInput, text, err)
		}
		return attr.NewFloat(f), nil
	case attr.KindBool:
		b, err := strconv.ParseBool(text)
		if err != nil {
			return attr.Value{}, fmt.Errorf("%w: boolean %q: %v", ErrMalformedInput, text, err)
		}
		return attr.NewBool(b), nil
	case attr.KindBlob:
		raw, err := base64.StdEncoding.DecodeString(text)
		if err != nil {
			return attr.Value{}, fmt.Errorf("%w: blob: %v", ErrMalformedInput, err)
		}
		return attr.NewBlob(raw), nil
	default:
		return attr.Value{}, fmt.Errorf("%w: scalar kind %v", ErrMalformedInput, kind)
	}
}

// writeAttribute emits one <attribute> element for (name, v), recursing
// into child <attribute> elements for collection values.
func writeAttribute(enc *xml.Encoder, name string, v attr.Value) error {
	if v.Kind() == attr.KindParameter {
		p, _ := v.AsParameter()
		start := xml.StartElement{
			Name: xml.Name{Space: NS, Local: elAttribute},
			Attr: []xml.Attr{
				{Name: xml.Name{Local: attrName}, Value: name},
				{Name: xml.Name{Local: attrType}, Value: "Parameter"},
				{Name: xml.Name{Local: attrParameter}, Value: p.ParameterKind().String()},
			},
		}
		if err := enc.EncodeToken(start); err != nil {
			return err
		}
		if err := enc.EncodeToken(xml.CharData(p.Text())); err != nil {
			return err
		}
		return enc.EncodeToken(start.End())
	}

	typeName, err := kindToTypeName(v.Kind())
	if err != nil {
		return err
	}
	attrs := []xml.Attr{
		{Name: xml.Name{Local: attrType}, Value: typeName},
	}
	if name != "" {
		attrs = append([]xml.Attr{{Name: xml.Name{Local: attrName}, Value: name}}, attrs...)
	}

	if v.Kind() == attr.KindCollection {
		elemKind, _ := v.ElemKind()
		elemTypeName, err := kindToTypeName(elemKind)
		if err != nil {
			return err
		}
		attrs = append(attrs, xml.Attr{Name: xml.Name{Local: attrElemType}, Value: elemTypeName})
		start := xml.StartElement{Name: xml.Name{Space: NS, Local: elAttribute}, Attr: attrs}
		if err := enc.EncodeToken(start); err != nil {
			return err
		}
		items, _ := v.AsCollection()
		for _, item := range items {
			if err := writeAttribute(enc, "", item); err != nil {
				return err
			}
		}
		return enc.EncodeToken(start.End())
	}

	start := xml.StartElement{Name: xml.Name{Space: NS, Local: elAttribute}, Attr: attrs}
	if err := enc.EncodeToken(start); err != nil {
		return err
	}
	text, err := formatScalar(v)
	if err != nil {
		return err
	}
	if err := enc.EncodeToken(xml.CharData(text)); err != nil {
		return err
	}
	return enc.EncodeToken(start.End())
}

// writeAttributes wraps attrs.Each in an <attributes> element, in
// insertion order. Emits nothing if attrs is empty.
func writeAttributes(enc *xml.Encoder, attrs *attr.Attributes) error {
	if attrs == nil || attrs.Len() == 0 {
		return nil
	}
	start := xml.StartElement{Name: xml.Name{Space: NS, Local: elAttributes}}
	if err := enc.EncodeToken(start); err != nil {
		return err
	}
	var outerErr error
	attrs.Each(func(name string, v attr.Value) bool {
		if err := writeAttribute(enc, name, v); err != nil {
			outerErr = err
			return false
		}
		return true
	})
	if outerErr != nil {
		return outerErr
	}
	return enc.EncodeToken(start.End())
}
