// File: read.go
// Role: XML Reader (spec.md §4.E, §6, §8 invariant 1 "read(write(s)) ≡ s").
// Determinism:
//   - The element table is constructed fresh per Read call
//     (spec.md §9 "Global state... instance-local, not process-wide").
// Errors:
//   - MalformedInput, UnknownClass, MissingEndpoint, UnparseableParameter
//     propagate to the caller with the offending fragment named, per
//     spec.md §7.

package xmlio

import (
	"encoding/xml"
	"fmt"
	"io"

	"github.com/opendse/opendse/attr"
	"github.com/opendse/opendse/model"
)

// Read parses a specification document from r, resolving shared element
// identity via a per-namespace element table scoped to this call.
func Read(r io.Reader) (*model.Specification, error) {
	dec := xml.NewDecoder(r)
	table := newElementTable()

	se, err := nextStartElement(dec)
	if err != nil {
		return nil, err
	}
	if se.Name.Local != elSpecification {
		return nil, fmt.Errorf("%w: root element is %q, want %q", ErrMalformedInput, se.Name.Local, elSpecification)
	}
	spec := model.NewSpecification(getAttr(*se, attrID))

	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case elArchitecture:
				if err := readArchitecture(dec, table, spec); err != nil {
					return nil, err
				}
			case elApplication:
				if err := readApplication(dec, table, spec); err != nil {
					return nil, err
				}
			case elMappings:
				if err := readMappings(dec, table, spec); err != nil {
					return nil, err
				}
			case elRoutings:
				if err := readRoutings(dec, table, spec); err != nil {
					return nil, err
				}
			case elAttributes:
				attrs, err := parseAttributesBody(dec)
				if err != nil {
					return nil, err
				}
				spec.Attrs = attrs
			default:
				if err := dec.Skip(); err != nil {
					return nil, err
				}
			}
		case xml.EndElement:
			if t.Name.Local == elSpecification {
				return spec, nil
			}
		}
	}
}

func readArchitecture(dec *xml.Decoder, table *elementTable, spec *model.Specification) error {
	for {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case elResource:
				id := getAttr(t, attrID)
				el := table.getOrCreate(nsArchitecture, id, func() model.Element { return model.NewResource(id) })
				res := el.(*model.Resource)
				attrs, err := consumeElementBody(dec, t.Name.Local)
				if err != nil {
					return err
				}
				mergeAttrs(res.Attributes(), attrs)
				if err := spec.Architecture.AddResource(res); err != nil {
					return fmt.Errorf("%w: <resource id=%q>: %v", ErrMalformedInput, id, err)
				}
			case elLink:
				id := getAttr(t, attrID)
				from := getAttr(t, attrSource)
				to := getAttr(t, attrDestination)
				directed := getAttr(t, attrOrientation) != orientationUndirected
				el := table.getOrCreate(nsArchitecture, id, func() model.Element { return model.NewLink(id, directed) })
				link := el.(*model.Link)
				attrs, err := consumeElementBody(dec, t.Name.Local)
				if err != nil {
					return err
				}
				mergeAttrs(link.Attributes(), attrs)
				if err := spec.Architecture.AddLink(id, from, to, link); err != nil {
					return fmt.Errorf("%w: <link id=%q>: %v", ErrMissingEndpoint, id, err)
				}
			default:
				if err := dec.Skip(); err != nil {
					return err
				}
			}
		case xml.EndElement:
			if t.Name.Local == elArchitecture {
				return nil
			}
		}
	}
}

func readApplication(dec *xml.Decoder, table *elementTable, spec *model.Specification) error {
	for {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case elTask, elCommunication:
				id := getAttr(t, attrID)
				class, err := resolveTaskClass(t.Name.Local, getAttr(t, attrClass))
				if err != nil {
					return fmt.Errorf("%w: <%s id=%q>", err, t.Name.Local, id)
				}
				el := table.getOrCreate(nsApplication, id, func() model.Element {
					if class == "Communication" {
						return model.NewCommunication(id)
					}
					return model.NewTask(id)
				})
				node := el.(model.AppNode)
				attrs, err := consumeElementBody(dec, t.Name.Local)
				if err != nil {
					return err
				}
				mergeAttrs(node.Attributes(), attrs)
				if err := spec.Application.AddTask(node); err != nil {
					return fmt.Errorf("%w: <%s id=%q>: %v", ErrMalformedInput, t.Name.Local, id, err)
				}
			case elDependency:
				id := getAttr(t, attrID)
				if id == "" {
					id = getAttr(t, attrSource) + "->" + getAttr(t, attrDestination)
				}
				from := getAttr(t, attrSource)
				to := getAttr(t, attrDestination)
				dep := model.NewDependency(id)
				attrs, err := consumeElementBody(dec, t.Name.Local)
				if err != nil {
					return err
				}
				mergeAttrs(dep.Attributes(), attrs)
				if err := spec.Application.AddDependency(id, from, to, dep); err != nil {
					return fmt.Errorf("%w: <dependency source=%q destination=%q>: %v", ErrMissingEndpoint, from, to, err)
				}
			case elFunctions:
				if err := readFunctions(dec, spec); err != nil {
					return err
				}
			default:
				if err := dec.Skip(); err != nil {
					return err
				}
			}
		case xml.EndElement:
			if t.Name.Local == elApplication {
				return nil
			}
		}
	}
}

func readFunctions(dec *xml.Decoder, spec *model.Specification) error {
	for {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == elFunction {
				anchor := getAttr(t, attrAnchor)
				attrs, err := consumeElementBody(dec, t.Name.Local)
				if err != nil {
					return err
				}
				if attrs != nil {
					spec.Application.SetFunctionAttributes(anchor, attrs)
				}
			} else if err := dec.Skip(); err != nil {
				return err
			}
		case xml.EndElement:
			if t.Name.Local == elFunctions {
				return nil
			}
		}
	}
}

func readMappings(dec *xml.Decoder, table *elementTable, spec *model.Specification) error {
	for {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local != elMapping {
				if err := dec.Skip(); err != nil {
					return err
				}
				continue
			}
			id := getAttr(t, attrID)
			srcID := getAttr(t, attrSource)
			tgtID := getAttr(t, attrTarget)
			srcEl, ok := table.get(nsApplication, srcID)
			if !ok {
				return fmt.Errorf("%w: <mapping id=%q> source %q", ErrMissingEndpoint, id, srcID)
			}
			src, ok := srcEl.(*model.Task)
			if !ok {
				return fmt.Errorf("%w: <mapping id=%q> source %q is not a Task", ErrMalformedInput, id, srcID)
			}
			tgtEl, ok := table.get(nsArchitecture, tgtID)
			if !ok {
				return fmt.Errorf("%w: <mapping id=%q> target %q", ErrMissingEndpoint, id, tgtID)
			}
			tgt := tgtEl.(*model.Resource)
			m := model.NewMapping(id, src, tgt)
			attrs, err := consumeElementBody(dec, t.Name.Local)
			if err != nil {
				return err
			}
			mergeAttrs(m.Attributes(), attrs)
			if err := spec.AddMapping(m); err != nil {
				return fmt.Errorf("%w: <mapping id=%q>: %v", ErrMalformedInput, id, err)
			}
		case xml.EndElement:
			if t.Name.Local == elMappings {
				return nil
			}
		}
	}
}

func readRoutings(dec *xml.Decoder, table *elementTable, spec *model.Specification) error {
	for {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local != elRouting {
				if err := dec.Skip(); err != nil {
					return err
				}
				continue
			}
			commID := getAttr(t, attrSource)
			routing, err := readRouting(dec, table)
			if err != nil {
				return err
			}
			spec.Routings.Set(commID, routing)
		case xml.EndElement:
			if t.Name.Local == elRoutings {
				return nil
			}
		}
	}
}

func readRouting(dec *xml.Decoder, table *elementTable) (*model.Routing, error) {
	routing := model.NewRouting()
	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case elResource:
				id := getAttr(t, attrID)
				el, ok := table.get(nsArchitecture, id)
				if !ok {
					return nil, fmt.Errorf("%w: <routing>/<resource id=%q> not in architecture", ErrMissingEndpoint, id)
				}
				if err := dec.Skip(); err != nil {
					return nil, err
				}
				if err := routing.AddResource(el.(*model.Resource)); err != nil {
					return nil, fmt.Errorf("%w: <routing>/<resource id=%q>: %v", ErrMalformedInput, id, err)
				}
			case elLink:
				id := getAttr(t, attrID)
				from := getAttr(t, attrSource)
				to := getAttr(t, attrDestination)
				directed := getAttr(t, attrOrientation) != orientationUndirected
				el, ok := table.get(nsArchitecture, id)
				if !ok {
					return nil, fmt.Errorf("%w: <routing>/<link id=%q> not in architecture", ErrMissingEndpoint, id)
				}
				if err := dec.Skip(); err != nil {
					return nil, err
				}
				if err := routing.AddLink(id, from, to, directed, el.(*model.Link)); err != nil {
					return nil, fmt.Errorf("%w: <routing>/<link id=%q>: %v", ErrMissingEndpoint, id, err)
				}
			default:
				if err := dec.Skip(); err != nil {
					return nil, err
				}
			}
		case xml.EndElement:
			if t.Name.Local == elRouting {
				return routing, nil
			}
		}
	}
}

// consumeElementBody reads tokens until the EndElement matching localName,
// returning the attribute map found in a nested <attributes> child, or nil
// if there was none.
func consumeElementBody(dec *xml.Decoder, localName string) (*attr.Attributes, error) {
	var result *attr.Attributes
	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == elAttributes {
				attrs, err := parseAttributesBody(dec)
				if err != nil {
					return nil, err
				}
				result = attrs
			} else if err := dec.Skip(); err != nil {
				return nil, err
			}
		case xml.EndElement:
			if t.Name.Local == localName {
				return result, nil
			}
		}
	}
}

func nextStartElement(dec *xml.Decoder) (*xml.StartElement, error) {
	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		if se, ok := tok.(xml.StartElement); ok {
			return &se, nil
		}
	}
}

func getAttr(se xml.StartElement, local string) string {
	for _, a := range se.Attr {
		if a.Name.Local == local {
			return a.Value
		}
	}
	return ""
}

// mergeAttrs copies every entry of from into into, in from's order. A nil
// from (no nested <attributes> element) is a no-op.
func mergeAttrs(into *attr.Attributes, from *attr.Attributes) {
	if from == nil {
		return
	}
	from.Each(func(name string, v attr.Value) bool {
		into.Set(name, v)
		return true
	})
}
