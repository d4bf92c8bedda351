// File: write.go
// Role: XML Writer (spec.md §4.E, §6).
// AI-HINT (file):
//   - Written with explicit xml.Encoder.EncodeToken calls rather than
//     struct-tag Marshal: the document's element order, the task vs.
//     communication element name and the conditional attributes
//     (parameter, elemType) depend on runtime type information Go's
//     reflection-based xml.Marshal cannot express for a sealed sum type,
//     see DESIGN.md. No class attribute is written; the element name alone
//     carries the task/communication distinction.

package xmlio

import (
	"encoding/xml"
	"io"

	"github.com/opendse/opendse/model"
)

// Write serializes spec to w as a <specification> document with children
// in the normative order: architecture, application, mappings, routings?,
// attributes?.
func Write(w io.Writer, spec *model.Specification) error {
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")

	root := xml.StartElement{
		Name: xml.Name{Space: NS, Local: elSpecification},
		Attr: []xml.Attr{{Name: xml.Name{Local: attrID}, Value: spec.ID}},
	}
	if err := enc.EncodeToken(root); err != nil {
		return err
	}

	if err := writeArchitecture(enc, spec.Architecture); err != nil {
		return err
	}
	if err := writeApplication(enc, spec.Application); err != nil {
		return err
	}
	if err := writeMappings(enc, spec.Mappings); err != nil {
		return err
	}
	if spec.Routings.Len() > 0 {
		if err := writeRoutings(enc, spec.Routings); err != nil {
			return err
		}
	}
	if spec.Attrs.Len() > 0 {
		if err := writeAttributes(enc, spec.Attrs); err != nil {
			return err
		}
	}

	if err := enc.EncodeToken(root.End()); err != nil {
		return err
	}
	return enc.Flush()
}

func writeArchitecture(enc *xml.Encoder, arch *model.Architecture) error {
	start := xml.StartElement{Name: xml.Name{Space: NS, Local: elArchitecture}}
	if err := enc.EncodeToken(start); err != nil {
		return err
	}
	g := arch.Graph()
	for _, id := range g.VertexIDs() {
		res, err := arch.Resource(id)
		if err != nil {
			return err
		}
		resStart := xml.StartElement{
			Name: xml.Name{Space: NS, Local: elResource},
			Attr: []xml.Attr{{Name: xml.Name{Local: attrID}, Value: id}},
		}
		if err := enc.EncodeToken(resStart); err != nil {
			return err
		}
		if err := writeAttributes(enc, res.Attributes()); err != nil {
			return err
		}
		if err := enc.EncodeToken(resStart.End()); err != nil {
			return err
		}
	}
	for _, id := range g.EdgeIDs() {
		e, err := g.Edge(id)
		if err != nil {
			return err
		}
		orientation := orientationDirected
		if !e.Directed {
			orientation = orientationUndirected
		}
		linkStart := xml.StartElement{
			Name: xml.Name{Space: NS, Local: elLink},
			Attr: []xml.Attr{
				{Name: xml.Name{Local: attrID}, Value: e.ID},
				{Name: xml.Name{Local: attrSource}, Value: e.From},
				{Name: xml.Name{Local: attrDestination}, Value: e.To},
				{Name: xml.Name{Local: attrOrientation}, Value: orientation},
			},
		}
		if err := enc.EncodeToken(linkStart); err != nil {
			return err
		}
		if err := writeAttributes(enc, e.Value.Attributes()); err != nil {
			return err
		}
		if err := enc.EncodeToken(linkStart.End()); err != nil {
			return err
		}
	}
	return enc.EncodeToken(start.End())
}

func writeApplication(enc *xml.Encoder, app *model.Application) error {
	start := xml.StartElement{Name: xml.Name{Space: NS, Local: elApplication}}
	if err := enc.EncodeToken(start); err != nil {
		return err
	}
	g := app.Graph()
	for _, id := range g.VertexIDs() {
		node, err := app.Node(id)
		if err != nil {
			return err
		}
		localName := elTask
		if model.IsCommunication(node) {
			localName = elCommunication
		}
		nodeStart := xml.StartElement{
			Name: xml.Name{Space: NS, Local: localName},
			Attr: []xml.Attr{{Name: xml.Name{Local: attrID}, Value: id}},
		}
		if err := enc.EncodeToken(nodeStart); err != nil {
			return err
		}
		if err := writeAttributes(enc, node.Attributes()); err != nil {
			return err
		}
		if err := enc.EncodeToken(nodeStart.End()); err != nil {
			return err
		}
	}
	for _, id := range g.EdgeIDs() {
		e, err := g.Edge(id)
		if err != nil {
			return err
		}
		depStart := xml.StartElement{
			Name: xml.Name{Space: NS, Local: elDependency},
			Attr: []xml.Attr{
				{Name: xml.Name{Local: attrSource}, Value: e.From},
				{Name: xml.Name{Local: attrDestination}, Value: e.To},
			},
		}
		if err := enc.EncodeToken(depStart); err != nil {
			return err
		}
		if err := writeAttributes(enc, e.Value.Attributes()); err != nil {
			return err
		}
		if err := enc.EncodeToken(depStart.End()); err != nil {
			return err
		}
	}

	anchors := app.FunctionAnchors()
	if len(anchors) > 0 {
		funcsStart := xml.StartElement{Name: xml.Name{Space: NS, Local: elFunctions}}
		if err := enc.EncodeToken(funcsStart); err != nil {
			return err
		}
		for _, anchor := range anchors {
			attrs, ok := app.FunctionAttributesByAnchor(anchor)
			if !ok || attrs.Len() == 0 {
				continue
			}
			fnStart := xml.StartElement{
				Name: xml.Name{Space: NS, Local: elFunction},
				Attr: []xml.Attr{{Name: xml.Name{Local: attrAnchor}, Value: anchor}},
			}
			if err := enc.EncodeToken(fnStart); err != nil {
				return err
			}
			if err := writeAttributes(enc, attrs); err != nil {
				return err
			}
			if err := enc.EncodeToken(fnStart.End()); err != nil {
				return err
			}
		}
		if err := enc.EncodeToken(funcsStart.End()); err != nil {
			return err
		}
	}

	return enc.EncodeToken(start.End())
}

func writeMappings(enc *xml.Encoder, mappings *model.Mappings) error {
	start := xml.StartElement{Name: xml.Name{Space: NS, Local: elMappings}}
	if err := enc.EncodeToken(start); err != nil {
		return err
	}
	for _, m := range mappings.All() {
		mStart := xml.StartElement{
			Name: xml.Name{Space: NS, Local: elMapping},
			Attr: []xml.Attr{
				{Name: xml.Name{Local: attrID}, Value: m.ID()},
				{Name: xml.Name{Local: attrSource}, Value: m.Source.ID()},
				{Name: xml.Name{Local: attrTarget}, Value: m.Target.ID()},
			},
		}
		if err := enc.EncodeToken(mStart); err != nil {
			return err
		}
		if err := writeAttributes(enc, m.Attributes()); err != nil {
			return err
		}
		if err := enc.EncodeToken(mStart.End()); err != nil {
			return err
		}
	}
	return enc.EncodeToken(start.End())
}

func writeRoutings(enc *xml.Encoder, routings *model.Routings) error {
	start := xml.StartElement{Name: xml.Name{Space: NS, Local: elRoutings}}
	if err := enc.EncodeToken(start); err != nil {
		return err
	}
	for _, cid := range routings.CommunicationIDs() {
		routing, err := routings.Get(cid)
		if err != nil {
			return err
		}
		rStart := xml.StartElement{
			Name: xml.Name{Space: NS, Local: elRouting},
			Attr: []xml.Attr{{Name: xml.Name{Local: attrSource}, Value: cid}},
		}
		if err := enc.EncodeToken(rStart); err != nil {
			return err
		}
		g := routing.Graph()
		for _, vid := range g.VertexIDs() {
			resStart := xml.StartElement{
				Name: xml.Name{Space: NS, Local: elResource},
				Attr: []xml.Attr{{Name: xml.Name{Local: attrID}, Value: vid}},
			}
			if err := enc.EncodeToken(resStart); err != nil {
				return err
			}
			if err := enc.EncodeToken(resStart.End()); err != nil {
				return err
			}
		}
		for _, eid := range g.EdgeIDs() {
			e, err := g.Edge(eid)
			if err != nil {
				return err
			}
			orientation := orientationDirected
			if !e.Directed {
				orientation = orientationUndirected
			}
			linkStart := xml.StartElement{
				Name: xml.Name{Space: NS, Local: elLink},
				Attr: []xml.Attr{
					{Name: xml.Name{Local: attrID}, Value: e.ID},
					{Name: xml.Name{Local: attrSource}, Value: e.From},
					{Name: xml.Name{Local: attrDestination}, Value: e.To},
					{Name: xml.Name{Local: attrOrientation}, Value: orientation},
				},
			}
			if err := enc.EncodeToken(linkStart); err != nil {
				return err
			}
			if err := enc.EncodeToken(linkStart.End()); err != nil {
				return err
			}
		}
		if err := enc.EncodeToken(rStart.End()); err != nil {
			return err
		}
	}
	return enc.EncodeToken(start.End())
}
