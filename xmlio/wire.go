// File: wire.go
// Role: Wire-format constants shared by the reader and writer: namespace,
//       element/attribute local names, and value type names (spec.md §4.E,
//       §6). The class map lives in classmap.go.

package xmlio

// NS is the XML namespace every element in the specification document
// belongs to.
const NS = "opendse.sf.net"

// Element and attribute local names used by the normative wire format.
const (
	elSpecification = "specification"
	elArchitecture  = "architecture"
	elApplication   = "application"
	elMappings      = "mappings"
	elRoutings      = "routings"
	elAttributes    = "attributes"

	elResource      = "resource"
	elLink          = "link"
	elTask          = "task"
	elCommunication = "communication"
	elDependency    = "dependency"
	elFunctions     = "functions"
	elFunction      = "function"
	elMapping       = "mapping"
	elRouting       = "routing"
	elAttribute     = "attribute"

	attrID          = "id"
	attrClass       = "class"
	attrSource      = "source"
	attrDestination = "destination"
	attrOrientation = "orientation"
	attrTarget      = "target"
	attrAnchor      = "anchor"
	attrName        = "name"
	attrType        = "type"
	attrParameter   = "parameter"

	orientationDirected   = "DIRECTED"
	orientationUndirected = "UNDIRECTED"
)

// Value type names used in the "type" attribute of <attribute> elements.
const (
	typeString     = "String"
	typeInt        = "Integer"
	typeFloat      = "Double"
	typeBool       = "Boolean"
	typeBlob       = "Blob"
	typeCollection = "Collection"
)

// namespace tags the per-namespace element tables, per spec.md §4.E
// "per-namespace element table with namespaces {Routings, Architecture,
// Application, Function, Attributes}". Read registers elements only under
// nsArchitecture and nsApplication; the other three tags are declared but
// never used.
type namespace int

const (
	nsArchitecture namespace = iota
	nsApplication
	nsRoutings
	nsFunction
	nsAttributes
)
