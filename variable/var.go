// File: var.go
// Role: Decision-variable families (spec.md §4.F) as a structurally
//       comparable value type, grounded on attr.Value's tagged-sum-type
//       pattern (a Kind discriminant plus payload fields) applied to
//       variable identity instead of attribute storage.
// AI-HINT (file):
//   - Var is a plain comparable struct (family + fixed string slots), so
//     Go's built-in struct equality IS the "structural equality" spec.md
//     §4.F and §9 call for; no custom hash function is needed.

package variable

import "strconv"

// Family discriminates which decision-variable family a Var belongs to.
type Family int

const (
	// FamilyM tags "mapping m is selected".
	FamilyM Family = iota
	// FamilyT tags "task t is active".
	FamilyT
	// FamilyDTT tags a communication-flow endpoint pair (src task, dst task).
	FamilyDTT
	// FamilyDDsR tags "resource r is the source endpoint of flow f's routing".
	FamilyDDsR
	// FamilyDDdR tags "resource r is the destination endpoint of flow f's routing".
	FamilyDDdR
	// FamilyLinkDirection tags "routing link l is used from src to dst".
	FamilyLinkDirection
	// FamilyEdgeUsed tags "routing link l carries at least one flow".
	FamilyEdgeUsed
	// FamilyVertexUsed tags "routing resource r is incident to a used edge".
	FamilyVertexUsed
	// FamilyEndNode tags the per-flow end-node placement variable at a
	// resource (spec.md §4.G.4, EndNodeEncoderMapping).
	FamilyEndNode
	// FamilyLevelAtLeast tags the order-encoded cycle-break level variable
	// "resource's topological level is >= k" (spec.md §4.G.2).
	FamilyLevelAtLeast
)

// Var is a decision variable: a family tag plus up to four string-valued
// arguments identifying which concrete instance of that family this is.
// Unused argument slots are "". Two Vars with equal fields ARE the same
// variable — this is the structural-equality contract spec.md §4.F
// requires of "two requests for the same variable".
type Var struct {
	Family Family
	A0     string
	A1     string
	A2     string
	A3     string
}

// Flow identifies a CommunicationFlow: the (predecessor task, communication,
// successor task) triple a communication induces one flow per pair of
// (spec.md §4.G "CommunicationFlow").
type Flow struct {
	Predecessor   string
	Communication string
	Successor     string
}

// M returns the variable "mapping is selected" for the given Mapping ID.
func M(mappingID string) Var { return Var{Family: FamilyM, A0: mappingID} }

// T returns the variable "task is active" for the given Task/Communication ID.
func T(taskID string) Var { return Var{Family: FamilyT, A0: taskID} }

// DTT returns the communication-flow endpoint variable for (srcTaskID,
// dstTaskID).
func DTT(srcTaskID, dstTaskID string) Var {
	return Var{Family: FamilyDTT, A0: srcTaskID, A1: dstTaskID}
}

// DTTSource returns flow f's source-endpoint DTT variable:
// DTT(predecessor, communication).
func DTTSource(f Flow) Var { return DTT(f.Predecessor, f.Communication) }

// DTTDestination returns flow f's destination-endpoint DTT variable:
// DTT(communication, successor).
func DTTDestination(f Flow) Var { return DTT(f.Communication, f.Successor) }

// DDsR returns "resource is the source endpoint of flow f's routing".
func DDsR(f Flow, resourceID string) Var {
	return Var{Family: FamilyDDsR, A0: f.Predecessor, A1: f.Communication, A2: f.Successor, A3: resourceID}
}

// DDdR returns "resource is the destination endpoint of flow f's routing".
func DDdR(f Flow, resourceID string) Var {
	return Var{Family: FamilyDDdR, A0: f.Predecessor, A1: f.Communication, A2: f.Successor, A3: resourceID}
}

// LinkDirection returns "routing link linkID is used oriented from->to",
// scoped to one communication's routing.
func LinkDirection(communicationID, linkID, from, to string) Var {
	return Var{Family: FamilyLinkDirection, A0: communicationID, A1: linkID, A2: from, A3: to}
}

// EdgeUsed returns "routing link linkID carries at least one flow", scoped
// to one communication's routing.
func EdgeUsed(communicationID, linkID string) Var {
	return Var{Family: FamilyEdgeUsed, A0: communicationID, A1: linkID}
}

// VertexUsed returns "routing resource resourceID is incident to a used
// edge", scoped to one communication's routing.
func VertexUsed(communicationID, resourceID string) Var {
	return Var{Family: FamilyVertexUsed, A0: communicationID, A1: resourceID}
}

// EndNode returns the per-flow end-node placement variable at resourceID:
// "resourceID is the mapped end node of flow f's srcSide endpoint"
// (spec.md §4.G.4, EndNodeEncoderMapping).
func EndNode(resourceID string, f Flow, srcSide bool) Var {
	side := "dst"
	if srcSide {
		side = "src"
	}
	return Var{Family: FamilyEndNode, A0: resourceID, A1: f.Predecessor + "|" + f.Communication + "|" + f.Successor, A2: side}
}

// LevelAtLeast returns the order-encoded cycle-break variable "resourceID's
// level in communicationID's routing is >= k", scoped to one communication's
// routing. Order encoding (LevelAtLeast(r,k) => LevelAtLeast(r,k-1)) avoids
// modeling levels as bounded integers in a purely Boolean constraint system.
func LevelAtLeast(communicationID, resourceID string, k int) Var {
	return Var{Family: FamilyLevelAtLeast, A0: communicationID, A1: resourceID, A2: strconv.Itoa(k)}
}
