// File: filter_resources.go
// Role: filter_by_resources (spec.md §4.D, §8 invariant 4, scenario S3).
// AI-HINT (file):
//   - Communications are unconditionally dropped once their routing has
//     been pruned, per spec.md §4.D/§9's "current definitive behavior":
//     the commented-out alternative (drop only if the routing becomes
//     empty) is explicitly NOT implemented here — see DESIGN.md.

package ops

import "github.com/opendse/opendse/model"

// FilterByResources mutates spec in place, keeping only the architecture
// resources in keep. Mappings whose target falls outside keep are removed;
// any process task left with zero mappings is removed. Every communication
// is removed from the application after its routing is pruned to keep.
// Deletion order is mappings, then tasks, then resources, per spec.md §4.D
// step 4.
func FilterByResources(spec *model.Specification, keep map[string]bool) {
	pruneRoutingsToKeepSet(spec, keep)
	dropAllCommunications(spec)

	doomedTasks := pruneMappingsOutsideKeepSet(spec, keep)
	for _, taskID := range doomedTasks {
		_ = spec.Application.Graph().RemoveVertex(taskID)
	}

	for _, resourceID := range spec.Architecture.ResourceIDs() {
		if !keep[resourceID] {
			_ = spec.Architecture.Graph().RemoveVertex(resourceID)
		}
	}
}

// pruneRoutingsToKeepSet removes every routing vertex not in keep, for
// every communication's routing.
func pruneRoutingsToKeepSet(spec *model.Specification, keep map[string]bool) {
	for _, cid := range spec.Routings.CommunicationIDs() {
		routing, err := spec.Routings.Get(cid)
		if err != nil {
			continue
		}
		g := routing.Graph()
		for _, rid := range g.VertexIDs() {
			if !keep[rid] {
				_ = g.RemoveVertex(rid)
			}
		}
	}
}

// dropAllCommunications removes every Communication vertex from the
// application, regardless of its routing's surviving contents.
func dropAllCommunications(spec *model.Specification) {
	for _, cid := range spec.Application.FilterCommunications() {
		_ = spec.Application.Graph().RemoveVertex(cid)
	}
}

// pruneMappingsOutsideKeepSet removes every mapping whose target is not in
// keep, and returns the IDs of process tasks left with zero surviving
// mappings.
func pruneMappingsOutsideKeepSet(spec *model.Specification, keep map[string]bool) []string {
	var doomed []string
	for _, taskID := range spec.Application.FilterProcesses() {
		for _, m := range spec.Mappings.ForTask(taskID) {
			if !keep[m.Target.ID()] {
				spec.Mappings.Remove(m.ID())
			}
		}
		if len(spec.Mappings.ForTask(taskID)) == 0 {
			doomed = append(doomed, taskID)
		}
	}
	return doomed
}
