// File: import.go
// Role: Builds a model.Specification from parsed TGFF blocks (spec.md §6
//       TGFF import format, external collaborator, adapter only).
// AI-HINT (file):
//   - TGFF has no routings/mappings section of its own; a spec built here
//     carries an empty Mappings/Routings, left for a downstream mapping
//     algorithm (out of scope) to populate.

package tgff

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/opendse/opendse/attr"
	"github.com/opendse/opendse/model"
)

// Import reads the top-level blocks produced by ParseBlocks and populates
// a fresh Specification with the tasks, arcs (as Communication nodes),
// and processing-element resources/wiring they describe. Unrecognized
// block keywords are attached as top-level attributes of the
// specification, keyed by keyword, rather than dropped silently.
func Import(id string, blocks []*Block) (*model.Specification, error) {
	spec := model.NewSpecification(id)

	resourceSeq := 0
	linkSeq := 0

	for _, b := range blocks {
		switch strings.ToUpper(b.Keyword) {
		case "HYPERPERIOD":
			if err := setHyperperiod(spec, b); err != nil {
				return nil, err
			}
		case "TASK_GRAPH":
			if err := importTaskGraph(spec, b); err != nil {
				return nil, err
			}
		case "COMMUN_QUANT":
			spec.Attrs.Set("commun_quant_rows", attr.NewInt(int64(len(b.Rows))))
		case "CORE", "PROC", "CLIENT_PE", "SERVER_PE":
			if err := importProcessingElements(spec, b, &resourceSeq); err != nil {
				return nil, err
			}
		case "WIRING":
			if err := importWiring(spec, b, &linkSeq); err != nil {
				return nil, err
			}
		default:
			spec.Attrs.Set(strings.ToLower(b.Keyword)+"_args", attr.NewString(strings.Join(b.Args, " ")))
		}
	}
	return spec, nil
}

func setHyperperiod(spec *model.Specification, b *Block) error {
	text := ""
	switch {
	case len(b.Args) > 0:
		text = b.Args[0]
	case len(b.Rows) > 0 && len(b.Rows[0]) > 0:
		text = b.Rows[0][0]
	default:
		return fmt.Errorf("%w: @HYPERPERIOD has no value", ErrMalformedInput)
	}
	v, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return fmt.Errorf("%w: hyperperiod %q: %v", ErrMalformedInput, text, err)
	}
	spec.Attrs.Set("hyperperiod", attr.NewInt(v))
	return nil
}

// importTaskGraph creates one Task per "TASK id TYPE n" row and one
// Communication node per "ARC id FROM src TO dst TYPE n" row, wired as
// src -> comm -> dst dependencies (spec.md §3's task/communication
// alternation, applied to TGFF's task-to-task arcs).
func importTaskGraph(spec *model.Specification, b *Block) error {
	graphID := "0"
	if len(b.Args) > 0 {
		graphID = b.Args[0]
	}

	for _, row := range b.Rows {
		if len(row) == 0 {
			continue
		}
		switch strings.ToUpper(row[0]) {
		case "TASK":
			if len(row) < 2 {
				return fmt.Errorf("%w: TASK row missing id in graph %s", ErrMalformedInput, graphID)
			}
			task := model.NewTask(row[1])
			if len(row) >= 4 && strings.ToUpper(row[2]) == "TYPE" {
				task.Attributes().Set("type", attr.NewString(row[3]))
			}
			if err := spec.Application.AddTask(task); err != nil {
				return fmt.Errorf("%w: %v", ErrMalformedInput, err)
			}
		case "ARC":
			if len(row) < 6 {
				return fmt.Errorf("%w: ARC row malformed in graph %s", ErrMalformedInput, graphID)
			}
			arcID, from, to := row[1], row[3], row[5]
			comm := model.NewCommunication(arcID)
			if err := spec.Application.AddTask(comm); err != nil {
				return fmt.Errorf("%w: %v", ErrMalformedInput, err)
			}
			if err := spec.Application.AddDependency(from+"->"+arcID, from, arcID, model.NewDependency(from+"->"+arcID)); err != nil {
				return fmt.Errorf("%w: %v", ErrMalformedInput, err)
			}
			if err := spec.Application.AddDependency(arcID+"->"+to, arcID, to, model.NewDependency(arcID+"->"+to)); err != nil {
				return fmt.Errorf("%w: %v", ErrMalformedInput, err)
			}
		}
	}
	return nil
}

// importProcessingElements creates one Resource per row of a CORE/PROC/
// CLIENT_PE/SERVER_PE table, named "<keyword-lowercase><sequence>", with
// the row's raw fields preserved as a string attribute for downstream
// interpretation (TGFF's per-type column schema is not standardized
// enough to decode generically here).
func importProcessingElements(spec *model.Specification, b *Block, seq *int) error {
	prefix := strings.ToLower(b.Keyword)
	for _, row := range b.Rows {
		id := fmt.Sprintf("%s%d", prefix, *seq)
		*seq++
		res := model.NewResource(id)
		res.Attributes().Set("fields", attr.NewString(strings.Join(row, " ")))
		if err := spec.Architecture.AddResource(res); err != nil {
			return fmt.Errorf("%w: %v", ErrMalformedInput, err)
		}
	}
	return nil
}

// importWiring creates one undirected Link per row, connecting the row's
// first two tokens (the endpoint resource ids TGFF's @WIRING table lists
// first).
func importWiring(spec *model.Specification, b *Block, seq *int) error {
	for _, row := range b.Rows {
		if len(row) < 2 {
			continue
		}
		from, to := row[0], row[1]
		id := fmt.Sprintf("w%d", *seq)
		*seq++
		link := model.NewLink(id, false)
		if err := spec.Architecture.AddLink(id, from, to, link); err != nil {
			return fmt.Errorf("%w: %v", ErrMalformedInput, err)
		}
	}
	return nil
}
