package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/TrevorS/linkage"
)

const undefined = "undefined"

func writeText(w io.Writer, r *linkage.Result) error {
	bottleneck, value := undefined, undefined
	if r.Bottleneck != nil {
		bottleneck = r.Bottleneck.String()
		value = r.BottleneckValue.String()
	}
	_, err := fmt.Fprintf(w,
		"points: %d\nedges: %d\ncluster_product: %s\nbottleneck_edge: %s\nbottleneck_value: %s\n",
		r.Points, r.Edges, r.ClusterProduct, bottleneck, value)
	return err
}

// jsonResult keeps the bottleneck keys present with a null value when the
// bottleneck is undefined.
type jsonResult struct {
	Points          int            `json:"points"`
	Edges           int            `json:"edges"`
	Prefix          int            `json:"prefix"`
	ClusterProduct  linkage.Value  `json:"cluster_product"`
	Stats           linkage.Stats  `json:"stats"`
	Bottleneck      *linkage.Edge  `json:"bottleneck"`
	BottleneckValue *linkage.Value `json:"bottleneck_value"`
}

func writeJSON(w io.Writer, r *linkage.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(jsonResult{
		Points:          r.Points,
		Edges:           r.Edges,
		Prefix:          r.Prefix,
		ClusterProduct:  r.ClusterProduct,
		Stats:           r.Stats,
		Bottleneck:      r.Bottleneck,
		BottleneckValue: r.BottleneckValue,
	})
}
