// Package graphio reads graph datasets and classification targets from disk.
//
// Graph formats (chosen by file extension):
//
//	.json                    {"vertices": 3, "labels": ["C","O","C"],
//	                          "edges": [[0,1],[1,2]], "weights": [1, 2]}
//	                         every field except "edges" is optional.
//	.txt .edges .el .edgelist one "u v [w]" edge per line; directives
//	                         "# vertices N" and "# label ID LABEL";
//	                         any other line starting with # or % is a comment.
//
// Vertex ids are 0-based integers. Without an explicit vertex count the
// graph has max(id)+1 vertices (or len(labels) if larger). Self-loops are
// accepted; parallel edges are a format error.
//
// Targets are read one per line (ReadLabels) and encoded to 0..K-1 by
// EncodeTargets. Dataset.Validate checks that graphs and targets pair up.
package graphio
