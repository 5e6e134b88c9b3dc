// Package commeval evaluates graph community detection against a known,
// golden partition, and stores partitions and graphs in Pajek text files.
//
// 🚀 What is commeval?
//
//	A small toolkit for community-detection experiments:
//		• Pajek codecs: .clu partitions and .net networks, any text encoding
//		• Partition metrics: entropy, MI, VI/NVI, NMI, pairwise Jaccard, ARI
//		• Modularity: partition quality against the graph itself (gonum)
//		• Reports: one record per (golden, detected, graph, parameter) run
//		• Fixtures: stochastic block model graphs with their planted partition
//
// Under the hood, everything is organized in subpackages:
//
//	partition/   Partition and Community types, validation, label alignment
//	pajek/       .clu and .net decode/encode, scoped file access
//	metrics/     scores over aligned label sequences (contingency based)
//	quality/     modularity over gonum undirected graphs
//	evaluation/  Evaluator assembling Reports, parameter sweeps
//	builder/     planted-partition and block-model fixtures
//	archive/     moving run artifacts into a subfolder
//	config/      YAML + environment configuration
//	cmd/commeval the command-line front end
//
// Quick example, two triangles joined by a bridge:
//
//	    0───1     4───5
//	     \ /       \ /
//	      2─────────3
//
//	golden {0,1,2},{3,4,5} vs detected {0,1},{2,3,4,5}
//	→ Evaluate reports modularity, NMI, NVI and Jaccard for the detected split.
//
//	go install github.com/katalvlaran/commeval/cmd/commeval@latest
package commeval
