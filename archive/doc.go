// SPDX-License-Identifier: MIT

// Package archive tidies an experiment directory by moving the Pajek files a
// run produced (*.net networks and *.clu partitions) into a subfolder.
//
// Relocate is an explicit call with the directory injected by the caller;
// nothing in this package runs on import.
package archive
